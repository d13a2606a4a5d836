package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-meet/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists accounts.
type UserRepository interface {
	// UpsertUser creates the account for user.TelegramID using user.ID, or
	// returns the existing one. An existing username is only replaced when
	// user.Username is non-nil. Status is never changed.
	UpsertUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByID(ctx context.Context, userID string) (models.User, error)
	ListUsersWithProfiles(ctx context.Context) ([]models.UserWithProfile, error)
	SetUserStatus(ctx context.Context, userID string, status models.UserStatus) (models.User, error)
}

// ProfileRepository persists profiles and their interest sets.
type ProfileRepository interface {
	// UpsertProfile creates or updates the profile of profile.UserID.
	// A non-nil interestIDs replaces the interest set.
	UpsertProfile(ctx context.Context, profile models.Profile, interestIDs []int64) (models.Profile, error)
	GetProfileByUserID(ctx context.Context, userID string) (models.Profile, error)
	// FindProfiles returns the feed for filter; age bounds are computed
	// relative to today.
	FindProfiles(ctx context.Context, filter models.FeedFilter, today time.Time) ([]models.Profile, error)
}

// InterestRepository persists the interest catalogue.
type InterestRepository interface {
	ListInterests(ctx context.Context) ([]models.Interest, error)
	EnsureInterests(ctx context.Context, names []string) ([]models.Interest, error)
}

// ConnectionRepository persists connection requests.
type ConnectionRepository interface {
	CreateConnection(ctx context.Context, requesterID, receiverID string) (models.Connection, error)
	// RespondToConnection moves a pending connection addressed to
	// receiverID into status.
	RespondToConnection(ctx context.Context, connectionID int64, receiverID string, status models.ConnectionStatus) (models.Connection, error)
	ListIncoming(ctx context.Context, receiverID string) ([]models.IncomingConnection, error)
}

// PhotoStorage keeps uploaded profile photos and returns their public URL.
type PhotoStorage interface {
	SavePhoto(ctx context.Context, photo models.Photo) (string, error)
	// DeletePhoto removes a photo previously returned by SavePhoto.
	// Deleting a missing photo is not an error.
	DeletePhoto(ctx context.Context, url string) error
}
