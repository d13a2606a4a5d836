package service

import (
	"context"

	"github.com/MKhiriev/go-meet/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

type AuthService interface {
	// Login verifies raw init data and returns the account bound to its
	// identity, creating it on first sign-in.
	Login(ctx context.Context, initData string) (models.LoginResult, error)
	CreateToken(ctx context.Context, userID string) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type ProfileService interface {
	// SaveProfile creates or updates the profile of data.UserID. A non-nil
	// photo is stored first and replaces the current photo.
	SaveProfile(ctx context.Context, data models.ProfileData, photo *models.Photo) (models.Profile, error)
	GetProfile(ctx context.Context, userID string) (models.Profile, error)
	Feed(ctx context.Context, filter models.FeedFilter) ([]models.Profile, error)
}

type ConnectionService interface {
	Create(ctx context.Context, request models.CreateConnectionRequest) (models.Connection, error)
	Respond(ctx context.Context, connectionID int64, request models.RespondConnectionRequest) (models.Connection, error)
	ListIncoming(ctx context.Context, userID string) ([]models.IncomingConnection, error)
}

type InterestService interface {
	ListInterests(ctx context.Context) ([]models.Interest, error)
}

// UserService exposes development-only account operations.
type UserService interface {
	ListUsers(ctx context.Context) ([]models.UserWithProfile, error)
	// VerifyUser stands in for the external moderation step.
	VerifyUser(ctx context.Context, userID string) (models.User, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// SeedService fills an empty database with demo data.
type SeedService interface {
	Seed(ctx context.Context, users int) (models.SeedReport, error)
}

// InitDataVerifier authenticates raw init data.
type InitDataVerifier interface {
	Verify(raw string) (models.IdentityClaim, error)
}
