package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-meet/internal/logger"
	"github.com/MKhiriev/go-meet/models"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// UpsertUser is a single INSERT ... ON CONFLICT statement, so concurrent
// sign-ins of the same Telegram account converge on one row.
func (r *userRepository) UpsertUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, upsertUser, user.ID, user.TelegramID, user.Username)

	saved, err := scanUser(row)
	if err != nil {
		log.Err(err).
			Str("func", "*userRepository.UpsertUser").
			Str("telegram_id", user.TelegramID.String()).
			Msg("error upserting user")
		return models.User{}, r.db.mapError(err)
	}

	return saved, nil
}

func (r *userRepository) FindUserByID(ctx context.Context, userID string) (models.User, error) {
	log := logger.FromContext(ctx)

	user, err := scanUser(r.db.QueryRowContext(ctx, findUserByID, userID))
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindUserByID").Str("user_id", userID).Msg("error finding user")
		return models.User{}, r.db.mapError(err)
	}

	return user, nil
}

func (r *userRepository) SetUserStatus(ctx context.Context, userID string, status models.UserStatus) (models.User, error) {
	log := logger.FromContext(ctx)

	user, err := scanUser(r.db.QueryRowContext(ctx, setUserStatus, userID, status))
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*userRepository.SetUserStatus").Str("user_id", userID).Msg("error updating user status")
		return models.User{}, r.db.mapError(err)
	}

	return user, nil
}

// ListUsersWithProfiles returns every user in creation order together with
// their profile and its interests.
func (r *userRepository) ListUsersWithProfiles(ctx context.Context) ([]models.UserWithProfile, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listUsersWithProfiles)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.ListUsersWithProfiles").Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	result := make([]models.UserWithProfile, 0)
	profiles := make([]*models.Profile, 0)
	for rows.Next() {
		var (
			item    models.UserWithProfile
			profile nullableProfile
		)
		err = rows.Scan(
			&item.ID, &item.TelegramID, &item.Username, &item.Status, &item.CreatedAt, &item.UpdatedAt,
			&profile.ID, &profile.Name, &profile.BirthDate, &profile.City, &profile.About, &profile.PhotoURL, &profile.CreatedAt, &profile.UpdatedAt,
		)
		if err != nil {
			log.Err(err).Str("func", "*userRepository.ListUsersWithProfiles").Msg("failed to scan row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}

		item.Profile = profile.toProfile(item.ID)
		if item.Profile != nil {
			item.Profile.Owner = ownerOf(item.User)
			profiles = append(profiles, item.Profile)
		}
		result = append(result, item)
	}
	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.ListUsersWithProfiles").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	if err = loadInterests(ctx, r.db, profiles...); err != nil {
		return nil, err
	}

	return result, nil
}

func scanUser(row *sql.Row) (models.User, error) {
	var user models.User
	err := row.Scan(&user.ID, &user.TelegramID, &user.Username, &user.Status, &user.CreatedAt, &user.UpdatedAt)
	return user, err
}

func ownerOf(user models.User) *models.ProfileOwner {
	return &models.ProfileOwner{
		ID:         user.ID,
		Username:   user.Username,
		TelegramID: user.TelegramID,
		Status:     user.Status,
	}
}
