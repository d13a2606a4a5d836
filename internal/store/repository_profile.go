// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-meet/internal/logger"
	"github.com/MKhiriev/go-meet/models"
)

// profileRepository is the PostgreSQL-backed implementation of [ProfileRepository].
type profileRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewProfileRepository(db *DB, logger *logger.Logger) ProfileRepository {
	logger.Debug().Msg("creating profile repository")
	return &profileRepository{
		db:     db,
		logger: logger,
	}
}

// UpsertProfile writes the profile row and, when interestIDs is non-nil,
// replaces its interest set in the same transaction.
func (r *profileRepository) UpsertProfile(ctx context.Context, profile models.Profile, interestIDs []int64) (models.Profile, error) {
	log := logger.FromContext(ctx)

	var saved models.Profile
	err := WithTx(ctx, r.db.DB, nil, func(ctx context.Context, tx DBTX) error {
		row := tx.QueryRowContext(ctx, upsertProfile,
			profile.UserID, profile.Name, profile.BirthDate.String(), profile.City, profile.About, profile.PhotoURL)

		var err error
		saved, err = scanProfile(row)
		if err != nil {
			if r.db.errorClassificator.Classify(err) == MissingReference {
				return fmt.Errorf("%w: %w", ErrUserNotFound, err)
			}
			return r.db.mapError(err)
		}

		if interestIDs != nil {
			if err = replaceInterests(ctx, tx, r.db, saved.ID, interestIDs); err != nil {
				return err
			}
		}

		return loadInterests(ctx, tx, &saved)
	})
	if err != nil {
		log.Err(err).
			Str("func", "*profileRepository.UpsertProfile").
			Str("user_id", profile.UserID).
			Msg("error saving profile")
		return models.Profile{}, err
	}

	return saved, nil
}

func replaceInterests(ctx context.Context, tx DBTX, db *DB, profileID int64, interestIDs []int64) error {
	if _, err := tx.ExecContext(ctx, deleteProfileInterests, profileID); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if len(interestIDs) == 0 {
		return nil
	}

	query, args, err := buildInsertProfileInterestsQuery(profileID, interestIDs)
	if err != nil {
		return err
	}
	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		if db.errorClassificator.Classify(err) == MissingReference {
			return fmt.Errorf("%w: %w", ErrUnknownInterest, err)
		}
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

func (r *profileRepository) GetProfileByUserID(ctx context.Context, userID string) (models.Profile, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, getProfileByUserID, userID)
	profile, err := scanProfileWithOwner(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Profile{}, ErrProfileNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*profileRepository.GetProfileByUserID").Str("user_id", userID).Msg("error reading profile")
		return models.Profile{}, r.db.mapError(err)
	}

	if err = loadInterests(ctx, r.db, &profile); err != nil {
		return models.Profile{}, err
	}

	return profile, nil
}

// FindProfiles returns the feed ordered newest first.
func (r *profileRepository) FindProfiles(ctx context.Context, filter models.FeedFilter, today time.Time) ([]models.Profile, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFeedQuery(filter, today)
	if err != nil {
		log.Err(err).Str("func", "*profileRepository.FindProfiles").Msg("failed to create query")
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*profileRepository.FindProfiles").
			Str("viewer_id", filter.ViewerID).
			Msg("failed to execute feed query")
		return nil, r.db.mapError(err)
	}
	defer rows.Close()

	profiles := make([]models.Profile, 0, 32)
	for rows.Next() {
		profile, scanErr := scanProfileWithOwner(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "*profileRepository.FindProfiles").Msg("failed to scan profile row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		profiles = append(profiles, profile)
	}
	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*profileRepository.FindProfiles").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	refs := make([]*models.Profile, len(profiles))
	for i := range profiles {
		refs[i] = &profiles[i]
	}
	if err = loadInterests(ctx, r.db, refs...); err != nil {
		return nil, err
	}

	return profiles, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProfile(row rowScanner) (models.Profile, error) {
	var p models.Profile
	err := row.Scan(&p.ID, &p.UserID, &p.Name, &p.BirthDate.Time, &p.City, &p.About, &p.PhotoURL, &p.CreatedAt, &p.UpdatedAt)
	p.BirthDate = models.NewDate(p.BirthDate.Time)
	return p, err
}

func scanProfileWithOwner(row rowScanner) (models.Profile, error) {
	var (
		p     models.Profile
		owner models.ProfileOwner
	)
	err := row.Scan(
		&p.ID, &p.UserID, &p.Name, &p.BirthDate.Time, &p.City, &p.About, &p.PhotoURL, &p.CreatedAt, &p.UpdatedAt,
		&owner.ID, &owner.Username, &owner.TelegramID, &owner.Status,
	)
	p.BirthDate = models.NewDate(p.BirthDate.Time)
	p.Owner = &owner
	return p, err
}
