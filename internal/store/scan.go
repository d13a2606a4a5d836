package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MKhiriev/go-meet/internal/logger"
	"github.com/MKhiriev/go-meet/models"
)

// mapError translates a driver error into a package sentinel using the
// configured classifier. Unrecognised errors are wrapped in ErrExecutingQuery.
func (db *DB) mapError(err error) error {
	classificator := db.errorClassificator
	if classificator == nil {
		classificator = NewPostgresErrorClassifier()
	}

	switch classificator.Classify(err) {
	case MissingReference:
		return fmt.Errorf("%w: %w", ErrUserNotFound, err)
	case InvalidData:
		return fmt.Errorf("%w: %w", ErrInvalidData, err)
	default:
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
}

// nullableProfile receives the profile columns of a LEFT JOIN.
type nullableProfile struct {
	ID        sql.NullInt64
	Name      sql.NullString
	BirthDate sql.NullTime
	City      sql.NullString
	About     sql.NullString
	PhotoURL  sql.NullString
	CreatedAt sql.NullTime
	UpdatedAt sql.NullTime
}

// toProfile returns nil when the joined row had no profile.
func (p nullableProfile) toProfile(userID string) *models.Profile {
	if !p.ID.Valid {
		return nil
	}

	return &models.Profile{
		ID:        p.ID.Int64,
		UserID:    userID,
		Name:      p.Name.String,
		BirthDate: models.NewDate(p.BirthDate.Time),
		City:      p.City.String,
		About:     p.About.String,
		PhotoURL:  p.PhotoURL.String,
		Interests: []models.Interest{},
		CreatedAt: p.CreatedAt.Time,
		UpdatedAt: p.UpdatedAt.Time,
	}
}

// loadInterests fills Interests of every profile with a single query.
func loadInterests(ctx context.Context, q DBTX, profiles ...*models.Profile) error {
	if len(profiles) == 0 {
		return nil
	}

	log := logger.FromContext(ctx)

	byID := make(map[int64]*models.Profile, len(profiles))
	ids := make([]int64, 0, len(profiles))
	for _, p := range profiles {
		p.Interests = []models.Interest{}
		byID[p.ID] = p
		ids = append(ids, p.ID)
	}

	query, args, err := buildProfileInterestsQuery(ids)
	if err != nil {
		return err
	}

	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "loadInterests").Int("profiles", len(ids)).Msg("failed to execute query")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			profileID int64
			interest  models.Interest
		)
		if err = rows.Scan(&profileID, &interest.ID, &interest.Name); err != nil {
			log.Err(err).Str("func", "loadInterests").Msg("failed to scan row")
			return fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		if p, ok := byID[profileID]; ok {
			p.Interests = append(p.Interests, interest)
		}
	}
	if err = rows.Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return nil
}
