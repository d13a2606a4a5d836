package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-meet/internal/logger"
	"github.com/MKhiriev/go-meet/models"
)

type interestRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewInterestRepository(db *DB, logger *logger.Logger) InterestRepository {
	logger.Debug().Msg("creating interest repository")
	return &interestRepository{
		db:     db,
		logger: logger,
	}
}

func (r *interestRepository) ListInterests(ctx context.Context) ([]models.Interest, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listInterests)
	if err != nil {
		log.Err(err).Str("func", "*interestRepository.ListInterests").Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	return scanInterests(rows)
}

// EnsureInterests inserts the names that are missing and returns all of them.
func (r *interestRepository) EnsureInterests(ctx context.Context, names []string) ([]models.Interest, error) {
	if len(names) == 0 {
		return []models.Interest{}, nil
	}

	log := logger.FromContext(ctx)

	query, args, err := buildEnsureInterestsQuery(names)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*interestRepository.EnsureInterests").Int("count", len(names)).Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	return scanInterests(rows)
}

type interestRows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}

func scanInterests(rows interestRows) ([]models.Interest, error) {
	interests := make([]models.Interest, 0, 16)
	for rows.Next() {
		var interest models.Interest
		if err := rows.Scan(&interest.ID, &interest.Name); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		interests = append(interests, interest)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return interests, nil
}
