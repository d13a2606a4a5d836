// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-meet/internal/logger"
	"github.com/MKhiriev/go-meet/models"
)

// connectionRepository is the PostgreSQL-backed implementation of [ConnectionRepository].
//
// Uniqueness of an unordered pair is enforced by the connections_pair_key
// index, so two racing requests for the same pair cannot both succeed.
type connectionRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewConnectionRepository(db *DB, logger *logger.Logger) ConnectionRepository {
	logger.Debug().Msg("creating connection repository")
	return &connectionRepository{
		db:     db,
		logger: logger,
	}
}

func (r *connectionRepository) CreateConnection(ctx context.Context, requesterID, receiverID string) (models.Connection, error) {
	log := logger.FromContext(ctx)

	connection, err := scanConnection(r.db.QueryRowContext(ctx, createConnection, requesterID, receiverID))
	if err != nil {
		log.Err(err).
			Str("func", "*connectionRepository.CreateConnection").
			Str("requester_id", requesterID).
			Str("receiver_id", receiverID).
			Msg("error creating connection")

		if r.db.errorClassificator.Classify(err) == UniqueConflict {
			return models.Connection{}, fmt.Errorf("%w: %w", ErrConnectionAlreadyExists, err)
		}
		return models.Connection{}, r.db.mapError(err)
	}

	return connection, nil
}

// RespondToConnection only touches rows that are still pending. When nothing
// was updated a second lookup tells a missing connection from a resolved one.
func (r *connectionRepository) RespondToConnection(ctx context.Context, connectionID int64, receiverID string, status models.ConnectionStatus) (models.Connection, error) {
	log := logger.FromContext(ctx)

	connection, err := scanConnection(r.db.QueryRowContext(ctx, respondToConnection, connectionID, receiverID, string(status)))
	if err == nil {
		return connection, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		log.Err(err).
			Str("func", "*connectionRepository.RespondToConnection").
			Int64("connection_id", connectionID).
			Msg("error updating connection")
		return models.Connection{}, r.db.mapError(err)
	}

	var current models.ConnectionStatus
	err = r.db.QueryRowContext(ctx, findConnectionStatus, connectionID, receiverID).Scan(&current)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Connection{}, ErrConnectionNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "*connectionRepository.RespondToConnection").
			Int64("connection_id", connectionID).
			Msg("error reading connection status")
		return models.Connection{}, r.db.mapError(err)
	}

	log.Debug().
		Int64("connection_id", connectionID).
		Str("status", string(current)).
		Msg("connection is not pending")
	return models.Connection{}, ErrConnectionAlreadyResolved
}

func (r *connectionRepository) ListIncoming(ctx context.Context, receiverID string) ([]models.IncomingConnection, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildIncomingConnectionsQuery(receiverID)
	if err != nil {
		log.Err(err).Str("func", "*connectionRepository.ListIncoming").Msg("failed to create query")
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*connectionRepository.ListIncoming").Str("receiver_id", receiverID).Msg("failed to execute query")
		return nil, r.db.mapError(err)
	}
	defer rows.Close()

	incoming := make([]models.IncomingConnection, 0, 8)
	for rows.Next() {
		var (
			item    models.IncomingConnection
			profile nullableProfile
		)
		err = rows.Scan(
			&item.ID, &item.RequesterID, &item.ReceiverID, &item.Status, &item.CreatedAt, &item.UpdatedAt,
			&item.Requester.ID, &item.Requester.Username, &item.Requester.TelegramID, &item.Requester.Status,
			&profile.ID, &profile.Name, &profile.BirthDate, &profile.City, &profile.About, &profile.PhotoURL,
			&profile.CreatedAt, &profile.UpdatedAt,
		)
		if err != nil {
			log.Err(err).Str("func", "*connectionRepository.ListIncoming").Msg("failed to scan row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}

		item.Requester.Profile = profile.toProfile(item.RequesterID)
		item.Requester.ProfileAvailable = item.Requester.Profile != nil
		incoming = append(incoming, item)
	}
	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*connectionRepository.ListIncoming").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	profiles := make([]*models.Profile, 0, len(incoming))
	for i := range incoming {
		if p := incoming[i].Requester.Profile; p != nil {
			profiles = append(profiles, p)
		}
	}
	if err = loadInterests(ctx, r.db, profiles...); err != nil {
		return nil, err
	}

	return incoming, nil
}

func scanConnection(row rowScanner) (models.Connection, error) {
	var c models.Connection
	err := row.Scan(&c.ID, &c.RequesterID, &c.ReceiverID, &c.Status, &c.CreatedAt, &c.UpdatedAt)
	return c, err
}
