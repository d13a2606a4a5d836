package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-meet/internal/logger"
	"github.com/MKhiriev/go-meet/internal/store"
	"github.com/MKhiriev/go-meet/models"
)

// connectionService manages connection requests. Races between concurrent
// requests are settled by the store: the pair index for creation and the
// pending-only update for responses.
type connectionService struct {
	connectionRepository store.ConnectionRepository
	logger               *logger.Logger
}

func NewConnectionService(connections store.ConnectionRepository, logger *logger.Logger) ConnectionService {
	return &connectionService{
		connectionRepository: connections,
		logger:               logger,
	}
}

// Create stores a PENDING request from requester to receiver.
// A request in either direction between the pair yields ErrConnectionExists.
func (s *connectionService) Create(ctx context.Context, request models.CreateConnectionRequest) (models.Connection, error) {
	log := logger.FromContext(ctx)

	connection, err := s.connectionRepository.CreateConnection(ctx, request.RequesterID, request.ReceiverID)
	if err != nil {
		log.Err(err).
			Str("func", "*connectionService.Create").
			Str("requester_id", request.RequesterID).
			Str("receiver_id", request.ReceiverID).
			Msg("connection request failed")
		return models.Connection{}, fmt.Errorf("connection request failed: %w", fromStoreError(err))
	}

	log.Info().Int64("connection_id", connection.ID).Msg("connection request created")
	return connection, nil
}

// Respond resolves a pending request addressed to request.CurrentUserID.
// Requests addressed to someone else are reported as not found.
func (s *connectionService) Respond(ctx context.Context, connectionID int64, request models.RespondConnectionRequest) (models.Connection, error) {
	log := logger.FromContext(ctx)

	connection, err := s.connectionRepository.RespondToConnection(ctx, connectionID, request.CurrentUserID, request.Status)
	if err != nil {
		log.Err(err).
			Str("func", "*connectionService.Respond").
			Int64("connection_id", connectionID).
			Str("user_id", request.CurrentUserID).
			Msg("connection response failed")
		return models.Connection{}, fmt.Errorf("connection response failed: %w", fromStoreError(err))
	}

	log.Info().Int64("connection_id", connection.ID).Str("status", string(connection.Status)).Msg("connection resolved")
	return connection, nil
}

func (s *connectionService) ListIncoming(ctx context.Context, userID string) ([]models.IncomingConnection, error) {
	incoming, err := s.connectionRepository.ListIncoming(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("listing incoming connections failed: %w", fromStoreError(err))
	}
	return incoming, nil
}
