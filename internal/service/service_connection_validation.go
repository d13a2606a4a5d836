package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-meet/internal/validators"
	"github.com/MKhiriev/go-meet/models"
)

var errInvalidConnectionID = errors.New("invalid connection id")

// ConnectionValidationService rejects malformed input before it reaches the
// wrapped ConnectionService, so self requests never touch storage.
type ConnectionValidationService struct {
	inner     ConnectionService
	validator validators.Validator
}

func NewConnectionValidationService() ConnectionServiceWrapper {
	return &ConnectionValidationService{
		validator: validators.NewDomainValidator(nil),
	}
}

func (v *ConnectionValidationService) Create(ctx context.Context, request models.CreateConnectionRequest) (models.Connection, error) {
	if err := v.validator.Validate(ctx, request); err != nil {
		return models.Connection{}, fmt.Errorf("connection request validation failed: %w", validationError(err))
	}

	return v.inner.Create(ctx, request)
}

func (v *ConnectionValidationService) Respond(ctx context.Context, connectionID int64, request models.RespondConnectionRequest) (models.Connection, error) {
	if connectionID <= 0 {
		return models.Connection{}, validationError(errInvalidConnectionID)
	}
	if err := v.validator.Validate(ctx, request); err != nil {
		return models.Connection{}, fmt.Errorf("connection response validation failed: %w", validationError(err))
	}

	return v.inner.Respond(ctx, connectionID, request)
}

func (v *ConnectionValidationService) ListIncoming(ctx context.Context, userID string) ([]models.IncomingConnection, error) {
	if err := v.validator.Validate(ctx, models.RespondConnectionRequest{CurrentUserID: userID}, validators.FieldUserID); err != nil {
		return nil, validationError(err)
	}

	return v.inner.ListIncoming(ctx, userID)
}

func (v *ConnectionValidationService) Wrap(inner ConnectionService) ConnectionService {
	v.inner = inner
	return v
}
