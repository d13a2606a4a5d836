package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-meet/internal/validators"
	"github.com/MKhiriev/go-meet/models"
)

// ProfileValidationService rejects malformed input before it reaches the
// wrapped ProfileService.
type ProfileValidationService struct {
	inner     ProfileService
	validator validators.Validator
}

func NewProfileValidationService(now func() time.Time) ProfileServiceWrapper {
	return &ProfileValidationService{
		validator: validators.NewDomainValidator(now),
	}
}

func (v *ProfileValidationService) SaveProfile(ctx context.Context, data models.ProfileData, photo *models.Photo) (models.Profile, error) {
	if err := v.validator.Validate(ctx, data); err != nil {
		return models.Profile{}, fmt.Errorf("profile validation failed: %w", validationError(err))
	}

	return v.inner.SaveProfile(ctx, data, photo)
}

func (v *ProfileValidationService) GetProfile(ctx context.Context, userID string) (models.Profile, error) {
	if err := v.validator.Validate(ctx, models.ProfileData{UserID: userID}, validators.FieldUserID); err != nil {
		return models.Profile{}, validationError(err)
	}

	return v.inner.GetProfile(ctx, userID)
}

func (v *ProfileValidationService) Feed(ctx context.Context, filter models.FeedFilter) ([]models.Profile, error) {
	if err := v.validator.Validate(ctx, filter); err != nil {
		return nil, fmt.Errorf("feed filter validation failed: %w", validationError(err))
	}

	return v.inner.Feed(ctx, filter)
}

func (v *ProfileValidationService) Wrap(inner ProfileService) ProfileService {
	v.inner = inner
	return v
}
