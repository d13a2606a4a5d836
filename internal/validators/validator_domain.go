// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/MKhiriev/go-meet/internal/utils"
	"github.com/MKhiriev/go-meet/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	FieldUserID      = "user_id"
	FieldRequesterID = "requester_id"
	FieldReceiverID  = "receiver_id"
	FieldStatus      = "status"
	FieldName        = "name"
	FieldBirthDate   = "birth_date"
	FieldCity        = "city"
	FieldAbout       = "about"
	FieldInterestIDs = "interest_ids"
	FieldAge         = "age"
)

const (
	maxNameLength  = 100
	maxCityLength  = 100
	maxAboutLength = 2000
	maxAge         = 150
)

// DomainValidator validates the inputs of profile, connection and feed
// operations.
type DomainValidator struct {
	now func() time.Time
}

// NewDomainValidator returns a validator; now is used to reject birth dates
// in the future and defaults to time.Now.
func NewDomainValidator(now func() time.Time) Validator {
	if now == nil {
		now = time.Now
	}
	return &DomainValidator{now: now}
}

func (v *DomainValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.ProfileData:
		return v.validateProfileData(value, fields...)
	case *models.ProfileData:
		return v.validateProfileData(*value, fields...)

	case models.CreateConnectionRequest:
		return v.validateCreateConnection(value, fields...)
	case *models.CreateConnectionRequest:
		return v.validateCreateConnection(*value, fields...)

	case models.RespondConnectionRequest:
		return v.validateRespondConnection(value, fields...)
	case *models.RespondConnectionRequest:
		return v.validateRespondConnection(*value, fields...)

	case models.FeedFilter:
		return v.validateFeedFilter(value, fields...)
	case *models.FeedFilter:
		return v.validateFeedFilter(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *DomainValidator) validateProfileData(data models.ProfileData, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUserID, FieldName, FieldBirthDate, FieldCity, FieldAbout, FieldInterestIDs}
	}

	for _, f := range fields {
		switch f {
		case FieldUserID:
			if !utils.IsUUID(data.UserID) {
				return ErrInvalidUserID
			}
		case FieldName:
			if err := checkText(data.Name, maxNameLength, ErrEmptyName, ErrNameTooLong); err != nil {
				return err
			}
		case FieldBirthDate:
			birth, err := models.ParseDate(strings.TrimSpace(data.BirthDate))
			if err != nil {
				return ErrInvalidBirthDate
			}
			if birth.After(models.NewDate(v.now()).Time) {
				return ErrBirthDateInFuture
			}
		case FieldCity:
			if err := checkText(data.City, maxCityLength, ErrEmptyCity, ErrCityTooLong); err != nil {
				return err
			}
		case FieldAbout:
			if err := checkText(data.About, maxAboutLength, ErrEmptyAbout, ErrAboutTooLong); err != nil {
				return err
			}
		case FieldInterestIDs:
			if !positiveIDs(data.InterestIDs) {
				return ErrInvalidInterestID
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *DomainValidator) validateCreateConnection(request models.CreateConnectionRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldRequesterID, FieldReceiverID}
	}

	for _, f := range fields {
		switch f {
		case FieldRequesterID:
			if !utils.IsUUID(request.RequesterID) {
				return ErrInvalidRequesterID
			}
		case FieldReceiverID:
			if !utils.IsUUID(request.ReceiverID) {
				return ErrInvalidReceiverID
			}
			if strings.EqualFold(request.ReceiverID, request.RequesterID) {
				return ErrSelfConnection
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *DomainValidator) validateRespondConnection(request models.RespondConnectionRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldStatus, FieldUserID}
	}

	for _, f := range fields {
		switch f {
		case FieldStatus:
			if !request.Status.IsResponse() {
				return ErrInvalidStatus
			}
		case FieldUserID:
			if !utils.IsUUID(request.CurrentUserID) {
				return ErrInvalidUserID
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *DomainValidator) validateFeedFilter(filter models.FeedFilter, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUserID, FieldAge, FieldInterestIDs}
	}

	for _, f := range fields {
		switch f {
		case FieldUserID:
			if !utils.IsUUID(filter.ViewerID) {
				return ErrInvalidUserID
			}
		case FieldAge:
			if !validAge(filter.AgeFrom) || !validAge(filter.AgeTo) {
				return ErrInvalidAge
			}
			if filter.AgeFrom != nil && filter.AgeTo != nil && *filter.AgeFrom > *filter.AgeTo {
				return ErrInvalidAgeRange
			}
		case FieldInterestIDs:
			if !positiveIDs(filter.InterestIDs) {
				return ErrInvalidInterestID
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func checkText(s string, limit int, errEmpty, errTooLong error) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return errEmpty
	}
	if utf8.RuneCountInString(s) > limit {
		return errTooLong
	}
	return nil
}

func validAge(age *int) bool {
	return age == nil || (*age >= 0 && *age <= maxAge)
}

func positiveIDs(ids []int64) bool {
	for _, id := range ids {
		if id <= 0 {
			return false
		}
	}
	return true
}
