package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidUserID      = errors.New("invalid user id")
	ErrInvalidRequesterID = errors.New("invalid requester id")
	ErrInvalidReceiverID  = errors.New("invalid receiver id")
	ErrSelfConnection     = errors.New("cannot send a connection request to yourself")
	ErrInvalidStatus      = errors.New("status must be ACCEPTED or REJECTED")

	ErrEmptyName         = errors.New("name is required")
	ErrNameTooLong       = errors.New("name is too long")
	ErrInvalidBirthDate  = errors.New("birth date must be a valid YYYY-MM-DD date")
	ErrBirthDateInFuture = errors.New("birth date is in the future")
	ErrEmptyCity         = errors.New("city is required")
	ErrCityTooLong       = errors.New("city is too long")
	ErrEmptyAbout        = errors.New("about is required")
	ErrAboutTooLong      = errors.New("about is too long")
	ErrInvalidInterestID = errors.New("interest ids must be positive integers")

	ErrInvalidAge      = errors.New("age must be a non-negative integer")
	ErrInvalidAgeRange = errors.New("ageFrom must not exceed ageTo")
)
