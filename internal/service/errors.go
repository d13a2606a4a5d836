package service

import (
	"errors"

	"github.com/MKhiriev/go-meet/internal/store"
)

// Error categories. Every error returned by a service either wraps one of
// them or is an internal failure.
var (
	ErrAuthentication = errors.New("authentication failed")
	ErrValidation     = errors.New("validation failed")
	ErrNotFound       = errors.New("not found")
	ErrConflict       = errors.New("conflict")
)

var (
	ErrVersionIsNotSpecified = errors.New("app version is not specified")
	ErrTokenCreationFailed   = errors.New("token creation failed")
	ErrNoBotToken            = errors.New("bot token is not specified")

	ErrTokenIsExpiredOrInvalid = newError(ErrAuthentication, "token is expired or invalid", nil)
	ErrEmptyInitData           = newError(ErrValidation, "initData is required", nil)
	ErrUnknownUser             = newError(ErrNotFound, "unknown user", nil)
	ErrProfileNotFound         = newError(ErrNotFound, "profile not found", nil)
	ErrConnectionNotFound      = newError(ErrNotFound, "connection not found", nil)
	ErrConnectionExists        = newError(ErrConflict, "connection already exists", nil)
	ErrConnectionResolved      = newError(ErrConflict, "connection already resolved", nil)
)

// Error is a categorized failure. Its message is safe to show to clients.
type Error struct {
	// Kind is one of the category errors.
	Kind error
	// Reason is the client-facing message.
	Reason string
	// Err is the underlying cause, if any.
	Err error
}

func newError(kind error, reason string, err error) *Error {
	return &Error{Kind: kind, Reason: reason, Err: err}
}

func (e *Error) Error() string {
	return e.Reason
}

func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// Is makes errors created from the same template match each other.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind && t.Reason == e.Reason
}

func withCause(template *Error, cause error) *Error {
	return newError(template.Kind, template.Reason, cause)
}

func validationError(err error) *Error {
	return newError(ErrValidation, err.Error(), err)
}

// fromStoreError converts repository sentinels into categorized errors.
// Anything else is returned unchanged and treated as internal.
func fromStoreError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, store.ErrUserNotFound):
		return withCause(ErrUnknownUser, err)
	case errors.Is(err, store.ErrProfileNotFound):
		return withCause(ErrProfileNotFound, err)
	case errors.Is(err, store.ErrConnectionNotFound):
		return withCause(ErrConnectionNotFound, err)
	case errors.Is(err, store.ErrConnectionAlreadyExists):
		return withCause(ErrConnectionExists, err)
	case errors.Is(err, store.ErrConnectionAlreadyResolved):
		return withCause(ErrConnectionResolved, err)
	case errors.Is(err, store.ErrUnknownInterest):
		return newError(ErrValidation, "unknown interest", err)
	case errors.Is(err, store.ErrUnsupportedPhoto):
		return newError(ErrValidation, "unsupported photo: allowed types are jpg, jpeg, png, gif, webp up to 10 MiB", err)
	case errors.Is(err, store.ErrInvalidData):
		return newError(ErrValidation, "invalid data", err)
	default:
		return err
	}
}
