package adapter

import "errors"

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrPayloadTooLarge     = errors.New("payload too large")
	ErrInternalServerError = errors.New("internal server error")
)
