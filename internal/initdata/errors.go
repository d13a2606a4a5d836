package initdata

import "errors"

var (
	ErrMalformed        = errors.New("malformed init data")
	ErrMissingHash      = errors.New("missing hash")
	ErrInvalidSignature = errors.New("invalid signature")
	ErrExpired          = errors.New("init data expired")
)
