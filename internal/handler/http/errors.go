// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors used by the identity middleware and request decoding.
// Callers can match against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned when a token is required but
	// the request carries no "Authorization" header.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header cannot be split into a scheme and a token.
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrEmptyToken is returned when the "Authorization" header contains the
	// scheme prefix but the token value itself is an empty string.
	ErrEmptyToken = errors.New("empty token in `Authorization` header")

	// ErrIdentityMismatch is returned when the bearer token belongs to a
	// different user than the one the request acts for.
	ErrIdentityMismatch = errors.New("token does not belong to the acting user")

	errInvalidJSON         = errors.New("invalid JSON was passed")
	errInvalidConnectionID = errors.New("invalid connection id")
	errInvalidQuery        = errors.New("invalid query parameter")
	errInvalidForm         = errors.New("invalid multipart form")
)

func missingParam(name string) error {
	return errors.New(name + " is required")
}
