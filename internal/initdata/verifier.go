// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package initdata

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/MKhiriev/go-meet/internal/utils"
	"github.com/MKhiriev/go-meet/models"
)

// Verifier checks init data signatures for one bot.
// It is stateless and safe for concurrent use.
type Verifier struct {
	botToken      string
	secret        []byte
	skipSignature bool
	maxAge        time.Duration
	now           func() time.Time
}

// Option configures a Verifier.
type Option func(*Verifier)

// WithSkipSignature disables the signature check. Only for local development.
func WithSkipSignature(skip bool) Option {
	return func(v *Verifier) {
		v.skipSignature = skip
	}
}

// WithMaxAge rejects payloads whose auth_date is older than maxAge.
// Zero disables the check.
func WithMaxAge(maxAge time.Duration) Option {
	return func(v *Verifier) {
		v.maxAge = maxAge
	}
}

// WithClock overrides the time source used by the max-age check.
func WithClock(now func() time.Time) Option {
	return func(v *Verifier) {
		v.now = now
	}
}

func NewVerifier(botToken string, opts ...Option) *Verifier {
	v := &Verifier{
		botToken: botToken,
		secret:   secretKey(botToken),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Verify authenticates raw and returns the identity claim it carries.
//
// Errors wrap ErrMalformed, ErrMissingHash, ErrInvalidSignature or ErrExpired.
func (v *Verifier) Verify(raw string) (models.IdentityClaim, error) {
	fields, err := Parse(raw)
	if err != nil {
		return models.IdentityClaim{}, err
	}

	if !v.skipSignature {
		hash, ok := fields[KeyHash]
		if !ok || hash == "" {
			return models.IdentityClaim{}, ErrMissingHash
		}

		expected := utils.HMACSHA256Hex(v.secret, []byte(CheckString(fields)))
		if !utils.EqualDigest(expected, hash) {
			return models.IdentityClaim{}, ErrInvalidSignature
		}
	}

	if err = v.checkAge(fields); err != nil {
		return models.IdentityClaim{}, err
	}

	return decodeUser(fields)
}

func (v *Verifier) checkAge(fields Fields) error {
	if v.maxAge <= 0 {
		return nil
	}

	authDate, err := strconv.ParseInt(fields[KeyAuthDate], 10, 64)
	if err != nil {
		return fmt.Errorf("%w: no valid auth_date", ErrExpired)
	}
	if v.now().Sub(time.Unix(authDate, 0)) > v.maxAge {
		return ErrExpired
	}
	return nil
}

func decodeUser(fields Fields) (models.IdentityClaim, error) {
	rawUser, ok := fields[KeyUser]
	if !ok {
		return models.IdentityClaim{}, fmt.Errorf("%w: no user field", ErrMalformed)
	}

	var claim models.IdentityClaim
	if err := json.Unmarshal([]byte(rawUser), &claim); err != nil {
		return models.IdentityClaim{}, fmt.Errorf("%w: user is not valid JSON: %w", ErrMalformed, err)
	}
	if claim.ID == 0 {
		return models.IdentityClaim{}, fmt.Errorf("%w: user has no id", ErrMalformed)
	}

	return claim, nil
}
