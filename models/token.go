package models

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// Token wraps a JWT token with convenience accessors for authentication flows.
//
// It embeds [jwt.Token] for low-level token operations (signing, parsing)
// and [jwt.RegisteredClaims] for standard claim access (subject, expiry, etc.).
//
// UserID is a cached copy of the "sub" (subject) claim.
type Token struct {
	*jwt.Token `json:"-"`

	jwt.RegisteredClaims

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`

	// UserID is the owner identifier extracted from the "sub" claim.
	UserID string `json:"-"`
}

// GetUserID returns the user identifier stored in the "sub" claim.
func (t *Token) GetUserID() (string, error) {
	userID, err := t.GetSubject()
	if err != nil {
		return "", fmt.Errorf("error extracting UserID from token: %w", err)
	}
	if userID == "" {
		return "", errors.New("empty subject")
	}

	return userID, nil
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
