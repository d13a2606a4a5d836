// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"strconv"
	"time"
)

// UserStatus is the moderation state of an account.
type UserStatus string

const (
	// UserStatusPendingVerification is assigned to every new account.
	UserStatusPendingVerification UserStatus = "PENDING_VERIFICATION"
	// UserStatusVerified is set by an external moderation step.
	// Only verified users are visible in the feed.
	UserStatusVerified UserStatus = "VERIFIED"
)

// Valid reports whether s is a known status.
func (s UserStatus) Valid() bool {
	return s == UserStatusPendingVerification || s == UserStatusVerified
}

// User is an account created on the first successful sign-in.
type User struct {
	// ID is a server-assigned UUID. It never changes once created.
	ID string `json:"id"`

	// TelegramID is the platform identity the account is bound to.
	// Exactly one account exists per TelegramID.
	TelegramID TelegramID `json:"telegramId"`

	// Username is the optional platform handle.
	Username *string `json:"username"`

	Status    UserStatus `json:"status"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// UserWithProfile is a user together with its profile, if any.
// Used by the development user listing.
type UserWithProfile struct {
	User
	Profile *Profile `json:"profile"`
}

// TelegramID is a 64-bit platform user identifier.
//
// Values may exceed 2^53, so it is encoded in JSON as a decimal string.
// Decoding accepts both a string and a bare JSON number; the latter is how
// the platform itself sends it inside the signed user payload.
type TelegramID int64

// String returns the decimal representation of the id.
func (id TelegramID) String() string {
	return strconv.FormatInt(int64(id), 10)
}

// MarshalJSON encodes the id as a JSON string.
func (id TelegramID) MarshalJSON() ([]byte, error) {
	return json.Marshal(id.String())
}

// UnmarshalJSON decodes the id from a JSON number or string
// without passing through float64.
func (id *TelegramID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	if len(data) > 1 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		data = []byte(s)
	}

	v, err := strconv.ParseInt(string(data), 10, 64)
	if err != nil {
		return errors.New("telegram id must be a 64-bit integer")
	}
	*id = TelegramID(v)
	return nil
}
