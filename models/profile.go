// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"fmt"
	"io"
	"time"
)

// DefaultPhotoURL is stored for profiles created without a photo.
const DefaultPhotoURL = "default.jpg"

// DateLayout is the wire and storage layout of a birth date.
const DateLayout = "2006-01-02"

// Profile is the public card of a user. A user has at most one profile.
type Profile struct {
	ID        int64      `json:"id"`
	UserID    string     `json:"userId"`
	Name      string     `json:"name"`
	BirthDate Date       `json:"birthDate"`
	City      string     `json:"city"`
	About     string     `json:"about"`
	PhotoURL  string     `json:"photoUrl"`
	Interests []Interest `json:"interests"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`

	// Owner is filled for single-profile reads and for the feed.
	Owner *ProfileOwner `json:"user,omitempty"`
}

// Age returns the number of full years between the birth date and now.
func (p Profile) Age(now time.Time) int {
	return p.BirthDate.Age(now)
}

// ProfileOwner is the subset of the owning user shown next to a profile.
type ProfileOwner struct {
	ID         string     `json:"id"`
	Username   *string    `json:"username"`
	TelegramID TelegramID `json:"telegramId"`
	Status     UserStatus `json:"status"`
}

// ProfileData is the input of a profile create or update.
type ProfileData struct {
	UserID    string `json:"userId"`
	Name      string `json:"name"`
	BirthDate string `json:"birthDate"`
	City      string `json:"city"`
	About     string `json:"about"`

	// InterestIDs replaces the interest set when non-nil.
	// An empty non-nil slice clears it.
	InterestIDs []int64 `json:"interestIds"`
}

// Photo is an uploaded image waiting to be persisted.
type Photo struct {
	Filename    string
	ContentType string
	Size        int64
	Content     io.Reader
}

// Date is a calendar date without time of day, encoded as YYYY-MM-DD.
type Date struct {
	time.Time
}

// NewDate truncates t to its UTC calendar date.
func NewDate(t time.Time) Date {
	y, m, d := t.UTC().Date()
	return Date{Time: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses a YYYY-MM-DD string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return NewDate(t), nil
}

// String formats the date as YYYY-MM-DD.
func (d Date) String() string {
	return d.Format(DateLayout)
}

// Age returns the number of full years elapsed from d to now.
func (d Date) Age(now time.Time) int {
	today := NewDate(now)
	age := today.Year() - d.Year()
	if today.Month() < d.Month() || (today.Month() == d.Month() && today.Day() < d.Day()) {
		age--
	}
	return age
}

// MarshalJSON encodes the date as "YYYY-MM-DD".
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON decodes a "YYYY-MM-DD" string.
func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
