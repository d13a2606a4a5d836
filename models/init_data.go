// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// IdentityClaim is the user object carried inside verified init data.
type IdentityClaim struct {
	ID           TelegramID `json:"id"`
	Username     *string    `json:"username,omitempty"`
	FirstName    string     `json:"first_name,omitempty"`
	LastName     string     `json:"last_name,omitempty"`
	LanguageCode string     `json:"language_code,omitempty"`
	IsPremium    bool       `json:"is_premium,omitempty"`
	PhotoURL     string     `json:"photo_url,omitempty"`
}

// LoginRequest is the body of the sign-in endpoint.
type LoginRequest struct {
	InitData string `json:"initData"`
}

// LoginResult is returned after a successful sign-in.
// A nil Profile tells the client to start onboarding.
type LoginResult struct {
	User    LoginUser `json:"user"`
	Profile *Profile  `json:"profile"`
}

// LoginUser is the account part of a LoginResult.
type LoginUser struct {
	ID         string     `json:"id"`
	Status     UserStatus `json:"status"`
	TelegramID TelegramID `json:"telegramId"`
}
