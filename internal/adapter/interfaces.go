// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client side of the go-meet HTTP API.
//
// [ServerAdapter] is used by the development client to act as a mini-app
// user: it signs in with init data, browses the feed and sends or answers
// connection requests. Status codes are mapped to the sentinel errors in
// errors.go so callers can use [errors.Is] (e.g. [ErrConflict] for 409).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-meet/models"
)

// ServerAdapter talks to a go-meet server on behalf of one user.
type ServerAdapter interface {
	// SetToken stores the bearer token attached to subsequent requests.
	SetToken(token string)

	// Token returns the stored bearer token or an empty string.
	Token() string

	// Login exchanges signed init data for a session. The bearer token from
	// the response is stored via SetToken.
	Login(ctx context.Context, initData string) (models.LoginResult, error)

	// Feed returns the profiles visible to filter.ViewerID.
	Feed(ctx context.Context, filter models.FeedFilter) ([]models.Profile, error)

	// Profile returns the profile owned by userID.
	Profile(ctx context.Context, userID string) (models.Profile, error)

	// Connect sends a connection request.
	Connect(ctx context.Context, req models.CreateConnectionRequest) (models.Connection, error)

	// Incoming lists pending requests addressed to userID, newest first.
	Incoming(ctx context.Context, userID string) ([]models.IncomingConnection, error)

	// Respond accepts or rejects the pending request connectionID.
	Respond(ctx context.Context, connectionID int64, req models.RespondConnectionRequest) (models.Connection, error)

	// Interests returns the interest catalogue.
	Interests(ctx context.Context) ([]models.Interest, error)

	// Version returns the server version string.
	Version(ctx context.Context) (string, error)

	// Users lists every account. Only available on development servers.
	Users(ctx context.Context) ([]models.UserWithProfile, error)

	// VerifyUser marks userID VERIFIED. Only available on development servers.
	VerifyUser(ctx context.Context, userID string) (models.User, error)
}
