// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// ConnectionStatus is the lifecycle state of a connection request.
//
// A request starts PENDING and moves to ACCEPTED or REJECTED exactly once.
type ConnectionStatus string

const (
	ConnectionStatusPending  ConnectionStatus = "PENDING"
	ConnectionStatusAccepted ConnectionStatus = "ACCEPTED"
	ConnectionStatusRejected ConnectionStatus = "REJECTED"
)

// IsResponse reports whether s is a valid answer to a pending request.
func (s ConnectionStatus) IsResponse() bool {
	return s == ConnectionStatusAccepted || s == ConnectionStatusRejected
}

// Connection is a directed request from requester to receiver.
// At most one connection exists per unordered pair of users.
type Connection struct {
	ID          int64            `json:"id"`
	RequesterID string           `json:"requesterId"`
	ReceiverID  string           `json:"receiverId"`
	Status      ConnectionStatus `json:"status"`
	CreatedAt   time.Time        `json:"createdAt"`
	UpdatedAt   time.Time        `json:"updatedAt"`
}

// IncomingConnection is a pending request addressed to the viewer,
// enriched with a snapshot of the requester.
type IncomingConnection struct {
	Connection
	Requester RequesterSnapshot `json:"requester"`
}

// RequesterSnapshot describes who sent a request.
//
// Profile is nil and ProfileAvailable is false when the requester
// has no profile.
type RequesterSnapshot struct {
	ID               string     `json:"id"`
	Username         *string    `json:"username"`
	TelegramID       TelegramID `json:"telegramId"`
	Status           UserStatus `json:"status"`
	ProfileAvailable bool       `json:"profileAvailable"`
	Profile          *Profile   `json:"profile"`
}

// CreateConnectionRequest is the body of a new connection request.
type CreateConnectionRequest struct {
	RequesterID string `json:"requesterId"`
	ReceiverID  string `json:"receiverId"`
}

// RespondConnectionRequest is the body of an answer to a pending request.
type RespondConnectionRequest struct {
	Status        ConnectionStatus `json:"status"`
	CurrentUserID string           `json:"currentUserId"`
}

// ConnectionCreatedResponse is returned when a request is created.
type ConnectionCreatedResponse struct {
	Message    string     `json:"message"`
	Connection Connection `json:"connection"`
}
