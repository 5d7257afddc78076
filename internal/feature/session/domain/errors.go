// Package domain defines domain-level errors for the session feature.
package domain

import "errors"

var (
	// ErrEmptyToken is returned when a login carries no token.
	ErrEmptyToken = errors.New("empty session token")

	// ErrSessionNotFound is returned when no session exists for a token.
	ErrSessionNotFound = errors.New("session not found")

	// ErrSessionExpired is returned when a token's session or exp claim has lapsed.
	ErrSessionExpired = errors.New("session has expired")
)
