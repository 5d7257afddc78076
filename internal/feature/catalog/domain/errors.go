// Package domain defines domain-level errors for the catalog feature.
package domain

import "errors"

var (
	// ErrUnknownTier indicates a tier filter other than free, pro or max.
	ErrUnknownTier = errors.New("unknown tier")

	// ErrInvalidSeed indicates the embedded catalog document failed validation.
	ErrInvalidSeed = errors.New("invalid catalog seed")
)
