// Package jwtgen mints HS256 tokens for local development. The server never
// verifies them; it only reads their claims when a session is stored.
package jwtgen

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Generator defines the interface for development token generation.
type Generator interface {
	// GenerateToken creates a signed JWT for the given subject.
	GenerateToken(subject, email string) (string, error)
}

// generator implements the Generator interface.
type generator struct {
	secret     []byte
	expiration time.Duration
	now        func() time.Time
}

// NewGenerator creates a new generator with the provided secret and expiration duration.
func NewGenerator(secret string, expiration time.Duration) Generator {
	return &generator{
		secret:     []byte(secret),
		expiration: expiration,
		now:        time.Now,
	}
}

// GenerateToken creates a signed JWT with sub, email, iat and exp claims.
// Email is omitted when empty.
func (g *generator) GenerateToken(subject, email string) (string, error) {
	if subject == "" {
		return "", errors.New("subject is required")
	}

	now := g.now()
	claims := jwt.MapClaims{
		"sub": subject,
		"iat": now.Unix(),
		"exp": now.Add(g.expiration).Unix(),
	}
	if email != "" {
		claims["email"] = email
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(g.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}
