package usecase

import (
	"encoding/hex"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/blake2b"
)

// TokenDigest returns the storage key for a raw session token.
func TokenDigest(token string) string {
	sum := blake2b.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

// tokenClaims holds the display fields of a JWT-shaped token.
type tokenClaims struct {
	Subject   string
	Email     string
	ExpiresAt time.Time // zero when the token carries no exp
}

// readClaims reads claims without verifying the signature.
// Opaque tokens yield zero claims; they are not an error.
func readClaims(token string) tokenClaims {
	var out tokenClaims

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return out
	}

	if sub, err := claims.GetSubject(); err == nil {
		out.Subject = sub
	} else if n, ok := claims["sub"].(float64); ok { // 数値のsubも許容する
		out.Subject = strconv.FormatInt(int64(n), 10)
	}
	if email, ok := claims["email"].(string); ok {
		out.Email = email
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		out.ExpiresAt = exp.Time
	}
	return out
}
