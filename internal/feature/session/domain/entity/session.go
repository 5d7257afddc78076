package entity

import "time"

// Session is a stored dashboard session.
// The raw token is never kept; ID is its BLAKE2b-256 digest in hex.
type Session struct {
	ID        string    // token digest (64-character hex string)
	Subject   string    // "sub" claim when the token is a JWT
	Email     string    // "email" claim when the token is a JWT
	UserAgent string    // Client's User-Agent header
	IPAddress string    // Client's IP address
	CreatedAt time.Time // Session creation time
	ExpiresAt time.Time // Session expiration time
}

// IsExpired reports whether the session has passed its expiration time at now.
func (s *Session) IsExpired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}
