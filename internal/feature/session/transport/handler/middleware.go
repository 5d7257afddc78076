package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"trading_backend/internal/api"
	"trading_backend/internal/feature/session/domain"
	"trading_backend/internal/feature/session/domain/entity"
	"trading_backend/internal/shared/reqctx"
)

// ContextSession is the gin context key holding the validated *entity.Session.
const ContextSession = "session"

// SessionValidator looks up the session for a raw token.
type SessionValidator interface {
	Validate(ctx context.Context, token string) (*entity.Session, error)
}

// RequireSession returns a Gin middleware that admits only requests carrying
// a stored, unexpired session token. The token is put on the request context
// for outbound forwarding.
func RequireSession(v SessionValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		auth := c.GetHeader("Authorization")
		if !strings.HasPrefix(auth, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, api.ErrorResponse{Error: "missing bearer token"})
			return
		}
		token := strings.TrimPrefix(auth, "Bearer ")

		s, err := v.Validate(c.Request.Context(), token)
		if err != nil {
			if errors.Is(err, domain.ErrSessionNotFound) || errors.Is(err, domain.ErrSessionExpired) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, api.ErrorResponse{Error: "invalid session"})
				return
			}
			slog.Error("session lookup failed", "error", err)
			c.AbortWithStatusJSON(http.StatusServiceUnavailable, api.ErrorResponse{Error: "session store unavailable"})
			return
		}

		c.Set(ContextSession, s)
		c.Request = c.Request.WithContext(reqctx.WithBearerToken(c.Request.Context(), token))
		c.Next()
	}
}

// SessionFrom returns the session stored by RequireSession.
func SessionFrom(c *gin.Context) (*entity.Session, bool) {
	v, ok := c.Get(ContextSession)
	if !ok {
		return nil, false
	}
	s, ok := v.(*entity.Session)
	return s, ok
}
