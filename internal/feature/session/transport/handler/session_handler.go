// Package handler はsessionフィーチャーのHTTPハンドラーとミドルウェアを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"trading_backend/internal/api"
	"trading_backend/internal/feature/session/domain"
	"trading_backend/internal/feature/session/domain/entity"
	"trading_backend/internal/feature/session/transport/http/dto"
	"trading_backend/internal/shared/reqctx"
)

// SessionUsecase はセッション操作のユースケースを定義します。
type SessionUsecase interface {
	Login(ctx context.Context, token, userAgent, ip string) (*entity.Session, error)
	Validate(ctx context.Context, token string) (*entity.Session, error)
	Logout(ctx context.Context, token string) error
}

// SessionHandler はセッションのHTTPリクエストを処理します。
type SessionHandler struct {
	uc SessionUsecase
}

// NewSessionHandler はSessionHandlerの新しいインスタンスを生成します。
func NewSessionHandler(uc SessionUsecase) *SessionHandler {
	return &SessionHandler{uc: uc}
}

// Login はトークンをセッションとして保存します。
// - ボディが不正な場合は400
// - トークンのexpが過去の場合は401
// - 成功時は201とセッション情報を返却
func (h *SessionHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}

	s, err := h.uc.Login(c.Request.Context(), req.Token, c.Request.UserAgent(), c.ClientIP())
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEmptyToken):
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		case errors.Is(err, domain.ErrSessionExpired):
			c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "token expired"})
		default:
			slog.Error("failed to store session", "error", err, "remote_addr", c.ClientIP())
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "internal server error"})
		}
		return
	}
	c.JSON(http.StatusCreated, toResponse(s))
}

// Current はRequireSessionで検証済みのセッションを返します。
func (h *SessionHandler) Current(c *gin.Context) {
	s, ok := SessionFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "unauthorized"})
		return
	}
	c.JSON(http.StatusOK, toResponse(s))
}

// Logout は現在のセッションを破棄します。
func (h *SessionHandler) Logout(c *gin.Context) {
	token := reqctx.BearerToken(c.Request.Context())
	if err := h.uc.Logout(c.Request.Context(), token); err != nil {
		slog.Error("failed to revoke session", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "internal server error"})
		return
	}
	c.JSON(http.StatusOK, api.MessageResponse{Message: "ok"})
}

func toResponse(s *entity.Session) dto.SessionResponse {
	return dto.SessionResponse{Subject: s.Subject, Email: s.Email, ExpiresAt: s.ExpiresAt}
}
