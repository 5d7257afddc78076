// Package usecase はダッシュボードセッションのビジネスロジックを実装します。
package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"trading_backend/internal/feature/session/domain"
	"trading_backend/internal/feature/session/domain/entity"
)

// DefaultTTL はexpクレームがない場合のセッション有効期間です。
const DefaultTTL = 24 * time.Hour

// SessionRepository はセッションの永続化レイヤーを抽象化します。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type SessionRepository interface {
	// Save はセッションを保存します。同じIDが存在する場合は上書きします。
	Save(ctx context.Context, s *entity.Session) error
	// FindByID はトークンダイジェストでセッションを取得します。
	FindByID(ctx context.Context, id string) (*entity.Session, error)
	// Delete はセッションを削除します。存在しない場合は domain.ErrSessionNotFound を返します。
	Delete(ctx context.Context, id string) error
	// DeleteExpired は期限切れのセッションを削除し、削除件数を返します。
	DeleteExpired(ctx context.Context) (int64, error)
}

// SessionUsecase はセッションの保存・検証・破棄を行います。
// トークンは不透明な値として扱い、署名検証は行いません。
type SessionUsecase struct {
	repo SessionRepository
	ttl  time.Duration
	now  func() time.Time
}

// NewSessionUsecase はSessionUsecaseの新しいインスタンスを生成します。
func NewSessionUsecase(repo SessionRepository, ttl time.Duration) *SessionUsecase {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &SessionUsecase{repo: repo, ttl: ttl, now: time.Now}
}

// Login はトークンをセッションとして保存します。
// トークンがJWTの場合はsub・emailを表示用に読み取り、expで有効期限を短縮します。
func (u *SessionUsecase) Login(ctx context.Context, token, userAgent, ip string) (*entity.Session, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, domain.ErrEmptyToken
	}

	now := u.now()
	claims := readClaims(token)

	expiresAt := now.Add(u.ttl)
	if !claims.ExpiresAt.IsZero() {
		if !claims.ExpiresAt.After(now) {
			return nil, domain.ErrSessionExpired
		}
		if claims.ExpiresAt.Before(expiresAt) {
			expiresAt = claims.ExpiresAt
		}
	}

	s := &entity.Session{
		ID:        TokenDigest(token),
		Subject:   claims.Subject,
		Email:     claims.Email,
		UserAgent: userAgent,
		IPAddress: ip,
		CreatedAt: now,
		ExpiresAt: expiresAt,
	}
	if err := u.repo.Save(ctx, s); err != nil {
		return nil, err
	}

	slog.Info("session stored", "session", shortID(s.ID), "subject", s.Subject, "expires_at", s.ExpiresAt)
	return s, nil
}

// Validate はトークンに対応する有効なセッションを返します。
// 期限切れのセッションは削除し、domain.ErrSessionExpired を返します。
func (u *SessionUsecase) Validate(ctx context.Context, token string) (*entity.Session, error) {
	if token == "" {
		return nil, domain.ErrSessionNotFound
	}

	id := TokenDigest(token)
	s, err := u.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if s.IsExpired(u.now()) {
		if err := u.repo.Delete(ctx, id); err != nil && !errors.Is(err, domain.ErrSessionNotFound) {
			slog.Warn("failed to delete expired session", "session", shortID(id), "error", err)
		}
		return nil, domain.ErrSessionExpired
	}
	return s, nil
}

// Logout はセッションを破棄します。既に存在しない場合も成功とします。
func (u *SessionUsecase) Logout(ctx context.Context, token string) error {
	id := TokenDigest(token)
	if err := u.repo.Delete(ctx, id); err != nil && !errors.Is(err, domain.ErrSessionNotFound) {
		return err
	}
	slog.Info("session revoked", "session", shortID(id))
	return nil
}

// PurgeExpired は期限切れのセッションを一括削除します（定期ジョブ用）。
func (u *SessionUsecase) PurgeExpired(ctx context.Context) (int64, error) {
	n, err := u.repo.DeleteExpired(ctx)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		slog.Info("expired sessions purged", "count", n)
	}
	return n, nil
}

// shortID はログ出力用にダイジェストを短縮します。
func shortID(id string) string {
	if len(id) > 12 {
		return id[:12]
	}
	return id
}
