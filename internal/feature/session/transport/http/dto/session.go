// Package dto はsessionフィーチャーのリクエスト/レスポンス型を定義します。
package dto

import "time"

// LoginRequest は POST /session のリクエストボディです。
type LoginRequest struct {
	Token string `json:"token" binding:"required"`
}

// SessionResponse は保存済みセッションの表示用情報です。トークン自体は返しません。
type SessionResponse struct {
	Subject   string    `json:"subject,omitempty"`
	Email     string    `json:"email,omitempty"`
	ExpiresAt time.Time `json:"expires_at"`
}
