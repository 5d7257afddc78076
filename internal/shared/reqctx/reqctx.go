// Package reqctx carries per-request values (request ID, bearer token)
// through context.Context from the HTTP layer to outbound clients.
package reqctx

import "context"

type ctxKey int

const (
	requestIDKey ctxKey = iota
	bearerTokenKey
)

// WithRequestID returns a copy of ctx carrying id.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestID returns the request ID stored in ctx, or "".
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// WithBearerToken returns a copy of ctx carrying the caller's session token.
func WithBearerToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, bearerTokenKey, token)
}

// BearerToken returns the session token stored in ctx, or "".
func BearerToken(ctx context.Context) string {
	t, _ := ctx.Value(bearerTokenKey).(string)
	return t
}
