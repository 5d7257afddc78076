package http

import (
	"net"
	"net/http"
	"time"
)

// ClientOptions configures the outbound transport.
type ClientOptions struct {
	// Timeout bounds the whole exchange. Zero leaves the bound to the
	// request context, which callers with per-attempt deadlines rely on.
	Timeout time.Duration
	// MaxIdleConnsPerHost keeps warm connections to a small set of upstreams.
	MaxIdleConnsPerHost int
}

// NewHTTPClient は外部API呼び出し用に設定されたHTTPクライアントを作成します。
//
// 設定:
//   - Proxy: 環境変数（HTTP_PROXYなど）が設定されている場合に使用
//   - Dialer.Timeout: TCP接続タイムアウト（デフォルトより短い）
//   - MaxIdleConnsPerHost: 分析サービスなど少数の接続先に対する再利用接続数
//   - TLSHandshakeTimeout: HTTPSハンドシェイクの最大時間
//
// 注意:
//   - http.DefaultClientにはタイムアウトがないため、常にカスタムクライアントを使用すること
func NewHTTPClient(opts ClientOptions) *http.Client {
	perHost := opts.MaxIdleConnsPerHost
	if perHost <= 0 {
		perHost = 10
	}
	t := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   5 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		ForceAttemptHTTP2:   true,
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: perHost,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 5 * time.Second,
	}
	return &http.Client{Timeout: opts.Timeout, Transport: t}
}
