package analysisapi

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"

	"trading_backend/internal/feature/analysis/domain"
	"trading_backend/internal/feature/analysis/domain/entity"
	"trading_backend/internal/feature/analysis/usecase"
	"trading_backend/internal/shared/reqctx"
)

// maxBodyBytes caps how much of a response body is read.
const maxBodyBytes = 8 << 20

// Client はリモートの分析サービスを呼び出すAnalysisClient実装です。
// 候補のベースURLを順に試し、各URLで指数バックオフ付きのリトライを行います。
type Client struct {
	cfg    Config
	client *http.Client

	// newTimer はバックオフ待機に使うタイマーを生成します（テストで差し替え可能）。
	newTimer func() backoff.Timer
}

// ClientがAnalysisClientを実装していることをコンパイル時に検証します。
var _ usecase.AnalysisClient = (*Client)(nil)

// NewClient は指定された設定とHTTPクライアントでClientの新しいインスタンスを生成します。
func NewClient(cfg Config, client *http.Client) *Client {
	return &Client{
		cfg:      cfg.withDefaults(),
		client:   client,
		newTimer: func() backoff.Timer { return nil }, // nil はライブラリ標準のタイマー
	}
}

// WorstCaseDuration は1回のFetchAnalysis呼び出しにかかり得る最大時間を返します。
func (c *Client) WorstCaseDuration() time.Duration {
	return c.cfg.WorstCaseDuration()
}

// FetchAnalysis は分析リクエストを送信し、デコードしたレスポンスを返します。
//
// 失敗時の挙動:
//   - タイムアウト・通信エラー・5xx は同じURLで待機後にリトライ
//   - 4xx・不正なレスポンスはリトライせず次のURLへ
//   - 最後のURLでリトライを使い切った場合は *domain.ExhaustedError
//   - 最後のURLがリトライ不可で失敗した場合はその *domain.AttemptError
//   - 呼び出し元のコンテキストが終了した場合は ctx.Err()
func (c *Client) FetchAnalysis(ctx context.Context, req entity.Request) (*entity.Response, error) {
	if len(c.cfg.BaseURLs) == 0 {
		return nil, domain.ErrNoBaseURL
	}

	var errs []error
	for i, baseURL := range c.cfg.BaseURLs {
		last := i == len(c.cfg.BaseURLs)-1

		resp, attemptErrs, err := c.fetchFrom(ctx, baseURL, req)
		errs = append(errs, attemptErrs...)
		if err == nil {
			return resp, nil
		}
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}

		var ae *domain.AttemptError
		retryable := errors.As(err, &ae) && domain.Retryable(ae)

		if last {
			if !retryable {
				return nil, err
			}
			return nil, &domain.ExhaustedError{Kind: ae.Kind, Attempts: len(errs), Errs: errs}
		}

		slog.Warn("analysis base URL failed, trying next",
			"base_url", baseURL, "next", c.cfg.BaseURLs[i+1], "retryable", retryable, "error", err)
	}

	// unreachable: the last iteration always returns
	return nil, domain.ErrNoBaseURL
}

// fetchFrom は1つのベースURLに対してリトライ予算の範囲で試行します。
// 2つ目の戻り値はこのURLでの全試行のエラーです。
func (c *Client) fetchFrom(ctx context.Context, baseURL string, req entity.Request) (*entity.Response, []error, error) {
	var (
		resp    *entity.Response
		errs    []error
		attempt int
	)

	op := func() error {
		attempt++
		r, err := c.attempt(ctx, baseURL, attempt, req)
		if err == nil {
			resp = r
			return nil
		}
		// 呼び出し元のキャンセルは即座に終了
		if ctx.Err() != nil {
			return backoff.Permanent(ctx.Err())
		}
		errs = append(errs, err)
		if !domain.Retryable(err) {
			return backoff.Permanent(err)
		}
		return err
	}

	notify := func(err error, wait time.Duration) {
		slog.Warn("analysis attempt failed, retrying",
			"base_url", baseURL, "attempt", attempt, "wait", wait, "error", err)
	}

	err := backoff.RetryNotifyWithTimer(op, c.newBackOff(ctx), notify, c.newTimer())
	return resp, errs, err
}

// newBackOff は 1s, 2s, 4s ... と倍増する、ランダム化なしのバックオフを生成します。
// 試行回数の上限は MaxRetries です。
func (c *Client) newBackOff(ctx context.Context) backoff.BackOff {
	exp := &backoff.ExponentialBackOff{
		InitialInterval:     c.cfg.InitialBackoff,
		RandomizationFactor: 0,
		Multiplier:          2,
		MaxInterval:         c.cfg.MaxBackoff,
		MaxElapsedTime:      0,
		Stop:                backoff.Stop,
		Clock:               backoff.SystemClock,
	}
	exp.Reset()
	return backoff.WithContext(backoff.WithMaxRetries(exp, uint64(c.cfg.MaxRetries-1)), ctx)
}

// attempt は1回分のPOSTを送信し、結果を分類します。
func (c *Client) attempt(ctx context.Context, baseURL string, n int, req entity.Request) (*entity.Response, error) {
	actx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	fail := func(kind error, status int, cause error) error {
		return &domain.AttemptError{BaseURL: baseURL, Attempt: n, StatusCode: status, Kind: kind, Err: cause}
	}

	// リクエストオブジェクトを作成
	httpReq, err := http.NewRequestWithContext(actx, http.MethodPost, c.endpoint(baseURL, req), strings.NewReader("{}"))
	if err != nil {
		return nil, fail(domain.ErrClientResponse, 0, err)
	}
	c.setHeaders(ctx, httpReq)

	// リクエストを実行
	res, err := c.client.Do(httpReq)
	if err != nil {
		return nil, fail(classifyTransport(err), 0, err)
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	body, err := io.ReadAll(io.LimitReader(res.Body, maxBodyBytes))
	if err != nil {
		return nil, fail(classifyTransport(err), res.StatusCode, err)
	}

	switch {
	case res.StatusCode >= 500:
		return nil, fail(domain.ErrServerResponse, res.StatusCode, nil)
	case res.StatusCode >= 400:
		return nil, fail(domain.ErrClientResponse, res.StatusCode, nil)
	case res.StatusCode < 200 || res.StatusCode >= 300:
		return nil, fail(domain.ErrMalformedResponse, res.StatusCode, nil)
	}

	// JSONレスポンスをデコード
	var out entity.Response
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fail(domain.ErrMalformedResponse, res.StatusCode, err)
	}
	return &out, nil
}

// endpoint はクエリパラメータを固定順序で組み立てたURLを返します。
func (c *Client) endpoint(baseURL string, req entity.Request) string {
	var b strings.Builder
	b.WriteString(strings.TrimRight(baseURL, "/"))
	b.WriteString(c.cfg.Path)
	b.WriteString("?strategy=")
	b.WriteString(url.QueryEscape(req.Strategy))
	b.WriteString("&pair=")
	b.WriteString(url.QueryEscape(req.Instrument))
	b.WriteString("&granularity=")
	b.WriteString(url.QueryEscape(req.Granularity))
	b.WriteString("&count=")
	b.WriteString(strconv.Itoa(req.Count))
	return b.String()
}

func (c *Client) setHeaders(ctx context.Context, r *http.Request) {
	r.Header.Set("Content-Type", "application/json")
	r.Header.Set("Accept", "application/json")
	if c.cfg.UserAgent != "" {
		r.Header.Set("User-Agent", c.cfg.UserAgent)
	}

	id := reqctx.RequestID(ctx)
	if id == "" {
		id = uuid.NewString()
	}
	r.Header.Set("X-Request-ID", id)

	if c.cfg.ForwardAuth {
		if token := reqctx.BearerToken(ctx); token != "" {
			r.Header.Set("Authorization", "Bearer "+token)
		}
	}
}

// classifyTransport はレスポンスを得られなかった失敗をタイムアウトと通信エラーに分類します。
func classifyTransport(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return domain.ErrTimeout
	}
	var ne net.Error
	if errors.As(err, &ne) && ne.Timeout() {
		return domain.ErrTimeout
	}
	return domain.ErrConnectivity
}
