// Package domain defines domain-level errors for the analysis feature.
package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Per-attempt failure kinds. Every error returned by the analysis client
// unwraps to exactly one of these (or to the caller's context error).
var (
	// ErrTimeout indicates the attempt exceeded its deadline. Retryable.
	ErrTimeout = errors.New("analysis request timed out")

	// ErrConnectivity indicates a transport failure: DNS, refused
	// connection, reset, or any other network error. Retryable.
	ErrConnectivity = errors.New("analysis service unreachable")

	// ErrServerResponse indicates an HTTP 5xx from the service. Retryable.
	ErrServerResponse = errors.New("analysis service returned a server error")

	// ErrClientResponse indicates an HTTP 4xx. Not retried: repeating an
	// identical bad request cannot succeed.
	ErrClientResponse = errors.New("analysis request rejected")

	// ErrMalformedResponse indicates a non-5xx response whose body could not
	// be decoded. Not retried.
	ErrMalformedResponse = errors.New("analysis response malformed")
)

// Validation errors raised before any network I/O.
var (
	// ErrInvalidTimeframe indicates the timeframe token is not recognized.
	ErrInvalidTimeframe = errors.New("invalid timeframe")

	// ErrInvalidCount indicates a negative or oversized candle count.
	ErrInvalidCount = errors.New("invalid candle count")

	// ErrTooManyStrategies indicates a batch request above the strategy limit.
	ErrTooManyStrategies = errors.New("too many strategies")

	// ErrNoBaseURL indicates the client was configured without endpoints.
	ErrNoBaseURL = errors.New("no analysis base URL configured")
)

// Retryable reports whether err is worth another attempt on the same base URL.
func Retryable(err error) bool {
	return errors.Is(err, ErrTimeout) ||
		errors.Is(err, ErrConnectivity) ||
		errors.Is(err, ErrServerResponse)
}

// AttemptError describes one failed attempt against one base URL.
type AttemptError struct {
	BaseURL    string
	Attempt    int   // 1-based
	StatusCode int   // 0 when no response was received
	Kind       error // one of the per-attempt sentinels above
	Err        error // underlying cause, may be nil
}

func (e *AttemptError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s (attempt %d, %s)", e.Kind, e.Attempt, e.BaseURL)
	if e.StatusCode != 0 {
		fmt.Fprintf(&b, ": http %d", e.StatusCode)
	}
	if e.Err != nil {
		fmt.Fprintf(&b, ": %v", e.Err)
	}
	return b.String()
}

// Unwrap exposes both the kind and the cause to errors.Is/As.
func (e *AttemptError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// ExhaustedError is returned once every base URL and its retry budget has been
// used up. Kind is the kind of the final attempt (ErrTimeout, ErrConnectivity
// or ErrServerResponse); only the first two get a dedicated message.
type ExhaustedError struct {
	Kind     error
	Attempts int
	Errs     []error
}

// Error returns a message meant to be shown to the end user.
func (e *ExhaustedError) Error() string {
	switch {
	case errors.Is(e.Kind, ErrTimeout):
		return "The analysis service did not respond in time. Please try again later."
	case errors.Is(e.Kind, ErrConnectivity):
		return "Unable to reach the analysis service. Please check your internet connection and try again."
	default:
		if n := len(e.Errs); n > 0 {
			return fmt.Sprintf("Analysis failed after %d attempts: %v", e.Attempts, e.Errs[n-1])
		}
		return fmt.Sprintf("Analysis failed after %d attempts.", e.Attempts)
	}
}

// Unwrap exposes the kind and every attempt error.
func (e *ExhaustedError) Unwrap() []error {
	out := make([]error, 0, len(e.Errs)+1)
	if e.Kind != nil {
		out = append(out, e.Kind)
	}
	return append(out, e.Errs...)
}
