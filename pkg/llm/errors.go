package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"
)

// ErrorKind classifies a provider failure for retry decisions.
type ErrorKind string

const (
	// ErrKindRateLimited maps upstream 429s. Always retryable.
	ErrKindRateLimited ErrorKind = "rate_limited"

	// ErrKindAuthFailed maps 401/403. Never retryable.
	ErrKindAuthFailed ErrorKind = "auth_failed"

	// ErrKindBadRequest maps other 4xx. Never retryable.
	ErrKindBadRequest ErrorKind = "bad_request"

	// ErrKindUpstream maps 5xx and transport-level failures. Retryable when
	// the status is a server error or unknown.
	ErrKindUpstream ErrorKind = "upstream"
)

// ProviderError is a failed upstream completion call.
type ProviderError struct {
	Provider   string
	Model      string
	Kind       ErrorKind
	StatusCode int
	Message    string

	// RetryAfter carries an upstream-suggested delay when present.
	RetryAfter time.Duration
}

func (e *ProviderError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s %s: %s (%s, status %d)", e.Provider, e.Model, e.Message, e.Kind, e.StatusCode)
	}
	return fmt.Sprintf("%s %s: %s (%s)", e.Provider, e.Model, e.Message, e.Kind)
}

// Retryable reports whether another attempt could reasonably succeed.
func (e *ProviderError) Retryable() bool {
	switch e.Kind {
	case ErrKindRateLimited:
		return true
	case ErrKindUpstream:
		return e.StatusCode == 0 || e.StatusCode >= 500
	default:
		return false
	}
}

// classifyStatus maps an HTTP status to an error kind.
func classifyStatus(status int) ErrorKind {
	switch {
	case status == http.StatusTooManyRequests:
		return ErrKindRateLimited
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return ErrKindAuthFailed
	case status >= 400 && status < 500:
		return ErrKindBadRequest
	default:
		return ErrKindUpstream
	}
}

// IsRetryable is the default transient-error predicate for WithRetry.
// Cancellation and deadline errors are final; classified provider errors
// decide for themselves; anything else (transport blips, resets) retries.
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	var pe *ProviderError
	if errors.As(err, &pe) {
		return pe.Retryable()
	}
	return true
}

// retryAfterHint extracts the upstream-suggested delay, zero when absent.
func retryAfterHint(err error) time.Duration {
	var pe *ProviderError
	if errors.As(err, &pe) {
		return pe.RetryAfter
	}
	return 0
}

// parseRetryAfter reads a Retry-After header value, either delta-seconds or
// an HTTP date. Returns zero when unparseable.
func parseRetryAfter(header string) time.Duration {
	if header == "" {
		return 0
	}
	if secs, err := strconv.Atoi(header); err == nil && secs > 0 {
		return time.Duration(secs) * time.Second
	}
	if at, err := http.ParseTime(header); err == nil {
		if d := time.Until(at); d > 0 {
			return d
		}
	}
	return 0
}
