package llm

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/copymill/copymill/pkg/config"
)

func fastRetryConfig(maxRetries int) config.RetryConfig {
	return config.RetryConfig{
		MaxRetries: maxRetries,
		BaseDelay:  time.Millisecond,
		MaxDelay:   5 * time.Millisecond,
	}
}

func transientError() error {
	return &ProviderError{Provider: "test", Model: "m", Kind: ErrKindRateLimited, StatusCode: 429, Message: "slow down"}
}

func TestWithRetry_TransientThenSuccess(t *testing.T) {
	calls := 0
	err := WithRetry(context.Background(), fastRetryConfig(3), func() error {
		calls++
		if calls < 3 {
			return transientError()
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestWithRetry_PermanentStopsImmediately(t *testing.T) {
	calls := 0
	authErr := &ProviderError{Provider: "test", Model: "m", Kind: ErrKindAuthFailed, StatusCode: 401, Message: "bad key"}
	err := WithRetry(context.Background(), fastRetryConfig(3), func() error {
		calls++
		return authErr
	})
	require.Error(t, err)
	assert.Equal(t, 1, calls)

	var pe *ProviderError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, ErrKindAuthFailed, pe.Kind)
}

func TestWithRetry_ExhaustsRetries(t *testing.T) {
	calls := 0
	err := WithRetry(context.Background(), fastRetryConfig(2), func() error {
		calls++
		return transientError()
	})
	require.Error(t, err)
	assert.Equal(t, 3, calls, "initial attempt plus two retries")
}

func TestWithRetry_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	calls := 0
	err := WithRetry(ctx, fastRetryConfig(5), func() error {
		calls++
		return transientError()
	})
	require.Error(t, err)
	assert.Equal(t, 1, calls)
}

func TestWithRetry_HonorsRetryAfterHint(t *testing.T) {
	calls := 0
	start := time.Now()
	err := WithRetry(context.Background(), fastRetryConfig(2), func() error {
		calls++
		if calls == 1 {
			return &ProviderError{
				Provider:   "test",
				Model:      "m",
				Kind:       ErrKindRateLimited,
				StatusCode: 429,
				Message:    "slow down",
				RetryAfter: 50 * time.Millisecond,
			}
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
	assert.GreaterOrEqual(t, time.Since(start), 50*time.Millisecond,
		"second attempt must wait at least the upstream-suggested delay")
}

func TestIsRetryable(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"rate limited", &ProviderError{Kind: ErrKindRateLimited, StatusCode: 429}, true},
		{"auth failed", &ProviderError{Kind: ErrKindAuthFailed, StatusCode: 401}, false},
		{"bad request", &ProviderError{Kind: ErrKindBadRequest, StatusCode: 422}, false},
		{"server error", &ProviderError{Kind: ErrKindUpstream, StatusCode: 503}, true},
		{"transport failure", &ProviderError{Kind: ErrKindUpstream}, true},
		{"odd 200 upstream", &ProviderError{Kind: ErrKindUpstream, StatusCode: 200}, false},
		{"wrapped provider error", fmt.Errorf("call failed: %w", &ProviderError{Kind: ErrKindAuthFailed, StatusCode: 403}), false},
		{"context canceled", context.Canceled, false},
		{"deadline exceeded", context.DeadlineExceeded, false},
		{"plain error", errors.New("connection reset"), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsRetryable(tt.err))
		})
	}
}

func TestParseRetryAfter(t *testing.T) {
	assert.Equal(t, 2*time.Second, parseRetryAfter("2"))
	assert.Equal(t, time.Duration(0), parseRetryAfter(""))
	assert.Equal(t, time.Duration(0), parseRetryAfter("soon"))
	assert.Equal(t, time.Duration(0), parseRetryAfter("-1"))

	future := time.Now().Add(30 * time.Second).UTC().Format(httpTimeFormat)
	got := parseRetryAfter(future)
	assert.Greater(t, got, 20*time.Second)
	assert.LessOrEqual(t, got, 30*time.Second)
}

const httpTimeFormat = "Mon, 02 Jan 2006 15:04:05 GMT"
