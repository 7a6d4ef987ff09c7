package llm

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/copymill/copymill/pkg/config"
)

// WithRetry runs fn under the shared retry policy: exponential backoff with
// full jitter, bounded by cfg.MaxRetries additional attempts, honoring any
// upstream-suggested delay. Errors rejected by IsRetryable stop immediately,
// as does context cancellation.
func WithRetry(ctx context.Context, cfg config.RetryConfig, fn func() error) error {
	expo := backoff.NewExponentialBackOff()
	expo.InitialInterval = cfg.BaseDelay
	expo.MaxInterval = cfg.MaxDelay
	expo.Multiplier = 2
	// Randomization factor 1 spreads each interval over (0, 2*interval),
	// i.e. full jitter.
	expo.RandomizationFactor = 1
	expo.MaxElapsedTime = 0

	policy := &hintedBackOff{next: expo}

	op := func() error {
		err := fn()
		if err == nil {
			return nil
		}
		if !IsRetryable(err) {
			return backoff.Permanent(err)
		}
		policy.hint = retryAfterHint(err)
		return err
	}

	bo := backoff.WithContext(backoff.WithMaxRetries(policy, uint64(cfg.MaxRetries)), ctx)
	return backoff.Retry(op, bo)
}

// hintedBackOff stretches the next interval to at least the upstream's
// Retry-After suggestion.
type hintedBackOff struct {
	next backoff.BackOff
	hint time.Duration
}

func (b *hintedBackOff) NextBackOff() time.Duration {
	d := b.next.NextBackOff()
	if d == backoff.Stop {
		return backoff.Stop
	}
	if b.hint > d {
		d = b.hint
	}
	b.hint = 0
	return d
}

func (b *hintedBackOff) Reset() {
	b.next.Reset()
	b.hint = 0
}
