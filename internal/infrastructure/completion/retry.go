package completion

import (
	"context"
	"errors"
	"math"
	"math/rand/v2"
	"time"

	"github.com/futureproof/careerguide/internal/core/ports"
)

// RetryConfig controls exponential backoff. MaxAttempts counts the first try.
type RetryConfig struct {
	MaxAttempts int
	InitialWait time.Duration
	MaxWait     time.Duration
	Multiplier  float64
}

func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts: 1,
		InitialWait: 500 * time.Millisecond,
		MaxWait:     8 * time.Second,
		Multiplier:  2.0,
	}
}

// RetryProvider retries transient errors with exponential backoff and jitter.
type RetryProvider struct {
	inner  ports.Completer
	config RetryConfig
}

// WithRetry wraps p. A config with at most one attempt returns p unchanged.
func WithRetry(p ports.Completer, cfg RetryConfig) ports.Completer {
	if cfg.MaxAttempts <= 1 {
		return p
	}
	return &RetryProvider{inner: p, config: cfg}
}

func (r *RetryProvider) Complete(ctx context.Context, req ports.CompletionRequest) (*ports.CompletionResult, error) {
	var lastErr error
	for attempt := range r.config.MaxAttempts {
		res, err := r.inner.Complete(ctx, req)
		if err == nil {
			return res, nil
		}
		lastErr = err

		if !retryable(err) || attempt == r.config.MaxAttempts-1 {
			break
		}

		t := time.NewTimer(r.backoff(attempt, err))
		select {
		case <-ctx.Done():
			t.Stop()
			return nil, ctx.Err()
		case <-t.C:
		}
	}
	return nil, lastErr
}

func (r *RetryProvider) ModelID() string { return r.inner.ModelID() }

func retryable(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	var bad *ErrBadRequest
	return !errors.As(err, &bad)
}

func (r *RetryProvider) backoff(attempt int, err error) time.Duration {
	var rl *ErrRateLimit
	if errors.As(err, &rl) && rl.RetryAfter > 0 {
		return rl.RetryAfter
	}

	wait := float64(r.config.InitialWait) * math.Pow(r.config.Multiplier, float64(attempt))
	if wait > float64(r.config.MaxWait) {
		wait = float64(r.config.MaxWait)
	}
	// ±20% jitter
	wait += wait * 0.2 * (2*rand.Float64() - 1)
	return time.Duration(max(wait, 0))
}
