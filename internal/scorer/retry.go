package scorer

import (
	"context"
	"errors"
	"math"
	"math/rand/v2"
	"time"
)

// RetryScorer is a decorator that retries transient errors with
// exponential backoff and jitter.
type RetryScorer struct {
	inner  Scorer
	config RetryConfig
}

// WithRetry wraps a Scorer with retry logic.
func WithRetry(s Scorer, cfg RetryConfig) Scorer {
	return &RetryScorer{inner: s, config: cfg}
}

func (r *RetryScorer) Score(ctx context.Context, sub Submission) (*Grade, error) {
	var lastErr error
	invalidRetried := false

	for attempt := range r.config.MaxAttempts {
		grade, err := r.inner.Score(ctx, sub)
		if err == nil {
			return grade, nil
		}
		lastErr = err

		if !r.shouldRetry(err, &invalidRetried) {
			return nil, err
		}

		// Last attempt, don't sleep, just return the error.
		if attempt == r.config.MaxAttempts-1 {
			break
		}

		wait := r.backoff(attempt, err)
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(wait):
		}
	}

	return nil, lastErr
}

func (r *RetryScorer) ModelID() string {
	return r.inner.ModelID()
}

// shouldRetry determines if an error is retryable.
func (r *RetryScorer) shouldRetry(err error, invalidRetried *bool) bool {
	// Context errors are never retried.
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	// An invalid grade gets one retry; the model may produce valid JSON
	// on a second pass.
	var invalid *ErrInvalidGrade
	if errors.As(err, &invalid) {
		if *invalidRetried {
			return false
		}
		*invalidRetried = true
		return true
	}

	// Rate limit, provider unavailable and unknown network errors are
	// treated as transient.
	return true
}

// backoff computes the wait duration for the given attempt.
func (r *RetryScorer) backoff(attempt int, err error) time.Duration {
	// Respect RetryAfter for rate limits.
	var rl *ErrRateLimit
	if errors.As(err, &rl) && rl.RetryAfter > 0 {
		return rl.RetryAfter
	}

	wait := float64(r.config.InitialWait) * math.Pow(r.config.Multiplier, float64(attempt))
	if wait > float64(r.config.MaxWait) {
		wait = float64(r.config.MaxWait)
	}

	// Add ±20% jitter.
	wait += wait * 0.2 * (2*rand.Float64() - 1)
	if wait < 0 {
		wait = 0
	}
	return time.Duration(wait)
}
