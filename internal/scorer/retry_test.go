package scorer

import (
	"context"
	"errors"
	"testing"
	"time"
)

// flakyScorer fails a fixed number of times before succeeding.
type flakyScorer struct {
	failures int
	err      error
	calls    int
}

func (f *flakyScorer) Score(_ context.Context, _ Submission) (*Grade, error) {
	f.calls++
	if f.calls <= f.failures {
		return nil, f.err
	}
	return &Grade{SuccessIndicator: 0.8, Rationale: "ok"}, nil
}

func (f *flakyScorer) ModelID() string { return "flaky" }

func fastRetryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts: 3,
		InitialWait: time.Millisecond,
		MaxWait:     5 * time.Millisecond,
		Multiplier:  2.0,
	}
}

func TestRetry_TransientErrorRecovers(t *testing.T) {
	inner := &flakyScorer{failures: 2, err: &ErrProviderUnavailable{}}
	s := WithRetry(inner, fastRetryConfig())

	g, err := s.Score(context.Background(), Submission{})
	if err != nil {
		t.Fatalf("Score error: %v", err)
	}
	if g.SuccessIndicator != 0.8 {
		t.Errorf("SuccessIndicator = %v", g.SuccessIndicator)
	}
	if inner.calls != 3 {
		t.Errorf("calls = %d, want 3", inner.calls)
	}
}

func TestRetry_ExhaustsAttempts(t *testing.T) {
	inner := &flakyScorer{failures: 10, err: &ErrProviderUnavailable{}}
	s := WithRetry(inner, fastRetryConfig())

	_, err := s.Score(context.Background(), Submission{})
	var unavail *ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("err = %v, want ErrProviderUnavailable", err)
	}
	if inner.calls != 3 {
		t.Errorf("calls = %d, want 3", inner.calls)
	}
}

func TestRetry_InvalidGradeRetriedOnce(t *testing.T) {
	inner := &flakyScorer{failures: 10, err: &ErrInvalidGrade{Err: errors.New("bad json")}}
	s := WithRetry(inner, fastRetryConfig())

	_, err := s.Score(context.Background(), Submission{})
	var invalid *ErrInvalidGrade
	if !errors.As(err, &invalid) {
		t.Fatalf("err = %v, want ErrInvalidGrade", err)
	}
	if inner.calls != 2 {
		t.Errorf("calls = %d, want 2 (one retry for invalid grade)", inner.calls)
	}
}

func TestRetry_ContextCancelNotRetried(t *testing.T) {
	inner := &flakyScorer{failures: 10, err: context.Canceled}
	s := WithRetry(inner, fastRetryConfig())

	_, err := s.Score(context.Background(), Submission{})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
	if inner.calls != 1 {
		t.Errorf("calls = %d, want 1", inner.calls)
	}
}

func TestRetry_HonorsRetryAfter(t *testing.T) {
	inner := &flakyScorer{failures: 1, err: &ErrRateLimit{RetryAfter: 10 * time.Millisecond}}
	s := WithRetry(inner, fastRetryConfig())

	start := time.Now()
	if _, err := s.Score(context.Background(), Submission{}); err != nil {
		t.Fatalf("Score error: %v", err)
	}
	if elapsed := time.Since(start); elapsed < 10*time.Millisecond {
		t.Errorf("retry waited %v, want at least the RetryAfter hint", elapsed)
	}
}
