package scorer

import (
	"encoding/json"
	"fmt"
	"time"
)

// ErrRateLimit indicates the provider returned a rate limit error (429).
type ErrRateLimit struct {
	RetryAfter time.Duration
	Err        error
}

func (e *ErrRateLimit) Error() string {
	return fmt.Sprintf("rate limited (retry after %s): %v", e.RetryAfter, e.Err)
}

func (e *ErrRateLimit) Unwrap() error { return e.Err }

// ErrInvalidGrade indicates the provider returned content that is not a
// valid grade: malformed JSON or a shape outside the grade schema.
type ErrInvalidGrade struct {
	Content json.RawMessage
	Err     error
}

func (e *ErrInvalidGrade) Error() string {
	return fmt.Sprintf("invalid grade from scorer: %v", e.Err)
}

func (e *ErrInvalidGrade) Unwrap() error { return e.Err }

// ErrProviderUnavailable indicates the scoring provider is down or
// unreachable.
type ErrProviderUnavailable struct {
	Err error
}

func (e *ErrProviderUnavailable) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("scorer provider unavailable: %v", e.Err)
	}
	return "scorer provider unavailable"
}

func (e *ErrProviderUnavailable) Unwrap() error { return e.Err }
