package scorer

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/abhisek/paideia/internal/store"
)

// LoggingScorer is a decorator that records every grading call as an
// event row.
type LoggingScorer struct {
	inner     Scorer
	provider  string
	eventRepo store.EventRepo
}

// WithLogging wraps a Scorer with event logging.
func WithLogging(s Scorer, provider string, repo store.EventRepo) Scorer {
	return &LoggingScorer{inner: s, provider: provider, eventRepo: repo}
}

func (l *LoggingScorer) Score(ctx context.Context, sub Submission) (*Grade, error) {
	start := time.Now()

	grade, err := l.inner.Score(ctx, sub)

	data := store.ScorerEventData{
		Provider:      l.provider,
		Model:         l.inner.ModelID(),
		InteractionID: InteractionIDFrom(ctx),
		LatencyMs:     time.Since(start).Milliseconds(),
		Success:       err == nil,
	}
	if grade != nil {
		data.InputTokens = grade.Usage.InputTokens
		data.OutputTokens = grade.Usage.OutputTokens
	}
	if err != nil {
		data.ErrorMessage = err.Error()
	}

	// Log the event but don't fail the grade if logging fails.
	if logErr := l.eventRepo.AppendScorerEvent(ctx, data); logErr != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to log scorer event: %v\n", logErr)
	}

	return grade, err
}

func (l *LoggingScorer) ModelID() string {
	return l.inner.ModelID()
}
