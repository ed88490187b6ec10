package scorer

import (
	"context"
	"testing"

	"github.com/abhisek/paideia/internal/store"
)

// memEventRepo records appended events for assertions.
type memEventRepo struct {
	sessionEvents []store.SessionEventData
	scorerEvents  []store.ScorerEventData
}

func (m *memEventRepo) AppendSessionEvent(_ context.Context, data store.SessionEventData) error {
	m.sessionEvents = append(m.sessionEvents, data)
	return nil
}

func (m *memEventRepo) AppendScorerEvent(_ context.Context, data store.ScorerEventData) error {
	m.scorerEvents = append(m.scorerEvents, data)
	return nil
}

func TestLogging_RecordsSuccess(t *testing.T) {
	repo := &memEventRepo{}
	s := WithLogging(NewMockScorer(MockGrade{SuccessIndicator: 0.6}), "mock", repo)

	ctx := WithInteractionID(context.Background(), "int-42")
	if _, err := s.Score(ctx, Submission{Question: "q"}); err != nil {
		t.Fatalf("Score error: %v", err)
	}

	if len(repo.scorerEvents) != 1 {
		t.Fatalf("scorer events = %d, want 1", len(repo.scorerEvents))
	}
	ev := repo.scorerEvents[0]
	if !ev.Success {
		t.Error("event not marked success")
	}
	if ev.InteractionID != "int-42" {
		t.Errorf("InteractionID = %q, want int-42", ev.InteractionID)
	}
	if ev.Provider != "mock" {
		t.Errorf("Provider = %q", ev.Provider)
	}
}

func TestLogging_RecordsFailure(t *testing.T) {
	repo := &memEventRepo{}
	s := WithLogging(NewMockScorer(), "mock", repo) // empty queue fails

	if _, err := s.Score(context.Background(), Submission{}); err == nil {
		t.Fatal("expected error from exhausted mock")
	}

	if len(repo.scorerEvents) != 1 {
		t.Fatalf("scorer events = %d, want 1", len(repo.scorerEvents))
	}
	ev := repo.scorerEvents[0]
	if ev.Success {
		t.Error("failed call logged as success")
	}
	if ev.ErrorMessage == "" {
		t.Error("error message not recorded")
	}
}
