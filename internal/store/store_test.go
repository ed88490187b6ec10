package store

import (
	"context"
	"errors"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func testInteraction(id, sessionID string) InteractionData {
	return InteractionData{
		InteractionID:   id,
		SessionID:       sessionID,
		LearnerID:       "learner-1",
		ConceptID:       "fractions",
		Subject:         "math",
		DifficultyLevel: 3,
		Methodology:     "visual_demo",
		QuestionText:    "What is a half plus a quarter?",
	}
}

func testRecommendation(recID string, priority int) *RecommendationRow {
	now := time.Now()
	return &RecommendationRow{
		RecommendationID: recID,
		LearnerID:        "learner-1",
		Type:             "resource_recommendation",
		ConceptID:        "fractions",
		Title:            "Review material for fractions",
		Description:      "Curated practice for fractions.",
		Reasoning:        "mastery of fractions is 0.40",
		DifficultyLevel:  3,
		EstimatedMinutes: 10,
		Priority:         priority,
		Urgency:          "medium",
		Status:           StatusPending,
		CreatedAt:        now,
		ExpiresAt:        now.Add(14 * 24 * time.Hour),
	}
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestUpsertPending_RefreshesExistingRow(t *testing.T) {
	s := openTestStore(t)
	repo := s.RecommendationRepo()
	ctx := context.Background()

	first, err := repo.UpsertPending(ctx, testRecommendation("rec-1", 4))
	if err != nil {
		t.Fatalf("first upsert: %v", err)
	}

	// Same (learner, type, concept): must refresh, not insert.
	second, err := repo.UpsertPending(ctx, testRecommendation("rec-2", 7))
	if err != nil {
		t.Fatalf("second upsert: %v", err)
	}
	if second.RecommendationID != first.RecommendationID {
		t.Errorf("refresh created a new row: id %s, want %s", second.RecommendationID, first.RecommendationID)
	}
	if second.Priority != 7 {
		t.Errorf("priority = %d, want refreshed 7", second.Priority)
	}

	pending, err := repo.ByLearner(ctx, "learner-1", StatusPending, time.Now())
	if err != nil {
		t.Fatalf("by learner: %v", err)
	}
	if len(pending) != 1 {
		t.Fatalf("pending rows = %d, want 1", len(pending))
	}
}

func TestUpsertPending_IgnoresResolvedRows(t *testing.T) {
	s := openTestStore(t)
	repo := s.RecommendationRepo()
	ctx := context.Background()

	if _, err := repo.UpsertPending(ctx, testRecommendation("rec-1", 4)); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	if err := repo.SetStatus(ctx, "rec-1", StatusDismissed); err != nil {
		t.Fatalf("set status: %v", err)
	}

	// A dismissed row does not block a fresh pending one.
	fresh, err := repo.UpsertPending(ctx, testRecommendation("rec-2", 6))
	if err != nil {
		t.Fatalf("upsert after dismissal: %v", err)
	}
	if fresh.RecommendationID != "rec-2" {
		t.Errorf("id = %s, want new row rec-2", fresh.RecommendationID)
	}

	pending, err := repo.ByLearner(ctx, "learner-1", StatusPending, time.Now())
	if err != nil {
		t.Fatalf("by learner: %v", err)
	}
	if len(pending) != 1 || pending[0].RecommendationID != "rec-2" {
		t.Errorf("pending = %+v, want only rec-2", pending)
	}
}

func TestByLearner_LazyExpiry(t *testing.T) {
	s := openTestStore(t)
	repo := s.RecommendationRepo()
	ctx := context.Background()

	row := testRecommendation("rec-1", 5)
	row.ExpiresAt = time.Now().Add(-time.Minute)
	if _, err := repo.UpsertPending(ctx, row); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	pending, err := repo.ByLearner(ctx, "learner-1", StatusPending, time.Now())
	if err != nil {
		t.Fatalf("by learner (pending): %v", err)
	}
	if len(pending) != 0 {
		t.Errorf("pending rows = %d, want 0 after expiry", len(pending))
	}

	all, err := repo.ByLearner(ctx, "learner-1", "", time.Now())
	if err != nil {
		t.Fatalf("by learner (all): %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("rows = %d, want 1", len(all))
	}
	if all[0].Status != StatusExpired {
		t.Errorf("status = %s, want expired", all[0].Status)
	}
}

func TestScore_AppliesAtMostOnce(t *testing.T) {
	s := openTestStore(t)
	repo := s.InteractionRepo()
	ctx := context.Background()

	if err := repo.Append(ctx, testInteraction("int-1", "sess-1")); err != nil {
		t.Fatalf("append: %v", err)
	}

	score := ScoreData{ResponseText: "three quarters", SuccessIndicator: 0.9}
	if err := repo.Score(ctx, "int-1", score); err != nil {
		t.Fatalf("first score: %v", err)
	}
	if err := repo.Score(ctx, "int-1", score); err == nil {
		t.Error("second score accepted, want rejection")
	}
	if err := repo.Score(ctx, "missing", score); !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestBySession_OrderedBySequence(t *testing.T) {
	s := openTestStore(t)
	repo := s.InteractionRepo()
	ctx := context.Background()

	for _, in := range []struct{ id, session string }{
		{"int-1", "sess-1"},
		{"int-2", "sess-2"},
		{"int-3", "sess-1"},
	} {
		if err := repo.Append(ctx, testInteraction(in.id, in.session)); err != nil {
			t.Fatalf("append %s: %v", in.id, err)
		}
	}

	rows, err := repo.BySession(ctx, "sess-1")
	if err != nil {
		t.Fatalf("by session: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(rows))
	}
	if rows[0].InteractionID != "int-1" || rows[1].InteractionID != "int-3" {
		t.Errorf("order = %s, %s; want int-1, int-3", rows[0].InteractionID, rows[1].InteractionID)
	}
	if rows[0].Sequence >= rows[1].Sequence {
		t.Errorf("sequence not ascending: %d, %d", rows[0].Sequence, rows[1].Sequence)
	}
}

func TestRecentByLearner_NewestFirstSinceCutoff(t *testing.T) {
	s := openTestStore(t)
	repo := s.InteractionRepo()
	ctx := context.Background()

	for _, id := range []string{"int-1", "int-2", "int-3"} {
		if err := repo.Append(ctx, testInteraction(id, "sess-1")); err != nil {
			t.Fatalf("append %s: %v", id, err)
		}
	}

	recent, err := repo.RecentByLearner(ctx, "learner-1", time.Now().Add(-time.Hour))
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(recent) != 3 {
		t.Fatalf("rows = %d, want 3", len(recent))
	}
	if recent[0].InteractionID != "int-3" {
		t.Errorf("newest = %s, want int-3", recent[0].InteractionID)
	}

	none, err := repo.RecentByLearner(ctx, "learner-1", time.Now().Add(time.Hour))
	if err != nil {
		t.Fatalf("recent (future cutoff): %v", err)
	}
	if len(none) != 0 {
		t.Errorf("rows = %d, want 0 past the cutoff", len(none))
	}
}

func TestMasteryUpsert_SingleRowPerPair(t *testing.T) {
	s := openTestStore(t)
	repo := s.MasteryRepo()
	ctx := context.Background()

	row := &MasteryRow{
		LearnerID:        "learner-1",
		ConceptID:        "fractions",
		Score:            0.4,
		InteractionCount: 1,
		LastUpdatedAt:    time.Now(),
	}
	if err := repo.Upsert(ctx, row); err != nil {
		t.Fatalf("first upsert: %v", err)
	}

	row.Score = 0.6
	row.InteractionCount = 2
	if err := repo.Upsert(ctx, row); err != nil {
		t.Fatalf("second upsert: %v", err)
	}

	rows, err := repo.ByLearner(ctx, "learner-1")
	if err != nil {
		t.Fatalf("by learner: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("rows = %d, want 1", len(rows))
	}
	if rows[0].Score != 0.6 || rows[0].InteractionCount != 2 {
		t.Errorf("row = %+v, want replaced score 0.6 and count 2", rows[0])
	}
}
