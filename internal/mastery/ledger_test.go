package mastery

import (
	"context"
	"errors"
	"math"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/abhisek/paideia/internal/catalog"
	"github.com/abhisek/paideia/internal/store"
)

// memMasteryRepo implements store.MasteryRepo for testing.
type memMasteryRepo struct {
	rows     map[string]*store.MasteryRow
	failures int // Upsert fails this many times before succeeding
	upserts  int
}

func newMemMasteryRepo() *memMasteryRepo {
	return &memMasteryRepo{rows: make(map[string]*store.MasteryRow)}
}

func key(learnerID, conceptID string) string { return learnerID + "/" + conceptID }

func (m *memMasteryRepo) Get(_ context.Context, learnerID, conceptID string) (*store.MasteryRow, error) {
	r, ok := m.rows[key(learnerID, conceptID)]
	if !ok {
		return nil, store.ErrNotFound
	}
	cp := *r
	return &cp, nil
}

func (m *memMasteryRepo) Upsert(_ context.Context, row *store.MasteryRow) error {
	m.upserts++
	if m.failures > 0 {
		m.failures--
		return errors.New("write conflict")
	}
	cp := *row
	m.rows[key(row.LearnerID, row.ConceptID)] = &cp
	return nil
}

func (m *memMasteryRepo) ByLearner(_ context.Context, learnerID string) ([]*store.MasteryRow, error) {
	var out []*store.MasteryRow
	for _, r := range m.rows {
		if r.LearnerID == learnerID {
			cp := *r
			out = append(out, &cp)
		}
	}
	return out, nil
}

func TestGetScore_UnattemptedConceptIsZero(t *testing.T) {
	l := NewLedger(newMemMasteryRepo())
	score, err := l.GetScore(context.Background(), "learner-1", "fractions")
	if err != nil {
		t.Fatalf("GetScore error: %v", err)
	}
	if score != 0 {
		t.Errorf("score = %v, want 0", score)
	}
}

func TestUpdate_BoundedForAnySequence(t *testing.T) {
	l := NewLedger(newMemMasteryRepo())
	ctx := context.Background()
	rng := rand.New(rand.NewPCG(3, 3))

	for i := 0; i < 200; i++ {
		// Include out-of-range indicators; they must be clamped too.
		indicator := rng.Float64()*3 - 1
		score, err := l.Update(ctx, "learner-1", "fractions", indicator)
		if err != nil {
			t.Fatalf("Update error: %v", err)
		}
		if score < 0 || score > 1 {
			t.Fatalf("iteration %d: score %v out of [0,1]", i, score)
		}
	}
}

func TestUpdate_EMAConvergence(t *testing.T) {
	l := NewLedger(newMemMasteryRepo())
	ctx := context.Background()

	const target = 0.8
	var score float64
	for i := 0; i < 20; i++ {
		var err error
		score, err = l.Update(ctx, "learner-1", "fractions", target)
		if err != nil {
			t.Fatalf("Update error: %v", err)
		}
	}

	if math.Abs(score-target) > 0.02 {
		t.Errorf("score = %v after 20 updates, want within 0.02 of %v", score, target)
	}
}

func TestUpdate_WarmupRate(t *testing.T) {
	l := NewLedger(newMemMasteryRepo())
	ctx := context.Background()

	// First update from zero uses the warm-up rate.
	score, err := l.Update(ctx, "learner-1", "fractions", 1.0)
	if err != nil {
		t.Fatalf("Update error: %v", err)
	}
	if math.Abs(score-alphaWarmup) > 1e-9 {
		t.Errorf("first update score = %v, want %v", score, alphaWarmup)
	}
}

func TestDecay_Monotonic(t *testing.T) {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	prev := 1.0
	for days := 1; days <= 120; days++ {
		got := Decay(1.0, base, base.AddDate(0, 0, days))
		if got > prev {
			t.Fatalf("decay increased at day %d: %v > %v", days, got, prev)
		}
		prev = got
	}

	// Backwards clock never raises the score.
	if got := Decay(0.5, base, base.AddDate(0, 0, -10)); got != 0.5 {
		t.Errorf("backwards decay = %v, want 0.5", got)
	}
}

func TestDecay_HalfLife(t *testing.T) {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	got := Decay(1.0, base, base.AddDate(0, 0, HalfLifeDays))
	if math.Abs(got-0.5) > 0.001 {
		t.Errorf("score after %d days = %v, want ~0.5", HalfLifeDays, got)
	}
}

func TestGetScore_AppliesDecay(t *testing.T) {
	repo := newMemMasteryRepo()
	l := NewLedger(repo)
	ctx := context.Background()

	fixed := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	l.now = func() time.Time { return fixed }
	if _, err := l.Update(ctx, "learner-1", "fractions", 1.0); err != nil {
		t.Fatalf("Update error: %v", err)
	}

	l.now = func() time.Time { return fixed.AddDate(0, 0, HalfLifeDays) }
	score, err := l.GetScore(ctx, "learner-1", "fractions")
	if err != nil {
		t.Fatalf("GetScore error: %v", err)
	}
	want := alphaWarmup / 2
	if math.Abs(score-want) > 0.001 {
		t.Errorf("decayed score = %v, want ~%v", score, want)
	}
}

func TestUpdate_FractionsEscalationScenario(t *testing.T) {
	// New learner, three strong answers: tier escalates past basic by the
	// third update.
	l := NewLedger(newMemMasteryRepo())
	ctx := context.Background()

	var score float64
	for _, s := range []float64{0.9, 0.85, 0.95} {
		var err error
		score, err = l.Update(ctx, "learner-new", "fractions", s)
		if err != nil {
			t.Fatalf("Update error: %v", err)
		}
	}

	if tier := catalog.TierForScore(score); tier < catalog.TierIntermediate {
		t.Errorf("tier after scenario = %v (score %v), want at least intermediate", tier, score)
	}
}

func TestUpdate_RetriesThenSucceeds(t *testing.T) {
	repo := newMemMasteryRepo()
	repo.failures = 2
	l := NewLedger(repo)

	if _, err := l.Update(context.Background(), "learner-1", "fractions", 0.8); err != nil {
		t.Fatalf("Update should succeed within retry budget: %v", err)
	}
	if repo.upserts != 3 {
		t.Errorf("upsert attempts = %d, want 3", repo.upserts)
	}
}

func TestUpdate_DegradedAfterExhaustedRetries(t *testing.T) {
	repo := newMemMasteryRepo()
	repo.failures = writeAttempts
	l := NewLedger(repo)

	_, err := l.Update(context.Background(), "learner-1", "fractions", 0.8)
	if !errors.Is(err, ErrDegraded) {
		t.Fatalf("err = %v, want ErrDegraded", err)
	}
}

func TestRefresh_PersistsDecayedScores(t *testing.T) {
	repo := newMemMasteryRepo()
	l := NewLedger(repo)
	ctx := context.Background()

	fixed := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	l.now = func() time.Time { return fixed }
	if _, err := l.Update(ctx, "learner-1", "fractions", 1.0); err != nil {
		t.Fatalf("Update error: %v", err)
	}

	l.now = func() time.Time { return fixed.AddDate(0, 0, HalfLifeDays) }
	if err := l.Refresh(ctx, "learner-1"); err != nil {
		t.Fatalf("Refresh error: %v", err)
	}

	stored := repo.rows[key("learner-1", "fractions")]
	if math.Abs(stored.Score-alphaWarmup/2) > 0.001 {
		t.Errorf("persisted score = %v, want ~%v", stored.Score, alphaWarmup/2)
	}
	if stored.InteractionCount != 1 {
		t.Errorf("Refresh changed interaction count: %d", stored.InteractionCount)
	}
}

func TestUpdate_ConcurrentSamePairSerializes(t *testing.T) {
	l := NewLedger(newMemMasteryRepo())
	ctx := context.Background()

	done := make(chan struct{})
	for i := 0; i < 8; i++ {
		go func() {
			defer func() { done <- struct{}{} }()
			for j := 0; j < 20; j++ {
				if _, err := l.Update(ctx, "learner-1", "fractions", 0.6); err != nil {
					t.Error(err)
					return
				}
			}
		}()
	}
	for i := 0; i < 8; i++ {
		<-done
	}

	score, _ := l.GetScore(ctx, "learner-1", "fractions")
	if score < 0 || score > 1 {
		t.Errorf("score %v out of bounds after concurrent updates", score)
	}
}
