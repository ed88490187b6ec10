package mastery

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/abhisek/paideia/internal/store"
)

// Learning rates for the exponential-moving-average update. The warm-up
// rate calibrates quickly on a learner's first attempts; the stable rate
// keeps an established estimate from swinging on one answer.
const (
	alphaWarmup        = 0.4
	alphaStable        = 0.15
	warmupInteractions = 5
)

// Write retry policy for ledger persistence.
const (
	writeAttempts    = 3
	writeInitialWait = 50 * time.Millisecond
)

// ErrDegraded is returned when a ledger write failed after exhausting
// retries. The session continues degraded; interactions already logged
// remain valid.
var ErrDegraded = errors.New("mastery: ledger write failed after retries")

// Ledger tracks per-(learner, concept) mastery with lazy decay and an
// EMA update rule. Updates to the same pair serialize on a per-key lock;
// different pairs never block each other.
type Ledger struct {
	repo store.MasteryRepo

	mu    sync.Mutex
	locks map[string]*sync.Mutex

	now func() time.Time
}

// NewLedger creates a mastery ledger over the given repository.
func NewLedger(repo store.MasteryRepo) *Ledger {
	return &Ledger{
		repo:  repo,
		locks: make(map[string]*sync.Mutex),
		now:   time.Now,
	}
}

func (l *Ledger) keyLock(learnerID, conceptID string) *sync.Mutex {
	l.mu.Lock()
	defer l.mu.Unlock()

	key := learnerID + "\x00" + conceptID
	lk, ok := l.locks[key]
	if !ok {
		lk = &sync.Mutex{}
		l.locks[key] = lk
	}
	return lk
}

// GetScore returns the decayed mastery score for a pair, or 0 when the
// concept has not been attempted. Decay is applied on read; the stored
// row is left untouched.
func (l *Ledger) GetScore(ctx context.Context, learnerID, conceptID string) (float64, error) {
	row, err := l.repo.Get(ctx, learnerID, conceptID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return 0, nil
		}
		return 0, fmt.Errorf("get mastery: %w", err)
	}
	return Decay(row.Score, row.LastUpdatedAt, l.now()), nil
}

// Update applies the EMA rule with successIndicator as the new evidence
// and returns the new score. The stored score is decayed to now before
// blending, the result is clamped to [0,1], and the write is retried
// with backoff before surfacing ErrDegraded.
func (l *Ledger) Update(ctx context.Context, learnerID, conceptID string, successIndicator float64) (float64, error) {
	lk := l.keyLock(learnerID, conceptID)
	lk.Lock()
	defer lk.Unlock()

	now := l.now()

	row, err := l.repo.Get(ctx, learnerID, conceptID)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			return 0, fmt.Errorf("get mastery: %w", err)
		}
		row = &store.MasteryRow{
			LearnerID:     learnerID,
			ConceptID:     conceptID,
			LastUpdatedAt: now,
		}
	}

	score := Decay(row.Score, row.LastUpdatedAt, now)

	alpha := alphaStable
	if row.InteractionCount < warmupInteractions {
		alpha = alphaWarmup
	}

	score += alpha * (clamp01(successIndicator) - score)
	score = clamp01(score)

	row.Score = score
	row.InteractionCount++
	row.LastUpdatedAt = now

	if err := l.upsertWithRetry(ctx, row); err != nil {
		return score, err
	}
	return score, nil
}

// Records returns all of a learner's mastery rows with decay applied to
// the returned scores.
func (l *Ledger) Records(ctx context.Context, learnerID string) ([]*store.MasteryRow, error) {
	rows, err := l.repo.ByLearner(ctx, learnerID)
	if err != nil {
		return nil, fmt.Errorf("list mastery: %w", err)
	}

	now := l.now()
	for _, r := range rows {
		r.Score = Decay(r.Score, r.LastUpdatedAt, now)
	}
	return rows, nil
}

// Refresh persists decayed scores for all of a learner's rows so that
// reporting reads are fresh. Called by the recommendation batch loop;
// per-pair updates still decay lazily regardless.
func (l *Ledger) Refresh(ctx context.Context, learnerID string) error {
	rows, err := l.repo.ByLearner(ctx, learnerID)
	if err != nil {
		return fmt.Errorf("list mastery: %w", err)
	}

	now := l.now()
	for _, r := range rows {
		decayed := Decay(r.Score, r.LastUpdatedAt, now)
		if decayed >= r.Score {
			continue
		}

		lk := l.keyLock(r.LearnerID, r.ConceptID)
		lk.Lock()
		r.Score = decayed
		r.LastUpdatedAt = now
		err := l.upsertWithRetry(ctx, r)
		lk.Unlock()
		if err != nil {
			return err
		}
	}
	return nil
}

func (l *Ledger) upsertWithRetry(ctx context.Context, row *store.MasteryRow) error {
	var lastErr error
	wait := writeInitialWait

	for attempt := 0; attempt < writeAttempts; attempt++ {
		if lastErr = l.repo.Upsert(ctx, row); lastErr == nil {
			return nil
		}

		if attempt == writeAttempts-1 {
			break
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(wait):
		}
		wait *= 2
	}

	return fmt.Errorf("%w: %v", ErrDegraded, lastErr)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
