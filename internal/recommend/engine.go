// Package recommend scans profiles, mastery and recent interactions to
// emit scored, de-duplicated recommendations. Generation is an idempotent
// upsert: re-running with unchanged inputs refreshes existing pending
// rows instead of duplicating them.
package recommend

import (
	"context"
	"errors"
	"fmt"
	"math"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/paideia/internal/catalog"
	"github.com/abhisek/paideia/internal/mastery"
	"github.com/abhisek/paideia/internal/store"
)

// Recommendation types.
const (
	TypeNextConcept   = "next_concept"
	TypeStudyStrategy = "study_strategy"
	TypeResource      = "resource_recommendation"
	TypeSkillDev      = "skill_development"
	TypeMotivation    = "motivation_boost"
)

// Urgency levels.
const (
	UrgencyLow    = "low"
	UrgencyMedium = "medium"
	UrgencyHigh   = "high"
)

// DefaultTTL is how long a pending recommendation stays fresh before it
// is lazily expired on read.
const DefaultTTL = 14 * 24 * time.Hour

// capMemory is how long a remediation-cap flag stays relevant.
const capMemory = 7 * 24 * time.Hour

// lowMasteryThreshold marks a concept as urgently decayed.
const lowMasteryThreshold = 0.3

// roleWeights bias priority toward roles that act on recommendations
// directly.
var roleWeights = map[string]float64{
	"student":         1.0,
	"mentor":          1.0,
	"instructor":      0.8,
	"admin":           0.6,
	"content_creator": 0.6,
}

// Engine generates and serves recommendations.
type Engine struct {
	ledger       *mastery.Ledger
	profiles     store.ProfileRepo
	interactions store.InteractionRepo
	recs         store.RecommendationRepo

	mu      sync.Mutex
	capHits map[string]time.Time

	now func() time.Time
	ttl time.Duration
}

// NewEngine creates a recommendation engine.
func NewEngine(
	ledger *mastery.Ledger,
	profiles store.ProfileRepo,
	interactions store.InteractionRepo,
	recs store.RecommendationRepo,
) *Engine {
	return &Engine{
		ledger:       ledger,
		profiles:     profiles,
		interactions: interactions,
		recs:         recs,
		capHits:      make(map[string]time.Time),
		now:          time.Now,
		ttl:          DefaultTTL,
	}
}

// NoteRemediationCap flags a (learner, concept) pair whose session just
// ended on the consecutive-remediation cap. The flag drives a high
// urgency motivation recommendation on the next generation run.
func (e *Engine) NoteRemediationCap(learnerID, conceptID string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.capHits[learnerID+"\x00"+conceptID] = e.now()
}

func (e *Engine) capHit(learnerID, conceptID string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	at, ok := e.capHits[learnerID+"\x00"+conceptID]
	if !ok {
		return false
	}
	if e.now().Sub(at) > capMemory {
		delete(e.capHits, learnerID+"\x00"+conceptID)
		return false
	}
	return true
}

// GenerateFor produces recommendations for one learner and upserts them.
// Idempotent: a second run with unchanged inputs refreshes the existing
// pending rows rather than inserting new ones.
func (e *Engine) GenerateFor(ctx context.Context, learnerID string) ([]*store.RecommendationRow, error) {
	prof, err := e.profiles.Get(ctx, learnerID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get profile: %w", err)
	}
	if prof.Archived {
		return nil, nil
	}

	records, err := e.ledger.Records(ctx, learnerID)
	if err != nil {
		return nil, err
	}

	weight, ok := roleWeights[prof.Role]
	if !ok {
		weight = 1.0
	}
	now := e.now()

	var out []*store.RecommendationRow
	for _, rec := range records {
		row := e.build(ctx, prof, rec, weight, now)
		stored, err := e.recs.UpsertPending(ctx, row)
		if err != nil {
			return nil, fmt.Errorf("upsert recommendation: %w", err)
		}
		out = append(out, stored)
	}
	return out, nil
}

// build assembles one recommendation from a mastery record.
func (e *Engine) build(ctx context.Context, prof *store.ProfileRow, rec *store.MasteryRow, weight float64, now time.Time) *store.RecommendationRow {
	score := rec.Score
	capHit := e.capHit(prof.LearnerID, rec.ConceptID)

	urgency := UrgencyLow
	switch {
	case capHit || mastery.CrossedBelow(score, lowMasteryThreshold, 7*24*time.Hour):
		urgency = UrgencyHigh
	case score >= 0.3 && score <= 0.6:
		urgency = UrgencyMedium
	}

	// Concepts untouched for over 30 days are stale, not urgent; their
	// priority decays rather than spikes.
	recency := 1.0
	if now.Sub(rec.LastUpdatedAt) > 30*24*time.Hour {
		recency = 0.5
	}

	priority := int(math.Round(10 * weight * (1 - score) * recency))
	if priority < 1 {
		priority = 1
	}
	if priority > 10 {
		priority = 10
	}

	subject := ""
	if entry, err := catalog.Lookup(rec.ConceptID, "", catalog.TierForScore(score)); err == nil {
		subject = entry.Subject
	}

	recType, title, description := e.classify(prof.Role, rec.ConceptID, subject, score, capHit)

	return &store.RecommendationRow{
		RecommendationID: uuid.NewString(),
		LearnerID:        prof.LearnerID,
		Type:             recType,
		ConceptID:        rec.ConceptID,
		Title:            title,
		Description:      description,
		Reasoning:        e.reasoning(ctx, prof.LearnerID, rec.ConceptID, subject, score, capHit),
		DifficultyLevel:  difficultyLevel(score),
		EstimatedMinutes: estimatedMinutes(recType),
		Priority:         priority,
		Urgency:          urgency,
		Status:           store.StatusPending,
		CreatedAt:        now,
		ExpiresAt:        now.Add(e.ttl),
	}
}

// classify selects the recommendation type and its presentation text.
func (e *Engine) classify(role, conceptID, subject string, score float64, capHit bool) (recType, title, description string) {
	switch {
	case capHit:
		return TypeMotivation,
			fmt.Sprintf("Take a fresh run at %s", conceptID),
			fmt.Sprintf("Recent attempts at %s were rough. A short break and a different angle usually help.", conceptID)
	case score >= 0.7:
		if next := nextConcept(subject, conceptID, score); next != "" {
			return TypeNextConcept,
				fmt.Sprintf("Ready for %s", next),
				fmt.Sprintf("Mastery of %s is solid. %s is the natural next step.", conceptID, next)
		}
		return TypeNextConcept,
			fmt.Sprintf("Go deeper on %s", subject),
			fmt.Sprintf("Mastery of %s is solid. Explore more advanced material in %s.", conceptID, subject)
	case role == "instructor":
		return TypeStudyStrategy,
			fmt.Sprintf("Teaching strategies for %s", conceptID),
			fmt.Sprintf("Strategies for presenting %s to learners who are still building mastery.", conceptID)
	case role == "content_creator":
		return TypeSkillDev,
			fmt.Sprintf("Content practice: %s", conceptID),
			fmt.Sprintf("Build exercises around %s to strengthen your own command of it.", conceptID)
	default:
		return TypeResource,
			fmt.Sprintf("Review material for %s", conceptID),
			fmt.Sprintf("Curated practice for %s at your current level.", conceptID)
	}
}

// reasoning builds the human-readable justification, enriched with recent
// subject accuracy when available.
func (e *Engine) reasoning(ctx context.Context, learnerID, conceptID, subject string, score float64, capHit bool) string {
	base := fmt.Sprintf("mastery of %s is %.2f", conceptID, score)
	if capHit {
		base += "; a recent session ended on repeated remediation"
	}
	if subject != "" {
		if acc, n, err := e.interactions.SubjectAccuracy(ctx, learnerID, subject, 20); err == nil && n > 0 {
			base += fmt.Sprintf("; recent %s accuracy %.0f%% over %d answers", subject, acc*100, n)
		}
	}
	return base
}

// nextConcept finds a concept in the same subject one tier above the
// mastered concept's own catalog tier. Empty when the subject has
// nothing harder.
func nextConcept(subject, conceptID string, score float64) string {
	if subject == "" {
		return ""
	}
	current, err := catalog.Lookup(conceptID, subject, catalog.TierForScore(score))
	if err != nil {
		return ""
	}
	for _, entry := range catalog.BySubject(subject, current.Tier) {
		if entry.ConceptID != conceptID && entry.Tier > current.Tier {
			return entry.ConceptID
		}
	}
	return ""
}

func difficultyLevel(score float64) int {
	level := 1 + int(score*9)
	if level > 10 {
		level = 10
	}
	return level
}

func estimatedMinutes(recType string) int {
	switch recType {
	case TypeMotivation:
		return 5
	case TypeNextConcept:
		return 20
	case TypeStudyStrategy, TypeSkillDev:
		return 15
	default:
		return 10
	}
}

// List returns a learner's recommendations, optionally filtered by
// status. Rows past their expiry transition to expired on read.
func (e *Engine) List(ctx context.Context, learnerID, statusFilter string) ([]*store.RecommendationRow, error) {
	return e.recs.ByLearner(ctx, learnerID, statusFilter, e.now())
}

// Feedback records the learner's verdict on one recommendation.
func (e *Engine) Feedback(ctx context.Context, recommendationID, status string) error {
	if status != store.StatusAccepted && status != store.StatusDismissed {
		return fmt.Errorf("recommend: invalid feedback status %q", status)
	}
	return e.recs.SetStatus(ctx, recommendationID, status)
}

// RunOnce refreshes ledger decay and regenerates recommendations for
// every active learner.
func (e *Engine) RunOnce(ctx context.Context) error {
	learners, err := e.profiles.ActiveLearnerIDs(ctx)
	if err != nil {
		return fmt.Errorf("list active learners: %w", err)
	}

	for _, learnerID := range learners {
		if err := e.ledger.Refresh(ctx, learnerID); err != nil {
			fmt.Fprintf(os.Stderr, "warning: decay refresh for %s: %v\n", learnerID, err)
		}
		if _, err := e.GenerateFor(ctx, learnerID); err != nil {
			fmt.Fprintf(os.Stderr, "warning: recommendations for %s: %v\n", learnerID, err)
		}
	}
	return nil
}

// RunLoop runs the periodic batch until the context is cancelled.
func (e *Engine) RunLoop(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := e.RunOnce(ctx); err != nil {
				fmt.Fprintf(os.Stderr, "warning: recommendation batch: %v\n", err)
			}
		}
	}
}
