package store

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned when a requested row does not exist.
var ErrNotFound = errors.New("store: not found")

// SessionEventData captures a session lifecycle event.
type SessionEventData struct {
	SessionID   string
	LearnerID   string
	Action      string // start, end, cancel
	ConceptID   string
	TurnsServed int
	EndReason   string
	Degraded    bool
}

// ScorerEventData captures a single call to the external response scorer.
type ScorerEventData struct {
	Provider      string
	Model         string
	InteractionID string
	InputTokens   int
	OutputTokens  int
	LatencyMs     int64
	Success       bool
	ErrorMessage  string
}

// EventRepo provides append access to lifecycle and scorer events.
type EventRepo interface {
	// AppendSessionEvent records a session start/end/cancel event.
	AppendSessionEvent(ctx context.Context, data SessionEventData) error

	// AppendScorerEvent records an external scorer call.
	AppendScorerEvent(ctx context.Context, data ScorerEventData) error
}

// InteractionData captures a new tutoring exchange at the moment the
// guiding question is issued. The response and score arrive later via
// InteractionRepo.Score.
type InteractionData struct {
	InteractionID     string
	SessionID         string
	LearnerID         string
	ConceptID         string
	Subject           string
	DifficultyLevel   int
	Methodology       string
	QuestionText      string
	Repeated          bool
	PrevInteractionID string
	TimeOfDay         string
	DeviceType        string
}

// ScoreData captures the learner's response and its grade.
type ScoreData struct {
	ResponseText      string
	SuccessIndicator  float64
	Unscored          bool
	ResponseLatencyMs int64
}

// InteractionRow is a read model for a logged interaction.
type InteractionRow struct {
	Sequence          int64
	Timestamp         time.Time
	InteractionID     string
	SessionID         string
	LearnerID         string
	ConceptID         string
	Subject           string
	DifficultyLevel   int
	Methodology       string
	QuestionText      string
	ResponseText      *string
	SuccessIndicator  *float64
	Unscored          bool
	Repeated          bool
	PrevInteractionID string
	ResponseLatencyMs int64
}

// InteractionRepo provides append and query access to the interaction log.
// Rows are append-only; Score is the single permitted update and applies
// at most once per interaction.
type InteractionRepo interface {
	Append(ctx context.Context, data InteractionData) error

	// Score records the response and grade on a previously issued
	// interaction. Returns ErrNotFound for unknown ids and an error if
	// the interaction was already scored.
	Score(ctx context.Context, interactionID string, data ScoreData) error

	// BySession returns all interactions in a session ordered by sequence.
	BySession(ctx context.Context, sessionID string) ([]*InteractionRow, error)

	// RecentByLearner returns the learner's interactions since the cutoff,
	// newest first.
	RecentByLearner(ctx context.Context, learnerID string, since time.Time) ([]*InteractionRow, error)

	// SubjectAccuracy returns the mean success indicator and scored count
	// for a learner's recent interactions in a subject.
	SubjectAccuracy(ctx context.Context, learnerID, subject string, lastN int) (float64, int, error)
}

// ProfileRow is the persisted learner profile.
type ProfileRow struct {
	LearnerID        string
	Role             string
	StyleVisual      int
	StyleAuditory    int
	StyleKinesthetic int
	StyleReading     int
	Interests        []string
	Strengths        []string
	Weaknesses       []string
	Age              int
	EducationLevel   string
	CulturalContext  string
	Completeness     float64
	Archived         bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// ProfileRepo manages learner profile rows.
type ProfileRepo interface {
	// Get returns the profile for a learner, or ErrNotFound.
	Get(ctx context.Context, learnerID string) (*ProfileRow, error)

	// Create inserts a new profile row.
	Create(ctx context.Context, row *ProfileRow) error

	// Save updates all mutable fields of an existing profile.
	Save(ctx context.Context, row *ProfileRow) error

	// ActiveLearnerIDs returns the ids of all non-archived learners, for
	// batch jobs.
	ActiveLearnerIDs(ctx context.Context) ([]string, error)

	// Archive logically archives a profile. Idempotent.
	Archive(ctx context.Context, learnerID string) error
}

// MasteryRow is the persisted mastery record for one (learner, concept) pair.
type MasteryRow struct {
	LearnerID        string
	ConceptID        string
	Score            float64
	InteractionCount int
	LastUpdatedAt    time.Time
}

// MasteryRepo manages mastery records. Exactly one live row exists per
// (learner, concept) pair; Upsert never duplicates.
type MasteryRepo interface {
	// Get returns the record for a pair, or ErrNotFound.
	Get(ctx context.Context, learnerID, conceptID string) (*MasteryRow, error)

	// Upsert inserts or replaces the record for row's (learner, concept).
	Upsert(ctx context.Context, row *MasteryRow) error

	// ByLearner returns all of a learner's records.
	ByLearner(ctx context.Context, learnerID string) ([]*MasteryRow, error)
}

// RecommendationRow is a persisted recommendation.
type RecommendationRow struct {
	RecommendationID string
	LearnerID        string
	Type             string
	ConceptID        string
	Title            string
	Description      string
	Reasoning        string
	DifficultyLevel  int
	EstimatedMinutes int
	Priority         int
	Urgency          string
	Status           string
	CreatedAt        time.Time
	ExpiresAt        time.Time
}

// RecommendationRepo manages recommendation rows. The at-most-one-pending
// invariant per (learner, type, concept) is enforced by UpsertPending
// running inside a transaction.
type RecommendationRepo interface {
	// UpsertPending inserts row, or refreshes reasoning, priority, urgency
	// and expiry on the existing pending row for the same
	// (learner, type, concept) tuple. Returns the stored row.
	UpsertPending(ctx context.Context, row *RecommendationRow) (*RecommendationRow, error)

	// ByLearner returns a learner's recommendations, optionally filtered
	// by status, newest first. Rows past their expiry are transitioned to
	// expired before being returned.
	ByLearner(ctx context.Context, learnerID, status string, now time.Time) ([]*RecommendationRow, error)

	// SetStatus updates the status of one recommendation.
	SetStatus(ctx context.Context, recommendationID, status string) error
}
