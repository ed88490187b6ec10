// Package session orchestrates one learner's tutoring session: it selects
// material from the catalog using the profile and mastery state, records
// interactions, drives the per-turn state machine and updates the mastery
// ledger.
package session

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/paideia/internal/catalog"
	"github.com/abhisek/paideia/internal/mastery"
	"github.com/abhisek/paideia/internal/profile"
	"github.com/abhisek/paideia/internal/scorer"
	"github.com/abhisek/paideia/internal/store"
)

// Defaults for the session state machine.
const (
	DefaultMaxTurns       = 10
	DefaultRemediationCap = 3
	DefaultScoreTimeout   = 120 * time.Second

	// advanceThreshold splits Advancing from Remediating.
	advanceThreshold = 0.7

	// neutralScore is recorded when the scorer times out or fails.
	neutralScore = 0.5

	// defaultSubject is probed when a session starts with no hint at all.
	defaultSubject = "math"
)

var (
	// ErrSessionNotFound is returned for unknown session ids.
	ErrSessionNotFound = errors.New("session: not found")

	// ErrSessionEnded signals that no further questions will be issued.
	// A late score that arrives with this error has still been applied to
	// the mastery ledger.
	ErrSessionEnded = errors.New("session: ended")

	// ErrUnknownInteraction is returned when the submitted interaction id
	// does not match the session's pending question.
	ErrUnknownInteraction = errors.New("session: unknown interaction id")
)

// Hint is optional launch context from an external lesson or course.
type Hint struct {
	ConceptID  string
	Subject    string
	DeviceType string
}

// CapNotifyFunc is called when a learner hits the consecutive-remediation
// cap on a concept, so the recommendation engine can react.
type CapNotifyFunc func(learnerID, conceptID string)

// Manager runs tutoring sessions. Sessions for different learners are
// fully parallel; the only shared mutable state is the ledger and the
// stores, which synchronize internally.
type Manager struct {
	profiles     *profile.Service
	ledger       *mastery.Ledger
	grader       scorer.Scorer
	interactions store.InteractionRepo
	events       store.EventRepo

	maxTurns       int
	remediationCap int
	scoreTimeout   time.Duration

	onRemediationCap CapNotifyFunc

	now  func() time.Time
	seed func() uint64

	mu       sync.Mutex
	sessions map[string]*session
	locks    map[string]*sync.Mutex
}

// Option configures a Manager.
type Option func(*Manager)

// WithMaxTurns overrides the turn limit.
func WithMaxTurns(n int) Option {
	return func(m *Manager) { m.maxTurns = n }
}

// WithScoreTimeout overrides the scorer wait budget.
func WithScoreTimeout(d time.Duration) Option {
	return func(m *Manager) { m.scoreTimeout = d }
}

// WithCapNotify registers the remediation-cap callback.
func WithCapNotify(fn CapNotifyFunc) Option {
	return func(m *Manager) { m.onRemediationCap = fn }
}

// NewManager creates a session manager.
func NewManager(
	profiles *profile.Service,
	ledger *mastery.Ledger,
	grader scorer.Scorer,
	interactions store.InteractionRepo,
	events store.EventRepo,
	opts ...Option,
) *Manager {
	m := &Manager{
		profiles:       profiles,
		ledger:         ledger,
		grader:         grader,
		interactions:   interactions,
		events:         events,
		maxTurns:       DefaultMaxTurns,
		remediationCap: DefaultRemediationCap,
		scoreTimeout:   DefaultScoreTimeout,
		now:            time.Now,
		seed:           rand.Uint64,
		sessions:       make(map[string]*session),
		locks:          make(map[string]*sync.Mutex),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// StartSession opens a session for a learner and issues the first probing
// turn. The role comes from the identity source; the hint, when present,
// comes from the launching lesson.
func (m *Manager) StartSession(ctx context.Context, learnerID string, role profile.Role, hint Hint) (*Turn, error) {
	p, err := m.profiles.GetOrCreate(ctx, learnerID, role)
	if err != nil {
		return nil, err
	}

	subject := hint.Subject
	if subject == "" {
		subject = defaultSubject
	}

	s := &session{
		id:          uuid.NewString(),
		learnerID:   learnerID,
		subject:     subject,
		conceptID:   hint.ConceptID,
		methodology: p.Methodology(),
		picker:      catalog.NewPicker(m.seed()),
		phase:       PhaseProbing,
		asked:       make(map[string]bool),
		deviceType:  hint.DeviceType,
	}

	m.mu.Lock()
	m.sessions[s.id] = s
	m.locks[s.id] = &sync.Mutex{}
	m.mu.Unlock()

	if err := m.events.AppendSessionEvent(ctx, store.SessionEventData{
		SessionID: s.id,
		LearnerID: s.learnerID,
		Action:    "start",
		ConceptID: s.conceptID,
	}); err != nil {
		return nil, fmt.Errorf("record session start: %w", err)
	}

	return m.probe(ctx, s, PhaseProbing, "")
}

// SubmitResponse records the learner's answer to the pending question,
// grades it, updates the ledger and advances the state machine. The
// returned Turn carries the next question, or Phase SessionEnd.
//
// A response that arrives after the session has ended still updates the
// interaction log and the ledger; ErrSessionEnded is returned to signal
// that no next question follows.
func (m *Manager) SubmitResponse(ctx context.Context, sessionID, interactionID, responseText string) (*Turn, error) {
	s, lock, err := m.lookup(sessionID)
	if err != nil {
		return nil, err
	}
	lock.Lock()
	defer lock.Unlock()

	if interactionID != s.pendingInteractionID || s.pendingInteractionID == "" {
		if s.ended {
			return nil, ErrSessionEnded
		}
		return nil, ErrUnknownInteraction
	}

	indicator, unscored := m.grade(ctx, s, responseText)
	latencyMs := m.now().Sub(s.issuedAt).Milliseconds()

	if err := m.interactions.Score(ctx, interactionID, store.ScoreData{
		ResponseText:      responseText,
		SuccessIndicator:  indicator,
		Unscored:          unscored,
		ResponseLatencyMs: latencyMs,
	}); err != nil {
		return nil, fmt.Errorf("score interaction: %w", err)
	}
	s.pendingInteractionID = ""

	if _, err := m.ledger.Update(ctx, s.learnerID, s.conceptID, indicator); err != nil {
		if !errors.Is(err, mastery.ErrDegraded) {
			return nil, err
		}
		// Degraded sessions continue; the learner still gets a question.
		s.degraded = true
	}

	if s.ended {
		// The late score has been applied; nothing else will arrive for
		// this session, so release it.
		m.evict(s.id)
		return nil, ErrSessionEnded
	}

	next := PhaseAdvancing
	if indicator >= advanceThreshold {
		s.consecutiveLow = 0
	} else {
		s.consecutiveLow++
		next = PhaseRemediating

		if s.consecutiveLow > m.remediationCap {
			return m.end(ctx, s, EndReasonRemediationCap)
		}
	}

	if s.turns >= m.maxTurns {
		return m.end(ctx, s, EndReasonMaxTurns)
	}

	support := ""
	if next == PhaseRemediating {
		support = m.supportFor(s)
	}
	return m.probe(ctx, s, next, support)
}

// Cancel ends a session without invalidating anything already written.
func (m *Manager) Cancel(ctx context.Context, sessionID string) error {
	s, lock, err := m.lookup(sessionID)
	if err != nil {
		return err
	}
	lock.Lock()
	defer lock.Unlock()

	if s.ended {
		return nil
	}
	s.ended = true
	s.endReason = EndReasonCancelled
	s.phase = PhaseSessionEnd

	return m.events.AppendSessionEvent(ctx, store.SessionEventData{
		SessionID:   s.id,
		LearnerID:   s.learnerID,
		Action:      "cancel",
		ConceptID:   s.conceptID,
		TurnsServed: s.turns,
		EndReason:   EndReasonCancelled,
		Degraded:    s.degraded,
	})
}

func (m *Manager) lookup(sessionID string) (*session, *sync.Mutex, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[sessionID]
	if !ok {
		return nil, nil, ErrSessionNotFound
	}
	return s, m.locks[sessionID], nil
}

// evict drops a finished session from the tracking maps. Cancelled
// sessions are kept until their in-flight response arrives, so the late
// score can still reach the ledger.
func (m *Manager) evict(sessionID string) {
	m.mu.Lock()
	delete(m.sessions, sessionID)
	delete(m.locks, sessionID)
	m.mu.Unlock()
}

// probe issues the next guiding question: resolve the tier from decayed
// mastery, select material, log the interaction and move to Evaluating.
// Catalog misses fall back to the generic template, never an error.
func (m *Manager) probe(ctx context.Context, s *session, phase Phase, support string) (*Turn, error) {
	score, err := m.ledger.GetScore(ctx, s.learnerID, s.conceptID)
	if err != nil {
		// Read failures degrade to a basic-tier probe rather than
		// dropping the learner.
		score = 0
		s.degraded = true
	}
	tier := catalog.TierForScore(score)
	if phase == PhaseRemediating && tier > catalog.TierBasic {
		tier--
	}

	fallback := false
	entry, err := catalog.Lookup(s.conceptID, s.subject, tier)
	if err != nil {
		topic := s.conceptID
		if topic == "" {
			topic = s.subject
		}
		entry = catalog.GenericFallback(topic)
		// Fallback sessions key their interaction and mastery rows by
		// the probed topic.
		s.conceptID = topic
		fallback = true
	} else {
		s.conceptID = entry.ConceptID
		s.subject = entry.Subject
	}

	question, repeated := s.picker.GuidingQuestion(entry, s.asked)
	s.asked[question] = true

	now := m.now()
	interactionID := uuid.NewString()
	if err := m.interactions.Append(ctx, store.InteractionData{
		InteractionID:     interactionID,
		SessionID:         s.id,
		LearnerID:         s.learnerID,
		ConceptID:         s.conceptID,
		Subject:           s.subject,
		DifficultyLevel:   difficultyLevel(score),
		Methodology:       string(s.methodology),
		QuestionText:      question,
		Repeated:          repeated,
		PrevInteractionID: s.lastInteractionID,
		TimeOfDay:         timeOfDay(now),
		DeviceType:        s.deviceType,
	}); err != nil {
		return nil, fmt.Errorf("append interaction: %w", err)
	}

	s.lastInteractionID = interactionID
	s.pendingInteractionID = interactionID
	s.pendingQuestion = question
	s.issuedAt = now
	s.turns++
	s.phase = PhaseEvaluating

	return &Turn{
		SessionID:       s.id,
		InteractionID:   interactionID,
		Phase:           phase,
		ConceptID:       s.conceptID,
		Subject:         s.subject,
		Tier:            tier,
		DifficultyLevel: difficultyLevel(score),
		Methodology:     s.methodology,
		Question:        question,
		Support:         support,
		Repeated:        repeated,
		Fallback:        fallback,
		Degraded:        s.degraded,
	}, nil
}

// grade scores the learner's response within the timeout budget. Timeout
// or scorer failure yields the neutral default and the unscored flag; the
// turn proceeds either way.
func (m *Manager) grade(ctx context.Context, s *session, responseText string) (indicator float64, unscored bool) {
	gctx, cancel := context.WithTimeout(ctx, m.scoreTimeout)
	defer cancel()
	gctx = scorer.WithInteractionID(gctx, s.pendingInteractionID)

	grade, err := m.grader.Score(gctx, scorer.Submission{
		Question: s.pendingQuestion,
		Response: responseText,
		Concept:  s.conceptID,
		Subject:  s.subject,
	})
	if err != nil {
		return neutralScore, true
	}
	return grade.SuccessIndicator, false
}

// supportFor picks the remediation material shown before the next
// question, alternating between analogies and real-world examples.
func (m *Manager) supportFor(s *session) string {
	entry, err := catalog.Lookup(s.conceptID, s.subject, catalog.TierBasic)
	if err != nil {
		return ""
	}
	if s.consecutiveLow%2 == 1 {
		return s.picker.Analogy(entry)
	}
	return s.picker.RealWorldExample(entry)
}

// end closes the session, records the end event and, on a remediation
// cap, flags the learner for the recommendation engine and tags the
// subject as a weakness.
func (m *Manager) end(ctx context.Context, s *session, reason string) (*Turn, error) {
	s.ended = true
	s.endReason = reason
	s.phase = PhaseSessionEnd
	s.pendingInteractionID = ""

	if reason == EndReasonRemediationCap {
		if m.onRemediationCap != nil {
			m.onRemediationCap(s.learnerID, s.conceptID)
		}
		if err := m.profiles.InferWeakness(ctx, s.learnerID, s.subject); err != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to tag weakness: %v\n", err)
		}
	}

	if err := m.events.AppendSessionEvent(ctx, store.SessionEventData{
		SessionID:   s.id,
		LearnerID:   s.learnerID,
		Action:      "end",
		ConceptID:   s.conceptID,
		TurnsServed: s.turns,
		EndReason:   reason,
		Degraded:    s.degraded,
	}); err != nil {
		return nil, fmt.Errorf("record session end: %w", err)
	}

	m.evict(s.id)

	return &Turn{
		SessionID: s.id,
		Phase:     PhaseSessionEnd,
		ConceptID: s.conceptID,
		Subject:   s.subject,
		Degraded:  s.degraded,
		EndReason: reason,
	}, nil
}
