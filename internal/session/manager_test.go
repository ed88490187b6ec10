package session

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/abhisek/paideia/internal/mastery"
	"github.com/abhisek/paideia/internal/profile"
	"github.com/abhisek/paideia/internal/scorer"
	"github.com/abhisek/paideia/internal/store"
)

// --- in-memory repos ---

type memInteractionRepo struct {
	mu   sync.Mutex
	rows []*store.InteractionRow
}

func (m *memInteractionRepo) Append(_ context.Context, data store.InteractionData) error {
	// The real store rejects empty keys at the schema level.
	if data.ConceptID == "" || data.Subject == "" {
		return errors.New("empty concept or subject")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rows = append(m.rows, &store.InteractionRow{
		Sequence:          int64(len(m.rows)),
		Timestamp:         time.Now(),
		InteractionID:     data.InteractionID,
		SessionID:         data.SessionID,
		LearnerID:         data.LearnerID,
		ConceptID:         data.ConceptID,
		Subject:           data.Subject,
		DifficultyLevel:   data.DifficultyLevel,
		Methodology:       data.Methodology,
		QuestionText:      data.QuestionText,
		Repeated:          data.Repeated,
		PrevInteractionID: data.PrevInteractionID,
	})
	return nil
}

func (m *memInteractionRepo) Score(_ context.Context, interactionID string, data store.ScoreData) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, r := range m.rows {
		if r.InteractionID == interactionID {
			if r.SuccessIndicator != nil || r.Unscored {
				return errors.New("already scored")
			}
			resp := data.ResponseText
			ind := data.SuccessIndicator
			r.ResponseText = &resp
			r.SuccessIndicator = &ind
			r.Unscored = data.Unscored
			r.ResponseLatencyMs = data.ResponseLatencyMs
			return nil
		}
	}
	return store.ErrNotFound
}

func (m *memInteractionRepo) BySession(_ context.Context, sessionID string) ([]*store.InteractionRow, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*store.InteractionRow
	for _, r := range m.rows {
		if r.SessionID == sessionID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *memInteractionRepo) RecentByLearner(_ context.Context, learnerID string, since time.Time) ([]*store.InteractionRow, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*store.InteractionRow
	for i := len(m.rows) - 1; i >= 0; i-- {
		if m.rows[i].LearnerID == learnerID && m.rows[i].Timestamp.After(since) {
			out = append(out, m.rows[i])
		}
	}
	return out, nil
}

func (m *memInteractionRepo) SubjectAccuracy(_ context.Context, learnerID, subject string, lastN int) (float64, int, error) {
	return 0, 0, nil
}

type memEventRepo struct {
	mu            sync.Mutex
	sessionEvents []store.SessionEventData
	scorerEvents  []store.ScorerEventData
}

func (m *memEventRepo) AppendSessionEvent(_ context.Context, data store.SessionEventData) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessionEvents = append(m.sessionEvents, data)
	return nil
}

func (m *memEventRepo) AppendScorerEvent(_ context.Context, data store.ScorerEventData) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.scorerEvents = append(m.scorerEvents, data)
	return nil
}

type memProfileRepo struct {
	mu   sync.Mutex
	rows map[string]*store.ProfileRow
}

func newMemProfileRepo() *memProfileRepo {
	return &memProfileRepo{rows: make(map[string]*store.ProfileRow)}
}

func (m *memProfileRepo) Get(_ context.Context, learnerID string) (*store.ProfileRow, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.rows[learnerID]
	if !ok {
		return nil, store.ErrNotFound
	}
	cp := *r
	return &cp, nil
}

func (m *memProfileRepo) Create(_ context.Context, row *store.ProfileRow) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *row
	m.rows[row.LearnerID] = &cp
	return nil
}

func (m *memProfileRepo) Save(_ context.Context, row *store.ProfileRow) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *row
	m.rows[row.LearnerID] = &cp
	return nil
}

func (m *memProfileRepo) ActiveLearnerIDs(_ context.Context) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var ids []string
	for id := range m.rows {
		ids = append(ids, id)
	}
	return ids, nil
}

func (m *memProfileRepo) Archive(_ context.Context, learnerID string) error { return nil }

type memMasteryRepo struct {
	mu       sync.Mutex
	rows     map[string]*store.MasteryRow
	failures int
}

func newMemMasteryRepo() *memMasteryRepo {
	return &memMasteryRepo{rows: make(map[string]*store.MasteryRow)}
}

func (m *memMasteryRepo) Get(_ context.Context, learnerID, conceptID string) (*store.MasteryRow, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.rows[learnerID+"/"+conceptID]
	if !ok {
		return nil, store.ErrNotFound
	}
	cp := *r
	return &cp, nil
}

func (m *memMasteryRepo) Upsert(_ context.Context, row *store.MasteryRow) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failures > 0 {
		m.failures--
		return errors.New("write conflict")
	}
	cp := *row
	m.rows[row.LearnerID+"/"+row.ConceptID] = &cp
	return nil
}

func (m *memMasteryRepo) ByLearner(_ context.Context, learnerID string) ([]*store.MasteryRow, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*store.MasteryRow
	for _, r := range m.rows {
		if r.LearnerID == learnerID {
			cp := *r
			out = append(out, &cp)
		}
	}
	return out, nil
}

// stalledScorer never answers before the context deadline.
type stalledScorer struct{}

func (stalledScorer) Score(ctx context.Context, _ scorer.Submission) (*scorer.Grade, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

func (stalledScorer) ModelID() string { return "stalled" }

// --- harness ---

type fixture struct {
	manager      *Manager
	interactions *memInteractionRepo
	events       *memEventRepo
	masteryRepo  *memMasteryRepo
	ledger       *mastery.Ledger
	grader       *scorer.MockScorer
	capHits      []string
}

func newFixture(t *testing.T, opts ...Option) *fixture {
	t.Helper()
	f := &fixture{
		interactions: &memInteractionRepo{},
		events:       &memEventRepo{},
		masteryRepo:  newMemMasteryRepo(),
		grader:       scorer.NewMockScorer(),
	}
	f.ledger = mastery.NewLedger(f.masteryRepo)

	opts = append(opts, WithCapNotify(func(learnerID, conceptID string) {
		f.capHits = append(f.capHits, learnerID+"/"+conceptID)
	}))

	f.manager = NewManager(
		profile.NewService(newMemProfileRepo()),
		f.ledger,
		f.grader,
		f.interactions,
		f.events,
		opts...,
	)
	return f
}

func (f *fixture) answer(t *testing.T, turn *Turn, indicator float64) *Turn {
	t.Helper()
	f.grader.AddGrade(scorer.MockGrade{SuccessIndicator: indicator})
	next, err := f.manager.SubmitResponse(context.Background(), turn.SessionID, turn.InteractionID, "an answer")
	if err != nil {
		t.Fatalf("SubmitResponse error: %v", err)
	}
	return next
}

// --- tests ---

func TestStartSession_IssuesProbingTurn(t *testing.T) {
	f := newFixture(t)

	turn, err := f.manager.StartSession(context.Background(), "learner-1", profile.RoleStudent, Hint{ConceptID: "fractions"})
	if err != nil {
		t.Fatalf("StartSession error: %v", err)
	}

	if turn.Phase != PhaseProbing {
		t.Errorf("Phase = %s, want probing", turn.Phase)
	}
	if turn.Question == "" {
		t.Error("no guiding question issued")
	}
	if turn.Methodology != profile.MethodVisualDemo {
		t.Errorf("Methodology = %s, want visual_demo for default student", turn.Methodology)
	}
	if len(f.interactions.rows) != 1 {
		t.Fatalf("interactions logged = %d, want 1", len(f.interactions.rows))
	}
	if f.interactions.rows[0].SuccessIndicator != nil {
		t.Error("interaction scored before any response")
	}
	if len(f.events.sessionEvents) != 1 || f.events.sessionEvents[0].Action != "start" {
		t.Errorf("session events = %+v, want one start", f.events.sessionEvents)
	}
}

func TestStartSession_InvalidLearner(t *testing.T) {
	f := newFixture(t)
	_, err := f.manager.StartSession(context.Background(), "", profile.RoleStudent, Hint{})
	if !errors.Is(err, profile.ErrInvalidLearner) {
		t.Fatalf("err = %v, want ErrInvalidLearner", err)
	}
}

func TestSubmitResponse_AdvancingOnHighScore(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	turn, err := f.manager.StartSession(ctx, "learner-1", profile.RoleStudent, Hint{ConceptID: "fractions"})
	if err != nil {
		t.Fatalf("StartSession error: %v", err)
	}

	next := f.answer(t, turn, 0.9)
	if next.Phase != PhaseAdvancing {
		t.Errorf("Phase = %s, want advancing", next.Phase)
	}
	if next.Question == turn.Question {
		t.Error("same question repeated immediately")
	}
	if next.Support != "" {
		t.Errorf("advancing turn carries support text %q", next.Support)
	}

	score, _ := f.ledger.GetScore(ctx, "learner-1", "fractions")
	if score <= 0 {
		t.Errorf("ledger not updated: score %v", score)
	}
}

func TestSubmitResponse_RemediatingOnLowScore(t *testing.T) {
	f := newFixture(t)
	turn, _ := f.manager.StartSession(context.Background(), "learner-1", profile.RoleStudent, Hint{ConceptID: "fractions"})

	next := f.answer(t, turn, 0.3)
	if next.Phase != PhaseRemediating {
		t.Errorf("Phase = %s, want remediating", next.Phase)
	}
	if next.Support == "" {
		t.Error("remediation turn missing analogy or example")
	}
	if next.Question == "" {
		t.Error("remediation turn missing guiding question")
	}
}

func TestSubmitResponse_RemediationCapEndsSession(t *testing.T) {
	f := newFixture(t)
	turn, _ := f.manager.StartSession(context.Background(), "learner-1", profile.RoleStudent, Hint{ConceptID: "fractions"})

	// Three consecutive low scores stay in remediation.
	for i := 0; i < 3; i++ {
		turn = f.answer(t, turn, 0.2)
		if turn.Phase != PhaseRemediating {
			t.Fatalf("turn %d: Phase = %s, want remediating", i+1, turn.Phase)
		}
	}

	// The fourth ends the segment.
	turn = f.answer(t, turn, 0.2)
	if turn.Phase != PhaseSessionEnd {
		t.Fatalf("Phase = %s, want session_end", turn.Phase)
	}
	if turn.EndReason != EndReasonRemediationCap {
		t.Errorf("EndReason = %s, want remediation_cap", turn.EndReason)
	}
	if len(f.capHits) != 1 || f.capHits[0] != "learner-1/fractions" {
		t.Errorf("cap notifications = %v", f.capHits)
	}
}

func TestSubmitResponse_MaxTurnsEndsSession(t *testing.T) {
	f := newFixture(t, WithMaxTurns(2))
	turn, _ := f.manager.StartSession(context.Background(), "learner-1", profile.RoleStudent, Hint{ConceptID: "fractions"})

	turn = f.answer(t, turn, 0.9)
	if turn.Phase != PhaseAdvancing {
		t.Fatalf("Phase = %s, want advancing", turn.Phase)
	}

	turn = f.answer(t, turn, 0.9)
	if turn.Phase != PhaseSessionEnd {
		t.Fatalf("Phase = %s, want session_end", turn.Phase)
	}
	if turn.EndReason != EndReasonMaxTurns {
		t.Errorf("EndReason = %s, want max_turns", turn.EndReason)
	}
}

func TestSubmitResponse_ScorerFailureUsesNeutralDefault(t *testing.T) {
	f := newFixture(t) // empty mock queue: every grade fails
	ctx := context.Background()
	turn, _ := f.manager.StartSession(ctx, "learner-1", profile.RoleStudent, Hint{ConceptID: "fractions"})

	next, err := f.manager.SubmitResponse(ctx, turn.SessionID, turn.InteractionID, "an answer")
	if err != nil {
		t.Fatalf("SubmitResponse error: %v", err)
	}
	// 0.5 < 0.7: the session remediates but continues.
	if next.Phase != PhaseRemediating {
		t.Errorf("Phase = %s, want remediating", next.Phase)
	}

	row := f.interactions.rows[0]
	if !row.Unscored {
		t.Error("interaction not flagged unscored")
	}
	if row.SuccessIndicator == nil || *row.SuccessIndicator != 0.5 {
		t.Errorf("SuccessIndicator = %v, want 0.5", row.SuccessIndicator)
	}
}

func TestSubmitResponse_ScorerTimeoutUsesNeutralDefault(t *testing.T) {
	f := newFixture(t, WithScoreTimeout(20*time.Millisecond))
	f.manager.grader = stalledScorer{}
	ctx := context.Background()

	turn, _ := f.manager.StartSession(ctx, "learner-1", profile.RoleStudent, Hint{ConceptID: "fractions"})
	next, err := f.manager.SubmitResponse(ctx, turn.SessionID, turn.InteractionID, "an answer")
	if err != nil {
		t.Fatalf("SubmitResponse error: %v", err)
	}
	if next.Phase != PhaseRemediating {
		t.Errorf("Phase = %s, want remediating after neutral 0.5", next.Phase)
	}
	if !f.interactions.rows[0].Unscored {
		t.Error("timed-out interaction not flagged unscored")
	}
}

func TestSubmitResponse_LateScoreAfterCancel(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	turn, _ := f.manager.StartSession(ctx, "learner-1", profile.RoleStudent, Hint{ConceptID: "fractions"})

	if err := f.manager.Cancel(ctx, turn.SessionID); err != nil {
		t.Fatalf("Cancel error: %v", err)
	}

	f.grader.AddGrade(scorer.MockGrade{SuccessIndicator: 0.9})
	_, err := f.manager.SubmitResponse(ctx, turn.SessionID, turn.InteractionID, "late answer")
	if !errors.Is(err, ErrSessionEnded) {
		t.Fatalf("err = %v, want ErrSessionEnded", err)
	}

	// The late score still reached the ledger.
	score, _ := f.ledger.GetScore(ctx, "learner-1", "fractions")
	if score <= 0 {
		t.Errorf("late score not applied: %v", score)
	}

	// Consuming the late score releases the session.
	if err := f.manager.Cancel(ctx, turn.SessionID); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("session retained after late score: err = %v", err)
	}
}

func TestEndedSessionsAreEvicted(t *testing.T) {
	f := newFixture(t, WithMaxTurns(1))
	ctx := context.Background()
	turn, _ := f.manager.StartSession(ctx, "learner-1", profile.RoleStudent, Hint{ConceptID: "fractions"})

	end := f.answer(t, turn, 0.9)
	if end.Phase != PhaseSessionEnd {
		t.Fatalf("Phase = %s, want session_end", end.Phase)
	}

	f.manager.mu.Lock()
	sessions, locks := len(f.manager.sessions), len(f.manager.locks)
	f.manager.mu.Unlock()
	if sessions != 0 || locks != 0 {
		t.Errorf("sessions = %d, locks = %d after end, want 0", sessions, locks)
	}

	if _, err := f.manager.SubmitResponse(ctx, turn.SessionID, turn.InteractionID, "late"); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("err = %v, want ErrSessionNotFound", err)
	}
}

func TestSubmitResponse_UnknownSessionAndInteraction(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	if _, err := f.manager.SubmitResponse(ctx, "nope", "x", "r"); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("err = %v, want ErrSessionNotFound", err)
	}

	turn, _ := f.manager.StartSession(ctx, "learner-1", profile.RoleStudent, Hint{ConceptID: "fractions"})
	if _, err := f.manager.SubmitResponse(ctx, turn.SessionID, "wrong-id", "r"); !errors.Is(err, ErrUnknownInteraction) {
		t.Errorf("err = %v, want ErrUnknownInteraction", err)
	}
}

func TestProbe_FallbackForUnknownConcept(t *testing.T) {
	f := newFixture(t)

	turn, err := f.manager.StartSession(context.Background(), "learner-1", profile.RoleStudent,
		Hint{ConceptID: "quantum-chromodynamics", Subject: "physics"})
	if err != nil {
		t.Fatalf("StartSession error: %v", err)
	}
	if !turn.Fallback {
		t.Error("unknown concept should use the generic fallback")
	}
	if turn.Question == "" {
		t.Error("fallback turn has no question")
	}
}

func TestProbe_FallbackForUnknownSubjectOnly(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	turn, err := f.manager.StartSession(ctx, "learner-1", profile.RoleStudent, Hint{Subject: "physics"})
	if err != nil {
		t.Fatalf("StartSession error: %v", err)
	}
	if !turn.Fallback {
		t.Error("unknown subject should use the generic fallback")
	}
	if turn.ConceptID != "physics" {
		t.Errorf("ConceptID = %q, want the probed topic", turn.ConceptID)
	}
	if got := f.interactions.rows[0].ConceptID; got != "physics" {
		t.Errorf("interaction concept = %q, want physics", got)
	}

	// Mastery rows use the same key, so progress persists.
	f.answer(t, turn, 0.9)
	score, err := f.ledger.GetScore(ctx, "learner-1", "physics")
	if err != nil {
		t.Fatalf("GetScore error: %v", err)
	}
	if score <= 0 {
		t.Errorf("fallback session did not update mastery: score %v", score)
	}
}

func TestSubmitResponse_DegradedSessionContinues(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	turn, _ := f.manager.StartSession(ctx, "learner-1", profile.RoleStudent, Hint{ConceptID: "fractions"})

	// Every ledger write fails; retries exhaust and the session degrades.
	f.masteryRepo.failures = 1000

	next := f.answer(t, turn, 0.9)
	if next.Phase == PhaseSessionEnd {
		t.Fatal("degraded session must not terminate")
	}
	if !next.Degraded {
		t.Error("turn not flagged degraded")
	}
	if next.Question == "" {
		t.Error("degraded session still owes the learner a question")
	}
}

func TestInteractions_FormCausalChain(t *testing.T) {
	f := newFixture(t)
	turn, _ := f.manager.StartSession(context.Background(), "learner-1", profile.RoleStudent, Hint{ConceptID: "fractions"})

	turn = f.answer(t, turn, 0.9)
	f.answer(t, turn, 0.9)

	rows := f.interactions.rows
	if len(rows) != 3 {
		t.Fatalf("interactions = %d, want 3", len(rows))
	}
	if rows[0].PrevInteractionID != "" {
		t.Errorf("first interaction has prev %q", rows[0].PrevInteractionID)
	}
	for i := 1; i < len(rows); i++ {
		if rows[i].PrevInteractionID != rows[i-1].InteractionID {
			t.Errorf("interaction %d does not chain to %d", i, i-1)
		}
	}
}

func TestCancel_Idempotent(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	turn, _ := f.manager.StartSession(ctx, "learner-1", profile.RoleStudent, Hint{ConceptID: "fractions"})

	if err := f.manager.Cancel(ctx, turn.SessionID); err != nil {
		t.Fatalf("Cancel error: %v", err)
	}
	if err := f.manager.Cancel(ctx, turn.SessionID); err != nil {
		t.Fatalf("second Cancel error: %v", err)
	}

	// Exactly one cancel event recorded.
	cancels := 0
	for _, ev := range f.events.sessionEvents {
		if ev.Action == "cancel" {
			cancels++
		}
	}
	if cancels != 1 {
		t.Errorf("cancel events = %d, want 1", cancels)
	}
}
