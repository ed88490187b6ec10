package session

import (
	"time"

	"github.com/abhisek/paideia/internal/catalog"
	"github.com/abhisek/paideia/internal/profile"
)

// Phase is a state of the per-turn session state machine:
// Probing -> Evaluating -> {Advancing | Remediating} -> Probing | SessionEnd.
type Phase string

const (
	PhaseProbing     Phase = "probing"
	PhaseEvaluating  Phase = "evaluating"
	PhaseAdvancing   Phase = "advancing"
	PhaseRemediating Phase = "remediating"
	PhaseSessionEnd  Phase = "session_end"
)

// End reasons recorded on the session end event.
const (
	EndReasonMaxTurns       = "max_turns"
	EndReasonRemediationCap = "remediation_cap"
	EndReasonCancelled      = "cancelled"
)

// Turn is what the session manager hands back to the caller after each
// transition: the question to put to the learner, plus enough context to
// render it.
type Turn struct {
	SessionID     string
	InteractionID string
	Phase         Phase

	ConceptID       string
	Subject         string
	Tier            catalog.Tier
	DifficultyLevel int
	Methodology     profile.Methodology

	// Question is the guiding question. Empty when Phase is SessionEnd.
	Question string

	// Support is the analogy or real-world example presented before the
	// question on a remediation turn.
	Support string

	// Repeated is set when the catalog's question pool was exhausted and
	// a question had to be reused.
	Repeated bool

	// Fallback is set when the concept was not in the catalog and the
	// generic template fallback was used.
	Fallback bool

	// Degraded is set when a ledger write failed past its retry budget.
	// The session continues; scores may lag.
	Degraded bool

	// EndReason is set when Phase is SessionEnd.
	EndReason string
}

// session is the mutable per-session state. Guarded by its own mutex so
// sessions for different learners never contend.
type session struct {
	id        string
	learnerID string
	subject   string
	conceptID string

	methodology profile.Methodology
	picker      *catalog.Picker

	phase          Phase
	turns          int
	consecutiveLow int
	degraded       bool
	ended          bool
	endReason      string

	asked map[string]bool

	lastInteractionID    string
	pendingInteractionID string
	pendingQuestion      string
	issuedAt             time.Time

	deviceType string
}

// difficultyLevel maps a mastery score to the 1-10 difficulty scale.
// The mapping keeps levels aligned with tiers: basic covers 1-3,
// intermediate 4-7, advanced 8-10.
func difficultyLevel(score float64) int {
	level := 1 + int(score*9)
	if level > 10 {
		level = 10
	}
	return level
}

// timeOfDay buckets a timestamp for the interaction log.
func timeOfDay(t time.Time) string {
	switch h := t.Hour(); {
	case h < 6:
		return "night"
	case h < 12:
		return "morning"
	case h < 18:
		return "afternoon"
	default:
		return "evening"
	}
}
