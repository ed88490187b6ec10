// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Interaction is the predicate function for interaction builders.
type Interaction func(*sql.Selector)

// LearnerProfile is the predicate function for learnerprofile builders.
type LearnerProfile func(*sql.Selector)

// MasteryRecord is the predicate function for masteryrecord builders.
type MasteryRecord func(*sql.Selector)

// Recommendation is the predicate function for recommendation builders.
type Recommendation func(*sql.Selector)

// ScorerEvent is the predicate function for scorerevent builders.
type ScorerEvent func(*sql.Selector)

// SessionEvent is the predicate function for sessionevent builders.
type SessionEvent func(*sql.Selector)
