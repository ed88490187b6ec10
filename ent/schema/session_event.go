package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SessionEvent records session lifecycle events (start/end/cancel).
type SessionEvent struct {
	ent.Schema
}

func (SessionEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (SessionEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("UUID grouping events in a session"),
		field.String("learner_id").
			NotEmpty(),
		field.String("action").
			NotEmpty().
			Comment("start, end, or cancel"),
		field.String("concept_id").
			Default("").
			Comment("Concept hint the session was launched with, if any"),
		field.Int("turns_served").
			Default(0).
			Comment("Total probing turns (on end only)"),
		field.String("end_reason").
			Default("").
			Comment("max_turns, learner_exit, remediation_cap, or cancelled"),
		field.Bool("degraded").
			Default(false).
			Comment("Set when ledger writes failed after retries"),
	}
}

func (SessionEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("learner_id"),
		index.Fields("action"),
	}
}
