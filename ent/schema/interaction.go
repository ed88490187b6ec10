package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Interaction records a single tutoring exchange: a guiding question issued
// to a learner, and (once available) the learner's response and its score.
// Rows are append-only; the only permitted update is the one-time scoring
// of a previously unscored row.
type Interaction struct {
	ent.Schema
}

func (Interaction) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (Interaction) Fields() []ent.Field {
	return []ent.Field{
		field.String("interaction_id").
			NotEmpty().
			Unique().
			Comment("UUID for this exchange"),
		field.String("session_id").
			NotEmpty().
			Comment("UUID grouping interactions in a session"),
		field.String("learner_id").
			NotEmpty(),
		field.String("concept_id").
			NotEmpty(),
		field.String("subject").
			NotEmpty(),
		field.Int("difficulty_level").
			Comment("1-10, derived from tier and mastery"),
		field.String("methodology").
			NotEmpty().
			Comment("visual_demo, scaffolding, direct_instruction, discovery, socratic"),
		field.String("question_text").
			NotEmpty(),
		field.String("response_text").
			Optional().
			Nillable().
			Comment("Absent until the learner answers"),
		field.Float("success_indicator").
			Optional().
			Nillable().
			Comment("0-1 grade from the external scorer; absent until scored"),
		field.Bool("unscored").
			Default(false).
			Comment("Set when the scorer timed out and a neutral default was used"),
		field.Bool("repeated_question").
			Default(false).
			Comment("Set when the catalog's question pool was exhausted"),
		field.String("prev_interaction_id").
			Default("").
			Comment("Causal link to the preceding interaction in the session"),
		field.Int64("response_latency_ms").
			Default(0),
		field.String("time_of_day").
			Default(""),
		field.String("device_type").
			Default(""),
	}
}

func (Interaction) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("learner_id"),
		index.Fields("concept_id"),
		index.Fields("unscored"),
	}
}
