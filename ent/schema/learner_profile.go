package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// LearnerProfile holds per-learner pedagogical state: role, learning-style
// affinities, tags, and the derived completeness fraction. One row per
// learner; never hard-deleted, only archived when the upstream learner
// record is removed.
type LearnerProfile struct {
	ent.Schema
}

func (LearnerProfile) Fields() []ent.Field {
	return []ent.Field{
		field.String("learner_id").
			NotEmpty().
			Unique().
			Immutable().
			Comment("Opaque identifier owned by the upstream identity source"),
		field.String("role").
			NotEmpty().
			Comment("student, instructor, admin, content_creator, mentor"),
		field.Int("style_visual").
			Default(50).
			Comment("0-100 affinity signal"),
		field.Int("style_auditory").
			Default(50),
		field.Int("style_kinesthetic").
			Default(50),
		field.Int("style_reading").
			Default(50),
		field.JSON("interests", []string{}).
			Optional(),
		field.JSON("strengths", []string{}).
			Optional(),
		field.JSON("weaknesses", []string{}).
			Optional(),
		field.Int("age").
			Default(0).
			Comment("0 means unknown"),
		field.String("education_level").
			Default(""),
		field.String("cultural_context").
			Default(""),
		field.Float("completeness").
			Default(0).
			Comment("Fraction of populated optional fields, 0-1"),
		field.Bool("archived").
			Default(false),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

func (LearnerProfile) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("role"),
		index.Fields("archived"),
	}
}
