package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Recommendation is a scored, prioritized learning suggestion produced by
// the recommendation engine. At most one pending row may exist per
// (learner, type, concept) tuple; generation upserts rather than inserts.
// Expired rows transition to the expired status lazily on read and are
// never deleted.
type Recommendation struct {
	ent.Schema
}

func (Recommendation) Fields() []ent.Field {
	return []ent.Field{
		field.String("recommendation_id").
			NotEmpty().
			Unique().
			Immutable().
			Comment("UUID"),
		field.String("learner_id").
			NotEmpty(),
		field.String("rec_type").
			NotEmpty().
			Comment("next_concept, study_strategy, resource_recommendation, skill_development, motivation_boost"),
		field.String("concept_id").
			Default("").
			Comment("Empty for learner-wide types"),
		field.String("title").
			NotEmpty(),
		field.String("description").
			NotEmpty(),
		field.String("reasoning").
			NotEmpty().
			Comment("Human-readable justification"),
		field.Int("difficulty_level").
			Default(1).
			Comment("1-10"),
		field.Int("estimated_minutes").
			Default(10),
		field.Int("priority").
			Comment("1-10"),
		field.String("urgency").
			NotEmpty().
			Comment("low, medium, high"),
		field.String("status").
			Default("pending").
			Comment("pending, accepted, dismissed, expired"),
		field.Time("created_at").
			Default(time.Now),
		field.Time("expires_at"),
	}
}

func (Recommendation) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("learner_id", "status"),
		index.Fields("learner_id", "rec_type", "concept_id", "status"),
		index.Fields("expires_at"),
	}
}
