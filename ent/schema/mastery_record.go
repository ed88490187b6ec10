package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// MasteryRecord holds a learner's estimated proficiency in one concept.
// Exactly one live row per (learner, concept) pair; all writes are upserts.
type MasteryRecord struct {
	ent.Schema
}

func (MasteryRecord) Fields() []ent.Field {
	return []ent.Field{
		field.String("learner_id").
			NotEmpty(),
		field.String("concept_id").
			NotEmpty(),
		field.Float("score").
			Default(0).
			Comment("Mastery estimate, clamped to [0,1]"),
		field.Int("interaction_count").
			Default(0).
			Comment("Incremented on every update; drives the warm-up learning rate"),
		field.Time("last_updated_at").
			Default(time.Now).
			Comment("Basis for lazy exponential decay"),
	}
}

func (MasteryRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("learner_id", "concept_id").
			Unique(),
		index.Fields("learner_id"),
	}
}
