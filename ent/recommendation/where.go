// Code generated by ent, DO NOT EDIT.

package recommendation

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/paideia/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldLTE(FieldID, id))
}

// RecommendationID applies equality check predicate on the "recommendation_id" field. It's identical to RecommendationIDEQ.
func RecommendationID(v string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldEQ(FieldRecommendationID, v))
}

// LearnerID applies equality check predicate on the "learner_id" field. It's identical to LearnerIDEQ.
func LearnerID(v string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldEQ(FieldLearnerID, v))
}

// RecType applies equality check predicate on the "rec_type" field. It's identical to RecTypeEQ.
func RecType(v string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldEQ(FieldRecType, v))
}

// ConceptID applies equality check predicate on the "concept_id" field. It's identical to ConceptIDEQ.
func ConceptID(v string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldEQ(FieldConceptID, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldEQ(FieldTitle, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldEQ(FieldDescription, v))
}

// Reasoning applies equality check predicate on the "reasoning" field. It's identical to ReasoningEQ.
func Reasoning(v string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldEQ(FieldReasoning, v))
}

// DifficultyLevel applies equality check predicate on the "difficulty_level" field. It's identical to DifficultyLevelEQ.
func DifficultyLevel(v int) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldEQ(FieldDifficultyLevel, v))
}

// EstimatedMinutes applies equality check predicate on the "estimated_minutes" field. It's identical to EstimatedMinutesEQ.
func EstimatedMinutes(v int) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldEQ(FieldEstimatedMinutes, v))
}

// Priority applies equality check predicate on the "priority" field. It's identical to PriorityEQ.
func Priority(v int) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldEQ(FieldPriority, v))
}

// Urgency applies equality check predicate on the "urgency" field. It's identical to UrgencyEQ.
func Urgency(v string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldEQ(FieldUrgency, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldEQ(FieldStatus, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldEQ(FieldCreatedAt, v))
}

// ExpiresAt applies equality check predicate on the "expires_at" field. It's identical to ExpiresAtEQ.
func ExpiresAt(v time.Time) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldEQ(FieldExpiresAt, v))
}

// RecommendationIDEQ applies the EQ predicate on the "recommendation_id" field.
func RecommendationIDEQ(v string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldEQ(FieldRecommendationID, v))
}

// RecommendationIDNEQ applies the NEQ predicate on the "recommendation_id" field.
func RecommendationIDNEQ(v string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldNEQ(FieldRecommendationID, v))
}

// RecommendationIDIn applies the In predicate on the "recommendation_id" field.
func RecommendationIDIn(vs ...string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldIn(FieldRecommendationID, vs...))
}

// RecommendationIDNotIn applies the NotIn predicate on the "recommendation_id" field.
func RecommendationIDNotIn(vs ...string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldNotIn(FieldRecommendationID, vs...))
}

// RecommendationIDGT applies the GT predicate on the "recommendation_id" field.
func RecommendationIDGT(v string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldGT(FieldRecommendationID, v))
}

// RecommendationIDGTE applies the GTE predicate on the "recommendation_id" field.
func RecommendationIDGTE(v string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldGTE(FieldRecommendationID, v))
}

// RecommendationIDLT applies the LT predicate on the "recommendation_id" field.
func RecommendationIDLT(v string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldLT(FieldRecommendationID, v))
}

// RecommendationIDLTE applies the LTE predicate on the "recommendation_id" field.
func RecommendationIDLTE(v string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldLTE(FieldRecommendationID, v))
}

// RecommendationIDContains applies the Contains predicate on the "recommendation_id" field.
func RecommendationIDContains(v string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldContains(FieldRecommendationID, v))
}

// RecommendationIDHasPrefix applies the HasPrefix predicate on the "recommendation_id" field.
func RecommendationIDHasPrefix(v string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldHasPrefix(FieldRecommendationID, v))
}

// RecommendationIDHasSuffix applies the HasSuffix predicate on the "recommendation_id" field.
func RecommendationIDHasSuffix(v string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldHasSuffix(FieldRecommendationID, v))
}

// RecommendationIDEqualFold applies the EqualFold predicate on the "recommendation_id" field.
func RecommendationIDEqualFold(v string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldEqualFold(FieldRecommendationID, v))
}

// RecommendationIDContainsFold applies the ContainsFold predicate on the "recommendation_id" field.
func RecommendationIDContainsFold(v string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldContainsFold(FieldRecommendationID, v))
}

// LearnerIDEQ applies the EQ predicate on the "learner_id" field.
func LearnerIDEQ(v string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldEQ(FieldLearnerID, v))
}

// LearnerIDNEQ applies the NEQ predicate on the "learner_id" field.
func LearnerIDNEQ(v string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldNEQ(FieldLearnerID, v))
}

// LearnerIDIn applies the In predicate on the "learner_id" field.
func LearnerIDIn(vs ...string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldIn(FieldLearnerID, vs...))
}

// LearnerIDNotIn applies the NotIn predicate on the "learner_id" field.
func LearnerIDNotIn(vs ...string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldNotIn(FieldLearnerID, vs...))
}

// LearnerIDGT applies the GT predicate on the "learner_id" field.
func LearnerIDGT(v string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldGT(FieldLearnerID, v))
}

// LearnerIDGTE applies the GTE predicate on the "learner_id" field.
func LearnerIDGTE(v string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldGTE(FieldLearnerID, v))
}

// LearnerIDLT applies the LT predicate on the "learner_id" field.
func LearnerIDLT(v string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldLT(FieldLearnerID, v))
}

// LearnerIDLTE applies the LTE predicate on the "learner_id" field.
func LearnerIDLTE(v string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldLTE(FieldLearnerID, v))
}

// LearnerIDContains applies the Contains predicate on the "learner_id" field.
func LearnerIDContains(v string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldContains(FieldLearnerID, v))
}

// LearnerIDHasPrefix applies the HasPrefix predicate on the "learner_id" field.
func LearnerIDHasPrefix(v string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldHasPrefix(FieldLearnerID, v))
}

// LearnerIDHasSuffix applies the HasSuffix predicate on the "learner_id" field.
func LearnerIDHasSuffix(v string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldHasSuffix(FieldLearnerID, v))
}

// LearnerIDEqualFold applies the EqualFold predicate on the "learner_id" field.
func LearnerIDEqualFold(v string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldEqualFold(FieldLearnerID, v))
}

// LearnerIDContainsFold applies the ContainsFold predicate on the "learner_id" field.
func LearnerIDContainsFold(v string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldContainsFold(FieldLearnerID, v))
}

// RecTypeEQ applies the EQ predicate on the "rec_type" field.
func RecTypeEQ(v string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldEQ(FieldRecType, v))
}

// RecTypeNEQ applies the NEQ predicate on the "rec_type" field.
func RecTypeNEQ(v string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldNEQ(FieldRecType, v))
}

// RecTypeIn applies the In predicate on the "rec_type" field.
func RecTypeIn(vs ...string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldIn(FieldRecType, vs...))
}

// RecTypeNotIn applies the NotIn predicate on the "rec_type" field.
func RecTypeNotIn(vs ...string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldNotIn(FieldRecType, vs...))
}

// RecTypeGT applies the GT predicate on the "rec_type" field.
func RecTypeGT(v string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldGT(FieldRecType, v))
}

// RecTypeGTE applies the GTE predicate on the "rec_type" field.
func RecTypeGTE(v string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldGTE(FieldRecType, v))
}

// RecTypeLT applies the LT predicate on the "rec_type" field.
func RecTypeLT(v string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldLT(FieldRecType, v))
}

// RecTypeLTE applies the LTE predicate on the "rec_type" field.
func RecTypeLTE(v string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldLTE(FieldRecType, v))
}

// RecTypeContains applies the Contains predicate on the "rec_type" field.
func RecTypeContains(v string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldContains(FieldRecType, v))
}

// RecTypeHasPrefix applies the HasPrefix predicate on the "rec_type" field.
func RecTypeHasPrefix(v string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldHasPrefix(FieldRecType, v))
}

// RecTypeHasSuffix applies the HasSuffix predicate on the "rec_type" field.
func RecTypeHasSuffix(v string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldHasSuffix(FieldRecType, v))
}

// RecTypeEqualFold applies the EqualFold predicate on the "rec_type" field.
func RecTypeEqualFold(v string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldEqualFold(FieldRecType, v))
}

// RecTypeContainsFold applies the ContainsFold predicate on the "rec_type" field.
func RecTypeContainsFold(v string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldContainsFold(FieldRecType, v))
}

// ConceptIDEQ applies the EQ predicate on the "concept_id" field.
func ConceptIDEQ(v string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldEQ(FieldConceptID, v))
}

// ConceptIDNEQ applies the NEQ predicate on the "concept_id" field.
func ConceptIDNEQ(v string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldNEQ(FieldConceptID, v))
}

// ConceptIDIn applies the In predicate on the "concept_id" field.
func ConceptIDIn(vs ...string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldIn(FieldConceptID, vs...))
}

// ConceptIDNotIn applies the NotIn predicate on the "concept_id" field.
func ConceptIDNotIn(vs ...string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldNotIn(FieldConceptID, vs...))
}

// ConceptIDGT applies the GT predicate on the "concept_id" field.
func ConceptIDGT(v string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldGT(FieldConceptID, v))
}

// ConceptIDGTE applies the GTE predicate on the "concept_id" field.
func ConceptIDGTE(v string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldGTE(FieldConceptID, v))
}

// ConceptIDLT applies the LT predicate on the "concept_id" field.
func ConceptIDLT(v string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldLT(FieldConceptID, v))
}

// ConceptIDLTE applies the LTE predicate on the "concept_id" field.
func ConceptIDLTE(v string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldLTE(FieldConceptID, v))
}

// ConceptIDContains applies the Contains predicate on the "concept_id" field.
func ConceptIDContains(v string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldContains(FieldConceptID, v))
}

// ConceptIDHasPrefix applies the HasPrefix predicate on the "concept_id" field.
func ConceptIDHasPrefix(v string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldHasPrefix(FieldConceptID, v))
}

// ConceptIDHasSuffix applies the HasSuffix predicate on the "concept_id" field.
func ConceptIDHasSuffix(v string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldHasSuffix(FieldConceptID, v))
}

// ConceptIDEqualFold applies the EqualFold predicate on the "concept_id" field.
func ConceptIDEqualFold(v string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldEqualFold(FieldConceptID, v))
}

// ConceptIDContainsFold applies the ContainsFold predicate on the "concept_id" field.
func ConceptIDContainsFold(v string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldContainsFold(FieldConceptID, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldContainsFold(FieldTitle, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldContainsFold(FieldDescription, v))
}

// ReasoningEQ applies the EQ predicate on the "reasoning" field.
func ReasoningEQ(v string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldEQ(FieldReasoning, v))
}

// ReasoningNEQ applies the NEQ predicate on the "reasoning" field.
func ReasoningNEQ(v string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldNEQ(FieldReasoning, v))
}

// ReasoningIn applies the In predicate on the "reasoning" field.
func ReasoningIn(vs ...string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldIn(FieldReasoning, vs...))
}

// ReasoningNotIn applies the NotIn predicate on the "reasoning" field.
func ReasoningNotIn(vs ...string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldNotIn(FieldReasoning, vs...))
}

// ReasoningGT applies the GT predicate on the "reasoning" field.
func ReasoningGT(v string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldGT(FieldReasoning, v))
}

// ReasoningGTE applies the GTE predicate on the "reasoning" field.
func ReasoningGTE(v string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldGTE(FieldReasoning, v))
}

// ReasoningLT applies the LT predicate on the "reasoning" field.
func ReasoningLT(v string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldLT(FieldReasoning, v))
}

// ReasoningLTE applies the LTE predicate on the "reasoning" field.
func ReasoningLTE(v string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldLTE(FieldReasoning, v))
}

// ReasoningContains applies the Contains predicate on the "reasoning" field.
func ReasoningContains(v string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldContains(FieldReasoning, v))
}

// ReasoningHasPrefix applies the HasPrefix predicate on the "reasoning" field.
func ReasoningHasPrefix(v string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldHasPrefix(FieldReasoning, v))
}

// ReasoningHasSuffix applies the HasSuffix predicate on the "reasoning" field.
func ReasoningHasSuffix(v string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldHasSuffix(FieldReasoning, v))
}

// ReasoningEqualFold applies the EqualFold predicate on the "reasoning" field.
func ReasoningEqualFold(v string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldEqualFold(FieldReasoning, v))
}

// ReasoningContainsFold applies the ContainsFold predicate on the "reasoning" field.
func ReasoningContainsFold(v string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldContainsFold(FieldReasoning, v))
}

// DifficultyLevelEQ applies the EQ predicate on the "difficulty_level" field.
func DifficultyLevelEQ(v int) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldEQ(FieldDifficultyLevel, v))
}

// DifficultyLevelNEQ applies the NEQ predicate on the "difficulty_level" field.
func DifficultyLevelNEQ(v int) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldNEQ(FieldDifficultyLevel, v))
}

// DifficultyLevelIn applies the In predicate on the "difficulty_level" field.
func DifficultyLevelIn(vs ...int) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldIn(FieldDifficultyLevel, vs...))
}

// DifficultyLevelNotIn applies the NotIn predicate on the "difficulty_level" field.
func DifficultyLevelNotIn(vs ...int) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldNotIn(FieldDifficultyLevel, vs...))
}

// DifficultyLevelGT applies the GT predicate on the "difficulty_level" field.
func DifficultyLevelGT(v int) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldGT(FieldDifficultyLevel, v))
}

// DifficultyLevelGTE applies the GTE predicate on the "difficulty_level" field.
func DifficultyLevelGTE(v int) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldGTE(FieldDifficultyLevel, v))
}

// DifficultyLevelLT applies the LT predicate on the "difficulty_level" field.
func DifficultyLevelLT(v int) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldLT(FieldDifficultyLevel, v))
}

// DifficultyLevelLTE applies the LTE predicate on the "difficulty_level" field.
func DifficultyLevelLTE(v int) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldLTE(FieldDifficultyLevel, v))
}

// EstimatedMinutesEQ applies the EQ predicate on the "estimated_minutes" field.
func EstimatedMinutesEQ(v int) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldEQ(FieldEstimatedMinutes, v))
}

// EstimatedMinutesNEQ applies the NEQ predicate on the "estimated_minutes" field.
func EstimatedMinutesNEQ(v int) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldNEQ(FieldEstimatedMinutes, v))
}

// EstimatedMinutesIn applies the In predicate on the "estimated_minutes" field.
func EstimatedMinutesIn(vs ...int) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldIn(FieldEstimatedMinutes, vs...))
}

// EstimatedMinutesNotIn applies the NotIn predicate on the "estimated_minutes" field.
func EstimatedMinutesNotIn(vs ...int) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldNotIn(FieldEstimatedMinutes, vs...))
}

// EstimatedMinutesGT applies the GT predicate on the "estimated_minutes" field.
func EstimatedMinutesGT(v int) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldGT(FieldEstimatedMinutes, v))
}

// EstimatedMinutesGTE applies the GTE predicate on the "estimated_minutes" field.
func EstimatedMinutesGTE(v int) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldGTE(FieldEstimatedMinutes, v))
}

// EstimatedMinutesLT applies the LT predicate on the "estimated_minutes" field.
func EstimatedMinutesLT(v int) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldLT(FieldEstimatedMinutes, v))
}

// EstimatedMinutesLTE applies the LTE predicate on the "estimated_minutes" field.
func EstimatedMinutesLTE(v int) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldLTE(FieldEstimatedMinutes, v))
}

// PriorityEQ applies the EQ predicate on the "priority" field.
func PriorityEQ(v int) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldEQ(FieldPriority, v))
}

// PriorityNEQ applies the NEQ predicate on the "priority" field.
func PriorityNEQ(v int) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldNEQ(FieldPriority, v))
}

// PriorityIn applies the In predicate on the "priority" field.
func PriorityIn(vs ...int) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldIn(FieldPriority, vs...))
}

// PriorityNotIn applies the NotIn predicate on the "priority" field.
func PriorityNotIn(vs ...int) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldNotIn(FieldPriority, vs...))
}

// PriorityGT applies the GT predicate on the "priority" field.
func PriorityGT(v int) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldGT(FieldPriority, v))
}

// PriorityGTE applies the GTE predicate on the "priority" field.
func PriorityGTE(v int) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldGTE(FieldPriority, v))
}

// PriorityLT applies the LT predicate on the "priority" field.
func PriorityLT(v int) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldLT(FieldPriority, v))
}

// PriorityLTE applies the LTE predicate on the "priority" field.
func PriorityLTE(v int) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldLTE(FieldPriority, v))
}

// UrgencyEQ applies the EQ predicate on the "urgency" field.
func UrgencyEQ(v string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldEQ(FieldUrgency, v))
}

// UrgencyNEQ applies the NEQ predicate on the "urgency" field.
func UrgencyNEQ(v string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldNEQ(FieldUrgency, v))
}

// UrgencyIn applies the In predicate on the "urgency" field.
func UrgencyIn(vs ...string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldIn(FieldUrgency, vs...))
}

// UrgencyNotIn applies the NotIn predicate on the "urgency" field.
func UrgencyNotIn(vs ...string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldNotIn(FieldUrgency, vs...))
}

// UrgencyGT applies the GT predicate on the "urgency" field.
func UrgencyGT(v string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldGT(FieldUrgency, v))
}

// UrgencyGTE applies the GTE predicate on the "urgency" field.
func UrgencyGTE(v string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldGTE(FieldUrgency, v))
}

// UrgencyLT applies the LT predicate on the "urgency" field.
func UrgencyLT(v string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldLT(FieldUrgency, v))
}

// UrgencyLTE applies the LTE predicate on the "urgency" field.
func UrgencyLTE(v string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldLTE(FieldUrgency, v))
}

// UrgencyContains applies the Contains predicate on the "urgency" field.
func UrgencyContains(v string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldContains(FieldUrgency, v))
}

// UrgencyHasPrefix applies the HasPrefix predicate on the "urgency" field.
func UrgencyHasPrefix(v string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldHasPrefix(FieldUrgency, v))
}

// UrgencyHasSuffix applies the HasSuffix predicate on the "urgency" field.
func UrgencyHasSuffix(v string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldHasSuffix(FieldUrgency, v))
}

// UrgencyEqualFold applies the EqualFold predicate on the "urgency" field.
func UrgencyEqualFold(v string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldEqualFold(FieldUrgency, v))
}

// UrgencyContainsFold applies the ContainsFold predicate on the "urgency" field.
func UrgencyContainsFold(v string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldContainsFold(FieldUrgency, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldContainsFold(FieldStatus, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldLTE(FieldCreatedAt, v))
}

// ExpiresAtEQ applies the EQ predicate on the "expires_at" field.
func ExpiresAtEQ(v time.Time) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldEQ(FieldExpiresAt, v))
}

// ExpiresAtNEQ applies the NEQ predicate on the "expires_at" field.
func ExpiresAtNEQ(v time.Time) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldNEQ(FieldExpiresAt, v))
}

// ExpiresAtIn applies the In predicate on the "expires_at" field.
func ExpiresAtIn(vs ...time.Time) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldIn(FieldExpiresAt, vs...))
}

// ExpiresAtNotIn applies the NotIn predicate on the "expires_at" field.
func ExpiresAtNotIn(vs ...time.Time) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldNotIn(FieldExpiresAt, vs...))
}

// ExpiresAtGT applies the GT predicate on the "expires_at" field.
func ExpiresAtGT(v time.Time) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldGT(FieldExpiresAt, v))
}

// ExpiresAtGTE applies the GTE predicate on the "expires_at" field.
func ExpiresAtGTE(v time.Time) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldGTE(FieldExpiresAt, v))
}

// ExpiresAtLT applies the LT predicate on the "expires_at" field.
func ExpiresAtLT(v time.Time) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldLT(FieldExpiresAt, v))
}

// ExpiresAtLTE applies the LTE predicate on the "expires_at" field.
func ExpiresAtLTE(v time.Time) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldLTE(FieldExpiresAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Recommendation) predicate.Recommendation {
	return predicate.Recommendation(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Recommendation) predicate.Recommendation {
	return predicate.Recommendation(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Recommendation) predicate.Recommendation {
	return predicate.Recommendation(sql.NotPredicates(p))
}
