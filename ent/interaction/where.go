// Code generated by ent, DO NOT EDIT.

package interaction

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/paideia/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Interaction {
	return predicate.Interaction(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Interaction {
	return predicate.Interaction(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Interaction {
	return predicate.Interaction(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Interaction {
	return predicate.Interaction(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Interaction {
	return predicate.Interaction(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Interaction {
	return predicate.Interaction(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Interaction {
	return predicate.Interaction(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Interaction {
	return predicate.Interaction(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Interaction {
	return predicate.Interaction(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.Interaction {
	return predicate.Interaction(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.Interaction {
	return predicate.Interaction(sql.FieldEQ(FieldTimestamp, v))
}

// InteractionID applies equality check predicate on the "interaction_id" field. It's identical to InteractionIDEQ.
func InteractionID(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldEQ(FieldInteractionID, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldEQ(FieldSessionID, v))
}

// LearnerID applies equality check predicate on the "learner_id" field. It's identical to LearnerIDEQ.
func LearnerID(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldEQ(FieldLearnerID, v))
}

// ConceptID applies equality check predicate on the "concept_id" field. It's identical to ConceptIDEQ.
func ConceptID(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldEQ(FieldConceptID, v))
}

// Subject applies equality check predicate on the "subject" field. It's identical to SubjectEQ.
func Subject(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldEQ(FieldSubject, v))
}

// DifficultyLevel applies equality check predicate on the "difficulty_level" field. It's identical to DifficultyLevelEQ.
func DifficultyLevel(v int) predicate.Interaction {
	return predicate.Interaction(sql.FieldEQ(FieldDifficultyLevel, v))
}

// Methodology applies equality check predicate on the "methodology" field. It's identical to MethodologyEQ.
func Methodology(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldEQ(FieldMethodology, v))
}

// QuestionText applies equality check predicate on the "question_text" field. It's identical to QuestionTextEQ.
func QuestionText(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldEQ(FieldQuestionText, v))
}

// ResponseText applies equality check predicate on the "response_text" field. It's identical to ResponseTextEQ.
func ResponseText(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldEQ(FieldResponseText, v))
}

// SuccessIndicator applies equality check predicate on the "success_indicator" field. It's identical to SuccessIndicatorEQ.
func SuccessIndicator(v float64) predicate.Interaction {
	return predicate.Interaction(sql.FieldEQ(FieldSuccessIndicator, v))
}

// Unscored applies equality check predicate on the "unscored" field. It's identical to UnscoredEQ.
func Unscored(v bool) predicate.Interaction {
	return predicate.Interaction(sql.FieldEQ(FieldUnscored, v))
}

// RepeatedQuestion applies equality check predicate on the "repeated_question" field. It's identical to RepeatedQuestionEQ.
func RepeatedQuestion(v bool) predicate.Interaction {
	return predicate.Interaction(sql.FieldEQ(FieldRepeatedQuestion, v))
}

// PrevInteractionID applies equality check predicate on the "prev_interaction_id" field. It's identical to PrevInteractionIDEQ.
func PrevInteractionID(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldEQ(FieldPrevInteractionID, v))
}

// ResponseLatencyMs applies equality check predicate on the "response_latency_ms" field. It's identical to ResponseLatencyMsEQ.
func ResponseLatencyMs(v int64) predicate.Interaction {
	return predicate.Interaction(sql.FieldEQ(FieldResponseLatencyMs, v))
}

// TimeOfDay applies equality check predicate on the "time_of_day" field. It's identical to TimeOfDayEQ.
func TimeOfDay(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldEQ(FieldTimeOfDay, v))
}

// DeviceType applies equality check predicate on the "device_type" field. It's identical to DeviceTypeEQ.
func DeviceType(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldEQ(FieldDeviceType, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.Interaction {
	return predicate.Interaction(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.Interaction {
	return predicate.Interaction(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.Interaction {
	return predicate.Interaction(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.Interaction {
	return predicate.Interaction(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.Interaction {
	return predicate.Interaction(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.Interaction {
	return predicate.Interaction(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.Interaction {
	return predicate.Interaction(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.Interaction {
	return predicate.Interaction(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.Interaction {
	return predicate.Interaction(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.Interaction {
	return predicate.Interaction(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.Interaction {
	return predicate.Interaction(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.Interaction {
	return predicate.Interaction(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.Interaction {
	return predicate.Interaction(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.Interaction {
	return predicate.Interaction(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.Interaction {
	return predicate.Interaction(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.Interaction {
	return predicate.Interaction(sql.FieldLTE(FieldTimestamp, v))
}

// InteractionIDEQ applies the EQ predicate on the "interaction_id" field.
func InteractionIDEQ(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldEQ(FieldInteractionID, v))
}

// InteractionIDNEQ applies the NEQ predicate on the "interaction_id" field.
func InteractionIDNEQ(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldNEQ(FieldInteractionID, v))
}

// InteractionIDIn applies the In predicate on the "interaction_id" field.
func InteractionIDIn(vs ...string) predicate.Interaction {
	return predicate.Interaction(sql.FieldIn(FieldInteractionID, vs...))
}

// InteractionIDNotIn applies the NotIn predicate on the "interaction_id" field.
func InteractionIDNotIn(vs ...string) predicate.Interaction {
	return predicate.Interaction(sql.FieldNotIn(FieldInteractionID, vs...))
}

// InteractionIDGT applies the GT predicate on the "interaction_id" field.
func InteractionIDGT(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldGT(FieldInteractionID, v))
}

// InteractionIDGTE applies the GTE predicate on the "interaction_id" field.
func InteractionIDGTE(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldGTE(FieldInteractionID, v))
}

// InteractionIDLT applies the LT predicate on the "interaction_id" field.
func InteractionIDLT(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldLT(FieldInteractionID, v))
}

// InteractionIDLTE applies the LTE predicate on the "interaction_id" field.
func InteractionIDLTE(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldLTE(FieldInteractionID, v))
}

// InteractionIDContains applies the Contains predicate on the "interaction_id" field.
func InteractionIDContains(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldContains(FieldInteractionID, v))
}

// InteractionIDHasPrefix applies the HasPrefix predicate on the "interaction_id" field.
func InteractionIDHasPrefix(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldHasPrefix(FieldInteractionID, v))
}

// InteractionIDHasSuffix applies the HasSuffix predicate on the "interaction_id" field.
func InteractionIDHasSuffix(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldHasSuffix(FieldInteractionID, v))
}

// InteractionIDEqualFold applies the EqualFold predicate on the "interaction_id" field.
func InteractionIDEqualFold(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldEqualFold(FieldInteractionID, v))
}

// InteractionIDContainsFold applies the ContainsFold predicate on the "interaction_id" field.
func InteractionIDContainsFold(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldContainsFold(FieldInteractionID, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.Interaction {
	return predicate.Interaction(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.Interaction {
	return predicate.Interaction(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldContainsFold(FieldSessionID, v))
}

// LearnerIDEQ applies the EQ predicate on the "learner_id" field.
func LearnerIDEQ(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldEQ(FieldLearnerID, v))
}

// LearnerIDNEQ applies the NEQ predicate on the "learner_id" field.
func LearnerIDNEQ(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldNEQ(FieldLearnerID, v))
}

// LearnerIDIn applies the In predicate on the "learner_id" field.
func LearnerIDIn(vs ...string) predicate.Interaction {
	return predicate.Interaction(sql.FieldIn(FieldLearnerID, vs...))
}

// LearnerIDNotIn applies the NotIn predicate on the "learner_id" field.
func LearnerIDNotIn(vs ...string) predicate.Interaction {
	return predicate.Interaction(sql.FieldNotIn(FieldLearnerID, vs...))
}

// LearnerIDGT applies the GT predicate on the "learner_id" field.
func LearnerIDGT(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldGT(FieldLearnerID, v))
}

// LearnerIDGTE applies the GTE predicate on the "learner_id" field.
func LearnerIDGTE(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldGTE(FieldLearnerID, v))
}

// LearnerIDLT applies the LT predicate on the "learner_id" field.
func LearnerIDLT(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldLT(FieldLearnerID, v))
}

// LearnerIDLTE applies the LTE predicate on the "learner_id" field.
func LearnerIDLTE(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldLTE(FieldLearnerID, v))
}

// LearnerIDContains applies the Contains predicate on the "learner_id" field.
func LearnerIDContains(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldContains(FieldLearnerID, v))
}

// LearnerIDHasPrefix applies the HasPrefix predicate on the "learner_id" field.
func LearnerIDHasPrefix(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldHasPrefix(FieldLearnerID, v))
}

// LearnerIDHasSuffix applies the HasSuffix predicate on the "learner_id" field.
func LearnerIDHasSuffix(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldHasSuffix(FieldLearnerID, v))
}

// LearnerIDEqualFold applies the EqualFold predicate on the "learner_id" field.
func LearnerIDEqualFold(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldEqualFold(FieldLearnerID, v))
}

// LearnerIDContainsFold applies the ContainsFold predicate on the "learner_id" field.
func LearnerIDContainsFold(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldContainsFold(FieldLearnerID, v))
}

// ConceptIDEQ applies the EQ predicate on the "concept_id" field.
func ConceptIDEQ(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldEQ(FieldConceptID, v))
}

// ConceptIDNEQ applies the NEQ predicate on the "concept_id" field.
func ConceptIDNEQ(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldNEQ(FieldConceptID, v))
}

// ConceptIDIn applies the In predicate on the "concept_id" field.
func ConceptIDIn(vs ...string) predicate.Interaction {
	return predicate.Interaction(sql.FieldIn(FieldConceptID, vs...))
}

// ConceptIDNotIn applies the NotIn predicate on the "concept_id" field.
func ConceptIDNotIn(vs ...string) predicate.Interaction {
	return predicate.Interaction(sql.FieldNotIn(FieldConceptID, vs...))
}

// ConceptIDGT applies the GT predicate on the "concept_id" field.
func ConceptIDGT(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldGT(FieldConceptID, v))
}

// ConceptIDGTE applies the GTE predicate on the "concept_id" field.
func ConceptIDGTE(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldGTE(FieldConceptID, v))
}

// ConceptIDLT applies the LT predicate on the "concept_id" field.
func ConceptIDLT(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldLT(FieldConceptID, v))
}

// ConceptIDLTE applies the LTE predicate on the "concept_id" field.
func ConceptIDLTE(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldLTE(FieldConceptID, v))
}

// ConceptIDContains applies the Contains predicate on the "concept_id" field.
func ConceptIDContains(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldContains(FieldConceptID, v))
}

// ConceptIDHasPrefix applies the HasPrefix predicate on the "concept_id" field.
func ConceptIDHasPrefix(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldHasPrefix(FieldConceptID, v))
}

// ConceptIDHasSuffix applies the HasSuffix predicate on the "concept_id" field.
func ConceptIDHasSuffix(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldHasSuffix(FieldConceptID, v))
}

// ConceptIDEqualFold applies the EqualFold predicate on the "concept_id" field.
func ConceptIDEqualFold(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldEqualFold(FieldConceptID, v))
}

// ConceptIDContainsFold applies the ContainsFold predicate on the "concept_id" field.
func ConceptIDContainsFold(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldContainsFold(FieldConceptID, v))
}

// SubjectEQ applies the EQ predicate on the "subject" field.
func SubjectEQ(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldEQ(FieldSubject, v))
}

// SubjectNEQ applies the NEQ predicate on the "subject" field.
func SubjectNEQ(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldNEQ(FieldSubject, v))
}

// SubjectIn applies the In predicate on the "subject" field.
func SubjectIn(vs ...string) predicate.Interaction {
	return predicate.Interaction(sql.FieldIn(FieldSubject, vs...))
}

// SubjectNotIn applies the NotIn predicate on the "subject" field.
func SubjectNotIn(vs ...string) predicate.Interaction {
	return predicate.Interaction(sql.FieldNotIn(FieldSubject, vs...))
}

// SubjectGT applies the GT predicate on the "subject" field.
func SubjectGT(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldGT(FieldSubject, v))
}

// SubjectGTE applies the GTE predicate on the "subject" field.
func SubjectGTE(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldGTE(FieldSubject, v))
}

// SubjectLT applies the LT predicate on the "subject" field.
func SubjectLT(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldLT(FieldSubject, v))
}

// SubjectLTE applies the LTE predicate on the "subject" field.
func SubjectLTE(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldLTE(FieldSubject, v))
}

// SubjectContains applies the Contains predicate on the "subject" field.
func SubjectContains(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldContains(FieldSubject, v))
}

// SubjectHasPrefix applies the HasPrefix predicate on the "subject" field.
func SubjectHasPrefix(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldHasPrefix(FieldSubject, v))
}

// SubjectHasSuffix applies the HasSuffix predicate on the "subject" field.
func SubjectHasSuffix(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldHasSuffix(FieldSubject, v))
}

// SubjectEqualFold applies the EqualFold predicate on the "subject" field.
func SubjectEqualFold(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldEqualFold(FieldSubject, v))
}

// SubjectContainsFold applies the ContainsFold predicate on the "subject" field.
func SubjectContainsFold(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldContainsFold(FieldSubject, v))
}

// DifficultyLevelEQ applies the EQ predicate on the "difficulty_level" field.
func DifficultyLevelEQ(v int) predicate.Interaction {
	return predicate.Interaction(sql.FieldEQ(FieldDifficultyLevel, v))
}

// DifficultyLevelNEQ applies the NEQ predicate on the "difficulty_level" field.
func DifficultyLevelNEQ(v int) predicate.Interaction {
	return predicate.Interaction(sql.FieldNEQ(FieldDifficultyLevel, v))
}

// DifficultyLevelIn applies the In predicate on the "difficulty_level" field.
func DifficultyLevelIn(vs ...int) predicate.Interaction {
	return predicate.Interaction(sql.FieldIn(FieldDifficultyLevel, vs...))
}

// DifficultyLevelNotIn applies the NotIn predicate on the "difficulty_level" field.
func DifficultyLevelNotIn(vs ...int) predicate.Interaction {
	return predicate.Interaction(sql.FieldNotIn(FieldDifficultyLevel, vs...))
}

// DifficultyLevelGT applies the GT predicate on the "difficulty_level" field.
func DifficultyLevelGT(v int) predicate.Interaction {
	return predicate.Interaction(sql.FieldGT(FieldDifficultyLevel, v))
}

// DifficultyLevelGTE applies the GTE predicate on the "difficulty_level" field.
func DifficultyLevelGTE(v int) predicate.Interaction {
	return predicate.Interaction(sql.FieldGTE(FieldDifficultyLevel, v))
}

// DifficultyLevelLT applies the LT predicate on the "difficulty_level" field.
func DifficultyLevelLT(v int) predicate.Interaction {
	return predicate.Interaction(sql.FieldLT(FieldDifficultyLevel, v))
}

// DifficultyLevelLTE applies the LTE predicate on the "difficulty_level" field.
func DifficultyLevelLTE(v int) predicate.Interaction {
	return predicate.Interaction(sql.FieldLTE(FieldDifficultyLevel, v))
}

// MethodologyEQ applies the EQ predicate on the "methodology" field.
func MethodologyEQ(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldEQ(FieldMethodology, v))
}

// MethodologyNEQ applies the NEQ predicate on the "methodology" field.
func MethodologyNEQ(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldNEQ(FieldMethodology, v))
}

// MethodologyIn applies the In predicate on the "methodology" field.
func MethodologyIn(vs ...string) predicate.Interaction {
	return predicate.Interaction(sql.FieldIn(FieldMethodology, vs...))
}

// MethodologyNotIn applies the NotIn predicate on the "methodology" field.
func MethodologyNotIn(vs ...string) predicate.Interaction {
	return predicate.Interaction(sql.FieldNotIn(FieldMethodology, vs...))
}

// MethodologyGT applies the GT predicate on the "methodology" field.
func MethodologyGT(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldGT(FieldMethodology, v))
}

// MethodologyGTE applies the GTE predicate on the "methodology" field.
func MethodologyGTE(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldGTE(FieldMethodology, v))
}

// MethodologyLT applies the LT predicate on the "methodology" field.
func MethodologyLT(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldLT(FieldMethodology, v))
}

// MethodologyLTE applies the LTE predicate on the "methodology" field.
func MethodologyLTE(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldLTE(FieldMethodology, v))
}

// MethodologyContains applies the Contains predicate on the "methodology" field.
func MethodologyContains(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldContains(FieldMethodology, v))
}

// MethodologyHasPrefix applies the HasPrefix predicate on the "methodology" field.
func MethodologyHasPrefix(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldHasPrefix(FieldMethodology, v))
}

// MethodologyHasSuffix applies the HasSuffix predicate on the "methodology" field.
func MethodologyHasSuffix(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldHasSuffix(FieldMethodology, v))
}

// MethodologyEqualFold applies the EqualFold predicate on the "methodology" field.
func MethodologyEqualFold(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldEqualFold(FieldMethodology, v))
}

// MethodologyContainsFold applies the ContainsFold predicate on the "methodology" field.
func MethodologyContainsFold(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldContainsFold(FieldMethodology, v))
}

// QuestionTextEQ applies the EQ predicate on the "question_text" field.
func QuestionTextEQ(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldEQ(FieldQuestionText, v))
}

// QuestionTextNEQ applies the NEQ predicate on the "question_text" field.
func QuestionTextNEQ(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldNEQ(FieldQuestionText, v))
}

// QuestionTextIn applies the In predicate on the "question_text" field.
func QuestionTextIn(vs ...string) predicate.Interaction {
	return predicate.Interaction(sql.FieldIn(FieldQuestionText, vs...))
}

// QuestionTextNotIn applies the NotIn predicate on the "question_text" field.
func QuestionTextNotIn(vs ...string) predicate.Interaction {
	return predicate.Interaction(sql.FieldNotIn(FieldQuestionText, vs...))
}

// QuestionTextGT applies the GT predicate on the "question_text" field.
func QuestionTextGT(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldGT(FieldQuestionText, v))
}

// QuestionTextGTE applies the GTE predicate on the "question_text" field.
func QuestionTextGTE(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldGTE(FieldQuestionText, v))
}

// QuestionTextLT applies the LT predicate on the "question_text" field.
func QuestionTextLT(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldLT(FieldQuestionText, v))
}

// QuestionTextLTE applies the LTE predicate on the "question_text" field.
func QuestionTextLTE(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldLTE(FieldQuestionText, v))
}

// QuestionTextContains applies the Contains predicate on the "question_text" field.
func QuestionTextContains(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldContains(FieldQuestionText, v))
}

// QuestionTextHasPrefix applies the HasPrefix predicate on the "question_text" field.
func QuestionTextHasPrefix(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldHasPrefix(FieldQuestionText, v))
}

// QuestionTextHasSuffix applies the HasSuffix predicate on the "question_text" field.
func QuestionTextHasSuffix(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldHasSuffix(FieldQuestionText, v))
}

// QuestionTextEqualFold applies the EqualFold predicate on the "question_text" field.
func QuestionTextEqualFold(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldEqualFold(FieldQuestionText, v))
}

// QuestionTextContainsFold applies the ContainsFold predicate on the "question_text" field.
func QuestionTextContainsFold(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldContainsFold(FieldQuestionText, v))
}

// ResponseTextEQ applies the EQ predicate on the "response_text" field.
func ResponseTextEQ(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldEQ(FieldResponseText, v))
}

// ResponseTextNEQ applies the NEQ predicate on the "response_text" field.
func ResponseTextNEQ(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldNEQ(FieldResponseText, v))
}

// ResponseTextIn applies the In predicate on the "response_text" field.
func ResponseTextIn(vs ...string) predicate.Interaction {
	return predicate.Interaction(sql.FieldIn(FieldResponseText, vs...))
}

// ResponseTextNotIn applies the NotIn predicate on the "response_text" field.
func ResponseTextNotIn(vs ...string) predicate.Interaction {
	return predicate.Interaction(sql.FieldNotIn(FieldResponseText, vs...))
}

// ResponseTextGT applies the GT predicate on the "response_text" field.
func ResponseTextGT(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldGT(FieldResponseText, v))
}

// ResponseTextGTE applies the GTE predicate on the "response_text" field.
func ResponseTextGTE(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldGTE(FieldResponseText, v))
}

// ResponseTextLT applies the LT predicate on the "response_text" field.
func ResponseTextLT(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldLT(FieldResponseText, v))
}

// ResponseTextLTE applies the LTE predicate on the "response_text" field.
func ResponseTextLTE(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldLTE(FieldResponseText, v))
}

// ResponseTextContains applies the Contains predicate on the "response_text" field.
func ResponseTextContains(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldContains(FieldResponseText, v))
}

// ResponseTextHasPrefix applies the HasPrefix predicate on the "response_text" field.
func ResponseTextHasPrefix(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldHasPrefix(FieldResponseText, v))
}

// ResponseTextHasSuffix applies the HasSuffix predicate on the "response_text" field.
func ResponseTextHasSuffix(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldHasSuffix(FieldResponseText, v))
}

// ResponseTextIsNil applies the IsNil predicate on the "response_text" field.
func ResponseTextIsNil() predicate.Interaction {
	return predicate.Interaction(sql.FieldIsNull(FieldResponseText))
}

// ResponseTextNotNil applies the NotNil predicate on the "response_text" field.
func ResponseTextNotNil() predicate.Interaction {
	return predicate.Interaction(sql.FieldNotNull(FieldResponseText))
}

// ResponseTextEqualFold applies the EqualFold predicate on the "response_text" field.
func ResponseTextEqualFold(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldEqualFold(FieldResponseText, v))
}

// ResponseTextContainsFold applies the ContainsFold predicate on the "response_text" field.
func ResponseTextContainsFold(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldContainsFold(FieldResponseText, v))
}

// SuccessIndicatorEQ applies the EQ predicate on the "success_indicator" field.
func SuccessIndicatorEQ(v float64) predicate.Interaction {
	return predicate.Interaction(sql.FieldEQ(FieldSuccessIndicator, v))
}

// SuccessIndicatorNEQ applies the NEQ predicate on the "success_indicator" field.
func SuccessIndicatorNEQ(v float64) predicate.Interaction {
	return predicate.Interaction(sql.FieldNEQ(FieldSuccessIndicator, v))
}

// SuccessIndicatorIn applies the In predicate on the "success_indicator" field.
func SuccessIndicatorIn(vs ...float64) predicate.Interaction {
	return predicate.Interaction(sql.FieldIn(FieldSuccessIndicator, vs...))
}

// SuccessIndicatorNotIn applies the NotIn predicate on the "success_indicator" field.
func SuccessIndicatorNotIn(vs ...float64) predicate.Interaction {
	return predicate.Interaction(sql.FieldNotIn(FieldSuccessIndicator, vs...))
}

// SuccessIndicatorGT applies the GT predicate on the "success_indicator" field.
func SuccessIndicatorGT(v float64) predicate.Interaction {
	return predicate.Interaction(sql.FieldGT(FieldSuccessIndicator, v))
}

// SuccessIndicatorGTE applies the GTE predicate on the "success_indicator" field.
func SuccessIndicatorGTE(v float64) predicate.Interaction {
	return predicate.Interaction(sql.FieldGTE(FieldSuccessIndicator, v))
}

// SuccessIndicatorLT applies the LT predicate on the "success_indicator" field.
func SuccessIndicatorLT(v float64) predicate.Interaction {
	return predicate.Interaction(sql.FieldLT(FieldSuccessIndicator, v))
}

// SuccessIndicatorLTE applies the LTE predicate on the "success_indicator" field.
func SuccessIndicatorLTE(v float64) predicate.Interaction {
	return predicate.Interaction(sql.FieldLTE(FieldSuccessIndicator, v))
}

// SuccessIndicatorIsNil applies the IsNil predicate on the "success_indicator" field.
func SuccessIndicatorIsNil() predicate.Interaction {
	return predicate.Interaction(sql.FieldIsNull(FieldSuccessIndicator))
}

// SuccessIndicatorNotNil applies the NotNil predicate on the "success_indicator" field.
func SuccessIndicatorNotNil() predicate.Interaction {
	return predicate.Interaction(sql.FieldNotNull(FieldSuccessIndicator))
}

// UnscoredEQ applies the EQ predicate on the "unscored" field.
func UnscoredEQ(v bool) predicate.Interaction {
	return predicate.Interaction(sql.FieldEQ(FieldUnscored, v))
}

// UnscoredNEQ applies the NEQ predicate on the "unscored" field.
func UnscoredNEQ(v bool) predicate.Interaction {
	return predicate.Interaction(sql.FieldNEQ(FieldUnscored, v))
}

// RepeatedQuestionEQ applies the EQ predicate on the "repeated_question" field.
func RepeatedQuestionEQ(v bool) predicate.Interaction {
	return predicate.Interaction(sql.FieldEQ(FieldRepeatedQuestion, v))
}

// RepeatedQuestionNEQ applies the NEQ predicate on the "repeated_question" field.
func RepeatedQuestionNEQ(v bool) predicate.Interaction {
	return predicate.Interaction(sql.FieldNEQ(FieldRepeatedQuestion, v))
}

// PrevInteractionIDEQ applies the EQ predicate on the "prev_interaction_id" field.
func PrevInteractionIDEQ(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldEQ(FieldPrevInteractionID, v))
}

// PrevInteractionIDNEQ applies the NEQ predicate on the "prev_interaction_id" field.
func PrevInteractionIDNEQ(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldNEQ(FieldPrevInteractionID, v))
}

// PrevInteractionIDIn applies the In predicate on the "prev_interaction_id" field.
func PrevInteractionIDIn(vs ...string) predicate.Interaction {
	return predicate.Interaction(sql.FieldIn(FieldPrevInteractionID, vs...))
}

// PrevInteractionIDNotIn applies the NotIn predicate on the "prev_interaction_id" field.
func PrevInteractionIDNotIn(vs ...string) predicate.Interaction {
	return predicate.Interaction(sql.FieldNotIn(FieldPrevInteractionID, vs...))
}

// PrevInteractionIDGT applies the GT predicate on the "prev_interaction_id" field.
func PrevInteractionIDGT(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldGT(FieldPrevInteractionID, v))
}

// PrevInteractionIDGTE applies the GTE predicate on the "prev_interaction_id" field.
func PrevInteractionIDGTE(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldGTE(FieldPrevInteractionID, v))
}

// PrevInteractionIDLT applies the LT predicate on the "prev_interaction_id" field.
func PrevInteractionIDLT(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldLT(FieldPrevInteractionID, v))
}

// PrevInteractionIDLTE applies the LTE predicate on the "prev_interaction_id" field.
func PrevInteractionIDLTE(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldLTE(FieldPrevInteractionID, v))
}

// PrevInteractionIDContains applies the Contains predicate on the "prev_interaction_id" field.
func PrevInteractionIDContains(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldContains(FieldPrevInteractionID, v))
}

// PrevInteractionIDHasPrefix applies the HasPrefix predicate on the "prev_interaction_id" field.
func PrevInteractionIDHasPrefix(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldHasPrefix(FieldPrevInteractionID, v))
}

// PrevInteractionIDHasSuffix applies the HasSuffix predicate on the "prev_interaction_id" field.
func PrevInteractionIDHasSuffix(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldHasSuffix(FieldPrevInteractionID, v))
}

// PrevInteractionIDEqualFold applies the EqualFold predicate on the "prev_interaction_id" field.
func PrevInteractionIDEqualFold(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldEqualFold(FieldPrevInteractionID, v))
}

// PrevInteractionIDContainsFold applies the ContainsFold predicate on the "prev_interaction_id" field.
func PrevInteractionIDContainsFold(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldContainsFold(FieldPrevInteractionID, v))
}

// ResponseLatencyMsEQ applies the EQ predicate on the "response_latency_ms" field.
func ResponseLatencyMsEQ(v int64) predicate.Interaction {
	return predicate.Interaction(sql.FieldEQ(FieldResponseLatencyMs, v))
}

// ResponseLatencyMsNEQ applies the NEQ predicate on the "response_latency_ms" field.
func ResponseLatencyMsNEQ(v int64) predicate.Interaction {
	return predicate.Interaction(sql.FieldNEQ(FieldResponseLatencyMs, v))
}

// ResponseLatencyMsIn applies the In predicate on the "response_latency_ms" field.
func ResponseLatencyMsIn(vs ...int64) predicate.Interaction {
	return predicate.Interaction(sql.FieldIn(FieldResponseLatencyMs, vs...))
}

// ResponseLatencyMsNotIn applies the NotIn predicate on the "response_latency_ms" field.
func ResponseLatencyMsNotIn(vs ...int64) predicate.Interaction {
	return predicate.Interaction(sql.FieldNotIn(FieldResponseLatencyMs, vs...))
}

// ResponseLatencyMsGT applies the GT predicate on the "response_latency_ms" field.
func ResponseLatencyMsGT(v int64) predicate.Interaction {
	return predicate.Interaction(sql.FieldGT(FieldResponseLatencyMs, v))
}

// ResponseLatencyMsGTE applies the GTE predicate on the "response_latency_ms" field.
func ResponseLatencyMsGTE(v int64) predicate.Interaction {
	return predicate.Interaction(sql.FieldGTE(FieldResponseLatencyMs, v))
}

// ResponseLatencyMsLT applies the LT predicate on the "response_latency_ms" field.
func ResponseLatencyMsLT(v int64) predicate.Interaction {
	return predicate.Interaction(sql.FieldLT(FieldResponseLatencyMs, v))
}

// ResponseLatencyMsLTE applies the LTE predicate on the "response_latency_ms" field.
func ResponseLatencyMsLTE(v int64) predicate.Interaction {
	return predicate.Interaction(sql.FieldLTE(FieldResponseLatencyMs, v))
}

// TimeOfDayEQ applies the EQ predicate on the "time_of_day" field.
func TimeOfDayEQ(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldEQ(FieldTimeOfDay, v))
}

// TimeOfDayNEQ applies the NEQ predicate on the "time_of_day" field.
func TimeOfDayNEQ(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldNEQ(FieldTimeOfDay, v))
}

// TimeOfDayIn applies the In predicate on the "time_of_day" field.
func TimeOfDayIn(vs ...string) predicate.Interaction {
	return predicate.Interaction(sql.FieldIn(FieldTimeOfDay, vs...))
}

// TimeOfDayNotIn applies the NotIn predicate on the "time_of_day" field.
func TimeOfDayNotIn(vs ...string) predicate.Interaction {
	return predicate.Interaction(sql.FieldNotIn(FieldTimeOfDay, vs...))
}

// TimeOfDayGT applies the GT predicate on the "time_of_day" field.
func TimeOfDayGT(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldGT(FieldTimeOfDay, v))
}

// TimeOfDayGTE applies the GTE predicate on the "time_of_day" field.
func TimeOfDayGTE(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldGTE(FieldTimeOfDay, v))
}

// TimeOfDayLT applies the LT predicate on the "time_of_day" field.
func TimeOfDayLT(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldLT(FieldTimeOfDay, v))
}

// TimeOfDayLTE applies the LTE predicate on the "time_of_day" field.
func TimeOfDayLTE(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldLTE(FieldTimeOfDay, v))
}

// TimeOfDayContains applies the Contains predicate on the "time_of_day" field.
func TimeOfDayContains(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldContains(FieldTimeOfDay, v))
}

// TimeOfDayHasPrefix applies the HasPrefix predicate on the "time_of_day" field.
func TimeOfDayHasPrefix(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldHasPrefix(FieldTimeOfDay, v))
}

// TimeOfDayHasSuffix applies the HasSuffix predicate on the "time_of_day" field.
func TimeOfDayHasSuffix(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldHasSuffix(FieldTimeOfDay, v))
}

// TimeOfDayEqualFold applies the EqualFold predicate on the "time_of_day" field.
func TimeOfDayEqualFold(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldEqualFold(FieldTimeOfDay, v))
}

// TimeOfDayContainsFold applies the ContainsFold predicate on the "time_of_day" field.
func TimeOfDayContainsFold(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldContainsFold(FieldTimeOfDay, v))
}

// DeviceTypeEQ applies the EQ predicate on the "device_type" field.
func DeviceTypeEQ(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldEQ(FieldDeviceType, v))
}

// DeviceTypeNEQ applies the NEQ predicate on the "device_type" field.
func DeviceTypeNEQ(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldNEQ(FieldDeviceType, v))
}

// DeviceTypeIn applies the In predicate on the "device_type" field.
func DeviceTypeIn(vs ...string) predicate.Interaction {
	return predicate.Interaction(sql.FieldIn(FieldDeviceType, vs...))
}

// DeviceTypeNotIn applies the NotIn predicate on the "device_type" field.
func DeviceTypeNotIn(vs ...string) predicate.Interaction {
	return predicate.Interaction(sql.FieldNotIn(FieldDeviceType, vs...))
}

// DeviceTypeGT applies the GT predicate on the "device_type" field.
func DeviceTypeGT(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldGT(FieldDeviceType, v))
}

// DeviceTypeGTE applies the GTE predicate on the "device_type" field.
func DeviceTypeGTE(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldGTE(FieldDeviceType, v))
}

// DeviceTypeLT applies the LT predicate on the "device_type" field.
func DeviceTypeLT(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldLT(FieldDeviceType, v))
}

// DeviceTypeLTE applies the LTE predicate on the "device_type" field.
func DeviceTypeLTE(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldLTE(FieldDeviceType, v))
}

// DeviceTypeContains applies the Contains predicate on the "device_type" field.
func DeviceTypeContains(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldContains(FieldDeviceType, v))
}

// DeviceTypeHasPrefix applies the HasPrefix predicate on the "device_type" field.
func DeviceTypeHasPrefix(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldHasPrefix(FieldDeviceType, v))
}

// DeviceTypeHasSuffix applies the HasSuffix predicate on the "device_type" field.
func DeviceTypeHasSuffix(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldHasSuffix(FieldDeviceType, v))
}

// DeviceTypeEqualFold applies the EqualFold predicate on the "device_type" field.
func DeviceTypeEqualFold(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldEqualFold(FieldDeviceType, v))
}

// DeviceTypeContainsFold applies the ContainsFold predicate on the "device_type" field.
func DeviceTypeContainsFold(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldContainsFold(FieldDeviceType, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Interaction) predicate.Interaction {
	return predicate.Interaction(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Interaction) predicate.Interaction {
	return predicate.Interaction(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Interaction) predicate.Interaction {
	return predicate.Interaction(sql.NotPredicates(p))
}
