// Code generated by ent, DO NOT EDIT.

package interaction

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the interaction type in the database.
	Label = "interaction"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldInteractionID holds the string denoting the interaction_id field in the database.
	FieldInteractionID = "interaction_id"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldLearnerID holds the string denoting the learner_id field in the database.
	FieldLearnerID = "learner_id"
	// FieldConceptID holds the string denoting the concept_id field in the database.
	FieldConceptID = "concept_id"
	// FieldSubject holds the string denoting the subject field in the database.
	FieldSubject = "subject"
	// FieldDifficultyLevel holds the string denoting the difficulty_level field in the database.
	FieldDifficultyLevel = "difficulty_level"
	// FieldMethodology holds the string denoting the methodology field in the database.
	FieldMethodology = "methodology"
	// FieldQuestionText holds the string denoting the question_text field in the database.
	FieldQuestionText = "question_text"
	// FieldResponseText holds the string denoting the response_text field in the database.
	FieldResponseText = "response_text"
	// FieldSuccessIndicator holds the string denoting the success_indicator field in the database.
	FieldSuccessIndicator = "success_indicator"
	// FieldUnscored holds the string denoting the unscored field in the database.
	FieldUnscored = "unscored"
	// FieldRepeatedQuestion holds the string denoting the repeated_question field in the database.
	FieldRepeatedQuestion = "repeated_question"
	// FieldPrevInteractionID holds the string denoting the prev_interaction_id field in the database.
	FieldPrevInteractionID = "prev_interaction_id"
	// FieldResponseLatencyMs holds the string denoting the response_latency_ms field in the database.
	FieldResponseLatencyMs = "response_latency_ms"
	// FieldTimeOfDay holds the string denoting the time_of_day field in the database.
	FieldTimeOfDay = "time_of_day"
	// FieldDeviceType holds the string denoting the device_type field in the database.
	FieldDeviceType = "device_type"
	// Table holds the table name of the interaction in the database.
	Table = "interactions"
)

// Columns holds all SQL columns for interaction fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldInteractionID,
	FieldSessionID,
	FieldLearnerID,
	FieldConceptID,
	FieldSubject,
	FieldDifficultyLevel,
	FieldMethodology,
	FieldQuestionText,
	FieldResponseText,
	FieldSuccessIndicator,
	FieldUnscored,
	FieldRepeatedQuestion,
	FieldPrevInteractionID,
	FieldResponseLatencyMs,
	FieldTimeOfDay,
	FieldDeviceType,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
	// InteractionIDValidator is a validator for the "interaction_id" field. It is called by the builders before save.
	InteractionIDValidator func(string) error
	// SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	SessionIDValidator func(string) error
	// LearnerIDValidator is a validator for the "learner_id" field. It is called by the builders before save.
	LearnerIDValidator func(string) error
	// ConceptIDValidator is a validator for the "concept_id" field. It is called by the builders before save.
	ConceptIDValidator func(string) error
	// SubjectValidator is a validator for the "subject" field. It is called by the builders before save.
	SubjectValidator func(string) error
	// MethodologyValidator is a validator for the "methodology" field. It is called by the builders before save.
	MethodologyValidator func(string) error
	// QuestionTextValidator is a validator for the "question_text" field. It is called by the builders before save.
	QuestionTextValidator func(string) error
	// DefaultUnscored holds the default value on creation for the "unscored" field.
	DefaultUnscored bool
	// DefaultRepeatedQuestion holds the default value on creation for the "repeated_question" field.
	DefaultRepeatedQuestion bool
	// DefaultPrevInteractionID holds the default value on creation for the "prev_interaction_id" field.
	DefaultPrevInteractionID string
	// DefaultResponseLatencyMs holds the default value on creation for the "response_latency_ms" field.
	DefaultResponseLatencyMs int64
	// DefaultTimeOfDay holds the default value on creation for the "time_of_day" field.
	DefaultTimeOfDay string
	// DefaultDeviceType holds the default value on creation for the "device_type" field.
	DefaultDeviceType string
)

// OrderOption defines the ordering options for the Interaction queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySequence orders the results by the sequence field.
func BySequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequence, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// ByInteractionID orders the results by the interaction_id field.
func ByInteractionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInteractionID, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// ByLearnerID orders the results by the learner_id field.
func ByLearnerID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLearnerID, opts...).ToFunc()
}

// ByConceptID orders the results by the concept_id field.
func ByConceptID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConceptID, opts...).ToFunc()
}

// BySubject orders the results by the subject field.
func BySubject(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSubject, opts...).ToFunc()
}

// ByDifficultyLevel orders the results by the difficulty_level field.
func ByDifficultyLevel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDifficultyLevel, opts...).ToFunc()
}

// ByMethodology orders the results by the methodology field.
func ByMethodology(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMethodology, opts...).ToFunc()
}

// ByQuestionText orders the results by the question_text field.
func ByQuestionText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuestionText, opts...).ToFunc()
}

// ByResponseText orders the results by the response_text field.
func ByResponseText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResponseText, opts...).ToFunc()
}

// BySuccessIndicator orders the results by the success_indicator field.
func BySuccessIndicator(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSuccessIndicator, opts...).ToFunc()
}

// ByUnscored orders the results by the unscored field.
func ByUnscored(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUnscored, opts...).ToFunc()
}

// ByRepeatedQuestion orders the results by the repeated_question field.
func ByRepeatedQuestion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRepeatedQuestion, opts...).ToFunc()
}

// ByPrevInteractionID orders the results by the prev_interaction_id field.
func ByPrevInteractionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPrevInteractionID, opts...).ToFunc()
}

// ByResponseLatencyMs orders the results by the response_latency_ms field.
func ByResponseLatencyMs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResponseLatencyMs, opts...).ToFunc()
}

// ByTimeOfDay orders the results by the time_of_day field.
func ByTimeOfDay(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimeOfDay, opts...).ToFunc()
}

// ByDeviceType orders the results by the device_type field.
func ByDeviceType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDeviceType, opts...).ToFunc()
}
