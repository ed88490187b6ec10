// Code generated by ent, DO NOT EDIT.

package sessionevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the sessionevent type in the database.
	Label = "session_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldLearnerID holds the string denoting the learner_id field in the database.
	FieldLearnerID = "learner_id"
	// FieldAction holds the string denoting the action field in the database.
	FieldAction = "action"
	// FieldConceptID holds the string denoting the concept_id field in the database.
	FieldConceptID = "concept_id"
	// FieldTurnsServed holds the string denoting the turns_served field in the database.
	FieldTurnsServed = "turns_served"
	// FieldEndReason holds the string denoting the end_reason field in the database.
	FieldEndReason = "end_reason"
	// FieldDegraded holds the string denoting the degraded field in the database.
	FieldDegraded = "degraded"
	// Table holds the table name of the sessionevent in the database.
	Table = "session_events"
)

// Columns holds all SQL columns for sessionevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldSessionID,
	FieldLearnerID,
	FieldAction,
	FieldConceptID,
	FieldTurnsServed,
	FieldEndReason,
	FieldDegraded,
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
	// SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	SessionIDValidator func(string) error
	// LearnerIDValidator is a validator for the "learner_id" field. It is called by the builders before save.
	LearnerIDValidator func(string) error
	// ActionValidator is a validator for the "action" field. It is called by the builders before save.
	ActionValidator func(string) error
	// DefaultConceptID holds the default value on creation for the "concept_id" field.
	DefaultConceptID string
	// DefaultTurnsServed holds the default value on creation for the "turns_served" field.
	DefaultTurnsServed int
	// DefaultEndReason holds the default value on creation for the "end_reason" field.
	DefaultEndReason string
	// DefaultDegraded holds the default value on creation for the "degraded" field.
	DefaultDegraded bool
)

// OrderOption defines the ordering options for the SessionEvent queries.
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

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// ByLearnerID orders the results by the learner_id field.
func ByLearnerID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLearnerID, opts...).ToFunc()
}

// ByAction orders the results by the action field.
func ByAction(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAction, opts...).ToFunc()
}

// ByConceptID orders the results by the concept_id field.
func ByConceptID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConceptID, opts...).ToFunc()
}

// ByTurnsServed orders the results by the turns_served field.
func ByTurnsServed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTurnsServed, opts...).ToFunc()
}

// ByEndReason orders the results by the end_reason field.
func ByEndReason(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEndReason, opts...).ToFunc()
}

// ByDegraded orders the results by the degraded field.
func ByDegraded(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDegraded, opts...).ToFunc()
}
