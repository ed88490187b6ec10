// Code generated by ent, DO NOT EDIT.

package learnerprofile

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the learnerprofile type in the database.
	Label = "learner_profile"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldLearnerID holds the string denoting the learner_id field in the database.
	FieldLearnerID = "learner_id"
	// FieldRole holds the string denoting the role field in the database.
	FieldRole = "role"
	// FieldStyleVisual holds the string denoting the style_visual field in the database.
	FieldStyleVisual = "style_visual"
	// FieldStyleAuditory holds the string denoting the style_auditory field in the database.
	FieldStyleAuditory = "style_auditory"
	// FieldStyleKinesthetic holds the string denoting the style_kinesthetic field in the database.
	FieldStyleKinesthetic = "style_kinesthetic"
	// FieldStyleReading holds the string denoting the style_reading field in the database.
	FieldStyleReading = "style_reading"
	// FieldInterests holds the string denoting the interests field in the database.
	FieldInterests = "interests"
	// FieldStrengths holds the string denoting the strengths field in the database.
	FieldStrengths = "strengths"
	// FieldWeaknesses holds the string denoting the weaknesses field in the database.
	FieldWeaknesses = "weaknesses"
	// FieldAge holds the string denoting the age field in the database.
	FieldAge = "age"
	// FieldEducationLevel holds the string denoting the education_level field in the database.
	FieldEducationLevel = "education_level"
	// FieldCulturalContext holds the string denoting the cultural_context field in the database.
	FieldCulturalContext = "cultural_context"
	// FieldCompleteness holds the string denoting the completeness field in the database.
	FieldCompleteness = "completeness"
	// FieldArchived holds the string denoting the archived field in the database.
	FieldArchived = "archived"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the learnerprofile in the database.
	Table = "learner_profiles"
)

// Columns holds all SQL columns for learnerprofile fields.
var Columns = []string{
	FieldID,
	FieldLearnerID,
	FieldRole,
	FieldStyleVisual,
	FieldStyleAuditory,
	FieldStyleKinesthetic,
	FieldStyleReading,
	FieldInterests,
	FieldStrengths,
	FieldWeaknesses,
	FieldAge,
	FieldEducationLevel,
	FieldCulturalContext,
	FieldCompleteness,
	FieldArchived,
	FieldCreatedAt,
	FieldUpdatedAt,
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
	// LearnerIDValidator is a validator for the "learner_id" field. It is called by the builders before save.
	LearnerIDValidator func(string) error
	// RoleValidator is a validator for the "role" field. It is called by the builders before save.
	RoleValidator func(string) error
	// DefaultStyleVisual holds the default value on creation for the "style_visual" field.
	DefaultStyleVisual int
	// DefaultStyleAuditory holds the default value on creation for the "style_auditory" field.
	DefaultStyleAuditory int
	// DefaultStyleKinesthetic holds the default value on creation for the "style_kinesthetic" field.
	DefaultStyleKinesthetic int
	// DefaultStyleReading holds the default value on creation for the "style_reading" field.
	DefaultStyleReading int
	// DefaultAge holds the default value on creation for the "age" field.
	DefaultAge int
	// DefaultEducationLevel holds the default value on creation for the "education_level" field.
	DefaultEducationLevel string
	// DefaultCulturalContext holds the default value on creation for the "cultural_context" field.
	DefaultCulturalContext string
	// DefaultCompleteness holds the default value on creation for the "completeness" field.
	DefaultCompleteness float64
	// DefaultArchived holds the default value on creation for the "archived" field.
	DefaultArchived bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the LearnerProfile queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByLearnerID orders the results by the learner_id field.
func ByLearnerID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLearnerID, opts...).ToFunc()
}

// ByRole orders the results by the role field.
func ByRole(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRole, opts...).ToFunc()
}

// ByStyleVisual orders the results by the style_visual field.
func ByStyleVisual(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStyleVisual, opts...).ToFunc()
}

// ByStyleAuditory orders the results by the style_auditory field.
func ByStyleAuditory(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStyleAuditory, opts...).ToFunc()
}

// ByStyleKinesthetic orders the results by the style_kinesthetic field.
func ByStyleKinesthetic(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStyleKinesthetic, opts...).ToFunc()
}

// ByStyleReading orders the results by the style_reading field.
func ByStyleReading(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStyleReading, opts...).ToFunc()
}

// ByAge orders the results by the age field.
func ByAge(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAge, opts...).ToFunc()
}

// ByEducationLevel orders the results by the education_level field.
func ByEducationLevel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEducationLevel, opts...).ToFunc()
}

// ByCulturalContext orders the results by the cultural_context field.
func ByCulturalContext(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCulturalContext, opts...).ToFunc()
}

// ByCompleteness orders the results by the completeness field.
func ByCompleteness(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompleteness, opts...).ToFunc()
}

// ByArchived orders the results by the archived field.
func ByArchived(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldArchived, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
