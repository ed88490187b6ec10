// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/paideia/ent/learnerprofile"
)

// LearnerProfile is the model entity for the LearnerProfile schema.
type LearnerProfile struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Opaque identifier owned by the upstream identity source
	LearnerID string `json:"learner_id,omitempty"`
	// student, instructor, admin, content_creator, mentor
	Role string `json:"role,omitempty"`
	// 0-100 affinity signal
	StyleVisual int `json:"style_visual,omitempty"`
	// StyleAuditory holds the value of the "style_auditory" field.
	StyleAuditory int `json:"style_auditory,omitempty"`
	// StyleKinesthetic holds the value of the "style_kinesthetic" field.
	StyleKinesthetic int `json:"style_kinesthetic,omitempty"`
	// StyleReading holds the value of the "style_reading" field.
	StyleReading int `json:"style_reading,omitempty"`
	// Interests holds the value of the "interests" field.
	Interests []string `json:"interests,omitempty"`
	// Strengths holds the value of the "strengths" field.
	Strengths []string `json:"strengths,omitempty"`
	// Weaknesses holds the value of the "weaknesses" field.
	Weaknesses []string `json:"weaknesses,omitempty"`
	// 0 means unknown
	Age int `json:"age,omitempty"`
	// EducationLevel holds the value of the "education_level" field.
	EducationLevel string `json:"education_level,omitempty"`
	// CulturalContext holds the value of the "cultural_context" field.
	CulturalContext string `json:"cultural_context,omitempty"`
	// Fraction of populated optional fields, 0-1
	Completeness float64 `json:"completeness,omitempty"`
	// Archived holds the value of the "archived" field.
	Archived bool `json:"archived,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*LearnerProfile) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case learnerprofile.FieldInterests, learnerprofile.FieldStrengths, learnerprofile.FieldWeaknesses:
			values[i] = new([]byte)
		case learnerprofile.FieldArchived:
			values[i] = new(sql.NullBool)
		case learnerprofile.FieldCompleteness:
			values[i] = new(sql.NullFloat64)
		case learnerprofile.FieldID, learnerprofile.FieldStyleVisual, learnerprofile.FieldStyleAuditory, learnerprofile.FieldStyleKinesthetic, learnerprofile.FieldStyleReading, learnerprofile.FieldAge:
			values[i] = new(sql.NullInt64)
		case learnerprofile.FieldLearnerID, learnerprofile.FieldRole, learnerprofile.FieldEducationLevel, learnerprofile.FieldCulturalContext:
			values[i] = new(sql.NullString)
		case learnerprofile.FieldCreatedAt, learnerprofile.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the LearnerProfile fields.
func (_m *LearnerProfile) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case learnerprofile.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case learnerprofile.FieldLearnerID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field learner_id", values[i])
			} else if value.Valid {
				_m.LearnerID = value.String
			}
		case learnerprofile.FieldRole:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field role", values[i])
			} else if value.Valid {
				_m.Role = value.String
			}
		case learnerprofile.FieldStyleVisual:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field style_visual", values[i])
			} else if value.Valid {
				_m.StyleVisual = int(value.Int64)
			}
		case learnerprofile.FieldStyleAuditory:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field style_auditory", values[i])
			} else if value.Valid {
				_m.StyleAuditory = int(value.Int64)
			}
		case learnerprofile.FieldStyleKinesthetic:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field style_kinesthetic", values[i])
			} else if value.Valid {
				_m.StyleKinesthetic = int(value.Int64)
			}
		case learnerprofile.FieldStyleReading:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field style_reading", values[i])
			} else if value.Valid {
				_m.StyleReading = int(value.Int64)
			}
		case learnerprofile.FieldInterests:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field interests", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Interests); err != nil {
					return fmt.Errorf("unmarshal field interests: %w", err)
				}
			}
		case learnerprofile.FieldStrengths:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field strengths", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Strengths); err != nil {
					return fmt.Errorf("unmarshal field strengths: %w", err)
				}
			}
		case learnerprofile.FieldWeaknesses:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field weaknesses", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Weaknesses); err != nil {
					return fmt.Errorf("unmarshal field weaknesses: %w", err)
				}
			}
		case learnerprofile.FieldAge:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field age", values[i])
			} else if value.Valid {
				_m.Age = int(value.Int64)
			}
		case learnerprofile.FieldEducationLevel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field education_level", values[i])
			} else if value.Valid {
				_m.EducationLevel = value.String
			}
		case learnerprofile.FieldCulturalContext:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field cultural_context", values[i])
			} else if value.Valid {
				_m.CulturalContext = value.String
			}
		case learnerprofile.FieldCompleteness:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field completeness", values[i])
			} else if value.Valid {
				_m.Completeness = value.Float64
			}
		case learnerprofile.FieldArchived:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field archived", values[i])
			} else if value.Valid {
				_m.Archived = value.Bool
			}
		case learnerprofile.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case learnerprofile.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the LearnerProfile.
// This includes values selected through modifiers, order, etc.
func (_m *LearnerProfile) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this LearnerProfile.
// Note that you need to call LearnerProfile.Unwrap() before calling this method if this LearnerProfile
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *LearnerProfile) Update() *LearnerProfileUpdateOne {
	return NewLearnerProfileClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the LearnerProfile entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *LearnerProfile) Unwrap() *LearnerProfile {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: LearnerProfile is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *LearnerProfile) String() string {
	var builder strings.Builder
	builder.WriteString("LearnerProfile(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("learner_id=")
	builder.WriteString(_m.LearnerID)
	builder.WriteString(", ")
	builder.WriteString("role=")
	builder.WriteString(_m.Role)
	builder.WriteString(", ")
	builder.WriteString("style_visual=")
	builder.WriteString(fmt.Sprintf("%v", _m.StyleVisual))
	builder.WriteString(", ")
	builder.WriteString("style_auditory=")
	builder.WriteString(fmt.Sprintf("%v", _m.StyleAuditory))
	builder.WriteString(", ")
	builder.WriteString("style_kinesthetic=")
	builder.WriteString(fmt.Sprintf("%v", _m.StyleKinesthetic))
	builder.WriteString(", ")
	builder.WriteString("style_reading=")
	builder.WriteString(fmt.Sprintf("%v", _m.StyleReading))
	builder.WriteString(", ")
	builder.WriteString("interests=")
	builder.WriteString(fmt.Sprintf("%v", _m.Interests))
	builder.WriteString(", ")
	builder.WriteString("strengths=")
	builder.WriteString(fmt.Sprintf("%v", _m.Strengths))
	builder.WriteString(", ")
	builder.WriteString("weaknesses=")
	builder.WriteString(fmt.Sprintf("%v", _m.Weaknesses))
	builder.WriteString(", ")
	builder.WriteString("age=")
	builder.WriteString(fmt.Sprintf("%v", _m.Age))
	builder.WriteString(", ")
	builder.WriteString("education_level=")
	builder.WriteString(_m.EducationLevel)
	builder.WriteString(", ")
	builder.WriteString("cultural_context=")
	builder.WriteString(_m.CulturalContext)
	builder.WriteString(", ")
	builder.WriteString("completeness=")
	builder.WriteString(fmt.Sprintf("%v", _m.Completeness))
	builder.WriteString(", ")
	builder.WriteString("archived=")
	builder.WriteString(fmt.Sprintf("%v", _m.Archived))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// LearnerProfiles is a parsable slice of LearnerProfile.
type LearnerProfiles []*LearnerProfile
