// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/paideia/ent/interaction"
)

// Interaction is the model entity for the Interaction schema.
type Interaction struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// UUID for this exchange
	InteractionID string `json:"interaction_id,omitempty"`
	// UUID grouping interactions in a session
	SessionID string `json:"session_id,omitempty"`
	// LearnerID holds the value of the "learner_id" field.
	LearnerID string `json:"learner_id,omitempty"`
	// ConceptID holds the value of the "concept_id" field.
	ConceptID string `json:"concept_id,omitempty"`
	// Subject holds the value of the "subject" field.
	Subject string `json:"subject,omitempty"`
	// 1-10, derived from tier and mastery
	DifficultyLevel int `json:"difficulty_level,omitempty"`
	// visual_demo, scaffolding, direct_instruction, discovery, socratic
	Methodology string `json:"methodology,omitempty"`
	// QuestionText holds the value of the "question_text" field.
	QuestionText string `json:"question_text,omitempty"`
	// Absent until the learner answers
	ResponseText *string `json:"response_text,omitempty"`
	// 0-1 grade from the external scorer; absent until scored
	SuccessIndicator *float64 `json:"success_indicator,omitempty"`
	// Set when the scorer timed out and a neutral default was used
	Unscored bool `json:"unscored,omitempty"`
	// Set when the catalog's question pool was exhausted
	RepeatedQuestion bool `json:"repeated_question,omitempty"`
	// Causal link to the preceding interaction in the session
	PrevInteractionID string `json:"prev_interaction_id,omitempty"`
	// ResponseLatencyMs holds the value of the "response_latency_ms" field.
	ResponseLatencyMs int64 `json:"response_latency_ms,omitempty"`
	// TimeOfDay holds the value of the "time_of_day" field.
	TimeOfDay string `json:"time_of_day,omitempty"`
	// DeviceType holds the value of the "device_type" field.
	DeviceType   string `json:"device_type,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Interaction) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case interaction.FieldUnscored, interaction.FieldRepeatedQuestion:
			values[i] = new(sql.NullBool)
		case interaction.FieldSuccessIndicator:
			values[i] = new(sql.NullFloat64)
		case interaction.FieldID, interaction.FieldSequence, interaction.FieldDifficultyLevel, interaction.FieldResponseLatencyMs:
			values[i] = new(sql.NullInt64)
		case interaction.FieldInteractionID, interaction.FieldSessionID, interaction.FieldLearnerID, interaction.FieldConceptID, interaction.FieldSubject, interaction.FieldMethodology, interaction.FieldQuestionText, interaction.FieldResponseText, interaction.FieldPrevInteractionID, interaction.FieldTimeOfDay, interaction.FieldDeviceType:
			values[i] = new(sql.NullString)
		case interaction.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Interaction fields.
func (_m *Interaction) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case interaction.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case interaction.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case interaction.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case interaction.FieldInteractionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field interaction_id", values[i])
			} else if value.Valid {
				_m.InteractionID = value.String
			}
		case interaction.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case interaction.FieldLearnerID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field learner_id", values[i])
			} else if value.Valid {
				_m.LearnerID = value.String
			}
		case interaction.FieldConceptID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field concept_id", values[i])
			} else if value.Valid {
				_m.ConceptID = value.String
			}
		case interaction.FieldSubject:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field subject", values[i])
			} else if value.Valid {
				_m.Subject = value.String
			}
		case interaction.FieldDifficultyLevel:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field difficulty_level", values[i])
			} else if value.Valid {
				_m.DifficultyLevel = int(value.Int64)
			}
		case interaction.FieldMethodology:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field methodology", values[i])
			} else if value.Valid {
				_m.Methodology = value.String
			}
		case interaction.FieldQuestionText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field question_text", values[i])
			} else if value.Valid {
				_m.QuestionText = value.String
			}
		case interaction.FieldResponseText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field response_text", values[i])
			} else if value.Valid {
				_m.ResponseText = new(string)
				*_m.ResponseText = value.String
			}
		case interaction.FieldSuccessIndicator:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field success_indicator", values[i])
			} else if value.Valid {
				_m.SuccessIndicator = new(float64)
				*_m.SuccessIndicator = value.Float64
			}
		case interaction.FieldUnscored:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field unscored", values[i])
			} else if value.Valid {
				_m.Unscored = value.Bool
			}
		case interaction.FieldRepeatedQuestion:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field repeated_question", values[i])
			} else if value.Valid {
				_m.RepeatedQuestion = value.Bool
			}
		case interaction.FieldPrevInteractionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field prev_interaction_id", values[i])
			} else if value.Valid {
				_m.PrevInteractionID = value.String
			}
		case interaction.FieldResponseLatencyMs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field response_latency_ms", values[i])
			} else if value.Valid {
				_m.ResponseLatencyMs = value.Int64
			}
		case interaction.FieldTimeOfDay:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field time_of_day", values[i])
			} else if value.Valid {
				_m.TimeOfDay = value.String
			}
		case interaction.FieldDeviceType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field device_type", values[i])
			} else if value.Valid {
				_m.DeviceType = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Interaction.
// This includes values selected through modifiers, order, etc.
func (_m *Interaction) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Interaction.
// Note that you need to call Interaction.Unwrap() before calling this method if this Interaction
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Interaction) Update() *InteractionUpdateOne {
	return NewInteractionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Interaction entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Interaction) Unwrap() *Interaction {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Interaction is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Interaction) String() string {
	var builder strings.Builder
	builder.WriteString("Interaction(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("interaction_id=")
	builder.WriteString(_m.InteractionID)
	builder.WriteString(", ")
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("learner_id=")
	builder.WriteString(_m.LearnerID)
	builder.WriteString(", ")
	builder.WriteString("concept_id=")
	builder.WriteString(_m.ConceptID)
	builder.WriteString(", ")
	builder.WriteString("subject=")
	builder.WriteString(_m.Subject)
	builder.WriteString(", ")
	builder.WriteString("difficulty_level=")
	builder.WriteString(fmt.Sprintf("%v", _m.DifficultyLevel))
	builder.WriteString(", ")
	builder.WriteString("methodology=")
	builder.WriteString(_m.Methodology)
	builder.WriteString(", ")
	builder.WriteString("question_text=")
	builder.WriteString(_m.QuestionText)
	builder.WriteString(", ")
	if v := _m.ResponseText; v != nil {
		builder.WriteString("response_text=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.SuccessIndicator; v != nil {
		builder.WriteString("success_indicator=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("unscored=")
	builder.WriteString(fmt.Sprintf("%v", _m.Unscored))
	builder.WriteString(", ")
	builder.WriteString("repeated_question=")
	builder.WriteString(fmt.Sprintf("%v", _m.RepeatedQuestion))
	builder.WriteString(", ")
	builder.WriteString("prev_interaction_id=")
	builder.WriteString(_m.PrevInteractionID)
	builder.WriteString(", ")
	builder.WriteString("response_latency_ms=")
	builder.WriteString(fmt.Sprintf("%v", _m.ResponseLatencyMs))
	builder.WriteString(", ")
	builder.WriteString("time_of_day=")
	builder.WriteString(_m.TimeOfDay)
	builder.WriteString(", ")
	builder.WriteString("device_type=")
	builder.WriteString(_m.DeviceType)
	builder.WriteByte(')')
	return builder.String()
}

// Interactions is a parsable slice of Interaction.
type Interactions []*Interaction
