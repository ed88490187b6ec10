// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/paideia/ent/interaction"
)

// InteractionCreate is the builder for creating a Interaction entity.
type InteractionCreate struct {
	config
	mutation *InteractionMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *InteractionCreate) SetSequence(v int64) *InteractionCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *InteractionCreate) SetTimestamp(v time.Time) *InteractionCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *InteractionCreate) SetNillableTimestamp(v *time.Time) *InteractionCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetInteractionID sets the "interaction_id" field.
func (_c *InteractionCreate) SetInteractionID(v string) *InteractionCreate {
	_c.mutation.SetInteractionID(v)
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *InteractionCreate) SetSessionID(v string) *InteractionCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetLearnerID sets the "learner_id" field.
func (_c *InteractionCreate) SetLearnerID(v string) *InteractionCreate {
	_c.mutation.SetLearnerID(v)
	return _c
}

// SetConceptID sets the "concept_id" field.
func (_c *InteractionCreate) SetConceptID(v string) *InteractionCreate {
	_c.mutation.SetConceptID(v)
	return _c
}

// SetSubject sets the "subject" field.
func (_c *InteractionCreate) SetSubject(v string) *InteractionCreate {
	_c.mutation.SetSubject(v)
	return _c
}

// SetDifficultyLevel sets the "difficulty_level" field.
func (_c *InteractionCreate) SetDifficultyLevel(v int) *InteractionCreate {
	_c.mutation.SetDifficultyLevel(v)
	return _c
}

// SetMethodology sets the "methodology" field.
func (_c *InteractionCreate) SetMethodology(v string) *InteractionCreate {
	_c.mutation.SetMethodology(v)
	return _c
}

// SetQuestionText sets the "question_text" field.
func (_c *InteractionCreate) SetQuestionText(v string) *InteractionCreate {
	_c.mutation.SetQuestionText(v)
	return _c
}

// SetResponseText sets the "response_text" field.
func (_c *InteractionCreate) SetResponseText(v string) *InteractionCreate {
	_c.mutation.SetResponseText(v)
	return _c
}

// SetNillableResponseText sets the "response_text" field if the given value is not nil.
func (_c *InteractionCreate) SetNillableResponseText(v *string) *InteractionCreate {
	if v != nil {
		_c.SetResponseText(*v)
	}
	return _c
}

// SetSuccessIndicator sets the "success_indicator" field.
func (_c *InteractionCreate) SetSuccessIndicator(v float64) *InteractionCreate {
	_c.mutation.SetSuccessIndicator(v)
	return _c
}

// SetNillableSuccessIndicator sets the "success_indicator" field if the given value is not nil.
func (_c *InteractionCreate) SetNillableSuccessIndicator(v *float64) *InteractionCreate {
	if v != nil {
		_c.SetSuccessIndicator(*v)
	}
	return _c
}

// SetUnscored sets the "unscored" field.
func (_c *InteractionCreate) SetUnscored(v bool) *InteractionCreate {
	_c.mutation.SetUnscored(v)
	return _c
}

// SetNillableUnscored sets the "unscored" field if the given value is not nil.
func (_c *InteractionCreate) SetNillableUnscored(v *bool) *InteractionCreate {
	if v != nil {
		_c.SetUnscored(*v)
	}
	return _c
}

// SetRepeatedQuestion sets the "repeated_question" field.
func (_c *InteractionCreate) SetRepeatedQuestion(v bool) *InteractionCreate {
	_c.mutation.SetRepeatedQuestion(v)
	return _c
}

// SetNillableRepeatedQuestion sets the "repeated_question" field if the given value is not nil.
func (_c *InteractionCreate) SetNillableRepeatedQuestion(v *bool) *InteractionCreate {
	if v != nil {
		_c.SetRepeatedQuestion(*v)
	}
	return _c
}

// SetPrevInteractionID sets the "prev_interaction_id" field.
func (_c *InteractionCreate) SetPrevInteractionID(v string) *InteractionCreate {
	_c.mutation.SetPrevInteractionID(v)
	return _c
}

// SetNillablePrevInteractionID sets the "prev_interaction_id" field if the given value is not nil.
func (_c *InteractionCreate) SetNillablePrevInteractionID(v *string) *InteractionCreate {
	if v != nil {
		_c.SetPrevInteractionID(*v)
	}
	return _c
}

// SetResponseLatencyMs sets the "response_latency_ms" field.
func (_c *InteractionCreate) SetResponseLatencyMs(v int64) *InteractionCreate {
	_c.mutation.SetResponseLatencyMs(v)
	return _c
}

// SetNillableResponseLatencyMs sets the "response_latency_ms" field if the given value is not nil.
func (_c *InteractionCreate) SetNillableResponseLatencyMs(v *int64) *InteractionCreate {
	if v != nil {
		_c.SetResponseLatencyMs(*v)
	}
	return _c
}

// SetTimeOfDay sets the "time_of_day" field.
func (_c *InteractionCreate) SetTimeOfDay(v string) *InteractionCreate {
	_c.mutation.SetTimeOfDay(v)
	return _c
}

// SetNillableTimeOfDay sets the "time_of_day" field if the given value is not nil.
func (_c *InteractionCreate) SetNillableTimeOfDay(v *string) *InteractionCreate {
	if v != nil {
		_c.SetTimeOfDay(*v)
	}
	return _c
}

// SetDeviceType sets the "device_type" field.
func (_c *InteractionCreate) SetDeviceType(v string) *InteractionCreate {
	_c.mutation.SetDeviceType(v)
	return _c
}

// SetNillableDeviceType sets the "device_type" field if the given value is not nil.
func (_c *InteractionCreate) SetNillableDeviceType(v *string) *InteractionCreate {
	if v != nil {
		_c.SetDeviceType(*v)
	}
	return _c
}

// Mutation returns the InteractionMutation object of the builder.
func (_c *InteractionCreate) Mutation() *InteractionMutation {
	return _c.mutation
}

// Save creates the Interaction in the database.
func (_c *InteractionCreate) Save(ctx context.Context) (*Interaction, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *InteractionCreate) SaveX(ctx context.Context) *Interaction {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InteractionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InteractionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *InteractionCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := interaction.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.Unscored(); !ok {
		v := interaction.DefaultUnscored
		_c.mutation.SetUnscored(v)
	}
	if _, ok := _c.mutation.RepeatedQuestion(); !ok {
		v := interaction.DefaultRepeatedQuestion
		_c.mutation.SetRepeatedQuestion(v)
	}
	if _, ok := _c.mutation.PrevInteractionID(); !ok {
		v := interaction.DefaultPrevInteractionID
		_c.mutation.SetPrevInteractionID(v)
	}
	if _, ok := _c.mutation.ResponseLatencyMs(); !ok {
		v := interaction.DefaultResponseLatencyMs
		_c.mutation.SetResponseLatencyMs(v)
	}
	if _, ok := _c.mutation.TimeOfDay(); !ok {
		v := interaction.DefaultTimeOfDay
		_c.mutation.SetTimeOfDay(v)
	}
	if _, ok := _c.mutation.DeviceType(); !ok {
		v := interaction.DefaultDeviceType
		_c.mutation.SetDeviceType(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *InteractionCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "Interaction.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "Interaction.timestamp"`)}
	}
	if _, ok := _c.mutation.InteractionID(); !ok {
		return &ValidationError{Name: "interaction_id", err: errors.New(`ent: missing required field "Interaction.interaction_id"`)}
	}
	if v, ok := _c.mutation.InteractionID(); ok {
		if err := interaction.InteractionIDValidator(v); err != nil {
			return &ValidationError{Name: "interaction_id", err: fmt.Errorf(`ent: validator failed for field "Interaction.interaction_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "Interaction.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := interaction.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "Interaction.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.LearnerID(); !ok {
		return &ValidationError{Name: "learner_id", err: errors.New(`ent: missing required field "Interaction.learner_id"`)}
	}
	if v, ok := _c.mutation.LearnerID(); ok {
		if err := interaction.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "Interaction.learner_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ConceptID(); !ok {
		return &ValidationError{Name: "concept_id", err: errors.New(`ent: missing required field "Interaction.concept_id"`)}
	}
	if v, ok := _c.mutation.ConceptID(); ok {
		if err := interaction.ConceptIDValidator(v); err != nil {
			return &ValidationError{Name: "concept_id", err: fmt.Errorf(`ent: validator failed for field "Interaction.concept_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Subject(); !ok {
		return &ValidationError{Name: "subject", err: errors.New(`ent: missing required field "Interaction.subject"`)}
	}
	if v, ok := _c.mutation.Subject(); ok {
		if err := interaction.SubjectValidator(v); err != nil {
			return &ValidationError{Name: "subject", err: fmt.Errorf(`ent: validator failed for field "Interaction.subject": %w`, err)}
		}
	}
	if _, ok := _c.mutation.DifficultyLevel(); !ok {
		return &ValidationError{Name: "difficulty_level", err: errors.New(`ent: missing required field "Interaction.difficulty_level"`)}
	}
	if _, ok := _c.mutation.Methodology(); !ok {
		return &ValidationError{Name: "methodology", err: errors.New(`ent: missing required field "Interaction.methodology"`)}
	}
	if v, ok := _c.mutation.Methodology(); ok {
		if err := interaction.MethodologyValidator(v); err != nil {
			return &ValidationError{Name: "methodology", err: fmt.Errorf(`ent: validator failed for field "Interaction.methodology": %w`, err)}
		}
	}
	if _, ok := _c.mutation.QuestionText(); !ok {
		return &ValidationError{Name: "question_text", err: errors.New(`ent: missing required field "Interaction.question_text"`)}
	}
	if v, ok := _c.mutation.QuestionText(); ok {
		if err := interaction.QuestionTextValidator(v); err != nil {
			return &ValidationError{Name: "question_text", err: fmt.Errorf(`ent: validator failed for field "Interaction.question_text": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Unscored(); !ok {
		return &ValidationError{Name: "unscored", err: errors.New(`ent: missing required field "Interaction.unscored"`)}
	}
	if _, ok := _c.mutation.RepeatedQuestion(); !ok {
		return &ValidationError{Name: "repeated_question", err: errors.New(`ent: missing required field "Interaction.repeated_question"`)}
	}
	if _, ok := _c.mutation.PrevInteractionID(); !ok {
		return &ValidationError{Name: "prev_interaction_id", err: errors.New(`ent: missing required field "Interaction.prev_interaction_id"`)}
	}
	if _, ok := _c.mutation.ResponseLatencyMs(); !ok {
		return &ValidationError{Name: "response_latency_ms", err: errors.New(`ent: missing required field "Interaction.response_latency_ms"`)}
	}
	if _, ok := _c.mutation.TimeOfDay(); !ok {
		return &ValidationError{Name: "time_of_day", err: errors.New(`ent: missing required field "Interaction.time_of_day"`)}
	}
	if _, ok := _c.mutation.DeviceType(); !ok {
		return &ValidationError{Name: "device_type", err: errors.New(`ent: missing required field "Interaction.device_type"`)}
	}
	return nil
}

func (_c *InteractionCreate) sqlSave(ctx context.Context) (*Interaction, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *InteractionCreate) createSpec() (*Interaction, *sqlgraph.CreateSpec) {
	var (
		_node = &Interaction{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(interaction.Table, sqlgraph.NewFieldSpec(interaction.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(interaction.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(interaction.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.InteractionID(); ok {
		_spec.SetField(interaction.FieldInteractionID, field.TypeString, value)
		_node.InteractionID = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(interaction.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.LearnerID(); ok {
		_spec.SetField(interaction.FieldLearnerID, field.TypeString, value)
		_node.LearnerID = value
	}
	if value, ok := _c.mutation.ConceptID(); ok {
		_spec.SetField(interaction.FieldConceptID, field.TypeString, value)
		_node.ConceptID = value
	}
	if value, ok := _c.mutation.Subject(); ok {
		_spec.SetField(interaction.FieldSubject, field.TypeString, value)
		_node.Subject = value
	}
	if value, ok := _c.mutation.DifficultyLevel(); ok {
		_spec.SetField(interaction.FieldDifficultyLevel, field.TypeInt, value)
		_node.DifficultyLevel = value
	}
	if value, ok := _c.mutation.Methodology(); ok {
		_spec.SetField(interaction.FieldMethodology, field.TypeString, value)
		_node.Methodology = value
	}
	if value, ok := _c.mutation.QuestionText(); ok {
		_spec.SetField(interaction.FieldQuestionText, field.TypeString, value)
		_node.QuestionText = value
	}
	if value, ok := _c.mutation.ResponseText(); ok {
		_spec.SetField(interaction.FieldResponseText, field.TypeString, value)
		_node.ResponseText = &value
	}
	if value, ok := _c.mutation.SuccessIndicator(); ok {
		_spec.SetField(interaction.FieldSuccessIndicator, field.TypeFloat64, value)
		_node.SuccessIndicator = &value
	}
	if value, ok := _c.mutation.Unscored(); ok {
		_spec.SetField(interaction.FieldUnscored, field.TypeBool, value)
		_node.Unscored = value
	}
	if value, ok := _c.mutation.RepeatedQuestion(); ok {
		_spec.SetField(interaction.FieldRepeatedQuestion, field.TypeBool, value)
		_node.RepeatedQuestion = value
	}
	if value, ok := _c.mutation.PrevInteractionID(); ok {
		_spec.SetField(interaction.FieldPrevInteractionID, field.TypeString, value)
		_node.PrevInteractionID = value
	}
	if value, ok := _c.mutation.ResponseLatencyMs(); ok {
		_spec.SetField(interaction.FieldResponseLatencyMs, field.TypeInt64, value)
		_node.ResponseLatencyMs = value
	}
	if value, ok := _c.mutation.TimeOfDay(); ok {
		_spec.SetField(interaction.FieldTimeOfDay, field.TypeString, value)
		_node.TimeOfDay = value
	}
	if value, ok := _c.mutation.DeviceType(); ok {
		_spec.SetField(interaction.FieldDeviceType, field.TypeString, value)
		_node.DeviceType = value
	}
	return _node, _spec
}

// InteractionCreateBulk is the builder for creating many Interaction entities in bulk.
type InteractionCreateBulk struct {
	config
	err      error
	builders []*InteractionCreate
}

// Save creates the Interaction entities in the database.
func (_c *InteractionCreateBulk) Save(ctx context.Context) ([]*Interaction, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Interaction, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*InteractionMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *InteractionCreateBulk) SaveX(ctx context.Context) []*Interaction {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InteractionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InteractionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
