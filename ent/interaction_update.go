// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/paideia/ent/interaction"
	"github.com/abhisek/paideia/ent/predicate"
)

// InteractionUpdate is the builder for updating Interaction entities.
type InteractionUpdate struct {
	config
	hooks    []Hook
	mutation *InteractionMutation
}

// Where appends a list predicates to the InteractionUpdate builder.
func (_u *InteractionUpdate) Where(ps ...predicate.Interaction) *InteractionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetInteractionID sets the "interaction_id" field.
func (_u *InteractionUpdate) SetInteractionID(v string) *InteractionUpdate {
	_u.mutation.SetInteractionID(v)
	return _u
}

// SetNillableInteractionID sets the "interaction_id" field if the given value is not nil.
func (_u *InteractionUpdate) SetNillableInteractionID(v *string) *InteractionUpdate {
	if v != nil {
		_u.SetInteractionID(*v)
	}
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *InteractionUpdate) SetSessionID(v string) *InteractionUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *InteractionUpdate) SetNillableSessionID(v *string) *InteractionUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetLearnerID sets the "learner_id" field.
func (_u *InteractionUpdate) SetLearnerID(v string) *InteractionUpdate {
	_u.mutation.SetLearnerID(v)
	return _u
}

// SetNillableLearnerID sets the "learner_id" field if the given value is not nil.
func (_u *InteractionUpdate) SetNillableLearnerID(v *string) *InteractionUpdate {
	if v != nil {
		_u.SetLearnerID(*v)
	}
	return _u
}

// SetConceptID sets the "concept_id" field.
func (_u *InteractionUpdate) SetConceptID(v string) *InteractionUpdate {
	_u.mutation.SetConceptID(v)
	return _u
}

// SetNillableConceptID sets the "concept_id" field if the given value is not nil.
func (_u *InteractionUpdate) SetNillableConceptID(v *string) *InteractionUpdate {
	if v != nil {
		_u.SetConceptID(*v)
	}
	return _u
}

// SetSubject sets the "subject" field.
func (_u *InteractionUpdate) SetSubject(v string) *InteractionUpdate {
	_u.mutation.SetSubject(v)
	return _u
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_u *InteractionUpdate) SetNillableSubject(v *string) *InteractionUpdate {
	if v != nil {
		_u.SetSubject(*v)
	}
	return _u
}

// SetDifficultyLevel sets the "difficulty_level" field.
func (_u *InteractionUpdate) SetDifficultyLevel(v int) *InteractionUpdate {
	_u.mutation.ResetDifficultyLevel()
	_u.mutation.SetDifficultyLevel(v)
	return _u
}

// SetNillableDifficultyLevel sets the "difficulty_level" field if the given value is not nil.
func (_u *InteractionUpdate) SetNillableDifficultyLevel(v *int) *InteractionUpdate {
	if v != nil {
		_u.SetDifficultyLevel(*v)
	}
	return _u
}

// AddDifficultyLevel adds value to the "difficulty_level" field.
func (_u *InteractionUpdate) AddDifficultyLevel(v int) *InteractionUpdate {
	_u.mutation.AddDifficultyLevel(v)
	return _u
}

// SetMethodology sets the "methodology" field.
func (_u *InteractionUpdate) SetMethodology(v string) *InteractionUpdate {
	_u.mutation.SetMethodology(v)
	return _u
}

// SetNillableMethodology sets the "methodology" field if the given value is not nil.
func (_u *InteractionUpdate) SetNillableMethodology(v *string) *InteractionUpdate {
	if v != nil {
		_u.SetMethodology(*v)
	}
	return _u
}

// SetQuestionText sets the "question_text" field.
func (_u *InteractionUpdate) SetQuestionText(v string) *InteractionUpdate {
	_u.mutation.SetQuestionText(v)
	return _u
}

// SetNillableQuestionText sets the "question_text" field if the given value is not nil.
func (_u *InteractionUpdate) SetNillableQuestionText(v *string) *InteractionUpdate {
	if v != nil {
		_u.SetQuestionText(*v)
	}
	return _u
}

// SetResponseText sets the "response_text" field.
func (_u *InteractionUpdate) SetResponseText(v string) *InteractionUpdate {
	_u.mutation.SetResponseText(v)
	return _u
}

// SetNillableResponseText sets the "response_text" field if the given value is not nil.
func (_u *InteractionUpdate) SetNillableResponseText(v *string) *InteractionUpdate {
	if v != nil {
		_u.SetResponseText(*v)
	}
	return _u
}

// ClearResponseText clears the value of the "response_text" field.
func (_u *InteractionUpdate) ClearResponseText() *InteractionUpdate {
	_u.mutation.ClearResponseText()
	return _u
}

// SetSuccessIndicator sets the "success_indicator" field.
func (_u *InteractionUpdate) SetSuccessIndicator(v float64) *InteractionUpdate {
	_u.mutation.ResetSuccessIndicator()
	_u.mutation.SetSuccessIndicator(v)
	return _u
}

// SetNillableSuccessIndicator sets the "success_indicator" field if the given value is not nil.
func (_u *InteractionUpdate) SetNillableSuccessIndicator(v *float64) *InteractionUpdate {
	if v != nil {
		_u.SetSuccessIndicator(*v)
	}
	return _u
}

// AddSuccessIndicator adds value to the "success_indicator" field.
func (_u *InteractionUpdate) AddSuccessIndicator(v float64) *InteractionUpdate {
	_u.mutation.AddSuccessIndicator(v)
	return _u
}

// ClearSuccessIndicator clears the value of the "success_indicator" field.
func (_u *InteractionUpdate) ClearSuccessIndicator() *InteractionUpdate {
	_u.mutation.ClearSuccessIndicator()
	return _u
}

// SetUnscored sets the "unscored" field.
func (_u *InteractionUpdate) SetUnscored(v bool) *InteractionUpdate {
	_u.mutation.SetUnscored(v)
	return _u
}

// SetNillableUnscored sets the "unscored" field if the given value is not nil.
func (_u *InteractionUpdate) SetNillableUnscored(v *bool) *InteractionUpdate {
	if v != nil {
		_u.SetUnscored(*v)
	}
	return _u
}

// SetRepeatedQuestion sets the "repeated_question" field.
func (_u *InteractionUpdate) SetRepeatedQuestion(v bool) *InteractionUpdate {
	_u.mutation.SetRepeatedQuestion(v)
	return _u
}

// SetNillableRepeatedQuestion sets the "repeated_question" field if the given value is not nil.
func (_u *InteractionUpdate) SetNillableRepeatedQuestion(v *bool) *InteractionUpdate {
	if v != nil {
		_u.SetRepeatedQuestion(*v)
	}
	return _u
}

// SetPrevInteractionID sets the "prev_interaction_id" field.
func (_u *InteractionUpdate) SetPrevInteractionID(v string) *InteractionUpdate {
	_u.mutation.SetPrevInteractionID(v)
	return _u
}

// SetNillablePrevInteractionID sets the "prev_interaction_id" field if the given value is not nil.
func (_u *InteractionUpdate) SetNillablePrevInteractionID(v *string) *InteractionUpdate {
	if v != nil {
		_u.SetPrevInteractionID(*v)
	}
	return _u
}

// SetResponseLatencyMs sets the "response_latency_ms" field.
func (_u *InteractionUpdate) SetResponseLatencyMs(v int64) *InteractionUpdate {
	_u.mutation.ResetResponseLatencyMs()
	_u.mutation.SetResponseLatencyMs(v)
	return _u
}

// SetNillableResponseLatencyMs sets the "response_latency_ms" field if the given value is not nil.
func (_u *InteractionUpdate) SetNillableResponseLatencyMs(v *int64) *InteractionUpdate {
	if v != nil {
		_u.SetResponseLatencyMs(*v)
	}
	return _u
}

// AddResponseLatencyMs adds value to the "response_latency_ms" field.
func (_u *InteractionUpdate) AddResponseLatencyMs(v int64) *InteractionUpdate {
	_u.mutation.AddResponseLatencyMs(v)
	return _u
}

// SetTimeOfDay sets the "time_of_day" field.
func (_u *InteractionUpdate) SetTimeOfDay(v string) *InteractionUpdate {
	_u.mutation.SetTimeOfDay(v)
	return _u
}

// SetNillableTimeOfDay sets the "time_of_day" field if the given value is not nil.
func (_u *InteractionUpdate) SetNillableTimeOfDay(v *string) *InteractionUpdate {
	if v != nil {
		_u.SetTimeOfDay(*v)
	}
	return _u
}

// SetDeviceType sets the "device_type" field.
func (_u *InteractionUpdate) SetDeviceType(v string) *InteractionUpdate {
	_u.mutation.SetDeviceType(v)
	return _u
}

// SetNillableDeviceType sets the "device_type" field if the given value is not nil.
func (_u *InteractionUpdate) SetNillableDeviceType(v *string) *InteractionUpdate {
	if v != nil {
		_u.SetDeviceType(*v)
	}
	return _u
}

// Mutation returns the InteractionMutation object of the builder.
func (_u *InteractionUpdate) Mutation() *InteractionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *InteractionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InteractionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *InteractionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InteractionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InteractionUpdate) check() error {
	if v, ok := _u.mutation.InteractionID(); ok {
		if err := interaction.InteractionIDValidator(v); err != nil {
			return &ValidationError{Name: "interaction_id", err: fmt.Errorf(`ent: validator failed for field "Interaction.interaction_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SessionID(); ok {
		if err := interaction.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "Interaction.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LearnerID(); ok {
		if err := interaction.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "Interaction.learner_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ConceptID(); ok {
		if err := interaction.ConceptIDValidator(v); err != nil {
			return &ValidationError{Name: "concept_id", err: fmt.Errorf(`ent: validator failed for field "Interaction.concept_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Subject(); ok {
		if err := interaction.SubjectValidator(v); err != nil {
			return &ValidationError{Name: "subject", err: fmt.Errorf(`ent: validator failed for field "Interaction.subject": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Methodology(); ok {
		if err := interaction.MethodologyValidator(v); err != nil {
			return &ValidationError{Name: "methodology", err: fmt.Errorf(`ent: validator failed for field "Interaction.methodology": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuestionText(); ok {
		if err := interaction.QuestionTextValidator(v); err != nil {
			return &ValidationError{Name: "question_text", err: fmt.Errorf(`ent: validator failed for field "Interaction.question_text": %w`, err)}
		}
	}
	return nil
}

func (_u *InteractionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(interaction.Table, interaction.Columns, sqlgraph.NewFieldSpec(interaction.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.InteractionID(); ok {
		_spec.SetField(interaction.FieldInteractionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(interaction.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.LearnerID(); ok {
		_spec.SetField(interaction.FieldLearnerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ConceptID(); ok {
		_spec.SetField(interaction.FieldConceptID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Subject(); ok {
		_spec.SetField(interaction.FieldSubject, field.TypeString, value)
	}
	if value, ok := _u.mutation.DifficultyLevel(); ok {
		_spec.SetField(interaction.FieldDifficultyLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDifficultyLevel(); ok {
		_spec.AddField(interaction.FieldDifficultyLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Methodology(); ok {
		_spec.SetField(interaction.FieldMethodology, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionText(); ok {
		_spec.SetField(interaction.FieldQuestionText, field.TypeString, value)
	}
	if value, ok := _u.mutation.ResponseText(); ok {
		_spec.SetField(interaction.FieldResponseText, field.TypeString, value)
	}
	if _u.mutation.ResponseTextCleared() {
		_spec.ClearField(interaction.FieldResponseText, field.TypeString)
	}
	if value, ok := _u.mutation.SuccessIndicator(); ok {
		_spec.SetField(interaction.FieldSuccessIndicator, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSuccessIndicator(); ok {
		_spec.AddField(interaction.FieldSuccessIndicator, field.TypeFloat64, value)
	}
	if _u.mutation.SuccessIndicatorCleared() {
		_spec.ClearField(interaction.FieldSuccessIndicator, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Unscored(); ok {
		_spec.SetField(interaction.FieldUnscored, field.TypeBool, value)
	}
	if value, ok := _u.mutation.RepeatedQuestion(); ok {
		_spec.SetField(interaction.FieldRepeatedQuestion, field.TypeBool, value)
	}
	if value, ok := _u.mutation.PrevInteractionID(); ok {
		_spec.SetField(interaction.FieldPrevInteractionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ResponseLatencyMs(); ok {
		_spec.SetField(interaction.FieldResponseLatencyMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedResponseLatencyMs(); ok {
		_spec.AddField(interaction.FieldResponseLatencyMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.TimeOfDay(); ok {
		_spec.SetField(interaction.FieldTimeOfDay, field.TypeString, value)
	}
	if value, ok := _u.mutation.DeviceType(); ok {
		_spec.SetField(interaction.FieldDeviceType, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{interaction.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// InteractionUpdateOne is the builder for updating a single Interaction entity.
type InteractionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *InteractionMutation
}

// SetInteractionID sets the "interaction_id" field.
func (_u *InteractionUpdateOne) SetInteractionID(v string) *InteractionUpdateOne {
	_u.mutation.SetInteractionID(v)
	return _u
}

// SetNillableInteractionID sets the "interaction_id" field if the given value is not nil.
func (_u *InteractionUpdateOne) SetNillableInteractionID(v *string) *InteractionUpdateOne {
	if v != nil {
		_u.SetInteractionID(*v)
	}
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *InteractionUpdateOne) SetSessionID(v string) *InteractionUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *InteractionUpdateOne) SetNillableSessionID(v *string) *InteractionUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetLearnerID sets the "learner_id" field.
func (_u *InteractionUpdateOne) SetLearnerID(v string) *InteractionUpdateOne {
	_u.mutation.SetLearnerID(v)
	return _u
}

// SetNillableLearnerID sets the "learner_id" field if the given value is not nil.
func (_u *InteractionUpdateOne) SetNillableLearnerID(v *string) *InteractionUpdateOne {
	if v != nil {
		_u.SetLearnerID(*v)
	}
	return _u
}

// SetConceptID sets the "concept_id" field.
func (_u *InteractionUpdateOne) SetConceptID(v string) *InteractionUpdateOne {
	_u.mutation.SetConceptID(v)
	return _u
}

// SetNillableConceptID sets the "concept_id" field if the given value is not nil.
func (_u *InteractionUpdateOne) SetNillableConceptID(v *string) *InteractionUpdateOne {
	if v != nil {
		_u.SetConceptID(*v)
	}
	return _u
}

// SetSubject sets the "subject" field.
func (_u *InteractionUpdateOne) SetSubject(v string) *InteractionUpdateOne {
	_u.mutation.SetSubject(v)
	return _u
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_u *InteractionUpdateOne) SetNillableSubject(v *string) *InteractionUpdateOne {
	if v != nil {
		_u.SetSubject(*v)
	}
	return _u
}

// SetDifficultyLevel sets the "difficulty_level" field.
func (_u *InteractionUpdateOne) SetDifficultyLevel(v int) *InteractionUpdateOne {
	_u.mutation.ResetDifficultyLevel()
	_u.mutation.SetDifficultyLevel(v)
	return _u
}

// SetNillableDifficultyLevel sets the "difficulty_level" field if the given value is not nil.
func (_u *InteractionUpdateOne) SetNillableDifficultyLevel(v *int) *InteractionUpdateOne {
	if v != nil {
		_u.SetDifficultyLevel(*v)
	}
	return _u
}

// AddDifficultyLevel adds value to the "difficulty_level" field.
func (_u *InteractionUpdateOne) AddDifficultyLevel(v int) *InteractionUpdateOne {
	_u.mutation.AddDifficultyLevel(v)
	return _u
}

// SetMethodology sets the "methodology" field.
func (_u *InteractionUpdateOne) SetMethodology(v string) *InteractionUpdateOne {
	_u.mutation.SetMethodology(v)
	return _u
}

// SetNillableMethodology sets the "methodology" field if the given value is not nil.
func (_u *InteractionUpdateOne) SetNillableMethodology(v *string) *InteractionUpdateOne {
	if v != nil {
		_u.SetMethodology(*v)
	}
	return _u
}

// SetQuestionText sets the "question_text" field.
func (_u *InteractionUpdateOne) SetQuestionText(v string) *InteractionUpdateOne {
	_u.mutation.SetQuestionText(v)
	return _u
}

// SetNillableQuestionText sets the "question_text" field if the given value is not nil.
func (_u *InteractionUpdateOne) SetNillableQuestionText(v *string) *InteractionUpdateOne {
	if v != nil {
		_u.SetQuestionText(*v)
	}
	return _u
}

// SetResponseText sets the "response_text" field.
func (_u *InteractionUpdateOne) SetResponseText(v string) *InteractionUpdateOne {
	_u.mutation.SetResponseText(v)
	return _u
}

// SetNillableResponseText sets the "response_text" field if the given value is not nil.
func (_u *InteractionUpdateOne) SetNillableResponseText(v *string) *InteractionUpdateOne {
	if v != nil {
		_u.SetResponseText(*v)
	}
	return _u
}

// ClearResponseText clears the value of the "response_text" field.
func (_u *InteractionUpdateOne) ClearResponseText() *InteractionUpdateOne {
	_u.mutation.ClearResponseText()
	return _u
}

// SetSuccessIndicator sets the "success_indicator" field.
func (_u *InteractionUpdateOne) SetSuccessIndicator(v float64) *InteractionUpdateOne {
	_u.mutation.ResetSuccessIndicator()
	_u.mutation.SetSuccessIndicator(v)
	return _u
}

// SetNillableSuccessIndicator sets the "success_indicator" field if the given value is not nil.
func (_u *InteractionUpdateOne) SetNillableSuccessIndicator(v *float64) *InteractionUpdateOne {
	if v != nil {
		_u.SetSuccessIndicator(*v)
	}
	return _u
}

// AddSuccessIndicator adds value to the "success_indicator" field.
func (_u *InteractionUpdateOne) AddSuccessIndicator(v float64) *InteractionUpdateOne {
	_u.mutation.AddSuccessIndicator(v)
	return _u
}

// ClearSuccessIndicator clears the value of the "success_indicator" field.
func (_u *InteractionUpdateOne) ClearSuccessIndicator() *InteractionUpdateOne {
	_u.mutation.ClearSuccessIndicator()
	return _u
}

// SetUnscored sets the "unscored" field.
func (_u *InteractionUpdateOne) SetUnscored(v bool) *InteractionUpdateOne {
	_u.mutation.SetUnscored(v)
	return _u
}

// SetNillableUnscored sets the "unscored" field if the given value is not nil.
func (_u *InteractionUpdateOne) SetNillableUnscored(v *bool) *InteractionUpdateOne {
	if v != nil {
		_u.SetUnscored(*v)
	}
	return _u
}

// SetRepeatedQuestion sets the "repeated_question" field.
func (_u *InteractionUpdateOne) SetRepeatedQuestion(v bool) *InteractionUpdateOne {
	_u.mutation.SetRepeatedQuestion(v)
	return _u
}

// SetNillableRepeatedQuestion sets the "repeated_question" field if the given value is not nil.
func (_u *InteractionUpdateOne) SetNillableRepeatedQuestion(v *bool) *InteractionUpdateOne {
	if v != nil {
		_u.SetRepeatedQuestion(*v)
	}
	return _u
}

// SetPrevInteractionID sets the "prev_interaction_id" field.
func (_u *InteractionUpdateOne) SetPrevInteractionID(v string) *InteractionUpdateOne {
	_u.mutation.SetPrevInteractionID(v)
	return _u
}

// SetNillablePrevInteractionID sets the "prev_interaction_id" field if the given value is not nil.
func (_u *InteractionUpdateOne) SetNillablePrevInteractionID(v *string) *InteractionUpdateOne {
	if v != nil {
		_u.SetPrevInteractionID(*v)
	}
	return _u
}

// SetResponseLatencyMs sets the "response_latency_ms" field.
func (_u *InteractionUpdateOne) SetResponseLatencyMs(v int64) *InteractionUpdateOne {
	_u.mutation.ResetResponseLatencyMs()
	_u.mutation.SetResponseLatencyMs(v)
	return _u
}

// SetNillableResponseLatencyMs sets the "response_latency_ms" field if the given value is not nil.
func (_u *InteractionUpdateOne) SetNillableResponseLatencyMs(v *int64) *InteractionUpdateOne {
	if v != nil {
		_u.SetResponseLatencyMs(*v)
	}
	return _u
}

// AddResponseLatencyMs adds value to the "response_latency_ms" field.
func (_u *InteractionUpdateOne) AddResponseLatencyMs(v int64) *InteractionUpdateOne {
	_u.mutation.AddResponseLatencyMs(v)
	return _u
}

// SetTimeOfDay sets the "time_of_day" field.
func (_u *InteractionUpdateOne) SetTimeOfDay(v string) *InteractionUpdateOne {
	_u.mutation.SetTimeOfDay(v)
	return _u
}

// SetNillableTimeOfDay sets the "time_of_day" field if the given value is not nil.
func (_u *InteractionUpdateOne) SetNillableTimeOfDay(v *string) *InteractionUpdateOne {
	if v != nil {
		_u.SetTimeOfDay(*v)
	}
	return _u
}

// SetDeviceType sets the "device_type" field.
func (_u *InteractionUpdateOne) SetDeviceType(v string) *InteractionUpdateOne {
	_u.mutation.SetDeviceType(v)
	return _u
}

// SetNillableDeviceType sets the "device_type" field if the given value is not nil.
func (_u *InteractionUpdateOne) SetNillableDeviceType(v *string) *InteractionUpdateOne {
	if v != nil {
		_u.SetDeviceType(*v)
	}
	return _u
}

// Mutation returns the InteractionMutation object of the builder.
func (_u *InteractionUpdateOne) Mutation() *InteractionMutation {
	return _u.mutation
}

// Where appends a list predicates to the InteractionUpdate builder.
func (_u *InteractionUpdateOne) Where(ps ...predicate.Interaction) *InteractionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *InteractionUpdateOne) Select(field string, fields ...string) *InteractionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Interaction entity.
func (_u *InteractionUpdateOne) Save(ctx context.Context) (*Interaction, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InteractionUpdateOne) SaveX(ctx context.Context) *Interaction {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *InteractionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InteractionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InteractionUpdateOne) check() error {
	if v, ok := _u.mutation.InteractionID(); ok {
		if err := interaction.InteractionIDValidator(v); err != nil {
			return &ValidationError{Name: "interaction_id", err: fmt.Errorf(`ent: validator failed for field "Interaction.interaction_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SessionID(); ok {
		if err := interaction.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "Interaction.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LearnerID(); ok {
		if err := interaction.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "Interaction.learner_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ConceptID(); ok {
		if err := interaction.ConceptIDValidator(v); err != nil {
			return &ValidationError{Name: "concept_id", err: fmt.Errorf(`ent: validator failed for field "Interaction.concept_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Subject(); ok {
		if err := interaction.SubjectValidator(v); err != nil {
			return &ValidationError{Name: "subject", err: fmt.Errorf(`ent: validator failed for field "Interaction.subject": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Methodology(); ok {
		if err := interaction.MethodologyValidator(v); err != nil {
			return &ValidationError{Name: "methodology", err: fmt.Errorf(`ent: validator failed for field "Interaction.methodology": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuestionText(); ok {
		if err := interaction.QuestionTextValidator(v); err != nil {
			return &ValidationError{Name: "question_text", err: fmt.Errorf(`ent: validator failed for field "Interaction.question_text": %w`, err)}
		}
	}
	return nil
}

func (_u *InteractionUpdateOne) sqlSave(ctx context.Context) (_node *Interaction, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(interaction.Table, interaction.Columns, sqlgraph.NewFieldSpec(interaction.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Interaction.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, interaction.FieldID)
		for _, f := range fields {
			if !interaction.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != interaction.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.InteractionID(); ok {
		_spec.SetField(interaction.FieldInteractionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(interaction.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.LearnerID(); ok {
		_spec.SetField(interaction.FieldLearnerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ConceptID(); ok {
		_spec.SetField(interaction.FieldConceptID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Subject(); ok {
		_spec.SetField(interaction.FieldSubject, field.TypeString, value)
	}
	if value, ok := _u.mutation.DifficultyLevel(); ok {
		_spec.SetField(interaction.FieldDifficultyLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDifficultyLevel(); ok {
		_spec.AddField(interaction.FieldDifficultyLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Methodology(); ok {
		_spec.SetField(interaction.FieldMethodology, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionText(); ok {
		_spec.SetField(interaction.FieldQuestionText, field.TypeString, value)
	}
	if value, ok := _u.mutation.ResponseText(); ok {
		_spec.SetField(interaction.FieldResponseText, field.TypeString, value)
	}
	if _u.mutation.ResponseTextCleared() {
		_spec.ClearField(interaction.FieldResponseText, field.TypeString)
	}
	if value, ok := _u.mutation.SuccessIndicator(); ok {
		_spec.SetField(interaction.FieldSuccessIndicator, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSuccessIndicator(); ok {
		_spec.AddField(interaction.FieldSuccessIndicator, field.TypeFloat64, value)
	}
	if _u.mutation.SuccessIndicatorCleared() {
		_spec.ClearField(interaction.FieldSuccessIndicator, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Unscored(); ok {
		_spec.SetField(interaction.FieldUnscored, field.TypeBool, value)
	}
	if value, ok := _u.mutation.RepeatedQuestion(); ok {
		_spec.SetField(interaction.FieldRepeatedQuestion, field.TypeBool, value)
	}
	if value, ok := _u.mutation.PrevInteractionID(); ok {
		_spec.SetField(interaction.FieldPrevInteractionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ResponseLatencyMs(); ok {
		_spec.SetField(interaction.FieldResponseLatencyMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedResponseLatencyMs(); ok {
		_spec.AddField(interaction.FieldResponseLatencyMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.TimeOfDay(); ok {
		_spec.SetField(interaction.FieldTimeOfDay, field.TypeString, value)
	}
	if value, ok := _u.mutation.DeviceType(); ok {
		_spec.SetField(interaction.FieldDeviceType, field.TypeString, value)
	}
	_node = &Interaction{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{interaction.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
