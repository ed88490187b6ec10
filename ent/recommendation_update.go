// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/paideia/ent/predicate"
	"github.com/abhisek/paideia/ent/recommendation"
)

// RecommendationUpdate is the builder for updating Recommendation entities.
type RecommendationUpdate struct {
	config
	hooks    []Hook
	mutation *RecommendationMutation
}

// Where appends a list predicates to the RecommendationUpdate builder.
func (_u *RecommendationUpdate) Where(ps ...predicate.Recommendation) *RecommendationUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetLearnerID sets the "learner_id" field.
func (_u *RecommendationUpdate) SetLearnerID(v string) *RecommendationUpdate {
	_u.mutation.SetLearnerID(v)
	return _u
}

// SetNillableLearnerID sets the "learner_id" field if the given value is not nil.
func (_u *RecommendationUpdate) SetNillableLearnerID(v *string) *RecommendationUpdate {
	if v != nil {
		_u.SetLearnerID(*v)
	}
	return _u
}

// SetRecType sets the "rec_type" field.
func (_u *RecommendationUpdate) SetRecType(v string) *RecommendationUpdate {
	_u.mutation.SetRecType(v)
	return _u
}

// SetNillableRecType sets the "rec_type" field if the given value is not nil.
func (_u *RecommendationUpdate) SetNillableRecType(v *string) *RecommendationUpdate {
	if v != nil {
		_u.SetRecType(*v)
	}
	return _u
}

// SetConceptID sets the "concept_id" field.
func (_u *RecommendationUpdate) SetConceptID(v string) *RecommendationUpdate {
	_u.mutation.SetConceptID(v)
	return _u
}

// SetNillableConceptID sets the "concept_id" field if the given value is not nil.
func (_u *RecommendationUpdate) SetNillableConceptID(v *string) *RecommendationUpdate {
	if v != nil {
		_u.SetConceptID(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *RecommendationUpdate) SetTitle(v string) *RecommendationUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *RecommendationUpdate) SetNillableTitle(v *string) *RecommendationUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *RecommendationUpdate) SetDescription(v string) *RecommendationUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *RecommendationUpdate) SetNillableDescription(v *string) *RecommendationUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetReasoning sets the "reasoning" field.
func (_u *RecommendationUpdate) SetReasoning(v string) *RecommendationUpdate {
	_u.mutation.SetReasoning(v)
	return _u
}

// SetNillableReasoning sets the "reasoning" field if the given value is not nil.
func (_u *RecommendationUpdate) SetNillableReasoning(v *string) *RecommendationUpdate {
	if v != nil {
		_u.SetReasoning(*v)
	}
	return _u
}

// SetDifficultyLevel sets the "difficulty_level" field.
func (_u *RecommendationUpdate) SetDifficultyLevel(v int) *RecommendationUpdate {
	_u.mutation.ResetDifficultyLevel()
	_u.mutation.SetDifficultyLevel(v)
	return _u
}

// SetNillableDifficultyLevel sets the "difficulty_level" field if the given value is not nil.
func (_u *RecommendationUpdate) SetNillableDifficultyLevel(v *int) *RecommendationUpdate {
	if v != nil {
		_u.SetDifficultyLevel(*v)
	}
	return _u
}

// AddDifficultyLevel adds value to the "difficulty_level" field.
func (_u *RecommendationUpdate) AddDifficultyLevel(v int) *RecommendationUpdate {
	_u.mutation.AddDifficultyLevel(v)
	return _u
}

// SetEstimatedMinutes sets the "estimated_minutes" field.
func (_u *RecommendationUpdate) SetEstimatedMinutes(v int) *RecommendationUpdate {
	_u.mutation.ResetEstimatedMinutes()
	_u.mutation.SetEstimatedMinutes(v)
	return _u
}

// SetNillableEstimatedMinutes sets the "estimated_minutes" field if the given value is not nil.
func (_u *RecommendationUpdate) SetNillableEstimatedMinutes(v *int) *RecommendationUpdate {
	if v != nil {
		_u.SetEstimatedMinutes(*v)
	}
	return _u
}

// AddEstimatedMinutes adds value to the "estimated_minutes" field.
func (_u *RecommendationUpdate) AddEstimatedMinutes(v int) *RecommendationUpdate {
	_u.mutation.AddEstimatedMinutes(v)
	return _u
}

// SetPriority sets the "priority" field.
func (_u *RecommendationUpdate) SetPriority(v int) *RecommendationUpdate {
	_u.mutation.ResetPriority()
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *RecommendationUpdate) SetNillablePriority(v *int) *RecommendationUpdate {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// AddPriority adds value to the "priority" field.
func (_u *RecommendationUpdate) AddPriority(v int) *RecommendationUpdate {
	_u.mutation.AddPriority(v)
	return _u
}

// SetUrgency sets the "urgency" field.
func (_u *RecommendationUpdate) SetUrgency(v string) *RecommendationUpdate {
	_u.mutation.SetUrgency(v)
	return _u
}

// SetNillableUrgency sets the "urgency" field if the given value is not nil.
func (_u *RecommendationUpdate) SetNillableUrgency(v *string) *RecommendationUpdate {
	if v != nil {
		_u.SetUrgency(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *RecommendationUpdate) SetStatus(v string) *RecommendationUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *RecommendationUpdate) SetNillableStatus(v *string) *RecommendationUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *RecommendationUpdate) SetCreatedAt(v time.Time) *RecommendationUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *RecommendationUpdate) SetNillableCreatedAt(v *time.Time) *RecommendationUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetExpiresAt sets the "expires_at" field.
func (_u *RecommendationUpdate) SetExpiresAt(v time.Time) *RecommendationUpdate {
	_u.mutation.SetExpiresAt(v)
	return _u
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_u *RecommendationUpdate) SetNillableExpiresAt(v *time.Time) *RecommendationUpdate {
	if v != nil {
		_u.SetExpiresAt(*v)
	}
	return _u
}

// Mutation returns the RecommendationMutation object of the builder.
func (_u *RecommendationUpdate) Mutation() *RecommendationMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *RecommendationUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RecommendationUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *RecommendationUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RecommendationUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RecommendationUpdate) check() error {
	if v, ok := _u.mutation.LearnerID(); ok {
		if err := recommendation.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "Recommendation.learner_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RecType(); ok {
		if err := recommendation.RecTypeValidator(v); err != nil {
			return &ValidationError{Name: "rec_type", err: fmt.Errorf(`ent: validator failed for field "Recommendation.rec_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Title(); ok {
		if err := recommendation.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Recommendation.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Description(); ok {
		if err := recommendation.DescriptionValidator(v); err != nil {
			return &ValidationError{Name: "description", err: fmt.Errorf(`ent: validator failed for field "Recommendation.description": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Reasoning(); ok {
		if err := recommendation.ReasoningValidator(v); err != nil {
			return &ValidationError{Name: "reasoning", err: fmt.Errorf(`ent: validator failed for field "Recommendation.reasoning": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Urgency(); ok {
		if err := recommendation.UrgencyValidator(v); err != nil {
			return &ValidationError{Name: "urgency", err: fmt.Errorf(`ent: validator failed for field "Recommendation.urgency": %w`, err)}
		}
	}
	return nil
}

func (_u *RecommendationUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(recommendation.Table, recommendation.Columns, sqlgraph.NewFieldSpec(recommendation.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.LearnerID(); ok {
		_spec.SetField(recommendation.FieldLearnerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.RecType(); ok {
		_spec.SetField(recommendation.FieldRecType, field.TypeString, value)
	}
	if value, ok := _u.mutation.ConceptID(); ok {
		_spec.SetField(recommendation.FieldConceptID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(recommendation.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(recommendation.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.Reasoning(); ok {
		_spec.SetField(recommendation.FieldReasoning, field.TypeString, value)
	}
	if value, ok := _u.mutation.DifficultyLevel(); ok {
		_spec.SetField(recommendation.FieldDifficultyLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDifficultyLevel(); ok {
		_spec.AddField(recommendation.FieldDifficultyLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.EstimatedMinutes(); ok {
		_spec.SetField(recommendation.FieldEstimatedMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedEstimatedMinutes(); ok {
		_spec.AddField(recommendation.FieldEstimatedMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(recommendation.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPriority(); ok {
		_spec.AddField(recommendation.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Urgency(); ok {
		_spec.SetField(recommendation.FieldUrgency, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(recommendation.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(recommendation.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ExpiresAt(); ok {
		_spec.SetField(recommendation.FieldExpiresAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{recommendation.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// RecommendationUpdateOne is the builder for updating a single Recommendation entity.
type RecommendationUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *RecommendationMutation
}

// SetLearnerID sets the "learner_id" field.
func (_u *RecommendationUpdateOne) SetLearnerID(v string) *RecommendationUpdateOne {
	_u.mutation.SetLearnerID(v)
	return _u
}

// SetNillableLearnerID sets the "learner_id" field if the given value is not nil.
func (_u *RecommendationUpdateOne) SetNillableLearnerID(v *string) *RecommendationUpdateOne {
	if v != nil {
		_u.SetLearnerID(*v)
	}
	return _u
}

// SetRecType sets the "rec_type" field.
func (_u *RecommendationUpdateOne) SetRecType(v string) *RecommendationUpdateOne {
	_u.mutation.SetRecType(v)
	return _u
}

// SetNillableRecType sets the "rec_type" field if the given value is not nil.
func (_u *RecommendationUpdateOne) SetNillableRecType(v *string) *RecommendationUpdateOne {
	if v != nil {
		_u.SetRecType(*v)
	}
	return _u
}

// SetConceptID sets the "concept_id" field.
func (_u *RecommendationUpdateOne) SetConceptID(v string) *RecommendationUpdateOne {
	_u.mutation.SetConceptID(v)
	return _u
}

// SetNillableConceptID sets the "concept_id" field if the given value is not nil.
func (_u *RecommendationUpdateOne) SetNillableConceptID(v *string) *RecommendationUpdateOne {
	if v != nil {
		_u.SetConceptID(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *RecommendationUpdateOne) SetTitle(v string) *RecommendationUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *RecommendationUpdateOne) SetNillableTitle(v *string) *RecommendationUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *RecommendationUpdateOne) SetDescription(v string) *RecommendationUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *RecommendationUpdateOne) SetNillableDescription(v *string) *RecommendationUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetReasoning sets the "reasoning" field.
func (_u *RecommendationUpdateOne) SetReasoning(v string) *RecommendationUpdateOne {
	_u.mutation.SetReasoning(v)
	return _u
}

// SetNillableReasoning sets the "reasoning" field if the given value is not nil.
func (_u *RecommendationUpdateOne) SetNillableReasoning(v *string) *RecommendationUpdateOne {
	if v != nil {
		_u.SetReasoning(*v)
	}
	return _u
}

// SetDifficultyLevel sets the "difficulty_level" field.
func (_u *RecommendationUpdateOne) SetDifficultyLevel(v int) *RecommendationUpdateOne {
	_u.mutation.ResetDifficultyLevel()
	_u.mutation.SetDifficultyLevel(v)
	return _u
}

// SetNillableDifficultyLevel sets the "difficulty_level" field if the given value is not nil.
func (_u *RecommendationUpdateOne) SetNillableDifficultyLevel(v *int) *RecommendationUpdateOne {
	if v != nil {
		_u.SetDifficultyLevel(*v)
	}
	return _u
}

// AddDifficultyLevel adds value to the "difficulty_level" field.
func (_u *RecommendationUpdateOne) AddDifficultyLevel(v int) *RecommendationUpdateOne {
	_u.mutation.AddDifficultyLevel(v)
	return _u
}

// SetEstimatedMinutes sets the "estimated_minutes" field.
func (_u *RecommendationUpdateOne) SetEstimatedMinutes(v int) *RecommendationUpdateOne {
	_u.mutation.ResetEstimatedMinutes()
	_u.mutation.SetEstimatedMinutes(v)
	return _u
}

// SetNillableEstimatedMinutes sets the "estimated_minutes" field if the given value is not nil.
func (_u *RecommendationUpdateOne) SetNillableEstimatedMinutes(v *int) *RecommendationUpdateOne {
	if v != nil {
		_u.SetEstimatedMinutes(*v)
	}
	return _u
}

// AddEstimatedMinutes adds value to the "estimated_minutes" field.
func (_u *RecommendationUpdateOne) AddEstimatedMinutes(v int) *RecommendationUpdateOne {
	_u.mutation.AddEstimatedMinutes(v)
	return _u
}

// SetPriority sets the "priority" field.
func (_u *RecommendationUpdateOne) SetPriority(v int) *RecommendationUpdateOne {
	_u.mutation.ResetPriority()
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *RecommendationUpdateOne) SetNillablePriority(v *int) *RecommendationUpdateOne {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// AddPriority adds value to the "priority" field.
func (_u *RecommendationUpdateOne) AddPriority(v int) *RecommendationUpdateOne {
	_u.mutation.AddPriority(v)
	return _u
}

// SetUrgency sets the "urgency" field.
func (_u *RecommendationUpdateOne) SetUrgency(v string) *RecommendationUpdateOne {
	_u.mutation.SetUrgency(v)
	return _u
}

// SetNillableUrgency sets the "urgency" field if the given value is not nil.
func (_u *RecommendationUpdateOne) SetNillableUrgency(v *string) *RecommendationUpdateOne {
	if v != nil {
		_u.SetUrgency(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *RecommendationUpdateOne) SetStatus(v string) *RecommendationUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *RecommendationUpdateOne) SetNillableStatus(v *string) *RecommendationUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *RecommendationUpdateOne) SetCreatedAt(v time.Time) *RecommendationUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *RecommendationUpdateOne) SetNillableCreatedAt(v *time.Time) *RecommendationUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetExpiresAt sets the "expires_at" field.
func (_u *RecommendationUpdateOne) SetExpiresAt(v time.Time) *RecommendationUpdateOne {
	_u.mutation.SetExpiresAt(v)
	return _u
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_u *RecommendationUpdateOne) SetNillableExpiresAt(v *time.Time) *RecommendationUpdateOne {
	if v != nil {
		_u.SetExpiresAt(*v)
	}
	return _u
}

// Mutation returns the RecommendationMutation object of the builder.
func (_u *RecommendationUpdateOne) Mutation() *RecommendationMutation {
	return _u.mutation
}

// Where appends a list predicates to the RecommendationUpdate builder.
func (_u *RecommendationUpdateOne) Where(ps ...predicate.Recommendation) *RecommendationUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *RecommendationUpdateOne) Select(field string, fields ...string) *RecommendationUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Recommendation entity.
func (_u *RecommendationUpdateOne) Save(ctx context.Context) (*Recommendation, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RecommendationUpdateOne) SaveX(ctx context.Context) *Recommendation {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *RecommendationUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RecommendationUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RecommendationUpdateOne) check() error {
	if v, ok := _u.mutation.LearnerID(); ok {
		if err := recommendation.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "Recommendation.learner_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RecType(); ok {
		if err := recommendation.RecTypeValidator(v); err != nil {
			return &ValidationError{Name: "rec_type", err: fmt.Errorf(`ent: validator failed for field "Recommendation.rec_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Title(); ok {
		if err := recommendation.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Recommendation.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Description(); ok {
		if err := recommendation.DescriptionValidator(v); err != nil {
			return &ValidationError{Name: "description", err: fmt.Errorf(`ent: validator failed for field "Recommendation.description": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Reasoning(); ok {
		if err := recommendation.ReasoningValidator(v); err != nil {
			return &ValidationError{Name: "reasoning", err: fmt.Errorf(`ent: validator failed for field "Recommendation.reasoning": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Urgency(); ok {
		if err := recommendation.UrgencyValidator(v); err != nil {
			return &ValidationError{Name: "urgency", err: fmt.Errorf(`ent: validator failed for field "Recommendation.urgency": %w`, err)}
		}
	}
	return nil
}

func (_u *RecommendationUpdateOne) sqlSave(ctx context.Context) (_node *Recommendation, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(recommendation.Table, recommendation.Columns, sqlgraph.NewFieldSpec(recommendation.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Recommendation.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, recommendation.FieldID)
		for _, f := range fields {
			if !recommendation.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != recommendation.FieldID {
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
	if value, ok := _u.mutation.LearnerID(); ok {
		_spec.SetField(recommendation.FieldLearnerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.RecType(); ok {
		_spec.SetField(recommendation.FieldRecType, field.TypeString, value)
	}
	if value, ok := _u.mutation.ConceptID(); ok {
		_spec.SetField(recommendation.FieldConceptID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(recommendation.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(recommendation.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.Reasoning(); ok {
		_spec.SetField(recommendation.FieldReasoning, field.TypeString, value)
	}
	if value, ok := _u.mutation.DifficultyLevel(); ok {
		_spec.SetField(recommendation.FieldDifficultyLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDifficultyLevel(); ok {
		_spec.AddField(recommendation.FieldDifficultyLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.EstimatedMinutes(); ok {
		_spec.SetField(recommendation.FieldEstimatedMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedEstimatedMinutes(); ok {
		_spec.AddField(recommendation.FieldEstimatedMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(recommendation.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPriority(); ok {
		_spec.AddField(recommendation.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Urgency(); ok {
		_spec.SetField(recommendation.FieldUrgency, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(recommendation.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(recommendation.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ExpiresAt(); ok {
		_spec.SetField(recommendation.FieldExpiresAt, field.TypeTime, value)
	}
	_node = &Recommendation{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{recommendation.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
