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
	"github.com/abhisek/paideia/ent/masteryrecord"
	"github.com/abhisek/paideia/ent/predicate"
)

// MasteryRecordUpdate is the builder for updating MasteryRecord entities.
type MasteryRecordUpdate struct {
	config
	hooks    []Hook
	mutation *MasteryRecordMutation
}

// Where appends a list predicates to the MasteryRecordUpdate builder.
func (_u *MasteryRecordUpdate) Where(ps ...predicate.MasteryRecord) *MasteryRecordUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetLearnerID sets the "learner_id" field.
func (_u *MasteryRecordUpdate) SetLearnerID(v string) *MasteryRecordUpdate {
	_u.mutation.SetLearnerID(v)
	return _u
}

// SetNillableLearnerID sets the "learner_id" field if the given value is not nil.
func (_u *MasteryRecordUpdate) SetNillableLearnerID(v *string) *MasteryRecordUpdate {
	if v != nil {
		_u.SetLearnerID(*v)
	}
	return _u
}

// SetConceptID sets the "concept_id" field.
func (_u *MasteryRecordUpdate) SetConceptID(v string) *MasteryRecordUpdate {
	_u.mutation.SetConceptID(v)
	return _u
}

// SetNillableConceptID sets the "concept_id" field if the given value is not nil.
func (_u *MasteryRecordUpdate) SetNillableConceptID(v *string) *MasteryRecordUpdate {
	if v != nil {
		_u.SetConceptID(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *MasteryRecordUpdate) SetScore(v float64) *MasteryRecordUpdate {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *MasteryRecordUpdate) SetNillableScore(v *float64) *MasteryRecordUpdate {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *MasteryRecordUpdate) AddScore(v float64) *MasteryRecordUpdate {
	_u.mutation.AddScore(v)
	return _u
}

// SetInteractionCount sets the "interaction_count" field.
func (_u *MasteryRecordUpdate) SetInteractionCount(v int) *MasteryRecordUpdate {
	_u.mutation.ResetInteractionCount()
	_u.mutation.SetInteractionCount(v)
	return _u
}

// SetNillableInteractionCount sets the "interaction_count" field if the given value is not nil.
func (_u *MasteryRecordUpdate) SetNillableInteractionCount(v *int) *MasteryRecordUpdate {
	if v != nil {
		_u.SetInteractionCount(*v)
	}
	return _u
}

// AddInteractionCount adds value to the "interaction_count" field.
func (_u *MasteryRecordUpdate) AddInteractionCount(v int) *MasteryRecordUpdate {
	_u.mutation.AddInteractionCount(v)
	return _u
}

// SetLastUpdatedAt sets the "last_updated_at" field.
func (_u *MasteryRecordUpdate) SetLastUpdatedAt(v time.Time) *MasteryRecordUpdate {
	_u.mutation.SetLastUpdatedAt(v)
	return _u
}

// SetNillableLastUpdatedAt sets the "last_updated_at" field if the given value is not nil.
func (_u *MasteryRecordUpdate) SetNillableLastUpdatedAt(v *time.Time) *MasteryRecordUpdate {
	if v != nil {
		_u.SetLastUpdatedAt(*v)
	}
	return _u
}

// Mutation returns the MasteryRecordMutation object of the builder.
func (_u *MasteryRecordUpdate) Mutation() *MasteryRecordMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *MasteryRecordUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MasteryRecordUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *MasteryRecordUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MasteryRecordUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MasteryRecordUpdate) check() error {
	if v, ok := _u.mutation.LearnerID(); ok {
		if err := masteryrecord.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "MasteryRecord.learner_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ConceptID(); ok {
		if err := masteryrecord.ConceptIDValidator(v); err != nil {
			return &ValidationError{Name: "concept_id", err: fmt.Errorf(`ent: validator failed for field "MasteryRecord.concept_id": %w`, err)}
		}
	}
	return nil
}

func (_u *MasteryRecordUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(masteryrecord.Table, masteryrecord.Columns, sqlgraph.NewFieldSpec(masteryrecord.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.LearnerID(); ok {
		_spec.SetField(masteryrecord.FieldLearnerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ConceptID(); ok {
		_spec.SetField(masteryrecord.FieldConceptID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(masteryrecord.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(masteryrecord.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.InteractionCount(); ok {
		_spec.SetField(masteryrecord.FieldInteractionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedInteractionCount(); ok {
		_spec.AddField(masteryrecord.FieldInteractionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastUpdatedAt(); ok {
		_spec.SetField(masteryrecord.FieldLastUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{masteryrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// MasteryRecordUpdateOne is the builder for updating a single MasteryRecord entity.
type MasteryRecordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MasteryRecordMutation
}

// SetLearnerID sets the "learner_id" field.
func (_u *MasteryRecordUpdateOne) SetLearnerID(v string) *MasteryRecordUpdateOne {
	_u.mutation.SetLearnerID(v)
	return _u
}

// SetNillableLearnerID sets the "learner_id" field if the given value is not nil.
func (_u *MasteryRecordUpdateOne) SetNillableLearnerID(v *string) *MasteryRecordUpdateOne {
	if v != nil {
		_u.SetLearnerID(*v)
	}
	return _u
}

// SetConceptID sets the "concept_id" field.
func (_u *MasteryRecordUpdateOne) SetConceptID(v string) *MasteryRecordUpdateOne {
	_u.mutation.SetConceptID(v)
	return _u
}

// SetNillableConceptID sets the "concept_id" field if the given value is not nil.
func (_u *MasteryRecordUpdateOne) SetNillableConceptID(v *string) *MasteryRecordUpdateOne {
	if v != nil {
		_u.SetConceptID(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *MasteryRecordUpdateOne) SetScore(v float64) *MasteryRecordUpdateOne {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *MasteryRecordUpdateOne) SetNillableScore(v *float64) *MasteryRecordUpdateOne {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *MasteryRecordUpdateOne) AddScore(v float64) *MasteryRecordUpdateOne {
	_u.mutation.AddScore(v)
	return _u
}

// SetInteractionCount sets the "interaction_count" field.
func (_u *MasteryRecordUpdateOne) SetInteractionCount(v int) *MasteryRecordUpdateOne {
	_u.mutation.ResetInteractionCount()
	_u.mutation.SetInteractionCount(v)
	return _u
}

// SetNillableInteractionCount sets the "interaction_count" field if the given value is not nil.
func (_u *MasteryRecordUpdateOne) SetNillableInteractionCount(v *int) *MasteryRecordUpdateOne {
	if v != nil {
		_u.SetInteractionCount(*v)
	}
	return _u
}

// AddInteractionCount adds value to the "interaction_count" field.
func (_u *MasteryRecordUpdateOne) AddInteractionCount(v int) *MasteryRecordUpdateOne {
	_u.mutation.AddInteractionCount(v)
	return _u
}

// SetLastUpdatedAt sets the "last_updated_at" field.
func (_u *MasteryRecordUpdateOne) SetLastUpdatedAt(v time.Time) *MasteryRecordUpdateOne {
	_u.mutation.SetLastUpdatedAt(v)
	return _u
}

// SetNillableLastUpdatedAt sets the "last_updated_at" field if the given value is not nil.
func (_u *MasteryRecordUpdateOne) SetNillableLastUpdatedAt(v *time.Time) *MasteryRecordUpdateOne {
	if v != nil {
		_u.SetLastUpdatedAt(*v)
	}
	return _u
}

// Mutation returns the MasteryRecordMutation object of the builder.
func (_u *MasteryRecordUpdateOne) Mutation() *MasteryRecordMutation {
	return _u.mutation
}

// Where appends a list predicates to the MasteryRecordUpdate builder.
func (_u *MasteryRecordUpdateOne) Where(ps ...predicate.MasteryRecord) *MasteryRecordUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *MasteryRecordUpdateOne) Select(field string, fields ...string) *MasteryRecordUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated MasteryRecord entity.
func (_u *MasteryRecordUpdateOne) Save(ctx context.Context) (*MasteryRecord, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MasteryRecordUpdateOne) SaveX(ctx context.Context) *MasteryRecord {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *MasteryRecordUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MasteryRecordUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MasteryRecordUpdateOne) check() error {
	if v, ok := _u.mutation.LearnerID(); ok {
		if err := masteryrecord.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "MasteryRecord.learner_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ConceptID(); ok {
		if err := masteryrecord.ConceptIDValidator(v); err != nil {
			return &ValidationError{Name: "concept_id", err: fmt.Errorf(`ent: validator failed for field "MasteryRecord.concept_id": %w`, err)}
		}
	}
	return nil
}

func (_u *MasteryRecordUpdateOne) sqlSave(ctx context.Context) (_node *MasteryRecord, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(masteryrecord.Table, masteryrecord.Columns, sqlgraph.NewFieldSpec(masteryrecord.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "MasteryRecord.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, masteryrecord.FieldID)
		for _, f := range fields {
			if !masteryrecord.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != masteryrecord.FieldID {
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
		_spec.SetField(masteryrecord.FieldLearnerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ConceptID(); ok {
		_spec.SetField(masteryrecord.FieldConceptID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(masteryrecord.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(masteryrecord.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.InteractionCount(); ok {
		_spec.SetField(masteryrecord.FieldInteractionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedInteractionCount(); ok {
		_spec.AddField(masteryrecord.FieldInteractionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastUpdatedAt(); ok {
		_spec.SetField(masteryrecord.FieldLastUpdatedAt, field.TypeTime, value)
	}
	_node = &MasteryRecord{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{masteryrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
