// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/paideia/ent/predicate"
	"github.com/abhisek/paideia/ent/scorerevent"
)

// ScorerEventUpdate is the builder for updating ScorerEvent entities.
type ScorerEventUpdate struct {
	config
	hooks    []Hook
	mutation *ScorerEventMutation
}

// Where appends a list predicates to the ScorerEventUpdate builder.
func (_u *ScorerEventUpdate) Where(ps ...predicate.ScorerEvent) *ScorerEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetProvider sets the "provider" field.
func (_u *ScorerEventUpdate) SetProvider(v string) *ScorerEventUpdate {
	_u.mutation.SetProvider(v)
	return _u
}

// SetNillableProvider sets the "provider" field if the given value is not nil.
func (_u *ScorerEventUpdate) SetNillableProvider(v *string) *ScorerEventUpdate {
	if v != nil {
		_u.SetProvider(*v)
	}
	return _u
}

// SetModel sets the "model" field.
func (_u *ScorerEventUpdate) SetModel(v string) *ScorerEventUpdate {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *ScorerEventUpdate) SetNillableModel(v *string) *ScorerEventUpdate {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// SetInteractionID sets the "interaction_id" field.
func (_u *ScorerEventUpdate) SetInteractionID(v string) *ScorerEventUpdate {
	_u.mutation.SetInteractionID(v)
	return _u
}

// SetNillableInteractionID sets the "interaction_id" field if the given value is not nil.
func (_u *ScorerEventUpdate) SetNillableInteractionID(v *string) *ScorerEventUpdate {
	if v != nil {
		_u.SetInteractionID(*v)
	}
	return _u
}

// SetInputTokens sets the "input_tokens" field.
func (_u *ScorerEventUpdate) SetInputTokens(v int) *ScorerEventUpdate {
	_u.mutation.ResetInputTokens()
	_u.mutation.SetInputTokens(v)
	return _u
}

// SetNillableInputTokens sets the "input_tokens" field if the given value is not nil.
func (_u *ScorerEventUpdate) SetNillableInputTokens(v *int) *ScorerEventUpdate {
	if v != nil {
		_u.SetInputTokens(*v)
	}
	return _u
}

// AddInputTokens adds value to the "input_tokens" field.
func (_u *ScorerEventUpdate) AddInputTokens(v int) *ScorerEventUpdate {
	_u.mutation.AddInputTokens(v)
	return _u
}

// SetOutputTokens sets the "output_tokens" field.
func (_u *ScorerEventUpdate) SetOutputTokens(v int) *ScorerEventUpdate {
	_u.mutation.ResetOutputTokens()
	_u.mutation.SetOutputTokens(v)
	return _u
}

// SetNillableOutputTokens sets the "output_tokens" field if the given value is not nil.
func (_u *ScorerEventUpdate) SetNillableOutputTokens(v *int) *ScorerEventUpdate {
	if v != nil {
		_u.SetOutputTokens(*v)
	}
	return _u
}

// AddOutputTokens adds value to the "output_tokens" field.
func (_u *ScorerEventUpdate) AddOutputTokens(v int) *ScorerEventUpdate {
	_u.mutation.AddOutputTokens(v)
	return _u
}

// SetLatencyMs sets the "latency_ms" field.
func (_u *ScorerEventUpdate) SetLatencyMs(v int64) *ScorerEventUpdate {
	_u.mutation.ResetLatencyMs()
	_u.mutation.SetLatencyMs(v)
	return _u
}

// SetNillableLatencyMs sets the "latency_ms" field if the given value is not nil.
func (_u *ScorerEventUpdate) SetNillableLatencyMs(v *int64) *ScorerEventUpdate {
	if v != nil {
		_u.SetLatencyMs(*v)
	}
	return _u
}

// AddLatencyMs adds value to the "latency_ms" field.
func (_u *ScorerEventUpdate) AddLatencyMs(v int64) *ScorerEventUpdate {
	_u.mutation.AddLatencyMs(v)
	return _u
}

// SetSuccess sets the "success" field.
func (_u *ScorerEventUpdate) SetSuccess(v bool) *ScorerEventUpdate {
	_u.mutation.SetSuccess(v)
	return _u
}

// SetNillableSuccess sets the "success" field if the given value is not nil.
func (_u *ScorerEventUpdate) SetNillableSuccess(v *bool) *ScorerEventUpdate {
	if v != nil {
		_u.SetSuccess(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *ScorerEventUpdate) SetErrorMessage(v string) *ScorerEventUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *ScorerEventUpdate) SetNillableErrorMessage(v *string) *ScorerEventUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// Mutation returns the ScorerEventMutation object of the builder.
func (_u *ScorerEventUpdate) Mutation() *ScorerEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ScorerEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ScorerEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ScorerEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ScorerEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ScorerEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(scorerevent.Table, scorerevent.Columns, sqlgraph.NewFieldSpec(scorerevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Provider(); ok {
		_spec.SetField(scorerevent.FieldProvider, field.TypeString, value)
	}
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(scorerevent.FieldModel, field.TypeString, value)
	}
	if value, ok := _u.mutation.InteractionID(); ok {
		_spec.SetField(scorerevent.FieldInteractionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.InputTokens(); ok {
		_spec.SetField(scorerevent.FieldInputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedInputTokens(); ok {
		_spec.AddField(scorerevent.FieldInputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.OutputTokens(); ok {
		_spec.SetField(scorerevent.FieldOutputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOutputTokens(); ok {
		_spec.AddField(scorerevent.FieldOutputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LatencyMs(); ok {
		_spec.SetField(scorerevent.FieldLatencyMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedLatencyMs(); ok {
		_spec.AddField(scorerevent.FieldLatencyMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Success(); ok {
		_spec.SetField(scorerevent.FieldSuccess, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(scorerevent.FieldErrorMessage, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{scorerevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ScorerEventUpdateOne is the builder for updating a single ScorerEvent entity.
type ScorerEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ScorerEventMutation
}

// SetProvider sets the "provider" field.
func (_u *ScorerEventUpdateOne) SetProvider(v string) *ScorerEventUpdateOne {
	_u.mutation.SetProvider(v)
	return _u
}

// SetNillableProvider sets the "provider" field if the given value is not nil.
func (_u *ScorerEventUpdateOne) SetNillableProvider(v *string) *ScorerEventUpdateOne {
	if v != nil {
		_u.SetProvider(*v)
	}
	return _u
}

// SetModel sets the "model" field.
func (_u *ScorerEventUpdateOne) SetModel(v string) *ScorerEventUpdateOne {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *ScorerEventUpdateOne) SetNillableModel(v *string) *ScorerEventUpdateOne {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// SetInteractionID sets the "interaction_id" field.
func (_u *ScorerEventUpdateOne) SetInteractionID(v string) *ScorerEventUpdateOne {
	_u.mutation.SetInteractionID(v)
	return _u
}

// SetNillableInteractionID sets the "interaction_id" field if the given value is not nil.
func (_u *ScorerEventUpdateOne) SetNillableInteractionID(v *string) *ScorerEventUpdateOne {
	if v != nil {
		_u.SetInteractionID(*v)
	}
	return _u
}

// SetInputTokens sets the "input_tokens" field.
func (_u *ScorerEventUpdateOne) SetInputTokens(v int) *ScorerEventUpdateOne {
	_u.mutation.ResetInputTokens()
	_u.mutation.SetInputTokens(v)
	return _u
}

// SetNillableInputTokens sets the "input_tokens" field if the given value is not nil.
func (_u *ScorerEventUpdateOne) SetNillableInputTokens(v *int) *ScorerEventUpdateOne {
	if v != nil {
		_u.SetInputTokens(*v)
	}
	return _u
}

// AddInputTokens adds value to the "input_tokens" field.
func (_u *ScorerEventUpdateOne) AddInputTokens(v int) *ScorerEventUpdateOne {
	_u.mutation.AddInputTokens(v)
	return _u
}

// SetOutputTokens sets the "output_tokens" field.
func (_u *ScorerEventUpdateOne) SetOutputTokens(v int) *ScorerEventUpdateOne {
	_u.mutation.ResetOutputTokens()
	_u.mutation.SetOutputTokens(v)
	return _u
}

// SetNillableOutputTokens sets the "output_tokens" field if the given value is not nil.
func (_u *ScorerEventUpdateOne) SetNillableOutputTokens(v *int) *ScorerEventUpdateOne {
	if v != nil {
		_u.SetOutputTokens(*v)
	}
	return _u
}

// AddOutputTokens adds value to the "output_tokens" field.
func (_u *ScorerEventUpdateOne) AddOutputTokens(v int) *ScorerEventUpdateOne {
	_u.mutation.AddOutputTokens(v)
	return _u
}

// SetLatencyMs sets the "latency_ms" field.
func (_u *ScorerEventUpdateOne) SetLatencyMs(v int64) *ScorerEventUpdateOne {
	_u.mutation.ResetLatencyMs()
	_u.mutation.SetLatencyMs(v)
	return _u
}

// SetNillableLatencyMs sets the "latency_ms" field if the given value is not nil.
func (_u *ScorerEventUpdateOne) SetNillableLatencyMs(v *int64) *ScorerEventUpdateOne {
	if v != nil {
		_u.SetLatencyMs(*v)
	}
	return _u
}

// AddLatencyMs adds value to the "latency_ms" field.
func (_u *ScorerEventUpdateOne) AddLatencyMs(v int64) *ScorerEventUpdateOne {
	_u.mutation.AddLatencyMs(v)
	return _u
}

// SetSuccess sets the "success" field.
func (_u *ScorerEventUpdateOne) SetSuccess(v bool) *ScorerEventUpdateOne {
	_u.mutation.SetSuccess(v)
	return _u
}

// SetNillableSuccess sets the "success" field if the given value is not nil.
func (_u *ScorerEventUpdateOne) SetNillableSuccess(v *bool) *ScorerEventUpdateOne {
	if v != nil {
		_u.SetSuccess(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *ScorerEventUpdateOne) SetErrorMessage(v string) *ScorerEventUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *ScorerEventUpdateOne) SetNillableErrorMessage(v *string) *ScorerEventUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// Mutation returns the ScorerEventMutation object of the builder.
func (_u *ScorerEventUpdateOne) Mutation() *ScorerEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the ScorerEventUpdate builder.
func (_u *ScorerEventUpdateOne) Where(ps ...predicate.ScorerEvent) *ScorerEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ScorerEventUpdateOne) Select(field string, fields ...string) *ScorerEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ScorerEvent entity.
func (_u *ScorerEventUpdateOne) Save(ctx context.Context) (*ScorerEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ScorerEventUpdateOne) SaveX(ctx context.Context) *ScorerEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ScorerEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ScorerEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ScorerEventUpdateOne) sqlSave(ctx context.Context) (_node *ScorerEvent, err error) {
	_spec := sqlgraph.NewUpdateSpec(scorerevent.Table, scorerevent.Columns, sqlgraph.NewFieldSpec(scorerevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ScorerEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, scorerevent.FieldID)
		for _, f := range fields {
			if !scorerevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != scorerevent.FieldID {
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
	if value, ok := _u.mutation.Provider(); ok {
		_spec.SetField(scorerevent.FieldProvider, field.TypeString, value)
	}
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(scorerevent.FieldModel, field.TypeString, value)
	}
	if value, ok := _u.mutation.InteractionID(); ok {
		_spec.SetField(scorerevent.FieldInteractionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.InputTokens(); ok {
		_spec.SetField(scorerevent.FieldInputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedInputTokens(); ok {
		_spec.AddField(scorerevent.FieldInputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.OutputTokens(); ok {
		_spec.SetField(scorerevent.FieldOutputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOutputTokens(); ok {
		_spec.AddField(scorerevent.FieldOutputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LatencyMs(); ok {
		_spec.SetField(scorerevent.FieldLatencyMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedLatencyMs(); ok {
		_spec.AddField(scorerevent.FieldLatencyMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Success(); ok {
		_spec.SetField(scorerevent.FieldSuccess, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(scorerevent.FieldErrorMessage, field.TypeString, value)
	}
	_node = &ScorerEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{scorerevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
