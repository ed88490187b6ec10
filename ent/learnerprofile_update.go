// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/paideia/ent/learnerprofile"
	"github.com/abhisek/paideia/ent/predicate"
)

// LearnerProfileUpdate is the builder for updating LearnerProfile entities.
type LearnerProfileUpdate struct {
	config
	hooks    []Hook
	mutation *LearnerProfileMutation
}

// Where appends a list predicates to the LearnerProfileUpdate builder.
func (_u *LearnerProfileUpdate) Where(ps ...predicate.LearnerProfile) *LearnerProfileUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetRole sets the "role" field.
func (_u *LearnerProfileUpdate) SetRole(v string) *LearnerProfileUpdate {
	_u.mutation.SetRole(v)
	return _u
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_u *LearnerProfileUpdate) SetNillableRole(v *string) *LearnerProfileUpdate {
	if v != nil {
		_u.SetRole(*v)
	}
	return _u
}

// SetStyleVisual sets the "style_visual" field.
func (_u *LearnerProfileUpdate) SetStyleVisual(v int) *LearnerProfileUpdate {
	_u.mutation.ResetStyleVisual()
	_u.mutation.SetStyleVisual(v)
	return _u
}

// SetNillableStyleVisual sets the "style_visual" field if the given value is not nil.
func (_u *LearnerProfileUpdate) SetNillableStyleVisual(v *int) *LearnerProfileUpdate {
	if v != nil {
		_u.SetStyleVisual(*v)
	}
	return _u
}

// AddStyleVisual adds value to the "style_visual" field.
func (_u *LearnerProfileUpdate) AddStyleVisual(v int) *LearnerProfileUpdate {
	_u.mutation.AddStyleVisual(v)
	return _u
}

// SetStyleAuditory sets the "style_auditory" field.
func (_u *LearnerProfileUpdate) SetStyleAuditory(v int) *LearnerProfileUpdate {
	_u.mutation.ResetStyleAuditory()
	_u.mutation.SetStyleAuditory(v)
	return _u
}

// SetNillableStyleAuditory sets the "style_auditory" field if the given value is not nil.
func (_u *LearnerProfileUpdate) SetNillableStyleAuditory(v *int) *LearnerProfileUpdate {
	if v != nil {
		_u.SetStyleAuditory(*v)
	}
	return _u
}

// AddStyleAuditory adds value to the "style_auditory" field.
func (_u *LearnerProfileUpdate) AddStyleAuditory(v int) *LearnerProfileUpdate {
	_u.mutation.AddStyleAuditory(v)
	return _u
}

// SetStyleKinesthetic sets the "style_kinesthetic" field.
func (_u *LearnerProfileUpdate) SetStyleKinesthetic(v int) *LearnerProfileUpdate {
	_u.mutation.ResetStyleKinesthetic()
	_u.mutation.SetStyleKinesthetic(v)
	return _u
}

// SetNillableStyleKinesthetic sets the "style_kinesthetic" field if the given value is not nil.
func (_u *LearnerProfileUpdate) SetNillableStyleKinesthetic(v *int) *LearnerProfileUpdate {
	if v != nil {
		_u.SetStyleKinesthetic(*v)
	}
	return _u
}

// AddStyleKinesthetic adds value to the "style_kinesthetic" field.
func (_u *LearnerProfileUpdate) AddStyleKinesthetic(v int) *LearnerProfileUpdate {
	_u.mutation.AddStyleKinesthetic(v)
	return _u
}

// SetStyleReading sets the "style_reading" field.
func (_u *LearnerProfileUpdate) SetStyleReading(v int) *LearnerProfileUpdate {
	_u.mutation.ResetStyleReading()
	_u.mutation.SetStyleReading(v)
	return _u
}

// SetNillableStyleReading sets the "style_reading" field if the given value is not nil.
func (_u *LearnerProfileUpdate) SetNillableStyleReading(v *int) *LearnerProfileUpdate {
	if v != nil {
		_u.SetStyleReading(*v)
	}
	return _u
}

// AddStyleReading adds value to the "style_reading" field.
func (_u *LearnerProfileUpdate) AddStyleReading(v int) *LearnerProfileUpdate {
	_u.mutation.AddStyleReading(v)
	return _u
}

// SetInterests sets the "interests" field.
func (_u *LearnerProfileUpdate) SetInterests(v []string) *LearnerProfileUpdate {
	_u.mutation.SetInterests(v)
	return _u
}

// AppendInterests appends value to the "interests" field.
func (_u *LearnerProfileUpdate) AppendInterests(v []string) *LearnerProfileUpdate {
	_u.mutation.AppendInterests(v)
	return _u
}

// ClearInterests clears the value of the "interests" field.
func (_u *LearnerProfileUpdate) ClearInterests() *LearnerProfileUpdate {
	_u.mutation.ClearInterests()
	return _u
}

// SetStrengths sets the "strengths" field.
func (_u *LearnerProfileUpdate) SetStrengths(v []string) *LearnerProfileUpdate {
	_u.mutation.SetStrengths(v)
	return _u
}

// AppendStrengths appends value to the "strengths" field.
func (_u *LearnerProfileUpdate) AppendStrengths(v []string) *LearnerProfileUpdate {
	_u.mutation.AppendStrengths(v)
	return _u
}

// ClearStrengths clears the value of the "strengths" field.
func (_u *LearnerProfileUpdate) ClearStrengths() *LearnerProfileUpdate {
	_u.mutation.ClearStrengths()
	return _u
}

// SetWeaknesses sets the "weaknesses" field.
func (_u *LearnerProfileUpdate) SetWeaknesses(v []string) *LearnerProfileUpdate {
	_u.mutation.SetWeaknesses(v)
	return _u
}

// AppendWeaknesses appends value to the "weaknesses" field.
func (_u *LearnerProfileUpdate) AppendWeaknesses(v []string) *LearnerProfileUpdate {
	_u.mutation.AppendWeaknesses(v)
	return _u
}

// ClearWeaknesses clears the value of the "weaknesses" field.
func (_u *LearnerProfileUpdate) ClearWeaknesses() *LearnerProfileUpdate {
	_u.mutation.ClearWeaknesses()
	return _u
}

// SetAge sets the "age" field.
func (_u *LearnerProfileUpdate) SetAge(v int) *LearnerProfileUpdate {
	_u.mutation.ResetAge()
	_u.mutation.SetAge(v)
	return _u
}

// SetNillableAge sets the "age" field if the given value is not nil.
func (_u *LearnerProfileUpdate) SetNillableAge(v *int) *LearnerProfileUpdate {
	if v != nil {
		_u.SetAge(*v)
	}
	return _u
}

// AddAge adds value to the "age" field.
func (_u *LearnerProfileUpdate) AddAge(v int) *LearnerProfileUpdate {
	_u.mutation.AddAge(v)
	return _u
}

// SetEducationLevel sets the "education_level" field.
func (_u *LearnerProfileUpdate) SetEducationLevel(v string) *LearnerProfileUpdate {
	_u.mutation.SetEducationLevel(v)
	return _u
}

// SetNillableEducationLevel sets the "education_level" field if the given value is not nil.
func (_u *LearnerProfileUpdate) SetNillableEducationLevel(v *string) *LearnerProfileUpdate {
	if v != nil {
		_u.SetEducationLevel(*v)
	}
	return _u
}

// SetCulturalContext sets the "cultural_context" field.
func (_u *LearnerProfileUpdate) SetCulturalContext(v string) *LearnerProfileUpdate {
	_u.mutation.SetCulturalContext(v)
	return _u
}

// SetNillableCulturalContext sets the "cultural_context" field if the given value is not nil.
func (_u *LearnerProfileUpdate) SetNillableCulturalContext(v *string) *LearnerProfileUpdate {
	if v != nil {
		_u.SetCulturalContext(*v)
	}
	return _u
}

// SetCompleteness sets the "completeness" field.
func (_u *LearnerProfileUpdate) SetCompleteness(v float64) *LearnerProfileUpdate {
	_u.mutation.ResetCompleteness()
	_u.mutation.SetCompleteness(v)
	return _u
}

// SetNillableCompleteness sets the "completeness" field if the given value is not nil.
func (_u *LearnerProfileUpdate) SetNillableCompleteness(v *float64) *LearnerProfileUpdate {
	if v != nil {
		_u.SetCompleteness(*v)
	}
	return _u
}

// AddCompleteness adds value to the "completeness" field.
func (_u *LearnerProfileUpdate) AddCompleteness(v float64) *LearnerProfileUpdate {
	_u.mutation.AddCompleteness(v)
	return _u
}

// SetArchived sets the "archived" field.
func (_u *LearnerProfileUpdate) SetArchived(v bool) *LearnerProfileUpdate {
	_u.mutation.SetArchived(v)
	return _u
}

// SetNillableArchived sets the "archived" field if the given value is not nil.
func (_u *LearnerProfileUpdate) SetNillableArchived(v *bool) *LearnerProfileUpdate {
	if v != nil {
		_u.SetArchived(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *LearnerProfileUpdate) SetUpdatedAt(v time.Time) *LearnerProfileUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the LearnerProfileMutation object of the builder.
func (_u *LearnerProfileUpdate) Mutation() *LearnerProfileMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *LearnerProfileUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LearnerProfileUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *LearnerProfileUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LearnerProfileUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *LearnerProfileUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := learnerprofile.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LearnerProfileUpdate) check() error {
	if v, ok := _u.mutation.Role(); ok {
		if err := learnerprofile.RoleValidator(v); err != nil {
			return &ValidationError{Name: "role", err: fmt.Errorf(`ent: validator failed for field "LearnerProfile.role": %w`, err)}
		}
	}
	return nil
}

func (_u *LearnerProfileUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(learnerprofile.Table, learnerprofile.Columns, sqlgraph.NewFieldSpec(learnerprofile.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Role(); ok {
		_spec.SetField(learnerprofile.FieldRole, field.TypeString, value)
	}
	if value, ok := _u.mutation.StyleVisual(); ok {
		_spec.SetField(learnerprofile.FieldStyleVisual, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStyleVisual(); ok {
		_spec.AddField(learnerprofile.FieldStyleVisual, field.TypeInt, value)
	}
	if value, ok := _u.mutation.StyleAuditory(); ok {
		_spec.SetField(learnerprofile.FieldStyleAuditory, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStyleAuditory(); ok {
		_spec.AddField(learnerprofile.FieldStyleAuditory, field.TypeInt, value)
	}
	if value, ok := _u.mutation.StyleKinesthetic(); ok {
		_spec.SetField(learnerprofile.FieldStyleKinesthetic, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStyleKinesthetic(); ok {
		_spec.AddField(learnerprofile.FieldStyleKinesthetic, field.TypeInt, value)
	}
	if value, ok := _u.mutation.StyleReading(); ok {
		_spec.SetField(learnerprofile.FieldStyleReading, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStyleReading(); ok {
		_spec.AddField(learnerprofile.FieldStyleReading, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Interests(); ok {
		_spec.SetField(learnerprofile.FieldInterests, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedInterests(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, learnerprofile.FieldInterests, value)
		})
	}
	if _u.mutation.InterestsCleared() {
		_spec.ClearField(learnerprofile.FieldInterests, field.TypeJSON)
	}
	if value, ok := _u.mutation.Strengths(); ok {
		_spec.SetField(learnerprofile.FieldStrengths, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedStrengths(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, learnerprofile.FieldStrengths, value)
		})
	}
	if _u.mutation.StrengthsCleared() {
		_spec.ClearField(learnerprofile.FieldStrengths, field.TypeJSON)
	}
	if value, ok := _u.mutation.Weaknesses(); ok {
		_spec.SetField(learnerprofile.FieldWeaknesses, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedWeaknesses(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, learnerprofile.FieldWeaknesses, value)
		})
	}
	if _u.mutation.WeaknessesCleared() {
		_spec.ClearField(learnerprofile.FieldWeaknesses, field.TypeJSON)
	}
	if value, ok := _u.mutation.Age(); ok {
		_spec.SetField(learnerprofile.FieldAge, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAge(); ok {
		_spec.AddField(learnerprofile.FieldAge, field.TypeInt, value)
	}
	if value, ok := _u.mutation.EducationLevel(); ok {
		_spec.SetField(learnerprofile.FieldEducationLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.CulturalContext(); ok {
		_spec.SetField(learnerprofile.FieldCulturalContext, field.TypeString, value)
	}
	if value, ok := _u.mutation.Completeness(); ok {
		_spec.SetField(learnerprofile.FieldCompleteness, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCompleteness(); ok {
		_spec.AddField(learnerprofile.FieldCompleteness, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Archived(); ok {
		_spec.SetField(learnerprofile.FieldArchived, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(learnerprofile.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{learnerprofile.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// LearnerProfileUpdateOne is the builder for updating a single LearnerProfile entity.
type LearnerProfileUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *LearnerProfileMutation
}

// SetRole sets the "role" field.
func (_u *LearnerProfileUpdateOne) SetRole(v string) *LearnerProfileUpdateOne {
	_u.mutation.SetRole(v)
	return _u
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_u *LearnerProfileUpdateOne) SetNillableRole(v *string) *LearnerProfileUpdateOne {
	if v != nil {
		_u.SetRole(*v)
	}
	return _u
}

// SetStyleVisual sets the "style_visual" field.
func (_u *LearnerProfileUpdateOne) SetStyleVisual(v int) *LearnerProfileUpdateOne {
	_u.mutation.ResetStyleVisual()
	_u.mutation.SetStyleVisual(v)
	return _u
}

// SetNillableStyleVisual sets the "style_visual" field if the given value is not nil.
func (_u *LearnerProfileUpdateOne) SetNillableStyleVisual(v *int) *LearnerProfileUpdateOne {
	if v != nil {
		_u.SetStyleVisual(*v)
	}
	return _u
}

// AddStyleVisual adds value to the "style_visual" field.
func (_u *LearnerProfileUpdateOne) AddStyleVisual(v int) *LearnerProfileUpdateOne {
	_u.mutation.AddStyleVisual(v)
	return _u
}

// SetStyleAuditory sets the "style_auditory" field.
func (_u *LearnerProfileUpdateOne) SetStyleAuditory(v int) *LearnerProfileUpdateOne {
	_u.mutation.ResetStyleAuditory()
	_u.mutation.SetStyleAuditory(v)
	return _u
}

// SetNillableStyleAuditory sets the "style_auditory" field if the given value is not nil.
func (_u *LearnerProfileUpdateOne) SetNillableStyleAuditory(v *int) *LearnerProfileUpdateOne {
	if v != nil {
		_u.SetStyleAuditory(*v)
	}
	return _u
}

// AddStyleAuditory adds value to the "style_auditory" field.
func (_u *LearnerProfileUpdateOne) AddStyleAuditory(v int) *LearnerProfileUpdateOne {
	_u.mutation.AddStyleAuditory(v)
	return _u
}

// SetStyleKinesthetic sets the "style_kinesthetic" field.
func (_u *LearnerProfileUpdateOne) SetStyleKinesthetic(v int) *LearnerProfileUpdateOne {
	_u.mutation.ResetStyleKinesthetic()
	_u.mutation.SetStyleKinesthetic(v)
	return _u
}

// SetNillableStyleKinesthetic sets the "style_kinesthetic" field if the given value is not nil.
func (_u *LearnerProfileUpdateOne) SetNillableStyleKinesthetic(v *int) *LearnerProfileUpdateOne {
	if v != nil {
		_u.SetStyleKinesthetic(*v)
	}
	return _u
}

// AddStyleKinesthetic adds value to the "style_kinesthetic" field.
func (_u *LearnerProfileUpdateOne) AddStyleKinesthetic(v int) *LearnerProfileUpdateOne {
	_u.mutation.AddStyleKinesthetic(v)
	return _u
}

// SetStyleReading sets the "style_reading" field.
func (_u *LearnerProfileUpdateOne) SetStyleReading(v int) *LearnerProfileUpdateOne {
	_u.mutation.ResetStyleReading()
	_u.mutation.SetStyleReading(v)
	return _u
}

// SetNillableStyleReading sets the "style_reading" field if the given value is not nil.
func (_u *LearnerProfileUpdateOne) SetNillableStyleReading(v *int) *LearnerProfileUpdateOne {
	if v != nil {
		_u.SetStyleReading(*v)
	}
	return _u
}

// AddStyleReading adds value to the "style_reading" field.
func (_u *LearnerProfileUpdateOne) AddStyleReading(v int) *LearnerProfileUpdateOne {
	_u.mutation.AddStyleReading(v)
	return _u
}

// SetInterests sets the "interests" field.
func (_u *LearnerProfileUpdateOne) SetInterests(v []string) *LearnerProfileUpdateOne {
	_u.mutation.SetInterests(v)
	return _u
}

// AppendInterests appends value to the "interests" field.
func (_u *LearnerProfileUpdateOne) AppendInterests(v []string) *LearnerProfileUpdateOne {
	_u.mutation.AppendInterests(v)
	return _u
}

// ClearInterests clears the value of the "interests" field.
func (_u *LearnerProfileUpdateOne) ClearInterests() *LearnerProfileUpdateOne {
	_u.mutation.ClearInterests()
	return _u
}

// SetStrengths sets the "strengths" field.
func (_u *LearnerProfileUpdateOne) SetStrengths(v []string) *LearnerProfileUpdateOne {
	_u.mutation.SetStrengths(v)
	return _u
}

// AppendStrengths appends value to the "strengths" field.
func (_u *LearnerProfileUpdateOne) AppendStrengths(v []string) *LearnerProfileUpdateOne {
	_u.mutation.AppendStrengths(v)
	return _u
}

// ClearStrengths clears the value of the "strengths" field.
func (_u *LearnerProfileUpdateOne) ClearStrengths() *LearnerProfileUpdateOne {
	_u.mutation.ClearStrengths()
	return _u
}

// SetWeaknesses sets the "weaknesses" field.
func (_u *LearnerProfileUpdateOne) SetWeaknesses(v []string) *LearnerProfileUpdateOne {
	_u.mutation.SetWeaknesses(v)
	return _u
}

// AppendWeaknesses appends value to the "weaknesses" field.
func (_u *LearnerProfileUpdateOne) AppendWeaknesses(v []string) *LearnerProfileUpdateOne {
	_u.mutation.AppendWeaknesses(v)
	return _u
}

// ClearWeaknesses clears the value of the "weaknesses" field.
func (_u *LearnerProfileUpdateOne) ClearWeaknesses() *LearnerProfileUpdateOne {
	_u.mutation.ClearWeaknesses()
	return _u
}

// SetAge sets the "age" field.
func (_u *LearnerProfileUpdateOne) SetAge(v int) *LearnerProfileUpdateOne {
	_u.mutation.ResetAge()
	_u.mutation.SetAge(v)
	return _u
}

// SetNillableAge sets the "age" field if the given value is not nil.
func (_u *LearnerProfileUpdateOne) SetNillableAge(v *int) *LearnerProfileUpdateOne {
	if v != nil {
		_u.SetAge(*v)
	}
	return _u
}

// AddAge adds value to the "age" field.
func (_u *LearnerProfileUpdateOne) AddAge(v int) *LearnerProfileUpdateOne {
	_u.mutation.AddAge(v)
	return _u
}

// SetEducationLevel sets the "education_level" field.
func (_u *LearnerProfileUpdateOne) SetEducationLevel(v string) *LearnerProfileUpdateOne {
	_u.mutation.SetEducationLevel(v)
	return _u
}

// SetNillableEducationLevel sets the "education_level" field if the given value is not nil.
func (_u *LearnerProfileUpdateOne) SetNillableEducationLevel(v *string) *LearnerProfileUpdateOne {
	if v != nil {
		_u.SetEducationLevel(*v)
	}
	return _u
}

// SetCulturalContext sets the "cultural_context" field.
func (_u *LearnerProfileUpdateOne) SetCulturalContext(v string) *LearnerProfileUpdateOne {
	_u.mutation.SetCulturalContext(v)
	return _u
}

// SetNillableCulturalContext sets the "cultural_context" field if the given value is not nil.
func (_u *LearnerProfileUpdateOne) SetNillableCulturalContext(v *string) *LearnerProfileUpdateOne {
	if v != nil {
		_u.SetCulturalContext(*v)
	}
	return _u
}

// SetCompleteness sets the "completeness" field.
func (_u *LearnerProfileUpdateOne) SetCompleteness(v float64) *LearnerProfileUpdateOne {
	_u.mutation.ResetCompleteness()
	_u.mutation.SetCompleteness(v)
	return _u
}

// SetNillableCompleteness sets the "completeness" field if the given value is not nil.
func (_u *LearnerProfileUpdateOne) SetNillableCompleteness(v *float64) *LearnerProfileUpdateOne {
	if v != nil {
		_u.SetCompleteness(*v)
	}
	return _u
}

// AddCompleteness adds value to the "completeness" field.
func (_u *LearnerProfileUpdateOne) AddCompleteness(v float64) *LearnerProfileUpdateOne {
	_u.mutation.AddCompleteness(v)
	return _u
}

// SetArchived sets the "archived" field.
func (_u *LearnerProfileUpdateOne) SetArchived(v bool) *LearnerProfileUpdateOne {
	_u.mutation.SetArchived(v)
	return _u
}

// SetNillableArchived sets the "archived" field if the given value is not nil.
func (_u *LearnerProfileUpdateOne) SetNillableArchived(v *bool) *LearnerProfileUpdateOne {
	if v != nil {
		_u.SetArchived(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *LearnerProfileUpdateOne) SetUpdatedAt(v time.Time) *LearnerProfileUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the LearnerProfileMutation object of the builder.
func (_u *LearnerProfileUpdateOne) Mutation() *LearnerProfileMutation {
	return _u.mutation
}

// Where appends a list predicates to the LearnerProfileUpdate builder.
func (_u *LearnerProfileUpdateOne) Where(ps ...predicate.LearnerProfile) *LearnerProfileUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *LearnerProfileUpdateOne) Select(field string, fields ...string) *LearnerProfileUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated LearnerProfile entity.
func (_u *LearnerProfileUpdateOne) Save(ctx context.Context) (*LearnerProfile, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LearnerProfileUpdateOne) SaveX(ctx context.Context) *LearnerProfile {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *LearnerProfileUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LearnerProfileUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *LearnerProfileUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := learnerprofile.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LearnerProfileUpdateOne) check() error {
	if v, ok := _u.mutation.Role(); ok {
		if err := learnerprofile.RoleValidator(v); err != nil {
			return &ValidationError{Name: "role", err: fmt.Errorf(`ent: validator failed for field "LearnerProfile.role": %w`, err)}
		}
	}
	return nil
}

func (_u *LearnerProfileUpdateOne) sqlSave(ctx context.Context) (_node *LearnerProfile, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(learnerprofile.Table, learnerprofile.Columns, sqlgraph.NewFieldSpec(learnerprofile.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "LearnerProfile.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, learnerprofile.FieldID)
		for _, f := range fields {
			if !learnerprofile.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != learnerprofile.FieldID {
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
	if value, ok := _u.mutation.Role(); ok {
		_spec.SetField(learnerprofile.FieldRole, field.TypeString, value)
	}
	if value, ok := _u.mutation.StyleVisual(); ok {
		_spec.SetField(learnerprofile.FieldStyleVisual, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStyleVisual(); ok {
		_spec.AddField(learnerprofile.FieldStyleVisual, field.TypeInt, value)
	}
	if value, ok := _u.mutation.StyleAuditory(); ok {
		_spec.SetField(learnerprofile.FieldStyleAuditory, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStyleAuditory(); ok {
		_spec.AddField(learnerprofile.FieldStyleAuditory, field.TypeInt, value)
	}
	if value, ok := _u.mutation.StyleKinesthetic(); ok {
		_spec.SetField(learnerprofile.FieldStyleKinesthetic, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStyleKinesthetic(); ok {
		_spec.AddField(learnerprofile.FieldStyleKinesthetic, field.TypeInt, value)
	}
	if value, ok := _u.mutation.StyleReading(); ok {
		_spec.SetField(learnerprofile.FieldStyleReading, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStyleReading(); ok {
		_spec.AddField(learnerprofile.FieldStyleReading, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Interests(); ok {
		_spec.SetField(learnerprofile.FieldInterests, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedInterests(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, learnerprofile.FieldInterests, value)
		})
	}
	if _u.mutation.InterestsCleared() {
		_spec.ClearField(learnerprofile.FieldInterests, field.TypeJSON)
	}
	if value, ok := _u.mutation.Strengths(); ok {
		_spec.SetField(learnerprofile.FieldStrengths, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedStrengths(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, learnerprofile.FieldStrengths, value)
		})
	}
	if _u.mutation.StrengthsCleared() {
		_spec.ClearField(learnerprofile.FieldStrengths, field.TypeJSON)
	}
	if value, ok := _u.mutation.Weaknesses(); ok {
		_spec.SetField(learnerprofile.FieldWeaknesses, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedWeaknesses(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, learnerprofile.FieldWeaknesses, value)
		})
	}
	if _u.mutation.WeaknessesCleared() {
		_spec.ClearField(learnerprofile.FieldWeaknesses, field.TypeJSON)
	}
	if value, ok := _u.mutation.Age(); ok {
		_spec.SetField(learnerprofile.FieldAge, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAge(); ok {
		_spec.AddField(learnerprofile.FieldAge, field.TypeInt, value)
	}
	if value, ok := _u.mutation.EducationLevel(); ok {
		_spec.SetField(learnerprofile.FieldEducationLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.CulturalContext(); ok {
		_spec.SetField(learnerprofile.FieldCulturalContext, field.TypeString, value)
	}
	if value, ok := _u.mutation.Completeness(); ok {
		_spec.SetField(learnerprofile.FieldCompleteness, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCompleteness(); ok {
		_spec.AddField(learnerprofile.FieldCompleteness, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Archived(); ok {
		_spec.SetField(learnerprofile.FieldArchived, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(learnerprofile.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &LearnerProfile{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{learnerprofile.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
