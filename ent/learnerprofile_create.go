// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/paideia/ent/learnerprofile"
)

// LearnerProfileCreate is the builder for creating a LearnerProfile entity.
type LearnerProfileCreate struct {
	config
	mutation *LearnerProfileMutation
	hooks    []Hook
}

// SetLearnerID sets the "learner_id" field.
func (_c *LearnerProfileCreate) SetLearnerID(v string) *LearnerProfileCreate {
	_c.mutation.SetLearnerID(v)
	return _c
}

// SetRole sets the "role" field.
func (_c *LearnerProfileCreate) SetRole(v string) *LearnerProfileCreate {
	_c.mutation.SetRole(v)
	return _c
}

// SetStyleVisual sets the "style_visual" field.
func (_c *LearnerProfileCreate) SetStyleVisual(v int) *LearnerProfileCreate {
	_c.mutation.SetStyleVisual(v)
	return _c
}

// SetNillableStyleVisual sets the "style_visual" field if the given value is not nil.
func (_c *LearnerProfileCreate) SetNillableStyleVisual(v *int) *LearnerProfileCreate {
	if v != nil {
		_c.SetStyleVisual(*v)
	}
	return _c
}

// SetStyleAuditory sets the "style_auditory" field.
func (_c *LearnerProfileCreate) SetStyleAuditory(v int) *LearnerProfileCreate {
	_c.mutation.SetStyleAuditory(v)
	return _c
}

// SetNillableStyleAuditory sets the "style_auditory" field if the given value is not nil.
func (_c *LearnerProfileCreate) SetNillableStyleAuditory(v *int) *LearnerProfileCreate {
	if v != nil {
		_c.SetStyleAuditory(*v)
	}
	return _c
}

// SetStyleKinesthetic sets the "style_kinesthetic" field.
func (_c *LearnerProfileCreate) SetStyleKinesthetic(v int) *LearnerProfileCreate {
	_c.mutation.SetStyleKinesthetic(v)
	return _c
}

// SetNillableStyleKinesthetic sets the "style_kinesthetic" field if the given value is not nil.
func (_c *LearnerProfileCreate) SetNillableStyleKinesthetic(v *int) *LearnerProfileCreate {
	if v != nil {
		_c.SetStyleKinesthetic(*v)
	}
	return _c
}

// SetStyleReading sets the "style_reading" field.
func (_c *LearnerProfileCreate) SetStyleReading(v int) *LearnerProfileCreate {
	_c.mutation.SetStyleReading(v)
	return _c
}

// SetNillableStyleReading sets the "style_reading" field if the given value is not nil.
func (_c *LearnerProfileCreate) SetNillableStyleReading(v *int) *LearnerProfileCreate {
	if v != nil {
		_c.SetStyleReading(*v)
	}
	return _c
}

// SetInterests sets the "interests" field.
func (_c *LearnerProfileCreate) SetInterests(v []string) *LearnerProfileCreate {
	_c.mutation.SetInterests(v)
	return _c
}

// SetStrengths sets the "strengths" field.
func (_c *LearnerProfileCreate) SetStrengths(v []string) *LearnerProfileCreate {
	_c.mutation.SetStrengths(v)
	return _c
}

// SetWeaknesses sets the "weaknesses" field.
func (_c *LearnerProfileCreate) SetWeaknesses(v []string) *LearnerProfileCreate {
	_c.mutation.SetWeaknesses(v)
	return _c
}

// SetAge sets the "age" field.
func (_c *LearnerProfileCreate) SetAge(v int) *LearnerProfileCreate {
	_c.mutation.SetAge(v)
	return _c
}

// SetNillableAge sets the "age" field if the given value is not nil.
func (_c *LearnerProfileCreate) SetNillableAge(v *int) *LearnerProfileCreate {
	if v != nil {
		_c.SetAge(*v)
	}
	return _c
}

// SetEducationLevel sets the "education_level" field.
func (_c *LearnerProfileCreate) SetEducationLevel(v string) *LearnerProfileCreate {
	_c.mutation.SetEducationLevel(v)
	return _c
}

// SetNillableEducationLevel sets the "education_level" field if the given value is not nil.
func (_c *LearnerProfileCreate) SetNillableEducationLevel(v *string) *LearnerProfileCreate {
	if v != nil {
		_c.SetEducationLevel(*v)
	}
	return _c
}

// SetCulturalContext sets the "cultural_context" field.
func (_c *LearnerProfileCreate) SetCulturalContext(v string) *LearnerProfileCreate {
	_c.mutation.SetCulturalContext(v)
	return _c
}

// SetNillableCulturalContext sets the "cultural_context" field if the given value is not nil.
func (_c *LearnerProfileCreate) SetNillableCulturalContext(v *string) *LearnerProfileCreate {
	if v != nil {
		_c.SetCulturalContext(*v)
	}
	return _c
}

// SetCompleteness sets the "completeness" field.
func (_c *LearnerProfileCreate) SetCompleteness(v float64) *LearnerProfileCreate {
	_c.mutation.SetCompleteness(v)
	return _c
}

// SetNillableCompleteness sets the "completeness" field if the given value is not nil.
func (_c *LearnerProfileCreate) SetNillableCompleteness(v *float64) *LearnerProfileCreate {
	if v != nil {
		_c.SetCompleteness(*v)
	}
	return _c
}

// SetArchived sets the "archived" field.
func (_c *LearnerProfileCreate) SetArchived(v bool) *LearnerProfileCreate {
	_c.mutation.SetArchived(v)
	return _c
}

// SetNillableArchived sets the "archived" field if the given value is not nil.
func (_c *LearnerProfileCreate) SetNillableArchived(v *bool) *LearnerProfileCreate {
	if v != nil {
		_c.SetArchived(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *LearnerProfileCreate) SetCreatedAt(v time.Time) *LearnerProfileCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *LearnerProfileCreate) SetNillableCreatedAt(v *time.Time) *LearnerProfileCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *LearnerProfileCreate) SetUpdatedAt(v time.Time) *LearnerProfileCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *LearnerProfileCreate) SetNillableUpdatedAt(v *time.Time) *LearnerProfileCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// Mutation returns the LearnerProfileMutation object of the builder.
func (_c *LearnerProfileCreate) Mutation() *LearnerProfileMutation {
	return _c.mutation
}

// Save creates the LearnerProfile in the database.
func (_c *LearnerProfileCreate) Save(ctx context.Context) (*LearnerProfile, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *LearnerProfileCreate) SaveX(ctx context.Context) *LearnerProfile {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LearnerProfileCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LearnerProfileCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *LearnerProfileCreate) defaults() {
	if _, ok := _c.mutation.StyleVisual(); !ok {
		v := learnerprofile.DefaultStyleVisual
		_c.mutation.SetStyleVisual(v)
	}
	if _, ok := _c.mutation.StyleAuditory(); !ok {
		v := learnerprofile.DefaultStyleAuditory
		_c.mutation.SetStyleAuditory(v)
	}
	if _, ok := _c.mutation.StyleKinesthetic(); !ok {
		v := learnerprofile.DefaultStyleKinesthetic
		_c.mutation.SetStyleKinesthetic(v)
	}
	if _, ok := _c.mutation.StyleReading(); !ok {
		v := learnerprofile.DefaultStyleReading
		_c.mutation.SetStyleReading(v)
	}
	if _, ok := _c.mutation.Age(); !ok {
		v := learnerprofile.DefaultAge
		_c.mutation.SetAge(v)
	}
	if _, ok := _c.mutation.EducationLevel(); !ok {
		v := learnerprofile.DefaultEducationLevel
		_c.mutation.SetEducationLevel(v)
	}
	if _, ok := _c.mutation.CulturalContext(); !ok {
		v := learnerprofile.DefaultCulturalContext
		_c.mutation.SetCulturalContext(v)
	}
	if _, ok := _c.mutation.Completeness(); !ok {
		v := learnerprofile.DefaultCompleteness
		_c.mutation.SetCompleteness(v)
	}
	if _, ok := _c.mutation.Archived(); !ok {
		v := learnerprofile.DefaultArchived
		_c.mutation.SetArchived(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := learnerprofile.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := learnerprofile.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *LearnerProfileCreate) check() error {
	if _, ok := _c.mutation.LearnerID(); !ok {
		return &ValidationError{Name: "learner_id", err: errors.New(`ent: missing required field "LearnerProfile.learner_id"`)}
	}
	if v, ok := _c.mutation.LearnerID(); ok {
		if err := learnerprofile.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "LearnerProfile.learner_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Role(); !ok {
		return &ValidationError{Name: "role", err: errors.New(`ent: missing required field "LearnerProfile.role"`)}
	}
	if v, ok := _c.mutation.Role(); ok {
		if err := learnerprofile.RoleValidator(v); err != nil {
			return &ValidationError{Name: "role", err: fmt.Errorf(`ent: validator failed for field "LearnerProfile.role": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StyleVisual(); !ok {
		return &ValidationError{Name: "style_visual", err: errors.New(`ent: missing required field "LearnerProfile.style_visual"`)}
	}
	if _, ok := _c.mutation.StyleAuditory(); !ok {
		return &ValidationError{Name: "style_auditory", err: errors.New(`ent: missing required field "LearnerProfile.style_auditory"`)}
	}
	if _, ok := _c.mutation.StyleKinesthetic(); !ok {
		return &ValidationError{Name: "style_kinesthetic", err: errors.New(`ent: missing required field "LearnerProfile.style_kinesthetic"`)}
	}
	if _, ok := _c.mutation.StyleReading(); !ok {
		return &ValidationError{Name: "style_reading", err: errors.New(`ent: missing required field "LearnerProfile.style_reading"`)}
	}
	if _, ok := _c.mutation.Age(); !ok {
		return &ValidationError{Name: "age", err: errors.New(`ent: missing required field "LearnerProfile.age"`)}
	}
	if _, ok := _c.mutation.EducationLevel(); !ok {
		return &ValidationError{Name: "education_level", err: errors.New(`ent: missing required field "LearnerProfile.education_level"`)}
	}
	if _, ok := _c.mutation.CulturalContext(); !ok {
		return &ValidationError{Name: "cultural_context", err: errors.New(`ent: missing required field "LearnerProfile.cultural_context"`)}
	}
	if _, ok := _c.mutation.Completeness(); !ok {
		return &ValidationError{Name: "completeness", err: errors.New(`ent: missing required field "LearnerProfile.completeness"`)}
	}
	if _, ok := _c.mutation.Archived(); !ok {
		return &ValidationError{Name: "archived", err: errors.New(`ent: missing required field "LearnerProfile.archived"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "LearnerProfile.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "LearnerProfile.updated_at"`)}
	}
	return nil
}

func (_c *LearnerProfileCreate) sqlSave(ctx context.Context) (*LearnerProfile, error) {
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

func (_c *LearnerProfileCreate) createSpec() (*LearnerProfile, *sqlgraph.CreateSpec) {
	var (
		_node = &LearnerProfile{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(learnerprofile.Table, sqlgraph.NewFieldSpec(learnerprofile.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.LearnerID(); ok {
		_spec.SetField(learnerprofile.FieldLearnerID, field.TypeString, value)
		_node.LearnerID = value
	}
	if value, ok := _c.mutation.Role(); ok {
		_spec.SetField(learnerprofile.FieldRole, field.TypeString, value)
		_node.Role = value
	}
	if value, ok := _c.mutation.StyleVisual(); ok {
		_spec.SetField(learnerprofile.FieldStyleVisual, field.TypeInt, value)
		_node.StyleVisual = value
	}
	if value, ok := _c.mutation.StyleAuditory(); ok {
		_spec.SetField(learnerprofile.FieldStyleAuditory, field.TypeInt, value)
		_node.StyleAuditory = value
	}
	if value, ok := _c.mutation.StyleKinesthetic(); ok {
		_spec.SetField(learnerprofile.FieldStyleKinesthetic, field.TypeInt, value)
		_node.StyleKinesthetic = value
	}
	if value, ok := _c.mutation.StyleReading(); ok {
		_spec.SetField(learnerprofile.FieldStyleReading, field.TypeInt, value)
		_node.StyleReading = value
	}
	if value, ok := _c.mutation.Interests(); ok {
		_spec.SetField(learnerprofile.FieldInterests, field.TypeJSON, value)
		_node.Interests = value
	}
	if value, ok := _c.mutation.Strengths(); ok {
		_spec.SetField(learnerprofile.FieldStrengths, field.TypeJSON, value)
		_node.Strengths = value
	}
	if value, ok := _c.mutation.Weaknesses(); ok {
		_spec.SetField(learnerprofile.FieldWeaknesses, field.TypeJSON, value)
		_node.Weaknesses = value
	}
	if value, ok := _c.mutation.Age(); ok {
		_spec.SetField(learnerprofile.FieldAge, field.TypeInt, value)
		_node.Age = value
	}
	if value, ok := _c.mutation.EducationLevel(); ok {
		_spec.SetField(learnerprofile.FieldEducationLevel, field.TypeString, value)
		_node.EducationLevel = value
	}
	if value, ok := _c.mutation.CulturalContext(); ok {
		_spec.SetField(learnerprofile.FieldCulturalContext, field.TypeString, value)
		_node.CulturalContext = value
	}
	if value, ok := _c.mutation.Completeness(); ok {
		_spec.SetField(learnerprofile.FieldCompleteness, field.TypeFloat64, value)
		_node.Completeness = value
	}
	if value, ok := _c.mutation.Archived(); ok {
		_spec.SetField(learnerprofile.FieldArchived, field.TypeBool, value)
		_node.Archived = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(learnerprofile.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(learnerprofile.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// LearnerProfileCreateBulk is the builder for creating many LearnerProfile entities in bulk.
type LearnerProfileCreateBulk struct {
	config
	err      error
	builders []*LearnerProfileCreate
}

// Save creates the LearnerProfile entities in the database.
func (_c *LearnerProfileCreateBulk) Save(ctx context.Context) ([]*LearnerProfile, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*LearnerProfile, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*LearnerProfileMutation)
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
func (_c *LearnerProfileCreateBulk) SaveX(ctx context.Context) []*LearnerProfile {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LearnerProfileCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LearnerProfileCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
