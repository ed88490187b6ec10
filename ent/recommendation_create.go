// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/paideia/ent/recommendation"
)

// RecommendationCreate is the builder for creating a Recommendation entity.
type RecommendationCreate struct {
	config
	mutation *RecommendationMutation
	hooks    []Hook
}

// SetRecommendationID sets the "recommendation_id" field.
func (_c *RecommendationCreate) SetRecommendationID(v string) *RecommendationCreate {
	_c.mutation.SetRecommendationID(v)
	return _c
}

// SetLearnerID sets the "learner_id" field.
func (_c *RecommendationCreate) SetLearnerID(v string) *RecommendationCreate {
	_c.mutation.SetLearnerID(v)
	return _c
}

// SetRecType sets the "rec_type" field.
func (_c *RecommendationCreate) SetRecType(v string) *RecommendationCreate {
	_c.mutation.SetRecType(v)
	return _c
}

// SetConceptID sets the "concept_id" field.
func (_c *RecommendationCreate) SetConceptID(v string) *RecommendationCreate {
	_c.mutation.SetConceptID(v)
	return _c
}

// SetNillableConceptID sets the "concept_id" field if the given value is not nil.
func (_c *RecommendationCreate) SetNillableConceptID(v *string) *RecommendationCreate {
	if v != nil {
		_c.SetConceptID(*v)
	}
	return _c
}

// SetTitle sets the "title" field.
func (_c *RecommendationCreate) SetTitle(v string) *RecommendationCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *RecommendationCreate) SetDescription(v string) *RecommendationCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetReasoning sets the "reasoning" field.
func (_c *RecommendationCreate) SetReasoning(v string) *RecommendationCreate {
	_c.mutation.SetReasoning(v)
	return _c
}

// SetDifficultyLevel sets the "difficulty_level" field.
func (_c *RecommendationCreate) SetDifficultyLevel(v int) *RecommendationCreate {
	_c.mutation.SetDifficultyLevel(v)
	return _c
}

// SetNillableDifficultyLevel sets the "difficulty_level" field if the given value is not nil.
func (_c *RecommendationCreate) SetNillableDifficultyLevel(v *int) *RecommendationCreate {
	if v != nil {
		_c.SetDifficultyLevel(*v)
	}
	return _c
}

// SetEstimatedMinutes sets the "estimated_minutes" field.
func (_c *RecommendationCreate) SetEstimatedMinutes(v int) *RecommendationCreate {
	_c.mutation.SetEstimatedMinutes(v)
	return _c
}

// SetNillableEstimatedMinutes sets the "estimated_minutes" field if the given value is not nil.
func (_c *RecommendationCreate) SetNillableEstimatedMinutes(v *int) *RecommendationCreate {
	if v != nil {
		_c.SetEstimatedMinutes(*v)
	}
	return _c
}

// SetPriority sets the "priority" field.
func (_c *RecommendationCreate) SetPriority(v int) *RecommendationCreate {
	_c.mutation.SetPriority(v)
	return _c
}

// SetUrgency sets the "urgency" field.
func (_c *RecommendationCreate) SetUrgency(v string) *RecommendationCreate {
	_c.mutation.SetUrgency(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *RecommendationCreate) SetStatus(v string) *RecommendationCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *RecommendationCreate) SetNillableStatus(v *string) *RecommendationCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *RecommendationCreate) SetCreatedAt(v time.Time) *RecommendationCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *RecommendationCreate) SetNillableCreatedAt(v *time.Time) *RecommendationCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetExpiresAt sets the "expires_at" field.
func (_c *RecommendationCreate) SetExpiresAt(v time.Time) *RecommendationCreate {
	_c.mutation.SetExpiresAt(v)
	return _c
}

// Mutation returns the RecommendationMutation object of the builder.
func (_c *RecommendationCreate) Mutation() *RecommendationMutation {
	return _c.mutation
}

// Save creates the Recommendation in the database.
func (_c *RecommendationCreate) Save(ctx context.Context) (*Recommendation, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *RecommendationCreate) SaveX(ctx context.Context) *Recommendation {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RecommendationCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RecommendationCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *RecommendationCreate) defaults() {
	if _, ok := _c.mutation.ConceptID(); !ok {
		v := recommendation.DefaultConceptID
		_c.mutation.SetConceptID(v)
	}
	if _, ok := _c.mutation.DifficultyLevel(); !ok {
		v := recommendation.DefaultDifficultyLevel
		_c.mutation.SetDifficultyLevel(v)
	}
	if _, ok := _c.mutation.EstimatedMinutes(); !ok {
		v := recommendation.DefaultEstimatedMinutes
		_c.mutation.SetEstimatedMinutes(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := recommendation.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := recommendation.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *RecommendationCreate) check() error {
	if _, ok := _c.mutation.RecommendationID(); !ok {
		return &ValidationError{Name: "recommendation_id", err: errors.New(`ent: missing required field "Recommendation.recommendation_id"`)}
	}
	if v, ok := _c.mutation.RecommendationID(); ok {
		if err := recommendation.RecommendationIDValidator(v); err != nil {
			return &ValidationError{Name: "recommendation_id", err: fmt.Errorf(`ent: validator failed for field "Recommendation.recommendation_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.LearnerID(); !ok {
		return &ValidationError{Name: "learner_id", err: errors.New(`ent: missing required field "Recommendation.learner_id"`)}
	}
	if v, ok := _c.mutation.LearnerID(); ok {
		if err := recommendation.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "Recommendation.learner_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RecType(); !ok {
		return &ValidationError{Name: "rec_type", err: errors.New(`ent: missing required field "Recommendation.rec_type"`)}
	}
	if v, ok := _c.mutation.RecType(); ok {
		if err := recommendation.RecTypeValidator(v); err != nil {
			return &ValidationError{Name: "rec_type", err: fmt.Errorf(`ent: validator failed for field "Recommendation.rec_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ConceptID(); !ok {
		return &ValidationError{Name: "concept_id", err: errors.New(`ent: missing required field "Recommendation.concept_id"`)}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "Recommendation.title"`)}
	}
	if v, ok := _c.mutation.Title(); ok {
		if err := recommendation.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Recommendation.title": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Description(); !ok {
		return &ValidationError{Name: "description", err: errors.New(`ent: missing required field "Recommendation.description"`)}
	}
	if v, ok := _c.mutation.Description(); ok {
		if err := recommendation.DescriptionValidator(v); err != nil {
			return &ValidationError{Name: "description", err: fmt.Errorf(`ent: validator failed for field "Recommendation.description": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Reasoning(); !ok {
		return &ValidationError{Name: "reasoning", err: errors.New(`ent: missing required field "Recommendation.reasoning"`)}
	}
	if v, ok := _c.mutation.Reasoning(); ok {
		if err := recommendation.ReasoningValidator(v); err != nil {
			return &ValidationError{Name: "reasoning", err: fmt.Errorf(`ent: validator failed for field "Recommendation.reasoning": %w`, err)}
		}
	}
	if _, ok := _c.mutation.DifficultyLevel(); !ok {
		return &ValidationError{Name: "difficulty_level", err: errors.New(`ent: missing required field "Recommendation.difficulty_level"`)}
	}
	if _, ok := _c.mutation.EstimatedMinutes(); !ok {
		return &ValidationError{Name: "estimated_minutes", err: errors.New(`ent: missing required field "Recommendation.estimated_minutes"`)}
	}
	if _, ok := _c.mutation.Priority(); !ok {
		return &ValidationError{Name: "priority", err: errors.New(`ent: missing required field "Recommendation.priority"`)}
	}
	if _, ok := _c.mutation.Urgency(); !ok {
		return &ValidationError{Name: "urgency", err: errors.New(`ent: missing required field "Recommendation.urgency"`)}
	}
	if v, ok := _c.mutation.Urgency(); ok {
		if err := recommendation.UrgencyValidator(v); err != nil {
			return &ValidationError{Name: "urgency", err: fmt.Errorf(`ent: validator failed for field "Recommendation.urgency": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Recommendation.status"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Recommendation.created_at"`)}
	}
	if _, ok := _c.mutation.ExpiresAt(); !ok {
		return &ValidationError{Name: "expires_at", err: errors.New(`ent: missing required field "Recommendation.expires_at"`)}
	}
	return nil
}

func (_c *RecommendationCreate) sqlSave(ctx context.Context) (*Recommendation, error) {
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

func (_c *RecommendationCreate) createSpec() (*Recommendation, *sqlgraph.CreateSpec) {
	var (
		_node = &Recommendation{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(recommendation.Table, sqlgraph.NewFieldSpec(recommendation.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.RecommendationID(); ok {
		_spec.SetField(recommendation.FieldRecommendationID, field.TypeString, value)
		_node.RecommendationID = value
	}
	if value, ok := _c.mutation.LearnerID(); ok {
		_spec.SetField(recommendation.FieldLearnerID, field.TypeString, value)
		_node.LearnerID = value
	}
	if value, ok := _c.mutation.RecType(); ok {
		_spec.SetField(recommendation.FieldRecType, field.TypeString, value)
		_node.RecType = value
	}
	if value, ok := _c.mutation.ConceptID(); ok {
		_spec.SetField(recommendation.FieldConceptID, field.TypeString, value)
		_node.ConceptID = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(recommendation.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(recommendation.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.Reasoning(); ok {
		_spec.SetField(recommendation.FieldReasoning, field.TypeString, value)
		_node.Reasoning = value
	}
	if value, ok := _c.mutation.DifficultyLevel(); ok {
		_spec.SetField(recommendation.FieldDifficultyLevel, field.TypeInt, value)
		_node.DifficultyLevel = value
	}
	if value, ok := _c.mutation.EstimatedMinutes(); ok {
		_spec.SetField(recommendation.FieldEstimatedMinutes, field.TypeInt, value)
		_node.EstimatedMinutes = value
	}
	if value, ok := _c.mutation.Priority(); ok {
		_spec.SetField(recommendation.FieldPriority, field.TypeInt, value)
		_node.Priority = value
	}
	if value, ok := _c.mutation.Urgency(); ok {
		_spec.SetField(recommendation.FieldUrgency, field.TypeString, value)
		_node.Urgency = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(recommendation.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(recommendation.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.ExpiresAt(); ok {
		_spec.SetField(recommendation.FieldExpiresAt, field.TypeTime, value)
		_node.ExpiresAt = value
	}
	return _node, _spec
}

// RecommendationCreateBulk is the builder for creating many Recommendation entities in bulk.
type RecommendationCreateBulk struct {
	config
	err      error
	builders []*RecommendationCreate
}

// Save creates the Recommendation entities in the database.
func (_c *RecommendationCreateBulk) Save(ctx context.Context) ([]*Recommendation, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Recommendation, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*RecommendationMutation)
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
func (_c *RecommendationCreateBulk) SaveX(ctx context.Context) []*Recommendation {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RecommendationCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RecommendationCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
