// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/learnloop/ent/cognitivestate"
	"github.com/abhisek/learnloop/ent/schema"
)

// CognitiveStateCreate is the builder for creating a CognitiveState entity.
type CognitiveStateCreate struct {
	config
	mutation *CognitiveStateMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *CognitiveStateCreate) SetUserID(v string) *CognitiveStateCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetFocusScore sets the "focus_score" field.
func (_c *CognitiveStateCreate) SetFocusScore(v float64) *CognitiveStateCreate {
	_c.mutation.SetFocusScore(v)
	return _c
}

// SetNillableFocusScore sets the "focus_score" field if the given value is not nil.
func (_c *CognitiveStateCreate) SetNillableFocusScore(v *float64) *CognitiveStateCreate {
	if v != nil {
		_c.SetFocusScore(*v)
	}
	return _c
}

// SetLastUpdated sets the "last_updated" field.
func (_c *CognitiveStateCreate) SetLastUpdated(v time.Time) *CognitiveStateCreate {
	_c.mutation.SetLastUpdated(v)
	return _c
}

// SetSessionHistory sets the "session_history" field.
func (_c *CognitiveStateCreate) SetSessionHistory(v []schema.SessionSummary) *CognitiveStateCreate {
	_c.mutation.SetSessionHistory(v)
	return _c
}

// Mutation returns the CognitiveStateMutation object of the builder.
func (_c *CognitiveStateCreate) Mutation() *CognitiveStateMutation {
	return _c.mutation
}

// Save creates the CognitiveState in the database.
func (_c *CognitiveStateCreate) Save(ctx context.Context) (*CognitiveState, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CognitiveStateCreate) SaveX(ctx context.Context) *CognitiveState {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CognitiveStateCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CognitiveStateCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CognitiveStateCreate) defaults() {
	if _, ok := _c.mutation.FocusScore(); !ok {
		v := cognitivestate.DefaultFocusScore
		_c.mutation.SetFocusScore(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CognitiveStateCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "CognitiveState.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := cognitivestate.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "CognitiveState.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FocusScore(); !ok {
		return &ValidationError{Name: "focus_score", err: errors.New(`ent: missing required field "CognitiveState.focus_score"`)}
	}
	if _, ok := _c.mutation.LastUpdated(); !ok {
		return &ValidationError{Name: "last_updated", err: errors.New(`ent: missing required field "CognitiveState.last_updated"`)}
	}
	return nil
}

func (_c *CognitiveStateCreate) sqlSave(ctx context.Context) (*CognitiveState, error) {
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

func (_c *CognitiveStateCreate) createSpec() (*CognitiveState, *sqlgraph.CreateSpec) {
	var (
		_node = &CognitiveState{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(cognitivestate.Table, sqlgraph.NewFieldSpec(cognitivestate.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(cognitivestate.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.FocusScore(); ok {
		_spec.SetField(cognitivestate.FieldFocusScore, field.TypeFloat64, value)
		_node.FocusScore = value
	}
	if value, ok := _c.mutation.LastUpdated(); ok {
		_spec.SetField(cognitivestate.FieldLastUpdated, field.TypeTime, value)
		_node.LastUpdated = value
	}
	if value, ok := _c.mutation.SessionHistory(); ok {
		_spec.SetField(cognitivestate.FieldSessionHistory, field.TypeJSON, value)
		_node.SessionHistory = value
	}
	return _node, _spec
}

// CognitiveStateCreateBulk is the builder for creating many CognitiveState entities in bulk.
type CognitiveStateCreateBulk struct {
	config
	err      error
	builders []*CognitiveStateCreate
}

// Save creates the CognitiveState entities in the database.
func (_c *CognitiveStateCreateBulk) Save(ctx context.Context) ([]*CognitiveState, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*CognitiveState, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CognitiveStateMutation)
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
func (_c *CognitiveStateCreateBulk) SaveX(ctx context.Context) []*CognitiveState {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CognitiveStateCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CognitiveStateCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
