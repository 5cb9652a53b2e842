// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/learnloop/ent/cognitivestate"
	"github.com/abhisek/learnloop/ent/predicate"
)

// CognitiveStateDelete is the builder for deleting a CognitiveState entity.
type CognitiveStateDelete struct {
	config
	hooks    []Hook
	mutation *CognitiveStateMutation
}

// Where appends a list predicates to the CognitiveStateDelete builder.
func (_d *CognitiveStateDelete) Where(ps ...predicate.CognitiveState) *CognitiveStateDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *CognitiveStateDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *CognitiveStateDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *CognitiveStateDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(cognitivestate.Table, sqlgraph.NewFieldSpec(cognitivestate.FieldID, field.TypeInt))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// CognitiveStateDeleteOne is the builder for deleting a single CognitiveState entity.
type CognitiveStateDeleteOne struct {
	_d *CognitiveStateDelete
}

// Where appends a list predicates to the CognitiveStateDelete builder.
func (_d *CognitiveStateDeleteOne) Where(ps ...predicate.CognitiveState) *CognitiveStateDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *CognitiveStateDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{cognitivestate.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *CognitiveStateDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
