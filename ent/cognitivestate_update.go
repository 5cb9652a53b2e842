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
	"github.com/abhisek/learnloop/ent/cognitivestate"
	"github.com/abhisek/learnloop/ent/predicate"
	"github.com/abhisek/learnloop/ent/schema"
)

// CognitiveStateUpdate is the builder for updating CognitiveState entities.
type CognitiveStateUpdate struct {
	config
	hooks    []Hook
	mutation *CognitiveStateMutation
}

// Where appends a list predicates to the CognitiveStateUpdate builder.
func (_u *CognitiveStateUpdate) Where(ps ...predicate.CognitiveState) *CognitiveStateUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *CognitiveStateUpdate) SetUserID(v string) *CognitiveStateUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *CognitiveStateUpdate) SetNillableUserID(v *string) *CognitiveStateUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetFocusScore sets the "focus_score" field.
func (_u *CognitiveStateUpdate) SetFocusScore(v float64) *CognitiveStateUpdate {
	_u.mutation.ResetFocusScore()
	_u.mutation.SetFocusScore(v)
	return _u
}

// SetNillableFocusScore sets the "focus_score" field if the given value is not nil.
func (_u *CognitiveStateUpdate) SetNillableFocusScore(v *float64) *CognitiveStateUpdate {
	if v != nil {
		_u.SetFocusScore(*v)
	}
	return _u
}

// AddFocusScore adds value to the "focus_score" field.
func (_u *CognitiveStateUpdate) AddFocusScore(v float64) *CognitiveStateUpdate {
	_u.mutation.AddFocusScore(v)
	return _u
}

// SetLastUpdated sets the "last_updated" field.
func (_u *CognitiveStateUpdate) SetLastUpdated(v time.Time) *CognitiveStateUpdate {
	_u.mutation.SetLastUpdated(v)
	return _u
}

// SetNillableLastUpdated sets the "last_updated" field if the given value is not nil.
func (_u *CognitiveStateUpdate) SetNillableLastUpdated(v *time.Time) *CognitiveStateUpdate {
	if v != nil {
		_u.SetLastUpdated(*v)
	}
	return _u
}

// SetSessionHistory sets the "session_history" field.
func (_u *CognitiveStateUpdate) SetSessionHistory(v []schema.SessionSummary) *CognitiveStateUpdate {
	_u.mutation.SetSessionHistory(v)
	return _u
}

// AppendSessionHistory appends value to the "session_history" field.
func (_u *CognitiveStateUpdate) AppendSessionHistory(v []schema.SessionSummary) *CognitiveStateUpdate {
	_u.mutation.AppendSessionHistory(v)
	return _u
}

// ClearSessionHistory clears the value of the "session_history" field.
func (_u *CognitiveStateUpdate) ClearSessionHistory() *CognitiveStateUpdate {
	_u.mutation.ClearSessionHistory()
	return _u
}

// Mutation returns the CognitiveStateMutation object of the builder.
func (_u *CognitiveStateUpdate) Mutation() *CognitiveStateMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CognitiveStateUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CognitiveStateUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CognitiveStateUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CognitiveStateUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CognitiveStateUpdate) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := cognitivestate.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "CognitiveState.user_id": %w`, err)}
		}
	}
	return nil
}

func (_u *CognitiveStateUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(cognitivestate.Table, cognitivestate.Columns, sqlgraph.NewFieldSpec(cognitivestate.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(cognitivestate.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.FocusScore(); ok {
		_spec.SetField(cognitivestate.FieldFocusScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedFocusScore(); ok {
		_spec.AddField(cognitivestate.FieldFocusScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.LastUpdated(); ok {
		_spec.SetField(cognitivestate.FieldLastUpdated, field.TypeTime, value)
	}
	if value, ok := _u.mutation.SessionHistory(); ok {
		_spec.SetField(cognitivestate.FieldSessionHistory, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSessionHistory(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, cognitivestate.FieldSessionHistory, value)
		})
	}
	if _u.mutation.SessionHistoryCleared() {
		_spec.ClearField(cognitivestate.FieldSessionHistory, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{cognitivestate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CognitiveStateUpdateOne is the builder for updating a single CognitiveState entity.
type CognitiveStateUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CognitiveStateMutation
}

// SetUserID sets the "user_id" field.
func (_u *CognitiveStateUpdateOne) SetUserID(v string) *CognitiveStateUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *CognitiveStateUpdateOne) SetNillableUserID(v *string) *CognitiveStateUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetFocusScore sets the "focus_score" field.
func (_u *CognitiveStateUpdateOne) SetFocusScore(v float64) *CognitiveStateUpdateOne {
	_u.mutation.ResetFocusScore()
	_u.mutation.SetFocusScore(v)
	return _u
}

// SetNillableFocusScore sets the "focus_score" field if the given value is not nil.
func (_u *CognitiveStateUpdateOne) SetNillableFocusScore(v *float64) *CognitiveStateUpdateOne {
	if v != nil {
		_u.SetFocusScore(*v)
	}
	return _u
}

// AddFocusScore adds value to the "focus_score" field.
func (_u *CognitiveStateUpdateOne) AddFocusScore(v float64) *CognitiveStateUpdateOne {
	_u.mutation.AddFocusScore(v)
	return _u
}

// SetLastUpdated sets the "last_updated" field.
func (_u *CognitiveStateUpdateOne) SetLastUpdated(v time.Time) *CognitiveStateUpdateOne {
	_u.mutation.SetLastUpdated(v)
	return _u
}

// SetNillableLastUpdated sets the "last_updated" field if the given value is not nil.
func (_u *CognitiveStateUpdateOne) SetNillableLastUpdated(v *time.Time) *CognitiveStateUpdateOne {
	if v != nil {
		_u.SetLastUpdated(*v)
	}
	return _u
}

// SetSessionHistory sets the "session_history" field.
func (_u *CognitiveStateUpdateOne) SetSessionHistory(v []schema.SessionSummary) *CognitiveStateUpdateOne {
	_u.mutation.SetSessionHistory(v)
	return _u
}

// AppendSessionHistory appends value to the "session_history" field.
func (_u *CognitiveStateUpdateOne) AppendSessionHistory(v []schema.SessionSummary) *CognitiveStateUpdateOne {
	_u.mutation.AppendSessionHistory(v)
	return _u
}

// ClearSessionHistory clears the value of the "session_history" field.
func (_u *CognitiveStateUpdateOne) ClearSessionHistory() *CognitiveStateUpdateOne {
	_u.mutation.ClearSessionHistory()
	return _u
}

// Mutation returns the CognitiveStateMutation object of the builder.
func (_u *CognitiveStateUpdateOne) Mutation() *CognitiveStateMutation {
	return _u.mutation
}

// Where appends a list predicates to the CognitiveStateUpdate builder.
func (_u *CognitiveStateUpdateOne) Where(ps ...predicate.CognitiveState) *CognitiveStateUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CognitiveStateUpdateOne) Select(field string, fields ...string) *CognitiveStateUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated CognitiveState entity.
func (_u *CognitiveStateUpdateOne) Save(ctx context.Context) (*CognitiveState, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CognitiveStateUpdateOne) SaveX(ctx context.Context) *CognitiveState {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CognitiveStateUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CognitiveStateUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CognitiveStateUpdateOne) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := cognitivestate.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "CognitiveState.user_id": %w`, err)}
		}
	}
	return nil
}

func (_u *CognitiveStateUpdateOne) sqlSave(ctx context.Context) (_node *CognitiveState, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(cognitivestate.Table, cognitivestate.Columns, sqlgraph.NewFieldSpec(cognitivestate.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "CognitiveState.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, cognitivestate.FieldID)
		for _, f := range fields {
			if !cognitivestate.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != cognitivestate.FieldID {
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
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(cognitivestate.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.FocusScore(); ok {
		_spec.SetField(cognitivestate.FieldFocusScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedFocusScore(); ok {
		_spec.AddField(cognitivestate.FieldFocusScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.LastUpdated(); ok {
		_spec.SetField(cognitivestate.FieldLastUpdated, field.TypeTime, value)
	}
	if value, ok := _u.mutation.SessionHistory(); ok {
		_spec.SetField(cognitivestate.FieldSessionHistory, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSessionHistory(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, cognitivestate.FieldSessionHistory, value)
		})
	}
	if _u.mutation.SessionHistoryCleared() {
		_spec.ClearField(cognitivestate.FieldSessionHistory, field.TypeJSON)
	}
	_node = &CognitiveState{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{cognitivestate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
