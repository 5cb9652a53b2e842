// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/learnloop/ent/predicate"
	"github.com/abhisek/learnloop/ent/sessionevent"
)

// SessionEventUpdate is the builder for updating SessionEvent entities.
type SessionEventUpdate struct {
	config
	hooks    []Hook
	mutation *SessionEventMutation
}

// Where appends a list predicates to the SessionEventUpdate builder.
func (_u *SessionEventUpdate) Where(ps ...predicate.SessionEvent) *SessionEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *SessionEventUpdate) SetUserID(v string) *SessionEventUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *SessionEventUpdate) SetNillableUserID(v *string) *SessionEventUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *SessionEventUpdate) SetSessionID(v string) *SessionEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *SessionEventUpdate) SetNillableSessionID(v *string) *SessionEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetContextType sets the "context_type" field.
func (_u *SessionEventUpdate) SetContextType(v string) *SessionEventUpdate {
	_u.mutation.SetContextType(v)
	return _u
}

// SetNillableContextType sets the "context_type" field if the given value is not nil.
func (_u *SessionEventUpdate) SetNillableContextType(v *string) *SessionEventUpdate {
	if v != nil {
		_u.SetContextType(*v)
	}
	return _u
}

// SetContextID sets the "context_id" field.
func (_u *SessionEventUpdate) SetContextID(v string) *SessionEventUpdate {
	_u.mutation.SetContextID(v)
	return _u
}

// SetNillableContextID sets the "context_id" field if the given value is not nil.
func (_u *SessionEventUpdate) SetNillableContextID(v *string) *SessionEventUpdate {
	if v != nil {
		_u.SetContextID(*v)
	}
	return _u
}

// SetDurationSecs sets the "duration_secs" field.
func (_u *SessionEventUpdate) SetDurationSecs(v int) *SessionEventUpdate {
	_u.mutation.ResetDurationSecs()
	_u.mutation.SetDurationSecs(v)
	return _u
}

// SetNillableDurationSecs sets the "duration_secs" field if the given value is not nil.
func (_u *SessionEventUpdate) SetNillableDurationSecs(v *int) *SessionEventUpdate {
	if v != nil {
		_u.SetDurationSecs(*v)
	}
	return _u
}

// AddDurationSecs adds value to the "duration_secs" field.
func (_u *SessionEventUpdate) AddDurationSecs(v int) *SessionEventUpdate {
	_u.mutation.AddDurationSecs(v)
	return _u
}

// SetInteractionCount sets the "interaction_count" field.
func (_u *SessionEventUpdate) SetInteractionCount(v int) *SessionEventUpdate {
	_u.mutation.ResetInteractionCount()
	_u.mutation.SetInteractionCount(v)
	return _u
}

// SetNillableInteractionCount sets the "interaction_count" field if the given value is not nil.
func (_u *SessionEventUpdate) SetNillableInteractionCount(v *int) *SessionEventUpdate {
	if v != nil {
		_u.SetInteractionCount(*v)
	}
	return _u
}

// AddInteractionCount adds value to the "interaction_count" field.
func (_u *SessionEventUpdate) AddInteractionCount(v int) *SessionEventUpdate {
	_u.mutation.AddInteractionCount(v)
	return _u
}

// SetSuperseded sets the "superseded" field.
func (_u *SessionEventUpdate) SetSuperseded(v bool) *SessionEventUpdate {
	_u.mutation.SetSuperseded(v)
	return _u
}

// SetNillableSuperseded sets the "superseded" field if the given value is not nil.
func (_u *SessionEventUpdate) SetNillableSuperseded(v *bool) *SessionEventUpdate {
	if v != nil {
		_u.SetSuperseded(*v)
	}
	return _u
}

// Mutation returns the SessionEventMutation object of the builder.
func (_u *SessionEventUpdate) Mutation() *SessionEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SessionEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SessionEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SessionEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SessionEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SessionEventUpdate) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := sessionevent.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "SessionEvent.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SessionID(); ok {
		if err := sessionevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "SessionEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ContextType(); ok {
		if err := sessionevent.ContextTypeValidator(v); err != nil {
			return &ValidationError{Name: "context_type", err: fmt.Errorf(`ent: validator failed for field "SessionEvent.context_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ContextID(); ok {
		if err := sessionevent.ContextIDValidator(v); err != nil {
			return &ValidationError{Name: "context_id", err: fmt.Errorf(`ent: validator failed for field "SessionEvent.context_id": %w`, err)}
		}
	}
	return nil
}

func (_u *SessionEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(sessionevent.Table, sessionevent.Columns, sqlgraph.NewFieldSpec(sessionevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(sessionevent.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(sessionevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ContextType(); ok {
		_spec.SetField(sessionevent.FieldContextType, field.TypeString, value)
	}
	if value, ok := _u.mutation.ContextID(); ok {
		_spec.SetField(sessionevent.FieldContextID, field.TypeString, value)
	}
	if value, ok := _u.mutation.DurationSecs(); ok {
		_spec.SetField(sessionevent.FieldDurationSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationSecs(); ok {
		_spec.AddField(sessionevent.FieldDurationSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.InteractionCount(); ok {
		_spec.SetField(sessionevent.FieldInteractionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedInteractionCount(); ok {
		_spec.AddField(sessionevent.FieldInteractionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Superseded(); ok {
		_spec.SetField(sessionevent.FieldSuperseded, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sessionevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SessionEventUpdateOne is the builder for updating a single SessionEvent entity.
type SessionEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SessionEventMutation
}

// SetUserID sets the "user_id" field.
func (_u *SessionEventUpdateOne) SetUserID(v string) *SessionEventUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *SessionEventUpdateOne) SetNillableUserID(v *string) *SessionEventUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *SessionEventUpdateOne) SetSessionID(v string) *SessionEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *SessionEventUpdateOne) SetNillableSessionID(v *string) *SessionEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetContextType sets the "context_type" field.
func (_u *SessionEventUpdateOne) SetContextType(v string) *SessionEventUpdateOne {
	_u.mutation.SetContextType(v)
	return _u
}

// SetNillableContextType sets the "context_type" field if the given value is not nil.
func (_u *SessionEventUpdateOne) SetNillableContextType(v *string) *SessionEventUpdateOne {
	if v != nil {
		_u.SetContextType(*v)
	}
	return _u
}

// SetContextID sets the "context_id" field.
func (_u *SessionEventUpdateOne) SetContextID(v string) *SessionEventUpdateOne {
	_u.mutation.SetContextID(v)
	return _u
}

// SetNillableContextID sets the "context_id" field if the given value is not nil.
func (_u *SessionEventUpdateOne) SetNillableContextID(v *string) *SessionEventUpdateOne {
	if v != nil {
		_u.SetContextID(*v)
	}
	return _u
}

// SetDurationSecs sets the "duration_secs" field.
func (_u *SessionEventUpdateOne) SetDurationSecs(v int) *SessionEventUpdateOne {
	_u.mutation.ResetDurationSecs()
	_u.mutation.SetDurationSecs(v)
	return _u
}

// SetNillableDurationSecs sets the "duration_secs" field if the given value is not nil.
func (_u *SessionEventUpdateOne) SetNillableDurationSecs(v *int) *SessionEventUpdateOne {
	if v != nil {
		_u.SetDurationSecs(*v)
	}
	return _u
}

// AddDurationSecs adds value to the "duration_secs" field.
func (_u *SessionEventUpdateOne) AddDurationSecs(v int) *SessionEventUpdateOne {
	_u.mutation.AddDurationSecs(v)
	return _u
}

// SetInteractionCount sets the "interaction_count" field.
func (_u *SessionEventUpdateOne) SetInteractionCount(v int) *SessionEventUpdateOne {
	_u.mutation.ResetInteractionCount()
	_u.mutation.SetInteractionCount(v)
	return _u
}

// SetNillableInteractionCount sets the "interaction_count" field if the given value is not nil.
func (_u *SessionEventUpdateOne) SetNillableInteractionCount(v *int) *SessionEventUpdateOne {
	if v != nil {
		_u.SetInteractionCount(*v)
	}
	return _u
}

// AddInteractionCount adds value to the "interaction_count" field.
func (_u *SessionEventUpdateOne) AddInteractionCount(v int) *SessionEventUpdateOne {
	_u.mutation.AddInteractionCount(v)
	return _u
}

// SetSuperseded sets the "superseded" field.
func (_u *SessionEventUpdateOne) SetSuperseded(v bool) *SessionEventUpdateOne {
	_u.mutation.SetSuperseded(v)
	return _u
}

// SetNillableSuperseded sets the "superseded" field if the given value is not nil.
func (_u *SessionEventUpdateOne) SetNillableSuperseded(v *bool) *SessionEventUpdateOne {
	if v != nil {
		_u.SetSuperseded(*v)
	}
	return _u
}

// Mutation returns the SessionEventMutation object of the builder.
func (_u *SessionEventUpdateOne) Mutation() *SessionEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the SessionEventUpdate builder.
func (_u *SessionEventUpdateOne) Where(ps ...predicate.SessionEvent) *SessionEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SessionEventUpdateOne) Select(field string, fields ...string) *SessionEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SessionEvent entity.
func (_u *SessionEventUpdateOne) Save(ctx context.Context) (*SessionEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SessionEventUpdateOne) SaveX(ctx context.Context) *SessionEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SessionEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SessionEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SessionEventUpdateOne) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := sessionevent.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "SessionEvent.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SessionID(); ok {
		if err := sessionevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "SessionEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ContextType(); ok {
		if err := sessionevent.ContextTypeValidator(v); err != nil {
			return &ValidationError{Name: "context_type", err: fmt.Errorf(`ent: validator failed for field "SessionEvent.context_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ContextID(); ok {
		if err := sessionevent.ContextIDValidator(v); err != nil {
			return &ValidationError{Name: "context_id", err: fmt.Errorf(`ent: validator failed for field "SessionEvent.context_id": %w`, err)}
		}
	}
	return nil
}

func (_u *SessionEventUpdateOne) sqlSave(ctx context.Context) (_node *SessionEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(sessionevent.Table, sessionevent.Columns, sqlgraph.NewFieldSpec(sessionevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SessionEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, sessionevent.FieldID)
		for _, f := range fields {
			if !sessionevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != sessionevent.FieldID {
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
		_spec.SetField(sessionevent.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(sessionevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ContextType(); ok {
		_spec.SetField(sessionevent.FieldContextType, field.TypeString, value)
	}
	if value, ok := _u.mutation.ContextID(); ok {
		_spec.SetField(sessionevent.FieldContextID, field.TypeString, value)
	}
	if value, ok := _u.mutation.DurationSecs(); ok {
		_spec.SetField(sessionevent.FieldDurationSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationSecs(); ok {
		_spec.AddField(sessionevent.FieldDurationSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.InteractionCount(); ok {
		_spec.SetField(sessionevent.FieldInteractionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedInteractionCount(); ok {
		_spec.AddField(sessionevent.FieldInteractionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Superseded(); ok {
		_spec.SetField(sessionevent.FieldSuperseded, field.TypeBool, value)
	}
	_node = &SessionEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sessionevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
