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
	"github.com/abhisek/learnloop/ent/predicate"
	"github.com/abhisek/learnloop/ent/progressrecord"
	"github.com/abhisek/learnloop/ent/schema"
)

// ProgressRecordUpdate is the builder for updating ProgressRecord entities.
type ProgressRecordUpdate struct {
	config
	hooks    []Hook
	mutation *ProgressRecordMutation
}

// Where appends a list predicates to the ProgressRecordUpdate builder.
func (_u *ProgressRecordUpdate) Where(ps ...predicate.ProgressRecord) *ProgressRecordUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *ProgressRecordUpdate) SetUserID(v string) *ProgressRecordUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ProgressRecordUpdate) SetNillableUserID(v *string) *ProgressRecordUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetLessonID sets the "lesson_id" field.
func (_u *ProgressRecordUpdate) SetLessonID(v string) *ProgressRecordUpdate {
	_u.mutation.SetLessonID(v)
	return _u
}

// SetNillableLessonID sets the "lesson_id" field if the given value is not nil.
func (_u *ProgressRecordUpdate) SetNillableLessonID(v *string) *ProgressRecordUpdate {
	if v != nil {
		_u.SetLessonID(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ProgressRecordUpdate) SetStatus(v progressrecord.Status) *ProgressRecordUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ProgressRecordUpdate) SetNillableStatus(v *progressrecord.Status) *ProgressRecordUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetEasinessFactor sets the "easiness_factor" field.
func (_u *ProgressRecordUpdate) SetEasinessFactor(v float64) *ProgressRecordUpdate {
	_u.mutation.ResetEasinessFactor()
	_u.mutation.SetEasinessFactor(v)
	return _u
}

// SetNillableEasinessFactor sets the "easiness_factor" field if the given value is not nil.
func (_u *ProgressRecordUpdate) SetNillableEasinessFactor(v *float64) *ProgressRecordUpdate {
	if v != nil {
		_u.SetEasinessFactor(*v)
	}
	return _u
}

// AddEasinessFactor adds value to the "easiness_factor" field.
func (_u *ProgressRecordUpdate) AddEasinessFactor(v float64) *ProgressRecordUpdate {
	_u.mutation.AddEasinessFactor(v)
	return _u
}

// SetRepetitions sets the "repetitions" field.
func (_u *ProgressRecordUpdate) SetRepetitions(v int) *ProgressRecordUpdate {
	_u.mutation.ResetRepetitions()
	_u.mutation.SetRepetitions(v)
	return _u
}

// SetNillableRepetitions sets the "repetitions" field if the given value is not nil.
func (_u *ProgressRecordUpdate) SetNillableRepetitions(v *int) *ProgressRecordUpdate {
	if v != nil {
		_u.SetRepetitions(*v)
	}
	return _u
}

// AddRepetitions adds value to the "repetitions" field.
func (_u *ProgressRecordUpdate) AddRepetitions(v int) *ProgressRecordUpdate {
	_u.mutation.AddRepetitions(v)
	return _u
}

// SetIntervalDays sets the "interval_days" field.
func (_u *ProgressRecordUpdate) SetIntervalDays(v int) *ProgressRecordUpdate {
	_u.mutation.ResetIntervalDays()
	_u.mutation.SetIntervalDays(v)
	return _u
}

// SetNillableIntervalDays sets the "interval_days" field if the given value is not nil.
func (_u *ProgressRecordUpdate) SetNillableIntervalDays(v *int) *ProgressRecordUpdate {
	if v != nil {
		_u.SetIntervalDays(*v)
	}
	return _u
}

// AddIntervalDays adds value to the "interval_days" field.
func (_u *ProgressRecordUpdate) AddIntervalDays(v int) *ProgressRecordUpdate {
	_u.mutation.AddIntervalDays(v)
	return _u
}

// SetNextReviewDate sets the "next_review_date" field.
func (_u *ProgressRecordUpdate) SetNextReviewDate(v time.Time) *ProgressRecordUpdate {
	_u.mutation.SetNextReviewDate(v)
	return _u
}

// SetNillableNextReviewDate sets the "next_review_date" field if the given value is not nil.
func (_u *ProgressRecordUpdate) SetNillableNextReviewDate(v *time.Time) *ProgressRecordUpdate {
	if v != nil {
		_u.SetNextReviewDate(*v)
	}
	return _u
}

// SetLastReviewedDate sets the "last_reviewed_date" field.
func (_u *ProgressRecordUpdate) SetLastReviewedDate(v time.Time) *ProgressRecordUpdate {
	_u.mutation.SetLastReviewedDate(v)
	return _u
}

// SetNillableLastReviewedDate sets the "last_reviewed_date" field if the given value is not nil.
func (_u *ProgressRecordUpdate) SetNillableLastReviewedDate(v *time.Time) *ProgressRecordUpdate {
	if v != nil {
		_u.SetLastReviewedDate(*v)
	}
	return _u
}

// ClearLastReviewedDate clears the value of the "last_reviewed_date" field.
func (_u *ProgressRecordUpdate) ClearLastReviewedDate() *ProgressRecordUpdate {
	_u.mutation.ClearLastReviewedDate()
	return _u
}

// SetReviewHistory sets the "review_history" field.
func (_u *ProgressRecordUpdate) SetReviewHistory(v []schema.ReviewEntry) *ProgressRecordUpdate {
	_u.mutation.SetReviewHistory(v)
	return _u
}

// AppendReviewHistory appends value to the "review_history" field.
func (_u *ProgressRecordUpdate) AppendReviewHistory(v []schema.ReviewEntry) *ProgressRecordUpdate {
	_u.mutation.AppendReviewHistory(v)
	return _u
}

// ClearReviewHistory clears the value of the "review_history" field.
func (_u *ProgressRecordUpdate) ClearReviewHistory() *ProgressRecordUpdate {
	_u.mutation.ClearReviewHistory()
	return _u
}

// Mutation returns the ProgressRecordMutation object of the builder.
func (_u *ProgressRecordUpdate) Mutation() *ProgressRecordMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ProgressRecordUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProgressRecordUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ProgressRecordUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProgressRecordUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProgressRecordUpdate) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := progressrecord.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "ProgressRecord.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LessonID(); ok {
		if err := progressrecord.LessonIDValidator(v); err != nil {
			return &ValidationError{Name: "lesson_id", err: fmt.Errorf(`ent: validator failed for field "ProgressRecord.lesson_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := progressrecord.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ProgressRecord.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ProgressRecordUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(progressrecord.Table, progressrecord.Columns, sqlgraph.NewFieldSpec(progressrecord.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(progressrecord.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.LessonID(); ok {
		_spec.SetField(progressrecord.FieldLessonID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(progressrecord.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.EasinessFactor(); ok {
		_spec.SetField(progressrecord.FieldEasinessFactor, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedEasinessFactor(); ok {
		_spec.AddField(progressrecord.FieldEasinessFactor, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Repetitions(); ok {
		_spec.SetField(progressrecord.FieldRepetitions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRepetitions(); ok {
		_spec.AddField(progressrecord.FieldRepetitions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.IntervalDays(); ok {
		_spec.SetField(progressrecord.FieldIntervalDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedIntervalDays(); ok {
		_spec.AddField(progressrecord.FieldIntervalDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.NextReviewDate(); ok {
		_spec.SetField(progressrecord.FieldNextReviewDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.LastReviewedDate(); ok {
		_spec.SetField(progressrecord.FieldLastReviewedDate, field.TypeTime, value)
	}
	if _u.mutation.LastReviewedDateCleared() {
		_spec.ClearField(progressrecord.FieldLastReviewedDate, field.TypeTime)
	}
	if value, ok := _u.mutation.ReviewHistory(); ok {
		_spec.SetField(progressrecord.FieldReviewHistory, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedReviewHistory(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, progressrecord.FieldReviewHistory, value)
		})
	}
	if _u.mutation.ReviewHistoryCleared() {
		_spec.ClearField(progressrecord.FieldReviewHistory, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{progressrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ProgressRecordUpdateOne is the builder for updating a single ProgressRecord entity.
type ProgressRecordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ProgressRecordMutation
}

// SetUserID sets the "user_id" field.
func (_u *ProgressRecordUpdateOne) SetUserID(v string) *ProgressRecordUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ProgressRecordUpdateOne) SetNillableUserID(v *string) *ProgressRecordUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetLessonID sets the "lesson_id" field.
func (_u *ProgressRecordUpdateOne) SetLessonID(v string) *ProgressRecordUpdateOne {
	_u.mutation.SetLessonID(v)
	return _u
}

// SetNillableLessonID sets the "lesson_id" field if the given value is not nil.
func (_u *ProgressRecordUpdateOne) SetNillableLessonID(v *string) *ProgressRecordUpdateOne {
	if v != nil {
		_u.SetLessonID(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ProgressRecordUpdateOne) SetStatus(v progressrecord.Status) *ProgressRecordUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ProgressRecordUpdateOne) SetNillableStatus(v *progressrecord.Status) *ProgressRecordUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetEasinessFactor sets the "easiness_factor" field.
func (_u *ProgressRecordUpdateOne) SetEasinessFactor(v float64) *ProgressRecordUpdateOne {
	_u.mutation.ResetEasinessFactor()
	_u.mutation.SetEasinessFactor(v)
	return _u
}

// SetNillableEasinessFactor sets the "easiness_factor" field if the given value is not nil.
func (_u *ProgressRecordUpdateOne) SetNillableEasinessFactor(v *float64) *ProgressRecordUpdateOne {
	if v != nil {
		_u.SetEasinessFactor(*v)
	}
	return _u
}

// AddEasinessFactor adds value to the "easiness_factor" field.
func (_u *ProgressRecordUpdateOne) AddEasinessFactor(v float64) *ProgressRecordUpdateOne {
	_u.mutation.AddEasinessFactor(v)
	return _u
}

// SetRepetitions sets the "repetitions" field.
func (_u *ProgressRecordUpdateOne) SetRepetitions(v int) *ProgressRecordUpdateOne {
	_u.mutation.ResetRepetitions()
	_u.mutation.SetRepetitions(v)
	return _u
}

// SetNillableRepetitions sets the "repetitions" field if the given value is not nil.
func (_u *ProgressRecordUpdateOne) SetNillableRepetitions(v *int) *ProgressRecordUpdateOne {
	if v != nil {
		_u.SetRepetitions(*v)
	}
	return _u
}

// AddRepetitions adds value to the "repetitions" field.
func (_u *ProgressRecordUpdateOne) AddRepetitions(v int) *ProgressRecordUpdateOne {
	_u.mutation.AddRepetitions(v)
	return _u
}

// SetIntervalDays sets the "interval_days" field.
func (_u *ProgressRecordUpdateOne) SetIntervalDays(v int) *ProgressRecordUpdateOne {
	_u.mutation.ResetIntervalDays()
	_u.mutation.SetIntervalDays(v)
	return _u
}

// SetNillableIntervalDays sets the "interval_days" field if the given value is not nil.
func (_u *ProgressRecordUpdateOne) SetNillableIntervalDays(v *int) *ProgressRecordUpdateOne {
	if v != nil {
		_u.SetIntervalDays(*v)
	}
	return _u
}

// AddIntervalDays adds value to the "interval_days" field.
func (_u *ProgressRecordUpdateOne) AddIntervalDays(v int) *ProgressRecordUpdateOne {
	_u.mutation.AddIntervalDays(v)
	return _u
}

// SetNextReviewDate sets the "next_review_date" field.
func (_u *ProgressRecordUpdateOne) SetNextReviewDate(v time.Time) *ProgressRecordUpdateOne {
	_u.mutation.SetNextReviewDate(v)
	return _u
}

// SetNillableNextReviewDate sets the "next_review_date" field if the given value is not nil.
func (_u *ProgressRecordUpdateOne) SetNillableNextReviewDate(v *time.Time) *ProgressRecordUpdateOne {
	if v != nil {
		_u.SetNextReviewDate(*v)
	}
	return _u
}

// SetLastReviewedDate sets the "last_reviewed_date" field.
func (_u *ProgressRecordUpdateOne) SetLastReviewedDate(v time.Time) *ProgressRecordUpdateOne {
	_u.mutation.SetLastReviewedDate(v)
	return _u
}

// SetNillableLastReviewedDate sets the "last_reviewed_date" field if the given value is not nil.
func (_u *ProgressRecordUpdateOne) SetNillableLastReviewedDate(v *time.Time) *ProgressRecordUpdateOne {
	if v != nil {
		_u.SetLastReviewedDate(*v)
	}
	return _u
}

// ClearLastReviewedDate clears the value of the "last_reviewed_date" field.
func (_u *ProgressRecordUpdateOne) ClearLastReviewedDate() *ProgressRecordUpdateOne {
	_u.mutation.ClearLastReviewedDate()
	return _u
}

// SetReviewHistory sets the "review_history" field.
func (_u *ProgressRecordUpdateOne) SetReviewHistory(v []schema.ReviewEntry) *ProgressRecordUpdateOne {
	_u.mutation.SetReviewHistory(v)
	return _u
}

// AppendReviewHistory appends value to the "review_history" field.
func (_u *ProgressRecordUpdateOne) AppendReviewHistory(v []schema.ReviewEntry) *ProgressRecordUpdateOne {
	_u.mutation.AppendReviewHistory(v)
	return _u
}

// ClearReviewHistory clears the value of the "review_history" field.
func (_u *ProgressRecordUpdateOne) ClearReviewHistory() *ProgressRecordUpdateOne {
	_u.mutation.ClearReviewHistory()
	return _u
}

// Mutation returns the ProgressRecordMutation object of the builder.
func (_u *ProgressRecordUpdateOne) Mutation() *ProgressRecordMutation {
	return _u.mutation
}

// Where appends a list predicates to the ProgressRecordUpdate builder.
func (_u *ProgressRecordUpdateOne) Where(ps ...predicate.ProgressRecord) *ProgressRecordUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ProgressRecordUpdateOne) Select(field string, fields ...string) *ProgressRecordUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ProgressRecord entity.
func (_u *ProgressRecordUpdateOne) Save(ctx context.Context) (*ProgressRecord, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProgressRecordUpdateOne) SaveX(ctx context.Context) *ProgressRecord {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ProgressRecordUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProgressRecordUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProgressRecordUpdateOne) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := progressrecord.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "ProgressRecord.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LessonID(); ok {
		if err := progressrecord.LessonIDValidator(v); err != nil {
			return &ValidationError{Name: "lesson_id", err: fmt.Errorf(`ent: validator failed for field "ProgressRecord.lesson_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := progressrecord.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ProgressRecord.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ProgressRecordUpdateOne) sqlSave(ctx context.Context) (_node *ProgressRecord, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(progressrecord.Table, progressrecord.Columns, sqlgraph.NewFieldSpec(progressrecord.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ProgressRecord.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, progressrecord.FieldID)
		for _, f := range fields {
			if !progressrecord.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != progressrecord.FieldID {
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
		_spec.SetField(progressrecord.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.LessonID(); ok {
		_spec.SetField(progressrecord.FieldLessonID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(progressrecord.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.EasinessFactor(); ok {
		_spec.SetField(progressrecord.FieldEasinessFactor, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedEasinessFactor(); ok {
		_spec.AddField(progressrecord.FieldEasinessFactor, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Repetitions(); ok {
		_spec.SetField(progressrecord.FieldRepetitions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRepetitions(); ok {
		_spec.AddField(progressrecord.FieldRepetitions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.IntervalDays(); ok {
		_spec.SetField(progressrecord.FieldIntervalDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedIntervalDays(); ok {
		_spec.AddField(progressrecord.FieldIntervalDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.NextReviewDate(); ok {
		_spec.SetField(progressrecord.FieldNextReviewDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.LastReviewedDate(); ok {
		_spec.SetField(progressrecord.FieldLastReviewedDate, field.TypeTime, value)
	}
	if _u.mutation.LastReviewedDateCleared() {
		_spec.ClearField(progressrecord.FieldLastReviewedDate, field.TypeTime)
	}
	if value, ok := _u.mutation.ReviewHistory(); ok {
		_spec.SetField(progressrecord.FieldReviewHistory, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedReviewHistory(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, progressrecord.FieldReviewHistory, value)
		})
	}
	if _u.mutation.ReviewHistoryCleared() {
		_spec.ClearField(progressrecord.FieldReviewHistory, field.TypeJSON)
	}
	_node = &ProgressRecord{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{progressrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
