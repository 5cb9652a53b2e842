// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/learnloop/ent/cognitivestate"
	"github.com/abhisek/learnloop/ent/schema"
)

// CognitiveState is the model entity for the CognitiveState schema.
type CognitiveState struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// Rolling focus score, clamped to [0, 100]
	FocusScore float64 `json:"focus_score,omitempty"`
	// LastUpdated holds the value of the "last_updated" field.
	LastUpdated time.Time `json:"last_updated,omitempty"`
	// Append-only, capped session summaries
	SessionHistory []schema.SessionSummary `json:"session_history,omitempty"`
	selectValues   sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*CognitiveState) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case cognitivestate.FieldSessionHistory:
			values[i] = new([]byte)
		case cognitivestate.FieldFocusScore:
			values[i] = new(sql.NullFloat64)
		case cognitivestate.FieldID:
			values[i] = new(sql.NullInt64)
		case cognitivestate.FieldUserID:
			values[i] = new(sql.NullString)
		case cognitivestate.FieldLastUpdated:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the CognitiveState fields.
func (_m *CognitiveState) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case cognitivestate.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case cognitivestate.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case cognitivestate.FieldFocusScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field focus_score", values[i])
			} else if value.Valid {
				_m.FocusScore = value.Float64
			}
		case cognitivestate.FieldLastUpdated:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_updated", values[i])
			} else if value.Valid {
				_m.LastUpdated = value.Time
			}
		case cognitivestate.FieldSessionHistory:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field session_history", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.SessionHistory); err != nil {
					return fmt.Errorf("unmarshal field session_history: %w", err)
				}
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the CognitiveState.
// This includes values selected through modifiers, order, etc.
func (_m *CognitiveState) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this CognitiveState.
// Note that you need to call CognitiveState.Unwrap() before calling this method if this CognitiveState
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *CognitiveState) Update() *CognitiveStateUpdateOne {
	return NewCognitiveStateClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the CognitiveState entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *CognitiveState) Unwrap() *CognitiveState {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: CognitiveState is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *CognitiveState) String() string {
	var builder strings.Builder
	builder.WriteString("CognitiveState(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("focus_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.FocusScore))
	builder.WriteString(", ")
	builder.WriteString("last_updated=")
	builder.WriteString(_m.LastUpdated.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("session_history=")
	builder.WriteString(fmt.Sprintf("%v", _m.SessionHistory))
	builder.WriteByte(')')
	return builder.String()
}

// CognitiveStates is a parsable slice of CognitiveState.
type CognitiveStates []*CognitiveState
