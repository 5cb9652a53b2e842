// Code generated by ent, DO NOT EDIT.

package cognitivestate

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the cognitivestate type in the database.
	Label = "cognitive_state"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldFocusScore holds the string denoting the focus_score field in the database.
	FieldFocusScore = "focus_score"
	// FieldLastUpdated holds the string denoting the last_updated field in the database.
	FieldLastUpdated = "last_updated"
	// FieldSessionHistory holds the string denoting the session_history field in the database.
	FieldSessionHistory = "session_history"
	// Table holds the table name of the cognitivestate in the database.
	Table = "cognitive_states"
)

// Columns holds all SQL columns for cognitivestate fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldFocusScore,
	FieldLastUpdated,
	FieldSessionHistory,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	UserIDValidator func(string) error
	// DefaultFocusScore holds the default value on creation for the "focus_score" field.
	DefaultFocusScore float64
)

// OrderOption defines the ordering options for the CognitiveState queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByFocusScore orders the results by the focus_score field.
func ByFocusScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFocusScore, opts...).ToFunc()
}

// ByLastUpdated orders the results by the last_updated field.
func ByLastUpdated(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastUpdated, opts...).ToFunc()
}
