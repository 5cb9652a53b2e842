// Code generated by ent, DO NOT EDIT.

package cognitivestate

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/learnloop/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.CognitiveState {
	return predicate.CognitiveState(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.CognitiveState {
	return predicate.CognitiveState(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.CognitiveState {
	return predicate.CognitiveState(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.CognitiveState {
	return predicate.CognitiveState(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.CognitiveState {
	return predicate.CognitiveState(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.CognitiveState {
	return predicate.CognitiveState(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.CognitiveState {
	return predicate.CognitiveState(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.CognitiveState {
	return predicate.CognitiveState(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.CognitiveState {
	return predicate.CognitiveState(sql.FieldLTE(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.CognitiveState {
	return predicate.CognitiveState(sql.FieldEQ(FieldUserID, v))
}

// FocusScore applies equality check predicate on the "focus_score" field. It's identical to FocusScoreEQ.
func FocusScore(v float64) predicate.CognitiveState {
	return predicate.CognitiveState(sql.FieldEQ(FieldFocusScore, v))
}

// LastUpdated applies equality check predicate on the "last_updated" field. It's identical to LastUpdatedEQ.
func LastUpdated(v time.Time) predicate.CognitiveState {
	return predicate.CognitiveState(sql.FieldEQ(FieldLastUpdated, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.CognitiveState {
	return predicate.CognitiveState(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.CognitiveState {
	return predicate.CognitiveState(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.CognitiveState {
	return predicate.CognitiveState(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.CognitiveState {
	return predicate.CognitiveState(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.CognitiveState {
	return predicate.CognitiveState(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.CognitiveState {
	return predicate.CognitiveState(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.CognitiveState {
	return predicate.CognitiveState(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.CognitiveState {
	return predicate.CognitiveState(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.CognitiveState {
	return predicate.CognitiveState(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.CognitiveState {
	return predicate.CognitiveState(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.CognitiveState {
	return predicate.CognitiveState(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.CognitiveState {
	return predicate.CognitiveState(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.CognitiveState {
	return predicate.CognitiveState(sql.FieldContainsFold(FieldUserID, v))
}

// FocusScoreEQ applies the EQ predicate on the "focus_score" field.
func FocusScoreEQ(v float64) predicate.CognitiveState {
	return predicate.CognitiveState(sql.FieldEQ(FieldFocusScore, v))
}

// FocusScoreNEQ applies the NEQ predicate on the "focus_score" field.
func FocusScoreNEQ(v float64) predicate.CognitiveState {
	return predicate.CognitiveState(sql.FieldNEQ(FieldFocusScore, v))
}

// FocusScoreIn applies the In predicate on the "focus_score" field.
func FocusScoreIn(vs ...float64) predicate.CognitiveState {
	return predicate.CognitiveState(sql.FieldIn(FieldFocusScore, vs...))
}

// FocusScoreNotIn applies the NotIn predicate on the "focus_score" field.
func FocusScoreNotIn(vs ...float64) predicate.CognitiveState {
	return predicate.CognitiveState(sql.FieldNotIn(FieldFocusScore, vs...))
}

// FocusScoreGT applies the GT predicate on the "focus_score" field.
func FocusScoreGT(v float64) predicate.CognitiveState {
	return predicate.CognitiveState(sql.FieldGT(FieldFocusScore, v))
}

// FocusScoreGTE applies the GTE predicate on the "focus_score" field.
func FocusScoreGTE(v float64) predicate.CognitiveState {
	return predicate.CognitiveState(sql.FieldGTE(FieldFocusScore, v))
}

// FocusScoreLT applies the LT predicate on the "focus_score" field.
func FocusScoreLT(v float64) predicate.CognitiveState {
	return predicate.CognitiveState(sql.FieldLT(FieldFocusScore, v))
}

// FocusScoreLTE applies the LTE predicate on the "focus_score" field.
func FocusScoreLTE(v float64) predicate.CognitiveState {
	return predicate.CognitiveState(sql.FieldLTE(FieldFocusScore, v))
}

// LastUpdatedEQ applies the EQ predicate on the "last_updated" field.
func LastUpdatedEQ(v time.Time) predicate.CognitiveState {
	return predicate.CognitiveState(sql.FieldEQ(FieldLastUpdated, v))
}

// LastUpdatedNEQ applies the NEQ predicate on the "last_updated" field.
func LastUpdatedNEQ(v time.Time) predicate.CognitiveState {
	return predicate.CognitiveState(sql.FieldNEQ(FieldLastUpdated, v))
}

// LastUpdatedIn applies the In predicate on the "last_updated" field.
func LastUpdatedIn(vs ...time.Time) predicate.CognitiveState {
	return predicate.CognitiveState(sql.FieldIn(FieldLastUpdated, vs...))
}

// LastUpdatedNotIn applies the NotIn predicate on the "last_updated" field.
func LastUpdatedNotIn(vs ...time.Time) predicate.CognitiveState {
	return predicate.CognitiveState(sql.FieldNotIn(FieldLastUpdated, vs...))
}

// LastUpdatedGT applies the GT predicate on the "last_updated" field.
func LastUpdatedGT(v time.Time) predicate.CognitiveState {
	return predicate.CognitiveState(sql.FieldGT(FieldLastUpdated, v))
}

// LastUpdatedGTE applies the GTE predicate on the "last_updated" field.
func LastUpdatedGTE(v time.Time) predicate.CognitiveState {
	return predicate.CognitiveState(sql.FieldGTE(FieldLastUpdated, v))
}

// LastUpdatedLT applies the LT predicate on the "last_updated" field.
func LastUpdatedLT(v time.Time) predicate.CognitiveState {
	return predicate.CognitiveState(sql.FieldLT(FieldLastUpdated, v))
}

// LastUpdatedLTE applies the LTE predicate on the "last_updated" field.
func LastUpdatedLTE(v time.Time) predicate.CognitiveState {
	return predicate.CognitiveState(sql.FieldLTE(FieldLastUpdated, v))
}

// SessionHistoryIsNil applies the IsNil predicate on the "session_history" field.
func SessionHistoryIsNil() predicate.CognitiveState {
	return predicate.CognitiveState(sql.FieldIsNull(FieldSessionHistory))
}

// SessionHistoryNotNil applies the NotNil predicate on the "session_history" field.
func SessionHistoryNotNil() predicate.CognitiveState {
	return predicate.CognitiveState(sql.FieldNotNull(FieldSessionHistory))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.CognitiveState) predicate.CognitiveState {
	return predicate.CognitiveState(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.CognitiveState) predicate.CognitiveState {
	return predicate.CognitiveState(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.CognitiveState) predicate.CognitiveState {
	return predicate.CognitiveState(sql.NotPredicates(p))
}
