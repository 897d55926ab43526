// Code generated by ent, DO NOT EDIT.

package reviewitem

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/bjpl/subjunctive-practice-sub006/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldLTE(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldEQ(FieldUserID, v))
}

// Infinitive applies equality check predicate on the "infinitive" field. It's identical to InfinitiveEQ.
func Infinitive(v string) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldEQ(FieldInfinitive, v))
}

// Tense applies equality check predicate on the "tense" field. It's identical to TenseEQ.
func Tense(v string) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldEQ(FieldTense, v))
}

// Person applies equality check predicate on the "person" field. It's identical to PersonEQ.
func Person(v string) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldEQ(FieldPerson, v))
}

// EaseFactor applies equality check predicate on the "ease_factor" field. It's identical to EaseFactorEQ.
func EaseFactor(v float64) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldEQ(FieldEaseFactor, v))
}

// IntervalDays applies equality check predicate on the "interval_days" field. It's identical to IntervalDaysEQ.
func IntervalDays(v int) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldEQ(FieldIntervalDays, v))
}

// RepetitionCount applies equality check predicate on the "repetition_count" field. It's identical to RepetitionCountEQ.
func RepetitionCount(v int) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldEQ(FieldRepetitionCount, v))
}

// DueDate applies equality check predicate on the "due_date" field. It's identical to DueDateEQ.
func DueDate(v time.Time) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldEQ(FieldDueDate, v))
}

// LastQuality applies equality check predicate on the "last_quality" field. It's identical to LastQualityEQ.
func LastQuality(v int) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldEQ(FieldLastQuality, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldContainsFold(FieldUserID, v))
}

// InfinitiveEQ applies the EQ predicate on the "infinitive" field.
func InfinitiveEQ(v string) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldEQ(FieldInfinitive, v))
}

// InfinitiveNEQ applies the NEQ predicate on the "infinitive" field.
func InfinitiveNEQ(v string) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldNEQ(FieldInfinitive, v))
}

// InfinitiveIn applies the In predicate on the "infinitive" field.
func InfinitiveIn(vs ...string) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldIn(FieldInfinitive, vs...))
}

// InfinitiveNotIn applies the NotIn predicate on the "infinitive" field.
func InfinitiveNotIn(vs ...string) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldNotIn(FieldInfinitive, vs...))
}

// InfinitiveGT applies the GT predicate on the "infinitive" field.
func InfinitiveGT(v string) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldGT(FieldInfinitive, v))
}

// InfinitiveGTE applies the GTE predicate on the "infinitive" field.
func InfinitiveGTE(v string) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldGTE(FieldInfinitive, v))
}

// InfinitiveLT applies the LT predicate on the "infinitive" field.
func InfinitiveLT(v string) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldLT(FieldInfinitive, v))
}

// InfinitiveLTE applies the LTE predicate on the "infinitive" field.
func InfinitiveLTE(v string) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldLTE(FieldInfinitive, v))
}

// InfinitiveContains applies the Contains predicate on the "infinitive" field.
func InfinitiveContains(v string) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldContains(FieldInfinitive, v))
}

// InfinitiveHasPrefix applies the HasPrefix predicate on the "infinitive" field.
func InfinitiveHasPrefix(v string) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldHasPrefix(FieldInfinitive, v))
}

// InfinitiveHasSuffix applies the HasSuffix predicate on the "infinitive" field.
func InfinitiveHasSuffix(v string) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldHasSuffix(FieldInfinitive, v))
}

// InfinitiveEqualFold applies the EqualFold predicate on the "infinitive" field.
func InfinitiveEqualFold(v string) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldEqualFold(FieldInfinitive, v))
}

// InfinitiveContainsFold applies the ContainsFold predicate on the "infinitive" field.
func InfinitiveContainsFold(v string) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldContainsFold(FieldInfinitive, v))
}

// TenseEQ applies the EQ predicate on the "tense" field.
func TenseEQ(v string) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldEQ(FieldTense, v))
}

// TenseNEQ applies the NEQ predicate on the "tense" field.
func TenseNEQ(v string) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldNEQ(FieldTense, v))
}

// TenseIn applies the In predicate on the "tense" field.
func TenseIn(vs ...string) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldIn(FieldTense, vs...))
}

// TenseNotIn applies the NotIn predicate on the "tense" field.
func TenseNotIn(vs ...string) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldNotIn(FieldTense, vs...))
}

// TenseGT applies the GT predicate on the "tense" field.
func TenseGT(v string) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldGT(FieldTense, v))
}

// TenseGTE applies the GTE predicate on the "tense" field.
func TenseGTE(v string) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldGTE(FieldTense, v))
}

// TenseLT applies the LT predicate on the "tense" field.
func TenseLT(v string) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldLT(FieldTense, v))
}

// TenseLTE applies the LTE predicate on the "tense" field.
func TenseLTE(v string) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldLTE(FieldTense, v))
}

// TenseContains applies the Contains predicate on the "tense" field.
func TenseContains(v string) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldContains(FieldTense, v))
}

// TenseHasPrefix applies the HasPrefix predicate on the "tense" field.
func TenseHasPrefix(v string) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldHasPrefix(FieldTense, v))
}

// TenseHasSuffix applies the HasSuffix predicate on the "tense" field.
func TenseHasSuffix(v string) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldHasSuffix(FieldTense, v))
}

// TenseEqualFold applies the EqualFold predicate on the "tense" field.
func TenseEqualFold(v string) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldEqualFold(FieldTense, v))
}

// TenseContainsFold applies the ContainsFold predicate on the "tense" field.
func TenseContainsFold(v string) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldContainsFold(FieldTense, v))
}

// PersonEQ applies the EQ predicate on the "person" field.
func PersonEQ(v string) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldEQ(FieldPerson, v))
}

// PersonNEQ applies the NEQ predicate on the "person" field.
func PersonNEQ(v string) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldNEQ(FieldPerson, v))
}

// PersonIn applies the In predicate on the "person" field.
func PersonIn(vs ...string) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldIn(FieldPerson, vs...))
}

// PersonNotIn applies the NotIn predicate on the "person" field.
func PersonNotIn(vs ...string) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldNotIn(FieldPerson, vs...))
}

// PersonGT applies the GT predicate on the "person" field.
func PersonGT(v string) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldGT(FieldPerson, v))
}

// PersonGTE applies the GTE predicate on the "person" field.
func PersonGTE(v string) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldGTE(FieldPerson, v))
}

// PersonLT applies the LT predicate on the "person" field.
func PersonLT(v string) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldLT(FieldPerson, v))
}

// PersonLTE applies the LTE predicate on the "person" field.
func PersonLTE(v string) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldLTE(FieldPerson, v))
}

// PersonContains applies the Contains predicate on the "person" field.
func PersonContains(v string) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldContains(FieldPerson, v))
}

// PersonHasPrefix applies the HasPrefix predicate on the "person" field.
func PersonHasPrefix(v string) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldHasPrefix(FieldPerson, v))
}

// PersonHasSuffix applies the HasSuffix predicate on the "person" field.
func PersonHasSuffix(v string) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldHasSuffix(FieldPerson, v))
}

// PersonEqualFold applies the EqualFold predicate on the "person" field.
func PersonEqualFold(v string) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldEqualFold(FieldPerson, v))
}

// PersonContainsFold applies the ContainsFold predicate on the "person" field.
func PersonContainsFold(v string) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldContainsFold(FieldPerson, v))
}

// EaseFactorEQ applies the EQ predicate on the "ease_factor" field.
func EaseFactorEQ(v float64) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldEQ(FieldEaseFactor, v))
}

// EaseFactorNEQ applies the NEQ predicate on the "ease_factor" field.
func EaseFactorNEQ(v float64) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldNEQ(FieldEaseFactor, v))
}

// EaseFactorIn applies the In predicate on the "ease_factor" field.
func EaseFactorIn(vs ...float64) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldIn(FieldEaseFactor, vs...))
}

// EaseFactorNotIn applies the NotIn predicate on the "ease_factor" field.
func EaseFactorNotIn(vs ...float64) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldNotIn(FieldEaseFactor, vs...))
}

// EaseFactorGT applies the GT predicate on the "ease_factor" field.
func EaseFactorGT(v float64) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldGT(FieldEaseFactor, v))
}

// EaseFactorGTE applies the GTE predicate on the "ease_factor" field.
func EaseFactorGTE(v float64) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldGTE(FieldEaseFactor, v))
}

// EaseFactorLT applies the LT predicate on the "ease_factor" field.
func EaseFactorLT(v float64) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldLT(FieldEaseFactor, v))
}

// EaseFactorLTE applies the LTE predicate on the "ease_factor" field.
func EaseFactorLTE(v float64) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldLTE(FieldEaseFactor, v))
}

// IntervalDaysEQ applies the EQ predicate on the "interval_days" field.
func IntervalDaysEQ(v int) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldEQ(FieldIntervalDays, v))
}

// IntervalDaysNEQ applies the NEQ predicate on the "interval_days" field.
func IntervalDaysNEQ(v int) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldNEQ(FieldIntervalDays, v))
}

// IntervalDaysIn applies the In predicate on the "interval_days" field.
func IntervalDaysIn(vs ...int) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldIn(FieldIntervalDays, vs...))
}

// IntervalDaysNotIn applies the NotIn predicate on the "interval_days" field.
func IntervalDaysNotIn(vs ...int) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldNotIn(FieldIntervalDays, vs...))
}

// IntervalDaysGT applies the GT predicate on the "interval_days" field.
func IntervalDaysGT(v int) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldGT(FieldIntervalDays, v))
}

// IntervalDaysGTE applies the GTE predicate on the "interval_days" field.
func IntervalDaysGTE(v int) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldGTE(FieldIntervalDays, v))
}

// IntervalDaysLT applies the LT predicate on the "interval_days" field.
func IntervalDaysLT(v int) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldLT(FieldIntervalDays, v))
}

// IntervalDaysLTE applies the LTE predicate on the "interval_days" field.
func IntervalDaysLTE(v int) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldLTE(FieldIntervalDays, v))
}

// RepetitionCountEQ applies the EQ predicate on the "repetition_count" field.
func RepetitionCountEQ(v int) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldEQ(FieldRepetitionCount, v))
}

// RepetitionCountNEQ applies the NEQ predicate on the "repetition_count" field.
func RepetitionCountNEQ(v int) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldNEQ(FieldRepetitionCount, v))
}

// RepetitionCountIn applies the In predicate on the "repetition_count" field.
func RepetitionCountIn(vs ...int) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldIn(FieldRepetitionCount, vs...))
}

// RepetitionCountNotIn applies the NotIn predicate on the "repetition_count" field.
func RepetitionCountNotIn(vs ...int) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldNotIn(FieldRepetitionCount, vs...))
}

// RepetitionCountGT applies the GT predicate on the "repetition_count" field.
func RepetitionCountGT(v int) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldGT(FieldRepetitionCount, v))
}

// RepetitionCountGTE applies the GTE predicate on the "repetition_count" field.
func RepetitionCountGTE(v int) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldGTE(FieldRepetitionCount, v))
}

// RepetitionCountLT applies the LT predicate on the "repetition_count" field.
func RepetitionCountLT(v int) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldLT(FieldRepetitionCount, v))
}

// RepetitionCountLTE applies the LTE predicate on the "repetition_count" field.
func RepetitionCountLTE(v int) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldLTE(FieldRepetitionCount, v))
}

// DueDateEQ applies the EQ predicate on the "due_date" field.
func DueDateEQ(v time.Time) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldEQ(FieldDueDate, v))
}

// DueDateNEQ applies the NEQ predicate on the "due_date" field.
func DueDateNEQ(v time.Time) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldNEQ(FieldDueDate, v))
}

// DueDateIn applies the In predicate on the "due_date" field.
func DueDateIn(vs ...time.Time) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldIn(FieldDueDate, vs...))
}

// DueDateNotIn applies the NotIn predicate on the "due_date" field.
func DueDateNotIn(vs ...time.Time) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldNotIn(FieldDueDate, vs...))
}

// DueDateGT applies the GT predicate on the "due_date" field.
func DueDateGT(v time.Time) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldGT(FieldDueDate, v))
}

// DueDateGTE applies the GTE predicate on the "due_date" field.
func DueDateGTE(v time.Time) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldGTE(FieldDueDate, v))
}

// DueDateLT applies the LT predicate on the "due_date" field.
func DueDateLT(v time.Time) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldLT(FieldDueDate, v))
}

// DueDateLTE applies the LTE predicate on the "due_date" field.
func DueDateLTE(v time.Time) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldLTE(FieldDueDate, v))
}

// LastQualityEQ applies the EQ predicate on the "last_quality" field.
func LastQualityEQ(v int) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldEQ(FieldLastQuality, v))
}

// LastQualityNEQ applies the NEQ predicate on the "last_quality" field.
func LastQualityNEQ(v int) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldNEQ(FieldLastQuality, v))
}

// LastQualityIn applies the In predicate on the "last_quality" field.
func LastQualityIn(vs ...int) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldIn(FieldLastQuality, vs...))
}

// LastQualityNotIn applies the NotIn predicate on the "last_quality" field.
func LastQualityNotIn(vs ...int) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldNotIn(FieldLastQuality, vs...))
}

// LastQualityGT applies the GT predicate on the "last_quality" field.
func LastQualityGT(v int) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldGT(FieldLastQuality, v))
}

// LastQualityGTE applies the GTE predicate on the "last_quality" field.
func LastQualityGTE(v int) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldGTE(FieldLastQuality, v))
}

// LastQualityLT applies the LT predicate on the "last_quality" field.
func LastQualityLT(v int) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldLT(FieldLastQuality, v))
}

// LastQualityLTE applies the LTE predicate on the "last_quality" field.
func LastQualityLTE(v int) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldLTE(FieldLastQuality, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ReviewItem) predicate.ReviewItem {
	return predicate.ReviewItem(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ReviewItem) predicate.ReviewItem {
	return predicate.ReviewItem(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ReviewItem) predicate.ReviewItem {
	return predicate.ReviewItem(sql.NotPredicates(p))
}
