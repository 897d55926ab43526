// Code generated by ent, DO NOT EDIT.

package reviewitem

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the reviewitem type in the database.
	Label = "review_item"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldInfinitive holds the string denoting the infinitive field in the database.
	FieldInfinitive = "infinitive"
	// FieldTense holds the string denoting the tense field in the database.
	FieldTense = "tense"
	// FieldPerson holds the string denoting the person field in the database.
	FieldPerson = "person"
	// FieldEaseFactor holds the string denoting the ease_factor field in the database.
	FieldEaseFactor = "ease_factor"
	// FieldIntervalDays holds the string denoting the interval_days field in the database.
	FieldIntervalDays = "interval_days"
	// FieldRepetitionCount holds the string denoting the repetition_count field in the database.
	FieldRepetitionCount = "repetition_count"
	// FieldDueDate holds the string denoting the due_date field in the database.
	FieldDueDate = "due_date"
	// FieldLastQuality holds the string denoting the last_quality field in the database.
	FieldLastQuality = "last_quality"
	// Table holds the table name of the reviewitem in the database.
	Table = "review_items"
)

// Columns holds all SQL columns for reviewitem fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldInfinitive,
	FieldTense,
	FieldPerson,
	FieldEaseFactor,
	FieldIntervalDays,
	FieldRepetitionCount,
	FieldDueDate,
	FieldLastQuality,
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
	// InfinitiveValidator is a validator for the "infinitive" field. It is called by the builders before save.
	InfinitiveValidator func(string) error
	// TenseValidator is a validator for the "tense" field. It is called by the builders before save.
	TenseValidator func(string) error
	// PersonValidator is a validator for the "person" field. It is called by the builders before save.
	PersonValidator func(string) error
	// DefaultEaseFactor holds the default value on creation for the "ease_factor" field.
	DefaultEaseFactor float64
	// DefaultIntervalDays holds the default value on creation for the "interval_days" field.
	DefaultIntervalDays int
	// DefaultRepetitionCount holds the default value on creation for the "repetition_count" field.
	DefaultRepetitionCount int
	// DefaultLastQuality holds the default value on creation for the "last_quality" field.
	DefaultLastQuality int
)

// OrderOption defines the ordering options for the ReviewItem queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByInfinitive orders the results by the infinitive field.
func ByInfinitive(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInfinitive, opts...).ToFunc()
}

// ByTense orders the results by the tense field.
func ByTense(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTense, opts...).ToFunc()
}

// ByPerson orders the results by the person field.
func ByPerson(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPerson, opts...).ToFunc()
}

// ByEaseFactor orders the results by the ease_factor field.
func ByEaseFactor(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEaseFactor, opts...).ToFunc()
}

// ByIntervalDays orders the results by the interval_days field.
func ByIntervalDays(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIntervalDays, opts...).ToFunc()
}

// ByRepetitionCount orders the results by the repetition_count field.
func ByRepetitionCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRepetitionCount, opts...).ToFunc()
}

// ByDueDate orders the results by the due_date field.
func ByDueDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDueDate, opts...).ToFunc()
}

// ByLastQuality orders the results by the last_quality field.
func ByLastQuality(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastQuality, opts...).ToFunc()
}
