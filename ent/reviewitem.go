// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/bjpl/subjunctive-practice-sub006/ent/reviewitem"
)

// ReviewItem is the model entity for the ReviewItem schema.
type ReviewItem struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// Infinitive holds the value of the "infinitive" field.
	Infinitive string `json:"infinitive,omitempty"`
	// Subjunctive tense identifier, e.g. present_subjunctive
	Tense string `json:"tense,omitempty"`
	// Grammatical person identifier, e.g. nosotros
	Person string `json:"person,omitempty"`
	// EaseFactor holds the value of the "ease_factor" field.
	EaseFactor float64 `json:"ease_factor,omitempty"`
	// IntervalDays holds the value of the "interval_days" field.
	IntervalDays int `json:"interval_days,omitempty"`
	// RepetitionCount holds the value of the "repetition_count" field.
	RepetitionCount int `json:"repetition_count,omitempty"`
	// DueDate holds the value of the "due_date" field.
	DueDate time.Time `json:"due_date,omitempty"`
	// LastQuality holds the value of the "last_quality" field.
	LastQuality  int `json:"last_quality,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ReviewItem) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case reviewitem.FieldEaseFactor:
			values[i] = new(sql.NullFloat64)
		case reviewitem.FieldID, reviewitem.FieldIntervalDays, reviewitem.FieldRepetitionCount, reviewitem.FieldLastQuality:
			values[i] = new(sql.NullInt64)
		case reviewitem.FieldUserID, reviewitem.FieldInfinitive, reviewitem.FieldTense, reviewitem.FieldPerson:
			values[i] = new(sql.NullString)
		case reviewitem.FieldDueDate:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ReviewItem fields.
func (ri *ReviewItem) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case reviewitem.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			ri.ID = int(value.Int64)
		case reviewitem.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				ri.UserID = value.String
			}
		case reviewitem.FieldInfinitive:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field infinitive", values[i])
			} else if value.Valid {
				ri.Infinitive = value.String
			}
		case reviewitem.FieldTense:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field tense", values[i])
			} else if value.Valid {
				ri.Tense = value.String
			}
		case reviewitem.FieldPerson:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field person", values[i])
			} else if value.Valid {
				ri.Person = value.String
			}
		case reviewitem.FieldEaseFactor:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field ease_factor", values[i])
			} else if value.Valid {
				ri.EaseFactor = value.Float64
			}
		case reviewitem.FieldIntervalDays:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field interval_days", values[i])
			} else if value.Valid {
				ri.IntervalDays = int(value.Int64)
			}
		case reviewitem.FieldRepetitionCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field repetition_count", values[i])
			} else if value.Valid {
				ri.RepetitionCount = int(value.Int64)
			}
		case reviewitem.FieldDueDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field due_date", values[i])
			} else if value.Valid {
				ri.DueDate = value.Time
			}
		case reviewitem.FieldLastQuality:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field last_quality", values[i])
			} else if value.Valid {
				ri.LastQuality = int(value.Int64)
			}
		default:
			ri.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ReviewItem.
// This includes values selected through modifiers, order, etc.
func (ri *ReviewItem) Value(name string) (ent.Value, error) {
	return ri.selectValues.Get(name)
}

// Update returns a builder for updating this ReviewItem.
// Note that you need to call ReviewItem.Unwrap() before calling this method if this ReviewItem
// was returned from a transaction, and the transaction was committed or rolled back.
func (ri *ReviewItem) Update() *ReviewItemUpdateOne {
	return NewReviewItemClient(ri.config).UpdateOne(ri)
}

// Unwrap unwraps the ReviewItem entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (ri *ReviewItem) Unwrap() *ReviewItem {
	_tx, ok := ri.config.driver.(*txDriver)
	if !ok {
		panic("ent: ReviewItem is not a transactional entity")
	}
	ri.config.driver = _tx.drv
	return ri
}

// String implements the fmt.Stringer.
func (ri *ReviewItem) String() string {
	var builder strings.Builder
	builder.WriteString("ReviewItem(")
	builder.WriteString(fmt.Sprintf("id=%v, ", ri.ID))
	builder.WriteString("user_id=")
	builder.WriteString(ri.UserID)
	builder.WriteString(", ")
	builder.WriteString("infinitive=")
	builder.WriteString(ri.Infinitive)
	builder.WriteString(", ")
	builder.WriteString("tense=")
	builder.WriteString(ri.Tense)
	builder.WriteString(", ")
	builder.WriteString("person=")
	builder.WriteString(ri.Person)
	builder.WriteString(", ")
	builder.WriteString("ease_factor=")
	builder.WriteString(fmt.Sprintf("%v", ri.EaseFactor))
	builder.WriteString(", ")
	builder.WriteString("interval_days=")
	builder.WriteString(fmt.Sprintf("%v", ri.IntervalDays))
	builder.WriteString(", ")
	builder.WriteString("repetition_count=")
	builder.WriteString(fmt.Sprintf("%v", ri.RepetitionCount))
	builder.WriteString(", ")
	builder.WriteString("due_date=")
	builder.WriteString(ri.DueDate.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("last_quality=")
	builder.WriteString(fmt.Sprintf("%v", ri.LastQuality))
	builder.WriteByte(')')
	return builder.String()
}

// ReviewItems is a parsable slice of ReviewItem.
type ReviewItems []*ReviewItem
