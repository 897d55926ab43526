// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/bjpl/subjunctive-practice-sub006/ent/schema"
	"github.com/bjpl/subjunctive-practice-sub006/ent/windowsnapshot"
)

// WindowSnapshot is the model entity for the WindowSnapshot schema.
type WindowSnapshot struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// Window capacity the outcomes were recorded under
	Size int `json:"size,omitempty"`
	// Recent outcomes, oldest first
	Outcomes []schema.OutcomeRecord `json:"outcomes,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*WindowSnapshot) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case windowsnapshot.FieldOutcomes:
			values[i] = new([]byte)
		case windowsnapshot.FieldID, windowsnapshot.FieldSize:
			values[i] = new(sql.NullInt64)
		case windowsnapshot.FieldUserID:
			values[i] = new(sql.NullString)
		case windowsnapshot.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the WindowSnapshot fields.
func (ws *WindowSnapshot) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case windowsnapshot.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			ws.ID = int(value.Int64)
		case windowsnapshot.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				ws.UserID = value.String
			}
		case windowsnapshot.FieldSize:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field size", values[i])
			} else if value.Valid {
				ws.Size = int(value.Int64)
			}
		case windowsnapshot.FieldOutcomes:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field outcomes", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &ws.Outcomes); err != nil {
					return fmt.Errorf("unmarshal field outcomes: %w", err)
				}
			}
		case windowsnapshot.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				ws.UpdatedAt = value.Time
			}
		default:
			ws.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the WindowSnapshot.
// This includes values selected through modifiers, order, etc.
func (ws *WindowSnapshot) Value(name string) (ent.Value, error) {
	return ws.selectValues.Get(name)
}

// Update returns a builder for updating this WindowSnapshot.
// Note that you need to call WindowSnapshot.Unwrap() before calling this method if this WindowSnapshot
// was returned from a transaction, and the transaction was committed or rolled back.
func (ws *WindowSnapshot) Update() *WindowSnapshotUpdateOne {
	return NewWindowSnapshotClient(ws.config).UpdateOne(ws)
}

// Unwrap unwraps the WindowSnapshot entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (ws *WindowSnapshot) Unwrap() *WindowSnapshot {
	_tx, ok := ws.config.driver.(*txDriver)
	if !ok {
		panic("ent: WindowSnapshot is not a transactional entity")
	}
	ws.config.driver = _tx.drv
	return ws
}

// String implements the fmt.Stringer.
func (ws *WindowSnapshot) String() string {
	var builder strings.Builder
	builder.WriteString("WindowSnapshot(")
	builder.WriteString(fmt.Sprintf("id=%v, ", ws.ID))
	builder.WriteString("user_id=")
	builder.WriteString(ws.UserID)
	builder.WriteString(", ")
	builder.WriteString("size=")
	builder.WriteString(fmt.Sprintf("%v", ws.Size))
	builder.WriteString(", ")
	builder.WriteString("outcomes=")
	builder.WriteString(fmt.Sprintf("%v", ws.Outcomes))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(ws.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// WindowSnapshots is a parsable slice of WindowSnapshot.
type WindowSnapshots []*WindowSnapshot
