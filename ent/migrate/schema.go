// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AnswerEventsColumns holds the columns for the "answer_events" table.
	AnswerEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "user_id", Type: field.TypeString},
		{Name: "infinitive", Type: field.TypeString},
		{Name: "tense", Type: field.TypeString},
		{Name: "person", Type: field.TypeString},
		{Name: "user_answer", Type: field.TypeString},
		{Name: "correct", Type: field.TypeBool},
		{Name: "match_type", Type: field.TypeString},
		{Name: "category", Type: field.TypeString, Nullable: true},
		{Name: "quality", Type: field.TypeInt},
		{Name: "latency_ms", Type: field.TypeInt64},
	}
	// AnswerEventsTable holds the schema information for the "answer_events" table.
	AnswerEventsTable = &schema.Table{
		Name:       "answer_events",
		Columns:    AnswerEventsColumns,
		PrimaryKey: []*schema.Column{AnswerEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "answerevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[1]},
			},
			{
				Name:    "answerevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[2]},
			},
			{
				Name:    "answerevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[3]},
			},
			{
				Name:    "answerevent_user_id",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[4]},
			},
			{
				Name:    "answerevent_correct",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[9]},
			},
			{
				Name:    "answerevent_category",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[11]},
			},
		},
	}
	// ReviewItemsColumns holds the columns for the "review_items" table.
	ReviewItemsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "infinitive", Type: field.TypeString},
		{Name: "tense", Type: field.TypeString},
		{Name: "person", Type: field.TypeString},
		{Name: "ease_factor", Type: field.TypeFloat64, Default: 2.5},
		{Name: "interval_days", Type: field.TypeInt, Default: 0},
		{Name: "repetition_count", Type: field.TypeInt, Default: 0},
		{Name: "due_date", Type: field.TypeTime},
		{Name: "last_quality", Type: field.TypeInt, Default: 0},
	}
	// ReviewItemsTable holds the schema information for the "review_items" table.
	ReviewItemsTable = &schema.Table{
		Name:       "review_items",
		Columns:    ReviewItemsColumns,
		PrimaryKey: []*schema.Column{ReviewItemsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "reviewitem_user_id_infinitive_tense_person",
				Unique:  true,
				Columns: []*schema.Column{ReviewItemsColumns[1], ReviewItemsColumns[2], ReviewItemsColumns[3], ReviewItemsColumns[4]},
			},
			{
				Name:    "reviewitem_user_id_due_date",
				Unique:  false,
				Columns: []*schema.Column{ReviewItemsColumns[1], ReviewItemsColumns[8]},
			},
		},
	}
	// SessionEventsColumns holds the columns for the "session_events" table.
	SessionEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "user_id", Type: field.TypeString},
		{Name: "kind", Type: field.TypeString},
		{Name: "answered", Type: field.TypeInt, Default: 0},
		{Name: "correct", Type: field.TypeInt, Default: 0},
		{Name: "duration_ms", Type: field.TypeInt64, Default: 0},
	}
	// SessionEventsTable holds the schema information for the "session_events" table.
	SessionEventsTable = &schema.Table{
		Name:       "session_events",
		Columns:    SessionEventsColumns,
		PrimaryKey: []*schema.Column{SessionEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "sessionevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[1]},
			},
			{
				Name:    "sessionevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[2]},
			},
			{
				Name:    "sessionevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[3]},
			},
			{
				Name:    "sessionevent_user_id_kind",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[4], SessionEventsColumns[5]},
			},
		},
	}
	// WindowSnapshotsColumns holds the columns for the "window_snapshots" table.
	WindowSnapshotsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeString, Unique: true},
		{Name: "size", Type: field.TypeInt},
		{Name: "outcomes", Type: field.TypeJSON},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// WindowSnapshotsTable holds the schema information for the "window_snapshots" table.
	WindowSnapshotsTable = &schema.Table{
		Name:       "window_snapshots",
		Columns:    WindowSnapshotsColumns,
		PrimaryKey: []*schema.Column{WindowSnapshotsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "windowsnapshot_updated_at",
				Unique:  false,
				Columns: []*schema.Column{WindowSnapshotsColumns[4]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AnswerEventsTable,
		ReviewItemsTable,
		SessionEventsTable,
		WindowSnapshotsTable,
	}
)

func init() {
}
