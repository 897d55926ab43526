package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// OutcomeRecord is the JSON shape of one stored window outcome.
type OutcomeRecord struct {
	Correct  bool      `json:"correct"`
	Category string    `json:"category,omitempty"`
	At       time.Time `json:"at"`
}

// WindowSnapshot persists a user's rolling performance window between
// sessions. One row per user, overwritten at session end; the outcome
// list is small and bounded, so JSON is simpler than a row per outcome.
type WindowSnapshot struct {
	ent.Schema
}

func (WindowSnapshot) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").
			NotEmpty().
			Unique(),
		field.Int("size").
			Comment("Window capacity the outcomes were recorded under"),
		field.JSON("outcomes", []OutcomeRecord{}).
			Comment("Recent outcomes, oldest first"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

func (WindowSnapshot) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("updated_at"),
	}
}
