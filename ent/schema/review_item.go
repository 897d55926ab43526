package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ReviewItem holds the spaced repetition schedule for one conjugated form
// a user practices: (user, infinitive, tense, person) is the natural key.
type ReviewItem struct {
	ent.Schema
}

func (ReviewItem) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").
			NotEmpty(),
		field.String("infinitive").
			NotEmpty(),
		field.String("tense").
			NotEmpty().
			Comment("Subjunctive tense identifier, e.g. present_subjunctive"),
		field.String("person").
			NotEmpty().
			Comment("Grammatical person identifier, e.g. nosotros"),
		field.Float("ease_factor").
			Default(2.5),
		field.Int("interval_days").
			Default(0),
		field.Int("repetition_count").
			Default(0),
		field.Time("due_date"),
		field.Int("last_quality").
			Default(0),
	}
}

func (ReviewItem) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "infinitive", "tense", "person").
			Unique(),
		index.Fields("user_id", "due_date"),
	}
}
