package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AnswerEvent records a single graded answer within a practice session.
type AnswerEvent struct {
	ent.Schema
}

func (AnswerEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AnswerEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("Links to SessionEvent"),
		field.String("user_id").
			NotEmpty(),
		field.String("infinitive").
			NotEmpty(),
		field.String("tense").
			NotEmpty(),
		field.String("person").
			NotEmpty(),
		field.String("user_answer").
			Comment("What the learner entered, unnormalized"),
		field.Bool("correct"),
		field.String("match_type").
			NotEmpty().
			Comment("exact, accent_insensitive, or mismatch"),
		field.String("category").
			Optional().
			Comment("Error category when the answer was wrong"),
		field.Int("quality").
			Comment("Derived 0-5 review quality"),
		field.Int64("latency_ms"),
	}
}

func (AnswerEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("user_id"),
		index.Fields("correct"),
		index.Fields("category"),
	}
}
