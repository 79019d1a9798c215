package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ResponseEvent records a single learner action: a quiz answer or a
// flashcard rating. The event log is append-only and is the sole input
// to mastery, scheduling, calibration, and misconception scoring.
type ResponseEvent struct {
	ent.Schema
}

func (ResponseEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (ResponseEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("learner_id").
			NotEmpty().
			Comment("Learner this response belongs to"),
		field.String("topic").
			NotEmpty().
			Comment("Topic the session was studying"),
		field.String("session_id").
			NotEmpty().
			Comment("Links to SessionRecord"),
		field.String("concept").
			NotEmpty().
			Comment("Concept the item tested"),
		field.String("response_type").
			NotEmpty().
			Comment("quiz or flashcard"),
		field.Bool("correct").
			Comment("Whether the answer was correct (rating >= 3 for flashcards)"),
		field.Int("confidence").
			Optional().
			Nillable().
			Comment("Stated confidence 0-100, quiz only"),
		field.Int("rating").
			Optional().
			Nillable().
			Comment("Flashcard recall quality 0-5"),
		field.String("misconception_label").
			Default("").
			Comment("Opaque wrong-answer pattern label, empty if none"),
	}
}

func (ResponseEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("learner_id", "topic"),
		index.Fields("learner_id", "concept"),
		index.Fields("session_id"),
	}
}
