package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ConceptRecord holds the last-known learning state for one
// (learner, concept) pair: mastery estimate, attempt counters, and the
// spaced-repetition schedule. Created on first attempt, mutated on every
// subsequent attempt, never deleted.
type ConceptRecord struct {
	ent.Schema
}

func (ConceptRecord) Fields() []ent.Field {
	return []ent.Field{
		field.String("learner_id").
			NotEmpty(),
		field.String("concept").
			NotEmpty(),
		field.Float("mastery_score").
			Comment("0-100 exponentially-weighted estimate"),
		field.Int("total_attempts").
			Default(0),
		field.Int("correct_attempts").
			Default(0),
		field.Float("ease_factor").
			Comment("SM-2 multiplier, floor 1.3"),
		field.Int("interval_days").
			Default(0).
			Comment("Current review interval"),
		field.Int("review_streak").
			Default(0).
			Comment("Consecutive successful reviews"),
		field.Time("next_review_at").
			Optional().
			Nillable().
			Comment("Nil until the first review is scheduled"),
		field.Time("last_seen_at"),
		field.Int("confidence_sum").
			Default(0).
			Comment("Sum of stated confidences, for per-concept averages"),
		field.Int("confidence_count").
			Default(0),
	}
}

func (ConceptRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("learner_id", "concept").
			Unique(),
		index.Fields("learner_id", "next_review_at"),
		index.Fields("learner_id", "mastery_score"),
	}
}
