package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SessionRecord is the authoritative copy of one study session's state.
// At most one non-ended record exists per (learner, topic); resume always
// returns it instead of creating a duplicate. Ended sessions are retained
// for analytics.
type SessionRecord struct {
	ent.Schema
}

func (SessionRecord) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			Unique().
			NotEmpty().
			Comment("UUID assigned at creation"),
		field.String("learner_id").
			NotEmpty(),
		field.String("topic").
			NotEmpty(),
		field.String("phase").
			NotEmpty().
			Comment("notes, flashcards, quiz, milestone, or ended"),
		field.String("milestone_return").
			Default("").
			Comment("Phase to resume after a milestone, empty otherwise"),
		field.Int("cards_shown").
			Default(0),
		field.Int("streak").
			Default(0),
		field.Int("best_streak").
			Default(0),
		field.Int("total_xp").
			Default(0),
		field.Float("difficulty").
			Default(0.5).
			Comment("Target difficulty 0-1 for content requests"),
		field.Int64("version").
			Default(1).
			Comment("Optimistic-concurrency counter; saves must match"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now),
	}
}

func (SessionRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("learner_id", "topic"),
		index.Fields("phase"),
	}
}
