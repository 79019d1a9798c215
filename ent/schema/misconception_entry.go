package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// MisconceptionEntry counts occurrences of a labeled wrong-answer pattern
// on one concept for one learner. Severity is derived at read time from
// the count and the concept's mastery, never stored.
type MisconceptionEntry struct {
	ent.Schema
}

func (MisconceptionEntry) Fields() []ent.Field {
	return []ent.Field{
		field.String("learner_id").
			NotEmpty(),
		field.String("concept").
			NotEmpty(),
		field.String("label").
			NotEmpty().
			Comment("Opaque pattern label supplied by the answer analyzer"),
		field.Int("occurrence_count").
			Default(1),
	}
}

func (MisconceptionEntry) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("learner_id", "concept", "label").
			Unique(),
		index.Fields("learner_id", "label"),
	}
}
