// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ConceptRecordsColumns holds the columns for the "concept_records" table.
	ConceptRecordsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "learner_id", Type: field.TypeString},
		{Name: "concept", Type: field.TypeString},
		{Name: "mastery_score", Type: field.TypeFloat64},
		{Name: "total_attempts", Type: field.TypeInt, Default: 0},
		{Name: "correct_attempts", Type: field.TypeInt, Default: 0},
		{Name: "ease_factor", Type: field.TypeFloat64},
		{Name: "interval_days", Type: field.TypeInt, Default: 0},
		{Name: "review_streak", Type: field.TypeInt, Default: 0},
		{Name: "next_review_at", Type: field.TypeTime, Nullable: true},
		{Name: "last_seen_at", Type: field.TypeTime},
		{Name: "confidence_sum", Type: field.TypeInt, Default: 0},
		{Name: "confidence_count", Type: field.TypeInt, Default: 0},
	}
	// ConceptRecordsTable holds the schema information for the "concept_records" table.
	ConceptRecordsTable = &schema.Table{
		Name:       "concept_records",
		Columns:    ConceptRecordsColumns,
		PrimaryKey: []*schema.Column{ConceptRecordsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "conceptrecord_learner_id_concept",
				Unique:  true,
				Columns: []*schema.Column{ConceptRecordsColumns[1], ConceptRecordsColumns[2]},
			},
			{
				Name:    "conceptrecord_learner_id_next_review_at",
				Unique:  false,
				Columns: []*schema.Column{ConceptRecordsColumns[1], ConceptRecordsColumns[9]},
			},
			{
				Name:    "conceptrecord_learner_id_mastery_score",
				Unique:  false,
				Columns: []*schema.Column{ConceptRecordsColumns[1], ConceptRecordsColumns[3]},
			},
		},
	}
	// LlmRequestEventsColumns holds the columns for the "llm_request_events" table.
	LlmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
	}
	// LlmRequestEventsTable holds the schema information for the "llm_request_events" table.
	LlmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LlmRequestEventsColumns,
		PrimaryKey: []*schema.Column{LlmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequestevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[1]},
			},
			{
				Name:    "llmrequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[2]},
			},
			{
				Name:    "llmrequestevent_provider",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[3]},
			},
			{
				Name:    "llmrequestevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[5]},
			},
			{
				Name:    "llmrequestevent_success",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[9]},
			},
		},
	}
	// MisconceptionEntriesColumns holds the columns for the "misconception_entries" table.
	MisconceptionEntriesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "learner_id", Type: field.TypeString},
		{Name: "concept", Type: field.TypeString},
		{Name: "label", Type: field.TypeString},
		{Name: "occurrence_count", Type: field.TypeInt, Default: 1},
	}
	// MisconceptionEntriesTable holds the schema information for the "misconception_entries" table.
	MisconceptionEntriesTable = &schema.Table{
		Name:       "misconception_entries",
		Columns:    MisconceptionEntriesColumns,
		PrimaryKey: []*schema.Column{MisconceptionEntriesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "misconceptionentry_learner_id_concept_label",
				Unique:  true,
				Columns: []*schema.Column{MisconceptionEntriesColumns[1], MisconceptionEntriesColumns[2], MisconceptionEntriesColumns[3]},
			},
			{
				Name:    "misconceptionentry_learner_id_label",
				Unique:  false,
				Columns: []*schema.Column{MisconceptionEntriesColumns[1], MisconceptionEntriesColumns[3]},
			},
		},
	}
	// ResponseEventsColumns holds the columns for the "response_events" table.
	ResponseEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "learner_id", Type: field.TypeString},
		{Name: "topic", Type: field.TypeString},
		{Name: "session_id", Type: field.TypeString},
		{Name: "concept", Type: field.TypeString},
		{Name: "response_type", Type: field.TypeString},
		{Name: "correct", Type: field.TypeBool},
		{Name: "confidence", Type: field.TypeInt, Nullable: true},
		{Name: "rating", Type: field.TypeInt, Nullable: true},
		{Name: "misconception_label", Type: field.TypeString, Default: ""},
	}
	// ResponseEventsTable holds the schema information for the "response_events" table.
	ResponseEventsTable = &schema.Table{
		Name:       "response_events",
		Columns:    ResponseEventsColumns,
		PrimaryKey: []*schema.Column{ResponseEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "responseevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{ResponseEventsColumns[1]},
			},
			{
				Name:    "responseevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{ResponseEventsColumns[2]},
			},
			{
				Name:    "responseevent_learner_id_topic",
				Unique:  false,
				Columns: []*schema.Column{ResponseEventsColumns[3], ResponseEventsColumns[4]},
			},
			{
				Name:    "responseevent_learner_id_concept",
				Unique:  false,
				Columns: []*schema.Column{ResponseEventsColumns[3], ResponseEventsColumns[6]},
			},
			{
				Name:    "responseevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{ResponseEventsColumns[5]},
			},
		},
	}
	// SessionRecordsColumns holds the columns for the "session_records" table.
	SessionRecordsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "session_id", Type: field.TypeString, Unique: true},
		{Name: "learner_id", Type: field.TypeString},
		{Name: "topic", Type: field.TypeString},
		{Name: "phase", Type: field.TypeString},
		{Name: "milestone_return", Type: field.TypeString, Default: ""},
		{Name: "cards_shown", Type: field.TypeInt, Default: 0},
		{Name: "streak", Type: field.TypeInt, Default: 0},
		{Name: "best_streak", Type: field.TypeInt, Default: 0},
		{Name: "total_xp", Type: field.TypeInt, Default: 0},
		{Name: "difficulty", Type: field.TypeFloat64, Default: 0.5},
		{Name: "version", Type: field.TypeInt64, Default: 1},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// SessionRecordsTable holds the schema information for the "session_records" table.
	SessionRecordsTable = &schema.Table{
		Name:       "session_records",
		Columns:    SessionRecordsColumns,
		PrimaryKey: []*schema.Column{SessionRecordsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "sessionrecord_learner_id_topic",
				Unique:  false,
				Columns: []*schema.Column{SessionRecordsColumns[2], SessionRecordsColumns[3]},
			},
			{
				Name:    "sessionrecord_phase",
				Unique:  false,
				Columns: []*schema.Column{SessionRecordsColumns[4]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ConceptRecordsTable,
		LlmRequestEventsTable,
		MisconceptionEntriesTable,
		ResponseEventsTable,
		SessionRecordsTable,
	}
)

func init() {
}
