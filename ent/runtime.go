// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/abhisek/studyloop/ent/conceptrecord"
	"github.com/abhisek/studyloop/ent/llmrequestevent"
	"github.com/abhisek/studyloop/ent/misconceptionentry"
	"github.com/abhisek/studyloop/ent/responseevent"
	"github.com/abhisek/studyloop/ent/schema"
	"github.com/abhisek/studyloop/ent/sessionrecord"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	conceptrecordFields := schema.ConceptRecord{}.Fields()
	_ = conceptrecordFields
	// conceptrecordDescLearnerID is the schema descriptor for learner_id field.
	conceptrecordDescLearnerID := conceptrecordFields[0].Descriptor()
	// conceptrecord.LearnerIDValidator is a validator for the "learner_id" field. It is called by the builders before save.
	conceptrecord.LearnerIDValidator = conceptrecordDescLearnerID.Validators[0].(func(string) error)
	// conceptrecordDescConcept is the schema descriptor for concept field.
	conceptrecordDescConcept := conceptrecordFields[1].Descriptor()
	// conceptrecord.ConceptValidator is a validator for the "concept" field. It is called by the builders before save.
	conceptrecord.ConceptValidator = conceptrecordDescConcept.Validators[0].(func(string) error)
	// conceptrecordDescTotalAttempts is the schema descriptor for total_attempts field.
	conceptrecordDescTotalAttempts := conceptrecordFields[3].Descriptor()
	// conceptrecord.DefaultTotalAttempts holds the default value on creation for the total_attempts field.
	conceptrecord.DefaultTotalAttempts = conceptrecordDescTotalAttempts.Default.(int)
	// conceptrecordDescCorrectAttempts is the schema descriptor for correct_attempts field.
	conceptrecordDescCorrectAttempts := conceptrecordFields[4].Descriptor()
	// conceptrecord.DefaultCorrectAttempts holds the default value on creation for the correct_attempts field.
	conceptrecord.DefaultCorrectAttempts = conceptrecordDescCorrectAttempts.Default.(int)
	// conceptrecordDescIntervalDays is the schema descriptor for interval_days field.
	conceptrecordDescIntervalDays := conceptrecordFields[6].Descriptor()
	// conceptrecord.DefaultIntervalDays holds the default value on creation for the interval_days field.
	conceptrecord.DefaultIntervalDays = conceptrecordDescIntervalDays.Default.(int)
	// conceptrecordDescReviewStreak is the schema descriptor for review_streak field.
	conceptrecordDescReviewStreak := conceptrecordFields[7].Descriptor()
	// conceptrecord.DefaultReviewStreak holds the default value on creation for the review_streak field.
	conceptrecord.DefaultReviewStreak = conceptrecordDescReviewStreak.Default.(int)
	// conceptrecordDescConfidenceSum is the schema descriptor for confidence_sum field.
	conceptrecordDescConfidenceSum := conceptrecordFields[10].Descriptor()
	// conceptrecord.DefaultConfidenceSum holds the default value on creation for the confidence_sum field.
	conceptrecord.DefaultConfidenceSum = conceptrecordDescConfidenceSum.Default.(int)
	// conceptrecordDescConfidenceCount is the schema descriptor for confidence_count field.
	conceptrecordDescConfidenceCount := conceptrecordFields[11].Descriptor()
	// conceptrecord.DefaultConfidenceCount holds the default value on creation for the confidence_count field.
	conceptrecord.DefaultConfidenceCount = conceptrecordDescConfidenceCount.Default.(int)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	misconceptionentryFields := schema.MisconceptionEntry{}.Fields()
	_ = misconceptionentryFields
	// misconceptionentryDescLearnerID is the schema descriptor for learner_id field.
	misconceptionentryDescLearnerID := misconceptionentryFields[0].Descriptor()
	// misconceptionentry.LearnerIDValidator is a validator for the "learner_id" field. It is called by the builders before save.
	misconceptionentry.LearnerIDValidator = misconceptionentryDescLearnerID.Validators[0].(func(string) error)
	// misconceptionentryDescConcept is the schema descriptor for concept field.
	misconceptionentryDescConcept := misconceptionentryFields[1].Descriptor()
	// misconceptionentry.ConceptValidator is a validator for the "concept" field. It is called by the builders before save.
	misconceptionentry.ConceptValidator = misconceptionentryDescConcept.Validators[0].(func(string) error)
	// misconceptionentryDescLabel is the schema descriptor for label field.
	misconceptionentryDescLabel := misconceptionentryFields[2].Descriptor()
	// misconceptionentry.LabelValidator is a validator for the "label" field. It is called by the builders before save.
	misconceptionentry.LabelValidator = misconceptionentryDescLabel.Validators[0].(func(string) error)
	// misconceptionentryDescOccurrenceCount is the schema descriptor for occurrence_count field.
	misconceptionentryDescOccurrenceCount := misconceptionentryFields[3].Descriptor()
	// misconceptionentry.DefaultOccurrenceCount holds the default value on creation for the occurrence_count field.
	misconceptionentry.DefaultOccurrenceCount = misconceptionentryDescOccurrenceCount.Default.(int)
	responseeventMixin := schema.ResponseEvent{}.Mixin()
	responseeventMixinFields0 := responseeventMixin[0].Fields()
	_ = responseeventMixinFields0
	responseeventFields := schema.ResponseEvent{}.Fields()
	_ = responseeventFields
	// responseeventDescTimestamp is the schema descriptor for timestamp field.
	responseeventDescTimestamp := responseeventMixinFields0[1].Descriptor()
	// responseevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	responseevent.DefaultTimestamp = responseeventDescTimestamp.Default.(func() time.Time)
	// responseeventDescLearnerID is the schema descriptor for learner_id field.
	responseeventDescLearnerID := responseeventFields[0].Descriptor()
	// responseevent.LearnerIDValidator is a validator for the "learner_id" field. It is called by the builders before save.
	responseevent.LearnerIDValidator = responseeventDescLearnerID.Validators[0].(func(string) error)
	// responseeventDescTopic is the schema descriptor for topic field.
	responseeventDescTopic := responseeventFields[1].Descriptor()
	// responseevent.TopicValidator is a validator for the "topic" field. It is called by the builders before save.
	responseevent.TopicValidator = responseeventDescTopic.Validators[0].(func(string) error)
	// responseeventDescSessionID is the schema descriptor for session_id field.
	responseeventDescSessionID := responseeventFields[2].Descriptor()
	// responseevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	responseevent.SessionIDValidator = responseeventDescSessionID.Validators[0].(func(string) error)
	// responseeventDescConcept is the schema descriptor for concept field.
	responseeventDescConcept := responseeventFields[3].Descriptor()
	// responseevent.ConceptValidator is a validator for the "concept" field. It is called by the builders before save.
	responseevent.ConceptValidator = responseeventDescConcept.Validators[0].(func(string) error)
	// responseeventDescResponseType is the schema descriptor for response_type field.
	responseeventDescResponseType := responseeventFields[4].Descriptor()
	// responseevent.ResponseTypeValidator is a validator for the "response_type" field. It is called by the builders before save.
	responseevent.ResponseTypeValidator = responseeventDescResponseType.Validators[0].(func(string) error)
	// responseeventDescMisconceptionLabel is the schema descriptor for misconception_label field.
	responseeventDescMisconceptionLabel := responseeventFields[8].Descriptor()
	// responseevent.DefaultMisconceptionLabel holds the default value on creation for the misconception_label field.
	responseevent.DefaultMisconceptionLabel = responseeventDescMisconceptionLabel.Default.(string)
	sessionrecordFields := schema.SessionRecord{}.Fields()
	_ = sessionrecordFields
	// sessionrecordDescSessionID is the schema descriptor for session_id field.
	sessionrecordDescSessionID := sessionrecordFields[0].Descriptor()
	// sessionrecord.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	sessionrecord.SessionIDValidator = sessionrecordDescSessionID.Validators[0].(func(string) error)
	// sessionrecordDescLearnerID is the schema descriptor for learner_id field.
	sessionrecordDescLearnerID := sessionrecordFields[1].Descriptor()
	// sessionrecord.LearnerIDValidator is a validator for the "learner_id" field. It is called by the builders before save.
	sessionrecord.LearnerIDValidator = sessionrecordDescLearnerID.Validators[0].(func(string) error)
	// sessionrecordDescTopic is the schema descriptor for topic field.
	sessionrecordDescTopic := sessionrecordFields[2].Descriptor()
	// sessionrecord.TopicValidator is a validator for the "topic" field. It is called by the builders before save.
	sessionrecord.TopicValidator = sessionrecordDescTopic.Validators[0].(func(string) error)
	// sessionrecordDescPhase is the schema descriptor for phase field.
	sessionrecordDescPhase := sessionrecordFields[3].Descriptor()
	// sessionrecord.PhaseValidator is a validator for the "phase" field. It is called by the builders before save.
	sessionrecord.PhaseValidator = sessionrecordDescPhase.Validators[0].(func(string) error)
	// sessionrecordDescMilestoneReturn is the schema descriptor for milestone_return field.
	sessionrecordDescMilestoneReturn := sessionrecordFields[4].Descriptor()
	// sessionrecord.DefaultMilestoneReturn holds the default value on creation for the milestone_return field.
	sessionrecord.DefaultMilestoneReturn = sessionrecordDescMilestoneReturn.Default.(string)
	// sessionrecordDescCardsShown is the schema descriptor for cards_shown field.
	sessionrecordDescCardsShown := sessionrecordFields[5].Descriptor()
	// sessionrecord.DefaultCardsShown holds the default value on creation for the cards_shown field.
	sessionrecord.DefaultCardsShown = sessionrecordDescCardsShown.Default.(int)
	// sessionrecordDescStreak is the schema descriptor for streak field.
	sessionrecordDescStreak := sessionrecordFields[6].Descriptor()
	// sessionrecord.DefaultStreak holds the default value on creation for the streak field.
	sessionrecord.DefaultStreak = sessionrecordDescStreak.Default.(int)
	// sessionrecordDescBestStreak is the schema descriptor for best_streak field.
	sessionrecordDescBestStreak := sessionrecordFields[7].Descriptor()
	// sessionrecord.DefaultBestStreak holds the default value on creation for the best_streak field.
	sessionrecord.DefaultBestStreak = sessionrecordDescBestStreak.Default.(int)
	// sessionrecordDescTotalXp is the schema descriptor for total_xp field.
	sessionrecordDescTotalXp := sessionrecordFields[8].Descriptor()
	// sessionrecord.DefaultTotalXp holds the default value on creation for the total_xp field.
	sessionrecord.DefaultTotalXp = sessionrecordDescTotalXp.Default.(int)
	// sessionrecordDescDifficulty is the schema descriptor for difficulty field.
	sessionrecordDescDifficulty := sessionrecordFields[9].Descriptor()
	// sessionrecord.DefaultDifficulty holds the default value on creation for the difficulty field.
	sessionrecord.DefaultDifficulty = sessionrecordDescDifficulty.Default.(float64)
	// sessionrecordDescVersion is the schema descriptor for version field.
	sessionrecordDescVersion := sessionrecordFields[10].Descriptor()
	// sessionrecord.DefaultVersion holds the default value on creation for the version field.
	sessionrecord.DefaultVersion = sessionrecordDescVersion.Default.(int64)
	// sessionrecordDescCreatedAt is the schema descriptor for created_at field.
	sessionrecordDescCreatedAt := sessionrecordFields[11].Descriptor()
	// sessionrecord.DefaultCreatedAt holds the default value on creation for the created_at field.
	sessionrecord.DefaultCreatedAt = sessionrecordDescCreatedAt.Default.(func() time.Time)
	// sessionrecordDescUpdatedAt is the schema descriptor for updated_at field.
	sessionrecordDescUpdatedAt := sessionrecordFields[12].Descriptor()
	// sessionrecord.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	sessionrecord.DefaultUpdatedAt = sessionrecordDescUpdatedAt.Default.(func() time.Time)
}
