package store

import (
	"context"
	"errors"
	"time"
)

// ErrSessionNotFound is returned when no resumable session exists for a
// (learner, topic) pair. Callers start a fresh session on this error and
// only on this error; ambiguous failures must not fork a duplicate.
var ErrSessionNotFound = errors.New("session not found")

// ErrStaleSession is returned when a save races with a concurrent
// modification of the same session. Callers must reload before retrying.
var ErrStaleSession = errors.New("session modified concurrently")

// ResponseEventData is one learner action: a quiz answer or flashcard rating.
type ResponseEventData struct {
	LearnerID          string
	Topic              string
	SessionID          string
	Concept            string
	ResponseType       string // "quiz" or "flashcard"
	Correct            bool
	Confidence         *int // stated confidence 0-100, quiz only
	Rating             *int // recall quality 0-5, flashcards only
	MisconceptionLabel string
}

// ResponseEventRecord is a stored response event with its log position.
type ResponseEventRecord struct {
	Sequence  int64
	Timestamp time.Time
	ResponseEventData
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// LLMRequestEventRecord is a stored LLM request event with its log position.
type LLMRequestEventRecord struct {
	Sequence  int64
	Timestamp time.Time
	LLMRequestEventData
}

// ConceptRecordData is the last-known state for one (learner, concept):
// mastery estimate, attempt counters, and the spaced-repetition schedule.
type ConceptRecordData struct {
	LearnerID       string
	Concept         string
	MasteryScore    float64
	TotalAttempts   int
	CorrectAttempts int
	EaseFactor      float64
	IntervalDays    int
	ReviewStreak    int
	NextReviewAt    *time.Time
	LastSeenAt      time.Time
	ConfidenceSum   int
	ConfidenceCount int
}

// SessionData is the persisted state of one study session.
type SessionData struct {
	SessionID       string
	LearnerID       string
	Topic           string
	Phase           string
	MilestoneReturn string
	CardsShown      int
	Streak          int
	BestStreak      int
	TotalXP         int
	Difficulty      float64
	Version         int64
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// MisconceptionData is one (learner, concept, label) occurrence count.
type MisconceptionData struct {
	LearnerID       string
	Concept         string
	Label           string
	OccurrenceCount int
}

// EventRepo provides append and replay access to the event log.
type EventRepo interface {
	// AppendResponse records a learner response event.
	AppendResponse(ctx context.Context, data ResponseEventData) error

	// ResponsesByTopic returns all response events for a learner and topic
	// in log order. Used for calibration recomputation.
	ResponsesByTopic(ctx context.Context, learnerID, topic string) ([]ResponseEventRecord, error)

	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// RecentLLMRequests returns the most recent LLM request events,
	// newest first, up to limit.
	RecentLLMRequests(ctx context.Context, limit int) ([]LLMRequestEventRecord, error)
}

// SessionRepo manages persisted session state.
type SessionRepo interface {
	// LoadActive returns the non-ended session for (learner, topic), or
	// ErrSessionNotFound if none exists.
	LoadActive(ctx context.Context, learnerID, topic string) (*SessionData, error)

	// Get returns the session with the given ID, or ErrSessionNotFound.
	Get(ctx context.Context, sessionID string) (*SessionData, error)

	// Create stores a brand-new session.
	Create(ctx context.Context, data *SessionData) error

	// Save writes updated session state. The write succeeds only if the
	// stored version matches data.Version; on success the version is
	// bumped in both the store and data. Returns ErrStaleSession on a
	// version mismatch.
	Save(ctx context.Context, data *SessionData) error
}

// ConceptRepo manages per-(learner, concept) records.
type ConceptRepo interface {
	// Get returns the record for (learner, concept), or nil if the concept
	// has never been attempted.
	Get(ctx context.Context, learnerID, concept string) (*ConceptRecordData, error)

	// Save upserts a concept record.
	Save(ctx context.Context, data *ConceptRecordData) error

	// ListByLearner returns all concept records for a learner.
	ListByLearner(ctx context.Context, learnerID string) ([]*ConceptRecordData, error)
}

// MisconceptionRepo manages misconception occurrence counts.
type MisconceptionRepo interface {
	// Increment bumps the count for (learner, concept, label), creating the
	// entry on first occurrence, and returns the new count.
	Increment(ctx context.Context, learnerID, concept, label string) (int, error)

	// ListByLearner returns all entries for a learner.
	ListByLearner(ctx context.Context, learnerID string) ([]MisconceptionData, error)
}
