package content

import (
	"context"
	"fmt"
)

// Kind identifies what sort of study item this is.
type Kind string

const (
	// KindNote is a short expository card read during the notes phase.
	KindNote Kind = "note"

	// KindFlashcard is a front/back recall card rated 0-5 by the learner.
	KindFlashcard Kind = "flashcard"

	// KindQuestion is a multiple-choice quiz question answered with a
	// confidence estimate.
	KindQuestion Kind = "question"
)

// Item is a single piece of study content ready for display.
type Item struct {
	// Kind determines which of the remaining fields are populated.
	Kind Kind

	// Concept is the concept this item exercises.
	Concept string

	// Prompt is the note body, flashcard front, or question text.
	Prompt string

	// Back is the flashcard reverse side. Empty for other kinds.
	Back string

	// Choices holds exactly 4 options for questions. Empty otherwise.
	Choices []string

	// Answer is the text of the correct choice. Empty for notes and
	// flashcards.
	Answer string

	// Explanation is a brief worked solution shown after answering.
	Explanation string

	// Misconceptions maps a wrong choice to the misconception label it
	// evidences. Only some choices carry a label.
	Misconceptions map[string]string

	// Difficulty is the supply's self-assessed difficulty (0-1).
	Difficulty float64
}

// Request describes the batch a scheduler wants from a supply.
type Request struct {
	LearnerID string
	Topic     string

	// Phase is the session phase the items are for ("notes",
	// "flashcards", "quiz").
	Phase string

	// Difficulty is the target difficulty (0-1).
	Difficulty float64

	// Count is the number of items wanted.
	Count int

	// Concepts lists the concepts to prioritize, most urgent first.
	// The supply may introduce new concepts if the list is short.
	Concepts []string

	// PriorPrompts contains prompts already served this session, for
	// deduplication.
	PriorPrompts []string
}

// Supply produces study items on demand. A failure is recoverable: the
// caller treats it as phase exhaustion, never as session corruption.
type Supply interface {
	NextItems(ctx context.Context, req Request) ([]Item, error)
}

// ErrSupplyUnavailable indicates the content supply could not serve a
// batch. Session state is left untouched when this is returned.
type ErrSupplyUnavailable struct {
	Err error
}

func (e *ErrSupplyUnavailable) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("content supply unavailable: %v", e.Err)
	}
	return "content supply unavailable"
}

func (e *ErrSupplyUnavailable) Unwrap() error { return e.Err }
