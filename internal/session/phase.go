package session

// Phase is one stage of a study session.
type Phase string

const (
	// PhaseNotes serves short expository cards before active recall.
	PhaseNotes Phase = "notes"

	// PhaseFlashcards serves front/back recall cards rated 0-5.
	PhaseFlashcards Phase = "flashcards"

	// PhaseQuiz serves multiple-choice questions with confidence.
	PhaseQuiz Phase = "quiz"

	// PhaseMilestone is a transient celebration state inserted on
	// mastery or cards-shown triggers. Never entered by request.
	PhaseMilestone Phase = "milestone"

	// PhaseEnded is terminal.
	PhaseEnded Phase = "ended"
)

// Valid reports whether p is a known phase.
func (p Phase) Valid() bool {
	switch p {
	case PhaseNotes, PhaseFlashcards, PhaseQuiz, PhaseMilestone, PhaseEnded:
		return true
	}
	return false
}

// next returns the phase that follows p in the linear study path.
func next(p Phase) Phase {
	switch p {
	case PhaseNotes:
		return PhaseFlashcards
	case PhaseFlashcards:
		return PhaseQuiz
	default:
		return PhaseEnded
	}
}

// canSkipTo reports whether a skip from one phase to another may be
// requested. Milestone is controller-inserted only, and an ended session
// cannot be skipped anywhere.
func canSkipTo(from, to Phase) bool {
	if !from.Valid() || !to.Valid() {
		return false
	}
	if from == PhaseEnded || to == PhaseMilestone || to == from {
		return false
	}
	return true
}
