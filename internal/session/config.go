package session

// Config holds the tunable thresholds of the phase state machine. The
// authoritative values are product decisions, so they live here rather
// than as literals in the controller.
type Config struct {
	// MasteryMilestone is the mastery score (0-100) that inserts a
	// milestone when crossed.
	MasteryMilestone float64

	// MinMilestoneAttempts is the minimum attempt count before a
	// mastery milestone can fire, so a single lucky guess on a fresh
	// concept never celebrates.
	MinMilestoneAttempts int

	// CardsPerMilestone inserts a milestone every N cards shown.
	CardsPerMilestone int

	// XPPerCorrect is the XP awarded for a correct quiz answer or a
	// positively rated flashcard.
	XPPerCorrect int

	// PositiveRating is the minimum flashcard rating that counts as a
	// successful recall for streak and XP purposes.
	PositiveRating int

	// InitialDifficulty seeds new sessions before any mastery evidence
	// exists.
	InitialDifficulty float64
}

// DefaultConfig returns the standard session thresholds.
func DefaultConfig() Config {
	return Config{
		MasteryMilestone:     80,
		MinMilestoneAttempts: 3,
		CardsPerMilestone:    10,
		XPPerCorrect:         10,
		PositiveRating:       3,
		InitialDifficulty:    0.5,
	}
}
