package mastery

import (
	"math"
	"time"

	"github.com/abhisek/studyloop/internal/store"
)

const (
	// InitialScore is the neutral prior for a never-seen concept. Starting
	// at the midpoint keeps one early mistake from pinning the estimate
	// at zero while the learning rate is still high.
	InitialScore = 50.0

	// InitialEaseFactor is the SM-2 starting multiplier.
	InitialEaseFactor = 2.5

	// MinLearningRate is the floor on the per-attempt learning rate, so
	// mastery keeps reflecting recent performance even after many attempts.
	MinLearningRate = 0.05

	// WeakThreshold is the mastery score below which a concept counts as weak.
	WeakThreshold = 50.0
)

// NewRecord creates a concept record with defaults for a first attempt.
func NewRecord(learnerID, concept string, now time.Time) *store.ConceptRecordData {
	return &store.ConceptRecordData{
		LearnerID:    learnerID,
		Concept:      concept,
		MasteryScore: InitialScore,
		EaseFactor:   InitialEaseFactor,
		LastSeenAt:   now,
	}
}

// LearningRate returns the update weight for the given attempt count
// (counted after the current attempt). Early attempts move the estimate
// quickly; later attempts stabilize it.
func LearningRate(totalAttempts int) float64 {
	lr := 1.0 / float64(totalAttempts+1)
	return math.Max(lr, MinLearningRate)
}

// Apply folds one response into the record: attempt counters, the
// exponentially-weighted mastery score, per-concept confidence aggregates,
// and the last-seen timestamp. Pure state arithmetic; never fails.
func Apply(rec *store.ConceptRecordData, correct bool, confidence *int, now time.Time) {
	rec.TotalAttempts++
	if correct {
		rec.CorrectAttempts++
	}

	outcome := 0.0
	if correct {
		outcome = 100.0
	}
	lr := LearningRate(rec.TotalAttempts)
	rec.MasteryScore += lr * (outcome - rec.MasteryScore)

	if confidence != nil {
		rec.ConfidenceSum += *confidence
		rec.ConfidenceCount++
	}

	rec.LastSeenAt = now
}

// Accuracy returns correct_attempts / total_attempts, or 0 for no attempts.
func Accuracy(rec *store.ConceptRecordData) float64 {
	if rec.TotalAttempts == 0 {
		return 0
	}
	return float64(rec.CorrectAttempts) / float64(rec.TotalAttempts)
}

// AvgConfidence returns the mean stated confidence for the concept,
// or 0 if no confidence was ever supplied.
func AvgConfidence(rec *store.ConceptRecordData) float64 {
	if rec.ConfidenceCount == 0 {
		return 0
	}
	return float64(rec.ConfidenceSum) / float64(rec.ConfidenceCount)
}
