package spacedrep

import (
	"math"
	"time"

	"github.com/abhisek/studyloop/internal/store"
)

const (
	// MinEaseFactor is the SM-2 floor; ease never drops below it.
	MinEaseFactor = 1.3

	// FailPenalty is subtracted from ease on a failed review.
	FailPenalty = 0.2

	// PassQuality is the lowest quality that counts as successful recall.
	PassQuality = 3

	// Quality values for bare quiz answers with no explicit rating.
	QualityCorrectAnswer   = 4
	QualityIncorrectAnswer = 1
)

// QualityForAnswer maps a quiz answer to a review quality, so quiz items
// and flashcards feed one scheduler.
func QualityForAnswer(correct bool) int {
	if correct {
		return QualityCorrectAnswer
	}
	return QualityIncorrectAnswer
}

// Review applies one SM-2 update to the record's schedule. Quality runs
// 0-5: below 3 is a failed recall, 3-5 grades successful recall.
// Deterministic in (record state, quality, now); never fails.
func Review(rec *store.ConceptRecordData, quality int, now time.Time) {
	if quality < 0 {
		quality = 0
	}
	if quality > 5 {
		quality = 5
	}

	if quality < PassQuality {
		rec.IntervalDays = 1
		rec.EaseFactor = math.Max(MinEaseFactor, rec.EaseFactor-FailPenalty)
		rec.ReviewStreak = 0
	} else {
		q := float64(quality)
		ease := rec.EaseFactor + (0.1 - (5-q)*(0.08+(5-q)*0.02))
		rec.EaseFactor = math.Max(MinEaseFactor, ease)

		switch rec.ReviewStreak {
		case 0:
			rec.IntervalDays = 1
		case 1:
			rec.IntervalDays = 6
		default:
			rec.IntervalDays = int(math.Round(float64(rec.IntervalDays) * rec.EaseFactor))
		}
		rec.ReviewStreak++
	}

	next := now.AddDate(0, 0, rec.IntervalDays)
	rec.NextReviewAt = &next
}

// IsDue reports whether the record is at or past its review date.
// Records with no scheduled review are never due.
func IsDue(rec *store.ConceptRecordData, now time.Time) bool {
	return rec.NextReviewAt != nil && !now.Before(*rec.NextReviewAt)
}

// OverdueDays returns how many days past due the record is, 0 if not due.
func OverdueDays(rec *store.ConceptRecordData, now time.Time) float64 {
	if !IsDue(rec, now) {
		return 0
	}
	return now.Sub(*rec.NextReviewAt).Hours() / 24.0
}
