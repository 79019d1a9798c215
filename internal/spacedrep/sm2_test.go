package spacedrep

import (
	"math"
	"testing"
	"time"

	"github.com/abhisek/studyloop/internal/store"
)

var testNow = time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

func freshRecord() *store.ConceptRecordData {
	return &store.ConceptRecordData{
		LearnerID:    "lea",
		Concept:      "loops",
		MasteryScore: 50,
		EaseFactor:   2.5,
	}
}

func TestReview_FirstThreePerfectRatings(t *testing.T) {
	rec := freshRecord()
	now := testNow

	// Rated 5 three times: intervals must run 1, 6, round(6 * EF).
	Review(rec, 5, now)
	if rec.IntervalDays != 1 {
		t.Fatalf("first interval = %d, want 1", rec.IntervalDays)
	}
	wantNext := now.AddDate(0, 0, 1)
	if rec.NextReviewAt == nil || !rec.NextReviewAt.Equal(wantNext) {
		t.Fatalf("NextReviewAt = %v, want %v", rec.NextReviewAt, wantNext)
	}

	now = *rec.NextReviewAt
	Review(rec, 5, now)
	if rec.IntervalDays != 6 {
		t.Fatalf("second interval = %d, want 6", rec.IntervalDays)
	}

	now = *rec.NextReviewAt
	easeBefore := rec.EaseFactor
	Review(rec, 5, now)
	wantInterval := int(math.Round(6 * (easeBefore + 0.1)))
	if rec.IntervalDays != wantInterval {
		t.Fatalf("third interval = %d, want %d", rec.IntervalDays, wantInterval)
	}
}

func TestReview_EaseFloorHolds(t *testing.T) {
	rec := freshRecord()

	for i := 0; i < 20; i++ {
		Review(rec, 0, testNow)
		if rec.EaseFactor < MinEaseFactor {
			t.Fatalf("after %d failures ease = %v, below floor %v", i+1, rec.EaseFactor, MinEaseFactor)
		}
	}
	if rec.EaseFactor != MinEaseFactor {
		t.Errorf("ease = %v, want pinned at %v", rec.EaseFactor, MinEaseFactor)
	}
}

func TestReview_FailureResetsStreakAndInterval(t *testing.T) {
	rec := freshRecord()

	Review(rec, 5, testNow)
	Review(rec, 4, testNow)
	if rec.ReviewStreak != 2 {
		t.Fatalf("streak = %d, want 2", rec.ReviewStreak)
	}

	Review(rec, 2, testNow)
	if rec.ReviewStreak != 0 {
		t.Errorf("streak after failure = %d, want 0", rec.ReviewStreak)
	}
	if rec.IntervalDays != 1 {
		t.Errorf("interval after failure = %d, want 1", rec.IntervalDays)
	}
}

func TestReview_Deterministic(t *testing.T) {
	a := freshRecord()
	b := freshRecord()
	a.IntervalDays, b.IntervalDays = 6, 6
	a.ReviewStreak, b.ReviewStreak = 2, 2

	Review(a, 4, testNow)
	Review(b, 4, testNow)

	if a.EaseFactor != b.EaseFactor || a.IntervalDays != b.IntervalDays {
		t.Errorf("identical inputs diverged: %v/%d vs %v/%d",
			a.EaseFactor, a.IntervalDays, b.EaseFactor, b.IntervalDays)
	}
	if !a.NextReviewAt.Equal(*b.NextReviewAt) {
		t.Errorf("next review diverged: %v vs %v", a.NextReviewAt, b.NextReviewAt)
	}
}

func TestReview_QualityClamped(t *testing.T) {
	rec := freshRecord()
	Review(rec, 9, testNow) // clamps to 5
	if rec.ReviewStreak != 1 {
		t.Errorf("streak = %d, want 1 (clamped to passing)", rec.ReviewStreak)
	}

	rec = freshRecord()
	Review(rec, -3, testNow) // clamps to 0
	if rec.ReviewStreak != 0 || rec.IntervalDays != 1 {
		t.Errorf("negative quality should fail: streak=%d interval=%d", rec.ReviewStreak, rec.IntervalDays)
	}
}

func TestQualityForAnswer(t *testing.T) {
	if q := QualityForAnswer(true); q != QualityCorrectAnswer {
		t.Errorf("correct = %d, want %d", q, QualityCorrectAnswer)
	}
	if q := QualityForAnswer(false); q != QualityIncorrectAnswer {
		t.Errorf("incorrect = %d, want %d", q, QualityIncorrectAnswer)
	}
}

func TestIsDue_NeverReviewed(t *testing.T) {
	rec := freshRecord()
	if IsDue(rec, testNow) {
		t.Error("record with no schedule should not be due")
	}
	if OverdueDays(rec, testNow) != 0 {
		t.Error("unscheduled record has no overdue days")
	}
}
