package mastery

import (
	"testing"
	"time"
)

var testNow = time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

func TestNewRecord_Defaults(t *testing.T) {
	rec := NewRecord("lea", "loops", testNow)

	if rec.MasteryScore != InitialScore {
		t.Errorf("MasteryScore = %v, want %v", rec.MasteryScore, InitialScore)
	}
	if rec.EaseFactor != InitialEaseFactor {
		t.Errorf("EaseFactor = %v, want %v", rec.EaseFactor, InitialEaseFactor)
	}
	if rec.TotalAttempts != 0 || rec.CorrectAttempts != 0 {
		t.Errorf("attempts = %d/%d, want 0/0", rec.CorrectAttempts, rec.TotalAttempts)
	}
	if rec.NextReviewAt != nil {
		t.Error("NextReviewAt should be nil before the first review")
	}
}

func TestApply_CorrectNeverExceedsTotal(t *testing.T) {
	rec := NewRecord("lea", "loops", testNow)

	pattern := []bool{true, false, true, true, false, false, true}
	for _, correct := range pattern {
		Apply(rec, correct, nil, testNow)
		if rec.CorrectAttempts > rec.TotalAttempts {
			t.Fatalf("correct %d > total %d", rec.CorrectAttempts, rec.TotalAttempts)
		}
	}
	if rec.TotalAttempts != 7 {
		t.Errorf("TotalAttempts = %d, want 7", rec.TotalAttempts)
	}
	if rec.CorrectAttempts != 4 {
		t.Errorf("CorrectAttempts = %d, want 4", rec.CorrectAttempts)
	}
}

func TestApply_WrongAnswersDecreaseMonotonically(t *testing.T) {
	rec := NewRecord("lea", "loops", testNow)

	prev := rec.MasteryScore
	for i := 0; i < 3; i++ {
		Apply(rec, false, nil, testNow)
		if rec.MasteryScore >= prev {
			t.Fatalf("attempt %d: score %v did not decrease from %v", i+1, rec.MasteryScore, prev)
		}
		prev = rec.MasteryScore
	}

	// 50 -> 25 -> ~16.7 -> 12.5: three misses land well under 30.
	if rec.MasteryScore >= 30 {
		t.Errorf("score after 3 misses = %v, want < 30", rec.MasteryScore)
	}
}

func TestApply_EarlyAttemptsMoveFaster(t *testing.T) {
	rec := NewRecord("lea", "loops", testNow)

	Apply(rec, true, nil, testNow)
	firstJump := rec.MasteryScore - InitialScore

	before := rec.MasteryScore
	Apply(rec, true, nil, testNow)
	secondJump := rec.MasteryScore - before

	if secondJump >= firstJump {
		t.Errorf("second jump %v >= first jump %v", secondJump, firstJump)
	}
}

func TestLearningRate_Floor(t *testing.T) {
	if lr := LearningRate(1); lr != 0.5 {
		t.Errorf("LearningRate(1) = %v, want 0.5", lr)
	}
	if lr := LearningRate(1000); lr != MinLearningRate {
		t.Errorf("LearningRate(1000) = %v, want %v", lr, MinLearningRate)
	}
}

func TestApply_ConfidenceAggregates(t *testing.T) {
	rec := NewRecord("lea", "loops", testNow)

	conf := 80
	Apply(rec, false, &conf, testNow)
	Apply(rec, false, &conf, testNow)
	Apply(rec, true, nil, testNow) // no confidence stated

	if rec.ConfidenceCount != 2 {
		t.Errorf("ConfidenceCount = %d, want 2", rec.ConfidenceCount)
	}
	if got := AvgConfidence(rec); got != 80 {
		t.Errorf("AvgConfidence = %v, want 80", got)
	}
}

func TestAccuracy_ZeroAttempts(t *testing.T) {
	rec := NewRecord("lea", "loops", testNow)
	if got := Accuracy(rec); got != 0 {
		t.Errorf("Accuracy = %v, want 0", got)
	}
}
