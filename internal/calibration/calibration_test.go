package calibration

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/abhisek/studyloop/internal/store"
)

func quizEvent(concept string, confidence int, correct bool) store.ResponseEventRecord {
	c := confidence
	return store.ResponseEventRecord{
		ResponseEventData: store.ResponseEventData{
			LearnerID:    "lea",
			Topic:        "go",
			Concept:      concept,
			ResponseType: "quiz",
			Correct:      correct,
			Confidence:   &c,
		},
	}
}

func TestCompute_EmptyHistory(t *testing.T) {
	snap := Compute(nil)
	if snap.TotalResponses != 0 {
		t.Errorf("TotalResponses = %d, want 0", snap.TotalResponses)
	}
	if snap.BrierScore != 0 || snap.ECE != 0 || snap.OverconfidenceIndex != 0 {
		t.Errorf("empty history must yield zero aggregates, got %+v", snap)
	}
}

func TestCompute_IgnoresUnscoredEvents(t *testing.T) {
	rating := 5
	events := []store.ResponseEventRecord{
		{ResponseEventData: store.ResponseEventData{
			ResponseType: "flashcard", Correct: true, Rating: &rating,
		}},
		{ResponseEventData: store.ResponseEventData{
			ResponseType: "quiz", Correct: true, // no confidence stated
		}},
	}
	snap := Compute(events)
	if snap.TotalResponses != 0 {
		t.Errorf("TotalResponses = %d, want 0 (nothing scored)", snap.TotalResponses)
	}
}

// A learner who is right exactly when confident must out-score the
// indifferent learner who answers 50 on everything.
func TestCompute_DiscriminatingBeatsIndifferent(t *testing.T) {
	var discriminating, indifferent []store.ResponseEventRecord
	for i := 0; i < 5; i++ {
		discriminating = append(discriminating, quizEvent("a", 85, true))
		discriminating = append(discriminating, quizEvent("a", 15, false))
		indifferent = append(indifferent, quizEvent("a", 50, true))
		indifferent = append(indifferent, quizEvent("a", 50, false))
	}

	d := Compute(discriminating)
	n := Compute(indifferent)

	if d.BrierScore >= n.BrierScore {
		t.Errorf("discriminating brier %v >= indifferent brier %v", d.BrierScore, n.BrierScore)
	}
}

func TestCompute_BrierValue(t *testing.T) {
	events := []store.ResponseEventRecord{
		quizEvent("a", 80, true),  // (0.8-1)^2 = 0.04
		quizEvent("a", 40, false), // (0.4-0)^2 = 0.16
	}
	snap := Compute(events)
	if math.Abs(snap.BrierScore-0.10) > 1e-9 {
		t.Errorf("BrierScore = %v, want 0.10", snap.BrierScore)
	}
}

func TestCompute_OverconfidenceZeroForHumbleLearner(t *testing.T) {
	// Confidence never exceeds correctness: confident only when right.
	var events []store.ResponseEventRecord
	for i := 0; i < 6; i++ {
		events = append(events, quizEvent("a", 90, true))
		events = append(events, quizEvent("a", 0, false))
	}
	snap := Compute(events)
	if snap.OverconfidenceIndex != 0 {
		t.Errorf("OverconfidenceIndex = %v, want 0", snap.OverconfidenceIndex)
	}
}

func TestCompute_OverconfidenceOneSided(t *testing.T) {
	events := []store.ResponseEventRecord{
		quizEvent("a", 100, false), // contributes 1.0
		quizEvent("a", 0, true),    // underconfidence contributes 0
	}
	snap := Compute(events)
	if math.Abs(snap.OverconfidenceIndex-0.5) > 1e-9 {
		t.Errorf("OverconfidenceIndex = %v, want 0.5", snap.OverconfidenceIndex)
	}
}

func TestCompute_ECESkipsEmptyBuckets(t *testing.T) {
	// All responses in one bucket: ECE = |accuracy - midpoint| for it alone.
	events := []store.ResponseEventRecord{
		quizEvent("a", 90, true),
		quizEvent("a", 90, true),
		quizEvent("a", 90, false),
		quizEvent("a", 90, false),
	}
	snap := Compute(events)
	// Bucket 81-100, midpoint 0.905, accuracy 0.5.
	want := math.Abs(0.5 - 0.905)
	if math.Abs(snap.ECE-want) > 1e-9 {
		t.Errorf("ECE = %v, want %v", snap.ECE, want)
	}
}

func TestBucketIndex_Boundaries(t *testing.T) {
	tests := []struct {
		confidence int
		want       int
	}{
		{0, 0}, {20, 0}, {21, 1}, {40, 1}, {41, 2}, {60, 2}, {80, 3}, {81, 4}, {100, 4},
	}
	for _, tt := range tests {
		if got := bucketIndex(tt.confidence); got != tt.want {
			t.Errorf("bucketIndex(%d) = %d, want %d", tt.confidence, got, tt.want)
		}
	}
}

func TestDunningKruger_SurfacesOverconfidentConcepts(t *testing.T) {
	events := []store.ResponseEventRecord{
		// loops: confidence 80, accuracy 0 -> gap 80.
		quizEvent("loops", 80, false),
		quizEvent("loops", 80, false),
		quizEvent("loops", 80, false),
		// slices: confidence 70, accuracy 50 -> gap 20 (included at threshold).
		quizEvent("slices", 70, true),
		quizEvent("slices", 70, false),
		// maps: well calibrated, excluded.
		quizEvent("maps", 50, true),
		quizEvent("maps", 50, false),
	}

	gaps := DunningKruger(events)
	if len(gaps) != 2 {
		t.Fatalf("len = %d, want 2: %+v", len(gaps), gaps)
	}
	if gaps[0].Concept != "loops" || gaps[1].Concept != "slices" {
		t.Errorf("order = %s, %s; want loops, slices", gaps[0].Concept, gaps[1].Concept)
	}
	if gaps[0].Gap != 80 {
		t.Errorf("loops gap = %v, want 80", gaps[0].Gap)
	}
}

// mockEventRepo serves a canned response history.
type mockEventRepo struct {
	records []store.ResponseEventRecord
}

func (m *mockEventRepo) AppendResponse(_ context.Context, data store.ResponseEventData) error {
	m.records = append(m.records, store.ResponseEventRecord{ResponseEventData: data})
	return nil
}

func (m *mockEventRepo) ResponsesByTopic(_ context.Context, learnerID, topic string) ([]store.ResponseEventRecord, error) {
	var out []store.ResponseEventRecord
	for _, r := range m.records {
		if r.LearnerID == learnerID && r.Topic == topic {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *mockEventRepo) AppendLLMRequest(_ context.Context, _ store.LLMRequestEventData) error {
	return nil
}

func (m *mockEventRepo) RecentLLMRequests(_ context.Context, _ int) ([]store.LLMRequestEventRecord, error) {
	return nil, nil
}

func TestSnapshot_InsufficientData(t *testing.T) {
	repo := &mockEventRepo{}
	for i := 0; i < MinResponses-1; i++ {
		repo.records = append(repo.records, quizEvent("a", 60, true))
	}

	_, err := NewService(repo).Snapshot(context.Background(), "lea", "go")
	var insufficient *ErrInsufficientData
	if !errors.As(err, &insufficient) {
		t.Fatalf("err = %v, want ErrInsufficientData", err)
	}
	if insufficient.Have != MinResponses-1 || insufficient.Need != MinResponses {
		t.Errorf("have/need = %d/%d, want %d/%d",
			insufficient.Have, insufficient.Need, MinResponses-1, MinResponses)
	}
}

func TestSnapshot_AtThreshold(t *testing.T) {
	repo := &mockEventRepo{}
	for i := 0; i < MinResponses; i++ {
		repo.records = append(repo.records, quizEvent("a", 60, true))
	}

	snap, err := NewService(repo).Snapshot(context.Background(), "lea", "go")
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}
	if snap.TotalResponses != MinResponses {
		t.Errorf("TotalResponses = %d, want %d", snap.TotalResponses, MinResponses)
	}
}
