package spacedrep

import (
	"context"
	"testing"
	"time"

	"github.com/abhisek/studyloop/internal/store"
)

// mockConceptRepo is an in-memory ConceptRepo for tests.
type mockConceptRepo struct {
	records []*store.ConceptRecordData
}

func (m *mockConceptRepo) Get(_ context.Context, learnerID, concept string) (*store.ConceptRecordData, error) {
	for _, rec := range m.records {
		if rec.LearnerID == learnerID && rec.Concept == concept {
			return rec, nil
		}
	}
	return nil, nil
}

func (m *mockConceptRepo) Save(_ context.Context, data *store.ConceptRecordData) error {
	m.records = append(m.records, data)
	return nil
}

func (m *mockConceptRepo) ListByLearner(_ context.Context, learnerID string) ([]*store.ConceptRecordData, error) {
	var out []*store.ConceptRecordData
	for _, rec := range m.records {
		if rec.LearnerID == learnerID {
			out = append(out, rec)
		}
	}
	return out, nil
}

func at(t time.Time) *time.Time { return &t }

func TestDueReviews_OrderedByOverdueThenMastery(t *testing.T) {
	now := time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)
	repo := &mockConceptRepo{records: []*store.ConceptRecordData{
		{LearnerID: "lea", Concept: "fresh", MasteryScore: 20,
			NextReviewAt: at(now.AddDate(0, 0, 2))}, // not due
		{LearnerID: "lea", Concept: "barely-due", MasteryScore: 60,
			NextReviewAt: at(now)},
		{LearnerID: "lea", Concept: "very-overdue", MasteryScore: 90,
			NextReviewAt: at(now.AddDate(0, 0, -5))},
		{LearnerID: "lea", Concept: "tied-weak", MasteryScore: 30,
			NextReviewAt: at(now.AddDate(0, 0, -2))},
		{LearnerID: "lea", Concept: "tied-strong", MasteryScore: 70,
			NextReviewAt: at(now.AddDate(0, 0, -2))},
		{LearnerID: "lea", Concept: "never-reviewed", MasteryScore: 10},
	}}

	due, err := NewScheduler(repo).DueReviews(context.Background(), "lea", now)
	if err != nil {
		t.Fatalf("due reviews: %v", err)
	}

	var got []string
	for _, d := range due {
		got = append(got, d.Concept)
	}
	want := []string{"very-overdue", "tied-weak", "tied-strong", "barely-due"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("position %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestDueReviews_EmptyLearner(t *testing.T) {
	repo := &mockConceptRepo{}
	due, err := NewScheduler(repo).DueReviews(context.Background(), "nobody", time.Now())
	if err != nil {
		t.Fatalf("due reviews: %v", err)
	}
	if len(due) != 0 {
		t.Errorf("expected no due reviews, got %v", due)
	}
}
