package mastery

import (
	"context"
	"testing"

	"github.com/abhisek/studyloop/internal/store"
)

// mockConceptRepo is an in-memory ConceptRepo for tests.
type mockConceptRepo struct {
	records map[string]*store.ConceptRecordData
}

func newMockConceptRepo() *mockConceptRepo {
	return &mockConceptRepo{records: make(map[string]*store.ConceptRecordData)}
}

func (m *mockConceptRepo) key(learnerID, concept string) string {
	return learnerID + "/" + concept
}

func (m *mockConceptRepo) Get(_ context.Context, learnerID, concept string) (*store.ConceptRecordData, error) {
	rec, ok := m.records[m.key(learnerID, concept)]
	if !ok {
		return nil, nil
	}
	cp := *rec
	return &cp, nil
}

func (m *mockConceptRepo) Save(_ context.Context, data *store.ConceptRecordData) error {
	cp := *data
	m.records[m.key(data.LearnerID, data.Concept)] = &cp
	return nil
}

func (m *mockConceptRepo) ListByLearner(_ context.Context, learnerID string) ([]*store.ConceptRecordData, error) {
	var out []*store.ConceptRecordData
	for _, rec := range m.records {
		if rec.LearnerID == learnerID {
			cp := *rec
			out = append(out, &cp)
		}
	}
	return out, nil
}

func TestUpdate_CreatesAndPersists(t *testing.T) {
	repo := newMockConceptRepo()
	svc := NewService(repo)
	ctx := context.Background()

	rec, err := svc.Update(ctx, "lea", "loops", true, nil, testNow)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if rec.TotalAttempts != 1 {
		t.Errorf("TotalAttempts = %d, want 1", rec.TotalAttempts)
	}

	stored, err := repo.Get(ctx, "lea", "loops")
	if err != nil || stored == nil {
		t.Fatalf("stored record missing: %v", err)
	}
	if stored.MasteryScore != rec.MasteryScore {
		t.Errorf("stored score = %v, want %v", stored.MasteryScore, rec.MasteryScore)
	}
}

func TestWeakConcepts_OrderingAndThreshold(t *testing.T) {
	repo := newMockConceptRepo()
	svc := NewService(repo)
	ctx := context.Background()

	seed := []*store.ConceptRecordData{
		{LearnerID: "lea", Concept: "strong", MasteryScore: 75, TotalAttempts: 5},
		{LearnerID: "lea", Concept: "weakest", MasteryScore: 10, TotalAttempts: 2},
		{LearnerID: "lea", Concept: "weak-few", MasteryScore: 40, TotalAttempts: 1},
		{LearnerID: "lea", Concept: "weak-many", MasteryScore: 40, TotalAttempts: 8},
		{LearnerID: "bob", Concept: "weakest", MasteryScore: 5, TotalAttempts: 1},
	}
	for _, rec := range seed {
		if err := repo.Save(ctx, rec); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	weak, err := svc.WeakConcepts(ctx, "lea")
	if err != nil {
		t.Fatalf("weak concepts: %v", err)
	}

	var got []string
	for _, rec := range weak {
		got = append(got, rec.Concept)
	}
	want := []string{"weakest", "weak-many", "weak-few"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("position %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestWeakConcepts_ExactThresholdExcluded(t *testing.T) {
	repo := newMockConceptRepo()
	svc := NewService(repo)
	ctx := context.Background()

	_ = repo.Save(ctx, &store.ConceptRecordData{
		LearnerID: "lea", Concept: "border", MasteryScore: 50, TotalAttempts: 3,
	})

	weak, err := svc.WeakConcepts(ctx, "lea")
	if err != nil {
		t.Fatalf("weak concepts: %v", err)
	}
	if len(weak) != 0 {
		t.Errorf("score exactly 50 should not be weak, got %v", weak)
	}
}
