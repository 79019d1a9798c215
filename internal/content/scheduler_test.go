package content

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/abhisek/studyloop/internal/mastery"
	"github.com/abhisek/studyloop/internal/spacedrep"
	"github.com/abhisek/studyloop/internal/store"
)

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

func testClock() time.Time {
	return time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)
}

func newTestScheduler(repo store.ConceptRepo, supply Supply) *Scheduler {
	return NewScheduler(supply, mastery.NewService(repo), spacedrep.NewScheduler(repo), DefaultConfig())
}

func addConcept(repo *mockConceptRepo, concept string, score float64, due *time.Time) {
	repo.records["kai/"+concept] = &store.ConceptRecordData{
		LearnerID:     "kai",
		Concept:       concept,
		MasteryScore:  score,
		TotalAttempts: 4,
		EaseFactor:    2.5,
		IntervalDays:  1,
		NextReviewAt:  due,
	}
}

func TestNextBatch_DueReviewsBeforeWeakConcepts(t *testing.T) {
	repo := newMockConceptRepo()
	now := testClock()
	overdue := now.AddDate(0, 0, -2)

	addConcept(repo, "recursion", 70, &overdue) // due, strong
	addConcept(repo, "closures", 20, nil)       // weak, not scheduled

	supply := NewStaticSupply()
	sched := newTestScheduler(repo, supply)

	batch, err := sched.NextBatch(context.Background(), "kai", "go", "quiz", 0.5, nil, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(batch.Items) != DefaultConfig().BatchSize {
		t.Fatalf("expected %d items, got %d", DefaultConfig().BatchSize, len(batch.Items))
	}

	req := supply.Calls[0]
	if len(req.Concepts) != 2 {
		t.Fatalf("expected 2 priority concepts, got %v", req.Concepts)
	}
	if req.Concepts[0] != "recursion" {
		t.Errorf("due review should come first, got %v", req.Concepts)
	}
	if req.Concepts[1] != "closures" {
		t.Errorf("weak concept should follow, got %v", req.Concepts)
	}
}

func TestNextBatch_DifficultyNudgedTowardMastery(t *testing.T) {
	repo := newMockConceptRepo()
	addConcept(repo, "closures", 20, nil)

	supply := NewStaticSupply()
	sched := newTestScheduler(repo, supply)

	batch, err := sched.NextBatch(context.Background(), "kai", "go", "quiz", 0.5, nil, testClock())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Target is 20/100 = 0.2; nudge moves 0.5 toward it by 30%.
	want := 0.5 + 0.3*(0.2-0.5)
	if diff := batch.Difficulty - want; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("difficulty = %v, want %v", batch.Difficulty, want)
	}
	if supply.Calls[0].Difficulty != batch.Difficulty {
		t.Errorf("supply saw difficulty %v, batch carries %v", supply.Calls[0].Difficulty, batch.Difficulty)
	}
}

func TestNextBatch_NoHistoryUsesNeutralTarget(t *testing.T) {
	repo := newMockConceptRepo()
	supply := NewStaticSupply()
	sched := newTestScheduler(repo, supply)

	batch, err := sched.NextBatch(context.Background(), "kai", "go", "notes", 0.5, nil, testClock())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// No concepts: target stays at the neutral prior, 50/100 = 0.5.
	if batch.Difficulty != 0.5 {
		t.Errorf("difficulty = %v, want 0.5", batch.Difficulty)
	}
	if len(supply.Calls[0].Concepts) != 0 {
		t.Errorf("expected no priority concepts, got %v", supply.Calls[0].Concepts)
	}
}

func TestNextBatch_CapsPriorityConcepts(t *testing.T) {
	repo := newMockConceptRepo()
	now := testClock()
	overdue := now.AddDate(0, 0, -1)
	for _, c := range []string{"a", "b", "c", "d", "e", "f", "g"} {
		addConcept(repo, c, 30, &overdue)
	}

	supply := NewStaticSupply()
	sched := newTestScheduler(repo, supply)

	if _, err := sched.NextBatch(context.Background(), "kai", "go", "quiz", 0.5, nil, now); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := len(supply.Calls[0].Concepts); got != DefaultConfig().MaxConcepts {
		t.Errorf("expected %d concepts, got %d", DefaultConfig().MaxConcepts, got)
	}
}

func TestNextBatch_SupplyFailureIsTyped(t *testing.T) {
	repo := newMockConceptRepo()
	supply := NewStaticSupply()
	supply.Err = errors.New("upstream down")
	sched := newTestScheduler(repo, supply)

	_, err := sched.NextBatch(context.Background(), "kai", "go", "quiz", 0.5, nil, testClock())
	if err == nil {
		t.Fatal("expected error")
	}
	var unavail *ErrSupplyUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("expected ErrSupplyUnavailable, got %T", err)
	}
	if !errors.Is(err, supply.Err) {
		t.Error("expected wrapped cause to be preserved")
	}
}

func TestNextBatch_PassesPriorPromptsThrough(t *testing.T) {
	repo := newMockConceptRepo()
	supply := NewStaticSupply()
	sched := newTestScheduler(repo, supply)

	prior := []string{"What is a goroutine?"}
	if _, err := sched.NextBatch(context.Background(), "kai", "go", "quiz", 0.5, prior, testClock()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := supply.Calls[0].PriorPrompts
	if len(got) != 1 || got[0] != prior[0] {
		t.Errorf("prior prompts not forwarded: %v", got)
	}
}
