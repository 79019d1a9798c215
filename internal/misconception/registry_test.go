package misconception

import (
	"context"
	"errors"
	"testing"

	"github.com/abhisek/studyloop/internal/store"
)

// mockMisconceptionRepo is an in-memory MisconceptionRepo.
type mockMisconceptionRepo struct {
	counts map[string]int
}

func newMockMisconceptionRepo() *mockMisconceptionRepo {
	return &mockMisconceptionRepo{counts: make(map[string]int)}
}

func (m *mockMisconceptionRepo) Increment(_ context.Context, learnerID, concept, label string) (int, error) {
	key := learnerID + "/" + concept + "/" + label
	m.counts[key]++
	return m.counts[key], nil
}

func (m *mockMisconceptionRepo) ListByLearner(_ context.Context, learnerID string) ([]store.MisconceptionData, error) {
	var out []store.MisconceptionData
	for key, count := range m.counts {
		var l, c, lab string
		for i, part := range splitKey(key) {
			switch i {
			case 0:
				l = part
			case 1:
				c = part
			case 2:
				lab = part
			}
		}
		if l == learnerID {
			out = append(out, store.MisconceptionData{
				LearnerID: l, Concept: c, Label: lab, OccurrenceCount: count,
			})
		}
	}
	return out, nil
}

func splitKey(key string) []string {
	var parts []string
	start := 0
	for i := 0; i < len(key); i++ {
		if key[i] == '/' {
			parts = append(parts, key[start:i])
			start = i + 1
		}
	}
	return append(parts, key[start:])
}

// mockConceptRepo serves fixed mastery scores.
type mockConceptRepo struct {
	records map[string]*store.ConceptRecordData
}

func (m *mockConceptRepo) Get(_ context.Context, learnerID, concept string) (*store.ConceptRecordData, error) {
	return m.records[learnerID+"/"+concept], nil
}

func (m *mockConceptRepo) Save(_ context.Context, _ *store.ConceptRecordData) error { return nil }

func (m *mockConceptRepo) ListByLearner(_ context.Context, learnerID string) ([]*store.ConceptRecordData, error) {
	var out []*store.ConceptRecordData
	for _, rec := range m.records {
		if rec.LearnerID == learnerID {
			out = append(out, rec)
		}
	}
	return out, nil
}

func TestDeriveSeverity(t *testing.T) {
	tests := []struct {
		name        string
		occurrences int
		mastery     float64
		want        Severity
	}{
		{"single occurrence", 1, 50, SeverityMinor},
		{"repeated", 2, 50, SeverityModerate},
		{"repeated on weak concept", 3, 20, SeveritySevere},
		{"repeated on strong concept stays moderate", 3, 60, SeverityModerate},
		{"two on weak concept not yet severe", 2, 10, SeverityModerate},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DeriveSeverity(tt.occurrences, tt.mastery); got != tt.want {
				t.Errorf("DeriveSeverity(%d, %v) = %s, want %s",
					tt.occurrences, tt.mastery, got, tt.want)
			}
		})
	}
}

func TestRecord_SeverityEscalates(t *testing.T) {
	entries := newMockMisconceptionRepo()
	concepts := &mockConceptRepo{records: map[string]*store.ConceptRecordData{
		"lea/loops": {LearnerID: "lea", Concept: "loops", MasteryScore: 12.5},
	}}
	reg := NewRegistry(entries, concepts, nil)
	ctx := context.Background()

	want := []Severity{SeverityMinor, SeverityModerate, SeveritySevere}
	for i, w := range want {
		got, err := reg.Record(ctx, "lea", "loops", "off-by-one")
		if err != nil {
			t.Fatalf("record %d: %v", i+1, err)
		}
		if got != w {
			t.Errorf("occurrence %d severity = %s, want %s", i+1, got, w)
		}
	}
}

func TestRecord_UnknownConceptUsesZeroMastery(t *testing.T) {
	entries := newMockMisconceptionRepo()
	concepts := &mockConceptRepo{records: map[string]*store.ConceptRecordData{}}
	reg := NewRegistry(entries, concepts, nil)
	ctx := context.Background()

	var got Severity
	var err error
	for i := 0; i < 3; i++ {
		got, err = reg.Record(ctx, "lea", "ghost", "sign-error")
		if err != nil {
			t.Fatalf("record: %v", err)
		}
	}
	// Mastery 0 < 30 with 3 occurrences: severe.
	if got != SeveritySevere {
		t.Errorf("severity = %s, want severe", got)
	}
}

type fakeRemediator struct {
	gotLabels []string
	out       []string
	err       error
}

func (f *fakeRemediator) Suggest(_ context.Context, labels []string) ([]string, error) {
	f.gotLabels = labels
	return f.out, f.err
}

func TestGetSummary_RanksAndSuggests(t *testing.T) {
	entries := newMockMisconceptionRepo()
	concepts := &mockConceptRepo{records: map[string]*store.ConceptRecordData{
		"lea/loops":  {LearnerID: "lea", Concept: "loops", MasteryScore: 20},
		"lea/slices": {LearnerID: "lea", Concept: "slices", MasteryScore: 70},
	}}
	remediator := &fakeRemediator{out: []string{"tip one", "tip two"}}
	reg := NewRegistry(entries, concepts, remediator)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if _, err := reg.Record(ctx, "lea", "loops", "off-by-one"); err != nil {
			t.Fatalf("record: %v", err)
		}
	}
	if _, err := reg.Record(ctx, "lea", "slices", "nil-deref"); err != nil {
		t.Fatalf("record: %v", err)
	}

	summary, err := reg.GetSummary(ctx, "lea", 5)
	if err != nil {
		t.Fatalf("summary: %v", err)
	}

	if len(summary.TopLabels) != 2 {
		t.Fatalf("TopLabels len = %d, want 2", len(summary.TopLabels))
	}
	if summary.TopLabels[0].Label != "off-by-one" || summary.TopLabels[0].Total != 3 {
		t.Errorf("top label = %+v, want off-by-one x3", summary.TopLabels[0])
	}

	if summary.Entries[0].Severity != SeveritySevere {
		t.Errorf("top entry severity = %s, want severe", summary.Entries[0].Severity)
	}
	if summary.SeverityCounts[SeveritySevere] != 1 || summary.SeverityCounts[SeverityMinor] != 1 {
		t.Errorf("severity counts = %v", summary.SeverityCounts)
	}

	if len(summary.Suggestions) != 2 {
		t.Errorf("suggestions = %v, want 2", summary.Suggestions)
	}
	if len(remediator.gotLabels) != 2 || remediator.gotLabels[0] != "off-by-one" {
		t.Errorf("remediator labels = %v", remediator.gotLabels)
	}
}

func TestGetSummary_RemediatorFailureDegrades(t *testing.T) {
	entries := newMockMisconceptionRepo()
	concepts := &mockConceptRepo{records: map[string]*store.ConceptRecordData{}}
	remediator := &fakeRemediator{err: errors.New("provider down")}
	reg := NewRegistry(entries, concepts, remediator)
	ctx := context.Background()

	if _, err := reg.Record(ctx, "lea", "loops", "off-by-one"); err != nil {
		t.Fatalf("record: %v", err)
	}

	summary, err := reg.GetSummary(ctx, "lea", 5)
	if err != nil {
		t.Fatalf("summary must not fail on remediator error: %v", err)
	}
	if len(summary.Suggestions) != 0 {
		t.Errorf("suggestions = %v, want none", summary.Suggestions)
	}
	if len(summary.Entries) != 1 {
		t.Errorf("entries = %v, want the ranked data intact", summary.Entries)
	}
}

func TestStaticRemediator(t *testing.T) {
	out, err := StaticRemediator{}.Suggest(context.Background(), []string{"off-by-one", "sign-error"})
	if err != nil {
		t.Fatalf("suggest: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("len = %d, want 2", len(out))
	}
}
