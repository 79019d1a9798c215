package store

import (
	"context"
	"errors"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSessionCreateAndLoadActive(t *testing.T) {
	s := openTestStore(t)
	repo := s.SessionRepo()
	ctx := context.Background()

	if _, err := repo.LoadActive(ctx, "lea", "algebra"); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("LoadActive (empty) = %v, want ErrSessionNotFound", err)
	}

	now := time.Now().UTC().Truncate(time.Second)
	data := &SessionData{
		SessionID:  "sess-1",
		LearnerID:  "lea",
		Topic:      "algebra",
		Phase:      "notes",
		Difficulty: 0.5,
		Version:    1,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := repo.Create(ctx, data); err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := repo.LoadActive(ctx, "lea", "algebra")
	if err != nil {
		t.Fatalf("LoadActive: %v", err)
	}
	if got.SessionID != "sess-1" {
		t.Errorf("SessionID = %q, want sess-1", got.SessionID)
	}
	if got.Phase != "notes" {
		t.Errorf("Phase = %q, want notes", got.Phase)
	}
}

func TestSessionSaveBumpsVersion(t *testing.T) {
	s := openTestStore(t)
	repo := s.SessionRepo()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Second)
	data := &SessionData{
		SessionID: "sess-2", LearnerID: "lea", Topic: "trig",
		Phase: "quiz", Version: 1, CreatedAt: now, UpdatedAt: now,
	}
	if err := repo.Create(ctx, data); err != nil {
		t.Fatalf("create: %v", err)
	}

	data.Streak = 3
	if err := repo.Save(ctx, data); err != nil {
		t.Fatalf("save: %v", err)
	}
	if data.Version != 2 {
		t.Errorf("Version = %d, want 2", data.Version)
	}
}

func TestSessionSaveStaleVersion(t *testing.T) {
	s := openTestStore(t)
	repo := s.SessionRepo()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Second)
	data := &SessionData{
		SessionID: "sess-3", LearnerID: "lea", Topic: "trig",
		Phase: "quiz", Version: 1, CreatedAt: now, UpdatedAt: now,
	}
	if err := repo.Create(ctx, data); err != nil {
		t.Fatalf("create: %v", err)
	}

	// Simulate a concurrent writer holding the same version.
	other := *data
	if err := repo.Save(ctx, &other); err != nil {
		t.Fatalf("first save: %v", err)
	}

	if err := repo.Save(ctx, data); !errors.Is(err, ErrStaleSession) {
		t.Fatalf("stale save = %v, want ErrStaleSession", err)
	}
}

func TestConceptSaveGetAndList(t *testing.T) {
	s := openTestStore(t)
	repo := s.ConceptRepo()
	ctx := context.Background()

	got, err := repo.Get(ctx, "lea", "loops")
	if err != nil {
		t.Fatalf("get (empty): %v", err)
	}
	if got != nil {
		t.Fatal("expected nil record for unseen concept")
	}

	now := time.Now().UTC().Truncate(time.Second)
	next := now.AddDate(0, 0, 6)
	data := &ConceptRecordData{
		LearnerID: "lea", Concept: "loops",
		MasteryScore: 62.5, TotalAttempts: 4, CorrectAttempts: 3,
		EaseFactor: 2.6, IntervalDays: 6, ReviewStreak: 2,
		NextReviewAt: &next, LastSeenAt: now,
	}
	if err := repo.Save(ctx, data); err != nil {
		t.Fatalf("save (create): %v", err)
	}

	data.MasteryScore = 70
	if err := repo.Save(ctx, data); err != nil {
		t.Fatalf("save (update): %v", err)
	}

	got, err = repo.Get(ctx, "lea", "loops")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.MasteryScore != 70 {
		t.Errorf("MasteryScore = %v, want 70", got.MasteryScore)
	}
	if got.NextReviewAt == nil || !got.NextReviewAt.Equal(next) {
		t.Errorf("NextReviewAt = %v, want %v", got.NextReviewAt, next)
	}

	all, err := repo.ListByLearner(ctx, "lea")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("list len = %d, want 1", len(all))
	}
}

func TestMisconceptionIncrement(t *testing.T) {
	s := openTestStore(t)
	repo := s.MisconceptionRepo()
	ctx := context.Background()

	for want := 1; want <= 3; want++ {
		got, err := repo.Increment(ctx, "lea", "loops", "off-by-one")
		if err != nil {
			t.Fatalf("increment %d: %v", want, err)
		}
		if got != want {
			t.Errorf("count = %d, want %d", got, want)
		}
	}

	entries, err := repo.ListByLearner(ctx, "lea")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(entries) != 1 || entries[0].OccurrenceCount != 3 {
		t.Fatalf("entries = %+v, want single count-3 entry", entries)
	}
}

func TestResponseAppendAndReplayOrder(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	conf := 80
	for i := 0; i < 3; i++ {
		err := repo.AppendResponse(ctx, ResponseEventData{
			LearnerID: "lea", Topic: "algebra", SessionID: "sess-1",
			Concept: "loops", ResponseType: "quiz",
			Correct: i == 2, Confidence: &conf,
		})
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	events, err := repo.ResponsesByTopic(ctx, "lea", "algebra")
	if err != nil {
		t.Fatalf("replay: %v", err)
	}
	if len(events) != 3 {
		t.Fatalf("len = %d, want 3", len(events))
	}
	for i := 1; i < len(events); i++ {
		if events[i].Sequence <= events[i-1].Sequence {
			t.Errorf("sequence not increasing at %d: %d then %d",
				i, events[i-1].Sequence, events[i].Sequence)
		}
	}
	if events[0].Confidence == nil || *events[0].Confidence != 80 {
		t.Errorf("confidence = %v, want 80", events[0].Confidence)
	}
}
