package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/abhisek/studyloop/internal/calibration"
	"github.com/abhisek/studyloop/internal/content"
	"github.com/abhisek/studyloop/internal/mastery"
	"github.com/abhisek/studyloop/internal/misconception"
	"github.com/abhisek/studyloop/internal/spacedrep"
	"github.com/abhisek/studyloop/internal/store"
)

type mockSessionRepo struct {
	sessions map[string]*store.SessionData
	loadErr  error
}

func newMockSessionRepo() *mockSessionRepo {
	return &mockSessionRepo{sessions: make(map[string]*store.SessionData)}
}

func (m *mockSessionRepo) LoadActive(_ context.Context, learnerID, topic string) (*store.SessionData, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	for _, s := range m.sessions {
		if s.LearnerID == learnerID && s.Topic == topic && s.Phase != string(PhaseEnded) {
			cp := *s
			return &cp, nil
		}
	}
	return nil, store.ErrSessionNotFound
}

func (m *mockSessionRepo) Get(_ context.Context, sessionID string) (*store.SessionData, error) {
	s, ok := m.sessions[sessionID]
	if !ok {
		return nil, store.ErrSessionNotFound
	}
	cp := *s
	return &cp, nil
}

func (m *mockSessionRepo) Create(_ context.Context, data *store.SessionData) error {
	data.Version = 1
	cp := *data
	m.sessions[data.SessionID] = &cp
	return nil
}

func (m *mockSessionRepo) Save(_ context.Context, data *store.SessionData) error {
	stored, ok := m.sessions[data.SessionID]
	if !ok {
		return store.ErrSessionNotFound
	}
	if stored.Version != data.Version {
		return store.ErrStaleSession
	}
	data.Version++
	cp := *data
	m.sessions[data.SessionID] = &cp
	return nil
}

type mockEventRepo struct {
	responses []store.ResponseEventRecord
	appendErr error
}

func (m *mockEventRepo) AppendResponse(_ context.Context, data store.ResponseEventData) error {
	if m.appendErr != nil {
		return m.appendErr
	}
	m.responses = append(m.responses, store.ResponseEventRecord{
		Sequence:          int64(len(m.responses) + 1),
		ResponseEventData: data,
	})
	return nil
}

func (m *mockEventRepo) ResponsesByTopic(_ context.Context, learnerID, topic string) ([]store.ResponseEventRecord, error) {
	var out []store.ResponseEventRecord
	for _, r := range m.responses {
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

type mockConceptRepo struct {
	records map[string]*store.ConceptRecordData
}

func newMockConceptRepo() *mockConceptRepo {
	return &mockConceptRepo{records: make(map[string]*store.ConceptRecordData)}
}

func (m *mockConceptRepo) Get(_ context.Context, learnerID, concept string) (*store.ConceptRecordData, error) {
	rec, ok := m.records[learnerID+"/"+concept]
	if !ok {
		return nil, nil
	}
	cp := *rec
	return &cp, nil
}

func (m *mockConceptRepo) Save(_ context.Context, data *store.ConceptRecordData) error {
	cp := *data
	m.records[data.LearnerID+"/"+data.Concept] = &cp
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
	return nil, nil
}

// fixture bundles the controller with its backing mocks.
type fixture struct {
	controller *Controller
	sessions   *mockSessionRepo
	events     *mockEventRepo
	concepts   *mockConceptRepo
	supply     *content.StaticSupply
}

func newFixture() *fixture {
	sessions := newMockSessionRepo()
	events := &mockEventRepo{}
	concepts := newMockConceptRepo()
	supply := content.NewStaticSupply()

	registry := misconception.NewRegistry(newMockMisconceptionRepo(), concepts, nil)
	scheduler := content.NewScheduler(supply, mastery.NewService(concepts), spacedrep.NewScheduler(concepts), content.DefaultConfig())

	return &fixture{
		controller: NewController(sessions, events, concepts, registry, scheduler, DefaultConfig()),
		sessions:   sessions,
		events:     events,
		concepts:   concepts,
		supply:     supply,
	}
}

func testClock() time.Time {
	return time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)
}

func intPtr(n int) *int { return &n }

func startQuizSession(t *testing.T, f *fixture) *store.SessionData {
	t.Helper()
	now := testClock()
	sess, err := f.controller.StartSession(context.Background(), "kai", "go", now)
	if err != nil {
		t.Fatalf("StartSession: %v", err)
	}
	sess, err = f.controller.SkipPhase(context.Background(), sess.SessionID, PhaseQuiz, now)
	if err != nil {
		t.Fatalf("SkipPhase: %v", err)
	}
	return sess
}

func TestStartSession_CreatesInNotesPhase(t *testing.T) {
	f := newFixture()

	sess, err := f.controller.StartSession(context.Background(), "kai", "go", testClock())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sess.Phase != string(PhaseNotes) {
		t.Errorf("phase = %q, want notes", sess.Phase)
	}
	if sess.SessionID == "" {
		t.Error("expected a session id")
	}
	if sess.Difficulty != DefaultConfig().InitialDifficulty {
		t.Errorf("difficulty = %v", sess.Difficulty)
	}
}

func TestStartSession_ResumeIsIdempotent(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	now := testClock()

	first, err := f.controller.StartSession(ctx, "kai", "go", now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Two resumes in a row return the same session and create nothing new.
	second, err := f.controller.StartSession(ctx, "kai", "go", now.Add(time.Hour))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	third, err := f.controller.StartSession(ctx, "kai", "go", now.Add(2*time.Hour))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if second.SessionID != first.SessionID || third.SessionID != first.SessionID {
		t.Errorf("resume forked a new session: %s %s %s", first.SessionID, second.SessionID, third.SessionID)
	}
	if len(f.sessions.sessions) != 1 {
		t.Errorf("expected 1 stored session, got %d", len(f.sessions.sessions))
	}
	if len(f.events.responses) != 0 {
		t.Errorf("resume must not create response-driven state, got %d events", len(f.events.responses))
	}
}

func TestStartSession_AmbiguousFailureDoesNotCreate(t *testing.T) {
	f := newFixture()
	f.sessions.loadErr = errors.New("disk trouble")

	_, err := f.controller.StartSession(context.Background(), "kai", "go", testClock())
	if err == nil {
		t.Fatal("expected error")
	}
	if len(f.sessions.sessions) != 0 {
		t.Error("start must not create a session on an ambiguous load failure")
	}
}

func TestStartSession_EndedSessionNotResumed(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	now := testClock()

	first, err := f.controller.StartSession(ctx, "kai", "go", now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := f.controller.EndSession(ctx, first.SessionID, now); err != nil {
		t.Fatalf("EndSession: %v", err)
	}

	second, err := f.controller.StartSession(ctx, "kai", "go", now.Add(time.Hour))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if second.SessionID == first.SessionID {
		t.Error("ended session must not be resumed")
	}
}

func TestRecordResponse_CorrectQuizAnswer(t *testing.T) {
	f := newFixture()
	sess := startQuizSession(t, f)

	res, err := f.controller.RecordResponse(context.Background(), sess.SessionID, Response{
		Concept:    "slices",
		Type:       TypeQuiz,
		Correct:    true,
		Confidence: intPtr(70),
	}, testClock())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if res.XPAwarded != 10 {
		t.Errorf("xp = %d, want 10", res.XPAwarded)
	}
	if res.Session.Streak != 1 || res.Session.BestStreak != 1 {
		t.Errorf("streak = %d/%d, want 1/1", res.Session.Streak, res.Session.BestStreak)
	}
	if res.Session.TotalXP != 10 {
		t.Errorf("total xp = %d", res.Session.TotalXP)
	}
	if res.Session.CardsShown != 1 {
		t.Errorf("cards shown = %d", res.Session.CardsShown)
	}

	if len(f.events.responses) != 1 {
		t.Fatalf("expected 1 event, got %d", len(f.events.responses))
	}
	ev := f.events.responses[0]
	if !ev.Correct || ev.ResponseType != TypeQuiz || *ev.Confidence != 70 {
		t.Errorf("event mismatch: %+v", ev)
	}

	rec, _ := f.concepts.Get(context.Background(), "kai", "slices")
	if rec == nil {
		t.Fatal("concept record not created")
	}
	if rec.TotalAttempts != 1 || rec.CorrectAttempts != 1 {
		t.Errorf("attempts = %d/%d", rec.CorrectAttempts, rec.TotalAttempts)
	}
	if rec.MasteryScore <= mastery.InitialScore {
		t.Errorf("mastery should rise above the prior, got %v", rec.MasteryScore)
	}
	if rec.IntervalDays != 1 || rec.NextReviewAt == nil {
		t.Errorf("first review not scheduled: interval=%d", rec.IntervalDays)
	}
}

func TestRecordResponse_WrongAnswerResetsStreak(t *testing.T) {
	f := newFixture()
	sess := startQuizSession(t, f)
	ctx := context.Background()
	now := testClock()

	for i := 0; i < 3; i++ {
		if _, err := f.controller.RecordResponse(ctx, sess.SessionID, Response{
			Concept: "slices", Type: TypeQuiz, Correct: true,
		}, now); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	res, err := f.controller.RecordResponse(ctx, sess.SessionID, Response{
		Concept: "slices", Type: TypeQuiz, Correct: false,
	}, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Session.Streak != 0 {
		t.Errorf("streak = %d, want 0", res.Session.Streak)
	}
	if res.Session.BestStreak != 3 {
		t.Errorf("best streak = %d, want 3", res.Session.BestStreak)
	}
	if res.XPAwarded != 0 {
		t.Errorf("xp = %d, want 0", res.XPAwarded)
	}
}

func TestRecordResponse_FlashcardRatingOutcome(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	now := testClock()
	sess, err := f.controller.StartSession(ctx, "kai", "go", now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := f.controller.SkipPhase(ctx, sess.SessionID, PhaseFlashcards, now); err != nil {
		t.Fatalf("SkipPhase: %v", err)
	}

	// Rating 4 is a successful recall: XP and streak.
	res, err := f.controller.RecordResponse(ctx, sess.SessionID, Response{
		Concept: "maps", Type: TypeFlashcard, Rating: intPtr(4),
	}, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.XPAwarded != 10 || res.Session.Streak != 1 {
		t.Errorf("rating 4: xp=%d streak=%d", res.XPAwarded, res.Session.Streak)
	}

	// Rating 2 is a failed recall: no XP, streak reset.
	res, err = f.controller.RecordResponse(ctx, sess.SessionID, Response{
		Concept: "maps", Type: TypeFlashcard, Rating: intPtr(2),
	}, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.XPAwarded != 0 || res.Session.Streak != 0 {
		t.Errorf("rating 2: xp=%d streak=%d", res.XPAwarded, res.Session.Streak)
	}
}

func TestRecordResponse_EndedSessionRejected(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	now := testClock()
	sess, _ := f.controller.StartSession(ctx, "kai", "go", now)
	if _, err := f.controller.EndSession(ctx, sess.SessionID, now); err != nil {
		t.Fatalf("EndSession: %v", err)
	}

	_, err := f.controller.RecordResponse(ctx, sess.SessionID, Response{
		Concept: "maps", Type: TypeQuiz, Correct: true,
	}, now)
	var invalid *ErrInvalidPhaseTransition
	if !errors.As(err, &invalid) {
		t.Fatalf("expected ErrInvalidPhaseTransition, got %v", err)
	}
}

func TestRecordResponse_CardsMilestone(t *testing.T) {
	f := newFixture()
	sess := startQuizSession(t, f)
	ctx := context.Background()
	now := testClock()

	n := DefaultConfig().CardsPerMilestone
	var res *Result
	var err error
	for i := 0; i < n; i++ {
		// Wrong answers only, so mastery never crosses the threshold
		// and the count trigger is the one under test.
		concept := "a"
		if i%2 == 0 {
			concept = "b"
		}
		res, err = f.controller.RecordResponse(ctx, sess.SessionID, Response{
			Concept: concept, Type: TypeQuiz, Correct: false,
		}, now)
		if err != nil {
			t.Fatalf("response %d: %v", i, err)
		}
		if i < n-1 && res.Milestone {
			t.Fatalf("milestone fired early at card %d", i+1)
		}
	}

	if !res.Milestone {
		t.Fatal("expected milestone on the Nth card")
	}
	if res.Session.Phase != string(PhaseMilestone) {
		t.Errorf("phase = %q", res.Session.Phase)
	}
	if res.Session.MilestoneReturn != string(PhaseQuiz) {
		t.Errorf("milestone return = %q, want quiz", res.Session.MilestoneReturn)
	}
}

func TestRecordResponse_MasteryMilestone(t *testing.T) {
	f := newFixture()
	sess := startQuizSession(t, f)
	ctx := context.Background()
	now := testClock()

	// Just below the threshold with enough attempts; one correct answer
	// crosses it.
	f.concepts.Save(ctx, &store.ConceptRecordData{
		LearnerID:       "kai",
		Concept:         "slices",
		MasteryScore:    78,
		TotalAttempts:   5,
		CorrectAttempts: 4,
		EaseFactor:      2.5,
		LastSeenAt:      now,
	})

	res, err := f.controller.RecordResponse(ctx, sess.SessionID, Response{
		Concept: "slices", Type: TypeQuiz, Correct: true,
	}, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.Milestone {
		t.Fatal("expected mastery milestone")
	}
	if res.Session.MilestoneReturn != string(PhaseQuiz) {
		t.Errorf("milestone return = %q", res.Session.MilestoneReturn)
	}

	// The next response on the mastered concept must not re-celebrate.
	res, err = f.controller.RecordResponse(ctx, sess.SessionID, Response{
		Concept: "slices", Type: TypeQuiz, Correct: true,
	}, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Milestone {
		t.Error("already-mastered concept re-triggered a milestone")
	}
}

func TestRecordResponse_NoMasteryMilestoneOnFewAttempts(t *testing.T) {
	f := newFixture()
	sess := startQuizSession(t, f)
	ctx := context.Background()

	// A single lucky first answer moves mastery to 75: below the
	// threshold, and even a higher score would be blocked by the
	// minimum attempt count.
	res, err := f.controller.RecordResponse(ctx, sess.SessionID, Response{
		Concept: "fresh", Type: TypeQuiz, Correct: true,
	}, testClock())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Milestone {
		t.Error("milestone fired on a first lucky answer")
	}
}

func TestRecordResponse_StaleSessionSurfaced(t *testing.T) {
	f := newFixture()
	sess := startQuizSession(t, f)
	ctx := context.Background()

	// Another writer bumps the stored version mid-flight.
	stored := f.sessions.sessions[sess.SessionID]
	stored.Version++

	_, err := f.controller.RecordResponse(ctx, sess.SessionID, Response{
		Concept: "slices", Type: TypeQuiz, Correct: true,
	}, testClock())
	if !errors.Is(err, store.ErrStaleSession) {
		t.Fatalf("expected ErrStaleSession, got %v", err)
	}
}

func TestSkipPhase_Valid(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	now := testClock()
	sess, _ := f.controller.StartSession(ctx, "kai", "go", now)

	got, err := f.controller.SkipPhase(ctx, sess.SessionID, PhaseQuiz, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Phase != string(PhaseQuiz) {
		t.Errorf("phase = %q", got.Phase)
	}
}

func TestSkipPhase_Invalid(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	now := testClock()
	sess, _ := f.controller.StartSession(ctx, "kai", "go", now)

	cases := []struct {
		name   string
		setup  func()
		target Phase
	}{
		{"into milestone", func() {}, PhaseMilestone},
		{"unknown phase", func() {}, Phase("lecture")},
		{"from ended", func() {
			if _, err := f.controller.EndSession(ctx, sess.SessionID, now); err != nil {
				t.Fatalf("EndSession: %v", err)
			}
		}, PhaseQuiz},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tc.setup()
			_, err := f.controller.SkipPhase(ctx, sess.SessionID, tc.target, now)
			var invalid *ErrInvalidPhaseTransition
			if !errors.As(err, &invalid) {
				t.Fatalf("expected ErrInvalidPhaseTransition, got %v", err)
			}
		})
	}
}

func TestNextBatch_ServesCurrentPhase(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	now := testClock()
	sess, _ := f.controller.StartSession(ctx, "kai", "go", now)

	items, got, err := f.controller.NextBatch(ctx, sess.SessionID, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) == 0 {
		t.Fatal("expected items")
	}
	if items[0].Kind != content.KindNote {
		t.Errorf("kind = %q, want note", items[0].Kind)
	}
	if got.Phase != string(PhaseNotes) {
		t.Errorf("phase = %q", got.Phase)
	}
}

func TestNextBatch_MilestoneResumesTriggeringPhase(t *testing.T) {
	f := newFixture()
	sess := startQuizSession(t, f)
	ctx := context.Background()
	now := testClock()

	stored := f.sessions.sessions[sess.SessionID]
	stored.Phase = string(PhaseMilestone)
	stored.MilestoneReturn = string(PhaseQuiz)

	items, got, err := f.controller.NextBatch(ctx, sess.SessionID, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Phase != string(PhaseQuiz) {
		t.Errorf("phase = %q, want quiz", got.Phase)
	}
	if got.MilestoneReturn != "" {
		t.Errorf("milestone return not cleared: %q", got.MilestoneReturn)
	}
	if len(items) == 0 || items[0].Kind != content.KindQuestion {
		t.Errorf("expected quiz items, got %+v", items)
	}
}

func TestNextBatch_SupplyFailureEndsSessionRecoverably(t *testing.T) {
	f := newFixture()
	sess := startQuizSession(t, f)
	f.supply.Err = errors.New("upstream down")

	items, got, err := f.controller.NextBatch(context.Background(), sess.SessionID, testClock())
	var unavail *content.ErrSupplyUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("expected ErrSupplyUnavailable, got %v", err)
	}
	if len(items) != 0 {
		t.Error("no items expected on failure")
	}
	if got.Phase != string(PhaseEnded) {
		t.Errorf("phase = %q, want ended", got.Phase)
	}
}

func TestNextBatch_EndedSessionServesNothing(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	now := testClock()
	sess, _ := f.controller.StartSession(ctx, "kai", "go", now)
	if _, err := f.controller.EndSession(ctx, sess.SessionID, now); err != nil {
		t.Fatalf("EndSession: %v", err)
	}

	items, got, err := f.controller.NextBatch(ctx, sess.SessionID, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 0 || got.Phase != string(PhaseEnded) {
		t.Errorf("ended session served items: %v %q", items, got.Phase)
	}
}

// Three wrong answers on one concept, each confident and tagged with the
// same misconception, must drive mastery down monotonically, flag the
// concept as weak, escalate the misconception to severe, and surface an
// overconfidence gap.
func TestScenario_ConfidentlyWrongLoops(t *testing.T) {
	f := newFixture()
	sess := startQuizSession(t, f)
	ctx := context.Background()
	now := testClock()

	var scores []float64
	var lastSeverity misconception.Severity
	for i := 0; i < 3; i++ {
		res, err := f.controller.RecordResponse(ctx, sess.SessionID, Response{
			Concept:            "Loops",
			Type:               TypeQuiz,
			Correct:            false,
			Confidence:         intPtr(80),
			MisconceptionLabel: "off-by-one",
		}, now)
		if err != nil {
			t.Fatalf("response %d: %v", i, err)
		}
		lastSeverity = res.Severity

		rec, _ := f.concepts.Get(ctx, "kai", "Loops")
		scores = append(scores, rec.MasteryScore)
	}

	if !(scores[0] < mastery.InitialScore && scores[1] < scores[0] && scores[2] < scores[1]) {
		t.Errorf("mastery not monotonically decreasing: %v", scores)
	}

	weak, err := mastery.NewService(f.concepts).WeakConcepts(ctx, "kai")
	if err != nil {
		t.Fatalf("WeakConcepts: %v", err)
	}
	found := false
	for _, w := range weak {
		if w.Concept == "Loops" {
			found = true
		}
	}
	if !found {
		t.Error("Loops missing from weak concepts")
	}

	if lastSeverity != misconception.SeveritySevere {
		t.Errorf("severity = %q, want severe", lastSeverity)
	}

	gaps, err := calibration.NewService(f.events).DunningKrugerConcepts(ctx, "kai", "go")
	if err != nil {
		t.Fatalf("DunningKrugerConcepts: %v", err)
	}
	found = false
	for _, g := range gaps {
		if g.Concept == "Loops" {
			found = true
			if g.Gap < 20 {
				t.Errorf("gap = %v, want >= 20", g.Gap)
			}
		}
	}
	if !found {
		t.Error("Loops missing from Dunning-Kruger concepts")
	}
}

// A flashcard rated 5 three times for a fresh concept schedules reviews
// at 1, 6, then round(6 * ease) days.
func TestScenario_PerfectFlashcardIntervals(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	now := testClock()
	sess, _ := f.controller.StartSession(ctx, "kai", "go", now)
	if _, err := f.controller.SkipPhase(ctx, sess.SessionID, PhaseFlashcards, now); err != nil {
		t.Fatalf("SkipPhase: %v", err)
	}

	var intervals []int
	for i := 0; i < 3; i++ {
		if _, err := f.controller.RecordResponse(ctx, sess.SessionID, Response{
			Concept: "interfaces", Type: TypeFlashcard, Rating: intPtr(5),
		}, now); err != nil {
			t.Fatalf("rating %d: %v", i, err)
		}
		rec, _ := f.concepts.Get(ctx, "kai", "interfaces")
		intervals = append(intervals, rec.IntervalDays)
	}

	// Ease grows 2.5 -> 2.6 -> 2.7 -> 2.8 on perfect ratings, so the
	// third interval is round(6 * 2.8) = 17.
	want := []int{1, 6, 17}
	for i := range want {
		if intervals[i] != want[i] {
			t.Errorf("interval %d = %d, want %d (all: %v)", i, intervals[i], want[i], intervals)
		}
	}
}
