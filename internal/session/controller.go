package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/studyloop/internal/content"
	"github.com/abhisek/studyloop/internal/mastery"
	"github.com/abhisek/studyloop/internal/misconception"
	"github.com/abhisek/studyloop/internal/spacedrep"
	"github.com/abhisek/studyloop/internal/store"
)

// Response type labels stored on every response event.
const (
	TypeQuiz      = "quiz"
	TypeFlashcard = "flashcard"
)

// Response is one learner action: a quiz answer or a flashcard rating.
type Response struct {
	Concept string

	// Type is TypeQuiz or TypeFlashcard.
	Type string

	// Correct is the quiz answer outcome. For flashcards the outcome is
	// derived from Rating instead.
	Correct bool

	// Confidence is the stated confidence 0-100. Quiz only.
	Confidence *int

	// Rating is the recall quality 0-5. Flashcards only.
	Rating *int

	// MisconceptionLabel tags a wrong quiz answer with the error
	// pattern it evidences. Empty when the distractor carries no tag.
	MisconceptionLabel string
}

// Result reports what one recorded response changed.
type Result struct {
	// Session is the saved state after the update.
	Session *store.SessionData

	// XPAwarded is the XP earned by this response (0 or XPPerCorrect).
	XPAwarded int

	// Milestone is true when this response inserted a milestone phase.
	Milestone bool

	// Severity is set when a misconception was recorded.
	Severity misconception.Severity
}

// Controller owns the session phase state machine. It is the single
// entry point for responses and fans each one out to mastery, spaced
// repetition, and misconception tracking before evaluating phase
// transitions. Calibration is recomputed from the event log at read
// time, so appending the event is its whole write path.
type Controller struct {
	sessions       store.SessionRepo
	events         store.EventRepo
	concepts       store.ConceptRepo
	misconceptions *misconception.Registry
	scheduler      *content.Scheduler
	config         Config

	mu     sync.Mutex
	served map[string][]string // session id -> prompts served, for dedup
}

// NewController wires a Controller over its collaborators.
func NewController(
	sessions store.SessionRepo,
	events store.EventRepo,
	concepts store.ConceptRepo,
	registry *misconception.Registry,
	scheduler *content.Scheduler,
	cfg Config,
) *Controller {
	return &Controller{
		sessions:       sessions,
		events:         events,
		concepts:       concepts,
		misconceptions: registry,
		scheduler:      scheduler,
		config:         cfg,
		served:         make(map[string][]string),
	}
}

// StartSession resumes the active session for (learner, topic) when one
// exists; a new session is created only on a definitive not-found, never
// on an ambiguous failure, so two racing starts cannot fork duplicates.
func (c *Controller) StartSession(ctx context.Context, learnerID, topic string, now time.Time) (*store.SessionData, error) {
	sess, err := c.sessions.LoadActive(ctx, learnerID, topic)
	if err == nil {
		return sess, nil
	}
	if !errors.Is(err, store.ErrSessionNotFound) {
		return nil, err
	}

	sess = &store.SessionData{
		SessionID:  uuid.NewString(),
		LearnerID:  learnerID,
		Topic:      topic,
		Phase:      string(PhaseNotes),
		Difficulty: c.config.InitialDifficulty,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := c.sessions.Create(ctx, sess); err != nil {
		return nil, err
	}
	return sess, nil
}

// RecordResponse applies one learner action. The event is appended
// first, then the concept record absorbs the mastery and SM-2 updates in
// a single save, then misconceptions are counted, and finally the
// session stats and phase are written with a version check. A
// store.ErrStaleSession from the final save means a concurrent writer
// won; the caller reloads and retries.
func (c *Controller) RecordResponse(ctx context.Context, sessionID string, resp Response, now time.Time) (*Result, error) {
	sess, err := c.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if Phase(sess.Phase) == PhaseEnded {
		return nil, &ErrInvalidPhaseTransition{From: PhaseEnded, To: Phase(sess.Phase)}
	}

	success := resp.Correct
	if resp.Type == TypeFlashcard && resp.Rating != nil {
		success = *resp.Rating >= c.config.PositiveRating
	}

	var confidence *int
	if resp.Type == TypeQuiz {
		confidence = resp.Confidence
	}

	if err := c.events.AppendResponse(ctx, store.ResponseEventData{
		LearnerID:          sess.LearnerID,
		Topic:              sess.Topic,
		SessionID:          sess.SessionID,
		Concept:            resp.Concept,
		ResponseType:       resp.Type,
		Correct:            success,
		Confidence:         confidence,
		Rating:             resp.Rating,
		MisconceptionLabel: resp.MisconceptionLabel,
	}); err != nil {
		return nil, err
	}

	rec, err := c.concepts.Get(ctx, sess.LearnerID, resp.Concept)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		rec = mastery.NewRecord(sess.LearnerID, resp.Concept, now)
	}

	quality := spacedrep.QualityForAnswer(success)
	if resp.Rating != nil {
		quality = *resp.Rating
	}

	prevMastery := rec.MasteryScore
	mastery.Apply(rec, success, confidence, now)
	spacedrep.Review(rec, quality, now)

	if err := c.concepts.Save(ctx, rec); err != nil {
		return nil, err
	}

	var severity misconception.Severity
	if resp.Type == TypeQuiz && !success && resp.MisconceptionLabel != "" {
		severity, err = c.misconceptions.Record(ctx, sess.LearnerID, resp.Concept, resp.MisconceptionLabel)
		if err != nil {
			return nil, err
		}
	}

	sess.CardsShown++
	xp := 0
	if success {
		sess.Streak++
		if sess.Streak > sess.BestStreak {
			sess.BestStreak = sess.Streak
		}
		xp = c.config.XPPerCorrect
		sess.TotalXP += xp
	} else {
		sess.Streak = 0
	}

	milestone := c.evaluateMilestone(sess, rec, prevMastery)
	sess.UpdatedAt = now

	if err := c.sessions.Save(ctx, sess); err != nil {
		return nil, err
	}

	return &Result{
		Session:   sess,
		XPAwarded: xp,
		Milestone: milestone,
		Severity:  severity,
	}, nil
}

// evaluateMilestone inserts the milestone phase when the just-updated
// concept crosses the mastery threshold with enough attempts behind it,
// or every CardsPerMilestone cards. Crossing means the score was below
// the threshold before this response, so a mastered concept does not
// re-celebrate on every answer. The phase that triggered it is
// remembered so NextBatch can resume there.
func (c *Controller) evaluateMilestone(sess *store.SessionData, rec *store.ConceptRecordData, prevMastery float64) bool {
	phase := Phase(sess.Phase)
	if phase != PhaseFlashcards && phase != PhaseQuiz {
		return false
	}

	mastered := prevMastery < c.config.MasteryMilestone &&
		rec.MasteryScore >= c.config.MasteryMilestone &&
		rec.TotalAttempts >= c.config.MinMilestoneAttempts
	cardsTrigger := c.config.CardsPerMilestone > 0 &&
		sess.CardsShown%c.config.CardsPerMilestone == 0

	if !mastered && !cardsTrigger {
		return false
	}

	sess.MilestoneReturn = sess.Phase
	sess.Phase = string(PhaseMilestone)
	return true
}

// NextBatch serves the next items for the session's phase. A milestone
// resumes to the phase that triggered it first. An empty batch advances
// to the following phase; when every phase is exhausted the session
// ends. A supply failure also ends the session but surfaces the
// recoverable *content.ErrSupplyUnavailable so the caller can
// distinguish "no more cards right now" from corruption.
func (c *Controller) NextBatch(ctx context.Context, sessionID string, now time.Time) ([]content.Item, *store.SessionData, error) {
	sess, err := c.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, nil, err
	}

	phase := Phase(sess.Phase)
	if phase == PhaseEnded {
		return nil, sess, nil
	}

	if phase == PhaseMilestone {
		phase = c.milestoneReturn(sess)
		sess.Phase = string(phase)
		sess.MilestoneReturn = ""
	}

	for phase != PhaseEnded {
		batch, err := c.scheduler.NextBatch(ctx, sess.LearnerID, sess.Topic, string(phase), sess.Difficulty, c.servedPrompts(sess.SessionID), now)
		if err != nil {
			sess.Phase = string(PhaseEnded)
			sess.UpdatedAt = now
			if saveErr := c.sessions.Save(ctx, sess); saveErr != nil {
				return nil, nil, saveErr
			}
			c.forgetServed(sess.SessionID)
			return nil, sess, err
		}

		sess.Difficulty = batch.Difficulty

		if len(batch.Items) > 0 {
			c.markServed(sess.SessionID, batch.Items)
			sess.UpdatedAt = now
			if err := c.sessions.Save(ctx, sess); err != nil {
				return nil, nil, err
			}
			return batch.Items, sess, nil
		}

		phase = next(phase)
		sess.Phase = string(phase)
	}

	sess.UpdatedAt = now
	if err := c.sessions.Save(ctx, sess); err != nil {
		return nil, nil, err
	}
	c.forgetServed(sess.SessionID)
	return nil, sess, nil
}

// SkipPhase forces the session into targetPhase for non-linear study
// paths. The session is fetched fresh before mutation so a stale caller
// cannot clobber newer state.
func (c *Controller) SkipPhase(ctx context.Context, sessionID string, target Phase, now time.Time) (*store.SessionData, error) {
	sess, err := c.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	from := Phase(sess.Phase)
	if !canSkipTo(from, target) {
		return nil, &ErrInvalidPhaseTransition{From: from, To: target}
	}

	sess.Phase = string(target)
	sess.MilestoneReturn = ""
	sess.UpdatedAt = now
	if err := c.sessions.Save(ctx, sess); err != nil {
		return nil, err
	}
	return sess, nil
}

// EndSession marks the session ended. Ending an already-ended session is
// a no-op.
func (c *Controller) EndSession(ctx context.Context, sessionID string, now time.Time) (*store.SessionData, error) {
	sess, err := c.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if Phase(sess.Phase) == PhaseEnded {
		return sess, nil
	}

	sess.Phase = string(PhaseEnded)
	sess.MilestoneReturn = ""
	sess.UpdatedAt = now
	if err := c.sessions.Save(ctx, sess); err != nil {
		return nil, err
	}
	c.forgetServed(sess.SessionID)
	return sess, nil
}

// milestoneReturn resolves the phase to resume after a milestone.
func (c *Controller) milestoneReturn(sess *store.SessionData) Phase {
	ret := Phase(sess.MilestoneReturn)
	if ret == PhaseFlashcards || ret == PhaseQuiz {
		return ret
	}
	return PhaseFlashcards
}

func (c *Controller) servedPrompts(sessionID string) []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	prompts := c.served[sessionID]
	out := make([]string, len(prompts))
	copy(out, prompts)
	return out
}

func (c *Controller) markServed(sessionID string, items []content.Item) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, item := range items {
		c.served[sessionID] = append(c.served[sessionID], item.Prompt)
	}
}

func (c *Controller) forgetServed(sessionID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.served, sessionID)
}
