package content

import (
	"context"
	"time"

	"github.com/abhisek/studyloop/internal/mastery"
	"github.com/abhisek/studyloop/internal/spacedrep"
)

// Config controls batch sizing and difficulty adaptation.
type Config struct {
	// BatchSize is the number of items requested per batch. Kept small
	// so phase transitions are re-evaluated frequently.
	BatchSize int

	// NudgeFactor is how far the session difficulty moves toward the
	// mastery-derived target on each batch (0-1).
	NudgeFactor float64

	// MaxConcepts is the maximum number of priority concepts passed to
	// the supply.
	MaxConcepts int
}

// DefaultConfig returns the standard scheduler configuration.
func DefaultConfig() Config {
	return Config{
		BatchSize:   4,
		NudgeFactor: 0.3,
		MaxConcepts: 5,
	}
}

// Scheduler selects what to study next: due reviews first, weak concepts
// second, and requests batches from the supply at a difficulty derived
// from the learner's mastery.
type Scheduler struct {
	supply  Supply
	mastery *mastery.Service
	reviews *spacedrep.Scheduler
	config  Config
}

// NewScheduler creates a Scheduler over the given supply and state services.
func NewScheduler(supply Supply, ms *mastery.Service, rs *spacedrep.Scheduler, cfg Config) *Scheduler {
	return &Scheduler{supply: supply, mastery: ms, reviews: rs, config: cfg}
}

// Batch holds the items served plus the difficulty the session should
// adopt for subsequent batches.
type Batch struct {
	Items      []Item
	Difficulty float64
}

// NextBatch requests the next batch of items for the given phase.
// difficulty is the session's current difficulty; the returned Batch
// carries the nudged value. Supply failures surface as
// *ErrSupplyUnavailable and leave no state behind.
func (s *Scheduler) NextBatch(ctx context.Context, learnerID, topic, phase string, difficulty float64, priorPrompts []string, now time.Time) (*Batch, error) {
	concepts, avgMastery, err := s.priorityConcepts(ctx, learnerID, now)
	if err != nil {
		return nil, err
	}

	next := s.nudge(difficulty, avgMastery)

	items, err := s.supply.NextItems(ctx, Request{
		LearnerID:    learnerID,
		Topic:        topic,
		Phase:        phase,
		Difficulty:   next,
		Count:        s.config.BatchSize,
		Concepts:     concepts,
		PriorPrompts: priorPrompts,
	})
	if err != nil {
		return nil, &ErrSupplyUnavailable{Err: err}
	}

	return &Batch{Items: items, Difficulty: next}, nil
}

// priorityConcepts merges due reviews (most overdue first) with weak
// concepts (lowest mastery first), capped at MaxConcepts. The average
// mastery of the selected concepts drives the difficulty target; with no
// history the target stays neutral.
func (s *Scheduler) priorityConcepts(ctx context.Context, learnerID string, now time.Time) ([]string, float64, error) {
	due, err := s.reviews.DueReviews(ctx, learnerID, now)
	if err != nil {
		return nil, 0, err
	}

	seen := make(map[string]bool)
	var concepts []string
	var masterySum float64

	for _, d := range due {
		if len(concepts) >= s.config.MaxConcepts {
			break
		}
		seen[d.Concept] = true
		concepts = append(concepts, d.Concept)
		masterySum += d.MasteryScore
	}

	if len(concepts) < s.config.MaxConcepts {
		weak, err := s.mastery.WeakConcepts(ctx, learnerID)
		if err != nil {
			return nil, 0, err
		}
		for _, w := range weak {
			if len(concepts) >= s.config.MaxConcepts {
				break
			}
			if seen[w.Concept] {
				continue
			}
			seen[w.Concept] = true
			concepts = append(concepts, w.Concept)
			masterySum += w.MasteryScore
		}
	}

	if len(concepts) == 0 {
		return nil, mastery.InitialScore, nil
	}
	return concepts, masterySum / float64(len(concepts)), nil
}

// nudge moves the current difficulty partway toward mastery/100, clamped
// to [0, 1].
func (s *Scheduler) nudge(current, avgMastery float64) float64 {
	target := avgMastery / 100.0
	next := current + s.config.NudgeFactor*(target-current)
	if next < 0 {
		next = 0
	}
	if next > 1 {
		next = 1
	}
	return next
}
