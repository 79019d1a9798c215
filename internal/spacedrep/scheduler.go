package spacedrep

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/abhisek/studyloop/internal/store"
)

// DueReview is one concept awaiting review.
type DueReview struct {
	Concept      string
	OverdueDays  float64
	MasteryScore float64
	NextReviewAt time.Time
}

// Scheduler answers review-schedule queries over the concept repository.
type Scheduler struct {
	concepts store.ConceptRepo
}

// NewScheduler creates a scheduler.
func NewScheduler(concepts store.ConceptRepo) *Scheduler {
	return &Scheduler{concepts: concepts}
}

// DueReviews returns the learner's concepts with next_review_at <= now,
// most overdue first. Ties go to the lowest mastery score, then concept
// name for a deterministic order.
func (s *Scheduler) DueReviews(ctx context.Context, learnerID string, now time.Time) ([]DueReview, error) {
	all, err := s.concepts.ListByLearner(ctx, learnerID)
	if err != nil {
		return nil, fmt.Errorf("list concept records: %w", err)
	}

	var due []DueReview
	for _, rec := range all {
		if !IsDue(rec, now) {
			continue
		}
		due = append(due, DueReview{
			Concept:      rec.Concept,
			OverdueDays:  OverdueDays(rec, now),
			MasteryScore: rec.MasteryScore,
			NextReviewAt: *rec.NextReviewAt,
		})
	}

	sort.Slice(due, func(i, j int) bool {
		if due[i].OverdueDays != due[j].OverdueDays {
			return due[i].OverdueDays > due[j].OverdueDays
		}
		if due[i].MasteryScore != due[j].MasteryScore {
			return due[i].MasteryScore < due[j].MasteryScore
		}
		return due[i].Concept < due[j].Concept
	})

	return due, nil
}
