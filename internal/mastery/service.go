package mastery

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/abhisek/studyloop/internal/store"
)

// Service provides mastery reads and updates over the concept repository.
// All state is keyed by (learner, concept); the service holds nothing
// mutable itself, so concurrent sessions for different learners never
// contend.
type Service struct {
	concepts store.ConceptRepo
}

// NewService creates a mastery service.
func NewService(concepts store.ConceptRepo) *Service {
	return &Service{concepts: concepts}
}

// Get returns the record for (learner, concept), or a fresh default record
// if the concept has never been attempted. The default is not persisted
// until the first update.
func (s *Service) Get(ctx context.Context, learnerID, concept string, now time.Time) (*store.ConceptRecordData, error) {
	rec, err := s.concepts.Get(ctx, learnerID, concept)
	if err != nil {
		return nil, fmt.Errorf("load concept record: %w", err)
	}
	if rec == nil {
		rec = NewRecord(learnerID, concept, now)
	}
	return rec, nil
}

// Update applies one response to (learner, concept) and persists the result.
// Returns the updated record.
func (s *Service) Update(ctx context.Context, learnerID, concept string, correct bool, confidence *int, now time.Time) (*store.ConceptRecordData, error) {
	rec, err := s.Get(ctx, learnerID, concept, now)
	if err != nil {
		return nil, err
	}

	Apply(rec, correct, confidence, now)

	if err := s.concepts.Save(ctx, rec); err != nil {
		return nil, fmt.Errorf("save concept record: %w", err)
	}
	return rec, nil
}

// WeakConcepts returns all concepts with mastery below WeakThreshold,
// weakest first. Ties go to the concept with more attempts: more evidence
// means more confidently weak.
func (s *Service) WeakConcepts(ctx context.Context, learnerID string) ([]*store.ConceptRecordData, error) {
	all, err := s.concepts.ListByLearner(ctx, learnerID)
	if err != nil {
		return nil, fmt.Errorf("list concept records: %w", err)
	}

	var weak []*store.ConceptRecordData
	for _, rec := range all {
		if rec.MasteryScore < WeakThreshold {
			weak = append(weak, rec)
		}
	}

	sort.Slice(weak, func(i, j int) bool {
		if weak[i].MasteryScore != weak[j].MasteryScore {
			return weak[i].MasteryScore < weak[j].MasteryScore
		}
		if weak[i].TotalAttempts != weak[j].TotalAttempts {
			return weak[i].TotalAttempts > weak[j].TotalAttempts
		}
		return weak[i].Concept < weak[j].Concept
	})

	return weak, nil
}
