package calibration

import (
	"context"
	"fmt"

	"github.com/abhisek/studyloop/internal/store"
)

// Service derives calibration views by replaying the response event log.
type Service struct {
	events store.EventRepo
}

// NewService creates a calibration service.
func NewService(events store.EventRepo) *Service {
	return &Service{events: events}
}

// Snapshot recomputes the calibration snapshot for (learner, topic).
// Returns *ErrInsufficientData until at least MinResponses scored
// responses exist; callers should present that as "not enough data yet",
// never as zeros.
func (s *Service) Snapshot(ctx context.Context, learnerID, topic string) (*Snapshot, error) {
	records, err := s.events.ResponsesByTopic(ctx, learnerID, topic)
	if err != nil {
		return nil, fmt.Errorf("replay responses: %w", err)
	}

	snap := Compute(records)
	if snap.TotalResponses < MinResponses {
		return nil, &ErrInsufficientData{Have: snap.TotalResponses, Need: MinResponses}
	}
	return snap, nil
}

// DunningKrugerConcepts returns the learner's overconfident concepts for
// a topic, widest confidence-accuracy gap first.
func (s *Service) DunningKrugerConcepts(ctx context.Context, learnerID, topic string) ([]ConceptGap, error) {
	records, err := s.events.ResponsesByTopic(ctx, learnerID, topic)
	if err != nil {
		return nil, fmt.Errorf("replay responses: %w", err)
	}
	return DunningKruger(records), nil
}
