package store

import (
	"context"
	"fmt"

	"github.com/abhisek/studyloop/ent"
	"github.com/abhisek/studyloop/ent/misconceptionentry"
)

// misconceptionRepo implements MisconceptionRepo using the ent client.
type misconceptionRepo struct {
	client *ent.Client
}

func (r *misconceptionRepo) Increment(ctx context.Context, learnerID, concept, label string) (int, error) {
	existing, err := r.client.MisconceptionEntry.Query().
		Where(
			misconceptionentry.LearnerID(learnerID),
			misconceptionentry.Concept(concept),
			misconceptionentry.LabelEQ(label),
		).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return 0, fmt.Errorf("query misconception entry: %w", err)
	}

	if ent.IsNotFound(err) {
		_, err := r.client.MisconceptionEntry.Create().
			SetLearnerID(learnerID).
			SetConcept(concept).
			SetLabel(label).
			SetOccurrenceCount(1).
			Save(ctx)
		if err != nil {
			return 0, fmt.Errorf("create misconception entry: %w", err)
		}
		return 1, nil
	}

	updated, err := existing.Update().
		SetOccurrenceCount(existing.OccurrenceCount + 1).
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("update misconception entry: %w", err)
	}
	return updated.OccurrenceCount, nil
}

func (r *misconceptionRepo) ListByLearner(ctx context.Context, learnerID string) ([]MisconceptionData, error) {
	entries, err := r.client.MisconceptionEntry.Query().
		Where(misconceptionentry.LearnerID(learnerID)).
		Order(ent.Desc(misconceptionentry.FieldOccurrenceCount)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list misconception entries: %w", err)
	}

	out := make([]MisconceptionData, len(entries))
	for i, e := range entries {
		out[i] = MisconceptionData{
			LearnerID:       e.LearnerID,
			Concept:         e.Concept,
			Label:           e.Label,
			OccurrenceCount: e.OccurrenceCount,
		}
	}
	return out, nil
}
