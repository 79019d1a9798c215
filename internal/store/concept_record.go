package store

import (
	"context"
	"fmt"

	"github.com/abhisek/studyloop/ent"
	"github.com/abhisek/studyloop/ent/conceptrecord"
)

// conceptRepo implements ConceptRepo using the ent client.
type conceptRepo struct {
	client *ent.Client
}

func (r *conceptRepo) Get(ctx context.Context, learnerID, concept string) (*ConceptRecordData, error) {
	rec, err := r.client.ConceptRecord.Query().
		Where(
			conceptrecord.LearnerID(learnerID),
			conceptrecord.Concept(concept),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query concept record: %w", err)
	}
	return entConceptToData(rec), nil
}

func (r *conceptRepo) Save(ctx context.Context, data *ConceptRecordData) error {
	existing, err := r.client.ConceptRecord.Query().
		Where(
			conceptrecord.LearnerID(data.LearnerID),
			conceptrecord.Concept(data.Concept),
		).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return fmt.Errorf("query concept record: %w", err)
	}

	if ent.IsNotFound(err) {
		builder := r.client.ConceptRecord.Create().
			SetLearnerID(data.LearnerID).
			SetConcept(data.Concept).
			SetMasteryScore(data.MasteryScore).
			SetTotalAttempts(data.TotalAttempts).
			SetCorrectAttempts(data.CorrectAttempts).
			SetEaseFactor(data.EaseFactor).
			SetIntervalDays(data.IntervalDays).
			SetReviewStreak(data.ReviewStreak).
			SetLastSeenAt(data.LastSeenAt).
			SetConfidenceSum(data.ConfidenceSum).
			SetConfidenceCount(data.ConfidenceCount)
		if data.NextReviewAt != nil {
			builder = builder.SetNextReviewAt(*data.NextReviewAt)
		}
		if _, err := builder.Save(ctx); err != nil {
			return fmt.Errorf("create concept record: %w", err)
		}
		return nil
	}

	builder := existing.Update().
		SetMasteryScore(data.MasteryScore).
		SetTotalAttempts(data.TotalAttempts).
		SetCorrectAttempts(data.CorrectAttempts).
		SetEaseFactor(data.EaseFactor).
		SetIntervalDays(data.IntervalDays).
		SetReviewStreak(data.ReviewStreak).
		SetLastSeenAt(data.LastSeenAt).
		SetConfidenceSum(data.ConfidenceSum).
		SetConfidenceCount(data.ConfidenceCount)
	if data.NextReviewAt != nil {
		builder = builder.SetNextReviewAt(*data.NextReviewAt)
	} else {
		builder = builder.ClearNextReviewAt()
	}
	if _, err := builder.Save(ctx); err != nil {
		return fmt.Errorf("update concept record: %w", err)
	}
	return nil
}

func (r *conceptRepo) ListByLearner(ctx context.Context, learnerID string) ([]*ConceptRecordData, error) {
	recs, err := r.client.ConceptRecord.Query().
		Where(conceptrecord.LearnerID(learnerID)).
		Order(ent.Asc(conceptrecord.FieldConcept)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list concept records: %w", err)
	}

	out := make([]*ConceptRecordData, len(recs))
	for i, rec := range recs {
		out[i] = entConceptToData(rec)
	}
	return out, nil
}

func entConceptToData(rec *ent.ConceptRecord) *ConceptRecordData {
	return &ConceptRecordData{
		LearnerID:       rec.LearnerID,
		Concept:         rec.Concept,
		MasteryScore:    rec.MasteryScore,
		TotalAttempts:   rec.TotalAttempts,
		CorrectAttempts: rec.CorrectAttempts,
		EaseFactor:      rec.EaseFactor,
		IntervalDays:    rec.IntervalDays,
		ReviewStreak:    rec.ReviewStreak,
		NextReviewAt:    rec.NextReviewAt,
		LastSeenAt:      rec.LastSeenAt,
		ConfidenceSum:   rec.ConfidenceSum,
		ConfidenceCount: rec.ConfidenceCount,
	}
}
