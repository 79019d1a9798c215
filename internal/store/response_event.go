package store

import (
	"context"
	"fmt"

	"github.com/abhisek/studyloop/ent"
	"github.com/abhisek/studyloop/ent/responseevent"
)

// eventRepo implements EventRepo backed by ent and the global sequence counter.
type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *eventRepo) AppendResponse(ctx context.Context, data ResponseEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	builder := r.client.ResponseEvent.Create().
		SetSequence(seqNum).
		SetLearnerID(data.LearnerID).
		SetTopic(data.Topic).
		SetSessionID(data.SessionID).
		SetConcept(data.Concept).
		SetResponseType(data.ResponseType).
		SetCorrect(data.Correct).
		SetMisconceptionLabel(data.MisconceptionLabel)

	if data.Confidence != nil {
		builder = builder.SetConfidence(*data.Confidence)
	}
	if data.Rating != nil {
		builder = builder.SetRating(*data.Rating)
	}

	_, err = builder.Save(ctx)
	if err != nil {
		return fmt.Errorf("save response event: %w", err)
	}
	return nil
}

func (r *eventRepo) ResponsesByTopic(ctx context.Context, learnerID, topic string) ([]ResponseEventRecord, error) {
	events, err := r.client.ResponseEvent.Query().
		Where(
			responseevent.LearnerID(learnerID),
			responseevent.Topic(topic),
		).
		Order(ent.Asc(responseevent.FieldSequence)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query response events: %w", err)
	}

	records := make([]ResponseEventRecord, len(events))
	for i, e := range events {
		records[i] = ResponseEventRecord{
			Sequence:  e.Sequence,
			Timestamp: e.Timestamp,
			ResponseEventData: ResponseEventData{
				LearnerID:          e.LearnerID,
				Topic:              e.Topic,
				SessionID:          e.SessionID,
				Concept:            e.Concept,
				ResponseType:       e.ResponseType,
				Correct:            e.Correct,
				Confidence:         e.Confidence,
				Rating:             e.Rating,
				MisconceptionLabel: e.MisconceptionLabel,
			},
		}
	}
	return records, nil
}
