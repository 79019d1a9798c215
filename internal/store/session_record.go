package store

import (
	"context"
	"fmt"
	"time"

	"github.com/abhisek/studyloop/ent"
	"github.com/abhisek/studyloop/ent/sessionrecord"
)

// sessionRepo implements SessionRepo using the ent client.
type sessionRepo struct {
	client *ent.Client
}

func (r *sessionRepo) LoadActive(ctx context.Context, learnerID, topic string) (*SessionData, error) {
	rec, err := r.client.SessionRecord.Query().
		Where(
			sessionrecord.LearnerID(learnerID),
			sessionrecord.Topic(topic),
			sessionrecord.PhaseNEQ("ended"),
		).
		Order(ent.Desc(sessionrecord.FieldUpdatedAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("query active session: %w", err)
	}
	return entSessionToData(rec), nil
}

func (r *sessionRepo) Get(ctx context.Context, sessionID string) (*SessionData, error) {
	rec, err := r.client.SessionRecord.Query().
		Where(sessionrecord.SessionID(sessionID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("query session %s: %w", sessionID, err)
	}
	return entSessionToData(rec), nil
}

func (r *sessionRepo) Create(ctx context.Context, data *SessionData) error {
	_, err := r.client.SessionRecord.Create().
		SetSessionID(data.SessionID).
		SetLearnerID(data.LearnerID).
		SetTopic(data.Topic).
		SetPhase(data.Phase).
		SetMilestoneReturn(data.MilestoneReturn).
		SetCardsShown(data.CardsShown).
		SetStreak(data.Streak).
		SetBestStreak(data.BestStreak).
		SetTotalXp(data.TotalXP).
		SetDifficulty(data.Difficulty).
		SetVersion(data.Version).
		SetCreatedAt(data.CreatedAt).
		SetUpdatedAt(data.UpdatedAt).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("create session: %w", err)
	}
	return nil
}

// Save writes the session guarded by the version column: the UPDATE matches
// on (session_id, version), so a concurrent writer that already bumped the
// version makes this save affect zero rows.
func (r *sessionRepo) Save(ctx context.Context, data *SessionData) error {
	now := time.Now().UTC()
	n, err := r.client.SessionRecord.Update().
		Where(
			sessionrecord.SessionID(data.SessionID),
			sessionrecord.Version(data.Version),
		).
		SetPhase(data.Phase).
		SetMilestoneReturn(data.MilestoneReturn).
		SetCardsShown(data.CardsShown).
		SetStreak(data.Streak).
		SetBestStreak(data.BestStreak).
		SetTotalXp(data.TotalXP).
		SetDifficulty(data.Difficulty).
		SetVersion(data.Version + 1).
		SetUpdatedAt(now).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	if n == 0 {
		return ErrStaleSession
	}
	data.Version++
	data.UpdatedAt = now
	return nil
}

func entSessionToData(rec *ent.SessionRecord) *SessionData {
	return &SessionData{
		SessionID:       rec.SessionID,
		LearnerID:       rec.LearnerID,
		Topic:           rec.Topic,
		Phase:           rec.Phase,
		MilestoneReturn: rec.MilestoneReturn,
		CardsShown:      rec.CardsShown,
		Streak:          rec.Streak,
		BestStreak:      rec.BestStreak,
		TotalXP:         rec.TotalXp,
		Difficulty:      rec.Difficulty,
		Version:         rec.Version,
		CreatedAt:       rec.CreatedAt,
		UpdatedAt:       rec.UpdatedAt,
	}
}
