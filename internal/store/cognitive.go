package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/abhisek/learnloop/ent"
	"github.com/abhisek/learnloop/ent/cognitivestate"
	"github.com/abhisek/learnloop/ent/schema"
)

// cognitiveRepo implements CognitiveRepo using the ent client.
type cognitiveRepo struct {
	client *ent.Client
}

func (r *cognitiveRepo) Get(ctx context.Context, userID string) (*CognitiveRecord, error) {
	row, err := r.client.CognitiveState.Query().
		Where(cognitivestate.UserID(userID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("cognitive state for user %s: %w", userID, ErrNotFound)
		}
		return nil, fmt.Errorf("query cognitive state: %w", err)
	}
	return entCognitiveToRecord(row), nil
}

func (r *cognitiveRepo) Upsert(ctx context.Context, rec *CognitiveRecord) error {
	row, err := r.client.CognitiveState.Query().
		Where(cognitivestate.UserID(rec.UserID)).
		Only(ctx)
	if err != nil {
		if !ent.IsNotFound(err) {
			return fmt.Errorf("query cognitive state: %w", err)
		}
		_, err = r.client.CognitiveState.Create().
			SetUserID(rec.UserID).
			SetFocusScore(rec.FocusScore).
			SetLastUpdated(rec.LastUpdated).
			SetSessionHistory(summariesToSchema(rec.SessionHistory)).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("create cognitive state: %w", err)
		}
		return nil
	}

	_, err = r.client.CognitiveState.UpdateOne(row).
		SetFocusScore(rec.FocusScore).
		SetLastUpdated(rec.LastUpdated).
		SetSessionHistory(summariesToSchema(rec.SessionHistory)).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("update cognitive state: %w", err)
	}
	return nil
}

func (r *cognitiveRepo) AppendSession(ctx context.Context, userID string, sum SessionSummary) error {
	rec, err := r.Get(ctx, userID)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			return err
		}
		rec = &CognitiveRecord{
			UserID:      userID,
			FocusScore:  DefaultFocusScore,
			LastUpdated: sum.EndedAt,
		}
	}

	rec.SessionHistory = append(rec.SessionHistory, sum)
	if len(rec.SessionHistory) > SessionHistoryCap {
		rec.SessionHistory = rec.SessionHistory[len(rec.SessionHistory)-SessionHistoryCap:]
	}
	return r.Upsert(ctx, rec)
}

func (r *cognitiveRepo) ListStale(ctx context.Context, cutoff time.Time) ([]CognitiveRecord, error) {
	rows, err := r.client.CognitiveState.Query().
		Where(cognitivestate.LastUpdatedLT(cutoff)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query stale cognitive states: %w", err)
	}
	out := make([]CognitiveRecord, len(rows))
	for i, row := range rows {
		out[i] = *entCognitiveToRecord(row)
	}
	return out, nil
}

func entCognitiveToRecord(row *ent.CognitiveState) *CognitiveRecord {
	return &CognitiveRecord{
		UserID:         row.UserID,
		FocusScore:     row.FocusScore,
		LastUpdated:    row.LastUpdated,
		SessionHistory: summariesFromSchema(row.SessionHistory),
	}
}

func summariesToSchema(sums []SessionSummary) []schema.SessionSummary {
	out := make([]schema.SessionSummary, len(sums))
	for i, s := range sums {
		out[i] = schema.SessionSummary{
			SessionID:        s.SessionID,
			ContextType:      s.ContextType,
			ContextID:        s.ContextID,
			StartedAt:        s.StartedAt,
			EndedAt:          s.EndedAt,
			DurationSeconds:  s.DurationSeconds,
			InteractionCount: s.InteractionCount,
		}
	}
	return out
}

func summariesFromSchema(sums []schema.SessionSummary) []SessionSummary {
	out := make([]SessionSummary, len(sums))
	for i, s := range sums {
		out[i] = SessionSummary{
			SessionID:        s.SessionID,
			ContextType:      s.ContextType,
			ContextID:        s.ContextID,
			StartedAt:        s.StartedAt,
			EndedAt:          s.EndedAt,
			DurationSeconds:  s.DurationSeconds,
			InteractionCount: s.InteractionCount,
		}
	}
	return out
}
