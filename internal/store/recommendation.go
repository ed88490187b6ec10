package store

import (
	"context"
	"fmt"
	"time"

	"github.com/abhisek/paideia/ent"
	"github.com/abhisek/paideia/ent/recommendation"
)

const (
	// StatusPending is the initial recommendation status.
	StatusPending = "pending"
	// StatusAccepted marks learner-accepted recommendations.
	StatusAccepted = "accepted"
	// StatusDismissed marks learner-dismissed recommendations.
	StatusDismissed = "dismissed"
	// StatusExpired marks recommendations past their TTL.
	StatusExpired = "expired"
)

type recommendationRepo struct {
	client *ent.Client
}

// UpsertPending runs in a transaction so concurrent generation runs for the
// same learner cannot create two pending rows for one (type, concept) tuple.
func (r *recommendationRepo) UpsertPending(ctx context.Context, row *RecommendationRow) (*RecommendationRow, error) {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}

	stored, err := upsertPendingTx(ctx, tx, row)
	if err != nil {
		_ = tx.Rollback()
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}
	return stored, nil
}

func upsertPendingTx(ctx context.Context, tx *ent.Tx, row *RecommendationRow) (*RecommendationRow, error) {
	existing, err := tx.Recommendation.Query().
		Where(
			recommendation.LearnerID(row.LearnerID),
			recommendation.RecType(row.Type),
			recommendation.ConceptID(row.ConceptID),
			recommendation.Status(StatusPending),
		).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return nil, fmt.Errorf("query pending recommendation: %w", err)
	}

	if existing != nil {
		updated, err := existing.Update().
			SetReasoning(row.Reasoning).
			SetPriority(row.Priority).
			SetUrgency(row.Urgency).
			SetDifficultyLevel(row.DifficultyLevel).
			SetEstimatedMinutes(row.EstimatedMinutes).
			SetExpiresAt(row.ExpiresAt).
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("refresh pending recommendation: %w", err)
		}
		return mapRecommendation(updated), nil
	}

	created, err := tx.Recommendation.Create().
		SetRecommendationID(row.RecommendationID).
		SetLearnerID(row.LearnerID).
		SetRecType(row.Type).
		SetConceptID(row.ConceptID).
		SetTitle(row.Title).
		SetDescription(row.Description).
		SetReasoning(row.Reasoning).
		SetDifficultyLevel(row.DifficultyLevel).
		SetEstimatedMinutes(row.EstimatedMinutes).
		SetPriority(row.Priority).
		SetUrgency(row.Urgency).
		SetStatus(StatusPending).
		SetCreatedAt(row.CreatedAt).
		SetExpiresAt(row.ExpiresAt).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create recommendation: %w", err)
	}
	return mapRecommendation(created), nil
}

func (r *recommendationRepo) ByLearner(ctx context.Context, learnerID, status string, now time.Time) ([]*RecommendationRow, error) {
	// Lazy expiry: flip pending rows past their TTL before reading.
	_, err := r.client.Recommendation.Update().
		Where(
			recommendation.LearnerID(learnerID),
			recommendation.Status(StatusPending),
			recommendation.ExpiresAtLT(now),
		).
		SetStatus(StatusExpired).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("expire recommendations: %w", err)
	}

	q := r.client.Recommendation.Query().
		Where(recommendation.LearnerID(learnerID))
	if status != "" {
		q = q.Where(recommendation.Status(status))
	}

	rows, err := q.
		Order(ent.Desc(recommendation.FieldPriority), ent.Desc(recommendation.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query recommendations: %w", err)
	}

	out := make([]*RecommendationRow, len(rows))
	for i, e := range rows {
		out[i] = mapRecommendation(e)
	}
	return out, nil
}

func (r *recommendationRepo) SetStatus(ctx context.Context, recommendationID, status string) error {
	n, err := r.client.Recommendation.Update().
		Where(recommendation.RecommendationID(recommendationID)).
		SetStatus(status).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("set recommendation status: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func mapRecommendation(e *ent.Recommendation) *RecommendationRow {
	return &RecommendationRow{
		RecommendationID: e.RecommendationID,
		LearnerID:        e.LearnerID,
		Type:             e.RecType,
		ConceptID:        e.ConceptID,
		Title:            e.Title,
		Description:      e.Description,
		Reasoning:        e.Reasoning,
		DifficultyLevel:  e.DifficultyLevel,
		EstimatedMinutes: e.EstimatedMinutes,
		Priority:         e.Priority,
		Urgency:          e.Urgency,
		Status:           e.Status,
		CreatedAt:        e.CreatedAt,
		ExpiresAt:        e.ExpiresAt,
	}
}
