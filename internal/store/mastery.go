package store

import (
	"context"
	"fmt"

	"github.com/abhisek/paideia/ent"
	"github.com/abhisek/paideia/ent/masteryrecord"
)

type masteryRepo struct {
	client *ent.Client
}

func (r *masteryRepo) Get(ctx context.Context, learnerID, conceptID string) (*MasteryRow, error) {
	row, err := r.client.MasteryRecord.Query().
		Where(
			masteryrecord.LearnerID(learnerID),
			masteryrecord.ConceptID(conceptID),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("query mastery record: %w", err)
	}
	return mapMastery(row), nil
}

// Upsert relies on the caller serializing writes per (learner, concept);
// the ledger holds a per-key lock, so check-then-write here cannot race
// with itself for the same pair.
func (r *masteryRepo) Upsert(ctx context.Context, row *MasteryRow) error {
	n, err := r.client.MasteryRecord.Update().
		Where(
			masteryrecord.LearnerID(row.LearnerID),
			masteryrecord.ConceptID(row.ConceptID),
		).
		SetScore(row.Score).
		SetInteractionCount(row.InteractionCount).
		SetLastUpdatedAt(row.LastUpdatedAt).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("update mastery record: %w", err)
	}
	if n > 0 {
		return nil
	}

	_, err = r.client.MasteryRecord.Create().
		SetLearnerID(row.LearnerID).
		SetConceptID(row.ConceptID).
		SetScore(row.Score).
		SetInteractionCount(row.InteractionCount).
		SetLastUpdatedAt(row.LastUpdatedAt).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("create mastery record: %w", err)
	}
	return nil
}

func (r *masteryRepo) ByLearner(ctx context.Context, learnerID string) ([]*MasteryRow, error) {
	rows, err := r.client.MasteryRecord.Query().
		Where(masteryrecord.LearnerID(learnerID)).
		Order(ent.Asc(masteryrecord.FieldConceptID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query mastery records: %w", err)
	}

	out := make([]*MasteryRow, len(rows))
	for i, e := range rows {
		out[i] = mapMastery(e)
	}
	return out, nil
}

func mapMastery(e *ent.MasteryRecord) *MasteryRow {
	return &MasteryRow{
		LearnerID:        e.LearnerID,
		ConceptID:        e.ConceptID,
		Score:            e.Score,
		InteractionCount: e.InteractionCount,
		LastUpdatedAt:    e.LastUpdatedAt,
	}
}
