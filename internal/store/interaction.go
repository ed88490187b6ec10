package store

import (
	"context"
	"fmt"
	"time"

	"github.com/abhisek/paideia/ent"
	"github.com/abhisek/paideia/ent/interaction"
)

type interactionRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *interactionRepo) Append(ctx context.Context, data InteractionData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.Interaction.Create().
		SetSequence(seqNum).
		SetInteractionID(data.InteractionID).
		SetSessionID(data.SessionID).
		SetLearnerID(data.LearnerID).
		SetConceptID(data.ConceptID).
		SetSubject(data.Subject).
		SetDifficultyLevel(data.DifficultyLevel).
		SetMethodology(data.Methodology).
		SetQuestionText(data.QuestionText).
		SetRepeatedQuestion(data.Repeated).
		SetPrevInteractionID(data.PrevInteractionID).
		SetTimeOfDay(data.TimeOfDay).
		SetDeviceType(data.DeviceType).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save interaction: %w", err)
	}
	return nil
}

func (r *interactionRepo) Score(ctx context.Context, interactionID string, data ScoreData) error {
	row, err := r.client.Interaction.Query().
		Where(interaction.InteractionID(interactionID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("query interaction: %w", err)
	}

	if row.SuccessIndicator != nil {
		return fmt.Errorf("interaction %s already scored", interactionID)
	}

	_, err = row.Update().
		SetResponseText(data.ResponseText).
		SetSuccessIndicator(data.SuccessIndicator).
		SetUnscored(data.Unscored).
		SetResponseLatencyMs(data.ResponseLatencyMs).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("score interaction: %w", err)
	}
	return nil
}

func (r *interactionRepo) BySession(ctx context.Context, sessionID string) ([]*InteractionRow, error) {
	rows, err := r.client.Interaction.Query().
		Where(interaction.SessionID(sessionID)).
		Order(ent.Asc(interaction.FieldSequence)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query session interactions: %w", err)
	}
	return mapInteractions(rows), nil
}

func (r *interactionRepo) RecentByLearner(ctx context.Context, learnerID string, since time.Time) ([]*InteractionRow, error) {
	rows, err := r.client.Interaction.Query().
		Where(
			interaction.LearnerID(learnerID),
			interaction.TimestampGTE(since),
		).
		Order(ent.Desc(interaction.FieldSequence)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query recent interactions: %w", err)
	}
	return mapInteractions(rows), nil
}

func (r *interactionRepo) SubjectAccuracy(ctx context.Context, learnerID, subject string, lastN int) (float64, int, error) {
	rows, err := r.client.Interaction.Query().
		Where(
			interaction.LearnerID(learnerID),
			interaction.Subject(subject),
			interaction.SuccessIndicatorNotNil(),
		).
		Order(ent.Desc(interaction.FieldSequence)).
		Limit(lastN).
		All(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("query subject accuracy: %w", err)
	}

	count := len(rows)
	if count == 0 {
		return 0, 0, nil
	}

	var sum float64
	for _, e := range rows {
		sum += *e.SuccessIndicator
	}
	return sum / float64(count), count, nil
}

func mapInteractions(rows []*ent.Interaction) []*InteractionRow {
	out := make([]*InteractionRow, len(rows))
	for i, e := range rows {
		out[i] = &InteractionRow{
			Sequence:          e.Sequence,
			Timestamp:         e.Timestamp,
			InteractionID:     e.InteractionID,
			SessionID:         e.SessionID,
			LearnerID:         e.LearnerID,
			ConceptID:         e.ConceptID,
			Subject:           e.Subject,
			DifficultyLevel:   e.DifficultyLevel,
			Methodology:       e.Methodology,
			QuestionText:      e.QuestionText,
			ResponseText:      e.ResponseText,
			SuccessIndicator:  e.SuccessIndicator,
			Unscored:          e.Unscored,
			Repeated:          e.RepeatedQuestion,
			PrevInteractionID: e.PrevInteractionID,
			ResponseLatencyMs: e.ResponseLatencyMs,
		}
	}
	return out
}
