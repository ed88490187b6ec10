package store

import (
	"context"
	"fmt"

	"github.com/abhisek/paideia/ent"
	"github.com/abhisek/paideia/ent/learnerprofile"
)

type profileRepo struct {
	client *ent.Client
}

func (r *profileRepo) Get(ctx context.Context, learnerID string) (*ProfileRow, error) {
	row, err := r.client.LearnerProfile.Query().
		Where(learnerprofile.LearnerID(learnerID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("query profile: %w", err)
	}
	return mapProfile(row), nil
}

func (r *profileRepo) Create(ctx context.Context, row *ProfileRow) error {
	_, err := r.client.LearnerProfile.Create().
		SetLearnerID(row.LearnerID).
		SetRole(row.Role).
		SetStyleVisual(row.StyleVisual).
		SetStyleAuditory(row.StyleAuditory).
		SetStyleKinesthetic(row.StyleKinesthetic).
		SetStyleReading(row.StyleReading).
		SetInterests(row.Interests).
		SetStrengths(row.Strengths).
		SetWeaknesses(row.Weaknesses).
		SetAge(row.Age).
		SetEducationLevel(row.EducationLevel).
		SetCulturalContext(row.CulturalContext).
		SetCompleteness(row.Completeness).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("create profile: %w", err)
	}
	return nil
}

func (r *profileRepo) Save(ctx context.Context, row *ProfileRow) error {
	n, err := r.client.LearnerProfile.Update().
		Where(learnerprofile.LearnerID(row.LearnerID)).
		SetRole(row.Role).
		SetStyleVisual(row.StyleVisual).
		SetStyleAuditory(row.StyleAuditory).
		SetStyleKinesthetic(row.StyleKinesthetic).
		SetStyleReading(row.StyleReading).
		SetInterests(row.Interests).
		SetStrengths(row.Strengths).
		SetWeaknesses(row.Weaknesses).
		SetAge(row.Age).
		SetEducationLevel(row.EducationLevel).
		SetCulturalContext(row.CulturalContext).
		SetCompleteness(row.Completeness).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save profile: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *profileRepo) ActiveLearnerIDs(ctx context.Context) ([]string, error) {
	ids, err := r.client.LearnerProfile.Query().
		Where(learnerprofile.Archived(false)).
		Order(ent.Asc(learnerprofile.FieldLearnerID)).
		Select(learnerprofile.FieldLearnerID).
		Strings(ctx)
	if err != nil {
		return nil, fmt.Errorf("query active learners: %w", err)
	}
	return ids, nil
}

func (r *profileRepo) Archive(ctx context.Context, learnerID string) error {
	_, err := r.client.LearnerProfile.Update().
		Where(learnerprofile.LearnerID(learnerID)).
		SetArchived(true).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("archive profile: %w", err)
	}
	return nil
}

func mapProfile(e *ent.LearnerProfile) *ProfileRow {
	return &ProfileRow{
		LearnerID:        e.LearnerID,
		Role:             e.Role,
		StyleVisual:      e.StyleVisual,
		StyleAuditory:    e.StyleAuditory,
		StyleKinesthetic: e.StyleKinesthetic,
		StyleReading:     e.StyleReading,
		Interests:        e.Interests,
		Strengths:        e.Strengths,
		Weaknesses:       e.Weaknesses,
		Age:              e.Age,
		EducationLevel:   e.EducationLevel,
		CulturalContext:  e.CulturalContext,
		Completeness:     e.Completeness,
		Archived:         e.Archived,
		CreatedAt:        e.CreatedAt,
		UpdatedAt:        e.UpdatedAt,
	}
}
