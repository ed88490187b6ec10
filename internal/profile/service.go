package profile

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/abhisek/paideia/internal/store"
)

// ErrInvalidLearner is returned for empty or unknown learner identifiers.
// This is the one error class callers must surface; there is no safe
// default learner.
var ErrInvalidLearner = errors.New("profile: invalid learner id")

// Service manages learner profiles over the store.
type Service struct {
	repo store.ProfileRepo
}

// NewService creates a profile service.
func NewService(repo store.ProfileRepo) *Service {
	return &Service{repo: repo}
}

// GetOrCreate returns the learner's profile, creating one with role-based
// defaults on first tutoring contact.
func (s *Service) GetOrCreate(ctx context.Context, learnerID string, role Role) (*Profile, error) {
	if learnerID == "" {
		return nil, ErrInvalidLearner
	}
	if !role.Valid() {
		role = RoleStudent
	}

	row, err := s.repo.Get(ctx, learnerID)
	if err == nil {
		return fromRow(row), nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("get profile: %w", err)
	}

	p := &Profile{
		LearnerID: learnerID,
		Role:      role,
		Style:     LearningStyle{Visual: 50, Auditory: 50, Kinesthetic: 50, Reading: 50},
	}
	p.RecomputeCompleteness()

	if err := s.repo.Create(ctx, toRow(p)); err != nil {
		return nil, fmt.Errorf("create profile: %w", err)
	}
	return p, nil
}

// Patch holds a partial profile update. Nil fields are left unchanged.
type Patch struct {
	Role            *Role
	Style           *LearningStyle
	Interests       []string
	Strengths       []string
	Weaknesses      []string
	Age             *int
	EducationLevel  *EducationLevel
	CulturalContext *string
}

// Update merges patch into the learner's profile and recomputes
// completeness.
func (s *Service) Update(ctx context.Context, learnerID string, patch Patch) (*Profile, error) {
	if learnerID == "" {
		return nil, ErrInvalidLearner
	}

	row, err := s.repo.Get(ctx, learnerID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrInvalidLearner
		}
		return nil, fmt.Errorf("get profile: %w", err)
	}

	p := fromRow(row)
	if patch.Role != nil && patch.Role.Valid() {
		p.Role = *patch.Role
	}
	if patch.Style != nil {
		p.Style = clampStyle(*patch.Style)
	}
	if patch.Interests != nil {
		p.Interests = patch.Interests
	}
	if patch.Strengths != nil {
		p.Strengths = patch.Strengths
	}
	if patch.Weaknesses != nil {
		p.Weaknesses = patch.Weaknesses
	}
	if patch.Age != nil {
		p.Age = *patch.Age
	}
	if patch.EducationLevel != nil {
		p.EducationLevel = *patch.EducationLevel
	}
	if patch.CulturalContext != nil {
		p.CulturalContext = *patch.CulturalContext
	}
	p.RecomputeCompleteness()

	if err := s.repo.Save(ctx, toRow(p)); err != nil {
		return nil, fmt.Errorf("save profile: %w", err)
	}
	return p, nil
}

// InferWeakness passively tags a subject as a weakness after repeated low
// mastery. Idempotent; existing tags are kept.
func (s *Service) InferWeakness(ctx context.Context, learnerID, subject string) error {
	if learnerID == "" || subject == "" {
		return ErrInvalidLearner
	}

	row, err := s.repo.Get(ctx, learnerID)
	if err != nil {
		return fmt.Errorf("get profile: %w", err)
	}

	p := fromRow(row)
	if slices.Contains(p.Weaknesses, subject) {
		return nil
	}
	p.Weaknesses = append(p.Weaknesses, subject)
	p.RecomputeCompleteness()

	if err := s.repo.Save(ctx, toRow(p)); err != nil {
		return fmt.Errorf("save profile: %w", err)
	}
	return nil
}

// Archive logically archives a profile when the upstream learner record
// is deleted. Profile rows are never hard-deleted.
func (s *Service) Archive(ctx context.Context, learnerID string) error {
	if learnerID == "" {
		return ErrInvalidLearner
	}
	return s.repo.Archive(ctx, learnerID)
}

func clampStyle(st LearningStyle) LearningStyle {
	clamp := func(v int) int {
		if v < 0 {
			return 0
		}
		if v > 100 {
			return 100
		}
		return v
	}
	return LearningStyle{
		Visual:      clamp(st.Visual),
		Auditory:    clamp(st.Auditory),
		Kinesthetic: clamp(st.Kinesthetic),
		Reading:     clamp(st.Reading),
	}
}

func fromRow(r *store.ProfileRow) *Profile {
	return &Profile{
		LearnerID: r.LearnerID,
		Role:      Role(r.Role),
		Style: LearningStyle{
			Visual:      r.StyleVisual,
			Auditory:    r.StyleAuditory,
			Kinesthetic: r.StyleKinesthetic,
			Reading:     r.StyleReading,
		},
		Interests:       r.Interests,
		Strengths:       r.Strengths,
		Weaknesses:      r.Weaknesses,
		Age:             r.Age,
		EducationLevel:  EducationLevel(r.EducationLevel),
		CulturalContext: r.CulturalContext,
		Completeness:    r.Completeness,
		Archived:        r.Archived,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}
}

func toRow(p *Profile) *store.ProfileRow {
	return &store.ProfileRow{
		LearnerID:        p.LearnerID,
		Role:             string(p.Role),
		StyleVisual:      p.Style.Visual,
		StyleAuditory:    p.Style.Auditory,
		StyleKinesthetic: p.Style.Kinesthetic,
		StyleReading:     p.Style.Reading,
		Interests:        p.Interests,
		Strengths:        p.Strengths,
		Weaknesses:       p.Weaknesses,
		Age:              p.Age,
		EducationLevel:   string(p.EducationLevel),
		CulturalContext:  p.CulturalContext,
		Completeness:     p.Completeness,
		Archived:         p.Archived,
	}
}
