package profile

import (
	"context"
	"testing"

	"github.com/abhisek/paideia/internal/store"
)

// memProfileRepo implements store.ProfileRepo for testing.
type memProfileRepo struct {
	rows map[string]*store.ProfileRow
}

func newMemProfileRepo() *memProfileRepo {
	return &memProfileRepo{rows: make(map[string]*store.ProfileRow)}
}

func (m *memProfileRepo) Get(_ context.Context, learnerID string) (*store.ProfileRow, error) {
	r, ok := m.rows[learnerID]
	if !ok {
		return nil, store.ErrNotFound
	}
	cp := *r
	return &cp, nil
}

func (m *memProfileRepo) Create(_ context.Context, row *store.ProfileRow) error {
	cp := *row
	m.rows[row.LearnerID] = &cp
	return nil
}

func (m *memProfileRepo) Save(_ context.Context, row *store.ProfileRow) error {
	if _, ok := m.rows[row.LearnerID]; !ok {
		return store.ErrNotFound
	}
	cp := *row
	m.rows[row.LearnerID] = &cp
	return nil
}

func (m *memProfileRepo) ActiveLearnerIDs(_ context.Context) ([]string, error) {
	var ids []string
	for id, r := range m.rows {
		if !r.Archived {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

func (m *memProfileRepo) Archive(_ context.Context, learnerID string) error {
	if r, ok := m.rows[learnerID]; ok {
		r.Archived = true
	}
	return nil
}

func TestGetOrCreate_Defaults(t *testing.T) {
	svc := NewService(newMemProfileRepo())

	p, err := svc.GetOrCreate(context.Background(), "learner-1", RoleMentor)
	if err != nil {
		t.Fatalf("GetOrCreate error: %v", err)
	}
	if p.Role != RoleMentor {
		t.Errorf("Role = %s, want mentor", p.Role)
	}
	if p.Style.Visual != 50 || p.Style.Reading != 50 {
		t.Errorf("default style not even: %+v", p.Style)
	}
	if p.Methodology() != MethodSocratic {
		t.Errorf("Methodology = %s, want socratic for mentor defaults", p.Methodology())
	}
	if p.Completeness != 0 {
		t.Errorf("Completeness = %v, want 0 for a bare profile", p.Completeness)
	}
}

func TestGetOrCreate_EmptyLearnerID(t *testing.T) {
	svc := NewService(newMemProfileRepo())
	if _, err := svc.GetOrCreate(context.Background(), "", RoleStudent); err != ErrInvalidLearner {
		t.Fatalf("err = %v, want ErrInvalidLearner", err)
	}
}

func TestGetOrCreate_Idempotent(t *testing.T) {
	svc := NewService(newMemProfileRepo())
	ctx := context.Background()

	first, _ := svc.GetOrCreate(ctx, "learner-1", RoleStudent)
	second, err := svc.GetOrCreate(ctx, "learner-1", RoleAdmin)
	if err != nil {
		t.Fatalf("GetOrCreate error: %v", err)
	}
	// Role from the first contact sticks; later calls just read.
	if second.Role != first.Role {
		t.Errorf("Role changed on second GetOrCreate: %s vs %s", second.Role, first.Role)
	}
}

func TestUpdate_RecomputesCompleteness(t *testing.T) {
	svc := NewService(newMemProfileRepo())
	ctx := context.Background()
	svc.GetOrCreate(ctx, "learner-1", RoleStudent)

	age := 12
	edu := EduPrimary
	p, err := svc.Update(ctx, "learner-1", Patch{
		Interests:      []string{"space", "dinosaurs"},
		Age:            &age,
		EducationLevel: &edu,
	})
	if err != nil {
		t.Fatalf("Update error: %v", err)
	}

	// 3 of 6 optional fields populated.
	if p.Completeness != 0.5 {
		t.Errorf("Completeness = %v, want 0.5", p.Completeness)
	}
}

func TestUpdate_ClampsStyle(t *testing.T) {
	svc := NewService(newMemProfileRepo())
	ctx := context.Background()
	svc.GetOrCreate(ctx, "learner-1", RoleStudent)

	p, err := svc.Update(ctx, "learner-1", Patch{
		Style: &LearningStyle{Visual: 150, Auditory: -5, Kinesthetic: 70, Reading: 30},
	})
	if err != nil {
		t.Fatalf("Update error: %v", err)
	}
	if p.Style.Visual != 100 || p.Style.Auditory != 0 {
		t.Errorf("style not clamped: %+v", p.Style)
	}
}

func TestInferWeakness_Idempotent(t *testing.T) {
	svc := NewService(newMemProfileRepo())
	ctx := context.Background()
	svc.GetOrCreate(ctx, "learner-1", RoleStudent)

	for i := 0; i < 3; i++ {
		if err := svc.InferWeakness(ctx, "learner-1", "math"); err != nil {
			t.Fatalf("InferWeakness error: %v", err)
		}
	}

	p, _ := svc.Update(ctx, "learner-1", Patch{})
	count := 0
	for _, w := range p.Weaknesses {
		if w == "math" {
			count++
		}
	}
	if count != 1 {
		t.Errorf("weakness tagged %d times, want 1", count)
	}
}

func TestArchive(t *testing.T) {
	repo := newMemProfileRepo()
	svc := NewService(repo)
	ctx := context.Background()
	svc.GetOrCreate(ctx, "learner-1", RoleStudent)

	if err := svc.Archive(ctx, "learner-1"); err != nil {
		t.Fatalf("Archive error: %v", err)
	}
	if !repo.rows["learner-1"].Archived {
		t.Error("profile not archived")
	}
}
