package scorer

import (
	"context"
	"sync"
)

// MockGrade is a canned result for the MockScorer.
type MockGrade struct {
	SuccessIndicator float64
	Rationale        string
	Err              error
}

// MockScorer is a deterministic Scorer for testing. It returns canned
// grades in FIFO order and records all submissions.
type MockScorer struct {
	mu     sync.Mutex
	grades []MockGrade
	Calls  []Submission
}

// NewMockScorer creates a MockScorer with the given canned grades.
func NewMockScorer(grades ...MockGrade) *MockScorer {
	return &MockScorer{grades: grades}
}

// Score returns the next canned grade or ErrProviderUnavailable if the
// queue is empty.
func (m *MockScorer) Score(_ context.Context, sub Submission) (*Grade, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, sub)

	if len(m.grades) == 0 {
		return nil, &ErrProviderUnavailable{Err: nil}
	}

	g := m.grades[0]
	m.grades = m.grades[1:]

	if g.Err != nil {
		return nil, g.Err
	}
	return &Grade{
		SuccessIndicator: g.SuccessIndicator,
		Rationale:        g.Rationale,
	}, nil
}

// ModelID returns "mock".
func (m *MockScorer) ModelID() string {
	return "mock"
}

// AddGrade appends a canned grade to the queue.
func (m *MockScorer) AddGrade(g MockGrade) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.grades = append(m.grades, g)
}

// CallCount returns the number of Score calls made.
func (m *MockScorer) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}
