package catalog

import "math/rand/v2"

// Picker makes random selections from catalog entries with session-scoped
// repeat avoidance. The random source is injected so tests can pin picks.
// A Picker is owned by a single session and is not safe for concurrent use.
type Picker struct {
	rng *rand.Rand

	// lastAnalogy and lastExample remember the previous pick per concept
	// to avoid immediate repeats.
	lastAnalogy map[string]int
	lastExample map[string]int
}

// NewPicker creates a Picker seeded from the given value.
func NewPicker(seed uint64) *Picker {
	return NewPickerFromSource(rand.New(rand.NewPCG(seed, seed)))
}

// NewPickerFromSource creates a Picker over an existing random source.
func NewPickerFromSource(rng *rand.Rand) *Picker {
	return &Picker{
		rng:         rng,
		lastAnalogy: make(map[string]int),
		lastExample: make(map[string]int),
	}
}

// GuidingQuestion picks a uniform-random question from the entry that is
// not in asked. When every question has been asked, it allows repeats and
// reports repeated=true.
func (p *Picker) GuidingQuestion(e *Entry, asked map[string]bool) (question string, repeated bool) {
	var fresh []string
	for _, q := range e.GuidingQuestions {
		if !asked[q] {
			fresh = append(fresh, q)
		}
	}

	if len(fresh) > 0 {
		return fresh[p.rng.IntN(len(fresh))], false
	}
	return e.GuidingQuestions[p.rng.IntN(len(e.GuidingQuestions))], true
}

// Analogy picks a random analogy, avoiding the immediately previous pick
// for the same concept when more than one exists.
func (p *Picker) Analogy(e *Entry) string {
	idx := p.pickAvoidingLast(len(e.Analogies), p.lastAnalogy, e.ConceptID)
	return e.Analogies[idx]
}

// RealWorldExample picks a random example with the same
// no-immediate-repeat policy as Analogy.
func (p *Picker) RealWorldExample(e *Entry) string {
	idx := p.pickAvoidingLast(len(e.RealWorldExamples), p.lastExample, e.ConceptID)
	return e.RealWorldExamples[idx]
}

func (p *Picker) pickAvoidingLast(n int, last map[string]int, key string) int {
	if n == 1 {
		last[key] = 0
		return 0
	}

	prev, seen := last[key]
	idx := p.rng.IntN(n)
	if seen && idx == prev {
		// Re-roll over the remaining n-1 positions; never lands on prev.
		idx = (prev + 1 + p.rng.IntN(n-1)) % n
	}
	last[key] = idx
	return idx
}
