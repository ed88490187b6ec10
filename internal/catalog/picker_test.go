package catalog

import "testing"

func pickerEntry() *Entry {
	return &Entry{
		ConceptID:            "test-concept",
		Subject:              "math",
		GuidingQuestions:     []string{"q1", "q2", "q3"},
		Analogies:            []string{"a1", "a2", "a3"},
		RealWorldExamples:    []string{"e1", "e2"},
		CommonMisconceptions: []string{"m1"},
		VisualAids:           []string{"v1"},
	}
}

func TestGuidingQuestion_NoRepeatUntilExhausted(t *testing.T) {
	p := NewPicker(42)
	e := pickerEntry()
	asked := make(map[string]bool)

	for i := 0; i < len(e.GuidingQuestions); i++ {
		q, repeated := p.GuidingQuestion(e, asked)
		if repeated {
			t.Fatalf("pick %d flagged repeated before exhaustion", i)
		}
		if asked[q] {
			t.Fatalf("pick %d returned already-asked question %q", i, q)
		}
		asked[q] = true
	}

	// Pool exhausted: repeats allowed, flagged.
	q, repeated := p.GuidingQuestion(e, asked)
	if !repeated {
		t.Error("expected repeated=true after exhaustion")
	}
	if !asked[q] {
		t.Errorf("exhausted pick %q not from the original pool", q)
	}
}

func TestGuidingQuestion_Deterministic(t *testing.T) {
	e := pickerEntry()
	q1, _ := NewPicker(7).GuidingQuestion(e, nil)
	q2, _ := NewPicker(7).GuidingQuestion(e, nil)
	if q1 != q2 {
		t.Errorf("same seed produced different picks: %q vs %q", q1, q2)
	}
}

func TestAnalogy_NoImmediateRepeat(t *testing.T) {
	p := NewPicker(1)
	e := pickerEntry()

	prev := p.Analogy(e)
	for i := 0; i < 50; i++ {
		next := p.Analogy(e)
		if next == prev {
			t.Fatalf("iteration %d repeated analogy %q", i, next)
		}
		prev = next
	}
}

func TestAnalogy_SingleItemAlwaysReturned(t *testing.T) {
	p := NewPicker(1)
	e := pickerEntry()
	e.Analogies = []string{"only"}

	for i := 0; i < 3; i++ {
		if got := p.Analogy(e); got != "only" {
			t.Fatalf("Analogy = %q, want only", got)
		}
	}
}

func TestRealWorldExample_AlternatesWithTwoItems(t *testing.T) {
	p := NewPicker(9)
	e := pickerEntry()

	prev := p.RealWorldExample(e)
	for i := 0; i < 10; i++ {
		next := p.RealWorldExample(e)
		if next == prev {
			t.Fatalf("two-item pool repeated %q", next)
		}
		prev = next
	}
}
