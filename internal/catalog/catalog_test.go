package catalog

import "testing"

func TestLookup_KnownConcept(t *testing.T) {
	e, err := Lookup("fractions", "math", TierBasic)
	if err != nil {
		t.Fatalf("Lookup returned error: %v", err)
	}
	if e.ConceptID != "fractions" {
		t.Errorf("ConceptID = %q, want fractions", e.ConceptID)
	}
	if e.Subject != "math" {
		t.Errorf("Subject = %q, want math", e.Subject)
	}
}

func TestLookup_UnknownConceptKnownSubject(t *testing.T) {
	e, err := Lookup("no-such-concept", "math", TierIntermediate)
	if err != nil {
		t.Fatalf("Lookup returned error: %v", err)
	}
	if e.Subject != "math" {
		t.Errorf("Subject = %q, want math", e.Subject)
	}
	if e.Tier != TierIntermediate {
		t.Errorf("Tier = %v, want intermediate (tier matches come first)", e.Tier)
	}
}

func TestLookup_UnknownEverything(t *testing.T) {
	_, err := Lookup("no-such-concept", "no-such-subject", TierBasic)
	if err != ErrNotFound {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestGenericFallback_AlwaysUsable(t *testing.T) {
	e := GenericFallback("quantum tunneling")
	if len(e.GuidingQuestions) != 5 {
		t.Errorf("GuidingQuestions count = %d, want 5", len(e.GuidingQuestions))
	}
	for _, q := range e.GuidingQuestions {
		if q == "" {
			t.Error("empty guiding question in fallback")
		}
	}
	if len(e.Analogies) == 0 || len(e.RealWorldExamples) == 0 {
		t.Error("fallback must carry remediation material")
	}
}

func TestSeed_NonEmptyInvariant(t *testing.T) {
	for _, id := range AllConcepts() {
		e, err := Lookup(id, "", TierBasic)
		if err != nil {
			t.Fatalf("Lookup(%q) error: %v", id, err)
		}
		if len(e.GuidingQuestions) == 0 || len(e.Analogies) == 0 ||
			len(e.RealWorldExamples) == 0 || len(e.CommonMisconceptions) == 0 ||
			len(e.VisualAids) == 0 {
			t.Errorf("concept %q violates the non-empty invariant", id)
		}
	}
}

func TestBuildCatalog_RejectsEmptyList(t *testing.T) {
	_, err := buildCatalog([]Entry{{
		ConceptID:            "bad",
		Subject:              "math",
		GuidingQuestions:     []string{"q"},
		Analogies:            []string{"a"},
		RealWorldExamples:    []string{"e"},
		CommonMisconceptions: []string{"m"},
		// VisualAids intentionally empty.
	}})
	if err == nil {
		t.Fatal("expected error for empty visual aids list")
	}
}

func TestTierForScore(t *testing.T) {
	cases := []struct {
		score float64
		want  Tier
	}{
		{0, TierBasic},
		{0.33, TierBasic},
		{0.34, TierIntermediate},
		{0.5, TierIntermediate},
		{0.67, TierIntermediate},
		{0.68, TierAdvanced},
		{1, TierAdvanced},
	}
	for _, tc := range cases {
		if got := TierForScore(tc.score); got != tc.want {
			t.Errorf("TierForScore(%v) = %v, want %v", tc.score, got, tc.want)
		}
	}
}
