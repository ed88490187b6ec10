package catalog

import (
	"errors"
	"fmt"
)

// Tier represents a difficulty tier derived from mastery.
type Tier int

const (
	TierBasic Tier = iota
	TierIntermediate
	TierAdvanced
)

// String returns the storage/display form of a tier.
func (t Tier) String() string {
	switch t {
	case TierBasic:
		return "basic"
	case TierIntermediate:
		return "intermediate"
	case TierAdvanced:
		return "advanced"
	default:
		return "basic"
	}
}

// TierForScore maps a mastery score in [0,1] to a difficulty tier.
func TierForScore(score float64) Tier {
	switch {
	case score < 0.34:
		return TierBasic
	case score <= 0.67:
		return TierIntermediate
	default:
		return TierAdvanced
	}
}

// Entry is the pedagogical material for one concept at one tier.
// Every list is non-empty; an entry with a missing list is rejected at
// catalog build time so callers can rely on the fallback path instead of
// receiving empty material.
type Entry struct {
	ConceptID            string
	Subject              string
	Tier                 Tier
	GuidingQuestions     []string
	Analogies            []string
	RealWorldExamples    []string
	CommonMisconceptions []string
	VisualAids           []string
}

// ErrNotFound is returned when no catalog entry exists for a concept.
// Callers recover via GenericFallback, never by surfacing the error to
// the learner.
var ErrNotFound = errors.New("catalog: concept not found")

// catalog holds the concept material with precomputed indices.
type catalog struct {
	entries   []Entry
	byConcept map[string]*Entry
	bySubject map[string][]*Entry
}

// c is the package-level catalog singleton, set by init() in seed.go.
var c *catalog

// buildCatalog constructs the catalog from a slice of entries, validating
// the non-empty invariant on every list.
func buildCatalog(entries []Entry) (*catalog, error) {
	ct := &catalog{
		entries:   entries,
		byConcept: make(map[string]*Entry, len(entries)),
		bySubject: make(map[string][]*Entry),
	}

	for i := range ct.entries {
		e := &ct.entries[i]
		if err := validateEntry(e); err != nil {
			return nil, err
		}
		if _, dup := ct.byConcept[e.ConceptID]; dup {
			return nil, fmt.Errorf("duplicate concept id %q", e.ConceptID)
		}
		ct.byConcept[e.ConceptID] = e
		ct.bySubject[e.Subject] = append(ct.bySubject[e.Subject], e)
	}

	return ct, nil
}

func validateEntry(e *Entry) error {
	if e.ConceptID == "" || e.Subject == "" {
		return fmt.Errorf("entry missing concept id or subject: %+v", e)
	}
	lists := map[string][]string{
		"guiding questions":     e.GuidingQuestions,
		"analogies":             e.Analogies,
		"real-world examples":   e.RealWorldExamples,
		"common misconceptions": e.CommonMisconceptions,
		"visual aids":           e.VisualAids,
	}
	for name, list := range lists {
		if len(list) == 0 {
			return fmt.Errorf("concept %q: empty %s list", e.ConceptID, name)
		}
	}
	return nil
}

// Lookup returns the entry for a concept. When the concept is unknown it
// falls back to the subject pool at the requested tier before giving up
// with ErrNotFound.
func Lookup(conceptID, subject string, tier Tier) (*Entry, error) {
	if e, ok := c.byConcept[conceptID]; ok {
		return e, nil
	}
	if pool := BySubject(subject, tier); len(pool) > 0 {
		return pool[0], nil
	}
	return nil, ErrNotFound
}

// BySubject returns the entries for a subject at the given tier. Entries
// at other tiers are included after tier matches so callers always get
// the full pool to select from.
func BySubject(subject string, tier Tier) []*Entry {
	all := c.bySubject[subject]
	if len(all) == 0 {
		return nil
	}

	out := make([]*Entry, 0, len(all))
	for _, e := range all {
		if e.Tier == tier {
			out = append(out, e)
		}
	}
	for _, e := range all {
		if e.Tier != tier {
			out = append(out, e)
		}
	}
	return out
}

// AllConcepts returns every concept id in the catalog.
func AllConcepts() []string {
	ids := make([]string, 0, len(c.entries))
	for i := range c.entries {
		ids = append(ids, c.entries[i].ConceptID)
	}
	return ids
}
