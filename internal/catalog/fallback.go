package catalog

import "fmt"

// fallbackTemplates are the deterministic guiding-question templates used
// when no catalog entry exists for a concept. {topic} substitution only;
// a catalog miss is never an error.
var fallbackTemplates = []string{
	"What do you already know about %s?",
	"Can you describe %s in your own words?",
	"Where have you seen %s show up outside of class?",
	"What is one question you have about %s?",
	"If you had to explain %s to a friend, where would you start?",
}

// GenericFallback builds a synthetic entry for an unknown topic. The
// result always carries five guiding questions plus minimal remediation
// material, so every selection helper works on it.
func GenericFallback(topic string) *Entry {
	questions := make([]string, len(fallbackTemplates))
	for i, tmpl := range fallbackTemplates {
		questions[i] = fmt.Sprintf(tmpl, topic)
	}

	return &Entry{
		ConceptID:        "",
		Subject:          topic,
		Tier:             TierBasic,
		GuidingQuestions: questions,
		Analogies: []string{
			fmt.Sprintf("Learning %s is like assembling a puzzle: start from the edge pieces you already recognize.", topic),
		},
		RealWorldExamples: []string{
			fmt.Sprintf("Think of a situation this week where %s could have helped you.", topic),
		},
		CommonMisconceptions: []string{
			fmt.Sprintf("Assuming %s is too hard to learn step by step.", topic),
		},
		VisualAids: []string{
			fmt.Sprintf("A concept map with %s in the center and everything you know around it.", topic),
		},
	}
}
