package profile

// Methodology is the pedagogical style used to present material.
type Methodology string

const (
	MethodVisualDemo        Methodology = "visual_demo"
	MethodScaffolding       Methodology = "scaffolding"
	MethodDirectInstruction Methodology = "direct_instruction"
	MethodDiscovery         Methodology = "discovery"
	MethodSocratic          Methodology = "socratic"
)

// roleDefaults maps each role to its default methodology, used when no
// learning-style score dominates.
var roleDefaults = map[Role]Methodology{
	RoleStudent:        MethodVisualDemo,
	RoleInstructor:     MethodScaffolding,
	RoleAdmin:          MethodDirectInstruction,
	RoleContentCreator: MethodDiscovery,
	RoleMentor:         MethodSocratic,
}

// dominanceMargin is the lead one style score must have over every other
// for the style to override the role default.
const dominanceMargin = 15

// MethodologyFor resolves the preferred methodology: a learning-style
// score that dominates all others by more than dominanceMargin wins;
// otherwise the role default applies.
func MethodologyFor(role Role, style LearningStyle) Methodology {
	if m, ok := dominantStyleMethodology(style); ok {
		return m
	}
	if m, ok := roleDefaults[role]; ok {
		return m
	}
	return MethodVisualDemo
}

func dominantStyleMethodology(style LearningStyle) (Methodology, bool) {
	type scored struct {
		score  int
		method Methodology
	}
	scores := []scored{
		{style.Visual, MethodVisualDemo},
		{style.Kinesthetic, MethodDiscovery},
		{style.Auditory, MethodSocratic},
		{style.Reading, MethodDirectInstruction},
	}

	best, second := 0, 1
	if scores[second].score > scores[best].score {
		best, second = second, best
	}
	for i := 2; i < len(scores); i++ {
		switch {
		case scores[i].score > scores[best].score:
			second = best
			best = i
		case scores[i].score > scores[second].score:
			second = i
		}
	}

	if scores[best].score-scores[second].score > dominanceMargin {
		return scores[best].method, true
	}
	return "", false
}
