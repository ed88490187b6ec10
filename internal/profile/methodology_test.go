package profile

import "testing"

func TestMethodologyFor_RoleDefaults(t *testing.T) {
	// All styles even: role default applies.
	even := LearningStyle{Visual: 50, Auditory: 50, Kinesthetic: 50, Reading: 50}

	cases := []struct {
		role Role
		want Methodology
	}{
		{RoleStudent, MethodVisualDemo},
		{RoleInstructor, MethodScaffolding},
		{RoleAdmin, MethodDirectInstruction},
		{RoleContentCreator, MethodDiscovery},
		{RoleMentor, MethodSocratic},
	}
	for _, tc := range cases {
		if got := MethodologyFor(tc.role, even); got != tc.want {
			t.Errorf("MethodologyFor(%s, even) = %s, want %s", tc.role, got, tc.want)
		}
	}
}

func TestMethodologyFor_StyleOverride(t *testing.T) {
	cases := []struct {
		name  string
		style LearningStyle
		want  Methodology
	}{
		{"visual dominates", LearningStyle{Visual: 80, Auditory: 50, Kinesthetic: 50, Reading: 50}, MethodVisualDemo},
		{"kinesthetic dominates", LearningStyle{Visual: 40, Auditory: 40, Kinesthetic: 90, Reading: 40}, MethodDiscovery},
		{"auditory dominates", LearningStyle{Visual: 10, Auditory: 70, Kinesthetic: 20, Reading: 30}, MethodSocratic},
		{"reading dominates", LearningStyle{Visual: 30, Auditory: 30, Kinesthetic: 30, Reading: 60}, MethodDirectInstruction},
	}

	// Override wins regardless of role.
	for _, tc := range cases {
		for _, role := range AllRoles() {
			if got := MethodologyFor(role, tc.style); got != tc.want {
				t.Errorf("%s: MethodologyFor(%s) = %s, want %s", tc.name, role, got, tc.want)
			}
		}
	}
}

func TestMethodologyFor_MarginIsExclusive(t *testing.T) {
	// Exactly 15 points ahead is not enough; must exceed the margin.
	style := LearningStyle{Visual: 65, Auditory: 50, Kinesthetic: 50, Reading: 50}
	if got := MethodologyFor(RoleMentor, style); got != MethodSocratic {
		t.Errorf("15-point lead should not override: got %s, want %s", got, MethodSocratic)
	}

	style.Visual = 66
	if got := MethodologyFor(RoleMentor, style); got != MethodVisualDemo {
		t.Errorf("16-point lead should override: got %s, want %s", got, MethodVisualDemo)
	}
}

func TestMethodologyFor_TieDoesNotOverride(t *testing.T) {
	// Two styles tied on top: no dominance, role default applies.
	style := LearningStyle{Visual: 90, Auditory: 90, Kinesthetic: 10, Reading: 10}
	if got := MethodologyFor(RoleInstructor, style); got != MethodScaffolding {
		t.Errorf("tied top styles should fall back to role default: got %s", got)
	}
}
