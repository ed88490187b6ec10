package profile

import "time"

// Role identifies the learner's role in the platform.
type Role string

const (
	RoleStudent        Role = "student"
	RoleInstructor     Role = "instructor"
	RoleAdmin          Role = "admin"
	RoleContentCreator Role = "content_creator"
	RoleMentor         Role = "mentor"
)

// AllRoles returns the known roles.
func AllRoles() []Role {
	return []Role{RoleStudent, RoleInstructor, RoleAdmin, RoleContentCreator, RoleMentor}
}

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	switch r {
	case RoleStudent, RoleInstructor, RoleAdmin, RoleContentCreator, RoleMentor:
		return true
	}
	return false
}

// EducationLevel is a coarse education bucket.
type EducationLevel string

const (
	EduPrimary   EducationLevel = "primary"
	EduSecondary EducationLevel = "secondary"
	EduTertiary  EducationLevel = "tertiary"
	EduAdult     EducationLevel = "adult"
)

// LearningStyle holds the four independent affinity scores, each 0-100.
// They are signals, not shares; nothing forces them to sum to 100.
type LearningStyle struct {
	Visual      int
	Auditory    int
	Kinesthetic int
	Reading     int
}

// Profile is the in-memory learner profile.
type Profile struct {
	LearnerID       string
	Role            Role
	Style           LearningStyle
	Interests       []string
	Strengths       []string
	Weaknesses      []string
	Age             int
	EducationLevel  EducationLevel
	CulturalContext string
	Completeness    float64
	Archived        bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Methodology returns the preferred teaching methodology for this profile,
// resolving the learning-style override against the role default.
func (p *Profile) Methodology() Methodology {
	return MethodologyFor(p.Role, p.Style)
}

// optionalFieldCount is the number of fields completeness is computed over.
const optionalFieldCount = 6

// RecomputeCompleteness updates the derived completeness fraction: the
// share of populated optional fields (interests, strengths, weaknesses,
// age, education level, cultural context).
func (p *Profile) RecomputeCompleteness() {
	populated := 0
	if len(p.Interests) > 0 {
		populated++
	}
	if len(p.Strengths) > 0 {
		populated++
	}
	if len(p.Weaknesses) > 0 {
		populated++
	}
	if p.Age > 0 {
		populated++
	}
	if p.EducationLevel != "" {
		populated++
	}
	if p.CulturalContext != "" {
		populated++
	}
	p.Completeness = float64(populated) / float64(optionalFieldCount)
}
