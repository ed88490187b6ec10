// Code generated by ent, DO NOT EDIT.

package learnerprofile

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/paideia/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldLTE(FieldID, id))
}

// LearnerID applies equality check predicate on the "learner_id" field. It's identical to LearnerIDEQ.
func LearnerID(v string) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldEQ(FieldLearnerID, v))
}

// Role applies equality check predicate on the "role" field. It's identical to RoleEQ.
func Role(v string) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldEQ(FieldRole, v))
}

// StyleVisual applies equality check predicate on the "style_visual" field. It's identical to StyleVisualEQ.
func StyleVisual(v int) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldEQ(FieldStyleVisual, v))
}

// StyleAuditory applies equality check predicate on the "style_auditory" field. It's identical to StyleAuditoryEQ.
func StyleAuditory(v int) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldEQ(FieldStyleAuditory, v))
}

// StyleKinesthetic applies equality check predicate on the "style_kinesthetic" field. It's identical to StyleKinestheticEQ.
func StyleKinesthetic(v int) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldEQ(FieldStyleKinesthetic, v))
}

// StyleReading applies equality check predicate on the "style_reading" field. It's identical to StyleReadingEQ.
func StyleReading(v int) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldEQ(FieldStyleReading, v))
}

// Age applies equality check predicate on the "age" field. It's identical to AgeEQ.
func Age(v int) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldEQ(FieldAge, v))
}

// EducationLevel applies equality check predicate on the "education_level" field. It's identical to EducationLevelEQ.
func EducationLevel(v string) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldEQ(FieldEducationLevel, v))
}

// CulturalContext applies equality check predicate on the "cultural_context" field. It's identical to CulturalContextEQ.
func CulturalContext(v string) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldEQ(FieldCulturalContext, v))
}

// Completeness applies equality check predicate on the "completeness" field. It's identical to CompletenessEQ.
func Completeness(v float64) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldEQ(FieldCompleteness, v))
}

// Archived applies equality check predicate on the "archived" field. It's identical to ArchivedEQ.
func Archived(v bool) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldEQ(FieldArchived, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldEQ(FieldUpdatedAt, v))
}

// LearnerIDEQ applies the EQ predicate on the "learner_id" field.
func LearnerIDEQ(v string) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldEQ(FieldLearnerID, v))
}

// LearnerIDNEQ applies the NEQ predicate on the "learner_id" field.
func LearnerIDNEQ(v string) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldNEQ(FieldLearnerID, v))
}

// LearnerIDIn applies the In predicate on the "learner_id" field.
func LearnerIDIn(vs ...string) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldIn(FieldLearnerID, vs...))
}

// LearnerIDNotIn applies the NotIn predicate on the "learner_id" field.
func LearnerIDNotIn(vs ...string) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldNotIn(FieldLearnerID, vs...))
}

// LearnerIDGT applies the GT predicate on the "learner_id" field.
func LearnerIDGT(v string) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldGT(FieldLearnerID, v))
}

// LearnerIDGTE applies the GTE predicate on the "learner_id" field.
func LearnerIDGTE(v string) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldGTE(FieldLearnerID, v))
}

// LearnerIDLT applies the LT predicate on the "learner_id" field.
func LearnerIDLT(v string) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldLT(FieldLearnerID, v))
}

// LearnerIDLTE applies the LTE predicate on the "learner_id" field.
func LearnerIDLTE(v string) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldLTE(FieldLearnerID, v))
}

// LearnerIDContains applies the Contains predicate on the "learner_id" field.
func LearnerIDContains(v string) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldContains(FieldLearnerID, v))
}

// LearnerIDHasPrefix applies the HasPrefix predicate on the "learner_id" field.
func LearnerIDHasPrefix(v string) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldHasPrefix(FieldLearnerID, v))
}

// LearnerIDHasSuffix applies the HasSuffix predicate on the "learner_id" field.
func LearnerIDHasSuffix(v string) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldHasSuffix(FieldLearnerID, v))
}

// LearnerIDEqualFold applies the EqualFold predicate on the "learner_id" field.
func LearnerIDEqualFold(v string) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldEqualFold(FieldLearnerID, v))
}

// LearnerIDContainsFold applies the ContainsFold predicate on the "learner_id" field.
func LearnerIDContainsFold(v string) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldContainsFold(FieldLearnerID, v))
}

// RoleEQ applies the EQ predicate on the "role" field.
func RoleEQ(v string) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldEQ(FieldRole, v))
}

// RoleNEQ applies the NEQ predicate on the "role" field.
func RoleNEQ(v string) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldNEQ(FieldRole, v))
}

// RoleIn applies the In predicate on the "role" field.
func RoleIn(vs ...string) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldIn(FieldRole, vs...))
}

// RoleNotIn applies the NotIn predicate on the "role" field.
func RoleNotIn(vs ...string) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldNotIn(FieldRole, vs...))
}

// RoleGT applies the GT predicate on the "role" field.
func RoleGT(v string) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldGT(FieldRole, v))
}

// RoleGTE applies the GTE predicate on the "role" field.
func RoleGTE(v string) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldGTE(FieldRole, v))
}

// RoleLT applies the LT predicate on the "role" field.
func RoleLT(v string) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldLT(FieldRole, v))
}

// RoleLTE applies the LTE predicate on the "role" field.
func RoleLTE(v string) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldLTE(FieldRole, v))
}

// RoleContains applies the Contains predicate on the "role" field.
func RoleContains(v string) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldContains(FieldRole, v))
}

// RoleHasPrefix applies the HasPrefix predicate on the "role" field.
func RoleHasPrefix(v string) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldHasPrefix(FieldRole, v))
}

// RoleHasSuffix applies the HasSuffix predicate on the "role" field.
func RoleHasSuffix(v string) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldHasSuffix(FieldRole, v))
}

// RoleEqualFold applies the EqualFold predicate on the "role" field.
func RoleEqualFold(v string) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldEqualFold(FieldRole, v))
}

// RoleContainsFold applies the ContainsFold predicate on the "role" field.
func RoleContainsFold(v string) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldContainsFold(FieldRole, v))
}

// StyleVisualEQ applies the EQ predicate on the "style_visual" field.
func StyleVisualEQ(v int) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldEQ(FieldStyleVisual, v))
}

// StyleVisualNEQ applies the NEQ predicate on the "style_visual" field.
func StyleVisualNEQ(v int) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldNEQ(FieldStyleVisual, v))
}

// StyleVisualIn applies the In predicate on the "style_visual" field.
func StyleVisualIn(vs ...int) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldIn(FieldStyleVisual, vs...))
}

// StyleVisualNotIn applies the NotIn predicate on the "style_visual" field.
func StyleVisualNotIn(vs ...int) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldNotIn(FieldStyleVisual, vs...))
}

// StyleVisualGT applies the GT predicate on the "style_visual" field.
func StyleVisualGT(v int) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldGT(FieldStyleVisual, v))
}

// StyleVisualGTE applies the GTE predicate on the "style_visual" field.
func StyleVisualGTE(v int) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldGTE(FieldStyleVisual, v))
}

// StyleVisualLT applies the LT predicate on the "style_visual" field.
func StyleVisualLT(v int) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldLT(FieldStyleVisual, v))
}

// StyleVisualLTE applies the LTE predicate on the "style_visual" field.
func StyleVisualLTE(v int) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldLTE(FieldStyleVisual, v))
}

// StyleAuditoryEQ applies the EQ predicate on the "style_auditory" field.
func StyleAuditoryEQ(v int) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldEQ(FieldStyleAuditory, v))
}

// StyleAuditoryNEQ applies the NEQ predicate on the "style_auditory" field.
func StyleAuditoryNEQ(v int) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldNEQ(FieldStyleAuditory, v))
}

// StyleAuditoryIn applies the In predicate on the "style_auditory" field.
func StyleAuditoryIn(vs ...int) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldIn(FieldStyleAuditory, vs...))
}

// StyleAuditoryNotIn applies the NotIn predicate on the "style_auditory" field.
func StyleAuditoryNotIn(vs ...int) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldNotIn(FieldStyleAuditory, vs...))
}

// StyleAuditoryGT applies the GT predicate on the "style_auditory" field.
func StyleAuditoryGT(v int) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldGT(FieldStyleAuditory, v))
}

// StyleAuditoryGTE applies the GTE predicate on the "style_auditory" field.
func StyleAuditoryGTE(v int) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldGTE(FieldStyleAuditory, v))
}

// StyleAuditoryLT applies the LT predicate on the "style_auditory" field.
func StyleAuditoryLT(v int) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldLT(FieldStyleAuditory, v))
}

// StyleAuditoryLTE applies the LTE predicate on the "style_auditory" field.
func StyleAuditoryLTE(v int) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldLTE(FieldStyleAuditory, v))
}

// StyleKinestheticEQ applies the EQ predicate on the "style_kinesthetic" field.
func StyleKinestheticEQ(v int) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldEQ(FieldStyleKinesthetic, v))
}

// StyleKinestheticNEQ applies the NEQ predicate on the "style_kinesthetic" field.
func StyleKinestheticNEQ(v int) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldNEQ(FieldStyleKinesthetic, v))
}

// StyleKinestheticIn applies the In predicate on the "style_kinesthetic" field.
func StyleKinestheticIn(vs ...int) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldIn(FieldStyleKinesthetic, vs...))
}

// StyleKinestheticNotIn applies the NotIn predicate on the "style_kinesthetic" field.
func StyleKinestheticNotIn(vs ...int) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldNotIn(FieldStyleKinesthetic, vs...))
}

// StyleKinestheticGT applies the GT predicate on the "style_kinesthetic" field.
func StyleKinestheticGT(v int) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldGT(FieldStyleKinesthetic, v))
}

// StyleKinestheticGTE applies the GTE predicate on the "style_kinesthetic" field.
func StyleKinestheticGTE(v int) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldGTE(FieldStyleKinesthetic, v))
}

// StyleKinestheticLT applies the LT predicate on the "style_kinesthetic" field.
func StyleKinestheticLT(v int) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldLT(FieldStyleKinesthetic, v))
}

// StyleKinestheticLTE applies the LTE predicate on the "style_kinesthetic" field.
func StyleKinestheticLTE(v int) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldLTE(FieldStyleKinesthetic, v))
}

// StyleReadingEQ applies the EQ predicate on the "style_reading" field.
func StyleReadingEQ(v int) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldEQ(FieldStyleReading, v))
}

// StyleReadingNEQ applies the NEQ predicate on the "style_reading" field.
func StyleReadingNEQ(v int) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldNEQ(FieldStyleReading, v))
}

// StyleReadingIn applies the In predicate on the "style_reading" field.
func StyleReadingIn(vs ...int) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldIn(FieldStyleReading, vs...))
}

// StyleReadingNotIn applies the NotIn predicate on the "style_reading" field.
func StyleReadingNotIn(vs ...int) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldNotIn(FieldStyleReading, vs...))
}

// StyleReadingGT applies the GT predicate on the "style_reading" field.
func StyleReadingGT(v int) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldGT(FieldStyleReading, v))
}

// StyleReadingGTE applies the GTE predicate on the "style_reading" field.
func StyleReadingGTE(v int) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldGTE(FieldStyleReading, v))
}

// StyleReadingLT applies the LT predicate on the "style_reading" field.
func StyleReadingLT(v int) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldLT(FieldStyleReading, v))
}

// StyleReadingLTE applies the LTE predicate on the "style_reading" field.
func StyleReadingLTE(v int) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldLTE(FieldStyleReading, v))
}

// InterestsIsNil applies the IsNil predicate on the "interests" field.
func InterestsIsNil() predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldIsNull(FieldInterests))
}

// InterestsNotNil applies the NotNil predicate on the "interests" field.
func InterestsNotNil() predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldNotNull(FieldInterests))
}

// StrengthsIsNil applies the IsNil predicate on the "strengths" field.
func StrengthsIsNil() predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldIsNull(FieldStrengths))
}

// StrengthsNotNil applies the NotNil predicate on the "strengths" field.
func StrengthsNotNil() predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldNotNull(FieldStrengths))
}

// WeaknessesIsNil applies the IsNil predicate on the "weaknesses" field.
func WeaknessesIsNil() predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldIsNull(FieldWeaknesses))
}

// WeaknessesNotNil applies the NotNil predicate on the "weaknesses" field.
func WeaknessesNotNil() predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldNotNull(FieldWeaknesses))
}

// AgeEQ applies the EQ predicate on the "age" field.
func AgeEQ(v int) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldEQ(FieldAge, v))
}

// AgeNEQ applies the NEQ predicate on the "age" field.
func AgeNEQ(v int) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldNEQ(FieldAge, v))
}

// AgeIn applies the In predicate on the "age" field.
func AgeIn(vs ...int) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldIn(FieldAge, vs...))
}

// AgeNotIn applies the NotIn predicate on the "age" field.
func AgeNotIn(vs ...int) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldNotIn(FieldAge, vs...))
}

// AgeGT applies the GT predicate on the "age" field.
func AgeGT(v int) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldGT(FieldAge, v))
}

// AgeGTE applies the GTE predicate on the "age" field.
func AgeGTE(v int) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldGTE(FieldAge, v))
}

// AgeLT applies the LT predicate on the "age" field.
func AgeLT(v int) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldLT(FieldAge, v))
}

// AgeLTE applies the LTE predicate on the "age" field.
func AgeLTE(v int) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldLTE(FieldAge, v))
}

// EducationLevelEQ applies the EQ predicate on the "education_level" field.
func EducationLevelEQ(v string) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldEQ(FieldEducationLevel, v))
}

// EducationLevelNEQ applies the NEQ predicate on the "education_level" field.
func EducationLevelNEQ(v string) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldNEQ(FieldEducationLevel, v))
}

// EducationLevelIn applies the In predicate on the "education_level" field.
func EducationLevelIn(vs ...string) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldIn(FieldEducationLevel, vs...))
}

// EducationLevelNotIn applies the NotIn predicate on the "education_level" field.
func EducationLevelNotIn(vs ...string) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldNotIn(FieldEducationLevel, vs...))
}

// EducationLevelGT applies the GT predicate on the "education_level" field.
func EducationLevelGT(v string) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldGT(FieldEducationLevel, v))
}

// EducationLevelGTE applies the GTE predicate on the "education_level" field.
func EducationLevelGTE(v string) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldGTE(FieldEducationLevel, v))
}

// EducationLevelLT applies the LT predicate on the "education_level" field.
func EducationLevelLT(v string) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldLT(FieldEducationLevel, v))
}

// EducationLevelLTE applies the LTE predicate on the "education_level" field.
func EducationLevelLTE(v string) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldLTE(FieldEducationLevel, v))
}

// EducationLevelContains applies the Contains predicate on the "education_level" field.
func EducationLevelContains(v string) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldContains(FieldEducationLevel, v))
}

// EducationLevelHasPrefix applies the HasPrefix predicate on the "education_level" field.
func EducationLevelHasPrefix(v string) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldHasPrefix(FieldEducationLevel, v))
}

// EducationLevelHasSuffix applies the HasSuffix predicate on the "education_level" field.
func EducationLevelHasSuffix(v string) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldHasSuffix(FieldEducationLevel, v))
}

// EducationLevelEqualFold applies the EqualFold predicate on the "education_level" field.
func EducationLevelEqualFold(v string) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldEqualFold(FieldEducationLevel, v))
}

// EducationLevelContainsFold applies the ContainsFold predicate on the "education_level" field.
func EducationLevelContainsFold(v string) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldContainsFold(FieldEducationLevel, v))
}

// CulturalContextEQ applies the EQ predicate on the "cultural_context" field.
func CulturalContextEQ(v string) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldEQ(FieldCulturalContext, v))
}

// CulturalContextNEQ applies the NEQ predicate on the "cultural_context" field.
func CulturalContextNEQ(v string) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldNEQ(FieldCulturalContext, v))
}

// CulturalContextIn applies the In predicate on the "cultural_context" field.
func CulturalContextIn(vs ...string) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldIn(FieldCulturalContext, vs...))
}

// CulturalContextNotIn applies the NotIn predicate on the "cultural_context" field.
func CulturalContextNotIn(vs ...string) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldNotIn(FieldCulturalContext, vs...))
}

// CulturalContextGT applies the GT predicate on the "cultural_context" field.
func CulturalContextGT(v string) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldGT(FieldCulturalContext, v))
}

// CulturalContextGTE applies the GTE predicate on the "cultural_context" field.
func CulturalContextGTE(v string) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldGTE(FieldCulturalContext, v))
}

// CulturalContextLT applies the LT predicate on the "cultural_context" field.
func CulturalContextLT(v string) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldLT(FieldCulturalContext, v))
}

// CulturalContextLTE applies the LTE predicate on the "cultural_context" field.
func CulturalContextLTE(v string) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldLTE(FieldCulturalContext, v))
}

// CulturalContextContains applies the Contains predicate on the "cultural_context" field.
func CulturalContextContains(v string) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldContains(FieldCulturalContext, v))
}

// CulturalContextHasPrefix applies the HasPrefix predicate on the "cultural_context" field.
func CulturalContextHasPrefix(v string) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldHasPrefix(FieldCulturalContext, v))
}

// CulturalContextHasSuffix applies the HasSuffix predicate on the "cultural_context" field.
func CulturalContextHasSuffix(v string) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldHasSuffix(FieldCulturalContext, v))
}

// CulturalContextEqualFold applies the EqualFold predicate on the "cultural_context" field.
func CulturalContextEqualFold(v string) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldEqualFold(FieldCulturalContext, v))
}

// CulturalContextContainsFold applies the ContainsFold predicate on the "cultural_context" field.
func CulturalContextContainsFold(v string) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldContainsFold(FieldCulturalContext, v))
}

// CompletenessEQ applies the EQ predicate on the "completeness" field.
func CompletenessEQ(v float64) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldEQ(FieldCompleteness, v))
}

// CompletenessNEQ applies the NEQ predicate on the "completeness" field.
func CompletenessNEQ(v float64) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldNEQ(FieldCompleteness, v))
}

// CompletenessIn applies the In predicate on the "completeness" field.
func CompletenessIn(vs ...float64) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldIn(FieldCompleteness, vs...))
}

// CompletenessNotIn applies the NotIn predicate on the "completeness" field.
func CompletenessNotIn(vs ...float64) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldNotIn(FieldCompleteness, vs...))
}

// CompletenessGT applies the GT predicate on the "completeness" field.
func CompletenessGT(v float64) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldGT(FieldCompleteness, v))
}

// CompletenessGTE applies the GTE predicate on the "completeness" field.
func CompletenessGTE(v float64) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldGTE(FieldCompleteness, v))
}

// CompletenessLT applies the LT predicate on the "completeness" field.
func CompletenessLT(v float64) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldLT(FieldCompleteness, v))
}

// CompletenessLTE applies the LTE predicate on the "completeness" field.
func CompletenessLTE(v float64) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldLTE(FieldCompleteness, v))
}

// ArchivedEQ applies the EQ predicate on the "archived" field.
func ArchivedEQ(v bool) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldEQ(FieldArchived, v))
}

// ArchivedNEQ applies the NEQ predicate on the "archived" field.
func ArchivedNEQ(v bool) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldNEQ(FieldArchived, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.LearnerProfile) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.LearnerProfile) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.LearnerProfile) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.NotPredicates(p))
}
