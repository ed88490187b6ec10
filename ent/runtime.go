// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/abhisek/paideia/ent/interaction"
	"github.com/abhisek/paideia/ent/learnerprofile"
	"github.com/abhisek/paideia/ent/masteryrecord"
	"github.com/abhisek/paideia/ent/recommendation"
	"github.com/abhisek/paideia/ent/schema"
	"github.com/abhisek/paideia/ent/scorerevent"
	"github.com/abhisek/paideia/ent/sessionevent"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	interactionMixin := schema.Interaction{}.Mixin()
	interactionMixinFields0 := interactionMixin[0].Fields()
	_ = interactionMixinFields0
	interactionFields := schema.Interaction{}.Fields()
	_ = interactionFields
	// interactionDescTimestamp is the schema descriptor for timestamp field.
	interactionDescTimestamp := interactionMixinFields0[1].Descriptor()
	// interaction.DefaultTimestamp holds the default value on creation for the timestamp field.
	interaction.DefaultTimestamp = interactionDescTimestamp.Default.(func() time.Time)
	// interactionDescInteractionID is the schema descriptor for interaction_id field.
	interactionDescInteractionID := interactionFields[0].Descriptor()
	// interaction.InteractionIDValidator is a validator for the "interaction_id" field. It is called by the builders before save.
	interaction.InteractionIDValidator = interactionDescInteractionID.Validators[0].(func(string) error)
	// interactionDescSessionID is the schema descriptor for session_id field.
	interactionDescSessionID := interactionFields[1].Descriptor()
	// interaction.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	interaction.SessionIDValidator = interactionDescSessionID.Validators[0].(func(string) error)
	// interactionDescLearnerID is the schema descriptor for learner_id field.
	interactionDescLearnerID := interactionFields[2].Descriptor()
	// interaction.LearnerIDValidator is a validator for the "learner_id" field. It is called by the builders before save.
	interaction.LearnerIDValidator = interactionDescLearnerID.Validators[0].(func(string) error)
	// interactionDescConceptID is the schema descriptor for concept_id field.
	interactionDescConceptID := interactionFields[3].Descriptor()
	// interaction.ConceptIDValidator is a validator for the "concept_id" field. It is called by the builders before save.
	interaction.ConceptIDValidator = interactionDescConceptID.Validators[0].(func(string) error)
	// interactionDescSubject is the schema descriptor for subject field.
	interactionDescSubject := interactionFields[4].Descriptor()
	// interaction.SubjectValidator is a validator for the "subject" field. It is called by the builders before save.
	interaction.SubjectValidator = interactionDescSubject.Validators[0].(func(string) error)
	// interactionDescMethodology is the schema descriptor for methodology field.
	interactionDescMethodology := interactionFields[6].Descriptor()
	// interaction.MethodologyValidator is a validator for the "methodology" field. It is called by the builders before save.
	interaction.MethodologyValidator = interactionDescMethodology.Validators[0].(func(string) error)
	// interactionDescQuestionText is the schema descriptor for question_text field.
	interactionDescQuestionText := interactionFields[7].Descriptor()
	// interaction.QuestionTextValidator is a validator for the "question_text" field. It is called by the builders before save.
	interaction.QuestionTextValidator = interactionDescQuestionText.Validators[0].(func(string) error)
	// interactionDescUnscored is the schema descriptor for unscored field.
	interactionDescUnscored := interactionFields[10].Descriptor()
	// interaction.DefaultUnscored holds the default value on creation for the unscored field.
	interaction.DefaultUnscored = interactionDescUnscored.Default.(bool)
	// interactionDescRepeatedQuestion is the schema descriptor for repeated_question field.
	interactionDescRepeatedQuestion := interactionFields[11].Descriptor()
	// interaction.DefaultRepeatedQuestion holds the default value on creation for the repeated_question field.
	interaction.DefaultRepeatedQuestion = interactionDescRepeatedQuestion.Default.(bool)
	// interactionDescPrevInteractionID is the schema descriptor for prev_interaction_id field.
	interactionDescPrevInteractionID := interactionFields[12].Descriptor()
	// interaction.DefaultPrevInteractionID holds the default value on creation for the prev_interaction_id field.
	interaction.DefaultPrevInteractionID = interactionDescPrevInteractionID.Default.(string)
	// interactionDescResponseLatencyMs is the schema descriptor for response_latency_ms field.
	interactionDescResponseLatencyMs := interactionFields[13].Descriptor()
	// interaction.DefaultResponseLatencyMs holds the default value on creation for the response_latency_ms field.
	interaction.DefaultResponseLatencyMs = interactionDescResponseLatencyMs.Default.(int64)
	// interactionDescTimeOfDay is the schema descriptor for time_of_day field.
	interactionDescTimeOfDay := interactionFields[14].Descriptor()
	// interaction.DefaultTimeOfDay holds the default value on creation for the time_of_day field.
	interaction.DefaultTimeOfDay = interactionDescTimeOfDay.Default.(string)
	// interactionDescDeviceType is the schema descriptor for device_type field.
	interactionDescDeviceType := interactionFields[15].Descriptor()
	// interaction.DefaultDeviceType holds the default value on creation for the device_type field.
	interaction.DefaultDeviceType = interactionDescDeviceType.Default.(string)
	learnerprofileFields := schema.LearnerProfile{}.Fields()
	_ = learnerprofileFields
	// learnerprofileDescLearnerID is the schema descriptor for learner_id field.
	learnerprofileDescLearnerID := learnerprofileFields[0].Descriptor()
	// learnerprofile.LearnerIDValidator is a validator for the "learner_id" field. It is called by the builders before save.
	learnerprofile.LearnerIDValidator = learnerprofileDescLearnerID.Validators[0].(func(string) error)
	// learnerprofileDescRole is the schema descriptor for role field.
	learnerprofileDescRole := learnerprofileFields[1].Descriptor()
	// learnerprofile.RoleValidator is a validator for the "role" field. It is called by the builders before save.
	learnerprofile.RoleValidator = learnerprofileDescRole.Validators[0].(func(string) error)
	// learnerprofileDescStyleVisual is the schema descriptor for style_visual field.
	learnerprofileDescStyleVisual := learnerprofileFields[2].Descriptor()
	// learnerprofile.DefaultStyleVisual holds the default value on creation for the style_visual field.
	learnerprofile.DefaultStyleVisual = learnerprofileDescStyleVisual.Default.(int)
	// learnerprofileDescStyleAuditory is the schema descriptor for style_auditory field.
	learnerprofileDescStyleAuditory := learnerprofileFields[3].Descriptor()
	// learnerprofile.DefaultStyleAuditory holds the default value on creation for the style_auditory field.
	learnerprofile.DefaultStyleAuditory = learnerprofileDescStyleAuditory.Default.(int)
	// learnerprofileDescStyleKinesthetic is the schema descriptor for style_kinesthetic field.
	learnerprofileDescStyleKinesthetic := learnerprofileFields[4].Descriptor()
	// learnerprofile.DefaultStyleKinesthetic holds the default value on creation for the style_kinesthetic field.
	learnerprofile.DefaultStyleKinesthetic = learnerprofileDescStyleKinesthetic.Default.(int)
	// learnerprofileDescStyleReading is the schema descriptor for style_reading field.
	learnerprofileDescStyleReading := learnerprofileFields[5].Descriptor()
	// learnerprofile.DefaultStyleReading holds the default value on creation for the style_reading field.
	learnerprofile.DefaultStyleReading = learnerprofileDescStyleReading.Default.(int)
	// learnerprofileDescAge is the schema descriptor for age field.
	learnerprofileDescAge := learnerprofileFields[9].Descriptor()
	// learnerprofile.DefaultAge holds the default value on creation for the age field.
	learnerprofile.DefaultAge = learnerprofileDescAge.Default.(int)
	// learnerprofileDescEducationLevel is the schema descriptor for education_level field.
	learnerprofileDescEducationLevel := learnerprofileFields[10].Descriptor()
	// learnerprofile.DefaultEducationLevel holds the default value on creation for the education_level field.
	learnerprofile.DefaultEducationLevel = learnerprofileDescEducationLevel.Default.(string)
	// learnerprofileDescCulturalContext is the schema descriptor for cultural_context field.
	learnerprofileDescCulturalContext := learnerprofileFields[11].Descriptor()
	// learnerprofile.DefaultCulturalContext holds the default value on creation for the cultural_context field.
	learnerprofile.DefaultCulturalContext = learnerprofileDescCulturalContext.Default.(string)
	// learnerprofileDescCompleteness is the schema descriptor for completeness field.
	learnerprofileDescCompleteness := learnerprofileFields[12].Descriptor()
	// learnerprofile.DefaultCompleteness holds the default value on creation for the completeness field.
	learnerprofile.DefaultCompleteness = learnerprofileDescCompleteness.Default.(float64)
	// learnerprofileDescArchived is the schema descriptor for archived field.
	learnerprofileDescArchived := learnerprofileFields[13].Descriptor()
	// learnerprofile.DefaultArchived holds the default value on creation for the archived field.
	learnerprofile.DefaultArchived = learnerprofileDescArchived.Default.(bool)
	// learnerprofileDescCreatedAt is the schema descriptor for created_at field.
	learnerprofileDescCreatedAt := learnerprofileFields[14].Descriptor()
	// learnerprofile.DefaultCreatedAt holds the default value on creation for the created_at field.
	learnerprofile.DefaultCreatedAt = learnerprofileDescCreatedAt.Default.(func() time.Time)
	// learnerprofileDescUpdatedAt is the schema descriptor for updated_at field.
	learnerprofileDescUpdatedAt := learnerprofileFields[15].Descriptor()
	// learnerprofile.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	learnerprofile.DefaultUpdatedAt = learnerprofileDescUpdatedAt.Default.(func() time.Time)
	// learnerprofile.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	learnerprofile.UpdateDefaultUpdatedAt = learnerprofileDescUpdatedAt.UpdateDefault.(func() time.Time)
	masteryrecordFields := schema.MasteryRecord{}.Fields()
	_ = masteryrecordFields
	// masteryrecordDescLearnerID is the schema descriptor for learner_id field.
	masteryrecordDescLearnerID := masteryrecordFields[0].Descriptor()
	// masteryrecord.LearnerIDValidator is a validator for the "learner_id" field. It is called by the builders before save.
	masteryrecord.LearnerIDValidator = masteryrecordDescLearnerID.Validators[0].(func(string) error)
	// masteryrecordDescConceptID is the schema descriptor for concept_id field.
	masteryrecordDescConceptID := masteryrecordFields[1].Descriptor()
	// masteryrecord.ConceptIDValidator is a validator for the "concept_id" field. It is called by the builders before save.
	masteryrecord.ConceptIDValidator = masteryrecordDescConceptID.Validators[0].(func(string) error)
	// masteryrecordDescScore is the schema descriptor for score field.
	masteryrecordDescScore := masteryrecordFields[2].Descriptor()
	// masteryrecord.DefaultScore holds the default value on creation for the score field.
	masteryrecord.DefaultScore = masteryrecordDescScore.Default.(float64)
	// masteryrecordDescInteractionCount is the schema descriptor for interaction_count field.
	masteryrecordDescInteractionCount := masteryrecordFields[3].Descriptor()
	// masteryrecord.DefaultInteractionCount holds the default value on creation for the interaction_count field.
	masteryrecord.DefaultInteractionCount = masteryrecordDescInteractionCount.Default.(int)
	// masteryrecordDescLastUpdatedAt is the schema descriptor for last_updated_at field.
	masteryrecordDescLastUpdatedAt := masteryrecordFields[4].Descriptor()
	// masteryrecord.DefaultLastUpdatedAt holds the default value on creation for the last_updated_at field.
	masteryrecord.DefaultLastUpdatedAt = masteryrecordDescLastUpdatedAt.Default.(func() time.Time)
	recommendationFields := schema.Recommendation{}.Fields()
	_ = recommendationFields
	// recommendationDescRecommendationID is the schema descriptor for recommendation_id field.
	recommendationDescRecommendationID := recommendationFields[0].Descriptor()
	// recommendation.RecommendationIDValidator is a validator for the "recommendation_id" field. It is called by the builders before save.
	recommendation.RecommendationIDValidator = recommendationDescRecommendationID.Validators[0].(func(string) error)
	// recommendationDescLearnerID is the schema descriptor for learner_id field.
	recommendationDescLearnerID := recommendationFields[1].Descriptor()
	// recommendation.LearnerIDValidator is a validator for the "learner_id" field. It is called by the builders before save.
	recommendation.LearnerIDValidator = recommendationDescLearnerID.Validators[0].(func(string) error)
	// recommendationDescRecType is the schema descriptor for rec_type field.
	recommendationDescRecType := recommendationFields[2].Descriptor()
	// recommendation.RecTypeValidator is a validator for the "rec_type" field. It is called by the builders before save.
	recommendation.RecTypeValidator = recommendationDescRecType.Validators[0].(func(string) error)
	// recommendationDescConceptID is the schema descriptor for concept_id field.
	recommendationDescConceptID := recommendationFields[3].Descriptor()
	// recommendation.DefaultConceptID holds the default value on creation for the concept_id field.
	recommendation.DefaultConceptID = recommendationDescConceptID.Default.(string)
	// recommendationDescTitle is the schema descriptor for title field.
	recommendationDescTitle := recommendationFields[4].Descriptor()
	// recommendation.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	recommendation.TitleValidator = recommendationDescTitle.Validators[0].(func(string) error)
	// recommendationDescDescription is the schema descriptor for description field.
	recommendationDescDescription := recommendationFields[5].Descriptor()
	// recommendation.DescriptionValidator is a validator for the "description" field. It is called by the builders before save.
	recommendation.DescriptionValidator = recommendationDescDescription.Validators[0].(func(string) error)
	// recommendationDescReasoning is the schema descriptor for reasoning field.
	recommendationDescReasoning := recommendationFields[6].Descriptor()
	// recommendation.ReasoningValidator is a validator for the "reasoning" field. It is called by the builders before save.
	recommendation.ReasoningValidator = recommendationDescReasoning.Validators[0].(func(string) error)
	// recommendationDescDifficultyLevel is the schema descriptor for difficulty_level field.
	recommendationDescDifficultyLevel := recommendationFields[7].Descriptor()
	// recommendation.DefaultDifficultyLevel holds the default value on creation for the difficulty_level field.
	recommendation.DefaultDifficultyLevel = recommendationDescDifficultyLevel.Default.(int)
	// recommendationDescEstimatedMinutes is the schema descriptor for estimated_minutes field.
	recommendationDescEstimatedMinutes := recommendationFields[8].Descriptor()
	// recommendation.DefaultEstimatedMinutes holds the default value on creation for the estimated_minutes field.
	recommendation.DefaultEstimatedMinutes = recommendationDescEstimatedMinutes.Default.(int)
	// recommendationDescUrgency is the schema descriptor for urgency field.
	recommendationDescUrgency := recommendationFields[10].Descriptor()
	// recommendation.UrgencyValidator is a validator for the "urgency" field. It is called by the builders before save.
	recommendation.UrgencyValidator = recommendationDescUrgency.Validators[0].(func(string) error)
	// recommendationDescStatus is the schema descriptor for status field.
	recommendationDescStatus := recommendationFields[11].Descriptor()
	// recommendation.DefaultStatus holds the default value on creation for the status field.
	recommendation.DefaultStatus = recommendationDescStatus.Default.(string)
	// recommendationDescCreatedAt is the schema descriptor for created_at field.
	recommendationDescCreatedAt := recommendationFields[12].Descriptor()
	// recommendation.DefaultCreatedAt holds the default value on creation for the created_at field.
	recommendation.DefaultCreatedAt = recommendationDescCreatedAt.Default.(func() time.Time)
	scorereventMixin := schema.ScorerEvent{}.Mixin()
	scorereventMixinFields0 := scorereventMixin[0].Fields()
	_ = scorereventMixinFields0
	scorereventFields := schema.ScorerEvent{}.Fields()
	_ = scorereventFields
	// scorereventDescTimestamp is the schema descriptor for timestamp field.
	scorereventDescTimestamp := scorereventMixinFields0[1].Descriptor()
	// scorerevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	scorerevent.DefaultTimestamp = scorereventDescTimestamp.Default.(func() time.Time)
	// scorereventDescInteractionID is the schema descriptor for interaction_id field.
	scorereventDescInteractionID := scorereventFields[2].Descriptor()
	// scorerevent.DefaultInteractionID holds the default value on creation for the interaction_id field.
	scorerevent.DefaultInteractionID = scorereventDescInteractionID.Default.(string)
	// scorereventDescInputTokens is the schema descriptor for input_tokens field.
	scorereventDescInputTokens := scorereventFields[3].Descriptor()
	// scorerevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	scorerevent.DefaultInputTokens = scorereventDescInputTokens.Default.(int)
	// scorereventDescOutputTokens is the schema descriptor for output_tokens field.
	scorereventDescOutputTokens := scorereventFields[4].Descriptor()
	// scorerevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	scorerevent.DefaultOutputTokens = scorereventDescOutputTokens.Default.(int)
	// scorereventDescLatencyMs is the schema descriptor for latency_ms field.
	scorereventDescLatencyMs := scorereventFields[5].Descriptor()
	// scorerevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	scorerevent.DefaultLatencyMs = scorereventDescLatencyMs.Default.(int64)
	// scorereventDescErrorMessage is the schema descriptor for error_message field.
	scorereventDescErrorMessage := scorereventFields[7].Descriptor()
	// scorerevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	scorerevent.DefaultErrorMessage = scorereventDescErrorMessage.Default.(string)
	sessioneventMixin := schema.SessionEvent{}.Mixin()
	sessioneventMixinFields0 := sessioneventMixin[0].Fields()
	_ = sessioneventMixinFields0
	sessioneventFields := schema.SessionEvent{}.Fields()
	_ = sessioneventFields
	// sessioneventDescTimestamp is the schema descriptor for timestamp field.
	sessioneventDescTimestamp := sessioneventMixinFields0[1].Descriptor()
	// sessionevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	sessionevent.DefaultTimestamp = sessioneventDescTimestamp.Default.(func() time.Time)
	// sessioneventDescSessionID is the schema descriptor for session_id field.
	sessioneventDescSessionID := sessioneventFields[0].Descriptor()
	// sessionevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	sessionevent.SessionIDValidator = sessioneventDescSessionID.Validators[0].(func(string) error)
	// sessioneventDescLearnerID is the schema descriptor for learner_id field.
	sessioneventDescLearnerID := sessioneventFields[1].Descriptor()
	// sessionevent.LearnerIDValidator is a validator for the "learner_id" field. It is called by the builders before save.
	sessionevent.LearnerIDValidator = sessioneventDescLearnerID.Validators[0].(func(string) error)
	// sessioneventDescAction is the schema descriptor for action field.
	sessioneventDescAction := sessioneventFields[2].Descriptor()
	// sessionevent.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	sessionevent.ActionValidator = sessioneventDescAction.Validators[0].(func(string) error)
	// sessioneventDescConceptID is the schema descriptor for concept_id field.
	sessioneventDescConceptID := sessioneventFields[3].Descriptor()
	// sessionevent.DefaultConceptID holds the default value on creation for the concept_id field.
	sessionevent.DefaultConceptID = sessioneventDescConceptID.Default.(string)
	// sessioneventDescTurnsServed is the schema descriptor for turns_served field.
	sessioneventDescTurnsServed := sessioneventFields[4].Descriptor()
	// sessionevent.DefaultTurnsServed holds the default value on creation for the turns_served field.
	sessionevent.DefaultTurnsServed = sessioneventDescTurnsServed.Default.(int)
	// sessioneventDescEndReason is the schema descriptor for end_reason field.
	sessioneventDescEndReason := sessioneventFields[5].Descriptor()
	// sessionevent.DefaultEndReason holds the default value on creation for the end_reason field.
	sessionevent.DefaultEndReason = sessioneventDescEndReason.Default.(string)
	// sessioneventDescDegraded is the schema descriptor for degraded field.
	sessioneventDescDegraded := sessioneventFields[6].Descriptor()
	// sessionevent.DefaultDegraded holds the default value on creation for the degraded field.
	sessionevent.DefaultDegraded = sessioneventDescDegraded.Default.(bool)
}
