// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/paideia/ent/interaction"
	"github.com/abhisek/paideia/ent/learnerprofile"
	"github.com/abhisek/paideia/ent/masteryrecord"
	"github.com/abhisek/paideia/ent/predicate"
	"github.com/abhisek/paideia/ent/recommendation"
	"github.com/abhisek/paideia/ent/scorerevent"
	"github.com/abhisek/paideia/ent/sessionevent"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeInteraction    = "Interaction"
	TypeLearnerProfile = "LearnerProfile"
	TypeMasteryRecord  = "MasteryRecord"
	TypeRecommendation = "Recommendation"
	TypeScorerEvent    = "ScorerEvent"
	TypeSessionEvent   = "SessionEvent"
)

// InteractionMutation represents an operation that mutates the Interaction nodes in the graph.
type InteractionMutation struct {
	config
	op                     Op
	typ                    string
	id                     *int
	sequence               *int64
	addsequence            *int64
	timestamp              *time.Time
	interaction_id         *string
	session_id             *string
	learner_id             *string
	concept_id             *string
	subject                *string
	difficulty_level       *int
	adddifficulty_level    *int
	methodology            *string
	question_text          *string
	response_text          *string
	success_indicator      *float64
	addsuccess_indicator   *float64
	unscored               *bool
	repeated_question      *bool
	prev_interaction_id    *string
	response_latency_ms    *int64
	addresponse_latency_ms *int64
	time_of_day            *string
	device_type            *string
	clearedFields          map[string]struct{}
	done                   bool
	oldValue               func(context.Context) (*Interaction, error)
	predicates             []predicate.Interaction
}

var _ ent.Mutation = (*InteractionMutation)(nil)

// interactionOption allows management of the mutation configuration using functional options.
type interactionOption func(*InteractionMutation)

// newInteractionMutation creates new mutation for the Interaction entity.
func newInteractionMutation(c config, op Op, opts ...interactionOption) *InteractionMutation {
	m := &InteractionMutation{
		config:        c,
		op:            op,
		typ:           TypeInteraction,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withInteractionID sets the ID field of the mutation.
func withInteractionID(id int) interactionOption {
	return func(m *InteractionMutation) {
		var (
			err   error
			once  sync.Once
			value *Interaction
		)
		m.oldValue = func(ctx context.Context) (*Interaction, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Interaction.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withInteraction sets the old Interaction of the mutation.
func withInteraction(node *Interaction) interactionOption {
	return func(m *InteractionMutation) {
		m.oldValue = func(context.Context) (*Interaction, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m InteractionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m InteractionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *InteractionMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *InteractionMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Interaction.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSequence sets the "sequence" field.
func (m *InteractionMutation) SetSequence(i int64) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *InteractionMutation) Sequence() (r int64, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the Interaction entity.
// If the Interaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InteractionMutation) OldSequence(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *InteractionMutation) AddSequence(i int64) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *InteractionMutation) AddedSequence() (r int64, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *InteractionMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *InteractionMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *InteractionMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the Interaction entity.
// If the Interaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InteractionMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *InteractionMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetInteractionID sets the "interaction_id" field.
func (m *InteractionMutation) SetInteractionID(s string) {
	m.interaction_id = &s
}

// InteractionID returns the value of the "interaction_id" field in the mutation.
func (m *InteractionMutation) InteractionID() (r string, exists bool) {
	v := m.interaction_id
	if v == nil {
		return
	}
	return *v, true
}

// OldInteractionID returns the old "interaction_id" field's value of the Interaction entity.
// If the Interaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InteractionMutation) OldInteractionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInteractionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInteractionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInteractionID: %w", err)
	}
	return oldValue.InteractionID, nil
}

// ResetInteractionID resets all changes to the "interaction_id" field.
func (m *InteractionMutation) ResetInteractionID() {
	m.interaction_id = nil
}

// SetSessionID sets the "session_id" field.
func (m *InteractionMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *InteractionMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the Interaction entity.
// If the Interaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InteractionMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *InteractionMutation) ResetSessionID() {
	m.session_id = nil
}

// SetLearnerID sets the "learner_id" field.
func (m *InteractionMutation) SetLearnerID(s string) {
	m.learner_id = &s
}

// LearnerID returns the value of the "learner_id" field in the mutation.
func (m *InteractionMutation) LearnerID() (r string, exists bool) {
	v := m.learner_id
	if v == nil {
		return
	}
	return *v, true
}

// OldLearnerID returns the old "learner_id" field's value of the Interaction entity.
// If the Interaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InteractionMutation) OldLearnerID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLearnerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLearnerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLearnerID: %w", err)
	}
	return oldValue.LearnerID, nil
}

// ResetLearnerID resets all changes to the "learner_id" field.
func (m *InteractionMutation) ResetLearnerID() {
	m.learner_id = nil
}

// SetConceptID sets the "concept_id" field.
func (m *InteractionMutation) SetConceptID(s string) {
	m.concept_id = &s
}

// ConceptID returns the value of the "concept_id" field in the mutation.
func (m *InteractionMutation) ConceptID() (r string, exists bool) {
	v := m.concept_id
	if v == nil {
		return
	}
	return *v, true
}

// OldConceptID returns the old "concept_id" field's value of the Interaction entity.
// If the Interaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InteractionMutation) OldConceptID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConceptID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConceptID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConceptID: %w", err)
	}
	return oldValue.ConceptID, nil
}

// ResetConceptID resets all changes to the "concept_id" field.
func (m *InteractionMutation) ResetConceptID() {
	m.concept_id = nil
}

// SetSubject sets the "subject" field.
func (m *InteractionMutation) SetSubject(s string) {
	m.subject = &s
}

// Subject returns the value of the "subject" field in the mutation.
func (m *InteractionMutation) Subject() (r string, exists bool) {
	v := m.subject
	if v == nil {
		return
	}
	return *v, true
}

// OldSubject returns the old "subject" field's value of the Interaction entity.
// If the Interaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InteractionMutation) OldSubject(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubject is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubject requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubject: %w", err)
	}
	return oldValue.Subject, nil
}

// ResetSubject resets all changes to the "subject" field.
func (m *InteractionMutation) ResetSubject() {
	m.subject = nil
}

// SetDifficultyLevel sets the "difficulty_level" field.
func (m *InteractionMutation) SetDifficultyLevel(i int) {
	m.difficulty_level = &i
	m.adddifficulty_level = nil
}

// DifficultyLevel returns the value of the "difficulty_level" field in the mutation.
func (m *InteractionMutation) DifficultyLevel() (r int, exists bool) {
	v := m.difficulty_level
	if v == nil {
		return
	}
	return *v, true
}

// OldDifficultyLevel returns the old "difficulty_level" field's value of the Interaction entity.
// If the Interaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InteractionMutation) OldDifficultyLevel(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDifficultyLevel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDifficultyLevel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDifficultyLevel: %w", err)
	}
	return oldValue.DifficultyLevel, nil
}

// AddDifficultyLevel adds i to the "difficulty_level" field.
func (m *InteractionMutation) AddDifficultyLevel(i int) {
	if m.adddifficulty_level != nil {
		*m.adddifficulty_level += i
	} else {
		m.adddifficulty_level = &i
	}
}

// AddedDifficultyLevel returns the value that was added to the "difficulty_level" field in this mutation.
func (m *InteractionMutation) AddedDifficultyLevel() (r int, exists bool) {
	v := m.adddifficulty_level
	if v == nil {
		return
	}
	return *v, true
}

// ResetDifficultyLevel resets all changes to the "difficulty_level" field.
func (m *InteractionMutation) ResetDifficultyLevel() {
	m.difficulty_level = nil
	m.adddifficulty_level = nil
}

// SetMethodology sets the "methodology" field.
func (m *InteractionMutation) SetMethodology(s string) {
	m.methodology = &s
}

// Methodology returns the value of the "methodology" field in the mutation.
func (m *InteractionMutation) Methodology() (r string, exists bool) {
	v := m.methodology
	if v == nil {
		return
	}
	return *v, true
}

// OldMethodology returns the old "methodology" field's value of the Interaction entity.
// If the Interaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InteractionMutation) OldMethodology(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMethodology is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMethodology requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMethodology: %w", err)
	}
	return oldValue.Methodology, nil
}

// ResetMethodology resets all changes to the "methodology" field.
func (m *InteractionMutation) ResetMethodology() {
	m.methodology = nil
}

// SetQuestionText sets the "question_text" field.
func (m *InteractionMutation) SetQuestionText(s string) {
	m.question_text = &s
}

// QuestionText returns the value of the "question_text" field in the mutation.
func (m *InteractionMutation) QuestionText() (r string, exists bool) {
	v := m.question_text
	if v == nil {
		return
	}
	return *v, true
}

// OldQuestionText returns the old "question_text" field's value of the Interaction entity.
// If the Interaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InteractionMutation) OldQuestionText(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuestionText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuestionText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuestionText: %w", err)
	}
	return oldValue.QuestionText, nil
}

// ResetQuestionText resets all changes to the "question_text" field.
func (m *InteractionMutation) ResetQuestionText() {
	m.question_text = nil
}

// SetResponseText sets the "response_text" field.
func (m *InteractionMutation) SetResponseText(s string) {
	m.response_text = &s
}

// ResponseText returns the value of the "response_text" field in the mutation.
func (m *InteractionMutation) ResponseText() (r string, exists bool) {
	v := m.response_text
	if v == nil {
		return
	}
	return *v, true
}

// OldResponseText returns the old "response_text" field's value of the Interaction entity.
// If the Interaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InteractionMutation) OldResponseText(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResponseText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResponseText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResponseText: %w", err)
	}
	return oldValue.ResponseText, nil
}

// ClearResponseText clears the value of the "response_text" field.
func (m *InteractionMutation) ClearResponseText() {
	m.response_text = nil
	m.clearedFields[interaction.FieldResponseText] = struct{}{}
}

// ResponseTextCleared returns if the "response_text" field was cleared in this mutation.
func (m *InteractionMutation) ResponseTextCleared() bool {
	_, ok := m.clearedFields[interaction.FieldResponseText]
	return ok
}

// ResetResponseText resets all changes to the "response_text" field.
func (m *InteractionMutation) ResetResponseText() {
	m.response_text = nil
	delete(m.clearedFields, interaction.FieldResponseText)
}

// SetSuccessIndicator sets the "success_indicator" field.
func (m *InteractionMutation) SetSuccessIndicator(f float64) {
	m.success_indicator = &f
	m.addsuccess_indicator = nil
}

// SuccessIndicator returns the value of the "success_indicator" field in the mutation.
func (m *InteractionMutation) SuccessIndicator() (r float64, exists bool) {
	v := m.success_indicator
	if v == nil {
		return
	}
	return *v, true
}

// OldSuccessIndicator returns the old "success_indicator" field's value of the Interaction entity.
// If the Interaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InteractionMutation) OldSuccessIndicator(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSuccessIndicator is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSuccessIndicator requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSuccessIndicator: %w", err)
	}
	return oldValue.SuccessIndicator, nil
}

// AddSuccessIndicator adds f to the "success_indicator" field.
func (m *InteractionMutation) AddSuccessIndicator(f float64) {
	if m.addsuccess_indicator != nil {
		*m.addsuccess_indicator += f
	} else {
		m.addsuccess_indicator = &f
	}
}

// AddedSuccessIndicator returns the value that was added to the "success_indicator" field in this mutation.
func (m *InteractionMutation) AddedSuccessIndicator() (r float64, exists bool) {
	v := m.addsuccess_indicator
	if v == nil {
		return
	}
	return *v, true
}

// ClearSuccessIndicator clears the value of the "success_indicator" field.
func (m *InteractionMutation) ClearSuccessIndicator() {
	m.success_indicator = nil
	m.addsuccess_indicator = nil
	m.clearedFields[interaction.FieldSuccessIndicator] = struct{}{}
}

// SuccessIndicatorCleared returns if the "success_indicator" field was cleared in this mutation.
func (m *InteractionMutation) SuccessIndicatorCleared() bool {
	_, ok := m.clearedFields[interaction.FieldSuccessIndicator]
	return ok
}

// ResetSuccessIndicator resets all changes to the "success_indicator" field.
func (m *InteractionMutation) ResetSuccessIndicator() {
	m.success_indicator = nil
	m.addsuccess_indicator = nil
	delete(m.clearedFields, interaction.FieldSuccessIndicator)
}

// SetUnscored sets the "unscored" field.
func (m *InteractionMutation) SetUnscored(b bool) {
	m.unscored = &b
}

// Unscored returns the value of the "unscored" field in the mutation.
func (m *InteractionMutation) Unscored() (r bool, exists bool) {
	v := m.unscored
	if v == nil {
		return
	}
	return *v, true
}

// OldUnscored returns the old "unscored" field's value of the Interaction entity.
// If the Interaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InteractionMutation) OldUnscored(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUnscored is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUnscored requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUnscored: %w", err)
	}
	return oldValue.Unscored, nil
}

// ResetUnscored resets all changes to the "unscored" field.
func (m *InteractionMutation) ResetUnscored() {
	m.unscored = nil
}

// SetRepeatedQuestion sets the "repeated_question" field.
func (m *InteractionMutation) SetRepeatedQuestion(b bool) {
	m.repeated_question = &b
}

// RepeatedQuestion returns the value of the "repeated_question" field in the mutation.
func (m *InteractionMutation) RepeatedQuestion() (r bool, exists bool) {
	v := m.repeated_question
	if v == nil {
		return
	}
	return *v, true
}

// OldRepeatedQuestion returns the old "repeated_question" field's value of the Interaction entity.
// If the Interaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InteractionMutation) OldRepeatedQuestion(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRepeatedQuestion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRepeatedQuestion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRepeatedQuestion: %w", err)
	}
	return oldValue.RepeatedQuestion, nil
}

// ResetRepeatedQuestion resets all changes to the "repeated_question" field.
func (m *InteractionMutation) ResetRepeatedQuestion() {
	m.repeated_question = nil
}

// SetPrevInteractionID sets the "prev_interaction_id" field.
func (m *InteractionMutation) SetPrevInteractionID(s string) {
	m.prev_interaction_id = &s
}

// PrevInteractionID returns the value of the "prev_interaction_id" field in the mutation.
func (m *InteractionMutation) PrevInteractionID() (r string, exists bool) {
	v := m.prev_interaction_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPrevInteractionID returns the old "prev_interaction_id" field's value of the Interaction entity.
// If the Interaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InteractionMutation) OldPrevInteractionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPrevInteractionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPrevInteractionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPrevInteractionID: %w", err)
	}
	return oldValue.PrevInteractionID, nil
}

// ResetPrevInteractionID resets all changes to the "prev_interaction_id" field.
func (m *InteractionMutation) ResetPrevInteractionID() {
	m.prev_interaction_id = nil
}

// SetResponseLatencyMs sets the "response_latency_ms" field.
func (m *InteractionMutation) SetResponseLatencyMs(i int64) {
	m.response_latency_ms = &i
	m.addresponse_latency_ms = nil
}

// ResponseLatencyMs returns the value of the "response_latency_ms" field in the mutation.
func (m *InteractionMutation) ResponseLatencyMs() (r int64, exists bool) {
	v := m.response_latency_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldResponseLatencyMs returns the old "response_latency_ms" field's value of the Interaction entity.
// If the Interaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InteractionMutation) OldResponseLatencyMs(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResponseLatencyMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResponseLatencyMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResponseLatencyMs: %w", err)
	}
	return oldValue.ResponseLatencyMs, nil
}

// AddResponseLatencyMs adds i to the "response_latency_ms" field.
func (m *InteractionMutation) AddResponseLatencyMs(i int64) {
	if m.addresponse_latency_ms != nil {
		*m.addresponse_latency_ms += i
	} else {
		m.addresponse_latency_ms = &i
	}
}

// AddedResponseLatencyMs returns the value that was added to the "response_latency_ms" field in this mutation.
func (m *InteractionMutation) AddedResponseLatencyMs() (r int64, exists bool) {
	v := m.addresponse_latency_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetResponseLatencyMs resets all changes to the "response_latency_ms" field.
func (m *InteractionMutation) ResetResponseLatencyMs() {
	m.response_latency_ms = nil
	m.addresponse_latency_ms = nil
}

// SetTimeOfDay sets the "time_of_day" field.
func (m *InteractionMutation) SetTimeOfDay(s string) {
	m.time_of_day = &s
}

// TimeOfDay returns the value of the "time_of_day" field in the mutation.
func (m *InteractionMutation) TimeOfDay() (r string, exists bool) {
	v := m.time_of_day
	if v == nil {
		return
	}
	return *v, true
}

// OldTimeOfDay returns the old "time_of_day" field's value of the Interaction entity.
// If the Interaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InteractionMutation) OldTimeOfDay(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimeOfDay is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimeOfDay requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimeOfDay: %w", err)
	}
	return oldValue.TimeOfDay, nil
}

// ResetTimeOfDay resets all changes to the "time_of_day" field.
func (m *InteractionMutation) ResetTimeOfDay() {
	m.time_of_day = nil
}

// SetDeviceType sets the "device_type" field.
func (m *InteractionMutation) SetDeviceType(s string) {
	m.device_type = &s
}

// DeviceType returns the value of the "device_type" field in the mutation.
func (m *InteractionMutation) DeviceType() (r string, exists bool) {
	v := m.device_type
	if v == nil {
		return
	}
	return *v, true
}

// OldDeviceType returns the old "device_type" field's value of the Interaction entity.
// If the Interaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InteractionMutation) OldDeviceType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeviceType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeviceType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeviceType: %w", err)
	}
	return oldValue.DeviceType, nil
}

// ResetDeviceType resets all changes to the "device_type" field.
func (m *InteractionMutation) ResetDeviceType() {
	m.device_type = nil
}

// Where appends a list predicates to the InteractionMutation builder.
func (m *InteractionMutation) Where(ps ...predicate.Interaction) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the InteractionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *InteractionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Interaction, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *InteractionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *InteractionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Interaction).
func (m *InteractionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *InteractionMutation) Fields() []string {
	fields := make([]string, 0, 18)
	if m.sequence != nil {
		fields = append(fields, interaction.FieldSequence)
	}
	if m.timestamp != nil {
		fields = append(fields, interaction.FieldTimestamp)
	}
	if m.interaction_id != nil {
		fields = append(fields, interaction.FieldInteractionID)
	}
	if m.session_id != nil {
		fields = append(fields, interaction.FieldSessionID)
	}
	if m.learner_id != nil {
		fields = append(fields, interaction.FieldLearnerID)
	}
	if m.concept_id != nil {
		fields = append(fields, interaction.FieldConceptID)
	}
	if m.subject != nil {
		fields = append(fields, interaction.FieldSubject)
	}
	if m.difficulty_level != nil {
		fields = append(fields, interaction.FieldDifficultyLevel)
	}
	if m.methodology != nil {
		fields = append(fields, interaction.FieldMethodology)
	}
	if m.question_text != nil {
		fields = append(fields, interaction.FieldQuestionText)
	}
	if m.response_text != nil {
		fields = append(fields, interaction.FieldResponseText)
	}
	if m.success_indicator != nil {
		fields = append(fields, interaction.FieldSuccessIndicator)
	}
	if m.unscored != nil {
		fields = append(fields, interaction.FieldUnscored)
	}
	if m.repeated_question != nil {
		fields = append(fields, interaction.FieldRepeatedQuestion)
	}
	if m.prev_interaction_id != nil {
		fields = append(fields, interaction.FieldPrevInteractionID)
	}
	if m.response_latency_ms != nil {
		fields = append(fields, interaction.FieldResponseLatencyMs)
	}
	if m.time_of_day != nil {
		fields = append(fields, interaction.FieldTimeOfDay)
	}
	if m.device_type != nil {
		fields = append(fields, interaction.FieldDeviceType)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *InteractionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case interaction.FieldSequence:
		return m.Sequence()
	case interaction.FieldTimestamp:
		return m.Timestamp()
	case interaction.FieldInteractionID:
		return m.InteractionID()
	case interaction.FieldSessionID:
		return m.SessionID()
	case interaction.FieldLearnerID:
		return m.LearnerID()
	case interaction.FieldConceptID:
		return m.ConceptID()
	case interaction.FieldSubject:
		return m.Subject()
	case interaction.FieldDifficultyLevel:
		return m.DifficultyLevel()
	case interaction.FieldMethodology:
		return m.Methodology()
	case interaction.FieldQuestionText:
		return m.QuestionText()
	case interaction.FieldResponseText:
		return m.ResponseText()
	case interaction.FieldSuccessIndicator:
		return m.SuccessIndicator()
	case interaction.FieldUnscored:
		return m.Unscored()
	case interaction.FieldRepeatedQuestion:
		return m.RepeatedQuestion()
	case interaction.FieldPrevInteractionID:
		return m.PrevInteractionID()
	case interaction.FieldResponseLatencyMs:
		return m.ResponseLatencyMs()
	case interaction.FieldTimeOfDay:
		return m.TimeOfDay()
	case interaction.FieldDeviceType:
		return m.DeviceType()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *InteractionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case interaction.FieldSequence:
		return m.OldSequence(ctx)
	case interaction.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case interaction.FieldInteractionID:
		return m.OldInteractionID(ctx)
	case interaction.FieldSessionID:
		return m.OldSessionID(ctx)
	case interaction.FieldLearnerID:
		return m.OldLearnerID(ctx)
	case interaction.FieldConceptID:
		return m.OldConceptID(ctx)
	case interaction.FieldSubject:
		return m.OldSubject(ctx)
	case interaction.FieldDifficultyLevel:
		return m.OldDifficultyLevel(ctx)
	case interaction.FieldMethodology:
		return m.OldMethodology(ctx)
	case interaction.FieldQuestionText:
		return m.OldQuestionText(ctx)
	case interaction.FieldResponseText:
		return m.OldResponseText(ctx)
	case interaction.FieldSuccessIndicator:
		return m.OldSuccessIndicator(ctx)
	case interaction.FieldUnscored:
		return m.OldUnscored(ctx)
	case interaction.FieldRepeatedQuestion:
		return m.OldRepeatedQuestion(ctx)
	case interaction.FieldPrevInteractionID:
		return m.OldPrevInteractionID(ctx)
	case interaction.FieldResponseLatencyMs:
		return m.OldResponseLatencyMs(ctx)
	case interaction.FieldTimeOfDay:
		return m.OldTimeOfDay(ctx)
	case interaction.FieldDeviceType:
		return m.OldDeviceType(ctx)
	}
	return nil, fmt.Errorf("unknown Interaction field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *InteractionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case interaction.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case interaction.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case interaction.FieldInteractionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInteractionID(v)
		return nil
	case interaction.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case interaction.FieldLearnerID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLearnerID(v)
		return nil
	case interaction.FieldConceptID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConceptID(v)
		return nil
	case interaction.FieldSubject:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubject(v)
		return nil
	case interaction.FieldDifficultyLevel:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDifficultyLevel(v)
		return nil
	case interaction.FieldMethodology:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMethodology(v)
		return nil
	case interaction.FieldQuestionText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuestionText(v)
		return nil
	case interaction.FieldResponseText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResponseText(v)
		return nil
	case interaction.FieldSuccessIndicator:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSuccessIndicator(v)
		return nil
	case interaction.FieldUnscored:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUnscored(v)
		return nil
	case interaction.FieldRepeatedQuestion:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRepeatedQuestion(v)
		return nil
	case interaction.FieldPrevInteractionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPrevInteractionID(v)
		return nil
	case interaction.FieldResponseLatencyMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResponseLatencyMs(v)
		return nil
	case interaction.FieldTimeOfDay:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimeOfDay(v)
		return nil
	case interaction.FieldDeviceType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeviceType(v)
		return nil
	}
	return fmt.Errorf("unknown Interaction field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *InteractionMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, interaction.FieldSequence)
	}
	if m.adddifficulty_level != nil {
		fields = append(fields, interaction.FieldDifficultyLevel)
	}
	if m.addsuccess_indicator != nil {
		fields = append(fields, interaction.FieldSuccessIndicator)
	}
	if m.addresponse_latency_ms != nil {
		fields = append(fields, interaction.FieldResponseLatencyMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *InteractionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case interaction.FieldSequence:
		return m.AddedSequence()
	case interaction.FieldDifficultyLevel:
		return m.AddedDifficultyLevel()
	case interaction.FieldSuccessIndicator:
		return m.AddedSuccessIndicator()
	case interaction.FieldResponseLatencyMs:
		return m.AddedResponseLatencyMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *InteractionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case interaction.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	case interaction.FieldDifficultyLevel:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDifficultyLevel(v)
		return nil
	case interaction.FieldSuccessIndicator:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSuccessIndicator(v)
		return nil
	case interaction.FieldResponseLatencyMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddResponseLatencyMs(v)
		return nil
	}
	return fmt.Errorf("unknown Interaction numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *InteractionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(interaction.FieldResponseText) {
		fields = append(fields, interaction.FieldResponseText)
	}
	if m.FieldCleared(interaction.FieldSuccessIndicator) {
		fields = append(fields, interaction.FieldSuccessIndicator)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *InteractionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *InteractionMutation) ClearField(name string) error {
	switch name {
	case interaction.FieldResponseText:
		m.ClearResponseText()
		return nil
	case interaction.FieldSuccessIndicator:
		m.ClearSuccessIndicator()
		return nil
	}
	return fmt.Errorf("unknown Interaction nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *InteractionMutation) ResetField(name string) error {
	switch name {
	case interaction.FieldSequence:
		m.ResetSequence()
		return nil
	case interaction.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case interaction.FieldInteractionID:
		m.ResetInteractionID()
		return nil
	case interaction.FieldSessionID:
		m.ResetSessionID()
		return nil
	case interaction.FieldLearnerID:
		m.ResetLearnerID()
		return nil
	case interaction.FieldConceptID:
		m.ResetConceptID()
		return nil
	case interaction.FieldSubject:
		m.ResetSubject()
		return nil
	case interaction.FieldDifficultyLevel:
		m.ResetDifficultyLevel()
		return nil
	case interaction.FieldMethodology:
		m.ResetMethodology()
		return nil
	case interaction.FieldQuestionText:
		m.ResetQuestionText()
		return nil
	case interaction.FieldResponseText:
		m.ResetResponseText()
		return nil
	case interaction.FieldSuccessIndicator:
		m.ResetSuccessIndicator()
		return nil
	case interaction.FieldUnscored:
		m.ResetUnscored()
		return nil
	case interaction.FieldRepeatedQuestion:
		m.ResetRepeatedQuestion()
		return nil
	case interaction.FieldPrevInteractionID:
		m.ResetPrevInteractionID()
		return nil
	case interaction.FieldResponseLatencyMs:
		m.ResetResponseLatencyMs()
		return nil
	case interaction.FieldTimeOfDay:
		m.ResetTimeOfDay()
		return nil
	case interaction.FieldDeviceType:
		m.ResetDeviceType()
		return nil
	}
	return fmt.Errorf("unknown Interaction field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *InteractionMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *InteractionMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *InteractionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *InteractionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *InteractionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *InteractionMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *InteractionMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Interaction unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *InteractionMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Interaction edge %s", name)
}

// LearnerProfileMutation represents an operation that mutates the LearnerProfile nodes in the graph.
type LearnerProfileMutation struct {
	config
	op                   Op
	typ                  string
	id                   *int
	learner_id           *string
	role                 *string
	style_visual         *int
	addstyle_visual      *int
	style_auditory       *int
	addstyle_auditory    *int
	style_kinesthetic    *int
	addstyle_kinesthetic *int
	style_reading        *int
	addstyle_reading     *int
	interests            *[]string
	appendinterests      []string
	strengths            *[]string
	appendstrengths      []string
	weaknesses           *[]string
	appendweaknesses     []string
	age                  *int
	addage               *int
	education_level      *string
	cultural_context     *string
	completeness         *float64
	addcompleteness      *float64
	archived             *bool
	created_at           *time.Time
	updated_at           *time.Time
	clearedFields        map[string]struct{}
	done                 bool
	oldValue             func(context.Context) (*LearnerProfile, error)
	predicates           []predicate.LearnerProfile
}

var _ ent.Mutation = (*LearnerProfileMutation)(nil)

// learnerprofileOption allows management of the mutation configuration using functional options.
type learnerprofileOption func(*LearnerProfileMutation)

// newLearnerProfileMutation creates new mutation for the LearnerProfile entity.
func newLearnerProfileMutation(c config, op Op, opts ...learnerprofileOption) *LearnerProfileMutation {
	m := &LearnerProfileMutation{
		config:        c,
		op:            op,
		typ:           TypeLearnerProfile,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withLearnerProfileID sets the ID field of the mutation.
func withLearnerProfileID(id int) learnerprofileOption {
	return func(m *LearnerProfileMutation) {
		var (
			err   error
			once  sync.Once
			value *LearnerProfile
		)
		m.oldValue = func(ctx context.Context) (*LearnerProfile, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().LearnerProfile.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withLearnerProfile sets the old LearnerProfile of the mutation.
func withLearnerProfile(node *LearnerProfile) learnerprofileOption {
	return func(m *LearnerProfileMutation) {
		m.oldValue = func(context.Context) (*LearnerProfile, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m LearnerProfileMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m LearnerProfileMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *LearnerProfileMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *LearnerProfileMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().LearnerProfile.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetLearnerID sets the "learner_id" field.
func (m *LearnerProfileMutation) SetLearnerID(s string) {
	m.learner_id = &s
}

// LearnerID returns the value of the "learner_id" field in the mutation.
func (m *LearnerProfileMutation) LearnerID() (r string, exists bool) {
	v := m.learner_id
	if v == nil {
		return
	}
	return *v, true
}

// OldLearnerID returns the old "learner_id" field's value of the LearnerProfile entity.
// If the LearnerProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearnerProfileMutation) OldLearnerID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLearnerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLearnerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLearnerID: %w", err)
	}
	return oldValue.LearnerID, nil
}

// ResetLearnerID resets all changes to the "learner_id" field.
func (m *LearnerProfileMutation) ResetLearnerID() {
	m.learner_id = nil
}

// SetRole sets the "role" field.
func (m *LearnerProfileMutation) SetRole(s string) {
	m.role = &s
}

// Role returns the value of the "role" field in the mutation.
func (m *LearnerProfileMutation) Role() (r string, exists bool) {
	v := m.role
	if v == nil {
		return
	}
	return *v, true
}

// OldRole returns the old "role" field's value of the LearnerProfile entity.
// If the LearnerProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearnerProfileMutation) OldRole(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRole is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRole requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRole: %w", err)
	}
	return oldValue.Role, nil
}

// ResetRole resets all changes to the "role" field.
func (m *LearnerProfileMutation) ResetRole() {
	m.role = nil
}

// SetStyleVisual sets the "style_visual" field.
func (m *LearnerProfileMutation) SetStyleVisual(i int) {
	m.style_visual = &i
	m.addstyle_visual = nil
}

// StyleVisual returns the value of the "style_visual" field in the mutation.
func (m *LearnerProfileMutation) StyleVisual() (r int, exists bool) {
	v := m.style_visual
	if v == nil {
		return
	}
	return *v, true
}

// OldStyleVisual returns the old "style_visual" field's value of the LearnerProfile entity.
// If the LearnerProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearnerProfileMutation) OldStyleVisual(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStyleVisual is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStyleVisual requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStyleVisual: %w", err)
	}
	return oldValue.StyleVisual, nil
}

// AddStyleVisual adds i to the "style_visual" field.
func (m *LearnerProfileMutation) AddStyleVisual(i int) {
	if m.addstyle_visual != nil {
		*m.addstyle_visual += i
	} else {
		m.addstyle_visual = &i
	}
}

// AddedStyleVisual returns the value that was added to the "style_visual" field in this mutation.
func (m *LearnerProfileMutation) AddedStyleVisual() (r int, exists bool) {
	v := m.addstyle_visual
	if v == nil {
		return
	}
	return *v, true
}

// ResetStyleVisual resets all changes to the "style_visual" field.
func (m *LearnerProfileMutation) ResetStyleVisual() {
	m.style_visual = nil
	m.addstyle_visual = nil
}

// SetStyleAuditory sets the "style_auditory" field.
func (m *LearnerProfileMutation) SetStyleAuditory(i int) {
	m.style_auditory = &i
	m.addstyle_auditory = nil
}

// StyleAuditory returns the value of the "style_auditory" field in the mutation.
func (m *LearnerProfileMutation) StyleAuditory() (r int, exists bool) {
	v := m.style_auditory
	if v == nil {
		return
	}
	return *v, true
}

// OldStyleAuditory returns the old "style_auditory" field's value of the LearnerProfile entity.
// If the LearnerProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearnerProfileMutation) OldStyleAuditory(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStyleAuditory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStyleAuditory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStyleAuditory: %w", err)
	}
	return oldValue.StyleAuditory, nil
}

// AddStyleAuditory adds i to the "style_auditory" field.
func (m *LearnerProfileMutation) AddStyleAuditory(i int) {
	if m.addstyle_auditory != nil {
		*m.addstyle_auditory += i
	} else {
		m.addstyle_auditory = &i
	}
}

// AddedStyleAuditory returns the value that was added to the "style_auditory" field in this mutation.
func (m *LearnerProfileMutation) AddedStyleAuditory() (r int, exists bool) {
	v := m.addstyle_auditory
	if v == nil {
		return
	}
	return *v, true
}

// ResetStyleAuditory resets all changes to the "style_auditory" field.
func (m *LearnerProfileMutation) ResetStyleAuditory() {
	m.style_auditory = nil
	m.addstyle_auditory = nil
}

// SetStyleKinesthetic sets the "style_kinesthetic" field.
func (m *LearnerProfileMutation) SetStyleKinesthetic(i int) {
	m.style_kinesthetic = &i
	m.addstyle_kinesthetic = nil
}

// StyleKinesthetic returns the value of the "style_kinesthetic" field in the mutation.
func (m *LearnerProfileMutation) StyleKinesthetic() (r int, exists bool) {
	v := m.style_kinesthetic
	if v == nil {
		return
	}
	return *v, true
}

// OldStyleKinesthetic returns the old "style_kinesthetic" field's value of the LearnerProfile entity.
// If the LearnerProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearnerProfileMutation) OldStyleKinesthetic(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStyleKinesthetic is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStyleKinesthetic requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStyleKinesthetic: %w", err)
	}
	return oldValue.StyleKinesthetic, nil
}

// AddStyleKinesthetic adds i to the "style_kinesthetic" field.
func (m *LearnerProfileMutation) AddStyleKinesthetic(i int) {
	if m.addstyle_kinesthetic != nil {
		*m.addstyle_kinesthetic += i
	} else {
		m.addstyle_kinesthetic = &i
	}
}

// AddedStyleKinesthetic returns the value that was added to the "style_kinesthetic" field in this mutation.
func (m *LearnerProfileMutation) AddedStyleKinesthetic() (r int, exists bool) {
	v := m.addstyle_kinesthetic
	if v == nil {
		return
	}
	return *v, true
}

// ResetStyleKinesthetic resets all changes to the "style_kinesthetic" field.
func (m *LearnerProfileMutation) ResetStyleKinesthetic() {
	m.style_kinesthetic = nil
	m.addstyle_kinesthetic = nil
}

// SetStyleReading sets the "style_reading" field.
func (m *LearnerProfileMutation) SetStyleReading(i int) {
	m.style_reading = &i
	m.addstyle_reading = nil
}

// StyleReading returns the value of the "style_reading" field in the mutation.
func (m *LearnerProfileMutation) StyleReading() (r int, exists bool) {
	v := m.style_reading
	if v == nil {
		return
	}
	return *v, true
}

// OldStyleReading returns the old "style_reading" field's value of the LearnerProfile entity.
// If the LearnerProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearnerProfileMutation) OldStyleReading(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStyleReading is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStyleReading requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStyleReading: %w", err)
	}
	return oldValue.StyleReading, nil
}

// AddStyleReading adds i to the "style_reading" field.
func (m *LearnerProfileMutation) AddStyleReading(i int) {
	if m.addstyle_reading != nil {
		*m.addstyle_reading += i
	} else {
		m.addstyle_reading = &i
	}
}

// AddedStyleReading returns the value that was added to the "style_reading" field in this mutation.
func (m *LearnerProfileMutation) AddedStyleReading() (r int, exists bool) {
	v := m.addstyle_reading
	if v == nil {
		return
	}
	return *v, true
}

// ResetStyleReading resets all changes to the "style_reading" field.
func (m *LearnerProfileMutation) ResetStyleReading() {
	m.style_reading = nil
	m.addstyle_reading = nil
}

// SetInterests sets the "interests" field.
func (m *LearnerProfileMutation) SetInterests(s []string) {
	m.interests = &s
	m.appendinterests = nil
}

// Interests returns the value of the "interests" field in the mutation.
func (m *LearnerProfileMutation) Interests() (r []string, exists bool) {
	v := m.interests
	if v == nil {
		return
	}
	return *v, true
}

// OldInterests returns the old "interests" field's value of the LearnerProfile entity.
// If the LearnerProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearnerProfileMutation) OldInterests(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInterests is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInterests requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInterests: %w", err)
	}
	return oldValue.Interests, nil
}

// AppendInterests adds s to the "interests" field.
func (m *LearnerProfileMutation) AppendInterests(s []string) {
	m.appendinterests = append(m.appendinterests, s...)
}

// AppendedInterests returns the list of values that were appended to the "interests" field in this mutation.
func (m *LearnerProfileMutation) AppendedInterests() ([]string, bool) {
	if len(m.appendinterests) == 0 {
		return nil, false
	}
	return m.appendinterests, true
}

// ClearInterests clears the value of the "interests" field.
func (m *LearnerProfileMutation) ClearInterests() {
	m.interests = nil
	m.appendinterests = nil
	m.clearedFields[learnerprofile.FieldInterests] = struct{}{}
}

// InterestsCleared returns if the "interests" field was cleared in this mutation.
func (m *LearnerProfileMutation) InterestsCleared() bool {
	_, ok := m.clearedFields[learnerprofile.FieldInterests]
	return ok
}

// ResetInterests resets all changes to the "interests" field.
func (m *LearnerProfileMutation) ResetInterests() {
	m.interests = nil
	m.appendinterests = nil
	delete(m.clearedFields, learnerprofile.FieldInterests)
}

// SetStrengths sets the "strengths" field.
func (m *LearnerProfileMutation) SetStrengths(s []string) {
	m.strengths = &s
	m.appendstrengths = nil
}

// Strengths returns the value of the "strengths" field in the mutation.
func (m *LearnerProfileMutation) Strengths() (r []string, exists bool) {
	v := m.strengths
	if v == nil {
		return
	}
	return *v, true
}

// OldStrengths returns the old "strengths" field's value of the LearnerProfile entity.
// If the LearnerProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearnerProfileMutation) OldStrengths(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStrengths is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStrengths requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStrengths: %w", err)
	}
	return oldValue.Strengths, nil
}

// AppendStrengths adds s to the "strengths" field.
func (m *LearnerProfileMutation) AppendStrengths(s []string) {
	m.appendstrengths = append(m.appendstrengths, s...)
}

// AppendedStrengths returns the list of values that were appended to the "strengths" field in this mutation.
func (m *LearnerProfileMutation) AppendedStrengths() ([]string, bool) {
	if len(m.appendstrengths) == 0 {
		return nil, false
	}
	return m.appendstrengths, true
}

// ClearStrengths clears the value of the "strengths" field.
func (m *LearnerProfileMutation) ClearStrengths() {
	m.strengths = nil
	m.appendstrengths = nil
	m.clearedFields[learnerprofile.FieldStrengths] = struct{}{}
}

// StrengthsCleared returns if the "strengths" field was cleared in this mutation.
func (m *LearnerProfileMutation) StrengthsCleared() bool {
	_, ok := m.clearedFields[learnerprofile.FieldStrengths]
	return ok
}

// ResetStrengths resets all changes to the "strengths" field.
func (m *LearnerProfileMutation) ResetStrengths() {
	m.strengths = nil
	m.appendstrengths = nil
	delete(m.clearedFields, learnerprofile.FieldStrengths)
}

// SetWeaknesses sets the "weaknesses" field.
func (m *LearnerProfileMutation) SetWeaknesses(s []string) {
	m.weaknesses = &s
	m.appendweaknesses = nil
}

// Weaknesses returns the value of the "weaknesses" field in the mutation.
func (m *LearnerProfileMutation) Weaknesses() (r []string, exists bool) {
	v := m.weaknesses
	if v == nil {
		return
	}
	return *v, true
}

// OldWeaknesses returns the old "weaknesses" field's value of the LearnerProfile entity.
// If the LearnerProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearnerProfileMutation) OldWeaknesses(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWeaknesses is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWeaknesses requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWeaknesses: %w", err)
	}
	return oldValue.Weaknesses, nil
}

// AppendWeaknesses adds s to the "weaknesses" field.
func (m *LearnerProfileMutation) AppendWeaknesses(s []string) {
	m.appendweaknesses = append(m.appendweaknesses, s...)
}

// AppendedWeaknesses returns the list of values that were appended to the "weaknesses" field in this mutation.
func (m *LearnerProfileMutation) AppendedWeaknesses() ([]string, bool) {
	if len(m.appendweaknesses) == 0 {
		return nil, false
	}
	return m.appendweaknesses, true
}

// ClearWeaknesses clears the value of the "weaknesses" field.
func (m *LearnerProfileMutation) ClearWeaknesses() {
	m.weaknesses = nil
	m.appendweaknesses = nil
	m.clearedFields[learnerprofile.FieldWeaknesses] = struct{}{}
}

// WeaknessesCleared returns if the "weaknesses" field was cleared in this mutation.
func (m *LearnerProfileMutation) WeaknessesCleared() bool {
	_, ok := m.clearedFields[learnerprofile.FieldWeaknesses]
	return ok
}

// ResetWeaknesses resets all changes to the "weaknesses" field.
func (m *LearnerProfileMutation) ResetWeaknesses() {
	m.weaknesses = nil
	m.appendweaknesses = nil
	delete(m.clearedFields, learnerprofile.FieldWeaknesses)
}

// SetAge sets the "age" field.
func (m *LearnerProfileMutation) SetAge(i int) {
	m.age = &i
	m.addage = nil
}

// Age returns the value of the "age" field in the mutation.
func (m *LearnerProfileMutation) Age() (r int, exists bool) {
	v := m.age
	if v == nil {
		return
	}
	return *v, true
}

// OldAge returns the old "age" field's value of the LearnerProfile entity.
// If the LearnerProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearnerProfileMutation) OldAge(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAge is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAge requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAge: %w", err)
	}
	return oldValue.Age, nil
}

// AddAge adds i to the "age" field.
func (m *LearnerProfileMutation) AddAge(i int) {
	if m.addage != nil {
		*m.addage += i
	} else {
		m.addage = &i
	}
}

// AddedAge returns the value that was added to the "age" field in this mutation.
func (m *LearnerProfileMutation) AddedAge() (r int, exists bool) {
	v := m.addage
	if v == nil {
		return
	}
	return *v, true
}

// ResetAge resets all changes to the "age" field.
func (m *LearnerProfileMutation) ResetAge() {
	m.age = nil
	m.addage = nil
}

// SetEducationLevel sets the "education_level" field.
func (m *LearnerProfileMutation) SetEducationLevel(s string) {
	m.education_level = &s
}

// EducationLevel returns the value of the "education_level" field in the mutation.
func (m *LearnerProfileMutation) EducationLevel() (r string, exists bool) {
	v := m.education_level
	if v == nil {
		return
	}
	return *v, true
}

// OldEducationLevel returns the old "education_level" field's value of the LearnerProfile entity.
// If the LearnerProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearnerProfileMutation) OldEducationLevel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEducationLevel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEducationLevel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEducationLevel: %w", err)
	}
	return oldValue.EducationLevel, nil
}

// ResetEducationLevel resets all changes to the "education_level" field.
func (m *LearnerProfileMutation) ResetEducationLevel() {
	m.education_level = nil
}

// SetCulturalContext sets the "cultural_context" field.
func (m *LearnerProfileMutation) SetCulturalContext(s string) {
	m.cultural_context = &s
}

// CulturalContext returns the value of the "cultural_context" field in the mutation.
func (m *LearnerProfileMutation) CulturalContext() (r string, exists bool) {
	v := m.cultural_context
	if v == nil {
		return
	}
	return *v, true
}

// OldCulturalContext returns the old "cultural_context" field's value of the LearnerProfile entity.
// If the LearnerProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearnerProfileMutation) OldCulturalContext(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCulturalContext is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCulturalContext requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCulturalContext: %w", err)
	}
	return oldValue.CulturalContext, nil
}

// ResetCulturalContext resets all changes to the "cultural_context" field.
func (m *LearnerProfileMutation) ResetCulturalContext() {
	m.cultural_context = nil
}

// SetCompleteness sets the "completeness" field.
func (m *LearnerProfileMutation) SetCompleteness(f float64) {
	m.completeness = &f
	m.addcompleteness = nil
}

// Completeness returns the value of the "completeness" field in the mutation.
func (m *LearnerProfileMutation) Completeness() (r float64, exists bool) {
	v := m.completeness
	if v == nil {
		return
	}
	return *v, true
}

// OldCompleteness returns the old "completeness" field's value of the LearnerProfile entity.
// If the LearnerProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearnerProfileMutation) OldCompleteness(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompleteness is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompleteness requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompleteness: %w", err)
	}
	return oldValue.Completeness, nil
}

// AddCompleteness adds f to the "completeness" field.
func (m *LearnerProfileMutation) AddCompleteness(f float64) {
	if m.addcompleteness != nil {
		*m.addcompleteness += f
	} else {
		m.addcompleteness = &f
	}
}

// AddedCompleteness returns the value that was added to the "completeness" field in this mutation.
func (m *LearnerProfileMutation) AddedCompleteness() (r float64, exists bool) {
	v := m.addcompleteness
	if v == nil {
		return
	}
	return *v, true
}

// ResetCompleteness resets all changes to the "completeness" field.
func (m *LearnerProfileMutation) ResetCompleteness() {
	m.completeness = nil
	m.addcompleteness = nil
}

// SetArchived sets the "archived" field.
func (m *LearnerProfileMutation) SetArchived(b bool) {
	m.archived = &b
}

// Archived returns the value of the "archived" field in the mutation.
func (m *LearnerProfileMutation) Archived() (r bool, exists bool) {
	v := m.archived
	if v == nil {
		return
	}
	return *v, true
}

// OldArchived returns the old "archived" field's value of the LearnerProfile entity.
// If the LearnerProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearnerProfileMutation) OldArchived(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldArchived is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldArchived requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldArchived: %w", err)
	}
	return oldValue.Archived, nil
}

// ResetArchived resets all changes to the "archived" field.
func (m *LearnerProfileMutation) ResetArchived() {
	m.archived = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *LearnerProfileMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *LearnerProfileMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the LearnerProfile entity.
// If the LearnerProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearnerProfileMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *LearnerProfileMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *LearnerProfileMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *LearnerProfileMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the LearnerProfile entity.
// If the LearnerProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearnerProfileMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *LearnerProfileMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the LearnerProfileMutation builder.
func (m *LearnerProfileMutation) Where(ps ...predicate.LearnerProfile) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the LearnerProfileMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *LearnerProfileMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.LearnerProfile, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *LearnerProfileMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *LearnerProfileMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (LearnerProfile).
func (m *LearnerProfileMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *LearnerProfileMutation) Fields() []string {
	fields := make([]string, 0, 16)
	if m.learner_id != nil {
		fields = append(fields, learnerprofile.FieldLearnerID)
	}
	if m.role != nil {
		fields = append(fields, learnerprofile.FieldRole)
	}
	if m.style_visual != nil {
		fields = append(fields, learnerprofile.FieldStyleVisual)
	}
	if m.style_auditory != nil {
		fields = append(fields, learnerprofile.FieldStyleAuditory)
	}
	if m.style_kinesthetic != nil {
		fields = append(fields, learnerprofile.FieldStyleKinesthetic)
	}
	if m.style_reading != nil {
		fields = append(fields, learnerprofile.FieldStyleReading)
	}
	if m.interests != nil {
		fields = append(fields, learnerprofile.FieldInterests)
	}
	if m.strengths != nil {
		fields = append(fields, learnerprofile.FieldStrengths)
	}
	if m.weaknesses != nil {
		fields = append(fields, learnerprofile.FieldWeaknesses)
	}
	if m.age != nil {
		fields = append(fields, learnerprofile.FieldAge)
	}
	if m.education_level != nil {
		fields = append(fields, learnerprofile.FieldEducationLevel)
	}
	if m.cultural_context != nil {
		fields = append(fields, learnerprofile.FieldCulturalContext)
	}
	if m.completeness != nil {
		fields = append(fields, learnerprofile.FieldCompleteness)
	}
	if m.archived != nil {
		fields = append(fields, learnerprofile.FieldArchived)
	}
	if m.created_at != nil {
		fields = append(fields, learnerprofile.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, learnerprofile.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *LearnerProfileMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case learnerprofile.FieldLearnerID:
		return m.LearnerID()
	case learnerprofile.FieldRole:
		return m.Role()
	case learnerprofile.FieldStyleVisual:
		return m.StyleVisual()
	case learnerprofile.FieldStyleAuditory:
		return m.StyleAuditory()
	case learnerprofile.FieldStyleKinesthetic:
		return m.StyleKinesthetic()
	case learnerprofile.FieldStyleReading:
		return m.StyleReading()
	case learnerprofile.FieldInterests:
		return m.Interests()
	case learnerprofile.FieldStrengths:
		return m.Strengths()
	case learnerprofile.FieldWeaknesses:
		return m.Weaknesses()
	case learnerprofile.FieldAge:
		return m.Age()
	case learnerprofile.FieldEducationLevel:
		return m.EducationLevel()
	case learnerprofile.FieldCulturalContext:
		return m.CulturalContext()
	case learnerprofile.FieldCompleteness:
		return m.Completeness()
	case learnerprofile.FieldArchived:
		return m.Archived()
	case learnerprofile.FieldCreatedAt:
		return m.CreatedAt()
	case learnerprofile.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *LearnerProfileMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case learnerprofile.FieldLearnerID:
		return m.OldLearnerID(ctx)
	case learnerprofile.FieldRole:
		return m.OldRole(ctx)
	case learnerprofile.FieldStyleVisual:
		return m.OldStyleVisual(ctx)
	case learnerprofile.FieldStyleAuditory:
		return m.OldStyleAuditory(ctx)
	case learnerprofile.FieldStyleKinesthetic:
		return m.OldStyleKinesthetic(ctx)
	case learnerprofile.FieldStyleReading:
		return m.OldStyleReading(ctx)
	case learnerprofile.FieldInterests:
		return m.OldInterests(ctx)
	case learnerprofile.FieldStrengths:
		return m.OldStrengths(ctx)
	case learnerprofile.FieldWeaknesses:
		return m.OldWeaknesses(ctx)
	case learnerprofile.FieldAge:
		return m.OldAge(ctx)
	case learnerprofile.FieldEducationLevel:
		return m.OldEducationLevel(ctx)
	case learnerprofile.FieldCulturalContext:
		return m.OldCulturalContext(ctx)
	case learnerprofile.FieldCompleteness:
		return m.OldCompleteness(ctx)
	case learnerprofile.FieldArchived:
		return m.OldArchived(ctx)
	case learnerprofile.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case learnerprofile.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown LearnerProfile field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LearnerProfileMutation) SetField(name string, value ent.Value) error {
	switch name {
	case learnerprofile.FieldLearnerID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLearnerID(v)
		return nil
	case learnerprofile.FieldRole:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRole(v)
		return nil
	case learnerprofile.FieldStyleVisual:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStyleVisual(v)
		return nil
	case learnerprofile.FieldStyleAuditory:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStyleAuditory(v)
		return nil
	case learnerprofile.FieldStyleKinesthetic:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStyleKinesthetic(v)
		return nil
	case learnerprofile.FieldStyleReading:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStyleReading(v)
		return nil
	case learnerprofile.FieldInterests:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInterests(v)
		return nil
	case learnerprofile.FieldStrengths:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStrengths(v)
		return nil
	case learnerprofile.FieldWeaknesses:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWeaknesses(v)
		return nil
	case learnerprofile.FieldAge:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAge(v)
		return nil
	case learnerprofile.FieldEducationLevel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEducationLevel(v)
		return nil
	case learnerprofile.FieldCulturalContext:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCulturalContext(v)
		return nil
	case learnerprofile.FieldCompleteness:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompleteness(v)
		return nil
	case learnerprofile.FieldArchived:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetArchived(v)
		return nil
	case learnerprofile.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case learnerprofile.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown LearnerProfile field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *LearnerProfileMutation) AddedFields() []string {
	var fields []string
	if m.addstyle_visual != nil {
		fields = append(fields, learnerprofile.FieldStyleVisual)
	}
	if m.addstyle_auditory != nil {
		fields = append(fields, learnerprofile.FieldStyleAuditory)
	}
	if m.addstyle_kinesthetic != nil {
		fields = append(fields, learnerprofile.FieldStyleKinesthetic)
	}
	if m.addstyle_reading != nil {
		fields = append(fields, learnerprofile.FieldStyleReading)
	}
	if m.addage != nil {
		fields = append(fields, learnerprofile.FieldAge)
	}
	if m.addcompleteness != nil {
		fields = append(fields, learnerprofile.FieldCompleteness)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *LearnerProfileMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case learnerprofile.FieldStyleVisual:
		return m.AddedStyleVisual()
	case learnerprofile.FieldStyleAuditory:
		return m.AddedStyleAuditory()
	case learnerprofile.FieldStyleKinesthetic:
		return m.AddedStyleKinesthetic()
	case learnerprofile.FieldStyleReading:
		return m.AddedStyleReading()
	case learnerprofile.FieldAge:
		return m.AddedAge()
	case learnerprofile.FieldCompleteness:
		return m.AddedCompleteness()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LearnerProfileMutation) AddField(name string, value ent.Value) error {
	switch name {
	case learnerprofile.FieldStyleVisual:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddStyleVisual(v)
		return nil
	case learnerprofile.FieldStyleAuditory:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddStyleAuditory(v)
		return nil
	case learnerprofile.FieldStyleKinesthetic:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddStyleKinesthetic(v)
		return nil
	case learnerprofile.FieldStyleReading:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddStyleReading(v)
		return nil
	case learnerprofile.FieldAge:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAge(v)
		return nil
	case learnerprofile.FieldCompleteness:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCompleteness(v)
		return nil
	}
	return fmt.Errorf("unknown LearnerProfile numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *LearnerProfileMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(learnerprofile.FieldInterests) {
		fields = append(fields, learnerprofile.FieldInterests)
	}
	if m.FieldCleared(learnerprofile.FieldStrengths) {
		fields = append(fields, learnerprofile.FieldStrengths)
	}
	if m.FieldCleared(learnerprofile.FieldWeaknesses) {
		fields = append(fields, learnerprofile.FieldWeaknesses)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *LearnerProfileMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *LearnerProfileMutation) ClearField(name string) error {
	switch name {
	case learnerprofile.FieldInterests:
		m.ClearInterests()
		return nil
	case learnerprofile.FieldStrengths:
		m.ClearStrengths()
		return nil
	case learnerprofile.FieldWeaknesses:
		m.ClearWeaknesses()
		return nil
	}
	return fmt.Errorf("unknown LearnerProfile nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *LearnerProfileMutation) ResetField(name string) error {
	switch name {
	case learnerprofile.FieldLearnerID:
		m.ResetLearnerID()
		return nil
	case learnerprofile.FieldRole:
		m.ResetRole()
		return nil
	case learnerprofile.FieldStyleVisual:
		m.ResetStyleVisual()
		return nil
	case learnerprofile.FieldStyleAuditory:
		m.ResetStyleAuditory()
		return nil
	case learnerprofile.FieldStyleKinesthetic:
		m.ResetStyleKinesthetic()
		return nil
	case learnerprofile.FieldStyleReading:
		m.ResetStyleReading()
		return nil
	case learnerprofile.FieldInterests:
		m.ResetInterests()
		return nil
	case learnerprofile.FieldStrengths:
		m.ResetStrengths()
		return nil
	case learnerprofile.FieldWeaknesses:
		m.ResetWeaknesses()
		return nil
	case learnerprofile.FieldAge:
		m.ResetAge()
		return nil
	case learnerprofile.FieldEducationLevel:
		m.ResetEducationLevel()
		return nil
	case learnerprofile.FieldCulturalContext:
		m.ResetCulturalContext()
		return nil
	case learnerprofile.FieldCompleteness:
		m.ResetCompleteness()
		return nil
	case learnerprofile.FieldArchived:
		m.ResetArchived()
		return nil
	case learnerprofile.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case learnerprofile.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown LearnerProfile field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *LearnerProfileMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *LearnerProfileMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *LearnerProfileMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *LearnerProfileMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *LearnerProfileMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *LearnerProfileMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *LearnerProfileMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown LearnerProfile unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *LearnerProfileMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown LearnerProfile edge %s", name)
}

// MasteryRecordMutation represents an operation that mutates the MasteryRecord nodes in the graph.
type MasteryRecordMutation struct {
	config
	op                   Op
	typ                  string
	id                   *int
	learner_id           *string
	concept_id           *string
	score                *float64
	addscore             *float64
	interaction_count    *int
	addinteraction_count *int
	last_updated_at      *time.Time
	clearedFields        map[string]struct{}
	done                 bool
	oldValue             func(context.Context) (*MasteryRecord, error)
	predicates           []predicate.MasteryRecord
}

var _ ent.Mutation = (*MasteryRecordMutation)(nil)

// masteryrecordOption allows management of the mutation configuration using functional options.
type masteryrecordOption func(*MasteryRecordMutation)

// newMasteryRecordMutation creates new mutation for the MasteryRecord entity.
func newMasteryRecordMutation(c config, op Op, opts ...masteryrecordOption) *MasteryRecordMutation {
	m := &MasteryRecordMutation{
		config:        c,
		op:            op,
		typ:           TypeMasteryRecord,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withMasteryRecordID sets the ID field of the mutation.
func withMasteryRecordID(id int) masteryrecordOption {
	return func(m *MasteryRecordMutation) {
		var (
			err   error
			once  sync.Once
			value *MasteryRecord
		)
		m.oldValue = func(ctx context.Context) (*MasteryRecord, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().MasteryRecord.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withMasteryRecord sets the old MasteryRecord of the mutation.
func withMasteryRecord(node *MasteryRecord) masteryrecordOption {
	return func(m *MasteryRecordMutation) {
		m.oldValue = func(context.Context) (*MasteryRecord, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m MasteryRecordMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m MasteryRecordMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *MasteryRecordMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *MasteryRecordMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().MasteryRecord.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetLearnerID sets the "learner_id" field.
func (m *MasteryRecordMutation) SetLearnerID(s string) {
	m.learner_id = &s
}

// LearnerID returns the value of the "learner_id" field in the mutation.
func (m *MasteryRecordMutation) LearnerID() (r string, exists bool) {
	v := m.learner_id
	if v == nil {
		return
	}
	return *v, true
}

// OldLearnerID returns the old "learner_id" field's value of the MasteryRecord entity.
// If the MasteryRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MasteryRecordMutation) OldLearnerID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLearnerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLearnerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLearnerID: %w", err)
	}
	return oldValue.LearnerID, nil
}

// ResetLearnerID resets all changes to the "learner_id" field.
func (m *MasteryRecordMutation) ResetLearnerID() {
	m.learner_id = nil
}

// SetConceptID sets the "concept_id" field.
func (m *MasteryRecordMutation) SetConceptID(s string) {
	m.concept_id = &s
}

// ConceptID returns the value of the "concept_id" field in the mutation.
func (m *MasteryRecordMutation) ConceptID() (r string, exists bool) {
	v := m.concept_id
	if v == nil {
		return
	}
	return *v, true
}

// OldConceptID returns the old "concept_id" field's value of the MasteryRecord entity.
// If the MasteryRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MasteryRecordMutation) OldConceptID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConceptID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConceptID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConceptID: %w", err)
	}
	return oldValue.ConceptID, nil
}

// ResetConceptID resets all changes to the "concept_id" field.
func (m *MasteryRecordMutation) ResetConceptID() {
	m.concept_id = nil
}

// SetScore sets the "score" field.
func (m *MasteryRecordMutation) SetScore(f float64) {
	m.score = &f
	m.addscore = nil
}

// Score returns the value of the "score" field in the mutation.
func (m *MasteryRecordMutation) Score() (r float64, exists bool) {
	v := m.score
	if v == nil {
		return
	}
	return *v, true
}

// OldScore returns the old "score" field's value of the MasteryRecord entity.
// If the MasteryRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MasteryRecordMutation) OldScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScore: %w", err)
	}
	return oldValue.Score, nil
}

// AddScore adds f to the "score" field.
func (m *MasteryRecordMutation) AddScore(f float64) {
	if m.addscore != nil {
		*m.addscore += f
	} else {
		m.addscore = &f
	}
}

// AddedScore returns the value that was added to the "score" field in this mutation.
func (m *MasteryRecordMutation) AddedScore() (r float64, exists bool) {
	v := m.addscore
	if v == nil {
		return
	}
	return *v, true
}

// ResetScore resets all changes to the "score" field.
func (m *MasteryRecordMutation) ResetScore() {
	m.score = nil
	m.addscore = nil
}

// SetInteractionCount sets the "interaction_count" field.
func (m *MasteryRecordMutation) SetInteractionCount(i int) {
	m.interaction_count = &i
	m.addinteraction_count = nil
}

// InteractionCount returns the value of the "interaction_count" field in the mutation.
func (m *MasteryRecordMutation) InteractionCount() (r int, exists bool) {
	v := m.interaction_count
	if v == nil {
		return
	}
	return *v, true
}

// OldInteractionCount returns the old "interaction_count" field's value of the MasteryRecord entity.
// If the MasteryRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MasteryRecordMutation) OldInteractionCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInteractionCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInteractionCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInteractionCount: %w", err)
	}
	return oldValue.InteractionCount, nil
}

// AddInteractionCount adds i to the "interaction_count" field.
func (m *MasteryRecordMutation) AddInteractionCount(i int) {
	if m.addinteraction_count != nil {
		*m.addinteraction_count += i
	} else {
		m.addinteraction_count = &i
	}
}

// AddedInteractionCount returns the value that was added to the "interaction_count" field in this mutation.
func (m *MasteryRecordMutation) AddedInteractionCount() (r int, exists bool) {
	v := m.addinteraction_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetInteractionCount resets all changes to the "interaction_count" field.
func (m *MasteryRecordMutation) ResetInteractionCount() {
	m.interaction_count = nil
	m.addinteraction_count = nil
}

// SetLastUpdatedAt sets the "last_updated_at" field.
func (m *MasteryRecordMutation) SetLastUpdatedAt(t time.Time) {
	m.last_updated_at = &t
}

// LastUpdatedAt returns the value of the "last_updated_at" field in the mutation.
func (m *MasteryRecordMutation) LastUpdatedAt() (r time.Time, exists bool) {
	v := m.last_updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastUpdatedAt returns the old "last_updated_at" field's value of the MasteryRecord entity.
// If the MasteryRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MasteryRecordMutation) OldLastUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastUpdatedAt: %w", err)
	}
	return oldValue.LastUpdatedAt, nil
}

// ResetLastUpdatedAt resets all changes to the "last_updated_at" field.
func (m *MasteryRecordMutation) ResetLastUpdatedAt() {
	m.last_updated_at = nil
}

// Where appends a list predicates to the MasteryRecordMutation builder.
func (m *MasteryRecordMutation) Where(ps ...predicate.MasteryRecord) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the MasteryRecordMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *MasteryRecordMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.MasteryRecord, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *MasteryRecordMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *MasteryRecordMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (MasteryRecord).
func (m *MasteryRecordMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *MasteryRecordMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.learner_id != nil {
		fields = append(fields, masteryrecord.FieldLearnerID)
	}
	if m.concept_id != nil {
		fields = append(fields, masteryrecord.FieldConceptID)
	}
	if m.score != nil {
		fields = append(fields, masteryrecord.FieldScore)
	}
	if m.interaction_count != nil {
		fields = append(fields, masteryrecord.FieldInteractionCount)
	}
	if m.last_updated_at != nil {
		fields = append(fields, masteryrecord.FieldLastUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *MasteryRecordMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case masteryrecord.FieldLearnerID:
		return m.LearnerID()
	case masteryrecord.FieldConceptID:
		return m.ConceptID()
	case masteryrecord.FieldScore:
		return m.Score()
	case masteryrecord.FieldInteractionCount:
		return m.InteractionCount()
	case masteryrecord.FieldLastUpdatedAt:
		return m.LastUpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *MasteryRecordMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case masteryrecord.FieldLearnerID:
		return m.OldLearnerID(ctx)
	case masteryrecord.FieldConceptID:
		return m.OldConceptID(ctx)
	case masteryrecord.FieldScore:
		return m.OldScore(ctx)
	case masteryrecord.FieldInteractionCount:
		return m.OldInteractionCount(ctx)
	case masteryrecord.FieldLastUpdatedAt:
		return m.OldLastUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown MasteryRecord field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MasteryRecordMutation) SetField(name string, value ent.Value) error {
	switch name {
	case masteryrecord.FieldLearnerID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLearnerID(v)
		return nil
	case masteryrecord.FieldConceptID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConceptID(v)
		return nil
	case masteryrecord.FieldScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScore(v)
		return nil
	case masteryrecord.FieldInteractionCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInteractionCount(v)
		return nil
	case masteryrecord.FieldLastUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown MasteryRecord field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *MasteryRecordMutation) AddedFields() []string {
	var fields []string
	if m.addscore != nil {
		fields = append(fields, masteryrecord.FieldScore)
	}
	if m.addinteraction_count != nil {
		fields = append(fields, masteryrecord.FieldInteractionCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *MasteryRecordMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case masteryrecord.FieldScore:
		return m.AddedScore()
	case masteryrecord.FieldInteractionCount:
		return m.AddedInteractionCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MasteryRecordMutation) AddField(name string, value ent.Value) error {
	switch name {
	case masteryrecord.FieldScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddScore(v)
		return nil
	case masteryrecord.FieldInteractionCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddInteractionCount(v)
		return nil
	}
	return fmt.Errorf("unknown MasteryRecord numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *MasteryRecordMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *MasteryRecordMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *MasteryRecordMutation) ClearField(name string) error {
	return fmt.Errorf("unknown MasteryRecord nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *MasteryRecordMutation) ResetField(name string) error {
	switch name {
	case masteryrecord.FieldLearnerID:
		m.ResetLearnerID()
		return nil
	case masteryrecord.FieldConceptID:
		m.ResetConceptID()
		return nil
	case masteryrecord.FieldScore:
		m.ResetScore()
		return nil
	case masteryrecord.FieldInteractionCount:
		m.ResetInteractionCount()
		return nil
	case masteryrecord.FieldLastUpdatedAt:
		m.ResetLastUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown MasteryRecord field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *MasteryRecordMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *MasteryRecordMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *MasteryRecordMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *MasteryRecordMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *MasteryRecordMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *MasteryRecordMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *MasteryRecordMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown MasteryRecord unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *MasteryRecordMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown MasteryRecord edge %s", name)
}

// RecommendationMutation represents an operation that mutates the Recommendation nodes in the graph.
type RecommendationMutation struct {
	config
	op                   Op
	typ                  string
	id                   *int
	recommendation_id    *string
	learner_id           *string
	rec_type             *string
	concept_id           *string
	title                *string
	description          *string
	reasoning            *string
	difficulty_level     *int
	adddifficulty_level  *int
	estimated_minutes    *int
	addestimated_minutes *int
	priority             *int
	addpriority          *int
	urgency              *string
	status               *string
	created_at           *time.Time
	expires_at           *time.Time
	clearedFields        map[string]struct{}
	done                 bool
	oldValue             func(context.Context) (*Recommendation, error)
	predicates           []predicate.Recommendation
}

var _ ent.Mutation = (*RecommendationMutation)(nil)

// recommendationOption allows management of the mutation configuration using functional options.
type recommendationOption func(*RecommendationMutation)

// newRecommendationMutation creates new mutation for the Recommendation entity.
func newRecommendationMutation(c config, op Op, opts ...recommendationOption) *RecommendationMutation {
	m := &RecommendationMutation{
		config:        c,
		op:            op,
		typ:           TypeRecommendation,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withRecommendationID sets the ID field of the mutation.
func withRecommendationID(id int) recommendationOption {
	return func(m *RecommendationMutation) {
		var (
			err   error
			once  sync.Once
			value *Recommendation
		)
		m.oldValue = func(ctx context.Context) (*Recommendation, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Recommendation.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withRecommendation sets the old Recommendation of the mutation.
func withRecommendation(node *Recommendation) recommendationOption {
	return func(m *RecommendationMutation) {
		m.oldValue = func(context.Context) (*Recommendation, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m RecommendationMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m RecommendationMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *RecommendationMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *RecommendationMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Recommendation.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetRecommendationID sets the "recommendation_id" field.
func (m *RecommendationMutation) SetRecommendationID(s string) {
	m.recommendation_id = &s
}

// RecommendationID returns the value of the "recommendation_id" field in the mutation.
func (m *RecommendationMutation) RecommendationID() (r string, exists bool) {
	v := m.recommendation_id
	if v == nil {
		return
	}
	return *v, true
}

// OldRecommendationID returns the old "recommendation_id" field's value of the Recommendation entity.
// If the Recommendation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecommendationMutation) OldRecommendationID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRecommendationID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRecommendationID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRecommendationID: %w", err)
	}
	return oldValue.RecommendationID, nil
}

// ResetRecommendationID resets all changes to the "recommendation_id" field.
func (m *RecommendationMutation) ResetRecommendationID() {
	m.recommendation_id = nil
}

// SetLearnerID sets the "learner_id" field.
func (m *RecommendationMutation) SetLearnerID(s string) {
	m.learner_id = &s
}

// LearnerID returns the value of the "learner_id" field in the mutation.
func (m *RecommendationMutation) LearnerID() (r string, exists bool) {
	v := m.learner_id
	if v == nil {
		return
	}
	return *v, true
}

// OldLearnerID returns the old "learner_id" field's value of the Recommendation entity.
// If the Recommendation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecommendationMutation) OldLearnerID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLearnerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLearnerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLearnerID: %w", err)
	}
	return oldValue.LearnerID, nil
}

// ResetLearnerID resets all changes to the "learner_id" field.
func (m *RecommendationMutation) ResetLearnerID() {
	m.learner_id = nil
}

// SetRecType sets the "rec_type" field.
func (m *RecommendationMutation) SetRecType(s string) {
	m.rec_type = &s
}

// RecType returns the value of the "rec_type" field in the mutation.
func (m *RecommendationMutation) RecType() (r string, exists bool) {
	v := m.rec_type
	if v == nil {
		return
	}
	return *v, true
}

// OldRecType returns the old "rec_type" field's value of the Recommendation entity.
// If the Recommendation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecommendationMutation) OldRecType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRecType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRecType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRecType: %w", err)
	}
	return oldValue.RecType, nil
}

// ResetRecType resets all changes to the "rec_type" field.
func (m *RecommendationMutation) ResetRecType() {
	m.rec_type = nil
}

// SetConceptID sets the "concept_id" field.
func (m *RecommendationMutation) SetConceptID(s string) {
	m.concept_id = &s
}

// ConceptID returns the value of the "concept_id" field in the mutation.
func (m *RecommendationMutation) ConceptID() (r string, exists bool) {
	v := m.concept_id
	if v == nil {
		return
	}
	return *v, true
}

// OldConceptID returns the old "concept_id" field's value of the Recommendation entity.
// If the Recommendation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecommendationMutation) OldConceptID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConceptID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConceptID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConceptID: %w", err)
	}
	return oldValue.ConceptID, nil
}

// ResetConceptID resets all changes to the "concept_id" field.
func (m *RecommendationMutation) ResetConceptID() {
	m.concept_id = nil
}

// SetTitle sets the "title" field.
func (m *RecommendationMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *RecommendationMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Recommendation entity.
// If the Recommendation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecommendationMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *RecommendationMutation) ResetTitle() {
	m.title = nil
}

// SetDescription sets the "description" field.
func (m *RecommendationMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *RecommendationMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Recommendation entity.
// If the Recommendation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecommendationMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ResetDescription resets all changes to the "description" field.
func (m *RecommendationMutation) ResetDescription() {
	m.description = nil
}

// SetReasoning sets the "reasoning" field.
func (m *RecommendationMutation) SetReasoning(s string) {
	m.reasoning = &s
}

// Reasoning returns the value of the "reasoning" field in the mutation.
func (m *RecommendationMutation) Reasoning() (r string, exists bool) {
	v := m.reasoning
	if v == nil {
		return
	}
	return *v, true
}

// OldReasoning returns the old "reasoning" field's value of the Recommendation entity.
// If the Recommendation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecommendationMutation) OldReasoning(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReasoning is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReasoning requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReasoning: %w", err)
	}
	return oldValue.Reasoning, nil
}

// ResetReasoning resets all changes to the "reasoning" field.
func (m *RecommendationMutation) ResetReasoning() {
	m.reasoning = nil
}

// SetDifficultyLevel sets the "difficulty_level" field.
func (m *RecommendationMutation) SetDifficultyLevel(i int) {
	m.difficulty_level = &i
	m.adddifficulty_level = nil
}

// DifficultyLevel returns the value of the "difficulty_level" field in the mutation.
func (m *RecommendationMutation) DifficultyLevel() (r int, exists bool) {
	v := m.difficulty_level
	if v == nil {
		return
	}
	return *v, true
}

// OldDifficultyLevel returns the old "difficulty_level" field's value of the Recommendation entity.
// If the Recommendation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecommendationMutation) OldDifficultyLevel(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDifficultyLevel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDifficultyLevel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDifficultyLevel: %w", err)
	}
	return oldValue.DifficultyLevel, nil
}

// AddDifficultyLevel adds i to the "difficulty_level" field.
func (m *RecommendationMutation) AddDifficultyLevel(i int) {
	if m.adddifficulty_level != nil {
		*m.adddifficulty_level += i
	} else {
		m.adddifficulty_level = &i
	}
}

// AddedDifficultyLevel returns the value that was added to the "difficulty_level" field in this mutation.
func (m *RecommendationMutation) AddedDifficultyLevel() (r int, exists bool) {
	v := m.adddifficulty_level
	if v == nil {
		return
	}
	return *v, true
}

// ResetDifficultyLevel resets all changes to the "difficulty_level" field.
func (m *RecommendationMutation) ResetDifficultyLevel() {
	m.difficulty_level = nil
	m.adddifficulty_level = nil
}

// SetEstimatedMinutes sets the "estimated_minutes" field.
func (m *RecommendationMutation) SetEstimatedMinutes(i int) {
	m.estimated_minutes = &i
	m.addestimated_minutes = nil
}

// EstimatedMinutes returns the value of the "estimated_minutes" field in the mutation.
func (m *RecommendationMutation) EstimatedMinutes() (r int, exists bool) {
	v := m.estimated_minutes
	if v == nil {
		return
	}
	return *v, true
}

// OldEstimatedMinutes returns the old "estimated_minutes" field's value of the Recommendation entity.
// If the Recommendation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecommendationMutation) OldEstimatedMinutes(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEstimatedMinutes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEstimatedMinutes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEstimatedMinutes: %w", err)
	}
	return oldValue.EstimatedMinutes, nil
}

// AddEstimatedMinutes adds i to the "estimated_minutes" field.
func (m *RecommendationMutation) AddEstimatedMinutes(i int) {
	if m.addestimated_minutes != nil {
		*m.addestimated_minutes += i
	} else {
		m.addestimated_minutes = &i
	}
}

// AddedEstimatedMinutes returns the value that was added to the "estimated_minutes" field in this mutation.
func (m *RecommendationMutation) AddedEstimatedMinutes() (r int, exists bool) {
	v := m.addestimated_minutes
	if v == nil {
		return
	}
	return *v, true
}

// ResetEstimatedMinutes resets all changes to the "estimated_minutes" field.
func (m *RecommendationMutation) ResetEstimatedMinutes() {
	m.estimated_minutes = nil
	m.addestimated_minutes = nil
}

// SetPriority sets the "priority" field.
func (m *RecommendationMutation) SetPriority(i int) {
	m.priority = &i
	m.addpriority = nil
}

// Priority returns the value of the "priority" field in the mutation.
func (m *RecommendationMutation) Priority() (r int, exists bool) {
	v := m.priority
	if v == nil {
		return
	}
	return *v, true
}

// OldPriority returns the old "priority" field's value of the Recommendation entity.
// If the Recommendation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecommendationMutation) OldPriority(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPriority is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPriority requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPriority: %w", err)
	}
	return oldValue.Priority, nil
}

// AddPriority adds i to the "priority" field.
func (m *RecommendationMutation) AddPriority(i int) {
	if m.addpriority != nil {
		*m.addpriority += i
	} else {
		m.addpriority = &i
	}
}

// AddedPriority returns the value that was added to the "priority" field in this mutation.
func (m *RecommendationMutation) AddedPriority() (r int, exists bool) {
	v := m.addpriority
	if v == nil {
		return
	}
	return *v, true
}

// ResetPriority resets all changes to the "priority" field.
func (m *RecommendationMutation) ResetPriority() {
	m.priority = nil
	m.addpriority = nil
}

// SetUrgency sets the "urgency" field.
func (m *RecommendationMutation) SetUrgency(s string) {
	m.urgency = &s
}

// Urgency returns the value of the "urgency" field in the mutation.
func (m *RecommendationMutation) Urgency() (r string, exists bool) {
	v := m.urgency
	if v == nil {
		return
	}
	return *v, true
}

// OldUrgency returns the old "urgency" field's value of the Recommendation entity.
// If the Recommendation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecommendationMutation) OldUrgency(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUrgency is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUrgency requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUrgency: %w", err)
	}
	return oldValue.Urgency, nil
}

// ResetUrgency resets all changes to the "urgency" field.
func (m *RecommendationMutation) ResetUrgency() {
	m.urgency = nil
}

// SetStatus sets the "status" field.
func (m *RecommendationMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *RecommendationMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Recommendation entity.
// If the Recommendation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecommendationMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *RecommendationMutation) ResetStatus() {
	m.status = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *RecommendationMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *RecommendationMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Recommendation entity.
// If the Recommendation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecommendationMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *RecommendationMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetExpiresAt sets the "expires_at" field.
func (m *RecommendationMutation) SetExpiresAt(t time.Time) {
	m.expires_at = &t
}

// ExpiresAt returns the value of the "expires_at" field in the mutation.
func (m *RecommendationMutation) ExpiresAt() (r time.Time, exists bool) {
	v := m.expires_at
	if v == nil {
		return
	}
	return *v, true
}

// OldExpiresAt returns the old "expires_at" field's value of the Recommendation entity.
// If the Recommendation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecommendationMutation) OldExpiresAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExpiresAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExpiresAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExpiresAt: %w", err)
	}
	return oldValue.ExpiresAt, nil
}

// ResetExpiresAt resets all changes to the "expires_at" field.
func (m *RecommendationMutation) ResetExpiresAt() {
	m.expires_at = nil
}

// Where appends a list predicates to the RecommendationMutation builder.
func (m *RecommendationMutation) Where(ps ...predicate.Recommendation) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the RecommendationMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *RecommendationMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Recommendation, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *RecommendationMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *RecommendationMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Recommendation).
func (m *RecommendationMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *RecommendationMutation) Fields() []string {
	fields := make([]string, 0, 14)
	if m.recommendation_id != nil {
		fields = append(fields, recommendation.FieldRecommendationID)
	}
	if m.learner_id != nil {
		fields = append(fields, recommendation.FieldLearnerID)
	}
	if m.rec_type != nil {
		fields = append(fields, recommendation.FieldRecType)
	}
	if m.concept_id != nil {
		fields = append(fields, recommendation.FieldConceptID)
	}
	if m.title != nil {
		fields = append(fields, recommendation.FieldTitle)
	}
	if m.description != nil {
		fields = append(fields, recommendation.FieldDescription)
	}
	if m.reasoning != nil {
		fields = append(fields, recommendation.FieldReasoning)
	}
	if m.difficulty_level != nil {
		fields = append(fields, recommendation.FieldDifficultyLevel)
	}
	if m.estimated_minutes != nil {
		fields = append(fields, recommendation.FieldEstimatedMinutes)
	}
	if m.priority != nil {
		fields = append(fields, recommendation.FieldPriority)
	}
	if m.urgency != nil {
		fields = append(fields, recommendation.FieldUrgency)
	}
	if m.status != nil {
		fields = append(fields, recommendation.FieldStatus)
	}
	if m.created_at != nil {
		fields = append(fields, recommendation.FieldCreatedAt)
	}
	if m.expires_at != nil {
		fields = append(fields, recommendation.FieldExpiresAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *RecommendationMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case recommendation.FieldRecommendationID:
		return m.RecommendationID()
	case recommendation.FieldLearnerID:
		return m.LearnerID()
	case recommendation.FieldRecType:
		return m.RecType()
	case recommendation.FieldConceptID:
		return m.ConceptID()
	case recommendation.FieldTitle:
		return m.Title()
	case recommendation.FieldDescription:
		return m.Description()
	case recommendation.FieldReasoning:
		return m.Reasoning()
	case recommendation.FieldDifficultyLevel:
		return m.DifficultyLevel()
	case recommendation.FieldEstimatedMinutes:
		return m.EstimatedMinutes()
	case recommendation.FieldPriority:
		return m.Priority()
	case recommendation.FieldUrgency:
		return m.Urgency()
	case recommendation.FieldStatus:
		return m.Status()
	case recommendation.FieldCreatedAt:
		return m.CreatedAt()
	case recommendation.FieldExpiresAt:
		return m.ExpiresAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *RecommendationMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case recommendation.FieldRecommendationID:
		return m.OldRecommendationID(ctx)
	case recommendation.FieldLearnerID:
		return m.OldLearnerID(ctx)
	case recommendation.FieldRecType:
		return m.OldRecType(ctx)
	case recommendation.FieldConceptID:
		return m.OldConceptID(ctx)
	case recommendation.FieldTitle:
		return m.OldTitle(ctx)
	case recommendation.FieldDescription:
		return m.OldDescription(ctx)
	case recommendation.FieldReasoning:
		return m.OldReasoning(ctx)
	case recommendation.FieldDifficultyLevel:
		return m.OldDifficultyLevel(ctx)
	case recommendation.FieldEstimatedMinutes:
		return m.OldEstimatedMinutes(ctx)
	case recommendation.FieldPriority:
		return m.OldPriority(ctx)
	case recommendation.FieldUrgency:
		return m.OldUrgency(ctx)
	case recommendation.FieldStatus:
		return m.OldStatus(ctx)
	case recommendation.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case recommendation.FieldExpiresAt:
		return m.OldExpiresAt(ctx)
	}
	return nil, fmt.Errorf("unknown Recommendation field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RecommendationMutation) SetField(name string, value ent.Value) error {
	switch name {
	case recommendation.FieldRecommendationID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRecommendationID(v)
		return nil
	case recommendation.FieldLearnerID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLearnerID(v)
		return nil
	case recommendation.FieldRecType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRecType(v)
		return nil
	case recommendation.FieldConceptID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConceptID(v)
		return nil
	case recommendation.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case recommendation.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case recommendation.FieldReasoning:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReasoning(v)
		return nil
	case recommendation.FieldDifficultyLevel:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDifficultyLevel(v)
		return nil
	case recommendation.FieldEstimatedMinutes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEstimatedMinutes(v)
		return nil
	case recommendation.FieldPriority:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPriority(v)
		return nil
	case recommendation.FieldUrgency:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUrgency(v)
		return nil
	case recommendation.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case recommendation.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case recommendation.FieldExpiresAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExpiresAt(v)
		return nil
	}
	return fmt.Errorf("unknown Recommendation field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *RecommendationMutation) AddedFields() []string {
	var fields []string
	if m.adddifficulty_level != nil {
		fields = append(fields, recommendation.FieldDifficultyLevel)
	}
	if m.addestimated_minutes != nil {
		fields = append(fields, recommendation.FieldEstimatedMinutes)
	}
	if m.addpriority != nil {
		fields = append(fields, recommendation.FieldPriority)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *RecommendationMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case recommendation.FieldDifficultyLevel:
		return m.AddedDifficultyLevel()
	case recommendation.FieldEstimatedMinutes:
		return m.AddedEstimatedMinutes()
	case recommendation.FieldPriority:
		return m.AddedPriority()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RecommendationMutation) AddField(name string, value ent.Value) error {
	switch name {
	case recommendation.FieldDifficultyLevel:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDifficultyLevel(v)
		return nil
	case recommendation.FieldEstimatedMinutes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddEstimatedMinutes(v)
		return nil
	case recommendation.FieldPriority:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPriority(v)
		return nil
	}
	return fmt.Errorf("unknown Recommendation numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *RecommendationMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *RecommendationMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *RecommendationMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Recommendation nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *RecommendationMutation) ResetField(name string) error {
	switch name {
	case recommendation.FieldRecommendationID:
		m.ResetRecommendationID()
		return nil
	case recommendation.FieldLearnerID:
		m.ResetLearnerID()
		return nil
	case recommendation.FieldRecType:
		m.ResetRecType()
		return nil
	case recommendation.FieldConceptID:
		m.ResetConceptID()
		return nil
	case recommendation.FieldTitle:
		m.ResetTitle()
		return nil
	case recommendation.FieldDescription:
		m.ResetDescription()
		return nil
	case recommendation.FieldReasoning:
		m.ResetReasoning()
		return nil
	case recommendation.FieldDifficultyLevel:
		m.ResetDifficultyLevel()
		return nil
	case recommendation.FieldEstimatedMinutes:
		m.ResetEstimatedMinutes()
		return nil
	case recommendation.FieldPriority:
		m.ResetPriority()
		return nil
	case recommendation.FieldUrgency:
		m.ResetUrgency()
		return nil
	case recommendation.FieldStatus:
		m.ResetStatus()
		return nil
	case recommendation.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case recommendation.FieldExpiresAt:
		m.ResetExpiresAt()
		return nil
	}
	return fmt.Errorf("unknown Recommendation field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *RecommendationMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *RecommendationMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *RecommendationMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *RecommendationMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *RecommendationMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *RecommendationMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *RecommendationMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Recommendation unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *RecommendationMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Recommendation edge %s", name)
}

// ScorerEventMutation represents an operation that mutates the ScorerEvent nodes in the graph.
type ScorerEventMutation struct {
	config
	op               Op
	typ              string
	id               *int
	sequence         *int64
	addsequence      *int64
	timestamp        *time.Time
	provider         *string
	model            *string
	interaction_id   *string
	input_tokens     *int
	addinput_tokens  *int
	output_tokens    *int
	addoutput_tokens *int
	latency_ms       *int64
	addlatency_ms    *int64
	success          *bool
	error_message    *string
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*ScorerEvent, error)
	predicates       []predicate.ScorerEvent
}

var _ ent.Mutation = (*ScorerEventMutation)(nil)

// scorereventOption allows management of the mutation configuration using functional options.
type scorereventOption func(*ScorerEventMutation)

// newScorerEventMutation creates new mutation for the ScorerEvent entity.
func newScorerEventMutation(c config, op Op, opts ...scorereventOption) *ScorerEventMutation {
	m := &ScorerEventMutation{
		config:        c,
		op:            op,
		typ:           TypeScorerEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withScorerEventID sets the ID field of the mutation.
func withScorerEventID(id int) scorereventOption {
	return func(m *ScorerEventMutation) {
		var (
			err   error
			once  sync.Once
			value *ScorerEvent
		)
		m.oldValue = func(ctx context.Context) (*ScorerEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ScorerEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withScorerEvent sets the old ScorerEvent of the mutation.
func withScorerEvent(node *ScorerEvent) scorereventOption {
	return func(m *ScorerEventMutation) {
		m.oldValue = func(context.Context) (*ScorerEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ScorerEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ScorerEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ScorerEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ScorerEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ScorerEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSequence sets the "sequence" field.
func (m *ScorerEventMutation) SetSequence(i int64) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *ScorerEventMutation) Sequence() (r int64, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the ScorerEvent entity.
// If the ScorerEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScorerEventMutation) OldSequence(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *ScorerEventMutation) AddSequence(i int64) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *ScorerEventMutation) AddedSequence() (r int64, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *ScorerEventMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *ScorerEventMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *ScorerEventMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the ScorerEvent entity.
// If the ScorerEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScorerEventMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *ScorerEventMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetProvider sets the "provider" field.
func (m *ScorerEventMutation) SetProvider(s string) {
	m.provider = &s
}

// Provider returns the value of the "provider" field in the mutation.
func (m *ScorerEventMutation) Provider() (r string, exists bool) {
	v := m.provider
	if v == nil {
		return
	}
	return *v, true
}

// OldProvider returns the old "provider" field's value of the ScorerEvent entity.
// If the ScorerEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScorerEventMutation) OldProvider(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProvider is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProvider requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProvider: %w", err)
	}
	return oldValue.Provider, nil
}

// ResetProvider resets all changes to the "provider" field.
func (m *ScorerEventMutation) ResetProvider() {
	m.provider = nil
}

// SetModel sets the "model" field.
func (m *ScorerEventMutation) SetModel(s string) {
	m.model = &s
}

// Model returns the value of the "model" field in the mutation.
func (m *ScorerEventMutation) Model() (r string, exists bool) {
	v := m.model
	if v == nil {
		return
	}
	return *v, true
}

// OldModel returns the old "model" field's value of the ScorerEvent entity.
// If the ScorerEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScorerEventMutation) OldModel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModel: %w", err)
	}
	return oldValue.Model, nil
}

// ResetModel resets all changes to the "model" field.
func (m *ScorerEventMutation) ResetModel() {
	m.model = nil
}

// SetInteractionID sets the "interaction_id" field.
func (m *ScorerEventMutation) SetInteractionID(s string) {
	m.interaction_id = &s
}

// InteractionID returns the value of the "interaction_id" field in the mutation.
func (m *ScorerEventMutation) InteractionID() (r string, exists bool) {
	v := m.interaction_id
	if v == nil {
		return
	}
	return *v, true
}

// OldInteractionID returns the old "interaction_id" field's value of the ScorerEvent entity.
// If the ScorerEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScorerEventMutation) OldInteractionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInteractionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInteractionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInteractionID: %w", err)
	}
	return oldValue.InteractionID, nil
}

// ResetInteractionID resets all changes to the "interaction_id" field.
func (m *ScorerEventMutation) ResetInteractionID() {
	m.interaction_id = nil
}

// SetInputTokens sets the "input_tokens" field.
func (m *ScorerEventMutation) SetInputTokens(i int) {
	m.input_tokens = &i
	m.addinput_tokens = nil
}

// InputTokens returns the value of the "input_tokens" field in the mutation.
func (m *ScorerEventMutation) InputTokens() (r int, exists bool) {
	v := m.input_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldInputTokens returns the old "input_tokens" field's value of the ScorerEvent entity.
// If the ScorerEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScorerEventMutation) OldInputTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInputTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInputTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInputTokens: %w", err)
	}
	return oldValue.InputTokens, nil
}

// AddInputTokens adds i to the "input_tokens" field.
func (m *ScorerEventMutation) AddInputTokens(i int) {
	if m.addinput_tokens != nil {
		*m.addinput_tokens += i
	} else {
		m.addinput_tokens = &i
	}
}

// AddedInputTokens returns the value that was added to the "input_tokens" field in this mutation.
func (m *ScorerEventMutation) AddedInputTokens() (r int, exists bool) {
	v := m.addinput_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetInputTokens resets all changes to the "input_tokens" field.
func (m *ScorerEventMutation) ResetInputTokens() {
	m.input_tokens = nil
	m.addinput_tokens = nil
}

// SetOutputTokens sets the "output_tokens" field.
func (m *ScorerEventMutation) SetOutputTokens(i int) {
	m.output_tokens = &i
	m.addoutput_tokens = nil
}

// OutputTokens returns the value of the "output_tokens" field in the mutation.
func (m *ScorerEventMutation) OutputTokens() (r int, exists bool) {
	v := m.output_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldOutputTokens returns the old "output_tokens" field's value of the ScorerEvent entity.
// If the ScorerEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScorerEventMutation) OldOutputTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutputTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutputTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutputTokens: %w", err)
	}
	return oldValue.OutputTokens, nil
}

// AddOutputTokens adds i to the "output_tokens" field.
func (m *ScorerEventMutation) AddOutputTokens(i int) {
	if m.addoutput_tokens != nil {
		*m.addoutput_tokens += i
	} else {
		m.addoutput_tokens = &i
	}
}

// AddedOutputTokens returns the value that was added to the "output_tokens" field in this mutation.
func (m *ScorerEventMutation) AddedOutputTokens() (r int, exists bool) {
	v := m.addoutput_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetOutputTokens resets all changes to the "output_tokens" field.
func (m *ScorerEventMutation) ResetOutputTokens() {
	m.output_tokens = nil
	m.addoutput_tokens = nil
}

// SetLatencyMs sets the "latency_ms" field.
func (m *ScorerEventMutation) SetLatencyMs(i int64) {
	m.latency_ms = &i
	m.addlatency_ms = nil
}

// LatencyMs returns the value of the "latency_ms" field in the mutation.
func (m *ScorerEventMutation) LatencyMs() (r int64, exists bool) {
	v := m.latency_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldLatencyMs returns the old "latency_ms" field's value of the ScorerEvent entity.
// If the ScorerEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScorerEventMutation) OldLatencyMs(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLatencyMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLatencyMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLatencyMs: %w", err)
	}
	return oldValue.LatencyMs, nil
}

// AddLatencyMs adds i to the "latency_ms" field.
func (m *ScorerEventMutation) AddLatencyMs(i int64) {
	if m.addlatency_ms != nil {
		*m.addlatency_ms += i
	} else {
		m.addlatency_ms = &i
	}
}

// AddedLatencyMs returns the value that was added to the "latency_ms" field in this mutation.
func (m *ScorerEventMutation) AddedLatencyMs() (r int64, exists bool) {
	v := m.addlatency_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetLatencyMs resets all changes to the "latency_ms" field.
func (m *ScorerEventMutation) ResetLatencyMs() {
	m.latency_ms = nil
	m.addlatency_ms = nil
}

// SetSuccess sets the "success" field.
func (m *ScorerEventMutation) SetSuccess(b bool) {
	m.success = &b
}

// Success returns the value of the "success" field in the mutation.
func (m *ScorerEventMutation) Success() (r bool, exists bool) {
	v := m.success
	if v == nil {
		return
	}
	return *v, true
}

// OldSuccess returns the old "success" field's value of the ScorerEvent entity.
// If the ScorerEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScorerEventMutation) OldSuccess(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSuccess is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSuccess requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSuccess: %w", err)
	}
	return oldValue.Success, nil
}

// ResetSuccess resets all changes to the "success" field.
func (m *ScorerEventMutation) ResetSuccess() {
	m.success = nil
}

// SetErrorMessage sets the "error_message" field.
func (m *ScorerEventMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *ScorerEventMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the ScorerEvent entity.
// If the ScorerEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScorerEventMutation) OldErrorMessage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *ScorerEventMutation) ResetErrorMessage() {
	m.error_message = nil
}

// Where appends a list predicates to the ScorerEventMutation builder.
func (m *ScorerEventMutation) Where(ps ...predicate.ScorerEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ScorerEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ScorerEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ScorerEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ScorerEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ScorerEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ScorerEvent).
func (m *ScorerEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ScorerEventMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.sequence != nil {
		fields = append(fields, scorerevent.FieldSequence)
	}
	if m.timestamp != nil {
		fields = append(fields, scorerevent.FieldTimestamp)
	}
	if m.provider != nil {
		fields = append(fields, scorerevent.FieldProvider)
	}
	if m.model != nil {
		fields = append(fields, scorerevent.FieldModel)
	}
	if m.interaction_id != nil {
		fields = append(fields, scorerevent.FieldInteractionID)
	}
	if m.input_tokens != nil {
		fields = append(fields, scorerevent.FieldInputTokens)
	}
	if m.output_tokens != nil {
		fields = append(fields, scorerevent.FieldOutputTokens)
	}
	if m.latency_ms != nil {
		fields = append(fields, scorerevent.FieldLatencyMs)
	}
	if m.success != nil {
		fields = append(fields, scorerevent.FieldSuccess)
	}
	if m.error_message != nil {
		fields = append(fields, scorerevent.FieldErrorMessage)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ScorerEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case scorerevent.FieldSequence:
		return m.Sequence()
	case scorerevent.FieldTimestamp:
		return m.Timestamp()
	case scorerevent.FieldProvider:
		return m.Provider()
	case scorerevent.FieldModel:
		return m.Model()
	case scorerevent.FieldInteractionID:
		return m.InteractionID()
	case scorerevent.FieldInputTokens:
		return m.InputTokens()
	case scorerevent.FieldOutputTokens:
		return m.OutputTokens()
	case scorerevent.FieldLatencyMs:
		return m.LatencyMs()
	case scorerevent.FieldSuccess:
		return m.Success()
	case scorerevent.FieldErrorMessage:
		return m.ErrorMessage()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ScorerEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case scorerevent.FieldSequence:
		return m.OldSequence(ctx)
	case scorerevent.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case scorerevent.FieldProvider:
		return m.OldProvider(ctx)
	case scorerevent.FieldModel:
		return m.OldModel(ctx)
	case scorerevent.FieldInteractionID:
		return m.OldInteractionID(ctx)
	case scorerevent.FieldInputTokens:
		return m.OldInputTokens(ctx)
	case scorerevent.FieldOutputTokens:
		return m.OldOutputTokens(ctx)
	case scorerevent.FieldLatencyMs:
		return m.OldLatencyMs(ctx)
	case scorerevent.FieldSuccess:
		return m.OldSuccess(ctx)
	case scorerevent.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	}
	return nil, fmt.Errorf("unknown ScorerEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ScorerEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case scorerevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case scorerevent.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case scorerevent.FieldProvider:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProvider(v)
		return nil
	case scorerevent.FieldModel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModel(v)
		return nil
	case scorerevent.FieldInteractionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInteractionID(v)
		return nil
	case scorerevent.FieldInputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInputTokens(v)
		return nil
	case scorerevent.FieldOutputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutputTokens(v)
		return nil
	case scorerevent.FieldLatencyMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLatencyMs(v)
		return nil
	case scorerevent.FieldSuccess:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSuccess(v)
		return nil
	case scorerevent.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	}
	return fmt.Errorf("unknown ScorerEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ScorerEventMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, scorerevent.FieldSequence)
	}
	if m.addinput_tokens != nil {
		fields = append(fields, scorerevent.FieldInputTokens)
	}
	if m.addoutput_tokens != nil {
		fields = append(fields, scorerevent.FieldOutputTokens)
	}
	if m.addlatency_ms != nil {
		fields = append(fields, scorerevent.FieldLatencyMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ScorerEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case scorerevent.FieldSequence:
		return m.AddedSequence()
	case scorerevent.FieldInputTokens:
		return m.AddedInputTokens()
	case scorerevent.FieldOutputTokens:
		return m.AddedOutputTokens()
	case scorerevent.FieldLatencyMs:
		return m.AddedLatencyMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ScorerEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case scorerevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	case scorerevent.FieldInputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddInputTokens(v)
		return nil
	case scorerevent.FieldOutputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOutputTokens(v)
		return nil
	case scorerevent.FieldLatencyMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLatencyMs(v)
		return nil
	}
	return fmt.Errorf("unknown ScorerEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ScorerEventMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ScorerEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ScorerEventMutation) ClearField(name string) error {
	return fmt.Errorf("unknown ScorerEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ScorerEventMutation) ResetField(name string) error {
	switch name {
	case scorerevent.FieldSequence:
		m.ResetSequence()
		return nil
	case scorerevent.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case scorerevent.FieldProvider:
		m.ResetProvider()
		return nil
	case scorerevent.FieldModel:
		m.ResetModel()
		return nil
	case scorerevent.FieldInteractionID:
		m.ResetInteractionID()
		return nil
	case scorerevent.FieldInputTokens:
		m.ResetInputTokens()
		return nil
	case scorerevent.FieldOutputTokens:
		m.ResetOutputTokens()
		return nil
	case scorerevent.FieldLatencyMs:
		m.ResetLatencyMs()
		return nil
	case scorerevent.FieldSuccess:
		m.ResetSuccess()
		return nil
	case scorerevent.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	}
	return fmt.Errorf("unknown ScorerEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ScorerEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ScorerEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ScorerEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ScorerEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ScorerEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ScorerEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ScorerEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ScorerEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ScorerEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ScorerEvent edge %s", name)
}

// SessionEventMutation represents an operation that mutates the SessionEvent nodes in the graph.
type SessionEventMutation struct {
	config
	op              Op
	typ             string
	id              *int
	sequence        *int64
	addsequence     *int64
	timestamp       *time.Time
	session_id      *string
	learner_id      *string
	action          *string
	concept_id      *string
	turns_served    *int
	addturns_served *int
	end_reason      *string
	degraded        *bool
	clearedFields   map[string]struct{}
	done            bool
	oldValue        func(context.Context) (*SessionEvent, error)
	predicates      []predicate.SessionEvent
}

var _ ent.Mutation = (*SessionEventMutation)(nil)

// sessioneventOption allows management of the mutation configuration using functional options.
type sessioneventOption func(*SessionEventMutation)

// newSessionEventMutation creates new mutation for the SessionEvent entity.
func newSessionEventMutation(c config, op Op, opts ...sessioneventOption) *SessionEventMutation {
	m := &SessionEventMutation{
		config:        c,
		op:            op,
		typ:           TypeSessionEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSessionEventID sets the ID field of the mutation.
func withSessionEventID(id int) sessioneventOption {
	return func(m *SessionEventMutation) {
		var (
			err   error
			once  sync.Once
			value *SessionEvent
		)
		m.oldValue = func(ctx context.Context) (*SessionEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SessionEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSessionEvent sets the old SessionEvent of the mutation.
func withSessionEvent(node *SessionEvent) sessioneventOption {
	return func(m *SessionEventMutation) {
		m.oldValue = func(context.Context) (*SessionEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SessionEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SessionEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SessionEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SessionEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SessionEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSequence sets the "sequence" field.
func (m *SessionEventMutation) SetSequence(i int64) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *SessionEventMutation) Sequence() (r int64, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the SessionEvent entity.
// If the SessionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionEventMutation) OldSequence(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *SessionEventMutation) AddSequence(i int64) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *SessionEventMutation) AddedSequence() (r int64, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *SessionEventMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *SessionEventMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *SessionEventMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the SessionEvent entity.
// If the SessionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionEventMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *SessionEventMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetSessionID sets the "session_id" field.
func (m *SessionEventMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *SessionEventMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the SessionEvent entity.
// If the SessionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionEventMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *SessionEventMutation) ResetSessionID() {
	m.session_id = nil
}

// SetLearnerID sets the "learner_id" field.
func (m *SessionEventMutation) SetLearnerID(s string) {
	m.learner_id = &s
}

// LearnerID returns the value of the "learner_id" field in the mutation.
func (m *SessionEventMutation) LearnerID() (r string, exists bool) {
	v := m.learner_id
	if v == nil {
		return
	}
	return *v, true
}

// OldLearnerID returns the old "learner_id" field's value of the SessionEvent entity.
// If the SessionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionEventMutation) OldLearnerID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLearnerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLearnerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLearnerID: %w", err)
	}
	return oldValue.LearnerID, nil
}

// ResetLearnerID resets all changes to the "learner_id" field.
func (m *SessionEventMutation) ResetLearnerID() {
	m.learner_id = nil
}

// SetAction sets the "action" field.
func (m *SessionEventMutation) SetAction(s string) {
	m.action = &s
}

// Action returns the value of the "action" field in the mutation.
func (m *SessionEventMutation) Action() (r string, exists bool) {
	v := m.action
	if v == nil {
		return
	}
	return *v, true
}

// OldAction returns the old "action" field's value of the SessionEvent entity.
// If the SessionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionEventMutation) OldAction(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAction is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAction requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAction: %w", err)
	}
	return oldValue.Action, nil
}

// ResetAction resets all changes to the "action" field.
func (m *SessionEventMutation) ResetAction() {
	m.action = nil
}

// SetConceptID sets the "concept_id" field.
func (m *SessionEventMutation) SetConceptID(s string) {
	m.concept_id = &s
}

// ConceptID returns the value of the "concept_id" field in the mutation.
func (m *SessionEventMutation) ConceptID() (r string, exists bool) {
	v := m.concept_id
	if v == nil {
		return
	}
	return *v, true
}

// OldConceptID returns the old "concept_id" field's value of the SessionEvent entity.
// If the SessionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionEventMutation) OldConceptID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConceptID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConceptID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConceptID: %w", err)
	}
	return oldValue.ConceptID, nil
}

// ResetConceptID resets all changes to the "concept_id" field.
func (m *SessionEventMutation) ResetConceptID() {
	m.concept_id = nil
}

// SetTurnsServed sets the "turns_served" field.
func (m *SessionEventMutation) SetTurnsServed(i int) {
	m.turns_served = &i
	m.addturns_served = nil
}

// TurnsServed returns the value of the "turns_served" field in the mutation.
func (m *SessionEventMutation) TurnsServed() (r int, exists bool) {
	v := m.turns_served
	if v == nil {
		return
	}
	return *v, true
}

// OldTurnsServed returns the old "turns_served" field's value of the SessionEvent entity.
// If the SessionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionEventMutation) OldTurnsServed(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTurnsServed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTurnsServed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTurnsServed: %w", err)
	}
	return oldValue.TurnsServed, nil
}

// AddTurnsServed adds i to the "turns_served" field.
func (m *SessionEventMutation) AddTurnsServed(i int) {
	if m.addturns_served != nil {
		*m.addturns_served += i
	} else {
		m.addturns_served = &i
	}
}

// AddedTurnsServed returns the value that was added to the "turns_served" field in this mutation.
func (m *SessionEventMutation) AddedTurnsServed() (r int, exists bool) {
	v := m.addturns_served
	if v == nil {
		return
	}
	return *v, true
}

// ResetTurnsServed resets all changes to the "turns_served" field.
func (m *SessionEventMutation) ResetTurnsServed() {
	m.turns_served = nil
	m.addturns_served = nil
}

// SetEndReason sets the "end_reason" field.
func (m *SessionEventMutation) SetEndReason(s string) {
	m.end_reason = &s
}

// EndReason returns the value of the "end_reason" field in the mutation.
func (m *SessionEventMutation) EndReason() (r string, exists bool) {
	v := m.end_reason
	if v == nil {
		return
	}
	return *v, true
}

// OldEndReason returns the old "end_reason" field's value of the SessionEvent entity.
// If the SessionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionEventMutation) OldEndReason(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEndReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEndReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEndReason: %w", err)
	}
	return oldValue.EndReason, nil
}

// ResetEndReason resets all changes to the "end_reason" field.
func (m *SessionEventMutation) ResetEndReason() {
	m.end_reason = nil
}

// SetDegraded sets the "degraded" field.
func (m *SessionEventMutation) SetDegraded(b bool) {
	m.degraded = &b
}

// Degraded returns the value of the "degraded" field in the mutation.
func (m *SessionEventMutation) Degraded() (r bool, exists bool) {
	v := m.degraded
	if v == nil {
		return
	}
	return *v, true
}

// OldDegraded returns the old "degraded" field's value of the SessionEvent entity.
// If the SessionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionEventMutation) OldDegraded(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDegraded is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDegraded requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDegraded: %w", err)
	}
	return oldValue.Degraded, nil
}

// ResetDegraded resets all changes to the "degraded" field.
func (m *SessionEventMutation) ResetDegraded() {
	m.degraded = nil
}

// Where appends a list predicates to the SessionEventMutation builder.
func (m *SessionEventMutation) Where(ps ...predicate.SessionEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SessionEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SessionEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SessionEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SessionEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SessionEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SessionEvent).
func (m *SessionEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SessionEventMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.sequence != nil {
		fields = append(fields, sessionevent.FieldSequence)
	}
	if m.timestamp != nil {
		fields = append(fields, sessionevent.FieldTimestamp)
	}
	if m.session_id != nil {
		fields = append(fields, sessionevent.FieldSessionID)
	}
	if m.learner_id != nil {
		fields = append(fields, sessionevent.FieldLearnerID)
	}
	if m.action != nil {
		fields = append(fields, sessionevent.FieldAction)
	}
	if m.concept_id != nil {
		fields = append(fields, sessionevent.FieldConceptID)
	}
	if m.turns_served != nil {
		fields = append(fields, sessionevent.FieldTurnsServed)
	}
	if m.end_reason != nil {
		fields = append(fields, sessionevent.FieldEndReason)
	}
	if m.degraded != nil {
		fields = append(fields, sessionevent.FieldDegraded)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SessionEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case sessionevent.FieldSequence:
		return m.Sequence()
	case sessionevent.FieldTimestamp:
		return m.Timestamp()
	case sessionevent.FieldSessionID:
		return m.SessionID()
	case sessionevent.FieldLearnerID:
		return m.LearnerID()
	case sessionevent.FieldAction:
		return m.Action()
	case sessionevent.FieldConceptID:
		return m.ConceptID()
	case sessionevent.FieldTurnsServed:
		return m.TurnsServed()
	case sessionevent.FieldEndReason:
		return m.EndReason()
	case sessionevent.FieldDegraded:
		return m.Degraded()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SessionEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case sessionevent.FieldSequence:
		return m.OldSequence(ctx)
	case sessionevent.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case sessionevent.FieldSessionID:
		return m.OldSessionID(ctx)
	case sessionevent.FieldLearnerID:
		return m.OldLearnerID(ctx)
	case sessionevent.FieldAction:
		return m.OldAction(ctx)
	case sessionevent.FieldConceptID:
		return m.OldConceptID(ctx)
	case sessionevent.FieldTurnsServed:
		return m.OldTurnsServed(ctx)
	case sessionevent.FieldEndReason:
		return m.OldEndReason(ctx)
	case sessionevent.FieldDegraded:
		return m.OldDegraded(ctx)
	}
	return nil, fmt.Errorf("unknown SessionEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SessionEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case sessionevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case sessionevent.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case sessionevent.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case sessionevent.FieldLearnerID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLearnerID(v)
		return nil
	case sessionevent.FieldAction:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAction(v)
		return nil
	case sessionevent.FieldConceptID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConceptID(v)
		return nil
	case sessionevent.FieldTurnsServed:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTurnsServed(v)
		return nil
	case sessionevent.FieldEndReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEndReason(v)
		return nil
	case sessionevent.FieldDegraded:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDegraded(v)
		return nil
	}
	return fmt.Errorf("unknown SessionEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SessionEventMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, sessionevent.FieldSequence)
	}
	if m.addturns_served != nil {
		fields = append(fields, sessionevent.FieldTurnsServed)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SessionEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case sessionevent.FieldSequence:
		return m.AddedSequence()
	case sessionevent.FieldTurnsServed:
		return m.AddedTurnsServed()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SessionEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case sessionevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	case sessionevent.FieldTurnsServed:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTurnsServed(v)
		return nil
	}
	return fmt.Errorf("unknown SessionEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SessionEventMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SessionEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SessionEventMutation) ClearField(name string) error {
	return fmt.Errorf("unknown SessionEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SessionEventMutation) ResetField(name string) error {
	switch name {
	case sessionevent.FieldSequence:
		m.ResetSequence()
		return nil
	case sessionevent.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case sessionevent.FieldSessionID:
		m.ResetSessionID()
		return nil
	case sessionevent.FieldLearnerID:
		m.ResetLearnerID()
		return nil
	case sessionevent.FieldAction:
		m.ResetAction()
		return nil
	case sessionevent.FieldConceptID:
		m.ResetConceptID()
		return nil
	case sessionevent.FieldTurnsServed:
		m.ResetTurnsServed()
		return nil
	case sessionevent.FieldEndReason:
		m.ResetEndReason()
		return nil
	case sessionevent.FieldDegraded:
		m.ResetDegraded()
		return nil
	}
	return fmt.Errorf("unknown SessionEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SessionEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SessionEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SessionEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SessionEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SessionEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SessionEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SessionEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown SessionEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SessionEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown SessionEvent edge %s", name)
}
