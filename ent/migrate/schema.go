// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// InteractionsColumns holds the columns for the "interactions" table.
	InteractionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "interaction_id", Type: field.TypeString, Unique: true},
		{Name: "session_id", Type: field.TypeString},
		{Name: "learner_id", Type: field.TypeString},
		{Name: "concept_id", Type: field.TypeString},
		{Name: "subject", Type: field.TypeString},
		{Name: "difficulty_level", Type: field.TypeInt},
		{Name: "methodology", Type: field.TypeString},
		{Name: "question_text", Type: field.TypeString},
		{Name: "response_text", Type: field.TypeString, Nullable: true},
		{Name: "success_indicator", Type: field.TypeFloat64, Nullable: true},
		{Name: "unscored", Type: field.TypeBool, Default: false},
		{Name: "repeated_question", Type: field.TypeBool, Default: false},
		{Name: "prev_interaction_id", Type: field.TypeString, Default: ""},
		{Name: "response_latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "time_of_day", Type: field.TypeString, Default: ""},
		{Name: "device_type", Type: field.TypeString, Default: ""},
	}
	// InteractionsTable holds the schema information for the "interactions" table.
	InteractionsTable = &schema.Table{
		Name:       "interactions",
		Columns:    InteractionsColumns,
		PrimaryKey: []*schema.Column{InteractionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "interaction_sequence",
				Unique:  false,
				Columns: []*schema.Column{InteractionsColumns[1]},
			},
			{
				Name:    "interaction_timestamp",
				Unique:  false,
				Columns: []*schema.Column{InteractionsColumns[2]},
			},
			{
				Name:    "interaction_session_id",
				Unique:  false,
				Columns: []*schema.Column{InteractionsColumns[4]},
			},
			{
				Name:    "interaction_learner_id",
				Unique:  false,
				Columns: []*schema.Column{InteractionsColumns[5]},
			},
			{
				Name:    "interaction_concept_id",
				Unique:  false,
				Columns: []*schema.Column{InteractionsColumns[6]},
			},
			{
				Name:    "interaction_unscored",
				Unique:  false,
				Columns: []*schema.Column{InteractionsColumns[13]},
			},
		},
	}
	// LearnerProfilesColumns holds the columns for the "learner_profiles" table.
	LearnerProfilesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "learner_id", Type: field.TypeString, Unique: true},
		{Name: "role", Type: field.TypeString},
		{Name: "style_visual", Type: field.TypeInt, Default: 50},
		{Name: "style_auditory", Type: field.TypeInt, Default: 50},
		{Name: "style_kinesthetic", Type: field.TypeInt, Default: 50},
		{Name: "style_reading", Type: field.TypeInt, Default: 50},
		{Name: "interests", Type: field.TypeJSON, Nullable: true},
		{Name: "strengths", Type: field.TypeJSON, Nullable: true},
		{Name: "weaknesses", Type: field.TypeJSON, Nullable: true},
		{Name: "age", Type: field.TypeInt, Default: 0},
		{Name: "education_level", Type: field.TypeString, Default: ""},
		{Name: "cultural_context", Type: field.TypeString, Default: ""},
		{Name: "completeness", Type: field.TypeFloat64, Default: 0},
		{Name: "archived", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// LearnerProfilesTable holds the schema information for the "learner_profiles" table.
	LearnerProfilesTable = &schema.Table{
		Name:       "learner_profiles",
		Columns:    LearnerProfilesColumns,
		PrimaryKey: []*schema.Column{LearnerProfilesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "learnerprofile_role",
				Unique:  false,
				Columns: []*schema.Column{LearnerProfilesColumns[2]},
			},
			{
				Name:    "learnerprofile_archived",
				Unique:  false,
				Columns: []*schema.Column{LearnerProfilesColumns[14]},
			},
		},
	}
	// MasteryRecordsColumns holds the columns for the "mastery_records" table.
	MasteryRecordsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "learner_id", Type: field.TypeString},
		{Name: "concept_id", Type: field.TypeString},
		{Name: "score", Type: field.TypeFloat64, Default: 0},
		{Name: "interaction_count", Type: field.TypeInt, Default: 0},
		{Name: "last_updated_at", Type: field.TypeTime},
	}
	// MasteryRecordsTable holds the schema information for the "mastery_records" table.
	MasteryRecordsTable = &schema.Table{
		Name:       "mastery_records",
		Columns:    MasteryRecordsColumns,
		PrimaryKey: []*schema.Column{MasteryRecordsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "masteryrecord_learner_id_concept_id",
				Unique:  true,
				Columns: []*schema.Column{MasteryRecordsColumns[1], MasteryRecordsColumns[2]},
			},
			{
				Name:    "masteryrecord_learner_id",
				Unique:  false,
				Columns: []*schema.Column{MasteryRecordsColumns[1]},
			},
		},
	}
	// RecommendationsColumns holds the columns for the "recommendations" table.
	RecommendationsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "recommendation_id", Type: field.TypeString, Unique: true},
		{Name: "learner_id", Type: field.TypeString},
		{Name: "rec_type", Type: field.TypeString},
		{Name: "concept_id", Type: field.TypeString, Default: ""},
		{Name: "title", Type: field.TypeString},
		{Name: "description", Type: field.TypeString},
		{Name: "reasoning", Type: field.TypeString},
		{Name: "difficulty_level", Type: field.TypeInt, Default: 1},
		{Name: "estimated_minutes", Type: field.TypeInt, Default: 10},
		{Name: "priority", Type: field.TypeInt},
		{Name: "urgency", Type: field.TypeString},
		{Name: "status", Type: field.TypeString, Default: "pending"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "expires_at", Type: field.TypeTime},
	}
	// RecommendationsTable holds the schema information for the "recommendations" table.
	RecommendationsTable = &schema.Table{
		Name:       "recommendations",
		Columns:    RecommendationsColumns,
		PrimaryKey: []*schema.Column{RecommendationsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "recommendation_learner_id_status",
				Unique:  false,
				Columns: []*schema.Column{RecommendationsColumns[2], RecommendationsColumns[12]},
			},
			{
				Name:    "recommendation_learner_id_rec_type_concept_id_status",
				Unique:  false,
				Columns: []*schema.Column{RecommendationsColumns[2], RecommendationsColumns[3], RecommendationsColumns[4], RecommendationsColumns[12]},
			},
			{
				Name:    "recommendation_expires_at",
				Unique:  false,
				Columns: []*schema.Column{RecommendationsColumns[14]},
			},
		},
	}
	// ScorerEventsColumns holds the columns for the "scorer_events" table.
	ScorerEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "interaction_id", Type: field.TypeString, Default: ""},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
	}
	// ScorerEventsTable holds the schema information for the "scorer_events" table.
	ScorerEventsTable = &schema.Table{
		Name:       "scorer_events",
		Columns:    ScorerEventsColumns,
		PrimaryKey: []*schema.Column{ScorerEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "scorerevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{ScorerEventsColumns[1]},
			},
			{
				Name:    "scorerevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{ScorerEventsColumns[2]},
			},
			{
				Name:    "scorerevent_provider",
				Unique:  false,
				Columns: []*schema.Column{ScorerEventsColumns[3]},
			},
			{
				Name:    "scorerevent_interaction_id",
				Unique:  false,
				Columns: []*schema.Column{ScorerEventsColumns[5]},
			},
			{
				Name:    "scorerevent_success",
				Unique:  false,
				Columns: []*schema.Column{ScorerEventsColumns[9]},
			},
		},
	}
	// SessionEventsColumns holds the columns for the "session_events" table.
	SessionEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "learner_id", Type: field.TypeString},
		{Name: "action", Type: field.TypeString},
		{Name: "concept_id", Type: field.TypeString, Default: ""},
		{Name: "turns_served", Type: field.TypeInt, Default: 0},
		{Name: "end_reason", Type: field.TypeString, Default: ""},
		{Name: "degraded", Type: field.TypeBool, Default: false},
	}
	// SessionEventsTable holds the schema information for the "session_events" table.
	SessionEventsTable = &schema.Table{
		Name:       "session_events",
		Columns:    SessionEventsColumns,
		PrimaryKey: []*schema.Column{SessionEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "sessionevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[1]},
			},
			{
				Name:    "sessionevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[2]},
			},
			{
				Name:    "sessionevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[3]},
			},
			{
				Name:    "sessionevent_learner_id",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[4]},
			},
			{
				Name:    "sessionevent_action",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[5]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		InteractionsTable,
		LearnerProfilesTable,
		MasteryRecordsTable,
		RecommendationsTable,
		ScorerEventsTable,
		SessionEventsTable,
	}
)

func init() {
}
