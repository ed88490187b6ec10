// Package scorer grades learner responses with an external LLM provider.
// Every provider returns a structured grade validated against a JSON
// schema; the session manager handles timeouts and degraded operation.
package scorer

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

// Submission is one learner exchange to be graded.
type Submission struct {
	// Question is the guiding question the learner answered.
	Question string

	// Response is the learner's free-text answer.
	Response string

	// Concept and Subject situate the exchange so the grader can judge
	// partial understanding, not just literal correctness.
	Concept string
	Subject string
}

// Grade is the structured result of scoring one submission.
type Grade struct {
	// SuccessIndicator is the grade in [0,1]. 1 means full understanding,
	// 0 means no understanding, intermediate values partial credit.
	SuccessIndicator float64 `json:"success_indicator"`

	// Rationale is the grader's short explanation.
	Rationale string `json:"rationale"`

	// Usage reports token consumption for the grading call.
	Usage Usage `json:"-"`
}

// Usage tracks token consumption for a single grading call.
type Usage struct {
	InputTokens  int
	OutputTokens int
}

// Scorer grades submissions.
type Scorer interface {
	// Score grades a submission and returns the structured grade.
	Score(ctx context.Context, sub Submission) (*Grade, error)

	// ModelID returns the model identifier this scorer is configured to use.
	ModelID() string
}

// gradeSchemaName identifies the grade schema for structured output.
const gradeSchemaName = "response-grade"

// gradeSchema is the JSON Schema every provider's output must satisfy.
var gradeSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"success_indicator": map[string]any{
			"type":        "number",
			"minimum":     0,
			"maximum":     1,
			"description": "Degree of understanding shown, 0 to 1.",
		},
		"rationale": map[string]any{
			"type":        "string",
			"description": "One or two sentences explaining the grade.",
		},
	},
	"required":             []any{"success_indicator", "rationale"},
	"additionalProperties": false,
}

const systemPrompt = `You grade a learner's answer to a tutoring question.
Judge understanding, not phrasing: award partial credit for partially
correct reasoning, and do not penalize informal language. Respond with
JSON only.`

// buildPrompt renders the grading request as a single user message.
func buildPrompt(sub Submission) string {
	var b strings.Builder
	if sub.Subject != "" {
		fmt.Fprintf(&b, "Subject: %s\n", sub.Subject)
	}
	if sub.Concept != "" {
		fmt.Fprintf(&b, "Concept: %s\n", sub.Concept)
	}
	fmt.Fprintf(&b, "Question: %s\n", sub.Question)
	fmt.Fprintf(&b, "Learner's answer: %s\n", sub.Response)
	return b.String()
}

// parseGrade validates raw provider output and decodes it into a Grade.
// The indicator is clamped to [0,1] as a final guard even though the
// schema bounds it.
func parseGrade(raw json.RawMessage) (*Grade, error) {
	if err := validateGrade(raw); err != nil {
		return nil, err
	}

	var g Grade
	if err := json.Unmarshal(raw, &g); err != nil {
		return nil, &ErrInvalidGrade{Content: raw, Err: err}
	}

	if g.SuccessIndicator < 0 {
		g.SuccessIndicator = 0
	}
	if g.SuccessIndicator > 1 {
		g.SuccessIndicator = 1
	}
	return &g, nil
}

// resolveModel maps a friendly model name to a provider model ID.
// Names not in the map pass through as direct model IDs.
func resolveModel(name string, models map[string]string) string {
	if id, ok := models[name]; ok {
		return id
	}
	return name
}
