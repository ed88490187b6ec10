package scorer

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseGrade_Valid(t *testing.T) {
	raw := json.RawMessage(`{"success_indicator": 0.75, "rationale": "mostly right"}`)
	g, err := parseGrade(raw)
	require.NoError(t, err)
	assert.Equal(t, 0.75, g.SuccessIndicator)
	assert.Equal(t, "mostly right", g.Rationale)
}

func TestParseGrade_RejectsMalformedJSON(t *testing.T) {
	_, err := parseGrade(json.RawMessage(`not json`))
	var invalid *ErrInvalidGrade
	require.ErrorAs(t, err, &invalid)
}

func TestParseGrade_RejectsSchemaViolations(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"missing indicator", `{"rationale": "no score"}`},
		{"missing rationale", `{"success_indicator": 0.5}`},
		{"indicator out of range", `{"success_indicator": 1.5, "rationale": "x"}`},
		{"extra field", `{"success_indicator": 0.5, "rationale": "x", "extra": true}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseGrade(json.RawMessage(tt.raw))
			var invalid *ErrInvalidGrade
			assert.ErrorAs(t, err, &invalid)
		})
	}
}

func TestBuildPrompt(t *testing.T) {
	p := buildPrompt(Submission{
		Question: "What is a half plus a quarter?",
		Response: "three quarters",
		Concept:  "fractions",
		Subject:  "math",
	})

	assert.Contains(t, p, "fractions")
	assert.Contains(t, p, "math")
	assert.Contains(t, p, "a half plus a quarter")
	assert.Contains(t, p, "three quarters")
}

func TestMockScorer_FIFOAndRecording(t *testing.T) {
	m := NewMockScorer(
		MockGrade{SuccessIndicator: 0.9, Rationale: "good"},
		MockGrade{SuccessIndicator: 0.2, Rationale: "weak"},
	)
	ctx := context.Background()

	g1, err := m.Score(ctx, Submission{Question: "q1", Response: "r1"})
	require.NoError(t, err)
	g2, err := m.Score(ctx, Submission{Question: "q2", Response: "r2"})
	require.NoError(t, err)

	assert.Equal(t, 0.9, g1.SuccessIndicator)
	assert.Equal(t, 0.2, g2.SuccessIndicator)
	assert.Equal(t, 2, m.CallCount())
	assert.Equal(t, "q1", m.Calls[0].Question)

	// Exhausted queue surfaces as provider unavailable.
	_, err = m.Score(ctx, Submission{})
	var unavail *ErrProviderUnavailable
	assert.ErrorAs(t, err, &unavail)
}

func TestConfigValidate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider = "anthropic"
	assert.Error(t, cfg.Validate(), "missing anthropic key must fail validation")

	cfg.Anthropic.APIKey = "key"
	assert.NoError(t, cfg.Validate())

	cfg.Provider = "mock"
	assert.NoError(t, cfg.Validate(), "mock provider needs no key")

	cfg.Provider = "carrier-pigeon"
	assert.Error(t, cfg.Validate(), "unknown provider must fail validation")
}
