package scorer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	openai "github.com/sashabaranov/go-openai"
)

// openaiModels maps friendly names to OpenAI model IDs.
var openaiModels = map[string]string{
	"gpt-4o":      "gpt-4o",
	"gpt-4o-mini": "gpt-4o-mini",
}

// OpenAIScorer grades submissions with the OpenAI SDK. It also supports
// OpenAI-compatible APIs via BaseURL.
type OpenAIScorer struct {
	client    *openai.Client
	model     string
	maxTokens int
}

// NewOpenAIScorer creates a scorer backed by OpenAI.
func NewOpenAIScorer(cfg OpenAIConfig, maxTokens int) (*OpenAIScorer, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("openai API key is required")
	}

	config := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		config.BaseURL = cfg.BaseURL
	}

	return &OpenAIScorer{
		client:    openai.NewClientWithConfig(config),
		model:     resolveModel(cfg.Model, openaiModels),
		maxTokens: maxTokens,
	}, nil
}

func (s *OpenAIScorer) Score(ctx context.Context, sub Submission) (*Grade, error) {
	schemaBytes, err := json.Marshal(gradeSchema)
	if err != nil {
		return nil, fmt.Errorf("marshal schema: %w", err)
	}

	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: s.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: buildPrompt(sub)},
		},
		MaxCompletionTokens: s.maxTokens,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONSchema,
			JSONSchema: &openai.ChatCompletionResponseFormatJSONSchema{
				Name:   gradeSchemaName,
				Schema: json.RawMessage(schemaBytes),
				Strict: true,
			},
		},
	})
	if err != nil {
		return nil, mapOpenAIError(err)
	}

	if len(resp.Choices) == 0 {
		return nil, &ErrInvalidGrade{
			Err: fmt.Errorf("no choices in OpenAI response"),
		}
	}

	grade, err := parseGrade(json.RawMessage(resp.Choices[0].Message.Content))
	if err != nil {
		return nil, err
	}
	grade.Usage = Usage{
		InputTokens:  resp.Usage.PromptTokens,
		OutputTokens: resp.Usage.CompletionTokens,
	}
	return grade, nil
}

func (s *OpenAIScorer) ModelID() string {
	return s.model
}

func mapOpenAIError(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		switch {
		case apiErr.HTTPStatusCode == http.StatusTooManyRequests:
			return &ErrRateLimit{Err: err}
		case apiErr.HTTPStatusCode >= 500:
			return &ErrProviderUnavailable{Err: err}
		}
	}
	return &ErrProviderUnavailable{Err: err}
}
