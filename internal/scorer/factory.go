package scorer

import (
	"context"
	"fmt"

	"github.com/abhisek/paideia/internal/store"
)

// New creates a Scorer from configuration, wrapped with retry and event
// logging middleware. Call order: caller, retry, logging, provider.
func New(ctx context.Context, cfg Config, eventRepo store.EventRepo) (Scorer, error) {
	var base Scorer
	var err error

	switch cfg.Provider {
	case "anthropic":
		base, err = NewAnthropicScorer(cfg.Anthropic, cfg.MaxTokens)
	case "openai":
		base, err = NewOpenAIScorer(cfg.OpenAI, cfg.MaxTokens)
	case "gemini":
		base, err = NewGeminiScorer(ctx, cfg.Gemini, cfg.MaxTokens)
	case "mock":
		return NewMockScorer(), nil
	default:
		return nil, fmt.Errorf("unknown scorer provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s scorer: %w", cfg.Provider, err)
	}

	logged := WithLogging(base, cfg.Provider, eventRepo)
	return WithRetry(logged, cfg.Retry), nil
}

// NewFromEnv builds a Scorer from PAIDEIA_ environment configuration,
// falling back to probing standard API key variables when the explicit
// configuration is incomplete.
func NewFromEnv(ctx context.Context, eventRepo store.EventRepo) (Scorer, error) {
	cfg := ConfigFromEnv()
	if err := cfg.Validate(); err != nil {
		discovered, ok := DiscoverConfig()
		if !ok {
			return nil, err
		}
		cfg = discovered
	}
	return New(ctx, cfg, eventRepo)
}
