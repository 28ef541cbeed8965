package assistant

import (
	"context"
	"fmt"

	"storabook/config"
)

// NewCompletionClient selects the completion provider from config.
func NewCompletionClient(ctx context.Context, cfg config.Config) (CompletionClient, error) {
	switch cfg.LLMProvider {
	case "", "openai":
		if cfg.OpenAIAPIKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY is not set")
		}
		return NewOpenAIClient(cfg.OpenAIAPIKey, cfg.OpenAIModel), nil
	case "gemini":
		if cfg.GeminiAPIKey == "" {
			return nil, fmt.Errorf("GEMINI_API_KEY is not set")
		}
		return NewGeminiClient(ctx, cfg.GeminiAPIKey)
	default:
		return nil, fmt.Errorf("unknown LLM provider %q", cfg.LLMProvider)
	}
}
