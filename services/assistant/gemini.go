// File: services/assistant/gemini.go
package assistant

import (
	"context"
	"fmt"
	"strings"

	"storabook/models"

	genai "github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiClient implements CompletionClient over the Gemini API.
type GeminiClient struct {
	model *genai.GenerativeModel
}

func NewGeminiClient(ctx context.Context, apiKey string) (*GeminiClient, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	model := client.GenerativeModel("models/gemini-1.5-pro")
	return &GeminiClient{model: model}, nil
}

func (g *GeminiClient) Complete(ctx context.Context, systemPrompt string, turns []models.Turn) (string, error) {
	// Gemini takes a single prompt; fold the system prompt and the
	// conversation into one text block.
	var prompt strings.Builder
	prompt.WriteString(systemPrompt)
	prompt.WriteString("\n\n")
	for _, t := range turns {
		fmt.Fprintf(&prompt, "%s: %s\n", t.Role, t.Content)
	}
	prompt.WriteString("assistant:")

	resp, err := g.model.GenerateContent(ctx, genai.Text(prompt.String()))
	if err != nil {
		return "", fmt.Errorf("gemini generate error: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("gemini returned no candidates")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if textPart, ok := part.(genai.Text); ok {
			sb.WriteString(string(textPart))
		}
	}
	return sb.String(), nil
}
