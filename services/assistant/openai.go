package assistant

import (
	"context"
	"fmt"

	"storabook/models"

	openai "github.com/sashabaranov/go-openai"
)

// OpenAIClient implements CompletionClient over the OpenAI chat API.
type OpenAIClient struct {
	client *openai.Client
	model  string
}

func NewOpenAIClient(apiKey, model string) *OpenAIClient {
	return &OpenAIClient{
		client: openai.NewClient(apiKey),
		model:  model,
	}
}

func (c *OpenAIClient) Complete(ctx context.Context, systemPrompt string, turns []models.Turn) (string, error) {
	messages := make([]openai.ChatCompletionMessage, 0, len(turns)+1)
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleSystem,
		Content: systemPrompt,
	})
	for _, t := range turns {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    t.Role,
			Content: t.Content,
		})
	}

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		Messages:    messages,
		Temperature: 0.7,
		MaxTokens:   1000,
	})
	if err != nil {
		return "", fmt.Errorf("failed to create chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("chat completion returned no choices")
	}
	return resp.Choices[0].Message.Content, nil
}
