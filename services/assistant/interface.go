package assistant

import (
	"context"

	"storabook/models"
)

// CompletionClient is the port to a chat-completion provider.
type CompletionClient interface {
	Complete(ctx context.Context, systemPrompt string, turns []models.Turn) (string, error)
}

// ContextStore holds per-session conversation context.
type ContextStore interface {
	Get(ctx context.Context, sessionID string) ([]models.Turn, error)
	Set(ctx context.Context, sessionID string, turns []models.Turn) error
	Clear(ctx context.Context, sessionID string) error
}

// AssistantService answers customer chat messages.
type AssistantService interface {
	// Respond always returns a reply; completion-provider faults yield a
	// canned apology rather than an error.
	Respond(ctx context.Context, sessionID, message string) string
}

// DefaultAssistantService implements AssistantService with a bounded
// conversation context.
type DefaultAssistantService struct {
	Client CompletionClient
	Store  ContextStore
}

// NewDefaultAssistantService wires the assistant from its ports.
func NewDefaultAssistantService(client CompletionClient, store ContextStore) *DefaultAssistantService {
	return &DefaultAssistantService{Client: client, Store: store}
}
