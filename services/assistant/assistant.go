package assistant

import (
	"context"

	"storabook/models"
	"storabook/utils"

	"go.uber.org/zap"
)

// maxContextTurns bounds the retained conversation: the most recent 10
// turns (5 exchanges); oldest are discarded first.
const maxContextTurns = 10

// Respond appends the user turn, asks the completion provider with the
// retained context, and stores the trimmed conversation. Provider faults
// are swallowed into a fixed user-safe fallback; the message is not retried.
func (s *DefaultAssistantService) Respond(ctx context.Context, sessionID, message string) string {
	logger := utils.GetLogger()

	turns, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		logger.Warn("assistant: failed to load context, starting fresh",
			zap.String("sessionId", sessionID), zap.Error(err))
		turns = nil
	}

	turns = append(turns, models.Turn{Role: models.RoleUser, Content: message})

	reply, err := s.Client.Complete(ctx, SystemPrompt, turns)
	if err != nil {
		logger.Error("assistant: completion failed",
			zap.String("sessionId", sessionID), zap.Error(err))
		return FallbackReply
	}

	turns = append(turns, models.Turn{Role: models.RoleAssistant, Content: reply})
	turns = TrimTurns(turns, maxContextTurns)

	if err := s.Store.Set(ctx, sessionID, turns); err != nil {
		logger.Warn("assistant: failed to save context",
			zap.String("sessionId", sessionID), zap.Error(err))
	}
	return reply
}

// TrimTurns keeps the most recent max turns.
func TrimTurns(turns []models.Turn, max int) []models.Turn {
	if len(turns) <= max {
		return turns
	}
	return turns[len(turns)-max:]
}
