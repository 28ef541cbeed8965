package models

// Chat roles.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Turn is one entry in a conversation context.
type Turn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}
