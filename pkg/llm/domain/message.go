// ABOUTME: Core conversation primitives shared by executors and the healing pipeline
// ABOUTME: Defines Role, Message, Response, and Usage types

package domain

// Role represents the role of a message sender in a conversation.
type Role string

const (
	// RoleSystem represents system messages that set context or behavior for the conversation.
	RoleSystem Role = "system"

	// RoleUser represents messages from the human user.
	RoleUser Role = "user"

	// RoleAssistant represents messages from the AI assistant.
	RoleAssistant Role = "assistant"
)

// Message represents a single message in a conversation with a model.
// The policy layer only ever constructs text messages; multimodal payloads
// belong to the transport layer behind CompletionExecutor.
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// NewSystemMessage creates a system message with text content.
func NewSystemMessage(text string) Message {
	return Message{Role: RoleSystem, Content: text}
}

// NewUserMessage creates a user message with text content.
func NewUserMessage(text string) Message {
	return Message{Role: RoleUser, Content: text}
}

// NewAssistantMessage creates an assistant message with text content.
func NewAssistantMessage(text string) Message {
	return Message{Role: RoleAssistant, Content: text}
}

// Usage tracks token consumption reported by the upstream provider.
type Usage struct {
	InputTokens  int `json:"input_tokens"`
	OutputTokens int `json:"output_tokens"`
}

// Response represents a complete response from a completion executor.
// Content is the only field the policy layer depends on; Usage is carried
// through for cost accounting when the provider reports it.
type Response struct {
	Content string `json:"content"`
	Model   string `json:"model,omitempty"`
	Usage   Usage  `json:"usage,omitempty"`
}
