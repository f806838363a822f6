package llm

import (
	"context"
	"encoding/json"
)

// Provider is the single capability examgen needs from a hosted model:
// send one prompt, get one reply back.
type Provider interface {
	// Generate sends the request and returns the model's reply.
	// When req.Schema is set the provider asks the model for JSON shaped
	// like the schema, but the reply is returned as received. Callers own
	// cleaning and validating it.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier this provider is configured to use.
	ModelID() string
}

// Request describes what to send to the model.
type Request struct {
	// System is the system prompt. Empty for single-document prompts.
	System string

	// Messages is the conversation. Exam generation sends one user message.
	Messages []Message

	// Schema declares the JSON shape the reply must take. Nil means free text.
	Schema *Schema

	// MaxTokens caps the reply length. Zero leaves the provider default.
	MaxTokens int

	// Temperature controls randomness. Zero leaves the provider default.
	Temperature float64
}

// Message represents a single message in the conversation.
type Message struct {
	Role    Role
	Content string
}

// Role is the message sender role.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema defines the JSON structure expected from the model.
type Schema struct {
	// Name identifies this schema (tool/schema name on providers that need
	// one, cache key for validation). Kebab-case, e.g. "exam-dossier".
	Name string

	// Description is sent to providers that accept one.
	Description string

	// Definition is the JSON Schema definition as a map.
	Definition map[string]any
}

// Response holds the model's output.
type Response struct {
	// Content is the reply text exactly as the provider returned it. It may
	// be wrapped in code fences even when JSON output was requested.
	Content json.RawMessage

	// Usage reports token consumption for this request.
	Usage Usage

	// Model is the actual model that served the request.
	Model string

	// StopReason indicates why generation stopped.
	// Normalized to: "end", "max_tokens", "error"
	StopReason string
}

// Text returns Content as a string.
func (r *Response) Text() string {
	if r == nil {
		return ""
	}
	return string(r.Content)
}

// Usage tracks token consumption for a single request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

// UserPrompt builds a single-turn request carrying prompt as the only user message.
func UserPrompt(prompt string, schema *Schema) Request {
	return Request{
		Messages: []Message{{Role: RoleUser, Content: prompt}},
		Schema:   schema,
	}
}
