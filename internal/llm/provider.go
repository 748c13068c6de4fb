package llm

import (
	"context"
	"errors"
)

// ErrEmptyOutput is returned when a provider answers without any text
var ErrEmptyOutput = errors.New("llm response did not include any output text")

// ErrAttachmentsUnsupported is returned by providers that cannot take inline binary input
var ErrAttachmentsUnsupported = errors.New("provider does not accept attachments")

// Provider defines the interface for LLM providers
type Provider interface {
	// Generate runs a single request. With an OutputSchema the provider must
	// return JSON conforming to it in RawOutput; otherwise plain text.
	Generate(ctx context.Context, request *GenerationRequest) (*GenerationResponse, error)

	// Name returns the provider name (e.g., "openai", "gemini")
	Name() string
}

// GenerationRequest contains all parameters needed for generation
type GenerationRequest struct {
	Model         string
	InputArray    []map[string]any
	ReasoningMode string
	SystemPrompt  string
	// Structured output schema, optional
	OutputSchema *OutputSchema
	// Inline binary parts sent alongside the last user message
	Attachments []Attachment
}

// Attachment is inline binary content such as an uploaded audio file
type Attachment struct {
	MIMEType string
	Data     []byte
}

// OutputSchema defines the expected JSON output structure
type OutputSchema struct {
	Name        string
	Description string
	Schema      map[string]any // JSON Schema object
}

// GenerationResponse contains the result from the LLM
type GenerationResponse struct {
	RawOutput    string `json:"-"`
	InputTokens  int    `json:"inputTokens"`
	OutputTokens int    `json:"outputTokens"`
	Usage        any    `json:"usage"`
}

// UserMessage builds one InputArray item
func UserMessage(content string) map[string]any {
	return map[string]any{"role": userRole, "content": content}
}
