package llm

import "context"

// Provider sends single-turn completion requests to a chat-completion
// service. Implementations never retry.
type Provider interface {
	// Complete sends req as a system message followed by one user message
	// and returns the text of the first choice.
	Complete(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model every request is sent to.
	ModelID() string
}

// Request is one system role and one user prompt.
type Request struct {
	// Role is the system message that sets the assistant's persona.
	// An empty role sends the prompt alone.
	Role string

	// Prompt is the sole user message.
	Prompt string

	// MaxTokens caps the response length. Zero leaves the provider default.
	MaxTokens int

	// Temperature controls randomness. Zero leaves the provider default.
	Temperature float64
}

// NewRequest builds a Request with provider defaults for sampling.
func NewRequest(role, prompt string) Request {
	return Request{Role: role, Prompt: prompt}
}

// Response holds the completion output.
type Response struct {
	// Text is the message content of the first returned choice.
	Text string

	// Model is the model that served the request, as reported back.
	Model string

	// Usage reports token consumption for this request.
	Usage Usage

	// Truncated is set when generation stopped at the token limit.
	Truncated bool
}

// Usage tracks token consumption for a single request.
type Usage struct {
	InputTokens  int
	OutputTokens int
}

// Total returns input plus output tokens.
func (u Usage) Total() int {
	return u.InputTokens + u.OutputTokens
}
