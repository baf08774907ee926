package llm

import (
	"context"
	"errors"

	openai "github.com/sashabaranov/go-openai"
)

// DefaultModel is the chat model every use case is served by unless the
// configuration names another one.
const DefaultModel = "gpt-4"

// OpenAIProvider talks to the OpenAI chat completions endpoint, or to any
// service that speaks the same protocol at BaseURL.
type OpenAIProvider struct {
	client *openai.Client
	model  string
}

// NewOpenAIProvider creates a provider for cfg. An empty model selects
// DefaultModel.
func NewOpenAIProvider(cfg OpenAIConfig) (*OpenAIProvider, error) {
	if cfg.APIKey == "" {
		return nil, &ErrAuthentication{Err: errors.New("openai API key is required")}
	}

	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}

	p := &OpenAIProvider{
		client: openai.NewClientWithConfig(clientCfg),
		model:  cfg.Model,
	}
	if p.model == "" {
		p.model = DefaultModel
	}
	return p, nil
}

func (p *OpenAIProvider) Complete(ctx context.Context, req Request) (*Response, error) {
	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:               p.model,
		Messages:            openAIMessages(req),
		MaxCompletionTokens: req.MaxTokens,
		Temperature:         float32(req.Temperature),
	})
	if err != nil {
		return nil, openAIError(err)
	}
	if len(resp.Choices) == 0 {
		return nil, &ErrInvalidResponse{Err: errors.New("no choices in completion")}
	}

	first := resp.Choices[0]
	return &Response{
		Text:  first.Message.Content,
		Model: resp.Model,
		Usage: Usage{
			InputTokens:  resp.Usage.PromptTokens,
			OutputTokens: resp.Usage.CompletionTokens,
		},
		Truncated: first.FinishReason == openai.FinishReasonLength,
	}, nil
}

func (p *OpenAIProvider) ModelID() string {
	return p.model
}

func openAIMessages(req Request) []openai.ChatCompletionMessage {
	user := openai.ChatCompletionMessage{Role: openai.ChatMessageRoleUser, Content: req.Prompt}
	if req.Role == "" {
		return []openai.ChatCompletionMessage{user}
	}
	return []openai.ChatCompletionMessage{
		{Role: openai.ChatMessageRoleSystem, Content: req.Role},
		user,
	}
}

func openAIError(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return classifyStatus(apiErr.HTTPStatusCode, err)
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return classifyStatus(reqErr.HTTPStatusCode, err)
	}
	return &ErrProviderUnavailable{Err: err}
}
