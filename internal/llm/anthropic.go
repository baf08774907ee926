package llm

import (
	"context"
	"errors"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// anthropicAliases maps short names accepted in MODEL to Anthropic model IDs.
var anthropicAliases = map[string]string{
	"claude-sonnet": "claude-sonnet-4-20250514",
	"claude-haiku":  "claude-haiku-4-5-20251001",
}

// anthropicMaxTokens is sent when the request leaves MaxTokens unset.
// The Messages API rejects requests without it.
const anthropicMaxTokens = 2048

// AnthropicProvider talks to the Anthropic Messages API.
type AnthropicProvider struct {
	client anthropic.Client
	model  string
}

// NewAnthropicProvider creates a provider for cfg. Extra request options
// are applied after the credential, which lets tests point the client at a
// local server.
func NewAnthropicProvider(cfg AnthropicConfig, opts ...option.RequestOption) (*AnthropicProvider, error) {
	if cfg.APIKey == "" {
		return nil, &ErrAuthentication{Err: errors.New("anthropic API key is required")}
	}

	base := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithMaxRetries(0),
	}
	return &AnthropicProvider{
		client: anthropic.NewClient(append(base, opts...)...),
		model:  expandAlias(cfg.Model, anthropicAliases),
	}, nil
}

func (p *AnthropicProvider) Complete(ctx context.Context, req Request) (*Response, error) {
	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(p.model),
		MaxTokens: anthropicMaxTokens,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(req.Prompt)),
		},
	}
	if req.MaxTokens > 0 {
		params.MaxTokens = int64(req.MaxTokens)
	}
	if req.Role != "" {
		params.System = []anthropic.TextBlockParam{{Text: req.Role}}
	}
	if req.Temperature > 0 {
		params.Temperature = anthropic.Float(req.Temperature)
	}

	msg, err := p.client.Messages.New(ctx, params)
	if err != nil {
		var apiErr *anthropic.Error
		if errors.As(err, &apiErr) {
			return nil, classifyStatus(apiErr.StatusCode, err)
		}
		return nil, &ErrProviderUnavailable{Err: err}
	}

	for _, block := range msg.Content {
		if block.Type != "text" {
			continue
		}
		return &Response{
			Text:  block.Text,
			Model: string(msg.Model),
			Usage: Usage{
				InputTokens:  int(msg.Usage.InputTokens),
				OutputTokens: int(msg.Usage.OutputTokens),
			},
			Truncated: msg.StopReason == anthropic.StopReasonMaxTokens,
		}, nil
	}
	return nil, &ErrInvalidResponse{Err: errors.New("no text block in message")}
}

func (p *AnthropicProvider) ModelID() string {
	return p.model
}

// expandAlias returns the model ID for a short name, or name itself when it
// is not an alias.
func expandAlias(name string, aliases map[string]string) string {
	if id, ok := aliases[name]; ok {
		return id
	}
	return name
}
