package llm

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/genai"
)

// geminiAliases maps short names accepted in MODEL to Gemini model IDs.
var geminiAliases = map[string]string{
	"gemini-flash": "gemini-2.0-flash",
	"gemini-pro":   "gemini-2.5-pro",
}

// GeminiProvider talks to the Gemini API.
type GeminiProvider struct {
	client *genai.Client
	model  string
}

// NewGeminiProvider creates a provider for cfg.
func NewGeminiProvider(ctx context.Context, cfg GeminiConfig) (*GeminiProvider, error) {
	if cfg.APIKey == "" {
		return nil, &ErrAuthentication{Err: errors.New("gemini API key is required")}
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}

	return &GeminiProvider{
		client: client,
		model:  expandAlias(cfg.Model, geminiAliases),
	}, nil
}

func (p *GeminiProvider) Complete(ctx context.Context, req Request) (*Response, error) {
	result, err := p.client.Models.GenerateContent(ctx, p.model,
		genai.Text(req.Prompt), geminiConfig(req))
	if err != nil {
		return nil, geminiError(err)
	}
	if len(result.Candidates) == 0 {
		return nil, &ErrInvalidResponse{Err: errors.New("no candidates in completion")}
	}

	resp := &Response{
		Text:      result.Text(),
		Model:     p.model,
		Truncated: result.Candidates[0].FinishReason == genai.FinishReasonMaxTokens,
	}
	if meta := result.UsageMetadata; meta != nil {
		resp.Usage = Usage{
			InputTokens:  int(meta.PromptTokenCount),
			OutputTokens: int(meta.CandidatesTokenCount),
		}
	}
	return resp, nil
}

func (p *GeminiProvider) ModelID() string {
	return p.model
}

func geminiConfig(req Request) *genai.GenerateContentConfig {
	cfg := &genai.GenerateContentConfig{MaxOutputTokens: int32(req.MaxTokens)}
	if req.Temperature > 0 {
		temp := float32(req.Temperature)
		cfg.Temperature = &temp
	}
	if req.Role != "" {
		cfg.SystemInstruction = &genai.Content{Parts: []*genai.Part{{Text: req.Role}}}
	}
	return cfg
}

func geminiError(err error) error {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return classifyStatus(apiErr.Code, err)
	}
	return &ErrProviderUnavailable{Err: err}
}
