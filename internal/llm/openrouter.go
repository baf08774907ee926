package llm

import (
	"errors"
	"strings"
)

const openRouterURL = "https://openrouter.ai/api/v1"

// NewOpenRouterProvider returns an OpenAI-protocol provider pointed at
// OpenRouter. A model without a vendor prefix is taken to be an OpenAI
// model, so MODEL=gpt-4 works unchanged.
func NewOpenRouterProvider(cfg OpenRouterConfig) (*OpenAIProvider, error) {
	if cfg.APIKey == "" {
		return nil, &ErrAuthentication{Err: errors.New("openrouter API key is required")}
	}

	model := cfg.Model
	if model == "" {
		model = DefaultModel
	}
	if !strings.Contains(model, "/") {
		model = "openai/" + model
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = openRouterURL
	}
	return NewOpenAIProvider(OpenAIConfig{APIKey: cfg.APIKey, Model: model, BaseURL: baseURL})
}
