package llm

import "fmt"

// Config holds all LLM provider configuration. It is built once at startup
// and passed to NewProvider; nothing in this package reads the environment.
type Config struct {
	// Provider selects which LLM provider to use.
	// Values: "openai", "openrouter", "anthropic", "gemini", "mock"
	Provider string

	OpenAI     OpenAIConfig
	OpenRouter OpenRouterConfig
	Anthropic  AnthropicConfig
	Gemini     GeminiConfig
}

// OpenAIConfig holds OpenAI-specific configuration.
type OpenAIConfig struct {
	APIKey  string
	Model   string // Default: "gpt-4"
	BaseURL string // Optional. Override for compatible APIs.
}

// OpenRouterConfig holds OpenRouter-specific configuration.
type OpenRouterConfig struct {
	APIKey  string
	Model   string // Default: "openai/gpt-4"
	BaseURL string // Default: the public OpenRouter endpoint
}

// AnthropicConfig holds Anthropic-specific configuration.
type AnthropicConfig struct {
	APIKey string
	Model  string // Default: "claude-haiku"
}

// GeminiConfig holds Gemini-specific configuration.
type GeminiConfig struct {
	APIKey string
	Model  string // Default: "gemini-flash"
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Provider: "openai",
		OpenAI: OpenAIConfig{
			Model: DefaultModel,
		},
		OpenRouter: OpenRouterConfig{
			Model: "openai/" + DefaultModel,
		},
		Anthropic: AnthropicConfig{
			Model: "claude-haiku",
		},
		Gemini: GeminiConfig{
			Model: "gemini-flash",
		},
	}
}

// WithModel returns a copy of c with the model of the selected provider
// replaced. An empty model leaves c unchanged.
func (c Config) WithModel(model string) Config {
	if model == "" {
		return c
	}
	switch c.Provider {
	case "openai":
		c.OpenAI.Model = model
	case "openrouter":
		c.OpenRouter.Model = model
	case "anthropic":
		c.Anthropic.Model = model
	case "gemini":
		c.Gemini.Model = model
	}
	return c
}

// modelFor returns the model configured for the selected provider.
func (c Config) modelFor() string {
	switch c.Provider {
	case "openai":
		return c.OpenAI.Model
	case "openrouter":
		return c.OpenRouter.Model
	case "anthropic":
		return c.Anthropic.Model
	case "gemini":
		return c.Gemini.Model
	}
	return c.Provider
}

// Validate checks that the selected provider is known and has its API key
// set. A missing key is reported as ErrAuthentication naming the variable
// to set.
func (c Config) Validate() error {
	var key, name string
	switch c.Provider {
	case "openai":
		key, name = c.OpenAI.APIKey, "OPENAI_API_KEY"
	case "openrouter":
		key, name = c.OpenRouter.APIKey, "OPENROUTER_API_KEY"
	case "anthropic":
		key, name = c.Anthropic.APIKey, "ANTHROPIC_API_KEY"
	case "gemini":
		key, name = c.Gemini.APIKey, "GEMINI_API_KEY"
	case "mock":
		return nil
	default:
		return fmt.Errorf("unknown LLM provider: %q", c.Provider)
	}
	if key == "" {
		return &ErrAuthentication{Err: fmt.Errorf("%s is required for the %s provider", name, c.Provider)}
	}
	return nil
}
