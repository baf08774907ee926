package llm

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
)

// NewProvider creates a Provider from configuration, wrapped with the
// logging decorator.
func NewProvider(ctx context.Context, cfg Config, log logrus.FieldLogger) (Provider, error) {
	var base Provider
	var err error

	switch cfg.Provider {
	case "openai":
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case "openrouter":
		base, err = NewOpenRouterProvider(cfg.OpenRouter)
	case "anthropic":
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case "gemini":
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case "mock":
		base = NewOfflineProvider()
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	return WithLogging(base, log), nil
}

// NewProviderOrUnconfigured behaves like NewProvider, except that a provider
// that cannot be built because of a missing credential is replaced by one
// whose every call fails with ErrAuthentication. The returned error is the
// construction failure, for the caller to report.
func NewProviderOrUnconfigured(ctx context.Context, cfg Config, log logrus.FieldLogger) (Provider, error) {
	var authErr *ErrAuthentication
	if err := cfg.Validate(); errors.As(err, &authErr) {
		return WithLogging(&unconfiguredProvider{cause: err, model: cfg.modelFor()}, log), err
	} else if err != nil {
		return nil, err
	}

	p, err := NewProvider(ctx, cfg, log)
	if err == nil {
		return p, nil
	}
	if !errors.As(err, &authErr) {
		return nil, err
	}
	return WithLogging(&unconfiguredProvider{cause: err, model: cfg.modelFor()}, log), err
}

// unconfiguredProvider stands in for a provider whose credential is missing.
type unconfiguredProvider struct {
	cause error
	model string
}

func (u *unconfiguredProvider) Complete(_ context.Context, _ Request) (*Response, error) {
	var authErr *ErrAuthentication
	if errors.As(u.cause, &authErr) {
		return nil, u.cause
	}
	return nil, &ErrAuthentication{Err: u.cause}
}

func (u *unconfiguredProvider) ModelID() string {
	return u.model
}
