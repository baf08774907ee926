package llm

import "context"

type useCaseKey struct{}

// WithUseCase labels every completion call made with ctx.
func WithUseCase(ctx context.Context, useCase string) context.Context {
	return context.WithValue(ctx, useCaseKey{}, useCase)
}

// UseCaseFrom returns the label set by WithUseCase, or "unlabeled".
func UseCaseFrom(ctx context.Context) string {
	if v, ok := ctx.Value(useCaseKey{}).(string); ok && v != "" {
		return v
	}
	return "unlabeled"
}
