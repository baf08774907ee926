package llm

import (
	"fmt"
	"net/http"
)

// ErrAuthentication indicates the configured credential was rejected by the
// provider (401/403) or no credential was configured at all.
type ErrAuthentication struct {
	Err error
}

func (e *ErrAuthentication) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("authentication failed: %v", e.Err)
	}
	return "authentication failed"
}

func (e *ErrAuthentication) Unwrap() error { return e.Err }

// ErrRateLimit indicates the provider throttled the call (429). Calls are
// not retried, so it surfaces as a service failure.
type ErrRateLimit struct {
	Err error
}

func (e *ErrRateLimit) Error() string {
	return fmt.Sprintf("rate limited: %v", e.Err)
}

func (e *ErrRateLimit) Unwrap() error { return e.Err }

// ErrInvalidResponse indicates the provider answered but the answer carried
// no usable text (no choices, empty content).
type ErrInvalidResponse struct {
	Err error
}

func (e *ErrInvalidResponse) Error() string {
	return fmt.Sprintf("invalid completion response: %v", e.Err)
}

func (e *ErrInvalidResponse) Unwrap() error { return e.Err }

// ErrProviderUnavailable indicates the provider is down or unreachable.
type ErrProviderUnavailable struct {
	Err error
}

func (e *ErrProviderUnavailable) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("LLM provider unavailable: %v", e.Err)
	}
	return "LLM provider unavailable"
}

func (e *ErrProviderUnavailable) Unwrap() error { return e.Err }

// classifyStatus wraps err according to the HTTP status a provider SDK
// reported alongside it.
func classifyStatus(status int, err error) error {
	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return &ErrAuthentication{Err: err}
	case status == http.StatusTooManyRequests:
		return &ErrRateLimit{Err: err}
	default:
		return &ErrProviderUnavailable{Err: err}
	}
}
