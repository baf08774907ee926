package llm

import (
	"context"
	"sync"
)

// MockResponse is one scripted outcome for MockProvider. A non-nil Err is
// returned instead of the text.
type MockResponse struct {
	Text  string
	Usage Usage
	Err   error
}

// OfflineText is what the offline provider answers every request with.
const OfflineText = "This answer comes from the offline mock provider. Pick another provider with --provider or MATHPLANNER_LLM_PROVIDER to get generated content."

// MockProvider replays scripted responses in order and records every
// request it receives. Once the script runs out each call fails with
// ErrProviderUnavailable, unless a fallback text is set.
type MockProvider struct {
	mu       sync.Mutex
	script   []MockResponse
	fallback string
	requests []Request
}

// NewMockProvider creates a MockProvider that replays script.
func NewMockProvider(script ...MockResponse) *MockProvider {
	return &MockProvider{script: script}
}

// NewOfflineProvider creates a MockProvider that answers every request with
// OfflineText. It backs `--provider mock`.
func NewOfflineProvider() *MockProvider {
	return &MockProvider{fallback: OfflineText}
}

func (m *MockProvider) Complete(_ context.Context, req Request) (*Response, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.requests = append(m.requests, req)
	if len(m.script) == 0 {
		if m.fallback != "" {
			return &Response{Text: m.fallback, Model: "mock"}, nil
		}
		return nil, &ErrProviderUnavailable{}
	}

	next := m.script[0]
	m.script = m.script[1:]
	if next.Err != nil {
		return nil, next.Err
	}
	return &Response{Text: next.Text, Model: "mock", Usage: next.Usage}, nil
}

func (m *MockProvider) ModelID() string {
	return "mock"
}

// Requests returns a copy of every request received so far.
func (m *MockProvider) Requests() []Request {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Request(nil), m.requests...)
}

// CallCount returns the number of Complete calls made.
func (m *MockProvider) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.requests)
}

// LastCall returns the most recent request, or false if none was made.
func (m *MockProvider) LastCall() (Request, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.requests) == 0 {
		return Request{}, false
	}
	return m.requests[len(m.requests)-1], true
}
