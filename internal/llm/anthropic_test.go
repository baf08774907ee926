package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/anthropics/anthropic-sdk-go/option"
)

func newTestAnthropicProvider(t *testing.T, handler http.HandlerFunc) *AnthropicProvider {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	p, err := NewAnthropicProvider(
		AnthropicConfig{APIKey: "test-key", Model: "claude-sonnet"},
		option.WithBaseURL(server.URL),
	)
	if err != nil {
		t.Fatalf("NewAnthropicProvider: %v", err)
	}
	return p
}

func writeAnthropicError(w http.ResponseWriter, status int, typ string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]any{
		"type": "error",
		"error": map[string]any{
			"type":    typ,
			"message": typ,
		},
	})
}

func TestAnthropicProvider_HappyPath(t *testing.T) {
	var got map[string]any
	handler := func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&got)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"id":   "msg_test",
			"type": "message",
			"role": "assistant",
			"content": []map[string]any{
				{"type": "text", "text": "Fractions are parts of a whole."},
			},
			"model":       "claude-sonnet-4-20250514",
			"stop_reason": "end_turn",
			"usage": map[string]any{
				"input_tokens":  50,
				"output_tokens": 30,
			},
		})
	}

	p := newTestAnthropicProvider(t, handler)
	resp, err := p.Complete(context.Background(), NewRequest("You are a knowledgeable math tutor.", "Explain fractions."))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Text != "Fractions are parts of a whole." {
		t.Fatalf("unexpected text %q", resp.Text)
	}
	if resp.Usage.Total() != 80 {
		t.Fatalf("expected 80 total tokens, got %d", resp.Usage.Total())
	}
	if resp.Truncated {
		t.Fatal("expected a complete response")
	}
	if got["model"] != "claude-sonnet-4-20250514" {
		t.Fatalf("expected resolved model in request, got %v", got["model"])
	}
	if mt, _ := got["max_tokens"].(float64); int(mt) != anthropicMaxTokens {
		t.Fatalf("expected default max_tokens %d, got %v", anthropicMaxTokens, got["max_tokens"])
	}
}

func TestAnthropicProvider_ErrorMapping(t *testing.T) {
	tests := []struct {
		name   string
		status int
		typ    string
		check  func(error) bool
	}{
		{"unauthorized", http.StatusUnauthorized, "authentication_error", func(err error) bool {
			var e *ErrAuthentication
			return errors.As(err, &e)
		}},
		{"forbidden", http.StatusForbidden, "permission_error", func(err error) bool {
			var e *ErrAuthentication
			return errors.As(err, &e)
		}},
		{"rate limit", http.StatusTooManyRequests, "rate_limit_error", func(err error) bool {
			var e *ErrRateLimit
			return errors.As(err, &e)
		}},
		{"server error", http.StatusInternalServerError, "api_error", func(err error) bool {
			var e *ErrProviderUnavailable
			return errors.As(err, &e)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var hits atomic.Int32
			p := newTestAnthropicProvider(t, func(w http.ResponseWriter, r *http.Request) {
				hits.Add(1)
				writeAnthropicError(w, tt.status, tt.typ)
			})

			_, err := p.Complete(context.Background(), NewRequest("", "test"))
			if err == nil {
				t.Fatal("expected error")
			}
			if !tt.check(err) {
				t.Fatalf("unexpected error type: %T (%v)", err, err)
			}
			if hits.Load() != 1 {
				t.Fatalf("expected exactly one request, got %d", hits.Load())
			}
		})
	}
}

func TestAnthropicProvider_ModelID(t *testing.T) {
	p := &AnthropicProvider{model: "claude-sonnet-4-20250514"}
	if p.ModelID() != "claude-sonnet-4-20250514" {
		t.Fatalf("expected 'claude-sonnet-4-20250514', got %q", p.ModelID())
	}
}

func TestAnthropicModelMapping(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"claude-sonnet", "claude-sonnet-4-20250514"},
		{"claude-haiku", "claude-haiku-4-5-20251001"},
		{"claude-sonnet-4-20250514", "claude-sonnet-4-20250514"}, // Pass-through
	}
	for _, tt := range tests {
		got := expandAlias(tt.input, anthropicAliases)
		if got != tt.expected {
			t.Errorf("expandAlias(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}
