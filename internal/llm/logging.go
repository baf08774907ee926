package llm

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// loggedProvider records one log entry per completion call.
type loggedProvider struct {
	next Provider
	log  logrus.FieldLogger
}

// WithLogging wraps p so that every call is logged to log with its use
// case label, latency, token usage and estimated cost.
func WithLogging(p Provider, log logrus.FieldLogger) Provider {
	return &loggedProvider{next: p, log: log}
}

func (l *loggedProvider) Complete(ctx context.Context, req Request) (*Response, error) {
	entry := l.log.WithFields(logrus.Fields{
		"call_id":      uuid.NewString(),
		"use_case":     UseCaseFrom(ctx),
		"model":        l.next.ModelID(),
		"prompt_chars": len(req.Prompt),
	})

	start := time.Now()
	resp, err := l.next.Complete(ctx, req)
	entry = entry.WithField("latency_ms", time.Since(start).Milliseconds())

	if err != nil {
		entry.WithError(err).Warn("completion call failed")
		return nil, err
	}

	model := l.next.ModelID()
	if resp.Model != "" {
		model = resp.Model
	}
	entry = entry.WithFields(logrus.Fields{
		"model":         model,
		"input_tokens":  resp.Usage.InputTokens,
		"output_tokens": resp.Usage.OutputTokens,
		"truncated":     resp.Truncated,
	})
	if price, ok := LookupPrice(model); ok {
		entry = entry.WithField("cost_usd", price.Cost(resp.Usage))
	}
	entry.Info("completion call finished")
	return resp, nil
}

func (l *loggedProvider) ModelID() string {
	return l.next.ModelID()
}
