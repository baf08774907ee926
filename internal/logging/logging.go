// Package logging builds the process logger and carries request-scoped
// entries through a context.
package logging

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
)

// Format selects the logrus formatter.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// Options configures New.
type Options struct {
	Level  string
	Format Format
	Output io.Writer
}

// New returns a logger writing to opts.Output. An empty level means info.
func New(opts Options) (*logrus.Logger, error) {
	log := logrus.New()
	if opts.Output != nil {
		log.SetOutput(opts.Output)
	}

	level := logrus.InfoLevel
	if opts.Level != "" {
		lvl, err := logrus.ParseLevel(strings.TrimSpace(opts.Level))
		if err != nil {
			return nil, fmt.Errorf("parse log level: %w", err)
		}
		level = lvl
	}
	log.SetLevel(level)

	switch Format(strings.ToLower(string(opts.Format))) {
	case "", FormatText:
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	case FormatJSON:
		log.SetFormatter(&logrus.JSONFormatter{})
	default:
		return nil, fmt.Errorf("unknown log format %q (want text or json)", opts.Format)
	}
	return log, nil
}

// Discard returns a logger that drops everything.
func Discard() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

type ctxKey struct{}

// WithLogger stores log in ctx.
func WithLogger(ctx context.Context, log logrus.FieldLogger) context.Context {
	return context.WithValue(ctx, ctxKey{}, log)
}

// FromContext returns the logger stored in ctx, or the logrus standard
// logger when there is none.
func FromContext(ctx context.Context) logrus.FieldLogger {
	if log, ok := ctx.Value(ctxKey{}).(logrus.FieldLogger); ok {
		return log
	}
	return logrus.StandardLogger()
}
