package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/abhisek/mathplanner/internal/config"
	"github.com/abhisek/mathplanner/internal/llm"
	"github.com/abhisek/mathplanner/internal/logging"
	"github.com/abhisek/mathplanner/internal/tutor"
)

// deps is everything a command needs once configuration is resolved.
type deps struct {
	cfg      *config.Config
	log      *logrus.Logger
	provider llm.Provider
	tutor    *tutor.Service
	// unavailable is set when the provider has no credential. Every
	// completion then fails with an authentication error.
	unavailable error
	closers     []io.Closer
}

func (d *deps) Close() {
	for _, c := range d.closers {
		_ = c.Close()
	}
}

// buildDeps loads configuration, applies flags and wires the tutor. Logs go
// to --log-file when given and to defaultOut otherwise.
func buildDeps(cmd *cobra.Command, defaultOut io.Writer) (*deps, error) {
	flags := cmd.Flags()
	envFile, _ := flags.GetString("env-file")

	cfg, err := config.Load(envFile)
	if err != nil {
		return nil, err
	}

	var o config.Overrides
	o.Provider, _ = flags.GetString("provider")
	o.Model, _ = flags.GetString("model")
	o.LogLevel, _ = flags.GetString("log-level")
	o.LogFormat, _ = flags.GetString("log-format")
	o.Timeout, _ = flags.GetDuration("timeout")
	if flags.Lookup("addr") != nil {
		o.Addr, _ = flags.GetString("addr")
	}
	cfg.Apply(o)

	d := &deps{cfg: cfg}

	out := defaultOut
	if path, _ := flags.GetString("log-file"); path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		d.closers = append(d.closers, f)
		out = f
	}

	d.log, err = logging.New(logging.Options{
		Level:  cfg.LogLevel,
		Format: logging.Format(cfg.LogFormat),
		Output: out,
	})
	if err != nil {
		d.Close()
		return nil, err
	}
	if cfg.EnvFile != "" {
		d.log.WithField("path", cfg.EnvFile).Debug("loaded env file")
	}

	d.provider, err = llm.NewProviderOrUnconfigured(cmd.Context(), cfg.LLM, d.log)
	if err != nil {
		if d.provider == nil {
			d.Close()
			return nil, err
		}
		d.unavailable = err
		d.log.WithError(err).WithField("provider", cfg.LLM.Provider).
			Warn("completion provider not configured, every request will fail")
	}

	d.tutor = tutor.NewService(d.provider, cfg.Tutor, d.log)
	d.log.WithFields(logrus.Fields{
		"provider": cfg.LLM.Provider,
		"model":    d.provider.ModelID(),
	}).Debug("tutor ready")
	return d, nil
}
