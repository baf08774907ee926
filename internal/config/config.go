// Package config loads process configuration from the environment and an
// optional .env file. It is the only package that reads the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/codingconcepts/env"
	"github.com/joho/godotenv"

	"github.com/abhisek/mathplanner/internal/llm"
	"github.com/abhisek/mathplanner/internal/tutor"
)

// DefaultEnvFile is read when no --env-file is given. Its absence is fine.
const DefaultEnvFile = ".env"

// DefaultAddr is the HTTP listen address.
const DefaultAddr = ":5000"

// environment is the set of variables the process understands.
type environment struct {
	OpenAIAPIKey     string `env:"OPENAI_API_KEY"`
	OpenAIBaseURL    string `env:"MATHPLANNER_OPENAI_BASE_URL"`
	OpenRouterAPIKey string `env:"OPENROUTER_API_KEY"`
	AnthropicAPIKey  string `env:"ANTHROPIC_API_KEY"`
	GeminiAPIKey     string `env:"GEMINI_API_KEY"`
	Provider         string `env:"MATHPLANNER_LLM_PROVIDER"`
	Model            string `env:"MATHPLANNER_MODEL"`
	Addr             string `env:"MATHPLANNER_ADDR"`
	LogLevel         string `env:"MATHPLANNER_LOG_LEVEL"`
	LogFormat        string `env:"MATHPLANNER_LOG_FORMAT"`
}

// Config is everything the commands need to wire the application.
type Config struct {
	LLM       llm.Config
	Tutor     tutor.Config
	Addr      string
	LogLevel  string
	LogFormat string

	// EnvFile is the file that was loaded, empty when none was.
	EnvFile string
}

// Overrides carries command-line flags. Zero values leave the loaded
// configuration untouched.
type Overrides struct {
	Provider  string
	Model     string
	Addr      string
	LogLevel  string
	LogFormat string
	Timeout   time.Duration
}

// Load reads envFile (or DefaultEnvFile when empty) into the process
// environment without overriding variables already set, then binds the
// environment. A missing default file is not an error; a missing explicit
// one is.
func Load(envFile string) (*Config, error) {
	explicit := envFile != ""
	if !explicit {
		envFile = DefaultEnvFile
	}

	loaded := envFile
	if err := godotenv.Load(envFile); err != nil {
		if explicit || !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load env file %s: %w", envFile, err)
		}
		loaded = ""
	}

	e := environment{
		Provider:  "openai",
		Model:     llm.DefaultModel,
		Addr:      DefaultAddr,
		LogLevel:  "info",
		LogFormat: "text",
	}
	if err := env.Set(&e); err != nil {
		return nil, fmt.Errorf("read environment: %w", err)
	}

	lc := llm.DefaultConfig()
	lc.Provider = e.Provider
	lc.OpenAI.APIKey = e.OpenAIAPIKey
	lc.OpenAI.BaseURL = e.OpenAIBaseURL
	lc.OpenRouter.APIKey = e.OpenRouterAPIKey
	lc.Anthropic.APIKey = e.AnthropicAPIKey
	lc.Gemini.APIKey = e.GeminiAPIKey
	if e.Model != llm.DefaultModel {
		lc = lc.WithModel(e.Model)
	}

	return &Config{
		LLM:       lc,
		Tutor:     tutor.DefaultConfig(),
		Addr:      e.Addr,
		LogLevel:  e.LogLevel,
		LogFormat: e.LogFormat,
		EnvFile:   loaded,
	}, nil
}

// Apply layers o on top of c.
func (c *Config) Apply(o Overrides) {
	if o.Provider != "" {
		c.LLM.Provider = o.Provider
	}
	c.LLM = c.LLM.WithModel(o.Model)
	if o.Addr != "" {
		c.Addr = o.Addr
	}
	if o.LogLevel != "" {
		c.LogLevel = o.LogLevel
	}
	if o.LogFormat != "" {
		c.LogFormat = o.LogFormat
	}
	if o.Timeout > 0 {
		c.Tutor.Timeout = o.Timeout
	}
}
