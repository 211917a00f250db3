package config

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds all configuration for synth-engine.
// Configuration can come from YAML file (config.yaml) or environment variables.
// Environment variables always override YAML values. Secrets (API keys) must
// only come from environment variables.
type Config struct {
	// Server configuration
	BindAddr string `yaml:"bind_addr" env:"BIND_ADDR" env-default:"127.0.0.1"`
	Port     string `yaml:"port" env:"PORT" env-default:"8080"`
	Env      string `yaml:"env" env:"ENVIRONMENT" env-default:"local"`
	Version  string `yaml:"-"` // Set at load time, not from config

	// Text-generation backend
	LLM LLMConfig `yaml:"llm"`

	// Generation tuning
	Generation GenerationConfig `yaml:"generation"`
}

// LLMConfig selects and configures the text-generation provider.
type LLMConfig struct {
	// Provider is "openai" (any OpenAI-compatible endpoint) or "anthropic".
	Provider string `yaml:"provider" env:"LLM_PROVIDER" env-default:"openai"`

	// Endpoint is the base URL for OpenAI-compatible endpoints. Ignored by
	// the anthropic provider.
	Endpoint string `yaml:"endpoint" env:"LLM_ENDPOINT" env-default:"https://api.openai.com/v1"`

	// Model is the model name passed to the provider.
	Model string `yaml:"model" env:"LLM_MODEL" env-default:"gpt-4o-mini"`

	// APIKey is the provider credential. Secret - not in YAML.
	APIKey string `yaml:"-" env:"LLM_API_KEY"`
}

// GenerationConfig bounds and tunes a synthesis pass.
type GenerationConfig struct {
	// MaxAttempts caps the prompt/extract/validate loop per desired record.
	// On exhaustion the adapter falls back to fake values.
	MaxAttempts int `yaml:"max_attempts" env:"GENERATION_MAX_ATTEMPTS" env-default:"5"`

	// Temperature for generative sampling.
	Temperature float64 `yaml:"temperature" env:"GENERATION_TEMPERATURE" env-default:"0.9"`

	// MaxTokens per generation attempt.
	MaxTokens int `yaml:"max_tokens" env:"GENERATION_MAX_TOKENS" env-default:"512"`

	// Seed makes the fake-value provider deterministic when non-zero.
	Seed uint64 `yaml:"seed" env:"GENERATION_SEED" env-default:"0"`
}

// Load reads configuration from config.yaml with environment variable
// overrides. When no config.yaml exists, environment variables alone are used.
// The version parameter is injected at build time and set on the returned Config.
func Load(version string) (*Config, error) {
	cfg := &Config{
		Version: version,
	}

	if _, err := os.Stat("config.yaml"); err == nil {
		if err := cleanenv.ReadConfig("config.yaml", cfg); err != nil {
			return nil, fmt.Errorf("failed to read config.yaml: %w", err)
		}
	} else {
		if err := cleanenv.ReadEnv(cfg); err != nil {
			return nil, fmt.Errorf("failed to read environment: %w", err)
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	switch c.LLM.Provider {
	case "openai", "anthropic":
	default:
		return fmt.Errorf("invalid llm provider %q (want openai or anthropic)", c.LLM.Provider)
	}
	if c.Generation.MaxAttempts < 1 {
		return fmt.Errorf("generation max_attempts must be at least 1, got %d", c.Generation.MaxAttempts)
	}
	return nil
}
