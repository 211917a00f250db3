package llm

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/synthdata-io/synth-engine/pkg/config"
)

// NewFromConfig builds the configured provider client. The "openai" provider
// covers any OpenAI-compatible endpoint, including locally hosted models.
func NewFromConfig(cfg *config.Config, logger *zap.Logger) (TextGenerator, error) {
	clientCfg := &Config{
		Endpoint:  cfg.LLM.Endpoint,
		Model:     cfg.LLM.Model,
		APIKey:    cfg.LLM.APIKey,
		MaxTokens: cfg.Generation.MaxTokens,
	}

	switch cfg.LLM.Provider {
	case "openai":
		return NewClient(clientCfg, logger)
	case "anthropic":
		return NewAnthropicClient(clientCfg, logger)
	}
	return nil, fmt.Errorf("unsupported llm provider %q", cfg.LLM.Provider)
}
