package judge

import (
	"fmt"
	"strings"

	"github.com/relevia/relevia/internal/model"
)

// NewProvider creates a new judge provider based on configuration.
// Unlike an optional summarizer, a judge is mandatory for this metric:
// an empty provider name is an error.
func NewProvider(config Config) (Provider, error) {
	provider := strings.ToLower(config.Provider)

	switch provider {
	case "openai":
		return NewOpenAIProvider(config)

	case "anthropic", "claude":
		return NewAnthropicProvider(config)

	case "ollama":
		return NewOllamaProvider(config)

	case "":
		return nil, fmt.Errorf("judge provider is required (supported: openai, anthropic, ollama)")

	default:
		return nil, fmt.Errorf("unknown judge provider: %s (supported: openai, anthropic, ollama)", config.Provider)
	}
}

// ConfigFromModel converts model.JudgeConfig to judge.Config
func ConfigFromModel(modelConfig model.JudgeConfig) Config {
	return Config{
		Provider:  modelConfig.Provider,
		Model:     modelConfig.Model,
		APIKey:    modelConfig.APIKey,
		BaseURL:   modelConfig.BaseURL,
		Timeout:   modelConfig.Timeout,
		MaxTokens: modelConfig.MaxTokens,
	}
}
