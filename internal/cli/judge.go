package cli

import (
	"fmt"
	"os"

	"github.com/relevia/relevia/internal/cache"
	"github.com/relevia/relevia/internal/judge"
	"github.com/relevia/relevia/internal/model"
)

// resolveAPIKey fills cfg.Judge.APIKey from the provider's conventional
// environment variable
func resolveAPIKey(cfg *model.Config) error {
	switch cfg.Judge.Provider {
	case "openai":
		cfg.Judge.APIKey = os.Getenv("OPENAI_API_KEY")
		if cfg.Judge.APIKey == "" {
			return fmt.Errorf("OPENAI_API_KEY environment variable not set")
		}
	case "anthropic", "claude":
		cfg.Judge.APIKey = os.Getenv("ANTHROPIC_API_KEY")
		if cfg.Judge.APIKey == "" {
			return fmt.Errorf("ANTHROPIC_API_KEY environment variable not set")
		}
	case "ollama":
		// Ollama doesn't need an API key
		if baseURL := os.Getenv("OLLAMA_BASE_URL"); baseURL != "" && cfg.Judge.BaseURL == "" {
			cfg.Judge.BaseURL = baseURL
		}
	}
	return nil
}

// buildProvider assembles the judge stack: provider, rate limiter, then
// response cache. The cache sits outermost so repeated prompts never
// consume a rate slot.
func buildProvider(cfg *model.Config) (judge.Provider, error) {
	if err := resolveAPIKey(cfg); err != nil {
		return nil, err
	}

	provider, err := judge.NewProvider(judge.ConfigFromModel(cfg.Judge))
	if err != nil {
		return nil, err
	}

	var stacked judge.Provider = provider
	if cfg.Judge.RateLimit > 0 {
		stacked = judge.NewThrottledProvider(stacked, cfg.Judge.RateLimit, cfg.Judge.RateBurst)
	}
	if cfg.Cache.Enabled {
		layered := cache.NewLayeredCache(cfg.Cache.MemoryTTL, cfg.Cache.Dir, cfg.Cache.DiskTTL)
		stacked = judge.NewCachedProvider(stacked, layered, cfg.Cache.DiskTTL, cfg.Judge.Model)
	}

	return stacked, nil
}
