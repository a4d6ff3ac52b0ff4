package model

import (
	"os"
	"path/filepath"
	"runtime"
	"time"
)

// Config is the complete Relevia configuration
type Config struct {
	Judge       JudgeConfig       `json:"judge" yaml:"judge"`
	Scoring     ScoringConfig     `json:"scoring" yaml:"scoring"`
	Cache       CacheConfig       `json:"cache" yaml:"cache"`
	Concurrency ConcurrencyConfig `json:"concurrency" yaml:"concurrency"`
	Output      OutputConfig      `json:"output" yaml:"output"`
}

// JudgeConfig configures the external judge provider
type JudgeConfig struct {
	Provider  string  `json:"provider" yaml:"provider"`     // openai, anthropic, ollama
	Model     string  `json:"model" yaml:"model"`           // Model name (provider-specific)
	APIKey    string  `json:"-" yaml:"-"`                   // Never persisted; from env only
	BaseURL   string  `json:"base_url,omitempty" yaml:"base_url,omitempty"`
	Timeout   int     `json:"timeout" yaml:"timeout"`       // Seconds per judge call
	MaxTokens int     `json:"max_tokens" yaml:"max_tokens"` // Response length cap
	RateLimit float64 `json:"rate_limit" yaml:"rate_limit"` // Judge calls per second, 0 disables throttling
	RateBurst int     `json:"rate_burst" yaml:"rate_burst"`
}

// ScoringConfig configures score interpretation
type ScoringConfig struct {
	Threshold float64 `json:"threshold" yaml:"threshold"` // Minimum score to pass
}

// CacheConfig configures judge response caching
type CacheConfig struct {
	Enabled   bool          `json:"enabled" yaml:"enabled"`
	Dir       string        `json:"dir" yaml:"dir"` // Disk cache directory
	MemoryTTL time.Duration `json:"memory_ttl" yaml:"memory_ttl"`
	DiskTTL   time.Duration `json:"disk_ttl" yaml:"disk_ttl"`
}

// ConcurrencyConfig configures batch evaluation
type ConcurrencyConfig struct {
	Workers int `json:"workers" yaml:"workers"` // Concurrent evaluations in batch mode
}

// OutputConfig configures report rendering
type OutputConfig struct {
	Verbose       bool `json:"verbose" yaml:"verbose"`
	IncludeFooter bool `json:"include_footer" yaml:"include_footer"` // Footer in Markdown reports
}

// DefaultConfig returns sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Judge: JudgeConfig{
			Provider:  "openai",
			Model:     "",
			Timeout:   30,
			MaxTokens: 1000,
			RateLimit: 2,
			RateBurst: 4,
		},
		Scoring: ScoringConfig{
			Threshold: 0.5,
		},
		Cache: CacheConfig{
			Enabled:   true,
			Dir:       defaultCacheDir(),
			MemoryTTL: 30 * time.Minute,
			DiskTTL:   24 * time.Hour,
		},
		Concurrency: ConcurrencyConfig{
			Workers: runtime.NumCPU(),
		},
		Output: OutputConfig{
			IncludeFooter: true,
		},
	}
}

// defaultCacheDir returns ~/.relevia/cache, falling back to a temp dir
// when the home directory cannot be resolved
func defaultCacheDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "relevia-cache")
	}
	return filepath.Join(home, ".relevia", "cache")
}
