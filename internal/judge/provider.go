// Package judge abstracts the external judgment capability: a language
// model that takes an instructional prompt and returns free-form text.
// The pipeline stages depend only on the Provider interface so they can
// be tested with canned responses.
package judge

import "context"

// Provider defines the interface for judge providers
type Provider interface {
	// Name returns the provider name
	Name() string

	// Complete sends one prompt to the judge and returns its raw text response
	Complete(ctx context.Context, req CompletionRequest) (*CompletionResponse, error)

	// IsAvailable checks if the provider is properly configured and accessible
	IsAvailable(ctx context.Context) bool
}

// CompletionRequest contains the input for one judgment call
type CompletionRequest struct {
	// Prompt is the full instructional prompt text
	Prompt string

	// Model is the specific model to use (provider-specific, overrides config)
	Model string

	// MaxTokens limits the response length
	MaxTokens int
}

// CompletionResponse contains the judge's raw output
type CompletionResponse struct {
	// Text is the raw response text, stripped of leading/trailing whitespace
	Text string

	// Model is the model that generated the response
	Model string

	// TokensUsed tracks token consumption
	TokensUsed int
}

// Config holds judge provider configuration
type Config struct {
	// Provider name: "openai", "anthropic", "ollama"
	Provider string

	// Model name (provider-specific)
	Model string

	// APIKey for OpenAI/Anthropic
	APIKey string

	// BaseURL for custom endpoints (e.g., Ollama)
	BaseURL string

	// Timeout for API requests
	Timeout int // seconds

	// MaxTokens for response generation
	MaxTokens int
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Provider:  "openai",
		Timeout:   30,
		MaxTokens: 1000,
	}
}

// systemPrompt frames every judgment call. Judges are told to answer in
// JSON by the prompt itself; the system message only sets the role.
const systemPrompt = "You are a careful evaluation judge. Follow the instructions exactly and answer only in the requested JSON format."
