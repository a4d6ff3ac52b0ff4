package judge

import (
	"testing"

	"github.com/relevia/relevia/internal/model"
)

func TestNewProvider_OpenAI(t *testing.T) {
	p, err := NewProvider(Config{Provider: "openai", APIKey: "test-key"})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if p.Name() != "openai" {
		t.Errorf("Expected openai, got %s", p.Name())
	}
}

func TestNewProvider_AnthropicAliases(t *testing.T) {
	for _, name := range []string{"anthropic", "claude", "Anthropic"} {
		p, err := NewProvider(Config{Provider: name, APIKey: "test-key"})
		if err != nil {
			t.Fatalf("Expected no error for %q, got %v", name, err)
		}
		if p.Name() != "anthropic" {
			t.Errorf("Expected anthropic for %q, got %s", name, p.Name())
		}
	}
}

func TestNewProvider_Ollama(t *testing.T) {
	p, err := NewProvider(Config{Provider: "ollama"})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if p.Name() != "ollama" {
		t.Errorf("Expected ollama, got %s", p.Name())
	}
}

func TestNewProvider_EmptyProvider(t *testing.T) {
	if _, err := NewProvider(Config{}); err == nil {
		t.Error("Expected error for empty provider name")
	}
}

func TestNewProvider_UnknownProvider(t *testing.T) {
	if _, err := NewProvider(Config{Provider: "skynet"}); err == nil {
		t.Error("Expected error for unknown provider")
	}
}

func TestConfigFromModel(t *testing.T) {
	mc := model.JudgeConfig{
		Provider:  "openai",
		Model:     "gpt-4o-mini",
		APIKey:    "key",
		BaseURL:   "http://example.com",
		Timeout:   15,
		MaxTokens: 500,
	}

	c := ConfigFromModel(mc)
	if c.Provider != mc.Provider || c.Model != mc.Model || c.APIKey != mc.APIKey ||
		c.BaseURL != mc.BaseURL || c.Timeout != mc.Timeout || c.MaxTokens != mc.MaxTokens {
		t.Errorf("Expected config to mirror model config, got %+v", c)
	}
}
