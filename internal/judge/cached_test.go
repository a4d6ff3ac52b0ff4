package judge

import (
	"context"
	"testing"
	"time"

	"github.com/relevia/relevia/internal/cache"
)

// countingProvider counts Complete calls and returns a fixed response
type countingProvider struct {
	calls int
	text  string
}

func (p *countingProvider) Name() string {
	return "counting"
}

func (p *countingProvider) IsAvailable(ctx context.Context) bool {
	return true
}

func (p *countingProvider) Complete(ctx context.Context, req CompletionRequest) (*CompletionResponse, error) {
	p.calls++
	return &CompletionResponse{Text: p.text, Model: "m"}, nil
}

func TestCachedProvider_ServesRepeatsFromCache(t *testing.T) {
	inner := &countingProvider{text: `{"statements": []}`}
	cached := NewCachedProvider(inner, cache.NewMemoryCache(time.Minute, time.Minute), time.Minute, "")

	req := CompletionRequest{Prompt: "same prompt"}

	first, err := cached.Complete(context.Background(), req)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	second, err := cached.Complete(context.Background(), req)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if inner.calls != 1 {
		t.Errorf("Expected 1 inner call, got %d", inner.calls)
	}
	if first.Text != second.Text {
		t.Errorf("Expected identical responses, got %q and %q", first.Text, second.Text)
	}
}

func TestCachedProvider_DistinctPromptsMiss(t *testing.T) {
	inner := &countingProvider{text: "resp"}
	cached := NewCachedProvider(inner, cache.NewMemoryCache(time.Minute, time.Minute), time.Minute, "")

	if _, err := cached.Complete(context.Background(), CompletionRequest{Prompt: "one"}); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if _, err := cached.Complete(context.Background(), CompletionRequest{Prompt: "two"}); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if inner.calls != 2 {
		t.Errorf("Expected 2 inner calls for distinct prompts, got %d", inner.calls)
	}
}

func TestCachedProvider_RecoversFromCorruptEntry(t *testing.T) {
	inner := &countingProvider{text: "resp"}
	mem := cache.NewMemoryCache(time.Minute, time.Minute)
	cached := NewCachedProvider(inner, mem, time.Minute, "")

	req := CompletionRequest{Prompt: "p"}
	key := cache.Key("counting", "", "p")
	if err := mem.Set(key, []byte("not json"), time.Minute); err != nil {
		t.Fatalf("seed cache: %v", err)
	}

	resp, err := cached.Complete(context.Background(), req)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if resp.Text != "resp" {
		t.Errorf("Expected fresh response, got %q", resp.Text)
	}
	if inner.calls != 1 {
		t.Errorf("Expected corrupt entry to trigger 1 fresh call, got %d", inner.calls)
	}
}

func TestCachedProvider_DistinctModelsMiss(t *testing.T) {
	inner := &countingProvider{text: "resp"}
	mem := cache.NewMemoryCache(time.Minute, time.Minute)

	first := NewCachedProvider(inner, mem, time.Minute, "model-a")
	second := NewCachedProvider(inner, mem, time.Minute, "model-b")

	if _, err := first.Complete(context.Background(), CompletionRequest{Prompt: "p"}); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if _, err := second.Complete(context.Background(), CompletionRequest{Prompt: "p"}); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if inner.calls != 2 {
		t.Errorf("Expected 2 inner calls for distinct models, got %d", inner.calls)
	}
}
