package cache

import (
	"strings"
	"testing"
	"time"
)

func TestKey_Deterministic(t *testing.T) {
	k1 := Key("openai", "gpt-4o-mini", "prompt text")
	k2 := Key("openai", "gpt-4o-mini", "prompt text")

	if k1 != k2 {
		t.Errorf("Expected identical keys, got %s and %s", k1, k2)
	}
	if !strings.HasPrefix(k1, "relevia:v1:") {
		t.Errorf("Expected versioned key prefix, got %s", k1)
	}
}

func TestKey_DistinguishesProviderAndModel(t *testing.T) {
	base := Key("openai", "gpt-4o-mini", "prompt")

	if Key("anthropic", "gpt-4o-mini", "prompt") == base {
		t.Error("Expected different providers to produce different keys")
	}
	if Key("openai", "gpt-4o", "prompt") == base {
		t.Error("Expected different models to produce different keys")
	}
	if Key("openai", "gpt-4o-mini", "other prompt") == base {
		t.Error("Expected different prompts to produce different keys")
	}
}

func TestMemoryCache_SetGet(t *testing.T) {
	c := NewMemoryCache(time.Minute, time.Minute)

	if err := c.Set("k", []byte("v"), time.Minute); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	val, found := c.Get("k")
	if !found {
		t.Fatal("Expected key to be found")
	}
	if string(val) != "v" {
		t.Errorf("Expected v, got %s", val)
	}
}

func TestMemoryCache_Expiry(t *testing.T) {
	c := NewMemoryCache(time.Minute, time.Minute)

	if err := c.Set("k", []byte("v"), 10*time.Millisecond); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	time.Sleep(20 * time.Millisecond)

	if _, found := c.Get("k"); found {
		t.Error("Expected key to have expired")
	}
}

func TestDiskCache_SetGetDelete(t *testing.T) {
	dir := t.TempDir()
	c := NewDiskCache(dir, time.Minute)

	key := Key("openai", "gpt-4o-mini", "prompt")
	if err := c.Set(key, []byte("response"), time.Minute); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	val, found := c.Get(key)
	if !found {
		t.Fatal("Expected key to be found")
	}
	if string(val) != "response" {
		t.Errorf("Expected response, got %s", val)
	}

	if err := c.Delete(key); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if _, found := c.Get(key); found {
		t.Error("Expected key to be gone after delete")
	}
}

func TestDiskCache_Expiry(t *testing.T) {
	dir := t.TempDir()
	c := NewDiskCache(dir, time.Minute)

	if err := c.Set("k", []byte("v"), -time.Second); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if _, found := c.Get("k"); found {
		t.Error("Expected expired entry to miss")
	}
}

func TestLayeredCache_PromotesDiskHits(t *testing.T) {
	dir := t.TempDir()
	layered := NewLayeredCache(time.Minute, dir, time.Minute)

	// Seed disk only
	disk := NewDiskCache(dir, time.Minute)
	if err := disk.Set("k", []byte("v"), time.Minute); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	val, found := layered.Get("k")
	if !found {
		t.Fatal("Expected layered cache to fall through to disk")
	}
	if string(val) != "v" {
		t.Errorf("Expected v, got %s", val)
	}

	// Now present in memory as well
	if _, found := layered.memory.Get("k"); !found {
		t.Error("Expected disk hit to be promoted to memory")
	}
}

func TestLayeredCache_SetWritesBothLayers(t *testing.T) {
	dir := t.TempDir()
	layered := NewLayeredCache(time.Minute, dir, time.Minute)

	if err := layered.Set("k", []byte("v"), time.Minute); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if _, found := layered.memory.Get("k"); !found {
		t.Error("Expected value in memory layer")
	}
	if _, found := layered.disk.Get("k"); !found {
		t.Error("Expected value in disk layer")
	}
}
