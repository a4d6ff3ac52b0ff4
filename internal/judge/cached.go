package judge

import (
	"context"
	"encoding/json"
	"time"

	"github.com/relevia/relevia/internal/cache"
)

// CachedProvider wraps a Provider with a response cache so repeated
// evaluations of the same case do not re-issue identical judge calls.
// Keys include the provider and model, so switching judges never serves
// a stale response from a different model.
type CachedProvider struct {
	inner Provider
	cache cache.Cache
	ttl   time.Duration
	model string
}

// NewCachedProvider creates a caching wrapper around a provider. The
// model is the configured default, used for keys when a request does not
// name one, so runs against different models never share entries.
func NewCachedProvider(inner Provider, c cache.Cache, ttl time.Duration, model string) *CachedProvider {
	return &CachedProvider{
		inner: inner,
		cache: c,
		ttl:   ttl,
		model: model,
	}
}

// Name returns the wrapped provider's name
func (p *CachedProvider) Name() string {
	return p.inner.Name()
}

// IsAvailable delegates to the wrapped provider
func (p *CachedProvider) IsAvailable(ctx context.Context) bool {
	return p.inner.IsAvailable(ctx)
}

// Complete serves from cache when possible, otherwise calls the wrapped
// provider and stores the response
func (p *CachedProvider) Complete(ctx context.Context, req CompletionRequest) (*CompletionResponse, error) {
	model := req.Model
	if model == "" {
		model = p.model
	}
	key := cache.Key(p.inner.Name(), model, req.Prompt)

	if data, found := p.cache.Get(key); found {
		var resp CompletionResponse
		if err := json.Unmarshal(data, &resp); err == nil {
			return &resp, nil
		}
		// Corrupt entry: drop it and fall through to a fresh call
		_ = p.cache.Delete(key)
	}

	resp, err := p.inner.Complete(ctx, req)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(resp); err == nil {
		_ = p.cache.Set(key, data, p.ttl)
	}

	return resp, nil
}
