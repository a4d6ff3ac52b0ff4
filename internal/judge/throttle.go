package judge

import (
	"context"

	"golang.org/x/time/rate"
)

// ThrottledProvider wraps a Provider with a rate limiter on judgment
// calls, keeping batch runs inside provider API limits
type ThrottledProvider struct {
	inner   Provider
	limiter *rate.Limiter
}

// NewThrottledProvider creates a rate-limited wrapper around a provider.
// callsPerSecond <= 0 disables throttling.
func NewThrottledProvider(inner Provider, callsPerSecond float64, burst int) *ThrottledProvider {
	var limiter *rate.Limiter
	if callsPerSecond > 0 {
		if burst <= 0 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(callsPerSecond), burst)
	}

	return &ThrottledProvider{
		inner:   inner,
		limiter: limiter,
	}
}

// Name returns the wrapped provider's name
func (p *ThrottledProvider) Name() string {
	return p.inner.Name()
}

// IsAvailable delegates to the wrapped provider without consuming a slot
func (p *ThrottledProvider) IsAvailable(ctx context.Context) bool {
	return p.inner.IsAvailable(ctx)
}

// Complete waits for rate limit clearance, then delegates
func (p *ThrottledProvider) Complete(ctx context.Context, req CompletionRequest) (*CompletionResponse, error) {
	if p.limiter != nil {
		if err := p.limiter.Wait(ctx); err != nil {
			return nil, err
		}
	}
	return p.inner.Complete(ctx, req)
}
