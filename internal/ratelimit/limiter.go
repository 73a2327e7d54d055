package ratelimit

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/time/rate"
)

// SourceLimiter hands out one token bucket per upstream source so a burst
// of searches cannot exceed a vendor's quota. Sources without an override
// share the default rate, each in its own bucket.
type SourceLimiter struct {
	mu        sync.Mutex
	buckets   map[string]*rate.Limiter
	overrides map[string]Config
	defaults  Config
}

type Config struct {
	RequestsPerSecond float64
	BurstSize         int
}

func DefaultConfig() Config {
	return Config{
		RequestsPerSecond: 5,
		BurstSize:         10,
	}
}

func (c Config) valid() bool {
	return c.RequestsPerSecond > 0 && c.BurstSize > 0
}

func NewSourceLimiter(config Config) *SourceLimiter {
	if !config.valid() {
		config = DefaultConfig()
	}
	return &SourceLimiter{
		buckets:   make(map[string]*rate.Limiter),
		overrides: make(map[string]Config),
		defaults:  config,
	}
}

func (p *SourceLimiter) Limiter(source string) *rate.Limiter {
	p.mu.Lock()
	defer p.mu.Unlock()

	if bucket, ok := p.buckets[source]; ok {
		return bucket
	}
	cfg := p.configFor(source)
	bucket := rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), cfg.BurstSize)
	p.buckets[source] = bucket
	return bucket
}

// SetLimit gives source its own quota. A bucket already handed out is
// adjusted in place.
func (p *SourceLimiter) SetLimit(source string, config Config) error {
	if !config.valid() {
		return fmt.Errorf("rate limit for %s: requests per second and burst must be positive, got %v/%d",
			source, config.RequestsPerSecond, config.BurstSize)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	p.overrides[source] = config
	if bucket, ok := p.buckets[source]; ok {
		bucket.SetLimit(rate.Limit(config.RequestsPerSecond))
		bucket.SetBurst(config.BurstSize)
	}
	return nil
}

func (p *SourceLimiter) configFor(source string) Config {
	if cfg, ok := p.overrides[source]; ok {
		return cfg
	}
	return p.defaults
}

// Wait blocks until the source may be called or ctx is done. A nil limiter
// never blocks.
func (p *SourceLimiter) Wait(ctx context.Context, source string) error {
	if p == nil {
		return nil
	}
	return p.Limiter(source).Wait(ctx)
}
