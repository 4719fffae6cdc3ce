// Package ratelimit provides per-domain politeness delays backed by token
// bucket limiters.
package ratelimit

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/lookuply/webcrawler/internal/metrics"
)

// Limiter manages one token bucket per domain key. Domains unseen before
// get the default rate derived from the configured per-domain delay.
type Limiter struct {
	mu          sync.Mutex
	limiters    map[string]*rate.Limiter
	defaultRate rate.Limit
	burst       int
}

// New creates a Limiter that spaces requests to the same domain at least
// delay apart. A zero or negative delay disables throttling.
func New(delay time.Duration) *Limiter {
	r := rate.Inf
	if delay > 0 {
		r = rate.Every(delay)
	}
	return &Limiter{
		limiters:    make(map[string]*rate.Limiter),
		defaultRate: r,
		burst:       1,
	}
}

// Wait blocks until the domain's bucket has a token, respecting ctx.
func (l *Limiter) Wait(ctx context.Context, domain string) error {
	if domain == "" {
		domain = "unknown"
	}
	l.mu.Lock()
	limiter, exists := l.limiters[domain]
	if !exists {
		limiter = rate.NewLimiter(l.defaultRate, l.burst)
		l.limiters[domain] = limiter
	}
	l.mu.Unlock()

	start := time.Now()
	if err := limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limit wait: %w", err)
	}
	if waited := time.Since(start); waited > time.Millisecond {
		metrics.ObserveRateLimitDelay(domain, waited)
	}
	return nil
}
