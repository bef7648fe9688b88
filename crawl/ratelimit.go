package crawl

import (
	"context"
	"sync"

	"github.com/skillpack/skillpack"
	"golang.org/x/time/rate"
)

var _ skillpack.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter provides per-domain rate limiting using token buckets.
// Each domain gets its own limiter, so requests to different domains can
// proceed concurrently while the minimum delay within a domain is enforced.
type DomainLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	rps      float64
}

// NewDomainLimiter creates a DomainLimiter enforcing a minimum of
// delaySeconds between requests to the same domain. A zero or negative delay
// disables limiting.
func NewDomainLimiter(delaySeconds float64) *DomainLimiter {
	rps := 0.0
	if delaySeconds > 0 {
		rps = 1 / delaySeconds
	}
	return &DomainLimiter{
		limiters: make(map[string]*rate.Limiter),
		rps:      rps,
	}
}

// Wait blocks until the rate limit allows a request to the domain.
// Returns an error if the context is canceled before the wait completes.
func (d *DomainLimiter) Wait(ctx context.Context, domain string) error {
	if d.rps == 0 {
		return ctx.Err()
	}

	d.mu.Lock()
	limiter, ok := d.limiters[domain]
	if !ok {
		// Burst of 1: no bursting allowed.
		limiter = rate.NewLimiter(rate.Limit(d.rps), 1)
		d.limiters[domain] = limiter
	}
	d.mu.Unlock()

	return limiter.Wait(ctx)
}
