package skillpack

import "context"

// Frontier manages the queue of not-yet-visited page identities.
// Ordering is breadth-first by source depth with FIFO tie-breaking, which
// makes crawl ordering deterministic and reproducible given the same seed.
type Frontier interface {
	// Enqueue adds a candidate identity discovered at the given depth.
	// Returns false for identities already visited or queued (idempotent
	// re-discovery).
	Enqueue(identity string, depth int) bool

	// Next returns the next identity to visit. The bool result is false
	// when the frontier is exhausted: the queue is empty or the visited
	// count has reached the configured page cap.
	Next() (string, bool)

	// MarkVisited records that an identity has been fetched, counting it
	// against the page cap.
	MarkVisited(identity string)

	// Seen returns true if the identity has been visited or queued.
	Seen(identity string) bool

	// Len returns the number of identities waiting in the queue.
	Len() int
}

// DomainLimiter provides per-domain rate limiting. The frontier itself is
// delay-agnostic; the run loop waits on the limiter between fetches.
type DomainLimiter interface {
	// Wait blocks until the rate limit allows a request to the domain.
	// Returns an error if the context is canceled.
	Wait(ctx context.Context, domain string) error
}
