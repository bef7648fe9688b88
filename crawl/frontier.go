package crawl

import (
	"container/heap"
	"strings"
	"sync"

	"github.com/skillpack/skillpack"
	"github.com/skillpack/skillpack/bloom"
)

// Compile-time interface verification.
var _ skillpack.Frontier = (*Frontier)(nil)

// Frontier is an in-memory page frontier with breadth-first ordering and
// Bloom filter deduplication. It is safe for concurrent use by multiple
// goroutines.
//
// Ordering is a min-heap on (depth, discovery sequence): breadth-first by
// source depth with FIFO tie-breaking, so crawl ordering is deterministic
// across runs given the same seed.
type Frontier struct {
	mu      sync.Mutex
	seen    *bloom.Filter
	queue   *entryHeap
	seq     int
	visited int
	cap     int
}

// NewFrontier creates a Frontier sized for n expected identities with the
// given false positive rate for deduplication. Once maxPages identities have
// been marked visited, Next reports exhaustion even if the queue is
// non-empty.
func NewFrontier(n uint, fpRate float64, maxPages int) *Frontier {
	h := &entryHeap{}
	heap.Init(h)
	return &Frontier{
		seen:  bloom.NewFilter(n, fpRate),
		queue: h,
		cap:   maxPages,
	}
}

// Enqueue adds a candidate identity discovered at the given depth.
// Returns false if the identity has already been seen. URL fragments are
// stripped before deduplication - identities differing only by fragment are
// considered duplicates.
func (f *Frontier) Enqueue(identity string, depth int) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	identity = stripFragment(identity)
	if f.seen.Test(identity) {
		return false
	}
	f.seen.Add(identity)

	heap.Push(f.queue, entry{identity: identity, depth: depth, seq: f.seq})
	f.seq++
	return true
}

// Next returns the next identity in breadth-first order. The bool result is
// false when the queue is empty or the visited count has reached the page
// cap; the run terminates gracefully, not abruptly.
func (f *Frontier) Next() (string, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.cap > 0 && f.visited >= f.cap {
		return "", false
	}
	if f.queue.Len() == 0 {
		return "", false
	}
	e, _ := heap.Pop(f.queue).(entry)
	return e.identity, true
}

// MarkVisited counts an identity against the page cap.
func (f *Frontier) MarkVisited(identity string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.seen.Add(stripFragment(identity))
	f.visited++
}

// Seen returns true if the identity has been visited or queued.
// URL fragments are stripped before checking.
func (f *Frontier) Seen(identity string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.seen.Test(stripFragment(identity))
}

// Len returns the number of identities waiting in the queue.
func (f *Frontier) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.queue.Len()
}

// VisitedCount returns the number of identities marked visited.
func (f *Frontier) VisitedCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.visited
}

func stripFragment(identity string) string {
	if idx := strings.Index(identity, "#"); idx != -1 {
		return identity[:idx]
	}
	return identity
}

// entry is a queued identity with its breadth-first ordering keys.
type entry struct {
	identity string
	depth    int
	seq      int
}

// entryHeap implements heap.Interface as a min-heap on (depth, seq).
type entryHeap []entry

func (h entryHeap) Len() int { return len(h) }

// Less orders shallower entries first, discovery order within a depth.
func (h entryHeap) Less(i, j int) bool {
	if h[i].depth != h[j].depth {
		return h[i].depth < h[j].depth
	}
	return h[i].seq < h[j].seq
}

func (h entryHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *entryHeap) Push(x any) {
	e, _ := x.(entry)
	*h = append(*h, e)
}

func (h *entryHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[0 : n-1]
	return x
}
