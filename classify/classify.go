// Package classify assigns discovered categories to page records. Categories
// come from URL path segments or declared PDF chapters, falling back to the
// nearest ancestor heading, and finally to the uncategorized bucket. The
// registry is scoped to one corpus run and must be written by a single
// goroutine.
package classify

import (
	"net/url"
	"sort"
	"strings"

	"github.com/skillpack/skillpack"
)

var _ skillpack.Classifier = (*Classifier)(nil)

// Registry is the append-only category set for one run. Categories are
// discovered, never merged or deleted mid-run. Matching is exact on the
// normalized label; "API Reference" and "api-reference/v2" stay distinct.
type Registry struct {
	byNorm map[string]*skillpack.Category
	order  []string
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{byNorm: make(map[string]*skillpack.Category)}
}

// Lookup returns the category with the given normalized label.
func (r *Registry) Lookup(normalized string) (*skillpack.Category, bool) {
	c, ok := r.byNorm[normalized]
	return c, ok
}

// Ensure returns the category for the label, creating it on first sight.
func (r *Registry) Ensure(label string) *skillpack.Category {
	norm := skillpack.NormalizeLabel(label)
	if norm == "" {
		norm = skillpack.Uncategorized
		label = skillpack.Uncategorized
	}
	if c, ok := r.byNorm[norm]; ok {
		return c
	}
	c := &skillpack.Category{
		ID:         norm,
		Label:      label,
		Normalized: norm,
	}
	r.byNorm[norm] = c
	r.order = append(r.order, norm)
	return c
}

// Categories returns all categories in discovery order.
func (r *Registry) Categories() []*skillpack.Category {
	out := make([]*skillpack.Category, 0, len(r.order))
	for _, norm := range r.order {
		out = append(out, r.byNorm[norm])
	}
	return out
}

// Breakdown returns page counts keyed by category label, for package stats.
func (r *Registry) Breakdown() map[string]int {
	out := make(map[string]int, len(r.byNorm))
	for _, c := range r.byNorm {
		out[c.Label] = c.Pages
	}
	return out
}

// Sorted returns category IDs ordered by descending page count, then
// discovery order, for deterministic splitting.
func (r *Registry) Sorted() []string {
	ids := make([]string, len(r.order))
	copy(ids, r.order)
	pos := make(map[string]int, len(ids))
	for i, id := range r.order {
		pos[id] = i
	}
	sort.SliceStable(ids, func(i, j int) bool {
		a, b := r.byNorm[ids[i]], r.byNorm[ids[j]]
		if a.Pages != b.Pages {
			return a.Pages > b.Pages
		}
		return pos[ids[i]] < pos[ids[j]]
	})
	return ids
}

// Classifier assigns categories using the registry as its explicit context
// object; its lifetime is one corpus run.
type Classifier struct {
	registry *Registry
}

// NewClassifier creates a Classifier over the registry.
func NewClassifier(registry *Registry) *Classifier {
	return &Classifier{registry: registry}
}

// Classify returns the category ID for the record, creating a new category
// when no existing normalized label matches. The primary signal is the URL
// path segment or PDF chapter; the secondary signal is the nearest ancestor
// heading; pages matching nothing land in the uncategorized fallback.
func (c *Classifier) Classify(record *skillpack.PageRecord) string {
	label, ok := primarySignal(record.Identity)
	if !ok {
		label, ok = skillpack.NearestAncestor(record.Headings)
	}
	if !ok {
		label = skillpack.Uncategorized
	}

	cat := c.registry.Ensure(label)
	cat.Pages++
	return cat.ID
}

// primarySignal derives a label from the first informative URL path segment.
// PDF page identities ("pdf:N") carry no path signal; their declared chapter
// arrives as the leading heading and is picked up by the heading signal.
func primarySignal(identity string) (string, bool) {
	if strings.HasPrefix(identity, "pdf:") {
		return "", false
	}

	u, err := url.Parse(identity)
	if err != nil {
		return "", false
	}
	segments := strings.Split(strings.Trim(u.Path, "/"), "/")
	for _, seg := range segments {
		if informative(seg) {
			return seg, true
		}
	}
	return "", false
}

// uninformative path segments common to documentation sites.
var genericSegments = map[string]bool{
	"":       true,
	"docs":   true,
	"doc":    true,
	"en":     true,
	"latest": true,
	"stable": true,
	"index":  true,
	"html":   true,
}

func informative(segment string) bool {
	if genericSegments[strings.ToLower(segment)] {
		return false
	}
	return !opaque(segment)
}

// opaque reports whether a segment looks like a machine identifier rather
// than a topic label: all digits (numeric ids), or six or more hex
// characters including at least one digit (commit hashes, content ids).
// Hex words without digits ("facade") stay informative.
func opaque(segment string) bool {
	n, digits, hexOnly := 0, 0, true
	for _, r := range segment {
		n++
		switch {
		case r >= '0' && r <= '9':
			digits++
		case (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F'):
		default:
			hexOnly = false
		}
	}
	if n == 0 {
		return false
	}
	if digits == n {
		return true
	}
	return hexOnly && digits > 0 && n >= 6
}
