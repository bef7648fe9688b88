package skillpack

import (
	"strings"
	"unicode"
)

// Uncategorized is the fallback category for pages matching no signal.
// It is never split further regardless of size.
const Uncategorized = "uncategorized"

// Category is a discovered content label with a running page count.
// Categories are discovered, not predefined; the set is append-only during a
// run. Matching is exact on the normalized label; near-duplicate labels such
// as "API Reference" and "api-reference/v2" remain distinct (documented
// limitation).
type Category struct {
	ID         string `json:"id"`
	Label      string `json:"label"`
	Normalized string `json:"normalized"`
	Pages      int    `json:"pages"`
}

// Classifier assigns a category to a page record.
// Implementations mutate the shared category registry and must be called
// under a single-writer discipline even when extraction is parallelized.
type Classifier interface {
	// Classify returns the category ID for the record, creating a new
	// category when no existing normalized label matches.
	Classify(record *PageRecord) string
}

// NormalizeLabel lowercases a label and strips punctuation so that labels
// differing only in case or punctuation compare equal. No fuzzy matching is
// attempted beyond this.
func NormalizeLabel(label string) string {
	var sb strings.Builder
	prevSep := true
	for _, r := range strings.ToLower(label) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			sb.WriteRune(r)
			prevSep = false
		case !prevSep:
			sb.WriteRune('-')
			prevSep = true
		}
	}
	return strings.TrimSuffix(sb.String(), "-")
}
