package skillpack

// SizeUnit selects how chunk budgets are measured.
type SizeUnit string

// Supported chunk budget units.
const (
	UnitChars  SizeUnit = "chars"
	UnitBytes  SizeUnit = "bytes"
	UnitTokens SizeUnit = "tokens"
)

// Chunk is an ordered group of page records bounded by a configured budget.
//
// A chunk never spans pages from different categories unless the category is
// the uncategorized fallback, and never exceeds its budget except when it
// holds a single oversized page, which is never dropped or truncated.
type Chunk struct {
	ID       string `json:"id"`
	Category string `json:"category"`

	// Pages in discovery order.
	Pages []*PageRecord `json:"pages"`

	// Cumulative size in the builder's configured unit.
	Size int `json:"size"`

	// Oversized marks a single-page chunk whose page alone exceeds the
	// budget. Downstream consumers must handle oversized chunks explicitly.
	Oversized bool `json:"oversized,omitempty"`
}

// PageCount returns the number of pages in the chunk.
func (c *Chunk) PageCount() int { return len(c.Pages) }
