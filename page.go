package skillpack

// PageRecord is one discovered unit of content: a crawled HTML page or a
// single PDF page, normalized for downstream classification and chunking.
// Records are created by the frontier on first visit, enriched in place by
// the extractor and classifier, and immutable once handed to the chunk
// builder.
type PageRecord struct {
	// Canonical URL or "pdf:N" page identity. Unique within a run;
	// re-discovery of the same identity updates the record in place.
	Identity string `json:"identity"`

	Title    string `json:"title"`
	RawText  string `json:"rawText"`
	Markdown string `json:"markdown"`

	// Category label assigned by the classifier. Empty until classified.
	Category string `json:"category,omitempty"`

	// Code blocks in document order.
	CodeBlocks []CodeBlock `json:"codeBlocks,omitempty"`

	// Image references in document order, above the minimum size threshold.
	Images []ImageRef `json:"images,omitempty"`

	// Ordinal discovery sequence number, for stable ordering.
	DiscoveredAt int `json:"discoveredAt"`

	// Detected natural language of the body text (e.g. "en"). Best effort.
	Language string `json:"language,omitempty"`

	// xxhash of the markdown body.
	ContentHash string `json:"contentHash,omitempty"`

	// Heading hierarchy hints captured at extraction, used as the
	// classifier's secondary signal.
	Headings []Section `json:"headings,omitempty"`

	// Per-page soft failure. A failed record has an empty body and a
	// diagnostic instead of aborting the run.
	Failed     bool   `json:"failed,omitempty"`
	Diagnostic string `json:"diagnostic,omitempty"`

	// Token count of the markdown body, populated when budgeting by tokens.
	tokens int
}

// Validate returns an error if the record contains invalid fields.
// It is called at the extractor boundary so downstream stages receive
// well-typed data.
func (p *PageRecord) Validate() error {
	if p.Identity == "" {
		return Errorf(EINVALID, "page identity required")
	}
	if p.DiscoveredAt < 0 {
		return Errorf(EINVALID, "page discovery ordinal must be non-negative")
	}
	if !p.Failed && p.RawText == "" && p.Markdown == "" {
		return Errorf(EINVALID, "page %q has no content and no failure diagnostic", p.Identity)
	}
	for i := range p.CodeBlocks {
		if err := p.CodeBlocks[i].Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Size returns the record's size in the given unit. Token sizes use the
// pre-computed count stored via SetTokens; records without one (replayed
// runs, counter failures) fall back to a rune-count estimate so the chunk
// budget is never silently bypassed.
func (p *PageRecord) Size(unit SizeUnit) int {
	switch unit {
	case UnitBytes:
		return len(p.Markdown)
	case UnitTokens:
		if p.tokens > 0 {
			return p.tokens
		}
		return len([]rune(p.Markdown))
	default:
		return len([]rune(p.Markdown))
	}
}

// SetTokens records the token count for token-unit budgeting.
func (p *PageRecord) SetTokens(n int) { p.tokens = n }

// ImageRef references an image discovered on a page. Tracking pixels and
// icons below the extractor's minimum size threshold are filtered out.
type ImageRef struct {
	URL    string `json:"url"`
	Alt    string `json:"alt,omitempty"`
	Width  int    `json:"width,omitempty"`
	Height int    `json:"height,omitempty"`
}
