package skillpack

// DetectionMethod identifies the signal that produced a code block candidate.
type DetectionMethod string

// Detection methods, in decreasing order of precision.
const (
	// DetectFont marks spans rendered in a monospace font. PDF layout
	// metadata only; highest precision.
	DetectFont DetectionMethod = "font-signal"

	// DetectIndentation marks runs of lines indented beyond the
	// surrounding paragraph's baseline. Format-agnostic.
	DetectIndentation DetectionMethod = "indentation"

	// DetectPattern marks lines matching language-characteristic tokens.
	// Lowest precision; used as a fallback when other signals are absent.
	DetectPattern DetectionMethod = "pattern-match"
)

// CodeBlock is a detected code span inside a PageRecord.
//
// Code presence is considered more reliable than language identity: a block
// whose language cannot be attributed above the confidence threshold is
// retained unattributed rather than discarded.
type CodeBlock struct {
	Text   string          `json:"text"`
	Method DetectionMethod `json:"method"`

	// Attributed programming language, empty when attribution fell below
	// the confidence threshold.
	Language string `json:"language,omitempty"`

	// Attribution confidence in [0, 1]. Zero implies Language is unset.
	Confidence float64 `json:"confidence"`

	// Quality score in [0, 10], defined only for attributed blocks.
	// Downstream packaging prefers higher-quality examples when space is
	// constrained; the score never gates inclusion.
	Quality int `json:"quality"`
}

// Validate returns an error if the block violates its invariants.
func (b *CodeBlock) Validate() error {
	if b.Text == "" {
		return Errorf(EINVALID, "code block text required")
	}
	switch b.Method {
	case DetectFont, DetectIndentation, DetectPattern:
	default:
		return Errorf(EINVALID, "unknown detection method %q", b.Method)
	}
	if b.Confidence < 0 || b.Confidence > 1 {
		return Errorf(EINVALID, "code block confidence %v out of range", b.Confidence)
	}
	if b.Confidence == 0 && b.Language != "" {
		return Errorf(EINVALID, "code block with zero confidence must be unattributed")
	}
	if b.Language == "" && b.Quality != 0 {
		return Errorf(EINVALID, "quality score defined for unattributed block")
	}
	if b.Quality < 0 || b.Quality > 10 {
		return Errorf(EINVALID, "code block quality %d out of range", b.Quality)
	}
	return nil
}

// FontRun describes a run of text with uniform font styling on a PDF page.
// Produced by the external PDF decoder; consumed by the font-signal code
// detector.
type FontRun struct {
	Text      string `json:"text"`
	Font      string `json:"font"`
	Monospace bool   `json:"monospace"`

	// Byte offset of the run within the page text.
	Offset int `json:"offset"`
}

// CodeDetector identifies code spans in page content.
type CodeDetector interface {
	// Detect returns code blocks in document order. Font runs are nil for
	// HTML sources; when present they enable the font-signal method.
	Detect(text string, runs []FontRun) []CodeBlock
}
