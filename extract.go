package skillpack

// ExtractResult holds the extracted content from an HTML page.
type ExtractResult struct {
	// Title is the page title extracted from metadata.
	Title string

	// ContentHTML is the main content as clean HTML.
	// Boilerplate (nav, footer, sidebar, ads) has been removed.
	ContentHTML string

	// Text is the main content as plain text, used for code scanning and
	// natural-language detection.
	Text string
}

// Extractor extracts main content from HTML pages, removing boilerplate.
type Extractor interface {
	// Extract processes raw HTML and returns the main content.
	Extract(html string) (*ExtractResult, error)
}

// Converter converts HTML to Markdown.
type Converter interface {
	// Convert transforms clean HTML (e.g. from an Extractor) into Markdown.
	Convert(html string) (string, error)
}

// ImageExtractor collects content image references from HTML, filtering out
// icons and tracking pixels below its minimum size threshold.
type ImageExtractor interface {
	// ExtractImages returns image references with URLs resolved against
	// baseURL, in document order.
	ExtractImages(html string, baseURL string) ([]ImageRef, error)
}

// LanguageDetector identifies the natural language of page text.
type LanguageDetector interface {
	// DetectLanguage returns an ISO 639-1 code (e.g. "en"), or false when
	// the language cannot be determined with confidence.
	DetectLanguage(text string) (string, bool)
}
