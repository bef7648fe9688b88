package crawl

import (
	"strings"

	"github.com/skillpack/skillpack"
)

var _ skillpack.Extractor = (*FallbackExtractor)(nil)

// FallbackExtractor tries the primary extractor first and falls back to the
// secondary when the primary errors or extracts no usable text. Readability
// handles article-shaped pages well but gives up on sparse reference pages
// that trafilatura still recovers.
type FallbackExtractor struct {
	Primary  skillpack.Extractor
	Fallback skillpack.Extractor
}

// Extract processes raw HTML with the primary extractor, retrying with the
// fallback on error or empty output. The primary's error is returned only
// when the fallback also fails.
func (e *FallbackExtractor) Extract(html string) (*skillpack.ExtractResult, error) {
	result, err := e.Primary.Extract(html)
	if err == nil && strings.TrimSpace(result.Text) != "" {
		return result, nil
	}

	fallback, ferr := e.Fallback.Extract(html)
	if ferr != nil {
		if err != nil {
			return nil, err
		}
		return nil, ferr
	}
	return fallback, nil
}
