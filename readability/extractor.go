// Package readability implements main-content extraction using
// go-readability.
package readability

import (
	"strings"

	"github.com/go-shiori/go-readability"
	"github.com/skillpack/skillpack"
)

// Ensure Extractor implements skillpack.Extractor at compile time.
var _ skillpack.Extractor = (*Extractor)(nil)

// Extractor wraps go-readability to extract main content from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the main content with boilerplate
// removed.
func (e *Extractor) Extract(rawHTML string) (*skillpack.ExtractResult, error) {
	if rawHTML == "" {
		return nil, skillpack.Errorf(skillpack.EINVALID, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return nil, err
	}

	return &skillpack.ExtractResult{
		Title:       article.Title,
		ContentHTML: article.Content,
		Text:        article.TextContent,
	}, nil
}
