// Package htmltomarkdown implements HTML to Markdown conversion using
// html-to-markdown v2.
package htmltomarkdown

import (
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/skillpack/skillpack"
)

// Ensure Converter implements skillpack.Converter at compile time.
var _ skillpack.Converter = (*Converter)(nil)

// Converter wraps html-to-markdown to convert HTML to Markdown.
type Converter struct {
	conv *converter.Converter
}

// NewConverter creates a Converter. Table conversion is optional because
// pipe-table output of deeply nested HTML tables is often worse than the
// plain flattened text.
func NewConverter(withTables bool) *Converter {
	plugins := []converter.Plugin{
		base.NewBasePlugin(),
		commonmark.NewCommonmarkPlugin(),
	}
	if withTables {
		plugins = append(plugins, table.NewTablePlugin())
	}
	conv := converter.NewConverter(converter.WithPlugins(plugins...))
	return &Converter{conv: conv}
}

// Convert transforms HTML content into Markdown.
func (c *Converter) Convert(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", skillpack.Errorf(skillpack.EINVALID, "empty HTML input")
	}

	result, err := c.conv.ConvertString(html)
	if err != nil {
		return "", err
	}

	return result, nil
}
