// Package goquery implements HTML link and image extraction using CSS
// selectors on top of github.com/PuerkitoBio/goquery.
package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/skillpack/skillpack"
)

var _ skillpack.LinkSelector = (*Selector)(nil)

// SelectorConfig defines a CSS selector with its priority and source label.
type SelectorConfig struct {
	Selector string
	Priority skillpack.LinkPriority
	Source   string
}

// DefaultConfigs are universal selectors covering common documentation
// layouts, ordered highest priority first.
func DefaultConfigs() []SelectorConfig {
	return []SelectorConfig{
		{Selector: ".toc a[href], .table-of-contents a[href], .sidebar a[href], aside a[href]", Priority: skillpack.PriorityTOC, Source: "toc"},
		{Selector: `nav a[href], [role="navigation"] a[href], .nav a[href], .menu a[href], .navbar a[href]`, Priority: skillpack.PriorityNavigation, Source: "nav"},
		{Selector: "main a[href], article a[href], .content a[href], .doc-content a[href]", Priority: skillpack.PriorityContent, Source: "content"},
		{Selector: "footer a[href], .footer a[href]", Priority: skillpack.PriorityFooter, Source: "footer"},
	}
}

// Selector extracts prioritized same-host links from HTML. With Fallback set,
// any anchor under the base URL's path prefix is additionally collected at
// the lowest priority, so sites with non-semantic markup still get their
// links discovered.
type Selector struct {
	Configs  []SelectorConfig
	Fallback bool
}

// NewSelector creates a Selector with the default configuration and fallback
// collection enabled.
func NewSelector() *Selector {
	return &Selector{Configs: DefaultConfigs(), Fallback: true}
}

// ExtractLinks parses HTML and returns discovered links in document order of
// first occurrence. Links are deduplicated by URL, keeping the highest
// priority version; links off the base host are filtered out.
func (s *Selector) ExtractLinks(html string, baseURL string) ([]skillpack.DiscoveredLink, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, skillpack.Errorf(skillpack.EINVALID, "invalid base URL: %v", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, skillpack.Errorf(skillpack.EINVALID, "failed to parse HTML: %v", err)
	}

	// Track seen URLs with their index in the result slice for O(1) updates.
	seen := make(map[string]int)
	var links []skillpack.DiscoveredLink

	collect := func(sel *goquery.Selection, priority skillpack.LinkPriority, source string) {
		href, exists := sel.Attr("href")
		if !exists || href == "" {
			return
		}
		if isNonHTTPLink(href) {
			return
		}
		resolved := resolveURL(base, href)
		if resolved == "" {
			return
		}
		// Exact host match; subdomains are considered different hosts.
		if !isSameHost(base, resolved) {
			return
		}

		link := skillpack.DiscoveredLink{
			URL:      resolved,
			Priority: priority,
			Text:     strings.TrimSpace(sel.Text()),
			Source:   source,
		}
		if idx, ok := seen[resolved]; ok {
			if priority > links[idx].Priority {
				links[idx] = link
			}
			return
		}
		seen[resolved] = len(links)
		links = append(links, link)
	}

	for _, config := range s.Configs {
		priority, source := config.Priority, config.Source
		doc.Find(config.Selector).Each(func(_ int, sel *goquery.Selection) {
			collect(sel, priority, source)
		})
	}

	if s.Fallback {
		basePath := base.Path
		doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
			href, _ := sel.Attr("href")
			resolved := resolveURL(base, href)
			if resolved == "" {
				return
			}
			// Fallback additionally requires the base path prefix.
			u, err := url.Parse(resolved)
			if err != nil {
				return
			}
			if basePath != "" && !strings.HasPrefix(u.Path, basePath) {
				return
			}
			collect(sel, skillpack.PriorityFallback, "fallback")
		})
	}

	return links, nil
}

// resolveURL resolves a relative URL against a base URL. Returns empty string
// if the href cannot be parsed or if the resolved URL is self-referential
// (same as base URL after stripping fragment). Fragments are stripped from
// the resolved URL for deduplication purposes.
func resolveURL(base *url.URL, href string) string {
	ref, err := url.Parse(href)
	if err != nil {
		return ""
	}
	resolved := base.ResolveReference(ref)
	resolved.Fragment = ""

	result := resolved.String()
	baseNoFragment := *base
	baseNoFragment.Fragment = ""
	if result == baseNoFragment.String() {
		return ""
	}
	return result
}

// isSameHost checks if the resolved URL has the same host as the base URL.
func isSameHost(base *url.URL, resolved string) bool {
	u, err := url.Parse(resolved)
	if err != nil {
		return false
	}
	return u.Host == base.Host
}

// isNonHTTPLink checks if a href is a non-HTTP link that should be skipped.
func isNonHTTPLink(href string) bool {
	href = strings.ToLower(strings.TrimSpace(href))
	return strings.HasPrefix(href, "javascript:") ||
		strings.HasPrefix(href, "mailto:") ||
		strings.HasPrefix(href, "tel:") ||
		strings.HasPrefix(href, "data:")
}
