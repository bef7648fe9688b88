package skillpack

import (
	"regexp"
	"strings"
)

// Section represents a heading in a markdown document.
type Section struct {
	Level int    `json:"level"`
	Title string `json:"title"`
}

var headingRe = regexp.MustCompile(`(?m)^(#{1,6})\s+(.+)$`)

var codeBlockRe = regexp.MustCompile("(?s)```.*?```")

// ExtractSections parses markdown and returns all headings (H1-H6) in
// document order. Fenced code blocks are skipped so # in code is not
// mistaken for a heading.
func ExtractSections(markdown string) []Section {
	if markdown == "" {
		return nil
	}

	cleaned := codeBlockRe.ReplaceAllString(markdown, "")
	matches := headingRe.FindAllStringSubmatch(cleaned, -1)
	if len(matches) == 0 {
		return nil
	}

	sections := make([]Section, 0, len(matches))
	for _, match := range matches {
		sections = append(sections, Section{
			Level: len(match[1]),
			Title: strings.TrimSpace(match[2]),
		})
	}
	return sections
}

// NearestAncestor returns the title of the highest-level heading in sections,
// preferring the first H1, then the first H2, and so on. Used as the
// classifier's secondary signal when URL paths are opaque.
func NearestAncestor(sections []Section) (string, bool) {
	for level := 1; level <= 6; level++ {
		for _, s := range sections {
			if s.Level == level && s.Title != "" {
				return s.Title, true
			}
		}
	}
	return "", false
}
