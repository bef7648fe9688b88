package split

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/skillpack/skillpack"
)

// maxTitleKeywords bounds how many title-derived terms each sub-package
// contributes to the routing table.
const maxTitleKeywords = 8

// Synthesize builds the routing table for a set of sub-packages and returns
// it together with the router stub skill that hosts it. Keywords come from
// category labels, package names, and the most frequent stopword-filtered
// page-title terms; every sub-package is guaranteed at least one keyword via
// its own name. A keyword claimed by several sub-packages maps to all of
// them, in package order.
func Synthesize(subs []*skillpack.Skill, baseName string) (skillpack.RoutingTable, *skillpack.Skill) {
	table := skillpack.RoutingTable{}

	add := func(keyword, skillID string) {
		keyword = skillpack.NormalizeLabel(keyword)
		if keyword == "" || stopwords[keyword] {
			return
		}
		for _, id := range table[keyword] {
			if id == skillID {
				return
			}
		}
		table[keyword] = append(table[keyword], skillID)
	}

	for _, sub := range subs {
		keywords := map[string]bool{}

		for category := range sub.Stats.CategoryBreakdown {
			if category != skillpack.Uncategorized {
				add(category, sub.ID)
				keywords[skillpack.NormalizeLabel(category)] = true
			}
		}

		for _, term := range titleTerms(sub) {
			add(term, sub.ID)
			keywords[term] = true
		}

		// Name fallback keeps coverage total even for packages with no
		// category signal and no usable titles. The name bypasses the
		// stopword filter so coverage never depends on it.
		name := skillpack.NormalizeLabel(sub.Name)
		if name != "" && !contains(table[name], sub.ID) {
			table[name] = append(table[name], sub.ID)
		}
		keywords[name] = true

		sub.RoutingKeywords = sortedKeys(keywords)
	}

	stub := &skillpack.Skill{
		ID:     skillpack.NormalizeLabel(baseName) + "-router",
		Name:   fmt.Sprintf("%s-router", baseName),
		Routes: table,
		Stats:  skillpack.SkillStats{},
	}
	return table, stub
}

var wordPattern = regexp.MustCompile(`[a-zA-Z][a-zA-Z0-9_-]{2,}`)

// titleTerms returns the most frequent stopword-filtered terms across the
// sub-package's page titles, capped at maxTitleKeywords, ties broken
// alphabetically for determinism.
func titleTerms(sub *skillpack.Skill) []string {
	counts := map[string]int{}
	for _, c := range sub.Chunks {
		for _, p := range c.Pages {
			for _, w := range wordPattern.FindAllString(strings.ToLower(p.Title), -1) {
				if !stopwords[w] {
					counts[w]++
				}
			}
		}
	}

	terms := make([]string, 0, len(counts))
	for w := range counts {
		terms = append(terms, w)
	}
	sort.Slice(terms, func(i, j int) bool {
		if counts[terms[i]] != counts[terms[j]] {
			return counts[terms[i]] > counts[terms[j]]
		}
		return terms[i] < terms[j]
	})
	if len(terms) > maxTitleKeywords {
		terms = terms[:maxTitleKeywords]
	}
	return terms
}

func contains(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

func sortedKeys(m map[string]bool) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		if k != "" {
			out = append(out, k)
		}
	}
	sort.Strings(out)
	return out
}

// stopwords are terms too common in documentation titles to route on.
var stopwords = map[string]bool{
	"the": true, "and": true, "for": true, "with": true, "from": true,
	"this": true, "that": true, "your": true, "you": true, "are": true,
	"how": true, "what": true, "when": true, "where": true, "why": true,
	"can": true, "use": true, "using": true, "get": true, "getting": true,
	"documentation": true, "docs": true, "guide": true, "page": true,
	"overview": true, "introduction": true, "reference": true,
	"chapter": true, "section": true, "part": true,
}
