package codescan

import (
	"strings"
	"unicode"
)

// Quality scores an attributed code block on a 0-10 scale. Balanced
// brackets, consistent indentation and recognizable constructs of the
// attributed language raise the score; truncation markers and OCR-noise
// artifacts lower it. The score informs downstream packaging preferences and
// never gates inclusion.
func Quality(text, language string) int {
	score := 5

	if bracketsBalanced(text) {
		score += 2
	} else {
		score -= 2
	}

	if indentationConsistent(text) {
		score++
	}

	if constructHits(text, language) >= 2 {
		score += 2
	}

	if hasTruncationMarkers(text) {
		score -= 2
	}

	score -= ocrNoisePenalty(text)

	if score < 0 {
		return 0
	}
	if score > 10 {
		return 10
	}
	return score
}

// bracketsBalanced checks (), [] and {} nesting.
func bracketsBalanced(text string) bool {
	var stack []rune
	pairs := map[rune]rune{')': '(', ']': '[', '}': '{'}
	for _, r := range text {
		switch r {
		case '(', '[', '{':
			stack = append(stack, r)
		case ')', ']', '}':
			if len(stack) == 0 || stack[len(stack)-1] != pairs[r] {
				return false
			}
			stack = stack[:len(stack)-1]
		}
	}
	return len(stack) == 0
}

// indentationConsistent reports whether all indented lines use the same
// style (tabs or spaces, space indents in uniform steps).
func indentationConsistent(text string) bool {
	sawTabs, sawSpaces := false, false
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		switch {
		case strings.HasPrefix(line, "\t"):
			sawTabs = true
		case strings.HasPrefix(line, " "):
			sawSpaces = true
			indent := len(line) - len(strings.TrimLeft(line, " "))
			if indent%2 != 0 {
				return false
			}
		}
	}
	return !(sawTabs && sawSpaces)
}

// constructHits counts keyword occurrences of the attributed language.
func constructHits(text, language string) int {
	for _, p := range profiles {
		if p.name != language {
			continue
		}
		hits := 0
		for _, kw := range p.keywords {
			if strings.Contains(text, kw) {
				hits++
			}
		}
		return hits
	}
	return 0
}

// hasTruncationMarkers detects ellipses and continuation markers at line
// ends, common when examples are clipped.
func hasTruncationMarkers(text string) bool {
	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasSuffix(trimmed, "...") || strings.HasSuffix(trimmed, "…") ||
			strings.HasSuffix(trimmed, "[truncated]") {
			return true
		}
	}
	return false
}

// ocrNoisePenalty returns 0-4 depending on the density of characters that
// rarely appear in genuine source: replacement runes, control characters and
// other non-printable artifacts.
func ocrNoisePenalty(text string) int {
	if text == "" {
		return 0
	}
	noisy := 0
	total := 0
	for _, r := range text {
		total++
		if r == unicode.ReplacementChar {
			noisy++
			continue
		}
		if r != '\n' && r != '\t' && unicode.IsControl(r) {
			noisy++
			continue
		}
		if r > unicode.MaxASCII && !unicode.IsLetter(r) && !unicode.IsSpace(r) &&
			!unicode.IsPunct(r) && !unicode.IsSymbol(r) {
			noisy++
		}
	}
	ratio := float64(noisy) / float64(total)
	switch {
	case ratio > 0.10:
		return 4
	case ratio > 0.05:
		return 3
	case ratio > 0.02:
		return 2
	case ratio > 0.005:
		return 1
	default:
		return 0
	}
}
