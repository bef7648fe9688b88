// Package codescan detects code spans in page content and attributes a
// programming language with a confidence score. Detection combines three
// independent signals (monospace font runs, indentation, token patterns)
// whose overlapping candidates are merged before scoring. Each heuristic is
// a pure function so it can be unit-tested and swapped independently.
package codescan

import (
	"sort"
	"strings"

	"github.com/skillpack/skillpack"
)

// DefaultMinConfidence is the attribution threshold below which a block is
// retained unattributed. Code presence is considered more reliable than
// language identity.
const DefaultMinConfidence = 0.3

// minSpanLines is the minimum number of lines for an indentation candidate.
const minSpanLines = 2

var _ skillpack.CodeDetector = (*Detector)(nil)

// Detector implements skillpack.CodeDetector over the three span signals.
type Detector struct {
	// MinConfidence overrides DefaultMinConfidence when positive.
	MinConfidence float64
}

// NewDetector creates a Detector with the default confidence threshold.
func NewDetector() *Detector {
	return &Detector{}
}

// span is a candidate code region as a half-open line range.
type span struct {
	start  int
	end    int
	method skillpack.DetectionMethod
}

// Detect returns code blocks in document order. Font runs, when present
// (PDF layout metadata), provide the highest-precision signal; indentation
// is format-agnostic; token patterns are consulted only when the other two
// signals produce no candidates.
func (d *Detector) Detect(text string, runs []skillpack.FontRun) []skillpack.CodeBlock {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	lines := strings.Split(text, "\n")

	var candidates []span
	candidates = append(candidates, fontSpans(text, lines, runs)...)
	candidates = append(candidates, indentationSpans(lines)...)
	if len(candidates) == 0 {
		candidates = patternSpans(lines)
	}
	if len(candidates) == 0 {
		return nil
	}

	merged := mergeSpans(candidates)

	threshold := d.MinConfidence
	if threshold <= 0 {
		threshold = DefaultMinConfidence
	}

	blocks := make([]skillpack.CodeBlock, 0, len(merged))
	for _, s := range merged {
		body := strings.Join(lines[s.start:s.end], "\n")
		if strings.TrimSpace(body) == "" {
			continue
		}

		block := skillpack.CodeBlock{
			Text:   body,
			Method: s.method,
		}
		if lang, conf := DetectLanguage(body); conf >= threshold {
			block.Language = lang
			block.Confidence = conf
			block.Quality = Quality(body, lang)
		}
		blocks = append(blocks, block)
	}
	return blocks
}

// fontSpans maps monospace font runs to line ranges. PDF-only signal.
func fontSpans(text string, lines []string, runs []skillpack.FontRun) []span {
	if len(runs) == 0 {
		return nil
	}

	// Byte offset of each line start, for offset -> line translation.
	starts := make([]int, len(lines))
	offset := 0
	for i, line := range lines {
		starts[i] = offset
		offset += len(line) + 1
	}

	var spans []span
	for _, run := range runs {
		if !run.Monospace || strings.TrimSpace(run.Text) == "" {
			continue
		}
		from := lineAt(starts, run.Offset)
		to := lineAt(starts, run.Offset+len(run.Text)-1)
		if to >= len(lines) {
			to = len(lines) - 1
		}
		spans = append(spans, span{start: from, end: to + 1, method: skillpack.DetectFont})
	}
	return spans
}

// lineAt returns the index of the line containing the byte offset.
func lineAt(starts []int, offset int) int {
	i := sort.Search(len(starts), func(i int) bool { return starts[i] > offset })
	if i == 0 {
		return 0
	}
	return i - 1
}

// indentationSpans finds runs of at least minSpanLines lines indented beyond
// the surrounding paragraph's baseline (taken as zero-indent prose).
func indentationSpans(lines []string) []span {
	var spans []span
	start := -1
	for i, line := range lines {
		if indented(line) {
			if start == -1 {
				start = i
			}
			continue
		}
		if strings.TrimSpace(line) == "" && start != -1 {
			// Blank lines inside an indented run do not break it.
			continue
		}
		if start != -1 {
			if count := trimmedLen(lines, start, i); count >= minSpanLines {
				spans = append(spans, span{start: start, end: i, method: skillpack.DetectIndentation})
			}
			start = -1
		}
	}
	if start != -1 {
		if count := trimmedLen(lines, start, len(lines)); count >= minSpanLines {
			spans = append(spans, span{start: start, end: len(lines), method: skillpack.DetectIndentation})
		}
	}
	return spans
}

// indented reports whether a non-blank line starts with a tab or at least
// four spaces.
func indented(line string) bool {
	if strings.TrimSpace(line) == "" {
		return false
	}
	return strings.HasPrefix(line, "\t") || strings.HasPrefix(line, "    ")
}

// trimmedLen counts non-blank lines in [start, end).
func trimmedLen(lines []string, start, end int) int {
	n := 0
	for _, line := range lines[start:end] {
		if strings.TrimSpace(line) != "" {
			n++
		}
	}
	return n
}

// patternSpans marks lines matching language-characteristic tokens. Lowest
// precision; consulted only when font and indentation signals are absent.
func patternSpans(lines []string) []span {
	var spans []span
	start := -1
	for i, line := range lines {
		if looksLikeCode(line) {
			if start == -1 {
				start = i
			}
			continue
		}
		if start != -1 {
			if i-start >= minSpanLines {
				spans = append(spans, span{start: start, end: i, method: skillpack.DetectPattern})
			}
			start = -1
		}
	}
	if start != -1 && len(lines)-start >= minSpanLines {
		spans = append(spans, span{start: start, end: len(lines), method: skillpack.DetectPattern})
	}
	return spans
}

// looksLikeCode applies cheap token heuristics to a single line.
func looksLikeCode(line string) bool {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return false
	}
	if strings.HasPrefix(trimmed, "#!") {
		return true
	}
	if strings.HasSuffix(trimmed, "{") || strings.HasSuffix(trimmed, "}") ||
		strings.HasSuffix(trimmed, ";") {
		return true
	}
	for _, tok := range []string{":=", "=>", "->", "==", "!=", "();", "</", "/>"} {
		if strings.Contains(trimmed, tok) {
			return true
		}
	}
	for _, kw := range []string{"func ", "def ", "class ", "import ", "return ", "var ", "const ", "SELECT ", "INSERT "} {
		if strings.HasPrefix(trimmed, kw) {
			return true
		}
	}
	return false
}

// mergeSpans unions overlapping candidate ranges. The merged span keeps the
// highest-precision contributing method.
func mergeSpans(spans []span) []span {
	sort.Slice(spans, func(i, j int) bool {
		if spans[i].start != spans[j].start {
			return spans[i].start < spans[j].start
		}
		return spans[i].end < spans[j].end
	})

	var merged []span
	for _, s := range spans {
		if len(merged) == 0 || s.start > merged[len(merged)-1].end {
			merged = append(merged, s)
			continue
		}
		last := &merged[len(merged)-1]
		if s.end > last.end {
			last.end = s.end
		}
		if precedence(s.method) > precedence(last.method) {
			last.method = s.method
		}
	}
	return merged
}

func precedence(m skillpack.DetectionMethod) int {
	switch m {
	case skillpack.DetectFont:
		return 3
	case skillpack.DetectIndentation:
		return 2
	default:
		return 1
	}
}
