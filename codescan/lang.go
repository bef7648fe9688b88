package codescan

import (
	"regexp"
	"strings"
)

// profile holds the keyword/operator frequency heuristics for one candidate
// language.
type profile struct {
	name      string
	keywords  []string
	operators []string
}

// profiles is the fixed candidate language set, scored in order so that
// attribution is deterministic under ties.
var profiles = []profile{
	{"go", []string{"func", "package", "import", "defer", "chan", "goroutine", "struct", "interface", "nil", "err"}, []string{":=", "<-", "&&"}},
	{"python", []string{"def", "import", "self", "elif", "lambda", "None", "True", "False", "print", "return"}, []string{"->", "**", "=="}},
	{"javascript", []string{"function", "const", "let", "var", "async", "await", "console", "undefined", "require", "export"}, []string{"=>", "===", "!=="}},
	{"typescript", []string{"interface", "type", "readonly", "enum", "namespace", "implements", "declare", "const", "let", "async"}, []string{"=>", ": string", ": number"}},
	{"java", []string{"public", "private", "static", "void", "class", "extends", "implements", "final", "throws", "new"}, []string{"@Override", "System.out"}},
	{"c", []string{"int", "char", "void", "struct", "typedef", "sizeof", "printf", "malloc", "return", "include"}, []string{"->", "++", "#include"}},
	{"cpp", []string{"std", "template", "namespace", "class", "virtual", "const", "auto", "nullptr", "cout", "vector"}, []string{"::", "<<", "->"}},
	{"csharp", []string{"using", "namespace", "public", "async", "await", "string", "var", "void", "class", "Console"}, []string{"=>", "?.", "$\""}},
	{"ruby", []string{"def", "end", "module", "require", "puts", "attr_accessor", "nil", "do", "class", "self"}, []string{"=>", "||=", "<<"}},
	{"rust", []string{"fn", "let", "mut", "impl", "pub", "match", "enum", "trait", "crate", "unwrap"}, []string{"::", "->", "=>"}},
	{"php", []string{"function", "echo", "array", "foreach", "public", "namespace", "use", "require", "class", "new"}, []string{"->", "=>", "<?php"}},
	{"swift", []string{"func", "let", "var", "guard", "protocol", "extension", "struct", "enum", "nil", "self"}, []string{"->", "??", "if let"}},
	{"kotlin", []string{"fun", "val", "var", "when", "object", "companion", "data", "class", "null", "suspend"}, []string{"->", "?:", "!!"}},
	{"shell", []string{"echo", "export", "chmod", "sudo", "grep", "sed", "awk", "curl", "then", "done"}, []string{"#!/bin", "$(", "&&"}},
	{"sql", []string{"SELECT", "FROM", "WHERE", "INSERT", "UPDATE", "DELETE", "JOIN", "TABLE", "CREATE", "GROUP"}, []string{"=", ";"}},
	{"html", []string{"div", "span", "href", "html", "head", "body", "script", "style", "img", "class"}, []string{"</", "/>", "<!DOCTYPE"}},
	{"css", []string{"color", "margin", "padding", "display", "font", "background", "border", "width", "height", "flex"}, []string{"{", "}", ":"}},
	{"json", []string{"true", "false", "null"}, []string{"\":", "},", "["}},
	{"yaml", []string{"name", "version", "true", "false", "null"}, []string{": ", "- ", "---"}},
	{"xml", []string{"xml", "version", "encoding", "xmlns"}, []string{"</", "/>", "<?xml"}},
}

var wordRe = regexp.MustCompile(`[A-Za-z_][A-Za-z0-9_]*`)

// DetectLanguage scores text against the fixed candidate set using keyword
// and operator frequency and returns the best language with a confidence in
// [0, 1]. Pure function; callers apply their own threshold.
func DetectLanguage(text string) (string, float64) {
	words := wordRe.FindAllString(text, -1)
	if len(words) == 0 {
		return "", 0
	}
	counts := make(map[string]int, len(words))
	for _, w := range words {
		counts[w]++
	}

	best, second := 0.0, 0.0
	bestLang := ""
	for _, p := range profiles {
		score := scoreProfile(text, counts, p)
		if score > best {
			second = best
			best = score
			bestLang = p.name
		} else if score > second {
			second = score
		}
	}
	if best == 0 {
		return "", 0
	}

	// Confidence rises with the margin over the runner-up and saturates
	// toward 1 as evidence accumulates.
	confidence := (best - second/2) / (best + 3)
	if confidence < 0 {
		confidence = 0
	}
	if confidence > 1 {
		confidence = 1
	}
	return bestLang, confidence
}

// scoreProfile sums capped keyword hits and operator occurrences.
func scoreProfile(text string, counts map[string]int, p profile) float64 {
	score := 0.0
	for _, kw := range p.keywords {
		n := counts[kw]
		if n > 3 {
			n = 3
		}
		score += float64(n)
	}
	for _, op := range p.operators {
		n := strings.Count(text, op)
		if n > 3 {
			n = 3
		}
		score += float64(n) * 0.5
	}
	return score
}
