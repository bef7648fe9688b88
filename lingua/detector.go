// Package lingua implements natural-language detection using lingua-go.
package lingua

import (
	"strings"

	"github.com/pemistahl/lingua-go"
	"github.com/skillpack/skillpack"
)

var _ skillpack.LanguageDetector = (*Detector)(nil)

// minTextLength is the shortest text worth running detection on; shorter
// snippets produce unreliable guesses.
const minTextLength = 40

// Detector identifies the natural language of page text.
type Detector struct {
	detector lingua.LanguageDetector
}

// NewDetector creates a Detector over the given candidate languages. An
// empty candidate set means all supported languages, which is accurate but
// slow to initialize.
func NewDetector(languages ...lingua.Language) *Detector {
	var builder lingua.LanguageDetectorBuilder
	if len(languages) == 0 {
		builder = lingua.NewLanguageDetectorBuilder().FromAllLanguages()
	} else {
		builder = lingua.NewLanguageDetectorBuilder().FromLanguages(languages...)
	}
	return &Detector{detector: builder.Build()}
}

// NewDocDetector creates a Detector restricted to languages documentation
// sites commonly ship, which keeps model loading fast.
func NewDocDetector() *Detector {
	return NewDetector(
		lingua.English,
		lingua.German,
		lingua.French,
		lingua.Spanish,
		lingua.Portuguese,
		lingua.Italian,
		lingua.Dutch,
		lingua.Russian,
		lingua.Japanese,
		lingua.Korean,
		lingua.Chinese,
	)
}

// DetectLanguage returns the ISO 639-1 code of the text's language, or false
// when the text is too short or the language cannot be determined.
func (d *Detector) DetectLanguage(text string) (string, bool) {
	if len(strings.TrimSpace(text)) < minTextLength {
		return "", false
	}
	language, ok := d.detector.DetectLanguageOf(text)
	if !ok {
		return "", false
	}
	return strings.ToLower(language.IsoCode639_1().String()), true
}
