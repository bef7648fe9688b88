package mock

import "github.com/skillpack/skillpack"

var _ skillpack.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of skillpack.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*skillpack.ExtractResult, error)
}

func (e *Extractor) Extract(html string) (*skillpack.ExtractResult, error) {
	return e.ExtractFn(html)
}

var _ skillpack.Converter = (*Converter)(nil)

// Converter is a mock implementation of skillpack.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}

var _ skillpack.LinkSelector = (*LinkSelector)(nil)

// LinkSelector is a mock implementation of skillpack.LinkSelector.
type LinkSelector struct {
	ExtractLinksFn func(html string, baseURL string) ([]skillpack.DiscoveredLink, error)
}

func (s *LinkSelector) ExtractLinks(html string, baseURL string) ([]skillpack.DiscoveredLink, error) {
	return s.ExtractLinksFn(html, baseURL)
}

var _ skillpack.CodeDetector = (*CodeDetector)(nil)

// CodeDetector is a mock implementation of skillpack.CodeDetector.
type CodeDetector struct {
	DetectFn func(text string, runs []skillpack.FontRun) []skillpack.CodeBlock
}

func (d *CodeDetector) Detect(text string, runs []skillpack.FontRun) []skillpack.CodeBlock {
	return d.DetectFn(text, runs)
}

var _ skillpack.Classifier = (*Classifier)(nil)

// Classifier is a mock implementation of skillpack.Classifier.
type Classifier struct {
	ClassifyFn func(record *skillpack.PageRecord) string
}

func (c *Classifier) Classify(record *skillpack.PageRecord) string {
	return c.ClassifyFn(record)
}

var _ skillpack.ImageExtractor = (*ImageExtractor)(nil)

// ImageExtractor is a mock implementation of skillpack.ImageExtractor.
type ImageExtractor struct {
	ExtractImagesFn func(html string, baseURL string) ([]skillpack.ImageRef, error)
}

func (x *ImageExtractor) ExtractImages(html string, baseURL string) ([]skillpack.ImageRef, error) {
	return x.ExtractImagesFn(html, baseURL)
}

var _ skillpack.LanguageDetector = (*LanguageDetector)(nil)

// LanguageDetector is a mock implementation of skillpack.LanguageDetector.
type LanguageDetector struct {
	DetectLanguageFn func(text string) (string, bool)
}

func (d *LanguageDetector) DetectLanguage(text string) (string, bool) {
	return d.DetectLanguageFn(text)
}
