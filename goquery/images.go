package goquery

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/skillpack/skillpack"
)

// DefaultMinImageDim is the smallest declared dimension, in pixels, for an
// image to count as content rather than an icon or spacer.
const DefaultMinImageDim = 32

var _ skillpack.ImageExtractor = (*Images)(nil)

// Images extracts content image references from HTML.
type Images struct {
	// MinDim is the smallest declared dimension an image may have before it
	// is dropped as decorative.
	MinDim int
}

// NewImages creates an Images extractor with the default minimum dimension.
func NewImages() *Images {
	return &Images{MinDim: DefaultMinImageDim}
}

// ExtractImages returns content image references from HTML with URLs
// resolved against baseURL, in document order, deduplicated by URL. Images
// whose declared width or height falls below the minimum are dropped as
// decorative; images declaring no dimensions are kept.
func (x *Images) ExtractImages(html string, baseURL string) ([]skillpack.ImageRef, error) {
	return extractImages(html, baseURL, x.MinDim)
}

func extractImages(html string, baseURL string, minDim int) ([]skillpack.ImageRef, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, skillpack.Errorf(skillpack.EINVALID, "invalid base URL: %v", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, skillpack.Errorf(skillpack.EINVALID, "failed to parse HTML: %v", err)
	}

	seen := make(map[string]bool)
	var images []skillpack.ImageRef

	doc.Find("img[src]").Each(func(_ int, sel *goquery.Selection) {
		src, _ := sel.Attr("src")
		src = strings.TrimSpace(src)
		if src == "" || strings.HasPrefix(strings.ToLower(src), "data:") {
			return
		}

		ref, err := url.Parse(src)
		if err != nil {
			return
		}
		resolved := base.ResolveReference(ref)
		resolved.Fragment = ""
		u := resolved.String()
		if seen[u] {
			return
		}

		width := dimAttr(sel, "width")
		height := dimAttr(sel, "height")
		if declaredBelow(width, minDim) || declaredBelow(height, minDim) {
			return
		}

		seen[u] = true
		images = append(images, skillpack.ImageRef{
			URL:    u,
			Alt:    strings.TrimSpace(sel.AttrOr("alt", "")),
			Width:  width,
			Height: height,
		})
	})

	return images, nil
}

// dimAttr parses a pixel dimension attribute; zero means undeclared.
func dimAttr(sel *goquery.Selection, name string) int {
	v, ok := sel.Attr(name)
	if !ok {
		return 0
	}
	v = strings.TrimSuffix(strings.TrimSpace(v), "px")
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return 0
	}
	return n
}

func declaredBelow(dim, minDim int) bool {
	return dim > 0 && dim < minDim
}
