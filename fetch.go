package skillpack

import "context"

// Fetcher retrieves raw markup for a page identity.
// Transport failures (not found, forbidden, timeout) carry the ETRANSPORT
// code; the pipeline treats them as per-page soft failures and does not
// retry — retry policy lives in the transport.
type Fetcher interface {
	// Fetch returns the raw HTML for the URL.
	Fetch(ctx context.Context, url string) (html string, err error)
}

// PDFPage is the decoded content of one PDF page: plain text plus the font
// layout metadata the code detector's font signal relies on.
type PDFPage struct {
	Index int
	Text  string
	Runs  []FontRun

	// Chapter is the table-of-contents chapter covering this page, when
	// the document declares one. Primary categorization signal for PDFs.
	Chapter string
}

// PDFDecodeOptions control page decoding.
type PDFDecodeOptions struct {
	Password string
	UseOCR   bool
}

// PDFDecoder decodes pages of a PDF document. Byte-level parsing is an
// external collaborator; this core consumes decoded pages only.
// Encrypted and corrupt pages return EDECODE errors, which the pipeline
// records as per-page soft failures.
type PDFDecoder interface {
	// PageCount returns the number of pages in the document.
	PageCount(ctx context.Context) (int, error)

	// DecodePage returns the decoded content of the page at index.
	DecodePage(ctx context.Context, index int, opts PDFDecodeOptions) (*PDFPage, error)
}
