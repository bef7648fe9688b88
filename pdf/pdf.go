// Package pdf turns decoded PDF pages into ordered page records. Byte-level
// PDF parsing lives behind the skillpack.PDFDecoder interface; this package
// owns page ordering, chapter attribution, code detection over font runs and
// per-page failure handling.
package pdf

import (
	"context"
	"fmt"
	"sync"

	"github.com/cespare/xxhash/v2"
	"github.com/skillpack/skillpack"
	"golang.org/x/sync/errgroup"
)

// Runner ingests a PDF document into page records.
//
// Page order follows the document, which plays the role discovery order
// plays for a crawled site: records come back sorted by page number no
// matter how decoding was scheduled.
type Runner struct {
	Config       skillpack.Config
	Decoder      skillpack.PDFDecoder
	CodeDetector skillpack.CodeDetector
	Classifier   skillpack.Classifier
	Languages    skillpack.LanguageDetector
	TokenCounter skillpack.TokenCounter
}

// Run decodes the document and returns classified page records in document
// order, together with the run report. Encrypted or corrupt pages become
// failed records on the report; the run only fails outright when the page
// count cannot be read or every page fails.
func (r *Runner) Run(ctx context.Context) ([]*skillpack.PageRecord, *skillpack.RunReport, error) {
	if err := r.Config.Validate(); err != nil {
		return nil, nil, err
	}

	count, err := r.Decoder.PageCount(ctx)
	if err != nil {
		return nil, nil, skillpack.Errorf(skillpack.EDECODE, "page count: %v", err)
	}
	if count > r.Config.MaxPages {
		count = r.Config.MaxPages
	}
	if count == 0 {
		return nil, &skillpack.RunReport{}, skillpack.Errorf(skillpack.EEMPTYCORPUS, "document has no pages")
	}

	opts := skillpack.PDFDecodeOptions{
		Password: r.Config.PDFPassword,
		UseOCR:   r.Config.UseOCR,
	}

	workers := r.Config.ParallelWorkers
	if workers <= 0 {
		workers = 1
	}

	report := &skillpack.RunReport{Discovered: count}
	records := make([]*skillpack.PageRecord, count)
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := 0; i < count; i++ {
		g.Go(func() error {
			rec := r.decodeOne(gctx, i, opts)

			mu.Lock()
			records[i] = rec
			if rec.Failed {
				report.Failed++
				report.Failures = append(report.Failures, skillpack.PageFailure{
					Identity: rec.Identity,
					Stage:    "decode",
					Reason:   rec.Diagnostic,
				})
			} else {
				report.Extracted++
			}
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()

	// Single-writer classification over the ordered records.
	if r.Classifier != nil {
		for _, rec := range records {
			if rec.Failed {
				continue
			}
			rec.Category = r.Classifier.Classify(rec)
		}
	}

	if report.Extracted == 0 {
		return nil, report, skillpack.Errorf(skillpack.EEMPTYCORPUS, "every page in the document failed")
	}
	return records, report, nil
}

// decodeOne turns one document page into a PageRecord. The page number in
// the identity is 1-based, matching how readers cite PDF pages.
func (r *Runner) decodeOne(ctx context.Context, index int, opts skillpack.PDFDecodeOptions) *skillpack.PageRecord {
	rec := &skillpack.PageRecord{
		Identity:     fmt.Sprintf("pdf:%d", index+1),
		DiscoveredAt: index,
	}

	page, err := r.Decoder.DecodePage(ctx, index, opts)
	if err != nil {
		rec.Failed = true
		rec.Diagnostic = fmt.Sprintf("decode: %v", err)
		return rec
	}

	markdown := page.Text
	if page.Chapter != "" {
		// The declared chapter leads the markdown as a level-1 heading so
		// downstream heading-based categorization sees it.
		markdown = fmt.Sprintf("# %s\n\n%s", page.Chapter, page.Text)
		rec.Title = page.Chapter
	} else {
		rec.Title = fmt.Sprintf("Page %d", index+1)
	}

	rec.RawText = page.Text
	rec.Markdown = markdown
	rec.ContentHash = fmt.Sprintf("%x", xxhash.Sum64String(markdown))
	rec.Headings = skillpack.ExtractSections(markdown)

	if r.CodeDetector != nil {
		rec.CodeBlocks = r.CodeDetector.Detect(page.Text, page.Runs)
	}
	if r.Languages != nil {
		if lang, ok := r.Languages.DetectLanguage(page.Text); ok {
			rec.Language = lang
		}
	}
	if r.TokenCounter != nil && r.Config.ChunkSizeUnit == skillpack.UnitTokens {
		if tokens, err := r.TokenCounter.CountTokens(ctx, markdown); err == nil {
			rec.SetTokens(tokens)
		}
	}

	if err := rec.Validate(); err != nil {
		rec.Failed = true
		rec.Diagnostic = fmt.Sprintf("validate: %v", err)
	}
	return rec
}
