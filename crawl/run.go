// Package crawl provides frontier management and the page ingestion loop.
// It coordinates seed discovery, rate-limited fetching, parallel content
// extraction and single-writer classification, producing the ordered page
// records the chunk builder consumes.
package crawl

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/skillpack/skillpack"
	"golang.org/x/sync/errgroup"
)

// Frontier sizing for identity deduplication.
const (
	frontierExpectedIdentities = 100000
	frontierFalsePositiveRate  = 0.01
)

// ProgressType indicates the type of progress event.
type ProgressType int

// Progress event types.
const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFailed
	ProgressFinished
)

// ProgressEvent reports progress during a run.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Identity  string
	Error     error
}

// ProgressFunc is a callback for reporting run progress.
type ProgressFunc func(event ProgressEvent)

// Runner ingests an HTML documentation site into ordered page records.
//
// Fetching is sequential and rate limited so that link discovery order, and
// with it every downstream boundary, is deterministic. Only body extraction
// is parallelized; results are re-joined in discovery order before
// classification, and the category registry is written by a single
// goroutine.
type Runner struct {
	Config       skillpack.Config
	Fetcher      skillpack.Fetcher
	Sitemaps     skillpack.SitemapService
	Links        skillpack.LinkSelector
	Extractor    skillpack.Extractor
	Converter    skillpack.Converter
	Images       skillpack.ImageExtractor
	CodeDetector skillpack.CodeDetector
	Classifier   skillpack.Classifier
	Languages    skillpack.LanguageDetector
	TokenCounter skillpack.TokenCounter
	RateLimiter  skillpack.DomainLimiter
	RetryDelays  []time.Duration
	Progress     ProgressFunc
}

// fetched is a page handed from the sequential fetch loop to the extraction
// pool.
type fetched struct {
	identity string
	depth    int
	ordinal  int
	html     string
}

// Run crawls sourceURL and returns extracted, classified page records in
// discovery order, together with the run report. Per-page failures are
// recorded on the report; the only run-fatal conditions are configuration
// errors, context cancellation and an entirely failed corpus.
func (r *Runner) Run(ctx context.Context, sourceURL string, filter *skillpack.URLFilter) ([]*skillpack.PageRecord, *skillpack.RunReport, error) {
	if err := r.Config.Validate(); err != nil {
		return nil, nil, err
	}
	base, err := url.Parse(sourceURL)
	if err != nil {
		return nil, nil, skillpack.Errorf(skillpack.EINVALID, "invalid source URL: %v", err)
	}
	pathPrefix := base.Path

	frontier := NewFrontier(frontierExpectedIdentities, frontierFalsePositiveRate, r.Config.MaxPages)
	report := &skillpack.RunReport{}

	// Seed from the sitemap when available; fall back to the source URL.
	seeds := r.discoverSeeds(ctx, sourceURL, filter)
	for _, seed := range seeds {
		if !frontier.Enqueue(seed, 0) {
			report.Skipped++
		}
	}

	if r.Progress != nil {
		r.Progress(ProgressEvent{Type: ProgressStarted})
	}

	var fetches []fetched
	depths := map[string]int{}
	for _, seed := range seeds {
		depths[seed] = 0
	}

	// Sequential fetch loop. Discovery order is the only source of page
	// ordinals, so no fetch concurrency here.
	for {
		if ctx.Err() != nil {
			break
		}
		identity, ok := frontier.Next()
		if !ok {
			break
		}
		depth := depths[identity]
		report.Discovered++

		page, failure := r.fetchOne(ctx, identity)
		frontier.MarkVisited(identity)
		if failure != nil {
			report.Failed++
			report.Failures = append(report.Failures, *failure)
			if r.Progress != nil {
				r.Progress(ProgressEvent{
					Type:     ProgressFailed,
					Identity: identity,
					Error:    fmt.Errorf("%s", failure.Reason),
				})
			}
			continue
		}

		// Link discovery stays in the sequential loop so that frontier
		// ordering is reproducible.
		if r.Links != nil {
			links, err := r.Links.ExtractLinks(page, identity)
			if err == nil {
				for _, link := range links {
					if !inScope(link.URL, base, pathPrefix) || !filter.Match(link.URL) {
						continue
					}
					if frontier.Enqueue(link.URL, depth+1) {
						depths[link.URL] = depth + 1
					} else {
						// Re-discovery of a seen identity.
						report.Skipped++
					}
				}
			}
		}

		fetches = append(fetches, fetched{
			identity: identity,
			depth:    depth,
			ordinal:  len(fetches),
			html:     page,
		})
	}

	// Parallel extraction, re-joined in discovery order.
	records := r.extractAll(ctx, fetches, report)

	// Single-writer classification over the ordered records.
	if r.Classifier != nil {
		for _, rec := range records {
			if rec.Failed {
				continue
			}
			rec.Category = r.Classifier.Classify(rec)
		}
	}

	if r.Progress != nil {
		r.Progress(ProgressEvent{Type: ProgressFinished, Completed: report.Extracted})
	}

	if report.Discovered > 0 && report.Extracted == 0 {
		return nil, report, skillpack.Errorf(skillpack.EEMPTYCORPUS, "every page in the run failed")
	}

	return records, report, nil
}

// discoverSeeds returns the initial frontier contents.
func (r *Runner) discoverSeeds(ctx context.Context, sourceURL string, filter *skillpack.URLFilter) []string {
	if r.Sitemaps != nil {
		urls, err := r.Sitemaps.DiscoverURLs(ctx, sourceURL, filter)
		if err == nil && len(urls) > 0 {
			return urls
		}
	}
	return []string{sourceURL}
}

// fetchOne rate-limits and fetches a single identity, returning the raw HTML
// or a recorded failure.
func (r *Runner) fetchOne(ctx context.Context, identity string) (string, *skillpack.PageFailure) {
	u, err := url.Parse(identity)
	if err != nil {
		return "", &skillpack.PageFailure{Identity: identity, Stage: "fetch", Reason: err.Error()}
	}
	if r.RateLimiter != nil {
		if err := r.RateLimiter.Wait(ctx, u.Host); err != nil {
			return "", &skillpack.PageFailure{Identity: identity, Stage: "fetch", Reason: err.Error()}
		}
	}

	delays := r.RetryDelays
	if delays == nil {
		delays = DefaultRetryDelays()
	}
	html, err := FetchWithRetryDelays(ctx, identity, r.Fetcher.Fetch, nil, delays)
	if err != nil {
		return "", &skillpack.PageFailure{Identity: identity, Stage: "fetch", Reason: err.Error()}
	}
	return html, nil
}

// extractAll runs body extraction for fetched pages on a bounded worker pool
// and returns records in discovery order. Extraction is the only stage whose
// operations are mutually independent; everything else stays sequential.
func (r *Runner) extractAll(ctx context.Context, fetches []fetched, report *skillpack.RunReport) []*skillpack.PageRecord {
	if len(fetches) == 0 {
		return nil
	}

	workers := r.Config.ParallelWorkers
	if workers <= 0 {
		workers = 1
	}

	records := make([]*skillpack.PageRecord, len(fetches))
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for _, f := range fetches {
		g.Go(func() error {
			rec := r.extractOne(gctx, f)

			mu.Lock()
			records[f.ordinal] = rec
			if rec.Failed {
				report.Failed++
				report.Failures = append(report.Failures, skillpack.PageFailure{
					Identity: rec.Identity,
					Stage:    "extract",
					Reason:   rec.Diagnostic,
				})
			} else {
				report.Extracted++
			}
			completed := report.Extracted + report.Failed
			mu.Unlock()

			if r.Progress != nil {
				event := ProgressEvent{Type: ProgressCompleted, Completed: completed, Identity: rec.Identity}
				if rec.Failed {
					event.Type = ProgressFailed
				}
				r.Progress(event)
			}
			return nil
		})
	}
	_ = g.Wait()

	return records
}

// extractOne turns one fetched page into a PageRecord. Failures yield a
// record with an empty body and a diagnostic rather than an error.
func (r *Runner) extractOne(ctx context.Context, f fetched) *skillpack.PageRecord {
	rec := &skillpack.PageRecord{
		Identity:     f.identity,
		DiscoveredAt: f.ordinal,
	}

	extracted, err := r.Extractor.Extract(f.html)
	if err != nil {
		rec.Failed = true
		rec.Diagnostic = fmt.Sprintf("extract: %v", err)
		return rec
	}

	markdown, err := r.Converter.Convert(extracted.ContentHTML)
	if err != nil {
		rec.Failed = true
		rec.Diagnostic = fmt.Sprintf("convert: %v", err)
		return rec
	}

	rec.Title = extracted.Title
	rec.RawText = extracted.Text
	rec.Markdown = markdown
	rec.ContentHash = computeHash(markdown)
	rec.Headings = skillpack.ExtractSections(markdown)

	if r.CodeDetector != nil {
		rec.CodeBlocks = r.CodeDetector.Detect(extracted.Text, nil)
	}
	if r.Images != nil {
		// Image discovery works on the raw page, not the boilerplate-stripped
		// content, so diagrams outside the main article survive.
		if images, err := r.Images.ExtractImages(f.html, f.identity); err == nil {
			rec.Images = images
		}
	}
	if r.Languages != nil {
		if lang, ok := r.Languages.DetectLanguage(extracted.Text); ok {
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

// inScope reports whether a discovered URL stays on the source host and
// under its path prefix.
func inScope(rawURL string, base *url.URL, pathPrefix string) bool {
	u, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	if u.Host != base.Host {
		return false
	}
	return strings.HasPrefix(u.Path, pathPrefix)
}

// computeHash computes a hash of the content using xxhash.
func computeHash(content string) string {
	h := xxhash.Sum64String(content)
	return fmt.Sprintf("%x", h)
}
