package main

import (
	"fmt"
	"io"
	"regexp"

	"github.com/skillpack/skillpack"
	"github.com/skillpack/skillpack/split"
)

// buildConfig maps build flags onto the pipeline configuration.
func buildConfig(c *BuildCmd) (skillpack.Config, error) {
	cfg := skillpack.Config{
		MaxPages:              c.MaxPages,
		RateLimitSeconds:      c.Rate,
		TargetPagesPerPackage: c.Target,
		Strategy:              skillpack.SplitStrategy(c.Strategy),
		ChunkSizeBudget:       c.Budget,
		ChunkSizeUnit:         skillpack.SizeUnit(c.Unit),
		ExtractTables:         c.Tables,
		ParallelWorkers:       c.Workers,
	}
	return cfg, cfg.Validate()
}

// compileFilter turns include/exclude regex flags into a URLFilter.
// Returns nil when no patterns are given.
func compileFilter(include, exclude []string) (*skillpack.URLFilter, error) {
	if len(include) == 0 && len(exclude) == 0 {
		return nil, nil
	}
	filter := &skillpack.URLFilter{}
	for _, pattern := range include {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid filter pattern %q: %w", pattern, err)
		}
		filter.Include = append(filter.Include, re)
	}
	for _, pattern := range exclude {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid exclude pattern %q: %w", pattern, err)
		}
		filter.Exclude = append(filter.Exclude, re)
	}
	return filter, nil
}

// Run executes the build command: ingest, persist, chunk, split, write.
func (c *BuildCmd) Run(deps *Dependencies) error {
	cfg, err := buildConfig(c)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", skillpack.ErrorMessage(err))
		return err
	}
	filter, err := compileFilter(c.Filter, c.Exclude)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return err
	}

	records, report, err := deps.Runner.Run(deps.Ctx, c.URL, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", skillpack.ErrorMessage(err))
		return err
	}

	// Persist the corpus so later plan/split invocations can replay it.
	run := &skillpack.CorpusRun{
		SourceURL: c.URL,
		Strategy:  c.Strategy,
		Report:    *report,
	}
	if err := deps.Store.CreateRun(deps.Ctx, run); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", skillpack.ErrorMessage(err))
		return err
	}
	if err := deps.Store.SaveRecords(deps.Ctx, run.ID, records); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", skillpack.ErrorMessage(err))
		return err
	}
	fmt.Fprintf(deps.Stdout, "Stored run %s (%d pages, %d failed)\n", run.ID, report.Extracted, report.Failed)

	chunks := split.NewBuilder(cfg).Build(usable(records))
	splitter := split.NewSplitter(cfg, c.Name)

	if c.DryRun {
		plan, err := splitter.Plan(chunks, cfg.Strategy)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", skillpack.ErrorMessage(err))
			return err
		}
		printPlan(deps.Stdout, plan)
		return nil
	}

	skills, _, err := splitter.Split(chunks, cfg.Strategy)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", skillpack.ErrorMessage(err))
		return err
	}

	if deps.Describer != nil {
		for _, skill := range skills {
			if skill.PageCount() == 0 {
				continue
			}
			description, err := deps.Describer.Describe(deps.Ctx, skill)
			if err != nil {
				fmt.Fprintf(deps.Stderr, "warning: describe %s: %s\n", skill.Name, skillpack.ErrorMessage(err))
				continue
			}
			skill.Description = description
		}
	}

	for _, skill := range skills {
		dir, err := writeSkill(c.Out, skill)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %v\n", err)
			return err
		}
		fmt.Fprintf(deps.Stdout, "Wrote %s (%d pages, %d chunks)\n", dir, skill.PageCount(), len(skill.Chunks))
	}
	return nil
}

// usable filters out failed records before chunking.
func usable(records []*skillpack.PageRecord) []*skillpack.PageRecord {
	out := make([]*skillpack.PageRecord, 0, len(records))
	for _, rec := range records {
		if !rec.Failed {
			out = append(out, rec)
		}
	}
	return out
}

// printPlan renders a split plan as a table.
func printPlan(w io.Writer, plan *skillpack.SplitPlan) {
	fmt.Fprintf(w, "strategy: %s\n", plan.Strategy)
	for _, pkg := range plan.Packages {
		fmt.Fprintf(w, "%-40s %7d pages %5d chunks\n", pkg.Name, pkg.PageCount, pkg.ChunkCount)
	}
	fmt.Fprintf(w, "%-40s %7d pages\n", "total", plan.TotalPages())
	if len(plan.RouterKeywords) > 0 {
		fmt.Fprintf(w, "router keywords: %d\n", len(plan.RouterKeywords))
	}
}
