package main

import (
	"fmt"

	"github.com/skillpack/skillpack"
	"github.com/skillpack/skillpack/split"
)

// Run executes the plan command: replay a stored corpus through the
// splitter without writing any packages.
func (c *PlanCmd) Run(deps *Dependencies) error {
	cfg := skillpack.Config{
		MaxPages:              1, // planning never crawls
		TargetPagesPerPackage: c.Target,
		Strategy:              skillpack.SplitStrategy(c.Strategy),
		ChunkSizeBudget:       c.Budget,
		ChunkSizeUnit:         skillpack.SizeUnit(c.Unit),
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", skillpack.ErrorMessage(err))
		return err
	}

	run, err := deps.Store.FindRunByID(deps.Ctx, c.RunID)
	if err != nil {
		if skillpack.ErrorCode(err) == skillpack.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: run %q not found. Use 'skillpack runs' to see stored runs.\n", c.RunID)
		} else {
			fmt.Fprintf(deps.Stderr, "error: %s\n", skillpack.ErrorMessage(err))
		}
		return err
	}

	records, err := deps.Store.FindRecords(deps.Ctx, run.ID)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", skillpack.ErrorMessage(err))
		return err
	}

	chunks := split.NewBuilder(cfg).Build(usable(records))
	plan, err := split.NewSplitter(cfg, c.Name).Plan(chunks, cfg.Strategy)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", skillpack.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "run %s (%s)\n", run.ID, run.SourceURL)
	printPlan(deps.Stdout, plan)
	return nil
}
