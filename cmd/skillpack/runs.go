package main

import (
	"fmt"

	"github.com/skillpack/skillpack"
)

// Run executes the runs command.
func (c *RunsCmd) Run(deps *Dependencies) error {
	runs, err := deps.Store.FindRuns(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", skillpack.ErrorMessage(err))
		return err
	}

	if len(runs) == 0 {
		fmt.Fprintln(deps.Stdout, "No runs found. Use 'skillpack build' to ingest a site.")
		return nil
	}

	for _, run := range runs {
		fmt.Fprintf(deps.Stdout, "%s  %s  %s  %d pages (%d failed)\n",
			run.ID,
			run.CreatedAt.Format("2006-01-02 15:04"),
			run.SourceURL,
			run.Report.Extracted,
			run.Report.Failed,
		)
	}

	return nil
}
