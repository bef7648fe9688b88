package main

import (
	"fmt"

	"github.com/skillpack/skillpack"
)

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deletion\n")
		return skillpack.Errorf(skillpack.EINVALID, "use --force to confirm deletion")
	}

	if err := deps.Store.DeleteRun(deps.Ctx, c.RunID); err != nil {
		if skillpack.ErrorCode(err) == skillpack.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: run %q not found. Use 'skillpack runs' to see stored runs.\n", c.RunID)
		} else {
			fmt.Fprintf(deps.Stderr, "error: %s\n", skillpack.ErrorMessage(err))
		}
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted run %s\n", c.RunID)
	return nil
}
