package main

import (
	"fmt"

	locaties "github.com/Dexagod/interreg-static-test"
)

// Run executes the runs command.
func (c *RunsCmd) Run(deps *Dependencies) error {
	runs, err := deps.Journal.FindRuns(deps.Ctx, c.Limit)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", locaties.ErrorMessage(err))
		return err
	}

	if len(runs) == 0 {
		fmt.Fprintln(deps.Stdout, "No runs recorded")
		return nil
	}

	for _, run := range runs {
		fmt.Fprintf(deps.Stdout, "%s  %-9s  pages=%-3d records=%-4d  %s\n",
			run.StartedAt.Format("2006-01-02 15:04"), run.Status, run.Pages, run.Records, run.StartURL)
	}
	return nil
}
