package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/fwojciec/pagefix"
	"github.com/fwojciec/pagefix/batch"
)

// Run executes the strip command.
func (c *StripCmd) Run(deps *Dependencies) error {
	dir, err := filepath.Abs(c.Dir)
	if err != nil {
		return fmt.Errorf("resolve directory %q: %w", c.Dir, err)
	}

	fmt.Fprintln(deps.Stdout, "Starting divstrip...")
	fmt.Fprintf(deps.Stdout, "Target directory: %s\n", dir)
	fmt.Fprintf(deps.Stdout, "Looking for all <div> elements with class='%s'\n", c.Class)
	fmt.Fprintln(deps.Stdout, strings.Repeat("-", 30))

	summary, err := deps.Stripper.Run(deps.Ctx, c.Class, dir, func(e batch.ProgressEvent) {
		switch e.Type {
		case batch.ProgressCompleted:
			if e.Removed == 0 {
				fmt.Fprintf(deps.Stdout, "--- No matching divs in: %s\n", e.Path)
			} else {
				fmt.Fprintf(deps.Stdout, "+++ Found and removed %d div(s) in: %s\n", e.Removed, e.Path)
			}
		case batch.ProgressFailed:
			fmt.Fprintf(deps.Stdout, "[ERROR] Could not process file %s: %s\n", e.Path, pagefix.ErrorMessage(e.Error))
		}
	})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pagefix.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, strings.Repeat("-", 30))
	fmt.Fprintln(deps.Stdout, "Scan complete.")
	fmt.Fprintf(deps.Stdout, "Total HTML files found: %d\n", summary.Files)
	fmt.Fprintf(deps.Stdout, "Total <div> elements removed: %d\n", summary.Removed)
	if summary.Failed > 0 {
		fmt.Fprintf(deps.Stdout, "Files with errors: %d\n", summary.Failed)
	}

	return nil
}
