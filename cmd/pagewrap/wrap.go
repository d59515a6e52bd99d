package main

import (
	"fmt"
	"strings"

	"github.com/fwojciec/pagefix"
	"github.com/fwojciec/pagefix/batch"
)

var rule = strings.Repeat("=", 60)

// Run executes the wrap command.
func (c *WrapCmd) Run(deps *Dependencies) error {
	fmt.Fprintln(deps.Stdout, rule)
	fmt.Fprintln(deps.Stdout, "HTML Question Bank Converter")
	fmt.Fprintln(deps.Stdout, rule)
	fmt.Fprintln(deps.Stdout)
	fmt.Fprintf(deps.Stdout, "Files to process: %d\n", len(c.Files))
	fmt.Fprintln(deps.Stdout)

	summary, err := deps.Wrapper.Run(deps.Ctx, c.Files, func(e batch.ProgressEvent) {
		switch e.Type {
		case batch.ProgressFile:
			fmt.Fprintf(deps.Stdout, "Processing: %s\n", e.Path)
		case batch.ProgressCompleted:
			fmt.Fprintf(deps.Stdout, "Success: File '%s' has been modified\n\n", e.Path)
		case batch.ProgressFailed:
			fmt.Fprintf(deps.Stdout, "Error processing '%s': %s\n\n", e.Path, pagefix.ErrorMessage(e.Error))
		}
	})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pagefix.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, rule)
	fmt.Fprintf(deps.Stdout, "Successfully processed: %d\n", summary.Succeeded)
	fmt.Fprintf(deps.Stdout, "Failed: %d\n", summary.Failed)
	fmt.Fprintf(deps.Stdout, "Total: %d\n", summary.Total)
	fmt.Fprintln(deps.Stdout, rule)

	return nil
}
