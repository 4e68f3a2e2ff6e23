package main

import (
	"fmt"

	epiotrkow "github.com/MartiniMK/rss-epiotrkow"
)

// Run executes the generate command.
func (c *GenerateCmd) Run(deps *Dependencies) error {
	report, err := deps.Pipeline.Run(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", epiotrkow.ErrorMessage(err))
		return err
	}

	for _, w := range report.Warnings {
		if w.Err != nil {
			fmt.Fprintf(deps.Stderr, "  warn %s %s: %v\n", w.Kind, w.URL, w.Err)
		} else {
			fmt.Fprintf(deps.Stderr, "  warn %s %s\n", w.Kind, w.URL)
		}
	}

	fmt.Fprintf(deps.Stdout, "Wrote %d items (%d enriched) to %s\n",
		len(report.Items), report.Enriched, c.Output)

	return nil
}
