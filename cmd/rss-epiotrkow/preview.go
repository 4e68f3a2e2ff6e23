package main

import (
	"fmt"

	epiotrkow "github.com/MartiniMK/rss-epiotrkow"
)

// Run executes the preview command.
func (c *PreviewCmd) Run(deps *Dependencies) error {
	items, warnings, err := deps.Pipeline.Collect(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", epiotrkow.ErrorMessage(err))
		return err
	}

	for _, w := range warnings {
		if w.Err != nil {
			fmt.Fprintf(deps.Stderr, "  warn %s %s: %v\n", w.Kind, w.URL, w.Err)
		} else {
			fmt.Fprintf(deps.Stderr, "  warn %s %s\n", w.Kind, w.URL)
		}
	}

	if len(items) == 0 {
		fmt.Fprintln(deps.Stdout, "No articles found.")
		return nil
	}

	for _, item := range items {
		fmt.Fprintf(deps.Stdout, "%s  %s  %s\n", item.ID, item.URL, item.Title)
	}

	return nil
}
