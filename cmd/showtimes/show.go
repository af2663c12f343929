package main

import (
	"fmt"

	"github.com/fwojciec/showtimes"
)

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	html, err := deps.Fetcher.Fetch(deps.Ctx, c.URL)
	if err != nil {
		return fmt.Errorf("fetching %s: %w", c.URL, err)
	}

	showings, err := deps.Extractor.Extract(html)
	if err != nil {
		return fmt.Errorf("extracting showings: %w", err)
	}

	schedule := showtimes.BuildSchedule(showings)

	if deps.Store == nil {
		return deps.Renderer.Render(deps.Stdout, schedule)
	}

	if err := deps.Store.Save(deps.Ctx, schedule); err != nil {
		_ = deps.Store.Abort()
		return fmt.Errorf("saving report: %w", err)
	}
	if err := deps.Store.Commit(); err != nil {
		_ = deps.Store.Abort()
		return fmt.Errorf("committing report: %w", err)
	}

	fmt.Fprintf(deps.Stdout, "Saved %d showings on %d days\n", schedule.Len(), len(schedule.Days))
	return nil
}
