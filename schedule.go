package showtimes

import (
	"context"
	"io"
	"slices"

	"cloud.google.com/go/civil"
)

// Day holds the showings of a single calendar date, ordered by start time.
type Day struct {
	Date     civil.Date
	Showings []Showing
}

// Schedule is the full programme grouped by date in ascending calendar order.
type Schedule struct {
	Days []Day
}

// Len returns the total number of showings across all days.
func (s *Schedule) Len() int {
	n := 0
	for _, d := range s.Days {
		n += len(d.Showings)
	}
	return n
}

// BuildSchedule groups showings by date and orders them by start time.
// Showings that start at the same time keep their input order.
// Duplicates are kept.
func BuildSchedule(showings []Showing) *Schedule {
	index := make(map[civil.Date]int)
	var days []Day
	for _, s := range showings {
		i, ok := index[s.Date]
		if !ok {
			i = len(days)
			index[s.Date] = i
			days = append(days, Day{Date: s.Date})
		}
		days[i].Showings = append(days[i].Showings, s)
	}

	slices.SortFunc(days, func(a, b Day) int {
		return CompareDate(a.Date, b.Date)
	})
	for _, d := range days {
		slices.SortStableFunc(d.Showings, func(a, b Showing) int {
			return CompareTime(a.Start, b.Start)
		})
	}

	return &Schedule{Days: days}
}

// Renderer writes a schedule in a user-facing format.
type Renderer interface {
	Render(w io.Writer, s *Schedule) error
}

// ReportStore persists a rendered schedule with atomic semantics.
// Save writes to a temporary location; Commit makes it permanent;
// Abort discards it.
type ReportStore interface {
	Save(ctx context.Context, s *Schedule) error
	Commit() error
	Abort() error
}
