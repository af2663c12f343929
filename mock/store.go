package mock

import (
	"context"

	"github.com/fwojciec/showtimes"
)

var _ showtimes.ReportStore = (*ReportStore)(nil)

// ReportStore is a mock implementation of showtimes.ReportStore.
type ReportStore struct {
	SaveFn   func(ctx context.Context, s *showtimes.Schedule) error
	CommitFn func() error
	AbortFn  func() error
}

func (s *ReportStore) Save(ctx context.Context, schedule *showtimes.Schedule) error {
	return s.SaveFn(ctx, schedule)
}

func (s *ReportStore) Commit() error {
	return s.CommitFn()
}

func (s *ReportStore) Abort() error {
	return s.AbortFn()
}
