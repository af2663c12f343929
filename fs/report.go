// Package fs provides file-based output for rendered schedules.
package fs

import (
	"context"
	"os"
	"path/filepath"

	"github.com/fwojciec/showtimes"
)

// Ensure ReportStore implements showtimes.ReportStore at compile time.
var _ showtimes.ReportStore = (*ReportStore)(nil)

// ReportStore writes a rendered schedule to a file with atomic update
// semantics. The report is rendered to path.tmp and renamed to path on
// Commit, so readers never observe a half-written report.
type ReportStore struct {
	path     string
	renderer showtimes.Renderer
}

// NewReportStore creates a new ReportStore writing to path using renderer.
func NewReportStore(path string, renderer showtimes.Renderer) *ReportStore {
	return &ReportStore{
		path:     path,
		renderer: renderer,
	}
}

func (s *ReportStore) tempPath() string {
	return s.path + ".tmp"
}

// Save renders the schedule to the temporary file.
func (s *ReportStore) Save(ctx context.Context, schedule *showtimes.Schedule) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return err
	}

	f, err := os.Create(s.tempPath())
	if err != nil {
		return err
	}

	if err := s.renderer.Render(f, schedule); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// Commit atomically replaces the report file with the temporary file.
func (s *ReportStore) Commit() error {
	return os.Rename(s.tempPath(), s.path)
}

// Abort removes the temporary file, leaving any existing report untouched.
func (s *ReportStore) Abort() error {
	if err := os.Remove(s.tempPath()); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
