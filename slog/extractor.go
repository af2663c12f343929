package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/showtimes"
)

// Ensure LoggingExtractor implements showtimes.Extractor.
var _ showtimes.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with debug logging.
type LoggingExtractor struct {
	next   showtimes.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next showtimes.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs how many showings it found.
func (e *LoggingExtractor) Extract(html string) (showings []showtimes.Showing, err error) {
	defer func(begin time.Time) {
		e.logger.Info("extract",
			"bytes", len(html),
			"showings", len(showings),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.Extract(html)
}
