package mock

import "github.com/fwojciec/showtimes"

var _ showtimes.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of showtimes.Extractor.
type Extractor struct {
	ExtractFn func(html string) ([]showtimes.Showing, error)
}

func (e *Extractor) Extract(html string) ([]showtimes.Showing, error) {
	return e.ExtractFn(html)
}
