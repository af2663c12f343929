package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/showtimes"
)

// Ensure Extractor implements showtimes.Extractor at compile time.
var _ showtimes.Extractor = (*Extractor)(nil)

// Extractor runs both extraction passes over a single parsed document:
// first the runtime index from the grid region, then the showings from
// the per-date region.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract parses html and returns every showing found.
func (e *Extractor) Extract(html string) ([]showtimes.Showing, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, showtimes.Errorf(showtimes.EINVALID, "failed to parse HTML: %v", err)
	}

	idx := ExtractRuntimes(doc)
	return ExtractShowings(doc, idx), nil
}
