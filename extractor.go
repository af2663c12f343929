package showtimes

// Extractor turns programme page markup into individual showings.
type Extractor interface {
	// Extract parses raw HTML and returns every showing found, in document order.
	// Malformed cards, items and anchors are skipped, never reported.
	// An error is returned only when the markup cannot be parsed at all.
	Extract(html string) ([]Showing, error)
}
