package showtimes

// RuntimeIndex maps a movie title to its advertised runtime in minutes.
// Titles are matched exactly; callers trim whitespace before inserting or looking up.
type RuntimeIndex map[string]int

// Set records the runtime for title, replacing any earlier entry.
func (idx RuntimeIndex) Set(title string, minutes int) {
	idx[title] = minutes
}

// Lookup returns the runtime for title.
// Returns false when the title is unknown or its recorded runtime is not positive.
func (idx RuntimeIndex) Lookup(title string) (int, bool) {
	minutes, ok := idx[title]
	if !ok || minutes <= 0 {
		return 0, false
	}
	return minutes, true
}
