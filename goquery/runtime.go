package goquery

import (
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/showtimes"
)

// ExtractRuntimes builds the title to runtime index from the grid region.
// Cards without a heading are indexed under the empty title. Cards without
// a parseable duration label contribute nothing. When a title appears on
// several cards the last one wins.
func ExtractRuntimes(doc *goquery.Document) showtimes.RuntimeIndex {
	idx := showtimes.RuntimeIndex{}
	doc.FindMatcher(gridCard).Each(func(_ int, card *goquery.Selection) {
		title := strings.TrimSpace(card.FindMatcher(cardTitle).First().Text())
		if minutes, ok := cardRuntime(card); ok {
			idx.Set(title, minutes)
		}
	})
	return idx
}

// cardRuntime returns the first duration label value found in a card.
// Labels whose digits do not fit an int are skipped.
func cardRuntime(card *goquery.Selection) (minutes int, found bool) {
	card.FindMatcher(cardLabel).EachWithBreak(func(_ int, label *goquery.Selection) bool {
		m := runtimeLabel.FindStringSubmatch(label.Text())
		if m == nil {
			return true
		}
		n, err := strconv.Atoi(m[1])
		if err != nil {
			return true
		}
		minutes, found = n, true
		return false
	})
	return minutes, found
}
