package goquery

import (
	"strings"
	"time"

	"cloud.google.com/go/civil"
	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/showtimes"
)

// ExtractShowings walks the per-date region and returns one showing per
// showtime anchor, in document order. Runtimes are joined from idx by exact
// title match.
//
// Items without a valid date are skipped entirely. Anchors whose time label
// does not parse are skipped; their siblings are still processed.
func ExtractShowings(doc *goquery.Document, idx showtimes.RuntimeIndex) []showtimes.Showing {
	var showings []showtimes.Showing
	doc.FindMatcher(dateItem).Each(func(_ int, item *goquery.Selection) {
		date, ok := itemDate(item)
		if !ok {
			return
		}

		title := strings.TrimSpace(item.FindMatcher(caption).First().Text())
		runtime, _ := idx.Lookup(title)

		item.FindMatcher(anchor).Each(func(_ int, a *goquery.Selection) {
			start, ok := anchorStart(a)
			if !ok {
				return
			}
			class, _ := a.Attr("class")
			showings = append(showings, showtimes.NewShowing(date, title, start, runtime, LanguageFromClass(class)))
		})
	})
	return showings
}

// LanguageFromClass reads the language flag from an anchor's class attribute.
// The OmU marker takes precedence over the OV marker.
func LanguageFromClass(class string) showtimes.Language {
	switch {
	case strings.Contains(class, LanguageMarkerOmU):
		return showtimes.LanguageOmU
	case strings.Contains(class, LanguageMarkerOV):
		return showtimes.LanguageOV
	default:
		return showtimes.LanguageNone
	}
}

func itemDate(item *goquery.Selection) (civil.Date, bool) {
	raw, exists := item.Attr(DateAttribute)
	if !exists {
		return civil.Date{}, false
	}
	t, err := time.Parse(DateLayout, raw)
	if err != nil {
		return civil.Date{}, false
	}
	return civil.DateOf(t), true
}

func anchorStart(a *goquery.Selection) (civil.Time, bool) {
	raw := strings.TrimSpace(a.FindMatcher(timeLabel).First().Text())
	t, err := time.Parse(TimeLayout, raw)
	if err != nil {
		return civil.Time{}, false
	}
	return civil.TimeOf(t), true
}
