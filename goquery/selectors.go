// Package goquery extracts showings from programme pages using CSS selectors.
package goquery

import (
	"regexp"

	"github.com/andybalholm/cascadia"
)

// CSS selectors for the two regions of the programme page. The grid region
// lists each movie once with its metadata; the per-date region lists the
// showtimes of each movie for one day.
const (
	GridCardSelector  = ".programme-table-main-grid-movieitem"
	CardTitleSelector = "h2"
	CardLabelSelector = "span"

	DateItemSelector   = ".programme-table-main-movie-item.movie-item"
	CaptionSelector    = ".movie-item-caption span"
	AnchorSelector     = "label.movie-item-showtime a"
	TimeLabelSelector  = "span.movie-itemshowtime-linktext"
	DateAttribute      = "data-date"
	DateLayout         = "2006-01-02"
	TimeLayout         = "15:04"
	LanguageMarkerOmU  = "movie-item-showing-lang-OmU"
	LanguageMarkerOV   = "movie-item-showing-lang-OV"
	RuntimeLabelSyntax = `Dauer\s*:\s*(\d+)`
)

var (
	gridCard  = cascadia.MustCompile(GridCardSelector)
	cardTitle = cascadia.MustCompile(CardTitleSelector)
	cardLabel = cascadia.MustCompile(CardLabelSelector)

	dateItem  = cascadia.MustCompile(DateItemSelector)
	caption   = cascadia.MustCompile(CaptionSelector)
	anchor    = cascadia.MustCompile(AnchorSelector)
	timeLabel = cascadia.MustCompile(TimeLabelSelector)

	runtimeLabel = regexp.MustCompile(RuntimeLabelSyntax)
)
