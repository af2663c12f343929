package showtimes

import (
	"time"

	"cloud.google.com/go/civil"
)

// AdBuffer is added to every advertised runtime to estimate when a showing
// actually ends. Cinemas run trailers and ads before the feature starts.
const AdBuffer = 15 * time.Minute

// Language marks a showing presented in its original language.
type Language string

// Supported language flags.
const (
	LanguageNone Language = ""
	LanguageOmU  Language = "OmU" // original with subtitles
	LanguageOV   Language = "OV"  // original version
)

// Showing is one screening of a movie at a given date and start time.
//
// Runtime and End are derived together: both are known when Runtime is
// positive, and both are unknown otherwise. Use NewShowing to construct
// a Showing so the pair stays consistent.
type Showing struct {
	Title string
	Date  civil.Date
	Start civil.Time

	// Runtime is the advertised running time in minutes. Zero means unknown.
	Runtime int

	// End is Start + Runtime + AdBuffer. Only meaningful when HasRuntime is true.
	// Ends past midnight wrap around to the early hours of the same Date.
	End civil.Time

	Language Language
}

// NewShowing creates a Showing and derives its end time from runtime.
// A runtime of zero or less leaves both runtime and end time unknown.
func NewShowing(date civil.Date, title string, start civil.Time, runtime int, lang Language) Showing {
	s := Showing{
		Title:    title,
		Date:     date,
		Start:    start,
		Language: lang,
	}
	if runtime > 0 {
		s.Runtime = runtime
		s.End = AddMinutes(start, runtime+int(AdBuffer/time.Minute))
	}
	return s
}

// HasRuntime reports whether the runtime, and therefore the end time, is known.
func (s Showing) HasRuntime() bool {
	return s.Runtime > 0
}

// Overnight reports whether the estimated end time wrapped past midnight.
func (s Showing) Overnight() bool {
	if !s.HasRuntime() {
		return false
	}
	return minuteOfDay(s.Start)+s.Runtime+int(AdBuffer/time.Minute) >= minutesPerDay
}

const minutesPerDay = 24 * 60

// AddMinutes adds n minutes to t, wrapping around midnight.
// Seconds and sub-second precision are dropped.
func AddMinutes(t civil.Time, n int) civil.Time {
	m := (minuteOfDay(t) + n) % minutesPerDay
	if m < 0 {
		m += minutesPerDay
	}
	return civil.Time{Hour: m / 60, Minute: m % 60}
}

// CompareTime orders two times of day, returning -1, 0 or +1.
func CompareTime(a, b civil.Time) int {
	an := time.Duration(minuteOfDay(a))*time.Minute + time.Duration(a.Second)*time.Second + time.Duration(a.Nanosecond)
	bn := time.Duration(minuteOfDay(b))*time.Minute + time.Duration(b.Second)*time.Second + time.Duration(b.Nanosecond)
	switch {
	case an < bn:
		return -1
	case an > bn:
		return 1
	default:
		return 0
	}
}

// CompareDate orders two calendar dates, returning -1, 0 or +1.
func CompareDate(a, b civil.Date) int {
	switch {
	case a.Before(b):
		return -1
	case a.After(b):
		return 1
	default:
		return 0
	}
}

func minuteOfDay(t civil.Time) int {
	return t.Hour*60 + t.Minute
}
