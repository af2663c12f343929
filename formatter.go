package showtimes

import (
	"fmt"
	"io"
	"strings"
	"time"

	"cloud.google.com/go/civil"
)

// FormatSchedule formats a schedule as a plain-text listing.
// Each day starts with a header line, followed by one block per showing.
// Unknown end times and runtimes are shown as "--".
func FormatSchedule(s *Schedule) string {
	if s == nil || len(s.Days) == 0 {
		return "No showings found.\n"
	}

	var b strings.Builder
	for _, day := range s.Days {
		b.WriteString(FormatDate(day.Date))
		b.WriteString("\n")
		for _, sh := range day.Showings {
			writeShowing(&b, sh)
		}
	}
	return b.String()
}

func writeShowing(b *strings.Builder, sh Showing) {
	end := "End:   --"
	dur := "Duration:   --"
	if sh.HasRuntime() {
		end = "End: " + FormatTime(sh.End)
		if sh.Overnight() {
			end += " (+1)"
		}
		dur = fmt.Sprintf("Duration: %d min + %d min ads", sh.Runtime, int(AdBuffer/time.Minute))
	}

	flag := ""
	if sh.Language != LanguageNone {
		flag = " [" + string(sh.Language) + "]"
	}

	b.WriteString(sh.Title)
	b.WriteString("\n")
	fmt.Fprintf(b, "    Start: %s   %s\n", FormatTime(sh.Start), end)
	fmt.Fprintf(b, "    %s%s\n\n", dur, flag)
}

// FormatDate formats a date as a day header, e.g. "Wednesday, 01 May 2024".
func FormatDate(d civil.Date) string {
	return d.In(time.UTC).Format("Monday, 02 Jan 2006")
}

// FormatTime formats a time of day as 24-hour "HH:MM".
func FormatTime(t civil.Time) string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// Ensure TextRenderer implements Renderer at compile time.
var _ Renderer = (*TextRenderer)(nil)

// TextRenderer renders a schedule using FormatSchedule.
type TextRenderer struct{}

// Render writes the plain-text listing to w.
func (TextRenderer) Render(w io.Writer, s *Schedule) error {
	_, err := io.WriteString(w, FormatSchedule(s))
	return err
}
