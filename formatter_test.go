package showtimes_test

import (
	"bytes"
	"testing"

	"cloud.google.com/go/civil"
	"github.com/fwojciec/showtimes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatSchedule(t *testing.T) {
	t.Parallel()

	t.Run("formats showing with known runtime and language", func(t *testing.T) {
		t.Parallel()

		s := showtimes.BuildSchedule([]showtimes.Showing{
			showtimes.NewShowing(may1, "Film A", clock(18, 0), 120, showtimes.LanguageOV),
		})

		result := showtimes.FormatSchedule(s)

		expected := "Wednesday, 01 May 2024\n" +
			"Film A\n" +
			"    Start: 18:00   End: 20:15\n" +
			"    Duration: 120 min + 15 min ads [OV]\n\n"
		assert.Equal(t, expected, result)
	})

	t.Run("uses placeholders for unknown runtime", func(t *testing.T) {
		t.Parallel()

		s := showtimes.BuildSchedule([]showtimes.Showing{
			showtimes.NewShowing(may1, "Mystery", clock(20, 30), 0, showtimes.LanguageNone),
		})

		result := showtimes.FormatSchedule(s)

		expected := "Wednesday, 01 May 2024\n" +
			"Mystery\n" +
			"    Start: 20:30   End:   --\n" +
			"    Duration:   --\n\n"
		assert.Equal(t, expected, result)
	})

	t.Run("marks end times past midnight", func(t *testing.T) {
		t.Parallel()

		s := showtimes.BuildSchedule([]showtimes.Showing{
			showtimes.NewShowing(may1, "Night", clock(23, 0), 90, showtimes.LanguageOmU),
		})

		result := showtimes.FormatSchedule(s)

		assert.Contains(t, result, "    Start: 23:00   End: 00:45 (+1)\n")
		assert.Contains(t, result, "[OmU]")
	})

	t.Run("prints one header per day", func(t *testing.T) {
		t.Parallel()

		may2 := civil.Date{Year: 2024, Month: 5, Day: 2}
		s := showtimes.BuildSchedule([]showtimes.Showing{
			showtimes.NewShowing(may2, "B", clock(18, 0), 0, showtimes.LanguageNone),
			showtimes.NewShowing(may1, "A", clock(18, 0), 0, showtimes.LanguageNone),
			showtimes.NewShowing(may1, "C", clock(20, 0), 0, showtimes.LanguageNone),
		})

		result := showtimes.FormatSchedule(s)

		assert.Equal(t, 1, bytes.Count([]byte(result), []byte("Wednesday, 01 May 2024\n")))
		assert.Equal(t, 1, bytes.Count([]byte(result), []byte("Thursday, 02 May 2024\n")))
		assert.Less(t, bytes.Index([]byte(result), []byte("Wednesday")), bytes.Index([]byte(result), []byte("Thursday")))
	})

	t.Run("reports empty schedule", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "No showings found.\n", showtimes.FormatSchedule(&showtimes.Schedule{}))
		assert.Equal(t, "No showings found.\n", showtimes.FormatSchedule(nil))
	})
}

func TestTextRenderer_Render(t *testing.T) {
	t.Parallel()

	s := showtimes.BuildSchedule([]showtimes.Showing{
		showtimes.NewShowing(may1, "Film A", clock(18, 0), 120, showtimes.LanguageOV),
	})
	var buf bytes.Buffer

	err := showtimes.TextRenderer{}.Render(&buf, s)

	require.NoError(t, err)
	assert.Equal(t, showtimes.FormatSchedule(s), buf.String())
}
