package mock_test

import (
	"bytes"
	"io"
	"testing"

	"github.com/fwojciec/showtimes"
	"github.com/fwojciec/showtimes/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderer_Render(t *testing.T) {
	t.Parallel()

	t.Run("delegates to RenderFn", func(t *testing.T) {
		t.Parallel()

		var calledWith *showtimes.Schedule
		r := &mock.Renderer{
			RenderFn: func(w io.Writer, s *showtimes.Schedule) error {
				calledWith = s
				_, err := io.WriteString(w, "rendered")
				return err
			},
		}

		schedule := &showtimes.Schedule{}
		var buf bytes.Buffer
		err := r.Render(&buf, schedule)

		require.NoError(t, err)
		assert.Same(t, schedule, calledWith)
		assert.Equal(t, "rendered", buf.String())
	})
}
