package mock

import (
	"io"

	"github.com/fwojciec/showtimes"
)

var _ showtimes.Renderer = (*Renderer)(nil)

// Renderer is a mock implementation of showtimes.Renderer.
type Renderer struct {
	RenderFn func(w io.Writer, s *showtimes.Schedule) error
}

func (r *Renderer) Render(w io.Writer, s *showtimes.Schedule) error {
	return r.RenderFn(w, s)
}
