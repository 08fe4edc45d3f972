// Package render holds the spacing engine: a stream that remembers the
// kind of the last component it rendered and consults the theme's rule
// table to decide how many blank lines separate it from the next one.
package render

import (
	"io"
	"strings"

	"github.com/alexisbeaulieu97/clicycle/internal/component"
	"github.com/alexisbeaulieu97/clicycle/internal/logger"
	"github.com/alexisbeaulieu97/clicycle/internal/theme"
)

// Stream owns the output sink and the single piece of mutable state in
// the system: the kind of the last rendered component. One Stream serves
// one session; it must not be shared between concurrent writers, since
// the spacing decision is inherently sequential.
type Stream struct {
	out   io.Writer
	theme theme.Theme
	log   *logger.Logger

	last *theme.Kind
}

// Option configures a Stream.
type Option func(*Stream)

// WithLogger attaches a diagnostics logger to the stream.
func WithLogger(log *logger.Logger) Option {
	return func(s *Stream) { s.log = log }
}

// New creates a stream writing to out with the given theme.
func New(out io.Writer, th theme.Theme, opts ...Option) *Stream {
	s := &Stream{out: out, theme: th}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Theme returns the theme the stream renders with.
func (s *Stream) Theme() theme.Theme { return s.theme }

// Render writes the component to the sink, preceded by the blank lines
// the spacing table requires for the (previous, next) kind transition.
// Writes are fire-and-forget: a sink failure propagates immediately and
// nothing is retried or buffered.
func (s *Stream) Render(c component.Component) error {
	next := c.Kind()
	gap := s.theme.Spacing.Before(s.last, next)
	s.logSpacing(next, gap)

	if gap > 0 {
		if _, err := io.WriteString(s.out, strings.Repeat("\n", gap)); err != nil {
			return err
		}
	}

	view := c.View(component.NewContext(s.theme))
	if _, err := io.WriteString(s.out, view+"\n"); err != nil {
		return err
	}

	kind := next
	s.last = &kind
	return nil
}

// Reset clears the last-rendered state, so the next component renders
// without leading blank lines.
func (s *Stream) Reset() {
	s.last = nil
}

// Close flushes the sink when it is buffered. The stream itself holds
// no other resources.
func (s *Stream) Close() error {
	if f, ok := s.out.(interface{ Flush() error }); ok {
		return f.Flush()
	}
	return nil
}

func (s *Stream) logSpacing(next theme.Kind, gap int) {
	if s.log == nil {
		return
	}
	prev := "none"
	if s.last != nil {
		prev = s.last.String()
	}
	s.log.Spacing(prev, next.String(), gap)
}
