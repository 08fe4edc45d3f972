package clicycle

import (
	"bufio"
	"io"
	"os"

	"github.com/alexisbeaulieu97/clicycle/internal/component"
	"github.com/alexisbeaulieu97/clicycle/internal/interactive"
	"github.com/alexisbeaulieu97/clicycle/internal/logger"
	"github.com/alexisbeaulieu97/clicycle/internal/render"
	"github.com/alexisbeaulieu97/clicycle/internal/theme"
)

// SummaryItem is one label/value pair of a summary block. Items render
// in the order given.
type SummaryItem = component.SummaryItem

// Theme re-exports the theme value object for callers that customize
// icons, typography, layout, or spacing rules.
type Theme = theme.Theme

// DefaultTheme returns the stock theme.
func DefaultTheme() Theme { return theme.Default() }

// LoadTheme reads a theme overlay file and merges it over the defaults.
func LoadTheme(path string) (Theme, error) { return theme.Load(path) }

// Clicycle is the user-facing facade: one method per component kind,
// each a constructor plus a single render call. It owns exactly one
// render stream; the stream owns the only mutable state in the system.
type Clicycle struct {
	theme  theme.Theme
	stream *render.Stream
	out    io.Writer
	in     *bufio.Reader
	log    *logger.Logger

	// term overrides the raw terminal collaborator; nil means a real
	// TTY is acquired from stdin when interactive selection runs.
	term interactive.Terminal
}

// Option configures a Clicycle instance.
type Option func(*Clicycle)

// WithTheme replaces the default theme.
func WithTheme(th Theme) Option {
	return func(c *Clicycle) { c.theme = th }
}

// WithOutput redirects rendered output; the default is stdout.
func WithOutput(out io.Writer) Option {
	return func(c *Clicycle) { c.out = out }
}

// WithInput redirects prompt input; the default is stdin.
func WithInput(in io.Reader) Option {
	return func(c *Clicycle) { c.in = bufio.NewReader(in) }
}

// WithLogger attaches a diagnostics logger.
func WithLogger(log *logger.Logger) Option {
	return func(c *Clicycle) { c.log = log }
}

// New creates a Clicycle. Malformed theme data is rejected here, at
// construction time, so render calls never re-validate configuration.
func New(opts ...Option) (*Clicycle, error) {
	c := &Clicycle{
		theme: theme.Default(),
		out:   os.Stdout,
		in:    bufio.NewReader(os.Stdin),
	}
	for _, opt := range opts {
		opt(c)
	}

	c.theme = c.theme.Normalize()
	if err := c.theme.Validate(); err != nil {
		return nil, err
	}

	c.stream = render.New(c.out, c.theme, render.WithLogger(c.log))
	return c, nil
}

// Theme returns the theme the instance renders with.
func (c *Clicycle) Theme() Theme { return c.theme }

// Header renders a page title with an optional subtitle.
func (c *Clicycle) Header(title, subtitle string) error {
	return c.stream.Render(component.NewHeader(title, subtitle))
}

// Section renders a titled rule divider.
func (c *Clicycle) Section(title string) error {
	return c.stream.Render(component.NewSection(title))
}

// Info renders an informational status line.
func (c *Clicycle) Info(message string) error {
	return c.stream.Render(component.NewText(component.StatusInfo, message))
}

// Success renders a success status line.
func (c *Clicycle) Success(message string) error {
	return c.stream.Render(component.NewText(component.StatusSuccess, message))
}

// Warning renders a warning status line.
func (c *Clicycle) Warning(message string) error {
	return c.stream.Render(component.NewText(component.StatusWarning, message))
}

// Error renders an error status line.
func (c *Clicycle) Error(message string) error {
	return c.stream.Render(component.NewText(component.StatusError, message))
}

// Debug renders a debug status line.
func (c *Clicycle) Debug(message string) error {
	return c.stream.Render(component.NewText(component.StatusDebug, message))
}

// Table renders rows under a header row with an optional title. Column
// widths are decided once, capped to the theme's layout width.
func (c *Clicycle) Table(headers []string, rows [][]string, title string) error {
	return c.stream.Render(component.NewTable(headers, rows, title))
}

// Code renders a source snippet, syntax-highlighted when language names
// a lexer the highlighter knows.
func (c *Clicycle) Code(source, language string) error {
	return c.stream.Render(component.NewCode(source, language))
}

// Summary renders aligned label/value pairs in the given order.
func (c *Clicycle) Summary(items []SummaryItem) error {
	return c.stream.Render(component.NewSummary(items))
}

// Close flushes the output sink when it is buffered.
func (c *Clicycle) Close() error {
	return c.stream.Close()
}
