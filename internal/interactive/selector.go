// Package interactive implements the arrow-key menu selector: a small
// state machine over decoded key events with an in-place, two-line
// redraw per index change.
package interactive

import (
	"io"
	"strings"

	"github.com/alexisbeaulieu97/clicycle/internal/theme"
)

// Option is one selectable menu entry. Value is what a selection
// returns; when empty the label stands in for it.
type Option struct {
	Label string
	Value string
}

// Selector renders a vertical menu and navigates it with arrow keys.
// Moving the highlight rewrites only the two affected lines, so redraw
// cost stays constant regardless of option count.
type Selector struct {
	title   string
	options []Option
	theme   theme.Theme

	out  io.Writer
	term Terminal

	index      int
	cursorLine int
}

// NewSelector creates a selector over the given options, highlighting
// defaultIndex first. An out-of-range defaultIndex is clamped.
func NewSelector(title string, options []Option, defaultIndex int, th theme.Theme, out io.Writer, term Terminal) *Selector {
	if defaultIndex < 0 {
		defaultIndex = 0
	}
	if n := len(options); n > 0 && defaultIndex >= n {
		defaultIndex = n - 1
	}
	return &Selector{
		title:   title,
		options: options,
		theme:   th,
		out:     out,
		term:    term,
		index:   defaultIndex,
	}
}

// Run draws the menu and loops on key events until a selection or a
// cancellation. It returns the selected option's value (its label when
// no value is set) and whether a selection was made. Cursor visibility
// is restored on every exit path, including read errors.
func (s *Selector) Run() (string, bool, error) {
	if len(s.options) == 0 {
		return "", false, nil
	}

	if err := s.draw(); err != nil {
		return "", false, err
	}

	s.term.SetCursorVisible(false)
	defer s.term.SetCursorVisible(true)

	for {
		key, err := s.term.ReadKey()
		if err != nil {
			return "", false, err
		}

		old := s.index
		switch key {
		case KeyUp:
			if s.index > 0 {
				s.index--
			}
		case KeyDown:
			if s.index < len(s.options)-1 {
				s.index++
			}
		case KeyEnter:
			if err := s.finish(); err != nil {
				return "", false, err
			}
			opt := s.options[s.index]
			value := opt.Value
			if value == "" {
				value = opt.Label
			}
			return value, true, nil
		case KeyQuit:
			if err := s.finish(); err != nil {
				return "", false, err
			}
			return "", false, nil
		default:
			continue
		}

		if s.index != old {
			if err := s.redraw(old); err != nil {
				return "", false, err
			}
		}
	}
}

// draw writes the title and the full menu once. Option i occupies line
// i below the menu top; the cursor ends up on the line after the menu.
func (s *Selector) draw() error {
	if s.title != "" {
		if err := s.write(s.theme.Typography.Prompt.Render(s.title) + "\n"); err != nil {
			return err
		}
	}

	for i := range s.options {
		if err := s.write(s.line(i) + "\n"); err != nil {
			return err
		}
	}

	s.cursorLine = len(s.options)
	return nil
}

// redraw rewrites exactly two lines: the previously highlighted one and
// the newly highlighted one, using relative cursor movement.
func (s *Selector) redraw(old int) error {
	s.term.MoveCursor(old - s.cursorLine)
	s.term.ClearLine()
	if err := s.write(s.line(old)); err != nil {
		return err
	}
	s.cursorLine = old

	s.term.MoveCursor(s.index - s.cursorLine)
	s.term.ClearLine()
	if err := s.write(s.line(s.index)); err != nil {
		return err
	}
	s.cursorLine = s.index

	return nil
}

// finish parks the cursor on the line below the menu so later output
// continues after it.
func (s *Selector) finish() error {
	s.term.MoveCursor(len(s.options) - s.cursorLine)
	s.cursorLine = len(s.options)
	return s.write("\r")
}

// line renders option i, highlighted when it is the current index.
func (s *Selector) line(i int) string {
	label := s.formatLabel(s.options[i])
	if i == s.index {
		return s.theme.Typography.Selection.Render(s.theme.Icons.Cursor + " " + label)
	}
	return "  " + label
}

// formatLabel applies the display rules for navigation entries: a label
// carrying the back marker renders with the arrow trailing, and the
// literal "Exit" gets the error glyph appended.
func (s *Selector) formatLabel(opt Option) string {
	if strings.Contains(opt.Label, "← Back") {
		return "Back ←"
	}
	if opt.Label == "Exit" {
		return "Exit " + s.theme.Icons.Error
	}
	return opt.Label
}

func (s *Selector) write(text string) error {
	_, err := io.WriteString(s.out, text)
	return err
}
