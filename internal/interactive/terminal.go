package interactive

import (
	"os"

	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// Terminal is the raw terminal collaborator the selector drives. The
// selector never emits control sequences itself; it only asks for
// cursor visibility, relative cursor movement, line clearing, and one
// decoded key per call.
type Terminal interface {
	SetCursorVisible(visible bool)
	// ReadKey blocks until one keypress is available and returns its
	// decoded event.
	ReadKey() (Key, error)
	// MoveCursor moves the cursor by the given number of lines:
	// negative is up, positive is down, zero is a no-op.
	MoveCursor(lines int)
	// ClearLine returns the cursor to column zero and erases the line.
	ClearLine()
}

// TTY implements Terminal against a real terminal device. Raw mode is
// scoped to each ReadKey call: the terminal is restored before the
// method returns on every path, so writes always happen in cooked mode.
type TTY struct {
	in  *os.File
	out *termenv.Output
}

// NewTTY creates a terminal collaborator reading keys from in and
// writing control sequences through out.
func NewTTY(in *os.File, out *termenv.Output) *TTY {
	return &TTY{in: in, out: out}
}

// IsTerminal reports whether f is attached to a terminal device.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// SetCursorVisible shows or hides the cursor.
func (t *TTY) SetCursorVisible(visible bool) {
	if visible {
		t.out.ShowCursor()
	} else {
		t.out.HideCursor()
	}
}

// ReadKey switches the input to raw mode, reads one keypress, and
// restores the previous mode before returning.
func (t *TTY) ReadKey() (Key, error) {
	fd := int(t.in.Fd())
	state, err := term.MakeRaw(fd)
	if err != nil {
		return KeyOther, err
	}
	defer term.Restore(fd, state) //nolint:errcheck

	var buf [8]byte
	n, err := t.in.Read(buf[:])
	if err != nil {
		return KeyOther, err
	}
	return decodeKey(buf[:n]), nil
}

// MoveCursor moves the cursor vertically by lines.
func (t *TTY) MoveCursor(lines int) {
	switch {
	case lines < 0:
		t.out.CursorUp(-lines)
	case lines > 0:
		t.out.CursorDown(lines)
	}
}

// ClearLine erases the current line and returns to column zero.
func (t *TTY) ClearLine() {
	_, _ = t.out.WriteString("\r")
	t.out.ClearLine()
}
