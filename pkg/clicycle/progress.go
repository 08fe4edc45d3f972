package clicycle

import (
	"io"

	"github.com/muesli/termenv"

	"github.com/alexisbeaulieu97/clicycle/internal/component"
)

// Task is the handle returned by Progress. Advance and Close rewrite
// the progress line in place; neither touches any other line.
type Task struct {
	cli    *Clicycle
	comp   component.Progress
	output *termenv.Output
	done   bool
}

// Progress renders a progress line for total units of work and returns
// the handle that advances it. The line participates in spacing like
// any other component.
func (c *Clicycle) Progress(description string, total int) (*Task, error) {
	comp := component.NewProgress(description, total)
	if err := c.stream.Render(comp); err != nil {
		return nil, err
	}
	return &Task{cli: c, comp: comp, output: termenv.NewOutput(c.out)}, nil
}

// Advance moves completion forward by n units and rewrites the line.
// Calls after Close are no-ops.
func (t *Task) Advance(n int) error {
	if t.done {
		return nil
	}
	t.comp = t.comp.Advanced(n)
	return t.rewrite()
}

// Close completes the task, filling the bar and rewriting the line one
// last time.
func (t *Task) Close() error {
	if t.done {
		return nil
	}
	t.done = true
	if t.comp.Total > 0 && t.comp.Current < t.comp.Total {
		t.comp = t.comp.Advanced(t.comp.Total - t.comp.Current)
	}
	return t.rewrite()
}

// rewrite moves the cursor up onto the progress line, clears it, and
// renders the current state. The cursor ends back below the line, where
// the stream left it.
func (t *Task) rewrite() error {
	t.output.CursorUp(1)
	t.output.ClearLine()
	view := t.comp.View(component.NewContext(t.cli.theme))
	_, err := io.WriteString(t.cli.out, "\r"+view+"\n")
	return err
}
