package component

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/alexisbeaulieu97/clicycle/internal/theme"
)

// Table renders rows of cells under a header row, with an optional
// title above the frame.
type Table struct {
	Title   string
	Headers []string
	Rows    [][]string
}

// NewTable creates a table component.
func NewTable(headers []string, rows [][]string, title string) Table {
	return Table{Title: title, Headers: headers, Rows: rows}
}

// Kind reports the component kind.
func (t Table) Kind() theme.Kind { return theme.KindTable }

// View sizes the columns once, truncates overflowing cells, and hands
// the result to lipgloss for box drawing. There is no dynamic reflow:
// the widths decided here are final.
func (t Table) View(ctx RenderContext) string {
	typo := ctx.Theme.Typography

	widths := t.columnWidths(ctx)
	headers := truncateRow(t.Headers, widths)
	rows := make([][]string, 0, len(t.Rows))
	for _, row := range t.Rows {
		rows = append(rows, truncateRow(row, widths))
	}

	frame := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(typo.Rule).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return typo.TableHead
			}
			return typo.TableCell
		}).
		Headers(headers...).
		Rows(rows...)

	rendered := frame.Render()
	if t.Title == "" {
		return rendered
	}
	return lipgloss.JoinVertical(lipgloss.Left, typo.Section.Render(t.Title), rendered)
}

// columnWidths computes content widths per column from the longest
// header or cell, shrunk so the full frame (borders plus one cell of
// padding per side) never exceeds the layout width. Columns stop
// shrinking at the theme's minimum column width unless even the
// minimums overflow, in which case the budget is split evenly.
func (t Table) columnWidths(ctx RenderContext) []int {
	cols := len(t.Headers)
	for _, row := range t.Rows {
		if len(row) > cols {
			cols = len(row)
		}
	}
	if cols == 0 {
		return nil
	}

	widths := make([]int, cols)
	measure := func(row []string) {
		for i, cell := range row {
			if w := lipgloss.Width(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}
	measure(t.Headers)
	for _, row := range t.Rows {
		measure(row)
	}

	// One border rune per column boundary plus one cell of padding on
	// each side of every column.
	overhead := cols + 1 + 2*cols
	available := ctx.Width - overhead
	minWidth := ctx.Theme.Layout.MinColumnWidth

	if available < cols*minWidth {
		even := available / cols
		if even < 1 {
			even = 1
		}
		for i := range widths {
			widths[i] = even
		}
		return widths
	}

	total := 0
	for _, w := range widths {
		total += w
	}
	for total > available {
		widest := 0
		for i := 1; i < cols; i++ {
			if widths[i] > widths[widest] {
				widest = i
			}
		}
		if widths[widest] <= minWidth {
			break
		}
		widths[widest]--
		total--
	}

	return widths
}

func truncateRow(row []string, widths []int) []string {
	out := make([]string, len(widths))
	for i := range widths {
		if i < len(row) {
			out[i] = truncate(row[i], widths[i])
		}
	}
	return out
}

// truncate cuts s to at most w cells, marking the cut with an ellipsis.
func truncate(s string, w int) string {
	if w <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= w {
		return s
	}
	if w == 1 {
		return "…"
	}
	return string(runes[:w-1]) + "…"
}
