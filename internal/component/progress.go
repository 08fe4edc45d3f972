package component

import (
	"fmt"
	"math"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/clicycle/internal/theme"
)

const progressBarWidth = 30

// Progress is a single-line progress indicator: description, completion
// count, and a bar. The view is one line so the owning task can rewrite
// it in place as work advances.
type Progress struct {
	Description string
	Total       int
	Current     int

	bar progress.Model
}

// NewProgress creates a progress component for the given total.
func NewProgress(description string, total int) Progress {
	bar := progress.New(progress.WithDefaultGradient())
	bar.Width = progressBarWidth
	return Progress{Description: description, Total: total, bar: bar}
}

// Advanced returns a copy of the component with the completion count
// moved forward by n, clamped to the total.
func (p Progress) Advanced(n int) Progress {
	p.Current += n
	if p.Total > 0 && p.Current > p.Total {
		p.Current = p.Total
	}
	return p
}

// Kind reports the component kind.
func (p Progress) Kind() theme.Kind { return theme.KindProgress }

// View renders the progress line for the current completion count.
func (p Progress) View(ctx RenderContext) string {
	ratio := 0.0
	if p.Total > 0 {
		ratio = math.Min(1.0, float64(p.Current)/float64(p.Total))
	}

	typo := ctx.Theme.Typography
	label := typo.Prompt.Render(fmt.Sprintf("%d/%d", p.Current, p.Total))
	desc := typo.Info.Render(p.Description)

	return lipgloss.JoinHorizontal(lipgloss.Left, desc, " ", label, " ", p.bar.ViewAs(ratio))
}
