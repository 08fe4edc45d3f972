package component

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/clicycle/internal/theme"
)

// SummaryItem is one label/value pair of a summary block.
type SummaryItem struct {
	Label string
	Value string
}

// Summary renders aligned label/value pairs. Items keep their given
// order; the label column is padded to the longest label.
type Summary struct {
	Items []SummaryItem
}

// NewSummary creates a summary component.
func NewSummary(items []SummaryItem) Summary {
	return Summary{Items: items}
}

// Kind reports the component kind.
func (s Summary) Kind() theme.Kind { return theme.KindSummary }

// View renders one line per item.
func (s Summary) View(ctx RenderContext) string {
	typo := ctx.Theme.Typography

	widest := 0
	for _, item := range s.Items {
		if w := lipgloss.Width(item.Label); w > widest {
			widest = w
		}
	}

	lines := make([]string, 0, len(s.Items))
	for _, item := range s.Items {
		pad := strings.Repeat(" ", widest-lipgloss.Width(item.Label))
		lines = append(lines, typo.Label.Render(item.Label+pad)+"  "+typo.Value.Render(item.Value))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
