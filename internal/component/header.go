package component

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/clicycle/internal/theme"
)

// Header is a page-level title with an optional subtitle, underlined by
// a full-width rule.
type Header struct {
	Title    string
	Subtitle string
}

// NewHeader creates a header component.
func NewHeader(title, subtitle string) Header {
	return Header{Title: title, Subtitle: subtitle}
}

// Kind reports the component kind.
func (h Header) Kind() theme.Kind { return theme.KindHeader }

// View renders the header.
func (h Header) View(ctx RenderContext) string {
	typo := ctx.Theme.Typography

	lines := []string{typo.Header.Render(h.Title)}
	if h.Subtitle != "" {
		lines = append(lines, typo.Subtitle.Render(h.Subtitle))
	}
	lines = append(lines, typo.Rule.Render(strings.Repeat("─", ctx.Width)))

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
