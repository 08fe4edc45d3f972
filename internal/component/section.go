package component

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/clicycle/internal/theme"
)

// Section is a titled horizontal rule dividing output into groups.
type Section struct {
	Title string
}

// NewSection creates a section divider.
func NewSection(title string) Section {
	return Section{Title: title}
}

// Kind reports the component kind.
func (s Section) Kind() theme.Kind { return theme.KindSection }

// View renders the section rule, embedding the title near the left edge.
func (s Section) View(ctx RenderContext) string {
	typo := ctx.Theme.Typography

	if s.Title == "" {
		return typo.Rule.Render(strings.Repeat("─", ctx.Width))
	}

	title := typo.Section.Render(s.Title)
	lead := typo.Rule.Render("── ")

	used := lipgloss.Width(lead) + lipgloss.Width(title) + 1
	remaining := ctx.Width - used
	if remaining < 1 {
		remaining = 1
	}
	tail := typo.Rule.Render(strings.Repeat("─", remaining))

	return lead + title + " " + tail
}
