package component

import (
	"strings"

	"github.com/alecthomas/chroma/v2/quick"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/clicycle/internal/theme"
)

const chromaStyle = "monokai"

// Code is a source snippet, syntax-highlighted when a language hint is
// given and the highlighter accepts it.
type Code struct {
	Source   string
	Language string
}

// NewCode creates a code block component.
func NewCode(source, language string) Code {
	return Code{Source: source, Language: language}
}

// Kind reports the component kind.
func (c Code) Kind() theme.Kind { return theme.KindCode }

// View highlights the source via chroma, falling back to the theme's
// plain code style when no language is given or highlighting fails.
func (c Code) View(ctx RenderContext) string {
	source := strings.TrimRight(c.Source, "\n")

	if c.Language != "" {
		var buf strings.Builder
		if err := quick.Highlight(&buf, source, c.Language, "terminal256", chromaStyle); err == nil {
			return strings.TrimRight(buf.String(), "\n")
		}
	}

	style := ctx.Theme.Typography.Code
	lines := strings.Split(source, "\n")
	for i, line := range lines {
		lines[i] = style.Render(line)
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
