package component

import (
	"github.com/alexisbeaulieu97/clicycle/internal/theme"
)

// PromptEcho records the answer a prompt received, so accepted input
// takes part in the spacing flow like any other component.
type PromptEcho struct {
	Label string
	Value string
}

// NewPromptEcho creates a prompt echo line.
func NewPromptEcho(label, value string) PromptEcho {
	return PromptEcho{Label: label, Value: value}
}

// Kind reports the component kind.
func (p PromptEcho) Kind() theme.Kind { return theme.KindPromptEcho }

// View renders the label and the chosen value.
func (p PromptEcho) View(ctx RenderContext) string {
	typo := ctx.Theme.Typography
	return typo.Label.Render(p.Label+":") + " " + typo.Value.Render(p.Value)
}
