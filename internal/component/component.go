// Package component defines the renderable component variants of the
// clicycle output model. Each component is an immutable value carrying
// only the data needed to render itself once; the render stream decides
// spacing from its Kind and discards it afterwards.
package component

import (
	"github.com/alexisbeaulieu97/clicycle/internal/theme"
)

// RenderContext provides the theme and width budget to components during
// rendering. Passing context explicitly keeps components free of global
// state and lets tests render against any theme.
type RenderContext struct {
	Theme theme.Theme
	Width int
}

// NewContext builds a render context from a theme, taking the width
// budget from the theme layout.
func NewContext(th theme.Theme) RenderContext {
	return RenderContext{Theme: th, Width: th.Layout.Width}
}

// Component is one renderable unit of CLI output. View must return the
// fully styled visual form without leading or trailing blank lines; the
// stream owns all vertical spacing between components.
type Component interface {
	Kind() theme.Kind
	View(ctx RenderContext) string
}
