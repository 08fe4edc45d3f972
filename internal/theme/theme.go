package theme

import (
	"github.com/charmbracelet/lipgloss"

	apperrors "github.com/alexisbeaulieu97/clicycle/pkg/errors"
)

// Icons maps status kinds and markers to their glyphs.
type Icons struct {
	Info    string
	Success string
	Warning string
	Error   string
	Debug   string
	Cursor  string
	Bullet  string
}

// Typography groups the lipgloss styles used by each text role. Styles
// are pure data; components apply them but never modify them.
type Typography struct {
	Header    lipgloss.Style
	Subtitle  lipgloss.Style
	Section   lipgloss.Style
	Rule      lipgloss.Style
	Info      lipgloss.Style
	Success   lipgloss.Style
	Warning   lipgloss.Style
	Error     lipgloss.Style
	Debug     lipgloss.Style
	Label     lipgloss.Style
	Value     lipgloss.Style
	Code      lipgloss.Style
	Prompt    lipgloss.Style
	Selection lipgloss.Style
	TableCell lipgloss.Style
	TableHead lipgloss.Style
}

// Layout holds terminal geometry constraints consulted at render time.
type Layout struct {
	// Width is the total width budget for any rendered component.
	Width int
	// MinColumnWidth is the floor below which table columns are never
	// shrunk; overflowing cells are ellipsis-truncated instead.
	MinColumnWidth int
}

// Theme is an immutable value object describing how components look and
// how they are spaced. Create one with Default, optionally overlay a
// file with Load, and share it read-only between the facade and the
// render stream.
type Theme struct {
	Icons      Icons
	Typography Typography
	Layout     Layout
	Spacing    Spacing
}

// Default returns the stock theme.
func Default() Theme {
	ac := func(light, dark string) lipgloss.AdaptiveColor {
		return lipgloss.AdaptiveColor{Light: light, Dark: dark}
	}

	base := lipgloss.NewStyle()

	typography := Typography{
		Header:    base.Bold(true).Foreground(ac("#2563eb", "#60a5fa")),
		Subtitle:  base.Faint(true),
		Section:   base.Bold(true).Foreground(ac("#7c3aed", "#c084fc")),
		Rule:      base.Faint(true),
		Info:      base,
		Success:   base.Foreground(ac("#16a34a", "#4ade80")),
		Warning:   base.Foreground(ac("#ca8a04", "#facc15")),
		Error:     base.Foreground(ac("#dc2626", "#f87171")),
		Debug:     base.Faint(true),
		Label:     base.Faint(true),
		Value:     base,
		Code:      base.Foreground(ac("#7c3aed", "#c084fc")),
		Prompt:    base.Bold(true),
		Selection: base.Bold(true).Foreground(ac("#16a34a", "#4ade80")),
		TableCell: base.Padding(0, 1),
		TableHead: base.Bold(true).Padding(0, 1),
	}

	return Theme{
		Icons: Icons{
			Info:    "ℹ",
			Success: "✔",
			Warning: "⚠",
			Error:   "✖",
			Debug:   "⚙",
			Cursor:  "→",
			Bullet:  "•",
		},
		Typography: typography,
		Layout: Layout{
			Width:          100,
			MinColumnWidth: 8,
		},
		Spacing: DefaultSpacing(),
	}
}

// Normalize returns a copy of the theme with zero-value fields filled
// from the defaults, so a partially specified theme is still render-safe.
func (t Theme) Normalize() Theme {
	def := Default()

	if t.Layout.Width <= 0 {
		t.Layout.Width = def.Layout.Width
	}
	if t.Layout.MinColumnWidth <= 0 {
		t.Layout.MinColumnWidth = def.Layout.MinColumnWidth
	}
	if t.Spacing.Rules == nil {
		t.Spacing = def.Spacing.clone()
	}
	if t.Icons == (Icons{}) {
		t.Icons = def.Icons
	}
	return t
}

// Validate rejects malformed theme data. It runs at construction time:
// render code never re-checks these invariants.
func (t Theme) Validate() error {
	if t.Layout.Width <= 0 {
		return apperrors.NewValidationError("layout.width", "terminal width must be positive", nil)
	}
	if t.Layout.MinColumnWidth <= 0 {
		return apperrors.NewValidationError("layout.min_column_width", "minimum column width must be positive", nil)
	}
	if t.Spacing.Default < 0 {
		return apperrors.NewValidationError("spacing.default", "blank line count must not be negative", nil)
	}
	for tr, n := range t.Spacing.Rules {
		if n < 0 {
			field := "spacing." + tr.Prev.String() + "->" + tr.Next.String()
			return apperrors.NewValidationError(field, "blank line count must not be negative", nil)
		}
	}
	return nil
}
