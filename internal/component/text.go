package component

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/clicycle/internal/theme"
)

// Status classifies a text line by severity.
type Status int

const (
	StatusInfo Status = iota
	StatusSuccess
	StatusWarning
	StatusError
	StatusDebug
)

// Text is a single status line: an icon glyph followed by a styled message.
type Text struct {
	Status  Status
	Message string
}

// NewText creates a status line component.
func NewText(status Status, message string) Text {
	return Text{Status: status, Message: message}
}

// Kind reports the component kind.
func (t Text) Kind() theme.Kind { return theme.KindText }

// View renders the icon and message in the status style.
func (t Text) View(ctx RenderContext) string {
	icon, style := t.look(ctx.Theme)
	return style.Render(icon + " " + t.Message)
}

func (t Text) look(th theme.Theme) (string, lipgloss.Style) {
	icons, typo := th.Icons, th.Typography
	switch t.Status {
	case StatusSuccess:
		return icons.Success, typo.Success
	case StatusWarning:
		return icons.Warning, typo.Warning
	case StatusError:
		return icons.Error, typo.Error
	case StatusDebug:
		return icons.Debug, typo.Debug
	default:
		return icons.Info, typo.Info
	}
}
