package clicycle

import (
	"fmt"
	"os"

	"github.com/muesli/termenv"

	"github.com/alexisbeaulieu97/clicycle/internal/component"
	"github.com/alexisbeaulieu97/clicycle/internal/interactive"
)

// Choice is one entry of an interactive menu. Value is what a selection
// returns; when empty the label stands in for it.
type Choice struct {
	Label string
	Value string
}

// InteractiveSelect shows an arrow-key menu over choices, highlighting
// defaultIndex first. It returns the chosen value and true on Enter, or
// "" and false when the user cancels or choices is empty. The cursor is
// re-shown on every exit path.
//
// Requires a terminal on stdin; non-interactive callers should use
// SelectFromList instead.
func (c *Clicycle) InteractiveSelect(title string, choices []Choice, defaultIndex int) (string, bool, error) {
	if len(choices) == 0 {
		return "", false, nil
	}

	term := c.term
	if term == nil {
		if !interactive.IsTerminal(os.Stdin) {
			return "", false, fmt.Errorf("interactive selection requires a terminal on stdin")
		}
		term = interactive.NewTTY(os.Stdin, termenv.NewOutput(c.out))
	}

	options := make([]interactive.Option, 0, len(choices))
	for _, choice := range choices {
		options = append(options, interactive.Option{Label: choice.Label, Value: choice.Value})
	}

	selector := interactive.NewSelector(title, options, defaultIndex, c.theme, c.out, term)
	value, ok, err := selector.Run()
	if err != nil || !ok {
		return "", false, err
	}

	if err := c.stream.Render(component.NewPromptEcho(title, value)); err != nil {
		return "", false, err
	}
	return value, true, nil
}
