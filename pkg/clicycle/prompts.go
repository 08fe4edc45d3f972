package clicycle

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/alexisbeaulieu97/clicycle/internal/component"
	apperrors "github.com/alexisbeaulieu97/clicycle/pkg/errors"
)

// SelectFromList presents a 1-indexed numbered list and reads one line
// of input. Input that does not parse to an index within
// [1, len(options)], including any input against an empty list, returns
// a SelectionError; nothing is retried or corrected.
//
// When defaultOption names an entry of options, its index is shown
// pre-filled and empty input accepts it. A default absent from options
// is silently ignored.
func (c *Clicycle) SelectFromList(title string, options []string, defaultOption string) (string, error) {
	if len(options) == 0 {
		return "", apperrors.NewSelectionError("", 0)
	}

	defaultIndex := -1
	if defaultOption != "" {
		for i, opt := range options {
			if opt == defaultOption {
				defaultIndex = i
				break
			}
		}
	}

	items := make([]SummaryItem, 0, len(options))
	for i, opt := range options {
		items = append(items, SummaryItem{Label: strconv.Itoa(i + 1) + ".", Value: opt})
	}
	if err := c.Summary(items); err != nil {
		return "", err
	}

	prompt := fmt.Sprintf("Select %s", title)
	if defaultIndex >= 0 {
		prompt = fmt.Sprintf("%s [%d]", prompt, defaultIndex+1)
	}
	if _, err := io.WriteString(c.out, c.theme.Typography.Prompt.Render(prompt+":")+" "); err != nil {
		return "", err
	}

	line, err := c.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}

	input := strings.TrimSpace(line)
	index := defaultIndex
	if input != "" || defaultIndex < 0 {
		n, convErr := strconv.Atoi(input)
		if convErr != nil || n < 1 || n > len(options) {
			return "", apperrors.NewSelectionError(input, len(options))
		}
		index = n - 1
	}

	selected := options[index]
	if err := c.stream.Render(component.NewPromptEcho(title, selected)); err != nil {
		return "", err
	}
	return selected, nil
}
