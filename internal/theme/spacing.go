package theme

// Transition is an ordered (previous, next) component kind pair used as
// the key of the spacing rule table.
type Transition struct {
	Prev Kind
	Next Kind
}

// Spacing maps component transitions to the number of blank lines to
// emit between them. Pairs without an explicit rule fall back to
// Default, so lookup is total by construction.
type Spacing struct {
	Rules   map[Transition]int
	Default int
}

// Before returns the blank-line count to insert before rendering next.
// A nil prev means nothing has been rendered yet; the first component
// of a session never gets leading blank lines.
func (s Spacing) Before(prev *Kind, next Kind) int {
	if prev == nil {
		return 0
	}
	if n, ok := s.Rules[Transition{Prev: *prev, Next: next}]; ok {
		return n
	}
	return s.Default
}

// DefaultSpacing returns the stock rule table: one blank line between
// components, except consecutive status lines and prompt echoes which
// stack tightly.
func DefaultSpacing() Spacing {
	return Spacing{
		Default: 1,
		Rules: map[Transition]int{
			{Prev: KindText, Next: KindText}:             0,
			{Prev: KindText, Next: KindPromptEcho}:       0,
			{Prev: KindPromptEcho, Next: KindText}:       0,
			{Prev: KindPromptEcho, Next: KindPromptEcho}: 0,
			{Prev: KindProgress, Next: KindText}:         0,
			{Prev: KindSummary, Next: KindPromptEcho}:    0,
			{Prev: KindHeader, Next: KindSection}:        1,
			{Prev: KindSection, Next: KindText}:          1,
		},
	}
}

func (s Spacing) clone() Spacing {
	rules := make(map[Transition]int, len(s.Rules))
	for k, v := range s.Rules {
		rules[k] = v
	}
	return Spacing{Rules: rules, Default: s.Default}
}
