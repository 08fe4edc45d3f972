package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSpacingBeforeFirstRender(t *testing.T) {
	t.Parallel()

	spacing := DefaultSpacing()
	for _, next := range Kinds() {
		assert.Equal(t, 0, spacing.Before(nil, next), "first render of %s must not get leading blank lines", next)
	}
}

func TestSpacingBeforeIsTotal(t *testing.T) {
	t.Parallel()

	spacing := DefaultSpacing()
	for _, prev := range Kinds() {
		for _, next := range Kinds() {
			prev := prev
			got := spacing.Before(&prev, next)

			want := spacing.Default
			if explicit, ok := spacing.Rules[Transition{Prev: prev, Next: next}]; ok {
				want = explicit
			}
			assert.Equal(t, want, got, "pair (%s, %s)", prev, next)
			assert.GreaterOrEqual(t, got, 0)
		}
	}
}

func TestSpacingExplicitRuleWins(t *testing.T) {
	t.Parallel()

	spacing := Spacing{
		Default: 2,
		Rules: map[Transition]int{
			{Prev: KindText, Next: KindText}: 0,
		},
	}

	text := KindText
	header := KindHeader
	assert.Equal(t, 0, spacing.Before(&text, KindText))
	assert.Equal(t, 2, spacing.Before(&header, KindText), "unlisted pair falls back to default")
}

func TestSpacingCloneIsIndependent(t *testing.T) {
	t.Parallel()

	original := DefaultSpacing()
	copied := original.clone()
	copied.Rules[Transition{Prev: KindHeader, Next: KindHeader}] = 9

	_, ok := original.Rules[Transition{Prev: KindHeader, Next: KindHeader}]
	assert.False(t, ok, "mutating a clone must not touch the original")
}
