package render

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/clicycle/internal/component"
	"github.com/alexisbeaulieu97/clicycle/internal/theme"
)

func testTheme() theme.Theme {
	th := theme.Default()
	th.Layout.Width = 40
	return th
}

// blankLines counts empty lines in rendered output. Component views
// never contain blank lines themselves, so every empty line comes from
// the spacing engine.
func blankLines(out string) int {
	count := 0
	for _, line := range strings.Split(strings.TrimSuffix(out, "\n"), "\n") {
		if line == "" {
			count++
		}
	}
	return count
}

func TestFirstRenderHasNoLeadingBlankLines(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	stream := New(buf, testTheme())

	require.NoError(t, stream.Render(component.NewText(component.StatusInfo, "hello")))
	assert.False(t, strings.HasPrefix(buf.String(), "\n"))
	assert.Equal(t, 0, blankLines(buf.String()))
}

func TestConsecutiveTextLinesStackTightly(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	stream := New(buf, testTheme())

	require.NoError(t, stream.Render(component.NewText(component.StatusInfo, "one")))
	require.NoError(t, stream.Render(component.NewText(component.StatusSuccess, "two")))

	assert.Equal(t, 0, blankLines(buf.String()))
}

func TestBlankLinesMatchRuleTable(t *testing.T) {
	t.Parallel()

	th := testTheme()
	buf := &bytes.Buffer{}
	stream := New(buf, th)

	require.NoError(t, stream.Render(component.NewHeader("App", "")))
	require.NoError(t, stream.Render(component.NewSection("Results")))

	header := theme.KindHeader
	want := th.Spacing.Before(&header, theme.KindSection)
	assert.Equal(t, want, blankLines(buf.String()))
}

func TestBlankLineTotalOverSequence(t *testing.T) {
	t.Parallel()

	th := testTheme()
	buf := &bytes.Buffer{}
	stream := New(buf, th)

	sequence := []component.Component{
		component.NewHeader("App", ""),
		component.NewSection("Checks"),
		component.NewText(component.StatusInfo, "first"),
		component.NewText(component.StatusSuccess, "second"),
		component.NewSummary([]component.SummaryItem{{Label: "total", Value: "2"}}),
		component.NewSection("Done"),
	}

	want := 0
	var prev *theme.Kind
	for _, c := range sequence {
		want += th.Spacing.Before(prev, c.Kind())
		kind := c.Kind()
		prev = &kind
	}

	for _, c := range sequence {
		require.NoError(t, stream.Render(c))
	}

	assert.Equal(t, want, blankLines(buf.String()),
		"total blank lines must equal the sum of the per-transition rules")
}

func TestRenderIndependentOfContent(t *testing.T) {
	t.Parallel()

	th := testTheme()

	short := &bytes.Buffer{}
	stream := New(short, th)
	require.NoError(t, stream.Render(component.NewText(component.StatusInfo, "a")))
	require.NoError(t, stream.Render(component.NewText(component.StatusInfo, "b")))

	long := &bytes.Buffer{}
	stream = New(long, th)
	require.NoError(t, stream.Render(component.NewText(component.StatusInfo, strings.Repeat("x", 200))))
	require.NoError(t, stream.Render(component.NewText(component.StatusInfo, strings.Repeat("y", 200))))

	assert.Equal(t, blankLines(short.String()), blankLines(long.String()),
		"spacing depends on kinds, not content")
}

func TestResetClearsLastKind(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	stream := New(buf, testTheme())

	require.NoError(t, stream.Render(component.NewSection("one")))
	stream.Reset()
	buf.Reset()

	require.NoError(t, stream.Render(component.NewSection("two")))
	assert.Equal(t, 0, blankLines(buf.String()))
}

type failWriter struct {
	err error
}

func (w failWriter) Write([]byte) (int, error) { return 0, w.err }

func TestRenderPropagatesSinkFailure(t *testing.T) {
	t.Parallel()

	sinkErr := errors.New("broken pipe")
	stream := New(failWriter{err: sinkErr}, testTheme())

	err := stream.Render(component.NewText(component.StatusInfo, "hello"))
	assert.ErrorIs(t, err, sinkErr)
}

func TestCloseFlushesBufferedSink(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	flusher := &countingFlusher{Buffer: buf}
	stream := New(flusher, testTheme())

	require.NoError(t, stream.Render(component.NewText(component.StatusInfo, "hello")))
	require.NoError(t, stream.Close())
	assert.Equal(t, 1, flusher.flushes)
}

type countingFlusher struct {
	*bytes.Buffer
	flushes int
}

func (c *countingFlusher) Flush() error {
	c.flushes++
	return nil
}
