package clicycle

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/alexisbeaulieu97/clicycle/pkg/errors"
)

func newTestCLI(t *testing.T, input string) (*Clicycle, *bytes.Buffer) {
	t.Helper()

	out := &bytes.Buffer{}
	cli, err := New(WithOutput(out), WithInput(strings.NewReader(input)))
	require.NoError(t, err)
	return cli, out
}

func TestSelectFromListBasic(t *testing.T) {
	t.Parallel()

	cli, out := newTestCLI(t, "2\n")

	result, err := cli.SelectFromList("fruit", []string{"apple", "banana", "cherry"}, "")
	require.NoError(t, err)
	assert.Equal(t, "banana", result)

	assert.Contains(t, out.String(), "1.")
	assert.Contains(t, out.String(), "cherry")
}

func TestSelectFromListWithDefaultAccepted(t *testing.T) {
	t.Parallel()

	cli, out := newTestCLI(t, "\n")

	result, err := cli.SelectFromList("fruit", []string{"apple", "banana", "cherry"}, "apple")
	require.NoError(t, err)
	assert.Equal(t, "apple", result)
	assert.Contains(t, out.String(), "[1]", "default index is shown pre-filled")
}

func TestSelectFromListDefaultIndexEntered(t *testing.T) {
	t.Parallel()

	cli, _ := newTestCLI(t, "1\n")

	result, err := cli.SelectFromList("fruit", []string{"apple", "banana", "cherry"}, "apple")
	require.NoError(t, err)
	assert.Equal(t, "apple", result)
}

func TestSelectFromListChoiceTooLow(t *testing.T) {
	t.Parallel()

	cli, _ := newTestCLI(t, "0\n")

	_, err := cli.SelectFromList("fruit", []string{"apple", "banana", "cherry"}, "")
	var selErr *apperrors.SelectionError
	require.ErrorAs(t, err, &selErr)
	assert.Equal(t, "0", selErr.Input)
	assert.Equal(t, 3, selErr.Max)
}

func TestSelectFromListChoiceTooHigh(t *testing.T) {
	t.Parallel()

	cli, _ := newTestCLI(t, "4\n")

	_, err := cli.SelectFromList("fruit", []string{"apple", "banana", "cherry"}, "")
	var selErr *apperrors.SelectionError
	assert.ErrorAs(t, err, &selErr)
}

func TestSelectFromListNonNumericInput(t *testing.T) {
	t.Parallel()

	cli, _ := newTestCLI(t, "not a number\n")

	_, err := cli.SelectFromList("fruit", []string{"apple", "banana", "cherry"}, "")
	var selErr *apperrors.SelectionError
	require.ErrorAs(t, err, &selErr)
	assert.Contains(t, err.Error(), "between 1 and 3")
}

func TestSelectFromListEmptyInputWithoutDefault(t *testing.T) {
	t.Parallel()

	cli, _ := newTestCLI(t, "\n")

	_, err := cli.SelectFromList("fruit", []string{"apple", "banana", "cherry"}, "")
	var selErr *apperrors.SelectionError
	assert.ErrorAs(t, err, &selErr)
}

func TestSelectFromListEmptyOptions(t *testing.T) {
	t.Parallel()

	cli, out := newTestCLI(t, "1\n")

	_, err := cli.SelectFromList("item", nil, "")
	var selErr *apperrors.SelectionError
	require.ErrorAs(t, err, &selErr)
	assert.Equal(t, 0, selErr.Max)
	assert.Empty(t, out.String(), "nothing is rendered for an empty list")
}

func TestSelectFromListDefaultNotInOptions(t *testing.T) {
	t.Parallel()

	cli, out := newTestCLI(t, "2\n")

	result, err := cli.SelectFromList("fruit", []string{"apple", "banana", "cherry"}, "orange")
	require.NoError(t, err)
	assert.Equal(t, "banana", result)
	assert.NotContains(t, out.String(), "[", "absent default is silently ignored")
}

func TestSelectFromListSingleOption(t *testing.T) {
	t.Parallel()

	cli, _ := newTestCLI(t, "1\n")

	result, err := cli.SelectFromList("item", []string{"only_choice"}, "")
	require.NoError(t, err)
	assert.Equal(t, "only_choice", result)
}

func TestSelectFromListSingleOptionStillRequiresInput(t *testing.T) {
	t.Parallel()

	cli, _ := newTestCLI(t, "\n")

	_, err := cli.SelectFromList("item", []string{"only_choice"}, "")
	var selErr *apperrors.SelectionError
	assert.ErrorAs(t, err, &selErr, "a one-element list is never auto-selected")
}

func TestSelectFromListEchoesSelection(t *testing.T) {
	t.Parallel()

	cli, out := newTestCLI(t, "3\n")

	_, err := cli.SelectFromList("fruit", []string{"apple", "banana", "cherry"}, "")
	require.NoError(t, err)
	assert.Contains(t, out.String(), "fruit")
	assert.Contains(t, out.String(), "cherry")
}
