package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/alexisbeaulieu97/clicycle/pkg/errors"
)

func TestDefaultThemeIsValid(t *testing.T) {
	t.Parallel()

	th := Default()
	require.NoError(t, th.Validate())

	assert.Equal(t, 100, th.Layout.Width)
	assert.Equal(t, 1, th.Spacing.Default)
	assert.NotEmpty(t, th.Icons.Success)
	assert.True(t, th.Typography.Header.GetBold(), "header typography should be bold")
}

func TestValidateRejectsNegativeSpacing(t *testing.T) {
	t.Parallel()

	th := Default()
	th.Spacing = th.Spacing.clone()
	th.Spacing.Rules[Transition{Prev: KindHeader, Next: KindText}] = -1

	err := th.Validate()
	require.Error(t, err)

	var valErr *apperrors.ValidationError
	assert.ErrorAs(t, err, &valErr)
}

func TestValidateRejectsNegativeDefault(t *testing.T) {
	t.Parallel()

	th := Default()
	th.Spacing.Default = -2

	var valErr *apperrors.ValidationError
	assert.ErrorAs(t, th.Validate(), &valErr)
}

func TestValidateRejectsNonPositiveWidth(t *testing.T) {
	t.Parallel()

	th := Default()
	th.Layout.Width = 0

	var valErr *apperrors.ValidationError
	assert.ErrorAs(t, th.Validate(), &valErr)
}

func TestNormalizeFillsZeroFields(t *testing.T) {
	t.Parallel()

	th := Theme{}.Normalize()
	require.NoError(t, th.Validate())

	assert.Equal(t, Default().Layout.Width, th.Layout.Width)
	assert.NotNil(t, th.Spacing.Rules)
	assert.NotEmpty(t, th.Icons.Error)
}

func TestKindRoundTrip(t *testing.T) {
	t.Parallel()

	for _, kind := range Kinds() {
		parsed, err := ParseKind(kind.String())
		require.NoError(t, err)
		assert.Equal(t, kind, parsed)
	}

	_, err := ParseKind("banner")
	assert.Error(t, err)
}
