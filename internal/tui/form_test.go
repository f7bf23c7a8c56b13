package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cferrors "github.com/mrz1836/clockface/internal/errors"
)

func TestValidateRadius(t *testing.T) {
	t.Parallel()

	require.NoError(t, ValidateRadius("100"))
	require.NoError(t, ValidateRadius(" 20 "))
	require.NoError(t, ValidateRadius("1000"))
	require.ErrorIs(t, ValidateRadius(""), cferrors.ErrEmptyValue)
	require.ErrorIs(t, ValidateRadius("abc"), cferrors.ErrValueOutOfRange)
	require.ErrorIs(t, ValidateRadius("19.9"), cferrors.ErrValueOutOfRange)
	require.ErrorIs(t, ValidateRadius("1001"), cferrors.ErrValueOutOfRange)
}

func TestValidateInterval(t *testing.T) {
	t.Parallel()

	require.NoError(t, ValidateInterval("100ms"))
	require.NoError(t, ValidateInterval("10s"))
	require.ErrorIs(t, ValidateInterval(""), cferrors.ErrEmptyValue)
	require.ErrorIs(t, ValidateInterval("soon"), cferrors.ErrValueOutOfRange)
	require.ErrorIs(t, ValidateInterval("1ms"), cferrors.ErrValueOutOfRange)
	require.ErrorIs(t, ValidateInterval("1m"), cferrors.ErrValueOutOfRange)
}

func TestValidateTimezone(t *testing.T) {
	t.Parallel()

	require.NoError(t, ValidateTimezone(""))
	require.NoError(t, ValidateTimezone("UTC"))
	require.ErrorIs(t, ValidateTimezone("Nowhere/Special"), cferrors.ErrValueOutOfRange)
}

func TestValidateColor(t *testing.T) {
	t.Parallel()

	require.NoError(t, ValidateColor("pink"))
	require.NoError(t, ValidateColor("#abc"))
	require.ErrorIs(t, ValidateColor("#abcd"), cferrors.ErrInvalidColor)
}

func TestNewClockConfigForm(t *testing.T) {
	t.Parallel()

	v := &ConfigFormValues{Radius: "100", Interval: "100ms", Accent: "#123456", ErrorPolicy: "continue"}
	form := NewClockConfigForm(v)
	require.NotNil(t, form)
	assert.Equal(t, "100", v.Radius, "defaults are kept until the form runs")
}

func TestClockTheme(t *testing.T) {
	t.Parallel()

	theme := ClockTheme()
	require.NotNil(t, theme)
	assert.Equal(t, ColorPrimary, theme.Focused.Title.GetForeground())
	assert.Equal(t, ColorMuted, theme.Blurred.Title.GetForeground())
}

func TestAdaptWidth(t *testing.T) {
	t.Parallel()

	assert.Equal(t, DefaultFormWidth, adaptWidth(0))
	assert.Equal(t, MinFormWidth, adaptWidth(30))
	assert.Equal(t, 46, adaptWidth(50))
	assert.Equal(t, DefaultFormWidth, adaptWidth(200))
}

func TestContainsFold(t *testing.T) {
	t.Parallel()

	assert.True(t, containsFold(accentChoices, "Pink"))
	assert.False(t, containsFold(accentChoices, "#ffc0cb"))
}
