package surface

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrz1836/clockface/internal/errors"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"pink", "#ffc0cb"},
		{"PINK", "#ffc0cb"},
		{" black ", "#000000"},
		{"#FF69B4", "#ff69b4"},
		{"#fff", "#ffffff"},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			c, err := ParseColor(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, Hex(c))
		})
	}
}

func TestParseColor_Invalid(t *testing.T) {
	for _, in := range []string{"", "not-a-color", "#12345", "#gggggg"} {
		t.Run(in, func(t *testing.T) {
			_, err := ParseColor(in)
			require.ErrorIs(t, err, errors.ErrInvalidColor)
		})
	}
}

func TestHex(t *testing.T) {
	assert.Empty(t, Hex(nil))
	assert.Empty(t, Hex(color.Transparent))
	assert.Equal(t, "#ff0000", Hex(color.RGBA{R: 255, A: 255}))
}
