package surface

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/mrz1836/clockface/internal/errors"
)

// namedColors maps the CSS color names accepted in configuration to hex values.
//
//nolint:gochecknoglobals // Lookup table
var namedColors = map[string]string{
	"black":   "#000000",
	"white":   "#ffffff",
	"gray":    "#808080",
	"grey":    "#808080",
	"silver":  "#c0c0c0",
	"red":     "#ff0000",
	"crimson": "#dc143c",
	"orange":  "#ffa500",
	"gold":    "#ffd700",
	"yellow":  "#ffff00",
	"green":   "#008000",
	"lime":    "#00ff00",
	"teal":    "#008080",
	"cyan":    "#00ffff",
	"blue":    "#0000ff",
	"navy":    "#000080",
	"purple":  "#800080",
	"magenta": "#ff00ff",
	"pink":    "#ffc0cb",
	"hotpink": "#ff69b4",
}

// ParseColor accepts a #rrggbb / #rgb hex value or a CSS color name.
func ParseColor(s string) (color.Color, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	if v == "" {
		return nil, fmt.Errorf("%w: %w", errors.ErrInvalidColor, errors.ErrEmptyValue)
	}
	if hex, ok := namedColors[v]; ok {
		v = hex
	}
	if !strings.HasPrefix(v, "#") || (len(v) != 4 && len(v) != 7) {
		return nil, fmt.Errorf("%w: %q", errors.ErrInvalidColor, s)
	}
	c, err := colorful.Hex(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", errors.ErrInvalidColor, s)
	}
	return c, nil
}

// Hex formats c as #rrggbb. A nil or fully transparent color yields "".
func Hex(c color.Color) string {
	if c == nil {
		return ""
	}
	cf, ok := colorful.MakeColor(c)
	if !ok {
		return ""
	}
	return cf.Hex()
}
