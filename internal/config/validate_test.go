package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrz1836/clockface/internal/errors"
)

func TestValidate_Nil(t *testing.T) {
	t.Parallel()

	require.ErrorIs(t, Validate(nil), errors.ErrConfigNil)
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
		wantMsg string
	}{
		{"defaults", func(*Config) {}, nil, ""},
		{"radius too small", func(c *Config) { c.Clock.Radius = 10 }, errors.ErrConfigInvalidClock, "clock.radius"},
		{"radius too large", func(c *Config) {
			c.Clock.Radius = 1200
			c.Surface.Width, c.Surface.Height = 3000, 3000
		}, errors.ErrConfigInvalidClock, "clock.radius"},
		{"radius at lower bound", func(c *Config) { c.Clock.Radius = MinRadius }, nil, ""},
		{"interval too short", func(c *Config) { c.Clock.Interval = time.Millisecond }, errors.ErrConfigInvalidClock, "clock.interval"},
		{"interval too long", func(c *Config) { c.Clock.Interval = time.Minute }, errors.ErrConfigInvalidClock, "clock.interval"},
		{"interval of one second", func(c *Config) { c.Clock.Interval = time.Second }, nil, ""},
		{"unknown timezone", func(c *Config) { c.Clock.Timezone = "Mars/Olympus_Mons" }, errors.ErrConfigInvalidClock, "clock.timezone"},
		{"utc timezone", func(c *Config) { c.Clock.Timezone = "UTC" }, nil, ""},
		{"bad error policy", func(c *Config) { c.Clock.ErrorPolicy = "retry" }, errors.ErrConfigInvalidClock, "clock.error_policy"},
		{"stop policy", func(c *Config) { c.Clock.ErrorPolicy = "stop" }, nil, ""},
		{"zero width", func(c *Config) { c.Surface.Width = 0 }, errors.ErrConfigInvalidSurface, "surface size"},
		{"zero cell", func(c *Config) { c.Surface.CellHeight = 0 }, errors.ErrConfigInvalidSurface, "cell size"},
		{"face does not fit", func(c *Config) { c.Surface.Height = 150 }, errors.ErrConfigInvalidSurface, "does not fit"},
		{"bad ink", func(c *Config) { c.Style.Ink = "#12" }, errors.ErrConfigInvalidStyle, "style.ink"},
		{"empty accent", func(c *Config) { c.Style.Accent = "" }, errors.ErrConfigInvalidStyle, "style.accent"},
		{"named accent", func(c *Config) { c.Style.Accent = "hotpink" }, nil, ""},
		{"transparent background", func(c *Config) { c.Style.Background = BackgroundNone }, nil, ""},
		{"bad background", func(c *Config) { c.Style.Background = "plaid" }, errors.ErrConfigInvalidStyle, "style.background"},
		{"zero font", func(c *Config) { c.Style.FontSize = 0 }, errors.ErrConfigInvalidStyle, "style.font_size"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			cfg := DefaultConfig()
			tc.mutate(cfg)

			err := Validate(cfg)
			if tc.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tc.wantErr)
			assert.Contains(t, err.Error(), tc.wantMsg)
		})
	}
}
