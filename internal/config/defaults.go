package config

import "github.com/mrz1836/clockface/internal/constants"

// DefaultConfig returns a new Config with the built-in default values.
// These defaults are the base layer that config files, environment
// variables and CLI flags override.
func DefaultConfig() *Config {
	return &Config{
		Clock: ClockConfig{
			Radius:      constants.DefaultRadius,
			Interval:    constants.DefaultTickInterval,
			Timezone:    "",
			ErrorPolicy: constants.ErrorPolicyContinue,
		},
		Surface: SurfaceConfig{
			Width:      constants.DefaultSurfaceWidth,
			Height:     constants.DefaultSurfaceHeight,
			CellWidth:  constants.DefaultCellWidth,
			CellHeight: constants.DefaultCellHeight,
		},
		Style: StyleConfig{
			Ink:        "#000000",
			Accent:     "pink",
			Background: "#ffffff",
			FontSize:   constants.NumeralFontSize,
		},
	}
}
