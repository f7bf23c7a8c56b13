// Package config provides configuration management for clockface with layered precedence.
//
// Configuration sources are loaded in the following order (highest precedence first):
//  1. CLI flags (passed via LoadWithOverrides or ApplyOverrides)
//  2. Environment variables (CLOCKFACE_* prefix)
//  3. Project config (.clockface/config.yaml)
//  4. Global config (~/.clockface/config.yaml)
//  5. Built-in defaults
//
// Each higher level completely overrides the lower level for the same key.
package config

import (
	"encoding/json"
	"time"
)

// Config is the root configuration structure for clockface.
type Config struct {
	// Clock contains settings for the clock face and its redraw loop.
	Clock ClockConfig `yaml:"clock" mapstructure:"clock" json:"clock"`

	// Surface contains the drawing surface dimensions.
	Surface SurfaceConfig `yaml:"surface" mapstructure:"surface" json:"surface"`

	// Style contains colors and the numeral font size.
	Style StyleConfig `yaml:"style" mapstructure:"style" json:"style"`
}

// ClockConfig contains settings for the clock face and its redraw loop.
type ClockConfig struct {
	// Radius is the face radius in surface units.
	// Default: 100
	Radius float64 `yaml:"radius" mapstructure:"radius" json:"radius"`

	// Interval is the delay between redraws.
	// Default: 100ms
	Interval time.Duration `yaml:"interval" mapstructure:"interval" json:"interval"`

	// Timezone is an IANA zone name. Empty means the local zone.
	Timezone string `yaml:"timezone" mapstructure:"timezone" json:"timezone"`

	// ErrorPolicy decides what a failed frame does: "continue" logs it,
	// "stop" ends the loop.
	// Default: "continue"
	ErrorPolicy string `yaml:"error_policy" mapstructure:"error_policy" json:"error_policy"`
}

// clockConfigView is ClockConfig with the interval spelled as a duration string.
type clockConfigView struct {
	Radius      float64 `yaml:"radius" json:"radius"`
	Interval    string  `yaml:"interval" json:"interval"`
	Timezone    string  `yaml:"timezone" json:"timezone"`
	ErrorPolicy string  `yaml:"error_policy" json:"error_policy"`
}

func (c ClockConfig) view() clockConfigView {
	return clockConfigView{
		Radius:      c.Radius,
		Interval:    c.Interval.String(),
		Timezone:    c.Timezone,
		ErrorPolicy: c.ErrorPolicy,
	}
}

// MarshalYAML writes the interval as "100ms" rather than nanoseconds.
func (c ClockConfig) MarshalYAML() (any, error) {
	return c.view(), nil
}

// MarshalJSON writes the interval as "100ms" rather than nanoseconds.
func (c ClockConfig) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.view())
}

// SurfaceConfig contains the drawing surface dimensions.
type SurfaceConfig struct {
	// Width and Height are the surface size in units (pixels for PNG output).
	// Default: 220x220
	Width  int `yaml:"width" mapstructure:"width" json:"width"`
	Height int `yaml:"height" mapstructure:"height" json:"height"`

	// CellWidth and CellHeight are the units covered by one terminal cell.
	// Default: 5x10
	CellWidth  float64 `yaml:"cell_width" mapstructure:"cell_width" json:"cell_width"`
	CellHeight float64 `yaml:"cell_height" mapstructure:"cell_height" json:"cell_height"`
}

// StyleConfig contains colors and the numeral font size.
// Colors are #rgb, #rrggbb or a CSS color name.
type StyleConfig struct {
	// Ink colors marks, numerals and the hour and minute hands.
	Ink string `yaml:"ink" mapstructure:"ink" json:"ink"`

	// Accent colors the second hand.
	// Default: "pink"
	Accent string `yaml:"accent" mapstructure:"accent" json:"accent"`

	// Background fills PNG frames. "none" keeps them transparent.
	Background string `yaml:"background" mapstructure:"background" json:"background"`

	// FontSize is the numeral font size.
	FontSize float64 `yaml:"font_size" mapstructure:"font_size" json:"font_size"`
}

// BackgroundNone disables the PNG background fill.
const BackgroundNone = "none"
