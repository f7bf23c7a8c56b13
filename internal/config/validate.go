package config

import (
	"math"

	"github.com/mrz1836/clockface/internal/clock"
	"github.com/mrz1836/clockface/internal/constants"
	"github.com/mrz1836/clockface/internal/errors"
	"github.com/mrz1836/clockface/internal/surface"
)

// Radius bounds in surface units.
const (
	MinRadius = 20.0
	MaxRadius = 1000.0
)

// Validate checks the configuration for invalid or inconsistent values.
// It returns an error describing the first validation failure found.
//
// Validation rules:
//   - clock radius between 20 and 1000, and the face fits the surface
//   - clock interval between 10ms and 10s
//   - clock timezone resolvable
//   - error policy "continue" or "stop"
//   - surface and cell sizes positive
//   - style colors parseable and font size positive
func Validate(cfg *Config) error {
	if cfg == nil {
		return errors.ErrConfigNil
	}
	if err := validateClockConfig(&cfg.Clock); err != nil {
		return err
	}
	if err := validateSurfaceConfig(&cfg.Surface, cfg.Clock.Radius); err != nil {
		return err
	}
	return validateStyleConfig(&cfg.Style)
}

func validateClockConfig(cfg *ClockConfig) error {
	if math.IsNaN(cfg.Radius) || cfg.Radius < MinRadius || cfg.Radius > MaxRadius {
		return errors.Wrapf(errors.ErrConfigInvalidClock,
			"clock.radius must be between %.0f and %.0f, got %g", MinRadius, MaxRadius, cfg.Radius)
	}

	if cfg.Interval < constants.MinTickInterval || cfg.Interval > constants.MaxTickInterval {
		return errors.Wrapf(errors.ErrConfigInvalidClock,
			"clock.interval must be between %s and %s, got %s",
			constants.MinTickInterval, constants.MaxTickInterval, cfg.Interval)
	}

	if _, err := clock.LoadLocation(cfg.Timezone); err != nil {
		return errors.Wrapf(errors.ErrConfigInvalidClock,
			"clock.timezone %q: %v", cfg.Timezone, err)
	}

	switch cfg.ErrorPolicy {
	case constants.ErrorPolicyContinue, constants.ErrorPolicyStop:
	default:
		return errors.Wrapf(errors.ErrConfigInvalidClock,
			"clock.error_policy must be %q or %q, got %q",
			constants.ErrorPolicyContinue, constants.ErrorPolicyStop, cfg.ErrorPolicy)
	}

	return nil
}

func validateSurfaceConfig(cfg *SurfaceConfig, radius float64) error {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return errors.Wrapf(errors.ErrConfigInvalidSurface,
			"surface size must be positive, got %dx%d", cfg.Width, cfg.Height)
	}

	if cfg.CellWidth <= 0 || cfg.CellHeight <= 0 {
		return errors.Wrapf(errors.ErrConfigInvalidSurface,
			"surface cell size must be positive, got %gx%g", cfg.CellWidth, cfg.CellHeight)
	}

	if side := float64(min(cfg.Width, cfg.Height)); 2*radius > side {
		return errors.Wrapf(errors.ErrConfigInvalidSurface,
			"a face of radius %g does not fit a %dx%d surface", radius, cfg.Width, cfg.Height)
	}

	return nil
}

func validateStyleConfig(cfg *StyleConfig) error {
	if _, err := surface.ParseColor(cfg.Ink); err != nil {
		return errors.Wrapf(errors.ErrConfigInvalidStyle, "style.ink: %v", err)
	}
	if _, err := surface.ParseColor(cfg.Accent); err != nil {
		return errors.Wrapf(errors.ErrConfigInvalidStyle, "style.accent: %v", err)
	}
	if cfg.Background != BackgroundNone {
		if _, err := surface.ParseColor(cfg.Background); err != nil {
			return errors.Wrapf(errors.ErrConfigInvalidStyle, "style.background: %v", err)
		}
	}
	if cfg.FontSize <= 0 {
		return errors.Wrapf(errors.ErrConfigInvalidStyle,
			"style.font_size must be positive, got %g", cfg.FontSize)
	}
	return nil
}
