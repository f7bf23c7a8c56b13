package cli

import (
	"context"
	"fmt"
	"image/color"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/mrz1836/clockface/internal/clock"
	"github.com/mrz1836/clockface/internal/config"
	"github.com/mrz1836/clockface/internal/errors"
	"github.com/mrz1836/clockface/internal/face"
	"github.com/mrz1836/clockface/internal/render"
	"github.com/mrz1836/clockface/internal/surface"
)

// loadConfig loads the layered configuration, or only configFile when it
// is set, and applies the command-line overrides. A bad override is an
// input error (exit code 2); a bad file is not.
func loadConfig(ctx context.Context, configFile string, overrides *config.Config) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if configFile != "" {
		if _, statErr := os.Stat(configFile); statErr != nil {
			return nil, errors.Wrapf(statErr, "config file %s", configFile)
		}
		cfg, err = config.LoadFromPaths(ctx, configFile, "")
	} else {
		cfg, err = config.Load(ctx)
	}
	if err != nil {
		return nil, err
	}

	if err := config.ApplyOverrides(cfg, overrides); err != nil {
		return nil, errors.NewExitCode2Error(err)
	}
	return cfg, nil
}

// clockSetup holds a validated configuration resolved into drawing values.
type clockSetup struct {
	cfg        *config.Config
	loc        *time.Location
	ink        color.Color
	accent     color.Color
	background color.Color
}

// newClockSetup resolves the timezone and colors of cfg.
func newClockSetup(cfg *config.Config) (*clockSetup, error) {
	if cfg == nil {
		return nil, errors.ErrConfigNil
	}

	loc, err := clock.LoadLocation(cfg.Clock.Timezone)
	if err != nil {
		return nil, fmt.Errorf("%w: timezone %q: %w", errors.ErrConfigInvalidClock, cfg.Clock.Timezone, err)
	}

	s := &clockSetup{cfg: cfg, loc: loc}
	if s.ink, err = surface.ParseColor(cfg.Style.Ink); err != nil {
		return nil, errors.Wrap(err, "style.ink")
	}
	if s.accent, err = surface.ParseColor(cfg.Style.Accent); err != nil {
		return nil, errors.Wrap(err, "style.accent")
	}
	if cfg.Style.Background != config.BackgroundNone {
		if s.background, err = surface.ParseColor(cfg.Style.Background); err != nil {
			return nil, errors.Wrap(err, "style.background")
		}
	}
	return s, nil
}

// style returns the face style. On a terminal the ink stays nil so marks
// and numerals use the terminal's own foreground.
func (s *clockSetup) style(terminal bool) face.Style {
	st := face.DefaultStyle()
	st.Accent = s.accent
	st.Font.Size = s.cfg.Style.FontSize
	if !terminal {
		st.Ink = s.ink
	}
	return st
}

// zone is the label shown next to the digital time. Empty for the local zone.
func (s *clockSetup) zone() string {
	if s.cfg.Clock.Timezone == "" {
		return ""
	}
	return s.loc.String()
}

// now returns the current time in the configured zone.
func (s *clockSetup) now() time.Time {
	return clock.InLocation(clock.RealClock{}, s.loc).Now()
}

func (s *clockSetup) newRaster() *surface.Raster {
	return surface.NewRaster(s.cfg.Surface.Width, s.cfg.Surface.Height,
		surface.WithCellSize(s.cfg.Surface.CellWidth, s.cfg.Surface.CellHeight))
}

func (s *clockSetup) newImage() *surface.Image {
	return surface.NewImage(s.cfg.Surface.Width, s.cfg.Surface.Height, s.background)
}

// newClock builds a clock drawing onto sf. It fails with
// errors.ErrSurfaceUnavailable before any clock exists when sf is unusable.
func (s *clockSetup) newClock(sf surface.Surface, terminal bool, logger zerolog.Logger) (*face.Clock, error) {
	r, err := render.New(sf)
	if err != nil {
		return nil, err
	}
	return face.New(r,
		face.WithRadius(s.cfg.Clock.Radius),
		face.WithClock(clock.InLocation(clock.RealClock{}, s.loc)),
		face.WithStyle(s.style(terminal)),
		face.WithLogger(logger.With().Str("component", "face").Logger()),
	), nil
}
