// Package face is the analog clock model. It turns wall-clock time into
// rotated segments: 60 tick marks with hour numerals, and hour, minute and
// second hands. Drawing goes through a Drawer, normally a *render.Renderer.
package face

import (
	"errors"
	"image/color"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/mrz1836/clockface/internal/clock"
	"github.com/mrz1836/clockface/internal/constants"
	"github.com/mrz1836/clockface/internal/render"
	"github.com/mrz1836/clockface/internal/surface"
)

// Hand names.
const (
	HandHour   = "hour"
	HandMinute = "minute"
	HandSecond = "second"
)

// Drawer is what the clock needs from a renderer.
type Drawer interface {
	DrawSegment(angle float64, seg render.Segment) error
	Clear()
}

// Style holds the colors and font of the face.
type Style struct {
	// Ink colors marks, numerals and the hour and minute hands. Nil keeps
	// the surface default.
	Ink color.Color
	// Accent colors the second hand.
	Accent color.Color
	// Font is used for the numerals.
	Font surface.Font
}

// DefaultStyle returns the default style: surface ink, pink second hand,
// 13 unit numerals.
func DefaultStyle() Style {
	return Style{
		Accent: color.RGBA{R: 0xff, G: 0xc0, B: 0xcb, A: 0xff},
		Font:   surface.Font{Family: "Arial", Size: constants.NumeralFontSize},
	}
}

// Hand is one computed clock hand.
type Hand struct {
	Name    string         `json:"name"`
	Angle   float64        `json:"angle"`
	Segment render.Segment `json:"-"`
}

// Clock is the analog clock. It is not safe for concurrent use; the loop
// driving it runs one tick at a time.
type Clock struct {
	radius float64
	hour   int
	minute int
	second int

	drawer Drawer
	source clock.Clock
	style  Style
	logger zerolog.Logger
}

// Option configures a Clock.
type Option func(*Clock)

// WithRadius sets the face radius in surface units.
func WithRadius(r float64) Option {
	return func(c *Clock) { c.radius = r }
}

// WithClock sets the time source.
func WithClock(src clock.Clock) Option {
	return func(c *Clock) { c.source = src }
}

// WithStyle sets colors and font.
func WithStyle(s Style) Option {
	return func(c *Clock) { c.style = s }
}

// WithLogger sets the logger.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Clock) { c.logger = l }
}

// New creates a clock drawing through d.
func New(d Drawer, opts ...Option) *Clock {
	c := &Clock{
		radius: constants.DefaultRadius,
		drawer: d,
		source: clock.RealClock{},
		style:  DefaultStyle(),
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Radius returns the face radius.
func (c *Clock) Radius() float64 { return c.radius }

// Time returns the hour, minute and second of the last update.
func (c *Clock) Time() (hour, minute, second int) {
	return c.hour, c.minute, c.second
}

// SetTime sets the displayed time directly.
func (c *Clock) SetTime(hour, minute, second int) {
	c.hour, c.minute, c.second = hour, minute, second
}

// UpdateTime reads the current time from the time source.
func (c *Clock) UpdateTime() {
	now := c.source.Now()
	c.SetTime(now.Hour(), now.Minute(), now.Second())
}

// Tick reads the time and redraws the whole clock.
func (c *Clock) Tick() error {
	c.UpdateTime()
	return c.Frame()
}

// Frame clears the surface and redraws the clock for the stored time.
// A failing mark or hand does not stop the rest of the frame; all
// failures are returned joined.
func (c *Clock) Frame() error {
	c.drawer.Clear()
	err := errors.Join(c.DrawFace(), c.DrawHands())

	c.logger.Trace().
		Int("hour", c.hour).
		Int("minute", c.minute).
		Int("second", c.second).
		Bool("failed", err != nil).
		Msg("frame drawn")
	return err
}

// DrawFace draws the 60 tick marks and the hour numerals.
func (c *Clock) DrawFace() error {
	var errs []error
	for _, m := range Marks() {
		if err := c.drawer.DrawSegment(float64(m.Angle), c.markSegment(m)); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (c *Clock) markSegment(m Mark) render.Segment {
	r := c.radius
	if !m.Major {
		return render.Segment{
			From:  surface.Point{X: 0, Y: -r},
			To:    surface.Point{X: 0, Y: -r + constants.MinorMarkLength},
			Width: 1,
			Color: c.style.Ink,
		}
	}
	return render.Segment{
		From:  surface.Point{X: 0, Y: -r},
		To:    surface.Point{X: 0, Y: -r + constants.MajorMarkLength},
		Width: 2,
		Color: c.style.Ink,
		Label: &render.Label{
			Text:  strconv.Itoa(m.Numeral),
			At:    surface.Point{X: 0, Y: -r + constants.NumeralInset},
			Font:  c.style.Font,
			Align: surface.AlignCenter,
			Color: c.style.Ink,
		},
	}
}

// Hands returns the hour, minute and second hands for the stored time.
func (c *Clock) Hands() []Hand {
	r := c.radius
	return []Hand{
		{
			Name:  HandHour,
			Angle: HourAngle(c.hour, c.minute),
			Segment: render.Segment{
				From:  surface.Point{X: 0, Y: 10},
				To:    surface.Point{X: 0, Y: -r + 50},
				Width: 6,
				Color: c.style.Ink,
			},
		},
		{
			Name:  HandMinute,
			Angle: MinuteAngle(c.minute),
			Segment: render.Segment{
				From:  surface.Point{X: 0, Y: 10},
				To:    surface.Point{X: 0, Y: -r + 30},
				Width: 4,
				Color: c.style.Ink,
			},
		},
		{
			Name:  HandSecond,
			Angle: SecondAngle(c.second),
			Segment: render.Segment{
				From:  surface.Point{X: 0, Y: 20},
				To:    surface.Point{X: 0, Y: -r + 20},
				Width: 4,
				Color: c.style.Accent,
			},
		},
	}
}

// DrawHands draws the three hands, second hand last.
func (c *Clock) DrawHands() error {
	var errs []error
	for _, h := range c.Hands() {
		if err := c.drawer.DrawSegment(h.Angle, h.Segment); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
