// Package render draws rotated line segments around the center of a surface.
//
// Callers describe what to draw in a local frame whose origin is the surface
// center and whose "up" (negative Y) points along the requested angle. The
// renderer owns all transform bookkeeping: every Draw saves the surface
// state first and restores it on every exit path, so one call can never
// leak a rotation into the next.
package render

import (
	"fmt"
	"image/color"
	"math"

	"github.com/mrz1836/clockface/internal/errors"
	"github.com/mrz1836/clockface/internal/surface"
)

// EmitFunc issues path and text primitives in the local frame.
type EmitFunc func(f surface.Frame) error

// Label is text drawn alongside a segment.
type Label struct {
	Text  string
	At    surface.Point
	Font  surface.Font
	Align surface.TextAlign
	Color color.Color
}

// Segment is one stroked line in the local frame.
type Segment struct {
	From  surface.Point
	To    surface.Point
	Width float64
	// Color is the stroke color; nil keeps the surface's current color.
	Color color.Color
	Label *Label
}

// Renderer draws onto a surface whose size was fixed at construction.
type Renderer struct {
	surface surface.Surface
	width   float64
	height  float64
}

// New creates a renderer for s. The surface dimensions are copied now and
// never re-read; a later resize leaves the geometry stale.
func New(s surface.Surface) (*Renderer, error) {
	if s == nil {
		return nil, errors.ErrSurfaceUnavailable
	}
	if s.Width() <= 0 || s.Height() <= 0 {
		return nil, fmt.Errorf("%w: size %dx%d", errors.ErrSurfaceUnavailable, s.Width(), s.Height())
	}
	return &Renderer{
		surface: s,
		width:   float64(s.Width()),
		height:  float64(s.Height()),
	}, nil
}

// Size returns the snapshotted surface size.
func (r *Renderer) Size() (width, height float64) {
	return r.width, r.height
}

// Radians converts degrees to radians.
func Radians(degrees float64) float64 {
	return degrees * math.Pi / 180
}

// Draw rotates a frame centered on the surface by angle degrees, lets emit
// build a path in it and strokes the result. If emit fails the stroke is
// skipped; the surface state is restored either way, including when emit
// panics.
func (r *Renderer) Draw(angle float64, emit EmitFunc) error {
	r.surface.Save()
	defer r.surface.Restore()

	r.surface.Translate(r.width/2, r.height/2)
	r.surface.Rotate(Radians(angle))
	r.surface.BeginPath()

	if err := emit(r.surface); err != nil {
		return fmt.Errorf("%w at %.1f degrees: %w", errors.ErrDrawFailed, angle, err)
	}

	r.surface.Stroke()
	return nil
}

// DrawSegment draws seg rotated by angle degrees.
func (r *Renderer) DrawSegment(angle float64, seg Segment) error {
	return r.Draw(angle, seg.emit)
}

func (s Segment) emit(f surface.Frame) error {
	if s.Width > 0 {
		f.SetLineWidth(s.Width)
	}
	if s.Color != nil {
		f.SetStrokeColor(s.Color)
	}
	f.MoveTo(s.From.X, s.From.Y)
	f.LineTo(s.To.X, s.To.Y)

	if l := s.Label; l != nil {
		if l.Color != nil {
			f.SetFillColor(l.Color)
		}
		f.SetFont(l.Font)
		f.SetTextAlign(l.Align)
		f.FillText(l.Text, l.At.X, l.At.Y)
	}
	return nil
}

// Clear erases the whole surface.
func (r *Renderer) Clear() {
	r.surface.ClearRect(0, 0, r.width, r.height)
}
