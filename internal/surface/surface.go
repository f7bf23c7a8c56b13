// Package surface defines the 2D drawing context the clock renders onto and
// provides its implementations: a terminal character raster, a call recorder
// and a PNG image backed by gg.
//
// The API follows the familiar canvas model: a current transformation matrix
// with a save/restore stack, a path built from MoveTo/LineTo, Stroke to paint
// it, FillText for labels and ClearRect to erase. Path points are transformed
// when they are added, so restoring the matrix never moves an existing path.
package surface

import "image/color"

// Point is a position in surface units.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// TextAlign controls where FillText places text relative to its anchor.
type TextAlign int

// Text alignments.
const (
	// AlignStart puts the anchor at the left edge of the text.
	AlignStart TextAlign = iota
	// AlignCenter centers the text on the anchor.
	AlignCenter
	// AlignEnd puts the anchor at the right edge of the text.
	AlignEnd
)

// String returns the canvas name of the alignment.
func (a TextAlign) String() string {
	switch a {
	case AlignCenter:
		return "center"
	case AlignEnd:
		return "end"
	default:
		return "start"
	}
}

// anchor returns the fraction of the text width that lies left of the anchor.
func (a TextAlign) anchor() float64 {
	switch a {
	case AlignCenter:
		return 0.5
	case AlignEnd:
		return 1
	default:
		return 0
	}
}

// Font describes the text face used by FillText.
type Font struct {
	Family string  `json:"family,omitempty"`
	Size   float64 `json:"size"`
}

// Frame is the subset of a Surface handed to drawing callbacks. Coordinates
// are in the caller's current (possibly translated and rotated) frame.
type Frame interface {
	MoveTo(x, y float64)
	LineTo(x, y float64)
	SetLineWidth(w float64)
	SetStrokeColor(c color.Color)
	SetFillColor(c color.Color)
	SetFont(f Font)
	SetTextAlign(a TextAlign)
	FillText(text string, x, y float64)
}

// Surface is a 2D drawing context with a fixed size.
type Surface interface {
	Frame

	// Width and Height report the surface size in surface units.
	Width() int
	Height() int

	// Save pushes the current transform and drawing state.
	Save()
	// Restore pops the most recently saved state. It is a no-op on an empty stack.
	Restore()

	Translate(x, y float64)
	// Rotate turns the frame by radians; positive is clockwise on screen.
	Rotate(radians float64)

	// BeginPath discards the current path.
	BeginPath()
	// Stroke paints the current path with the current line width and stroke color.
	Stroke()

	// ClearRect erases a rectangle given in the current frame.
	ClearRect(x, y, w, h float64)
}
