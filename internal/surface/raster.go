package surface

import (
	"image/color"
	"math"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/mrz1836/clockface/internal/constants"
)

// Glyphs used to paint strokes, from thinnest to boldest.
const (
	glyphHairline = '·'
	glyphBold     = '•'
	glyphHeavy    = '▓'
	glyphSolid    = '█'

	// continuation marks the second column of a double-width rune.
	continuation = rune(-1)
)

// Cell is one character position of a Raster. A zero Rune is blank and a
// nil Color means the terminal's default foreground.
type Cell struct {
	Rune  rune
	Color color.Color
}

// Continuation reports whether c is the right half of a double-width rune.
func (c Cell) Continuation() bool { return c.Rune == continuation }

type rasterState struct {
	matrix    Matrix
	lineWidth float64
	stroke    color.Color
	fill      color.Color
	font      Font
	align     TextAlign
}

func defaultRasterState() rasterState {
	return rasterState{
		matrix:    Identity(),
		lineWidth: 1,
		font:      Font{Size: 10},
		align:     AlignStart,
	}
}

type segment struct {
	from, to Point
}

// Raster is a Surface backed by a grid of terminal cells. Surface units are
// mapped to cells through the cell size, so a 220×220 surface with the
// default 5×10 cells becomes 44 columns by 22 rows.
type Raster struct {
	width, height int
	cellW, cellH  float64
	cols, rows    int
	cells         [][]Cell

	state rasterState
	stack []rasterState

	path      []segment
	cursor    Point
	hasCursor bool
}

// RasterOption configures a Raster.
type RasterOption func(*Raster)

// WithCellSize sets how many surface units one terminal cell covers.
// Non-positive values are ignored.
func WithCellSize(w, h float64) RasterOption {
	return func(r *Raster) {
		if w > 0 {
			r.cellW = w
		}
		if h > 0 {
			r.cellH = h
		}
	}
}

// NewRaster creates a blank raster of the given surface size.
func NewRaster(width, height int, opts ...RasterOption) *Raster {
	r := &Raster{
		width:  width,
		height: height,
		cellW:  constants.DefaultCellWidth,
		cellH:  constants.DefaultCellHeight,
		state:  defaultRasterState(),
	}
	for _, opt := range opts {
		opt(r)
	}

	r.cols = int(math.Ceil(float64(max(width, 0)) / r.cellW))
	r.rows = int(math.Ceil(float64(max(height, 0)) / r.cellH))
	r.cells = make([][]Cell, r.rows)
	for i := range r.cells {
		r.cells[i] = make([]Cell, r.cols)
	}
	return r
}

// Width returns the surface width in surface units.
func (r *Raster) Width() int { return r.width }

// Height returns the surface height in surface units.
func (r *Raster) Height() int { return r.height }

// Cols returns the number of terminal columns.
func (r *Raster) Cols() int { return r.cols }

// Rows returns the number of terminal rows.
func (r *Raster) Rows() int { return r.rows }

// Save pushes the current state.
func (r *Raster) Save() {
	r.stack = append(r.stack, r.state)
}

// Restore pops the last saved state.
func (r *Raster) Restore() {
	if len(r.stack) == 0 {
		return
	}
	r.state = r.stack[len(r.stack)-1]
	r.stack = r.stack[:len(r.stack)-1]
}

// Depth returns the number of saved states.
func (r *Raster) Depth() int { return len(r.stack) }

// Transform returns the current transformation matrix.
func (r *Raster) Transform() Matrix { return r.state.matrix }

// Translate moves the origin.
func (r *Raster) Translate(x, y float64) {
	r.state.matrix = r.state.matrix.Translate(x, y)
}

// Rotate turns the frame clockwise by radians.
func (r *Raster) Rotate(radians float64) {
	r.state.matrix = r.state.matrix.Rotate(radians)
}

// SetLineWidth sets the stroke width used to pick the stroke glyph.
func (r *Raster) SetLineWidth(w float64) { r.state.lineWidth = w }

// SetStrokeColor sets the stroke color.
func (r *Raster) SetStrokeColor(c color.Color) { r.state.stroke = c }

// SetFillColor sets the text color.
func (r *Raster) SetFillColor(c color.Color) { r.state.fill = c }

// SetFont records the font. Cells have a fixed size, so only the family
// and size round-trip through Save/Restore.
func (r *Raster) SetFont(f Font) { r.state.font = f }

// SetTextAlign sets the FillText alignment.
func (r *Raster) SetTextAlign(a TextAlign) { r.state.align = a }

// BeginPath discards the current path.
func (r *Raster) BeginPath() {
	r.path = r.path[:0]
	r.hasCursor = false
}

// MoveTo starts a new sub-path.
func (r *Raster) MoveTo(x, y float64) {
	r.cursor = r.state.matrix.Apply(x, y)
	r.hasCursor = true
}

// LineTo adds a segment from the cursor. Without a cursor it behaves like MoveTo.
func (r *Raster) LineTo(x, y float64) {
	p := r.state.matrix.Apply(x, y)
	if r.hasCursor {
		r.path = append(r.path, segment{from: r.cursor, to: p})
	}
	r.cursor = p
	r.hasCursor = true
}

// Stroke paints every segment of the current path.
func (r *Raster) Stroke() {
	glyph := glyphFor(r.state.lineWidth)
	for _, seg := range r.path {
		r.plot(seg, glyph, r.state.stroke)
	}
}

// plot samples a segment at half-cell steps and paints the cells it crosses.
func (r *Raster) plot(seg segment, glyph rune, c color.Color) {
	dx, dy := seg.to.X-seg.from.X, seg.to.Y-seg.from.Y
	step := math.Min(r.cellW, r.cellH) / 2
	n := int(math.Ceil(math.Hypot(dx, dy)/step)) + 1
	for i := 0; i <= n; i++ {
		t := float64(i) / float64(n)
		r.set(seg.from.X+dx*t, seg.from.Y+dy*t, Cell{Rune: glyph, Color: c})
	}
}

func (r *Raster) cellAt(x, y float64) (col, row int, ok bool) {
	col = int(math.Floor(x / r.cellW))
	row = int(math.Floor(y / r.cellH))
	return col, row, col >= 0 && col < r.cols && row >= 0 && row < r.rows
}

func (r *Raster) set(x, y float64, c Cell) {
	if col, row, ok := r.cellAt(x, y); ok {
		r.cells[row][col] = c
	}
}

// FillText writes text upright on the row containing the transformed
// anchor, aligned by display width.
func (r *Raster) FillText(text string, x, y float64) {
	p := r.state.matrix.Apply(x, y)
	width := runewidth.StringWidth(text)
	col := int(math.Round(p.X/r.cellW - float64(width)*r.state.align.anchor()))
	row := int(math.Floor(p.Y / r.cellH))
	if row < 0 || row >= r.rows {
		return
	}

	for _, ch := range text {
		w := runewidth.RuneWidth(ch)
		if w == 0 {
			continue
		}
		if col >= 0 && col+w <= r.cols {
			r.cells[row][col] = Cell{Rune: ch, Color: r.state.fill}
			for k := 1; k < w; k++ {
				r.cells[row][col+k] = Cell{Rune: continuation}
			}
		}
		col += w
	}
}

// ClearRect blanks every cell whose center lies inside the rectangle. The
// rectangle's corners are transformed and the axis-aligned bounds used.
func (r *Raster) ClearRect(x, y, w, h float64) {
	p0 := r.state.matrix.Apply(x, y)
	p1 := r.state.matrix.Apply(x+w, y+h)
	minX, maxX := math.Min(p0.X, p1.X), math.Max(p0.X, p1.X)
	minY, maxY := math.Min(p0.Y, p1.Y), math.Max(p0.Y, p1.Y)

	for row := range r.cells {
		cy := (float64(row) + 0.5) * r.cellH
		if cy < minY || cy > maxY {
			continue
		}
		for col := range r.cells[row] {
			cx := (float64(col) + 0.5) * r.cellW
			if cx >= minX && cx <= maxX {
				r.cells[row][col] = Cell{}
			}
		}
	}
}

// Cells returns the cell grid. Callers must not modify it.
func (r *Raster) Cells() [][]Cell { return r.cells }

// Lines returns the raster as plain text, one string per row.
func (r *Raster) Lines() []string {
	lines := make([]string, r.rows)
	var b strings.Builder
	for i, row := range r.cells {
		b.Reset()
		for _, c := range row {
			switch c.Rune {
			case continuation:
			case 0:
				b.WriteByte(' ')
			default:
				b.WriteRune(c.Rune)
			}
		}
		lines[i] = b.String()
	}
	return lines
}

// String joins Lines with newlines.
func (r *Raster) String() string {
	return strings.Join(r.Lines(), "\n")
}

// glyphFor picks the stroke glyph for a line width.
func glyphFor(w float64) rune {
	switch {
	case w >= 6:
		return glyphSolid
	case w >= 4:
		return glyphHeavy
	case w >= 2:
		return glyphBold
	default:
		return glyphHairline
	}
}

var _ Surface = (*Raster)(nil)
