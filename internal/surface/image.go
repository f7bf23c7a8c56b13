package surface

import (
	"image"
	"image/color"
	"image/draw"
	"io"
	"sync"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// goRegular is the parsed Go Regular font used for sized text.
//
//nolint:gochecknoglobals // parsed once
var goRegular = sync.OnceValues(func() (*opentype.Font, error) {
	return opentype.Parse(goregular.TTF)
})

// Image is a Surface that paints into an RGBA image with gg.
type Image struct {
	ctx        *gg.Context
	background color.Color
	align      TextAlign
	alignStack []TextAlign
	faces      map[float64]font.Face
}

// NewImage creates an image surface filled with background.
// A nil background leaves the image transparent.
func NewImage(width, height int, background color.Color) *Image {
	ctx := gg.NewContext(width, height)
	ctx.SetFontFace(basicfont.Face7x13)
	ctx.SetColor(color.Black)
	img := &Image{ctx: ctx, background: background, faces: make(map[float64]font.Face)}
	img.ClearRect(0, 0, float64(width), float64(height))
	return img
}

// Width returns the image width in pixels.
func (i *Image) Width() int { return i.ctx.Width() }

// Height returns the image height in pixels.
func (i *Image) Height() int { return i.ctx.Height() }

// Save pushes the gg state and the text alignment.
func (i *Image) Save() {
	i.ctx.Push()
	i.alignStack = append(i.alignStack, i.align)
}

// Restore pops the last saved state.
func (i *Image) Restore() {
	n := len(i.alignStack)
	if n == 0 {
		return
	}
	i.align = i.alignStack[n-1]
	i.alignStack = i.alignStack[:n-1]
	i.ctx.Pop()
}

// Translate moves the origin.
func (i *Image) Translate(x, y float64) { i.ctx.Translate(x, y) }

// Rotate turns the frame clockwise on screen.
func (i *Image) Rotate(radians float64) { i.ctx.Rotate(radians) }

// BeginPath discards the current path.
func (i *Image) BeginPath() { i.ctx.ClearPath() }

// MoveTo starts a sub-path.
func (i *Image) MoveTo(x, y float64) { i.ctx.MoveTo(x, y) }

// LineTo extends the sub-path.
func (i *Image) LineTo(x, y float64) { i.ctx.LineTo(x, y) }

// Stroke paints the path.
func (i *Image) Stroke() { i.ctx.Stroke() }

// SetLineWidth sets the stroke width in pixels.
func (i *Image) SetLineWidth(w float64) { i.ctx.SetLineWidth(w) }

// SetStrokeColor sets the stroke color.
func (i *Image) SetStrokeColor(c color.Color) {
	if c != nil {
		i.ctx.SetStrokeStyle(gg.NewSolidPattern(c))
	}
}

// SetFillColor sets the text color.
func (i *Image) SetFillColor(c color.Color) {
	if c != nil {
		i.ctx.SetFillStyle(gg.NewSolidPattern(c))
	}
}

// SetFont selects Go Regular at f.Size pixels. Faces are cached per size.
// A non-positive size, or a face that cannot be built, keeps the current
// face; a new image starts with the 7x13 bitmap face.
func (i *Image) SetFont(f Font) {
	if f.Size <= 0 {
		return
	}
	face, ok := i.faces[f.Size]
	if !ok {
		otf, err := goRegular()
		if err != nil {
			return
		}
		face, err = opentype.NewFace(otf, &opentype.FaceOptions{
			Size:    f.Size,
			DPI:     72,
			Hinting: font.HintingFull,
		})
		if err != nil {
			return
		}
		i.faces[f.Size] = face
	}
	i.ctx.SetFontFace(face)
}

// SetTextAlign sets the FillText alignment.
func (i *Image) SetTextAlign(a TextAlign) { i.align = a }

// FillText draws text with its baseline at y.
func (i *Image) FillText(text string, x, y float64) {
	i.ctx.DrawStringAnchored(text, x, y, i.align.anchor(), 0)
}

// ClearRect resets the rectangle in device space to the background color,
// or to transparent when there is no background.
func (i *Image) ClearRect(x, y, w, h float64) {
	if i.background == nil {
		rect := image.Rect(int(x), int(y), int(x+w), int(y+h))
		if dst, ok := i.ctx.Image().(draw.Image); ok {
			draw.Draw(dst, rect, image.Transparent, image.Point{}, draw.Src)
		}
		return
	}

	i.ctx.Push()
	defer i.ctx.Pop()

	i.ctx.Identity()
	i.ctx.SetFillStyle(gg.NewSolidPattern(i.background))
	i.ctx.DrawRectangle(x, y, w, h)
	i.ctx.Fill()
}

// Image returns the painted image.
func (i *Image) Image() image.Image { return i.ctx.Image() }

// EncodePNG writes the image as PNG.
func (i *Image) EncodePNG(w io.Writer) error { return i.ctx.EncodePNG(w) }

// SavePNG writes the image to a PNG file.
func (i *Image) SavePNG(path string) error { return i.ctx.SavePNG(path) }

var _ Surface = (*Image)(nil)
