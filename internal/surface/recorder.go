package surface

import "image/color"

// Op is one recorded drawing call.
type Op struct {
	Name  string    `json:"op"`
	Args  []float64 `json:"args,omitempty"`
	Text  string    `json:"text,omitempty"`
	Color string    `json:"color,omitempty"`
}

// Recorder is a Surface that draws nothing and logs every call in order.
// It tracks the transform and save depth so callers can inspect the state
// between calls.
type Recorder struct {
	width, height int
	ops           []Op
	matrix        Matrix
	stack         []Matrix
}

// NewRecorder creates a recorder reporting the given surface size.
func NewRecorder(width, height int) *Recorder {
	return &Recorder{width: width, height: height, matrix: Identity()}
}

func (r *Recorder) record(name string, args ...float64) {
	r.ops = append(r.ops, Op{Name: name, Args: args})
}

// Ops returns the recorded calls.
func (r *Recorder) Ops() []Op { return r.ops }

// Reset drops the recorded calls. The transform state is kept.
func (r *Recorder) Reset() { r.ops = nil }

// Count returns how many calls named name were recorded.
func (r *Recorder) Count(name string) int {
	n := 0
	for _, op := range r.ops {
		if op.Name == name {
			n++
		}
	}
	return n
}

// Depth returns the number of saved states.
func (r *Recorder) Depth() int { return len(r.stack) }

// Transform returns the current transformation matrix.
func (r *Recorder) Transform() Matrix { return r.matrix }

// Width returns the reported surface width.
func (r *Recorder) Width() int { return r.width }

// Height returns the reported surface height.
func (r *Recorder) Height() int { return r.height }

// Save records a save and pushes the transform.
func (r *Recorder) Save() {
	r.stack = append(r.stack, r.matrix)
	r.record("save")
}

// Restore records a restore and pops the transform.
func (r *Recorder) Restore() {
	if n := len(r.stack); n > 0 {
		r.matrix = r.stack[n-1]
		r.stack = r.stack[:n-1]
	}
	r.record("restore")
}

// Translate records a translation.
func (r *Recorder) Translate(x, y float64) {
	r.matrix = r.matrix.Translate(x, y)
	r.record("translate", x, y)
}

// Rotate records a rotation.
func (r *Recorder) Rotate(radians float64) {
	r.matrix = r.matrix.Rotate(radians)
	r.record("rotate", radians)
}

// BeginPath records a path reset.
func (r *Recorder) BeginPath() { r.record("beginPath") }

// MoveTo records a move in local coordinates.
func (r *Recorder) MoveTo(x, y float64) { r.record("moveTo", x, y) }

// LineTo records a line in local coordinates.
func (r *Recorder) LineTo(x, y float64) { r.record("lineTo", x, y) }

// Stroke records a stroke.
func (r *Recorder) Stroke() { r.record("stroke") }

// SetLineWidth records a line width change.
func (r *Recorder) SetLineWidth(w float64) { r.record("lineWidth", w) }

// SetStrokeColor records a stroke color change.
func (r *Recorder) SetStrokeColor(c color.Color) {
	r.ops = append(r.ops, Op{Name: "strokeStyle", Color: Hex(c)})
}

// SetFillColor records a fill color change.
func (r *Recorder) SetFillColor(c color.Color) {
	r.ops = append(r.ops, Op{Name: "fillStyle", Color: Hex(c)})
}

// SetFont records a font change.
func (r *Recorder) SetFont(f Font) {
	r.ops = append(r.ops, Op{Name: "font", Args: []float64{f.Size}, Text: f.Family})
}

// SetTextAlign records an alignment change.
func (r *Recorder) SetTextAlign(a TextAlign) {
	r.ops = append(r.ops, Op{Name: "textAlign", Text: a.String()})
}

// FillText records a text draw.
func (r *Recorder) FillText(text string, x, y float64) {
	r.ops = append(r.ops, Op{Name: "fillText", Args: []float64{x, y}, Text: text})
}

// ClearRect records a clear.
func (r *Recorder) ClearRect(x, y, w, h float64) { r.record("clearRect", x, y, w, h) }

var _ Surface = (*Recorder)(nil)
