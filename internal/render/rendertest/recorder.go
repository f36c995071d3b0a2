// Package rendertest provides a Surface that records draw calls.
package rendertest

import (
	"fmt"
	"image"

	"MyLocalSketch/internal/state"
)

// Call is one recorded surface operation.
type Call struct {
	Op    string
	Color string
	Path  state.Path
	Image image.Image
	X, Y  float64
	W, H  float64
}

func (c Call) String() string {
	switch c.Op {
	case "clear", "image":
		return fmt.Sprintf("%s(%g,%g,%g,%g)", c.Op, c.X, c.Y, c.W, c.H)
	case "color":
		return "color(" + c.Color + ")"
	case "stroke":
		return fmt.Sprintf("stroke(%d)", len(c.Path))
	case "resize":
		return fmt.Sprintf("resize(%g,%g)", c.W, c.H)
	}
	return c.Op
}

// Recorder implements render.Surface by appending every call to Calls.
type Recorder struct {
	W, H      int
	Calls     []Call
	ResizeErr error
}

func NewRecorder(w, h int) *Recorder {
	return &Recorder{W: w, H: h}
}

func (r *Recorder) Size() (int, int) { return r.W, r.H }

func (r *Recorder) Clear(x0, y0, w, h float64) {
	r.Calls = append(r.Calls, Call{Op: "clear", X: x0, Y: y0, W: w, H: h})
}

func (r *Recorder) SetStrokeColor(c string) {
	r.Calls = append(r.Calls, Call{Op: "color", Color: c})
}

func (r *Recorder) StrokePath(p state.Path) {
	r.Calls = append(r.Calls, Call{Op: "stroke", Path: p.Clone()})
}

func (r *Recorder) DrawImage(img image.Image, x, y, w, h float64) {
	r.Calls = append(r.Calls, Call{Op: "image", Image: img, X: x, Y: y, W: w, H: h})
}

func (r *Recorder) Resize(w, h int) error {
	if r.ResizeErr != nil {
		return r.ResizeErr
	}
	r.W, r.H = w, h
	r.Calls = append(r.Calls, Call{Op: "resize", W: float64(w), H: float64(h)})
	return nil
}

// Reset forgets recorded calls.
func (r *Recorder) Reset() { r.Calls = nil }

// Ops returns the operation names in call order.
func (r *Recorder) Ops() []string {
	out := make([]string, len(r.Calls))
	for i, c := range r.Calls {
		out[i] = c.Op
	}
	return out
}

// Strokes returns the recorded stroke calls.
func (r *Recorder) Strokes() []Call {
	var out []Call
	for _, c := range r.Calls {
		if c.Op == "stroke" {
			out = append(out, c)
		}
	}
	return out
}
