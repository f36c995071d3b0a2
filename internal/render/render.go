// Package render replays committed drawing History onto a 2D surface.
package render

import (
	"image"

	"MyLocalSketch/internal/state"
)

// Surface is an immediate-mode 2D drawing target.
type Surface interface {
	// Size returns the current surface dimensions in pixels.
	Size() (w, h int)
	// Clear erases the given region.
	Clear(x0, y0, w, h float64)
	// SetStrokeColor sets the #RRGGBB color used by StrokePath.
	SetStrokeColor(c string)
	// StrokePath outlines p with the current stroke color.
	StrokePath(p state.Path)
	// DrawImage draws img with its top-left corner at (x, y), scaled to w x h.
	DrawImage(img image.Image, x, y, w, h float64)
	// Resize changes the surface dimensions. Contents are lost.
	Resize(w, h int) error
}

// Render clears the whole surface and draws every entry in order.
func Render(s Surface, entries []state.DrawingEntry) {
	w, h := s.Size()
	s.Clear(0, 0, float64(w), float64(h))
	for _, e := range entries {
		drawEntry(s, e)
	}
}

// RenderIncrementalStroke strokes an in-progress path without clearing.
func RenderIncrementalStroke(s Surface, p state.Path, color string) {
	if len(p) == 0 {
		return
	}
	s.SetStrokeColor(color)
	s.StrokePath(p)
}

// RenderPreview replays entries and strokes p on top. Used for shape
// previews that must not leave traces of earlier frames.
func RenderPreview(s Surface, entries []state.DrawingEntry, p state.Path, color string) {
	Render(s, entries)
	RenderIncrementalStroke(s, p, color)
}

// ResizeAndRender resizes s and replays entries onto it.
func ResizeAndRender(s Surface, w, h int, entries []state.DrawingEntry) error {
	if err := s.Resize(w, h); err != nil {
		return err
	}
	Render(s, entries)
	return nil
}

func drawEntry(s Surface, e state.DrawingEntry) {
	switch e.Kind {
	case state.KindStroke:
		s.SetStrokeColor(e.Color)
		s.StrokePath(e.Path)
	case state.KindImage:
		if e.Image == nil {
			return
		}
		b := e.Image.Bounds()
		s.DrawImage(e.Image, e.Position.X, e.Position.Y, float64(b.Dx()), float64(b.Dy()))
	}
}
