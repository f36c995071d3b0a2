package state

import (
	"image"
	"regexp"
	"strconv"
)

// EntryKind tags a DrawingEntry.
type EntryKind string

const (
	KindStroke EntryKind = "stroke"
	KindImage  EntryKind = "image"
)

// DrawingEntry is one committed item of History. Exactly one of the
// variant fields is set, selected by Kind.
type DrawingEntry struct {
	ID   string
	Seq  uint64
	Kind EntryKind

	// stroke
	Path  Path
	Color string

	// image
	Image    image.Image
	Position Point
}

// StrokeEntry builds an uncommitted stroke entry.
func StrokeEntry(p Path, color string) DrawingEntry {
	return DrawingEntry{Kind: KindStroke, Path: p, Color: color}
}

// ImageEntry builds an uncommitted image entry.
func ImageEntry(img image.Image, pos Point) DrawingEntry {
	return DrawingEntry{Kind: KindImage, Image: img, Position: pos}
}

// Bounds returns the area the entry covers once drawn.
func (e DrawingEntry) Bounds() Rect {
	switch e.Kind {
	case KindStroke:
		return e.Path.Bounds()
	case KindImage:
		if e.Image == nil {
			return Rect{}
		}
		b := e.Image.Bounds()
		return Rect{X: e.Position.X, Y: e.Position.Y, W: float64(b.Dx()), H: float64(b.Dy())}
	}
	return Rect{}
}

// complete reports whether the entry may be stored.
func (e DrawingEntry) complete() bool {
	switch e.Kind {
	case KindStroke:
		return len(e.Path) > 0 && ValidColor(e.Color)
	case KindImage:
		return e.Image != nil
	}
	return false
}

// ContentBounds is the union of the bounds of all entries.
func ContentBounds(entries []DrawingEntry) Rect {
	var r Rect
	for _, e := range entries {
		r = r.Union(e.Bounds())
	}
	return r
}

var hexColor = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// ValidColor reports whether c has the form #RRGGBB.
func ValidColor(c string) bool { return hexColor.MatchString(c) }

// RGB splits a #RRGGBB color into its components.
func RGB(c string) (r, g, b int, ok bool) {
	if !ValidColor(c) {
		return 0, 0, 0, false
	}
	v, err := strconv.ParseUint(c[1:], 16, 32)
	if err != nil {
		return 0, 0, 0, false
	}
	return int(v >> 16 & 0xff), int(v >> 8 & 0xff), int(v & 0xff), true
}
