package state

import "math"

// Point is a position in surface-local pixel coordinates.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func Pt(x, y float64) Point { return Point{X: x, Y: y} }

func (p Point) Add(q Point) Point { return Point{X: p.X + q.X, Y: p.Y + q.Y} }
func (p Point) Sub(q Point) Point { return Point{X: p.X - q.X, Y: p.Y - q.Y} }

// CommandKind tags a PathCommand.
type CommandKind int

const (
	CmdMoveTo CommandKind = iota
	CmdLineTo
	CmdRect
)

func (k CommandKind) String() string {
	switch k {
	case CmdMoveTo:
		return "move_to"
	case CmdLineTo:
		return "line_to"
	case CmdRect:
		return "rect"
	}
	return "unknown"
}

// PathCommand is one drawing instruction. Width and Height are only
// meaningful for CmdRect and may be negative.
type PathCommand struct {
	Kind   CommandKind `json:"kind"`
	Point  Point       `json:"point"`
	Width  float64     `json:"width,omitempty"`
	Height float64     `json:"height,omitempty"`
}

func MoveTo(p Point) PathCommand { return PathCommand{Kind: CmdMoveTo, Point: p} }
func LineTo(p Point) PathCommand { return PathCommand{Kind: CmdLineTo, Point: p} }

// RectCmd builds a rectangle command. Negative dimensions are kept as given.
func RectCmd(origin Point, w, h float64) PathCommand {
	return PathCommand{Kind: CmdRect, Point: origin, Width: w, Height: h}
}

// Path is an ordered list of commands. Order defines the stroke shape.
type Path []PathCommand

// Clone returns a copy that shares no backing array with p.
func (p Path) Clone() Path {
	if p == nil {
		return nil
	}
	out := make(Path, len(p))
	copy(out, p)
	return out
}

// Bounds returns the normalized bounding box of every point the path touches.
func (p Path) Bounds() Rect {
	if len(p) == 0 {
		return Rect{}
	}
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	grow := func(q Point) {
		minX = math.Min(minX, q.X)
		minY = math.Min(minY, q.Y)
		maxX = math.Max(maxX, q.X)
		maxY = math.Max(maxY, q.Y)
	}
	for _, c := range p {
		grow(c.Point)
		if c.Kind == CmdRect {
			grow(Point{X: c.Point.X + c.Width, Y: c.Point.Y + c.Height})
		}
	}
	return Rect{X: minX, Y: minY, W: maxX - minX, H: maxY - minY}
}

// Rect is an axis-aligned box with non-negative size.
type Rect struct {
	X, Y, W, H float64
}

func (r Rect) Empty() bool { return r.W <= 0 && r.H <= 0 }

// Union returns the smallest box containing both r and o. An empty box
// with a zero origin is treated as "nothing yet".
func (r Rect) Union(o Rect) Rect {
	if r == (Rect{}) {
		return o
	}
	if o == (Rect{}) {
		return r
	}
	minX := math.Min(r.X, o.X)
	minY := math.Min(r.Y, o.Y)
	maxX := math.Max(r.X+r.W, o.X+o.W)
	maxY := math.Max(r.Y+r.H, o.Y+o.H)
	return Rect{X: minX, Y: minY, W: maxX - minX, H: maxY - minY}
}

// Pad grows the box by pad on every side.
func (r Rect) Pad(pad float64) Rect {
	return Rect{X: r.X - pad, Y: r.Y - pad, W: r.W + 2*pad, H: r.H + 2*pad}
}
