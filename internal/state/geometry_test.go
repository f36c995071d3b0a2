package state

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPathBounds(t *testing.T) {
	tests := []struct {
		name string
		path Path
		want Rect
	}{
		{"empty", nil, Rect{}},
		{"polyline", Path{MoveTo(Pt(5, 1)), LineTo(Pt(-2, 4)), LineTo(Pt(3, 9))}, Rect{X: -2, Y: 1, W: 7, H: 8}},
		{"negative rect", Path{RectCmd(Pt(10, 10), -6, -4)}, Rect{X: 4, Y: 6, W: 6, H: 4}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.path.Bounds())
		})
	}
}

func TestRectUnionAndPad(t *testing.T) {
	a := Rect{X: 0, Y: 0, W: 10, H: 10}
	b := Rect{X: 5, Y: -5, W: 10, H: 5}

	assert.Equal(t, Rect{X: 0, Y: -5, W: 15, H: 15}, a.Union(b))
	assert.Equal(t, a, Rect{}.Union(a))
	assert.Equal(t, a, a.Union(Rect{}))
	assert.Equal(t, Rect{X: -2, Y: -2, W: 14, H: 14}, a.Pad(2))
	assert.True(t, Rect{}.Empty())
	assert.False(t, a.Empty())
}

func TestPathClone(t *testing.T) {
	var nilPath Path
	assert.Nil(t, nilPath.Clone())

	p := Path{MoveTo(Pt(1, 1))}
	c := p.Clone()
	c[0] = LineTo(Pt(2, 2))
	assert.Equal(t, MoveTo(Pt(1, 1)), p[0])
}

func TestContentBounds(t *testing.T) {
	entries := []DrawingEntry{
		StrokeEntry(Path{MoveTo(Pt(10, 10)), LineTo(Pt(20, 15))}, "#000000"),
		ImageEntry(image.NewRGBA(image.Rect(0, 0, 8, 4)), Pt(30, 30)),
	}
	assert.Equal(t, Rect{X: 10, Y: 10, W: 28, H: 24}, ContentBounds(entries))
	assert.Equal(t, Rect{}, ContentBounds(nil))
}

func TestColors(t *testing.T) {
	assert.True(t, ValidColor("#ff0000"))
	assert.True(t, ValidColor("#A1b2C3"))
	assert.False(t, ValidColor("ff0000"))
	assert.False(t, ValidColor("#fff"))
	assert.False(t, ValidColor("#gg0000"))

	r, g, b, ok := RGB("#12ab0f")
	assert.True(t, ok)
	assert.Equal(t, []int{0x12, 0xab, 0x0f}, []int{r, g, b})

	_, _, _, ok = RGB("black")
	assert.False(t, ok)
}
