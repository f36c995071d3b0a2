package export

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"

	"github.com/jung-kurt/gofpdf"

	"MyLocalSketch/internal/render"
	"MyLocalSketch/internal/state"
)

var errFixedPage = errors.New("pdf page size is fixed")

// pdfSurface draws onto a single PDF page. Coordinates are shifted by
// origin so a cropped region of the board lands at the page corner.
type pdfSurface struct {
	pdf       *gofpdf.Fpdf
	w, h      float64
	origin    state.Point
	lineWidth float64
	images    int
}

var _ render.Surface = (*pdfSurface)(nil)

func newPDFSurface(area state.Rect, lineWidth float64) *pdfSurface {
	p := gofpdf.NewCustom(&gofpdf.InitType{
		UnitStr: "pt",
		Size:    gofpdf.SizeType{Wd: area.W, Ht: area.H},
	})
	p.SetMargins(0, 0, 0)
	p.SetAutoPageBreak(false, 0)
	p.AddPage()
	p.SetLineWidth(lineWidth)
	p.SetDrawColor(0, 0, 0)
	return &pdfSurface{
		pdf:       p,
		w:         area.W,
		h:         area.H,
		origin:    state.Point{X: area.X, Y: area.Y},
		lineWidth: lineWidth,
	}
}

func (s *pdfSurface) Size() (int, int) { return int(s.w), int(s.h) }

func (s *pdfSurface) Clear(x0, y0, w, h float64) {
	s.pdf.SetFillColor(255, 255, 255)
	s.pdf.Rect(x0-s.origin.X, y0-s.origin.Y, w, h, "F")
}

func (s *pdfSurface) SetStrokeColor(c string) {
	r, g, b, ok := state.RGB(c)
	if !ok {
		r, g, b = 0, 0, 0
	}
	s.pdf.SetDrawColor(r, g, b)
}

func (s *pdfSurface) StrokePath(p state.Path) {
	open := false
	flush := func() {
		if open {
			s.pdf.DrawPath("D")
			open = false
		}
	}
	for _, c := range p {
		pt := c.Point.Sub(s.origin)
		switch c.Kind {
		case state.CmdMoveTo:
			flush()
			s.pdf.MoveTo(pt.X, pt.Y)
			open = true
		case state.CmdLineTo:
			if !open {
				s.pdf.MoveTo(pt.X, pt.Y)
				open = true
			}
			s.pdf.LineTo(pt.X, pt.Y)
		case state.CmdRect:
			flush()
			s.pdf.Rect(pt.X, pt.Y, c.Width, c.Height, "D")
		}
	}
	flush()
}

func (s *pdfSurface) DrawImage(img image.Image, x, y, w, h float64) {
	if img == nil {
		return
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		s.pdf.SetError(fmt.Errorf("encode pasted image: %w", err))
		return
	}
	s.images++
	name := fmt.Sprintf("pasted-%d", s.images)
	opt := gofpdf.ImageOptions{ImageType: "PNG", AllowNegativePosition: true}
	s.pdf.RegisterImageOptionsReader(name, opt, &buf)
	s.pdf.ImageOptions(name, x-s.origin.X, y-s.origin.Y, w, h, false, opt, 0, "")
}

func (s *pdfSurface) Resize(int, int) error { return errFixedPage }

// WritePDF renders entries onto a PDF page and writes it to w. The page
// covers the content bounds grown by padding; an empty board yields a
// page of the given surface size.
func WritePDF(w io.Writer, entries []state.DrawingEntry, surfaceW, surfaceH int, padding, lineWidth float64) error {
	area := pageArea(entries, surfaceW, surfaceH, padding)
	s := newPDFSurface(area, lineWidth)
	render.Render(s, entries)
	if err := s.pdf.Error(); err != nil {
		return fmt.Errorf("render pdf: %w", err)
	}
	return s.pdf.Output(w)
}

func pageArea(entries []state.DrawingEntry, surfaceW, surfaceH int, padding float64) state.Rect {
	bounds := state.ContentBounds(entries)
	if bounds == (state.Rect{}) {
		return state.Rect{W: float64(surfaceW), H: float64(surfaceH)}
	}
	area := bounds.Pad(padding)
	// keep a drawable page for degenerate content such as a single point
	if area.W < 1 {
		area.W = 1
	}
	if area.H < 1 {
		area.H = 1
	}
	return area
}
