package render

import (
	"fmt"
	"image"
	"io"
	"log/slog"
	"sync"

	"github.com/gogpu/gg"

	"MyLocalSketch/internal/state"
)

// DefaultLineWidth is the stroke width used when none is configured.
const DefaultLineWidth = 2.0

// RasterSurface is a Surface backed by a gg software context.
type RasterSurface struct {
	dc         *gg.Context
	lineWidth  float64
	background gg.RGBA
	color      string
	logger     *slog.Logger
	mu         sync.Mutex
}

// NewRasterSurface allocates a w x h surface filled with white.
func NewRasterSurface(w, h int, lineWidth float64, logger *slog.Logger) (*RasterSurface, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("invalid surface size %dx%d", w, h)
	}
	if lineWidth <= 0 {
		lineWidth = DefaultLineWidth
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	s := &RasterSurface{
		dc:         gg.NewContext(w, h),
		lineWidth:  lineWidth,
		background: gg.White,
		color:      "#000000",
		logger:     logger,
	}
	s.dc.ClearWithColor(s.background)
	return s, nil
}

var _ Surface = (*RasterSurface)(nil)

func (s *RasterSurface) Size() (int, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dc.Width(), s.dc.Height()
}

func (s *RasterSurface) Clear(x0, y0, w, h float64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if x0 <= 0 && y0 <= 0 && w >= float64(s.dc.Width()) && h >= float64(s.dc.Height()) {
		s.dc.ClearWithColor(s.background)
		return
	}
	s.dc.ClearPath()
	s.dc.SetColor(s.background.Color())
	s.dc.DrawRectangle(x0, y0, w, h)
	if err := s.dc.Fill(); err != nil {
		s.logger.Warn("clear region failed", "error", err)
	}
	s.dc.SetHexColor(s.color)
}

func (s *RasterSurface) SetStrokeColor(c string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.color = c
	s.dc.SetHexColor(c)
}

func (s *RasterSurface) StrokePath(p state.Path) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.dc.ClearPath()
	for _, c := range p {
		switch c.Kind {
		case state.CmdMoveTo:
			s.dc.MoveTo(c.Point.X, c.Point.Y)
		case state.CmdLineTo:
			s.dc.LineTo(c.Point.X, c.Point.Y)
		case state.CmdRect:
			s.dc.DrawRectangle(c.Point.X, c.Point.Y, c.Width, c.Height)
		}
	}
	s.dc.SetLineWidth(s.lineWidth)
	if err := s.dc.Stroke(); err != nil {
		s.logger.Warn("stroke failed", "commands", len(p), "error", err)
	}
}

func (s *RasterSurface) DrawImage(img image.Image, x, y, w, h float64) {
	if img == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dc.DrawImageEx(gg.ImageBufFromImage(img), gg.DrawImageOptions{
		X:         x,
		Y:         y,
		DstWidth:  w,
		DstHeight: h,
		Opacity:   1.0,
	})
}

// Resize reallocates the backing pixmap. The old contents are dropped and
// the new surface starts out as background.
func (s *RasterSurface) Resize(w, h int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.dc.Resize(w, h); err != nil {
		return fmt.Errorf("resize surface: %w", err)
	}
	s.dc.ClearWithColor(s.background)
	s.dc.SetHexColor(s.color)
	return nil
}

// Image returns the current pixels.
func (s *RasterSurface) Image() image.Image {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dc.Image()
}

// EncodePNG writes the current pixels to w as PNG.
func (s *RasterSurface) EncodePNG(w io.Writer) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dc.EncodePNG(w)
}

// SavePNG writes the current pixels to path.
func (s *RasterSurface) SavePNG(path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dc.SavePNG(path)
}

func (s *RasterSurface) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dc.Close()
}
