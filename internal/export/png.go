package export

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"MyLocalSketch/internal/render"
	"MyLocalSketch/internal/state"
)

// WritePNG replays entries onto a fresh raster of the surface size and
// encodes it to w.
func WritePNG(w io.Writer, entries []state.DrawingEntry, surfaceW, surfaceH int, lineWidth float64) error {
	s, err := render.NewRasterSurface(surfaceW, surfaceH, lineWidth, nil)
	if err != nil {
		return err
	}
	defer s.Close()
	render.Render(s, entries)
	return s.EncodePNG(w)
}

// Options configures a snapshot export.
type Options struct {
	Dir       string
	Format    string // pdf or png
	Padding   float64
	LineWidth float64
	Now       func() time.Time
}

// Snapshot writes the entries to a new timestamped file in opts.Dir and
// returns its path.
func Snapshot(entries []state.DrawingEntry, surfaceW, surfaceH int, opts Options) (string, error) {
	now := time.Now
	if opts.Now != nil {
		now = opts.Now
	}
	format := strings.ToLower(opts.Format)
	if format != "png" {
		format = "pdf"
	}

	if err := os.MkdirAll(opts.Dir, 0o755); err != nil {
		return "", fmt.Errorf("create export dir: %w", err)
	}
	path := filepath.Join(opts.Dir, fmt.Sprintf("sketch-%d.%s", now().Unix(), format))
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create export file: %w", err)
	}

	if format == "png" {
		err = WritePNG(f, entries, surfaceW, surfaceH, opts.LineWidth)
	} else {
		err = WritePDF(f, entries, surfaceW, surfaceH, opts.Padding, opts.LineWidth)
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		_ = os.Remove(path)
		return "", err
	}
	return path, nil
}
