package config

import (
	"fmt"
	"strings"

	"MyLocalSketch/internal/state"
)

// ValidationError accumulates config validation errors.
type ValidationError struct {
	Errors []string
}

func (v *ValidationError) Error() string {
	return "config validation failed:\n  - " + strings.Join(v.Errors, "\n  - ")
}

// HasErrors reports whether any validation errors have been recorded.
func (v *ValidationError) HasErrors() bool {
	return len(v.Errors) > 0
}

// Add records a formatted validation error.
func (v *ValidationError) Add(format string, args ...interface{}) {
	v.Errors = append(v.Errors, fmt.Sprintf(format, args...))
}

// Validate checks cfg for structural correctness. It returns a *ValidationError
// listing every problem found.
func Validate(cfg *Config) error {
	ve := &ValidationError{}
	validateWindow(cfg, ve)
	validateBoard(cfg, ve)
	validateExport(cfg, ve)
	validateLogger(cfg, ve)
	if ve.HasErrors() {
		return ve
	}
	return nil
}

func validateWindow(cfg *Config, ve *ValidationError) {
	if cfg.Window.Width <= 0 || cfg.Window.Height <= 0 {
		ve.Add("window.width and window.height must be > 0 (got %dx%d)", cfg.Window.Width, cfg.Window.Height)
	}
}

func validateBoard(cfg *Config, ve *ValidationError) {
	if _, err := state.ParseTool(cfg.Board.Tool); err != nil {
		ve.Add("board.tool: %v", err)
	}
	if !state.ValidColor(cfg.Board.Color) {
		ve.Add("board.color %q must have the form #RRGGBB", cfg.Board.Color)
	}
	if cfg.Board.LineWidth <= 0 {
		ve.Add("board.line_width must be > 0")
	}
}

func validateExport(cfg *Config, ve *ValidationError) {
	switch strings.ToLower(cfg.Export.Format) {
	case "pdf", "png":
	default:
		ve.Add("export.format %q must be pdf or png", cfg.Export.Format)
	}
	if cfg.Export.Padding < 0 {
		ve.Add("export.padding must be >= 0")
	}
}

func validateLogger(cfg *Config, ve *ValidationError) {
	switch strings.ToLower(cfg.Logger.Format) {
	case "", "text", "json":
	default:
		ve.Add("logger.format %q must be text or json", cfg.Logger.Format)
	}
}
