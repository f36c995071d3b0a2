package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaults(t *testing.T) {
	cfg := Defaults()
	if cfg.Board.Tool != "select" {
		t.Errorf("Board.Tool = %q, want select", cfg.Board.Tool)
	}
	if cfg.Board.Color != "#000000" {
		t.Errorf("Board.Color = %q, want #000000", cfg.Board.Color)
	}
	if cfg.Export.Format != "pdf" {
		t.Errorf("Export.Format = %q, want pdf", cfg.Export.Format)
	}
	if cfg.Logger.Level != "info" {
		t.Errorf("Logger.Level = %q, want info", cfg.Logger.Level)
	}
	if err := Validate(cfg); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoadNonExistentReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Window.Width != 1024 || cfg.Window.Height != 768 {
		t.Errorf("expected default window, got %dx%d", cfg.Window.Width, cfg.Window.Height)
	}
}

func TestLoadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "localsketch.yaml")
	content := `
window:
  title: "Whiteboard"
  width: 800
board:
  tool: rect
  color: "#3366ff"
  line_width: 3.5
export:
  dir: /tmp/sketches
  format: png
logger:
  level: debug
`
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Window.Title != "Whiteboard" || cfg.Window.Width != 800 {
		t.Errorf("Window = %+v", cfg.Window)
	}
	if cfg.Window.Height != 768 {
		t.Errorf("Window.Height = %d, want default 768", cfg.Window.Height)
	}
	if cfg.Board.Tool != "rect" || cfg.Board.Color != "#3366ff" || cfg.Board.LineWidth != 3.5 {
		t.Errorf("Board = %+v", cfg.Board)
	}
	if cfg.Export.Dir != "/tmp/sketches" || cfg.Export.Format != "png" {
		t.Errorf("Export = %+v", cfg.Export)
	}
	if cfg.Export.Padding != 10 {
		t.Errorf("Export.Padding = %v, want default 10", cfg.Export.Padding)
	}
	if cfg.Logger.Level != "debug" {
		t.Errorf("Logger.Level = %q, want debug", cfg.Logger.Level)
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yaml")
	if err := os.WriteFile(path, []byte("board: [unclosed"), 0600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected parse error")
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	content := `
board:
  tool: pen
  color: red
`
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}

	_, err := Load(path)
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected *ValidationError, got %v", err)
	}
	if len(ve.Errors) != 2 {
		t.Errorf("got %d errors, want 2: %v", len(ve.Errors), ve.Errors)
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("LOCALSKETCH_LOGGER_LEVEL", "debug")
	t.Setenv("LOCALSKETCH_BOARD_TOOL", "line")
	t.Setenv("LOCALSKETCH_BOARD_COLOR", "#ff0000")
	t.Setenv("LOCALSKETCH_BOARD_LINE_WIDTH", "4")
	t.Setenv("LOCALSKETCH_EXPORT_DIR", "/srv/exports")
	t.Setenv("LOCALSKETCH_EXPORT_FORMAT", "png")

	cfg := Defaults()
	ApplyEnvOverrides(cfg)

	if cfg.Logger.Level != "debug" {
		t.Errorf("Logger.Level = %q, want debug", cfg.Logger.Level)
	}
	if cfg.Board.Tool != "line" || cfg.Board.Color != "#ff0000" || cfg.Board.LineWidth != 4 {
		t.Errorf("Board = %+v", cfg.Board)
	}
	if cfg.Export.Dir != "/srv/exports" || cfg.Export.Format != "png" {
		t.Errorf("Export = %+v", cfg.Export)
	}
}

func TestEnvOverrideIgnoresBadLineWidth(t *testing.T) {
	t.Setenv("LOCALSKETCH_BOARD_LINE_WIDTH", "thick")

	cfg := Defaults()
	ApplyEnvOverrides(cfg)
	if cfg.Board.LineWidth != 2 {
		t.Errorf("LineWidth = %v, want 2", cfg.Board.LineWidth)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"window", func(c *Config) { c.Window.Width = 0 }, "window.width"},
		{"tool", func(c *Config) { c.Board.Tool = "brush" }, "board.tool"},
		{"color", func(c *Config) { c.Board.Color = "#abc" }, "board.color"},
		{"line width", func(c *Config) { c.Board.LineWidth = 0 }, "board.line_width"},
		{"export format", func(c *Config) { c.Export.Format = "svg" }, "export.format"},
		{"padding", func(c *Config) { c.Export.Padding = -1 }, "export.padding"},
		{"logger format", func(c *Config) { c.Logger.Format = "xml" }, "logger.format"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Defaults()
			tt.mutate(cfg)
			err := Validate(cfg)
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}
