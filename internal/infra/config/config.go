package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config is the top-level application configuration.
type Config struct {
	Window WindowConfig `yaml:"window"`
	Board  BoardConfig  `yaml:"board"`
	Export ExportConfig `yaml:"export"`
	Logger LoggerConfig `yaml:"logger"`
}

// WindowConfig holds the initial window geometry.
type WindowConfig struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
}

// BoardConfig holds drawing defaults.
type BoardConfig struct {
	Tool      string  `yaml:"tool"`       // select, line, rect
	Color     string  `yaml:"color"`      // #RRGGBB
	LineWidth float64 `yaml:"line_width"` // pixels
}

// ExportConfig controls where Ctrl+E snapshots are written.
type ExportConfig struct {
	Dir     string  `yaml:"dir"`
	Format  string  `yaml:"format"`  // pdf, png
	Padding float64 `yaml:"padding"` // margin around content for cropped exports
}

// LoggerConfig holds logging settings.
type LoggerConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text, json
	Output string `yaml:"output"` // stdout, stderr, or a file path
}

// Defaults returns the configuration used when no file is present.
func Defaults() *Config {
	return &Config{
		Window: WindowConfig{
			Title:  "Local Sketch",
			Width:  1024,
			Height: 768,
		},
		Board: BoardConfig{
			Tool:      "select",
			Color:     "#000000",
			LineWidth: 2,
		},
		Export: ExportConfig{
			Dir:     defaultExportDir(),
			Format:  "pdf",
			Padding: 10,
		},
		Logger: LoggerConfig{
			Level:  "info",
			Format: "text",
			Output: "stderr",
		},
	}
}

func defaultExportDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, "Pictures")
}

// Load reads a YAML config file and applies env var overrides. A missing
// file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			ApplyEnvOverrides(cfg)
			if err := Validate(cfg); err != nil {
				return nil, err
			}
			return cfg, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	ApplyEnvOverrides(cfg)

	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyEnvOverrides maps LOCALSKETCH_* env vars to config fields.
func ApplyEnvOverrides(cfg *Config) {
	if v := os.Getenv("LOCALSKETCH_LOGGER_LEVEL"); v != "" {
		cfg.Logger.Level = v
	}
	if v := os.Getenv("LOCALSKETCH_LOGGER_FORMAT"); v != "" {
		cfg.Logger.Format = v
	}
	if v := os.Getenv("LOCALSKETCH_LOGGER_OUTPUT"); v != "" {
		cfg.Logger.Output = v
	}
	if v := os.Getenv("LOCALSKETCH_BOARD_TOOL"); v != "" {
		cfg.Board.Tool = v
	}
	if v := os.Getenv("LOCALSKETCH_BOARD_COLOR"); v != "" {
		cfg.Board.Color = v
	}
	if v := os.Getenv("LOCALSKETCH_BOARD_LINE_WIDTH"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Board.LineWidth = f
		}
	}
	if v := os.Getenv("LOCALSKETCH_EXPORT_DIR"); v != "" {
		cfg.Export.Dir = v
	}
	if v := os.Getenv("LOCALSKETCH_EXPORT_FORMAT"); v != "" {
		cfg.Export.Format = v
	}
}
