package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"MyLocalSketch/internal/export"
	"MyLocalSketch/internal/infra/config"
	"MyLocalSketch/internal/infra/logger"
	"MyLocalSketch/internal/input"
	"MyLocalSketch/internal/render"
	"MyLocalSketch/internal/state"
	"MyLocalSketch/internal/ui"
)

const DefaultConfigName = "localsketch.yaml"

func main() {
	configPath := flag.String("config", defaultConfigPath(), "path to the YAML config file")
	flag.Parse()

	if err := run(*configPath); err != nil {
		fmt.Fprintln(os.Stderr, "localsketch:", err)
		os.Exit(1)
	}
}

func defaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return DefaultConfigName
	}
	return filepath.Join(dir, "localsketch", DefaultConfigName)
}

func run(configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	log, closeLog, err := logger.New(cfg.Logger)
	if err != nil {
		return err
	}
	defer closeLog()
	slog.SetDefault(log)

	tool, err := state.ParseTool(cfg.Board.Tool)
	if err != nil {
		return err
	}

	surface, err := render.NewRasterSurface(cfg.Window.Width, cfg.Window.Height, cfg.Board.LineWidth, log.With("component", "surface"))
	if err != nil {
		return err
	}
	defer surface.Close()

	log.Info("starting board",
		"config", configPath,
		"tool", tool.String(),
		"color", cfg.Board.Color,
		"export_dir", cfg.Export.Dir,
	)

	ui.RunApp(ui.Deps{
		Config:  cfg,
		Store:   state.NewStore(log.With("component", "history")),
		Surface: surface,
		Options: input.Options{
			Tool:     tool,
			Color:    cfg.Board.Color,
			Exporter: newExporter(cfg),
			Logger:   log.With("component", "input"),
		},
	})
	return nil
}

func newExporter(cfg *config.Config) input.Exporter {
	opts := export.Options{
		Dir:       cfg.Export.Dir,
		Format:    cfg.Export.Format,
		Padding:   cfg.Export.Padding,
		LineWidth: cfg.Board.LineWidth,
	}
	return func(entries []state.DrawingEntry, w, h int) (string, error) {
		return export.Snapshot(entries, w, h, opts)
	}
}
