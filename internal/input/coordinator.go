// Package input turns raw window events into tool transitions, History
// mutations and surface redraws.
package input

import (
	"errors"
	"fmt"
	"image"
	"log/slog"

	"MyLocalSketch/internal/clipboard"
	"MyLocalSketch/internal/render"
	"MyLocalSketch/internal/state"
)

var ErrInvalidColor = errors.New("color must have the form #RRGGBB")

// Exporter writes a snapshot of the entries and returns where it went.
type Exporter func(entries []state.DrawingEntry, w, h int) (string, error)

// Options configures a Coordinator.
type Options struct {
	Tool      state.Tool
	Color     string
	Clipboard clipboard.Reader
	Exporter  Exporter
	Logger    *slog.Logger
}

// Coordinator is the single application state of the board. All methods
// are expected to run on the window's event goroutine.
type Coordinator struct {
	machine   *state.Machine
	store     *state.Store
	surface   render.Surface
	clipboard clipboard.Reader
	exporter  Exporter
	logger    *slog.Logger

	color   string
	offset  state.Point
	pointer state.Point

	// OnChange runs after every redraw of the surface.
	OnChange func()
}

func New(store *state.Store, surface render.Surface, opts Options) *Coordinator {
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.DiscardHandler)
	}
	if !state.ValidColor(opts.Color) {
		opts.Color = "#000000"
	}
	return &Coordinator{
		machine:   state.NewMachine(opts.Tool),
		store:     store,
		surface:   surface,
		clipboard: opts.Clipboard,
		exporter:  opts.Exporter,
		logger:    opts.Logger,
		color:     opts.Color,
	}
}

func (c *Coordinator) Tool() state.Tool    { return c.machine.Tool() }
func (c *Coordinator) Color() string       { return c.color }
func (c *Coordinator) Store() *state.Store { return c.store }
func (c *Coordinator) Gesturing() bool     { return c.machine.Gesturing() }

// Pointer returns the last surface-local pointer position.
func (c *Coordinator) Pointer() state.Point { return c.pointer }

// Mount draws the initial state.
func (c *Coordinator) Mount() {
	c.redraw()
}

// SetViewportOffset records where the canvas sits inside the window.
// Raw pointer coordinates are shifted by it.
func (c *Coordinator) SetViewportOffset(x, y float64) {
	c.offset = state.Pt(x, y)
}

func (c *Coordinator) toSurface(x, y float64) state.Point {
	c.pointer = state.Pt(x, y).Sub(c.offset)
	return c.pointer
}

func (c *Coordinator) PointerDown(x, y float64) {
	c.apply(c.machine.PointerDown(c.toSurface(x, y)))
}

func (c *Coordinator) PointerMove(x, y float64) {
	c.apply(c.machine.PointerMove(c.toSurface(x, y)))
}

func (c *Coordinator) PointerUp() {
	c.apply(c.machine.PointerUp())
}

func (c *Coordinator) PointerLeave() {
	c.apply(c.machine.PointerLeave())
}

// ToolChanged switches tools. The switch is ignored while a gesture is in
// progress.
func (c *Coordinator) ToolChanged(t state.Tool) error {
	if err := c.machine.SetTool(t); err != nil {
		c.logger.Debug("tool change ignored", "tool", t.String(), "current", c.machine.Tool().String(), "error", err)
		return err
	}
	c.logger.Debug("tool selected", "tool", t.String())
	return nil
}

// ColorChanged sets the stroke color for future commits.
func (c *Coordinator) ColorChanged(color string) error {
	if !state.ValidColor(color) {
		c.logger.Debug("color rejected", "color", color)
		return fmt.Errorf("%w: %q", ErrInvalidColor, color)
	}
	c.color = color
	return nil
}

// KeyCombo dispatches a keyboard shortcut and reports whether it was one.
func (c *Coordinator) KeyCombo(ctrl bool, key string) bool {
	switch ShortcutAction(ctrl, key) {
	case ActionPaste:
		c.Paste()
	case ActionUndo:
		c.Undo()
	case ActionRedo:
		c.Redo()
	case ActionExport:
		_, _ = c.Export()
	default:
		return false
	}
	return true
}

// Undo removes the newest entry and replays. It reports whether History
// changed; an empty History is silently ignored.
func (c *Coordinator) Undo() bool {
	entries, err := c.store.Undo()
	if err != nil {
		c.logger.Debug("undo ignored", "error", err)
		return false
	}
	c.logger.Info("undo", "history", len(entries), "redo", c.store.RedoLen())
	c.render(entries)
	return true
}

// Redo reinstates the newest undone entry and replays.
func (c *Coordinator) Redo() bool {
	entries, err := c.store.Redo()
	if err != nil {
		c.logger.Debug("redo ignored", "error", err)
		return false
	}
	c.logger.Info("redo", "history", len(entries), "redo", c.store.RedoLen())
	c.render(entries)
	return true
}

// Paste commits the clipboard image at the current pointer position.
// Clipboard failures leave the board untouched.
func (c *Coordinator) Paste() bool {
	if c.clipboard == nil {
		return false
	}
	img, err := c.clipboard.ReadImage()
	if err != nil {
		c.logger.Debug("paste ignored", "error", err)
		return false
	}
	if img == nil {
		c.logger.Debug("paste ignored", "error", clipboard.ErrNoImage)
		return false
	}
	return c.PasteImage(img, c.pointer)
}

// PasteImage commits an already decoded image at pos.
func (c *Coordinator) PasteImage(img image.Image, pos state.Point) bool {
	return c.commit(state.ImageEntry(img, pos))
}

// WindowResized resizes the surface and replays History onto it.
func (c *Coordinator) WindowResized(w, h int) error {
	if err := render.ResizeAndRender(c.surface, w, h, c.store.Snapshot()); err != nil {
		c.logger.Warn("resize failed", "width", w, "height", h, "error", err)
		return err
	}
	c.logger.Debug("surface resized", "width", w, "height", h)
	c.changed()
	return nil
}

// Export writes a snapshot of History through the configured exporter.
func (c *Coordinator) Export() (string, error) {
	if c.exporter == nil {
		return "", errors.New("export not configured")
	}
	w, h := c.surface.Size()
	path, err := c.exporter(c.store.Snapshot(), w, h)
	if err != nil {
		c.logger.Warn("export failed", "error", err)
		return "", err
	}
	c.logger.Info("exported", "path", path, "entries", c.store.Len())
	return path, nil
}

func (c *Coordinator) apply(step state.Step) {
	switch step.Outcome {
	case state.OutcomeIncremental:
		render.RenderIncrementalStroke(c.surface, step.Path, c.color)
		c.changed()
	case state.OutcomePreview:
		render.RenderPreview(c.surface, c.store.Snapshot(), step.Path, c.color)
		c.changed()
	case state.OutcomeCommit:
		c.commit(state.StrokeEntry(step.Path, c.color))
	}
}

func (c *Coordinator) commit(e state.DrawingEntry) bool {
	committed, err := c.store.Commit(e)
	if err != nil {
		c.logger.Warn("commit rejected", "kind", string(e.Kind), "error", err)
		c.redraw()
		return false
	}
	c.logger.Info("committed", "id", committed.ID, "kind", string(committed.Kind), "history", c.store.Len())
	c.redraw()
	return true
}

func (c *Coordinator) redraw() {
	c.render(c.store.Snapshot())
}

func (c *Coordinator) render(entries []state.DrawingEntry) {
	render.Render(c.surface, entries)
	c.changed()
}

func (c *Coordinator) changed() {
	if c.OnChange != nil {
		c.OnChange()
	}
}
