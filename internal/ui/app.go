package ui

import (
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"MyLocalSketch/internal/clipboard"
	"MyLocalSketch/internal/infra/config"
	"MyLocalSketch/internal/input"
	"MyLocalSketch/internal/render"
	"MyLocalSketch/internal/state"
)

// Deps is everything RunApp needs that main builds.
type Deps struct {
	Config  *config.Config
	Store   *state.Store
	Surface *render.RasterSurface
	Options input.Options
}

// RunApp opens the drawing window and blocks until it is closed.
func RunApp(d Deps) {
	myApp := app.New()
	myWindow := myApp.NewWindow(d.Config.Window.Title)
	myWindow.Resize(fyne.NewSize(float32(d.Config.Window.Width), float32(d.Config.Window.Height)))

	opts := d.Options
	if opts.Clipboard == nil {
		opts.Clipboard = clipboard.TextReader{Content: func() string {
			return myWindow.Clipboard().Content()
		}}
	}
	coord := input.New(d.Store, d.Surface, opts)

	status := widget.NewLabel("Ready")
	board := NewBoardWidget(coord, d.Surface)
	toolbar := NewToolbar(myWindow, coord, status)
	registerShortcuts(myWindow.Canvas(), coord, status)

	content := container.NewBorder(toolbar, status, nil, nil, board)
	myWindow.SetContent(content)
	coord.Mount()
	myWindow.ShowAndRun()
}

func registerShortcuts(c fyne.Canvas, coord *input.Coordinator, status *widget.Label) {
	bind := func(key string) func(fyne.Shortcut) {
		return func(fyne.Shortcut) {
			if key == "e" {
				exportWithStatus(coord, status)
				return
			}
			coord.KeyCombo(true, key)
		}
	}
	for _, k := range []fyne.KeyName{fyne.KeyV, fyne.KeyZ, fyne.KeyY, fyne.KeyE} {
		c.AddShortcut(&desktop.CustomShortcut{KeyName: k, Modifier: fyne.KeyModifierControl}, bind(strings.ToLower(string(k))))
	}
	// the driver reports some Ctrl combinations as standard shortcuts
	c.AddShortcut(&fyne.ShortcutPaste{}, bind("v"))
	c.AddShortcut(&fyne.ShortcutUndo{}, bind("z"))
	c.AddShortcut(&fyne.ShortcutRedo{}, bind("y"))
}
