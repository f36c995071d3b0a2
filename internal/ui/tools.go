package ui

import (
	"fmt"
	"image/color"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"MyLocalSketch/internal/input"
	"MyLocalSketch/internal/state"
)

var palette = []string{"#000000", "#ff0000", "#00ff00", "#0000ff", "#ffff00"}

// --- Custom Widget for Color Swatches ---
type colorSwatch struct {
	widget.BaseWidget
	Hex      string
	OnTapped func(string)
}

func newColorSwatch(hex string, tapped func(string)) *colorSwatch {
	s := &colorSwatch{Hex: hex, OnTapped: tapped}
	s.ExtendBaseWidget(s)
	return s
}

func (s *colorSwatch) CreateRenderer() fyne.WidgetRenderer {
	rect := canvas.NewRectangle(hexToColor(s.Hex))
	rect.SetMinSize(fyne.NewSize(32, 32))

	border := canvas.NewRectangle(color.Transparent)
	border.StrokeColor = color.Gray{Y: 150}
	border.StrokeWidth = 1

	return widget.NewSimpleRenderer(container.NewStack(rect, border))
}

func (s *colorSwatch) Tapped(_ *fyne.PointEvent) {
	if s.OnTapped != nil {
		s.OnTapped(s.Hex)
	}
}

func hexToColor(hex string) color.Color {
	r, g, b, ok := state.RGB(hex)
	if !ok {
		return color.Black
	}
	return color.NRGBA{R: uint8(r), G: uint8(g), B: uint8(b), A: 255}
}

// colorToHex renders c as #rrggbb, dropping alpha.
func colorToHex(c color.Color) string {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return fmt.Sprintf("#%02x%02x%02x", n.R, n.G, n.B)
}

var toolLabels = []string{"Select", "Line", "Rect"}

// --- The Main Toolbar ---
func NewToolbar(win fyne.Window, coord *input.Coordinator, status *widget.Label) fyne.CanvasObject {
	current := canvas.NewRectangle(hexToColor(coord.Color()))
	current.SetMinSize(fyne.NewSize(32, 32))

	setColor := func(hex string) {
		if err := coord.ColorChanged(hex); err != nil {
			status.SetText(err.Error())
			return
		}
		current.FillColor = hexToColor(hex)
		current.Refresh()
	}

	// --- Tool selection ---
	tools := widget.NewRadioGroup(toolLabels, nil)
	tools.Horizontal = true
	tools.Required = true
	tools.SetSelected(toolLabels[coord.Tool()])
	tools.OnChanged = func(label string) {
		t, err := state.ParseTool(strings.ToLower(label))
		if err != nil {
			return
		}
		if err := coord.ToolChanged(t); err != nil {
			status.SetText("Finish the current shape before switching tools")
			tools.SetSelected(toolLabels[coord.Tool()])
		}
	}

	// --- Color Palette ---
	colorBox := container.NewHBox()
	for _, hex := range palette {
		colorBox.Add(newColorSwatch(hex, setColor))
	}
	pick := widget.NewButtonWithIcon("", theme.ColorPaletteIcon(), func() {
		picker := dialog.NewColorPicker("Stroke color", "Pick a color", func(c color.Color) {
			setColor(colorToHex(c))
		}, win)
		picker.Advanced = true
		picker.Show()
	})

	// --- History ---
	tb := widget.NewToolbar(
		widget.NewToolbarAction(theme.ContentUndoIcon(), func() { coord.Undo() }),
		widget.NewToolbarAction(theme.ContentRedoIcon(), func() { coord.Redo() }),
		widget.NewToolbarAction(theme.ContentPasteIcon(), func() {
			if !coord.Paste() {
				status.SetText("Nothing to paste")
			}
		}),
		widget.NewToolbarAction(theme.DocumentSaveIcon(), func() {
			exportWithStatus(coord, status)
		}),
	)

	// --- Assemble everything ---
	return container.NewHBox(
		widget.NewLabel("Tool:"),
		tools,
		widget.NewSeparator(),
		widget.NewLabel("Color:"),
		current,
		colorBox,
		pick,
		widget.NewSeparator(),
		tb,
		layout.NewSpacer(),
	)
}

func exportWithStatus(coord *input.Coordinator, status *widget.Label) {
	path, err := coord.Export()
	if err != nil {
		status.SetText("Export failed: " + err.Error())
		return
	}
	status.SetText("Exported to " + path)
}
