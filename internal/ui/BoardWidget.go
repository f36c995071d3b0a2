package ui

import (
	"image"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"MyLocalSketch/internal/input"
	"MyLocalSketch/internal/render"
)

// BoardWidget shows the raster surface and forwards pointer input to the
// coordinator.
type BoardWidget struct {
	widget.BaseWidget
	coord    *input.Coordinator
	surface  *render.RasterSurface
	size     fyne.Size
	dragging bool
}

var _ fyne.Widget = (*BoardWidget)(nil)
var _ fyne.Draggable = (*BoardWidget)(nil)
var _ desktop.Mouseable = (*BoardWidget)(nil)
var _ desktop.Hoverable = (*BoardWidget)(nil)

func NewBoardWidget(coord *input.Coordinator, surface *render.RasterSurface) *BoardWidget {
	b := &BoardWidget{coord: coord, surface: surface}
	b.ExtendBaseWidget(b)
	return b
}

// syncOffset keeps the coordinator's viewport offset at the widget's
// absolute position so absolute pointer coordinates land surface-local.
func (b *BoardWidget) syncOffset() {
	app := fyne.CurrentApp()
	if app == nil {
		return
	}
	pos := app.Driver().AbsolutePositionForObject(b)
	b.coord.SetViewportOffset(float64(pos.X), float64(pos.Y))
}

func (b *BoardWidget) MouseDown(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	b.syncOffset()
	b.coord.PointerDown(float64(e.AbsolutePosition.X), float64(e.AbsolutePosition.Y))
}

func (b *BoardWidget) MouseUp(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	b.dragging = false
	b.coord.PointerUp()
}

func (b *BoardWidget) Dragged(e *fyne.DragEvent) {
	b.dragging = true
	b.coord.PointerMove(float64(e.AbsolutePosition.X), float64(e.AbsolutePosition.Y))
}

func (b *BoardWidget) DragEnd() {
	if b.dragging {
		b.dragging = false
		b.coord.PointerUp()
	}
}

func (b *BoardWidget) MouseIn(*desktop.MouseEvent) {}

func (b *BoardWidget) MouseMoved(e *desktop.MouseEvent) {
	b.coord.PointerMove(float64(e.AbsolutePosition.X), float64(e.AbsolutePosition.Y))
}

func (b *BoardWidget) MouseOut() {
	b.dragging = false
	b.coord.PointerLeave()
}

func (b *BoardWidget) CreateRenderer() fyne.WidgetRenderer {
	r := &boardWidgetRenderer{board: b}
	r.background = canvas.NewRectangle(color.White)
	r.raster = canvas.NewRaster(func(w, h int) image.Image {
		return b.surface.Image()
	})
	r.raster.ScaleMode = canvas.ImageScalePixels
	b.coord.OnChange = func() { r.raster.Refresh() }
	return r
}

type boardWidgetRenderer struct {
	board      *BoardWidget
	background *canvas.Rectangle
	raster     *canvas.Raster
}

func (r *boardWidgetRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.background, r.raster}
}

// Layout is where window resizes reach the board: the surface is resized
// to the new viewport and History is replayed onto it.
func (r *boardWidgetRenderer) Layout(size fyne.Size) {
	r.background.Resize(size)
	r.raster.Resize(size)
	if size == r.board.size || size.Width < 1 || size.Height < 1 {
		return
	}
	r.board.size = size
	r.board.syncOffset()
	_ = r.board.coord.WindowResized(int(size.Width), int(size.Height))
}

func (r *boardWidgetRenderer) MinSize() fyne.Size {
	return fyne.NewSize(300, 300)
}

func (r *boardWidgetRenderer) Refresh() {
	r.raster.Refresh()
}

func (r *boardWidgetRenderer) Destroy() {}
