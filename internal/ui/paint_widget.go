package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"LocalPaint/internal/state"
	"LocalPaint/internal/surface"
)

// PaintWidget shows the surface and feeds pointer events to the engine.
type PaintWidget struct {
	widget.BaseWidget
	surface *surface.Surface
	engine  *state.Engine
	cursors *cursorCache

	// viewport is the last layout size a resize was applied for.
	viewport fyne.Size
	// ratio overrides the device pixel ratio when non-zero.
	ratio float32
}

var _ fyne.Widget = (*PaintWidget)(nil)
var _ desktop.Hoverable = (*PaintWidget)(nil)
var _ desktop.Mouseable = (*PaintWidget)(nil)
var _ desktop.Cursorable = (*PaintWidget)(nil)

func NewPaintWidget(s *surface.Surface, e *state.Engine) *PaintWidget {
	p := &PaintWidget{surface: s, engine: e, cursors: newCursorCache()}
	p.ExtendBaseWidget(p)
	return p
}

// SetPixelRatio fixes the ratio used to size the surface. Zero restores the
// canvas scale.
func (p *PaintWidget) SetPixelRatio(r float32) { p.ratio = r }

func (p *PaintWidget) pixelRatio() float32 {
	if p.ratio > 0 {
		return p.ratio
	}
	if app := fyne.CurrentApp(); app != nil {
		if c := app.Driver().CanvasForObject(p); c != nil {
			return c.Scale()
		}
	}
	return 1
}

// viewportChanged resizes the surface for a new layout box. Tool and brush
// state are not touched.
func (p *PaintWidget) viewportChanged(size fyne.Size) {
	if size == p.viewport || size.Width <= 0 || size.Height <= 0 {
		return
	}
	p.viewport = size
	p.surface.Resize(surface.PixelSize(size.Width, size.Height, p.pixelRatio()))
}

// pointer maps a widget-local position onto surface pixels.
func (p *PaintWidget) pointer(ev *desktop.MouseEvent) state.PointerEvent {
	w, h := p.surface.Size()
	size := p.Size()
	sx, sy := float32(1), float32(1)
	if size.Width > 0 && size.Height > 0 {
		sx, sy = float32(w)/size.Width, float32(h)/size.Height
	}
	return state.PointerEvent{
		X:       float64(ev.Position.X * sx),
		Y:       float64(ev.Position.Y * sy),
		Buttons: buttons(ev.Button),
	}
}

func buttons(b desktop.MouseButton) state.ButtonMask {
	var m state.ButtonMask
	if b&desktop.MouseButtonPrimary != 0 {
		m |= state.ButtonPrimary
	}
	if b&desktop.MouseButtonSecondary != 0 {
		m |= state.ButtonSecondary
	}
	if b&desktop.MouseButtonTertiary != 0 {
		m |= state.ButtonTertiary
	}
	return m
}

func (p *PaintWidget) MouseIn(ev *desktop.MouseEvent) {
	p.engine.SetPosition(p.pointer(ev))
}

func (p *PaintWidget) MouseMoved(ev *desktop.MouseEvent) {
	pe := p.pointer(ev)
	if !p.engine.CanDraw() || pe.Buttons != state.ButtonPrimary {
		return
	}
	p.engine.Draw(pe)
	p.Refresh()
}

func (p *PaintWidget) MouseOut() {}

func (p *PaintWidget) MouseDown(ev *desktop.MouseEvent) {
	p.engine.SetPosition(p.pointer(ev))
}

func (p *PaintWidget) MouseUp(*desktop.MouseEvent) {}

func (p *PaintWidget) Cursor() desktop.Cursor {
	return p.cursors.get(p.engine.Tool(), p.engine.Brush())
}

func (p *PaintWidget) CreateRenderer() fyne.WidgetRenderer {
	r := &paintRenderer{paint: p}
	r.background = canvas.NewRectangle(color.White)
	r.image = canvas.NewImageFromImage(p.surface.Image())
	r.image.FillMode = canvas.ImageFillStretch
	r.image.ScaleMode = canvas.ImageScalePixels
	return r
}

type paintRenderer struct {
	paint      *PaintWidget
	background *canvas.Rectangle
	image      *canvas.Image
}

func (r *paintRenderer) Layout(size fyne.Size) {
	r.paint.viewportChanged(size)
	r.background.Resize(size)
	r.image.Resize(size)
	r.refreshImage()
}

func (r *paintRenderer) MinSize() fyne.Size { return fyne.NewSize(300, 300) }

func (r *paintRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.background, r.image}
}

func (r *paintRenderer) Refresh() {
	r.refreshImage()
}

func (r *paintRenderer) refreshImage() {
	r.image.Image = r.paint.surface.Image()
	r.image.Refresh()
}

func (r *paintRenderer) Destroy() {}
