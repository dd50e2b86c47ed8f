package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"LocalPaint/internal/state"
)

// ToolsPanel holds the tool buttons and the toggle that shows or hides
// them. It reflects the active tool through button importance.
type ToolsPanel struct {
	brush   *widget.Button
	eraser  *widget.Button
	colors  *widget.Button
	toggle  *widget.Button
	menu    *fyne.Container
	options fyne.CanvasObject
	paint   *PaintWidget

	box *fyne.Container
}

var _ state.ToolView = (*ToolsPanel)(nil)

// NewToolsPanel builds the panel. options is the brush options panel; it
// stays hidden until a tool is first selected.
func NewToolsPanel(paint *PaintWidget, options fyne.CanvasObject) *ToolsPanel {
	t := &ToolsPanel{paint: paint, options: options}
	t.brush = widget.NewButtonWithIcon("Brush", theme.DocumentCreateIcon(), nil)
	t.eraser = widget.NewButtonWithIcon("Eraser", theme.ContentClearIcon(), nil)
	t.colors = widget.NewButtonWithIcon("Colors", theme.ColorPaletteIcon(), nil)
	t.menu = container.NewHBox(t.brush, t.eraser, t.colors)
	t.toggle = widget.NewButtonWithIcon("", theme.MenuIcon(), t.ToggleMenu)
	t.box = container.NewHBox(t.toggle, t.menu)
	if options != nil {
		options.Hide()
	}
	return t
}

// Bind connects the buttons to the coordinator.
func (t *ToolsPanel) Bind(c *state.Coordinator, picker state.ColorPicker) {
	t.brush.OnTapped = func() { c.SelectTool(state.ToolBrush) }
	t.eraser.OnTapped = func() { c.SelectTool(state.ToolEraser) }
	t.colors.OnTapped = func() { c.PickColor(picker) }
}

func (t *ToolsPanel) ShowTool(active state.Tool) {
	setActive(t.brush, active == state.ToolBrush)
	setActive(t.eraser, active == state.ToolEraser)
	if t.paint != nil {
		t.paint.Refresh()
	}
}

func (t *ToolsPanel) ShowBrushOptions() {
	if t.options != nil {
		t.options.Show()
	}
}

// ToggleMenu shows or hides the tool buttons.
func (t *ToolsPanel) ToggleMenu() {
	if t.menu.Visible() {
		t.menu.Hide()
	} else {
		t.menu.Show()
	}
}

func (t *ToolsPanel) Container() fyne.CanvasObject { return t.box }

func setActive(b *widget.Button, on bool) {
	want := widget.MediumImportance
	if on {
		want = widget.HighImportance
	}
	if b.Importance != want {
		b.Importance = want
		b.Refresh()
	}
}
