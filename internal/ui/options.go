package ui

import (
	"fmt"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"LocalPaint/internal/state"
)

// BrushOptions is the brush-size panel: -/+ buttons, a label and an entry.
type BrushOptions struct {
	label *sizeLabel
	entry *sizeEntry
	minus *widget.Button
	plus  *widget.Button
	box   *fyne.Container
}

func NewBrushOptions() *BrushOptions {
	o := &BrushOptions{
		label: &sizeLabel{widget.NewLabel("")},
		entry: &sizeEntry{widget.NewEntry()},
	}
	o.entry.SetPlaceHolder("size")
	o.minus = widget.NewButtonWithIcon("", theme.ContentRemoveIcon(), nil)
	o.plus = widget.NewButtonWithIcon("", theme.ContentAddIcon(), nil)
	entryBox := container.New(layout.NewGridWrapLayout(fyne.NewSize(70, 36)), o.entry)
	o.box = container.NewHBox(o.label, o.minus, o.plus, entryBox)
	return o
}

// SizeViews returns the label and the entry, both of which show the size.
func (o *BrushOptions) SizeViews() []state.SizeView {
	return []state.SizeView{o.label, o.entry}
}

func (o *BrushOptions) Bind(c *state.Coordinator) {
	o.minus.OnTapped = func() { c.ChangeBrushSize(-1) }
	o.plus.OnTapped = func() { c.ChangeBrushSize(1) }
	o.entry.OnChanged = func(s string) { c.UpdateBrushSizeFromText(s) }
}

func (o *BrushOptions) Container() fyne.CanvasObject { return o.box }

type sizeLabel struct{ *widget.Label }

func (l *sizeLabel) ShowSize(size int) {
	l.SetText(fmt.Sprintf("Brush size: %d", size))
}

type sizeEntry struct{ *widget.Entry }

// ShowSize leaves the text alone when it already reads as size, so typing
// does not loop through OnChanged.
func (e *sizeEntry) ShowSize(size int) {
	text := strconv.Itoa(size)
	if e.Text != text {
		e.SetText(text)
	}
}
