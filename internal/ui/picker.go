package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"

	"LocalPaint/internal/state"
)

// dialogPicker opens Fyne's advanced color picker over a window.
type dialogPicker struct {
	win fyne.Window
}

var _ state.ColorPicker = dialogPicker{}

func NewColorPicker(win fyne.Window) state.ColorPicker {
	return dialogPicker{win: win}
}

func (p dialogPicker) PickColor(current color.NRGBA, onInput func(color.NRGBA)) {
	d := dialog.NewColorPicker("Brush color", "Pick a color for the brush", func(c color.Color) {
		onInput(toNRGBA(c))
	}, p.win)
	d.Advanced = true
	d.SetColor(current)
	d.Show()
}

func toNRGBA(c color.Color) color.NRGBA {
	return color.NRGBAModel.Convert(c).(color.NRGBA)
}
