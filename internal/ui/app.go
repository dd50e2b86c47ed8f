package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

const AppID = "io.localpaint.app"

// NewWindow creates the application and its main window.
func NewWindow(title string, size fyne.Size) (fyne.App, fyne.Window) {
	a := app.NewWithID(AppID)
	w := a.NewWindow(title)
	w.Resize(size)
	return a, w
}

// Layout arranges the panels around the paint widget.
func Layout(tools *ToolsPanel, options *BrushOptions, files *FilePanel, paint *PaintWidget, status *StatusBar, shareLink string) fyne.CanvasObject {
	top := container.NewHBox(
		tools.Container(),
		widget.NewSeparator(),
		options.Container(),
		layout.NewSpacer(),
		files.Container(),
	)
	bottom := container.NewHBox(status.Container(), layout.NewSpacer())
	if shareLink != "" {
		link := widget.NewEntry()
		link.SetText(shareLink)
		link.Disable()
		bottom.Add(widget.NewLabel("Share:"))
		bottom.Add(container.New(layout.NewGridWrapLayout(fyne.NewSize(260, 36)), link))
	}
	return container.NewBorder(top, bottom, nil, nil, paint)
}
