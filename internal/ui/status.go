package ui

import (
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"
)

// StatusBar shows connection and file notices.
type StatusBar struct {
	label *widget.Label
}

func NewStatusBar() *StatusBar {
	return &StatusBar{label: widget.NewLabel("Ready")}
}

// SetStatus may be called from any goroutine.
func (s *StatusBar) SetStatus(text string) {
	log.Printf("[UI] %s", text)
	fyne.Do(func() {
		s.label.SetText(text)
	})
}

func (s *StatusBar) Text() string { return s.label.Text }

func (s *StatusBar) Container() fyne.CanvasObject { return s.label }
