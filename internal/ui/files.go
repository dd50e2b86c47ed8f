package ui

import (
	"bytes"
	"fmt"
	"io"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"LocalPaint/internal/export"
	"LocalPaint/internal/surface"
)

// FilePanel offers upload, PNG save and PDF export of the surface.
type FilePanel struct {
	win     fyne.Window
	surface *surface.Surface
	paint   *PaintWidget
	status  *StatusBar

	// OnImport receives the PNG snapshot after a successful upload.
	OnImport func(png []byte)

	box *fyne.Container
}

func NewFilePanel(win fyne.Window, s *surface.Surface, paint *PaintWidget, status *StatusBar) *FilePanel {
	f := &FilePanel{win: win, surface: s, paint: paint, status: status}
	f.box = container.NewHBox(
		widget.NewButtonWithIcon("Upload", theme.FolderOpenIcon(), f.Upload),
		widget.NewButtonWithIcon("Save", theme.DocumentSaveIcon(), f.Save),
		widget.NewButtonWithIcon("PDF", theme.DocumentPrintIcon(), f.ExportPDF),
	)
	return f
}

func (f *FilePanel) Container() fyne.CanvasObject { return f.box }

func (f *FilePanel) Upload() {
	d := dialog.NewFileOpen(func(r fyne.URIReadCloser, err error) {
		if err != nil {
			log.Printf("[UI] open dialog: %v", err)
			return
		}
		if r == nil {
			return
		}
		f.LoadFrom(r)
	}, f.win)
	d.SetFilter(storage.NewExtensionFileFilter([]string{".png", ".jpg", ".jpeg", ".gif", ".bmp", ".webp"}))
	d.Show()
}

// LoadFrom replaces the surface with the decoded image. Undecodable input
// changes nothing on screen; it is only logged.
func (f *FilePanel) LoadFrom(r io.ReadCloser) bool {
	defer func() {
		if err := r.Close(); err != nil {
			log.Printf("[UI] close upload: %v", err)
		}
	}()
	if err := f.surface.Import(r); err != nil {
		log.Printf("[UI] upload ignored: %v", err)
		return false
	}
	f.paint.Refresh()

	if f.OnImport != nil {
		var buf bytes.Buffer
		if err := f.surface.EncodePNG(&buf); err != nil {
			log.Printf("[UI] snapshot for peers: %v", err)
			return true
		}
		f.OnImport(buf.Bytes())
	}
	return true
}

func (f *FilePanel) Save() {
	d := dialog.NewFileSave(func(w fyne.URIWriteCloser, err error) {
		if err != nil {
			log.Printf("[UI] save dialog: %v", err)
			return
		}
		if w == nil {
			return
		}
		f.report(f.SaveTo(w), "Saved "+w.URI().Name())
	}, f.win)
	d.SetFileName(export.DefaultPNGName)
	d.Show()
}

func (f *FilePanel) ExportPDF() {
	d := dialog.NewFileSave(func(w fyne.URIWriteCloser, err error) {
		if err != nil {
			log.Printf("[UI] export dialog: %v", err)
			return
		}
		if w == nil {
			return
		}
		f.report(f.ExportPDFTo(w), "Exported "+w.URI().Name())
	}, f.win)
	d.SetFileName(export.DefaultPDFName)
	d.Show()
}

// SaveTo writes a PNG snapshot and closes w.
func (f *FilePanel) SaveTo(w io.WriteCloser) error {
	return writeAndClose(w, func(w io.Writer) error {
		return export.WritePNG(w, f.surface.Image())
	})
}

// ExportPDFTo writes a PDF snapshot and closes w.
func (f *FilePanel) ExportPDFTo(w io.WriteCloser) error {
	return writeAndClose(w, func(w io.Writer) error {
		return export.WritePDF(w, f.surface.Image())
	})
}

func (f *FilePanel) report(err error, ok string) {
	if f.status == nil {
		return
	}
	if err != nil {
		f.status.SetStatus(fmt.Sprintf("Error: %v", err))
		return
	}
	f.status.SetStatus(ok)
}

func writeAndClose(w io.WriteCloser, write func(io.Writer) error) error {
	err := write(w)
	if cerr := w.Close(); err == nil && cerr != nil {
		err = fmt.Errorf("close: %w", cerr)
	}
	return err
}
