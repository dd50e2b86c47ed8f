package ui

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"io"
	"strings"
	"testing"

	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"

	"LocalPaint/internal/state"
	"LocalPaint/internal/surface"
)

type board struct {
	engine  *state.Engine
	surface *surface.Surface
	paint   *PaintWidget
	tools   *ToolsPanel
	options *BrushOptions
	coord   *state.Coordinator
}

func newTestBoard(t *testing.T) *board {
	t.Helper()
	a := test.NewApp()
	t.Cleanup(a.Quit)

	b := &board{surface: surface.New(60, 40)}
	b.engine = state.NewEngine(b.surface)
	b.paint = NewPaintWidget(b.surface, b.engine)
	b.options = NewBrushOptions()
	b.tools = NewToolsPanel(b.paint, b.options.Container())
	b.coord = state.NewCoordinator(b.engine, b.tools, b.options.SizeViews()...)
	b.tools.Bind(b.coord, nil)
	b.options.Bind(b.coord)
	b.coord.Sync()
	return b
}

func TestToolsPanel_Toggle(t *testing.T) {
	b := newTestBoard(t)
	if b.options.Container().Visible() {
		t.Fatal("brush options visible before any tool was picked")
	}

	test.Tap(b.tools.brush)
	if b.engine.Tool() != state.ToolBrush {
		t.Fatalf("Tool() = %v, want brush", b.engine.Tool())
	}
	if b.tools.brush.Importance != widget.HighImportance || b.tools.eraser.Importance == widget.HighImportance {
		t.Error("brush button not shown as the only active tool")
	}
	if !b.options.Container().Visible() {
		t.Error("brush options still hidden")
	}

	test.Tap(b.tools.eraser)
	if b.engine.Tool() != state.ToolEraser {
		t.Fatalf("Tool() = %v, want eraser", b.engine.Tool())
	}
	if b.tools.brush.Importance == widget.HighImportance || b.tools.eraser.Importance != widget.HighImportance {
		t.Error("eraser button not shown as the only active tool")
	}

	test.Tap(b.tools.eraser)
	if b.engine.CanDraw() {
		t.Error("CanDraw() after deselecting the eraser")
	}
	if b.tools.eraser.Importance == widget.HighImportance {
		t.Error("eraser still highlighted")
	}
}

func TestToolsPanel_ToggleMenu(t *testing.T) {
	b := newTestBoard(t)
	test.Tap(b.tools.toggle)
	if b.tools.menu.Visible() {
		t.Error("menu visible after first toggle")
	}
	test.Tap(b.tools.toggle)
	if !b.tools.menu.Visible() {
		t.Error("menu hidden after second toggle")
	}
}

type fixedPicker color.NRGBA

func (p fixedPicker) PickColor(_ color.NRGBA, onInput func(color.NRGBA)) {
	onInput(color.NRGBA(p))
}

func TestToolsPanel_Colors(t *testing.T) {
	b := newTestBoard(t)
	green := color.NRGBA{G: 0xff, A: 0xff}
	b.tools.Bind(b.coord, fixedPicker(green))

	test.Tap(b.tools.colors)
	if got := b.engine.Brush().Color; got != green {
		t.Errorf("Color = %v, want %v", got, green)
	}
}

func TestBrushOptions_Buttons(t *testing.T) {
	b := newTestBoard(t)
	if got := b.options.label.Text; got != "Brush size: 10" {
		t.Fatalf("label = %q", got)
	}

	test.Tap(b.options.plus)
	test.Tap(b.options.plus)
	if got := b.options.label.Text; got != "Brush size: 12" {
		t.Errorf("label = %q, want Brush size: 12", got)
	}
	if got := b.options.entry.Text; got != "12" {
		t.Errorf("entry = %q, want 12", got)
	}

	for i := 0; i < 20; i++ {
		test.Tap(b.options.minus)
	}
	if got := b.engine.Brush().Size; got != 1 {
		t.Errorf("Size = %d, want 1", got)
	}
	if got := b.options.entry.Text; got != "1" {
		t.Errorf("entry = %q, want 1", got)
	}
}

func TestBrushOptions_Entry(t *testing.T) {
	b := newTestBoard(t)

	b.options.entry.OnChanged("25")
	if got := b.engine.Brush().Size; got != 25 {
		t.Fatalf("Size = %d, want 25", got)
	}
	if got := b.options.label.Text; got != "Brush size: 25" {
		t.Errorf("label = %q", got)
	}

	for _, bad := range []string{"0", "-5", "abc"} {
		b.options.entry.OnChanged(bad)
		if got := b.engine.Brush().Size; got != 25 {
			t.Errorf("input %q changed size to %d", bad, got)
		}
	}
	if got := b.options.label.Text; got != "Brush size: 25" {
		t.Errorf("label = %q after invalid input", got)
	}
}

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }

func TestFilePanel_SaveAndLoad(t *testing.T) {
	b := newTestBoard(t)
	f := NewFilePanel(nil, b.surface, b.paint, nil)
	b.surface.StrokeSegment(state.Segment{From: state.Point{X: 5, Y: 20}, To: state.Point{X: 55, Y: 20}, Width: 8, Cap: state.CapRound, Color: state.DefaultBrushColor})

	var buf bytes.Buffer
	if err := f.SaveTo(nopWriteCloser{&buf}); err != nil {
		t.Fatal(err)
	}
	saved := buf.Bytes()
	if _, err := png.Decode(bytes.NewReader(saved)); err != nil {
		t.Fatalf("saved file is not a PNG: %v", err)
	}

	b.surface.Clear()
	var shared []byte
	f.OnImport = func(p []byte) { shared = p }
	if !f.LoadFrom(io.NopCloser(bytes.NewReader(saved))) {
		t.Fatal("LoadFrom rejected our own export")
	}
	if c := b.surface.Image().At(30, 20); !near(c, state.DefaultBrushColor) {
		t.Errorf("reloaded pixel = %v, want %v", c, state.DefaultBrushColor)
	}
	if len(shared) == 0 {
		t.Error("OnImport not called")
	}
}

func TestFilePanel_LoadInvalid(t *testing.T) {
	b := newTestBoard(t)
	f := NewFilePanel(nil, b.surface, b.paint, nil)
	called := false
	f.OnImport = func([]byte) { called = true }

	b.surface.StrokeSegment(state.Segment{From: state.Point{X: 30, Y: 20}, To: state.Point{X: 31, Y: 20}, Width: 6, Cap: state.CapRound, Color: color.NRGBA{A: 0xff}})
	before := b.surface.Image()

	if f.LoadFrom(io.NopCloser(strings.NewReader("garbage"))) {
		t.Error("LoadFrom accepted garbage")
	}
	if called {
		t.Error("OnImport called for a failed upload")
	}
	after := b.surface.Image()
	if !sameImage(before, after) {
		t.Error("failed upload changed the surface")
	}
}

func TestFilePanel_ExportPDF(t *testing.T) {
	b := newTestBoard(t)
	f := NewFilePanel(nil, b.surface, b.paint, nil)
	var buf bytes.Buffer
	if err := f.ExportPDFTo(nopWriteCloser{&buf}); err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")) {
		t.Error("not a PDF")
	}
}

func sameImage(a, b image.Image) bool {
	if a.Bounds() != b.Bounds() {
		return false
	}
	r := a.Bounds()
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			if a.At(x, y) != b.At(x, y) {
				return false
			}
		}
	}
	return true
}

func TestToNRGBA(t *testing.T) {
	if got := toNRGBA(color.RGBA{R: 0x80, A: 0xff}); got != (color.NRGBA{R: 0x80, A: 0xff}) {
		t.Errorf("toNRGBA = %v", got)
	}
}
