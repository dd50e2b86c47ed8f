// Package surface is the raster buffer the user paints onto.
//
// A Surface is not safe for concurrent use. The UI mutates it from the
// Fyne event goroutine only.
package surface

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"log"
	"math"

	"github.com/disintegration/imaging"
	"github.com/gogpu/gg"

	"LocalPaint/internal/state"
)

var _ state.Canvas = (*Surface)(nil)

type Surface struct {
	dc         *gg.Context
	background color.NRGBA
}

// New returns a surface of w by h pixels cleared to the background.
func New(w, h int) *Surface {
	w, h = clampSize(w, h)
	s := &Surface{
		dc:         gg.NewContext(w, h),
		background: state.Background,
	}
	s.clear()
	return s
}

func (s *Surface) Size() (int, int) { return s.dc.Width(), s.dc.Height() }

// Origin is always the top-left corner; callers pass surface-local pixels.
func (s *Surface) Origin() state.Point { return state.Point{} }

// StrokeSegment draws one line. Coordinates outside the surface are simply
// not visible.
func (s *Surface) StrokeSegment(seg state.Segment) {
	if seg.Width <= 0 {
		return
	}
	s.dc.SetColor(seg.Color)
	s.dc.SetLineWidth(seg.Width)
	s.dc.SetLineCap(lineCap(seg.Cap))
	s.dc.SetLineJoin(gg.LineJoinRound)
	s.dc.MoveTo(seg.From.X, seg.From.Y)
	s.dc.LineTo(seg.To.X, seg.To.Y)
	if err := s.dc.Stroke(); err != nil {
		log.Printf("[SURFACE] stroke failed: %v", err)
	}
}

// Resize sets new pixel dimensions and always clears the contents, even if
// the size is unchanged.
func (s *Surface) Resize(w, h int) {
	w, h = clampSize(w, h)
	if err := s.dc.Resize(w, h); err != nil {
		log.Printf("[SURFACE] resize to %dx%d failed: %v", w, h, err)
		return
	}
	s.clear()
}

// Clear fills the surface with the background color.
func (s *Surface) Clear() { s.clear() }

// Replace swaps the contents for img scaled to the current dimensions.
func (s *Surface) Replace(img image.Image) {
	w, h := s.Size()
	scaled := imaging.Resize(img, w, h, imaging.Lanczos)
	base := imaging.New(w, h, s.background)
	base = imaging.Overlay(base, scaled, image.Pt(0, 0), 1.0)

	old := s.dc
	s.dc = gg.NewContextForImage(base)
	if err := old.Close(); err != nil {
		log.Printf("[SURFACE] release previous context: %v", err)
	}
}

// Import decodes an image and replaces the contents with it. On error the
// surface is left untouched.
func (s *Surface) Import(r io.Reader) error {
	img, err := Decode(r)
	if err != nil {
		return err
	}
	s.Replace(img)
	return nil
}

// Image returns a snapshot of the current contents.
func (s *Surface) Image() image.Image {
	return s.dc.Image()
}

func (s *Surface) EncodePNG(w io.Writer) error {
	if err := s.dc.EncodePNG(w); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

func (s *Surface) clear() {
	s.dc.ClearWithColor(gg.FromColor(s.background))
	s.dc.ClearPath()
}

// PixelSize converts a layout box into surface pixels by dividing by the
// device pixel ratio and flooring.
func PixelSize(layoutW, layoutH, ratio float32) (int, int) {
	if ratio <= 0 {
		ratio = 1
	}
	w := int(math.Floor(float64(layoutW / ratio)))
	h := int(math.Floor(float64(layoutH / ratio)))
	return clampSize(w, h)
}

func clampSize(w, h int) (int, int) {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return w, h
}

func lineCap(c state.Cap) gg.LineCap {
	if c == state.CapRound {
		return gg.LineCapRound
	}
	return gg.LineCapButt
}
