package state

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Point is a surface-local position. The engine keeps it relative to the
// surface center so a resize does not invalidate it.
type Point struct{ X, Y float64 }

// ButtonMask mirrors the pressed-buttons field of a pointer event.
type ButtonMask int

const (
	ButtonPrimary   ButtonMask = 1 << iota // left
	ButtonSecondary                        // right
	ButtonTertiary                         // middle
)

// PointerEvent is one pointer sample in client coordinates.
type PointerEvent struct {
	X, Y    float64
	Buttons ButtonMask
}

type Tool int

const (
	ToolNone Tool = iota
	ToolBrush
	ToolEraser
)

func (t Tool) String() string {
	switch t {
	case ToolBrush:
		return "brush"
	case ToolEraser:
		return "eraser"
	default:
		return "none"
	}
}

// Cap is the shape of segment endpoints.
type Cap int

const (
	CapButt Cap = iota
	CapRound
)

const (
	DefaultBrushSize = 10
	// EraserOffset is added to the brush size when erasing.
	EraserOffset = 10
)

var (
	DefaultBrushColor = color.NRGBA{R: 0xc0, G: 0x39, B: 0x2b, A: 0xff}
	Background        = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)

// BrushParameters holds the color and size used for the next segment.
// Size is always >= 1.
type BrushParameters struct {
	Color color.NRGBA
	Size  int
}

func DefaultBrush() BrushParameters {
	return BrushParameters{Color: DefaultBrushColor, Size: DefaultBrushSize}
}

// Segment is a single line draw command in absolute surface pixels.
type Segment struct {
	From, To Point
	Width    float64
	Cap      Cap
	Color    color.NRGBA
}

// Stroke is a segment expressed relative to the surface center. It is what
// gets shared with peers, each of which re-anchors it on its own surface.
type Stroke struct {
	From  Point       `json:"from"`
	To    Point       `json:"to"`
	Width float64     `json:"width"`
	Color color.NRGBA `json:"color"`
}

// Canvas is the drawing surface the engine renders onto.
type Canvas interface {
	Size() (w, h int)
	// Origin is the surface's top-left corner in client coordinates.
	Origin() Point
	StrokeSegment(seg Segment)
}

// ParseHexColor parses "#rrggbb" or "#rgb" into an opaque color.
func ParseHexColor(s string) (color.NRGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return color.NRGBA{}, fmt.Errorf("invalid color %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return color.NRGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}

// HexColor formats c as "#rrggbb", ignoring alpha.
func HexColor(c color.NRGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
