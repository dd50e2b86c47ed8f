package ui

import (
	"image"
	"image/color"

	"fyne.io/fyne/v2/driver/desktop"
	"github.com/gogpu/gg"

	"LocalPaint/internal/state"
)

const maxCursorSize = 96

// circleCursor outlines the area a segment will cover.
type circleCursor struct {
	img    image.Image
	center int
}

func (c *circleCursor) Image() (image.Image, int, int) {
	return c.img, c.center, c.center
}

func newCircleCursor(width int, outline color.Color) *circleCursor {
	d := width + 4
	if d > maxCursorSize {
		d = maxCursorSize
	}
	if d < 8 {
		d = 8
	}
	dc := gg.NewContext(d, d)
	defer dc.Close()

	r := float64(d)/2 - 1.5
	dc.DrawCircle(float64(d)/2, float64(d)/2, r)
	dc.SetColor(outline)
	dc.SetLineWidth(1.5)
	dc.Stroke()

	// A dot marks the hot spot on large cursors.
	dc.DrawCircle(float64(d)/2, float64(d)/2, 1)
	dc.Fill()

	return &circleCursor{img: dc.Image(), center: d / 2}
}

type cursorKey struct {
	tool  state.Tool
	width int
	color color.NRGBA
}

// cursorCache keeps the last cursor so hover events don't redraw it.
type cursorCache struct {
	key    cursorKey
	cursor desktop.Cursor
}

func newCursorCache() *cursorCache {
	return &cursorCache{}
}

func (c *cursorCache) get(tool state.Tool, brush state.BrushParameters) desktop.Cursor {
	key := cursorKey{tool: tool}
	switch tool {
	case state.ToolBrush:
		key.width, key.color = brush.Size, brush.Color
	case state.ToolEraser:
		key.width, key.color = brush.Size+state.EraserOffset, color.NRGBA{A: 0xff}
	default:
		return desktop.DefaultCursor
	}
	if c.cursor == nil || c.key != key {
		c.key = key
		c.cursor = newCircleCursor(key.width, key.color)
	}
	return c.cursor
}
