package state

import (
	"image/color"
	"strconv"
	"strings"
)

// ToolView reflects the tool selection on screen.
type ToolView interface {
	ShowTool(active Tool)
	ShowBrushOptions()
}

// SizeView is one on-screen reflection of the brush size.
type SizeView interface {
	ShowSize(size int)
}

// ColorPicker opens a color selection surface. onInput is called for every
// color the user picks while it is open.
type ColorPicker interface {
	PickColor(current color.NRGBA, onInput func(color.NRGBA))
}

// Coordinator owns tool selection and brush size and keeps every view in
// step with the engine, which stays the single source of truth.
type Coordinator struct {
	engine *Engine
	tools  ToolView
	sizes  []SizeView
}

func NewCoordinator(engine *Engine, tools ToolView, sizes ...SizeView) *Coordinator {
	return &Coordinator{engine: engine, tools: tools, sizes: sizes}
}

// AddSizeView registers another size reflection and brings it up to date.
func (c *Coordinator) AddSizeView(v SizeView) {
	c.sizes = append(c.sizes, v)
	v.ShowSize(c.engine.Brush().Size)
}

// SelectTool toggles t. Picking the active tool deactivates it, picking
// another one switches straight to it.
func (c *Coordinator) SelectTool(t Tool) {
	prev := c.engine.Tool()
	c.engine.SetTool(ToolNone)
	if t != ToolNone && t != prev {
		c.engine.SetTool(t)
		if c.tools != nil {
			c.tools.ShowBrushOptions()
		}
	}
	if c.tools != nil {
		c.tools.ShowTool(c.engine.Tool())
	}
}

func (c *Coordinator) PickColor(p ColorPicker) {
	p.PickColor(c.engine.Brush().Color, c.SetColor)
}

// SetColor affects the next segment only.
func (c *Coordinator) SetColor(col color.NRGBA) {
	c.engine.SetColor(col)
}

// ChangeBrushSize adds delta to the size, never going below 1.
func (c *Coordinator) ChangeBrushSize(delta int) {
	size := c.engine.Brush().Size + delta
	if size < 1 {
		size = 1
	}
	c.engine.SetSize(size)
	c.showSize()
}

// UpdateBrushSizeFromText applies raw as the new size. Unparsable or
// non-positive input is ignored and reported as false.
func (c *Coordinator) UpdateBrushSizeFromText(raw string) bool {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n <= 0 {
		return false
	}
	c.engine.SetSize(n)
	c.showSize()
	return true
}

// Sync pushes the current state to every view.
func (c *Coordinator) Sync() {
	c.showSize()
	if c.tools != nil {
		c.tools.ShowTool(c.engine.Tool())
	}
}

func (c *Coordinator) showSize() {
	size := c.engine.Brush().Size
	for _, v := range c.sizes {
		v.ShowSize(size)
	}
}
