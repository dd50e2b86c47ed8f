package state

import "image/color"

// Engine turns pointer samples into line segments on a Canvas. It owns the
// recorded pointer position, the active tool and the brush parameters.
type Engine struct {
	canvas Canvas
	pos    Point
	tool   Tool
	brush  BrushParameters

	// OnStroke, if set, receives every locally drawn stroke.
	OnStroke func(s Stroke)
}

func NewEngine(canvas Canvas) *Engine {
	return &Engine{
		canvas: canvas,
		brush:  DefaultBrush(),
	}
}

func (e *Engine) Tool() Tool             { return e.tool }
func (e *Engine) CanDraw() bool          { return e.tool != ToolNone }
func (e *Engine) Brush() BrushParameters { return e.brush }
func (e *Engine) Position() Point        { return e.pos }

func (e *Engine) SetTool(t Tool) {
	switch t {
	case ToolBrush, ToolEraser:
		e.tool = t
	default:
		e.tool = ToolNone
	}
}

func (e *Engine) SetColor(c color.NRGBA) {
	c.A = 0xff
	e.brush.Color = c
}

// SetSize ignores sizes below 1.
func (e *Engine) SetSize(size int) {
	if size < 1 {
		return
	}
	e.brush.Size = size
}

func (e *Engine) center() Point {
	w, h := e.canvas.Size()
	return Point{X: float64(w) / 2, Y: float64(h) / 2}
}

// SetPosition records the pointer location relative to the surface center.
func (e *Engine) SetPosition(ev PointerEvent) {
	o := e.canvas.Origin()
	c := e.center()
	e.pos = Point{X: ev.X - o.X - c.X, Y: ev.Y - o.Y - c.Y}
}

// Draw renders one segment from the recorded position to the event's
// position. Nothing happens unless a tool is active and exactly the primary
// button is held during the move.
func (e *Engine) Draw(ev PointerEvent) {
	if !e.CanDraw() || ev.Buttons != ButtonPrimary {
		return
	}
	from := e.pos
	e.SetPosition(ev)
	s := e.style(from, e.pos)
	e.render(s)
	if e.OnStroke != nil {
		e.OnStroke(s)
	}
}

// ApplyRemote renders a peer's stroke anchored on the current center. The
// recorded position and the tool state are left untouched.
func (e *Engine) ApplyRemote(s Stroke) {
	if s.Width <= 0 {
		return
	}
	e.render(s)
}

func (e *Engine) style(from, to Point) Stroke {
	s := Stroke{From: from, To: to}
	switch e.tool {
	case ToolEraser:
		s.Width = float64(e.brush.Size + EraserOffset)
		s.Color = Background
	default:
		s.Width = float64(e.brush.Size)
		s.Color = e.brush.Color
	}
	return s
}

func (e *Engine) render(s Stroke) {
	c := e.center()
	e.canvas.StrokeSegment(Segment{
		From:  Point{X: s.From.X + c.X, Y: s.From.Y + c.Y},
		To:    Point{X: s.To.X + c.X, Y: s.To.Y + c.Y},
		Width: s.Width,
		Cap:   CapRound,
		Color: s.Color,
	})
}
