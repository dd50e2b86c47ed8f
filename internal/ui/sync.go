package ui

import (
	"bytes"
	"log"

	lpnet "LocalPaint/internal/net"
	"LocalPaint/internal/state"
	"LocalPaint/internal/surface"
)

// Session connects the local board to peers.
type Session struct {
	ops     *state.OpLog
	engine  *state.Engine
	surface *surface.Surface
	paint   *PaintWidget

	// Send delivers a message to the peers. It must not block.
	Send func(msg lpnet.Message)
}

func NewSession(ops *state.OpLog, e *state.Engine, s *surface.Surface, paint *PaintWidget) *Session {
	return &Session{ops: ops, engine: e, surface: s, paint: paint}
}

// LocalStroke is installed as the engine's OnStroke hook.
func (s *Session) LocalStroke(st state.Stroke) {
	if s.Send == nil {
		return
	}
	s.Send(lpnet.StrokeMessage(s.ops.Local(st)))
}

// LocalImage is installed as the file panel's OnImport hook.
func (s *Session) LocalImage(png []byte) {
	if s.Send == nil {
		return
	}
	s.Send(lpnet.ImageMessage(png))
}

// Apply renders a peer's message. Call it on the UI goroutine.
func (s *Session) Apply(msg lpnet.Message) {
	switch msg.Type {
	case lpnet.MsgStroke:
		if msg.Op == nil || !s.ops.Remote(*msg.Op) {
			return
		}
		s.engine.ApplyRemote(msg.Op.Stroke)
	case lpnet.MsgImage:
		if err := s.surface.Import(bytes.NewReader(msg.Image)); err != nil {
			log.Printf("[NET] ignoring image from peer: %v", err)
			return
		}
	default:
		return
	}
	if s.paint != nil {
		s.paint.Refresh()
	}
}
