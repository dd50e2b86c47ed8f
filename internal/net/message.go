package net

import "LocalPaint/internal/state"

type MessageType string

const (
	MsgStroke MessageType = "stroke"
	// MsgImage carries PNG bytes of a picture uploaded by a peer.
	MsgImage MessageType = "image"
)

// Message is the unit exchanged over a hub connection.
type Message struct {
	Type  MessageType     `json:"type"`
	Op    *state.StrokeOp `json:"op,omitempty"`
	Image []byte          `json:"image,omitempty"`
}

func StrokeMessage(op state.StrokeOp) Message {
	return Message{Type: MsgStroke, Op: &op}
}

func ImageMessage(png []byte) Message {
	return Message{Type: MsgImage, Image: png}
}

// Valid reports whether m carries the payload its type needs.
func (m Message) Valid() bool {
	switch m.Type {
	case MsgStroke:
		return m.Op != nil
	case MsgImage:
		return len(m.Image) > 0
	}
	return false
}
