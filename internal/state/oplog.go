package state

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

// StrokeOp is a stroke stamped for delivery to peers.
type StrokeOp struct {
	ID        string    `json:"id"`
	Site      string    `json:"site"`
	Lamport   uint64    `json:"lamport"`
	Stroke    Stroke    `json:"stroke"`
	CreatedAt time.Time `json:"created_at"`
}

// OpLog stamps local strokes and filters remote ones so each is applied
// once. It may be used from the network goroutines.
type OpLog struct {
	site  string
	clock Clock
	seen  map[string]struct{}
	mu    sync.Mutex
}

func NewOpLog() *OpLog {
	return &OpLog{
		site: uuid.NewString(),
		seen: make(map[string]struct{}),
	}
}

func (l *OpLog) Site() string { return l.site }

// Local stamps a stroke drawn on this site.
func (l *OpLog) Local(s Stroke) StrokeOp {
	ts := l.clock.Tick()
	op := StrokeOp{
		ID:        fmt.Sprintf("stroke-%s-%d", l.site, ts),
		Site:      l.site,
		Lamport:   ts,
		Stroke:    s,
		CreatedAt: time.Now(),
	}
	l.mu.Lock()
	l.seen[op.ID] = struct{}{}
	l.mu.Unlock()
	return op
}

// Remote reports whether op is new and should be rendered. Echoes of our
// own strokes and duplicates are dropped.
func (l *OpLog) Remote(op StrokeOp) bool {
	if op.ID == "" || op.Site == l.site {
		return false
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, ok := l.seen[op.ID]; ok {
		return false
	}
	l.seen[op.ID] = struct{}{}
	l.clock.Update(op.Lamport)
	return true
}

// Len returns the number of operations seen so far.
func (l *OpLog) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.seen)
}

func (l *OpLog) Clock() uint64 { return l.clock.Now() }
