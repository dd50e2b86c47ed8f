package net

import (
	"context"
	"errors"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// HubPath is where the host serves peer connections.
const HubPath = "/ws"

const (
	writeWait  = 10 * time.Second
	sendBuffer = 256
	maxMessage = 64 << 20
)

type peer struct {
	conn *websocket.Conn
	send chan Message
}

// Hub is run by the host. It relays every message a peer sends to all
// other peers and reports it to OnMessage.
type Hub struct {
	upgrader websocket.Upgrader
	peers    map[*peer]struct{}
	mu       sync.RWMutex

	// OnMessage is called from the connection goroutine of the sender.
	OnMessage func(msg Message)
	// OnJoin and OnLeave receive the remote address of a peer.
	OnJoin  func(addr string)
	OnLeave func(addr string)
}

func NewHub() *Hub {
	return &Hub{
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4096,
			WriteBufferSize: 4096,
			// Peers are desktop processes on the LAN, not browsers.
			CheckOrigin: func(*http.Request) bool { return true },
		},
		peers: make(map[*peer]struct{}),
	}
}

func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[HOST] upgrade from %s failed: %v", r.RemoteAddr, err)
		return
	}
	conn.SetReadLimit(maxMessage)
	p := &peer{conn: conn, send: make(chan Message, sendBuffer)}
	h.add(p)
	go h.writeLoop(p)
	h.readLoop(p)
}

// Broadcast sends msg to every connected peer.
func (h *Hub) Broadcast(msg Message) {
	h.relay(msg, nil)
}

// Len returns the number of connected peers.
func (h *Hub) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.peers)
}

// Close drops every peer.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for p := range h.peers {
		p.conn.Close()
	}
}

func (h *Hub) add(p *peer) {
	h.mu.Lock()
	h.peers[p] = struct{}{}
	h.mu.Unlock()
	addr := p.conn.RemoteAddr().String()
	log.Printf("[HOST] peer connected from %s", addr)
	if h.OnJoin != nil {
		h.OnJoin(addr)
	}
}

func (h *Hub) remove(p *peer) {
	h.mu.Lock()
	if _, ok := h.peers[p]; !ok {
		h.mu.Unlock()
		return
	}
	delete(h.peers, p)
	close(p.send)
	h.mu.Unlock()
	addr := p.conn.RemoteAddr().String()
	log.Printf("[HOST] peer %s disconnected", addr)
	if h.OnLeave != nil {
		h.OnLeave(addr)
	}
}

func (h *Hub) relay(msg Message, from *peer) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for p := range h.peers {
		if p == from {
			continue
		}
		select {
		case p.send <- msg:
		default:
			log.Printf("[HOST] send buffer full for %s, dropping %s", p.conn.RemoteAddr(), msg.Type)
		}
	}
}

func (h *Hub) readLoop(p *peer) {
	defer func() {
		h.remove(p)
		p.conn.Close()
	}()
	for {
		var msg Message
		if err := p.conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("[HOST] read from %s: %v", p.conn.RemoteAddr(), err)
			}
			return
		}
		if !msg.Valid() {
			log.Printf("[HOST] ignoring malformed %q message from %s", msg.Type, p.conn.RemoteAddr())
			continue
		}
		if h.OnMessage != nil {
			h.OnMessage(msg)
		}
		h.relay(msg, p)
	}
}

func (h *Hub) writeLoop(p *peer) {
	for msg := range p.send {
		p.conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := p.conn.WriteJSON(msg); err != nil {
			log.Printf("[HOST] write to %s: %v", p.conn.RemoteAddr(), err)
			p.conn.Close()
			return
		}
	}
	p.conn.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
		time.Now().Add(writeWait))
}

// ListenAndServe serves the hub on addr until ctx is cancelled.
func ListenAndServe(ctx context.Context, addr string, h *Hub) error {
	mux := http.NewServeMux()
	mux.Handle(HubPath, h)
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 10 * time.Second}

	errc := make(chan error, 1)
	go func() { errc <- srv.ListenAndServe() }()
	log.Printf("[HOST] hub listening on %s%s", addr, HubPath)

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		h.Close()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
