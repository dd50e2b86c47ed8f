package net

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// Client is a peer's connection to the host hub.
type Client struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

// Dial connects to the hub at url (ws://host:port/ws).
func Dial(ctx context.Context, url string) (*Client, error) {
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, url, nil)
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", url, err)
	}
	conn.SetReadLimit(maxMessage)
	return &Client{conn: conn}, nil
}

func (c *Client) LocalAddr() string { return c.conn.LocalAddr().String() }

// Send is safe to call from several goroutines.
func (c *Client) Send(msg Message) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.conn.SetWriteDeadline(time.Now().Add(writeWait))
	if err := c.conn.WriteJSON(msg); err != nil {
		return fmt.Errorf("send %s: %w", msg.Type, err)
	}
	return nil
}

// Receive calls fn for every valid message until the connection fails,
// and returns that error.
func (c *Client) Receive(fn func(Message)) error {
	for {
		var msg Message
		if err := c.conn.ReadJSON(&msg); err != nil {
			return err
		}
		if msg.Valid() {
			fn(msg)
		}
	}
}

func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.conn.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
		time.Now().Add(time.Second))
	return c.conn.Close()
}
