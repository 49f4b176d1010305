package spectate

import (
	"context"
	"fmt"

	"github.com/gorilla/websocket"

	"github.com/vovakirdan/pongspire/internal/core"
)

// Client receives snapshots from a hub.
type Client struct {
	conn *websocket.Conn
}

// Dial connects to a hub endpoint such as ws://localhost:8080/ws.
func Dial(ctx context.Context, url string) (*Client, error) {
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, url, nil)
	if err != nil {
		return nil, fmt.Errorf("spectate: cannot connect to %s: %w", url, err)
	}
	return &Client{conn: conn}, nil
}

// Next blocks until the next snapshot arrives.
func (c *Client) Next() (core.Snapshot, error) {
	var snap core.Snapshot
	if err := c.conn.ReadJSON(&snap); err != nil {
		return core.Snapshot{}, fmt.Errorf("spectate: read failed: %w", err)
	}
	return snap, nil
}

// Close sends a close frame and closes the connection.
func (c *Client) Close() error {
	c.conn.WriteMessage(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
	return c.conn.Close()
}
