package httpapi

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"video_tagger/internal/domain"
)

var ErrClosed = errors.New("websocket client closed")

// WSClient sends messages over one websocket connection. Replies are matched
// to requests by envelope id, so Send may be called concurrently.
type WSClient struct {
	conn   *websocket.Conn
	logger *slog.Logger

	writeMu sync.Mutex

	mu      sync.Mutex
	pending map[string]chan domain.Reply
	closed  bool
}

// DialWS connects to the /ws endpoint, e.g. ws://localhost:8090/ws.
func DialWS(ctx context.Context, url string, logger *slog.Logger) (*WSClient, error) {
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, url, nil)
	if err != nil {
		return nil, fmt.Errorf("dial websocket: %w", err)
	}

	c := &WSClient{
		conn:    conn,
		logger:  logger.With("component", "ws_client"),
		pending: make(map[string]chan domain.Reply),
	}
	go c.readReplies()

	return c, nil
}

func (c *WSClient) Send(ctx context.Context, msg domain.Message) (domain.Reply, error) {
	id := uuid.NewString()
	wait := make(chan domain.Reply, 1)

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return domain.Reply{}, ErrClosed
	}
	c.pending[id] = wait
	c.mu.Unlock()

	c.writeMu.Lock()
	err := c.conn.WriteJSON(Envelope{ID: id, Message: &msg})
	c.writeMu.Unlock()
	if err != nil {
		c.forget(id)
		return domain.Reply{}, fmt.Errorf("write message: %w", err)
	}

	select {
	case <-ctx.Done():
		c.forget(id)
		return domain.Reply{}, ctx.Err()
	case reply, ok := <-wait:
		if !ok {
			return domain.Reply{}, ErrClosed
		}
		return reply, nil
	}
}

func (c *WSClient) forget(id string) {
	c.mu.Lock()
	delete(c.pending, id)
	c.mu.Unlock()
}

func (c *WSClient) readReplies() {
	for {
		var env Envelope
		if err := c.conn.ReadJSON(&env); err != nil {
			c.logger.Debug("websocket read stopped", "error", err)
			break
		}

		if env.Reply == nil {
			c.logger.Warn("websocket frame without reply", "id", env.ID)
			continue
		}

		c.mu.Lock()
		wait, ok := c.pending[env.ID]
		delete(c.pending, env.ID)
		c.mu.Unlock()

		if !ok {
			c.logger.Debug("reply for abandoned request", "id", env.ID)
			continue
		}
		wait <- *env.Reply
	}

	c.mu.Lock()
	c.closed = true
	for id, wait := range c.pending {
		close(wait)
		delete(c.pending, id)
	}
	c.mu.Unlock()
}

func (c *WSClient) Close() error {
	c.writeMu.Lock()
	_ = c.conn.WriteMessage(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
	c.writeMu.Unlock()
	return c.conn.Close()
}
