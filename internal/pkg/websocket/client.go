package websocket

import (
	"encoding/json"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
)

const (
	// Time allowed to write a message to the peer
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait
	pingPeriod = (pongWait * 9) / 10

	// Maximum message size allowed from peer
	maxMessageSize = 4 * 1024

	// DefaultSendBuffer is the outbound queue length per client
	DefaultSendBuffer = 16
)

// Client is a middleman between the websocket connection and the registry
type Client struct {
	registry *Registry

	// The WebSocket connection
	conn *websocket.Conn

	// Buffered channel of outbound messages
	send chan []byte

	// Closed once the connection is done
	done      chan struct{}
	closed    atomic.Bool
	closeOnce sync.Once

	// User ID of the client
	userID int64

	// Logger instance
	logger zerolog.Logger
}

func newClient(registry *Registry, conn *websocket.Conn, userID int64, buffer int, logger zerolog.Logger) *Client {
	if buffer <= 0 {
		buffer = DefaultSendBuffer
	}
	return &Client{
		registry: registry,
		conn:     conn,
		send:     make(chan []byte, buffer),
		done:     make(chan struct{}),
		userID:   userID,
		logger:   logger,
	}
}

// Send queues msg without blocking.
func (c *Client) Send(msg Message) error {
	if !c.IsOpen() {
		return ErrChannelClosed
	}

	data, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	select {
	case c.send <- data:
		return nil
	case <-c.done:
		return ErrChannelClosed
	default:
		return ErrSendBufferFull
	}
}

// IsOpen reports whether the connection is still being served.
func (c *Client) IsOpen() bool {
	return !c.closed.Load()
}

// UserID returns the user the connection belongs to.
func (c *Client) UserID() int64 {
	return c.userID
}

// close marks the client closed and releases its registry entry if it still owns it.
func (c *Client) close() {
	c.closeOnce.Do(func() {
		c.closed.Store(true)
		close(c.done)
		if c.registry.Release(c.userID, c) {
			c.logger.Info().Int64("userID", c.userID).Msg("Client released")
		}
		c.conn.Close()
	})
}

// readPump keeps the read side alive so pongs and close frames are processed.
// Inbound application frames are ignored.
func (c *Client) readPump() {
	defer c.close()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error { c.conn.SetReadDeadline(time.Now().Add(pongWait)); return nil })

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				c.logger.Info().
					Int64("userID", c.userID).
					Msg("WebSocket closed normally")
			} else if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.logger.Warn().
					Err(err).
					Int64("userID", c.userID).
					Msg("Unexpected WebSocket close")
			} else {
				c.logger.Debug().
					Err(err).
					Int64("userID", c.userID).
					Msg("WebSocket read error")
			}
			return
		}
	}
}

// writePump pumps queued messages to the websocket connection
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.close()
	}()

	for {
		select {
		case message := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				c.logger.Debug().Err(err).Int64("userID", c.userID).Msg("WebSocket write failed")
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-c.done:
			return
		}
	}
}

// newUpgrader builds an upgrader that accepts the configured origins.
func newUpgrader(allowedOrigins []string) websocket.Upgrader {
	allowAll := len(allowedOrigins) == 0
	allowed := make(map[string]struct{}, len(allowedOrigins))
	for _, o := range allowedOrigins {
		if o == "*" {
			allowAll = true
		}
		allowed[o] = struct{}{}
	}

	return websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *http.Request) bool {
			if allowAll {
				return true
			}
			origin := r.Header.Get("Origin")
			if origin == "" {
				return true
			}
			_, ok := allowed[origin]
			return ok
		},
	}
}

var _ Channel = (*Client)(nil)
