package ws

import (
	"log/slog"
	"time"

	"github.com/gorilla/websocket"
	"golang.org/x/time/rate"

	"github.com/wordparty/wordparty/internal/model"
)

const (
	// Time allowed to write a message to the peer
	writeWait = 10 * time.Second
	// Time allowed to read the next pong message from the peer
	pongWait = 60 * time.Second
	// Send pings to peer with this period; must be less than pongWait
	pingPeriod = (pongWait * 9) / 10
	// Maximum inbound message size in bytes
	maxMessageSize = 4096
	// Per-client outbound buffer
	sendBufferSize = 256

	// Inbound events per second per connection, with a small burst
	eventRateLimit = 20
	eventRateBurst = 40
)

// Client is one live websocket connection. The read pump feeds events
// to the router; the write pump drains the send buffer.
type Client struct {
	id     model.PlayerID
	conn   *websocket.Conn
	router *Router
	send   chan []byte

	limiter *rate.Limiter
	logger  *slog.Logger

	connectedAt time.Time
}

// NewClient wraps an upgraded connection. The connection id doubles as
// the player id for the lifetime of the connection.
func NewClient(id model.PlayerID, conn *websocket.Conn, router *Router, logger *slog.Logger) *Client {
	return &Client{
		id:          id,
		conn:        conn,
		router:      router,
		send:        make(chan []byte, sendBufferSize),
		limiter:     rate.NewLimiter(rate.Limit(eventRateLimit), eventRateBurst),
		logger:      logger.With(slog.String("conn_id", string(id))),
		connectedAt: time.Now(),
	}
}

// ReadPump pumps inbound messages into the router until the connection
// drops. Runs as its own goroutine; the router does all the work.
func (c *Client) ReadPump() {
	defer func() {
		c.router.Disconnect(c.id)
		c.conn.Close()
		c.logger.Info("connection closed",
			slog.Duration("connection_duration", time.Since(c.connectedAt)))
	}()

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, raw, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				c.logger.Warn("websocket read error", slog.String("error", err.Error()))
			}
			return
		}
		if !c.limiter.Allow() {
			c.logger.Warn("event rate limit exceeded, dropping message")
			continue
		}
		c.router.HandleMessage(c.id, raw)
	}
}

// WritePump drains the send buffer to the connection and keeps the
// peer alive with pings.
func (c *Client) WritePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
