package ws

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
)

// Hub manages WebSocket connections and broadcasts event messages to them.
type Hub struct {
	mu          sync.RWMutex
	connections map[uuid.UUID]*Connection // client_id -> connection
	logger      zerolog.Logger
}

// NewHub creates a new WebSocket hub.
func NewHub(logger zerolog.Logger) *Hub {
	return &Hub{
		connections: make(map[uuid.UUID]*Connection),
		logger:      logger,
	}
}

// RegisterConnection adds a connection for a client.
func (h *Hub) RegisterConnection(clientID uuid.UUID, conn *Connection) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if old, exists := h.connections[clientID]; exists {
		old.Close()
	}

	h.connections[clientID] = conn
	h.logger.Info().Str("client_id", clientID.String()).Msg("connection registered")
}

// UnregisterConnection removes a connection.
func (h *Hub) UnregisterConnection(clientID uuid.UUID) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if conn, exists := h.connections[clientID]; exists {
		conn.Close()
		delete(h.connections, clientID)
		h.logger.Info().Str("client_id", clientID.String()).Msg("connection unregistered")
	}
}

// BroadcastAll sends a message to every connected client.
func (h *Hub) BroadcastAll(msg Message) error {
	h.mu.RLock()
	defer h.mu.RUnlock()

	var firstErr error
	for clientID, conn := range h.connections {
		if err := conn.Send(msg); err != nil && firstErr == nil {
			firstErr = err
			h.logger.Warn().Err(err).Str("client_id", clientID.String()).Msg("broadcast_send_failed")
		}
	}
	return firstErr
}

// ConnectionCount reports the number of live connections.
func (h *Hub) ConnectionCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.connections)
}

// Connection represents a WebSocket connection with a buffered send queue.
type Connection struct {
	conn   *websocket.Conn
	sendCh chan Message
	mu     sync.Mutex
	closed bool
	logger zerolog.Logger
}

// NewConnection wraps a WebSocket connection.
func NewConnection(conn *websocket.Conn, logger zerolog.Logger) *Connection {
	return &Connection{
		conn:   conn,
		sendCh: make(chan Message, 64),
		logger: logger,
	}
}

// Send queues a message for delivery.
func (c *Connection) Send(msg Message) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return ErrConnectionClosed
	}

	select {
	case c.sendCh <- msg:
		return nil
	default:
		return ErrSendQueueFull
	}
}

// Close marks the connection closed and tears down the socket.
func (c *Connection) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}
	c.closed = true
	close(c.sendCh)
	_ = c.conn.Close()
}

// WritePump drains the send queue onto the socket until the queue closes.
// Run it in its own goroutine per connection.
func (c *Connection) WritePump() {
	for msg := range c.sendCh {
		_ = c.conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
		if err := c.conn.WriteJSON(msg); err != nil {
			c.logger.Warn().Err(err).Msg("websocket write failed")
			return
		}
	}
}

// ReadPump discards inbound frames and returns when the peer disconnects.
// The event stream is one-way; reads only service control frames.
func (c *Connection) ReadPump() {
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}
