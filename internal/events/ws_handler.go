package events

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	ws "github.com/boxlab/boxing-platform/pkg/http/ws"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		// TODO: restrict origins once a frontend host is settled
		return true
	},
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

// WSHandler upgrades clients onto the fight-event stream.
type WSHandler struct {
	hub    *ws.Hub
	logger zerolog.Logger
}

// NewWSHandler creates the /ws/events handler.
func NewWSHandler(hub *ws.Hub, logger zerolog.Logger) *WSHandler {
	return &WSHandler{
		hub:    hub,
		logger: logger.With().Str("component", "events_ws").Logger(),
	}
}

// HandleWebSocket handles GET /ws/events.
func (h *WSHandler) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn().Err(err).Msg("websocket upgrade failed")
		return
	}

	clientID := uuid.New()
	connection := ws.NewConnection(conn, h.logger)
	h.hub.RegisterConnection(clientID, connection)

	go connection.WritePump()

	// Block until the peer goes away, then unregister.
	connection.ReadPump()
	h.hub.UnregisterConnection(clientID)
}
