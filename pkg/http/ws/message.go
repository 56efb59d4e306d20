package ws

import (
	"encoding/json"
	"errors"
)

// Message types pushed to event-stream clients.
const (
	TypeFightResult       = "fight_result"
	TypeLeaderboardUpdate = "leaderboard_update"
)

// Message is the envelope sent over a WebSocket connection.
type Message struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

var (
	ErrConnectionNotFound = errors.New("connection not found")
	ErrConnectionClosed   = errors.New("connection closed")
	ErrSendQueueFull      = errors.New("send queue full")
)
