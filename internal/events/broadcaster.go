package events

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	ws "github.com/boxlab/boxing-platform/pkg/http/ws"
)

// Broadcaster listens for Redis Pub/Sub fight events and forwards them to
// all connected WebSocket clients.
type Broadcaster struct {
	redis   *redis.Client
	hub     *ws.Hub
	channel string
	logger  zerolog.Logger
}

// NewBroadcaster creates a Pub/Sub powered fight-event broadcaster.
func NewBroadcaster(redisClient *redis.Client, hub *ws.Hub, channel string, logger zerolog.Logger) *Broadcaster {
	if channel == "" {
		channel = DefaultChannel
	}
	return &Broadcaster{
		redis:   redisClient,
		hub:     hub,
		channel: channel,
		logger:  logger.With().Str("component", "event_broadcaster").Logger(),
	}
}

// Run subscribes to the event channel and blocks until the context is cancelled.
func (b *Broadcaster) Run(ctx context.Context) error {
	if b.redis == nil || b.hub == nil {
		return nil
	}

	sub := b.redis.Subscribe(ctx, b.channel)
	defer sub.Close()

	ch := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case msg, ok := <-ch:
			if !ok {
				return nil
			}
			b.forward(msg.Payload)
		}
	}
}

func (b *Broadcaster) forward(payload string) {
	if !json.Valid([]byte(payload)) {
		b.logger.Warn().Msg("dropping malformed fight event payload")
		return
	}

	msg := ws.Message{
		Type:    ws.TypeFightResult,
		Payload: json.RawMessage(payload),
	}
	if err := b.hub.BroadcastAll(msg); err != nil {
		b.logger.Warn().Err(err).Msg("failed to broadcast fight event")
	}
}
