package events

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/boxlab/boxing-platform/internal/fight"
)

// DefaultChannel carries fight-result events over Redis Pub/Sub.
const DefaultChannel = "fight:events"

// Publisher pushes resolved fight outcomes onto the Pub/Sub channel.
type Publisher struct {
	redis   *redis.Client
	channel string
	logger  zerolog.Logger
}

// NewPublisher creates a fight-event publisher. A nil client disables it.
func NewPublisher(redisClient *redis.Client, channel string, logger zerolog.Logger) *Publisher {
	if channel == "" {
		channel = DefaultChannel
	}
	return &Publisher{
		redis:   redisClient,
		channel: channel,
		logger:  logger.With().Str("component", "event_publisher").Logger(),
	}
}

// PublishFightResult serializes the outcome onto the channel.
func (p *Publisher) PublishFightResult(ctx context.Context, outcome fight.Outcome) error {
	if p.redis == nil {
		return nil
	}

	payload, err := json.Marshal(outcome)
	if err != nil {
		return fmt.Errorf("marshal fight outcome: %w", err)
	}
	if err := p.redis.Publish(ctx, p.channel, payload).Err(); err != nil {
		return fmt.Errorf("publish fight outcome: %w", err)
	}
	return nil
}
