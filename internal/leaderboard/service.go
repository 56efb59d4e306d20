package leaderboard

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/boxlab/boxing-platform/internal/boxer"
	"github.com/boxlab/boxing-platform/internal/metrics"
)

const maxLimit = 100

// Ranker produces the ranked view from the registry.
type Ranker interface {
	Leaderboard(ctx context.Context, sortKey string, limit int) ([]boxer.LeaderboardEntry, error)
}

// ServiceOptions configures leaderboard caching behavior.
type ServiceOptions struct {
	CacheTTL       time.Duration
	DefaultLimit   int
	RedisKeyPrefix string
}

// Service serves ranked boxer views, with a short-TTL Redis cache in front
// of Postgres. A nil Redis client degrades to direct reads.
type Service struct {
	ranker       Ranker
	redis        *redis.Client
	logger       zerolog.Logger
	ttl          time.Duration
	defaultLimit int
	prefix       string
}

// NewService constructs a leaderboard service instance.
func NewService(ranker Ranker, redisClient *redis.Client, logger zerolog.Logger, opts ServiceOptions) *Service {
	ttl := opts.CacheTTL
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	limit := opts.DefaultLimit
	if limit <= 0 {
		limit = 25
	}
	prefix := opts.RedisKeyPrefix
	if prefix == "" {
		prefix = "lb"
	}

	return &Service{
		ranker:       ranker,
		redis:        redisClient,
		logger:       logger.With().Str("component", "leaderboard").Logger(),
		ttl:          ttl,
		defaultLimit: limit,
		prefix:       prefix,
	}
}

// Top returns up to limit ranked boxers for the given sort key.
func (s *Service) Top(ctx context.Context, sortKey string, limit int) ([]boxer.LeaderboardEntry, error) {
	if sortKey != boxer.SortByWins && sortKey != boxer.SortByWinPct {
		return nil, boxer.ErrInvalidSortKey
	}
	if limit <= 0 {
		limit = s.defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	key := s.cacheKey(ctx, sortKey, limit)
	if entries, ok := s.cacheGet(ctx, key); ok {
		metrics.LeaderboardCacheHits.Inc()
		return entries, nil
	}

	entries, err := s.ranker.Leaderboard(ctx, sortKey, limit)
	if err != nil {
		return nil, err
	}

	metrics.LeaderboardCacheMisses.Inc()
	s.cacheSet(ctx, key, entries)
	return entries, nil
}

// Invalidate bumps the cache generation so subsequent reads bypass stale
// entries. Old generations age out via TTL.
func (s *Service) Invalidate(ctx context.Context) {
	if s.redis == nil {
		return
	}
	if err := s.redis.Incr(ctx, s.prefix+":gen").Err(); err != nil {
		s.logger.Warn().Err(err).Msg("leaderboard cache invalidation failed")
	}
}

func (s *Service) cacheKey(ctx context.Context, sortKey string, limit int) string {
	gen := "0"
	if s.redis != nil {
		if v, err := s.redis.Get(ctx, s.prefix+":gen").Result(); err == nil {
			gen = v
		}
	}
	return fmt.Sprintf("%s:%s:%s:%d", s.prefix, gen, sortKey, limit)
}

func (s *Service) cacheGet(ctx context.Context, key string) ([]boxer.LeaderboardEntry, bool) {
	if s.redis == nil {
		return nil, false
	}
	data, err := s.redis.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			s.logger.Warn().Err(err).Msg("leaderboard cache read failed")
		}
		return nil, false
	}
	var entries []boxer.LeaderboardEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		s.logger.Warn().Err(err).Msg("leaderboard cache payload decode failed")
		return nil, false
	}
	return entries, true
}

func (s *Service) cacheSet(ctx context.Context, key string, entries []boxer.LeaderboardEntry) {
	if s.redis == nil {
		return
	}
	data, err := json.Marshal(entries)
	if err != nil {
		return
	}
	if err := s.redis.Set(ctx, key, data, s.ttl).Err(); err != nil {
		s.logger.Warn().Err(err).Msg("leaderboard cache write failed")
	}
}
