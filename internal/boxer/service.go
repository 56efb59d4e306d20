package boxer

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/boxlab/boxing-platform/internal/metrics"
)

// Repository is the persistence surface the registry needs.
type Repository interface {
	CreateBoxer(ctx context.Context, params NewBoxerParams) (Boxer, error)
	GetByID(ctx context.Context, id int64) (Boxer, error)
	GetByName(ctx context.Context, name string) (Boxer, error)
	Delete(ctx context.Context, id int64) error
	Leaderboard(ctx context.Context, sortKey string, limit int) ([]LeaderboardEntry, error)
}

// RingEvictor removes a deleted boxer from the staging ring.
type RingEvictor interface {
	Evict(id int64) bool
}

// Invalidator drops derived views (leaderboard cache) after registry mutations.
type Invalidator interface {
	Invalidate(ctx context.Context)
}

// Service implements registry operations on top of the repository.
type Service struct {
	repo        Repository
	ring        RingEvictor
	invalidator Invalidator
	logger      zerolog.Logger
}

// NewService constructs the registry service. ring and invalidator may be nil.
func NewService(repo Repository, ring RingEvictor, invalidator Invalidator, logger zerolog.Logger) *Service {
	return &Service{
		repo:        repo,
		ring:        ring,
		invalidator: invalidator,
		logger:      logger.With().Str("component", "boxer").Logger(),
	}
}

// Create validates and registers a new boxer with zeroed counters.
func (s *Service) Create(ctx context.Context, params NewBoxerParams) (Boxer, error) {
	if err := params.Validate(); err != nil {
		return Boxer{}, err
	}

	b, err := s.repo.CreateBoxer(ctx, params)
	if err != nil {
		return Boxer{}, fmt.Errorf("register boxer %q: %w", params.Name, err)
	}

	metrics.BoxersCreated.Inc()
	s.logger.Info().Int64("boxer_id", b.ID).Str("name", b.Name).Str("weight_class", b.WeightClass).Msg("boxer registered")
	return b, nil
}

// GetByID returns a boxer snapshot.
func (s *Service) GetByID(ctx context.Context, id int64) (Boxer, error) {
	return s.repo.GetByID(ctx, id)
}

// GetByName returns a boxer snapshot by its unique name.
func (s *Service) GetByName(ctx context.Context, name string) (Boxer, error) {
	return s.repo.GetByName(ctx, name)
}

// Delete removes a boxer and evicts it from the ring if staged.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	if s.ring != nil && s.ring.Evict(id) {
		s.logger.Info().Int64("boxer_id", id).Msg("deleted boxer evicted from ring")
	}
	if s.invalidator != nil {
		s.invalidator.Invalidate(ctx)
	}

	metrics.BoxersDeleted.Inc()
	s.logger.Info().Int64("boxer_id", id).Msg("boxer deleted")
	return nil
}

// Leaderboard returns ranked boxers for a sort key.
func (s *Service) Leaderboard(ctx context.Context, sortKey string, limit int) ([]LeaderboardEntry, error) {
	return s.repo.Leaderboard(ctx, sortKey, limit)
}
