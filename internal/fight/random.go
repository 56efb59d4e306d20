package fight

import (
	"context"
	"math/rand/v2"
	"sync"

	"github.com/rs/zerolog"

	"github.com/boxlab/boxing-platform/internal/metrics"
)

// Source yields a draw in [0, 1) used to resolve a fight.
type Source interface {
	Float64(ctx context.Context) (float64, error)
}

// PseudoSource is a locally seeded PRNG draw source.
type PseudoSource struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewPseudoSource seeds a PRNG source. A zero seed pair uses a random seed.
func NewPseudoSource(seed1, seed2 uint64) *PseudoSource {
	if seed1 == 0 && seed2 == 0 {
		return &PseudoSource{rng: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))}
	}
	return &PseudoSource{rng: rand.New(rand.NewPCG(seed1, seed2))}
}

func (s *PseudoSource) Float64(ctx context.Context) (float64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Float64(), nil
}

// FallbackSource tries a primary source and degrades to a fallback when the
// primary fails, so an unreachable random.org never blocks a fight.
type FallbackSource struct {
	primary  Source
	fallback Source
	logger   zerolog.Logger
}

// NewFallbackSource chains two draw sources.
func NewFallbackSource(primary, fallback Source, logger zerolog.Logger) *FallbackSource {
	return &FallbackSource{
		primary:  primary,
		fallback: fallback,
		logger:   logger.With().Str("component", "random").Logger(),
	}
}

func (s *FallbackSource) Float64(ctx context.Context) (float64, error) {
	draw, err := s.primary.Float64(ctx)
	if err == nil {
		return draw, nil
	}

	s.logger.Warn().Err(err).Msg("primary random source failed, using fallback")
	metrics.RandomFallbacks.Inc()
	return s.fallback.Float64(ctx)
}
