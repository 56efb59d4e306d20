package fight

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/boxlab/boxing-platform/internal/boxer"
	"github.com/boxlab/boxing-platform/internal/metrics"
	"github.com/boxlab/boxing-platform/internal/ring"
)

// ErrInsufficientCompetitors indicates fewer than two staged boxers.
var ErrInsufficientCompetitors = errors.New("there must be two boxers to start a fight")

// Repository is the persistence surface the matchmaker needs.
type Repository interface {
	GetByID(ctx context.Context, id int64) (boxer.Boxer, error)
	RecordFightResult(ctx context.Context, winnerID, loserID int64) error
}

// Publisher fans a resolved outcome out to subscribers. Failures are logged,
// never surfaced to the caller.
type Publisher interface {
	PublishFightResult(ctx context.Context, outcome Outcome) error
}

// Invalidator drops the cached leaderboard after counters change.
type Invalidator interface {
	Invalidate(ctx context.Context)
}

// Outcome is the transient record of a resolved fight. It is returned to the
// caller and broadcast, but only the counters persist.
type Outcome struct {
	FightID     uuid.UUID   `json:"fight_id"`
	Winner      boxer.Boxer `json:"winner"`
	Loser       boxer.Boxer `json:"loser"`
	WinnerSkill float64     `json:"winner_skill"`
	LoserSkill  float64     `json:"loser_skill"`
	Draw        float64     `json:"draw"`
	ResolvedAt  time.Time   `json:"resolved_at"`
}

// Service resolves fights between the two staged boxers.
type Service struct {
	ring        *ring.Ring
	repo        Repository
	random      Source
	publisher   Publisher
	invalidator Invalidator
	logger      zerolog.Logger

	// Serializes fights; registry deletes landing mid-fight fail the
	// stat-update transaction instead of half-applying.
	mu sync.Mutex
}

// NewService constructs the matchmaker. publisher and invalidator may be nil.
func NewService(r *ring.Ring, repo Repository, random Source, publisher Publisher, invalidator Invalidator, logger zerolog.Logger) *Service {
	return &Service{
		ring:        r,
		repo:        repo,
		random:      random,
		publisher:   publisher,
		invalidator: invalidator,
		logger:      logger.With().Str("component", "fight").Logger(),
	}
}

// Fight resolves a match between the two ring occupants. The winner gains a
// fight and a win, the loser a fight, and the ring clears afterwards.
func (s *Service) Fight(ctx context.Context) (Outcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids := s.ring.Occupants()
	if len(ids) < ring.Capacity {
		return Outcome{}, ErrInsufficientCompetitors
	}

	boxer1, err := s.repo.GetByID(ctx, ids[0])
	if err != nil {
		return Outcome{}, fmt.Errorf("load first competitor: %w", err)
	}
	boxer2, err := s.repo.GetByID(ctx, ids[1])
	if err != nil {
		return Outcome{}, fmt.Errorf("load second competitor: %w", err)
	}

	skill1 := Skill(boxer1)
	skill2 := Skill(boxer2)
	probability := winProbability(skill1, skill2)

	draw, err := s.random.Float64(ctx)
	if err != nil {
		return Outcome{}, fmt.Errorf("fetch fight draw: %w", err)
	}

	winner, loser := boxer2, boxer1
	winnerSkill, loserSkill := skill2, skill1
	if draw < probability {
		winner, loser = boxer1, boxer2
		winnerSkill, loserSkill = skill1, skill2
	}

	if err := s.repo.RecordFightResult(ctx, winner.ID, loser.ID); err != nil {
		return Outcome{}, fmt.Errorf("record fight result: %w", err)
	}

	s.ring.Clear()
	metrics.FightsTotal.Inc()

	// Reflect the persisted counters in the returned snapshots.
	winner.Fights++
	winner.Wins++
	loser.Fights++

	outcome := Outcome{
		FightID:     uuid.New(),
		Winner:      winner,
		Loser:       loser,
		WinnerSkill: winnerSkill,
		LoserSkill:  loserSkill,
		Draw:        draw,
		ResolvedAt:  time.Now().UTC(),
	}

	s.logger.Info().
		Str("fight_id", outcome.FightID.String()).
		Str("winner", winner.Name).
		Str("loser", loser.Name).
		Float64("draw", draw).
		Msg("fight resolved")

	if s.invalidator != nil {
		s.invalidator.Invalidate(ctx)
	}
	if s.publisher != nil {
		if err := s.publisher.PublishFightResult(ctx, outcome); err != nil {
			s.logger.Warn().Err(err).Msg("fight result publish failed")
		}
	}

	return outcome, nil
}
