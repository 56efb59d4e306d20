package fight

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/boxlab/boxing-platform/internal/boxer"
	"github.com/boxlab/boxing-platform/internal/ring"
)

type mockRepo struct {
	mock.Mock
}

func (m *mockRepo) GetByID(ctx context.Context, id int64) (boxer.Boxer, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(boxer.Boxer), args.Error(1)
}

func (m *mockRepo) RecordFightResult(ctx context.Context, winnerID, loserID int64) error {
	return m.Called(ctx, winnerID, loserID).Error(0)
}

type stubSource struct {
	draw float64
	err  error
}

func (s stubSource) Float64(ctx context.Context) (float64, error) {
	return s.draw, s.err
}

type capturingPublisher struct {
	outcomes []Outcome
}

func (p *capturingPublisher) PublishFightResult(ctx context.Context, outcome Outcome) error {
	p.outcomes = append(p.outcomes, outcome)
	return nil
}

// Equal-skill pair: same weight, name length, reach and age, so the win
// probability is exactly one half and the stub draw picks the side.
func equalPair() (boxer.Boxer, boxer.Boxer) {
	a := boxer.Boxer{ID: 1, Name: "Aaa", Weight: 150, Height: 70, Reach: 70, Age: 30}
	b := boxer.Boxer{ID: 2, Name: "Bbb", Weight: 150, Height: 70, Reach: 70, Age: 30}
	return a, b
}

func stagedService(t *testing.T, repo *mockRepo, source Source, publisher Publisher) (*Service, *ring.Ring) {
	t.Helper()
	r := ring.New()
	require.NoError(t, r.Enter(1))
	require.NoError(t, r.Enter(2))
	return NewService(r, repo, source, publisher, nil, zerolog.Nop()), r
}

func TestFight_FirstEntrantWinsOnLowDraw(t *testing.T) {
	a, b := equalPair()
	repo := new(mockRepo)
	repo.On("GetByID", mock.Anything, int64(1)).Return(a, nil)
	repo.On("GetByID", mock.Anything, int64(2)).Return(b, nil)
	repo.On("RecordFightResult", mock.Anything, int64(1), int64(2)).Return(nil)

	publisher := &capturingPublisher{}
	svc, staged := stagedService(t, repo, stubSource{draw: 0.25}, publisher)

	outcome, err := svc.Fight(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "Aaa", outcome.Winner.Name)
	assert.Equal(t, "Bbb", outcome.Loser.Name)
	assert.Equal(t, 1, outcome.Winner.Wins)
	assert.Equal(t, 1, outcome.Winner.Fights)
	assert.Equal(t, 0, outcome.Loser.Wins)
	assert.Equal(t, 1, outcome.Loser.Fights)
	assert.Empty(t, staged.Occupants(), "ring auto-clears after a fight")
	assert.Len(t, publisher.outcomes, 1)
	repo.AssertExpectations(t)
}

func TestFight_SecondEntrantWinsOnHighDraw(t *testing.T) {
	a, b := equalPair()
	repo := new(mockRepo)
	repo.On("GetByID", mock.Anything, int64(1)).Return(a, nil)
	repo.On("GetByID", mock.Anything, int64(2)).Return(b, nil)
	repo.On("RecordFightResult", mock.Anything, int64(2), int64(1)).Return(nil)

	svc, _ := stagedService(t, repo, stubSource{draw: 0.75}, nil)

	outcome, err := svc.Fight(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "Bbb", outcome.Winner.Name)
	repo.AssertExpectations(t)
}

func TestFight_InsufficientCompetitors(t *testing.T) {
	repo := new(mockRepo)
	r := ring.New()
	require.NoError(t, r.Enter(1))
	svc := NewService(r, repo, stubSource{draw: 0.5}, nil, nil, zerolog.Nop())

	_, err := svc.Fight(context.Background())

	assert.ErrorIs(t, err, ErrInsufficientCompetitors)
	assert.Equal(t, []int64{1}, r.Occupants(), "a failed fight leaves the ring untouched")
	repo.AssertNotCalled(t, "RecordFightResult")
}

func TestFight_StagedBoxerDeleted(t *testing.T) {
	a, b := equalPair()
	repo := new(mockRepo)
	repo.On("GetByID", mock.Anything, int64(1)).Return(a, nil)
	repo.On("GetByID", mock.Anything, int64(2)).Return(b, nil)
	repo.On("RecordFightResult", mock.Anything, int64(1), int64(2)).Return(boxer.ErrNotFound)

	svc, staged := stagedService(t, repo, stubSource{draw: 0.25}, nil)

	_, err := svc.Fight(context.Background())

	assert.ErrorIs(t, err, boxer.ErrNotFound)
	assert.Equal(t, 2, staged.Len(), "stat-update failure keeps the ring staged")
}

func TestFight_DrawSourceError(t *testing.T) {
	a, b := equalPair()
	repo := new(mockRepo)
	repo.On("GetByID", mock.Anything, int64(1)).Return(a, nil)
	repo.On("GetByID", mock.Anything, int64(2)).Return(b, nil)

	svc, _ := stagedService(t, repo, stubSource{err: errors.New("random.org down")}, nil)

	_, err := svc.Fight(context.Background())

	assert.Error(t, err)
	repo.AssertNotCalled(t, "RecordFightResult")
}

// Scenario from the smoke-test script: two fresh boxers, one fight, exactly
// one winner with wins=1 and both with fights=1.
func TestFight_Scenario(t *testing.T) {
	a := boxer.Boxer{ID: 1, Name: "A", Weight: 150, Height: 71, Reach: 72.2, Age: 21}
	b := boxer.Boxer{ID: 2, Name: "B", Weight: 175, Height: 74, Reach: 75.5, Age: 24}

	repo := new(mockRepo)
	repo.On("GetByID", mock.Anything, int64(1)).Return(a, nil)
	repo.On("GetByID", mock.Anything, int64(2)).Return(b, nil)
	repo.On("RecordFightResult", mock.Anything, mock.Anything, mock.Anything).Return(nil)

	svc, _ := stagedService(t, repo, stubSource{draw: 0.5}, nil)

	outcome, err := svc.Fight(context.Background())

	require.NoError(t, err)
	assert.Contains(t, []string{"A", "B"}, outcome.Winner.Name)
	assert.NotEqual(t, outcome.Winner.Name, outcome.Loser.Name)
	assert.Equal(t, 1, outcome.Winner.Wins)
	assert.Equal(t, 1, outcome.Winner.Fights)
	assert.Equal(t, 0, outcome.Loser.Wins)
	assert.Equal(t, 1, outcome.Loser.Fights)
}
