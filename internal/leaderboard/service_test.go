package leaderboard

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/boxlab/boxing-platform/internal/boxer"
)

type mockRanker struct {
	mock.Mock
}

func (m *mockRanker) Leaderboard(ctx context.Context, sortKey string, limit int) ([]boxer.LeaderboardEntry, error) {
	args := m.Called(ctx, sortKey, limit)
	return args.Get(0).([]boxer.LeaderboardEntry), args.Error(1)
}

func entriesFixture() []boxer.LeaderboardEntry {
	return []boxer.LeaderboardEntry{
		{Boxer: boxer.Boxer{ID: 1, Name: "Ali", Fights: 10, Wins: 9}, WinPct: 90.0},
		{Boxer: boxer.Boxer{ID: 2, Name: "Frazier", Fights: 10, Wins: 7}, WinPct: 70.0},
	}
}

// Tests run without Redis; the cache layer degrades to direct ranker reads.
func TestTop(t *testing.T) {
	ranker := new(mockRanker)
	svc := NewService(ranker, nil, zerolog.Nop(), ServiceOptions{})

	ranker.On("Leaderboard", mock.Anything, boxer.SortByWins, 10).Return(entriesFixture(), nil)

	entries, err := svc.Top(context.Background(), boxer.SortByWins, 10)

	require.NoError(t, err)
	assert.Equal(t, entriesFixture(), entries)
	ranker.AssertExpectations(t)
}

func TestTopInvalidSortKey(t *testing.T) {
	ranker := new(mockRanker)
	svc := NewService(ranker, nil, zerolog.Nop(), ServiceOptions{})

	_, err := svc.Top(context.Background(), "reach", 10)

	assert.ErrorIs(t, err, boxer.ErrInvalidSortKey)
	ranker.AssertNotCalled(t, "Leaderboard")
}

func TestTopDefaultLimit(t *testing.T) {
	ranker := new(mockRanker)
	svc := NewService(ranker, nil, zerolog.Nop(), ServiceOptions{DefaultLimit: 5})

	ranker.On("Leaderboard", mock.Anything, boxer.SortByWinPct, 5).Return(entriesFixture(), nil)

	_, err := svc.Top(context.Background(), boxer.SortByWinPct, 0)

	require.NoError(t, err)
	ranker.AssertExpectations(t)
}

func TestTopClampsLimit(t *testing.T) {
	ranker := new(mockRanker)
	svc := NewService(ranker, nil, zerolog.Nop(), ServiceOptions{})

	ranker.On("Leaderboard", mock.Anything, boxer.SortByWins, maxLimit).Return(entriesFixture(), nil)

	_, err := svc.Top(context.Background(), boxer.SortByWins, 5000)

	require.NoError(t, err)
	ranker.AssertExpectations(t)
}

func TestInvalidateWithoutRedisIsNoop(t *testing.T) {
	svc := NewService(new(mockRanker), nil, zerolog.Nop(), ServiceOptions{})
	svc.Invalidate(context.Background())
}
