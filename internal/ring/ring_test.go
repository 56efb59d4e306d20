package ring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRing_EnterAndOccupants(t *testing.T) {
	r := New()

	assert.NoError(t, r.Enter(1))
	assert.NoError(t, r.Enter(2))

	assert.Equal(t, []int64{1, 2}, r.Occupants())
	assert.Equal(t, 2, r.Len())
}

func TestRing_EnterFullRejected(t *testing.T) {
	r := New()
	assert.NoError(t, r.Enter(1))
	assert.NoError(t, r.Enter(2))

	err := r.Enter(3)

	assert.ErrorIs(t, err, ErrRingFull)
	assert.Equal(t, []int64{1, 2}, r.Occupants())
}

func TestRing_EnterDuplicateRejected(t *testing.T) {
	r := New()
	assert.NoError(t, r.Enter(1))

	err := r.Enter(1)

	assert.ErrorIs(t, err, ErrAlreadyInRing)
	assert.Equal(t, 1, r.Len())
}

func TestRing_ClearIdempotent(t *testing.T) {
	r := New()
	assert.NoError(t, r.Enter(1))
	assert.NoError(t, r.Enter(2))

	r.Clear()
	assert.Empty(t, r.Occupants())

	r.Clear()
	assert.Empty(t, r.Occupants())
}

func TestRing_Evict(t *testing.T) {
	r := New()
	assert.NoError(t, r.Enter(1))
	assert.NoError(t, r.Enter(2))

	assert.True(t, r.Evict(1))
	assert.Equal(t, []int64{2}, r.Occupants())

	assert.False(t, r.Evict(1))
}

func TestRing_OccupantsIsACopy(t *testing.T) {
	r := New()
	assert.NoError(t, r.Enter(1))

	occupants := r.Occupants()
	occupants[0] = 42

	assert.Equal(t, []int64{1}, r.Occupants())
}
