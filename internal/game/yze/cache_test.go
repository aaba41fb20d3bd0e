package yze_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cory-johannsen/yearzero/internal/game/yze"
)

func buildPool(t *testing.T, faces ...int) *yze.Pool {
	t.Helper()
	pool, err := yze.NewPool(yze.GameMutantYearZero,
		yze.Quantities{yze.TypeSkill: len(faces)},
		yze.WithSource(script(faces...)))
	require.NoError(t, err)
	return pool
}

// TestCache_PutGetEvict verifies the basic lifecycle round-trip.
func TestCache_PutGetEvict(t *testing.T) {
	c := yze.NewCache()
	pool := buildPool(t, 2, 3)

	c.Put(pool)
	assert.Equal(t, 1, c.Len())

	got, ok := c.Get(pool.ID)
	require.True(t, ok)
	assert.Same(t, pool, got)

	assert.True(t, c.Evict(pool.ID))
	assert.False(t, c.Evict(pool.ID), "second evict reports absence")
	_, ok = c.Get(pool.ID)
	assert.False(t, ok)
}

// TestCache_GetUnknown verifies a miss on a random ID.
func TestCache_GetUnknown(t *testing.T) {
	c := yze.NewCache()
	_, ok := c.Get(uuid.New())
	assert.False(t, ok)
}

// TestCache_PutNilPanics verifies the Put precondition.
func TestCache_PutNilPanics(t *testing.T) {
	assert.Panics(t, func() { yze.NewCache().Put(nil) })
}

// TestCache_EvictUnpushable verifies exactly the frozen pools are dropped.
func TestCache_EvictUnpushable(t *testing.T) {
	c := yze.NewCache()

	live := buildPool(t, 2, 3)
	require.True(t, live.Pushable())

	spent := buildPool(t, 2, 3)
	spent.Push()
	require.False(t, spent.Pushable())

	locked := buildPool(t, 6, 6)
	require.False(t, locked.Pushable())

	c.Put(live)
	c.Put(spent)
	c.Put(locked)

	assert.Equal(t, 2, c.EvictUnpushable())
	assert.Equal(t, 1, c.Len())
	_, ok := c.Get(live.ID)
	assert.True(t, ok, "pushable pool must survive eviction")
}
