package dice_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/yearzero/internal/game/dice"
)

// TestCryptoSource_Intn_InRange verifies the postcondition:
// every value returned by Intn(6) is in [0, 6).
func TestCryptoSource_Intn_InRange(t *testing.T) {
	src := dice.NewCryptoSource()
	for i := 0; i < 1000; i++ {
		v := src.Intn(6)
		assert.GreaterOrEqual(t, v, 0)
		assert.Less(t, v, 6)
	}
}

// TestCryptoSource_Intn_PanicsOnZero verifies the precondition:
// Intn panics when called with n <= 0.
func TestCryptoSource_Intn_PanicsOnZero(t *testing.T) {
	src := dice.NewCryptoSource()
	assert.Panics(t, func() { src.Intn(0) })
}

// TestSeededSource_Deterministic verifies the seededSource invariant: equal
// seeds replay equal sequences.
func TestSeededSource_Deterministic(t *testing.T) {
	a := dice.NewSeededSource(42)
	b := dice.NewSeededSource(42)
	for i := 0; i < 100; i++ {
		assert.Equal(t, a.Intn(10), b.Intn(10), "draw %d must match across equal seeds", i)
	}
}

// TestSeededSource_PanicsOnZero verifies the Intn precondition.
func TestSeededSource_PanicsOnZero(t *testing.T) {
	src := dice.NewSeededSource(1)
	assert.Panics(t, func() { src.Intn(0) })
}

// TestRollFace_Bounds uses property-based testing to verify RollFace always
// returns a face in [1, faces].
func TestRollFace_Bounds(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		faces := rapid.IntRange(1, 100).Draw(rt, "faces")
		seed := rapid.Int64().Draw(rt, "seed")
		src := dice.NewSeededSource(seed)

		v := dice.RollFace(src, faces)
		assert.GreaterOrEqual(rt, v, 1, "face must be >= 1")
		assert.LessOrEqual(rt, v, faces, "face must be <= faces")
	})
}

// TestRollFace_PanicsOnZeroFaces verifies the RollFace precondition.
func TestRollFace_PanicsOnZeroFaces(t *testing.T) {
	assert.Panics(t, func() { dice.RollFace(dice.NewSeededSource(1), 0) })
}

// TestLoggedSource_ForwardsAndLogs verifies the wrapper forwards the wrapped
// source's values and emits one debug entry per draw.
func TestLoggedSource_ForwardsAndLogs(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	logger := zap.New(core)

	plain := dice.NewSeededSource(7)
	logged := dice.NewLoggedSource(dice.NewSeededSource(7), logger)

	for i := 0; i < 10; i++ {
		assert.Equal(t, plain.Intn(6), logged.Intn(6), "draw %d must pass through unchanged", i)
	}
	require.Equal(t, 10, logs.Len(), "every draw must be logged")
	assert.Equal(t, "random draw", logs.All()[0].Message)
}

// TestLoggedSource_NilArguments verifies the constructor preconditions.
func TestLoggedSource_NilArguments(t *testing.T) {
	assert.Panics(t, func() { dice.NewLoggedSource(nil, zap.NewNop()) })
	assert.Panics(t, func() { dice.NewLoggedSource(dice.NewCryptoSource(), nil) })
}
