package rng_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evoflow/gp-lite/gplite/rng"
)

func TestMulberry32_SameSeedSameSequence(t *testing.T) {
	a := rng.NewMulberry32(42)
	b := rng.NewMulberry32(42)

	for i := 0; i < 100; i++ {
		require.Equal(t, a.Next(), b.Next())
	}
}

func TestMulberry32_DifferentSeedsDiverge(t *testing.T) {
	a := rng.NewMulberry32(1)
	b := rng.NewMulberry32(2)

	diverged := false

	for i := 0; i < 10; i++ {
		if a.Next() != b.Next() {
			diverged = true
			break
		}
	}

	assert.True(t, diverged, "expected different seeds to diverge within 10 draws")
}

func TestMulberry32_NextInUnitInterval(t *testing.T) {
	g := rng.NewMulberry32(7)

	for i := 0; i < 10000; i++ {
		v := g.Next()
		require.GreaterOrEqual(t, v, 0.0)
		require.Less(t, v, 1.0)
	}
}

func TestMulberry32_IntnBounds(t *testing.T) {
	g := rng.NewMulberry32(123)

	for i := 0; i < 10000; i++ {
		v := g.Intn(7)
		require.GreaterOrEqual(t, v, 0)
		require.Less(t, v, 7)
	}
}

func TestMulberry32_IntnPanicsOnNonPositive(t *testing.T) {
	g := rng.NewMulberry32(1)
	require.Panics(t, func() { g.Intn(0) })
	require.Panics(t, func() { g.Intn(-1) })
}
