package lagraph

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRandIsDeterministicForSameSeed(t *testing.T) {
	a := NewRand(7)
	b := NewRand(7)
	for i := 0; i < 100; i++ {
		require.Equal(t, a.Float64(), b.Float64())
	}
}

func TestRandFloat64IsInUnitInterval(t *testing.T) {
	r := NewRand(1)
	for i := 0; i < 1000; i++ {
		v := r.Float64()
		require.GreaterOrEqual(t, v, 0.0)
		require.Less(t, v, 1.0)
	}
}

func TestRandIntnStaysInRange(t *testing.T) {
	r := NewRand(99)
	for i := 0; i < 1000; i++ {
		v := r.Intn(7)
		require.GreaterOrEqual(t, v, 0)
		require.Less(t, v, 7)
	}
	require.Equal(t, 0, r.Intn(0))
}

func TestRandDifferentSeedsDiverge(t *testing.T) {
	a := NewRand(1)
	b := NewRand(2)
	require.NotEqual(t, a.Float64(), b.Float64())
}
