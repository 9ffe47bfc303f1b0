package lagraph

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMultiplySizeNormalCase(t *testing.T) {
	p, overflow := multiplySize(6, 7)
	require.False(t, overflow)
	require.Equal(t, 42, p)
}

func TestMultiplySizeDetectsOverflow(t *testing.T) {
	_, overflow := multiplySize(math.MaxInt64, 2)
	require.True(t, overflow)
}

func TestMultiplySizeRejectsNegative(t *testing.T) {
	_, overflow := multiplySize(-1, 5)
	require.True(t, overflow)
}

func TestCheckedMakeSucceedsForSmallSize(t *testing.T) {
	s, err := checkedMake[int](10)
	require.NoError(t, err)
	require.Len(t, s, 10)
}
