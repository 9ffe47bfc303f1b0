package lagraph

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHITSConvergesToNormalizedScores(t *testing.T) {
	// a small directed hub/authority pattern: 0 and 1 both point to 2 and 3.
	rows := []int{0, 0, 1, 1}
	cols := []int{2, 3, 2, 3}
	vals := []int64{1, 1, 1, 1}
	g := buildGraph[int64](t, 4, rows, cols, vals, Directed)
	defer g.Delete()

	hubs, authorities, iters, err := HITS(g, 1e-10, 100)
	require.NoError(t, err)
	defer hubs.Free()
	defer authorities.Free()
	require.Greater(t, iters, 0)

	hIdx, hVals, err := extractFloat64VectorTuples(hubs)
	require.NoError(t, err)
	aIdx, aVals, err := extractFloat64VectorTuples(authorities)
	require.NoError(t, err)

	hByVertex := make(map[int]float64, len(hIdx))
	for i, v := range hIdx {
		hByVertex[v] = hVals[i]
	}
	aByVertex := make(map[int]float64, len(aIdx))
	for i, v := range aIdx {
		aByVertex[v] = aVals[i]
	}

	hSum, aSum := 0.0, 0.0
	for _, v := range hVals {
		hSum += v
	}
	for _, v := range aVals {
		aSum += v
	}
	require.InDelta(t, 1.0, hSum, 1e-6)
	require.InDelta(t, 1.0, aSum, 1e-6)

	// hubs 0 and 1 are symmetric, so are authorities 2 and 3.
	require.InDelta(t, hByVertex[0], hByVertex[1], 1e-6)
	require.InDelta(t, aByVertex[2], aByVertex[3], 1e-6)
}
