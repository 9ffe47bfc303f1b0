package lagraph

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSampleDegreeOfTriangleWithPendantIsPositive(t *testing.T) {
	g := triangleWithPendantGraph(t)
	defer g.Delete()
	require.NoError(t, g.ComputeOutDegree())

	// k == n draws, taken with replacement, so some vertices may be drawn
	// more than once and others not at all; every vertex has an edge, so
	// the sampled mean is positive.
	mean, median, err := SampleDegree(g.OutDegree, 5, 1)
	require.NoError(t, err)
	require.Greater(t, mean, 0.0)
	require.GreaterOrEqual(t, median, 0.0)
}

func TestSampleDegreeRejectsNonPositiveK(t *testing.T) {
	g := triangleWithPendantGraph(t)
	defer g.Delete()
	require.NoError(t, g.ComputeOutDegree())

	_, _, err := SampleDegree(g.OutDegree, 0, 1)
	require.Error(t, err)
}

func TestAutoSortTriangleCountRunsOnStarGraph(t *testing.T) {
	// a star: vertex 0 connects to 1..6 (degree 6), leaves have degree 1.
	rows := make([]int, 6)
	cols := make([]int, 6)
	vals := make([]int64, 6)
	for i := 0; i < 6; i++ {
		rows[i] = 0
		cols[i] = i + 1
		vals[i] = 1
	}
	r, c, v := undirectedEdges(rows, cols, vals)
	g := buildGraph[int64](t, 7, r, c, v, Undirected)
	defer g.Delete()
	require.NoError(t, g.ComputeOutDegree())

	enabled, err := autoSortTriangleCount(g.OutDegree, 7, 1)
	require.NoError(t, err)
	_ = enabled
}
