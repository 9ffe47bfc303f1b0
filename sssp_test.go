package lagraph

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSSSPShortestDistancesOnDirectedWeightedGraph(t *testing.T) {
	// 0 ->1 (4), 0->2 (1), 2->1 (1), 1->3 (1), 2->3 (5)
	rows := []int{0, 0, 2, 1, 2}
	cols := []int{1, 2, 1, 3, 3}
	vals := []int64{4, 1, 1, 1, 5}
	g := buildGraph[int64](t, 4, rows, cols, vals, Directed)
	defer g.Delete()

	dist, err := SSSP(g, 0, int64(1))
	require.NoError(t, err)
	defer dist.Free()

	idx, vals2, err := extractGenericVectorTuples(dist)
	require.NoError(t, err)
	byVertex := make(map[int]int64, len(idx))
	for i, v := range idx {
		byVertex[v] = vals2[i]
	}

	require.Equal(t, int64(0), byVertex[0])
	require.Equal(t, int64(1), byVertex[2])
	require.Equal(t, int64(2), byVertex[1]) // via 0->2->1, cost 1+1, beats direct 0->1 cost 4
	require.Equal(t, int64(3), byVertex[3]) // via 0->2->1->3, cost 1+1+1
}

func TestSSSPRejectsOutOfRangeSource(t *testing.T) {
	g := buildGraph[int64](t, 3, nil, nil, nil, Directed)
	defer g.Delete()

	_, err := SSSP(g, 7, int64(1))
	require.Error(t, err)
}
