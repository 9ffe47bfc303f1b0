package lagraph

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCDLPTriangleConvergesToOneCommunity(t *testing.T) {
	rows := []int{0, 1, 0}
	cols := []int{1, 2, 2}
	vals := []int64{1, 1, 1}
	r, c, v := undirectedEdges(rows, cols, vals)
	g := buildGraph[int64](t, 3, r, c, v, Undirected)
	defer g.Delete()

	labels, err := CDLP(g, true, 0)
	require.NoError(t, err)
	defer labels.Free()

	idx, vals2, err := extractVectorTuples(labels)
	require.NoError(t, err)
	require.Len(t, idx, 3)
	byVertex := make(map[int]int64, 3)
	for i, v := range idx {
		byVertex[v] = vals2[i]
	}
	require.Equal(t, byVertex[0], byVertex[1])
	require.Equal(t, byVertex[0], byVertex[2])
}

func TestCDLPDisconnectedVerticesKeepOwnLabel(t *testing.T) {
	g := buildGraph[int64](t, 3, nil, nil, nil, Undirected)
	defer g.Delete()

	labels, err := CDLP(g, true, 10)
	require.NoError(t, err)
	defer labels.Free()

	idx, vals, err := extractVectorTuples(labels)
	require.NoError(t, err)
	byVertex := make(map[int]int64, 3)
	for i, v := range idx {
		byVertex[v] = vals[i]
	}
	require.Equal(t, int64(0), byVertex[0])
	require.Equal(t, int64(1), byVertex[1])
	require.Equal(t, int64(2), byVertex[2])
}
