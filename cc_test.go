package lagraph

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConnectedComponentsTriangleWithPendantAndIsolate(t *testing.T) {
	rows := []int{0, 1, 0, 0}
	cols := []int{1, 2, 2, 3}
	vals := []int64{1, 1, 1, 1}
	r, c, v := undirectedEdges(rows, cols, vals)
	g := buildGraph[int64](t, 5, r, c, v, Undirected)
	defer g.Delete()

	f, err := ConnectedComponents(g)
	require.NoError(t, err)
	defer f.Free()

	idx, labels, err := extractVectorTuples(f)
	require.NoError(t, err)
	byVertex := make(map[int]int64, len(idx))
	for i, v := range idx {
		byVertex[v] = labels[i]
	}
	require.Len(t, byVertex, 5)
	require.Equal(t, byVertex[0], byVertex[1])
	require.Equal(t, byVertex[0], byVertex[2])
	require.Equal(t, byVertex[0], byVertex[3])
	require.Equal(t, int64(4), byVertex[4])
}
