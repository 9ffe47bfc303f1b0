package lagraph

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBFSLevelsOnPathGraph(t *testing.T) {
	rows := []int{0, 1, 2, 3}
	cols := []int{1, 2, 3, 4}
	vals := []int64{1, 1, 1, 1}
	r, c, v := undirectedEdges(rows, cols, vals)
	g := buildGraph[int64](t, 5, r, c, v, Undirected)
	defer g.Delete()

	res, err := BFS(g, 0, true, true)
	require.NoError(t, err)
	defer res.free()

	lIdx, lVals, err := extractVectorTuples(res.Level)
	require.NoError(t, err)
	byVertex := make(map[int]int64, len(lIdx))
	for i, v := range lIdx {
		byVertex[v] = lVals[i]
	}
	require.Equal(t, int64(0), byVertex[0])
	require.Equal(t, int64(1), byVertex[1])
	require.Equal(t, int64(2), byVertex[2])
	require.Equal(t, int64(3), byVertex[3])
	require.Equal(t, int64(4), byVertex[4])

	pIdx, pVals, err := extractVectorTuples(res.Parent)
	require.NoError(t, err)
	parentOf := make(map[int]int64, len(pIdx))
	for i, v := range pIdx {
		parentOf[v] = pVals[i]
	}
	require.Equal(t, int64(0), parentOf[0])
	require.Equal(t, int64(0), parentOf[1])
	require.Equal(t, int64(1), parentOf[2])
	require.Equal(t, int64(2), parentOf[3])
	require.Equal(t, int64(3), parentOf[4])
}

func TestBFSRejectsOutOfRangeSource(t *testing.T) {
	g := buildGraph[int64](t, 3, nil, nil, nil, Undirected)
	defer g.Delete()

	_, err := BFS(g, -1, true, false)
	require.Error(t, err)
}

func TestBFSRequiresLevelOrParent(t *testing.T) {
	g := buildGraph[int64](t, 3, nil, nil, nil, Undirected)
	defer g.Delete()

	_, err := BFS(g, 0, false, false)
	require.Error(t, err)
}
