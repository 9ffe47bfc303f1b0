package lagraph

import (
	"testing"

	grb "github.com/intel/forGraphBLASGo/GrB"
	"github.com/stretchr/testify/require"
)

func TestComputeOutInDegreeUndirectedAreEqual(t *testing.T) {
	g := triangleWithPendantGraph(t)
	defer g.Delete()

	require.NoError(t, g.ComputeOutDegree())
	require.NoError(t, g.ComputeInDegree())

	outIdx, outVals, err := extractVectorTuples(g.OutDegree)
	require.NoError(t, err)
	inIdx, inVals, err := extractVectorTuples(g.InDegree)
	require.NoError(t, err)
	require.Equal(t, outIdx, inIdx)
	require.Equal(t, outVals, inVals)

	byVertex := make(map[int]int64, len(outIdx))
	for i, v := range outIdx {
		byVertex[v] = outVals[i]
	}
	require.Equal(t, int64(3), byVertex[0]) // 0: edges to 1,2,3
	require.Equal(t, int64(0), byVertex[4]) // isolate
}

func TestComputeNSelfEdgesCountsDiagonal(t *testing.T) {
	rows := []int{0, 1, 2}
	cols := []int{0, 1, 2}
	vals := []int64{1, 1, 1}
	g := buildGraph[int64](t, 3, rows, cols, vals, Undirected)
	defer g.Delete()

	require.NoError(t, g.ComputeNSelfEdges())
	require.Equal(t, int64(3), *g.NSelfEdges)
}

func TestComputeIsSymmetricStructureUndirectedAlwaysTrue(t *testing.T) {
	g := triangleWithPendantGraph(t)
	defer g.Delete()

	require.NoError(t, g.ComputeIsSymmetricStructure())
	require.Equal(t, TristateTrue, g.IsSymmetric)
}

func TestComputeIsSymmetricStructureDirectedAsymmetric(t *testing.T) {
	rows := []int{0, 1}
	cols := []int{1, 2}
	vals := []int64{1, 1}
	g := buildGraph[int64](t, 3, rows, cols, vals, Directed)
	defer g.Delete()

	require.NoError(t, g.ComputeIsSymmetricStructure())
	require.Equal(t, TristateFalse, g.IsSymmetric)
}

func TestDeleteCachedPropertiesClearsEverything(t *testing.T) {
	g := triangleWithPendantGraph(t)
	defer g.Delete()

	require.NoError(t, g.ComputeOutDegree())
	require.NoError(t, g.ComputeNSelfEdges())
	require.NoError(t, g.DeleteCachedProperties())

	require.False(t, g.hasOutDegree)
	require.Nil(t, g.NSelfEdges)
	require.Equal(t, UnknownTri, g.IsSymmetric)
}

func TestNewRejectsNilAdjacency(t *testing.T) {
	_, err := New[int64](grb.Matrix[int64]{}, Undirected)
	require.Error(t, err)
	require.True(t, IsStatus(err, NullPointer))
}

func TestCheckGraphAcceptsWellFormedGraph(t *testing.T) {
	g := triangleWithPendantGraph(t)
	defer g.Delete()
	require.NoError(t, g.CheckGraph())
}
