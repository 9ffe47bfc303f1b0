package lagraph

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCoarsenByMatchingCompactsSurvivingVertices(t *testing.T) {
	g := triangleWithPendantGraph(t)
	defer g.Delete()

	result, err := CoarsenByMatching(g, 13, false, true)
	require.NoError(t, err)
	defer result.Graph.Delete()

	require.Len(t, result.Parent, 5)
	n2, err := result.Graph.N()
	require.NoError(t, err)
	require.Equal(t, len(result.InvNewLabel), n2)
	require.LessOrEqual(t, n2, 5)

	// every representative (parent[u] == u) gets a new label, and every
	// vertex's parent must itself be a representative.
	for u, p := range result.Parent {
		require.Equal(t, result.Parent[p], p)
		_, ok := result.NewLabel[int(p)]
		require.Truef(t, ok, "representative %d (parent of %d) missing a new label", p, u)
	}
}

func TestCoarsenByMatchingPreservesMappingKeepsVertexCount(t *testing.T) {
	g := triangleWithPendantGraph(t)
	defer g.Delete()

	result, err := CoarsenByMatching(g, 13, true, false)
	require.NoError(t, err)
	defer result.Graph.Delete()

	require.Nil(t, result.NewLabel)
	require.Nil(t, result.InvNewLabel)
	n2, err := result.Graph.N()
	require.NoError(t, err)
	require.Equal(t, 5, n2)
}
