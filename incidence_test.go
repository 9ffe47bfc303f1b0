package lagraph

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuildIncidenceMatchesLowerTriangleEdges(t *testing.T) {
	g := triangleWithPendantGraph(t)
	defer g.Delete()

	inc, err := BuildIncidence(g)
	require.NoError(t, err)
	defer inc.Free()

	require.Equal(t, 5, inc.NNodes)
	require.Equal(t, 4, inc.NEdges)
	require.Len(t, inc.EdgeRow, 4)
	require.Len(t, inc.EdgeCol, 4)
	for k := range inc.EdgeRow {
		require.Greater(t, inc.EdgeRow[k], inc.EdgeCol[k])
	}

	nvalsE, err := inc.E.NVals()
	require.NoError(t, err)
	require.Equal(t, 2*inc.NEdges, nvalsE)
}
