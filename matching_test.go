package lagraph

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMaximalMatchingIsConflictFreeAndMaximal(t *testing.T) {
	g := triangleWithPendantGraph(t)
	defer g.Delete()

	m, err := MaximalMatching(g, 13)
	require.NoError(t, err)
	defer m.Selected.Free()

	inc, err := BuildIncidence(g)
	require.NoError(t, err)
	defer inc.Free()

	selected, err := trueIndices(m.Selected)
	require.NoError(t, err)
	require.NotEmpty(t, selected)

	covered := make(map[int]bool)
	for k := range selected {
		i, j := inc.EdgeRow[k], inc.EdgeCol[k]
		require.Falsef(t, covered[i], "vertex %d covered by two matched edges", i)
		require.Falsef(t, covered[j], "vertex %d covered by two matched edges", j)
		covered[i] = true
		covered[j] = true
	}

	for k := 0; k < inc.NEdges; k++ {
		if selected[k] {
			continue
		}
		i, j := inc.EdgeRow[k], inc.EdgeCol[k]
		require.Truef(t, covered[i] || covered[j], "edge %d (%d,%d) conflicts with no matched edge; matching is not maximal", k, i, j)
	}
}
