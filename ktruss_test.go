package lagraph

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKTrussDropsPendantEdge(t *testing.T) {
	g := triangleWithPendantGraph(t)
	defer g.Delete()

	c, nedges, err := KTruss(g, 3)
	require.NoError(t, err)
	defer c.Free()
	// the triangle's three undirected edges survive (6 directed entries);
	// the 0-3 pendant edge has zero support and is pruned.
	require.Equal(t, int64(6), nedges)

	rows, _, _, err := extractTuples(c)
	require.NoError(t, err)
	require.Len(t, rows, 6)
}

func TestAllKTrussStopsWhenEmpty(t *testing.T) {
	g := triangleWithPendantGraph(t)
	defer g.Delete()

	levels, err := AllKTruss(g)
	require.NoError(t, err)
	require.NotEmpty(t, levels)
	require.Equal(t, 3, levels[0].K)
	require.Equal(t, int64(6), levels[0].NumEdges)
	require.Equal(t, int64(0), levels[len(levels)-1].NumEdges)
}
