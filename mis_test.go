package lagraph

import (
	"testing"

	grb "github.com/intel/forGraphBLASGo/GrB"
	"github.com/stretchr/testify/require"
)

func TestMaximalIndependentSetIsIndependentAndMaximal(t *testing.T) {
	// a 5-cycle: 0-1-2-3-4-0
	rows := []int{0, 1, 2, 3, 4}
	cols := []int{1, 2, 3, 4, 0}
	vals := make([]int64, 5)
	for i := range vals {
		vals[i] = 1
	}
	r, c, v := undirectedEdges(rows, cols, vals)
	g := buildGraph[int64](t, 5, r, c, v, Undirected)
	defer g.Delete()

	iset, err := MaximalIndependentSet(g, 42)
	require.NoError(t, err)
	defer iset.Free()

	members, err := trueIndices(iset)
	require.NoError(t, err)
	require.NotEmpty(t, members)

	neighbors := map[int][2]int{0: {1, 4}, 1: {0, 2}, 2: {1, 3}, 3: {2, 4}, 4: {3, 0}}
	for v := range members {
		for _, nb := range neighbors[v] {
			require.Falsef(t, members[nb], "vertex %d and neighbor %d both in independent set", v, nb)
		}
	}
	for v := 0; v < 5; v++ {
		if members[v] {
			continue
		}
		nb := neighbors[v]
		require.Truef(t, members[nb[0]] || members[nb[1]], "vertex %d has no neighbor in the set; set is not maximal", v)
	}
}

func TestMaximalIndependentSetIsolatedVertexAlwaysIncluded(t *testing.T) {
	g := buildGraph[int64](t, 3, nil, nil, nil, Undirected)
	defer g.Delete()

	iset, err := MaximalIndependentSet(g, 7)
	require.NoError(t, err)
	defer iset.Free()

	members, err := trueIndices(iset)
	require.NoError(t, err)
	idx := make([]int, 0, len(members))
	for v := range members {
		idx = append(idx, v)
	}
	require.ElementsMatch(t, []int{0, 1, 2}, idx)
}

// trueIndices returns the set of vertices holding a true entry in a dense
// boolean vector, used by tests over MaximalIndependentSet and
// MaximalMatching whose output vectors hold an explicit true/false at every
// index rather than omitting false entries.
func trueIndices(v grb.Vector[bool]) (map[int]bool, error) {
	idx, vals, err := extractBoolVectorTuples(v)
	if err != nil {
		return nil, err
	}
	members := make(map[int]bool, len(idx))
	for i, k := range idx {
		if vals[i] {
			members[k] = true
		}
	}
	return members, nil
}

func extractBoolVectorTuples(v grb.Vector[bool]) (idx []int, vals []bool, err error) {
	err = v.ExtractTuples(&idx, &vals)
	return
}
