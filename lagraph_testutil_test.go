package lagraph

import (
	"os"
	"testing"

	grb "github.com/intel/forGraphBLASGo/GrB"
	"github.com/stretchr/testify/require"
)

// TestMain brings up the shared engine handle once for the whole package,
// so every test runs against a live engine context.
func TestMain(m *testing.M) {
	if err := Init(1, 1); err != nil {
		panic(err)
	}
	code := m.Run()
	_ = Finalize()
	os.Exit(code)
}

// buildGraph constructs a Graph[T] over n vertices from a list of
// (row, col, weight) triples, each one an explicit entry of A; undirected
// callers pass both directions of every edge (see undirectedEdges).
func buildGraph[T Element](t *testing.T, n int, rows, cols []int, vals []T, kind Kind) *Graph[T] {
	t.Helper()
	a, err := grb.MatrixNew[T](n, n)
	require.NoError(t, err)
	if len(rows) > 0 {
		require.NoError(t, a.Build(rows, cols, vals, nil))
	}
	g, err := New(a, kind)
	require.NoError(t, err)
	return g
}

// undirectedEdges mirrors each (i, j) edge as (j, i) too, the shape every
// algorithm in this module that assumes symmetric reachability (§3) expects
// its adjacency matrix to already have.
func undirectedEdges[T Element](rows, cols []int, vals []T) ([]int, []int, []T) {
	n := len(rows)
	r := make([]int, 0, 2*n)
	c := make([]int, 0, 2*n)
	v := make([]T, 0, 2*n)
	for i := 0; i < n; i++ {
		r = append(r, rows[i], cols[i])
		c = append(c, cols[i], rows[i])
		v = append(v, vals[i], vals[i])
	}
	return r, c, v
}
