package lagraph

import (
	grb "github.com/intel/forGraphBLASGo/GrB"
)

// CoarsenResult is one coarsening step's output (§4.L), grounded on
// LAGraph_Coarsen_Matching.c: Parent[u] names the representative vertex
// (in the ORIGINAL vertex numbering) that u collapses into. When
// PreserveMapping is false the coarsened graph's vertices are relabeled
// to a dense 0..n'-1 range; NewLabel and InvNewLabel then record that
// relabeling (NewLabel[old] -> new, only present for surviving
// representatives; InvNewLabel[new] -> old for every coarsened vertex).
// When PreserveMapping is true, the coarsened graph keeps the original
// n vertices (non-representatives become isolated), and NewLabel/
// InvNewLabel are left nil, matching the source's documented behaviour.
type CoarsenResult[T Element] struct {
	Graph           *Graph[T]
	Parent          []int64
	PreserveMapping bool
	NewLabel        map[int]int
	InvNewLabel     []int
}

// CoarsenByMatching performs one coarsening step of g (§4.L): it computes
// a maximal matching (§4.K), collapses each matched edge's two endpoints
// into a single representative (the smaller-numbered endpoint), and
// builds the resulting multigraph's simple-graph reduction, optionally
// summing the weights of edges that merge (sumWeights) and optionally
// compacting the surviving vertices to a dense range (!preserveMapping).
func CoarsenByMatching[T Element](g *Graph[T], seed uint64, preserveMapping, sumWeights bool) (*CoarsenResult[T], error) {
	if err := g.CheckGraph(); err != nil {
		return nil, err
	}
	n, err := g.N()
	if err != nil {
		return nil, err
	}

	inc, err := BuildIncidence(g)
	if err != nil {
		return nil, err
	}
	defer inc.Free()

	matched, err := matchEdges(inc, seed)
	if err != nil {
		return nil, err
	}

	parent := make([]int64, n)
	for i := range parent {
		parent[i] = int64(i)
	}
	for k, sel := range matched {
		if !sel {
			continue
		}
		i, j := inc.EdgeRow[k], inc.EdgeCol[k]
		rep := i
		if j < rep {
			rep = j
		}
		parent[i] = int64(rep)
		parent[j] = int64(rep)
	}

	result := &CoarsenResult[T]{Parent: parent, PreserveMapping: preserveMapping}

	var newLabel map[int]int
	var invNewLabel []int
	if !preserveMapping {
		newLabel = make(map[int]int)
		for u := 0; u < n; u++ {
			if int(parent[u]) == u {
				newLabel[u] = len(invNewLabel)
				invNewLabel = append(invNewLabel, u)
			}
		}
		result.NewLabel = newLabel
		result.InvNewLabel = invNewLabel
	}

	labelOf := func(u int) int {
		rep := int(parent[u])
		if preserveMapping {
			return rep
		}
		return newLabel[rep]
	}
	newN := n
	if !preserveMapping {
		newN = len(invNewLabel)
	}

	rows, cols, vals, err := extractTuples(g.A)
	if err != nil {
		return nil, wrapEngine("CoarsenByMatching", err)
	}

	type edgeKey struct{ i, j int }
	merged := make(map[edgeKey]T)
	for k := range rows {
		ni, nj := labelOf(rows[k]), labelOf(cols[k])
		if ni == nj {
			continue
		}
		key := edgeKey{ni, nj}
		if sumWeights {
			merged[key] += vals[k]
		} else {
			merged[key] = vals[k]
		}
	}

	newRows := make([]int, 0, len(merged))
	newCols := make([]int, 0, len(merged))
	newVals := make([]T, 0, len(merged))
	for key, v := range merged {
		newRows = append(newRows, key.i)
		newCols = append(newCols, key.j)
		newVals = append(newVals, v)
	}

	a, err := grb.MatrixNew[T](newN, newN)
	if err != nil {
		return nil, wrapEngine("CoarsenByMatching", err)
	}
	if len(newRows) > 0 {
		if err := a.Build(newRows, newCols, newVals, nil); err != nil {
			a.Free()
			return nil, wrapEngine("CoarsenByMatching", err)
		}
	}
	coarsened, err := New(a, g.Kind)
	if err != nil {
		a.Free()
		return nil, err
	}
	result.Graph = coarsened
	return result, nil
}
