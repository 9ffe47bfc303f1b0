package lagraph

import (
	"sort"

	grb "github.com/intel/forGraphBLASGo/GrB"
)

// misMaxRounds bounds Luby's loop; since each round either grows the
// independent set or shrinks the candidate set by at least one vertex, a
// graph of n vertices can never need more than n+1 rounds (LAGraph's
// LAGraph_MaximalIndependentSet.c instead detects stall by comparing
// candidate counts round to round, which this implementation also does).
const misMaxRounds = 1 << 20

// MaximalIndependentSet computes a maximal independent set of g's vertices
// (§4.J) using Luby's randomized algorithm, grounded on
// LAGraph_MaximalIndependentSet.c: each round draws a random priority for
// every remaining candidate, scaled by 1/degree as the source does, and
// admits any candidate whose priority exceeds every active neighbour's.
// Newly admitted vertices and their neighbours are then dropped from the
// candidate set. g.A must be the (structurally) symmetric adjacency of an
// undirected graph with no self-edges; singleton vertices are admitted
// immediately, matching the source's special-case handling.
func MaximalIndependentSet[T Element](g *Graph[T], seed uint64) (grb.Vector[bool], error) {
	if err := g.CheckGraph(); err != nil {
		return grb.Vector[bool]{}, err
	}
	n, err := g.N()
	if err != nil {
		return grb.Vector[bool]{}, err
	}

	degreeVec, err := rowDegrees(g.A)
	if err != nil {
		return grb.Vector[bool]{}, wrapEngine("MaximalIndependentSet", err)
	}
	defer degreeVec.Free()
	degIdx, degVals, err := extractVectorTuples(degreeVec)
	if err != nil {
		return grb.Vector[bool]{}, wrapEngine("MaximalIndependentSet", err)
	}
	degree := make([]float64, n)
	for i, v := range degIdx {
		degree[v] = float64(degVals[i])
	}

	iset := make([]bool, n)
	candidates := make(map[int]bool, n)
	for v := 0; v < n; v++ {
		if degree[v] == 0 {
			iset[v] = true
		} else {
			candidates[v] = true
		}
	}

	rng := NewRand(seed)
	maxFirst := maxFirstSemiring[float64]()
	symbolic := lorLandSemiringBool()

	for round := 0; len(candidates) > 0 && round < misMaxRounds; round++ {
		lastCount := len(candidates)
		candIdx := sortedKeys(candidates)

		probVals := make([]float64, len(candIdx))
		for i, v := range candIdx {
			probVals[i] = rng.Float64() / degree[v]
		}
		probVec, err := grb.VectorNew[float64](n)
		if err != nil {
			return grb.Vector[bool]{}, wrapEngine("MaximalIndependentSet", err)
		}
		if err := probVec.Build(candIdx, probVals, nil); err != nil {
			probVec.Free()
			return grb.Vector[bool]{}, wrapEngine("MaximalIndependentSet", err)
		}

		candMask, err := boolMaskVector(n, candIdx)
		if err != nil {
			probVec.Free()
			return grb.Vector[bool]{}, wrapEngine("MaximalIndependentSet", err)
		}

		neighborMax, err := grb.VectorNew[float64](n)
		if err != nil {
			probVec.Free()
			candMask.Free()
			return grb.Vector[bool]{}, wrapEngine("MaximalIndependentSet", err)
		}
		if err := grb.VxM(neighborMax, candMask.AsMask(), nil, maxFirst, probVec, grb.MatrixView[float64, T](g.A), nil); err != nil {
			probVec.Free()
			candMask.Free()
			neighborMax.Free()
			return grb.Vector[bool]{}, wrapEngine("MaximalIndependentSet", err)
		}
		probVec.Free()
		candMask.Free()

		nmIdx, nmVals, err := extractFloat64VectorTuples(neighborMax)
		neighborMax.Free()
		if err != nil {
			return grb.Vector[bool]{}, wrapEngine("MaximalIndependentSet", err)
		}
		neighborBest := make(map[int]float64, len(nmIdx))
		for i, v := range nmIdx {
			neighborBest[v] = nmVals[i]
		}

		var newMembers []int
		for i, v := range candIdx {
			if best, ok := neighborBest[v]; !ok || probVals[i] > best {
				newMembers = append(newMembers, v)
			}
		}
		for _, v := range newMembers {
			iset[v] = true
			delete(candidates, v)
		}
		if len(candidates) == 0 {
			break
		}

		remainingMask, err := boolMaskVector(n, sortedKeys(candidates))
		if err != nil {
			return grb.Vector[bool]{}, wrapEngine("MaximalIndependentSet", err)
		}
		memberVec, err := boolMaskVector(n, newMembers)
		if err != nil {
			remainingMask.Free()
			return grb.Vector[bool]{}, wrapEngine("MaximalIndependentSet", err)
		}
		newNeighbors, err := grb.VectorNew[bool](n)
		if err != nil {
			remainingMask.Free()
			memberVec.Free()
			return grb.Vector[bool]{}, wrapEngine("MaximalIndependentSet", err)
		}
		if err := grb.VxM(newNeighbors, remainingMask.AsMask(), nil, symbolic, memberVec, grb.MatrixView[bool, T](g.A), nil); err != nil {
			remainingMask.Free()
			memberVec.Free()
			newNeighbors.Free()
			return grb.Vector[bool]{}, wrapEngine("MaximalIndependentSet", err)
		}
		remainingMask.Free()
		memberVec.Free()

		nnIdx, err := extractBoolVectorIndices(newNeighbors)
		newNeighbors.Free()
		if err != nil {
			return grb.Vector[bool]{}, wrapEngine("MaximalIndependentSet", err)
		}
		for _, v := range nnIdx {
			delete(candidates, v)
		}

		if len(candidates) == lastCount {
			return grb.Vector[bool]{}, newError(Convergence, "MaximalIndependentSet", "candidate set did not shrink")
		}
	}

	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	isetVec, err := grb.VectorNew[bool](n)
	if err != nil {
		return grb.Vector[bool]{}, wrapEngine("MaximalIndependentSet", err)
	}
	if err := isetVec.Build(idx, iset, nil); err != nil {
		isetVec.Free()
		return grb.Vector[bool]{}, wrapEngine("MaximalIndependentSet", err)
	}
	return isetVec, nil
}

// sortedKeys returns the keys of a set map in ascending order, giving
// MIS's per-round candidate scan a deterministic iteration order.
func sortedKeys(set map[int]bool) []int {
	keys := make([]int, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}

// boolMaskVector builds a length-n boolean vector with true at exactly the
// given indices, used throughout MIS and maximal matching (§4.K) wherever
// the source uses a structural mask vector.
func boolMaskVector(n int, idx []int) (grb.Vector[bool], error) {
	vals := make([]bool, len(idx))
	for i := range vals {
		vals[i] = true
	}
	v, err := grb.VectorNew[bool](n)
	if err != nil {
		return grb.Vector[bool]{}, err
	}
	if err := v.Build(idx, vals, nil); err != nil {
		v.Free()
		return grb.Vector[bool]{}, err
	}
	return v, nil
}

func extractFloat64VectorTuples(v grb.Vector[float64]) (idx []int, vals []float64, err error) {
	err = v.ExtractTuples(&idx, &vals)
	return
}

func extractBoolVectorIndices(v grb.Vector[bool]) ([]int, error) {
	var idx []int
	var vals []bool
	if err := v.ExtractTuples(&idx, &vals); err != nil {
		return nil, err
	}
	return idx, nil
}
