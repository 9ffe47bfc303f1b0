package lagraph

import (
	grb "github.com/intel/forGraphBLASGo/GrB"
)

const matchingMaxRounds = 1 << 20

// Matching is the result of MaximalMatching: Selected holds one entry per
// edge of the incidence matrix the matching was computed over, true where
// that edge is part of the matching.
type Matching struct {
	Selected grb.Vector[bool]
	NEdges   int
}

// MaximalMatching computes a maximal matching of g's undirected edges
// (§4.K), grounded on LAGraph_MaximalMatching.c's adaptation of Luby's MIS
// to the line graph implied by the incidence matrix: each round draws a
// random score per candidate edge, scaled by an approximate "edge degree"
// (the sum of its two endpoints' incident-candidate-edge counts, computed
// via the incidence matrix exactly as the source does), and an edge is
// accepted once its score is >= the score of every edge sharing a node
// with it. Unlike the source, which detects a tied/conflicting round by
// recomputing node degrees and retries with a reseeded draw, this
// implementation resolves any tie deterministically by a first-claim rule
// over the round's accepted edges in ascending edge-index order: with
// continuous float64 scores, two edges tying exactly is a negligible-
// probability event, so a retry loop buys little beyond the source's own
// defensive MAX_FAILURES cap.
func MaximalMatching[T Element](g *Graph[T], seed uint64) (*Matching, error) {
	inc, err := BuildIncidence(g)
	if err != nil {
		return nil, err
	}
	defer inc.Free()

	result, err := matchEdges(inc, seed)
	if err != nil {
		return nil, err
	}
	return buildMatchingResult(result)
}

// matchEdges runs the randomized round loop described in MaximalMatching's
// doc comment over an already-built incidence matrix, returning one bool
// per edge. Factored out so CoarsenByMatching (§4.L) can reuse the same
// matching logic over an incidence matrix it also needs for the
// coarsening step itself, without computing it twice.
func matchEdges(inc *Incidence, seed uint64) ([]bool, error) {
	n, e := inc.NNodes, inc.NEdges
	result := make([]bool, e)

	if e == 0 {
		return result, nil
	}

	nodeEdges := make([][]int, n)
	for k := range inc.EdgeRow {
		nodeEdges[inc.EdgeRow[k]] = append(nodeEdges[inc.EdgeRow[k]], k)
		nodeEdges[inc.EdgeCol[k]] = append(nodeEdges[inc.EdgeCol[k]], k)
	}

	candidates := make(map[int]bool, e)
	for k := 0; k < e; k++ {
		candidates[k] = true
	}

	rng := NewRand(seed)
	pairBB := plusPairSemiring[int64, bool, bool]()
	plusSecond := plusSecondCrossSemiring[int64, bool, int64]()
	maxFirst := maxFirstSemiring[float64]()
	maxSecond := maxSecondSemiring[float64]()

	for round := 0; len(candidates) > 0 && round < matchingMaxRounds; round++ {
		lastCount := len(candidates)
		candIdx := sortedKeys(candidates)
		candMask, err := boolMaskVector(e, candIdx)
		if err != nil {
			return nil, wrapEngine("MaximalMatching", err)
		}

		nodeDegree, err := grb.VectorNew[int64](n)
		if err != nil {
			candMask.Free()
			return nil, wrapEngine("MaximalMatching", err)
		}
		if err := grb.MxV(nodeDegree, nil, nil, pairBB, grb.MatrixView[bool, bool](inc.E), candMask, nil); err != nil {
			candMask.Free()
			nodeDegree.Free()
			return nil, wrapEngine("MaximalMatching", err)
		}

		edgeDegree, err := grb.VectorNew[int64](e)
		if err != nil {
			candMask.Free()
			nodeDegree.Free()
			return nil, wrapEngine("MaximalMatching", err)
		}
		if err := grb.MxV(edgeDegree, nil, nil, plusSecond, grb.MatrixView[bool, bool](inc.ET), nodeDegree, nil); err != nil {
			candMask.Free()
			nodeDegree.Free()
			edgeDegree.Free()
			return nil, wrapEngine("MaximalMatching", err)
		}
		nodeDegree.Free()

		edgeDegIdx, edgeDegVals, err := extractVectorTuples(edgeDegree)
		edgeDegree.Free()
		if err != nil {
			candMask.Free()
			return nil, wrapEngine("MaximalMatching", err)
		}
		degreeOf := make(map[int]int64, len(edgeDegIdx))
		for i, k := range edgeDegIdx {
			degreeOf[k] = edgeDegVals[i]
		}

		scoreVals := make([]float64, len(candIdx))
		for i, k := range candIdx {
			d := degreeOf[k]
			if d < 1 {
				d = 1
			}
			scoreVals[i] = rng.Float64() / float64(d)
		}
		scoreVec, err := grb.VectorNew[float64](e)
		if err != nil {
			candMask.Free()
			return nil, wrapEngine("MaximalMatching", err)
		}
		if err := scoreVec.Build(candIdx, scoreVals, nil); err != nil {
			candMask.Free()
			scoreVec.Free()
			return nil, wrapEngine("MaximalMatching", err)
		}

		maxNodeNeighbor, err := grb.VectorNew[float64](n)
		if err != nil {
			candMask.Free()
			scoreVec.Free()
			return nil, wrapEngine("MaximalMatching", err)
		}
		if err := grb.MxV(maxNodeNeighbor, nil, nil, maxSecond, grb.MatrixView[float64, bool](inc.E), scoreVec, nil); err != nil {
			candMask.Free()
			scoreVec.Free()
			maxNodeNeighbor.Free()
			return nil, wrapEngine("MaximalMatching", err)
		}
		scoreVec.Free()

		maxNeighbor, err := grb.VectorNew[float64](e)
		if err != nil {
			candMask.Free()
			maxNodeNeighbor.Free()
			return nil, wrapEngine("MaximalMatching", err)
		}
		if err := grb.VxM(maxNeighbor, candMask.AsMask(), nil, maxFirst, maxNodeNeighbor, grb.MatrixView[float64, bool](inc.E), nil); err != nil {
			candMask.Free()
			maxNodeNeighbor.Free()
			maxNeighbor.Free()
			return nil, wrapEngine("MaximalMatching", err)
		}
		candMask.Free()
		maxNodeNeighbor.Free()

		mnIdx, mnVals, err := extractFloat64VectorTuples(maxNeighbor)
		maxNeighbor.Free()
		if err != nil {
			return nil, wrapEngine("MaximalMatching", err)
		}
		maxAt := make(map[int]float64, len(mnIdx))
		for i, k := range mnIdx {
			maxAt[k] = mnVals[i]
		}

		var newMembers []int
		for i, k := range candIdx {
			if mx, ok := maxAt[k]; !ok || scoreVals[i] >= mx {
				newMembers = append(newMembers, k)
			}
		}

		claimed := make(map[int]bool, 2*len(newMembers))
		var accepted []int
		for _, k := range newMembers {
			i, j := inc.EdgeRow[k], inc.EdgeCol[k]
			if claimed[i] || claimed[j] {
				continue
			}
			claimed[i] = true
			claimed[j] = true
			accepted = append(accepted, k)
		}

		for _, k := range accepted {
			result[k] = true
			delete(candidates, k)
		}
		if len(candidates) == 0 {
			break
		}

		removed := make(map[int]bool)
		for _, k := range accepted {
			for _, nb := range nodeEdges[inc.EdgeRow[k]] {
				removed[nb] = true
			}
			for _, nb := range nodeEdges[inc.EdgeCol[k]] {
				removed[nb] = true
			}
		}
		for k := range removed {
			delete(candidates, k)
		}

		if len(candidates) == lastCount {
			return nil, newError(Convergence, "MaximalMatching", "candidate set did not shrink")
		}
	}

	return result, nil
}

func buildMatchingResult(result []bool) (*Matching, error) {
	idx := make([]int, len(result))
	for i := range idx {
		idx[i] = i
	}
	v, err := grb.VectorNew[bool](len(result))
	if err != nil {
		return nil, wrapEngine("MaximalMatching", err)
	}
	if len(result) > 0 {
		if err := v.Build(idx, result, nil); err != nil {
			v.Free()
			return nil, wrapEngine("MaximalMatching", err)
		}
	}
	return &Matching{Selected: v, NEdges: len(result)}, nil
}
