package lagraph

import (
	"math"

	grb "github.com/intel/forGraphBLASGo/GrB"
)

// HITS computes hub and authority scores by power iteration (§4.M),
// grounded on LAGr_HITS: starting from all-ones vectors, each round sets
// authorities = A^T . hubs and hubs = A . authorities under the
// (+, second) semiring (ignoring edge weights, as the source's
// LAGraph_plus_second does structurally), then normalizes each vector to
// sum to 1. Iteration stops once half the total L1 change in both vectors
// between rounds falls to tol or below, or itermax rounds elapse,
// matching the source's rdiff convergence check. Unlike the source's
// in-place GrB_assign/GrB_apply/GrB_reduce pipeline for the diff and
// normalization steps, this implementation extracts each round's dense
// result into Go slices and does that bookkeeping directly, the same
// style already used by ConnectedComponents (§4.E) and CDLP (§4.I).
func HITS[T Element](g *Graph[T], tol float64, itermax int) (hubs, authorities grb.Vector[float64], iters int, err error) {
	if err := g.CheckGraph(); err != nil {
		return grb.Vector[float64]{}, grb.Vector[float64]{}, 0, err
	}
	n, err := g.N()
	if err != nil {
		return grb.Vector[float64]{}, grb.Vector[float64]{}, 0, err
	}
	if err := g.ComputeAT(); err != nil {
		return grb.Vector[float64]{}, grb.Vector[float64]{}, 0, err
	}
	// ComputeAT leaves AT unset on an Undirected graph, whose A is its own
	// transpose.
	at := g.A
	if g.Kind != Undirected {
		at = g.AT
	}

	idx := make([]int, n)
	hVals := make([]float64, n)
	aVals := make([]float64, n)
	for i := range idx {
		idx[i] = i
		hVals[i] = 1
		aVals[i] = 1
	}

	op := plusSecondCrossSemiring[float64, T, float64]()
	rdiff := math.Inf(1)

	for iters = 0; iters < itermax && rdiff > tol; iters++ {
		hVec, err := grb.VectorNew[float64](n)
		if err != nil {
			return grb.Vector[float64]{}, grb.Vector[float64]{}, iters, wrapEngine("HITS", err)
		}
		if err := hVec.Build(idx, hVals, nil); err != nil {
			hVec.Free()
			return grb.Vector[float64]{}, grb.Vector[float64]{}, iters, wrapEngine("HITS", err)
		}
		aVec, err := grb.VectorNew[float64](n)
		if err != nil {
			hVec.Free()
			return grb.Vector[float64]{}, grb.Vector[float64]{}, iters, wrapEngine("HITS", err)
		}
		if err := aVec.Build(idx, aVals, nil); err != nil {
			hVec.Free()
			aVec.Free()
			return grb.Vector[float64]{}, grb.Vector[float64]{}, iters, wrapEngine("HITS", err)
		}

		newA, err := grb.VectorNew[float64](n)
		if err != nil {
			hVec.Free()
			aVec.Free()
			return grb.Vector[float64]{}, grb.Vector[float64]{}, iters, wrapEngine("HITS", err)
		}
		if err := grb.MxV(newA, nil, nil, op, grb.MatrixView[float64, T](at), hVec, nil); err != nil {
			hVec.Free()
			aVec.Free()
			newA.Free()
			return grb.Vector[float64]{}, grb.Vector[float64]{}, iters, wrapEngine("HITS", err)
		}

		newH, err := grb.VectorNew[float64](n)
		if err != nil {
			hVec.Free()
			aVec.Free()
			newA.Free()
			return grb.Vector[float64]{}, grb.Vector[float64]{}, iters, wrapEngine("HITS", err)
		}
		if err := grb.MxV(newH, nil, nil, op, grb.MatrixView[float64, T](g.A), aVec, nil); err != nil {
			hVec.Free()
			aVec.Free()
			newA.Free()
			newH.Free()
			return grb.Vector[float64]{}, grb.Vector[float64]{}, iters, wrapEngine("HITS", err)
		}
		hVec.Free()
		aVec.Free()

		newAIdx, newAOut, err := extractFloat64VectorTuples(newA)
		newA.Free()
		if err != nil {
			newH.Free()
			return grb.Vector[float64]{}, grb.Vector[float64]{}, iters, wrapEngine("HITS", err)
		}
		newHIdx, newHOut, err := extractFloat64VectorTuples(newH)
		newH.Free()
		if err != nil {
			return grb.Vector[float64]{}, grb.Vector[float64]{}, iters, wrapEngine("HITS", err)
		}

		aNext := make([]float64, n)
		for i, v := range newAIdx {
			aNext[v] = newAOut[i]
		}
		hNext := make([]float64, n)
		for i, v := range newHIdx {
			hNext[v] = newHOut[i]
		}

		normalize(aNext)
		normalize(hNext)

		diff := 0.0
		for i := range aNext {
			diff += math.Abs(aNext[i] - aVals[i])
		}
		for i := range hNext {
			diff += math.Abs(hNext[i] - hVals[i])
		}
		rdiff = diff / 2

		aVals, hVals = aNext, hNext
	}

	hubs, err = grb.VectorNew[float64](n)
	if err != nil {
		return grb.Vector[float64]{}, grb.Vector[float64]{}, iters, wrapEngine("HITS", err)
	}
	if err := hubs.Build(idx, hVals, nil); err != nil {
		hubs.Free()
		return grb.Vector[float64]{}, grb.Vector[float64]{}, iters, wrapEngine("HITS", err)
	}
	authorities, err = grb.VectorNew[float64](n)
	if err != nil {
		hubs.Free()
		return grb.Vector[float64]{}, grb.Vector[float64]{}, iters, wrapEngine("HITS", err)
	}
	if err := authorities.Build(idx, aVals, nil); err != nil {
		hubs.Free()
		authorities.Free()
		return grb.Vector[float64]{}, grb.Vector[float64]{}, iters, wrapEngine("HITS", err)
	}
	return hubs, authorities, iters, nil
}

// normalize scales v in place so its elements sum to 1, a no-op if the
// sum is zero (an empty or edgeless graph's score vectors).
func normalize(v []float64) {
	sum := 0.0
	for _, x := range v {
		sum += x
	}
	if sum == 0 {
		return
	}
	for i := range v {
		v[i] /= sum
	}
}
