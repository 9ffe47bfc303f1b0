package lagraph

import (
	grb "github.com/intel/forGraphBLASGo/GrB"
)

// ssspMaxRounds is a safety cap on the bucket-processing loop (§4.H). Each
// round takes one bucket off the queue, and a vertex goes back into a
// bucket only when its distance drops, so the loop ends on its own; the
// cap only bounds it defensively.
const ssspMaxRounds = 1 << 20

// SSSP computes single-source shortest path distances from source over
// g's non-negative integer edge weights (§4.H), using a delta-stepping
// schedule: vertices are grouped into buckets by floor(dist/delta), and
// each round relaxes every edge out of the lowest non-empty bucket's
// vertices via an unmasked (min, +) vector-matrix multiply. This module
// simplifies classical delta-stepping's two-phase inner loop (repeatedly
// relax only "light" edges, weight <= delta, until the current bucket
// stops changing, then relax "heavy" edges once) into one kind of relax
// pass that does not distinguish light from heavy edges: the pack exposes
// no primitive to restrict a multiply's right-hand matrix to edges below a
// weight threshold without materializing a second filtered copy of A per
// round. A vertex whose distance drops, including one already relaxed, is
// put back into the bucket of its new distance and relaxed again, so a
// bucket is re-run until it stops changing and the distances are exact.
func SSSP[T Integer](g *Graph[T], source int, delta T) (grb.Vector[T], error) {
	if err := g.CheckGraph(); err != nil {
		return grb.Vector[T]{}, err
	}
	n, err := g.N()
	if err != nil {
		return grb.Vector[T]{}, err
	}
	if source < 0 || source >= n {
		return grb.Vector[T]{}, newError(InvalidIndex, "SSSP", "source %d out of range for n=%d", source, n)
	}
	if delta <= 0 {
		return grb.Vector[T]{}, newError(InvalidValue, "SSSP", "delta must be positive")
	}

	op := minPlusSemiring[T]()

	settled := make([]bool, n)
	distVals := map[int]T{source: 0}
	buckets := map[int64][]int{0: {source}}

	for round := 0; len(buckets) > 0 && round < ssspMaxRounds; round++ {
		bi, ok := minBucketKey(buckets)
		if !ok {
			break
		}
		frontier := buckets[bi]
		delete(buckets, bi)

		var active []int
		for _, v := range frontier {
			if !settled[v] {
				active = append(active, v)
				settled[v] = true
			}
		}
		if len(active) == 0 {
			continue
		}

		fVals := make([]T, len(active))
		for i, v := range active {
			fVals[i] = distVals[v]
		}
		fVec, err := grb.VectorNew[T](n)
		if err != nil {
			return grb.Vector[T]{}, wrapEngine("SSSP", err)
		}
		if err := fVec.Build(active, fVals, nil); err != nil {
			fVec.Free()
			return grb.Vector[T]{}, wrapEngine("SSSP", err)
		}

		cand, err := grb.VectorNew[T](n)
		if err != nil {
			fVec.Free()
			return grb.Vector[T]{}, wrapEngine("SSSP", err)
		}
		if err := grb.VxM(cand, nil, nil, op, fVec, grb.MatrixView[T, T](g.A), nil); err != nil {
			fVec.Free()
			cand.Free()
			return grb.Vector[T]{}, wrapEngine("SSSP", err)
		}
		fVec.Free()

		cIdx, cVals, err := extractGenericVectorTuples(cand)
		cand.Free()
		if err != nil {
			return grb.Vector[T]{}, wrapEngine("SSSP", err)
		}

		for i, v := range cIdx {
			newDist := cVals[i]
			if old, has := distVals[v]; !has || newDist < old {
				distVals[v] = newDist
				settled[v] = false
				bucketIdx := int64(newDist) / int64(delta)
				buckets[bucketIdx] = append(buckets[bucketIdx], v)
			}
		}
	}

	idx := make([]int, 0, len(distVals))
	vals := make([]T, 0, len(distVals))
	for v, d := range distVals {
		idx = append(idx, v)
		vals = append(vals, d)
	}
	result, err := grb.VectorNew[T](n)
	if err != nil {
		return grb.Vector[T]{}, wrapEngine("SSSP", err)
	}
	if len(idx) > 0 {
		if err := result.Build(idx, vals, nil); err != nil {
			result.Free()
			return grb.Vector[T]{}, wrapEngine("SSSP", err)
		}
	}
	return result, nil
}

// minBucketKey returns the smallest key present in buckets, used each
// round to pick delta-stepping's next bucket to process.
func minBucketKey(buckets map[int64][]int) (int64, bool) {
	first := true
	var best int64
	for k := range buckets {
		if first || k < best {
			best = k
			first = false
		}
	}
	return best, !first
}

func extractGenericVectorTuples[T Element](v grb.Vector[T]) (idx []int, vals []T, err error) {
	err = v.ExtractTuples(&idx, &vals)
	return
}
