package lagraph

import (
	grb "github.com/intel/forGraphBLASGo/GrB"
)

// ccMaxIterations bounds the label-propagation loop below; a connected
// component of n vertices never needs more than n-1 rounds to converge, so
// this is a defensive cap against a malformed graph rather than a tuning
// knob, mirroring LAGraph_cc_boruvka.c's own iteration cap.
const ccMaxIterations = 1 << 20

// ConnectedComponents computes a component-id vector for g (§4.E): f[i]
// holds the smallest vertex id reachable from i along undirected edges (A
// is treated as symmetric; callers with a directed graph should symmetrize
// first, since this module assumes undirected reachability per §3).
//
// Grounded on LAGraph_cc_boruvka.c's FastSV loop, each round does all four
// of its steps: (i) hook, f[u] = min(f[u], f[v]) over every edge (u,v), via
// an unmasked min-second MxV; (ii) grandparent lookup, gp[u] = f[f[u]]; (iii)
// parent <- min(gp, parent); (iv) path compression by one step, f[u] <-
// parent[u]. Steps (ii)-(iv) are a data-dependent gather with no grounded
// engine primitive in this module's bound surface, so they run over the
// plain Go slice the hook step's result is already extracted into for the
// round's convergence check, the same extract-then-bookkeep style CDLP
// (§4.I) and HITS (§4.M) use for their own per-round updates.
func ConnectedComponents[T Element](g *Graph[T]) (grb.Vector[int64], error) {
	if err := g.CheckGraph(); err != nil {
		return grb.Vector[int64]{}, err
	}
	n, err := g.N()
	if err != nil {
		return grb.Vector[int64]{}, err
	}

	f, err := grb.VectorNew[int64](n)
	if err != nil {
		return grb.Vector[int64]{}, wrapEngine("ConnectedComponents", err)
	}
	idx := make([]int, n)
	vals := make([]int64, n)
	for i := 0; i < n; i++ {
		idx[i] = i
		vals[i] = int64(i)
	}
	if err := f.Build(idx, vals, nil); err != nil {
		f.Free()
		return grb.Vector[int64]{}, wrapEngine("ConnectedComponents", err)
	}

	op := minSecondCrossSemiring[int64, T, int64]()
	minOp := grb.Min[int64]()

	for iter := 0; iter < ccMaxIterations; iter++ {
		mnp, err := grb.VectorNew[int64](n)
		if err != nil {
			f.Free()
			return grb.Vector[int64]{}, wrapEngine("ConnectedComponents", err)
		}
		if err := grb.MxV(mnp, nil, nil, op, grb.MatrixView[T, T](g.A), f, nil); err != nil {
			mnp.Free()
			f.Free()
			return grb.Vector[int64]{}, wrapEngine("ConnectedComponents", err)
		}

		hooked, err := grb.VectorNew[int64](n)
		if err != nil {
			mnp.Free()
			f.Free()
			return grb.Vector[int64]{}, wrapEngine("ConnectedComponents", err)
		}
		if err := grb.VectorEWiseAddBinaryOp(hooked, nil, nil, minOp, f, mnp, nil); err != nil {
			hooked.Free()
			mnp.Free()
			f.Free()
			return grb.Vector[int64]{}, wrapEngine("ConnectedComponents", err)
		}
		mnp.Free()

		parent := make([]int64, n)
		for i := range parent {
			parent[i] = int64(i)
		}
		hIdx, hVals, err := extractVectorTuples(hooked)
		hooked.Free()
		if err != nil {
			f.Free()
			return grb.Vector[int64]{}, wrapEngine("ConnectedComponents", err)
		}
		for i, v := range hIdx {
			parent[v] = hVals[i]
		}

		// grandparent jump: gp[u] = parent[parent[u]], then parent <-
		// min(gp, parent), then compress f one step towards gp.
		gp := make([]int64, n)
		for u := 0; u < n; u++ {
			gp[u] = parent[int(parent[u])]
			if gp[u] < parent[u] {
				parent[u] = gp[u]
			}
		}

		next, err := grb.VectorNew[int64](n)
		if err != nil {
			f.Free()
			return grb.Vector[int64]{}, wrapEngine("ConnectedComponents", err)
		}
		nextIdx := make([]int, n)
		for i := range nextIdx {
			nextIdx[i] = i
		}
		if err := next.Build(nextIdx, parent, nil); err != nil {
			next.Free()
			f.Free()
			return grb.Vector[int64]{}, wrapEngine("ConnectedComponents", err)
		}

		changed, err := vectorsDiffer(f, next)
		if err != nil {
			next.Free()
			f.Free()
			return grb.Vector[int64]{}, err
		}
		f.Free()
		f = next
		if !changed {
			break
		}
	}

	return f, nil
}

// vectorsDiffer reports whether a and b, both of length n with every index
// explicit, hold different values anywhere.
func vectorsDiffer(a, b grb.Vector[int64]) (bool, error) {
	var aidx, bidx []int
	var av, bv []int64
	if err := a.ExtractTuples(&aidx, &av); err != nil {
		return false, wrapEngine("ConnectedComponents", err)
	}
	if err := b.ExtractTuples(&bidx, &bv); err != nil {
		return false, wrapEngine("ConnectedComponents", err)
	}
	if len(av) != len(bv) {
		return true, nil
	}
	for i := range av {
		if av[i] != bv[i] {
			return true, nil
		}
	}
	return false, nil
}
