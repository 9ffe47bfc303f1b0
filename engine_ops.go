package lagraph

import (
	grb "github.com/intel/forGraphBLASGo/GrB"
)

// onesVector builds a dense vector of n ones, used as the right-hand side
// of the (+, pair) matrix-vector multiplies of §4.C's degree computation.
func onesVector[T Integer](n int) (grb.Vector[T], error) {
	v, err := grb.VectorNew[T](n)
	if err != nil {
		return grb.Vector[T]{}, err
	}
	idx := make([]int, n)
	vals := make([]T, n)
	for i := 0; i < n; i++ {
		idx[i] = i
		vals[i] = T(1)
	}
	if err := v.Build(idx, vals, nil); err != nil {
		return grb.Vector[T]{}, err
	}
	return v, nil
}

// rowDegrees returns, for each row i of a, the number of explicit entries
// (§4.C: out_degree). It is computed as a *_(+,pair) ones rather than by
// extracting and counting tuples row by row, so the engine's own
// parallel mxv kernel does the work.
func rowDegrees[T Element](a grb.Matrix[T]) (grb.Vector[int64], error) {
	n, err := a.NRows()
	if err != nil {
		return grb.Vector[int64]{}, err
	}
	ones, err := onesVector[int64](n)
	if err != nil {
		return grb.Vector[int64]{}, err
	}
	defer ones.Free()
	degree, err := grb.VectorNew[int64](n)
	if err != nil {
		return grb.Vector[int64]{}, err
	}
	op := plusPairSemiring[int64, T, int64]()
	if err := grb.MxV(degree, nil, nil, op, grb.MatrixView[T, T](a), ones, nil); err != nil {
		degree.Free()
		return grb.Vector[int64]{}, err
	}
	return degree, nil
}

// colDegrees returns the number of explicit entries in each column of a
// (§4.C: in_degree), computed as ones^T *_(+,pair) a.
func colDegrees[T Element](a grb.Matrix[T]) (grb.Vector[int64], error) {
	_, m, err := a.Size()
	if err != nil {
		return grb.Vector[int64]{}, err
	}
	n, err := a.NRows()
	if err != nil {
		return grb.Vector[int64]{}, err
	}
	ones, err := onesVector[int64](n)
	if err != nil {
		return grb.Vector[int64]{}, err
	}
	defer ones.Free()
	degree, err := grb.VectorNew[int64](m)
	if err != nil {
		return grb.Vector[int64]{}, err
	}
	op := plusPairSemiring[int64, int64, T]()
	if err := grb.VxM(degree, nil, nil, op, ones, grb.MatrixView[T, T](a), nil); err != nil {
		degree.Free()
		return grb.Vector[int64]{}, err
	}
	return degree, nil
}

// structuralEqual reports whether two matrices have the same sparsity
// structure (the same set of (row, col) coordinates), used by
// compute_IsSymmetricStructure (§4.C).
func structuralEqual[T Element](a, b grb.Matrix[T]) (bool, error) {
	na, err := a.NVals()
	if err != nil {
		return false, err
	}
	nb, err := b.NVals()
	if err != nil {
		return false, err
	}
	if na != nb {
		return false, nil
	}
	ar, ac, _, err := extractTuples(a)
	if err != nil {
		return false, err
	}
	br, bc, _, err := extractTuples(b)
	if err != nil {
		return false, err
	}
	keyed := make(map[[2]int]bool, len(ar))
	for i := range ar {
		keyed[[2]int{ar[i], ac[i]}] = true
	}
	for i := range br {
		if !keyed[[2]int{br[i], bc[i]}] {
			return false, nil
		}
	}
	return true, nil
}

// extractTuples is a thin wrapper around the engine's triple extraction,
// used wherever an algorithm needs to walk a matrix's explicit entries in
// Go rather than through a semiring (CDLP's sort-based tie break, §4.I).
func extractTuples[T Element](a grb.Matrix[T]) (rows, cols []int, vals []T, err error) {
	err = a.ExtractTuples(&rows, &cols, &vals)
	return
}
