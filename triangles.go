package lagraph

import (
	grb "github.com/intel/forGraphBLASGo/GrB"
)

// TriangleMethod selects one of §4.F's six triangle-counting kernels. All
// six compute the same count; they differ in which triangular half of A
// they operate on and which side of the masked multiply carries the
// transpose, which is what makes them perform differently depending on a
// graph's degree distribution (§4.F, §9).
type TriangleMethod int

const (
	// Burkhardt counts via L +.pair U masked by L, where L, U are the
	// strict lower/upper triangles of A.
	Burkhardt TriangleMethod = iota
	// Cohen counts via L +.pair L^T masked by U.
	Cohen
	// SandiaLL counts via L +.pair L masked by L (lower only, no transpose).
	SandiaLL
	// SandiaUU counts via U +.pair U masked by U (upper only, no transpose).
	SandiaUU
	// SandiaDot counts via the dot-product form U^T +.pair U masked by U.
	SandiaDot
	// SandiaDotLL is SandiaDot's lower-triangular mirror: L^T +.pair L
	// masked by L.
	SandiaDotLL
)

// TriangleCount counts the triangles of g's undirected adjacency (§4.F). An
// optional presort (§9, §4.O's degree sampler) may be applied first by the
// caller via SortByDegree; this function assumes g.A already has whatever
// ordering the caller wants reflected in the count's access pattern (the
// count itself does not depend on vertex order).
func TriangleCount[T Element](g *Graph[T], method TriangleMethod) (int64, error) {
	if err := g.CheckGraph(); err != nil {
		return 0, err
	}
	n, err := g.N()
	if err != nil {
		return 0, err
	}

	lower, err := grb.MatrixNew[T](n, n)
	if err != nil {
		return 0, wrapEngine("TriangleCount", err)
	}
	defer lower.Free()
	if err := grb.MatrixSelect(lower, nil, nil, grb.Tril[T, int64](), g.A, int64(-1), nil); err != nil {
		return 0, wrapEngine("TriangleCount", err)
	}

	upper, err := grb.MatrixNew[T](n, n)
	if err != nil {
		return 0, wrapEngine("TriangleCount", err)
	}
	defer upper.Free()
	if err := grb.MatrixSelect(upper, nil, nil, grb.Triu[T, int64](), g.A, int64(1), nil); err != nil {
		return 0, wrapEngine("TriangleCount", err)
	}

	op := plusPairSemiring[int64, T, T]()
	c, err := grb.MatrixNew[int64](n, n)
	if err != nil {
		return 0, wrapEngine("TriangleCount", err)
	}
	defer c.Free()

	switch method {
	case Burkhardt:
		err = grb.MxM(c, lower.AsMask(), nil, op, lower, upper, nil)
	case Cohen:
		err = grb.MxM(c, upper.AsMask(), nil, op, lower, lower, grb.DescT1)
	case SandiaLL:
		err = grb.MxM(c, lower.AsMask(), nil, op, lower, lower, nil)
	case SandiaUU:
		err = grb.MxM(c, upper.AsMask(), nil, op, upper, upper, nil)
	case SandiaDot:
		err = grb.MxM(c, upper.AsMask(), nil, op, upper, upper, grb.DescT0)
	case SandiaDotLL:
		err = grb.MxM(c, lower.AsMask(), nil, op, lower, lower, grb.DescT0)
	default:
		return 0, newError(InvalidValue, "TriangleCount", "unknown method %d", method)
	}
	if err != nil {
		return 0, wrapEngine("TriangleCount", err)
	}

	total, err := grb.MatrixReduceToScalar(grb.PlusMonoid[int64](), c, nil)
	if err != nil {
		return 0, wrapEngine("TriangleCount", err)
	}
	return total, nil
}

// SortByDegree returns a copy of g permuted so that vertex order follows
// ascending or descending degree, as §9's presort heuristic calls for when
// autoSortTriangleCount finds the degree distribution skewed enough to
// benefit from it. The returned permutation maps new index -> old index.
func SortByDegree[T Element](g *Graph[T], ascending bool, threads int) (*Graph[T], []int, error) {
	if err := g.ComputeOutDegree(); err != nil {
		return nil, nil, err
	}
	n, err := g.N()
	if err != nil {
		return nil, nil, err
	}
	degrees := make([]int64, n)
	idx, vals, err := extractVectorTuples(g.OutDegree)
	if err != nil {
		return nil, nil, err
	}
	for i, v := range idx {
		degrees[v] = vals[i]
	}

	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	keys := make([]int64, n)
	copy(keys, degrees)
	if !ascending {
		for i := range keys {
			keys[i] = -keys[i]
		}
	}
	Sort2(keys, perm, n, threads)

	rows, cols, vals2, err := extractTuples(g.A)
	if err != nil {
		return nil, nil, err
	}
	inversePerm := make([]int, n)
	for newIdx, oldIdx := range perm {
		inversePerm[oldIdx] = newIdx
	}
	newRows := make([]int, len(rows))
	newCols := make([]int, len(cols))
	for i := range rows {
		newRows[i] = inversePerm[rows[i]]
		newCols[i] = inversePerm[cols[i]]
	}

	a, err := grb.MatrixNew[T](n, n)
	if err != nil {
		return nil, nil, wrapEngine("SortByDegree", err)
	}
	if err := a.Build(newRows, newCols, vals2, nil); err != nil {
		a.Free()
		return nil, nil, wrapEngine("SortByDegree", err)
	}
	sorted, err := New(a, g.Kind)
	if err != nil {
		a.Free()
		return nil, nil, err
	}
	return sorted, perm, nil
}

func extractVectorTuples(v grb.Vector[int64]) (idx []int, vals []int64, err error) {
	err = v.ExtractTuples(&idx, &vals)
	return
}
