package lagraph

import (
	grb "github.com/intel/forGraphBLASGo/GrB"
)

// TriangleCentrality scores each vertex by the fraction of g's triangles it
// participates in (§4.F), a simplified form of the Burkhardt triangle
// centrality that skips the paper's second-order "wedge discount" term and
// normalizes a vertex's raw triangle-membership count by the graph's total
// triangle count. Isolated or triangle-free vertices score 0.
func TriangleCentrality[T Element](g *Graph[T]) (grb.Vector[float64], error) {
	if err := g.CheckGraph(); err != nil {
		return grb.Vector[float64]{}, err
	}
	n, err := g.N()
	if err != nil {
		return grb.Vector[float64]{}, err
	}

	lower, err := grb.MatrixNew[T](n, n)
	if err != nil {
		return grb.Vector[float64]{}, wrapEngine("TriangleCentrality", err)
	}
	defer lower.Free()
	if err := grb.MatrixSelect(lower, nil, nil, grb.Tril[T, int64](), g.A, int64(-1), nil); err != nil {
		return grb.Vector[float64]{}, wrapEngine("TriangleCentrality", err)
	}

	offdiag, err := grb.MatrixNew[T](n, n)
	if err != nil {
		return grb.Vector[float64]{}, wrapEngine("TriangleCentrality", err)
	}
	defer offdiag.Free()
	if err := grb.MatrixSelect(offdiag, nil, nil, grb.Offdiag[T, int64](), g.A, int64(0), nil); err != nil {
		return grb.Vector[float64]{}, wrapEngine("TriangleCentrality", err)
	}

	// c<L> = A*A over the strict lower triangle: c[i,j] is the number of
	// triangles on edge (i,j), so each triangle adds 1 to each of its three
	// edges, 2 to each of its vertices' row+column sums, and 3 to total.
	op := plusPairSemiring[int64, T, T]()
	c, err := grb.MatrixNew[int64](n, n)
	if err != nil {
		return grb.Vector[float64]{}, wrapEngine("TriangleCentrality", err)
	}
	defer c.Free()
	if err := grb.MxM(c, lower.AsMask(), nil, op, offdiag, offdiag, nil); err != nil {
		return grb.Vector[float64]{}, wrapEngine("TriangleCentrality", err)
	}

	plusI64 := grb.Plus[int64]()

	rowSum, err := grb.VectorNew[int64](n)
	if err != nil {
		return grb.Vector[float64]{}, wrapEngine("TriangleCentrality", err)
	}
	defer rowSum.Free()
	if err := grb.MatrixReduceBinaryOp(rowSum, nil, nil, plusI64, c, nil); err != nil {
		return grb.Vector[float64]{}, wrapEngine("TriangleCentrality", err)
	}

	colSum, err := grb.VectorNew[int64](n)
	if err != nil {
		return grb.Vector[float64]{}, wrapEngine("TriangleCentrality", err)
	}
	defer colSum.Free()
	if err := grb.MatrixReduceBinaryOp(colSum, nil, nil, plusI64, c, grb.DescT0); err != nil {
		return grb.Vector[float64]{}, wrapEngine("TriangleCentrality", err)
	}

	total, err := grb.MatrixReduceToScalar(grb.PlusMonoid[int64](), c, nil)
	if err != nil {
		return grb.Vector[float64]{}, wrapEngine("TriangleCentrality", err)
	}

	centrality, err := grb.VectorNew[float64](n)
	if err != nil {
		return grb.Vector[float64]{}, wrapEngine("TriangleCentrality", err)
	}
	if total == 0 {
		return centrality, nil
	}

	ridx, rvals, err := extractVectorTuples(rowSum)
	if err != nil {
		centrality.Free()
		return grb.Vector[float64]{}, err
	}
	cidx, cvals, err := extractVectorTuples(colSum)
	if err != nil {
		centrality.Free()
		return grb.Vector[float64]{}, err
	}
	memberships := make(map[int]int64, len(ridx)+len(cidx))
	for i, v := range ridx {
		memberships[v] += rvals[i]
	}
	for i, v := range cidx {
		memberships[v] += cvals[i]
	}
	for v, m := range memberships {
		if err := centrality.SetElement(1.5*float64(m)/float64(total), v); err != nil {
			centrality.Free()
			return grb.Vector[float64]{}, wrapEngine("TriangleCentrality", err)
		}
	}
	return centrality, nil
}
