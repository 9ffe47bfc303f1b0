package lagraph

import (
	grb "github.com/intel/forGraphBLASGo/GrB"
)

// ComputeAT caches A's transpose (§4.C). For an Undirected graph this is a
// no-op: AT would equal A's own structure, so it is never allocated.
func (g *Graph[T]) ComputeAT() error {
	if g.Kind == Undirected {
		return nil
	}
	if g.hasAT {
		return nil
	}
	n, err := g.A.NRows()
	if err != nil {
		return wrapEngine("Graph.ComputeAT", err)
	}
	m, err := g.A.NCols()
	if err != nil {
		return wrapEngine("Graph.ComputeAT", err)
	}
	at, err := grb.MatrixNew[T](m, n)
	if err != nil {
		return wrapEngine("Graph.ComputeAT", err)
	}
	if err := grb.Transpose(at, nil, nil, g.A, nil); err != nil {
		at.Free()
		return wrapEngine("Graph.ComputeAT", err)
	}
	g.AT = at
	g.hasAT = true
	return nil
}

// ComputeOutDegree caches the per-row explicit-entry count (§4.C).
func (g *Graph[T]) ComputeOutDegree() error {
	if g.hasOutDegree {
		return nil
	}
	d, err := rowDegrees(g.A)
	if err != nil {
		return wrapEngine("Graph.ComputeOutDegree", err)
	}
	g.OutDegree = d
	g.hasOutDegree = true
	return nil
}

// ComputeInDegree caches the per-column explicit-entry count (§4.C). For
// an Undirected graph this equals OutDegree.
func (g *Graph[T]) ComputeInDegree() error {
	if g.hasInDegree {
		return nil
	}
	if g.Kind == Undirected {
		if err := g.ComputeOutDegree(); err != nil {
			return err
		}
		dup, err := g.OutDegree.Dup()
		if err != nil {
			return wrapEngine("Graph.ComputeInDegree", err)
		}
		g.InDegree = dup
		g.hasInDegree = true
		return nil
	}
	d, err := colDegrees(g.A)
	if err != nil {
		return wrapEngine("Graph.ComputeInDegree", err)
	}
	g.InDegree = d
	g.hasInDegree = true
	return nil
}

// ComputeNSelfEdges caches the count of diagonal entries of A (§4.C).
func (g *Graph[T]) ComputeNSelfEdges() error {
	if g.NSelfEdges != nil {
		return nil
	}
	n, err := g.A.NRows()
	if err != nil {
		return wrapEngine("Graph.ComputeNSelfEdges", err)
	}
	total, err := g.A.NVals()
	if err != nil {
		return wrapEngine("Graph.ComputeNSelfEdges", err)
	}
	offdiag, err := grb.MatrixNew[T](n, n)
	if err != nil {
		return wrapEngine("Graph.ComputeNSelfEdges", err)
	}
	defer offdiag.Free()
	if err := grb.MatrixSelect(offdiag, nil, nil, grb.Offdiag[T, int64](), g.A, int64(0), nil); err != nil {
		return wrapEngine("Graph.ComputeNSelfEdges", err)
	}
	offTotal, err := offdiag.NVals()
	if err != nil {
		return wrapEngine("Graph.ComputeNSelfEdges", err)
	}
	n64 := int64(total - offTotal)
	g.NSelfEdges = &n64
	return nil
}

// ComputeIsSymmetricStructure determines and caches whether A's sparsity
// pattern is symmetric (§4.C). On a Directed graph this materialises AT if
// absent.
func (g *Graph[T]) ComputeIsSymmetricStructure() error {
	if g.IsSymmetric != UnknownTri {
		return nil
	}
	if g.Kind == Undirected {
		g.IsSymmetric = TristateTrue
		return nil
	}
	if err := g.ComputeAT(); err != nil {
		return err
	}
	equal, err := structuralEqual(g.A, g.AT)
	if err != nil {
		return wrapEngine("Graph.ComputeIsSymmetricStructure", err)
	}
	if equal {
		g.IsSymmetric = TristateTrue
	} else {
		g.IsSymmetric = TristateFalse
	}
	return nil
}

// ComputeEMin caches A's minimum edge weight (§3: emin).
func (g *Graph[T]) ComputeEMin() error {
	if g.EMin != nil {
		return nil
	}
	min, err := grb.MatrixReduceToScalar(grb.MinMonoid[T](), g.A, nil)
	if err != nil {
		return wrapEngine("Graph.ComputeEMin", err)
	}
	g.EMin = &min
	return nil
}

// DeleteCachedProperties frees every cached field without touching A
// (§4.C).
func (g *Graph[T]) DeleteCachedProperties() error {
	if g.hasAT {
		if err := g.AT.Free(); err != nil {
			return wrapEngine("Graph.DeleteCachedProperties", err)
		}
		g.AT = grb.Matrix[T]{}
		g.hasAT = false
	}
	if g.hasOutDegree {
		if err := g.OutDegree.Free(); err != nil {
			return wrapEngine("Graph.DeleteCachedProperties", err)
		}
		g.OutDegree = grb.Vector[int64]{}
		g.hasOutDegree = false
	}
	if g.hasInDegree {
		if err := g.InDegree.Free(); err != nil {
			return wrapEngine("Graph.DeleteCachedProperties", err)
		}
		g.InDegree = grb.Vector[int64]{}
		g.hasInDegree = false
	}
	g.NSelfEdges = nil
	g.IsSymmetric = UnknownTri
	g.EMin = nil
	return nil
}

// CheckGraph validates the current state of g against the invariants of
// §3, returning NullPointer for a nil graph and InvalidGraph with a
// human-readable message on any invariant violation; an engine failure
// while checking is returned as a wrapped engine error.
func (g *Graph[T]) CheckGraph() error {
	if g == nil {
		return newError(NullPointer, "Graph.CheckGraph", "graph is nil")
	}
	n, err := g.A.NRows()
	if err != nil {
		return wrapEngine("Graph.CheckGraph", err)
	}
	m, err := g.A.NCols()
	if err != nil {
		return wrapEngine("Graph.CheckGraph", err)
	}
	if n != m {
		return newError(InvalidGraph, "Graph.CheckGraph", "adjacency matrix is not square: %d x %d", n, m)
	}
	if g.Kind != Undirected && g.Kind != Directed {
		return newError(InvalidGraph, "Graph.CheckGraph", "unknown graph kind: %d", g.Kind)
	}
	if g.hasAT {
		atn, err := g.AT.NRows()
		if err != nil {
			return wrapEngine("Graph.CheckGraph", err)
		}
		atm, err := g.AT.NCols()
		if err != nil {
			return wrapEngine("Graph.CheckGraph", err)
		}
		if atn != m || atm != n {
			return newError(InvalidGraph, "Graph.CheckGraph", "AT dimensions (%d, %d) disagree with A (%d, %d)", atn, atm, n, m)
		}
	}
	if g.hasOutDegree {
		l, err := g.OutDegree.Size()
		if err != nil {
			return wrapEngine("Graph.CheckGraph", err)
		}
		if l != n {
			return newError(InvalidGraph, "Graph.CheckGraph", "out_degree length %d disagrees with A's %d rows", l, n)
		}
	}
	if g.hasInDegree {
		l, err := g.InDegree.Size()
		if err != nil {
			return wrapEngine("Graph.CheckGraph", err)
		}
		if l != m {
			return newError(InvalidGraph, "Graph.CheckGraph", "in_degree length %d disagrees with A's %d columns", l, m)
		}
	}
	if g.Kind == Undirected && g.IsSymmetric == TristateFalse {
		return newError(InvalidGraph, "Graph.CheckGraph", "undirected graph has asymmetric structure recorded")
	}
	return nil
}
