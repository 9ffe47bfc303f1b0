package lagraph

import (
	grb "github.com/intel/forGraphBLASGo/GrB"
)

// Graph is the central domain object (§3): an n×n adjacency matrix plus a
// set of cached properties. AT and the degree vectors are valid iff their
// has* flag is set; NSelfEdges and EMin are valid when non-nil, and
// IsSymmetric is UnknownTri until it has been computed. No
// algorithm in this module mutates A; algorithms may populate the cached
// fields or return auxiliary matrices/vectors of their own.
type Graph[T Element] struct {
	A    grb.Matrix[T]
	Kind Kind

	AT           grb.Matrix[T]
	hasAT        bool
	OutDegree    grb.Vector[int64]
	hasOutDegree bool
	InDegree     grb.Vector[int64]
	hasInDegree  bool
	NSelfEdges   *int64
	IsSymmetric  Tristate
	EMin         *T
}

// New takes ownership of a (the "move constructor" of §4.C): the returned
// Graph is the sole owner of a, and the caller must not use a again.
func New[T Element](a grb.Matrix[T], kind Kind) (*Graph[T], error) {
	n, err := a.NRows()
	if err != nil {
		return nil, newError(NullPointer, "lagraph.New", "adjacency matrix is invalid: %v", err)
	}
	m, err := a.NCols()
	if err != nil {
		return nil, newError(NullPointer, "lagraph.New", "adjacency matrix is invalid: %v", err)
	}
	if n != m {
		return nil, newError(InvalidGraph, "lagraph.New", "adjacency matrix is not square: %d x %d", n, m)
	}
	return &Graph[T]{A: a, Kind: kind}, nil
}

// NewCopy duplicates a (the "copy constructor" of §4.C): the caller
// retains ownership of a and may continue to use it independently.
func NewCopy[T Element](a grb.Matrix[T], kind Kind) (*Graph[T], error) {
	dup, err := a.Dup()
	if err != nil {
		return nil, wrapEngine("lagraph.NewCopy", err)
	}
	return &Graph[T]{A: dup, Kind: kind}, nil
}

// Delete releases A and every cached field the Graph owns (§3: "ownership:
// the Graph exclusively owns A and every cached field; deleting the Graph
// releases all of them").
func (g *Graph[T]) Delete() error {
	if g == nil {
		return nil
	}
	if err := g.DeleteCachedProperties(); err != nil {
		return err
	}
	if err := g.A.Free(); err != nil {
		return wrapEngine("Graph.Delete", err)
	}
	return nil
}

// N returns the number of vertices (the common dimension of the square
// adjacency matrix).
func (g *Graph[T]) N() (int, error) {
	n, err := g.A.NRows()
	if err != nil {
		return 0, wrapEngine("Graph.N", err)
	}
	return n, nil
}
