package lagraph

import (
	grb "github.com/intel/forGraphBLASGo/GrB"
)

// ktruss prunes C (the boolean structure of an undirected adjacency matrix)
// to its k-truss in place: repeatedly compute each surviving edge's support
// (the number of triangles it closes) and drop edges whose support falls
// below k-2, until no edge is dropped (§4.G). It returns the final edge
// count, used both by KTruss (to report nedges) and AllKTruss (to detect
// the point at which the truss becomes empty).
func ktruss(c grb.Matrix[bool], k int) (int64, error) {
	n, err := c.NRows()
	if err != nil {
		return 0, wrapEngine("ktruss", err)
	}
	op := plusPairSemiring[int64, bool, bool]()
	threshold := int64(k - 2)

	for {
		support, err := grb.MatrixNew[int64](n, n)
		if err != nil {
			return 0, wrapEngine("ktruss", err)
		}
		if err := grb.MxM(support, c.AsMask(), nil, op, c, c, nil); err != nil {
			support.Free()
			return 0, wrapEngine("ktruss", err)
		}

		kept, err := grb.MatrixNew[int64](n, n)
		if err != nil {
			support.Free()
			return 0, wrapEngine("ktruss", err)
		}
		if err := grb.MatrixSelect(kept, nil, nil, grb.Valuege[int64, int64](), support, threshold, nil); err != nil {
			kept.Free()
			support.Free()
			return 0, wrapEngine("ktruss", err)
		}
		support.Free()

		before, err := c.NVals()
		if err != nil {
			kept.Free()
			return 0, wrapEngine("ktruss", err)
		}
		after, err := kept.NVals()
		if err != nil {
			kept.Free()
			return 0, wrapEngine("ktruss", err)
		}

		if err := c.Clear(); err != nil {
			kept.Free()
			return 0, wrapEngine("ktruss", err)
		}
		if err := grb.MatrixAssignConstant(c, kept.AsMask(), nil, true, grb.All(n), grb.All(n), nil); err != nil {
			kept.Free()
			return 0, wrapEngine("ktruss", err)
		}
		kept.Free()

		if after == before || after == 0 {
			return after, nil
		}
	}
}

// booleanStructure copies a's sparsity pattern into a fresh n x n boolean
// matrix, discarding values (§4.G, §4.K, §4.L all start from a structural
// copy of A).
func booleanStructure[T Element](a grb.Matrix[T]) (grb.Matrix[bool], error) {
	n, err := a.NRows()
	if err != nil {
		return grb.Matrix[bool]{}, wrapEngine("booleanStructure", err)
	}
	m, err := a.NCols()
	if err != nil {
		return grb.Matrix[bool]{}, wrapEngine("booleanStructure", err)
	}
	c, err := grb.MatrixNew[bool](n, m)
	if err != nil {
		return grb.Matrix[bool]{}, wrapEngine("booleanStructure", err)
	}
	if err := grb.MatrixAssignConstant(c, a.AsMask(), nil, true, grb.All(n), grb.All(m), nil); err != nil {
		c.Free()
		return grb.Matrix[bool]{}, wrapEngine("booleanStructure", err)
	}
	return c, nil
}

// KTruss computes g's k-truss (§4.G): the maximal subgraph in which every
// edge participates in at least k-2 triangles. k must be >= 3. The result
// is returned as a boolean structure matrix alongside its edge count.
func KTruss[T Element](g *Graph[T], k int) (grb.Matrix[bool], int64, error) {
	if k < 3 {
		return grb.Matrix[bool]{}, 0, newError(InvalidValue, "KTruss", "k must be >= 3, got %d", k)
	}
	if err := g.CheckGraph(); err != nil {
		return grb.Matrix[bool]{}, 0, err
	}
	c, err := booleanStructure(g.A)
	if err != nil {
		return grb.Matrix[bool]{}, 0, err
	}
	nedges, err := ktruss(c, k)
	if err != nil {
		c.Free()
		return grb.Matrix[bool]{}, 0, err
	}
	return c, nedges, nil
}

// AllKTruss computes the k-truss of g for every k from 3 up to the point
// where the truss becomes empty (§4.G), returning the sequence of
// (k, edgeCount) pairs. Each successive truss is computed from the
// previous one's surviving edges rather than from scratch, since the
// (k+1)-truss is always a subgraph of the k-truss.
type TrussLevel struct {
	K        int
	NumEdges int64
}

func AllKTruss[T Element](g *Graph[T]) ([]TrussLevel, error) {
	if err := g.CheckGraph(); err != nil {
		return nil, err
	}
	c, err := booleanStructure(g.A)
	if err != nil {
		return nil, err
	}
	defer c.Free()

	var levels []TrussLevel
	for k := 3; ; k++ {
		nedges, err := ktruss(c, k)
		if err != nil {
			return levels, err
		}
		levels = append(levels, TrussLevel{K: k, NumEdges: nedges})
		if nedges == 0 {
			break
		}
	}
	return levels, nil
}
