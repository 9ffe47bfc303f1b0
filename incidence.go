package lagraph

import (
	grb "github.com/intel/forGraphBLASGo/GrB"
)

// Incidence is the unweighted node-edge incidence matrix of an undirected
// graph (§4.R), shared by MaximalMatching (§4.K) and CoarsenByMatching
// (§4.L): E is n x e, with E[i,k] and E[j,k] both set for the k-th edge
// (i,j); ET is its e x n transpose, built directly rather than via
// GrB.Transpose since the endpoint arrays are already in hand from
// extracting g.A's strict lower triangle.
type Incidence struct {
	E       grb.Matrix[bool]
	ET      grb.Matrix[bool]
	EdgeRow []int
	EdgeCol []int
	NNodes  int
	NEdges  int
}

// Free releases the incidence matrices. It does not touch EdgeRow/EdgeCol,
// which are plain Go slices.
func (inc *Incidence) Free() {
	inc.E.Free()
	inc.ET.Free()
}

// BuildIncidence constructs g's incidence matrix (§4.R). g.A is assumed
// structurally symmetric (an undirected graph); each entry of its strict
// lower triangle becomes one column of E, numbered in the row-major order
// ExtractTuples returns them.
func BuildIncidence[T Element](g *Graph[T]) (*Incidence, error) {
	if err := g.CheckGraph(); err != nil {
		return nil, err
	}
	n, err := g.N()
	if err != nil {
		return nil, err
	}

	lower, err := grb.MatrixNew[T](n, n)
	if err != nil {
		return nil, wrapEngine("BuildIncidence", err)
	}
	defer lower.Free()
	if err := grb.MatrixSelect(lower, nil, nil, grb.Tril[T, int64](), g.A, int64(-1), nil); err != nil {
		return nil, wrapEngine("BuildIncidence", err)
	}

	rows, cols, _, err := extractTuples(lower)
	if err != nil {
		return nil, wrapEngine("BuildIncidence", err)
	}
	e := len(rows)

	eRows := make([]int, 0, 2*e)
	eCols := make([]int, 0, 2*e)
	eVals := make([]bool, 0, 2*e)
	for k := range rows {
		eRows = append(eRows, rows[k], cols[k])
		eCols = append(eCols, k, k)
		eVals = append(eVals, true, true)
	}

	E, err := grb.MatrixNew[bool](n, e)
	if err != nil {
		return nil, wrapEngine("BuildIncidence", err)
	}
	if err := E.Build(eRows, eCols, eVals, nil); err != nil {
		E.Free()
		return nil, wrapEngine("BuildIncidence", err)
	}

	ET, err := grb.MatrixNew[bool](e, n)
	if err != nil {
		E.Free()
		return nil, wrapEngine("BuildIncidence", err)
	}
	if err := ET.Build(eCols, eRows, eVals, nil); err != nil {
		E.Free()
		ET.Free()
		return nil, wrapEngine("BuildIncidence", err)
	}

	return &Incidence{E: E, ET: ET, EdgeRow: rows, EdgeCol: cols, NNodes: n, NEdges: e}, nil
}
