package lagraph

import (
	grb "github.com/intel/forGraphBLASGo/GrB"
)

// MultiBFSResult holds the per-source level and/or parent matrices §4.D's
// multi-source BFS produces: row i, column j holds source j's level of (or
// parent id discovered for) vertex i.
type MultiBFSResult struct {
	Level     grb.Matrix[int64]
	hasLevel  bool
	Parent    grb.Matrix[int64]
	hasParent bool
}

func (r *MultiBFSResult) free() {
	if r == nil {
		return
	}
	if r.hasLevel {
		r.Level.Free()
	}
	if r.hasParent {
		r.Parent.Free()
	}
}

// MultiSourceBFS runs BFS from every vertex in sources in parallel, sharing
// one frontier matrix across all of them (§4.D). At least one of
// computeLevel, computeParent must be true.
func MultiSourceBFS[T Element](g *Graph[T], sources []int, computeLevel, computeParent bool) (*MultiBFSResult, error) {
	if !computeLevel && !computeParent {
		return nil, newError(InvalidValue, "MultiSourceBFS", "either level or parent must be requested")
	}
	if err := g.CheckGraph(); err != nil {
		return nil, err
	}
	n, err := g.N()
	if err != nil {
		return nil, err
	}
	nsrc := len(sources)
	if nsrc == 0 {
		return nil, newError(InvalidValue, "MultiSourceBFS", "no source vertices given")
	}
	for _, s := range sources {
		if s < 0 || s >= n {
			return nil, newError(InvalidIndex, "MultiSourceBFS", "source %d out of range [0,%d)", s, n)
		}
	}

	visited, err := grb.MatrixNew[bool](n, nsrc)
	if err != nil {
		return nil, wrapEngine("MultiSourceBFS", err)
	}
	defer visited.Free()

	frontier, err := grb.MatrixNew[bool](n, nsrc)
	if err != nil {
		return nil, wrapEngine("MultiSourceBFS", err)
	}
	for j, s := range sources {
		if err := frontier.SetElement(true, s, j); err != nil {
			frontier.Free()
			return nil, wrapEngine("MultiSourceBFS", err)
		}
	}

	result := &MultiBFSResult{}
	if computeLevel {
		v, err := grb.MatrixNew[int64](n, nsrc)
		if err != nil {
			frontier.Free()
			result.free()
			return nil, wrapEngine("MultiSourceBFS", err)
		}
		result.Level = v
		result.hasLevel = true
	}
	if computeParent {
		p, err := grb.MatrixNew[int64](n, nsrc)
		if err != nil {
			frontier.Free()
			result.free()
			return nil, wrapEngine("MultiSourceBFS", err)
		}
		result.Parent = p
		result.hasParent = true
		for j, s := range sources {
			if err := p.SetElement(int64(s), s, j); err != nil {
				frontier.Free()
				result.free()
				return nil, wrapEngine("MultiSourceBFS", err)
			}
		}
	}

	anyOne := anyOneSemiring[bool, T, bool]()
	anySecondI := anySecondISemiring[T, bool]()

	for level := int64(0); ; level++ {
		if computeLevel {
			if err := grb.MatrixAssignConstant(result.Level, frontier.AsMask(), nil, level, grb.All(n), grb.All(nsrc), nil); err != nil {
				frontier.Free()
				result.free()
				return nil, wrapEngine("MultiSourceBFS", err)
			}
		}
		if err := grb.MatrixAssignConstant(visited, frontier.AsMask(), nil, true, grb.All(n), grb.All(nsrc), nil); err != nil {
			frontier.Free()
			result.free()
			return nil, wrapEngine("MultiSourceBFS", err)
		}

		next, err := grb.MatrixNew[bool](n, nsrc)
		if err != nil {
			frontier.Free()
			result.free()
			return nil, wrapEngine("MultiSourceBFS", err)
		}

		if computeParent {
			parentCandidate, err := grb.MatrixNew[int64](n, nsrc)
			if err != nil {
				next.Free()
				frontier.Free()
				result.free()
				return nil, wrapEngine("MultiSourceBFS", err)
			}
			// pi<!visited> = A' any.secondi frontier: for each unvisited
			// vertex i newly reached this round, record the frontier vertex
			// (row of A, edge k->i) that discovered it.
			if err := grb.MxM(parentCandidate, visited.AsMask(), nil, anySecondI, grb.MatrixView[T, T](g.A), frontier, grb.DescRCT0); err != nil {
				parentCandidate.Free()
				next.Free()
				frontier.Free()
				result.free()
				return nil, wrapEngine("MultiSourceBFS", err)
			}
			if err := grb.MatrixAssignConstant(next, parentCandidate.AsMask(), nil, true, grb.All(n), grb.All(nsrc), nil); err != nil {
				parentCandidate.Free()
				next.Free()
				frontier.Free()
				result.free()
				return nil, wrapEngine("MultiSourceBFS", err)
			}
			if err := grb.MatrixAssign(result.Parent, next.AsMask(), nil, parentCandidate, grb.All(n), grb.All(nsrc), nil); err != nil {
				parentCandidate.Free()
				next.Free()
				frontier.Free()
				result.free()
				return nil, wrapEngine("MultiSourceBFS", err)
			}
			parentCandidate.Free()
		} else {
			if err := grb.MxM(next, visited.AsMask(), nil, anyOne, grb.MatrixView[T, T](g.A), frontier, grb.DescRCT0); err != nil {
				next.Free()
				frontier.Free()
				result.free()
				return nil, wrapEngine("MultiSourceBFS", err)
			}
		}

		frontier.Free()
		frontier = next

		nfrontier, err := frontier.NVals()
		if err != nil {
			frontier.Free()
			result.free()
			return nil, wrapEngine("MultiSourceBFS", err)
		}
		if nfrontier == 0 {
			break
		}
	}
	frontier.Free()

	return result, nil
}
