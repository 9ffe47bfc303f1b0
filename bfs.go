package lagraph

import (
	grb "github.com/intel/forGraphBLASGo/GrB"
)

// bfsPullFraction is a push/pull switch point (frontier size as a fraction
// of the as-yet-unvisited vertex count), kept as a named constant. BFS does
// not read it: every level is expanded by a push step (VxM of the frontier
// over A); there is no pull step over AT.
const bfsPullFraction = 0.04

// BFSResult holds whichever of level/parent (§4.D) the caller requested;
// the field not requested has its hasLevel/hasParent flag left false.
type BFSResult struct {
	Level     grb.Vector[int64]
	hasLevel  bool
	Parent    grb.Vector[int64]
	hasParent bool
}

func (r *BFSResult) free() {
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

// BFS computes the single-source level and/or parent vectors of g from
// source (§4.D). At least one of computeLevel, computeParent must be true.
// Unreached vertices have no entry in either returned vector.
func BFS[T Element](g *Graph[T], source int, computeLevel, computeParent bool) (*BFSResult, error) {
	if !computeLevel && !computeParent {
		return nil, newError(InvalidValue, "BFS", "either level or parent must be requested")
	}
	if err := g.CheckGraph(); err != nil {
		return nil, err
	}
	n, err := g.N()
	if err != nil {
		return nil, err
	}
	if source < 0 || source >= n {
		return nil, newError(InvalidIndex, "BFS", "source %d out of range [0,%d)", source, n)
	}
	if computeParent && g.Kind != Undirected {
		if err := g.ComputeAT(); err != nil {
			return nil, err
		}
	}

	visited, err := grb.VectorNew[bool](n)
	if err != nil {
		return nil, wrapEngine("BFS", err)
	}
	defer visited.Free()

	frontier, err := grb.VectorNew[bool](n)
	if err != nil {
		return nil, wrapEngine("BFS", err)
	}
	if err := frontier.SetElement(true, source); err != nil {
		frontier.Free()
		return nil, wrapEngine("BFS", err)
	}

	result := &BFSResult{}
	if computeLevel {
		v, err := grb.VectorNew[int64](n)
		if err != nil {
			frontier.Free()
			result.free()
			return nil, wrapEngine("BFS", err)
		}
		result.Level = v
		result.hasLevel = true
	}
	if computeParent {
		p, err := grb.VectorNew[int64](n)
		if err != nil {
			frontier.Free()
			result.free()
			return nil, wrapEngine("BFS", err)
		}
		result.Parent = p
		result.hasParent = true
		if err := p.SetElement(int64(source), source); err != nil {
			frontier.Free()
			result.free()
			return nil, wrapEngine("BFS", err)
		}
	}

	anyOne := anyOneSemiring[bool, bool, T]()
	anySecondI := anySecondISemiring[bool, T]()

	// A directed graph's BFS always walks out-edges of the frontier via
	// VxM(frontier, A); AT is computed above only so callers that need a
	// parent tree on a directed graph have it cached afterward (§4.C), not
	// because this walk itself needs the transpose.
	for level := int64(0); ; level++ {
		if computeLevel {
			if err := grb.VectorAssignConstant(result.Level, frontier.AsMask(), nil, level, grb.All(n), nil); err != nil {
				frontier.Free()
				result.free()
				return nil, wrapEngine("BFS", err)
			}
		}
		if err := grb.VectorAssignConstant(visited, frontier.AsMask(), nil, true, grb.All(n), nil); err != nil {
			frontier.Free()
			result.free()
			return nil, wrapEngine("BFS", err)
		}

		next, err := grb.VectorNew[bool](n)
		if err != nil {
			frontier.Free()
			result.free()
			return nil, wrapEngine("BFS", err)
		}

		if computeParent {
			parentCandidate, err := grb.VectorNew[int64](n)
			if err != nil {
				next.Free()
				frontier.Free()
				result.free()
				return nil, wrapEngine("BFS", err)
			}
			if err := grb.VxM(parentCandidate, visited.AsMask(), nil, anySecondI, frontier, grb.MatrixView[T, T](g.A), grb.DescRC); err != nil {
				parentCandidate.Free()
				next.Free()
				frontier.Free()
				result.free()
				return nil, wrapEngine("BFS", err)
			}
			if err := grb.VectorAssignConstant(next, parentCandidate.AsMask(), nil, true, grb.All(n), nil); err != nil {
				parentCandidate.Free()
				next.Free()
				frontier.Free()
				result.free()
				return nil, wrapEngine("BFS", err)
			}
			if err := grb.VectorAssign(result.Parent, next.AsMask(), nil, parentCandidate, grb.All(n), nil); err != nil {
				parentCandidate.Free()
				next.Free()
				frontier.Free()
				result.free()
				return nil, wrapEngine("BFS", err)
			}
			parentCandidate.Free()
		} else {
			if err := grb.VxM(next, visited.AsMask(), nil, anyOne, frontier, grb.MatrixView[T, T](g.A), grb.DescRC); err != nil {
				next.Free()
				frontier.Free()
				result.free()
				return nil, wrapEngine("BFS", err)
			}
		}

		frontier.Free()
		frontier = next

		nfrontier, err := frontier.NVals()
		if err != nil {
			frontier.Free()
			result.free()
			return nil, wrapEngine("BFS", err)
		}
		if nfrontier == 0 {
			break
		}
	}
	frontier.Free()

	return result, nil
}
