package lagraph

import (
	grb "github.com/intel/forGraphBLASGo/GrB"
)

// This file centralizes every semiring/monoid/binary-op constructor this
// module needs from the engine (§6), in one place, rather than scattering
// grb.SemiringNew calls through each algorithm file. The plain value
// operators (Plus, Min, Max) are single-domain, taking one type parameter,
// matching the batched-BC example's GrB.Plus[int]()/GrB.Minus[float32]()
// convention; the structural ops (First, Second, Pair, OneOp, SecondI) are
// kept generic over all three type parameters since they ignore one or
// both operands' actual values and this module sometimes needs their
// output domain to differ from an operand's (degree counting, connected
// components' label propagation, BFS's parent/level walks).

func plusTimesSemiring[T Element]() grb.Semiring[T, T, T] {
	return grb.PlusTimesSemiring[T]()
}

func minPlusSemiring[T Integer]() grb.Semiring[T, T, T] {
	return grb.SemiringNew[T, T, T](grb.MinMonoid[T](), grb.Plus[T]())
}

func minFirstSemiring[T Element]() grb.Semiring[T, T, T] {
	return grb.SemiringNew[T, T, T](grb.MinMonoid[T](), grb.First[T, T, T]())
}

func minSecondSemiring[T Element]() grb.Semiring[T, T, T] {
	return grb.SemiringNew[T, T, T](grb.MinMonoid[T](), grb.Second[T, T, T]())
}

func maxFirstSemiring[T Element]() grb.Semiring[T, T, T] {
	return grb.SemiringNew[T, T, T](grb.MaxMonoid[T](), grb.First[T, T, T]())
}

func maxSecondSemiring[T Element]() grb.Semiring[T, T, T] {
	return grb.SemiringNew[T, T, T](grb.MaxMonoid[T](), grb.Second[T, T, T]())
}

func lorLandSemiringBool() grb.Semiring[bool, bool, bool] {
	return lorLandSemiring()
}

// plusPairSemiring is the "(+, pair)" semiring §4.F builds every triangle
// kernel on: pair(a, b) == 1 for every structural entry regardless of
// domain, so the three type parameters are independent.
func plusPairSemiring[Dc, Da, Db Element]() grb.Semiring[Dc, Da, Db] {
	return grb.SemiringNew[Dc, Da, Db](grb.PlusMonoid[Dc](), grb.Pair[Dc, Da, Db]())
}

// anyOneSemiring is "(any, one)" (§4.D: used when only a BFS level, not a
// parent, is requested).
func anyOneSemiring[Dc, Da, Db Element]() grb.Semiring[Dc, Da, Db] {
	return grb.SemiringNew[Dc, Da, Db](grb.AnyMonoid[Dc](), grb.OneOp[Dc, Da, Db]())
}

// anySecondISemiring is "(any, secondi)": the output domain is always the
// integer index type, independent of the matrix's element domain (§4.D:
// used when a BFS parent vector is requested).
func anySecondISemiring[Da, Db Element]() grb.Semiring[int64, Da, Db] {
	return grb.SemiringNew[int64, Da, Db](grb.AnyMonoid[int64](), grb.SecondI[int64, Da, Db]())
}

// plusSecondCrossSemiring is "(+, second)" with the output domain
// independent of the matrix's element domain: used by maximal matching's
// edge-degree computation (§4.K), which sums a vertex-indexed value
// (node_degree) across an edge's two incident rows of the (structural,
// boolean) incidence matrix, never the incidence matrix's own value.
func plusSecondCrossSemiring[Dc, Da, Db Element]() grb.Semiring[Dc, Da, Db] {
	return grb.SemiringNew[Dc, Da, Db](grb.PlusMonoid[Dc](), grb.Second[Dc, Da, Db]())
}

// minSecondCrossSemiring is "(min, second)" with the output domain (the
// component-label domain, always int64 in this module) independent of the
// matrix's element domain: used by connected components' neighbour-label
// reduction (§4.E), which only cares about each neighbour's current label,
// never the edge weight.
func minSecondCrossSemiring[Dc, Da, Db Element]() grb.Semiring[Dc, Da, Db] {
	return grb.SemiringNew[Dc, Da, Db](grb.MinMonoid[Dc](), grb.Second[Dc, Da, Db]())
}
