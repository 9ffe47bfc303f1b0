package lagraph

import "math/bits"

// multiplySize returns a*b along with whether the product overflows int,
// replacing the source's LG_Multiply_size_t (§4.A) used before every
// allocation. Go's garbage collector and slice/make primitives remove the
// need for the malloc/calloc/realloc/free quartet itself, but they do not
// check a size computation for overflow before calling make, so this one
// guard is kept: no library in the retrieval pack offers a checked-multiply
// primitive, so it is implemented directly against the standard library
// (DESIGN.md).
func multiplySize(a, b int) (product int, overflow bool) {
	if a < 0 || b < 0 {
		return 0, true
	}
	hi, lo := bits.Mul64(uint64(a), uint64(b))
	if hi != 0 || lo > uint64(^uint(0)>>1) {
		return 0, true
	}
	return int(lo), false
}

// checkedMake allocates a slice of n elements of T, returning OutOfMemory
// if n*sizeof(T) would overflow the platform's addressable size (here
// approximated by int range, since Go does not expose sizeof at this
// layer).
func checkedMake[T any](n int) ([]T, error) {
	if _, overflow := multiplySize(n, 1); overflow {
		return nil, newError(OutOfMemory, "lagraph.checkedMake", "allocation size overflow for n=%d", n)
	}
	return make([]T, n), nil
}
