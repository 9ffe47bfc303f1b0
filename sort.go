package lagraph

import (
	"cmp"
	"slices"

	"github.com/intel/forGoParallel/parallel"
)

// Sort1 sorts keys[:n] in place, ascending (§4.A). When threads == 1 it
// runs sequentially; for threads > 1 it splits the range into per-thread
// chunks via forGoParallel (the one dependency forGraphBLASGo's own go.mod
// carries, used the same way api_Matrix.go.go's Build uses
// parallel.RangeOr to split a range across goroutines), sorts each chunk
// concurrently, then merges sequentially.
func Sort1[T cmp.Ordered](keys []T, n, threads int) {
	if n <= 0 {
		return
	}
	work := keys[:n]
	if threads <= 1 || n < 2*threads {
		slices.Sort(work)
		return
	}
	chunks := splitSortMerge(work, threads, func(chunk []T) {
		slices.Sort(chunk)
	}, func(a, b []T) []T {
		return mergeOrdered(a, b)
	})
	copy(work, chunks)
}

// pair2 is the (keys0, keys1) tuple Sort2 orders lexicographically.
type pair2[K0, K1 cmp.Ordered] struct {
	k0 K0
	k1 K1
}

// Sort2 sorts (keys0[:n], keys1[:n]) in place, lexicographic ascending on
// (keys0, keys1), ties on keys1 (§4.A). Used by CDLP's minimum-mode scan
// (§4.I).
func Sort2[K0, K1 cmp.Ordered](keys0 []K0, keys1 []K1, n, threads int) {
	if n <= 0 {
		return
	}
	pairs := make([]pair2[K0, K1], n)
	for i := 0; i < n; i++ {
		pairs[i] = pair2[K0, K1]{keys0[i], keys1[i]}
	}
	less := func(a, b pair2[K0, K1]) int {
		if a.k0 != b.k0 {
			if a.k0 < b.k0 {
				return -1
			}
			return 1
		}
		if a.k1 < b.k1 {
			return -1
		} else if a.k1 > b.k1 {
			return 1
		}
		return 0
	}
	if threads <= 1 || n < 2*threads {
		slices.SortFunc(pairs, less)
	} else {
		chunks := splitSortMerge(pairs, threads, func(chunk []pair2[K0, K1]) {
			slices.SortFunc(chunk, less)
		}, func(a, b []pair2[K0, K1]) []pair2[K0, K1] {
			return mergeFunc(a, b, less)
		})
		pairs = chunks
	}
	for i := 0; i < n; i++ {
		keys0[i] = pairs[i].k0
		keys1[i] = pairs[i].k1
	}
}

// splitSortMerge divides data into `threads` contiguous chunks, sorts each
// chunk concurrently via parallel.Range, then folds the sorted chunks
// together with merge.
func splitSortMerge[T any](data []T, threads int, sortChunk func([]T), merge func(a, b []T) []T) []T {
	n := len(data)
	chunkSize := (n + threads - 1) / threads
	bounds := make([][2]int, 0, threads)
	for lo := 0; lo < n; lo += chunkSize {
		hi := lo + chunkSize
		if hi > n {
			hi = n
		}
		bounds = append(bounds, [2]int{lo, hi})
	}
	parallel.Range(0, len(bounds), func(low, high int) {
		for i := low; i < high; i++ {
			lo, hi := bounds[i][0], bounds[i][1]
			sortChunk(data[lo:hi])
		}
	})
	result := data[bounds[0][0]:bounds[0][1]]
	for i := 1; i < len(bounds); i++ {
		result = merge(result, data[bounds[i][0]:bounds[i][1]])
	}
	return result
}

func mergeOrdered[T cmp.Ordered](a, b []T) []T {
	out := make([]T, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		if a[i] <= b[j] {
			out = append(out, a[i])
			i++
		} else {
			out = append(out, b[j])
			j++
		}
	}
	out = append(out, a[i:]...)
	out = append(out, b[j:]...)
	return out
}

func mergeFunc[T any](a, b []T, less func(a, b T) int) []T {
	out := make([]T, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		if less(a[i], b[j]) <= 0 {
			out = append(out, a[i])
			i++
		} else {
			out = append(out, b[j])
			j++
		}
	}
	out = append(out, a[i:]...)
	out = append(out, b[j:]...)
	return out
}
