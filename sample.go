package lagraph

import (
	grb "github.com/intel/forGraphBLASGo/GrB"
	"gonum.org/v1/gonum/stat"
)

// SampleDegree draws k indices uniformly with replacement from [0, n),
// extracts their cached degree, sorts the sample with Sort1, and returns
// the sample mean and median (§4.O). degree must already be cached (e.g.
// via Graph.ComputeOutDegree); it is not recomputed here.
func SampleDegree(degree grb.Vector[int64], k int, seed uint64) (mean, median float64, err error) {
	n, err := degree.Size()
	if err != nil {
		return 0, 0, wrapEngine("SampleDegree", err)
	}
	if n == 0 || k <= 0 {
		return 0, 0, newError(InvalidValue, "SampleDegree", "empty graph or non-positive sample size")
	}
	r := NewRand(seed)
	sample := make([]float64, k)
	for i := 0; i < k; i++ {
		idx := r.Intn(n)
		v, ok, err := degree.ExtractElement(idx)
		if err != nil {
			return 0, 0, wrapEngine("SampleDegree", err)
		}
		if !ok {
			v = 0
		}
		sample[i] = float64(v)
	}
	Sort1(sample, k, 1)
	mean = stat.Mean(sample, nil)
	median = stat.Quantile(0.5, stat.Empirical, sample, nil)
	return mean, median, nil
}

// autoSortTriangleCount decides whether the triangle-count presort (§4.F)
// should run, based on the §4.F/§9 heuristic:
// sample min(1000, n) out-degrees, and enable sorting when the sampled
// mean exceeds four times the sampled median.
const (
	triangleAutoSortMaxSample = 1000
	triangleAutoSortRatio     = 4.0
)

func autoSortTriangleCount(degree grb.Vector[int64], n int, seed uint64) (bool, error) {
	k := n
	if k > triangleAutoSortMaxSample {
		k = triangleAutoSortMaxSample
	}
	if k == 0 {
		return false, nil
	}
	mean, median, err := SampleDegree(degree, k, seed)
	if err != nil {
		return false, err
	}
	if median == 0 {
		return mean > 0, nil
	}
	return mean > triangleAutoSortRatio*median, nil
}
