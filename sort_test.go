package lagraph

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSort1SequentialAndParallelAgree(t *testing.T) {
	base := []int{5, 3, 8, 1, 9, 2, 7, 4, 6, 0}

	seq := slices.Clone(base)
	Sort1(seq, len(seq), 1)
	require.True(t, slices.IsSorted(seq))

	par := slices.Clone(base)
	Sort1(par, len(par), 4)
	require.Equal(t, seq, par)
}

func TestSort2OrdersLexicographically(t *testing.T) {
	keys0 := []int{1, 0, 1, 0}
	keys1 := []int{2, 2, 1, 1}
	Sort2(keys0, keys1, len(keys0), 1)
	require.Equal(t, []int{0, 0, 1, 1}, keys0)
	require.Equal(t, []int{1, 2, 1, 2}, keys1)
}

func TestSort2ParallelMatchesSequential(t *testing.T) {
	keys0seq := []int{3, 1, 2, 1, 3, 2, 1, 0}
	keys1seq := []int{1, 5, 2, 1, 0, 9, 3, 4}
	keys0par := slices.Clone(keys0seq)
	keys1par := slices.Clone(keys1seq)

	Sort2(keys0seq, keys1seq, len(keys0seq), 1)
	Sort2(keys0par, keys1par, len(keys0par), 3)

	require.Equal(t, keys0seq, keys0par)
	require.Equal(t, keys1seq, keys1par)
}
