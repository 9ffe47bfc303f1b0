package mmio

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"sort"
	"strconv"

	grb "github.com/intel/forGraphBLASGo/GrB"
)

// Write emits m as `%%MatrixMarket matrix coordinate <type> <storage>`,
// an informational `%%GraphBLAS <typename>` line, the size triple, then
// tuples in column-major order (§4.B). When storage is non-general, only
// the lower triangle is written.
func Write[T Numeric](w io.Writer, m grb.Matrix[T], storage Storage) error {
	rows, cols, vals, err := extractSorted(m)
	if err != nil {
		return err
	}
	return writeCommon(w, m, storage, typeNameOf[T](), rows, cols, func(i int) string {
		return formatValue(vals[i])
	})
}

// WriteBool emits a pattern-friendly boolean matrix using integer 0/1
// values; Matrix Market has no native boolean type.
func WriteBool(w io.Writer, m grb.Matrix[bool], storage Storage) error {
	rows, cols, vals, err := extractSortedBool(m)
	if err != nil {
		return err
	}
	return writeCommon(w, m, storage, "bool", rows, cols, func(i int) string {
		if vals[i] {
			return "1"
		}
		return "0"
	})
}

func writeCommon[T any](w io.Writer, m grb.Matrix[T], storage Storage, typeName string, rows, cols []int, value func(i int) string) error {
	nrows, err := m.NRows()
	if err != nil {
		return err
	}
	ncols, err := m.NCols()
	if err != nil {
		return err
	}

	mmType := TypeReal
	switch typeName {
	case "int8", "int16", "int32", "int64", "uint8", "uint16", "uint32", "uint64":
		mmType = TypeInteger
	case "bool":
		mmType = TypeInteger
	}

	kept := make([]int, 0, len(rows))
	for i := range rows {
		if storage != General && rows[i] < cols[i] {
			continue
		}
		kept = append(kept, i)
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%%%%MatrixMarket matrix coordinate %s %s\n", mmType, storage)
	fmt.Fprintf(bw, "%%%%GraphBLAS %s\n", typeName)
	fmt.Fprintf(bw, "%d %d %d\n", nrows, ncols, len(kept))
	for _, i := range kept {
		fmt.Fprintf(bw, "%d %d %s\n", rows[i]+1, cols[i]+1, value(i))
	}
	return bw.Flush()
}

// extractSorted reads m's tuples and orders them column-major, per §4.B's
// write-order requirement.
func extractSorted[T any](m grb.Matrix[T]) (rows, cols []int, vals []T, err error) {
	if err := m.ExtractTuples(&rows, &cols, &vals); err != nil {
		return nil, nil, nil, err
	}
	idx := columnMajorOrder(rows, cols)
	return reorder(rows, idx), reorder(cols, idx), reorder(vals, idx), nil
}

func extractSortedBool(m grb.Matrix[bool]) (rows, cols []int, vals []bool, err error) {
	return extractSorted(m)
}

func columnMajorOrder(rows, cols []int) []int {
	idx := make([]int, len(rows))
	for i := range idx {
		idx[i] = i
	}
	sort.Slice(idx, func(a, b int) bool {
		ia, ib := idx[a], idx[b]
		if cols[ia] != cols[ib] {
			return cols[ia] < cols[ib]
		}
		return rows[ia] < rows[ib]
	})
	return idx
}

func reorder[T any](v []T, idx []int) []T {
	out := make([]T, len(v))
	for i, j := range idx {
		out[i] = v[j]
	}
	return out
}

// formatValue prints an integer exactly, or a float with the shortest
// decimal representation that round-trips (§4.B), using Go's strconv
// shortest-form formatting (the same guarantee 'g'-format float printing
// gives in the teacher's %v-based output, made explicit here).
func formatValue[T any](v T) string {
	switch x := any(v).(type) {
	case int8:
		return strconv.FormatInt(int64(x), 10)
	case int16:
		return strconv.FormatInt(int64(x), 10)
	case int32:
		return strconv.FormatInt(int64(x), 10)
	case int64:
		return strconv.FormatInt(x, 10)
	case uint8:
		return strconv.FormatUint(uint64(x), 10)
	case uint16:
		return strconv.FormatUint(uint64(x), 10)
	case uint32:
		return strconv.FormatUint(uint64(x), 10)
	case uint64:
		return strconv.FormatUint(x, 10)
	case float32:
		return formatFloat(float64(x), 32)
	case float64:
		return formatFloat(x, 64)
	default:
		return fmt.Sprintf("%v", x)
	}
}

func formatFloat(v float64, bitSize int) string {
	switch {
	case math.IsInf(v, 1):
		return "+inf"
	case math.IsInf(v, -1):
		return "-inf"
	case math.IsNaN(v):
		return "nan"
	}
	return strconv.FormatFloat(v, 'g', -1, bitSize)
}

func typeNameOf[T Numeric]() string {
	var zero T
	switch any(zero).(type) {
	case int8:
		return "int8"
	case int16:
		return "int16"
	case int32:
		return "int32"
	case int64:
		return "int64"
	case uint8:
		return "uint8"
	case uint16:
		return "uint16"
	case uint32:
		return "uint32"
	case uint64:
		return "uint64"
	case float32:
		return "float"
	case float64:
		return "double"
	default:
		return "user-defined"
	}
}
