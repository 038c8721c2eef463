package matrix_test

import (
	"testing"

	"github.com/katalvlaran/tabular/matrix"
)

// buildBench creates a deterministic n×m matrix of ints for benchmarks.
func buildBench(n, m int) *matrix.Matrix {
	rows := make([][]any, n)
	for i := 0; i < n; i++ {
		row := make([]any, m)
		for j := 0; j < m; j++ {
			row[j] = i*m + j
		}
		rows[i] = row
	}
	return matrix.MustNew(rows)
}

// BenchmarkTranspose measures Transpose on a 1000×100 matrix.
// Complexity: O(r·c)
func BenchmarkTranspose(b *testing.B) {
	m := buildBench(1000, 100)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = m.Transpose()
	}
}

// BenchmarkSortRows measures a stable whole-row sort on 10000 rows.
// Complexity: O(r·log r)
func BenchmarkSortRows(b *testing.B) {
	m := buildBench(10000, 5)
	less := func(a, c []any) bool { return a[0].(int) > c[0].(int) }
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = m.SortRows(less)
	}
}

// BenchmarkMap measures the cell-wise transform on a 1000×100 matrix.
// Complexity: O(r·c)
func BenchmarkMap(b *testing.B) {
	m := buildBench(1000, 100)
	double := func(v any) any { return v.(int) * 2 }
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = m.Map(double)
	}
}
