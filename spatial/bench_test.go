package spatial_test

import (
	"testing"

	"github.com/katalvlaran/fastlem/spatial"
)

// BenchmarkAddEdge_Chain measures edge insertion on a linear chain of size N.
func BenchmarkAddEdge_Chain(b *testing.B) {
	const N = 10000

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		g := spatial.NewGraph(N + 1)
		for v := 0; v < N; v++ {
			_ = g.AddEdge(v, v+1, 1.0)
		}
	}
}

// BenchmarkDistance_Chain measures pairwise distance lookups along the chain.
func BenchmarkDistance_Chain(b *testing.B) {
	const N = 10000
	g := spatial.NewGraph(N + 1)
	for v := 0; v < N; v++ {
		_ = g.AddEdge(v, v+1, 1.0)
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = g.Distance(i%N, i%N+1)
	}
}
