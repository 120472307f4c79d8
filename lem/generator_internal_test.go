package lem

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fastlem/spatial"
)

// fixtureModel is an in-package Model used to reach the unexported passes.
type fixtureModel struct {
	graph   *spatial.Graph
	areas   []float64
	outlets []int
}

func (m *fixtureModel) Num() int              { return m.graph.Order() }
func (m *fixtureModel) Areas() []float64      { return m.areas }
func (m *fixtureModel) Graph() *spatial.Graph { return m.graph }
func (m *fixtureModel) DefaultOutlets() []int { return m.outlets }

func (m *fixtureModel) CreateTerrainFromResult(elevations []float64) []float64 {
	return append([]float64(nil), elevations...)
}

// TestConvergenceIsFixedPoint: once Generate terminates naturally (no cap),
// running one more multi-flow pass over the result must change nothing.
func TestConvergenceIsFixedPoint(t *testing.T) {
	const n = 5
	g := spatial.NewGraph(n)
	areas := make([]float64, n)
	for i := 0; i < n; i++ {
		areas[i] = 1.0
		if i+1 < n {
			require.NoError(t, g.AddEdge(i, i+1, 1.0))
		}
	}
	model := &fixtureModel{graph: g, areas: areas, outlets: []int{0}}

	gen := NewTerrainGenerator[[]float64]().
		SetModel(model).
		SetParameters(func() []TopographicalParameters {
			params := make([]TopographicalParameters, n)
			for i := range params {
				params[i] = DefaultTopographicalParameters()
			}
			return params
		}())

	elevations, err := gen.Generate()
	require.NoError(t, err)

	before := append([]float64(nil), elevations...)
	changed := gen.multiFlowPass(elevations, g, areas)
	require.False(t, changed, "a converged field must be a fixed point")
	require.Equal(t, before, elevations)
}
