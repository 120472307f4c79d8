package lem_test

import (
	"fmt"

	"github.com/katalvlaran/fastlem/lem"
	"github.com/katalvlaran/fastlem/spatial"
)

// ExampleTerrainGenerator demonstrates one erosion pass over a four-site
// ridge line draining into an outlet at site 0. Elevations grow with the
// accumulated response time away from the outlet.
func ExampleTerrainGenerator() {
	g := spatial.NewGraph(4)
	for i := 0; i+1 < 4; i++ {
		_ = g.AddEdge(i, i+1, 1.0)
	}
	model := &lineExampleModel{graph: g, areas: []float64{1, 1, 1, 1}, outlets: []int{0}}

	params := make([]lem.TopographicalParameters, 4)
	for i := range params {
		params[i] = lem.DefaultTopographicalParameters().SetUpliftRate(1.0)
	}

	elevations, err := lem.NewTerrainGenerator[[]float64]().
		SetModel(model).
		SetParameters(params).
		SetMaxIteration(1).
		Generate()
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	for _, e := range elevations {
		fmt.Printf("%.3f ", e)
	}
	// Output:
	// 0.000 0.577 1.284 2.284
}

// lineExampleModel is the smallest possible Model for the example above.
type lineExampleModel struct {
	graph   *spatial.Graph
	areas   []float64
	outlets []int
}

func (m *lineExampleModel) Num() int              { return m.graph.Order() }
func (m *lineExampleModel) Areas() []float64      { return m.areas }
func (m *lineExampleModel) Graph() *spatial.Graph { return m.graph }
func (m *lineExampleModel) DefaultOutlets() []int { return m.outlets }

func (m *lineExampleModel) CreateTerrainFromResult(elevations []float64) []float64 {
	return append([]float64(nil), elevations...)
}
