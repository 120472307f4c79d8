package terrain

import "github.com/katalvlaran/fastlem/spatial"

// Num returns the number of sites.
func (m *Model2D) Num() int {
	return len(m.sites)
}

// Sites returns the (possibly relaxed) site positions. The slice is owned by
// the model and must not be mutated.
func (m *Model2D) Sites() []Site2D {
	return m.sites
}

// Areas returns the per-site base catchment areas.
func (m *Model2D) Areas() []float64 {
	return m.areas
}

// Graph returns the distance-weighted adjacency between sites.
func (m *Model2D) Graph() *spatial.Graph {
	return m.graph
}

// DefaultOutlets returns the convex-hull site indices, the boundary sites
// water leaves the model through when no parameter flags an outlet.
func (m *Model2D) DefaultOutlets() []int {
	return m.outlets
}

// Bounds returns the model's bounding box.
func (m *Model2D) Bounds() (min, max Site2D) {
	return m.min, m.max
}

// CreateTerrainFromResult pairs the model's site cloud with a finished
// elevation field. The elevations are copied.
func (m *Model2D) CreateTerrainFromResult(elevations []float64) *Terrain2D {
	return &Terrain2D{
		sites:      m.sites,
		elevations: append([]float64(nil), elevations...),
		tri:        m.tri,
		min:        m.min,
		max:        m.max,
	}
}
