package terrain_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fastlem/terrain"
)

// unitSquare is four corner sites plus a center site.
func unitSquareSites() []terrain.Site2D {
	return []terrain.Site2D{
		{X: 0, Y: 0},
		{X: 1, Y: 0},
		{X: 1, Y: 1},
		{X: 0, Y: 1},
		{X: 0.5, Y: 0.5},
	}
}

// TestBuild_Errors covers the builder's rejection paths.
func TestBuild_Errors(t *testing.T) {
	t.Run("TooFewSites", func(t *testing.T) {
		_, err := terrain.NewModel2DBuilder().
			SetSites([]terrain.Site2D{{X: 0, Y: 0}, {X: 1, Y: 1}}).
			Build()
		require.ErrorIs(t, err, terrain.ErrTooFewSites)
	})

	t.Run("InvalidBounds", func(t *testing.T) {
		_, err := terrain.NewModel2DBuilder().
			SetSites(unitSquareSites()).
			SetBoundingBox(terrain.Site2D{X: 1, Y: 1}, terrain.Site2D{X: 0, Y: 0}).
			Build()
		require.ErrorIs(t, err, terrain.ErrInvalidBounds)
	})

	t.Run("CollinearSites", func(t *testing.T) {
		_, err := terrain.NewModel2DBuilder().
			SetSites([]terrain.Site2D{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}}).
			Build()
		require.ErrorIs(t, err, terrain.ErrTriangulation)
	})
}

// TestBuild_UnitSquare checks the structural invariants of a tiny model:
// symmetric positive-distance adjacency, areas summing to the covered area,
// and hull sites as default outlets.
func TestBuild_UnitSquare(t *testing.T) {
	model, err := terrain.NewModel2DBuilder().SetSites(unitSquareSites()).Build()
	require.NoError(t, err)
	require.Equal(t, 5, model.Num())

	// Center connects to all four corners; every corner connects to it.
	g := model.Graph()
	for corner := 0; corner < 4; corner++ {
		d, ok := g.Distance(corner, 4)
		require.True(t, ok, "corner %d must neighbor the center", corner)
		require.InDelta(t, math.Sqrt2/2, d, 1e-12)
	}

	// Per-site areas add up to the area of the triangulated square.
	total := 0.0
	for _, a := range model.Areas() {
		require.Greater(t, a, 0.0)
		total += a
	}
	require.InDelta(t, 1.0, total, 1e-12)

	// All four corners lie on the hull; the center does not.
	require.Equal(t, []int{0, 1, 2, 3}, model.DefaultOutlets())

	min, max := model.Bounds()
	require.Equal(t, terrain.Site2D{X: 0, Y: 0}, min)
	require.Equal(t, terrain.Site2D{X: 1, Y: 1}, max)
}

// TestRelaxSites pins hull sites and pulls interior sites toward their
// neighbor centroid.
func TestRelaxSites(t *testing.T) {
	sites := unitSquareSites()
	sites[4] = terrain.Site2D{X: 0.9, Y: 0.8} // off-center interior site

	model, err := terrain.NewModel2DBuilder().
		SetSites(sites).
		RelaxSites(1).
		Build()
	require.NoError(t, err)

	relaxed := model.Sites()
	for corner := 0; corner < 4; corner++ {
		require.Equal(t, sites[corner], relaxed[corner], "hull site %d must stay pinned", corner)
	}

	before := math.Hypot(sites[4].X-0.5, sites[4].Y-0.5)
	after := math.Hypot(relaxed[4].X-0.5, relaxed[4].Y-0.5)
	require.Less(t, after, before, "relaxation must pull the interior site toward the centroid")
}

// TestElevationAt interpolates exactly at sites and linearly between them.
func TestElevationAt(t *testing.T) {
	model, err := terrain.NewModel2DBuilder().SetSites(unitSquareSites()).Build()
	require.NoError(t, err)

	elevations := []float64{0, 1, 2, 3, 10}
	tr := model.CreateTerrainFromResult(elevations)

	for i, s := range tr.Sites() {
		e, ok := tr.ElevationAt(s.X, s.Y)
		require.True(t, ok, "site %d must be inside the hull", i)
		require.InDelta(t, elevations[i], e, 1e-9)
	}

	// Midpoint of the center-to-corner edge interpolates linearly.
	e, ok := tr.ElevationAt(0.25, 0.25)
	require.True(t, ok)
	require.InDelta(t, 5.0, e, 1e-9)

	// Outside the hull there is no elevation.
	_, ok = tr.ElevationAt(2.0, 2.0)
	require.False(t, ok)
	_, ok = tr.ElevationAt(-0.5, 0.5)
	require.False(t, ok)
}

// TestCreateTerrainCopiesElevations guards against aliasing the caller's slice.
func TestCreateTerrainCopiesElevations(t *testing.T) {
	model, err := terrain.NewModel2DBuilder().SetSites(unitSquareSites()).Build()
	require.NoError(t, err)

	elevations := []float64{0, 0, 0, 0, 5}
	tr := model.CreateTerrainFromResult(elevations)
	elevations[4] = -100

	e, ok := tr.ElevationAt(0.5, 0.5)
	require.True(t, ok)
	require.InDelta(t, 5.0, e, 1e-9)
}
