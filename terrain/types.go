// Package terrain defines the spatial-model types and sentinel errors for
// github.com/katalvlaran/fastlem.
package terrain

import (
	"errors"

	"github.com/fogleman/delaunay"

	"github.com/katalvlaran/fastlem/spatial"
)

// Sentinel errors for model construction.
var (
	// ErrTooFewSites indicates fewer than three sites were supplied.
	ErrTooFewSites = errors.New("terrain: at least three sites are required")
	// ErrInvalidBounds indicates a bounding box with non-positive extent.
	ErrInvalidBounds = errors.New("terrain: bounding box must have positive extent")
	// ErrTriangulation indicates the site cloud could not be triangulated
	// (e.g. all sites collinear).
	ErrTriangulation = errors.New("terrain: triangulation failed")
)

// Site2D is a site position on the plane.
type Site2D struct {
	X, Y float64
}

// Model2D is an immutable spatial model over a triangulated site cloud.
// It satisfies lem.Model[*Terrain2D].
type Model2D struct {
	sites    []Site2D
	areas    []float64
	graph    *spatial.Graph
	outlets  []int
	tri      *delaunay.Triangulation
	min, max Site2D
}

// Terrain2D is the terrain artifact produced from a finished simulation:
// the model's site cloud paired with its final elevation field.
type Terrain2D struct {
	sites      []Site2D
	elevations []float64
	tri        *delaunay.Triangulation
	min, max   Site2D
}
