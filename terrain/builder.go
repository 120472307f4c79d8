package terrain

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"github.com/fogleman/delaunay"

	"github.com/katalvlaran/fastlem/spatial"
)

// Model2DBuilder accumulates the inputs of a Model2D. Configure with the
// chainable setters and call Build.
type Model2DBuilder struct {
	sites     []Site2D
	min, max  *Site2D
	relaxIter int
}

// NewModel2DBuilder returns an empty builder.
func NewModel2DBuilder() *Model2DBuilder {
	return &Model2DBuilder{}
}

// SetSites sets the site cloud. The slice is copied on Build.
func (b *Model2DBuilder) SetSites(sites []Site2D) *Model2DBuilder {
	b.sites = sites
	return b
}

// SetBoundingBox fixes the model bounds. When unset, bounds are derived from
// the site cloud.
func (b *Model2DBuilder) SetBoundingBox(min, max Site2D) *Model2DBuilder {
	b.min, b.max = &min, &max
	return b
}

// RelaxSites smooths the site cloud n times before the final triangulation:
// each round moves every interior site to the centroid of its Delaunay
// neighbors, clamped to the bounds. Hull sites stay pinned.
func (b *Model2DBuilder) RelaxSites(n int) *Model2DBuilder {
	b.relaxIter = n
	return b
}

// Build triangulates the (optionally relaxed) site cloud and assembles the
// spatial graph, per-site areas and default hull outlets.
// Returns ErrTooFewSites, ErrInvalidBounds, or ErrTriangulation-wrapped
// failures from the triangulator.
func (b *Model2DBuilder) Build() (*Model2D, error) {
	if len(b.sites) < 3 {
		return nil, ErrTooFewSites
	}
	sites := append([]Site2D(nil), b.sites...)

	min, max := boundsOf(sites)
	if b.min != nil && b.max != nil {
		min, max = *b.min, *b.max
	}
	if !(min.X < max.X && min.Y < max.Y) {
		return nil, ErrInvalidBounds
	}

	tri, err := triangulate(sites)
	if err != nil {
		return nil, err
	}
	for i := 0; i < b.relaxIter; i++ {
		sites = relaxOnce(sites, tri, min, max)
		if tri, err = triangulate(sites); err != nil {
			return nil, err
		}
	}

	graph, err := buildGraph(sites, tri)
	if err != nil {
		return nil, err
	}

	return &Model2D{
		sites:   sites,
		areas:   siteAreas(sites, tri),
		graph:   graph,
		outlets: hullSites(tri),
		tri:     tri,
		min:     min,
		max:     max,
	}, nil
}

// triangulate adapts the site slice to the delaunay point type.
func triangulate(sites []Site2D) (*delaunay.Triangulation, error) {
	points := make([]delaunay.Point, len(sites))
	for i, s := range sites {
		points[i] = delaunay.Point{X: s.X, Y: s.Y}
	}
	tri, err := delaunay.Triangulate(points)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTriangulation, err)
	}
	return tri, nil
}

// boundsOf returns the tight axis-aligned bounds of the site cloud.
func boundsOf(sites []Site2D) (Site2D, Site2D) {
	min := Site2D{X: math.Inf(1), Y: math.Inf(1)}
	max := Site2D{X: math.Inf(-1), Y: math.Inf(-1)}
	for _, s := range sites {
		min.X = math.Min(min.X, s.X)
		min.Y = math.Min(min.Y, s.Y)
		max.X = math.Max(max.X, s.X)
		max.Y = math.Max(max.Y, s.Y)
	}
	return min, max
}

// nextHalfedge steps to the next halfedge within the same triangle.
func nextHalfedge(e int) int {
	if e%3 == 2 {
		return e - 2
	}
	return e + 1
}

// buildGraph converts triangulation edges into a symmetric spatial graph
// with Euclidean distances. Degenerate zero-length edges are skipped.
func buildGraph(sites []Site2D, tri *delaunay.Triangulation) (*spatial.Graph, error) {
	g := spatial.NewGraph(len(sites))
	for e := 0; e < len(tri.Triangles); e++ {
		twin := tri.Halfedges[e]
		if twin != -1 && twin < e {
			continue // undirected edge already added from its twin
		}
		p, q := tri.Triangles[e], tri.Triangles[nextHalfedge(e)]
		d := distance2D(sites[p], sites[q])
		if d <= 0 {
			continue
		}
		if err := g.AddEdge(p, q, d); err != nil && !errors.Is(err, spatial.ErrDuplicateEdge) {
			return nil, err
		}
	}
	return g, nil
}

// siteAreas assigns each site one third of every incident triangle's area.
func siteAreas(sites []Site2D, tri *delaunay.Triangulation) []float64 {
	areas := make([]float64, len(sites))
	for t := 0; t+2 < len(tri.Triangles); t += 3 {
		a := sites[tri.Triangles[t]]
		bs := sites[tri.Triangles[t+1]]
		c := sites[tri.Triangles[t+2]]
		area := math.Abs(cross2D(bs.X-a.X, bs.Y-a.Y, c.X-a.X, c.Y-a.Y)) / 2
		share := area / 3
		areas[tri.Triangles[t]] += share
		areas[tri.Triangles[t+1]] += share
		areas[tri.Triangles[t+2]] += share
	}
	return areas
}

// hullSites returns the sorted, deduplicated convex-hull site indices: the
// start points of every halfedge that has no twin.
func hullSites(tri *delaunay.Triangulation) []int {
	onHull := map[int]bool{}
	for e := 0; e < len(tri.Triangles); e++ {
		if tri.Halfedges[e] == -1 {
			onHull[tri.Triangles[e]] = true
			onHull[tri.Triangles[nextHalfedge(e)]] = true
		}
	}
	hull := make([]int, 0, len(onHull))
	for i := range onHull {
		hull = append(hull, i)
	}
	slices.Sort(hull)
	return hull
}

// relaxOnce moves every interior site to the centroid of its Delaunay
// neighbors, clamped to the bounds; hull sites stay pinned.
func relaxOnce(sites []Site2D, tri *delaunay.Triangulation, min, max Site2D) []Site2D {
	n := len(sites)
	sumX := make([]float64, n)
	sumY := make([]float64, n)
	count := make([]int, n)
	for e := 0; e < len(tri.Triangles); e++ {
		p, q := tri.Triangles[e], tri.Triangles[nextHalfedge(e)]
		sumX[p] += sites[q].X
		sumY[p] += sites[q].Y
		count[p]++
	}

	pinned := map[int]bool{}
	for _, i := range hullSites(tri) {
		pinned[i] = true
	}

	relaxed := append([]Site2D(nil), sites...)
	for i := 0; i < n; i++ {
		if pinned[i] || count[i] == 0 {
			continue
		}
		relaxed[i] = Site2D{
			X: clamp(sumX[i]/float64(count[i]), min.X, max.X),
			Y: clamp(sumY[i]/float64(count[i]), min.Y, max.Y),
		}
	}
	return relaxed
}

func distance2D(a, b Site2D) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

func cross2D(ax, ay, bx, by float64) float64 {
	return ax*by - ay*bx
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}
