// Package terrain provides the 2-D spatial model consumed by the lem
// generator: a Delaunay triangulation over a planar site cloud, exposed as a
// distance-weighted spatial.Graph with per-site catchment areas and a
// default outlet set on the convex hull.
//
// Model2DBuilder turns raw sites into a Model2D. Sites may optionally be
// relaxed toward their Delaunay-neighbor centroids before the final
// triangulation to even out clustering (hull sites stay pinned). Per-site
// base area is one third of the summed areas of the site's incident
// triangles, so the areas of a triangulation always add up to its total
// covered area.
//
// Model2D implements lem.Model[*Terrain2D]; the resulting Terrain2D couples
// the site cloud with its final elevations and answers point queries by
// barycentric interpolation with a triangle-walk point location.
package terrain
