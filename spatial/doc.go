// Package spatial provides the index-addressed, edge-attributed undirected
// graph that carries the planar topology of a terrain site set.
//
// Vertices are dense integer indices 0..n-1 fixed at construction time; each
// undirected edge stores a single float64 attribute, the planar distance
// between its endpoints. The graph is built once by a spatial model (e.g. a
// Delaunay triangulation of the site cloud) and afterwards only read by the
// flow-routing and erosion algorithms, so mutation is limited to AddEdge and
// reads take no locks.
//
// Complexity:
//
//   - AddEdge:   O(deg) duplicate check, amortized O(1) insertion
//   - Neighbors: O(1) (returns the internal adjacency slice)
//   - Distance:  O(deg) scan of the smaller endpoint's adjacency
//   - Memory:    O(V + E)
package spatial
