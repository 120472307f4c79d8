package spatial

import "math"

// NewGraph returns an empty undirected graph over n vertices indexed 0..n-1.
// A non-positive n yields a graph of order zero.
func NewGraph(n int) *Graph {
	if n < 0 {
		n = 0
	}
	return &Graph{adjacency: make([][]Neighbor, n)}
}

// Order returns the number of vertices.
func (g *Graph) Order() int {
	return len(g.adjacency)
}

// Size returns the number of undirected edges.
func (g *Graph) Size() int {
	return g.edges
}

// AddEdge connects a and b symmetrically with the given planar distance.
// Returns ErrIndexOutOfRange, ErrSelfLoop, ErrBadDistance or
// ErrDuplicateEdge when the edge cannot be added.
func (g *Graph) AddEdge(a, b int, distance float64) error {
	if a < 0 || a >= len(g.adjacency) || b < 0 || b >= len(g.adjacency) {
		return ErrIndexOutOfRange
	}
	if a == b {
		return ErrSelfLoop
	}
	if distance <= 0 || math.IsInf(distance, 0) || math.IsNaN(distance) {
		return ErrBadDistance
	}
	if _, ok := g.Distance(a, b); ok {
		return ErrDuplicateEdge
	}
	g.adjacency[a] = append(g.adjacency[a], Neighbor{Index: b, Distance: distance})
	g.adjacency[b] = append(g.adjacency[b], Neighbor{Index: a, Distance: distance})
	g.edges++

	return nil
}

// Neighbors returns the adjacency of vertex i in insertion order.
// The returned slice is owned by the graph and must not be mutated.
// Out-of-range indices yield nil.
func (g *Graph) Neighbors(i int) []Neighbor {
	if i < 0 || i >= len(g.adjacency) {
		return nil
	}
	return g.adjacency[i]
}

// Distance reports the planar distance of the edge a-b and whether such an
// edge exists. Absent edges report (0, false); any unit-distance fallback is
// the caller's policy, not the graph's.
func (g *Graph) Distance(a, b int) (float64, bool) {
	if a < 0 || a >= len(g.adjacency) || b < 0 || b >= len(g.adjacency) {
		return 0, false
	}
	// Scan the smaller adjacency of the two endpoints.
	from, to := a, b
	if len(g.adjacency[b]) < len(g.adjacency[a]) {
		from, to = b, a
	}
	for _, nb := range g.adjacency[from] {
		if nb.Index == to {
			return nb.Distance, true
		}
	}

	return 0, false
}
