// Package spatial defines the graph types and sentinel errors shared by the
// flow-routing packages of github.com/katalvlaran/fastlem.
package spatial

import "errors"

// Sentinel errors for spatial graph mutation.
var (
	// ErrIndexOutOfRange indicates a vertex index outside 0..Order()-1.
	ErrIndexOutOfRange = errors.New("spatial: vertex index out of range")
	// ErrSelfLoop indicates an edge whose endpoints coincide.
	ErrSelfLoop = errors.New("spatial: self-loops are not allowed")
	// ErrDuplicateEdge indicates an edge between endpoints already connected.
	ErrDuplicateEdge = errors.New("spatial: edge already exists")
	// ErrBadDistance indicates a non-positive or non-finite edge distance.
	ErrBadDistance = errors.New("spatial: edge distance must be positive and finite")
)

// Neighbor pairs an adjacent vertex index with the planar distance of the
// connecting edge.
type Neighbor struct {
	// Index is the adjacent vertex.
	Index int
	// Distance is the symmetric edge attribute (planar length).
	Distance float64
}

// Graph is a fixed-order undirected graph whose edges carry one float64
// distance attribute. The zero value is unusable; construct with NewGraph.
type Graph struct {
	adjacency [][]Neighbor
	edges     int
}
