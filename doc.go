// Package fastlem simulates landscape evolution: it computes elevation
// fields for planar site networks by balancing stream-power erosion against
// tectonic uplift.
//
// 🏔 What is fastlem?
//
//	A pure-Go landscape evolution model built from small, composable packages:
//		• spatial    — index-addressed undirected graph with distance-weighted edges
//		• streamtree — single-flow-direction routing via priority-flood
//		• basin      — drainage-basin extraction with upstream/downstream orders
//		• lem        — the iterative elevation solver (single- and multi-flow passes)
//		• terrain    — Delaunay-triangulated 2-D spatial model and interpolating terrain
//
// ✨ Why choose fastlem?
//
//   - Deterministic — seeded jitter, reproducible elevation fields
//   - Physically grounded — stream-power law, drainage-area celerity, slope clamps
//   - Small API — a builder, a parameter slice, one Generate call
//   - Pure Go library core — the zap/yaml/png machinery stays in cmd/
//
// Quick sketch of a run:
//
//	model, _ := terrain.NewModel2DBuilder().SetSites(sites).Build()
//	result, err := lem.NewTerrainGenerator[*terrain.Terrain2D]().
//		SetModel(model).
//		SetParameters(params).
//		SetMaxIteration(100).
//		Generate()
//
// The cmd/fastlem front-end wires the same pipeline to a YAML scenario and
// renders the result as a grayscale PNG heightmap.
package fastlem
