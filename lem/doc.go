// Package lem implements a stream-power landscape evolution model: given a
// distance-weighted site graph and per-site physical parameters, it iterates
// an elevation field until erosion balances tectonic uplift.
//
// The solver alternates two structurally different elevation updates:
//
//   - The first iteration builds a single-flow-direction stream tree
//     (streamtree), splits it into drainage basins (basin), accumulates
//     drainage area downstream, propagates response times upstream under a
//     celerity of erodibility × area^0.5, and recomputes elevations
//     absolutely from each basin's outlet.
//
//   - Every later iteration partitions flow among all strictly lower and
//     higher neighbors, weighted by (elevation difference / distance)^4,
//     relaxes drainage area for a fixed 5 sweeps and response time for a
//     fixed 20 sweeps, and applies an incremental uplift-scaled update.
//
// The loop ends when a full pass changes no elevation, or when the optional
// iteration cap is reached. The cap bounds total passes, the first
// single-flow pass included. The mode split and the cap use two separate
// pieces of state (a first-pass flag and an iteration counter), so neither
// can drift against the other.
//
// The generator is a builder: SetModel and SetParameters are required,
// SetMaxIteration and SetObserver optional. All argument validation happens
// before the first pass; numerical degeneracies inside the loop (missing
// edge attributes, empty weight sums) fall back to documented defaults
// instead of failing.
package lem
