// Package basin extracts drainage basins from a stream tree: the connected
// set of sites whose downstream chain terminates at one chosen outlet,
// together with the two traversal orders the erosion solver needs.
//
// ForEachDownstream visits a site only after every site flowing into it has
// been visited (headwaters toward the outlet) and is used to accumulate
// drainage area. ForEachUpstream is its exact reverse (outlet toward
// headwaters) and is used to propagate response times and elevations
// outward from the boundary condition.
//
// Construction is a single depth-first walk over the basin's sites, linear
// in the number of basin edges. Distinct outlets yield disjoint basins that
// partition the outlet-reachable portion of the site set.
package basin
