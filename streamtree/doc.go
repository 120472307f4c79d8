// Package streamtree derives a single-flow-direction stream tree from an
// elevation field: every site is assigned the one neighbor its surface water
// flows into, forming a forest rooted at the outlet set.
//
// Construction uses priority-flood flow routing. A min-heap is seeded with
// the outlets keyed by their elevation; sites are popped in order of
// increasing spill elevation and each still-unrouted neighbor of a popped
// site is attached to it. This resolves local minima (pits drain over their
// lowest spill) without any explicit depression-filling pass, guarantees
// termination, and cannot produce cycles because a site's downstream
// assignment is fixed the moment it is first reached.
//
// Sites in components that contain no outlet are never reached and keep
// pointing at themselves; they belong to no drainage basin.
//
// Complexity:
//
//   - Time:   O((V + E) log V) heap operations
//   - Memory: O(V) for the routing table and heap
package streamtree
