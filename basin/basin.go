package basin

import (
	"github.com/katalvlaran/fastlem/spatial"
	"github.com/katalvlaran/fastlem/streamtree"
)

// DrainageBasin holds the sites draining to a single outlet in a
// root-to-leaves order. It is immutable once constructed.
type DrainageBasin struct {
	// order lists the basin's sites with every site preceding all sites that
	// flow into it; order[0] is the outlet.
	order []int
}

// Construct collects every site whose downstream chain under t terminates at
// outlet. Flow-children are discovered through the graph adjacency: v is a
// child of u exactly when t.Next[v] == u. An out-of-range outlet yields an
// empty basin.
func Construct(outlet int, t *streamtree.StreamTree, g *spatial.Graph) *DrainageBasin {
	if outlet < 0 || outlet >= len(t.Next) {
		return &DrainageBasin{}
	}

	order := make([]int, 0, 16)
	stack := []int{outlet}
	for len(stack) > 0 {
		u := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		order = append(order, u)
		for _, nb := range g.Neighbors(u) {
			v := nb.Index
			if v != u && v < len(t.Next) && t.Next[v] == u {
				stack = append(stack, v)
			}
		}
	}

	return &DrainageBasin{order: order}
}

// Size returns the number of sites in the basin, the outlet included.
func (b *DrainageBasin) Size() int {
	return len(b.order)
}

// ForEachDownstream calls visit for every basin site in an order where a
// site is visited only after all sites whose Next points to it.
func (b *DrainageBasin) ForEachDownstream(visit func(i int)) {
	for k := len(b.order) - 1; k >= 0; k-- {
		visit(b.order[k])
	}
}

// ForEachUpstream calls visit in the exact reverse of ForEachDownstream:
// the outlet first, then outward so that every site is visited after its
// downstream neighbor.
func (b *DrainageBasin) ForEachUpstream(visit func(i int)) {
	for _, i := range b.order {
		visit(i)
	}
}
