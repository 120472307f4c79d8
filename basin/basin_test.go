package basin_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fastlem/basin"
	"github.com/katalvlaran/fastlem/spatial"
	"github.com/katalvlaran/fastlem/streamtree"
)

// lineFixture wires a monotone n-site line and routes it to outlet 0.
func lineFixture(t *testing.T, n int) (*spatial.Graph, *streamtree.StreamTree) {
	t.Helper()
	g := spatial.NewGraph(n)
	elev := make([]float64, n)
	for i := 0; i < n; i++ {
		elev[i] = float64(i)
		if i+1 < n {
			require.NoError(t, g.AddEdge(i, i+1, 1.0))
		}
	}
	return g, streamtree.Construct(elev, g, []int{0})
}

// TestLineOrders pins the exact traversal orders on a 5-site line graph:
// downstream must be [leaves..outlet], upstream the exact reverse.
func TestLineOrders(t *testing.T) {
	g, tree := lineFixture(t, 5)
	b := basin.Construct(0, tree, g)
	require.Equal(t, 5, b.Size())

	var down, up []int
	b.ForEachDownstream(func(i int) { down = append(down, i) })
	b.ForEachUpstream(func(i int) { up = append(up, i) })

	require.Equal(t, []int{4, 3, 2, 1, 0}, down)
	require.Equal(t, []int{0, 1, 2, 3, 4}, up)
}

// TestYTreePartialOrder verifies the order contract on a branching basin:
// every site appears after its flow-children in downstream order, and
// upstream is the exact reverse.
func TestYTreePartialOrder(t *testing.T) {
	//      3   4
	//       \ /
	//    1   2
	//     \ /
	//      0 (outlet)
	g := spatial.NewGraph(5)
	for _, e := range [][2]int{{0, 1}, {0, 2}, {2, 3}, {2, 4}} {
		require.NoError(t, g.AddEdge(e[0], e[1], 1.0))
	}
	elev := []float64{0, 1, 1, 2, 2}
	tree := streamtree.Construct(elev, g, []int{0})
	b := basin.Construct(0, tree, g)
	require.Equal(t, 5, b.Size())

	var down, up []int
	b.ForEachDownstream(func(i int) { down = append(down, i) })
	b.ForEachUpstream(func(i int) { up = append(up, i) })

	pos := make(map[int]int, len(down))
	for k, i := range down {
		pos[i] = k
	}
	for i, j := range tree.Next {
		if i == j {
			continue
		}
		require.Less(t, pos[i], pos[j], "site %d must be visited before its downstream %d", i, j)
	}

	for k := range up {
		require.Equal(t, down[len(down)-1-k], up[k], "upstream must reverse downstream")
	}
}

// TestDisjointBasins checks that two outlets partition the reachable sites.
func TestDisjointBasins(t *testing.T) {
	// 0 and 4 are outlets on a line; the ridge lies between them.
	g := spatial.NewGraph(5)
	for i := 0; i+1 < 5; i++ {
		require.NoError(t, g.AddEdge(i, i+1, 1.0))
	}
	elev := []float64{0, 1, 2, 1, 0}
	tree := streamtree.Construct(elev, g, []int{0, 4})

	left := basin.Construct(0, tree, g)
	right := basin.Construct(4, tree, g)

	seen := map[int]int{}
	left.ForEachUpstream(func(i int) { seen[i]++ })
	right.ForEachUpstream(func(i int) { seen[i]++ })

	require.Equal(t, 5, left.Size()+right.Size())
	for i, count := range seen {
		require.Equal(t, 1, count, "site %d appears in more than one basin", i)
	}
}

// TestUnreachableSiteInNoBasin ensures self-routed island sites are excluded.
func TestUnreachableSiteInNoBasin(t *testing.T) {
	g := spatial.NewGraph(4)
	require.NoError(t, g.AddEdge(0, 1, 1.0))
	require.NoError(t, g.AddEdge(2, 3, 1.0))
	tree := streamtree.Construct([]float64{0, 1, 5, 6}, g, []int{0})

	b := basin.Construct(0, tree, g)
	require.Equal(t, 2, b.Size())
	b.ForEachUpstream(func(i int) {
		require.Contains(t, []int{0, 1}, i)
	})
}

// TestOutletOutOfRange yields an empty basin rather than panicking.
func TestOutletOutOfRange(t *testing.T) {
	g, tree := lineFixture(t, 3)
	require.Equal(t, 0, basin.Construct(-1, tree, g).Size())
	require.Equal(t, 0, basin.Construct(7, tree, g).Size())
}
