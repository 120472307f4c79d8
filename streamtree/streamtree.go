package streamtree

import (
	"container/heap"

	"github.com/katalvlaran/fastlem/spatial"
)

// StreamTree records, for every site, its unique downstream neighbor under
// the single-flow-direction rule. Next[i] == i means site i has no downstream
// flow: it is either an outlet or unreachable from every outlet.
type StreamTree struct {
	Next []int
}

// floodItem is a heap entry: a site together with the spill elevation at
// which the flood front reaches it.
type floodItem struct {
	index int
	spill float64
	seq   int // insertion sequence, breaks spill ties deterministically
}

// floodQueue is a min-heap over spill elevation ordered FIFO among equals.
type floodQueue []floodItem

func (q floodQueue) Len() int { return len(q) }

func (q floodQueue) Less(i, j int) bool {
	if q[i].spill != q[j].spill {
		return q[i].spill < q[j].spill
	}
	return q[i].seq < q[j].seq
}

func (q floodQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *floodQueue) Push(x any) { *q = append(*q, x.(floodItem)) }

func (q *floodQueue) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]
	return item
}

// Construct builds the stream tree for the given elevation field.
// elevations holds one value per site and must match g.Order(); outlets are
// the site indices acting as fixed boundary conditions. Out-of-range outlet
// indices are ignored. Construct never fails: degenerate inputs simply yield
// a tree where every site points at itself.
func Construct(elevations []float64, g *spatial.Graph, outlets []int) *StreamTree {
	n := len(elevations)
	next := make([]int, n)
	for i := range next {
		next[i] = i
	}
	routed := make([]bool, n)

	pq := make(floodQueue, 0, n)
	heap.Init(&pq)
	seq := 0
	for _, o := range outlets {
		if o < 0 || o >= n || routed[o] {
			continue
		}
		routed[o] = true
		heap.Push(&pq, floodItem{index: o, spill: elevations[o], seq: seq})
		seq++
	}

	// Flood from the outlet set: the lowest spill elevation expands first, so
	// each site is attached to the neighbor water actually escapes through.
	for pq.Len() > 0 {
		cur := heap.Pop(&pq).(floodItem)
		for _, nb := range g.Neighbors(cur.index) {
			v := nb.Index
			if v >= n || routed[v] {
				continue
			}
			routed[v] = true
			next[v] = cur.index
			spill := cur.spill
			if elevations[v] > spill {
				spill = elevations[v]
			}
			heap.Push(&pq, floodItem{index: v, spill: spill, seq: seq})
			seq++
		}
	}

	return &StreamTree{Next: next}
}
