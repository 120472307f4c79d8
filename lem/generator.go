package lem

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/fastlem/basin"
	"github.com/katalvlaran/fastlem/spatial"
	"github.com/katalvlaran/fastlem/streamtree"
)

// TerrainGenerator computes a steady-state or iteration-bounded elevation
// field for the sites of a Model. Configure it through the chainable setters
// and run Generate; the builder fields are immutable once Generate starts
// and the generator is not reentrant mid-loop.
type TerrainGenerator[T any] struct {
	model        Model[T]
	parameters   []TopographicalParameters
	maxIteration int
	hasMaxIter   bool
	observer     func(pass Pass, iteration int)
}

// NewTerrainGenerator returns an unconfigured generator.
func NewTerrainGenerator[T any]() *TerrainGenerator[T] {
	return &TerrainGenerator[T]{}
}

// SetModel sets the spatial model that supplies sites, areas, adjacency and
// default outlets.
func (g *TerrainGenerator[T]) SetModel(model Model[T]) *TerrainGenerator[T] {
	g.model = model
	return g
}

// SetParameters sets the per-site topographical parameters. The slice length
// must equal the model's site count.
func (g *TerrainGenerator[T]) SetParameters(parameters []TopographicalParameters) *TerrainGenerator[T] {
	g.parameters = parameters
	return g
}

// SetMaxIteration caps the total number of passes, the initial single-flow
// pass included. Without a cap the loop runs until every elevation is stable.
func (g *TerrainGenerator[T]) SetMaxIteration(n int) *TerrainGenerator[T] {
	g.maxIteration = n
	g.hasMaxIter = true
	return g
}

// SetObserver registers a hook invoked after every completed pass with the
// scheme that ran and the zero-based iteration index. Intended for progress
// reporting; a nil fn restores the no-op default.
func (g *TerrainGenerator[T]) SetObserver(fn func(pass Pass, iteration int)) *TerrainGenerator[T] {
	g.observer = fn
	return g
}

// Generate runs the simulation and hands the final elevation field to the
// model's terrain constructor.
//
// Returns ErrModelNotSet or ErrParametersNotSet when a required field is
// absent, and ErrInvalidNumberOfParameters when the parameter count differs
// from the site count. All three occur before any iteration runs.
func (g *TerrainGenerator[T]) Generate() (T, error) {
	var zero T
	if g.model == nil {
		return zero, ErrModelNotSet
	}
	if g.parameters == nil {
		return zero, ErrParametersNotSet
	}
	num := g.model.Num()
	if len(g.parameters) != num {
		return zero, ErrInvalidNumberOfParameters
	}

	graph := g.model.Graph()
	areas := g.model.Areas()

	// Effective outlet set: flagged sites, else the model's defaults.
	outlets := make([]int, 0, 4)
	for i, p := range g.parameters {
		if p.IsOutlet {
			outlets = append(outlets, i)
		}
	}
	if len(outlets) == 0 {
		outlets = append(outlets, g.model.DefaultOutlets()...)
	}

	// Seed elevations with a vanishingly small deterministic jitter so that
	// flat ties route reproducibly. This is tie-breaking noise, not physics.
	rng := rand.New(rand.NewSource(jitterSeed))
	elevations := make([]float64, num)
	for i, p := range g.parameters {
		elevations[i] = p.BaseElevation + rng.Float64()*elevationJitter
	}

	observe := g.observer
	if observe == nil {
		observe = func(Pass, int) {}
	}

	// Two separate pieces of loop state: firstPassDone selects the update
	// scheme, iterations counts passes against the cap.
	firstPassDone := false
	iterations := 0
	for {
		var changed bool
		if !firstPassDone {
			changed = g.singleFlowPass(elevations, graph, areas, outlets)
			observe(PassSingleFlow, iterations)
			firstPassDone = true
		} else {
			changed = g.multiFlowPass(elevations, graph, areas)
			observe(PassMultiFlow, iterations)
		}
		if !changed {
			break
		}
		iterations++
		if g.hasMaxIter && iterations >= g.maxIteration {
			break
		}
	}

	return g.model.CreateTerrainFromResult(elevations), nil
}

// edgeDistance looks up the planar distance between i and j, defaulting to
// defaultEdgeDistance when the graph has no attribute for the pair.
func edgeDistance(g *spatial.Graph, i, j int) float64 {
	if d, ok := g.Distance(i, j); ok {
		return d
	}
	return defaultEdgeDistance
}

// singleFlowPass runs the stream-tree based update and reports whether any
// elevation changed (exact floating-point inequality).
func (g *TerrainGenerator[T]) singleFlowPass(elevations []float64, graph *spatial.Graph, areas []float64, outlets []int) bool {
	num := len(elevations)
	tree := streamtree.Construct(elevations, graph, outlets)

	drainageAreas := append([]float64(nil), areas...)
	responseTimes := make([]float64, num)
	changed := false

	for _, outlet := range outlets {
		b := basin.Construct(outlet, tree, graph)

		// Accumulate drainage area from the headwaters toward the outlet.
		b.ForEachDownstream(func(i int) {
			if j := tree.Next[i]; j != i {
				drainageAreas[j] += drainageAreas[i]
			}
		})

		// Propagate response times from the outlet toward the headwaters.
		b.ForEachUpstream(func(i int) {
			j := tree.Next[i]
			celerity := g.parameters[i].Erodibility * math.Pow(drainageAreas[i], mExponent)
			responseTimes[i] += responseTimes[j] + edgeDistance(graph, i, j)/celerity
		})

		// Recompute elevations outlet-first so every site sees its downstream
		// neighbor's already-updated elevation.
		b.ForEachUpstream(func(i int) {
			newElevation := elevations[outlet] +
				g.parameters[i].UpliftRate*math.Max(responseTimes[i]-responseTimes[outlet], 0)

			if ms := g.parameters[i].MaxSlope; ms != nil {
				j := tree.Next[i]
				distance := edgeDistance(graph, i, j)
				maxSlope := math.Tan(*ms)
				if slope := (newElevation - elevations[j]) / distance; slope > maxSlope {
					newElevation = elevations[j] + maxSlope*distance
				}
			}

			if newElevation != elevations[i] {
				changed = true
			}
			elevations[i] = newElevation
		})
	}

	return changed
}

// flowShare is one strictly-higher or strictly-lower neighbor with its
// steepest-descent-biased partition weight.
type flowShare struct {
	index    int
	weight   float64
	distance float64
}

// multiFlowPass runs the multiple-flow-direction update and reports whether
// any elevation changed.
func (g *TerrainGenerator[T]) multiFlowPass(elevations []float64, graph *spatial.Graph, areas []float64) bool {
	num := len(elevations)

	// Partition each site's neighborhood by elevation. The weight of the
	// relation between i and a neighbor j is ((|e_i - e_j|) / distance)^4,
	// identical from both endpoints.
	above := make([][]flowShare, num)
	below := make([][]flowShare, num)
	belowSum := make([]float64, num)
	for ia := 0; ia < num; ia++ {
		for _, nb := range graph.Neighbors(ia) {
			diff := elevations[nb.Index] - elevations[ia]
			switch {
			case diff > 0:
				above[ia] = append(above[ia], flowShare{
					index:    nb.Index,
					weight:   flowWeight(diff / nb.Distance),
					distance: nb.Distance,
				})
			case diff < 0:
				w := flowWeight(-diff / nb.Distance)
				below[ia] = append(below[ia], flowShare{index: nb.Index, weight: w, distance: nb.Distance})
				belowSum[ia] += w
			}
		}
	}

	// Drainage-area fixed point: a fixed budget of relaxation sweeps, updated
	// in place so later sites already see this sweep's values.
	drainageAreas := append([]float64(nil), areas...)
	for sweep := 0; sweep < drainageAreaSweeps; sweep++ {
		for ia := 0; ia < num; ia++ {
			flown := 0.0
			for _, an := range above[ia] {
				if belowSum[an.index] > 0 {
					flown += drainageAreas[an.index] * an.weight / belowSum[an.index]
				}
			}
			drainageAreas[ia] = areas[ia] + flown
		}
	}

	celerities := make([]float64, num)
	for ia := 0; ia < num; ia++ {
		celerities[ia] = g.parameters[ia].Erodibility * math.Pow(drainageAreas[ia], mExponent)
	}

	// Response-time fixed point, same in-place sweep scheme. Sites with no
	// lower neighbor contribute zero sums by construction.
	responseTimes := make([]float64, num)
	for sweep := 0; sweep < responseTimeSweeps; sweep++ {
		for ia := 0; ia < num; ia++ {
			var rt, distance float64
			if belowSum[ia] > 0 {
				for _, bn := range below[ia] {
					rt += responseTimes[bn.index] * bn.weight / belowSum[ia]
					distance += bn.distance * bn.weight / belowSum[ia]
				}
			}
			responseTimes[ia] = rt + distance/celerities[ia]
		}
	}

	// Incremental elevation update, unlike the absolute single-flow variant.
	changed := false
	for ia := 0; ia < num; ia++ {
		newElevation := elevations[ia] + g.parameters[ia].UpliftRate*math.Max(responseTimes[ia], 0)
		if newElevation != elevations[ia] {
			changed = true
		}
		elevations[ia] = newElevation
	}

	return changed
}

// flowWeight biases a positive gradient toward the steepest descent.
func flowWeight(gradient float64) float64 {
	return math.Pow(gradient, flowWeightExponent)
}
