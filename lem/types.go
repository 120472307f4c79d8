// Package lem defines the parameter types, model contract and sentinel
// errors for the terrain generator of github.com/katalvlaran/fastlem.
package lem

import (
	"errors"

	"github.com/katalvlaran/fastlem/spatial"
)

// Sentinel errors for terrain generation. All three are detected before the
// iteration loop starts; Generate has no mid-loop failure mode.
var (
	// ErrModelNotSet is returned when Generate is invoked without a model.
	ErrModelNotSet = errors.New("lem: terrain model must be set before generating terrain")
	// ErrParametersNotSet is returned when Generate is invoked without parameters.
	ErrParametersNotSet = errors.New("lem: topographical parameters must be set before generating terrain")
	// ErrInvalidNumberOfParameters is returned when the parameter count does
	// not equal the model's site count.
	ErrInvalidNumberOfParameters = errors.New("lem: number of topographical parameters must equal the number of sites")
)

// Algorithm constants. The sweep counts are deliberate fixed computational
// budgets, not convergence tolerances; do not replace them with
// tolerance-checked loops.
const (
	// mExponent is the stream-power exponent applied to drainage area when
	// deriving celerity.
	mExponent = 0.5
	// flowWeightExponent biases multiple-flow-direction partitioning toward
	// the steepest descent.
	flowWeightExponent = 4
	// drainageAreaSweeps is the fixed relaxation budget for the multi-flow
	// drainage-area fixed point.
	drainageAreaSweeps = 5
	// responseTimeSweeps is the fixed relaxation budget for the multi-flow
	// response-time fixed point.
	responseTimeSweeps = 20
	// defaultEdgeDistance is the explicit fallback when the graph carries no
	// attribute for an edge.
	defaultEdgeDistance = 1.0
	// elevationJitter scales the deterministic tie-breaking noise added to
	// base elevations (one ulp at 1.0).
	elevationJitter = 0x1p-52
	// jitterSeed seeds the jitter source; fixed for reproducibility.
	jitterSeed = 0
)

// TopographicalParameters holds the physical constants of one site. The
// slice handed to the generator must contain exactly one entry per site and
// is treated as immutable once Generate starts.
type TopographicalParameters struct {
	// UpliftRate is the tectonic uplift rate, >= 0.
	UpliftRate float64
	// Erodibility scales the stream-power erosion term, > 0.
	Erodibility float64
	// BaseElevation is the initial elevation before any iteration.
	BaseElevation float64
	// MaxSlope, in radians, clamps the gradient toward the downstream
	// neighbor; nil disables the clamp.
	MaxSlope *float64
	// IsOutlet marks the site as a fixed boundary condition.
	IsOutlet bool
}

// DefaultTopographicalParameters returns parameters for an inert interior
// site: no uplift, unit erodibility, zero base elevation, no slope clamp.
func DefaultTopographicalParameters() TopographicalParameters {
	return TopographicalParameters{Erodibility: 1.0}
}

// SetUpliftRate returns a copy with the uplift rate replaced.
func (p TopographicalParameters) SetUpliftRate(v float64) TopographicalParameters {
	p.UpliftRate = v
	return p
}

// SetErodibility returns a copy with the erodibility replaced.
func (p TopographicalParameters) SetErodibility(v float64) TopographicalParameters {
	p.Erodibility = v
	return p
}

// SetBaseElevation returns a copy with the base elevation replaced.
func (p TopographicalParameters) SetBaseElevation(v float64) TopographicalParameters {
	p.BaseElevation = v
	return p
}

// SetMaxSlope returns a copy with the slope clamp set to the given angle in
// radians.
func (p TopographicalParameters) SetMaxSlope(radians float64) TopographicalParameters {
	p.MaxSlope = &radians
	return p
}

// SetIsOutlet returns a copy with the outlet flag replaced.
func (p TopographicalParameters) SetIsOutlet(v bool) TopographicalParameters {
	p.IsOutlet = v
	return p
}

// Model supplies the read-only spatial inputs of a simulation and converts
// the final elevation field into the caller's terrain artifact T. Site
// positions reach the solver only through the graph's edge distances.
type Model[T any] interface {
	// Num returns the number of sites.
	Num() int
	// Areas returns the per-site base catchment area, one entry per site.
	Areas() []float64
	// Graph returns the distance-weighted adjacency between sites.
	Graph() *spatial.Graph
	// DefaultOutlets returns the outlet set used when no parameter flags one.
	DefaultOutlets() []int
	// CreateTerrainFromResult builds the terrain artifact from the final
	// elevations, one value per site.
	CreateTerrainFromResult(elevations []float64) T
}

// Pass identifies which elevation-update scheme an iteration ran.
type Pass int

const (
	// PassSingleFlow is the stream-tree based scheme; it runs exactly once,
	// on the very first iteration.
	PassSingleFlow Pass = iota
	// PassMultiFlow is the weighted multi-neighbor scheme run on every
	// subsequent iteration.
	PassMultiFlow
)

// String returns a human-readable pass name.
func (p Pass) String() string {
	switch p {
	case PassSingleFlow:
		return "single-flow"
	case PassMultiFlow:
		return "multi-flow"
	default:
		return "unknown"
	}
}
