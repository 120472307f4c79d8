// Package main is the batch front-end of fastlem: it scatters a random site
// cloud, runs the landscape evolution solver over it, and writes the
// resulting terrain as a grayscale PNG heightmap.
package main

import (
	"flag"
	"fmt"
	"image/png"
	"math"
	"math/rand"
	"os"

	"go.uber.org/zap"

	"github.com/katalvlaran/fastlem/internal/config"
	"github.com/katalvlaran/fastlem/internal/heightmap"
	"github.com/katalvlaran/fastlem/internal/logger"
	"github.com/katalvlaran/fastlem/lem"
	"github.com/katalvlaran/fastlem/terrain"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML scenario (defaults apply when empty)")
	flag.Parse()

	scenario, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(scenario.Logging.Level, scenario.Logging.File); err != nil {
		fmt.Fprintf(os.Stderr, "logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := run(scenario); err != nil {
		logger.Error("terrain generation failed", zap.Error(err))
		os.Exit(1)
	}
}

func run(scenario *config.Scenario) error {
	logger.Info("building terrain model",
		zap.Int("sites", scenario.Sites),
		zap.Int64("seed", scenario.Seed))

	model, err := buildModel(scenario)
	if err != nil {
		return err
	}

	gen := lem.NewTerrainGenerator[*terrain.Terrain2D]().
		SetModel(model).
		SetParameters(buildParameters(scenario, model.Num())).
		SetObserver(func(pass lem.Pass, iteration int) {
			logger.Debug("pass finished",
				zap.Stringer("scheme", pass),
				zap.Int("iteration", iteration))
		})
	if scenario.MaxIteration > 0 {
		gen.SetMaxIteration(scenario.MaxIteration)
	}

	logger.Info("running solver", zap.Int("max_iteration", scenario.MaxIteration))
	result, err := gen.Generate()
	if err != nil {
		return err
	}

	img := heightmap.Render(result, scenario.Output.Width)
	out, err := os.Create(scenario.Output.Path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", scenario.Output.Path, err)
	}
	defer out.Close()
	if err := png.Encode(out, img); err != nil {
		return fmt.Errorf("encoding %s: %w", scenario.Output.Path, err)
	}

	logger.Info("heightmap written",
		zap.String("path", scenario.Output.Path),
		zap.Int("width", img.Bounds().Dx()),
		zap.Int("height", img.Bounds().Dy()))

	return nil
}

// buildModel scatters seeded random sites in the scenario bounds and
// triangulates them.
func buildModel(scenario *config.Scenario) (*terrain.Model2D, error) {
	rng := rand.New(rand.NewSource(scenario.Seed))
	sites := make([]terrain.Site2D, scenario.Sites)
	for i := range sites {
		sites[i] = terrain.Site2D{
			X: scenario.Bounds.MinX + rng.Float64()*(scenario.Bounds.MaxX-scenario.Bounds.MinX),
			Y: scenario.Bounds.MinY + rng.Float64()*(scenario.Bounds.MaxY-scenario.Bounds.MinY),
		}
	}

	return terrain.NewModel2DBuilder().
		SetSites(sites).
		SetBoundingBox(
			terrain.Site2D{X: scenario.Bounds.MinX, Y: scenario.Bounds.MinY},
			terrain.Site2D{X: scenario.Bounds.MaxX, Y: scenario.Bounds.MaxY},
		).
		RelaxSites(scenario.Relax).
		Build()
}

// buildParameters expands the scenario's uniform physics into one parameter
// entry per site. Outlets stay unflagged: the solver falls back to the
// model's convex-hull defaults.
func buildParameters(scenario *config.Scenario, num int) []lem.TopographicalParameters {
	p := lem.DefaultTopographicalParameters().
		SetUpliftRate(scenario.Physics.UpliftRate).
		SetErodibility(scenario.Physics.Erodibility).
		SetBaseElevation(scenario.Physics.BaseElevation)
	if scenario.Physics.MaxSlopeDeg > 0 {
		p = p.SetMaxSlope(scenario.Physics.MaxSlopeDeg * math.Pi / 180)
	}

	parameters := make([]lem.TopographicalParameters, num)
	for i := range parameters {
		parameters[i] = p
	}
	return parameters
}
