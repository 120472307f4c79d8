// Package config loads and validates fastlem simulation scenarios.
package config

import "fmt"

// Scenario describes one batch terrain-generation run.
type Scenario struct {
	// Seed drives site scattering; the solver's tie-breaking jitter has its
	// own fixed seed and stays reproducible regardless.
	Seed    int64         `yaml:"seed"`
	Sites   int           `yaml:"sites"`
	Relax   int           `yaml:"relax_iterations"`
	Bounds  BoundsConfig  `yaml:"bounds"`
	Physics PhysicsConfig `yaml:"physics"`
	// MaxIteration caps the solver passes; 0 runs to convergence.
	MaxIteration int           `yaml:"max_iteration"`
	Output       OutputConfig  `yaml:"output"`
	Logging      LoggingConfig `yaml:"logging"`
}

// BoundsConfig is the rectangle sites are scattered in.
type BoundsConfig struct {
	MinX float64 `yaml:"min_x"`
	MinY float64 `yaml:"min_y"`
	MaxX float64 `yaml:"max_x"`
	MaxY float64 `yaml:"max_y"`
}

// PhysicsConfig holds the uniform per-site physical constants.
type PhysicsConfig struct {
	UpliftRate    float64 `yaml:"uplift_rate"`
	Erodibility   float64 `yaml:"erodibility"`
	BaseElevation float64 `yaml:"base_elevation"`
	// MaxSlopeDeg clamps gradients, in degrees; 0 disables the clamp.
	MaxSlopeDeg float64 `yaml:"max_slope_deg"`
}

// OutputConfig controls the rendered heightmap.
type OutputConfig struct {
	Path  string `yaml:"path"`
	Width int    `yaml:"width"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// Default returns a Scenario with workable demonstration values.
func Default() *Scenario {
	return &Scenario{
		Seed:  0,
		Sites: 3000,
		Relax: 2,
		Bounds: BoundsConfig{
			MinX: 0, MinY: 0,
			MaxX: 200, MaxY: 100,
		},
		Physics: PhysicsConfig{
			UpliftRate:  1.0,
			Erodibility: 1.0,
		},
		MaxIteration: 100,
		Output: OutputConfig{
			Path:  "terrain.png",
			Width: 1000,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Validate reports the first configuration problem found.
func (s *Scenario) Validate() error {
	if s.Sites < 3 {
		return fmt.Errorf("config: sites must be at least 3, got %d", s.Sites)
	}
	if s.Relax < 0 {
		return fmt.Errorf("config: relax_iterations must not be negative, got %d", s.Relax)
	}
	if !(s.Bounds.MinX < s.Bounds.MaxX && s.Bounds.MinY < s.Bounds.MaxY) {
		return fmt.Errorf("config: bounds must have positive extent")
	}
	if s.Physics.Erodibility <= 0 {
		return fmt.Errorf("config: erodibility must be positive, got %g", s.Physics.Erodibility)
	}
	if s.Physics.UpliftRate < 0 {
		return fmt.Errorf("config: uplift_rate must not be negative, got %g", s.Physics.UpliftRate)
	}
	if s.Physics.MaxSlopeDeg < 0 || s.Physics.MaxSlopeDeg >= 90 {
		return fmt.Errorf("config: max_slope_deg must be in [0, 90), got %g", s.Physics.MaxSlopeDeg)
	}
	if s.MaxIteration < 0 {
		return fmt.Errorf("config: max_iteration must not be negative, got %d", s.MaxIteration)
	}
	if s.Output.Width < 1 {
		return fmt.Errorf("config: output width must be positive, got %d", s.Output.Width)
	}
	if s.Output.Path == "" {
		return fmt.Errorf("config: output path must not be empty")
	}
	return nil
}
