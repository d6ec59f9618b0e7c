// Package config provides configuration loading and access for the simulation.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all simulation configuration parameters.
type Config struct {
	Screen    ScreenConfig    `yaml:"screen"`
	Sim       SimConfig       `yaml:"sim"`
	Agents    AgentConfig     `yaml:"agents"`
	Food      FoodConfig      `yaml:"food"`
	Telemetry TelemetryConfig `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	TargetFPS int `yaml:"target_fps"`
}

// SimConfig holds top-level simulation parameters.
type SimConfig struct {
	Seed       int64   `yaml:"seed"`
	DT         float64 `yaml:"dt"` // fixed timestep for headless runs
	AgentCount int     `yaml:"agent_count"`
	FoodCount  int     `yaml:"food_count"`
}

// AgentConfig holds the steering agent constants. These are shared by all
// agents rather than randomized per agent.
type AgentConfig struct {
	MaxSpeed        float64 `yaml:"max_speed"`
	MaxForce        float64 `yaml:"max_force"`
	SlowingRadius   float64 `yaml:"slowing_radius"`
	Damping         float64 `yaml:"damping"`
	WanderMinRadius float64 `yaml:"wander_min_radius"`
	WanderMaxRadius float64 `yaml:"wander_max_radius"`
}

// FoodConfig holds the base food particle template.
type FoodConfig struct {
	NutritionalValue  float64 `yaml:"nutritional_value"`
	NutritionJitter   float64 `yaml:"nutrition_jitter"` // ±fraction applied at initial spawn
	DuplicationChance float64 `yaml:"duplication_chance"`
	SpawnVelocityMin  float64 `yaml:"spawn_velocity_min"`
	SpawnVelocityMax  float64 `yaml:"spawn_velocity_max"`
	CohesionRadius    float64 `yaml:"cohesion_radius"`
	CohesionForce     float64 `yaml:"cohesion_force"`
	SeparationRadius  float64 `yaml:"separation_radius"`
	SeparationForce   float64 `yaml:"separation_force"`
	NeighbourRadius   float64 `yaml:"neighbour_radius"`
	MaxNeighbours     int     `yaml:"max_neighbours"`
	GridCellSize      float64 `yaml:"grid_cell_size"`
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	StatsWindow         float64 `yaml:"stats_window"`
	PerfCollectorWindow int     `yaml:"perf_collector_window"`
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	DT32      float32 // Sim.DT as float32
	ScreenW32 float32 // Screen.Width as float32
	ScreenH32 float32 // Screen.Height as float32
	HalfW32   float32 // Half the screen width (initial food placement bound)
	HalfH32   float32 // Half the screen height
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	// Start with embedded defaults
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	// Load user config if provided
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	cfg.computeDerived()

	return cfg, nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	c.Derived.DT32 = float32(c.Sim.DT)
	c.Derived.ScreenW32 = float32(c.Screen.Width)
	c.Derived.ScreenH32 = float32(c.Screen.Height)
	c.Derived.HalfW32 = c.Derived.ScreenW32 / 2
	c.Derived.HalfH32 = c.Derived.ScreenH32 / 2
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
