// Package game owns the simulation state and the per-frame update order.
package game

import (
	"log/slog"
	"math/rand"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/skitter-sim/skitter/camera"
	"github.com/skitter-sim/skitter/components"
	"github.com/skitter-sim/skitter/config"
	"github.com/skitter-sim/skitter/systems"
	"github.com/skitter-sim/skitter/telemetry"
)

// maxStepsPerUpdate caps the simulation speed multiplier.
const maxStepsPerUpdate = 10

// Pointer is an optional world-space pointer position. Valid is false when
// the device has no active position this frame; the coordinates are then
// meaningless rather than sentinel values.
type Pointer struct {
	X, Y  float32
	Valid bool
}

// Options configures a new game.
type Options struct {
	Seed           int64 // 0 = use the configured seed
	LogStats       bool
	StatsWindowSec float64 // 0 = use the configured window
	OutputDir      string  // "" = CSV output disabled
	StepsPerUpdate int
}

// Game holds the complete simulation state. All mutation happens on the
// caller's goroutine, one frame at a time; the single rng is the only
// source of randomness and is threaded into each system that draws.
type Game struct {
	rng *rand.Rand

	agents []*components.Agent
	foods  []*components.Food

	// Entities spawned during a frame; appended to the live set at end
	// of step so they become visible only to next frame's queries.
	pendingFoods []*components.Food

	grid *systems.SpatialGrid
	cam  *camera.Camera

	collector *telemetry.Collector
	perf      *telemetry.PerfCollector
	output    *telemetry.OutputManager

	tick     int64
	simTime  float64
	paused   bool
	logStats bool

	stepsPerUpdate int
}

// NewGameWithOptions creates a game with explicit options.
// config.Init must have been called first.
func NewGameWithOptions(opts Options) *Game {
	cfg := config.Cfg()

	seed := opts.Seed
	if seed == 0 {
		seed = cfg.Sim.Seed
	}

	statsWindow := opts.StatsWindowSec
	if statsWindow <= 0 {
		statsWindow = cfg.Telemetry.StatsWindow
	}

	steps := opts.StepsPerUpdate
	if steps < 1 {
		steps = 1
	}
	if steps > maxStepsPerUpdate {
		steps = maxStepsPerUpdate
	}

	g := &Game{
		rng:            rand.New(rand.NewSource(seed)),
		grid:           systems.NewSpatialGrid(float32(cfg.Food.GridCellSize)),
		cam:            camera.New(cfg.Derived.ScreenW32, cfg.Derived.ScreenH32),
		collector:      telemetry.NewCollector(statsWindow),
		perf:           telemetry.NewPerfCollector(cfg.Telemetry.PerfCollectorWindow),
		logStats:       opts.LogStats,
		stepsPerUpdate: steps,
	}

	output, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		slog.Error("telemetry output disabled", "error", err)
	} else {
		g.output = output
		if err := g.output.WriteConfig(cfg); err != nil {
			slog.Error("failed to snapshot config", "error", err)
		}
	}

	g.spawnInitialAgents()
	g.spawnInitialFood()
	// Initial food goes through the same deferred queue as duplication;
	// flush it so the population exists before the first frame.
	g.flushSpawns()

	slog.Info("game created",
		"seed", seed,
		"agents", len(g.agents),
		"food", len(g.foods),
	)

	return g
}

// Tick returns the number of completed simulation steps.
func (g *Game) Tick() int64 { return g.tick }

// Agents returns the live agent set. The presentation layer reads
// kinematic state from it; it must not mutate.
func (g *Game) Agents() []*components.Agent { return g.agents }

// Foods returns the live food set.
func (g *Game) Foods() []*components.Food { return g.foods }

// Update advances the simulation for one rendered frame in graphical mode,
// using the real elapsed frame time and the current mouse position.
func (g *Game) Update() {
	g.handleInput()
	if g.paused {
		return
	}

	dt := rl.GetFrameTime()
	pointer := g.pointerFromMouse()
	for i := 0; i < g.stepsPerUpdate; i++ {
		g.Step(dt, pointer)
	}
}

// UpdateHeadless advances the simulation with the configured fixed
// timestep and no pointer.
func (g *Game) UpdateHeadless() {
	dt := config.Cfg().Derived.DT32
	for i := 0; i < g.stepsPerUpdate; i++ {
		g.Step(dt, Pointer{})
	}
}

// Unload releases output resources.
func (g *Game) Unload() {
	if err := g.output.Close(); err != nil {
		slog.Error("closing telemetry output", "error", err)
	}
}
