package game

import (
	"github.com/skitter-sim/skitter/components"
	"github.com/skitter-sim/skitter/systems"
	"github.com/skitter-sim/skitter/telemetry"
)

// Step advances the simulation by dt seconds.
//
// Stage order is fixed and single-threaded: force producers first (agent
// steering, then the food systems), the integrator last. Each stage has
// exclusive write access to the fields it touches, and all randomness
// flows through g.rng in entity slice order, so a given seed, entity set
// and dt sequence replays exactly.
func (g *Game) Step(dt float32, pointer Pointer) {
	g.perf.StartTick()

	// Agent steering: both sources accumulate into Body.Acc additively.
	g.perf.StartPhase(telemetry.PhaseSteering)
	if pointer.Valid {
		g.collector.RecordPointerActive()
		target := components.Vec2{X: pointer.X, Y: pointer.Y}
		for _, a := range g.agents {
			systems.FollowPointer(a, target)
		}
	}
	for _, a := range g.agents {
		if systems.UpdateWander(a, g.rng) {
			g.collector.RecordWanderReroll()
		}
	}

	// Food population: duplication, fixed damping, pairwise forces.
	g.perf.StartPhase(telemetry.PhaseFoodDuplication)
	spawned, dupStats := systems.FoodDuplication(g.foods, g.grid, g.rng, dt)
	g.pendingFoods = append(g.pendingFoods, spawned...)
	g.collector.RecordDuplicationPass(dupStats.Trials, dupStats.Blocked, dupStats.Spawned)

	g.perf.StartPhase(telemetry.PhaseFoodDamping)
	systems.FoodDamping(g.foods, dt)

	g.perf.StartPhase(telemetry.PhaseFoodCohesion)
	systems.FoodCohesion(g.foods, dt)

	// Integration. Agents run the full pipeline; food carries no
	// acceleration producer and does its own damping above, so it only
	// needs position and heading here.
	g.perf.StartPhase(telemetry.PhaseIntegrate)
	for _, a := range g.agents {
		systems.Integrate(&a.Body, a.Damping, a.MaxSpeed, dt)
	}
	for _, f := range g.foods {
		systems.ApplyVelocity(&f.Body, dt)
		systems.UpdateHeading(&f.Body)
	}

	g.flushSpawns()

	g.perf.StartPhase(telemetry.PhaseTelemetry)
	g.tick++
	g.simTime += float64(dt)
	g.maybeFlushStats()

	g.perf.EndTick()
}

// flushSpawns appends deferred spawns to the live set. Called after all
// of a frame's passes over the live set have completed.
func (g *Game) flushSpawns() {
	if len(g.pendingFoods) == 0 {
		return
	}
	g.foods = append(g.foods, g.pendingFoods...)
	g.pendingFoods = g.pendingFoods[:0]
}
