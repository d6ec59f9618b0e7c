package game

import (
	"log/slog"

	"github.com/skitter-sim/skitter/telemetry"
)

// maybeFlushStats closes the stats window when it elapses, sampling the
// current populations and emitting the window to slog and CSV.
func (g *Game) maybeFlushStats() {
	if !g.collector.WindowElapsed(g.simTime) {
		return
	}

	stats := g.collector.Flush(g.tick, g.simTime, g.snapshot())

	if g.logStats {
		stats.Log()
		g.perf.LogSummary(g.tick)
	}

	if err := g.output.WriteTelemetry(stats); err != nil {
		slog.Error("writing telemetry", "error", err)
	}
	if err := g.output.WritePerf(g.perf.Record(g.tick)); err != nil {
		slog.Error("writing perf", "error", err)
	}
}

// snapshot samples per-entity values for window statistics.
func (g *Game) snapshot() telemetry.Snapshot {
	snap := telemetry.Snapshot{
		AgentCount:  len(g.agents),
		FoodCount:   len(g.foods),
		AgentSpeeds: make([]float64, 0, len(g.agents)),
		FoodSpeeds:  make([]float64, 0, len(g.foods)),
		Nutrition:   make([]float64, 0, len(g.foods)),
	}
	for _, a := range g.agents {
		snap.AgentSpeeds = append(snap.AgentSpeeds, float64(a.Body.Vel.Length()))
	}
	for _, f := range g.foods {
		snap.FoodSpeeds = append(snap.FoodSpeeds, float64(f.Body.Vel.Length()))
		snap.Nutrition = append(snap.Nutrition, float64(f.NutritionalValue))
	}
	return snap
}
