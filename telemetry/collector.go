package telemetry

// Snapshot carries the population sample taken at a window boundary.
type Snapshot struct {
	AgentCount  int
	FoodCount   int
	AgentSpeeds []float64
	FoodSpeeds  []float64
	Nutrition   []float64
}

// Collector accumulates events within time windows and produces WindowStats.
// Windows are measured in accumulated simulation seconds, not ticks, so
// variable frame times neither stretch nor shrink them.
type Collector struct {
	windowDurationSec float64
	windowStartSec    float64

	// Event counters for the current window
	duplicationTrials  int
	duplications       int
	duplicationBlocked int
	wanderRerolls      int
	pointerActiveTicks int
}

// NewCollector creates a new stats collector.
// windowDurationSec: how long each stats window lasts in simulation seconds
func NewCollector(windowDurationSec float64) *Collector {
	return &Collector{windowDurationSec: windowDurationSec}
}

// RecordDuplicationPass records the outcome of one duplication pass.
func (c *Collector) RecordDuplicationPass(trials, blocked, spawned int) {
	c.duplicationTrials += trials
	c.duplicationBlocked += blocked
	c.duplications += spawned
}

// RecordWanderReroll records a wander target re-roll.
func (c *Collector) RecordWanderReroll() {
	c.wanderRerolls++
}

// RecordPointerActive records a tick during which a pointer position existed.
func (c *Collector) RecordPointerActive() {
	c.pointerActiveTicks++
}

// WindowElapsed reports whether the current window has elapsed at the given
// simulation time.
func (c *Collector) WindowElapsed(simTime float64) bool {
	return simTime-c.windowStartSec >= c.windowDurationSec
}

// Flush closes the current window, producing its stats and resetting the
// event counters for the next window.
func (c *Collector) Flush(tick int64, simTime float64, snap Snapshot) WindowStats {
	stats := WindowStats{
		WindowEndTick:      tick,
		SimTimeSec:         simTime,
		AgentCount:         snap.AgentCount,
		FoodCount:          snap.FoodCount,
		DuplicationTrials:  c.duplicationTrials,
		Duplications:       c.duplications,
		DuplicationBlocked: c.duplicationBlocked,
		WanderRerolls:      c.wanderRerolls,
		PointerActiveTicks: c.pointerActiveTicks,
	}

	stats.AgentSpeedMean, stats.AgentSpeedP10, stats.AgentSpeedP50, stats.AgentSpeedP90 = DistStats(snap.AgentSpeeds)
	stats.FoodSpeedMean, _, stats.FoodSpeedP50, _ = DistStats(snap.FoodSpeeds)
	stats.NutritionMean, stats.NutritionStd = MeanStd(snap.Nutrition)

	c.windowStartSec = simTime
	c.duplicationTrials = 0
	c.duplications = 0
	c.duplicationBlocked = 0
	c.wanderRerolls = 0
	c.pointerActiveTicks = 0

	return stats
}
