package telemetry

import (
	"log/slog"
	"time"
)

// Phase names for the simulation step.
const (
	PhaseSteering        = "steering"
	PhaseFoodDuplication = "food_duplication"
	PhaseFoodDamping     = "food_damping"
	PhaseFoodCohesion    = "food_cohesion"
	PhaseIntegrate       = "integrate"
	PhaseTelemetry       = "telemetry"
)

// phaseOrder fixes the reporting order of phases.
var phaseOrder = []string{
	PhaseSteering,
	PhaseFoodDuplication,
	PhaseFoodDamping,
	PhaseFoodCohesion,
	PhaseIntegrate,
	PhaseTelemetry,
}

// PerfSample holds timing data for a single tick.
type PerfSample struct {
	TickDuration time.Duration
	Phases       map[string]time.Duration
}

// PerfCollector tracks per-phase timing over a rolling window of ticks.
type PerfCollector struct {
	windowSize  int
	samples     []PerfSample
	writeIndex  int
	sampleCount int

	currentPhases map[string]time.Duration
	tickStart     time.Time
	phaseStart    time.Time
	lastPhase     string
}

// NewPerfCollector creates a new performance collector.
// windowSize: number of ticks to average over (e.g., 60 for 1 second at 60fps).
func NewPerfCollector(windowSize int) *PerfCollector {
	if windowSize < 1 {
		windowSize = 60
	}
	return &PerfCollector{
		windowSize:    windowSize,
		samples:       make([]PerfSample, windowSize),
		currentPhases: make(map[string]time.Duration),
	}
}

// StartTick begins timing a new simulation tick.
func (p *PerfCollector) StartTick() {
	p.tickStart = time.Now()
	p.currentPhases = make(map[string]time.Duration)
	p.lastPhase = ""
}

// StartPhase begins timing a specific phase, closing the previous one.
func (p *PerfCollector) StartPhase(phase string) {
	now := time.Now()
	if p.lastPhase != "" {
		p.currentPhases[p.lastPhase] += now.Sub(p.phaseStart)
	}
	p.phaseStart = now
	p.lastPhase = phase
}

// EndTick closes the current tick and stores its sample.
func (p *PerfCollector) EndTick() {
	now := time.Now()
	if p.lastPhase != "" {
		p.currentPhases[p.lastPhase] += now.Sub(p.phaseStart)
		p.lastPhase = ""
	}

	p.samples[p.writeIndex] = PerfSample{
		TickDuration: now.Sub(p.tickStart),
		Phases:       p.currentPhases,
	}
	p.writeIndex = (p.writeIndex + 1) % p.windowSize
	if p.sampleCount < p.windowSize {
		p.sampleCount++
	}
}

// AvgTick returns the mean tick duration over the window.
func (p *PerfCollector) AvgTick() time.Duration {
	if p.sampleCount == 0 {
		return 0
	}
	var total time.Duration
	for i := 0; i < p.sampleCount; i++ {
		total += p.samples[i].TickDuration
	}
	return total / time.Duration(p.sampleCount)
}

// Avg returns the mean duration of one phase over the window.
func (p *PerfCollector) Avg(phase string) time.Duration {
	if p.sampleCount == 0 {
		return 0
	}
	var total time.Duration
	for i := 0; i < p.sampleCount; i++ {
		total += p.samples[i].Phases[phase]
	}
	return total / time.Duration(p.sampleCount)
}

// PerfRecord is one CSV row of windowed phase averages.
type PerfRecord struct {
	Tick              int64   `csv:"tick"`
	TickMs            float64 `csv:"tick_ms"`
	SteeringMs        float64 `csv:"steering_ms"`
	FoodDuplicationMs float64 `csv:"food_duplication_ms"`
	FoodDampingMs     float64 `csv:"food_damping_ms"`
	FoodCohesionMs    float64 `csv:"food_cohesion_ms"`
	IntegrateMs       float64 `csv:"integrate_ms"`
	TelemetryMs       float64 `csv:"telemetry_ms"`
}

// Record builds a CSV record of the window averages at the given tick.
func (p *PerfCollector) Record(tick int64) PerfRecord {
	ms := func(d time.Duration) float64 { return float64(d) / float64(time.Millisecond) }
	return PerfRecord{
		Tick:              tick,
		TickMs:            ms(p.AvgTick()),
		SteeringMs:        ms(p.Avg(PhaseSteering)),
		FoodDuplicationMs: ms(p.Avg(PhaseFoodDuplication)),
		FoodDampingMs:     ms(p.Avg(PhaseFoodDamping)),
		FoodCohesionMs:    ms(p.Avg(PhaseFoodCohesion)),
		IntegrateMs:       ms(p.Avg(PhaseIntegrate)),
		TelemetryMs:       ms(p.Avg(PhaseTelemetry)),
	}
}

// LogSummary emits the window averages via slog.
func (p *PerfCollector) LogSummary(tick int64) {
	args := []any{"tick", tick, "avg_tick", p.AvgTick().Round(time.Microsecond).String()}
	for _, phase := range phaseOrder {
		args = append(args, phase, p.Avg(phase).Round(time.Microsecond).String())
	}
	slog.Info("perf", args...)
}
