// Package telemetry collects and reports simulation statistics.
package telemetry

import (
	"log/slog"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// WindowStats holds aggregated statistics for a time window.
type WindowStats struct {
	WindowEndTick int64   `csv:"window_end"`
	SimTimeSec    float64 `csv:"sim_time"`

	// Population counts at window end
	AgentCount int `csv:"agents"`
	FoodCount  int `csv:"food"`

	// Events during window
	DuplicationTrials  int `csv:"dup_trials"`
	Duplications       int `csv:"dup_spawned"`
	DuplicationBlocked int `csv:"dup_blocked"`
	WanderRerolls      int `csv:"wander_rerolls"`
	PointerActiveTicks int `csv:"pointer_ticks"`

	// Speed distributions (sampled at window end)
	AgentSpeedMean float64 `csv:"agent_speed_mean"`
	AgentSpeedP10  float64 `csv:"agent_speed_p10"`
	AgentSpeedP50  float64 `csv:"agent_speed_p50"`
	AgentSpeedP90  float64 `csv:"agent_speed_p90"`

	FoodSpeedMean float64 `csv:"food_speed_mean"`
	FoodSpeedP50  float64 `csv:"food_speed_p50"`

	// Nutrition distribution across the food population
	NutritionMean float64 `csv:"nutrition_mean"`
	NutritionStd  float64 `csv:"nutrition_std"`
}

// Log emits the window via slog.
func (s WindowStats) Log() {
	slog.Info("window_stats",
		"tick", s.WindowEndTick,
		"sim_time", s.SimTimeSec,
		"agents", s.AgentCount,
		"food", s.FoodCount,
		"dup_trials", s.DuplicationTrials,
		"dup_spawned", s.Duplications,
		"dup_blocked", s.DuplicationBlocked,
		"wander_rerolls", s.WanderRerolls,
		"pointer_ticks", s.PointerActiveTicks,
		"agent_speed_mean", s.AgentSpeedMean,
		"food_speed_mean", s.FoodSpeedMean,
		"nutrition_mean", s.NutritionMean,
	)
}

// DistStats computes mean and empirical quantiles of a sample.
// Returns all zeros for an empty sample.
func DistStats(values []float64) (mean, p10, p50, p90 float64) {
	if len(values) == 0 {
		return 0, 0, 0, 0
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	mean = stat.Mean(sorted, nil)
	p10 = stat.Quantile(0.10, stat.Empirical, sorted, nil)
	p50 = stat.Quantile(0.50, stat.Empirical, sorted, nil)
	p90 = stat.Quantile(0.90, stat.Empirical, sorted, nil)
	return mean, p10, p50, p90
}

// MeanStd computes the mean and standard deviation of a sample.
// The deviation is zero for samples of fewer than two values.
func MeanStd(values []float64) (mean, std float64) {
	if len(values) == 0 {
		return 0, 0
	}
	if len(values) == 1 {
		return values[0], 0
	}
	mean, std = stat.MeanStdDev(values, nil)
	return mean, std
}
