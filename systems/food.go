package systems

import (
	"math"
	"math/rand"

	"github.com/skitter-sim/skitter/components"
)

// foodDampingRate is the fixed damping applied to all food, independent of
// the generic per-entity damping coefficient.
const foodDampingRate = 2.0

// pairEpsilon is the distance below which a food pair is considered
// coincident and skipped in the cohesion pass.
const pairEpsilon = 1.1920929e-07

// DuplicationStats summarizes one duplication pass for telemetry.
type DuplicationStats struct {
	Trials  int // particles that passed the density gate and rolled
	Blocked int // particles skipped by the neighbour cap
	Spawned int // successful duplications
}

// SpawnedFood builds a child particle: an exact copy of the parent's
// parameter struct placed at pos, with a fresh random velocity whose
// magnitude is uniform in [SpawnVelocityMin, SpawnVelocityMax) and whose
// direction is uniform over a full turn. Magnitude is drawn before the
// angle; callers rely on that order for reproducibility.
func SpawnedFood(parent *components.Food, pos components.Vec2, rng *rand.Rand) *components.Food {
	child := *parent

	speed := parent.SpawnVelocityMin + rng.Float32()*(parent.SpawnVelocityMax-parent.SpawnVelocityMin)
	angle := rng.Float32() * 2 * math.Pi

	child.Body = components.Body{
		Pos: pos,
		Vel: components.Vec2{
			X: float32(math.Cos(float64(angle))) * speed,
			Y: float32(math.Sin(float64(angle))) * speed,
		},
	}
	return &child
}

// FoodDuplication runs the density-gated Bernoulli duplication trial for
// every particle, in slice order. New particles are returned rather than
// appended: the caller makes them live only after the pass completes, so
// they become visible to queries on the next frame.
func FoodDuplication(foods []*components.Food, grid *SpatialGrid, rng *rand.Rand, dt float32) ([]*components.Food, DuplicationStats) {
	grid.Clear()
	for _, f := range foods {
		grid.Insert(f.Body.Pos)
	}

	var spawned []*components.Food
	var stats DuplicationStats

	for _, f := range foods {
		// The density gate precedes the random trial: a crowded particle
		// must not consume a draw.
		neighbours := grid.CountWithin(f.Body.Pos, f.NeighbourRadius)
		if neighbours >= f.MaxNeighbours {
			stats.Blocked++
			continue
		}

		stats.Trials++
		if rng.Float64() < float64(f.DuplicationChance*dt) {
			spawned = append(spawned, SpawnedFood(f, f.Body.Pos, rng))
			stats.Spawned++
		}
	}
	return spawned, stats
}

// FoodDamping applies the fixed food damping rate and snaps tiny
// velocities to exact zero.
func FoodDamping(foods []*components.Food, dt float32) {
	factor := max(0, 1-foodDampingRate*dt)
	for _, f := range foods {
		f.Body.Vel = f.Body.Vel.Scale(factor)

		if f.Body.Vel.LengthSq() < snapThresholdSq {
			f.Body.Vel = components.Vec2{}
		}
	}
}

// FoodCohesion applies cohesion and separation over every unordered pair.
// Each pair is evaluated once, using the first member's radii and forces,
// and the resulting velocity change lands on the first member only; the
// second member never receives a reciprocal force from that evaluation.
// Separation is softened by a distance floor of 1 to avoid a singularity
// at close range. Both forces can apply to the same pair.
func FoodCohesion(foods []*components.Food, dt float32) {
	for i := 0; i < len(foods); i++ {
		fi := foods[i]
		for j := i + 1; j < len(foods); j++ {
			delta := foods[j].Body.Pos.Sub(fi.Body.Pos)
			distance := delta.Length()

			if distance < pairEpsilon {
				continue
			}

			if distance < fi.CohesionRadius {
				attraction := delta.Normalize().Scale(fi.CohesionForce * dt)
				fi.Body.Vel = fi.Body.Vel.Add(attraction)
			}

			if distance < fi.SeparationRadius {
				repulsion := delta.Normalize().Scale(-fi.SeparationForce * dt)
				fi.Body.Vel = fi.Body.Vel.Add(repulsion.Scale(1 / max(distance, 1)))
			}
		}
	}
}
