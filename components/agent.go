package components

import (
	"math"
	"math/rand"
)

// Agent is a steering agent that pursues the pointer and a wander target.
// The motion constants are shared fixed values, not randomized per agent.
type Agent struct {
	Body Body

	MaxSpeed      float32
	MaxForce      float32
	SlowingRadius float32
	Damping       float32

	Hue float32 // visual hue in degrees, assigned at spawn

	Wander Wander
}

// Wander holds the ring-target state for the wander behavior.
// The ring is anchored to the world origin, not to the agent.
type Wander struct {
	MinRadius float32
	MaxRadius float32
	Target    Vec2
}

// NewWander creates wander state with a freshly randomized target around origin.
func NewWander(origin Vec2, minRadius, maxRadius float32, rng *rand.Rand) Wander {
	w := Wander{MinRadius: minRadius, MaxRadius: maxRadius}
	w.Randomize(origin, rng)
	return w
}

// Randomize re-rolls the target: uniform angle over a full turn, then
// uniform radius in [MinRadius, MaxRadius). Draw order matters for
// reproducibility.
func (w *Wander) Randomize(origin Vec2, rng *rand.Rand) {
	angle := rng.Float32() * 2 * math.Pi
	dist := w.MinRadius + rng.Float32()*(w.MaxRadius-w.MinRadius)

	w.Target = Vec2{
		X: origin.X + float32(math.Cos(float64(angle)))*dist,
		Y: origin.Y + float32(math.Sin(float64(angle)))*dist,
	}
}
