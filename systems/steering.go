package systems

import (
	"math/rand"

	"github.com/skitter-sim/skitter/components"
)

// arriveDeadzone is the distance below which Arrive returns no force,
// preventing jitter at the target.
const arriveDeadzone = 0.1

// wanderCaptureSq is the squared distance at which the wander target
// counts as reached and re-rolls.
const wanderCaptureSq = 1.0

// Seek steers toward the target at full speed. The returned force never
// exceeds maxForce.
func Seek(pos, vel, target components.Vec2, maxSpeed, maxForce float32) components.Vec2 {
	desired := target.Sub(pos).Normalize().Scale(maxSpeed)
	return desired.Sub(vel).ClampLength(maxForce)
}

// Flee steers directly away from the target.
func Flee(pos, vel, target components.Vec2, maxSpeed, maxForce float32) components.Vec2 {
	desired := pos.Sub(target).Normalize().Scale(maxSpeed)
	return desired.Sub(vel).ClampLength(maxForce)
}

// Arrive steers toward the target, slowing linearly inside slowingRadius
// so the agent stops at the target instead of overshooting.
func Arrive(pos, vel, target components.Vec2, maxSpeed, maxForce, slowingRadius float32) components.Vec2 {
	distance := target.Sub(pos).Length()

	if distance < arriveDeadzone {
		return components.Vec2{}
	}

	desiredSpeed := maxSpeed
	if distance < slowingRadius {
		desiredSpeed = maxSpeed * (distance / slowingRadius)
	}

	desired := target.Sub(pos).Normalize().Scale(desiredSpeed)
	return desired.Sub(vel).ClampLength(maxForce)
}

// FollowPointer accumulates an Arrive force toward the pointer position.
// Only called when a pointer position exists this frame.
func FollowPointer(a *components.Agent, pointer components.Vec2) {
	a.Body.Acc = a.Body.Acc.Add(Arrive(
		a.Body.Pos, a.Body.Vel, pointer,
		a.MaxSpeed, a.MaxForce, a.SlowingRadius,
	))
}

// UpdateWander re-rolls the wander target once the agent is within capture
// distance of it, then accumulates an Arrive force toward the (possibly
// fresh) target. Reports whether the target was re-rolled.
func UpdateWander(a *components.Agent, rng *rand.Rand) bool {
	rerolled := false
	if a.Body.Pos.Sub(a.Wander.Target).LengthSq() < wanderCaptureSq {
		a.Wander.Randomize(components.Vec2{}, rng)
		rerolled = true
	}

	a.Body.Acc = a.Body.Acc.Add(Arrive(
		a.Body.Pos, a.Body.Vel, a.Wander.Target,
		a.MaxSpeed, a.MaxForce, a.SlowingRadius,
	))
	return rerolled
}
