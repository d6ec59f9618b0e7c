// Package systems implements the per-frame simulation systems.
//
// Each exported function is one stage of the frame. The Game calls them in
// a fixed order; within a frame a stage either reads or has exclusive write
// access to the fields it touches, so no entity is ever mutated from two
// places at once.
package systems

import "github.com/skitter-sim/skitter/components"

// snapThresholdSq is the squared speed below which velocity snaps to exact
// zero, preventing infinite asymptotic drift.
const snapThresholdSq = 1e-5

// ApplyAcceleration integrates acceleration into velocity and consumes it.
// A NaN acceleration is skipped for this frame; the acceleration is reset
// either way so producers start clean next frame.
func ApplyAcceleration(b *components.Body, dt float32) {
	if !b.Acc.IsNaN() {
		b.Vel = b.Vel.Add(b.Acc.Scale(dt))
	}

	if b.Vel.LengthSq() < snapThresholdSq {
		b.Vel = components.Vec2{}
	}

	b.Acc = components.Vec2{}
}

// ApplyDamping scales velocity by max(0, 1 - damping*dt).
func ApplyDamping(b *components.Body, damping, dt float32) {
	b.Vel = b.Vel.Scale(max(0, 1-damping*dt))
}

// ClampSpeed limits speed to maxSpeed, preserving direction.
func ClampSpeed(b *components.Body, maxSpeed float32) {
	b.Vel = b.Vel.ClampLength(maxSpeed)
}

// ApplyVelocity integrates velocity into position. A NaN velocity is
// skipped so a transient numeric error cannot corrupt the position; it
// self-heals once the producers recover.
func ApplyVelocity(b *components.Body, dt float32) {
	if !b.Vel.IsNaN() {
		b.Pos = b.Pos.Add(b.Vel.Scale(dt))
	}
}

// UpdateHeading points the body along its velocity. Zero velocity leaves
// the heading unchanged (the angle is undefined), as does a NaN angle.
func UpdateHeading(b *components.Body) {
	if b.Vel == (components.Vec2{}) {
		return
	}
	angle := b.Vel.Angle()
	if angle != angle {
		return
	}
	b.Heading = angle
}

// Integrate runs the full pipeline for an entity that carries both a
// damping coefficient and a speed bound.
func Integrate(b *components.Body, damping, maxSpeed, dt float32) {
	ApplyAcceleration(b, dt)
	ApplyDamping(b, damping, dt)
	ClampSpeed(b, maxSpeed)
	ApplyVelocity(b, dt)
	UpdateHeading(b)
}
