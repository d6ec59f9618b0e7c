// Package components defines the entity state for the simulation.
package components

import "math"

// Vec2 is a 2D vector in world units.
type Vec2 struct {
	X, Y float32
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Scale returns v scaled by s.
func (v Vec2) Scale(s float32) Vec2 { return Vec2{v.X * s, v.Y * s} }

// LengthSq returns the squared magnitude (avoids sqrt in hot paths).
func (v Vec2) LengthSq() float32 { return v.X*v.X + v.Y*v.Y }

// Length returns the magnitude.
func (v Vec2) Length() float32 {
	return float32(math.Sqrt(float64(v.LengthSq())))
}

// Normalize returns the unit vector, or the zero vector if v is zero.
func (v Vec2) Normalize() Vec2 {
	l := v.Length()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{v.X / l, v.Y / l}
}

// ClampLength limits the magnitude to maxLen, preserving direction.
func (v Vec2) ClampLength(maxLen float32) Vec2 {
	lsq := v.LengthSq()
	if lsq <= maxLen*maxLen {
		return v
	}
	l := float32(math.Sqrt(float64(lsq)))
	return Vec2{v.X / l * maxLen, v.Y / l * maxLen}
}

// IsNaN reports whether either component is not a number.
func (v Vec2) IsNaN() bool {
	return v.X != v.X || v.Y != v.Y
}

// Angle returns the direction of the vector in radians.
func (v Vec2) Angle() float32 {
	return float32(math.Atan2(float64(v.Y), float64(v.X)))
}
