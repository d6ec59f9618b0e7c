package components

// Body is the kinematic state carried by every moving entity.
//
// Acc is consumed and reset to zero by the integrator each frame;
// producers must re-accumulate every frame.
type Body struct {
	Pos     Vec2
	Vel     Vec2
	Acc     Vec2
	Heading float32 // radians, derived from velocity direction
}
