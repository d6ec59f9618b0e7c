package game

import rl "github.com/gen2brain/raylib-go/raylib"

// handleInput processes keyboard and camera input.
func (g *Game) handleInput() {
	g.handleResize()

	if rl.IsKeyPressed(rl.KeySpace) {
		g.paused = !g.paused
	}

	// Steps-per-update control with < > keys (comma and period)
	if rl.IsKeyPressed(rl.KeyComma) && g.stepsPerUpdate > 1 {
		g.stepsPerUpdate--
	}
	if rl.IsKeyPressed(rl.KeyPeriod) && g.stepsPerUpdate < maxStepsPerUpdate {
		g.stepsPerUpdate++
	}

	g.handleCameraInput()
}

// handleResize propagates window resizes to the camera.
func (g *Game) handleResize() {
	if !rl.IsWindowResized() {
		return
	}
	g.cam.Resize(float32(rl.GetScreenWidth()), float32(rl.GetScreenHeight()))
}

// handleCameraInput processes camera pan/zoom controls.
func (g *Game) handleCameraInput() {
	// Pan speed scales inversely with zoom for natural feel
	panSpeed := float32(8.0) / g.cam.Zoom

	if rl.IsKeyDown(rl.KeyRight) {
		g.cam.Pan(panSpeed, 0)
	}
	if rl.IsKeyDown(rl.KeyLeft) {
		g.cam.Pan(-panSpeed, 0)
	}
	if rl.IsKeyDown(rl.KeyDown) {
		g.cam.Pan(0, panSpeed)
	}
	if rl.IsKeyDown(rl.KeyUp) {
		g.cam.Pan(0, -panSpeed)
	}

	if wheelMove := rl.GetMouseWheelMove(); wheelMove != 0 {
		g.cam.ZoomBy(1.0 + wheelMove*0.1)
	}

	if rl.IsKeyPressed(rl.KeyHome) {
		g.cam.Reset()
	}
}

// pointerFromMouse reports the mouse as a world-space pointer. The pointer
// is absent while the cursor is off the window; that is a normal state,
// not an error.
func (g *Game) pointerFromMouse() Pointer {
	if !rl.IsCursorOnScreen() {
		return Pointer{}
	}
	m := rl.GetMousePosition()
	wx, wy := g.cam.ScreenToWorld(m.X, m.Y)
	return Pointer{X: wx, Y: wy, Valid: true}
}
