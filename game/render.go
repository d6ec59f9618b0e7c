package game

import (
	"fmt"
	"math"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/skitter-sim/skitter/components"
)

// Agent triangle dimensions in world units, tip pointing along the heading.
const (
	agentTriangleWidth  = 12.0
	agentTriangleHeight = 18.0
)

// foodDrawRadius is the food circle radius in world units.
const foodDrawRadius = 6.0

// Draw renders the current frame.
func (g *Game) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(rl.NewColor(16, 18, 26, 255))

	for _, f := range g.foods {
		g.drawFood(f)
	}
	for _, a := range g.agents {
		g.drawAgent(a)
	}

	g.drawHUD()

	rl.EndDrawing()
}

// drawFood renders a food particle as a circle.
func (g *Game) drawFood(f *components.Food) {
	if !g.cam.IsVisible(f.Body.Pos.X, f.Body.Pos.Y, foodDrawRadius) {
		return
	}
	sx, sy := g.cam.WorldToScreen(f.Body.Pos.X, f.Body.Pos.Y)
	rl.DrawCircleV(rl.Vector2{X: sx, Y: sy}, foodDrawRadius*g.cam.Zoom, rl.Green)
}

// drawAgent renders an agent as a triangle rotated to its heading, colored
// by its spawn hue.
func (g *Game) drawAgent(a *components.Agent) {
	if !g.cam.IsVisible(a.Body.Pos.X, a.Body.Pos.Y, agentTriangleHeight) {
		return
	}

	// Local-space triangle: tip forward, two corners behind
	local := [3]components.Vec2{
		{X: 2 * agentTriangleHeight / 3, Y: 0},
		{X: -agentTriangleHeight / 3, Y: -agentTriangleWidth / 2},
		{X: -agentTriangleHeight / 3, Y: agentTriangleWidth / 2},
	}

	cosH := float32(math.Cos(float64(a.Body.Heading)))
	sinH := float32(math.Sin(float64(a.Body.Heading)))

	var pts [3]rl.Vector2
	for i, p := range local {
		wx := a.Body.Pos.X + p.X*cosH - p.Y*sinH
		wy := a.Body.Pos.Y + p.X*sinH + p.Y*cosH
		sx, sy := g.cam.WorldToScreen(wx, wy)
		pts[i] = rl.Vector2{X: sx, Y: sy}
	}

	color := rl.ColorFromHSV(a.Hue, 1.0, 0.85)
	rl.DrawTriangle(pts[0], pts[1], pts[2], color)
}

// drawHUD renders the control panel and counters.
func (g *Game) drawHUD() {
	label := fmt.Sprintf("tick %d | agents %d | food %d | fps %d",
		g.tick, len(g.agents), len(g.foods), rl.GetFPS())
	rl.DrawText(label, 10, 10, 10, rl.RayWhite)

	pauseText := "Pause"
	if g.paused {
		pauseText = "Resume"
	}
	if gui.Button(rl.Rectangle{X: 10, Y: 26, Width: 72, Height: 22}, pauseText) {
		g.paused = !g.paused
	}

	steps := gui.SliderBar(
		rl.Rectangle{X: 130, Y: 26, Width: 120, Height: 22},
		"speed",
		fmt.Sprintf("%dx", g.stepsPerUpdate),
		float32(g.stepsPerUpdate),
		1, maxStepsPerUpdate,
	)
	g.stepsPerUpdate = int(steps + 0.5)
	if g.stepsPerUpdate < 1 {
		g.stepsPerUpdate = 1
	}
}
