package game

import (
	"github.com/skitter-sim/skitter/components"
	"github.com/skitter-sim/skitter/config"
	"github.com/skitter-sim/skitter/systems"
)

// spawnInitialAgents creates the starting agents at the world origin.
// Per agent, the hue is drawn first, then the wander target (angle, then
// radius); the draw order is part of the reproducibility contract.
func (g *Game) spawnInitialAgents() {
	cfg := config.Cfg()

	for i := 0; i < cfg.Sim.AgentCount; i++ {
		hue := g.rng.Float32() * 360
		g.SpawnAgent(components.Vec2{}, hue)
	}
}

// SpawnAgent creates a steering agent with the shared motion constants and
// a freshly randomized wander target, and returns its handle.
func (g *Game) SpawnAgent(pos components.Vec2, hue float32) *components.Agent {
	cfg := config.Cfg()

	a := &components.Agent{
		Body:          components.Body{Pos: pos},
		MaxSpeed:      float32(cfg.Agents.MaxSpeed),
		MaxForce:      float32(cfg.Agents.MaxForce),
		SlowingRadius: float32(cfg.Agents.SlowingRadius),
		Damping:       float32(cfg.Agents.Damping),
		Hue:           hue,
	}
	a.Wander = components.NewWander(
		components.Vec2{},
		float32(cfg.Agents.WanderMinRadius),
		float32(cfg.Agents.WanderMaxRadius),
		g.rng,
	)

	g.agents = append(g.agents, a)
	return a
}

// foodTemplate builds the base food particle from config.
func foodTemplate(cfg *config.Config) components.Food {
	return components.Food{
		NutritionalValue:  float32(cfg.Food.NutritionalValue),
		DuplicationChance: float32(cfg.Food.DuplicationChance),
		SpawnVelocityMin:  float32(cfg.Food.SpawnVelocityMin),
		SpawnVelocityMax:  float32(cfg.Food.SpawnVelocityMax),
		CohesionRadius:    float32(cfg.Food.CohesionRadius),
		CohesionForce:     float32(cfg.Food.CohesionForce),
		SeparationRadius:  float32(cfg.Food.SeparationRadius),
		SeparationForce:   float32(cfg.Food.SeparationForce),
		NeighbourRadius:   float32(cfg.Food.NeighbourRadius),
		MaxNeighbours:     cfg.Food.MaxNeighbours,
	}
}

// spawnInitialFood scatters the starting food over the viewport, jittering
// each particle's nutrition around the base template. Duplicated children
// copy their parent verbatim; the jitter applies only here.
func (g *Game) spawnInitialFood() {
	cfg := config.Cfg()
	base := foodTemplate(cfg)
	jitter := float32(cfg.Food.NutritionJitter)

	for i := 0; i < cfg.Sim.FoodCount; i++ {
		pos := components.Vec2{
			X: (g.rng.Float32()*2 - 1) * cfg.Derived.HalfW32,
			Y: (g.rng.Float32()*2 - 1) * cfg.Derived.HalfH32,
		}

		f := base
		f.NutritionalValue *= 1 - jitter + g.rng.Float32()*2*jitter

		g.SpawnFood(&f, pos)
	}
}

// SpawnFood creates a particle from the given template at pos with a
// randomized initial velocity and returns its handle. The particle joins
// the live set at the end of the current step.
func (g *Game) SpawnFood(template *components.Food, pos components.Vec2) *components.Food {
	f := systems.SpawnedFood(template, pos, g.rng)
	g.pendingFoods = append(g.pendingFoods, f)
	return f
}
