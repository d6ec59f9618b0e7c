package game

import (
	"os"
	"testing"

	"github.com/skitter-sim/skitter/components"
	"github.com/skitter-sim/skitter/config"
)

func TestMain(m *testing.M) {
	config.MustInit("")
	os.Exit(m.Run())
}

func newTestGame(seed int64) *Game {
	return NewGameWithOptions(Options{Seed: seed})
}

func TestInitialPopulations(t *testing.T) {
	g := newTestGame(42)
	cfg := config.Cfg()

	if len(g.Agents()) != cfg.Sim.AgentCount {
		t.Errorf("expected %d agents, got %d", cfg.Sim.AgentCount, len(g.Agents()))
	}
	if len(g.Foods()) != cfg.Sim.FoodCount {
		t.Errorf("expected %d food, got %d", cfg.Sim.FoodCount, len(g.Foods()))
	}

	for i, a := range g.Agents() {
		if a.Body.Pos.X != 0 || a.Body.Pos.Y != 0 {
			t.Errorf("agent %d spawned at (%f, %f), want origin", i, a.Body.Pos.X, a.Body.Pos.Y)
		}
		d := a.Wander.Target.Length()
		if d < 64 || d >= 512 {
			t.Errorf("agent %d wander target at distance %f, want [64, 512)", i, d)
		}
	}

	for i, f := range g.Foods() {
		if f.Body.Pos.X < -cfg.Derived.HalfW32 || f.Body.Pos.X > cfg.Derived.HalfW32 ||
			f.Body.Pos.Y < -cfg.Derived.HalfH32 || f.Body.Pos.Y > cfg.Derived.HalfH32 {
			t.Errorf("food %d spawned outside the viewport: (%f, %f)",
				i, f.Body.Pos.X, f.Body.Pos.Y)
		}
		if f.NutritionalValue < 3.2 || f.NutritionalValue > 4.8 {
			t.Errorf("food %d nutrition %f outside the ±20%% jitter band",
				i, f.NutritionalValue)
		}
	}
}

func TestSameSeedReplaysExactly(t *testing.T) {
	a := newTestGame(7)
	b := newTestGame(7)

	dt := config.Cfg().Derived.DT32
	for i := 0; i < 300; i++ {
		a.Step(dt, Pointer{})
		b.Step(dt, Pointer{})
	}

	if len(a.Foods()) != len(b.Foods()) {
		t.Fatalf("food populations diverged: %d vs %d", len(a.Foods()), len(b.Foods()))
	}
	for i := range a.Agents() {
		if a.Agents()[i].Body.Pos != b.Agents()[i].Body.Pos {
			t.Errorf("agent %d diverged: (%f, %f) vs (%f, %f)", i,
				a.Agents()[i].Body.Pos.X, a.Agents()[i].Body.Pos.Y,
				b.Agents()[i].Body.Pos.X, b.Agents()[i].Body.Pos.Y)
		}
	}
	for i := range a.Foods() {
		if a.Foods()[i].Body.Pos != b.Foods()[i].Body.Pos {
			t.Errorf("food %d diverged", i)
		}
	}
}

func TestDifferentSeedsDiverge(t *testing.T) {
	a := newTestGame(1)
	b := newTestGame(2)

	same := true
	for i := range a.Agents() {
		if a.Agents()[i].Wander.Target != b.Agents()[i].Wander.Target {
			same = false
			break
		}
	}
	if same {
		t.Error("different seeds produced identical wander targets")
	}
}

func TestDuplicationSpawnsJoinAtEndOfStep(t *testing.T) {
	g := newTestGame(42)
	for _, f := range g.Foods() {
		f.DuplicationChance = 1e9 // every particle duplicates each step
	}

	before := len(g.Foods())
	g.Step(config.Cfg().Derived.DT32, Pointer{})

	// Every live particle spawned exactly one child this step; children do
	// not themselves duplicate within the same step.
	if got := len(g.Foods()); got != before*2 {
		t.Errorf("expected %d food after one step, got %d", before*2, got)
	}
	if len(g.pendingFoods) != 0 {
		t.Errorf("pending queue not flushed: %d", len(g.pendingFoods))
	}
}

func TestPointerPullsAgents(t *testing.T) {
	withPointer := newTestGame(42)
	without := newTestGame(42)

	dt := config.Cfg().Derived.DT32
	pointer := Pointer{X: 5000, Y: 0, Valid: true}
	// Few enough steps that no agent reaches its wander target, so both
	// games consume identical random draws and differ only by the pointer.
	for i := 0; i < 10; i++ {
		withPointer.Step(dt, pointer)
		without.Step(dt, Pointer{})
	}

	// The pointer force is additive; the pulled agents must sit further
	// toward the pointer than their undisturbed twins.
	pulled := 0
	for i := range withPointer.Agents() {
		if withPointer.Agents()[i].Body.Pos.X > without.Agents()[i].Body.Pos.X {
			pulled++
		}
	}
	if pulled != len(withPointer.Agents()) {
		t.Errorf("only %d of %d agents pulled toward the pointer",
			pulled, len(withPointer.Agents()))
	}
}

func TestTickAndSimTimeAdvance(t *testing.T) {
	g := newTestGame(42)
	dt := config.Cfg().Derived.DT32

	for i := 0; i < 10; i++ {
		g.Step(dt, Pointer{})
	}

	if g.Tick() != 10 {
		t.Errorf("expected tick 10, got %d", g.Tick())
	}
	want := float64(dt) * 10
	if g.simTime < want*0.999 || g.simTime > want*1.001 {
		t.Errorf("expected sim time ~%f, got %f", want, g.simTime)
	}
}

func TestSpawnFoodDefersUntilFlush(t *testing.T) {
	g := newTestGame(42)
	cfg := config.Cfg()

	template := foodTemplate(cfg)
	before := len(g.Foods())

	handle := g.SpawnFood(&template, components.Vec2{X: 10, Y: 10})
	if handle == nil {
		t.Fatal("expected a spawn handle")
	}
	if len(g.Foods()) != before {
		t.Error("spawn joined the live set before the step ended")
	}

	g.Step(cfg.Derived.DT32, Pointer{})
	if len(g.Foods()) < before+1 {
		t.Error("spawn never joined the live set")
	}
}
