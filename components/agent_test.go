package components

import (
	"math/rand"
	"testing"
)

func TestNewWanderTargetOnRing(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 100; i++ {
		w := NewWander(Vec2{}, 64, 512, rng)
		d := w.Target.Length()
		if d < 64 || d >= 512 {
			t.Fatalf("iteration %d: target at distance %f, want [64, 512)", i, d)
		}
	}
}

func TestWanderRingAnchoredToOrigin(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	origin := Vec2{X: 1000, Y: -500}

	w := NewWander(origin, 64, 512, rng)
	d := w.Target.Sub(origin).Length()
	if d < 64 || d >= 512 {
		t.Errorf("target at distance %f from origin, want [64, 512)", d)
	}
}

func TestWanderRandomizeDrawOrder(t *testing.T) {
	// Two generators with the same seed: one feeds Randomize, the other
	// replays the expected draws by hand. Angle first, then radius.
	seed := int64(314)
	rng := rand.New(rand.NewSource(seed))
	replay := rand.New(rand.NewSource(seed))

	w := Wander{MinRadius: 64, MaxRadius: 512}
	w.Randomize(Vec2{}, rng)

	_ = replay.Float32() // angle draw
	dist := 64 + replay.Float32()*(512-64)

	if d := w.Target.Length(); d < dist-0.01 || d > dist+0.01 {
		t.Errorf("target distance %f does not match the second draw %f", d, dist)
	}
}
