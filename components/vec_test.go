package components

import (
	"math"
	"testing"
)

func TestVecNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   Vec2
		want Vec2
	}{
		{"zero stays zero", Vec2{}, Vec2{}},
		{"axis aligned", Vec2{X: 5, Y: 0}, Vec2{X: 1, Y: 0}},
		{"3-4-5 triangle", Vec2{X: 3, Y: 4}, Vec2{X: 0.6, Y: 0.8}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.in.Normalize()
			if math.Abs(float64(got.X-tt.want.X)) > 1e-6 ||
				math.Abs(float64(got.Y-tt.want.Y)) > 1e-6 {
				t.Errorf("got (%f, %f), want (%f, %f)", got.X, got.Y, tt.want.X, tt.want.Y)
			}
		})
	}
}

func TestVecClampLength(t *testing.T) {
	// Under the bound: returned unchanged, not renormalized.
	v := Vec2{X: 3, Y: 4}
	if got := v.ClampLength(10); got != v {
		t.Errorf("clamp under bound changed the vector: (%f, %f)", got.X, got.Y)
	}

	// Over the bound: magnitude is the bound, direction preserved.
	got := Vec2{X: 30, Y: 40}.ClampLength(5)
	if math.Abs(float64(got.Length()-5)) > 1e-5 {
		t.Errorf("expected length 5, got %f", got.Length())
	}
	if math.Abs(float64(got.X-3)) > 1e-5 || math.Abs(float64(got.Y-4)) > 1e-5 {
		t.Errorf("expected (3, 4), got (%f, %f)", got.X, got.Y)
	}
}

func TestVecIsNaN(t *testing.T) {
	nan := float32(math.NaN())

	if (Vec2{X: 1, Y: 2}).IsNaN() {
		t.Error("finite vector reported NaN")
	}
	if !(Vec2{X: nan, Y: 0}).IsNaN() {
		t.Error("NaN X not detected")
	}
	if !(Vec2{X: 0, Y: nan}).IsNaN() {
		t.Error("NaN Y not detected")
	}
}

func TestVecAngle(t *testing.T) {
	tests := []struct {
		in   Vec2
		want float64
	}{
		{Vec2{X: 1, Y: 0}, 0},
		{Vec2{X: 0, Y: 1}, math.Pi / 2},
		{Vec2{X: -1, Y: 0}, math.Pi},
		{Vec2{X: 0, Y: -1}, -math.Pi / 2},
	}

	for _, tt := range tests {
		if got := float64(tt.in.Angle()); math.Abs(got-tt.want) > 1e-6 {
			t.Errorf("(%f, %f): angle %f, want %f", tt.in.X, tt.in.Y, got, tt.want)
		}
	}
}

func TestVecLengthSqMatchesLength(t *testing.T) {
	v := Vec2{X: 3, Y: 4}
	if v.LengthSq() != 25 {
		t.Errorf("expected 25, got %f", v.LengthSq())
	}
	if v.Length() != 5 {
		t.Errorf("expected 5, got %f", v.Length())
	}
}
