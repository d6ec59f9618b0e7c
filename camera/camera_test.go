package camera

import (
	"math"
	"testing"
)

func TestNewCentersOnOrigin(t *testing.T) {
	c := New(1280, 720)

	if c.X != 0 || c.Y != 0 {
		t.Errorf("expected camera at origin, got (%f, %f)", c.X, c.Y)
	}
	if c.Zoom != 1.0 {
		t.Errorf("expected 1:1 zoom, got %f", c.Zoom)
	}

	// World origin lands at the viewport center.
	sx, sy := c.WorldToScreen(0, 0)
	if sx != 640 || sy != 360 {
		t.Errorf("world origin at (%f, %f), want (640, 360)", sx, sy)
	}
}

func TestScreenToWorldRoundtrip(t *testing.T) {
	c := New(1280, 720)
	c.Pan(100, -50)
	c.ZoomBy(2)

	wx, wy := float32(37.5), float32(-211.0)
	sx, sy := c.WorldToScreen(wx, wy)
	gx, gy := c.ScreenToWorld(sx, sy)

	if math.Abs(float64(gx-wx)) > 1e-3 || math.Abs(float64(gy-wy)) > 1e-3 {
		t.Errorf("roundtrip (%f, %f) -> (%f, %f)", wx, wy, gx, gy)
	}
}

func TestZoomByClampsToLimits(t *testing.T) {
	c := New(1280, 720)

	c.ZoomBy(100)
	if c.Zoom != c.MaxZoom {
		t.Errorf("expected zoom clamped to %f, got %f", c.MaxZoom, c.Zoom)
	}

	c.ZoomBy(0.0001)
	if c.Zoom != c.MinZoom {
		t.Errorf("expected zoom clamped to %f, got %f", c.MinZoom, c.Zoom)
	}
}

func TestResetRestoresDefaults(t *testing.T) {
	c := New(1280, 720)
	c.Pan(500, 500)
	c.ZoomBy(2)
	c.Reset()

	if c.X != 0 || c.Y != 0 || c.Zoom != 1.0 {
		t.Errorf("reset left camera at (%f, %f) zoom %f", c.X, c.Y, c.Zoom)
	}
}

func TestIsVisibleCulling(t *testing.T) {
	c := New(1280, 720)

	if !c.IsVisible(0, 0, 10) {
		t.Error("origin must be visible from the default view")
	}
	if c.IsVisible(10000, 0, 10) {
		t.Error("far-off point reported visible")
	}

	// Just off the right edge, but its radius reaches into view.
	if !c.IsVisible(645, 0, 10) {
		t.Error("point with overlapping radius must be visible")
	}
}

func TestResizeUpdatesViewport(t *testing.T) {
	c := New(1280, 720)
	c.Resize(800, 600)

	sx, sy := c.WorldToScreen(0, 0)
	if sx != 400 || sy != 300 {
		t.Errorf("world origin at (%f, %f) after resize, want (400, 300)", sx, sy)
	}
}
