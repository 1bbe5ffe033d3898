package display

import (
	"math"
	"strings"
	"testing"

	"moleculebg/background"
)

func TestCursorWatcherIgnoresFirstSample(t *testing.T) {
	var c cursorWatcher
	if c.moved(0, 0) {
		t.Fatalf("first sample reported as a move")
	}
	if c.moved(0, 0) {
		t.Fatalf("unchanged cursor reported as a move")
	}
	if !c.moved(5, 7) {
		t.Fatalf("cursor move not reported")
	}
	if c.moved(5, 7) {
		t.Fatalf("same position reported twice")
	}
}

func TestWindowContainer(t *testing.T) {
	w := &window{}
	if _, _, ok := w.ContentBox(); ok {
		t.Fatalf("window available before layout")
	}
	w.width, w.height = 800, 600
	if width, height, ok := w.ContentBox(); !ok || width != 800 || height != 600 {
		t.Fatalf("content box: %dx%d ok=%v", width, height, ok)
	}
}

func TestFPSCounter(t *testing.T) {
	c := fpsCounter{fps: 60}
	for i := 0; i < 15; i++ {
		if c.tick(1.0 / 32) {
			t.Fatalf("refreshed before half a second")
		}
	}
	if !c.tick(1.0 / 32) {
		t.Fatalf("no refresh after half a second")
	}
	if math.Abs(c.fps-32) > 0.01 {
		t.Fatalf("fps: got=%f want=32", c.fps)
	}
}

func TestHUDText(t *testing.T) {
	s := hudText(59.6, background.FrameStats{Particles: 92, Generation: 3, Lines: 17})
	for _, want := range []string{"FPS: 60", "Particles: 92", "Generation: 3", "Links: 17"} {
		if !strings.Contains(s, want) {
			t.Fatalf("HUD %q missing %q", s, want)
		}
	}
}

func TestToggleHUD(t *testing.T) {
	g := &Game{}
	if g.HUDVisible() {
		t.Fatalf("HUD visible by default")
	}
	g.ToggleHUD()
	if !g.HUDVisible() {
		t.Fatalf("HUD hidden after toggle")
	}
	g.ToggleHUD()
	if g.HUDVisible() {
		t.Fatalf("HUD visible after second toggle")
	}
}
