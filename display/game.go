// Package display runs the molecule background in a desktop window with Ebiten.
package display

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"moleculebg/background"
	"moleculebg/glow"
)

// haloSpriteSize is the resolution of the glow sprite before scaling
const haloSpriteSize = 64

// window is the container the surface fills: the Ebiten window itself
type window struct {
	width, height int
}

// ContentBox returns the window size once Ebiten has reported it
func (w *window) ContentBox() (int, int, bool) {
	return w.width, w.height, w.width > 0 && w.height > 0
}

// Game implements ebiten.Game around a background
type Game struct {
	config  Config
	bg      *background.Background
	surface *Surface
	frames  *background.FrameQueue
	window  *window
	cursor  cursorWatcher
	showHUD bool

	fps      fpsCounter
	profiler *Profiler

	// Game start time to ignore FPS drops during startup
	gameStartTime time.Time

	// Last update time for delta time calculation
	lastUpdateTime time.Time
}

// NewGame creates the background and starts its render loop
func NewGame(config Config) (*Game, error) {
	halo, err := glow.Sprite(haloSpriteSize)
	if err != nil {
		return nil, fmt.Errorf("display: %w", err)
	}

	var rng *rand.Rand
	if config.Seed != 0 {
		rng = rand.New(rand.NewSource(config.Seed))
	}

	g := &Game{
		config:         config,
		surface:        NewSurface(config.Backdrop, halo),
		frames:         &background.FrameQueue{},
		window:         &window{},
		fps:            fpsCounter{fps: 60},
		gameStartTime:  time.Now(),
		lastUpdateTime: time.Now(),
	}

	if config.ProfileDir != "" {
		g.profiler, err = NewProfiler(config.ProfileDir)
		if err != nil {
			return nil, fmt.Errorf("display: %w", err)
		}
	}

	g.bg = background.New(config.Background, g.surface, g.window, g.frames, rng)
	g.bg.Start()
	return g, nil
}

// Background returns the background driven by this game
func (g *Game) Background() *background.Background {
	return g.bg
}

// Update reads input and tracks the frame rate; simulation happens in Draw
func (g *Game) Update() error {
	now := time.Now()
	deltaTime := now.Sub(g.lastUpdateTime).Seconds()
	g.lastUpdateTime = now

	// Clamp delta time to prevent large jumps
	if deltaTime > 0.1 {
		deltaTime = 0.1
	}

	g.handleInput()

	if g.fps.tick(deltaTime) {
		g.checkFPSDrop()
	}
	return nil
}

// checkFPSDrop captures a profile when the frame rate falls after warm-up
func (g *Game) checkFPSDrop() {
	if g.profiler == nil || time.Since(g.gameStartTime) < 3*time.Second {
		return
	}
	if g.fps.fps >= g.config.FPSDropThreshold {
		return
	}

	stats := g.bg.Loop.Stats()
	reason := fmt.Sprintf("fps%.0f-particles%d", g.fps.fps, stats.Particles)
	if err := g.profiler.CaptureProfile(reason); err == nil {
		log.Printf("display: FPS drop detected (%.0f FPS), capturing profile", g.fps.fps)
	}
}

// Draw runs the scheduled background frame on the screen
func (g *Game) Draw(screen *ebiten.Image) {
	g.surface.Bind(screen)
	g.frames.RunPending()
	g.surface.Bind(nil)

	if g.showHUD {
		drawHUD(screen, g.fps.fps, g.bg.Loop.Stats())
	}
}

// Layout uses the window size as the surface size and resizes the
// background whenever it changes
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.window.width || outsideHeight != g.window.height {
		g.window.width = outsideWidth
		g.window.height = outsideHeight
		g.bg.Resize()
	}
	return outsideWidth, outsideHeight
}

// fpsCounter averages the frame rate over half-second windows
type fpsCounter struct {
	fps     float64
	frames  int
	elapsed float64
}

// tick records a frame and reports whether the FPS estimate was refreshed
func (c *fpsCounter) tick(deltaTime float64) bool {
	c.elapsed += deltaTime
	c.frames++
	if c.elapsed < 0.5 {
		return false
	}
	c.fps = float64(c.frames) / c.elapsed
	c.frames = 0
	c.elapsed = 0
	return true
}
