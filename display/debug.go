package display

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"moleculebg/background"
)

var hudColor = color.NRGBA{R: 200, G: 230, B: 255, A: 255}

// hudText formats the HUD lines for a frame
func hudText(fps float64, stats background.FrameStats) string {
	return fmt.Sprintf("FPS: %.0f\nParticles: %d\nGeneration: %d\nLinks: %d",
		fps, stats.Particles, stats.Generation, stats.Lines)
}

// ToggleHUD shows or hides the frame statistics overlay
func (g *Game) ToggleHUD() {
	g.showHUD = !g.showHUD
}

// HUDVisible reports whether the overlay is drawn
func (g *Game) HUDVisible() bool {
	return g.showHUD
}

// drawHUD prints frame statistics on top of the background
func drawHUD(screen *ebiten.Image, fps float64, stats background.FrameStats) {
	face := basicfont.Face7x13
	text.Draw(screen, hudText(fps, stats), face, 8, 8+face.Ascent, hudColor)
}
