package display

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// cursorWatcher turns cursor polling into move notifications. Ebiten reports
// a position before the cursor has ever moved, so the first sample is only
// remembered.
type cursorWatcher struct {
	x, y    int
	sampled bool
}

// moved records a cursor sample and reports whether it differs from the last one
func (c *cursorWatcher) moved(x, y int) bool {
	if !c.sampled {
		c.x, c.y = x, y
		c.sampled = true
		return false
	}
	if x == c.x && y == c.y {
		return false
	}
	c.x, c.y = x, y
	return true
}

// handleInput forwards cursor moves to the pointer tracker and handles
// the fullscreen and HUD toggles
func (g *Game) handleInput() {
	x, y := ebiten.CursorPosition()
	if g.cursor.moved(x, y) {
		g.bg.Pointer.SetPosition(float64(x), float64(y))
	}

	// F1 toggles the HUD
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		g.ToggleHUD()
	}

	// Alt+Enter toggles fullscreen
	altPressed := ebiten.IsKeyPressed(ebiten.KeyAlt) || ebiten.IsKeyPressed(ebiten.KeyAltLeft) || ebiten.IsKeyPressed(ebiten.KeyAltRight)
	if altPressed && inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}
}
