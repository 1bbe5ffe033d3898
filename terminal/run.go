package terminal

import (
	"context"
	"fmt"
	"image/color"
	"math/rand"
	"time"

	"github.com/gdamore/tcell/v2"

	"moleculebg/background"
)

// frameInterval paces the render loop at roughly 60 FPS
const frameInterval = 16 * time.Millisecond

// Backdrop is the terminal background colour
var Backdrop = color.NRGBA{R: 3, G: 5, B: 16, A: 255}

// Run draws the background on the terminal until ctx is done or the user
// quits with Esc, Ctrl+C or q. A nil rng is seeded from the clock.
func Run(ctx context.Context, cfg background.Config, rng *rand.Rand) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("terminal: create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("terminal: init screen: %w", err)
	}
	defer screen.Fini()
	screen.EnableMouse()
	screen.HideCursor()

	return run(ctx, screen, cfg, rng)
}

func run(ctx context.Context, screen tcell.Screen, cfg background.Config, rng *rand.Rand) error {
	surface := NewSurface(screen, Backdrop)
	frames := &background.FrameQueue{}
	bg := background.New(cfg, surface, surface, frames, rng)
	bg.Start()

	done := make(chan struct{})
	defer close(done)

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case eventChan <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev := <-eventChan:
			if !handleEvent(screen, bg, ev) {
				return nil
			}

		case <-ticker.C:
			if frames.RunPending() {
				screen.Show()
			}
		}
	}
}

// handleEvent applies one terminal event and reports whether to keep running
func handleEvent(screen tcell.Screen, bg *background.Background, ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
			(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
			return false
		}

	case *tcell.EventMouse:
		x, y := ev.Position()
		bg.Pointer.SetPosition(float64(x*CellWidth+CellWidth/2), float64(y*CellHeight+CellHeight/2))

	case *tcell.EventResize:
		screen.Sync()
		bg.Resize()
	}
	return true
}
