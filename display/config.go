package display

import (
	"image/color"

	"moleculebg/background"
)

// Config holds window and runtime settings for the desktop host
type Config struct {
	// ScreenWidth is the initial window width in pixels
	ScreenWidth int

	// ScreenHeight is the initial window height in pixels
	ScreenHeight int

	// Title is the window title
	Title string

	// Backdrop fills the window behind the particles
	Backdrop color.NRGBA

	// Seed for the particle field; 0 seeds from the clock
	Seed int64

	// ProfileDir enables FPS-drop profiling into this directory when set
	ProfileDir string

	// FPSDropThreshold is the FPS below which a profile is captured
	FPSDropThreshold float64

	// Background holds the particle look
	Background background.Config
}

// DefaultConfig returns a default configuration
func DefaultConfig() Config {
	return Config{
		ScreenWidth:      1280,
		ScreenHeight:     720,
		Title:            "Molecules",
		Backdrop:         color.NRGBA{R: 3, G: 5, B: 16, A: 255},
		FPSDropThreshold: 45,
		Background:       background.DefaultConfig(),
	}
}
