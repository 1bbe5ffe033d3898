package raster

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math/rand"
	"os"

	"moleculebg/background"
	"moleculebg/glow"
)

// Backdrop is the default snapshot background colour
var Backdrop = color.NRGBA{R: 3, G: 5, B: 16, A: 255}

// SnapshotOptions describes a headless run
type SnapshotOptions struct {
	Width, Height int
	Frames        int
	Seed          int64

	// Pointer, when set, is reported as a pointer move before the first frame
	Pointer *[2]float64
}

// box is a fixed-size container
type box struct {
	width, height int
}

func (b box) ContentBox() (int, int, bool) {
	return b.width, b.height, b.width > 0 && b.height > 0
}

// Snapshot runs the background for the requested number of frames and
// returns the last one
func Snapshot(cfg background.Config, opts SnapshotOptions) (*image.RGBA, background.FrameStats, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, background.FrameStats{}, fmt.Errorf("raster: invalid snapshot size %dx%d", opts.Width, opts.Height)
	}

	halo, err := glow.Sprite(64)
	if err != nil {
		return nil, background.FrameStats{}, fmt.Errorf("raster: %w", err)
	}

	surface := NewSurface(opts.Width, opts.Height, Backdrop, halo)
	frames := &background.FrameQueue{}
	bg := background.New(cfg, surface, box{opts.Width, opts.Height}, frames, rand.New(rand.NewSource(opts.Seed)))
	if opts.Pointer != nil {
		bg.Pointer.SetPosition(opts.Pointer[0], opts.Pointer[1])
	}
	bg.Start()

	for i := 0; i < opts.Frames; i++ {
		if !frames.RunPending() {
			break
		}
	}
	return surface.Image(), bg.Loop.Stats(), nil
}

// WritePNG encodes img to path
func WritePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("raster: create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("raster: encode %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("raster: close %s: %w", path, err)
	}
	return nil
}
