package main

import (
	"flag"
	"fmt"
	"log"
	"strconv"
	"strings"

	"moleculebg/background"
	"moleculebg/config"
	"moleculebg/raster"
)

func main() {
	if err := config.Load(); err != nil {
		log.Printf("%v", err)
	}

	width := flag.Int("width", config.Int("WIDTH", 1280), "surface width")
	height := flag.Int("height", config.Int("HEIGHT", 720), "surface height")
	frames := flag.Int("frames", 120, "frames to simulate before writing")
	seed := flag.Int64("seed", config.Int64("SEED", 1), "particle seed")
	pointer := flag.String("pointer", "", "pointer position as x,y (unset when empty)")
	grid := flag.Bool("grid", config.Bool("GRID", false), "find links with a spatial grid instead of a pairwise scan")
	out := flag.String("out", "molecules.png", "output PNG path")
	flag.Parse()

	cfg := background.DefaultConfig()
	if *grid {
		cfg.Links = background.LinkGrid
	}

	opts := raster.SnapshotOptions{
		Width:  *width,
		Height: *height,
		Frames: *frames,
		Seed:   *seed,
	}
	if *pointer != "" {
		p, err := parsePoint(*pointer)
		if err != nil {
			log.Fatalf("Invalid -pointer: %v", err)
		}
		opts.Pointer = &p
	}

	img, stats, err := raster.Snapshot(cfg, opts)
	if err != nil {
		log.Fatalf("Failed to render snapshot: %v", err)
	}
	if err := raster.WritePNG(*out, img); err != nil {
		log.Fatalf("Failed to write snapshot: %v", err)
	}
	log.Printf("Wrote %s: %d frames, %d particles, %d links in last frame", *out, stats.Frames, stats.Particles, stats.Lines)
}

// parsePoint parses "x,y"
func parsePoint(s string) ([2]float64, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return [2]float64{}, fmt.Errorf("expected x,y, got %q", s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(xs), 64)
	if err != nil {
		return [2]float64{}, fmt.Errorf("x: %w", err)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(ys), 64)
	if err != nil {
		return [2]float64{}, fmt.Errorf("y: %w", err)
	}
	return [2]float64{x, y}, nil
}
