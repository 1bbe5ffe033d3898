package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"moleculebg/background"
	"moleculebg/config"
	"moleculebg/display"
)

func main() {
	if err := config.Load(); err != nil {
		log.Printf("%v", err)
	}

	cfg := display.DefaultConfig()
	flag.IntVar(&cfg.ScreenWidth, "width", config.Int("WIDTH", cfg.ScreenWidth), "initial window width")
	flag.IntVar(&cfg.ScreenHeight, "height", config.Int("HEIGHT", cfg.ScreenHeight), "initial window height")
	flag.StringVar(&cfg.Title, "title", config.String("TITLE", cfg.Title), "window title")
	flag.Int64Var(&cfg.Seed, "seed", config.Int64("SEED", 0), "particle seed (0 seeds from the clock)")
	flag.StringVar(&cfg.ProfileDir, "profile-dir", config.String("PROFILE_DIR", ""), "capture CPU profiles here on FPS drops")
	grid := flag.Bool("grid", config.Bool("GRID", false), "find links with a spatial grid instead of a pairwise scan")
	flag.Parse()

	if *grid {
		cfg.Background.Links = background.LinkGrid
	}

	g, err := display.NewGame(cfg)
	if err != nil {
		log.Fatalf("Failed to create background: %v", err)
	}

	ebiten.SetWindowSize(cfg.ScreenWidth, cfg.ScreenHeight)
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
