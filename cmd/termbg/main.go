package main

import (
	"context"
	"flag"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"syscall"

	"moleculebg/background"
	"moleculebg/config"
	"moleculebg/terminal"
)

func main() {
	if err := config.Load(); err != nil {
		log.Printf("%v", err)
	}

	seed := flag.Int64("seed", config.Int64("SEED", 0), "particle seed (0 seeds from the clock)")
	grid := flag.Bool("grid", config.Bool("GRID", false), "find links with a spatial grid instead of a pairwise scan")
	flag.Parse()

	cfg := background.DefaultConfig()
	if *grid {
		cfg.Links = background.LinkGrid
	}

	var rng *rand.Rand
	if *seed != 0 {
		rng = rand.New(rand.NewSource(*seed))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := terminal.Run(ctx, cfg, rng); err != nil {
		log.Fatal(err)
	}
}
