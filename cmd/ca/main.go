//go:build ebiten

package main

import (
	"errors"
	"flag"
	"os"

	"predprey/internal/app"
	"predprey/internal/core"
	"predprey/internal/sims/predprey"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	logger, err := app.NewLogger(os.Stderr, "ca", cfg.LogLevel)
	if err != nil {
		log.Fatal("bad log level", "err", err)
	}

	factory, ok := core.Sims()[cfg.Sim]
	if !ok {
		logger.Fatal("unknown sim", "sim", cfg.Sim, "available", core.SimNames())
	}

	sim := factory(cfg.SimConfig())
	if world, ok := sim.(*predprey.World); ok {
		if err := world.Config().Validate(); err != nil {
			logger.Fatal("invalid configuration", "err", err)
		}
		world.Attach(predprey.NewLogSink(logger))
	}
	sim.Reset(cfg.Seed)

	game := app.New(sim, cfg, logger)
	size := sim.Size()

	ebiten.SetWindowTitle("predprey — " + sim.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(size.W*cfg.Scale+cfg.HUDWidth, size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Fatal("game loop failed", "err", err)
	}
}
