package main

import (
	"flag"
	"fmt"
	"os"

	"predprey/internal/app"
	"predprey/internal/core"
	"predprey/internal/sims/predprey"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

func main() {
	seed := flag.Int64("seed", 1337, "seed for the random source (takes precedence over -set seed)")
	tps := flag.Int("tps", 0, "ticks per second (0 runs unthrottled)")
	maxTicks := flag.Int("max-ticks", 0, "stop after this many ticks (0 runs to extinction or saturation)")
	reportEvery := flag.Int("report-every", 0, "log a census line every N ticks (0 disables)")
	logLevel := flag.String("log-level", "info", "log level (debug, info, warn, error)")
	overrides := app.Overrides{}
	flag.Var(overrides, "set", "parameter override in key=value form (repeatable): w, h, seed, wolves, rabbits, plants, salmon, max_ticks")
	flag.Parse()

	logger, err := app.NewLogger(os.Stderr, "predprey", *logLevel)
	if err != nil {
		log.Fatal("bad log level", "err", err)
	}

	cfg := predprey.FromMap(overrides)
	if app.IsSet(flag.CommandLine, "seed") {
		cfg.Seed = *seed
	}
	if *maxTicks > 0 {
		cfg.MaxTicks = *maxTicks
	}
	if err := cfg.Validate(); err != nil {
		logger.Fatal("invalid configuration", "err", err)
	}

	runLog := logger.With("run", uuid.NewString())
	world := predprey.NewWithConfig(cfg)
	world.Attach(predprey.NewLogSink(runLog))
	world.Reset(cfg.Seed)
	if err := world.Err(); err != nil {
		runLog.Fatal("reset failed", "err", err)
	}
	runLog.Info("starting",
		"w", cfg.Width, "h", cfg.Height, "seed", cfg.Seed,
		"salmon", cfg.Population.Salmon, "rabbits", cfg.Population.Rabbits,
		"wolves", cfg.Population.Wolves, "plants", cfg.Population.Plants)

	var pacer *core.FixedStep
	if *tps > 0 {
		pacer = core.NewFixedStep(*tps)
	}
	res, err := world.Run(predprey.RunOptions{
		Logger: runLog,
		Observe: func(tick int, died predprey.Entity, ok bool) {
			if ok {
				runLog.Debug("died", "tick", tick, "species", died.Species, "age", died.T)
			}
			if *reportEvery > 0 && tick%*reportEvery == 0 {
				c := world.Census()
				runLog.Info("census", "tick", tick,
					"plants", c.Population(predprey.SpeciesPlant),
					"rabbits", c.Population(predprey.SpeciesRabbit),
					"salmon", c.Population(predprey.SpeciesSalmon),
					"wolves", c.Population(predprey.SpeciesWolf))
			}
			if pacer != nil {
				pacer.Wait()
			}
		},
	})
	if err != nil {
		runLog.Fatal("run failed", "err", err)
	}
	printReport(res)
}

func printReport(res predprey.Result) {
	fmt.Printf("Outcome: %s after %d ticks\n\n", res.Outcome, res.Ticks)
	fmt.Printf("%-8s %6s %7s %8s %8s %6s\n", "species", "live", "births", "starved", "crowded", "eaten")
	for _, s := range predprey.AllSpecies {
		c := res.Census
		fmt.Printf("%-8s %6d %7d %8d %8d %6d\n", s, c.Live[s], c.Births[s], c.Starved[s], c.Crowded[s], c.Eaten[s])
	}
}
