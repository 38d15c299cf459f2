package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"sort"
	"sync"
	"time"

	"predprey/internal/app"
	"predprey/internal/sims/predprey"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

type job struct {
	id   string
	seed int64
}

type runResult struct {
	job
	res predprey.Result
	err error
}

func main() {
	seeds := flag.Int("seeds", 64, "number of seeds to simulate")
	firstSeed := flag.Int64("first-seed", 1, "seed of the first run")
	maxTicks := flag.Int("max-ticks", 200000, "tick cap per run (0 runs until terminal)")
	workers := flag.Int("workers", runtime.NumCPU(), "parallel runs")
	logLevel := flag.String("log-level", "info", "log level (debug, info, warn, error)")
	overrides := app.Overrides{}
	flag.Var(overrides, "set", "parameter override in key=value form (repeatable); seed is replaced per run by -first-seed")
	flag.Parse()

	logger, err := app.NewLogger(os.Stderr, "sweep", *logLevel)
	if err != nil {
		log.Fatal("bad log level", "err", err)
	}

	base := predprey.FromMap(overrides)
	base.MaxTicks = *maxTicks
	if err := base.Validate(); err != nil {
		logger.Fatal("invalid configuration", "err", err)
	}
	if *workers <= 0 {
		*workers = 1
	}

	fmt.Printf("Sweeping %d seeds on a %dx%d grid (%d workers, cap %d ticks)\n",
		*seeds, base.Width, base.Height, *workers, *maxTicks)

	jobs := make(chan job)
	results := make(chan runResult)
	var wg sync.WaitGroup

	for i := 0; i < *workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				results <- runSeed(base, j, logger)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for k := 0; k < *seeds; k++ {
			jobs <- job{id: uuid.NewString(), seed: *firstSeed + int64(k)}
		}
		close(jobs)
	}()

	start := time.Now()
	var all []runResult
	for r := range results {
		if r.err != nil {
			logger.Error("run failed", "run", r.id, "seed", r.seed, "err", r.err)
			continue
		}
		all = append(all, r)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].seed < all[j].seed })
	report(all, time.Since(start))
}

func runSeed(base predprey.Config, j job, logger *log.Logger) runResult {
	cfg := base
	cfg.Seed = j.seed
	world := predprey.NewWithConfig(cfg)
	res, err := world.Run(predprey.RunOptions{})
	if err == nil {
		logger.Debug("run finished", "run", j.id, "seed", j.seed, "outcome", res.Outcome, "ticks", res.Ticks)
	}
	return runResult{job: j, res: res, err: err}
}

func report(all []runResult, elapsed time.Duration) {
	type bucket struct {
		count int
		ticks int
	}
	buckets := map[predprey.Outcome]*bucket{}
	for _, r := range all {
		b, ok := buckets[r.res.Outcome]
		if !ok {
			b = &bucket{}
			buckets[r.res.Outcome] = b
		}
		b.count++
		b.ticks += r.res.Ticks
	}

	fmt.Printf("\nOutcomes over %d runs (elapsed %s):\n", len(all), elapsed.Round(time.Millisecond))
	for _, o := range []predprey.Outcome{predprey.OutcomeExtinction, predprey.OutcomeSaturation, predprey.OutcomeTickLimit} {
		b, ok := buckets[o]
		if !ok {
			continue
		}
		fmt.Printf("  %-11s %4d runs, mean %d ticks\n", o, b.count, b.ticks/b.count)
	}

	fmt.Println("\nPer seed:")
	for _, r := range all {
		c := r.res.Census
		fmt.Printf("  seed %-6d %-11s ticks=%-8d plants=%-4d rabbits=%-4d salmon=%-4d wolves=%-4d\n",
			r.seed, r.res.Outcome, r.res.Ticks,
			c.Population(predprey.SpeciesPlant), c.Population(predprey.SpeciesRabbit),
			c.Population(predprey.SpeciesSalmon), c.Population(predprey.SpeciesWolf))
	}
}
