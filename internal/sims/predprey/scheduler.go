package predprey

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
)

// ErrOverpopulated reports initial counts that cannot fit on the grid.
var ErrOverpopulated = errors.New("predprey: initial population exceeds grid capacity")

// Population holds initial per-species counts.
type Population struct {
	Wolves  int
	Rabbits int
	Plants  int
	Salmon  int
}

// Of returns the requested count for s.
func (p Population) Of(s Species) int {
	switch s {
	case SpeciesWolf:
		return p.Wolves
	case SpeciesRabbit:
		return p.Rabbits
	case SpeciesPlant:
		return p.Plants
	case SpeciesSalmon:
		return p.Salmon
	default:
		return 0
	}
}

// Total returns the number of entities requested.
func (p Population) Total() int {
	return p.Wolves + p.Rabbits + p.Plants + p.Salmon
}

// Validate checks the counts against a grid of the given capacity.
func (p Population) Validate(capacity int) error {
	for _, s := range AllSpecies {
		if p.Of(s) < 0 {
			return fmt.Errorf("predprey: negative %v count %d", s, p.Of(s))
		}
	}
	if p.Total() > capacity {
		return fmt.Errorf("%w: %d entities for %d cells", ErrOverpopulated, p.Total(), capacity)
	}
	return nil
}

// Populate places the requested counts species by species (salmon, rabbit,
// wolf, plant), each on a uniformly drawn empty cell.
func (g *Grid) Populate(p Population) error {
	if err := p.Validate(g.Capacity() - g.Count()); err != nil {
		return err
	}
	for _, s := range AllSpecies {
		for k := 0; k < p.Of(s); {
			i := g.rng.IntN(g.nx)
			j := g.rng.IntN(g.ny)
			if g.cells[g.index(i, j)] != NoEntity {
				continue
			}
			g.spawn(i, j, s)
			k++
		}
	}
	return nil
}

// Outcome classifies how a run ended.
type Outcome uint8

const (
	OutcomeRunning Outcome = iota
	OutcomeExtinction
	OutcomeSaturation
	OutcomeTickLimit
)

func (o Outcome) String() string {
	switch o {
	case OutcomeExtinction:
		return "extinction"
	case OutcomeSaturation:
		return "saturation"
	case OutcomeTickLimit:
		return "tick-limit"
	default:
		return "running"
	}
}

// OutcomeOf classifies the current grid state.
func OutcomeOf(g *Grid) Outcome {
	switch {
	case g.Extinct():
		return OutcomeExtinction
	case g.Saturated():
		return OutcomeSaturation
	default:
		return OutcomeRunning
	}
}

// RunOptions tunes Run. The zero value runs until extinction or saturation.
type RunOptions struct {
	// MaxTicks stops the run after this many ticks. Zero means no limit.
	MaxTicks int
	// Observe is called after every tick with the entity that died, if any.
	Observe func(tick int, died Entity, ok bool)
	// Logger receives the outcome line. Nil disables logging.
	Logger *log.Logger
}

// Result summarizes a finished run.
type Result struct {
	Ticks   int
	Outcome Outcome
	Census  Census
}

// Run steps g while 1 <= Count() < NX*NY.
func Run(g *Grid, opts RunOptions) Result {
	ticks := 0
	for !g.Done() {
		if opts.MaxTicks > 0 && ticks >= opts.MaxTicks {
			break
		}
		died, ok := g.StepOnce()
		ticks++
		if opts.Observe != nil {
			opts.Observe(ticks, died, ok)
		}
	}

	res := Result{Ticks: ticks, Outcome: OutcomeOf(g), Census: g.Census()}
	if res.Outcome == OutcomeRunning {
		res.Outcome = OutcomeTickLimit
	}
	if opts.Logger != nil {
		opts.Logger.Info("run finished",
			"outcome", res.Outcome,
			"ticks", res.Ticks,
			"plants", res.Census.Population(SpeciesPlant),
			"rabbits", res.Census.Population(SpeciesRabbit),
			"salmon", res.Census.Population(SpeciesSalmon),
			"wolves", res.Census.Population(SpeciesWolf),
		)
	}
	return res
}
