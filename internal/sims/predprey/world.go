package predprey

import (
	"predprey/internal/core"
	pkgcore "predprey/pkg/core"
)

// World adapts a Grid to the core.Sim contract so the registry, renderers and
// CLIs can drive it.
type World struct {
	cfg Config

	grid    *Grid
	display *core.ByteGrid
	extra   Sink
	err     error
}

// New returns a world with the provided dimensions using defaults.
func New(w, h int) *World {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	return NewWithConfig(cfg)
}

// NewWithConfig returns a world configured from the provided options. The
// grid is empty until Reset is called.
func NewWithConfig(cfg Config) *World {
	return &World{
		cfg:     cfg,
		display: core.NewByteGrid(cfg.Width, cfg.Height),
	}
}

// Name returns the simulation identifier.
func (w *World) Name() string { return "predprey" }

// Size reports the grid dimensions.
func (w *World) Size() core.Size { return core.Size{W: w.cfg.Width, H: w.cfg.Height} }

// Cells exposes one species code per cell.
func (w *World) Cells() []uint8 { return w.display.Cells() }

// Config returns the configuration the world was built with.
func (w *World) Config() Config { return w.cfg }

// Grid exposes the live grid, nil before the first Reset.
func (w *World) Grid() *Grid { return w.grid }

// Err reports why the last Reset could not populate the grid.
func (w *World) Err() error { return w.err }

// Attach adds a sink that receives notifications from the next Reset on.
func (w *World) Attach(s Sink) { w.extra = s }

// Reset rebuilds the grid and seeds the initial population. A zero seed
// falls back to the configured one.
func (w *World) Reset(seed int64) {
	effective := seed
	if effective == 0 {
		effective = w.cfg.Seed
	}
	w.display.Clear()
	w.grid = nil
	w.err = w.cfg.Validate()
	if w.err != nil {
		return
	}

	var sink Sink = NewDisplaySink(w.display)
	if w.extra != nil {
		sink = MultiSink{sink, w.extra}
	}
	g, err := NewGrid(w.cfg.Width, w.cfg.Height, pkgcore.NewRNG(effective), sink)
	if err != nil {
		w.err = err
		return
	}
	if err := g.Populate(w.cfg.Population); err != nil {
		w.err = err
		return
	}
	w.grid = g
}

// Step runs one tick unless the world has reached a terminal state.
func (w *World) Step() {
	if w.Done() {
		return
	}
	w.grid.StepOnce()
}

// Done reports extinction, saturation, or a world that failed to reset.
func (w *World) Done() bool {
	return w.grid == nil || w.grid.Done()
}

// Census returns the current counters.
func (w *World) Census() Census {
	if w.grid == nil {
		return Census{}
	}
	return w.grid.Census()
}

// Outcome classifies the current state.
func (w *World) Outcome() Outcome {
	if w.grid == nil {
		return OutcomeRunning
	}
	return OutcomeOf(w.grid)
}

// Run drives the world to a terminal state honoring cfg.MaxTicks.
func (w *World) Run(opts RunOptions) (Result, error) {
	if w.grid == nil {
		if w.err == nil {
			w.Reset(0)
		}
		if w.err != nil {
			return Result{}, w.err
		}
	}
	if opts.MaxTicks == 0 {
		opts.MaxTicks = w.cfg.MaxTicks
	}
	return Run(w.grid, opts), nil
}

func init() {
	core.Register("predprey", func(cfg map[string]string) core.Sim {
		return NewWithConfig(FromMap(cfg))
	})
}
