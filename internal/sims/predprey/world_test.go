package predprey

import (
	"bytes"
	"errors"
	"slices"
	"strings"
	"testing"

	"predprey/internal/core"

	"github.com/charmbracelet/log"
)

func TestResetDeterministic(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 16
	cfg.Height = 12
	cfg.Seed = 99

	world := NewWithConfig(cfg)
	world.Reset(0)
	if err := world.Err(); err != nil {
		t.Fatalf("Reset: %v", err)
	}
	for i := 0; i < 200; i++ {
		world.Step()
	}
	first := append([]uint8(nil), world.Cells()...)
	firstCensus := world.Census()

	world.Reset(0)
	for i := 0; i < 200; i++ {
		world.Step()
	}
	if !slices.Equal(first, world.Cells()) {
		t.Fatal("Reset with config seed not deterministic for display buffer")
	}
	if firstCensus != world.Census() {
		t.Fatal("Reset with config seed not deterministic for census")
	}

	world.Reset(777)
	if slices.Equal(first, world.Cells()) {
		t.Fatal("different seeds should produce different states")
	}
}

func TestResetSurfacesOverpopulation(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 3
	cfg.Height = 3
	world := NewWithConfig(cfg)
	world.Reset(0)

	if !errors.Is(world.Err(), ErrOverpopulated) {
		t.Fatalf("expected ErrOverpopulated, got %v", world.Err())
	}
	if !world.Done() {
		t.Fatal("a world that failed to reset should report done")
	}
	world.Step()
	if _, err := world.Run(RunOptions{}); !errors.Is(err, ErrOverpopulated) {
		t.Fatalf("Run should surface the reset error, got %v", err)
	}
}

func TestWorldRunHonorsConfiguredLimit(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 30
	cfg.Height = 30
	cfg.Population = Population{Plants: 5}
	cfg.MaxTicks = 25

	world := NewWithConfig(cfg)
	res, err := world.Run(RunOptions{})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res.Ticks != 25 || res.Outcome != OutcomeTickLimit {
		t.Fatalf("expected the configured limit to stop the run, got %+v", res)
	}
}

func TestStepIsNoopOnceSaturated(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 2
	cfg.Height = 2
	cfg.Population = Population{Plants: 4}

	world := NewWithConfig(cfg)
	world.Reset(0)
	if world.Outcome() != OutcomeSaturation {
		t.Fatalf("expected saturation, got %v", world.Outcome())
	}
	world.Step()
	if got := world.Census().Ticks; got != 0 {
		t.Fatalf("saturated world should not tick, ran %d", got)
	}
}

func TestRegisteredFactory(t *testing.T) {
	factory, ok := core.Sims()["predprey"]
	if !ok {
		t.Fatal("predprey should register itself")
	}
	sim := factory(map[string]string{"w": "8", "h": "6", "wolves": "1", "rabbits": "2", "plants": "3", "salmon": "0"})
	if got := sim.Size(); got != (core.Size{W: 8, H: 6}) {
		t.Fatalf("unexpected size %+v", got)
	}
	sim.Reset(1)
	occupied := 0
	for _, c := range sim.Cells() {
		if c != 0 {
			occupied++
		}
	}
	if occupied != 6 {
		t.Fatalf("expected 6 occupied cells, got %d", occupied)
	}
}

func TestFromMap(t *testing.T) {
	cfg := FromMap(map[string]string{
		"w":         "40",
		"h":         "bogus",
		"seed":      "-5",
		"wolves":    "2",
		"rabbits":   "-1",
		"max_ticks": "1000",
	})
	def := DefaultConfig()
	if cfg.Width != 40 || cfg.Height != def.Height {
		t.Fatalf("unexpected dimensions %dx%d", cfg.Width, cfg.Height)
	}
	if cfg.Seed != -5 || cfg.MaxTicks != 1000 {
		t.Fatalf("unexpected seed/max_ticks %d/%d", cfg.Seed, cfg.MaxTicks)
	}
	if cfg.Population.Wolves != 2 || cfg.Population.Rabbits != def.Population.Rabbits {
		t.Fatalf("unexpected population %+v", cfg.Population)
	}
	if FromMap(nil) != def {
		t.Fatal("nil map should yield defaults")
	}
}

func TestParametersSnapshot(t *testing.T) {
	world := New(10, 10)
	world.Reset(0)
	snap := world.Parameters()

	var names []string
	values := map[string]string{}
	for _, g := range snap.Groups {
		names = append(names, g.Name)
		for _, p := range g.Params {
			values[p.Key] = p.Value
		}
	}
	for _, want := range []string{"World", "Initial Population", "Census", "salmon", "rabbit", "wolf", "plant"} {
		if !slices.Contains(names, want) {
			t.Fatalf("missing group %q in %v", want, names)
		}
	}
	if values["wolf_prey"] != "rabbit,salmon" {
		t.Fatalf("wolf prey = %q", values["wolf_prey"])
	}
	if values["rabbit_starvation"] != "16" || values["salmon_crowding"] != "2" {
		t.Fatalf("unexpected traits %v", values)
	}
}

func TestLogSinkWritesDebugRecords(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})

	g, err := NewGrid(3, 3, &scripted{draws: []int{0}}, NewLogSink(logger))
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}
	id := mustPlace(t, g, 1, 1, SpeciesSalmon)
	g.Activate(id)
	if err := g.Remove(id); err != nil {
		t.Fatalf("Remove: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"place", "move", "remove", "salmon"} {
		if !strings.Contains(out, want) {
			t.Fatalf("log output missing %q:\n%s", want, out)
		}
	}
}
