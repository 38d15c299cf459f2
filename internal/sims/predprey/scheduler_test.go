package predprey

import (
	"errors"
	"testing"

	"predprey/pkg/core"
)

func TestRunDoesNotStepSaturatedGrid(t *testing.T) {
	rng := &scripted{}
	g := newTestGrid(t, 2, 2, rng)
	for _, c := range [][2]int{{0, 0}, {0, 1}, {1, 0}, {1, 1}} {
		mustPlace(t, g, c[0], c[1], SpeciesPlant)
	}

	res := Run(g, RunOptions{})
	if res.Ticks != 0 || res.Outcome != OutcomeSaturation {
		t.Fatalf("saturated grid should not run, got %+v", res)
	}
	if len(rng.asked) != 0 {
		t.Fatalf("no draws expected, asked %v", rng.asked)
	}
}

func TestRunEmptyGridIsExtinct(t *testing.T) {
	g := newTestGrid(t, 3, 3, &scripted{})
	res := Run(g, RunOptions{})
	if res.Ticks != 0 || res.Outcome != OutcomeExtinction {
		t.Fatalf("empty grid should report extinction at tick 0, got %+v", res)
	}
}

func TestRunLoneRabbitStarves(t *testing.T) {
	g := newTestGrid(t, 6, 6, core.NewRNG(3))
	mustPlace(t, g, 3, 3, SpeciesRabbit)

	res := Run(g, RunOptions{})
	if res.Outcome != OutcomeExtinction {
		t.Fatalf("expected extinction, got %v", res.Outcome)
	}
	if res.Ticks != 17 {
		t.Fatalf("lone rabbit should starve on tick 17, ran %d", res.Ticks)
	}
	if res.Census.Starved[SpeciesRabbit] != 1 || res.Census.Ticks != 17 {
		t.Fatalf("unexpected census %+v", res.Census)
	}
}

func TestRunStopsAtTickLimit(t *testing.T) {
	g := newTestGrid(t, 20, 20, core.NewRNG(9))
	if err := g.Populate(Population{Plants: 10}); err != nil {
		t.Fatalf("Populate: %v", err)
	}
	observed := 0
	res := Run(g, RunOptions{
		MaxTicks: 10,
		Observe:  func(int, Entity, bool) { observed++ },
	})
	if res.Outcome != OutcomeTickLimit || res.Ticks != 10 || observed != 10 {
		t.Fatalf("expected 10 observed ticks ending at the limit, got %+v observed=%d", res, observed)
	}
}

func TestRunDeterministicForSeed(t *testing.T) {
	run := func() Result {
		g := newTestGrid(t, 16, 16, core.NewRNG(2024))
		if err := g.Populate(DefaultConfig().Population); err != nil {
			t.Fatalf("Populate: %v", err)
		}
		return Run(g, RunOptions{MaxTicks: 5000})
	}
	a, b := run(), run()
	if a != b {
		t.Fatalf("equal seeds diverged:\n%+v\n%+v", a, b)
	}
}

func TestPopulateRejectsOverpopulation(t *testing.T) {
	g := newTestGrid(t, 2, 2, core.NewRNG(1))
	err := g.Populate(Population{Plants: 3, Wolves: 2})
	if !errors.Is(err, ErrOverpopulated) {
		t.Fatalf("expected ErrOverpopulated, got %v", err)
	}
	if g.Count() != 0 {
		t.Fatalf("nothing should be placed on failure, count=%d", g.Count())
	}
}

func TestPopulatePlacesSpeciesInOrder(t *testing.T) {
	rng := &scripted{draws: []int{
		0, 0, // salmon
		0, 0, // rabbit collides, redraw
		1, 0, // rabbit
		2, 0, // wolf
	}}
	g := newTestGrid(t, 3, 1, rng)
	if err := g.Populate(Population{Salmon: 1, Rabbits: 1, Wolves: 1}); err != nil {
		t.Fatalf("Populate: %v", err)
	}
	want := []Species{SpeciesSalmon, SpeciesRabbit, SpeciesWolf}
	for i, s := range want {
		e, ok := g.At(i, 0)
		if !ok || e.Species != s {
			t.Fatalf("cell (%d,0) = %+v, want %v", i, e, s)
		}
	}
	if c := g.Census(); c.Births != [speciesCount]int{} {
		t.Fatalf("initial placement should not count as births: %+v", c.Births)
	}
}

func TestPopulateCounts(t *testing.T) {
	g := newTestGrid(t, 8, 8, core.NewRNG(77))
	p := Population{Wolves: 3, Rabbits: 5, Plants: 7, Salmon: 2}
	if err := g.Populate(p); err != nil {
		t.Fatalf("Populate: %v", err)
	}
	c := g.Census()
	for _, s := range AllSpecies {
		if c.Population(s) != p.Of(s) {
			t.Fatalf("%v: placed %d, want %d", s, c.Population(s), p.Of(s))
		}
	}
	checkInvariants(t, g)
}
