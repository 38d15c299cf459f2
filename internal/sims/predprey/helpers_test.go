package predprey

import (
	"fmt"
	"testing"

	"predprey/pkg/core"
)

// scripted replays fixed draws and records every bound it was asked for.
type scripted struct {
	draws []int
	asked []int
}

func (s *scripted) IntN(n int) int {
	s.asked = append(s.asked, n)
	if len(s.draws) == 0 {
		panic(fmt.Sprintf("scripted chooser exhausted (IntN(%d))", n))
	}
	v := s.draws[0]
	s.draws = s.draws[1:]
	if v < 0 || v >= n {
		panic(fmt.Sprintf("scripted draw %d out of range for IntN(%d)", v, n))
	}
	return v
}

// constant always returns the same value clamped into range.
type constant int

func (c constant) IntN(n int) int {
	if int(c) >= n {
		return n - 1
	}
	return int(c)
}

func newTestGrid(t *testing.T, nx, ny int, rng core.Chooser) *Grid {
	t.Helper()
	g, err := NewGrid(nx, ny, rng, nil)
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}
	return g
}

func mustPlace(t *testing.T, g *Grid, i, j int, s Species) EntityID {
	t.Helper()
	id, err := g.Place(i, j, s)
	if err != nil {
		t.Fatalf("Place(%d,%d,%v): %v", i, j, s, err)
	}
	return id
}

func checkInvariants(t *testing.T, g *Grid) {
	t.Helper()
	occupied := 0
	for j := 0; j < g.NY(); j++ {
		for i := 0; i < g.NX(); i++ {
			e, ok := g.At(i, j)
			if !ok {
				continue
			}
			occupied++
			if e.I != i || e.J != j {
				t.Fatalf("entity %d recorded at (%d,%d) but stored at (%d,%d)", e.ID, e.I, e.J, i, j)
			}
		}
	}
	if occupied != g.Count() {
		t.Fatalf("occupied cells %d != live count %d", occupied, g.Count())
	}
	for _, id := range g.Live() {
		e, ok := g.Entity(id)
		if !ok {
			t.Fatalf("registry holds dead id %d", id)
		}
		at, ok := g.At(e.I, e.J)
		if !ok || at.ID != id {
			t.Fatalf("entity %d not found at its recorded cell (%d,%d)", id, e.I, e.J)
		}
	}
	if total := g.Census().Total(); total != g.Count() {
		t.Fatalf("census total %d != live count %d", total, g.Count())
	}
}
