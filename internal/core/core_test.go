package core

import (
	"testing"
	"time"
)

func TestByteGridSetAt(t *testing.T) {
	g := NewByteGrid(4, 3)
	g.Set(3, 2, 7)
	if got := g.At(3, 2); got != 7 {
		t.Fatalf("At(3,2) = %d, want 7", got)
	}
	if got := g.Cells()[g.Index(3, 2)]; got != 7 {
		t.Fatalf("backing slice not updated, got %d", got)
	}
	g.Clear()
	if got := g.At(3, 2); got != 0 {
		t.Fatalf("Clear left %d behind", got)
	}
}

func TestNewByteGridClampsDimensions(t *testing.T) {
	g := NewByteGrid(0, -3)
	if g.W != 1 || g.H != 1 || len(g.Cells()) != 1 {
		t.Fatalf("expected 1x1 grid, got %dx%d (%d cells)", g.W, g.H, len(g.Cells()))
	}
}

func TestFixedStepAccumulates(t *testing.T) {
	fs := NewFixedStep(10)
	start := time.Unix(100, 0)
	if !fs.advance(start) {
		t.Fatal("first tick should be due immediately")
	}
	if fs.advance(start.Add(50 * time.Millisecond)) {
		t.Fatal("tick fired before the interval elapsed")
	}
	if !fs.advance(start.Add(100 * time.Millisecond)) {
		t.Fatal("tick should fire once the interval elapsed")
	}
}

func TestRegisterIgnoresInvalid(t *testing.T) {
	before := len(Sims())
	Register("", func(map[string]string) Sim { return nil })
	Register("nil-factory", nil)
	if len(Sims()) != before {
		t.Fatal("invalid registrations should be ignored")
	}
}
