package predprey

import (
	"errors"
	"fmt"

	"predprey/pkg/core"
)

var (
	// ErrBadSize reports non-positive grid dimensions.
	ErrBadSize = errors.New("predprey: grid dimensions must be positive")
	// ErrOutOfBounds reports a coordinate outside the grid.
	ErrOutOfBounds = errors.New("predprey: coordinate out of bounds")
	// ErrOccupied reports a placement into a non-empty cell.
	ErrOccupied = errors.New("predprey: cell occupied")
	// ErrNotLive reports an operation on an entity that is not on the grid.
	ErrNotLive = errors.New("predprey: entity not live")
	// ErrSpecies reports an unknown species tag.
	ErrSpecies = errors.New("predprey: invalid species")
)

// Grid is the world: NX×NY cells of optional entity ids, an arena of entity
// records and an unordered registry of the live ones.
type Grid struct {
	nx, ny int

	cells    []EntityID
	entities []Entity
	live     []bool
	free     []EntityID
	registry []EntityID
	slots    []int

	rng    core.Chooser
	sink   Sink
	census Census
}

// NewGrid allocates an empty grid. A nil sink discards notifications.
func NewGrid(nx, ny int, rng core.Chooser, sink Sink) (*Grid, error) {
	if nx <= 0 || ny <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrBadSize, nx, ny)
	}
	if rng == nil {
		return nil, errors.New("predprey: nil random source")
	}
	if sink == nil {
		sink = NopSink{}
	}
	g := &Grid{
		nx:    nx,
		ny:    ny,
		cells: make([]EntityID, nx*ny),
		rng:   rng,
		sink:  sink,
	}
	for i := range g.cells {
		g.cells[i] = NoEntity
	}
	return g, nil
}

// NX returns the number of columns.
func (g *Grid) NX() int { return g.nx }

// NY returns the number of rows.
func (g *Grid) NY() int { return g.ny }

// Capacity returns NX*NY.
func (g *Grid) Capacity() int { return g.nx * g.ny }

// Count returns the number of live entities.
func (g *Grid) Count() int { return len(g.registry) }

// Extinct reports an empty grid.
func (g *Grid) Extinct() bool { return g.Count() == 0 }

// Saturated reports a grid with no empty cell left.
func (g *Grid) Saturated() bool { return g.Count() == g.Capacity() }

// Done reports whether the scheduler should stop.
func (g *Grid) Done() bool { return g.Extinct() || g.Saturated() }

// Census returns a copy of the population counters.
func (g *Grid) Census() Census { return g.census }

func (g *Grid) index(i, j int) int { return j*g.nx + i }

// InBounds reports whether (i, j) lies on the grid.
func (g *Grid) InBounds(i, j int) bool {
	return i >= 0 && i < g.nx && j >= 0 && j < g.ny
}

// At returns the occupant of (i, j). It panics when (i, j) is off the grid.
func (g *Grid) At(i, j int) (Entity, bool) {
	if !g.InBounds(i, j) {
		panic(fmt.Sprintf("%v: (%d,%d) on %dx%d", ErrOutOfBounds, i, j, g.nx, g.ny))
	}
	id := g.cells[g.index(i, j)]
	if id == NoEntity {
		return Entity{}, false
	}
	return g.entities[id], true
}

// Entity returns the record for a live id.
func (g *Grid) Entity(id EntityID) (Entity, bool) {
	if !g.isLive(id) {
		return Entity{}, false
	}
	return g.entities[id], true
}

// Live returns the ids of all live entities in registry order.
func (g *Grid) Live() []EntityID {
	return append([]EntityID(nil), g.registry...)
}

// Place creates a fresh entity of species s at (i, j).
func (g *Grid) Place(i, j int, s Species) (EntityID, error) {
	if !s.Valid() {
		return NoEntity, fmt.Errorf("%w: %v", ErrSpecies, s)
	}
	if !g.InBounds(i, j) {
		return NoEntity, fmt.Errorf("%w: (%d,%d)", ErrOutOfBounds, i, j)
	}
	if g.cells[g.index(i, j)] != NoEntity {
		return NoEntity, fmt.Errorf("%w: (%d,%d)", ErrOccupied, i, j)
	}
	return g.spawn(i, j, s), nil
}

// Remove takes a live entity off the grid.
func (g *Grid) Remove(id EntityID) error {
	if !g.isLive(id) {
		return fmt.Errorf("%w: %d", ErrNotLive, id)
	}
	g.remove(id)
	return nil
}

// StepOnce activates one live entity chosen uniformly at random and returns
// the entity that died during the tick, if any. It panics on an empty grid.
func (g *Grid) StepOnce() (Entity, bool) {
	if len(g.registry) == 0 {
		panic("predprey: StepOnce on an empty grid")
	}
	id := g.registry[g.rng.IntN(len(g.registry))]
	g.census.Ticks++
	return g.Activate(id)
}

// Activate runs one tick of behavior for the live entity id.
func (g *Grid) Activate(id EntityID) (Entity, bool) {
	e := g.mustLive(id)
	e.T++
	g.entities[id].T = e.T
	n := g.neighborsAt(e.I, e.J)
	return g.apply(e, n, decide(e, n, g.rng))
}

func (g *Grid) apply(e Entity, n Neighborhood, act Action) (Entity, bool) {
	switch act.Kind {
	case ActIdle:
		return Entity{}, false
	case ActDie:
		return g.kill(e.ID, act.Cause), true
	}

	target := n[act.Slot]
	i, j := e.I+target.DI, e.J+target.DJ
	switch act.Kind {
	case ActMove:
		g.relocate(e.ID, i, j)
		return Entity{}, false
	case ActBreed:
		g.spawn(i, j, e.Species)
		g.entities[e.ID].LastBreed = e.T
		g.census.Births[e.Species]++
		return Entity{}, false
	case ActEatThenMove:
		g.entities[e.ID].LastEat = e.T
		prey := g.kill(target.ID, CauseEaten)
		g.relocate(e.ID, i, j)
		return prey, true
	default:
		panic(fmt.Sprintf("predprey: unknown action %v", act.Kind))
	}
}

func (g *Grid) isLive(id EntityID) bool {
	return id >= 0 && int(id) < len(g.live) && g.live[id]
}

func (g *Grid) mustLive(id EntityID) Entity {
	if !g.isLive(id) {
		panic(fmt.Sprintf("%v: %d", ErrNotLive, id))
	}
	return g.entities[id]
}

func (g *Grid) spawn(i, j int, s Species) EntityID {
	idx := g.index(i, j)
	if g.cells[idx] != NoEntity {
		panic(fmt.Sprintf("%v: (%d,%d)", ErrOccupied, i, j))
	}
	var id EntityID
	if n := len(g.free); n > 0 {
		id = g.free[n-1]
		g.free = g.free[:n-1]
	} else {
		id = EntityID(len(g.entities))
		g.entities = append(g.entities, Entity{})
		g.live = append(g.live, false)
		g.slots = append(g.slots, -1)
	}
	e := Entity{ID: id, Species: s, I: i, J: j}
	g.entities[id] = e
	g.live[id] = true
	g.cells[idx] = id
	g.slots[id] = len(g.registry)
	g.registry = append(g.registry, id)
	g.census.Live[s]++
	g.sink.OnPlace(e, i, j)
	return id
}

func (g *Grid) remove(id EntityID) Entity {
	e := g.entities[id]
	g.cells[g.index(e.I, e.J)] = NoEntity

	slot := g.slots[id]
	last := len(g.registry) - 1
	moved := g.registry[last]
	g.registry[slot] = moved
	g.slots[moved] = slot
	g.registry = g.registry[:last]

	g.slots[id] = -1
	g.live[id] = false
	g.free = append(g.free, id)
	g.census.Live[e.Species]--
	g.sink.OnRemove(e)
	return e
}

func (g *Grid) kill(id EntityID, cause DeathCause) Entity {
	e := g.remove(id)
	g.census.record(e.Species, cause)
	return e
}

func (g *Grid) relocate(id EntityID, i, j int) {
	old := g.entities[id]
	dst := g.index(i, j)
	if g.cells[dst] != NoEntity {
		panic(fmt.Sprintf("%v: move to (%d,%d)", ErrOccupied, i, j))
	}
	g.cells[g.index(old.I, old.J)] = NoEntity
	g.cells[dst] = id
	g.entities[id].I = i
	g.entities[id].J = j
	g.sink.OnMove(old, i, j)
}
