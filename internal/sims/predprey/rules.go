package predprey

import (
	"fmt"

	"predprey/pkg/core"
)

// ActionKind enumerates the outcomes of one activation.
type ActionKind uint8

const (
	ActIdle ActionKind = iota
	ActDie
	ActMove
	ActBreed
	ActEatThenMove
)

func (k ActionKind) String() string {
	switch k {
	case ActIdle:
		return "idle"
	case ActDie:
		return "die"
	case ActMove:
		return "move"
	case ActBreed:
		return "breed"
	case ActEatThenMove:
		return "eat"
	default:
		return fmt.Sprintf("action(%d)", uint8(k))
	}
}

// DeathCause records why an entity left the grid.
type DeathCause uint8

const (
	CauseNone DeathCause = iota
	CauseStarved
	CauseCrowded
	CauseEaten
)

func (c DeathCause) String() string {
	switch c {
	case CauseStarved:
		return "starved"
	case CauseCrowded:
		return "crowded"
	case CauseEaten:
		return "eaten"
	default:
		return "none"
	}
}

// Action is what an activation decided. Slot indexes the neighborhood the
// decision was made against and is meaningful for move, breed and eat.
type Action struct {
	Kind  ActionKind
	Slot  int
	Cause DeathCause
}

var idle = Action{Kind: ActIdle}

// decide computes the action for e given its neighborhood snapshot. It reads
// nothing else from the grid; every random draw goes through rng.
func decide(e Entity, n Neighborhood, rng core.Chooser) Action {
	switch e.Species {
	case SpeciesPlant:
		return decidePlant(e, n, rng)
	case SpeciesRabbit, SpeciesSalmon, SpeciesWolf:
		return decideAnimal(e, n, rng)
	default:
		panic(fmt.Sprintf("predprey: no rule for %v", e.Species))
	}
}

func decidePlant(e Entity, n Neighborhood, rng core.Chooser) Action {
	tr := TraitsOf(SpeciesPlant)
	if e.T-e.LastBreed <= tr.BreedInterval || len(n) == 0 {
		return idle
	}
	return breedInto(n, rng.IntN(len(n)))
}

func decideAnimal(e Entity, n Neighborhood, rng core.Chooser) Action {
	tr := TraitsOf(e.Species)
	if e.starving(tr) {
		return Action{Kind: ActDie, Cause: CauseStarved}
	}

	if e.Species == SpeciesRabbit && n.Count(SpeciesWolf) > 0 {
		// Rabbits pick an escape slot next to a wolf, but forage below makes
		// its own choice. The draw still happens.
		rng.IntN(len(n))
	}

	if tr.Crowding > 0 && n.Count(e.Species) >= tr.Crowding {
		return Action{Kind: ActDie, Cause: CauseCrowded}
	}

	if e.canBreed(tr) && n.Empties() > 0 {
		return breedInto(n, rng.IntN(len(n)))
	}

	if len(n) == 0 {
		return idle
	}
	slot := forageSlot(tr, n, rng)
	target := n[slot]
	switch {
	case target.Empty():
		return Action{Kind: ActMove, Slot: slot}
	case tr.Eats(target.Species):
		return Action{Kind: ActEatThenMove, Slot: slot}
	default:
		return idle
	}
}

// breedInto succeeds only if the drawn slot is empty; an occupied draw is
// wasted.
func breedInto(n Neighborhood, slot int) Action {
	if !n[slot].Empty() {
		return idle
	}
	return Action{Kind: ActBreed, Slot: slot}
}

// forageSlot picks a random prey slot per prey species in order, letting the
// later species overwrite the earlier pick. A wolf next to rabbits but no
// salmon keeps its rabbit pick rather than redrawing over every slot. With no
// prey around it draws over every slot, occupied or not.
func forageSlot(tr Traits, n Neighborhood, rng core.Chooser) int {
	slot := -1
	for _, prey := range tr.Prey {
		slots := n.Slots(prey)
		if len(slots) == 0 {
			continue
		}
		slot = slots[rng.IntN(len(slots))]
	}
	if slot < 0 {
		slot = rng.IntN(len(n))
	}
	return slot
}
