package predprey

import "fmt"

// Species tags the organism an entity represents.
type Species uint8

const (
	SpeciesNone Species = iota
	SpeciesPlant
	SpeciesRabbit
	SpeciesSalmon
	SpeciesWolf
)

const speciesCount = int(SpeciesWolf) + 1

// AllSpecies lists the living species in initial placement order.
var AllSpecies = []Species{SpeciesSalmon, SpeciesRabbit, SpeciesWolf, SpeciesPlant}

func (s Species) String() string {
	switch s {
	case SpeciesNone:
		return "none"
	case SpeciesPlant:
		return "plant"
	case SpeciesRabbit:
		return "rabbit"
	case SpeciesSalmon:
		return "salmon"
	case SpeciesWolf:
		return "wolf"
	default:
		return fmt.Sprintf("species(%d)", uint8(s))
	}
}

// Valid reports whether s names a living species.
func (s Species) Valid() bool {
	return s >= SpeciesPlant && s <= SpeciesWolf
}

// noInterval disables the minimum breed interval gate.
const noInterval = -1

// Traits holds the fixed behavioral thresholds of a species.
type Traits struct {
	// Starvation is the largest tolerated t-lastEat; exceeding it kills the
	// entity. Zero means the species never eats or starves.
	Starvation int
	// Crowding is the same-species neighbor count at which the entity dies.
	// Zero disables the check.
	Crowding int
	// BreedInterval must be exceeded by t-lastBreed before breeding. A
	// negative value removes the gate.
	BreedInterval int
	// Prey lists edible species in draw order. When several are present in
	// the neighborhood the last one listed wins.
	Prey []Species
}

var speciesTraits = [speciesCount]Traits{
	SpeciesPlant:  {BreedInterval: 5},
	SpeciesRabbit: {Starvation: 16, Crowding: 4, BreedInterval: 8, Prey: []Species{SpeciesPlant}},
	SpeciesSalmon: {Starvation: 5, Crowding: 2, BreedInterval: noInterval, Prey: []Species{SpeciesPlant}},
	SpeciesWolf:   {Starvation: 24, BreedInterval: 8, Prey: []Species{SpeciesRabbit, SpeciesSalmon}},
}

// TraitsOf returns the thresholds for s.
func TraitsOf(s Species) Traits {
	if !s.Valid() {
		return Traits{}
	}
	return speciesTraits[s]
}

// Eats reports whether other is on the menu.
func (t Traits) Eats(other Species) bool {
	for _, p := range t.Prey {
		if p == other {
			return true
		}
	}
	return false
}
