package predprey

// Census tracks population counters. Arrays are indexed by Species.
type Census struct {
	Ticks int

	Live    [speciesCount]int
	Births  [speciesCount]int
	Starved [speciesCount]int
	Crowded [speciesCount]int
	Eaten   [speciesCount]int
}

// Population returns the live count for s.
func (c Census) Population(s Species) int {
	if !s.Valid() {
		return 0
	}
	return c.Live[s]
}

// Total returns the live count across species.
func (c Census) Total() int {
	total := 0
	for _, n := range c.Live {
		total += n
	}
	return total
}

// Deaths returns every recorded death of s regardless of cause.
func (c Census) Deaths(s Species) int {
	if !s.Valid() {
		return 0
	}
	return c.Starved[s] + c.Crowded[s] + c.Eaten[s]
}

func (c *Census) record(s Species, cause DeathCause) {
	switch cause {
	case CauseStarved:
		c.Starved[s]++
	case CauseCrowded:
		c.Crowded[s]++
	case CauseEaten:
		c.Eaten[s]++
	}
}
