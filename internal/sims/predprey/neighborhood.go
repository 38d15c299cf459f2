package predprey

// Neighbor is one in-bounds Moore neighborhood slot.
type Neighbor struct {
	ID      EntityID
	Species Species
	DI, DJ  int
}

// Empty reports whether the slot holds no entity.
func (n Neighbor) Empty() bool { return n.ID == NoEntity }

// Neighborhood lists neighbor slots ordered by DI then DJ, both ascending.
type Neighborhood []Neighbor

// Empties counts empty slots.
func (n Neighborhood) Empties() int {
	count := 0
	for _, nb := range n {
		if nb.Empty() {
			count++
		}
	}
	return count
}

// Count returns how many slots hold species s.
func (n Neighborhood) Count(s Species) int {
	count := 0
	for _, nb := range n {
		if !nb.Empty() && nb.Species == s {
			count++
		}
	}
	return count
}

// Slots returns the indices of slots holding species s.
func (n Neighborhood) Slots(s Species) []int {
	var out []int
	for idx, nb := range n {
		if !nb.Empty() && nb.Species == s {
			out = append(out, idx)
		}
	}
	return out
}

// Neighbors returns the neighborhood of the live entity id.
func (g *Grid) Neighbors(id EntityID) Neighborhood {
	e := g.mustLive(id)
	return g.neighborsAt(e.I, e.J)
}

func (g *Grid) neighborsAt(i, j int) Neighborhood {
	out := make(Neighborhood, 0, 8)
	for di := -1; di <= 1; di++ {
		ni := i + di
		if ni < 0 || ni >= g.nx {
			continue
		}
		for dj := -1; dj <= 1; dj++ {
			nj := j + dj
			if nj < 0 || nj >= g.ny {
				continue
			}
			if di == 0 && dj == 0 {
				continue
			}
			nb := Neighbor{ID: g.cells[g.index(ni, nj)], DI: di, DJ: dj}
			if !nb.Empty() {
				nb.Species = g.entities[nb.ID].Species
			}
			out = append(out, nb)
		}
	}
	return out
}
