package predprey

// EntityID indexes an entity record in the grid arena. IDs are stable while
// the entity is live and may be reused after it dies.
type EntityID int32

// NoEntity marks an empty cell or a missing reference.
const NoEntity EntityID = -1

// Entity is a snapshot of one organism's activation record.
type Entity struct {
	ID      EntityID
	Species Species

	// I is the column in [0, NX), J the row in [0, NY).
	I, J int

	// T counts activations survived.
	T int
	// LastBreed is the value of T at the most recent successful breed.
	LastBreed int
	// LastEat is the value of T at the most recent meal. Plants never set it.
	LastEat int
}

// canBreed applies the interval and fed-since-breeding gates.
func (e Entity) canBreed(tr Traits) bool {
	if tr.BreedInterval >= 0 && e.T-e.LastBreed <= tr.BreedInterval {
		return false
	}
	return e.LastEat > e.LastBreed
}

// starving reports whether the entity has gone too long without food.
func (e Entity) starving(tr Traits) bool {
	return tr.Starvation > 0 && e.T-e.LastEat > tr.Starvation
}
