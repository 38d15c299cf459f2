package predprey

import (
	"predprey/internal/core"

	"github.com/charmbracelet/log"
)

// Sink receives presentation notifications from the grid. Calls are made
// synchronously inside a tick and must not touch the grid.
type Sink interface {
	// OnPlace reports an entity newly visible at (i, j).
	OnPlace(e Entity, i, j int)
	// OnRemove reports an entity leaving the grid from (e.I, e.J).
	OnRemove(e Entity)
	// OnMove reports e moving from (e.I, e.J) to (i, j).
	OnMove(e Entity, i, j int)
}

// NopSink discards every notification.
type NopSink struct{}

func (NopSink) OnPlace(Entity, int, int) {}
func (NopSink) OnRemove(Entity)          {}
func (NopSink) OnMove(Entity, int, int)  {}

// MultiSink fans notifications out in order.
type MultiSink []Sink

func (m MultiSink) OnPlace(e Entity, i, j int) {
	for _, s := range m {
		s.OnPlace(e, i, j)
	}
}

func (m MultiSink) OnRemove(e Entity) {
	for _, s := range m {
		s.OnRemove(e)
	}
}

func (m MultiSink) OnMove(e Entity, i, j int) {
	for _, s := range m {
		s.OnMove(e, i, j)
	}
}

// DisplaySink mirrors occupancy into a byte grid holding one species code
// per cell, the buffer the renderers paint.
type DisplaySink struct {
	cells *core.ByteGrid
}

// NewDisplaySink writes into cells, which must match the grid dimensions.
func NewDisplaySink(cells *core.ByteGrid) *DisplaySink {
	return &DisplaySink{cells: cells}
}

func (d *DisplaySink) OnPlace(e Entity, i, j int) { d.cells.Set(i, j, uint8(e.Species)) }
func (d *DisplaySink) OnRemove(e Entity)          { d.cells.Set(e.I, e.J, uint8(SpeciesNone)) }

func (d *DisplaySink) OnMove(e Entity, i, j int) {
	d.cells.Set(e.I, e.J, uint8(SpeciesNone))
	d.cells.Set(i, j, uint8(e.Species))
}

// LogSink emits a debug record per notification.
type LogSink struct {
	logger *log.Logger
}

// NewLogSink wraps logger. Records are only produced at debug level.
func NewLogSink(logger *log.Logger) *LogSink {
	return &LogSink{logger: logger}
}

func (l *LogSink) OnPlace(e Entity, i, j int) {
	l.logger.Debug("place", "id", e.ID, "species", e.Species, "i", i, "j", j)
}

func (l *LogSink) OnRemove(e Entity) {
	l.logger.Debug("remove", "id", e.ID, "species", e.Species, "i", e.I, "j", e.J, "age", e.T)
}

func (l *LogSink) OnMove(e Entity, i, j int) {
	l.logger.Debug("move", "id", e.ID, "species", e.Species, "from_i", e.I, "from_j", e.J, "i", i, "j", j)
}
