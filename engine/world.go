package engine

import (
	"github.com/lixenwraith/papercraft/components"
	"github.com/lixenwraith/papercraft/core"
)

// World is the entity store: every live entity has a position, a cell and a unit
type World struct {
	nextEntityID core.Entity

	Positions *PositionStore
	Cells     *Store[components.CellComponent]
	Units     *Store[components.UnitComponent]

	// Lifecycle registry - all stores implement AnyStore for uniform cleanup
	allStores []AnyStore
}

// Snapshot is a read-only copy of one (cell, unit) pair
type Snapshot struct {
	ID       core.Entity
	Position components.PositionComponent
	Cell     components.CellComponent
	Unit     components.UnitComponent
}

// NewWorld creates an empty world with all component stores initialized
func NewWorld() *World {
	w := &World{
		nextEntityID: 1,
		Positions:    NewPositionStore(),
		Cells:        NewStore[components.CellComponent](),
		Units:        NewStore[components.UnitComponent](),
	}
	w.allStores = []AnyStore{w.Positions, w.Cells, w.Units}
	return w
}

// Spawn inserts one entity. Fails without side effects if the cell is occupied.
func (w *World) Spawn(pos components.PositionComponent, cell components.CellComponent, unit components.UnitComponent) (core.Entity, error) {
	return WithPosition(w.NewEntity(), pos).
		WithCell(cell).
		WithUnit(unit).
		Build()
}

// EntityAt returns the entity standing on p
func (w *World) EntityAt(p core.Point) (core.Entity, bool) {
	return w.Positions.EntityAt(p)
}

// Get returns a snapshot of one entity
func (w *World) Get(e core.Entity) (Snapshot, bool) {
	pos, ok := w.Positions.Get(e)
	if !ok {
		return Snapshot{}, false
	}
	cell, ok := w.Cells.Get(e)
	if !ok {
		return Snapshot{}, false
	}
	unit, ok := w.Units.Get(e)
	if !ok {
		return Snapshot{}, false
	}
	return Snapshot{ID: e, Position: pos, Cell: cell, Unit: unit}, true
}

// Entities returns snapshots of all complete entities ordered by ID.
// Mutating the world while ranging over the result is safe.
func (w *World) Entities() []Snapshot {
	ids := w.Query().With(w.Positions).With(w.Cells).With(w.Units).Execute()
	result := make([]Snapshot, 0, len(ids))
	for _, e := range ids {
		if snap, ok := w.Get(e); ok {
			result = append(result, snap)
		}
	}
	return result
}

// Selected returns the currently selected entity, if any
func (w *World) Selected() (core.Entity, bool) {
	for _, e := range w.Cells.All() {
		if cell, _ := w.Cells.Get(e); cell.Selected {
			return e, true
		}
	}
	return 0, false
}

// EachUnit applies fn to every unit in place
func (w *World) EachUnit(fn func(core.Entity, *components.UnitComponent)) {
	for _, e := range w.Units.All() {
		w.Units.Mutate(e, func(u *components.UnitComponent) { fn(e, u) })
	}
}

// EachCell applies fn to every cell in place
func (w *World) EachCell(fn func(core.Entity, *components.CellComponent)) {
	for _, e := range w.Cells.All() {
		w.Cells.Mutate(e, func(c *components.CellComponent) { fn(e, c) })
	}
}

// RemoveBatch destroys a precomputed set of entities.
// Callers collect the set during a scan and apply it afterwards.
func (w *World) RemoveBatch(entities []core.Entity) {
	for _, store := range w.allStores {
		store.RemoveBatch(entities)
	}
}

// Count returns the number of live entities
func (w *World) Count() int {
	return w.Units.Count()
}

// Clear removes all entities and components from the world
func (w *World) Clear() {
	w.nextEntityID = 1
	for _, store := range w.allStores {
		store.Clear()
	}
}

func (w *World) reserveEntityID() core.Entity {
	id := w.nextEntityID
	w.nextEntityID++
	return id
}
