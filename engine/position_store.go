package engine

import (
	"fmt"

	"github.com/lixenwraith/papercraft/components"
	"github.com/lixenwraith/papercraft/core"
)

// PositionStore is a specialized store for PositionComponent that maintains
// a spatial index for position lookups. At most one entity occupies a cell.
type PositionStore struct {
	*Store[components.PositionComponent]
	spatialIndex map[core.Point]core.Entity
}

// NewPositionStore creates a new position store with spatial indexing.
func NewPositionStore() *PositionStore {
	return &PositionStore{
		Store:        NewStore[components.PositionComponent](),
		spatialIndex: make(map[core.Point]core.Entity),
	}
}

// Add places an entity, failing if another entity occupies the cell
func (ps *PositionStore) Add(e core.Entity, pos components.PositionComponent) error {
	if occupant, ok := ps.spatialIndex[pos.Point()]; ok && occupant != e {
		return fmt.Errorf("position (%d,%d) is occupied by entity %d", pos.X, pos.Y, occupant)
	}

	if oldPos, exists := ps.Store.Get(e); exists {
		delete(ps.spatialIndex, oldPos.Point())
	}

	ps.Store.Add(e, pos)
	ps.spatialIndex[pos.Point()] = e
	return nil
}

// Remove deletes the entity's position and its spatial index entry
func (ps *PositionStore) Remove(e core.Entity) {
	if pos, exists := ps.Store.Get(e); exists {
		delete(ps.spatialIndex, pos.Point())
	}
	ps.Store.Remove(e)
}

// RemoveBatch deletes positions for many entities, keeping the index consistent
func (ps *PositionStore) RemoveBatch(entities []core.Entity) {
	for _, e := range entities {
		if pos, exists := ps.Store.Get(e); exists {
			delete(ps.spatialIndex, pos.Point())
		}
	}
	ps.Store.RemoveBatch(entities)
}

// EntityAt returns the entity at the given cell
func (ps *PositionStore) EntityAt(p core.Point) (core.Entity, bool) {
	e, ok := ps.spatialIndex[p]
	return e, ok
}

// Occupied reports whether any entity stands on p
func (ps *PositionStore) Occupied(p core.Point) bool {
	_, ok := ps.spatialIndex[p]
	return ok
}

// Move relocates an entity. Returns an error if the target cell is occupied
// by a different entity or the entity has no position.
func (ps *PositionStore) Move(e core.Entity, newPos components.PositionComponent) error {
	if occupant, ok := ps.spatialIndex[newPos.Point()]; ok && occupant != e {
		return fmt.Errorf("position (%d,%d) is occupied by entity %d", newPos.X, newPos.Y, occupant)
	}

	oldPos, exists := ps.Store.Get(e)
	if !exists {
		return fmt.Errorf("entity %d does not have a position component", e)
	}

	delete(ps.spatialIndex, oldPos.Point())
	ps.Store.Add(e, newPos)
	ps.spatialIndex[newPos.Point()] = e
	return nil
}

// Clear overrides base Clear to also clear spatial index.
func (ps *PositionStore) Clear() {
	ps.Store.Clear()
	ps.spatialIndex = make(map[core.Point]core.Entity)
}
