package engine

import (
	"github.com/lixenwraith/papercraft/components"
	"github.com/lixenwraith/papercraft/core"
)

// EntityBuilder constructs an entity transactionally. Components are staged
// and only written to the stores by Build, after the position is validated.
//
// Example usage:
//
//	entity, err := WithPosition(world.NewEntity(), pos).
//	    WithCell(cell).
//	    WithUnit(unit).
//	    Build()
type EntityBuilder struct {
	world  *World
	entity core.Entity
	pos    *components.PositionComponent
	staged []func()
	built  bool
}

// NewEntity creates a new EntityBuilder with a reserved entity ID.
func (w *World) NewEntity() *EntityBuilder {
	return &EntityBuilder{
		world:  w,
		entity: w.reserveEntityID(),
	}
}

// With stages a component of type T for the entity being built.
// Panics if called after Build().
func With[T any](eb *EntityBuilder, store *Store[T], component T) *EntityBuilder {
	if eb.built {
		panic("entity already built - cannot add components after Build()")
	}
	e := eb.entity
	eb.staged = append(eb.staged, func() { store.Add(e, component) })
	return eb
}

// WithPosition stages the grid position; collision is checked at Build.
func WithPosition(eb *EntityBuilder, pos components.PositionComponent) *EntityBuilder {
	if eb.built {
		panic("entity already built - cannot add components after Build()")
	}
	eb.pos = &pos
	return eb
}

// WithCell stages the display component
func (eb *EntityBuilder) WithCell(cell components.CellComponent) *EntityBuilder {
	return With(eb, eb.world.Cells, cell)
}

// WithUnit stages the combat component
func (eb *EntityBuilder) WithUnit(unit components.UnitComponent) *EntityBuilder {
	return With(eb, eb.world.Units, unit)
}

// Build commits the staged components. If the position is occupied nothing is
// written and the error is returned; the reserved ID is discarded.
func (eb *EntityBuilder) Build() (core.Entity, error) {
	if eb.built {
		panic("entity already built")
	}
	eb.built = true

	if eb.pos != nil {
		if err := eb.world.Positions.Add(eb.entity, *eb.pos); err != nil {
			return 0, err
		}
	}
	for _, apply := range eb.staged {
		apply()
	}
	return eb.entity, nil
}
