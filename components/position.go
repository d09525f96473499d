package components

import "github.com/lixenwraith/papercraft/core"

// PositionComponent places an entity on the grid; mutated only by Move actions
type PositionComponent struct {
	X, Y int
}

// Point converts the component to a core.Point
func (p PositionComponent) Point() core.Point {
	return core.Point{X: p.X, Y: p.Y}
}

// At builds a PositionComponent from a point
func At(p core.Point) PositionComponent {
	return PositionComponent{X: p.X, Y: p.Y}
}
