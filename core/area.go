package core

// Point is a grid cell coordinate
type Point struct {
	X, Y int
}

// Area represents a rectangular target region
type Area struct {
	X, Y          int // Top-left corner
	Width, Height int // Extent; corner X+Width, Y+Height is inside the area
}

// Square returns the axis-aligned region within radius cells of center.
// The side is 2*radius and both borders are included (Chebyshev distance <= radius).
func Square(center Point, radius int) Area {
	return Area{
		X:      center.X - radius,
		Y:      center.Y - radius,
		Width:  radius * 2,
		Height: radius * 2,
	}
}

// Contains reports whether p lies inside the area, borders inclusive
func (a Area) Contains(p Point) bool {
	if a.Width < 0 || a.Height < 0 {
		return false
	}
	return p.X >= a.X && p.X <= a.X+a.Width &&
		p.Y >= a.Y && p.Y <= a.Y+a.Height
}
