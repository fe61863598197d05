package maze

// Direction is the action label of one move.
type Direction string

const (
	North Direction = "North"
	South Direction = "South"
	East  Direction = "East"
	West  Direction = "West"
)

// Directions returns the four moves in successor order.
func Directions() []Direction {
	return []Direction{North, South, East, West}
}

func (d Direction) delta() Point {
	switch d {
	case North:
		return Point{Y: -1}
	case South:
		return Point{Y: 1}
	case East:
		return Point{X: 1}
	case West:
		return Point{X: -1}
	}
	return Point{}
}

// Valid reports whether d is one of the four moves.
func (d Direction) Valid() bool { return d.delta() != Point{} }
