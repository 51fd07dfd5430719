package types

// Direction is one of the four axis-aligned headings on the board.
type Direction int

const (
	North Direction = iota // +Z
	East                   // +X
	South                  // -Z
	West                   // -X
)

// Offset converts a Direction into a unit displacement.
func (d Direction) Offset() GridPosition {
	switch d {
	case North:
		return GridPosition{X: 0, Z: 1}
	case East:
		return GridPosition{X: 1, Z: 0}
	case South:
		return GridPosition{X: 0, Z: -1}
	case West:
		return GridPosition{X: -1, Z: 0}
	default:
		return GridPosition{}
	}
}

// Opposite returns the direction pointing the other way.
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case East:
		return West
	case South:
		return North
	case West:
		return East
	default:
		return d
	}
}

// IsReverseOf reports whether d would turn the snake back onto itself when moving in cur.
func (d Direction) IsReverseOf(cur Direction) bool {
	off, c := d.Offset(), cur.Offset()
	return off.X == -c.X && off.Z == -c.Z
}

// Valid reports whether d is one of the four headings.
func (d Direction) Valid() bool {
	return d >= North && d <= West
}

func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case East:
		return "east"
	case South:
		return "south"
	case West:
		return "west"
	default:
		return "invalid"
	}
}
