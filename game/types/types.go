package types

import (
	"fmt"
	"math"
)

// PlaneY is the fixed height the board lives on when projected into a 3D scene.
const PlaneY = 1

// Grid represents the game grid dimensions
type Grid struct {
	Width  int
	Height int
}

// Contains reports whether p lies inside [0, Width) x [0, Height).
func (g Grid) Contains(p GridPosition) bool {
	return p.X >= 0 && p.X < g.Width && p.Z >= 0 && p.Z < g.Height
}

// Area is the number of cells on the grid.
func (g Grid) Area() int {
	return g.Width * g.Height
}

// GridPosition is a cell on the board. X runs across, Z runs forward.
type GridPosition struct {
	X, Z int
}

// Pos is shorthand for GridPosition{X: x, Z: z}.
func Pos(x, z int) GridPosition {
	return GridPosition{X: x, Z: z}
}

func (p GridPosition) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Z)
}

// Add returns p shifted by the offset of d.
func (p GridPosition) Add(d Direction) GridPosition {
	off := d.Offset()
	return GridPosition{X: p.X + off.X, Z: p.Z + off.Z}
}

// Distance returns the Euclidean distance between two cells.
func (p GridPosition) Distance(o GridPosition) float64 {
	return math.Hypot(float64(p.X-o.X), float64(p.Z-o.Z))
}

// World returns the cell centre in scene coordinates (x, PlaneY, z).
func (p GridPosition) World() (x, y, z float32) {
	return float32(p.X), PlaneY, float32(p.Z)
}

// CollisionType represents the type of collision
type CollisionType int

const (
	NoCollision CollisionType = iota
	WallCollision
	SelfCollision
)

func (c CollisionType) String() string {
	switch c {
	case WallCollision:
		return "wall"
	case SelfCollision:
		return "self"
	default:
		return "none"
	}
}
