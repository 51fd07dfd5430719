package types

import (
	"math"
	"testing"
)

func TestDirectionOffsets(t *testing.T) {
	tests := []struct {
		dir  Direction
		want GridPosition
	}{
		{North, Pos(0, 1)},
		{East, Pos(1, 0)},
		{South, Pos(0, -1)},
		{West, Pos(-1, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.dir.String(), func(t *testing.T) {
			if got := tt.dir.Offset(); got != tt.want {
				t.Errorf("Offset() = %v, want %v", got, tt.want)
			}
			if !tt.dir.Opposite().IsReverseOf(tt.dir) {
				t.Errorf("%v.Opposite() should be reverse of %v", tt.dir, tt.dir)
			}
			if tt.dir.IsReverseOf(tt.dir) {
				t.Errorf("%v should not be reverse of itself", tt.dir)
			}
		})
	}
}

func TestGridContains(t *testing.T) {
	g := Grid{Width: 20, Height: 20}

	tests := []struct {
		name string
		p    GridPosition
		want bool
	}{
		{"origin", Pos(0, 0), true},
		{"far corner", Pos(19, 19), true},
		{"x = -1", Pos(-1, 5), false},
		{"x = W", Pos(20, 5), false},
		{"z = -1", Pos(5, -1), false},
		{"z = H", Pos(5, 20), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := g.Contains(tt.p); got != tt.want {
				t.Errorf("Contains(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestDistance(t *testing.T) {
	if d := Pos(0, 0).Distance(Pos(3, 4)); math.Abs(d-5) > 1e-9 {
		t.Errorf("Distance = %v, want 5", d)
	}
	if d := Pos(7, 7).Distance(Pos(7, 7)); d != 0 {
		t.Errorf("Distance to self = %v, want 0", d)
	}
}

func TestWorldUsesFixedPlane(t *testing.T) {
	x, y, z := Pos(10, 11).World()
	if x != 10 || y != PlaneY || z != 11 {
		t.Errorf("World() = (%v,%v,%v), want (10,%d,11)", x, y, z, PlaneY)
	}
}
