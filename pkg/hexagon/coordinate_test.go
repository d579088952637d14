package hexagon

import "testing"

func TestNewCube_ZeroConstraint(t *testing.T) {
	if _, err := NewCube(1, 1, -2); err != nil {
		t.Fatalf("valid cube rejected: %v", err)
	}
	_, err := NewCube(1, 1, 1)
	if err == nil {
		t.Fatal("expected zero constraint violation")
	}
	if _, ok := err.(ZeroConstraintError); !ok {
		t.Fatalf("expected ZeroConstraintError, got %T", err)
	}
}

func TestAxialCube_Conversions(t *testing.T) {
	tests := []struct {
		col, row int
		x, y, z  int
	}{
		{0, 0, 0, 0, 0},
		{1, 0, 1, -1, 0},
		{0, 1, 0, -1, 1},
		{-1, 0, -1, 1, 0},
		{0, -1, 0, 1, -1},
		{1, -1, 1, 0, -1},
		{-1, -1, -1, 2, -1},
		{-1, 1, -1, 0, 1},
		{1, 1, 1, -2, 1},
	}
	for _, tt := range tests {
		c := AxialCube(tt.col, tt.row)
		if c.X() != tt.x || c.Y() != tt.y || c.Z() != tt.z {
			t.Errorf("AxialCube(%d,%d) = %s, want (%d,%d,%d)",
				tt.col, tt.row, c, tt.x, tt.y, tt.z)
		}
		if c.X()+c.Y()+c.Z() != 0 {
			t.Errorf("AxialCube(%d,%d) breaks zero constraint", tt.col, tt.row)
		}
	}
}

func TestCube_Add(t *testing.T) {
	a := AxialCube(2, 1)
	sum := a.Add(Right).Add(DownRight)
	want := AxialCube(3, 2)
	if sum != want {
		t.Fatalf("expected %s, got %s", want, sum)
	}
}

func TestCube_Neighbors_ClockwiseFromUpRight(t *testing.T) {
	c := AxialCube(1, 1)
	want := [6]Cube{
		c.Add(UpRight),
		c.Add(Right),
		c.Add(DownRight),
		c.Add(DownLeft),
		c.Add(Left),
		c.Add(UpLeft),
	}
	got := c.Neighbors()
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("neighbor %d: expected %s, got %s", i, want[i], got[i])
		}
		if got[i].X()+got[i].Y()+got[i].Z() != 0 {
			t.Errorf("neighbor %d breaks zero constraint", i)
		}
	}
}

func TestCube_HalfNeighbors(t *testing.T) {
	c := AxialCube(0, 0)
	want := [3]Cube{c.Add(Right), c.Add(DownRight), c.Add(DownLeft)}
	if got := c.HalfNeighbors(); got != want {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestDirections_SumToZero(t *testing.T) {
	for _, d := range []Cube{Left, Right, UpLeft, UpRight, DownLeft, DownRight} {
		if d.X()+d.Y()+d.Z() != 0 {
			t.Errorf("direction %s breaks zero constraint", d)
		}
	}
	// Opposite directions cancel.
	if Left.Add(Right) != (Cube{}) || UpLeft.Add(DownRight) != (Cube{}) || UpRight.Add(DownLeft) != (Cube{}) {
		t.Error("opposite directions should cancel to origin")
	}
}
