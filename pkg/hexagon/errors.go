package hexagon

import "fmt"

// ZeroConstraintError reports an attempt to build a cube coordinate whose
// components do not sum to zero.
type ZeroConstraintError struct {
	X, Y, Z int
}

func (e ZeroConstraintError) Error() string {
	return fmt.Sprintf(
		"coordinates x: %d, y: %d, z: %d fail zero constraint, sum %d",
		e.X, e.Y, e.Z, e.X+e.Y+e.Z,
	)
}

// NoHexError reports a lookup at a coordinate the grid does not contain.
type NoHexError struct {
	Coordinate Cube
}

func (e NoHexError) Error() string {
	return fmt.Sprintf("no hexagon at coordinate %s", e.Coordinate)
}
