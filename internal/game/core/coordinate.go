package core

import "fmt"

// Coordinate represents a cell on the game board.
// X is the column and Y is the row.
type Coordinate struct {
	X, Y int
}

// NewCoordinate creates a new coordinate with the given x and y values
func NewCoordinate(x, y int) Coordinate {
	return Coordinate{X: x, Y: y}
}

// IsValid checks if the coordinate is within the given bounds
func (c Coordinate) IsValid(columns, rows int) bool {
	return c.X >= 0 && c.X < columns && c.Y >= 0 && c.Y < rows
}

// Add returns a new coordinate that is the sum of this coordinate and another
func (c Coordinate) Add(other Coordinate) Coordinate {
	return Coordinate{
		X: c.X + other.X,
		Y: c.Y + other.Y,
	}
}

// Sub returns a new coordinate that is the difference between this coordinate and another
func (c Coordinate) Sub(other Coordinate) Coordinate {
	return Coordinate{
		X: c.X - other.X,
		Y: c.Y - other.Y,
	}
}

// Scale multiplies both components by n
func (c Coordinate) Scale(n int) Coordinate {
	return Coordinate{X: c.X * n, Y: c.Y * n}
}

// Midpoint returns the cell halfway between c and other. The result is only
// meaningful when both deltas are even.
func (c Coordinate) Midpoint(other Coordinate) Coordinate {
	return Coordinate{
		X: (c.X + other.X) / 2,
		Y: (c.Y + other.Y) / 2,
	}
}

// Equal checks if two coordinates are equal
func (c Coordinate) Equal(other Coordinate) bool {
	return c.X == other.X && c.Y == other.Y
}

// String returns a string representation of the coordinate
func (c Coordinate) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Diagonal unit vectors. "Up" is increasing row index.
var (
	UpRight   = Coordinate{X: 1, Y: 1}
	UpLeft    = Coordinate{X: -1, Y: 1}
	DownRight = Coordinate{X: 1, Y: -1}
	DownLeft  = Coordinate{X: -1, Y: -1}
)

// DiagonalsToward returns the two diagonals whose row component equals sense.
// sense must be +1 or -1.
func DiagonalsToward(sense int) []Coordinate {
	if sense > 0 {
		return []Coordinate{UpRight, UpLeft}
	}
	return []Coordinate{DownRight, DownLeft}
}

// IsUnitDiagonal reports whether c is one of the four diagonal unit vectors
func (c Coordinate) IsUnitDiagonal() bool {
	return (c.X == 1 || c.X == -1) && (c.Y == 1 || c.Y == -1)
}
