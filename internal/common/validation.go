package common

import "github.com/mitchelldurbincs/checkers/internal/game/core"

// IsPlayableCell reports whether (x, y) is a dark cell. The starting layout
// only uses dark cells, and (0,0) is dark.
func IsPlayableCell(x, y int) bool {
	return (x+y)%2 == 0
}

// DiagonalDistance returns how many diagonal steps separate from and to, or
// -1 when they do not share a diagonal.
func DiagonalDistance(from, to core.Coordinate) int {
	dx := Abs(to.X - from.X)
	dy := Abs(to.Y - from.Y)
	if dx != dy {
		return -1
	}
	return dx
}
