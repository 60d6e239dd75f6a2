package core

// UnitProfile holds the movement rules of a single Units-layer piece.
// Only Promote mutates it.
type UnitProfile struct {
	forward    int
	isKing     bool
	directions []Coordinate
}

// NewUnitProfile creates a non-king profile moving toward forward (+1 or -1 rows).
// Any other value is normalized to its sign, with 0 treated as +1.
func NewUnitProfile(forward int) *UnitProfile {
	if forward < 0 {
		forward = -1
	} else {
		forward = 1
	}
	return &UnitProfile{
		forward:    forward,
		directions: DiagonalsToward(forward),
	}
}

// Forward returns the row sense this unit started with
func (u *UnitProfile) Forward() int { return u.forward }

// IsKing reports whether the unit has been promoted
func (u *UnitProfile) IsKing() bool { return u.isKing }

// LegalDirections returns a copy of the current move vectors
func (u *UnitProfile) LegalDirections() []Coordinate {
	out := make([]Coordinate, len(u.directions))
	copy(out, u.directions)
	return out
}

// Promote kings the unit and adds the backward diagonals.
// Returns true only on the call that actually promoted.
func (u *UnitProfile) Promote() bool {
	if u.isKing {
		return false
	}
	u.isKing = true
	u.directions = append(u.directions, DiagonalsToward(-u.forward)...)
	return true
}

// KingRow returns the row a unit moving toward forward is promoted on
func KingRow(forward, rows int) int {
	if forward > 0 {
		return rows - 1
	}
	return 0
}
