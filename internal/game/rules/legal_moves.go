package rules

import "github.com/mitchelldurbincs/checkers/internal/game/core"

// Jump is a capturing move: the unit lands on Landing and removes the
// opposing unit on Captured.
type Jump struct {
	Landing  core.Coordinate
	Captured core.Coordinate
}

// Destinations are the raw move options of one unit
type Destinations struct {
	Steps []core.Coordinate
	Jumps []Jump
}

func (d Destinations) HasJumps() bool { return len(d.Jumps) > 0 }
func (d Destinations) HasMoves() bool { return len(d.Jumps) > 0 || len(d.Steps) > 0 }

// Effective returns the cells the unit may commit to. Jumps pre-empt steps.
func (d Destinations) Effective() []core.Coordinate {
	if d.HasJumps() {
		return d.Landings()
	}
	out := make([]core.Coordinate, len(d.Steps))
	copy(out, d.Steps)
	return out
}

// Landings returns the landing cell of every jump
func (d Destinations) Landings() []core.Coordinate {
	out := make([]core.Coordinate, 0, len(d.Jumps))
	for _, j := range d.Jumps {
		out = append(out, j.Landing)
	}
	return out
}

// JumpTo returns the jump landing on pos, if any
func (d Destinations) JumpTo(pos core.Coordinate) (Jump, bool) {
	for _, j := range d.Jumps {
		if j.Landing == pos {
			return j, true
		}
	}
	return Jump{}, false
}

// DestinationsFor computes the step and jump options of a placed unit from
// the current board state. Pieces without a unit profile, or not on board,
// have no options.
func DestinationsFor(board *core.Board, unit *core.Piece) Destinations {
	var d Destinations
	if board == nil || unit == nil || !unit.IsUnit() || !board.Contains(unit) {
		return d
	}

	pos := unit.Position()
	for _, dir := range unit.Unit().LegalDirections() {
		next := pos.Add(dir)
		if !board.InBounds(next) {
			continue
		}

		occupant := board.PieceAt(next, core.LayerUnits)
		if occupant == nil {
			d.Steps = append(d.Steps, next)
			continue
		}
		if !unit.IsOpponentOf(occupant) {
			continue
		}

		landing := pos.Add(dir.Scale(2))
		if board.InBounds(landing) && !board.IsOccupied(landing, core.LayerUnits) {
			d.Jumps = append(d.Jumps, Jump{Landing: landing, Captured: next})
		}
	}
	return d
}

// ShouldPromote reports whether a unit standing on its king row needs kinging
func ShouldPromote(board *core.Board, unit *core.Piece) bool {
	if board == nil || unit == nil || !unit.IsUnit() || unit.Unit().IsKing() {
		return false
	}
	return unit.Position().Y == core.KingRow(unit.Unit().Forward(), board.Rows())
}
