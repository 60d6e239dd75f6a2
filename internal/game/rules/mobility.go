package rules

import "github.com/mitchelldurbincs/checkers/internal/game/core"

// Mobility is a snapshot of every legal option for one team's roster.
// It is a cache: it goes stale as soon as the board changes.
type Mobility struct {
	WithJumps []*core.Piece
	WithMoves []*core.Piece

	options map[*core.Piece]Destinations
}

// AnalyzeTeam computes the mobility of every unit in roster, keeping roster order
func AnalyzeTeam(board *core.Board, roster []*core.Piece) Mobility {
	m := Mobility{options: make(map[*core.Piece]Destinations, len(roster))}
	for _, unit := range roster {
		d := DestinationsFor(board, unit)
		if !d.HasMoves() {
			continue
		}
		m.options[unit] = d
		m.WithMoves = append(m.WithMoves, unit)
		if d.HasJumps() {
			m.WithJumps = append(m.WithJumps, unit)
		}
	}
	return m
}

// JumpForced reports whether at least one unit must jump
func (m Mobility) JumpForced() bool { return len(m.WithJumps) > 0 }

// HasMoves reports whether the team can act at all
func (m Mobility) HasMoves() bool { return len(m.WithMoves) > 0 }

// Selectable returns the units that may be picked this phase:
// the jumpers when any exist, otherwise every unit with a move.
func (m Mobility) Selectable() []*core.Piece {
	src := m.WithMoves
	if m.JumpForced() {
		src = m.WithJumps
	}
	out := make([]*core.Piece, len(src))
	copy(out, src)
	return out
}

// IsSelectable reports whether unit is in the forced-move set
func (m Mobility) IsSelectable(unit *core.Piece) bool {
	d, ok := m.options[unit]
	if !ok {
		return false
	}
	if m.JumpForced() {
		return d.HasJumps()
	}
	return true
}

// Options returns the cached destinations of unit
func (m Mobility) Options(unit *core.Piece) (Destinations, bool) {
	d, ok := m.options[unit]
	return d, ok
}

// Targets returns the cells unit may commit to under the forced-jump policy
func (m Mobility) Targets(unit *core.Piece) []core.Coordinate {
	if !m.IsSelectable(unit) {
		return nil
	}
	return m.options[unit].Effective()
}
