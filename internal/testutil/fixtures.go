package testutil

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mitchelldurbincs/checkers/internal/game/core"
)

// Forward returns the default row sense for team: dark moves up, light moves down
func Forward(team core.Team) int {
	if team == core.TeamLight {
		return -1
	}
	return 1
}

// NewBoard creates an initialized, empty rows x columns board
func NewBoard(rows, columns int) *core.Board {
	b := core.NewBoard(NopLogger())
	b.Initialize(rows, columns)
	return b
}

// PlaceUnit puts a new non-king unit for team at (x, y) and fails the test if
// the cell is unavailable
func PlaceUnit(t *testing.T, b *core.Board, team core.Team, x, y int) *core.Piece {
	t.Helper()
	u := core.NewUnit(team, Forward(team))
	require.NoError(t, b.AddPiece(u, core.LayerUnits, core.NewCoordinate(x, y)))
	return u
}

// PlaceKing puts a new kinged unit for team at (x, y)
func PlaceKing(t *testing.T, b *core.Board, team core.Team, x, y int) *core.Piece {
	t.Helper()
	u := PlaceUnit(t, b, team, x, y)
	u.Unit().Promote()
	return u
}
