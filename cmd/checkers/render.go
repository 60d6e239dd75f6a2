package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/mitchelldurbincs/checkers/internal/game"
	"github.com/mitchelldurbincs/checkers/internal/game/core"
)

// render prints the board with row 0 at the bottom, followed by a status line.
// Dark units are d/D, light units l/L (upper case is a king), * marks a
// destination of the selected unit.
func render(w io.Writer, match *game.Match) {
	board := match.Board()
	if !board.IsInitialized() {
		fmt.Fprintln(w, "(no board)")
		return
	}

	var targets []core.Coordinate
	var selected *core.Piece
	if c := match.ActiveController(); c != nil {
		targets = c.Destinations()
		selected = c.SelectedUnit()
	}

	var sb strings.Builder
	for y := board.Rows() - 1; y >= 0; y-- {
		fmt.Fprintf(&sb, "%2d ", y)
		for x := 0; x < board.Columns(); x++ {
			pos := core.NewCoordinate(x, y)
			sb.WriteString(cell(board, pos, selected, targets))
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("   ")
	for x := 0; x < board.Columns(); x++ {
		fmt.Fprintf(&sb, "%2d", x%100)
	}
	sb.WriteByte('\n')
	sb.WriteString(status(match))
	sb.WriteByte('\n')

	io.WriteString(w, sb.String())
}

func cell(board *core.Board, pos core.Coordinate, selected *core.Piece, targets []core.Coordinate) string {
	if u := board.PieceAt(pos, core.LayerUnits); u != nil {
		glyph := "d"
		if u.Team() == core.TeamLight {
			glyph = "l"
		}
		if u.IsUnit() && u.Unit().IsKing() {
			glyph = strings.ToUpper(glyph)
		}
		if u == selected {
			return "[" + glyph
		}
		return " " + glyph
	}
	for _, t := range targets {
		if t == pos {
			return " *"
		}
	}
	if terrain := board.PieceAt(pos, core.LayerTerrain); terrain != nil && terrain.Shade() == core.ShadeDark {
		return " ."
	}
	return "  "
}

func status(match *game.Match) string {
	if match.IsOver() {
		return fmt.Sprintf("match over: %s", match.Result())
	}
	c := match.ActiveController()
	if c == nil {
		return fmt.Sprintf("%s, turn %d", match.Phase(), match.Turn())
	}
	line := fmt.Sprintf("turn %d, %s to play (%s), %d quiet turns left",
		match.Turn(), c.Team(), c.State(), match.QuietTurnsLeft())
	if c.JumpForced() {
		line += ", jump required"
	}
	return line
}
