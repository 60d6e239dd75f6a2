package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/mitchelldurbincs/checkers/internal/game/core"
)

type commandKind int

const (
	cmdSelect commandKind = iota
	cmdPause
	cmdReset
	cmdShow
	cmdHelp
	cmdQuit
)

type command struct {
	kind  commandKind
	input core.Input
}

var errUnknownCommand = errors.New("unknown command")

const helpText = `commands:
  x y     select the cell at column x, row y (0-based, row 0 at the bottom)
  -       click outside the board
  p       pause or resume
  r       start a new match
  show    print the board
  q       quit
`

// parseCommand turns one line of input into a command. Coordinates are not
// range-checked here; the controller reports off-board cells.
func parseCommand(line string) (command, error) {
	fields := strings.Fields(strings.ToLower(line))
	if len(fields) == 0 {
		return command{kind: cmdShow}, nil
	}

	switch fields[0] {
	case "q", "quit", "exit":
		return command{kind: cmdQuit}, nil
	case "p", "pause", "resume":
		return command{kind: cmdPause}, nil
	case "r", "reset":
		return command{kind: cmdReset}, nil
	case "show", "board":
		return command{kind: cmdShow}, nil
	case "h", "help", "?":
		return command{kind: cmdHelp}, nil
	case "-":
		return command{kind: cmdSelect, input: core.NoSelection}, nil
	}

	if len(fields) != 2 {
		return command{}, fmt.Errorf("%w: %q", errUnknownCommand, line)
	}
	x, err := strconv.Atoi(fields[0])
	if err != nil {
		return command{}, fmt.Errorf("parse column: %w", err)
	}
	y, err := strconv.Atoi(fields[1])
	if err != nil {
		return command{}, fmt.Errorf("parse row: %w", err)
	}
	return command{kind: cmdSelect, input: core.SelectAt(x, y)}, nil
}
