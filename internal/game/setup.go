package game

import (
	"fmt"

	"github.com/mitchelldurbincs/checkers/internal/common"
	"github.com/mitchelldurbincs/checkers/internal/game/core"
	"github.com/mitchelldurbincs/checkers/internal/game/rules"
	"github.com/mitchelldurbincs/checkers/internal/game/states"
)

// Setup lays out a fresh board from the current configuration and moves the
// match to PhaseReady. It fails if either team ends up without units.
func (m *Match) Setup() error {
	if m.sm.CurrentPhase() != states.PhaseInitializing {
		return ErrSetupOutOfOrder
	}

	// A failed attempt may have left units behind
	m.clearRosters()
	board := m.cfg.Game.Board
	m.board.Initialize(board.Rows, board.Columns)
	m.drawCounter = rules.NewDrawCounter(m.root, m.cfg.Game.Rules.DrawTurns)

	if err := m.layTerrain(); err != nil {
		return m.setupFailed(fmt.Errorf("lay terrain: %w", err))
	}

	placements := m.placements
	if len(placements) == 0 {
		placements = m.startingLayout()
	}
	for _, p := range placements {
		if err := m.place(p); err != nil {
			return m.setupFailed(fmt.Errorf("place %s unit at %s: %w", p.Team, p.Position, err))
		}
	}
	m.syncCounts()

	ctx := m.sm.GetContext()
	if err := m.sm.TransitionTo(states.PhaseReady, "Board laid out"); err != nil {
		return fmt.Errorf("setup match: %w", err)
	}

	m.logger.Info().
		Int("rows", m.board.Rows()).
		Int("columns", m.board.Columns()).
		Int("dark_units", ctx.DarkUnits).
		Int("light_units", ctx.LightUnits).
		Int("participants", m.broadcaster.ParticipantCount()).
		Msg("Match set up")
	return nil
}

// layTerrain covers every cell with alternating dark and light terrain.
// (0,0) is dark; units only start on dark cells.
func (m *Match) layTerrain() error {
	for y := 0; y < m.board.Rows(); y++ {
		for x := 0; x < m.board.Columns(); x++ {
			shade := core.ShadeLight
			if common.IsPlayableCell(x, y) {
				shade = core.ShadeDark
			}
			if err := m.board.AddPiece(core.NewTerrain(shade), core.LayerTerrain, core.NewCoordinate(x, y)); err != nil {
				return err
			}
		}
	}
	return nil
}

// startingLayout fills the configured number of home rows on the playable
// cells. A team's home rows are at the edge opposite its king row.
func (m *Match) startingLayout() []Placement {
	rows, columns := m.board.Rows(), m.board.Columns()
	depth := m.cfg.Game.Board.StartingRows

	var out []Placement
	for _, t := range []core.Team{core.TeamDark, core.TeamLight} {
		for i := 0; i < depth; i++ {
			y := i
			if m.forward(t) < 0 {
				y = rows - 1 - i
			}
			for x := 0; x < columns; x++ {
				if common.IsPlayableCell(x, y) {
					out = append(out, Placement{Team: t, Position: core.NewCoordinate(x, y)})
				}
			}
		}
	}
	return out
}

func (m *Match) place(p Placement) error {
	c := m.ControllerFor(p.Team)
	if c == nil {
		return ErrInvalidTeam
	}

	unit := core.NewUnit(p.Team, m.forward(p.Team))
	if p.King {
		unit.Unit().Promote()
	}
	// The roster sets the listener before placement so the board registers the controller
	if err := c.AddUnit(unit); err != nil {
		return err
	}
	if err := m.board.AddPiece(unit, core.LayerUnits, p.Position); err != nil {
		c.RemoveUnit(unit)
		return err
	}
	return nil
}

func (m *Match) forward(t core.Team) int {
	if t == core.TeamLight {
		return m.cfg.Game.Teams.Light.Forward
	}
	return m.cfg.Game.Teams.Dark.Forward
}

func (m *Match) setupFailed(err error) error {
	m.logger.Error().Err(err).Msg("Match setup failed")
	return err
}
