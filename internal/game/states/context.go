package states

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/mitchelldurbincs/checkers/internal/game/core"
)

// GameContext provides match information to states for making decisions
type GameContext struct {
	// GameID uniquely identifies this match
	GameID string

	// Logger for state-specific logging
	Logger zerolog.Logger

	// DarkUnits and LightUnits are the current roster sizes
	DarkUnits  int
	LightUnits int

	// StartTime is when the match started (PhaseRunning first entered)
	StartTime time.Time

	// PauseTime is when the match was paused (if paused)
	PauseTime time.Time

	// TotalPauseDuration tracks total time spent paused
	TotalPauseDuration time.Duration

	// Winner is the winning team, TeamNone until decided or on a draw
	Winner core.Team

	// Draw is set when the quiet-turn counter ran out
	Draw bool

	// Error holds any error that caused transition to PhaseError
	Error error
}

// NewGameContext creates a new game context
func NewGameContext(gameID string, logger zerolog.Logger) *GameContext {
	return &GameContext{
		GameID: gameID,
		Logger: logger.With().Str("game_id", gameID).Logger(),
	}
}

// HasBothTeams returns true if each side has at least one unit
func (gc *GameContext) HasBothTeams() bool {
	return gc.DarkUnits > 0 && gc.LightUnits > 0
}

// IsDecided returns true once a winner or a draw is recorded
func (gc *GameContext) IsDecided() bool {
	return gc.Draw || gc.Winner != core.TeamNone
}

// GetElapsedTime returns the time elapsed since match start, excluding pauses
func (gc *GameContext) GetElapsedTime() time.Duration {
	if gc.StartTime.IsZero() {
		return 0
	}

	elapsed := time.Since(gc.StartTime)
	return elapsed - gc.TotalPauseDuration
}
