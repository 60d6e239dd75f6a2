package states

import (
	"errors"
	"fmt"
	"time"

	"github.com/mitchelldurbincs/checkers/internal/game/core"
)

var (
	ErrMissingTeam    = errors.New("both teams need at least one unit")
	ErrNotStarted     = errors.New("match has not started")
	ErrNotDecided     = errors.New("match has no winner or draw")
	ErrMissingFailure = errors.New("error state requires an error in context")
)

// InitializingState represents match creation
type InitializingState struct{}

func NewInitializingState() State {
	return &InitializingState{}
}

func (s *InitializingState) Phase() GamePhase {
	return PhaseInitializing
}

func (s *InitializingState) Enter(ctx *GameContext) error {
	ctx.Logger.Debug().Msg("Entering Initializing state")
	return nil
}

func (s *InitializingState) Exit(ctx *GameContext) error {
	ctx.Logger.Debug().Msg("Exiting Initializing state")
	return nil
}

func (s *InitializingState) Validate(ctx *GameContext) error {
	return nil
}

// ReadyState is entered once the board and rosters are set up
type ReadyState struct{}

func NewReadyState() State {
	return &ReadyState{}
}

func (s *ReadyState) Phase() GamePhase {
	return PhaseReady
}

func (s *ReadyState) Enter(ctx *GameContext) error {
	ctx.Logger.Info().
		Int("dark_units", ctx.DarkUnits).
		Int("light_units", ctx.LightUnits).
		Msg("Board set up, match ready")
	return nil
}

func (s *ReadyState) Exit(ctx *GameContext) error {
	ctx.Logger.Debug().Msg("Leaving ready state")
	return nil
}

func (s *ReadyState) Validate(ctx *GameContext) error {
	if !ctx.HasBothTeams() {
		return fmt.Errorf("%w: dark=%d light=%d", ErrMissingTeam, ctx.DarkUnits, ctx.LightUnits)
	}
	return nil
}

// RunningState represents active play
type RunningState struct{}

func NewRunningState() State {
	return &RunningState{}
}

func (s *RunningState) Phase() GamePhase {
	return PhaseRunning
}

func (s *RunningState) Enter(ctx *GameContext) error {
	if ctx.StartTime.IsZero() {
		ctx.StartTime = time.Now()
		ctx.Logger.Info().
			Time("start_time", ctx.StartTime).
			Msg("Match started")
	}
	return nil
}

func (s *RunningState) Exit(ctx *GameContext) error {
	ctx.Logger.Debug().
		Dur("elapsed", ctx.GetElapsedTime()).
		Msg("Exiting running state")
	return nil
}

func (s *RunningState) Validate(ctx *GameContext) error {
	if !ctx.HasBothTeams() {
		return fmt.Errorf("cannot run match: %w", ErrMissingTeam)
	}
	return nil
}

// PausedState represents an interrupted match
type PausedState struct{}

func NewPausedState() State {
	return &PausedState{}
}

func (s *PausedState) Phase() GamePhase {
	return PhasePaused
}

func (s *PausedState) Enter(ctx *GameContext) error {
	ctx.PauseTime = time.Now()
	ctx.Logger.Info().
		Time("pause_time", ctx.PauseTime).
		Msg("Match paused")
	return nil
}

func (s *PausedState) Exit(ctx *GameContext) error {
	if !ctx.PauseTime.IsZero() {
		pauseDuration := time.Since(ctx.PauseTime)
		ctx.TotalPauseDuration += pauseDuration
		ctx.PauseTime = time.Time{}
		ctx.Logger.Info().
			Dur("pause_duration", pauseDuration).
			Dur("total_pause_duration", ctx.TotalPauseDuration).
			Msg("Match resumed")
	}
	return nil
}

func (s *PausedState) Validate(ctx *GameContext) error {
	if ctx.StartTime.IsZero() {
		return fmt.Errorf("cannot pause: %w", ErrNotStarted)
	}
	return nil
}

// EndedState represents a decided match
type EndedState struct{}

func NewEndedState() State {
	return &EndedState{}
}

func (s *EndedState) Phase() GamePhase {
	return PhaseEnded
}

func (s *EndedState) Enter(ctx *GameContext) error {
	ctx.Logger.Info().
		Stringer("winner", ctx.Winner).
		Bool("draw", ctx.Draw).
		Dur("game_duration", ctx.GetElapsedTime()).
		Msg("Match ended")
	return nil
}

func (s *EndedState) Exit(ctx *GameContext) error {
	ctx.Logger.Debug().Msg("Exiting ended state")
	return nil
}

func (s *EndedState) Validate(ctx *GameContext) error {
	if !ctx.IsDecided() {
		return ErrNotDecided
	}
	return nil
}

// ErrorState represents an error condition
type ErrorState struct{}

func NewErrorState() State {
	return &ErrorState{}
}

func (s *ErrorState) Phase() GamePhase {
	return PhaseError
}

func (s *ErrorState) Enter(ctx *GameContext) error {
	ctx.Logger.Error().
		Err(ctx.Error).
		Msg("Match entered error state")
	return nil
}

func (s *ErrorState) Exit(ctx *GameContext) error {
	ctx.Logger.Info().Msg("Recovering from error state")
	ctx.Error = nil
	return nil
}

func (s *ErrorState) Validate(ctx *GameContext) error {
	if ctx.Error == nil {
		return ErrMissingFailure
	}
	return nil
}

// ResetState clears per-match data so the match can be set up again
type ResetState struct{}

func NewResetState() State {
	return &ResetState{}
}

func (s *ResetState) Phase() GamePhase {
	return PhaseReset
}

func (s *ResetState) Enter(ctx *GameContext) error {
	ctx.Logger.Info().Msg("Resetting match")

	ctx.StartTime = time.Time{}
	ctx.PauseTime = time.Time{}
	ctx.TotalPauseDuration = 0
	ctx.Winner = core.TeamNone
	ctx.Draw = false
	ctx.Error = nil
	ctx.DarkUnits = 0
	ctx.LightUnits = 0
	return nil
}

func (s *ResetState) Exit(ctx *GameContext) error {
	ctx.Logger.Debug().Msg("Match reset complete")
	return nil
}

func (s *ResetState) Validate(ctx *GameContext) error {
	return nil
}
