package rules

import (
	"github.com/rs/zerolog"

	"github.com/mitchelldurbincs/checkers/internal/game/core"
)

// Outcome describes how a match ended
type Outcome struct {
	Winner core.Team
	Draw   bool
}

// IsDecided reports whether the outcome names a winner or a draw
func (o Outcome) IsDecided() bool { return o.Draw || o.Winner != core.TeamNone }

func (o Outcome) String() string {
	switch {
	case o.Draw:
		return "draw"
	case o.Winner != core.TeamNone:
		return o.Winner.String() + " wins"
	default:
		return "undecided"
	}
}

// WinnerByImmobility is the outcome when team has no legal action on its own phase
func WinnerByImmobility(team core.Team) Outcome {
	return Outcome{Winner: team.Opponent()}
}

// DrawCounter counts down quiet turns. Captures and promotions reset it.
// A turn is one full broadcaster cycle, so both teams move before it ticks.
type DrawCounter struct {
	logger    zerolog.Logger
	threshold int
	remaining int
}

// NewDrawCounter creates a counter that runs out after threshold quiet turns.
// A threshold below 1 disables draw detection.
func NewDrawCounter(logger zerolog.Logger, threshold int) *DrawCounter {
	return &DrawCounter{
		logger:    logger.With().Str("component", "DrawCounter").Logger(),
		threshold: threshold,
		remaining: threshold,
	}
}

func (dc *DrawCounter) Remaining() int { return dc.remaining }
func (dc *DrawCounter) Threshold() int { return dc.threshold }
func (dc *DrawCounter) Enabled() bool  { return dc.threshold > 0 }

// Reset restores the full threshold
func (dc *DrawCounter) Reset() {
	if dc.remaining != dc.threshold {
		dc.logger.Debug().Int("remaining", dc.remaining).Msg("Draw counter reset")
	}
	dc.remaining = dc.threshold
}

// TurnPassed decrements the counter and reports whether the game is now drawn
func (dc *DrawCounter) TurnPassed() bool {
	if !dc.Enabled() {
		return false
	}
	if dc.remaining <= 0 {
		return true
	}
	dc.remaining--
	dc.logger.Debug().Int("remaining", dc.remaining).Msg("Quiet turn passed")
	if dc.remaining == 0 {
		dc.logger.Info().Int("threshold", dc.threshold).Msg("Draw counter exhausted")
		return true
	}
	return false
}
