package events

import (
	"time"

	"github.com/mitchelldurbincs/checkers/internal/game/core"
	"github.com/mitchelldurbincs/checkers/internal/game/turns"
)

// Event type constants
const (
	TypeGameStarted      = "game.started"
	TypeGameEnded        = "game.ended"
	TypePhaseChanged     = "phase.changed"
	TypeTurnEnded        = "turn.ended"
	TypeUnitSelected     = "unit.selected"
	TypeSelectionCleared = "selection.cleared"
	TypeUnitsSelectable  = "units.selectable"
	TypePieceMoved       = "piece.moved"
	TypePieceCaptured    = "piece.captured"
	TypeUnitPromoted     = "unit.promoted"
	TypeInputRejected    = "input.rejected"
	TypeStateTransition  = "state.transition"
)

// Reasons attached to SelectionClearedEvent
const (
	ClearedDeselected  = "deselected"
	ClearedCommitted   = "committed"
	ClearedChainEnded  = "chain_ended"
	ClearedInterrupted = "interrupted"
	ClearedPhaseOpened = "phase_opened"
	ClearedHalted      = "halted"
)

// GameStartedEvent is published when a match begins
type GameStartedEvent struct {
	BaseEvent
	Rows       int
	Columns    int
	DarkUnits  int
	LightUnits int
}

// NewGameStartedEvent creates a new GameStartedEvent
func NewGameStartedEvent(gameID string, rows, columns, darkUnits, lightUnits int) *GameStartedEvent {
	return &GameStartedEvent{
		BaseEvent:  newBase(TypeGameStarted, gameID),
		Rows:       rows,
		Columns:    columns,
		DarkUnits:  darkUnits,
		LightUnits: lightUnits,
	}
}

// GameEndedEvent is published when a match is decided
type GameEndedEvent struct {
	BaseEvent
	Winner    core.Team
	Draw      bool
	Reason    string
	FinalTurn int
	Duration  time.Duration
}

// NewGameEndedEvent creates a new GameEndedEvent
func NewGameEndedEvent(gameID string, winner core.Team, draw bool, reason string, finalTurn int, duration time.Duration) *GameEndedEvent {
	return &GameEndedEvent{
		BaseEvent: newBase(TypeGameEnded, gameID),
		Winner:    winner,
		Draw:      draw,
		Reason:    reason,
		FinalTurn: finalTurn,
		Duration:  duration,
	}
}

// PhaseChangedEvent is published every time the broadcaster opens a phase
type PhaseChangedEvent struct {
	BaseEvent
	Metadata EventMetadata
	Phase    turns.Phase
}

// NewPhaseChangedEvent creates a new PhaseChangedEvent
func NewPhaseChangedEvent(gameID string, phase turns.Phase, turn int) *PhaseChangedEvent {
	return &PhaseChangedEvent{
		BaseEvent: newBase(TypePhaseChanged, gameID),
		Metadata:  EventMetadata{Turn: turn},
		Phase:     phase,
	}
}

// TurnEndedEvent is published after the last phase of a turn completes
type TurnEndedEvent struct {
	BaseEvent
	Metadata       EventMetadata
	QuietTurnsLeft int
}

// NewTurnEndedEvent creates a new TurnEndedEvent
func NewTurnEndedEvent(gameID string, turn, quietTurnsLeft int) *TurnEndedEvent {
	return &TurnEndedEvent{
		BaseEvent:      newBase(TypeTurnEnded, gameID),
		Metadata:       EventMetadata{Turn: turn},
		QuietTurnsLeft: quietTurnsLeft,
	}
}

// UnitSelectedEvent is published when a controller locks onto a unit
type UnitSelectedEvent struct {
	BaseEvent
	Metadata     EventMetadata
	UnitID       string
	Position     core.Coordinate
	Destinations []core.Coordinate
	Continuation bool
}

// NewUnitSelectedEvent creates a new UnitSelectedEvent
func NewUnitSelectedEvent(gameID string, team core.Team, turn int, unit *core.Piece, destinations []core.Coordinate, continuation bool) *UnitSelectedEvent {
	return &UnitSelectedEvent{
		BaseEvent:    newBase(TypeUnitSelected, gameID),
		Metadata:     EventMetadata{Team: team, Turn: turn},
		UnitID:       unit.ID(),
		Position:     unit.Position(),
		Destinations: destinations,
		Continuation: continuation,
	}
}

// UnitsSelectableEvent is published when a controller opens its phase and
// lists the units input may pick
type UnitsSelectableEvent struct {
	BaseEvent
	Metadata   EventMetadata
	Positions  []core.Coordinate
	JumpForced bool
}

// NewUnitsSelectableEvent creates a new UnitsSelectableEvent
func NewUnitsSelectableEvent(gameID string, team core.Team, turn int, positions []core.Coordinate, jumpForced bool) *UnitsSelectableEvent {
	return &UnitsSelectableEvent{
		BaseEvent:  newBase(TypeUnitsSelectable, gameID),
		Metadata:   EventMetadata{Team: team, Turn: turn},
		Positions:  positions,
		JumpForced: jumpForced,
	}
}

// SelectionClearedEvent is published when a controller drops its selection
type SelectionClearedEvent struct {
	BaseEvent
	Metadata EventMetadata
	Reason   string
}

// NewSelectionClearedEvent creates a new SelectionClearedEvent
func NewSelectionClearedEvent(gameID string, team core.Team, turn int, reason string) *SelectionClearedEvent {
	return &SelectionClearedEvent{
		BaseEvent: newBase(TypeSelectionCleared, gameID),
		Metadata:  EventMetadata{Team: team, Turn: turn},
		Reason:    reason,
	}
}

// PieceMovedEvent is published after a unit is committed to a new cell
type PieceMovedEvent struct {
	BaseEvent
	Metadata EventMetadata
	UnitID   string
	From     core.Coordinate
	To       core.Coordinate
	Jump     bool
}

// NewPieceMovedEvent creates a new PieceMovedEvent
func NewPieceMovedEvent(gameID string, team core.Team, turn int, unitID string, from, to core.Coordinate, jump bool) *PieceMovedEvent {
	return &PieceMovedEvent{
		BaseEvent: newBase(TypePieceMoved, gameID),
		Metadata:  EventMetadata{Team: team, Turn: turn},
		UnitID:    unitID,
		From:      from,
		To:        to,
		Jump:      jump,
	}
}

// PieceCapturedEvent is published when a jumped unit leaves the board.
// Metadata.Team is the capturing team.
type PieceCapturedEvent struct {
	BaseEvent
	Metadata     EventMetadata
	CapturerID   string
	CapturedID   string
	CapturedTeam core.Team
	Position     core.Coordinate
}

// NewPieceCapturedEvent creates a new PieceCapturedEvent
func NewPieceCapturedEvent(gameID string, turn int, capturer, captured *core.Piece, at core.Coordinate) *PieceCapturedEvent {
	return &PieceCapturedEvent{
		BaseEvent:    newBase(TypePieceCaptured, gameID),
		Metadata:     EventMetadata{Team: capturer.Team(), Turn: turn},
		CapturerID:   capturer.ID(),
		CapturedID:   captured.ID(),
		CapturedTeam: captured.Team(),
		Position:     at,
	}
}

// UnitPromotedEvent is published when a unit reaches its king row
type UnitPromotedEvent struct {
	BaseEvent
	Metadata EventMetadata
	UnitID   string
	Position core.Coordinate
}

// NewUnitPromotedEvent creates a new UnitPromotedEvent
func NewUnitPromotedEvent(gameID string, turn int, unit *core.Piece) *UnitPromotedEvent {
	return &UnitPromotedEvent{
		BaseEvent: newBase(TypeUnitPromoted, gameID),
		Metadata:  EventMetadata{Team: unit.Team(), Turn: turn},
		UnitID:    unit.ID(),
		Position:  unit.Position(),
	}
}

// InputRejectedEvent is published when a controller ignores an input
type InputRejectedEvent struct {
	BaseEvent
	Metadata EventMetadata
	Input    core.Input
	Reason   string
}

// NewInputRejectedEvent creates a new InputRejectedEvent
func NewInputRejectedEvent(gameID string, team core.Team, turn int, input core.Input, reason string) *InputRejectedEvent {
	return &InputRejectedEvent{
		BaseEvent: newBase(TypeInputRejected, gameID),
		Metadata:  EventMetadata{Team: team, Turn: turn},
		Input:     input,
		Reason:    reason,
	}
}

// StateTransitionEvent is published when the match lifecycle changes phase
type StateTransitionEvent struct {
	BaseEvent
	FromState string
	ToState   string
	Reason    string
}

// NewStateTransitionEvent creates a new StateTransitionEvent
func NewStateTransitionEvent(gameID, from, to, reason string) *StateTransitionEvent {
	return &StateTransitionEvent{
		BaseEvent: newBase(TypeStateTransition, gameID),
		FromState: from,
		ToState:   to,
		Reason:    reason,
	}
}
