package subscribers

import (
	"encoding/json"

	"github.com/rs/zerolog"

	"github.com/mitchelldurbincs/checkers/internal/game/events"
)

// LoggerSubscriber logs events to structured logs
type LoggerSubscriber struct {
	id              string
	logger          zerolog.Logger
	logLevel        zerolog.Level
	eventTypeFilter map[string]bool // If non-nil, only log these event types
	devMode         bool            // If true, log full event details
}

// NewLoggerSubscriber creates a new logger subscriber
func NewLoggerSubscriber(id string, logger zerolog.Logger, logLevel zerolog.Level) *LoggerSubscriber {
	return &LoggerSubscriber{
		id:       id,
		logger:   logger.With().Str("subscriber", "event_logger").Logger(),
		logLevel: logLevel,
	}
}

// ID returns the subscriber's unique identifier
func (ls *LoggerSubscriber) ID() string {
	return ls.id
}

// SetEventFilter sets which event types to log (nil means log all)
func (ls *LoggerSubscriber) SetEventFilter(eventTypes []string) {
	if len(eventTypes) == 0 {
		ls.eventTypeFilter = nil
		return
	}

	ls.eventTypeFilter = make(map[string]bool)
	for _, eventType := range eventTypes {
		ls.eventTypeFilter[eventType] = true
	}
}

// SetDevMode enables or disables development mode logging
func (ls *LoggerSubscriber) SetDevMode(enabled bool) {
	ls.devMode = enabled
}

// InterestedIn returns true if the subscriber wants to receive this event type
func (ls *LoggerSubscriber) InterestedIn(eventType string) bool {
	if ls.eventTypeFilter == nil {
		return true
	}
	return ls.eventTypeFilter[eventType]
}

// HandleEvent processes an event by logging it
func (ls *LoggerSubscriber) HandleEvent(event events.Event) {
	eventLogger := ls.logger.With().
		Str("event_type", event.Type()).
		Str("game_id", event.GameID()).
		Time("timestamp", event.Timestamp()).
		Logger()

	level := ls.logLevel
	// Rejected input is noise outside of debugging
	if event.Type() == events.TypeInputRejected {
		level = zerolog.DebugLevel
	}
	logEvent := eventLogger.WithLevel(level)

	switch e := event.(type) {
	case *events.GameStartedEvent:
		logEvent.
			Int("rows", e.Rows).
			Int("columns", e.Columns).
			Int("dark_units", e.DarkUnits).
			Int("light_units", e.LightUnits)

	case *events.GameEndedEvent:
		logEvent.
			Stringer("winner", e.Winner).
			Bool("draw", e.Draw).
			Str("reason", e.Reason).
			Int("final_turn", e.FinalTurn).
			Dur("duration", e.Duration)

	case *events.PhaseChangedEvent:
		logEvent.
			Stringer("phase", e.Phase).
			Int("turn", e.Metadata.Turn)

	case *events.TurnEndedEvent:
		logEvent.
			Int("turn", e.Metadata.Turn).
			Int("quiet_turns_left", e.QuietTurnsLeft)

	case *events.UnitSelectedEvent:
		logEvent.
			Stringer("team", e.Metadata.Team).
			Str("unit_id", e.UnitID).
			Stringer("position", e.Position).
			Int("destinations", len(e.Destinations)).
			Bool("continuation", e.Continuation)

	case *events.UnitsSelectableEvent:
		logEvent.
			Stringer("team", e.Metadata.Team).
			Int("turn", e.Metadata.Turn).
			Int("selectable", len(e.Positions)).
			Bool("jump_forced", e.JumpForced)

	case *events.SelectionClearedEvent:
		logEvent.
			Stringer("team", e.Metadata.Team).
			Str("reason", e.Reason)

	case *events.PieceMovedEvent:
		logEvent.
			Stringer("team", e.Metadata.Team).
			Str("unit_id", e.UnitID).
			Int("from_x", e.From.X).
			Int("from_y", e.From.Y).
			Int("to_x", e.To.X).
			Int("to_y", e.To.Y).
			Bool("jump", e.Jump)

	case *events.PieceCapturedEvent:
		logEvent.
			Stringer("team", e.Metadata.Team).
			Str("capturer_id", e.CapturerID).
			Str("captured_id", e.CapturedID).
			Int("location_x", e.Position.X).
			Int("location_y", e.Position.Y)

	case *events.UnitPromotedEvent:
		logEvent.
			Stringer("team", e.Metadata.Team).
			Str("unit_id", e.UnitID).
			Stringer("position", e.Position)

	case *events.InputRejectedEvent:
		logEvent.
			Stringer("team", e.Metadata.Team).
			Bool("selected", e.Input.Selected).
			Stringer("position", e.Input.Position).
			Str("reason", e.Reason)

	case *events.StateTransitionEvent:
		logEvent.
			Str("from_state", e.FromState).
			Str("to_state", e.ToState).
			Str("reason", e.Reason)
	}

	// In dev mode, also log the full event as JSON
	if ls.devMode {
		if jsonData, err := json.Marshal(event); err == nil {
			logEvent.RawJSON("event_data", jsonData)
		}
	}

	logEvent.Msg("Game event")
}
