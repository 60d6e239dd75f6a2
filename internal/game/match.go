package game

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/mitchelldurbincs/checkers/internal/config"
	"github.com/mitchelldurbincs/checkers/internal/game/core"
	"github.com/mitchelldurbincs/checkers/internal/game/events"
	"github.com/mitchelldurbincs/checkers/internal/game/rules"
	"github.com/mitchelldurbincs/checkers/internal/game/states"
	"github.com/mitchelldurbincs/checkers/internal/game/team"
	"github.com/mitchelldurbincs/checkers/internal/game/turns"
)

// Match is the top-level session. It owns the board, the turn broadcaster,
// both team controllers, the event bus and the lifecycle state machine, and
// it arbitrates everything that crosses team boundaries.
//
// Match is driven from a single goroutine: HandleInput, Tick and the
// lifecycle calls must not run concurrently.
type Match struct {
	logger zerolog.Logger
	root   zerolog.Logger
	cfg    *config.Config
	gameID string

	board       *core.Board
	broadcaster *turns.Broadcaster
	bus         *events.EventBus
	sm          *states.StateMachine
	drawCounter *rules.DrawCounter

	dark  *team.Controller
	light *team.Controller

	placements []Placement
}

// Placement puts one unit on a specific cell instead of the default layout
type Placement struct {
	Team     core.Team
	Position core.Coordinate
	King     bool
}

// Option customizes a Match
type Option func(*Match)

// WithGameID overrides the generated match ID
func WithGameID(id string) Option {
	return func(m *Match) { m.gameID = id }
}

// WithPlacements replaces the starting rows layout with an explicit list
func WithPlacements(placements ...Placement) Option {
	return func(m *Match) {
		m.placements = append([]Placement(nil), placements...)
	}
}

// NewMatch wires a match from a copy of cfg. A nil cfg uses the defaults.
// The match starts in PhaseInitializing; call Setup and then Start.
func NewMatch(cfg *config.Config, logger zerolog.Logger, opts ...Option) *Match {
	if cfg == nil {
		cfg = config.Default()
	}
	own := *cfg
	cfg = &own
	m := &Match{cfg: cfg}
	for _, opt := range opts {
		opt(m)
	}
	if m.gameID == "" {
		m.gameID = uuid.NewString()
	}
	m.root = logger
	m.logger = logger.With().
		Str("component", "Match").
		Str("game_id", m.gameID).
		Logger()

	m.bus = events.NewEventBus(logger)
	m.broadcaster = turns.NewBroadcaster(logger, turns.DefaultPhases...)
	m.broadcaster.AddObserver(m)

	m.board = core.NewBoard(logger)
	m.board.SetRegistry(m.broadcaster)

	m.sm = states.NewStateMachine(states.NewGameContext(m.gameID, logger), m.bus)
	m.drawCounter = rules.NewDrawCounter(logger, cfg.Game.Rules.DrawTurns)

	m.dark = m.newController(logger, core.TeamDark, turns.PhaseMain)
	m.light = m.newController(logger, core.TeamLight, turns.PhaseReaction)

	// Any capture or promotion restarts the quiet turn count
	m.bus.SubscribeFunc(events.TypePieceCaptured, m.resetDrawCounter)
	m.bus.SubscribeFunc(events.TypeUnitPromoted, m.resetDrawCounter)

	return m
}

func (m *Match) newController(logger zerolog.Logger, t core.Team, phase turns.Phase) *team.Controller {
	return team.NewController(logger, t, m.board, m, team.Options{
		Phase:              phase,
		SelectionCooldown:  m.cfg.Game.Input.SelectionCooldown,
		EndTurnOnPromotion: m.cfg.Game.Rules.EndTurnOnPromotion,
		GameID:             m.gameID,
		Publisher:          m.bus,
	})
}

// Start opens turn 1. The match must be Ready.
func (m *Match) Start() error {
	if err := m.sm.TransitionTo(states.PhaseRunning, "Match started"); err != nil {
		return fmt.Errorf("start match: %w", err)
	}

	ctx := m.sm.GetContext()
	m.bus.Publish(events.NewGameStartedEvent(m.gameID, m.board.Rows(), m.board.Columns(), ctx.DarkUnits, ctx.LightUnits))
	m.logger.Info().
		Int("dark_units", ctx.DarkUnits).
		Int("light_units", ctx.LightUnits).
		Msg("Match started")

	// Opening the first phase may already decide the match
	if err := m.broadcaster.Start(); err != nil {
		m.fail(err)
		return fmt.Errorf("start turn cycle: %w", err)
	}
	return nil
}

// HandleInput routes in to the team whose phase is open. It reports whether
// the input changed anything.
func (m *Match) HandleInput(in core.Input) bool {
	if !m.sm.CurrentPhase().CanReceiveInput() {
		return false
	}
	c := m.ActiveController()
	if c == nil {
		return false
	}
	return c.HandleInput(in)
}

// Tick advances cooldowns by dt and lets the broadcaster move past finished phases
func (m *Match) Tick(dt time.Duration) {
	if m.sm.CurrentPhase() != states.PhaseRunning {
		return
	}
	m.dark.OnTick(dt)
	m.light.OnTick(dt)
	m.broadcaster.Advance()
}

// Pause interrupts the open phase. Selections are dropped; the board is untouched.
func (m *Match) Pause() error {
	if m.sm.CurrentPhase() != states.PhaseRunning {
		return ErrNotRunning
	}
	if err := m.sm.TransitionTo(states.PhasePaused, "Paused"); err != nil {
		return fmt.Errorf("pause match: %w", err)
	}
	m.broadcaster.Interrupt()
	return nil
}

// Resume reopens the phase that was interrupted by Pause
func (m *Match) Resume() error {
	if m.sm.CurrentPhase() != states.PhasePaused {
		return ErrNotPaused
	}
	if err := m.sm.TransitionTo(states.PhaseRunning, "Resumed"); err != nil {
		return fmt.Errorf("resume match: %w", err)
	}
	if err := m.broadcaster.Resume(); err != nil {
		m.fail(err)
		return fmt.Errorf("resume turn cycle: %w", err)
	}
	return nil
}

// Reset clears the board and both rosters and returns the match to
// PhaseInitializing so Setup can run again
func (m *Match) Reset() error {
	m.broadcaster.Reset()
	m.clearRosters()
	// Reinitializing unbinds every piece and unregisters both controllers
	if m.board.IsInitialized() {
		m.board.Initialize(m.board.Rows(), m.board.Columns())
	}
	m.drawCounter = rules.NewDrawCounter(m.root, m.cfg.Game.Rules.DrawTurns)

	if err := m.sm.Reset("Match reset"); err != nil {
		return fmt.Errorf("reset match: %w", err)
	}
	m.logger.Info().Msg("Match reset")
	return nil
}

// ApplyConfig takes a reloaded configuration. Input pacing and the kinging
// policy apply immediately; board layout and the draw threshold apply on the
// next Setup.
func (m *Match) ApplyConfig(cfg *config.Config) {
	if cfg == nil {
		return
	}
	own := *cfg
	m.cfg = &own
	for _, c := range m.controllers() {
		c.SetRules(cfg.Game.Input.SelectionCooldown, cfg.Game.Rules.EndTurnOnPromotion)
	}
	m.logger.Info().
		Dur("selection_cooldown", cfg.Game.Input.SelectionCooldown).
		Bool("end_turn_on_promotion", cfg.Game.Rules.EndTurnOnPromotion).
		Msg("Configuration applied")
}

// RemoveOpposingPiece implements team.Arbiter. Capturing the last unit of a
// team ends the match in the capturer's favor.
func (m *Match) RemoveOpposingPiece(capturer *core.Piece, at core.Coordinate) error {
	victim := m.board.PieceAt(at, core.LayerUnits)
	if victim == nil || !capturer.IsOpponentOf(victim) {
		return fmt.Errorf("%w at %s", ErrNoOpposingUnit, at)
	}

	owner := m.ControllerFor(victim.Team())
	owner.RemoveUnit(victim)
	if err := m.board.RemovePiece(victim); err != nil {
		return fmt.Errorf("remove captured unit: %w", err)
	}
	m.syncCounts()

	m.bus.Publish(events.NewPieceCapturedEvent(m.gameID, m.broadcaster.CurrentTurn(), capturer, victim, at))

	if len(owner.Roster()) == 0 {
		m.endGame(rules.Outcome{Winner: capturer.Team()}, ReasonNoUnits, m.broadcaster.CurrentTurn())
	}
	return nil
}

// TeamImmobilized implements team.Arbiter
func (m *Match) TeamImmobilized(t core.Team) {
	m.endGame(rules.WinnerByImmobility(t), ReasonImmobilized, m.broadcaster.CurrentTurn())
}

// PhaseOpened implements turns.Observer
func (m *Match) PhaseOpened(phase turns.Phase, turn int) {
	e := events.NewPhaseChangedEvent(m.gameID, phase, turn)
	if c := m.controllerForPhase(phase); c != nil {
		e.Metadata.Team = c.Team()
	}
	m.bus.Publish(e)
}

// TurnEnded implements turns.Observer
func (m *Match) TurnEnded(turn int) {
	drawn := m.drawCounter.TurnPassed()
	m.bus.Publish(events.NewTurnEndedEvent(m.gameID, turn, m.drawCounter.Remaining()))
	if drawn {
		m.endGame(rules.Outcome{Draw: true}, ReasonDraw, turn)
	}
}

func (m *Match) resetDrawCounter(events.Event) {
	m.drawCounter.Reset()
}

func (m *Match) endGame(outcome rules.Outcome, reason string, finalTurn int) {
	if m.IsOver() {
		return
	}

	ctx := m.sm.GetContext()
	ctx.Winner = outcome.Winner
	ctx.Draw = outcome.Draw

	for _, c := range m.controllers() {
		c.Halt()
	}
	m.broadcaster.Stop()

	if err := m.sm.TransitionTo(states.PhaseEnded, reason); err != nil {
		m.logger.Error().Err(err).Str("reason", reason).Msg("Failed to end match")
		return
	}

	m.bus.Publish(events.NewGameEndedEvent(
		m.gameID,
		outcome.Winner,
		outcome.Draw,
		reason,
		finalTurn,
		ctx.GetElapsedTime(),
	))
	m.logger.Info().
		Stringer("outcome", outcome).
		Str("reason", reason).
		Int("turn", finalTurn).
		Msg("Match decided")
}

// fail records err and moves the match to PhaseError
func (m *Match) fail(err error) {
	m.broadcaster.Stop()
	m.sm.GetContext().Error = err
	if tErr := m.sm.TransitionTo(states.PhaseError, err.Error()); tErr != nil {
		m.logger.Error().Err(tErr).Msg("Failed to enter error state")
	}
}

func (m *Match) clearRosters() {
	for _, c := range m.controllers() {
		c.Halt()
		for _, u := range c.Roster() {
			c.RemoveUnit(u)
		}
	}
}

func (m *Match) syncCounts() {
	ctx := m.sm.GetContext()
	ctx.DarkUnits = len(m.dark.Roster())
	ctx.LightUnits = len(m.light.Roster())
}

func (m *Match) controllers() []*team.Controller {
	return []*team.Controller{m.dark, m.light}
}

func (m *Match) controllerForPhase(phase turns.Phase) *team.Controller {
	for _, c := range m.controllers() {
		if c.ResponsePhase() == phase {
			return c
		}
	}
	return nil
}

// ControllerFor returns the controller of t, nil for TeamNone
func (m *Match) ControllerFor(t core.Team) *team.Controller {
	switch t {
	case core.TeamDark:
		return m.dark
	case core.TeamLight:
		return m.light
	default:
		return nil
	}
}

// ActiveController returns the controller currently accepting input, if any
func (m *Match) ActiveController() *team.Controller {
	for _, c := range m.controllers() {
		if c.IsUnlocked() {
			return c
		}
	}
	return nil
}

// Result returns the outcome so far
func (m *Match) Result() rules.Outcome {
	ctx := m.sm.GetContext()
	return rules.Outcome{Winner: ctx.Winner, Draw: ctx.Draw}
}

// IsOver reports whether the match has been decided
func (m *Match) IsOver() bool { return m.sm.CurrentPhase() == states.PhaseEnded }

func (m *Match) ID() string                      { return m.gameID }
func (m *Match) Board() *core.Board              { return m.board }
func (m *Match) Bus() *events.EventBus           { return m.bus }
func (m *Match) Broadcaster() *turns.Broadcaster { return m.broadcaster }
func (m *Match) Phase() states.GamePhase         { return m.sm.CurrentPhase() }
func (m *Match) History() []states.Transition    { return m.sm.GetHistory() }
func (m *Match) QuietTurnsLeft() int             { return m.drawCounter.Remaining() }
func (m *Match) Turn() int                       { return m.broadcaster.CurrentTurn() }
