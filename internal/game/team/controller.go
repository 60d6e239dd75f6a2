package team

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/mitchelldurbincs/checkers/internal/common"
	"github.com/mitchelldurbincs/checkers/internal/game/core"
	"github.com/mitchelldurbincs/checkers/internal/game/events"
	"github.com/mitchelldurbincs/checkers/internal/game/rules"
	"github.com/mitchelldurbincs/checkers/internal/game/turns"
)

// Arbiter is the match-level collaborator a controller reports to. It owns
// the opposing roster, so captures go through it.
type Arbiter interface {
	// RemoveOpposingPiece takes the unit at the given cell off the board and
	// out of its team's roster
	RemoveOpposingPiece(capturer *core.Piece, at core.Coordinate) error
	// TeamImmobilized is called when team opens its phase without a legal action
	TeamImmobilized(team core.Team)
}

// Options configures a Controller
type Options struct {
	// Phase is the broadcaster phase this team answers
	Phase turns.Phase
	// SelectionCooldown is how long input is ignored after a selection or commit
	SelectionCooldown time.Duration
	// EndTurnOnPromotion ends a jump chain as soon as the jumper is kinged
	EndTurnOnPromotion bool
	// GameID tags published events
	GameID string
	// Publisher receives controller events. nil drops them.
	Publisher events.Publisher
}

// Controller enforces the rules for one team and holds its turn-local state.
// It is a turns.Participant: the broadcaster unlocks it once per turn.
type Controller struct {
	logger    zerolog.Logger
	team      core.Team
	board     *core.Board
	arbiter   Arbiter
	publisher events.Publisher
	gameID    string
	phase     turns.Phase

	roster []*core.Piece

	mobility rules.Mobility
	state    State
	selected *core.Piece
	targets  []core.Coordinate

	unlocked bool
	turnOver bool
	turn     int

	// A chain cut short by an interrupt, resumed when the same turn reopens
	pendingChain *core.Piece
	pendingTurn  int

	cooldown           time.Duration
	cooldownLeft       time.Duration
	endTurnOnPromotion bool
}

// NewController creates a locked controller for team. It does nothing until
// the broadcaster opens its phase.
func NewController(logger zerolog.Logger, team core.Team, board *core.Board, arbiter Arbiter, opts Options) *Controller {
	publisher := opts.Publisher
	if publisher == nil {
		publisher = events.NopPublisher{}
	}
	return &Controller{
		logger: logger.With().
			Str("component", "TeamController").
			Stringer("team", team).
			Logger(),
		team:               team,
		board:              board,
		arbiter:            arbiter,
		publisher:          publisher,
		gameID:             opts.GameID,
		phase:              opts.Phase,
		turnOver:           true,
		cooldown:           opts.SelectionCooldown,
		endTurnOnPromotion: opts.EndTurnOnPromotion,
	}
}

// SetRules updates the tunable rules. It takes effect on the next selection.
func (c *Controller) SetRules(cooldown time.Duration, endTurnOnPromotion bool) {
	c.cooldown = cooldown
	c.endTurnOnPromotion = endTurnOnPromotion
}

// AddUnit adds unit to the roster and makes this controller its turn
// listener. Call it before placing the unit so the board registers the
// controller. Adding a tracked unit again is a no-op.
func (c *Controller) AddUnit(unit *core.Piece) error {
	switch {
	case unit == nil:
		return ErrNilUnit
	case !unit.IsUnit():
		return ErrNotAUnit
	case unit.Team() != c.team:
		return ErrWrongTeam
	}
	if c.Tracks(unit) {
		return nil
	}
	unit.SetListener(c)
	c.roster = append(c.roster, unit)
	return nil
}

// RemoveUnit drops unit from the roster. It reports whether the unit was tracked.
func (c *Controller) RemoveUnit(unit *core.Piece) bool {
	for i, u := range c.roster {
		if u != unit {
			continue
		}
		c.roster = append(c.roster[:i], c.roster[i+1:]...)
		if c.pendingChain == unit {
			c.pendingChain = nil
		}
		if c.selected == unit {
			c.clearSelection(events.ClearedDeselected)
		}
		return true
	}
	return false
}

// Tracks reports whether unit is in the roster
func (c *Controller) Tracks(unit *core.Piece) bool {
	for _, u := range c.roster {
		if u == unit {
			return true
		}
	}
	return false
}

// ResponsePhase implements turns.Participant
func (c *Controller) ResponsePhase() turns.Phase { return c.phase }

// IsReadyToAdvance implements turns.Participant. It is true once a move or a
// finished jump chain has been committed.
func (c *Controller) IsReadyToAdvance() bool { return c.turnOver }

// OnPhaseOpen implements turns.Participant. It recomputes the team's options
// and unlocks input, or reports the team immobilized. Reopening the turn a
// jump chain was interrupted in puts the jumper straight back into its chain.
func (c *Controller) OnPhaseOpen(turn int) {
	chain := c.pendingChain
	resumed := chain != nil && c.pendingTurn == turn
	c.pendingChain = nil

	c.turn = turn
	c.clearSelection(events.ClearedPhaseOpened)
	c.recompute()

	if resumed {
		c.resumeChain(chain)
		return
	}

	if !c.mobility.HasMoves() {
		c.logger.Info().
			Int("turn", turn).
			Int("units", len(c.roster)).
			Msg("No legal action, team immobilized")
		c.unlocked = false
		c.turnOver = false
		if c.arbiter != nil {
			c.arbiter.TeamImmobilized(c.team)
		}
		return
	}

	c.unlocked = true
	c.turnOver = false

	selectable := c.mobility.Selectable()
	c.logger.Debug().
		Int("turn", turn).
		Int("selectable", len(selectable)).
		Bool("jump_forced", c.mobility.JumpForced()).
		Msg("Phase opened")
	c.publisher.Publish(events.NewUnitsSelectableEvent(c.gameID, c.team, turn, positionsOf(selectable), c.mobility.JumpForced()))
}

// OnInterrupted implements turns.Participant. It locks input and drops the
// selection without touching the board. A pending jump chain is remembered
// so the jumper keeps it when the phase reopens.
func (c *Controller) OnInterrupted() {
	if c.state == StateContinuation {
		c.pendingChain = c.selected
		c.pendingTurn = c.turn
	}
	c.clearSelection(events.ClearedInterrupted)
	c.unlocked = false
	c.turnOver = true
}

func (c *Controller) resumeChain(unit *core.Piece) {
	if options, _ := c.mobility.Options(unit); !options.HasJumps() {
		c.logger.Warn().
			Str("unit_id", unit.ID()).
			Stringer("position", unit.Position()).
			Msg("Interrupted chain has no jump left, ending turn")
		c.finishTurn(events.ClearedChainEnded)
		return
	}

	c.unlocked = true
	c.turnOver = false
	c.logger.Debug().
		Int("turn", c.turn).
		Str("unit_id", unit.ID()).
		Msg("Jump chain resumed")
	c.publisher.Publish(events.NewUnitsSelectableEvent(c.gameID, c.team, c.turn, positionsOf([]*core.Piece{unit}), true))
	c.selectUnit(unit, true)
}

// Halt locks the controller for good once the match is decided
func (c *Controller) Halt() {
	c.pendingChain = nil
	c.clearSelection(events.ClearedHalted)
	c.unlocked = false
	c.turnOver = true
}

// OnTick advances the input cooldown by dt
func (c *Controller) OnTick(dt time.Duration) {
	if c.cooldownLeft <= 0 {
		return
	}
	c.cooldownLeft -= dt
	if c.cooldownLeft < 0 {
		c.cooldownLeft = 0
	}
}

// HandleInput feeds one selection into the state machine. It reports whether
// the input changed anything. Inputs while locked or off the grid are ignored
// silently; everything else that is refused publishes input.rejected.
func (c *Controller) HandleInput(in core.Input) bool {
	if !in.Selected || !c.unlocked {
		return false
	}
	if c.cooldownLeft > 0 {
		return c.reject(in, RejectCooldown)
	}
	if !c.board.InBounds(in.Position) {
		return c.reject(in, RejectOffBoard)
	}

	switch c.state {
	case StateIdle:
		return c.trySelect(in)

	case StateSelected:
		if in.Position == c.selected.Position() {
			c.clearSelection(events.ClearedDeselected)
			c.startCooldown()
			return true
		}
		if containsCoordinate(c.targets, in.Position) {
			return c.commit(in)
		}
		// Switching to another movable unit is allowed until something is committed
		if other := c.ownUnitAt(in.Position); other != nil && c.mobility.IsSelectable(other) {
			c.selectUnit(other, false)
			return true
		}
		return c.reject(in, RejectNotTarget)

	case StateContinuation:
		if containsCoordinate(c.targets, in.Position) {
			return c.commit(in)
		}
		return c.reject(in, RejectChainPending)
	}
	return false
}

func (c *Controller) trySelect(in core.Input) bool {
	unit := c.ownUnitAt(in.Position)
	if unit == nil {
		return c.reject(in, RejectNotOwnUnit)
	}
	if !c.mobility.IsSelectable(unit) {
		if _, movable := c.mobility.Options(unit); movable && c.mobility.JumpForced() {
			return c.reject(in, RejectJumpForced)
		}
		return c.reject(in, RejectNotMovable)
	}
	c.selectUnit(unit, false)
	return true
}

func (c *Controller) selectUnit(unit *core.Piece, continuation bool) {
	c.selected = unit
	c.targets = c.mobility.Targets(unit)
	c.state = StateSelected
	if continuation {
		c.state = StateContinuation
	}
	c.startCooldown()

	c.logger.Debug().
		Str("unit_id", unit.ID()).
		Stringer("position", unit.Position()).
		Int("destinations", len(c.targets)).
		Bool("continuation", continuation).
		Msg("Unit selected")
	c.publisher.Publish(events.NewUnitSelectedEvent(c.gameID, c.team, c.turn, unit, c.Destinations(), continuation))
}

func (c *Controller) commit(in core.Input) bool {
	unit := c.selected
	options, _ := c.mobility.Options(unit)
	if jump, ok := options.JumpTo(in.Position); ok {
		return c.commitJump(in, unit, jump)
	}
	return c.commitStep(in, unit)
}

func (c *Controller) commitStep(in core.Input, unit *core.Piece) bool {
	from := unit.Position()
	if err := c.board.MovePiece(unit, in.Position); err != nil {
		c.logger.Error().Err(err).
			Stringer("from", from).
			Stringer("to", in.Position).
			Msg("Board refused a legal step")
		c.recompute()
		return c.reject(in, RejectMoveFailed)
	}
	c.publisher.Publish(events.NewPieceMovedEvent(c.gameID, c.team, c.turn, unit.ID(), from, in.Position, false))

	c.promoteIfNeeded(unit)
	c.finishTurn(events.ClearedCommitted)
	return true
}

func (c *Controller) commitJump(in core.Input, unit *core.Piece, jump rules.Jump) bool {
	from := unit.Position()

	// The cached jump must still describe the board before anything moves
	captured := c.board.PieceAt(jump.Captured, core.LayerUnits)
	if captured == nil || !unit.IsOpponentOf(captured) ||
		common.DiagonalDistance(from, jump.Landing) != 2 || from.Midpoint(jump.Landing) != jump.Captured {
		c.logger.Error().Err(ErrCaptureMissing).
			Str("unit_id", unit.ID()).
			Stringer("from", from).
			Stringer("landing", jump.Landing).
			Stringer("captured", jump.Captured).
			Msg("Jump aborted, capture target missing")
		c.recompute()
		c.targets = c.mobility.Targets(unit)
		return c.reject(in, RejectMoveFailed)
	}

	if err := c.board.MovePiece(unit, jump.Landing); err != nil {
		c.logger.Error().Err(err).
			Stringer("from", from).
			Stringer("to", jump.Landing).
			Msg("Board refused a legal jump")
		c.recompute()
		return c.reject(in, RejectMoveFailed)
	}
	c.publisher.Publish(events.NewPieceMovedEvent(c.gameID, c.team, c.turn, unit.ID(), from, jump.Landing, true))

	if c.arbiter != nil {
		if err := c.arbiter.RemoveOpposingPiece(unit, jump.Captured); err != nil {
			c.logger.Error().Err(err).
				Stringer("captured", jump.Captured).
				Msg("Failed to remove captured unit")
		}
	}
	// Capturing the last opposing unit ends the match from inside the arbiter
	if !c.unlocked {
		return true
	}

	promoted := c.promoteIfNeeded(unit)
	c.recompute()

	if promoted && c.endTurnOnPromotion {
		c.finishTurn(events.ClearedChainEnded)
		return true
	}
	if options, _ := c.mobility.Options(unit); options.HasJumps() {
		c.selectUnit(unit, true)
		return true
	}
	c.finishTurn(events.ClearedChainEnded)
	return true
}

func (c *Controller) promoteIfNeeded(unit *core.Piece) bool {
	if !rules.ShouldPromote(c.board, unit) || !unit.Unit().Promote() {
		return false
	}
	c.logger.Info().
		Str("unit_id", unit.ID()).
		Stringer("position", unit.Position()).
		Msg("Unit promoted")
	c.publisher.Publish(events.NewUnitPromotedEvent(c.gameID, c.turn, unit))
	return true
}

func (c *Controller) finishTurn(reason string) {
	c.clearSelection(reason)
	c.unlocked = false
	c.turnOver = true
	c.startCooldown()
}

func (c *Controller) clearSelection(reason string) {
	if c.state == StateIdle && c.selected == nil {
		return
	}
	c.selected = nil
	c.targets = nil
	c.state = StateIdle
	c.publisher.Publish(events.NewSelectionClearedEvent(c.gameID, c.team, c.turn, reason))
}

func (c *Controller) startCooldown() {
	c.cooldownLeft = c.cooldown
}

func (c *Controller) recompute() {
	c.mobility = rules.AnalyzeTeam(c.board, c.roster)
}

func (c *Controller) reject(in core.Input, reason string) bool {
	c.logger.Debug().
		Stringer("position", in.Position).
		Stringer("state", c.state).
		Str("reason", reason).
		Msg("Input rejected")
	c.publisher.Publish(events.NewInputRejectedEvent(c.gameID, c.team, c.turn, in, reason))
	return false
}

func (c *Controller) ownUnitAt(pos core.Coordinate) *core.Piece {
	piece := c.board.PieceAt(pos, core.LayerUnits)
	if piece == nil || piece.Team() != c.team || !c.Tracks(piece) {
		return nil
	}
	return piece
}

func (c *Controller) Team() core.Team                  { return c.team }
func (c *Controller) State() State                     { return c.state }
func (c *Controller) SelectedUnit() *core.Piece        { return c.selected }
func (c *Controller) IsUnlocked() bool                 { return c.unlocked }
func (c *Controller) Turn() int                        { return c.turn }
func (c *Controller) CooldownRemaining() time.Duration { return c.cooldownLeft }

// JumpForced reports whether a jump is mandatory this phase
func (c *Controller) JumpForced() bool { return c.mobility.JumpForced() }

// Destinations returns the cells the selected unit may commit to
func (c *Controller) Destinations() []core.Coordinate {
	out := make([]core.Coordinate, len(c.targets))
	copy(out, c.targets)
	return out
}

// SelectableUnits returns the units input may pick right now. It is empty
// while locked and holds only the jumper during a chain.
func (c *Controller) SelectableUnits() []*core.Piece {
	switch {
	case !c.unlocked:
		return nil
	case c.state == StateContinuation:
		return []*core.Piece{c.selected}
	default:
		return c.mobility.Selectable()
	}
}

// Roster returns the tracked units in insertion order
func (c *Controller) Roster() []*core.Piece {
	out := make([]*core.Piece, len(c.roster))
	copy(out, c.roster)
	return out
}

// UnitPositions returns the position of every tracked unit in roster order
func (c *Controller) UnitPositions() []core.Coordinate {
	return positionsOf(c.roster)
}

func positionsOf(pieces []*core.Piece) []core.Coordinate {
	out := make([]core.Coordinate, 0, len(pieces))
	for _, p := range pieces {
		out = append(out, p.Position())
	}
	return out
}

func containsCoordinate(list []core.Coordinate, pos core.Coordinate) bool {
	for _, c := range list {
		if c == pos {
			return true
		}
	}
	return false
}
