package team

import (
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mitchelldurbincs/checkers/internal/game/core"
	"github.com/mitchelldurbincs/checkers/internal/game/events"
	"github.com/mitchelldurbincs/checkers/internal/game/turns"
	"github.com/mitchelldurbincs/checkers/internal/testutil"
)

type recorder struct {
	events []events.Event
}

func (r *recorder) Publish(e events.Event) { r.events = append(r.events, e) }

func (r *recorder) count(eventType string) int {
	n := 0
	for _, e := range r.events {
		if e.Type() == eventType {
			n++
		}
	}
	return n
}

func (r *recorder) last(eventType string) events.Event {
	for i := len(r.events) - 1; i >= 0; i-- {
		if r.events[i].Type() == eventType {
			return r.events[i]
		}
	}
	return nil
}

// fakeArbiter removes captured units the way the match does
type fakeArbiter struct {
	board       *core.Board
	controllers map[core.Team]*Controller
	removed     []core.Coordinate
	immobilized []core.Team
	onRemove    func()
}

func (f *fakeArbiter) RemoveOpposingPiece(capturer *core.Piece, at core.Coordinate) error {
	victim := f.board.PieceAt(at, core.LayerUnits)
	if victim == nil || !capturer.IsOpponentOf(victim) {
		return errors.New("no opposing unit")
	}
	f.controllers[victim.Team()].RemoveUnit(victim)
	if err := f.board.RemovePiece(victim); err != nil {
		return err
	}
	f.removed = append(f.removed, at)
	if f.onRemove != nil {
		f.onRemove()
	}
	return nil
}

func (f *fakeArbiter) TeamImmobilized(team core.Team) {
	f.immobilized = append(f.immobilized, team)
}

type harness struct {
	board   *core.Board
	arbiter *fakeArbiter
	events  *recorder
	dark    *Controller
	light   *Controller
}

func newHarness(t *testing.T, opts ...func(*Options)) *harness {
	t.Helper()
	return newLoggedHarness(t, testutil.NopLogger(), opts...)
}

func newLoggedHarness(t *testing.T, logger zerolog.Logger, opts ...func(*Options)) *harness {
	t.Helper()
	h := &harness{
		board:  testutil.NewBoard(8, 8),
		events: &recorder{},
	}
	h.arbiter = &fakeArbiter{board: h.board, controllers: map[core.Team]*Controller{}}

	build := func(team core.Team, phase turns.Phase) *Controller {
		o := Options{
			Phase:              phase,
			EndTurnOnPromotion: true,
			GameID:             "test",
			Publisher:          h.events,
		}
		for _, fn := range opts {
			fn(&o)
		}
		c := NewController(logger, team, h.board, h.arbiter, o)
		h.arbiter.controllers[team] = c
		return c
	}
	h.dark = build(core.TeamDark, turns.PhaseMain)
	h.light = build(core.TeamLight, turns.PhaseReaction)
	return h
}

func (h *harness) controllerFor(team core.Team) *Controller {
	if team == core.TeamDark {
		return h.dark
	}
	return h.light
}

func (h *harness) place(t *testing.T, team core.Team, x, y int) *core.Piece {
	t.Helper()
	u := core.NewUnit(team, testutil.Forward(team))
	require.NoError(t, h.controllerFor(team).AddUnit(u))
	require.NoError(t, h.board.AddPiece(u, core.LayerUnits, core.NewCoordinate(x, y)))
	return u
}

func (h *harness) placeKing(t *testing.T, team core.Team, x, y int) *core.Piece {
	t.Helper()
	u := h.place(t, team, x, y)
	u.Unit().Promote()
	return u
}

func click(c *Controller, x, y int) bool {
	return c.HandleInput(core.SelectAt(x, y))
}

func at(x, y int) core.Coordinate { return core.NewCoordinate(x, y) }

func TestController_AddUnit(t *testing.T) {
	h := newHarness(t)

	assert.ErrorIs(t, h.dark.AddUnit(nil), ErrNilUnit)
	assert.ErrorIs(t, h.dark.AddUnit(core.NewPiece(core.TeamDark)), ErrNotAUnit)
	assert.ErrorIs(t, h.dark.AddUnit(core.NewUnit(core.TeamLight, -1)), ErrWrongTeam)

	u := core.NewUnit(core.TeamDark, 1)
	require.NoError(t, h.dark.AddUnit(u))
	require.NoError(t, h.dark.AddUnit(u))
	assert.Len(t, h.dark.Roster(), 1)
	assert.Same(t, h.dark, u.Listener())

	assert.True(t, h.dark.RemoveUnit(u))
	assert.False(t, h.dark.RemoveUnit(u))
	assert.Empty(t, h.dark.Roster())
}

func TestController_LockedUntilPhaseOpens(t *testing.T) {
	h := newHarness(t)
	h.place(t, core.TeamDark, 2, 2)

	assert.Equal(t, turns.PhaseMain, h.dark.ResponsePhase())
	assert.Equal(t, turns.PhaseReaction, h.light.ResponsePhase())
	assert.False(t, h.dark.IsUnlocked())
	assert.True(t, h.dark.IsReadyToAdvance())
	assert.False(t, click(h.dark, 2, 2))
	assert.Zero(t, h.events.count(events.TypeInputRejected), "locked input is dropped silently")
}

func TestController_PhaseOpenPublishesSelectable(t *testing.T) {
	h := newHarness(t)
	h.place(t, core.TeamDark, 2, 2)
	h.place(t, core.TeamDark, 4, 2)

	h.dark.OnPhaseOpen(3)

	assert.True(t, h.dark.IsUnlocked())
	assert.False(t, h.dark.IsReadyToAdvance())
	assert.Equal(t, 3, h.dark.Turn())

	e, ok := h.events.last(events.TypeUnitsSelectable).(*events.UnitsSelectableEvent)
	require.True(t, ok)
	assert.Equal(t, []core.Coordinate{at(2, 2), at(4, 2)}, e.Positions)
	assert.False(t, e.JumpForced)
	assert.Equal(t, core.TeamDark, e.Metadata.Team)
}

func TestController_SimpleMove(t *testing.T) {
	h := newHarness(t)
	u := h.place(t, core.TeamDark, 2, 2)
	h.dark.OnPhaseOpen(1)

	require.True(t, click(h.dark, 2, 2))
	assert.Equal(t, StateSelected, h.dark.State())
	assert.Same(t, u, h.dark.SelectedUnit())
	assert.ElementsMatch(t, []core.Coordinate{at(3, 3), at(1, 3)}, h.dark.Destinations())

	require.True(t, click(h.dark, 3, 3))

	assert.Equal(t, at(3, 3), u.Position())
	assert.Equal(t, StateIdle, h.dark.State())
	assert.Nil(t, h.dark.SelectedUnit())
	assert.False(t, h.dark.IsUnlocked())
	assert.True(t, h.dark.IsReadyToAdvance())

	moved, ok := h.events.last(events.TypePieceMoved).(*events.PieceMovedEvent)
	require.True(t, ok)
	assert.Equal(t, at(2, 2), moved.From)
	assert.Equal(t, at(3, 3), moved.To)
	assert.False(t, moved.Jump)

	cleared, ok := h.events.last(events.TypeSelectionCleared).(*events.SelectionClearedEvent)
	require.True(t, ok)
	assert.Equal(t, events.ClearedCommitted, cleared.Reason)
}

func TestController_RejectedSelections(t *testing.T) {
	h := newHarness(t)
	h.place(t, core.TeamDark, 2, 2)
	h.place(t, core.TeamDark, 0, 7) // no forward move left
	h.place(t, core.TeamLight, 6, 6)
	h.dark.OnPhaseOpen(1)

	tests := []struct {
		name   string
		input  core.Input
		reason string
	}{
		{"empty cell", core.SelectAt(5, 5), RejectNotOwnUnit},
		{"opponent unit", core.SelectAt(6, 6), RejectNotOwnUnit},
		{"immobile unit", core.SelectAt(0, 7), RejectNotMovable},
		{"off board", core.SelectAt(9, 9), RejectOffBoard},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.False(t, h.dark.HandleInput(tt.input))
			rejected, ok := h.events.last(events.TypeInputRejected).(*events.InputRejectedEvent)
			require.True(t, ok)
			assert.Equal(t, tt.reason, rejected.Reason)
			assert.Equal(t, StateIdle, h.dark.State())
		})
	}

	before := len(h.events.events)
	assert.False(t, h.dark.HandleInput(core.NoSelection))
	assert.Len(t, h.events.events, before, "off-grid clicks are not reported")
}

func TestController_SelectedRejectsNonTargets(t *testing.T) {
	h := newHarness(t)
	u := h.place(t, core.TeamDark, 2, 2)
	h.dark.OnPhaseOpen(1)
	require.True(t, click(h.dark, 2, 2))

	assert.False(t, click(h.dark, 2, 4), "straight ahead is not diagonal")
	assert.False(t, click(h.dark, 1, 1), "backward move for a non-king")
	assert.Equal(t, StateSelected, h.dark.State())
	assert.Equal(t, at(2, 2), u.Position())
}

func TestController_ReselectAndDeselect(t *testing.T) {
	h := newHarness(t)
	first := h.place(t, core.TeamDark, 2, 2)
	second := h.place(t, core.TeamDark, 6, 2)
	h.dark.OnPhaseOpen(1)

	require.True(t, click(h.dark, 2, 2))
	require.True(t, click(h.dark, 6, 2))
	assert.Same(t, second, h.dark.SelectedUnit())
	assert.ElementsMatch(t, []core.Coordinate{at(7, 3), at(5, 3)}, h.dark.Destinations())

	require.True(t, click(h.dark, 6, 2))
	assert.Equal(t, StateIdle, h.dark.State())
	assert.Equal(t, at(2, 2), first.Position())
	assert.True(t, h.dark.IsUnlocked(), "deselecting does not end the phase")
}

// Scenario: dark (2,2) jumps light (3,3) and lands on (4,4)
func TestController_JumpCapturesMidpoint(t *testing.T) {
	h := newHarness(t)
	jumper := h.place(t, core.TeamDark, 2, 2)
	victim := h.place(t, core.TeamLight, 3, 3)
	bystander := h.place(t, core.TeamLight, 7, 7)
	h.dark.OnPhaseOpen(1)

	require.True(t, h.dark.JumpForced())
	require.True(t, click(h.dark, 2, 2))
	assert.Equal(t, []core.Coordinate{at(4, 4)}, h.dark.Destinations())

	require.True(t, click(h.dark, 4, 4))

	assert.Equal(t, at(4, 4), jumper.Position())
	assert.False(t, victim.OnBoard())
	assert.Nil(t, h.board.PieceAt(at(3, 3), core.LayerUnits))
	assert.True(t, bystander.OnBoard(), "only the midpoint piece is removed")
	assert.Equal(t, []core.Coordinate{at(3, 3)}, h.arbiter.removed)
	assert.Equal(t, []*core.Piece{bystander}, h.light.Roster())
	assert.True(t, h.dark.IsReadyToAdvance())

	moved := h.events.last(events.TypePieceMoved).(*events.PieceMovedEvent)
	assert.True(t, moved.Jump)
}

func TestController_ForcedJumpLocksOtherUnits(t *testing.T) {
	h := newHarness(t)
	h.place(t, core.TeamDark, 2, 2)
	walker := h.place(t, core.TeamDark, 6, 0)
	h.place(t, core.TeamLight, 3, 3)
	h.dark.OnPhaseOpen(1)

	assert.Len(t, h.dark.SelectableUnits(), 1)
	assert.False(t, click(h.dark, 6, 0))
	rejected := h.events.last(events.TypeInputRejected).(*events.InputRejectedEvent)
	assert.Equal(t, RejectJumpForced, rejected.Reason)

	// The jumper may not take a simple step either
	require.True(t, click(h.dark, 2, 2))
	assert.False(t, click(h.dark, 1, 3))
	assert.False(t, click(h.dark, 6, 0), "switching to a unit without a jump is refused")
	assert.Equal(t, at(6, 0), walker.Position())
}

func TestController_JumpChain(t *testing.T) {
	h := newHarness(t)
	jumper := h.place(t, core.TeamDark, 0, 0)
	other := h.place(t, core.TeamDark, 6, 0)
	h.place(t, core.TeamLight, 1, 1)
	h.place(t, core.TeamLight, 3, 3)
	h.dark.OnPhaseOpen(1)

	require.True(t, click(h.dark, 0, 0))
	require.True(t, click(h.dark, 2, 2))

	// Anchored to the same unit, origin moved to the landing
	assert.Equal(t, StateContinuation, h.dark.State())
	assert.Same(t, jumper, h.dark.SelectedUnit())
	assert.Equal(t, []core.Coordinate{at(4, 4)}, h.dark.Destinations())
	assert.Equal(t, []*core.Piece{jumper}, h.dark.SelectableUnits())
	assert.False(t, h.dark.IsReadyToAdvance())

	assert.False(t, click(h.dark, 6, 0), "other units cannot interrupt a chain")
	assert.False(t, click(h.dark, 2, 2), "the jumper cannot be deselected mid-chain")
	assert.False(t, click(h.dark, 1, 3), "simple steps are not allowed mid-chain")
	rejected := h.events.last(events.TypeInputRejected).(*events.InputRejectedEvent)
	assert.Equal(t, RejectChainPending, rejected.Reason)

	require.True(t, click(h.dark, 4, 4))

	assert.Equal(t, at(4, 4), jumper.Position())
	assert.Equal(t, at(6, 0), other.Position())
	assert.Empty(t, h.light.Roster())
	assert.Equal(t, StateIdle, h.dark.State())
	assert.True(t, h.dark.IsReadyToAdvance())

	cleared := h.events.last(events.TypeSelectionCleared).(*events.SelectionClearedEvent)
	assert.Equal(t, events.ClearedChainEnded, cleared.Reason)
}

// Scenario: a simple move onto the king row promotes before the phase is ready
func TestController_PromotionOnSimpleMove(t *testing.T) {
	h := newHarness(t)
	u := h.place(t, core.TeamDark, 2, 6)
	h.dark.OnPhaseOpen(1)

	require.Len(t, u.Unit().LegalDirections(), 2)
	require.True(t, click(h.dark, 2, 6))
	require.True(t, click(h.dark, 3, 7))

	assert.True(t, u.Unit().IsKing())
	assert.Len(t, u.Unit().LegalDirections(), 4)
	assert.True(t, h.dark.IsReadyToAdvance())

	promoted, ok := h.events.last(events.TypeUnitPromoted).(*events.UnitPromotedEvent)
	require.True(t, ok)
	assert.Equal(t, u.ID(), promoted.UnitID)
	assert.Equal(t, at(3, 7), promoted.Position)
}

func TestController_LightPromotesOnRowZero(t *testing.T) {
	h := newHarness(t)
	u := h.place(t, core.TeamLight, 3, 1)
	h.light.OnPhaseOpen(1)

	require.True(t, click(h.light, 3, 1))
	require.True(t, click(h.light, 2, 0))

	assert.True(t, u.Unit().IsKing())
}

func TestController_PromotionMidChain(t *testing.T) {
	tests := []struct {
		name         string
		endOnPromote bool
		wantState    State
		wantReady    bool
	}{
		{"ends the turn by default", true, StateIdle, true},
		{"continues when allowed", false, StateContinuation, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t, func(o *Options) { o.EndTurnOnPromotion = tt.endOnPromote })
			jumper := h.place(t, core.TeamDark, 3, 5)
			h.place(t, core.TeamLight, 4, 6)
			h.place(t, core.TeamLight, 6, 6)
			h.dark.OnPhaseOpen(1)

			require.True(t, click(h.dark, 3, 5))
			require.True(t, click(h.dark, 5, 7))

			assert.True(t, jumper.Unit().IsKing())
			assert.Equal(t, tt.wantState, h.dark.State())
			assert.Equal(t, tt.wantReady, h.dark.IsReadyToAdvance())
			if tt.wantState == StateContinuation {
				// The new backward diagonals open a jump over (6,6)
				assert.Equal(t, []core.Coordinate{at(7, 5)}, h.dark.Destinations())
			}
		})
	}
}

func TestController_KingJumpsBackward(t *testing.T) {
	h := newHarness(t)
	king := h.placeKing(t, core.TeamLight, 4, 2)
	h.place(t, core.TeamDark, 5, 3)
	h.light.OnPhaseOpen(1)

	require.True(t, click(h.light, 4, 2))
	assert.Equal(t, []core.Coordinate{at(6, 4)}, h.light.Destinations())
	require.True(t, click(h.light, 6, 4))
	assert.Equal(t, at(6, 4), king.Position())
	assert.Empty(t, h.dark.Roster())
}

// Scenario: no legal action at phase open reports the team immobilized
func TestController_ImmobilizedAtPhaseOpen(t *testing.T) {
	h := newHarness(t)
	h.place(t, core.TeamDark, 0, 7)
	h.place(t, core.TeamLight, 3, 3)

	h.dark.OnPhaseOpen(4)

	assert.Equal(t, []core.Team{core.TeamDark}, h.arbiter.immobilized)
	assert.False(t, h.dark.IsUnlocked())
	assert.Nil(t, h.dark.SelectableUnits())
	assert.Zero(t, h.events.count(events.TypeUnitsSelectable))
}

func TestController_EmptyRosterIsImmobilized(t *testing.T) {
	h := newHarness(t)
	h.light.OnPhaseOpen(1)
	assert.Equal(t, []core.Team{core.TeamLight}, h.arbiter.immobilized)
}

func TestController_Cooldown(t *testing.T) {
	h := newHarness(t, func(o *Options) { o.SelectionCooldown = 500 * time.Millisecond })
	u := h.place(t, core.TeamDark, 2, 2)
	h.dark.OnPhaseOpen(1)

	require.True(t, click(h.dark, 2, 2))
	assert.Equal(t, 500*time.Millisecond, h.dark.CooldownRemaining())

	assert.False(t, click(h.dark, 3, 3))
	rejected := h.events.last(events.TypeInputRejected).(*events.InputRejectedEvent)
	assert.Equal(t, RejectCooldown, rejected.Reason)

	h.dark.OnTick(300 * time.Millisecond)
	assert.False(t, click(h.dark, 3, 3))

	h.dark.OnTick(300 * time.Millisecond)
	assert.Zero(t, h.dark.CooldownRemaining())
	require.True(t, click(h.dark, 3, 3))
	assert.Equal(t, at(3, 3), u.Position())
	assert.Equal(t, 500*time.Millisecond, h.dark.CooldownRemaining(), "commits restart the cooldown")
}

func TestController_Interrupted(t *testing.T) {
	h := newHarness(t)
	u := h.place(t, core.TeamDark, 2, 2)
	h.dark.OnPhaseOpen(1)
	require.True(t, click(h.dark, 2, 2))

	h.dark.OnInterrupted()

	assert.Equal(t, StateIdle, h.dark.State())
	assert.False(t, h.dark.IsUnlocked())
	assert.True(t, h.dark.IsReadyToAdvance())
	assert.False(t, click(h.dark, 3, 3))
	assert.Equal(t, at(2, 2), u.Position(), "interruption does not touch the board")

	cleared := h.events.last(events.TypeSelectionCleared).(*events.SelectionClearedEvent)
	assert.Equal(t, events.ClearedInterrupted, cleared.Reason)

	// Reopening the phase starts clean
	h.dark.OnPhaseOpen(1)
	assert.True(t, click(h.dark, 2, 2))
}

func TestController_InterruptedChainResumes(t *testing.T) {
	setup := func(t *testing.T) (*harness, *core.Piece) {
		h := newHarness(t)
		jumper := h.place(t, core.TeamDark, 0, 0)
		h.place(t, core.TeamDark, 6, 0)
		h.place(t, core.TeamLight, 1, 1)
		h.place(t, core.TeamLight, 3, 3)
		h.place(t, core.TeamLight, 5, 1)
		h.dark.OnPhaseOpen(1)
		require.True(t, click(h.dark, 0, 0))
		require.True(t, click(h.dark, 2, 2))
		require.Equal(t, StateContinuation, h.dark.State())
		return h, jumper
	}

	t.Run("same turn reopens the chain", func(t *testing.T) {
		h, jumper := setup(t)

		h.dark.OnInterrupted()
		assert.Equal(t, StateIdle, h.dark.State())
		assert.False(t, h.dark.IsUnlocked())

		h.dark.OnPhaseOpen(1)
		assert.Equal(t, StateContinuation, h.dark.State())
		assert.Same(t, jumper, h.dark.SelectedUnit())
		assert.Equal(t, []*core.Piece{jumper}, h.dark.SelectableUnits())
		assert.False(t, h.dark.IsReadyToAdvance())

		selectable := h.events.last(events.TypeUnitsSelectable).(*events.UnitsSelectableEvent)
		assert.Equal(t, []core.Coordinate{at(2, 2)}, selectable.Positions)

		assert.False(t, click(h.dark, 6, 0), "another jumper cannot take over the chain")
		assert.False(t, click(h.dark, 2, 2), "the chain cannot be abandoned")
		require.True(t, click(h.dark, 4, 4))
		assert.True(t, h.dark.IsReadyToAdvance())
	})

	t.Run("a later turn starts clean", func(t *testing.T) {
		h, _ := setup(t)

		h.dark.OnInterrupted()
		h.dark.OnPhaseOpen(2)
		assert.Equal(t, StateIdle, h.dark.State())
		assert.True(t, click(h.dark, 6, 0))
	})

	t.Run("removed jumper drops the chain", func(t *testing.T) {
		h, jumper := setup(t)

		h.dark.OnInterrupted()
		require.True(t, h.dark.RemoveUnit(jumper))
		require.NoError(t, h.board.RemovePiece(jumper))
		h.dark.OnPhaseOpen(1)
		assert.Equal(t, StateIdle, h.dark.State())
		assert.True(t, click(h.dark, 6, 0))
	})
}

func TestController_StaleJumpAbortsBeforeMutation(t *testing.T) {
	logger, logs := testutil.BufferLogger()
	h := newLoggedHarness(t, logger)
	jumper := h.place(t, core.TeamDark, 2, 2)
	victim := h.place(t, core.TeamLight, 3, 3)
	h.dark.OnPhaseOpen(1)
	require.True(t, click(h.dark, 2, 2))

	// Pull the capture target out from under the cached jump
	require.NoError(t, h.board.RemovePiece(victim))

	assert.False(t, click(h.dark, 4, 4))
	assert.Equal(t, at(2, 2), jumper.Position())
	assert.Nil(t, h.board.PieceAt(at(4, 4), core.LayerUnits))
	assert.Empty(t, h.arbiter.removed)
	assert.False(t, h.dark.IsReadyToAdvance())
	assert.ElementsMatch(t, []core.Coordinate{at(3, 3), at(1, 3)}, h.dark.Destinations(),
		"destinations are recomputed from the live board")
	assert.Contains(t, logs.String(), `"level":"error"`)
	assert.Contains(t, logs.String(), ErrCaptureMissing.Error())
}

func TestController_CaptureEndingMatchStopsChain(t *testing.T) {
	h := newHarness(t)
	h.place(t, core.TeamDark, 0, 0)
	h.place(t, core.TeamLight, 1, 1)
	h.arbiter.onRemove = func() { h.dark.Halt() }
	h.dark.OnPhaseOpen(1)

	require.True(t, click(h.dark, 0, 0))
	require.True(t, click(h.dark, 2, 2))

	assert.Equal(t, StateIdle, h.dark.State())
	assert.False(t, h.dark.IsUnlocked())
	assert.Zero(t, h.events.count(events.TypeUnitPromoted))
}

func TestController_RemovingSelectedUnitClearsSelection(t *testing.T) {
	h := newHarness(t)
	u := h.place(t, core.TeamDark, 2, 2)
	h.dark.OnPhaseOpen(1)
	require.True(t, click(h.dark, 2, 2))

	h.dark.RemoveUnit(u)
	assert.Equal(t, StateIdle, h.dark.State())
	assert.Empty(t, h.dark.Destinations())
}

func TestController_UnitPositions(t *testing.T) {
	h := newHarness(t)
	h.place(t, core.TeamLight, 1, 7)
	h.place(t, core.TeamLight, 3, 7)
	assert.Equal(t, []core.Coordinate{at(1, 7), at(3, 7)}, h.light.UnitPositions())
	assert.Equal(t, core.TeamLight, h.light.Team())
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "Idle", StateIdle.String())
	assert.Equal(t, "Selected", StateSelected.String())
	assert.Equal(t, "Continuation", StateContinuation.String())
	assert.Equal(t, "State(7)", State(7).String())
}
