package states

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/mitchelldurbincs/checkers/internal/game/events"
)

var (
	ErrInvalidTransition = errors.New("invalid transition")
	ErrNoStateForPhase   = errors.New("no state implementation for phase")
)

// State represents a match state with lifecycle callbacks
type State interface {
	// Phase returns the GamePhase this state represents
	Phase() GamePhase

	// Enter is called when transitioning into this state
	Enter(ctx *GameContext) error

	// Exit is called when transitioning out of this state
	Exit(ctx *GameContext) error

	// Validate checks if the state is valid given the context
	Validate(ctx *GameContext) error
}

// Transition represents a state transition in the history
type Transition struct {
	From      GamePhase
	To        GamePhase
	Timestamp time.Time
	Reason    string
}

// StateMachine manages match state transitions and history
type StateMachine struct {
	mu             sync.RWMutex
	currentPhase   GamePhase
	states         map[GamePhase]State
	context        *GameContext
	history        []Transition
	maxHistorySize int
	publisher      events.Publisher
}

// NewStateMachine creates a new state machine. publisher may be nil.
func NewStateMachine(ctx *GameContext, publisher events.Publisher) *StateMachine {
	sm := &StateMachine{
		currentPhase:   PhaseInitializing,
		states:         make(map[GamePhase]State),
		context:        ctx,
		history:        make([]Transition, 0, 16),
		maxHistorySize: 1000,
		publisher:      publisher,
	}

	sm.registerDefaultStates()

	return sm
}

func (sm *StateMachine) registerDefaultStates() {
	sm.RegisterState(NewInitializingState())
	sm.RegisterState(NewReadyState())
	sm.RegisterState(NewRunningState())
	sm.RegisterState(NewPausedState())
	sm.RegisterState(NewEndedState())
	sm.RegisterState(NewErrorState())
	sm.RegisterState(NewResetState())
}

// RegisterState registers a state implementation
func (sm *StateMachine) RegisterState(state State) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.states[state.Phase()] = state
}

// CurrentPhase returns the current lifecycle phase
func (sm *StateMachine) CurrentPhase() GamePhase {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	return sm.currentPhase
}

// TransitionTo attempts to transition to the specified phase. The
// state.transition event is published after the lock is released so
// subscribers may query the machine.
func (sm *StateMachine) TransitionTo(targetPhase GamePhase, reason string) error {
	from, err := sm.transition(targetPhase, reason)
	if err != nil {
		return err
	}

	if sm.publisher != nil {
		sm.publisher.Publish(events.NewStateTransitionEvent(
			sm.context.GameID,
			from.String(),
			targetPhase.String(),
			reason,
		))
	}

	sm.context.Logger.Info().
		Str("from_phase", from.String()).
		Str("to_phase", targetPhase.String()).
		Str("reason", reason).
		Msg("State transition completed")

	return nil
}

func (sm *StateMachine) transition(targetPhase GamePhase, reason string) (GamePhase, error) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	previousPhase := sm.currentPhase
	if !previousPhase.CanTransitionTo(targetPhase) {
		return previousPhase, fmt.Errorf("%w from %s to %s", ErrInvalidTransition, previousPhase, targetPhase)
	}

	currentState, hasCurrentState := sm.states[previousPhase]
	targetState, hasTargetState := sm.states[targetPhase]
	if !hasTargetState {
		return previousPhase, fmt.Errorf("%w %s", ErrNoStateForPhase, targetPhase)
	}

	if err := targetState.Validate(sm.context); err != nil {
		return previousPhase, fmt.Errorf("target state validation failed: %w", err)
	}

	if hasCurrentState {
		if err := currentState.Exit(sm.context); err != nil {
			sm.context.Logger.Error().
				Err(err).
				Str("from_phase", previousPhase.String()).
				Str("to_phase", targetPhase.String()).
				Msg("Error exiting state")
			// Continue with transition despite exit error
		}
	}

	sm.currentPhase = targetPhase
	if err := targetState.Enter(sm.context); err != nil {
		sm.currentPhase = previousPhase
		return previousPhase, fmt.Errorf("failed to enter state %s: %w", targetPhase, err)
	}

	sm.addToHistory(Transition{
		From:      previousPhase,
		To:        targetPhase,
		Timestamp: time.Now(),
		Reason:    reason,
	})
	return previousPhase, nil
}

// addToHistory adds a transition to the history, maintaining max size
func (sm *StateMachine) addToHistory(transition Transition) {
	sm.history = append(sm.history, transition)

	if len(sm.history) > sm.maxHistorySize {
		sm.history = sm.history[len(sm.history)-sm.maxHistorySize:]
	}
}

// GetHistory returns a copy of the transition history
func (sm *StateMachine) GetHistory() []Transition {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	history := make([]Transition, len(sm.history))
	copy(history, sm.history)
	return history
}

// GetContext returns the game context
func (sm *StateMachine) GetContext() *GameContext {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	return sm.context
}

// CanTransitionTo checks if a transition to the target phase is allowed
func (sm *StateMachine) CanTransitionTo(targetPhase GamePhase) bool {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	return sm.currentPhase.CanTransitionTo(targetPhase)
}

// Reset walks the machine through PhaseReset back to PhaseInitializing and
// clears the history. It is a no-op while already initializing.
func (sm *StateMachine) Reset(reason string) error {
	if sm.CurrentPhase() == PhaseInitializing {
		return nil
	}
	if err := sm.TransitionTo(PhaseReset, reason); err != nil {
		return err
	}
	if err := sm.TransitionTo(PhaseInitializing, reason); err != nil {
		return err
	}

	sm.mu.Lock()
	sm.history = sm.history[:0]
	sm.mu.Unlock()
	return nil
}
