package states

import "fmt"

// GamePhase represents the lifecycle phase of a match. It is unrelated to
// the turn phases handed out by the broadcaster.
type GamePhase int

const (
	// PhaseInitializing - Match object creation
	PhaseInitializing GamePhase = iota

	// PhaseReady - Board laid out, rosters filled
	PhaseReady

	// PhaseRunning - Turns are being broadcast
	PhaseRunning

	// PhasePaused - Broadcaster interrupted
	PhasePaused

	// PhaseEnded - Winner or draw decided
	PhaseEnded

	// PhaseError - Setup or invariant failure
	PhaseError

	// PhaseReset - Tear down the match before setting it up again
	PhaseReset
)

var phaseNames = map[GamePhase]string{
	PhaseInitializing: "Initializing",
	PhaseReady:        "Ready",
	PhaseRunning:      "Running",
	PhasePaused:       "Paused",
	PhaseEnded:        "Ended",
	PhaseError:        "Error",
	PhaseReset:        "Reset",
}

// String returns the string representation of a GamePhase
func (p GamePhase) String() string {
	if name, ok := phaseNames[p]; ok {
		return name
	}
	return fmt.Sprintf("Unknown(%d)", int(p))
}

// IsTerminal returns true if the phase represents a terminal state
func (p GamePhase) IsTerminal() bool {
	return p == PhaseEnded || p == PhaseError
}

// CanReceiveInput returns true if controllers may process input in this phase
func (p GamePhase) CanReceiveInput() bool {
	return p == PhaseRunning
}

// AllowedTransitions returns the valid phases this phase can transition to
func (p GamePhase) AllowedTransitions() []GamePhase {
	switch p {
	case PhaseInitializing:
		return []GamePhase{PhaseReady, PhaseError}
	case PhaseReady:
		return []GamePhase{PhaseRunning, PhaseReset, PhaseError}
	case PhaseRunning:
		return []GamePhase{PhasePaused, PhaseEnded, PhaseReset, PhaseError}
	case PhasePaused:
		return []GamePhase{PhaseRunning, PhaseEnded, PhaseReset, PhaseError}
	case PhaseEnded, PhaseError:
		return []GamePhase{PhaseReset}
	case PhaseReset:
		return []GamePhase{PhaseInitializing}
	default:
		return []GamePhase{}
	}
}

// CanTransitionTo checks if a transition from this phase to the target phase is allowed
func (p GamePhase) CanTransitionTo(target GamePhase) bool {
	for _, phase := range p.AllowedTransitions() {
		if phase == target {
			return true
		}
	}
	return false
}

// ParsePhase converts a string to a GamePhase
func ParsePhase(s string) (GamePhase, error) {
	for p, name := range phaseNames {
		if name == s {
			return p, nil
		}
	}
	return PhaseInitializing, fmt.Errorf("unknown game phase %q", s)
}
