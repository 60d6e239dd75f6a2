package team

import "fmt"

// State is the selection state of a controller within its phase
type State int

const (
	// StateIdle has no unit selected
	StateIdle State = iota
	// StateSelected has a unit chosen and its destinations exposed
	StateSelected
	// StateContinuation is anchored to a unit that just jumped and can jump again
	StateContinuation
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateSelected:
		return "Selected"
	case StateContinuation:
		return "Continuation"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}
