package game

import "errors"

var (
	ErrNotRunning      = errors.New("match is not running")
	ErrNotPaused       = errors.New("match is not paused")
	ErrNoOpposingUnit  = errors.New("no opposing unit at capture position")
	ErrInvalidTeam     = errors.New("placement needs a playing team")
	ErrSetupOutOfOrder = errors.New("match must be reset before it can be set up again")
)

// Reasons attached to GameEndedEvent
const (
	ReasonImmobilized = "no legal action"
	ReasonNoUnits     = "no units left"
	ReasonDraw        = "quiet turn limit reached"
)
