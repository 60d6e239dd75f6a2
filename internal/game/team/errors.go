package team

import "errors"

var (
	ErrNilUnit        = errors.New("nil unit")
	ErrNotAUnit       = errors.New("piece has no movement profile")
	ErrWrongTeam      = errors.New("unit belongs to another team")
	ErrCaptureMissing = errors.New("no opposing unit between jump origin and landing")
)

// Reasons attached to rejected input
const (
	RejectCooldown     = "cooldown"
	RejectOffBoard     = "off board"
	RejectNotOwnUnit   = "no own unit at position"
	RejectNotMovable   = "unit has no legal move"
	RejectJumpForced   = "another unit must jump"
	RejectNotTarget    = "not a legal destination"
	RejectChainPending = "jump chain must continue"
	RejectMoveFailed   = "board refused the move"
)
