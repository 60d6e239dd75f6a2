package core

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/mitchelldurbincs/checkers/internal/game/turns"
)

// Shade is the color of a terrain cell. Units carry ShadeNone.
type Shade int

const (
	ShadeNone Shade = iota
	ShadeDark
	ShadeLight
)

func (s Shade) String() string {
	switch s {
	case ShadeNone:
		return "None"
	case ShadeDark:
		return "Dark"
	case ShadeLight:
		return "Light"
	default:
		return fmt.Sprintf("Shade(%d)", int(s))
	}
}

// Piece is anything placed on the board: terrain cells and playing units alike.
// Layer, position and board binding are owned by the Board.
type Piece struct {
	id       string
	team     Team
	shade    Shade
	unit     *UnitProfile
	listener turns.Participant

	board    *Board
	layer    Layer
	position Coordinate
}

// NewPiece creates an unplaced piece with no movement profile
func NewPiece(team Team) *Piece {
	return &Piece{id: uuid.New().String(), team: team}
}

// NewTerrain creates an unplaced neutral terrain piece of the given shade
func NewTerrain(shade Shade) *Piece {
	p := NewPiece(TeamNone)
	p.shade = shade
	return p
}

// NewUnit creates an unplaced playing unit that moves toward forward
func NewUnit(team Team, forward int) *Piece {
	p := NewPiece(team)
	p.unit = NewUnitProfile(forward)
	return p
}

func (p *Piece) ID() string                  { return p.id }
func (p *Piece) Team() Team                  { return p.team }
func (p *Piece) Shade() Shade                { return p.shade }
func (p *Piece) Layer() Layer                { return p.layer }
func (p *Piece) Position() Coordinate        { return p.position }
func (p *Piece) Board() *Board               { return p.board }
func (p *Piece) OnBoard() bool               { return p.board != nil }
func (p *Piece) Unit() *UnitProfile          { return p.unit }
func (p *Piece) IsUnit() bool                { return p.unit != nil }
func (p *Piece) Listener() turns.Participant { return p.listener }

// SetListener attaches a turn participant that the board registers with its
// registry when the piece is placed
func (p *Piece) SetListener(l turns.Participant) { p.listener = l }

// IsOpponentOf reports whether both pieces belong to opposing playing teams
func (p *Piece) IsOpponentOf(other *Piece) bool {
	if p == nil || other == nil || p.team == TeamNone {
		return false
	}
	return other.team == p.team.Opponent()
}
