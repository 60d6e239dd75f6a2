package core

import (
	"github.com/rs/zerolog"

	"github.com/mitchelldurbincs/checkers/internal/game/turns"
)

// ParticipantRegistry receives the turn listeners attached to pieces as they
// enter and leave the board. A listener shared by several pieces stays
// registered until the last of them leaves. *turns.Broadcaster satisfies it.
type ParticipantRegistry interface {
	Register(p turns.Participant)
	Unregister(p turns.Participant)
}

// Board is the occupancy model for a rows x columns grid. Every layer holds at
// most one piece per cell. All placement and movement goes through Board.
type Board struct {
	rows, columns int
	initialized   bool

	pieces []*Piece // placement order
	cells  map[Layer]map[Coordinate]*Piece

	registry ParticipantRegistry
	logger   zerolog.Logger
}

// NewBoard creates an uninitialized board. Initialize must be called before use.
func NewBoard(logger zerolog.Logger) *Board {
	return &Board{
		logger: logger.With().Str("component", "Board").Logger(),
	}
}

// SetRegistry sets where piece listeners are registered on placement
func (b *Board) SetRegistry(r ParticipantRegistry) {
	b.registry = r
}

// Initialize resets the board to an empty rows x columns grid.
// Dimensions below 1 are clamped to 1. Pieces from a previous game are unbound.
func (b *Board) Initialize(rows, columns int) {
	if rows < 1 {
		rows = 1
	}
	if columns < 1 {
		columns = 1
	}

	for i := len(b.pieces) - 1; i >= 0; i-- {
		p := b.pieces[i]
		b.pieces = b.pieces[:i]
		p.board = nil
		b.unsubscribe(p)
	}

	b.rows = rows
	b.columns = columns
	b.pieces = make([]*Piece, 0, rows*columns)
	b.cells = make(map[Layer]map[Coordinate]*Piece, len(Layers))
	for _, l := range Layers {
		b.cells[l] = make(map[Coordinate]*Piece)
	}
	b.initialized = true

	b.logger.Debug().Int("rows", rows).Int("columns", columns).Msg("Board initialized")
}

func (b *Board) IsInitialized() bool { return b.initialized }
func (b *Board) Rows() int           { return b.rows }
func (b *Board) Columns() int        { return b.columns }

// InBounds checks if a position lies within [0,columns) x [0,rows)
func (b *Board) InBounds(pos Coordinate) bool {
	return b.initialized && pos.IsValid(b.columns, b.rows)
}

// AddPiece places piece on layer at pos. The piece is left untouched when the
// position is off the board, the piece is already placed, or the cell is taken.
func (b *Board) AddPiece(piece *Piece, layer Layer, pos Coordinate) error {
	if !b.initialized {
		b.logger.Warn().Msg("Board isn't initialized. Ignoring AddPiece")
		return ErrBoardNotInitialized
	}
	if piece == nil {
		b.logger.Warn().Msg("Ignoring AddPiece for nil piece")
		return ErrNilPiece
	}

	log := b.logger.With().
		Str("piece_id", piece.id).
		Str("layer", layer.String()).
		Stringer("position", pos).
		Logger()

	switch {
	case !b.InBounds(pos):
		log.Debug().Msg("Cannot add piece outside the grid")
		return ErrOutOfBounds
	case b.Contains(piece):
		log.Debug().Stringer("current", piece.position).Msg("Cannot add piece already on the board")
		return ErrPieceAlreadyPlaced
	case piece.board != nil:
		log.Debug().Stringer("current", piece.position).Msg("Cannot add piece placed on another board")
		return ErrPieceAlreadyPlaced
	case b.cellsFor(layer) == nil:
		log.Debug().Msg("Cannot add piece to undefined layer")
		return ErrOutOfBounds
	case b.IsOccupied(pos, layer):
		log.Debug().Msg("Cannot add piece to occupied cell")
		return ErrCellOccupied
	}

	piece.board = b
	piece.layer = layer
	piece.position = pos
	b.cells[layer][pos] = piece
	b.pieces = append(b.pieces, piece)
	b.subscribe(piece)

	log.Debug().Str("team", piece.team.String()).Msg("Piece added")
	return nil
}

// RemovePiece takes a piece off the board. It is a no-op for pieces that are
// not on this board.
func (b *Board) RemovePiece(piece *Piece) error {
	if !b.initialized {
		b.logger.Warn().Msg("Board not initialized. Ignoring RemovePiece")
		return ErrBoardNotInitialized
	}
	if !b.Contains(piece) {
		return nil
	}

	delete(b.cells[piece.layer], piece.position)
	for i, p := range b.pieces {
		if p == piece {
			b.pieces = append(b.pieces[:i], b.pieces[i+1:]...)
			break
		}
	}
	b.unsubscribe(piece)
	piece.board = nil

	b.logger.Debug().
		Str("piece_id", piece.id).
		Stringer("position", piece.position).
		Msg("Piece removed")
	return nil
}

// MovePiece relocates a placed piece within its layer
func (b *Board) MovePiece(piece *Piece, to Coordinate) error {
	if !b.initialized {
		b.logger.Warn().Msg("Board not initialized. Ignoring MovePiece")
		return ErrBoardNotInitialized
	}
	if !b.Contains(piece) {
		return ErrPieceNotOnBoard
	}
	if piece.position == to {
		return nil
	}
	if !b.InBounds(to) {
		return ErrOutOfBounds
	}
	if b.IsOccupied(to, piece.layer) {
		return ErrCellOccupied
	}

	from := piece.position
	delete(b.cells[piece.layer], from)
	b.cells[piece.layer][to] = piece
	piece.position = to

	b.logger.Debug().
		Str("piece_id", piece.id).
		Stringer("from", from).
		Stringer("to", to).
		Msg("Piece moved")
	return nil
}

// Contains reports whether piece is currently placed on this board
func (b *Board) Contains(piece *Piece) bool {
	if !b.initialized || piece == nil || piece.board != b {
		return false
	}
	return b.cells[piece.layer][piece.position] == piece
}

// IsOccupied reports whether any piece sits at pos on layer
func (b *Board) IsOccupied(pos Coordinate, layer Layer) bool {
	return b.PieceAt(pos, layer) != nil
}

// PieceAt returns the piece at pos on layer, or nil
func (b *Board) PieceAt(pos Coordinate, layer Layer) *Piece {
	if !b.initialized {
		b.logger.Warn().Msg("Board not initialized. No positions exist")
		return nil
	}
	return b.cellsFor(layer)[pos]
}

// PiecesAt returns every piece at pos across all layers, Units first
func (b *Board) PiecesAt(pos Coordinate) []*Piece {
	if !b.initialized {
		b.logger.Warn().Msg("Board not initialized. No pieces to return")
		return nil
	}
	var out []*Piece
	for _, l := range Layers {
		if p := b.cells[l][pos]; p != nil {
			out = append(out, p)
		}
	}
	return out
}

// PiecesInLayer returns the pieces of one layer in placement order
func (b *Board) PiecesInLayer(layer Layer) []*Piece {
	if !b.initialized {
		b.logger.Warn().Msg("Board not initialized. No pieces to return")
		return nil
	}
	var out []*Piece
	for _, p := range b.pieces {
		if p.layer == layer {
			out = append(out, p)
		}
	}
	return out
}

// Pieces returns every placed piece in placement order
func (b *Board) Pieces() []*Piece {
	out := make([]*Piece, len(b.pieces))
	copy(out, b.pieces)
	return out
}

func (b *Board) cellsFor(layer Layer) map[Coordinate]*Piece {
	return b.cells[layer]
}

func (b *Board) subscribe(p *Piece) {
	if b.registry != nil && p.listener != nil {
		b.registry.Register(p.listener)
	}
}

// unsubscribe drops p's listener once no other placed piece shares it.
// p must already be out of b.pieces.
func (b *Board) unsubscribe(p *Piece) {
	if b.registry == nil || p.listener == nil {
		return
	}
	for _, other := range b.pieces {
		if other.listener == p.listener {
			return
		}
	}
	b.registry.Unregister(p.listener)
}
