package core

import "errors"

var (
	ErrBoardNotInitialized = errors.New("board not initialized")
	ErrOutOfBounds         = errors.New("position is off the board")
	ErrPieceAlreadyPlaced  = errors.New("piece already on the board")
	ErrPieceNotOnBoard     = errors.New("piece not on the board")
	ErrCellOccupied        = errors.New("position already occupied on layer")
	ErrNilPiece            = errors.New("nil piece")
)
