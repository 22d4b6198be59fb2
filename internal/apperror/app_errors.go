package apperror

import "errors"

var (
	ErrGameFinished   = errors.New("game is already finished")
	ErrNotYourTurn    = errors.New("it's not your turn")
	ErrCellOccupied   = errors.New("cell is already occupied")
	ErrOutOfRange     = errors.New("move is out of range")
	ErrMalformedInput = errors.New("move is not a number")
	ErrInputClosed    = errors.New("input stream closed")
)
