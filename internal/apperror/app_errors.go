package apperror

import "errors"

var (
	ErrGameFinished       = errors.New("game is already finished")
	ErrGameIsNotStarted   = errors.New("game is not started")
	ErrOutOfBounds        = errors.New("coordinate is out of board bounds")
	ErrCellAlreadyShot    = errors.New("cell has already been shot")
	ErrInvalidPlacement   = errors.New("ship can't be placed here")
	ErrShipAlreadyPlaced  = errors.New("ship is already placed")
	ErrPlacementExhausted = errors.New("no room left to place the fleet")
	ErrInputClosed        = errors.New("input is closed")
	ErrResultNotFound     = errors.New("match result not found")
)
