package gobblet

import "errors"

// Rejections returned by Engine. None of them changes the game state; the
// caller decides how to show them.
var (
	ErrNotYourPiece         = errors.New("visible piece here is not yours")
	ErrNotPlaceableAnywhere = errors.New("the piece you attempt to pick is not placeable to the board")
	ErrWrongBoard           = errors.New("you can place the piece only to the center board")
	ErrReturnToOrigin       = errors.New("you can not place the piece back to the cell where it came from")
	ErrCellOccupied         = errors.New("this cell is occupied")
	ErrGameComplete         = errors.New("game is already over")
	ErrWrongPhase           = errors.New("action does not match the current phase")
)
