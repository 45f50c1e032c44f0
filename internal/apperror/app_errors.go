package apperror

import "errors"

var (
	ErrGameFinished      = errors.New("game is already finished")
	ErrNotYourTurn       = errors.New("it's not your turn")
	ErrOutOfRange        = errors.New("move is out of range")
	ErrCellOccupied      = errors.New("cell is already occupied")
	ErrNoMovesAvailable  = errors.New("no available moves")
	ErrUnknownDifficulty = errors.New("unknown difficulty")
)
