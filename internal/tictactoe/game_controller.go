package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

func MakeTurn(gameInstance *entity.Game, player string, move entity.Move) error {
	if gameInstance.IsFinished() {
		return apperror.ErrGameFinished
	}

	if err := ValidateMove(gameInstance, player, move); err != nil {
		return fmt.Errorf("invalid turn: %w", err)
	}

	gameInstance.Board[move.Index()] = player
	updateGameStatus(gameInstance, player)

	return nil
}

// ValidateMove - checks if the move is valid without applying it.
func ValidateMove(gameInstance *entity.Game, playerTurn string, move entity.Move) error {
	if !move.InBounds() {
		return fmt.Errorf("%w: row %d, col %d", apperror.ErrOutOfRange, move.Row, move.Col)
	}

	if gameInstance.Turn != playerTurn {
		return apperror.ErrNotYourTurn
	}

	if gameInstance.Board.At(move) != entity.EmptyCell {
		return apperror.ErrCellOccupied
	}

	return nil
}

// updateGameStatus - checks the game status after a move.
func updateGameStatus(gameInstance *entity.Game, player string) {
	switch winner := gameInstance.Board.DetermineResult(); winner {
	case entity.PlayerX, entity.PlayerO:
		gameInstance.Winner = winner
		gameInstance.Status = entity.StatusFinished
		gameInstance.Turn = ""
	case entity.PlayerTie:
		gameInstance.Winner = entity.PlayerTie
		gameInstance.Status = entity.StatusFinished
		gameInstance.Turn = ""
	default:
		gameInstance.Turn = entity.OpponentOf(player)
	}
}
