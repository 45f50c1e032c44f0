package tictactoe

import (
	"testing"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMakeTurn(t *testing.T) {
	t.Run("Applies a valid move and passes the turn", func(t *testing.T) {
		// Given: a new game
		game := entity.NewGame(entity.FriendlyType)

		// When: X plays the center
		err := MakeTurn(game, entity.PlayerX, entity.Move{Row: 1, Col: 1})

		// Then: the board holds X and it is O's turn
		require.NoError(t, err)
		assert.Equal(t, entity.PlayerX, game.Board.At(entity.Move{Row: 1, Col: 1}))
		assert.Equal(t, entity.PlayerO, game.Turn)
		assert.Equal(t, entity.StatusOngoing, game.Status)
	})

	t.Run("Error on cell already occupied", func(t *testing.T) {
		// Given: a game with X at the center
		game := entity.NewGame(entity.FriendlyType)
		require.NoError(t, MakeTurn(game, entity.PlayerX, entity.Move{Row: 1, Col: 1}))
		before := *game

		// When: O targets the same cell
		err := MakeTurn(game, entity.PlayerO, entity.Move{Row: 1, Col: 1})

		// Then: ErrCellOccupied is returned and nothing changed
		require.ErrorIs(t, err, apperror.ErrCellOccupied)
		assert.Equal(t, before, *game)
	})

	t.Run("Error on playing out of turn", func(t *testing.T) {
		// Given: a new game where X moves first
		game := entity.NewGame(entity.FriendlyType)

		// When: O tries to move first
		err := MakeTurn(game, entity.PlayerO, entity.Move{Row: 0, Col: 0})

		// Then: ErrNotYourTurn is returned
		require.ErrorIs(t, err, apperror.ErrNotYourTurn)
		assert.Equal(t, entity.Board{}, game.Board)
	})

	t.Run("Error on out-of-range move", func(t *testing.T) {
		// Given: a new game
		game := entity.NewGame(entity.FriendlyType)

		// When: X plays outside the grid
		err := MakeTurn(game, entity.PlayerX, entity.Move{Row: 3, Col: 0})

		// Then: ErrOutOfRange is returned
		require.ErrorIs(t, err, apperror.ErrOutOfRange)
	})

	t.Run("Error on finished game", func(t *testing.T) {
		// Given: a finished game
		game := entity.NewGame(entity.FriendlyType)
		game.Status = entity.StatusFinished

		// When: anyone tries to move
		err := MakeTurn(game, entity.PlayerX, entity.Move{Row: 0, Col: 0})

		// Then: ErrGameFinished is returned
		require.ErrorIs(t, err, apperror.ErrGameFinished)
	})

	t.Run("Winning move finishes the game", func(t *testing.T) {
		// Given: X about to complete the top row
		game := entity.NewGame(entity.FriendlyType)
		game.Board = entity.Board{
			entity.PlayerX, entity.PlayerX, entity.EmptyCell,
			entity.PlayerO, entity.PlayerO, entity.EmptyCell,
			entity.EmptyCell, entity.EmptyCell, entity.EmptyCell,
		}

		// When: X completes the row
		err := MakeTurn(game, entity.PlayerX, entity.Move{Row: 0, Col: 2})

		// Then: the game is finished with X as winner
		require.NoError(t, err)
		assert.Equal(t, entity.StatusFinished, game.Status)
		assert.Equal(t, entity.PlayerX, game.Winner)
		assert.Empty(t, game.Turn)
	})

	t.Run("Last move without a line is a tie", func(t *testing.T) {
		// Given: one empty cell left and no winning line possible
		game := entity.NewGame(entity.FriendlyType)
		game.Board = entity.Board{
			entity.PlayerX, entity.PlayerO, entity.PlayerX,
			entity.PlayerX, entity.PlayerO, entity.PlayerO,
			entity.PlayerO, entity.PlayerX, entity.EmptyCell,
		}

		// When: X fills the last cell
		err := MakeTurn(game, entity.PlayerX, entity.Move{Row: 2, Col: 2})

		// Then: the game ends as a tie
		require.NoError(t, err)
		assert.Equal(t, entity.StatusFinished, game.Status)
		assert.Equal(t, entity.PlayerTie, game.Winner)
	})
}

func TestValidateMove(t *testing.T) {
	t.Run("Valid move passes", func(t *testing.T) {
		// Given: a new game
		game := entity.NewGame(entity.FriendlyType)

		// When: validating X's first move
		err := ValidateMove(game, entity.PlayerX, entity.Move{Row: 0, Col: 0})

		// Then: no error, and the board is untouched
		require.NoError(t, err)
		assert.Equal(t, entity.Board{}, game.Board)
	})

	t.Run("Rejects out-of-range coordinates", func(t *testing.T) {
		game := entity.NewGame(entity.FriendlyType)

		for _, move := range []entity.Move{{Row: -1, Col: 0}, {Row: 0, Col: -1}, {Row: 3, Col: 1}, {Row: 1, Col: 3}} {
			err := ValidateMove(game, entity.PlayerX, move)
			require.ErrorIs(t, err, apperror.ErrOutOfRange, "move %v", move)
		}
	})

	t.Run("Rejects occupied cell", func(t *testing.T) {
		game := entity.NewGame(entity.FriendlyType)
		require.NoError(t, MakeTurn(game, entity.PlayerX, entity.Move{Row: 0, Col: 0}))

		err := ValidateMove(game, entity.PlayerO, entity.Move{Row: 0, Col: 0})
		require.ErrorIs(t, err, apperror.ErrCellOccupied)
	})
}
