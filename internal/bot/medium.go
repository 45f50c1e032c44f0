package bot

import (
	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

var (
	center = entity.Move{Row: 1, Col: 1}

	// row-major so the fallback order is reproducible
	corners = []entity.Move{{Row: 0, Col: 0}, {Row: 0, Col: 2}, {Row: 2, Col: 0}, {Row: 2, Col: 2}}
)

// Medium is a one-ply heuristic: win if possible, block the opponent's
// win, then prefer center, a corner, and finally any remaining cell.
// It can be beaten by a perfect opponent in some lines.
type Medium struct{}

func (that *Medium) ChooseMove(board entity.Board, mark string) (entity.Move, error) {
	moves := board.AvailableMoves()
	if len(moves) == 0 {
		return entity.Move{}, apperror.ErrNoMovesAvailable
	}

	if move, ok := findWinningMove(board, mark); ok {
		return move, nil
	}

	if move, ok := findWinningMove(board, entity.OpponentOf(mark)); ok {
		return move, nil
	}

	if board.At(center) == entity.EmptyCell {
		return center, nil
	}

	for _, corner := range corners {
		if board.At(corner) == entity.EmptyCell {
			return corner, nil
		}
	}

	return moves[0], nil
}

// findWinningMove reports the first cell in row-major order that would
// complete a line for the given mark.
func findWinningMove(board entity.Board, mark string) (entity.Move, bool) {
	for _, move := range board.AvailableMoves() {
		probe := board.Clone()
		probe[move.Index()] = mark

		if probe.DetermineResult() == mark {
			return move, true
		}
	}

	return entity.Move{}, false
}
