package bot

import (
	"math"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

// Terminal scores are discounted by search depth so a faster win (or a
// slower loss) outranks an equally decided but longer line.
const winScore = 10

// Hard searches the full remaining game tree and never loses: at worst
// it forces a tie.
type Hard struct{}

func (that *Hard) ChooseMove(board entity.Board, mark string) (entity.Move, error) {
	moves := board.AvailableMoves()
	if len(moves) == 0 {
		return entity.Move{}, apperror.ErrNoMovesAvailable
	}

	bestScore := math.MinInt
	bestMove := moves[0]

	// Each root child gets a fresh window, so child scores are exact and
	// ties resolve to the first cell in row-major order.
	for _, move := range moves {
		board[move.Index()] = mark
		score := minimax(board, mark, 1, false, math.MinInt, math.MaxInt)
		board[move.Index()] = entity.EmptyCell

		if score > bestScore {
			bestScore = score
			bestMove = move
		}
	}

	return bestMove, nil
}

// minimax scores the position from the bot's perspective, alternating
// maximizing (bot) and minimizing (opponent) plies down to terminal
// states. Alpha-beta pruning only skips branches that cannot influence
// the score.
func minimax(board entity.Board, mark string, depth int, maximizing bool, alpha, beta int) int {
	switch board.DetermineResult() {
	case mark:
		return winScore - depth
	case entity.OpponentOf(mark):
		return depth - winScore
	case entity.PlayerTie:
		return 0
	}

	if maximizing {
		best := math.MinInt
		for _, move := range board.AvailableMoves() {
			board[move.Index()] = mark
			score := minimax(board, mark, depth+1, false, alpha, beta)
			board[move.Index()] = entity.EmptyCell

			best = max(best, score)
			alpha = max(alpha, score)
			if beta <= alpha {
				break
			}
		}

		return best
	}

	best := math.MaxInt
	for _, move := range board.AvailableMoves() {
		board[move.Index()] = entity.OpponentOf(mark)
		score := minimax(board, mark, depth+1, true, alpha, beta)
		board[move.Index()] = entity.EmptyCell

		best = min(best, score)
		beta = min(beta, score)
		if beta <= alpha {
			break
		}
	}

	return best
}
