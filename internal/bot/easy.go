package bot

import (
	"math/rand"
	"time"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

// Easy picks uniformly at random among the available cells.
type Easy struct {
	rnd *rand.Rand
}

func NewEasy() *Easy {
	return NewEasyWithRand(rand.New(rand.NewSource(time.Now().UnixNano()))) //nolint: gosec // not used for security
}

func NewEasyWithRand(rnd *rand.Rand) *Easy {
	return &Easy{rnd: rnd}
}

func (that *Easy) ChooseMove(board entity.Board, _ string) (entity.Move, error) {
	moves := board.AvailableMoves()
	if len(moves) == 0 {
		return entity.Move{}, apperror.ErrNoMovesAvailable
	}

	return moves[that.rnd.Intn(len(moves))], nil
}
