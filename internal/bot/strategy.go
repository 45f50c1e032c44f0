package bot

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

// Strategy picks the bot's next move. Every implementation returns a
// member of board.AvailableMoves().
type Strategy interface {
	ChooseMove(board entity.Board, mark string) (entity.Move, error)
}

// New returns the strategy for the given difficulty, case-insensitively.
func New(difficulty string) (Strategy, error) {
	switch strings.ToLower(difficulty) {
	case entity.DifficultyEasy:
		return NewEasy(), nil
	case entity.DifficultyMedium:
		return &Medium{}, nil
	case entity.DifficultyHard:
		return &Hard{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", apperror.ErrUnknownDifficulty, difficulty)
	}
}
