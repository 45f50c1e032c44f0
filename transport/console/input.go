package console

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

var ErrMalformedInput = errors.New("please enter two numbers separated by a space")

// ParseMove turns a 1-indexed "row col" line into a zero-based move.
// Range checking is left to the move validator.
func ParseMove(line string) (entity.Move, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return entity.Move{}, ErrMalformedInput
	}

	row, err := strconv.Atoi(fields[0])
	if err != nil {
		return entity.Move{}, fmt.Errorf("%w: %q is not a number", ErrMalformedInput, fields[0])
	}

	col, err := strconv.Atoi(fields[1])
	if err != nil {
		return entity.Move{}, fmt.Errorf("%w: %q is not a number", ErrMalformedInput, fields[1])
	}

	return entity.Move{Row: row - 1, Col: col - 1}, nil
}

// parseYesNo treats anything but an explicit yes as no.
func parseYesNo(line string) bool {
	return strings.EqualFold(strings.TrimSpace(line), "yes")
}
