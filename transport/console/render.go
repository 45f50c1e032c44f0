package console

import (
	"strings"

	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

const rowSeparator = "---------"

// RenderBoard draws the 3x3 grid, one row per line, with a horizontal
// rule after each row.
func RenderBoard(board entity.Board) string {
	var builder strings.Builder

	for row := 0; row < 3; row++ {
		cells := make([]string, 0, 3)
		for col := 0; col < 3; col++ {
			cell := board.At(entity.Move{Row: row, Col: col})
			if cell == entity.EmptyCell {
				cell = " "
			}
			cells = append(cells, cell)
		}

		builder.WriteString(strings.Join(cells, " | "))
		builder.WriteString("\n")
		builder.WriteString(rowSeparator)
		builder.WriteString("\n")
	}

	return builder.String()
}
