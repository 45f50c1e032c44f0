package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
)

const (
	PlayerX   = "X"
	PlayerO   = "O"
	PlayerTie = "-"

	EmptyCell = ""
)

const boardSide = 3

var WinCombos = [][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// Move addresses a single cell by zero-based row and column.
type Move struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (that Move) Index() int {
	return that.Row*boardSide + that.Col
}

func (that Move) InBounds() bool {
	return that.Row >= 0 && that.Row < boardSide && that.Col >= 0 && that.Col < boardSide
}

// Board is the 3x3 grid stored flat in row-major order.
type Board [9]string

func (that Board) At(move Move) string {
	return that[move.Index()]
}

// Place writes the mark into the addressed cell. A failed placement
// leaves the board untouched.
func (that *Board) Place(move Move, mark string) error {
	if !move.InBounds() {
		return fmt.Errorf("%w: row %d, col %d", apperror.ErrOutOfRange, move.Row, move.Col)
	}

	if that.At(move) != EmptyCell {
		return fmt.Errorf("%w: row %d, col %d", apperror.ErrCellOccupied, move.Row, move.Col)
	}

	that[move.Index()] = mark

	return nil
}

// AvailableMoves returns every empty cell in row-major order. The order
// is relied on for tie-breaking by the bot strategies.
func (that Board) AvailableMoves() []Move {
	moves := make([]Move, 0, len(that))
	for row := 0; row < boardSide; row++ {
		for col := 0; col < boardSide; col++ {
			move := Move{Row: row, Col: col}
			if that.At(move) == EmptyCell {
				moves = append(moves, move)
			}
		}
	}

	return moves
}

// Clone returns an independent copy of the board.
func (that Board) Clone() Board {
	return that
}

func (that Board) IsFull() bool {
	for _, cell := range that {
		if cell == EmptyCell {
			return false
		}
	}

	return true
}

// DetermineResult checks all winning lines and returns the winning mark,
// PlayerTie when the board is full without a winner, or an empty string
// while the game is still in progress.
func (that Board) DetermineResult() string {
	for _, combo := range WinCombos {
		a, b, c := that[combo[0]], that[combo[1]], that[combo[2]]
		if a != EmptyCell && a == b && b == c {
			return a
		}
	}

	if !that.IsFull() {
		return ""
	}

	return PlayerTie
}

func OpponentOf(mark string) string {
	if mark == PlayerX {
		return PlayerO
	}
	return PlayerX
}
