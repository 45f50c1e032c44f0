package entity

import "github.com/google/uuid"

const (
	StatusFinished = "finished"
	StatusOngoing  = "ongoing"
)

const (
	FriendlyType = "friendly"
	WithBotType  = "bot"
)

const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)

type Game struct {
	ID         string `json:"id"`
	Board      Board  `json:"board"`
	Winner     string `json:"winner"`
	Status     string `json:"status"`
	Turn       string `json:"player_turn"`
	Type       string `json:"type,omitempty"`
	Difficulty string `json:"difficulty,omitempty"`
}

func NewGame(gameType string) *Game {
	return &Game{
		ID:     uuid.NewString(),
		Board:  Board{},
		Turn:   PlayerX,
		Status: StatusOngoing,
		Type:   gameType,
	}
}

// UpdateGameState derives winner and status from the current board.
func (that *Game) UpdateGameState() {
	switch winner := that.Board.DetermineResult(); winner {
	// one player wins
	case PlayerX, PlayerO:
		that.Winner = winner
		that.Status = StatusFinished
		that.Turn = ""
	// tie
	case PlayerTie:
		that.Winner = PlayerTie
		that.Status = StatusFinished
		that.Turn = ""
	// game continues
	default:
		that.Status = StatusOngoing
	}
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusOngoing
}

func (that *Game) IsWithBot() bool {
	return that.Type == WithBotType
}
