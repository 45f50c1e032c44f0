package entity

import "time"

const (
	EventGameStarted  = "game_started"
	EventMoveAccepted = "move_accepted"
	EventMoveRejected = "move_rejected"
	EventInvalidInput = "invalid_input"
	EventBotError     = "bot_error"
	EventGameFinished = "game_finished"
)

// GameEvent is one append-only journal record. The journal is written
// for observation only and is never read back by the game.
type GameEvent struct {
	GameID    string    `json:"game_id"`
	Kind      string    `json:"kind"`
	Detail    string    `json:"detail,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
