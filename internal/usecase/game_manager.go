package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-cli/internal/bot"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
	"github.com/rocketscienceinc/tictactoe-cli/internal/tictactoe"
)

var ErrNoActiveGame = errors.New("no active game")

type eventJournal interface {
	Append(ctx context.Context, event *entity.GameEvent) error
}

// GameManager runs one game session: it applies turns through the rules
// engine, asks the bot strategy for its moves, and journals events.
// A nil journal means play continues without journaling.
type GameManager struct {
	logger   *slog.Logger
	journal  eventJournal
	strategy bot.Strategy
	game     *entity.Game
}

func NewGameManager(logger *slog.Logger, journal eventJournal) *GameManager {
	return &GameManager{
		logger: logger.With("component", "game_manager"),

		journal: journal,
	}
}

func (that *GameManager) Game() *entity.Game {
	return that.game
}

func (that *GameManager) NewFriendlyGame(ctx context.Context) *entity.Game {
	that.game = entity.NewGame(entity.FriendlyType)
	that.strategy = nil

	that.recordEvent(ctx, entity.EventGameStarted, "two-player game")

	return that.game
}

func (that *GameManager) NewBotGame(ctx context.Context, difficulty string) (*entity.Game, error) {
	strategy, err := bot.New(difficulty)
	if err != nil {
		return nil, fmt.Errorf("failed to create bot strategy: %w", err)
	}

	that.game = entity.NewGame(entity.WithBotType)
	that.game.Difficulty = difficulty
	that.strategy = strategy

	that.recordEvent(ctx, entity.EventGameStarted, "bot game, difficulty "+difficulty)

	return that.game, nil
}

func (that *GameManager) MakeHumanTurn(ctx context.Context, player string, move entity.Move) error {
	if that.game == nil {
		return ErrNoActiveGame
	}

	if err := tictactoe.MakeTurn(that.game, player, move); err != nil {
		that.recordEvent(ctx, entity.EventMoveRejected, fmt.Sprintf("player %s, row %d, col %d: %v", player, move.Row, move.Col, err))

		return err
	}

	that.recordEvent(ctx, entity.EventMoveAccepted, fmt.Sprintf("player %s, row %d, col %d", player, move.Row, move.Col))
	that.recordFinish(ctx)

	return nil
}

// MakeBotTurn asks the strategy for a move and applies it through the
// same rules engine as human turns. The strategy only picks available
// cells, so a rejected bot move is an invariant violation.
func (that *GameManager) MakeBotTurn(ctx context.Context) (entity.Move, error) {
	if that.game == nil || that.strategy == nil {
		return entity.Move{}, ErrNoActiveGame
	}

	mark := that.game.Turn

	move, err := that.strategy.ChooseMove(that.game.Board, mark)
	if err != nil {
		that.recordEvent(ctx, entity.EventBotError, err.Error())

		return entity.Move{}, fmt.Errorf("bot failed to choose move: %w", err)
	}

	if err = tictactoe.MakeTurn(that.game, mark, move); err != nil {
		that.recordEvent(ctx, entity.EventBotError, err.Error())

		return entity.Move{}, fmt.Errorf("bot failed to make turn: %w", err)
	}

	that.recordEvent(ctx, entity.EventMoveAccepted, fmt.Sprintf("bot %s, row %d, col %d", mark, move.Row, move.Col))
	that.recordFinish(ctx)

	return move, nil
}

// RecordInvalidInput journals a rejected raw input line.
func (that *GameManager) RecordInvalidInput(ctx context.Context, detail string) {
	that.recordEvent(ctx, entity.EventInvalidInput, detail)
}

func (that *GameManager) recordFinish(ctx context.Context) {
	if !that.game.IsFinished() {
		return
	}

	that.recordEvent(ctx, entity.EventGameFinished, "winner: "+that.game.Winner)
}

// recordEvent appends to the journal; failures degrade to a warning so
// an unavailable journal never interrupts play.
func (that *GameManager) recordEvent(ctx context.Context, kind, detail string) {
	if that.journal == nil {
		return
	}

	var gameID string
	if that.game != nil {
		gameID = that.game.ID
	}

	event := &entity.GameEvent{
		GameID: gameID,
		Kind:   kind,
		Detail: detail,
	}

	if err := that.journal.Append(ctx, event); err != nil {
		that.logger.Warn("could not append game event", "kind", kind, "error", err)
	}
}
