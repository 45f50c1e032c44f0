package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

type gameManager interface {
	NewFriendlyGame(ctx context.Context) *entity.Game
	NewBotGame(ctx context.Context, difficulty string) (*entity.Game, error)

	MakeHumanTurn(ctx context.Context, player string, move entity.Move) error
	MakeBotTurn(ctx context.Context) (entity.Move, error)

	RecordInvalidInput(ctx context.Context, detail string)
}

// Server drives one game over a line-oriented terminal session.
type Server struct {
	logger  *slog.Logger
	manager gameManager

	in  *bufio.Scanner
	out io.Writer

	defaultDifficulty string
}

func New(logger *slog.Logger, manager gameManager, in io.Reader, out io.Writer, defaultDifficulty string) *Server {
	return &Server{
		logger:  logger.With("component", "console"),
		manager: manager,

		in:  bufio.NewScanner(in),
		out: out,

		defaultDifficulty: defaultDifficulty,
	}
}

// Run - starts the terminal session and plays one game to its end.
// It returns nil when the input stream is closed mid-game.
func (that *Server) Run(ctx context.Context) error {
	game, err := that.setupGame(ctx)
	if err != nil {
		return err
	}
	if game == nil {
		return nil
	}

	for game.IsOngoing() {
		if err = ctx.Err(); err != nil {
			return fmt.Errorf("session canceled: %w", err)
		}

		that.printBoard(game)

		if game.IsWithBot() && game.Turn == entity.PlayerO {
			if err = that.playBotTurn(ctx, game); err != nil {
				return err
			}

			continue
		}

		ok, turnErr := that.playHumanTurn(ctx, game)
		if turnErr != nil {
			return turnErr
		}
		if !ok {
			that.logger.Info("input closed, leaving the game")
			return nil
		}
	}

	that.printBoard(game)
	that.announceResult(game)

	return nil
}

// setupGame prompts for the game mode and, for bot games, the
// difficulty. A nil game without error means the input was closed.
func (that *Server) setupGame(ctx context.Context) (*entity.Game, error) {
	line, ok := that.prompt("Do you want to play against an NPC? (yes/no): ")
	if !ok {
		return nil, nil
	}

	if !parseYesNo(line) {
		return that.manager.NewFriendlyGame(ctx), nil
	}

	for {
		line, ok = that.prompt("Choose difficulty (easy, medium, hard): ")
		if !ok {
			return nil, nil
		}

		difficulty := strings.ToLower(strings.TrimSpace(line))
		if difficulty == "" {
			difficulty = that.defaultDifficulty
		}

		game, err := that.manager.NewBotGame(ctx, difficulty)
		if err != nil {
			if errors.Is(err, apperror.ErrUnknownDifficulty) {
				that.manager.RecordInvalidInput(ctx, "difficulty: "+line)
				fmt.Fprintf(that.out, "Unknown difficulty %q, try again.\n", difficulty)

				continue
			}

			return nil, fmt.Errorf("failed to start bot game: %w", err)
		}

		return game, nil
	}
}

// playHumanTurn reads and applies one human move. Invalid input is
// reported and journaled; the player is prompted again on the next
// loop iteration. The boolean is false when the input stream ended.
func (that *Server) playHumanTurn(ctx context.Context, game *entity.Game) (bool, error) {
	line, ok := that.prompt(fmt.Sprintf("Player %s, enter your move as 'row col' (1-3 each): ", game.Turn))
	if !ok {
		return false, nil
	}

	move, err := ParseMove(line)
	if err != nil {
		that.manager.RecordInvalidInput(ctx, line)
		fmt.Fprintf(that.out, "Invalid input: %v\n", err)

		return true, nil
	}

	if err = that.manager.MakeHumanTurn(ctx, game.Turn, move); err != nil {
		fmt.Fprintf(that.out, "Invalid move: %v\n", err)

		return true, nil
	}

	return true, nil
}

func (that *Server) playBotTurn(ctx context.Context, game *entity.Game) error {
	fmt.Fprintf(that.out, "NPC (%s difficulty) is making a move...\n", game.Difficulty)

	move, err := that.manager.MakeBotTurn(ctx)
	if err != nil {
		return fmt.Errorf("bot turn failed: %w", err)
	}

	fmt.Fprintf(that.out, "NPC plays %d %d\n", move.Row+1, move.Col+1)

	return nil
}

func (that *Server) announceResult(game *entity.Game) {
	switch game.Winner {
	case entity.PlayerTie:
		fmt.Fprintln(that.out, "It's a tie!")
	case entity.PlayerO:
		if game.IsWithBot() {
			fmt.Fprintln(that.out, "NPC wins! Better luck next time.")
			return
		}
		fmt.Fprintf(that.out, "Player %s wins!\n", game.Winner)
	case entity.PlayerX:
		if game.IsWithBot() {
			fmt.Fprintln(that.out, "Congratulations! You win!")
			return
		}
		fmt.Fprintf(that.out, "Player %s wins!\n", game.Winner)
	}
}

func (that *Server) printBoard(game *entity.Game) {
	fmt.Fprintln(that.out, "\nCurrent Board:")
	fmt.Fprint(that.out, RenderBoard(game.Board))
}

// prompt writes the question and reads one input line. The boolean is
// false when the input stream is exhausted.
func (that *Server) prompt(question string) (string, bool) {
	fmt.Fprint(that.out, question)

	if !that.in.Scan() {
		return "", false
	}

	return that.in.Text(), true
}
