package application

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-cli/internal/config"
	"github.com/rocketscienceinc/tictactoe-cli/internal/repository"
	"github.com/rocketscienceinc/tictactoe-cli/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-cli/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-cli/transport/console"
)

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	// The journal is optional: without storage the game still plays.
	var journal repository.EventRepository

	if conf.SQLiteStoragePath != "" {
		eventStorage, err := storage.NewSQLiteStorage(conf.SQLiteStoragePath)
		if err != nil {
			log.Warn("could not open event storage, continuing without journal", "error", err)
		} else {
			defer func() {
				if closeErr := eventStorage.Close(); closeErr != nil {
					log.Error("could not close event storage", "error", closeErr)
				}
			}()

			if err = eventStorage.Init(ctx); err != nil {
				log.Warn("could not init event storage, continuing without journal", "error", err)
			} else {
				journal = repository.NewEventRepository(eventStorage)
			}
		}
	}

	gameManager := usecase.NewGameManager(logger, journal)
	server := console.New(logger, gameManager, os.Stdin, os.Stdout, conf.Bot.DefaultDifficulty)

	if err := server.Run(ctx); err != nil {
		return fmt.Errorf("console session failed: %w", err)
	}

	return nil
}
