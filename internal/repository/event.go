package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
	"github.com/rocketscienceinc/tictactoe-cli/internal/repository/storage"
)

type EventRepository interface {
	Append(ctx context.Context, event *entity.GameEvent) error
}

type dbEvent struct {
	storage *storage.Storage
}

func NewEventRepository(st *storage.Storage) EventRepository {
	return &dbEvent{
		storage: st,
	}
}

// Append writes one journal record. The journal is append-only; nothing
// in the game reads it back.
func (that *dbEvent) Append(ctx context.Context, event *entity.GameEvent) error {
	createdAt := event.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	query := `INSERT INTO events (game_id, kind, detail, created_at) VALUES (?, ?, ?, ?)`

	_, err := that.storage.Connection.ExecContext(ctx, query, event.GameID, event.Kind, event.Detail, createdAt)
	if err != nil {
		return fmt.Errorf("failed to append event: %w", err)
	}

	return nil
}
