package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/bagdasarian/event-manager/internal/repository"
)

type transactor struct {
	db *sql.DB
}

func NewTransactor(db *sql.DB) *transactor {
	return &transactor{db: db}
}

// WithinTx открывает транзакцию и передает в fn репозитории, работающие внутри неё.
// BeginTx откатывает транзакцию сам, если ctx отменяется до Commit.
func (t *transactor) WithinTx(ctx context.Context, fn func(ctx context.Context, repos repository.Repositories) error) error {
	tx, err := t.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	repos := repository.Repositories{
		Events: NewEventRepository(tx),
		Teams:  NewTeamRepository(tx),
		Stats:  NewStatsRepository(tx),
	}

	if err := fn(ctx, repos); err != nil {
		return err
	}

	return tx.Commit()
}
