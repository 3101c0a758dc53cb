package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/bagdasarian/event-manager/internal/domain"
	"github.com/bagdasarian/event-manager/internal/repository"
)

type eventRepository struct {
	executor DBExecutor
}

func NewEventRepository(executor DBExecutor) *eventRepository {
	return &eventRepository{executor: executor}
}

const eventColumns = `id, title, organizer_id, starts_at, ends_at, team_event, min_team_size, max_team_size, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEvent(row rowScanner) (*domain.Event, error) {
	event := &domain.Event{}
	var updatedAt sql.NullTime
	err := row.Scan(
		&event.ID,
		&event.Title,
		&event.OrganizerID,
		&event.StartsAt,
		&event.EndsAt,
		&event.TeamEvent,
		&event.MinTeamSize,
		&event.MaxTeamSize,
		&event.CreatedAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if updatedAt.Valid {
		event.UpdatedAt = &updatedAt.Time
	}

	return event, nil
}

// LockOrganizer берет транзакционную advisory-блокировку на организатора.
// $1 приводится к bigint явно, иначе Postgres выводит для параметра тип text,
// а pgx не кодирует int64 в text.
// Вне транзакции блокировка снимается сразу после запроса, поэтому вызывать
// только через Transactor.
func (r *eventRepository) LockOrganizer(ctx context.Context, organizerID int64) error {
	_, err := r.executor.ExecContext(
		ctx,
		`SELECT pg_advisory_xact_lock(hashtextextended('events.organizer:' || $1::bigint::text, 0))`,
		organizerID,
	)
	return err
}

func (r *eventRepository) FindByOrganizer(ctx context.Context, organizerID int64, excludeEventID *int64) ([]*domain.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE organizer_id = $1`
	args := []any{organizerID}
	if excludeEventID != nil {
		query += ` AND id <> $2`
		args = append(args, *excludeEventID)
	}
	query += ` ORDER BY starts_at, id`

	rows, err := r.executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []*domain.Event
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, event)
	}

	return events, rows.Err()
}

func (r *eventRepository) Create(ctx context.Context, event *domain.Event) error {
	query := `
		INSERT INTO events (title, organizer_id, starts_at, ends_at, team_event, min_team_size, max_team_size, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at
	`

	err := r.executor.QueryRowContext(
		ctx,
		query,
		event.Title,
		event.OrganizerID,
		event.StartsAt,
		event.EndsAt,
		event.TeamEvent,
		event.MinTeamSize,
		event.MaxTeamSize,
		time.Now(),
	).Scan(&event.ID, &event.CreatedAt)
	if err != nil {
		return mapError(err)
	}

	event.UpdatedAt = nil

	return nil
}

// Update меняет всё, кроме организатора
func (r *eventRepository) Update(ctx context.Context, event *domain.Event) error {
	query := `
		UPDATE events
		SET title = $2, starts_at = $3, ends_at = $4, team_event = $5,
			min_team_size = $6, max_team_size = $7, updated_at = $8
		WHERE id = $1
		RETURNING organizer_id, created_at, updated_at
	`

	var updatedAt sql.NullTime
	err := r.executor.QueryRowContext(
		ctx,
		query,
		event.ID,
		event.Title,
		event.StartsAt,
		event.EndsAt,
		event.TeamEvent,
		event.MinTeamSize,
		event.MaxTeamSize,
		time.Now(),
	).Scan(&event.OrganizerID, &event.CreatedAt, &updatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return repository.ErrNotFound
		}
		return err
	}

	if updatedAt.Valid {
		event.UpdatedAt = &updatedAt.Time
	}

	return nil
}

func (r *eventRepository) GetByID(ctx context.Context, id int64) (*domain.Event, error) {
	return r.getByID(ctx, id, "")
}

// GetByIDForShare не дает параллельному UpdateEvent изменить лимиты команды,
// пока идет проверка вместимости.
func (r *eventRepository) GetByIDForShare(ctx context.Context, id int64) (*domain.Event, error) {
	return r.getByID(ctx, id, "FOR SHARE")
}

func (r *eventRepository) GetByIDForUpdate(ctx context.Context, id int64) (*domain.Event, error) {
	return r.getByID(ctx, id, "FOR UPDATE")
}

func (r *eventRepository) getByID(ctx context.Context, id int64, lock string) (*domain.Event, error) {
	query := fmt.Sprintf(`SELECT %s FROM events WHERE id = $1 %s`, eventColumns, lock)

	event, err := scanEvent(r.executor.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	return event, nil
}

func (r *eventRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.executor.ExecContext(ctx, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return err
	}

	return checkAffected(result)
}
