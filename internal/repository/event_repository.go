package repository

import (
	"context"

	"github.com/bagdasarian/event-manager/internal/domain"
)

type EventRepository interface {
	// LockOrganizer сериализует изменения расписания одного организатора до конца транзакции
	LockOrganizer(ctx context.Context, organizerID int64) error
	// FindByOrganizer возвращает события организатора по возрастанию начала
	FindByOrganizer(ctx context.Context, organizerID int64, excludeEventID *int64) ([]*domain.Event, error)
	Create(ctx context.Context, event *domain.Event) error
	Update(ctx context.Context, event *domain.Event) error
	GetByID(ctx context.Context, id int64) (*domain.Event, error)
	GetByIDForShare(ctx context.Context, id int64) (*domain.Event, error)
	GetByIDForUpdate(ctx context.Context, id int64) (*domain.Event, error)
	Delete(ctx context.Context, id int64) error
}
