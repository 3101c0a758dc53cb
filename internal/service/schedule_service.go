package service

import (
	"context"
	"time"

	"github.com/bagdasarian/event-manager/internal/domain"
)

type ScheduleService interface {
	FindConflicts(ctx context.Context, organizerID int64, excludeEventID *int64, start, end time.Time) ([]*domain.Event, error)
	CheckEventSchedule(ctx context.Context, organizerID int64, excludeEventID *int64, start, end time.Time) (*domain.ScheduleCheck, error)
	CreateEvent(ctx context.Context, event *domain.Event) (*domain.Event, error)
	UpdateEvent(ctx context.Context, event *domain.Event) (*domain.Event, error)
	GetEvent(ctx context.Context, id int64) (*domain.Event, error)
	DeleteEvent(ctx context.Context, id int64) error
}
