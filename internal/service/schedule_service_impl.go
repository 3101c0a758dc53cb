package service

import (
	"context"
	"fmt"
	"time"

	"github.com/bagdasarian/event-manager/internal/domain"
	"github.com/bagdasarian/event-manager/internal/repository"
	"go.uber.org/zap"
)

type scheduleService struct {
	transactor repository.Transactor
	log        *zap.Logger
}

// NewScheduleService создает новый экземпляр ScheduleService
func NewScheduleService(transactor repository.Transactor, log *zap.Logger) ScheduleService {
	return &scheduleService{
		transactor: transactor,
		log:        log.Named("schedule"),
	}
}

func findConflicts(
	ctx context.Context,
	events repository.EventRepository,
	organizerID int64,
	excludeEventID *int64,
	start, end time.Time,
) ([]*domain.Event, error) {
	candidates, err := events.FindByOrganizer(ctx, organizerID, excludeEventID)
	if err != nil {
		return nil, err
	}
	return FindOverlaps(candidates, start, end, excludeEventID), nil
}

// FindConflicts только читает; для защиты записи проверка повторяется в CreateEvent/UpdateEvent
func (s *scheduleService) FindConflicts(ctx context.Context, organizerID int64, excludeEventID *int64, start, end time.Time) ([]*domain.Event, error) {
	var conflicts []*domain.Event
	err := s.transactor.WithinTx(ctx, func(ctx context.Context, repos repository.Repositories) error {
		var err error
		conflicts, err = findConflicts(ctx, repos.Events, organizerID, excludeEventID, start, end)
		return err
	})
	if err != nil {
		return nil, err
	}

	return conflicts, nil
}

func (s *scheduleService) CheckEventSchedule(ctx context.Context, organizerID int64, excludeEventID *int64, start, end time.Time) (*domain.ScheduleCheck, error) {
	conflicts, err := s.FindConflicts(ctx, organizerID, excludeEventID, start, end)
	if err != nil {
		return nil, err
	}

	if len(conflicts) == 0 {
		return &domain.ScheduleCheck{OK: true}, nil
	}
	return &domain.ScheduleCheck{OK: false, Conflicts: conflicts}, nil
}

// CreateEvent под блокировкой организатора повторяет поиск конфликтов и вставляет событие
func (s *scheduleService) CreateEvent(ctx context.Context, event *domain.Event) (*domain.Event, error) {
	err := s.transactor.WithinTx(ctx, func(ctx context.Context, repos repository.Repositories) error {
		if err := repos.Events.LockOrganizer(ctx, event.OrganizerID); err != nil {
			return err
		}

		conflicts, err := findConflicts(ctx, repos.Events, event.OrganizerID, nil, event.StartsAt, event.EndsAt)
		if err != nil {
			return err
		}
		if len(conflicts) > 0 {
			return domain.NewScheduleConflictError(conflicts)
		}

		if err := repos.Events.Create(ctx, event); err != nil {
			return notFound(err, fmt.Sprintf("organizer with id %d", event.OrganizerID))
		}
		return nil
	})
	if err != nil {
		logRejection(s.log, "create event rejected", err, zap.Int64("organizer_id", event.OrganizerID))
		return nil, err
	}

	s.log.Info("event created",
		zap.Int64("event_id", event.ID),
		zap.Int64("organizer_id", event.OrganizerID),
	)
	return event, nil
}

// UpdateEvent не меняет организатора. Лимит команды нельзя опустить ниже
// текущего числа joined-участников, а командный режим нельзя выключить, пока есть команды.
func (s *scheduleService) UpdateEvent(ctx context.Context, event *domain.Event) (*domain.Event, error) {
	resource := fmt.Sprintf("event with id %d", event.ID)

	err := s.transactor.WithinTx(ctx, func(ctx context.Context, repos repository.Repositories) error {
		current, err := repos.Events.GetByID(ctx, event.ID)
		if err != nil {
			return notFound(err, resource)
		}

		if err := repos.Events.LockOrganizer(ctx, current.OrganizerID); err != nil {
			return err
		}

		locked, err := repos.Events.GetByIDForUpdate(ctx, event.ID)
		if err != nil {
			return notFound(err, resource)
		}
		event.OrganizerID = locked.OrganizerID

		conflicts, err := findConflicts(ctx, repos.Events, event.OrganizerID, &event.ID, event.StartsAt, event.EndsAt)
		if err != nil {
			return err
		}
		if len(conflicts) > 0 {
			return domain.NewScheduleConflictError(conflicts)
		}

		if locked.TeamEvent {
			if err := checkTeamLimits(ctx, repos.Teams, event); err != nil {
				return err
			}
		}

		if err := repos.Events.Update(ctx, event); err != nil {
			return notFound(err, resource)
		}
		return nil
	})
	if err != nil {
		logRejection(s.log, "update event rejected", err, zap.Int64("event_id", event.ID))
		return nil, err
	}

	s.log.Info("event updated", zap.Int64("event_id", event.ID))
	return event, nil
}

func checkTeamLimits(ctx context.Context, teams repository.TeamRepository, event *domain.Event) error {
	if !event.TeamEvent {
		count, err := teams.CountByEvent(ctx, event.ID)
		if err != nil {
			return err
		}
		if count > 0 {
			return domain.NewInvalidStateError(fmt.Sprintf("event has %d team(s) and cannot stop being a team event", count))
		}
		return nil
	}

	maxJoined, err := teams.MaxJoinedCountByEvent(ctx, event.ID)
	if err != nil {
		return err
	}
	if maxJoined > event.MaxTeamSize {
		return domain.NewInvalidStateError(fmt.Sprintf(
			"max team size %d is below the %d joined members of an existing team", event.MaxTeamSize, maxJoined,
		))
	}
	return nil
}

func (s *scheduleService) GetEvent(ctx context.Context, id int64) (*domain.Event, error) {
	var event *domain.Event
	err := s.transactor.WithinTx(ctx, func(ctx context.Context, repos repository.Repositories) error {
		var err error
		event, err = repos.Events.GetByID(ctx, id)
		return notFound(err, fmt.Sprintf("event with id %d", id))
	})
	if err != nil {
		return nil, err
	}

	return event, nil
}

// DeleteEvent удаляет событие; команды и участники удаляются каскадно хранилищем
func (s *scheduleService) DeleteEvent(ctx context.Context, id int64) error {
	err := s.transactor.WithinTx(ctx, func(ctx context.Context, repos repository.Repositories) error {
		return notFound(repos.Events.Delete(ctx, id), fmt.Sprintf("event with id %d", id))
	})
	if err != nil {
		return err
	}

	s.log.Info("event deleted", zap.Int64("event_id", id))
	return nil
}
