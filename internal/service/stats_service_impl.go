package service

import (
	"context"
	"fmt"

	"github.com/bagdasarian/event-manager/internal/domain"
	"github.com/bagdasarian/event-manager/internal/repository"
)

type statsService struct {
	transactor repository.Transactor
}

func NewStatsService(transactor repository.Transactor) StatsService {
	return &statsService{transactor: transactor}
}

// GetTeamReadiness сравнивает команды события с min_team_size; это только отчет, запись он не ограничивает
func (s *statsService) GetTeamReadiness(ctx context.Context, eventID int64) ([]*domain.TeamReadiness, error) {
	var stats []*domain.TeamReadiness
	err := s.transactor.WithinTx(ctx, func(ctx context.Context, repos repository.Repositories) error {
		if _, err := repos.Events.GetByID(ctx, eventID); err != nil {
			return notFound(err, fmt.Sprintf("event with id %d", eventID))
		}

		var err error
		stats, err = repos.Stats.GetTeamReadiness(ctx, eventID)
		return err
	})
	if err != nil {
		return nil, err
	}

	return stats, nil
}
