package service

import (
	"context"

	"github.com/bagdasarian/event-manager/internal/domain"
)

type StatsService interface {
	GetTeamReadiness(ctx context.Context, eventID int64) ([]*domain.TeamReadiness, error)
}
