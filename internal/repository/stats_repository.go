package repository

import (
	"context"

	"github.com/bagdasarian/event-manager/internal/domain"
)

type StatsRepository interface {
	GetTeamReadiness(ctx context.Context, eventID int64) ([]*domain.TeamReadiness, error)
}
