package repository

import (
	"context"

	"github.com/bagdasarian/event-manager/internal/domain"
)

type TeamRepository interface {
	Create(ctx context.Context, team *domain.Team) error
	GetByID(ctx context.Context, id int64) (*domain.Team, error)
	// GetStateForUpdate блокирует строку команды и считает joined-участников под блокировкой
	GetStateForUpdate(ctx context.Context, id int64) (*domain.TeamState, error)
	CountByEvent(ctx context.Context, eventID int64) (int, error)
	MaxJoinedCountByEvent(ctx context.Context, eventID int64) (int, error)
	GetMember(ctx context.Context, teamID, userID int64) (*domain.TeamMember, error)
	UpsertMember(ctx context.Context, teamID, userID int64, status domain.MemberStatus) (*domain.TeamMember, error)
	SetMemberStatus(ctx context.Context, teamID, userID int64, status domain.MemberStatus) error
	SetLeader(ctx context.Context, teamID, userID int64) error
	Delete(ctx context.Context, id int64) error
}
