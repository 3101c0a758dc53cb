package service

import (
	"context"

	"github.com/bagdasarian/event-manager/internal/domain"
)

type TeamService interface {
	CreateTeam(ctx context.Context, name string, eventID, leaderID int64) (*domain.Team, error)
	GetTeam(ctx context.Context, teamID int64) (*domain.Team, error)
	AddMember(ctx context.Context, teamID, userID int64, status domain.MemberStatus) (*domain.TeamMember, error)
	RespondToInvite(ctx context.Context, teamID, userID int64, accept bool) (*domain.TeamMember, error)
	RemoveMember(ctx context.Context, teamID, userID int64) error
	TransferLeadership(ctx context.Context, teamID, newLeaderID int64) error
	DeleteTeam(ctx context.Context, teamID int64) error
}
