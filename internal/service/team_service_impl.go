package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/bagdasarian/event-manager/internal/domain"
	"github.com/bagdasarian/event-manager/internal/repository"
	"go.uber.org/zap"
)

type teamService struct {
	transactor repository.Transactor
	log        *zap.Logger
}

// NewTeamService создает новый экземпляр TeamService
func NewTeamService(transactor repository.Transactor, log *zap.Logger) TeamService {
	return &teamService{
		transactor: transactor,
		log:        log.Named("team"),
	}
}

func teamResource(teamID int64) string {
	return fmt.Sprintf("team with id %d", teamID)
}

// CreateTeam создает команду и в той же транзакции добавляет лидера первым joined-участником
func (s *teamService) CreateTeam(ctx context.Context, name string, eventID, leaderID int64) (*domain.Team, error) {
	team := &domain.Team{
		EventID:  eventID,
		Name:     name,
		LeaderID: leaderID,
		Members: []domain.TeamMember{
			{UserID: leaderID, Status: domain.MemberJoined},
		},
	}

	err := s.transactor.WithinTx(ctx, func(ctx context.Context, repos repository.Repositories) error {
		event, err := repos.Events.GetByIDForShare(ctx, eventID)
		if err != nil {
			return notFound(err, fmt.Sprintf("event with id %d", eventID))
		}
		if !event.TeamEvent {
			return domain.ErrNotSupported
		}

		if err := repos.Teams.Create(ctx, team); err != nil {
			return notFound(err, fmt.Sprintf("user with id %d", leaderID))
		}
		return nil
	})
	if err != nil {
		logRejection(s.log, "create team rejected", err, zap.Int64("event_id", eventID))
		return nil, err
	}

	s.log.Info("team created",
		zap.Int64("team_id", team.ID),
		zap.Int64("event_id", eventID),
		zap.Int64("leader_id", leaderID),
	)
	return team, nil
}

func (s *teamService) GetTeam(ctx context.Context, teamID int64) (*domain.Team, error) {
	var team *domain.Team
	err := s.transactor.WithinTx(ctx, func(ctx context.Context, repos repository.Repositories) error {
		var err error
		team, err = repos.Teams.GetByID(ctx, teamID)
		return notFound(err, teamResource(teamID))
	})
	if err != nil {
		return nil, err
	}

	return team, nil
}

// checkCapacity вызывается только под блокировкой команды, state.JoinedCount прочитан под ней же
func checkCapacity(ctx context.Context, repos repository.Repositories, state *domain.TeamState) error {
	event, err := repos.Events.GetByIDForShare(ctx, state.EventID)
	if err != nil {
		return notFound(err, fmt.Sprintf("event with id %d", state.EventID))
	}

	if state.JoinedCount+1 > event.MaxTeamSize {
		return domain.NewCapacityExceededError(event.MaxTeamSize)
	}
	return nil
}

// getMember возвращает nil без ошибки, если записи нет
func getMember(ctx context.Context, teams repository.TeamRepository, teamID, userID int64) (*domain.TeamMember, error) {
	member, err := teams.GetMember(ctx, teamID, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, nil
	}
	return member, err
}

// AddMember добавляет участника в статусе invited или joined. Существующая
// не joined запись перезаписывается, повторное добавление joined-участника ничего не меняет.
func (s *teamService) AddMember(ctx context.Context, teamID, userID int64, status domain.MemberStatus) (*domain.TeamMember, error) {
	if status != domain.MemberInvited && status != domain.MemberJoined {
		return nil, domain.NewInvalidStateError(fmt.Sprintf("member cannot be added as %s", status))
	}

	var member *domain.TeamMember
	err := s.transactor.WithinTx(ctx, func(ctx context.Context, repos repository.Repositories) error {
		state, err := repos.Teams.GetStateForUpdate(ctx, teamID)
		if err != nil {
			return notFound(err, teamResource(teamID))
		}

		existing, err := getMember(ctx, repos.Teams, teamID, userID)
		if err != nil {
			return err
		}
		if existing != nil && (existing.Status == domain.MemberJoined || existing.Status == status) {
			member = existing
			return nil
		}

		if status == domain.MemberJoined {
			if err := checkCapacity(ctx, repos, state); err != nil {
				return err
			}
		}

		member, err = repos.Teams.UpsertMember(ctx, teamID, userID, status)
		return notFound(err, fmt.Sprintf("user with id %d", userID))
	})
	if err != nil {
		logRejection(s.log, "add member rejected", err,
			zap.Int64("team_id", teamID),
			zap.Int64("user_id", userID),
		)
		return nil, err
	}

	s.log.Debug("member added",
		zap.Int64("team_id", teamID),
		zap.Int64("user_id", userID),
		zap.String("status", string(member.Status)),
	)
	return member, nil
}

// RespondToInvite переводит приглашение в joined (с проверкой вместимости) или declined
func (s *teamService) RespondToInvite(ctx context.Context, teamID, userID int64, accept bool) (*domain.TeamMember, error) {
	target := domain.MemberDeclined
	if accept {
		target = domain.MemberJoined
	}

	var member *domain.TeamMember
	err := s.transactor.WithinTx(ctx, func(ctx context.Context, repos repository.Repositories) error {
		state, err := repos.Teams.GetStateForUpdate(ctx, teamID)
		if err != nil {
			return notFound(err, teamResource(teamID))
		}

		member, err = repos.Teams.GetMember(ctx, teamID, userID)
		if err != nil {
			return notFound(err, fmt.Sprintf("member %d of team %d", userID, teamID))
		}
		if member.Status != domain.MemberInvited {
			return domain.NewInvalidStateError(fmt.Sprintf("member is %s, only invited members can respond", member.Status))
		}

		if accept {
			if err := checkCapacity(ctx, repos, state); err != nil {
				return err
			}
		}

		if err := repos.Teams.SetMemberStatus(ctx, teamID, userID, target); err != nil {
			return err
		}
		member, err = repos.Teams.GetMember(ctx, teamID, userID)
		return err
	})
	if err != nil {
		logRejection(s.log, "invite response rejected", err,
			zap.Int64("team_id", teamID),
			zap.Int64("user_id", userID),
		)
		return nil, err
	}

	return member, nil
}

// RemoveMember помечает участника removed. Лидера удалить нельзя, пока лидерство не передано.
// Кто вправе удалять, проверяет обработчик запроса.
func (s *teamService) RemoveMember(ctx context.Context, teamID, userID int64) error {
	err := s.transactor.WithinTx(ctx, func(ctx context.Context, repos repository.Repositories) error {
		state, err := repos.Teams.GetStateForUpdate(ctx, teamID)
		if err != nil {
			return notFound(err, teamResource(teamID))
		}
		if state.LeaderID == userID {
			return domain.ErrLeaderRemoval
		}

		member, err := repos.Teams.GetMember(ctx, teamID, userID)
		if err != nil {
			return notFound(err, fmt.Sprintf("member %d of team %d", userID, teamID))
		}
		if !member.Status.CanTransition(domain.MemberRemoved) {
			return domain.NewInvalidStateError(fmt.Sprintf("member is already %s", member.Status))
		}

		return repos.Teams.SetMemberStatus(ctx, teamID, userID, domain.MemberRemoved)
	})
	if err != nil {
		logRejection(s.log, "remove member rejected", err,
			zap.Int64("team_id", teamID),
			zap.Int64("user_id", userID),
		)
		return err
	}

	s.log.Debug("member removed", zap.Int64("team_id", teamID), zap.Int64("user_id", userID))
	return nil
}

// TransferLeadership передает лидерство joined-участнику. Проверка членства и
// смена лидера идут под одной блокировкой команды.
func (s *teamService) TransferLeadership(ctx context.Context, teamID, newLeaderID int64) error {
	err := s.transactor.WithinTx(ctx, func(ctx context.Context, repos repository.Repositories) error {
		state, err := repos.Teams.GetStateForUpdate(ctx, teamID)
		if err != nil {
			return notFound(err, teamResource(teamID))
		}
		if state.LeaderID == newLeaderID {
			return nil
		}

		member, err := getMember(ctx, repos.Teams, teamID, newLeaderID)
		if err != nil {
			return err
		}
		if member == nil || member.Status != domain.MemberJoined {
			return domain.ErrInvalidMember
		}

		return notFound(repos.Teams.SetLeader(ctx, teamID, newLeaderID), teamResource(teamID))
	})
	if err != nil {
		logRejection(s.log, "leadership transfer rejected", err,
			zap.Int64("team_id", teamID),
			zap.Int64("new_leader_id", newLeaderID),
		)
		return err
	}

	s.log.Info("leadership transferred", zap.Int64("team_id", teamID), zap.Int64("leader_id", newLeaderID))
	return nil
}

func (s *teamService) DeleteTeam(ctx context.Context, teamID int64) error {
	err := s.transactor.WithinTx(ctx, func(ctx context.Context, repos repository.Repositories) error {
		return notFound(repos.Teams.Delete(ctx, teamID), teamResource(teamID))
	})
	if err != nil {
		return err
	}

	s.log.Info("team deleted", zap.Int64("team_id", teamID))
	return nil
}
