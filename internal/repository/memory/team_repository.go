package memory

import (
	"context"
	"sort"
	"time"

	"github.com/bagdasarian/event-manager/internal/domain"
	"github.com/bagdasarian/event-manager/internal/repository"
)

type teamRepository struct {
	st *state
}

func (s *state) deleteTeam(teamID int64) {
	delete(s.teams, teamID)
	for key := range s.members {
		if key.teamID == teamID {
			delete(s.members, key)
		}
	}
}

func (s *state) joinedCount(teamID int64) int {
	count := 0
	for key, member := range s.members {
		if key.teamID == teamID && member.Status == domain.MemberJoined {
			count++
		}
	}
	return count
}

func (r *teamRepository) Create(ctx context.Context, team *domain.Team) error {
	if _, ok := r.st.events[team.EventID]; !ok {
		return repository.ErrNotFound
	}
	if err := r.st.checkUser(team.LeaderID); err != nil {
		return err
	}
	for _, member := range team.Members {
		if err := r.st.checkUser(member.UserID); err != nil {
			return err
		}
	}

	now := time.Now()
	r.st.nextTeamID++
	team.ID = r.st.nextTeamID
	team.CreatedAt = now
	team.UpdatedAt = nil

	for i := range team.Members {
		team.Members[i].TeamID = team.ID
		team.Members[i].CreatedAt = now
		team.Members[i].UpdatedAt = nil
		r.st.members[memberKey{team.ID, team.Members[i].UserID}] = team.Members[i]
	}

	row := *team
	row.Members = nil
	r.st.teams[team.ID] = row
	return nil
}

func (r *teamRepository) GetByID(ctx context.Context, id int64) (*domain.Team, error) {
	row, ok := r.st.teams[id]
	if !ok {
		return nil, repository.ErrNotFound
	}

	team := row
	team.Members = make([]domain.TeamMember, 0)
	for key, member := range r.st.members {
		if key.teamID == id {
			team.Members = append(team.Members, member)
		}
	}
	sort.Slice(team.Members, func(i, j int) bool {
		return team.Members[i].UserID < team.Members[j].UserID
	})

	return &team, nil
}

func (r *teamRepository) GetStateForUpdate(ctx context.Context, id int64) (*domain.TeamState, error) {
	row, ok := r.st.teams[id]
	if !ok {
		return nil, repository.ErrNotFound
	}

	return &domain.TeamState{
		ID:          row.ID,
		EventID:     row.EventID,
		LeaderID:    row.LeaderID,
		JoinedCount: r.st.joinedCount(id),
	}, nil
}

func (r *teamRepository) CountByEvent(ctx context.Context, eventID int64) (int, error) {
	count := 0
	for _, team := range r.st.teams {
		if team.EventID == eventID {
			count++
		}
	}
	return count, nil
}

func (r *teamRepository) MaxJoinedCountByEvent(ctx context.Context, eventID int64) (int, error) {
	maxJoined := 0
	for id, team := range r.st.teams {
		if team.EventID != eventID {
			continue
		}
		if joined := r.st.joinedCount(id); joined > maxJoined {
			maxJoined = joined
		}
	}
	return maxJoined, nil
}

func (r *teamRepository) GetMember(ctx context.Context, teamID, userID int64) (*domain.TeamMember, error) {
	member, ok := r.st.members[memberKey{teamID, userID}]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &member, nil
}

func (r *teamRepository) UpsertMember(ctx context.Context, teamID, userID int64, status domain.MemberStatus) (*domain.TeamMember, error) {
	if _, ok := r.st.teams[teamID]; !ok {
		return nil, repository.ErrNotFound
	}
	if err := r.st.checkUser(userID); err != nil {
		return nil, err
	}

	now := time.Now()
	key := memberKey{teamID, userID}
	member, ok := r.st.members[key]
	if ok {
		member.Status = status
		member.UpdatedAt = &now
	} else {
		member = domain.TeamMember{TeamID: teamID, UserID: userID, Status: status, CreatedAt: now}
	}
	r.st.members[key] = member

	return &member, nil
}

func (r *teamRepository) SetMemberStatus(ctx context.Context, teamID, userID int64, status domain.MemberStatus) error {
	key := memberKey{teamID, userID}
	member, ok := r.st.members[key]
	if !ok {
		return repository.ErrNotFound
	}

	now := time.Now()
	member.Status = status
	member.UpdatedAt = &now
	r.st.members[key] = member
	return nil
}

func (r *teamRepository) SetLeader(ctx context.Context, teamID, userID int64) error {
	row, ok := r.st.teams[teamID]
	if !ok {
		return repository.ErrNotFound
	}

	now := time.Now()
	row.LeaderID = userID
	row.UpdatedAt = &now
	r.st.teams[teamID] = row
	return nil
}

func (r *teamRepository) Delete(ctx context.Context, id int64) error {
	if _, ok := r.st.teams[id]; !ok {
		return repository.ErrNotFound
	}
	r.st.deleteTeam(id)
	return nil
}
