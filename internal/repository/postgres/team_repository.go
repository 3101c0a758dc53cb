package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/bagdasarian/event-manager/internal/domain"
	"github.com/bagdasarian/event-manager/internal/repository"
)

type teamRepository struct {
	executor DBExecutor
}

func NewTeamRepository(executor DBExecutor) *teamRepository {
	return &teamRepository{executor: executor}
}

// Create вставляет команду и всех переданных участников.
// Атомарность обеспечивает транзакция вызывающего.
func (r *teamRepository) Create(ctx context.Context, team *domain.Team) error {
	query := `
		INSERT INTO teams (event_id, name, leader_id, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	now := time.Now()
	err := r.executor.QueryRowContext(ctx, query, team.EventID, team.Name, team.LeaderID, now).
		Scan(&team.ID, &team.CreatedAt)
	if err != nil {
		return mapError(err)
	}
	team.UpdatedAt = nil

	for i := range team.Members {
		member := &team.Members[i]
		_, err := r.executor.ExecContext(
			ctx,
			"INSERT INTO team_members (team_id, user_id, status, created_at) VALUES ($1, $2, $3, $4)",
			team.ID,
			member.UserID,
			string(member.Status),
			now,
		)
		if err != nil {
			return mapError(err)
		}
		member.TeamID = team.ID
		member.CreatedAt = now
		member.UpdatedAt = nil
	}

	return nil
}

func (r *teamRepository) GetByID(ctx context.Context, id int64) (*domain.Team, error) {
	query := `
		SELECT id, event_id, name, leader_id, created_at, updated_at
		FROM teams
		WHERE id = $1
	`

	team := &domain.Team{}
	var updatedAt sql.NullTime
	err := r.executor.QueryRowContext(ctx, query, id).Scan(
		&team.ID,
		&team.EventID,
		&team.Name,
		&team.LeaderID,
		&team.CreatedAt,
		&updatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	if updatedAt.Valid {
		team.UpdatedAt = &updatedAt.Time
	}

	members, err := r.getMembers(ctx, id)
	if err != nil {
		return nil, err
	}
	team.Members = members

	return team, nil
}

func (r *teamRepository) getMembers(ctx context.Context, teamID int64) ([]domain.TeamMember, error) {
	query := `
		SELECT team_id, user_id, status, created_at, updated_at
		FROM team_members
		WHERE team_id = $1
		ORDER BY user_id
	`

	rows, err := r.executor.QueryContext(ctx, query, teamID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	members := make([]domain.TeamMember, 0)
	for rows.Next() {
		member, err := scanMember(rows)
		if err != nil {
			return nil, err
		}
		members = append(members, *member)
	}

	return members, rows.Err()
}

func scanMember(row rowScanner) (*domain.TeamMember, error) {
	member := &domain.TeamMember{}
	var status string
	var updatedAt sql.NullTime
	err := row.Scan(&member.TeamID, &member.UserID, &status, &member.CreatedAt, &updatedAt)
	if err != nil {
		return nil, err
	}

	member.Status, err = domain.ParseMemberStatus(status)
	if err != nil {
		return nil, err
	}
	if updatedAt.Valid {
		member.UpdatedAt = &updatedAt.Time
	}

	return member, nil
}

// GetStateForUpdate держит блокировку строки команды до конца транзакции,
// поэтому подсчет joined-участников стабилен до вставки нового.
func (r *teamRepository) GetStateForUpdate(ctx context.Context, id int64) (*domain.TeamState, error) {
	state := &domain.TeamState{}
	err := r.executor.QueryRowContext(
		ctx,
		`SELECT id, event_id, leader_id FROM teams WHERE id = $1 FOR UPDATE`,
		id,
	).Scan(&state.ID, &state.EventID, &state.LeaderID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	err = r.executor.QueryRowContext(
		ctx,
		`SELECT COUNT(*) FROM team_members WHERE team_id = $1 AND status = 'joined'`,
		id,
	).Scan(&state.JoinedCount)
	if err != nil {
		return nil, err
	}

	return state, nil
}

func (r *teamRepository) CountByEvent(ctx context.Context, eventID int64) (int, error) {
	var count int
	err := r.executor.QueryRowContext(ctx, `SELECT COUNT(*) FROM teams WHERE event_id = $1`, eventID).Scan(&count)
	return count, err
}

func (r *teamRepository) MaxJoinedCountByEvent(ctx context.Context, eventID int64) (int, error) {
	query := `
		SELECT COALESCE(MAX(joined), 0)
		FROM (
			SELECT COUNT(*) AS joined
			FROM team_members tm
			JOIN teams t ON t.id = tm.team_id
			WHERE t.event_id = $1 AND tm.status = 'joined'
			GROUP BY tm.team_id
		) counts
	`

	var maxJoined int
	err := r.executor.QueryRowContext(ctx, query, eventID).Scan(&maxJoined)
	return maxJoined, err
}

func (r *teamRepository) GetMember(ctx context.Context, teamID, userID int64) (*domain.TeamMember, error) {
	query := `
		SELECT team_id, user_id, status, created_at, updated_at
		FROM team_members
		WHERE team_id = $1 AND user_id = $2
	`

	member, err := scanMember(r.executor.QueryRowContext(ctx, query, teamID, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	return member, nil
}

// UpsertMember перезаписывает статус существующей записи вместо вставки дубликата
func (r *teamRepository) UpsertMember(ctx context.Context, teamID, userID int64, status domain.MemberStatus) (*domain.TeamMember, error) {
	query := `
		INSERT INTO team_members (team_id, user_id, status, created_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (team_id, user_id) DO UPDATE
		SET status = EXCLUDED.status, updated_at = EXCLUDED.created_at
		RETURNING created_at, updated_at
	`

	member := &domain.TeamMember{TeamID: teamID, UserID: userID, Status: status}
	var updatedAt sql.NullTime
	err := r.executor.QueryRowContext(ctx, query, teamID, userID, string(status), time.Now()).
		Scan(&member.CreatedAt, &updatedAt)
	if err != nil {
		return nil, mapError(err)
	}

	if updatedAt.Valid {
		member.UpdatedAt = &updatedAt.Time
	}

	return member, nil
}

func (r *teamRepository) SetMemberStatus(ctx context.Context, teamID, userID int64, status domain.MemberStatus) error {
	query := `
		UPDATE team_members
		SET status = $3, updated_at = $4
		WHERE team_id = $1 AND user_id = $2
	`

	result, err := r.executor.ExecContext(ctx, query, teamID, userID, string(status), time.Now())
	if err != nil {
		return err
	}

	return checkAffected(result)
}

func (r *teamRepository) SetLeader(ctx context.Context, teamID, userID int64) error {
	query := `
		UPDATE teams
		SET leader_id = $2, updated_at = $3
		WHERE id = $1
	`

	result, err := r.executor.ExecContext(ctx, query, teamID, userID, time.Now())
	if err != nil {
		return mapError(err)
	}

	return checkAffected(result)
}

func (r *teamRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.executor.ExecContext(ctx, `DELETE FROM teams WHERE id = $1`, id)
	if err != nil {
		return err
	}

	return checkAffected(result)
}
