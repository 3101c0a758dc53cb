package postgres

import (
	"context"

	"github.com/bagdasarian/event-manager/internal/domain"
)

type statsRepository struct {
	executor DBExecutor
}

func NewStatsRepository(executor DBExecutor) *statsRepository {
	return &statsRepository{executor: executor}
}

func (r *statsRepository) GetTeamReadiness(ctx context.Context, eventID int64) ([]*domain.TeamReadiness, error) {
	query := `
		SELECT t.id, t.name, t.event_id,
			COUNT(tm.user_id) FILTER (WHERE tm.status = 'joined') AS joined_count,
			e.min_team_size, e.max_team_size
		FROM teams t
		JOIN events e ON e.id = t.event_id
		LEFT JOIN team_members tm ON tm.team_id = t.id
		WHERE t.event_id = $1
		GROUP BY t.id, t.name, t.event_id, e.min_team_size, e.max_team_size
		ORDER BY t.id
	`

	rows, err := r.executor.QueryContext(ctx, query, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var stats []*domain.TeamReadiness
	for rows.Next() {
		stat := &domain.TeamReadiness{}
		err := rows.Scan(
			&stat.TeamID,
			&stat.TeamName,
			&stat.EventID,
			&stat.JoinedCount,
			&stat.MinTeamSize,
			&stat.MaxTeamSize,
		)
		if err != nil {
			return nil, err
		}
		stats = append(stats, stat)
	}

	return stats, rows.Err()
}
