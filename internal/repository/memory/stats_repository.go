package memory

import (
	"context"
	"sort"

	"github.com/bagdasarian/event-manager/internal/domain"
)

type statsRepository struct {
	st *state
}

func (r *statsRepository) GetTeamReadiness(ctx context.Context, eventID int64) ([]*domain.TeamReadiness, error) {
	event, ok := r.st.events[eventID]
	if !ok {
		return nil, nil
	}

	var stats []*domain.TeamReadiness
	for id, team := range r.st.teams {
		if team.EventID != eventID {
			continue
		}
		stats = append(stats, &domain.TeamReadiness{
			TeamID:      id,
			TeamName:    team.Name,
			EventID:     eventID,
			JoinedCount: r.st.joinedCount(id),
			MinTeamSize: event.MinTeamSize,
			MaxTeamSize: event.MaxTeamSize,
		})
	}

	sort.Slice(stats, func(i, j int) bool { return stats[i].TeamID < stats[j].TeamID })
	return stats, nil
}
