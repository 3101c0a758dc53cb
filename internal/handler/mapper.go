package handler

import (
	"fmt"
	"time"

	"github.com/bagdasarian/event-manager/internal/domain"
)

func formatTimePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	formatted := t.Format(time.RFC3339)
	return &formatted
}

func domainEventToHTTP(event *domain.Event) EventResponse {
	var createdAt *string
	if !event.CreatedAt.IsZero() {
		createdAt = formatTimePtr(&event.CreatedAt)
	}

	return EventResponse{
		EventID:     event.ID,
		Title:       event.Title,
		OrganizerID: event.OrganizerID,
		StartsAt:    event.StartsAt.Format(time.RFC3339),
		EndsAt:      event.EndsAt.Format(time.RFC3339),
		TeamEvent:   event.TeamEvent,
		MinTeamSize: event.MinTeamSize,
		MaxTeamSize: event.MaxTeamSize,
		CreatedAt:   createdAt,
		UpdatedAt:   formatTimePtr(event.UpdatedAt),
	}
}

func domainEventsToHTTP(events []*domain.Event) []EventResponse {
	result := make([]EventResponse, 0, len(events))
	for _, event := range events {
		result = append(result, domainEventToHTTP(event))
	}
	return result
}

// httpEventToDomain проверяет поля на границе: ядро получает уже корректный интервал и размеры команды
func httpEventToDomain(req EventRequest) (*domain.Event, error) {
	if req.Title == "" {
		return nil, domain.NewBadRequestError("title is required")
	}

	startsAt, err := time.Parse(time.RFC3339, req.StartsAt)
	if err != nil {
		return nil, domain.NewBadRequestError("starts_at must be an RFC3339 timestamp")
	}
	endsAt, err := time.Parse(time.RFC3339, req.EndsAt)
	if err != nil {
		return nil, domain.NewBadRequestError("ends_at must be an RFC3339 timestamp")
	}
	if !startsAt.Before(endsAt) {
		return nil, domain.NewBadRequestError("starts_at must be before ends_at")
	}

	minSize, maxSize := req.MinTeamSize, req.MaxTeamSize
	if req.TeamEvent {
		if minSize < 1 || minSize > maxSize {
			return nil, domain.NewBadRequestError(fmt.Sprintf(
				"team sizes must satisfy 1 <= min_team_size <= max_team_size, got %d and %d", minSize, maxSize,
			))
		}
	} else {
		minSize, maxSize = 1, 1
	}

	return &domain.Event{
		ID:          req.EventID,
		Title:       req.Title,
		OrganizerID: req.OrganizerID,
		StartsAt:    startsAt,
		EndsAt:      endsAt,
		TeamEvent:   req.TeamEvent,
		MinTeamSize: minSize,
		MaxTeamSize: maxSize,
	}, nil
}

func domainMemberToHTTP(member *domain.TeamMember) TeamMemberResponse {
	return TeamMemberResponse{
		UserID:    member.UserID,
		Status:    string(member.Status),
		CreatedAt: member.CreatedAt.Format(time.RFC3339),
		UpdatedAt: formatTimePtr(member.UpdatedAt),
	}
}

func domainTeamToHTTP(team *domain.Team) TeamResponse {
	members := make([]TeamMemberResponse, 0, len(team.Members))
	for i := range team.Members {
		members = append(members, domainMemberToHTTP(&team.Members[i]))
	}

	return TeamResponse{
		TeamID:      team.ID,
		EventID:     team.EventID,
		Name:        team.Name,
		LeaderID:    team.LeaderID,
		JoinedCount: team.JoinedCount(),
		Members:     members,
	}
}

func domainReadinessToHTTP(stats []*domain.TeamReadiness) []TeamReadinessResponse {
	result := make([]TeamReadinessResponse, 0, len(stats))
	for _, stat := range stats {
		result = append(result, TeamReadinessResponse{
			TeamID:      stat.TeamID,
			TeamName:    stat.TeamName,
			JoinedCount: stat.JoinedCount,
			MinTeamSize: stat.MinTeamSize,
			MaxTeamSize: stat.MaxTeamSize,
			Ready:       stat.Ready(),
		})
	}
	return result
}
