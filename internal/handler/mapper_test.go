package handler

import (
	"net/http"
	"testing"

	"github.com/bagdasarian/event-manager/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPEventToDomain(t *testing.T) {
	valid := EventRequest{
		Title:       "Hackathon",
		OrganizerID: 1,
		StartsAt:    "2026-03-01T10:00:00Z",
		EndsAt:      "2026-03-01T12:00:00Z",
		TeamEvent:   true,
		MinTeamSize: 2,
		MaxTeamSize: 4,
	}

	t.Run("корректное событие", func(t *testing.T) {
		event, err := httpEventToDomain(valid)

		require.NoError(t, err)
		assert.Equal(t, 2, event.MinTeamSize)
		assert.Equal(t, 4, event.MaxTeamSize)
		assert.True(t, event.StartsAt.Before(event.EndsAt))
	})

	t.Run("не командное событие получает размеры по умолчанию", func(t *testing.T) {
		req := valid
		req.TeamEvent = false
		req.MinTeamSize, req.MaxTeamSize = 0, 0

		event, err := httpEventToDomain(req)

		require.NoError(t, err)
		assert.Equal(t, 1, event.MinTeamSize)
		assert.Equal(t, 1, event.MaxTeamSize)
	})

	tests := []struct {
		name   string
		modify func(*EventRequest)
	}{
		{"пустое название", func(r *EventRequest) { r.Title = "" }},
		{"некорректное время начала", func(r *EventRequest) { r.StartsAt = "01.03.2026" }},
		{"конец раньше начала", func(r *EventRequest) { r.EndsAt = "2026-03-01T09:00:00Z" }},
		{"пустой интервал", func(r *EventRequest) { r.EndsAt = r.StartsAt }},
		{"min больше max", func(r *EventRequest) { r.MinTeamSize = 5 }},
		{"нулевой min", func(r *EventRequest) { r.MinTeamSize = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid
			tt.modify(&req)

			_, err := httpEventToDomain(req)

			assert.Equal(t, domain.CodeBadRequest, domain.CodeOf(err))
		})
	}
}

func TestGetStatusCode(t *testing.T) {
	tests := []struct {
		code   domain.ErrorCode
		status int
	}{
		{domain.CodeScheduleConflict, http.StatusConflict},
		{domain.CodeCapacityExceeded, http.StatusBadRequest},
		{domain.CodeInvalidState, http.StatusBadRequest},
		{domain.CodeInvalidMember, http.StatusBadRequest},
		{domain.CodeNotSupported, http.StatusBadRequest},
		{domain.CodeBadRequest, http.StatusBadRequest},
		{domain.CodeNotFound, http.StatusNotFound},
		{domain.CodeStoreFailure, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			assert.Equal(t, tt.status, getStatusCode(tt.code))
		})
	}
}
