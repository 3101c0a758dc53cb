package handler

import (
	"net/http"
	"time"

	"github.com/bagdasarian/event-manager/internal/domain"
)

func (h *Handler) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var req EventRequest
	if err := decodeJSON(r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}
	if err := requireID("organizer_id", req.OrganizerID); err != nil {
		h.handleError(w, r, err)
		return
	}

	event, err := httpEventToDomain(req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	event.ID = 0

	created, err := h.scheduleService.CreateEvent(r.Context(), event)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, EventEnvelope{Event: domainEventToHTTP(created)})
}

// UpdateEvent: organizer_id в теле игнорируется, организатор события не меняется
func (h *Handler) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	var req EventRequest
	if err := decodeJSON(r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}
	if err := requireID("event_id", req.EventID); err != nil {
		h.handleError(w, r, err)
		return
	}

	event, err := httpEventToDomain(req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	updated, err := h.scheduleService.UpdateEvent(r.Context(), event)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, EventEnvelope{Event: domainEventToHTTP(updated)})
}

func (h *Handler) GetEvent(w http.ResponseWriter, r *http.Request) {
	eventID, err := queryID(r, "event_id")
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	event, err := h.scheduleService.GetEvent(r.Context(), eventID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, EventEnvelope{Event: domainEventToHTTP(event)})
}

func (h *Handler) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	var req EventIDRequest
	if err := decodeJSON(r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}
	if err := requireID("event_id", req.EventID); err != nil {
		h.handleError(w, r, err)
		return
	}

	if err := h.scheduleService.DeleteEvent(r.Context(), req.EventID); err != nil {
		h.handleError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) CheckSchedule(w http.ResponseWriter, r *http.Request) {
	organizerID, err := queryID(r, "organizer_id")
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	query := r.URL.Query()
	start, err := time.Parse(time.RFC3339, query.Get("start"))
	if err != nil {
		h.handleError(w, r, domain.NewBadRequestError("start must be an RFC3339 timestamp"))
		return
	}
	end, err := time.Parse(time.RFC3339, query.Get("end"))
	if err != nil {
		h.handleError(w, r, domain.NewBadRequestError("end must be an RFC3339 timestamp"))
		return
	}
	if !start.Before(end) {
		h.handleError(w, r, domain.NewBadRequestError("start must be before end"))
		return
	}

	var excludeEventID *int64
	if query.Get("exclude_event_id") != "" {
		id, err := queryID(r, "exclude_event_id")
		if err != nil {
			h.handleError(w, r, err)
			return
		}
		excludeEventID = &id
	}

	check, err := h.scheduleService.CheckEventSchedule(r.Context(), organizerID, excludeEventID, start, end)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, ScheduleCheckResponse{
		OK:        check.OK,
		Conflicts: domainEventsToHTTP(check.Conflicts),
	})
}
