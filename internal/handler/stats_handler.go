package handler

import (
	"net/http"
)

func (h *Handler) GetTeamStats(w http.ResponseWriter, r *http.Request) {
	eventID, err := queryID(r, "event_id")
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	stats, err := h.statsService.GetTeamReadiness(r.Context(), eventID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, TeamStatsResponse{
		EventID: eventID,
		Teams:   domainReadinessToHTTP(stats),
	})
}
