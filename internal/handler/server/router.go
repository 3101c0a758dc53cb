package server

import (
	"net/http"

	"github.com/bagdasarian/event-manager/internal/handler"
)

func SetupRoutes(mux *http.ServeMux, h *handler.Handler) {
	mux.HandleFunc("POST /events/create", h.CreateEvent)
	mux.HandleFunc("POST /events/update", h.UpdateEvent)
	mux.HandleFunc("POST /events/delete", h.DeleteEvent)
	mux.HandleFunc("GET /events/get", h.GetEvent)
	mux.HandleFunc("GET /events/checkSchedule", h.CheckSchedule)
	mux.HandleFunc("POST /team/create", h.CreateTeam)
	mux.HandleFunc("GET /team/get", h.GetTeam)
	mux.HandleFunc("POST /team/delete", h.DeleteTeam)
	mux.HandleFunc("POST /team/addMember", h.AddMember)
	mux.HandleFunc("POST /team/removeMember", h.RemoveMember)
	mux.HandleFunc("POST /team/transferLeadership", h.TransferLeadership)
	mux.HandleFunc("POST /team/respondInvite", h.RespondInvite)
	mux.HandleFunc("GET /stats/teams", h.GetTeamStats)
}
