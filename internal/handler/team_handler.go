package handler

import (
	"net/http"

	"github.com/bagdasarian/event-manager/internal/domain"
)

func (h *Handler) CreateTeam(w http.ResponseWriter, r *http.Request) {
	var req CreateTeamRequest
	if err := decodeJSON(r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}
	if req.Name == "" {
		h.handleError(w, r, domain.NewBadRequestError("name is required"))
		return
	}
	if err := requireID("event_id", req.EventID); err != nil {
		h.handleError(w, r, err)
		return
	}
	if err := requireID("leader_id", req.LeaderID); err != nil {
		h.handleError(w, r, err)
		return
	}

	team, err := h.teamService.CreateTeam(r.Context(), req.Name, req.EventID, req.LeaderID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, TeamEnvelope{Team: domainTeamToHTTP(team)})
}

func (h *Handler) GetTeam(w http.ResponseWriter, r *http.Request) {
	teamID, err := queryID(r, "team_id")
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	team, err := h.teamService.GetTeam(r.Context(), teamID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, domainTeamToHTTP(team))
}

func (h *Handler) DeleteTeam(w http.ResponseWriter, r *http.Request) {
	var req TeamIDRequest
	if err := decodeJSON(r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}
	if err := requireID("team_id", req.TeamID); err != nil {
		h.handleError(w, r, err)
		return
	}

	if err := h.teamService.DeleteTeam(r.Context(), req.TeamID); err != nil {
		h.handleError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) AddMember(w http.ResponseWriter, r *http.Request) {
	var req AddMemberRequest
	if err := decodeJSON(r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}
	if err := requireMember(req.TeamID, req.UserID); err != nil {
		h.handleError(w, r, err)
		return
	}

	status := domain.MemberJoined
	if req.Status != "" {
		parsed, err := domain.ParseMemberStatus(req.Status)
		if err != nil {
			h.handleError(w, r, domain.NewBadRequestError(err.Error()))
			return
		}
		status = parsed
	}

	member, err := h.teamService.AddMember(r.Context(), req.TeamID, req.UserID, status)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, MemberEnvelope{TeamID: req.TeamID, Member: domainMemberToHTTP(member)})
}

func (h *Handler) RespondInvite(w http.ResponseWriter, r *http.Request) {
	var req RespondInviteRequest
	if err := decodeJSON(r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}
	if err := requireMember(req.TeamID, req.UserID); err != nil {
		h.handleError(w, r, err)
		return
	}
	if req.Accept == nil {
		h.handleError(w, r, domain.NewBadRequestError("accept is required"))
		return
	}

	member, err := h.teamService.RespondToInvite(r.Context(), req.TeamID, req.UserID, *req.Accept)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, MemberEnvelope{TeamID: req.TeamID, Member: domainMemberToHTTP(member)})
}

func (h *Handler) RemoveMember(w http.ResponseWriter, r *http.Request) {
	var req RemoveMemberRequest
	if err := decodeJSON(r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}
	if err := requireMember(req.TeamID, req.UserID); err != nil {
		h.handleError(w, r, err)
		return
	}

	if err := h.teamService.RemoveMember(r.Context(), req.TeamID, req.UserID); err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeTeam(w, r, req.TeamID)
}

func (h *Handler) TransferLeadership(w http.ResponseWriter, r *http.Request) {
	var req TransferLeadershipRequest
	if err := decodeJSON(r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}
	if err := requireID("team_id", req.TeamID); err != nil {
		h.handleError(w, r, err)
		return
	}
	if err := requireID("new_leader_id", req.NewLeaderID); err != nil {
		h.handleError(w, r, err)
		return
	}

	if err := h.teamService.TransferLeadership(r.Context(), req.TeamID, req.NewLeaderID); err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeTeam(w, r, req.TeamID)
}

// writeTeam отдает команду после изменения; чтение идет отдельной транзакцией
func (h *Handler) writeTeam(w http.ResponseWriter, r *http.Request, teamID int64) {
	team, err := h.teamService.GetTeam(r.Context(), teamID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, TeamEnvelope{Team: domainTeamToHTTP(team)})
}

func requireMember(teamID, userID int64) error {
	if err := requireID("team_id", teamID); err != nil {
		return err
	}
	return requireID("user_id", userID)
}
