package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/bagdasarian/event-manager/internal/domain"
	"github.com/bagdasarian/event-manager/internal/logger"
	"go.uber.org/zap"
)

func (h *Handler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	var domainErr *domain.DomainError
	if errors.As(err, &domainErr) {
		writeJSON(w, getStatusCode(domainErr.Code), ErrorResponse{
			Error: ErrorDetail{
				Code:      string(domainErr.Code),
				Message:   domainErr.Message,
				Conflicts: domainEventsToHTTP(domainErr.Conflicts),
				Limit:     domainErr.Limit,
			},
		})
		return
	}

	logger.FromContext(r.Context(), h.log).Error("request failed", zap.Error(err))

	writeJSON(w, http.StatusInternalServerError, ErrorResponse{
		Error: ErrorDetail{
			Code:    "INTERNAL_ERROR",
			Message: "internal server error",
		},
	})
}

func getStatusCode(code domain.ErrorCode) int {
	switch code {
	case domain.CodeScheduleConflict:
		return http.StatusConflict
	case domain.CodeCapacityExceeded, domain.CodeInvalidState, domain.CodeInvalidMember,
		domain.CodeNotSupported, domain.CodeBadRequest:
		return http.StatusBadRequest
	case domain.CodeNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
