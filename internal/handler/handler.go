package handler

import (
	"github.com/bagdasarian/event-manager/internal/service"
	"go.uber.org/zap"
)

type Handler struct {
	scheduleService service.ScheduleService
	teamService     service.TeamService
	statsService    service.StatsService
	log             *zap.Logger
}

func NewHandler(
	scheduleService service.ScheduleService,
	teamService service.TeamService,
	statsService service.StatsService,
	log *zap.Logger,
) *Handler {
	return &Handler{
		scheduleService: scheduleService,
		teamService:     teamService,
		statsService:    statsService,
		log:             log.Named("http"),
	}
}
