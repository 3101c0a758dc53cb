package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/bagdasarian/event-manager/internal/config"
	"github.com/bagdasarian/event-manager/internal/db"
	"github.com/bagdasarian/event-manager/internal/handler"
	"github.com/bagdasarian/event-manager/internal/handler/server"
	"github.com/bagdasarian/event-manager/internal/logger"
	"github.com/bagdasarian/event-manager/internal/repository/postgres"
	"github.com/bagdasarian/event-manager/internal/service"
	"go.uber.org/zap"
)

func main() {
	cfg := config.MustLoad()

	log := logger.New(cfg.AppEnv)
	defer log.Sync()

	database := db.MustLoad(context.Background(), cfg.Database)
	log.Info("successfully connected to database", zap.String("host", cfg.Database.Host))
	defer database.Close()

	transactor := postgres.NewTransactor(database)

	scheduleService := service.NewScheduleService(transactor, log)
	teamService := service.NewTeamService(transactor, log)
	statsService := service.NewStatsService(transactor)

	h := handler.NewHandler(scheduleService, teamService, statsService, log)
	srv := server.NewServer(h, cfg.Server.Addr, log)

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server failed to start", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("server forced to shutdown", zap.Error(err))
	}
}
