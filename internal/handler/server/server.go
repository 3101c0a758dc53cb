package server

import (
	"context"
	"net/http"

	"github.com/bagdasarian/event-manager/internal/handler"
	"go.uber.org/zap"
)

type Server struct {
	server *http.Server
	log    *zap.Logger
}

func NewServer(h *handler.Handler, addr string, log *zap.Logger) *Server {
	mux := http.NewServeMux()
	SetupRoutes(mux, h)

	return &Server{
		server: &http.Server{
			Addr:    addr,
			Handler: withRequestLogging(mux, log.Named("access")),
		},
		log: log,
	}
}

// Handler нужен тестам, чтобы гонять запросы без сетевого listener
func (s *Server) Handler() http.Handler {
	return s.server.Handler
}

func (s *Server) Start() error {
	s.log.Info("server starting", zap.String("addr", s.server.Addr))
	return s.server.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.log.Info("shutting down")
	if err := s.server.Shutdown(ctx); err != nil {
		return err
	}
	s.log.Info("server stopped")
	return nil
}
