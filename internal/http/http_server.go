package http

// this is entry point of the http request handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/mux"

	"gitlab.com/fcv-2025.net/client/internal/core/ports/primary"
	"gitlab.com/fcv-2025.net/client/internal/core/ports/secondary"
	"gitlab.com/fcv-2025.net/client/internal/core/services/history"
	"gitlab.com/fcv-2025.net/client/internal/core/services/session"
	workspacehdl "gitlab.com/fcv-2025.net/client/internal/handlers/workspace"
)

type ServiceProvider struct {
	sessionService session.ISessionService
	historyService history.IHistoryService
	judgeGateway   secondary.JudgeGateway
}

func NewServiceProvider(
	sessionService session.ISessionService,
	historyService history.IHistoryService,
	judgeGateway secondary.JudgeGateway,
) *ServiceProvider {
	return &ServiceProvider{
		sessionService: sessionService,
		historyService: historyService,
		judgeGateway:   judgeGateway,
	}
}

type Server struct {
	router          *mux.Router
	srv             *http.Server
	Port            int
	ServiceName     string
	ServiceProvider ServiceProvider
	logger          primary.Logger
}

func NewServer(port int, serviceName string, serviceProvider ServiceProvider, logger primary.Logger) *Server {
	return &Server{
		Port:            port,
		ServiceName:     serviceName,
		ServiceProvider: serviceProvider,
		logger:          logger,
	}
}

func (s *Server) Init() error {
	r := mux.NewRouter()
	workspacehdl.NewWorkspaceHandler(
		s.ServiceProvider.sessionService,
		s.ServiceProvider.historyService,
		s.ServiceProvider.judgeGateway,
		s.logger,
	).RegisterRoutes(r)
	s.router = r
	return nil
}

func (s *Server) Start(ctx context.Context) {
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", s.Port),
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	s.srv = srv

	// Start the server in a goroutine
	go func() {
		s.logger.Info("Server listening", "addr", srv.Addr, "service", s.ServiceName)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("Server error", "error", err)
			os.Exit(1)
		}
	}()
}

func (s *Server) Stop(ctx context.Context) {
	s.logger.Info("Shutting down http server...")
	if s.srv == nil {
		return
	}
	if err := s.srv.Shutdown(ctx); err != nil {
		s.logger.Error("Server forced to shutdown", "error", err)
	}
}
