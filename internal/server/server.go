package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/alqalam/college-backend/internal/bootstrap"
	"github.com/alqalam/college-backend/internal/config"
	"github.com/alqalam/college-backend/internal/db"
	"github.com/alqalam/college-backend/internal/pkg/logger"
)

const defaultConfigPath = "configs/config.yaml"

// Server holds the state for the HTTP server.
type Server struct {
	config   *config.Config
	router   *gin.Engine
	database *db.PostgresDB
	http     *http.Server
}

// NewServer creates and initializes a new server instance by chaining the
// bootstrap steps.
func NewServer() (*Server, error) {
	cfg, err := bootstrap.LoadConfigAndSetupLogger(defaultConfigPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config or setup logger: %w", err)
	}

	database, err := bootstrap.SetupDatabase(context.Background(), cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to setup database: %w", err)
	}

	deps := bootstrap.BuildDependencies(cfg, database)
	router := bootstrap.SetupRouter(cfg, deps)

	return &Server{
		config:   cfg,
		router:   router,
		database: database,
	}, nil
}

// Run starts the HTTP server and blocks until a shutdown signal or a server
// error arrives.
func (s *Server) Run() error {
	s.http = &http.Server{
		Addr:         ":" + s.config.Server.Port,
		Handler:      s.router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	serverErrors := make(chan error, 1)

	go func() {
		logger.Info().Str("addr", s.http.Addr).Msg("HTTP server listening")
		serverErrors <- s.http.ListenAndServe()
	}()

	osSignals := make(chan os.Signal, 1)
	signal.Notify(osSignals, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("error starting server: %w", err)
		}
	case sig := <-osSignals:
		logger.Info().Str("signal", sig.String()).Msg("Received OS signal, initiating shutdown")
	}

	return s.Shutdown(context.Background())
}

// Shutdown gracefully stops the server and closes resources.
func (s *Server) Shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	shutdownError := false

	if s.http != nil {
		logger.Info().Msg("Shutting down HTTP server")
		if err := s.http.Shutdown(ctx); err != nil {
			logger.Error().Err(err).Msg("HTTP server shutdown error")
			shutdownError = true
		}
	}

	if s.database != nil {
		s.database.Close()
		logger.Info().Msg("Database connection pool closed")
	}

	if shutdownError {
		return errors.New("server shutdown completed with errors")
	}
	return nil
}
