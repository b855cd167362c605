package main

import (
	"os"

	"github.com/alqalam/college-backend/internal/pkg/logger"
	"github.com/alqalam/college-backend/internal/server"
)

// @title Al-Qalam College API
// @version 1.0
// @description Administration and student portal API for Al-Qalam College

// @contact.name API Support
// @contact.email it@alqalam.edu.ye

// @host localhost:8080
// @BasePath /api/v1
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT token for authorization

func main() {
	srv, err := server.NewServer()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully")
}
