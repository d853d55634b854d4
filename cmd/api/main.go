package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/ecamli/registra/internal/pkg/logger"
	"github.com/ecamli/registra/internal/server"
)

// @title Registra API
// @version 1.0
// @description Academic records engine: student registry, enrollments, attendance, grades and report cards

// @contact.name API Support
// @contact.email support@registra.app

// @host localhost:8080
// @BasePath /api/v1
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT token for authorization

func main() {
	// A missing .env file is fine; the environment may already be set
	if err := godotenv.Load(); err != nil {
		logger.Debug().Msg("No .env file found, relying on environment")
	}

	srv, err := server.NewServer()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
}
