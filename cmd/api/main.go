package main

import (
	"context"
	"flag"
	"os"

	"github.com/yigit/coursemanager/internal/pkg/logger"
	"github.com/yigit/coursemanager/internal/server"
)

// @title Course Manager API
// @version 1.0
// @description Departments, students, courses, enrollments and grading under the BR business rules.
// @host localhost:8080
// @BasePath /api/v1
func main() {
	configPath := flag.String("config", "", "path to the YAML config file (default configs/config.yaml)")
	flag.Parse()

	srv, err := server.NewServer(context.Background(), *configPath)
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
