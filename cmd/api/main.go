package main

import (
	"os"

	"github.com/luct-faculty/portal/internal/pkg/logger"
	"github.com/luct-faculty/portal/internal/server"
)

// @title LUCT Reporting Portal API
// @version 1.0
// @description Role-based faculty reporting portal: lecture reports, attendance, ratings and monitoring

// @contact.name API Support
// @contact.email support@luct.ac.ls

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:5000
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

	logger.Info().Msg("Application finished gracefully.")
}
