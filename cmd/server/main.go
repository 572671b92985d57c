package main

import (
	"teampulse-backend/internal/config"
	"teampulse-backend/internal/logger"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"go.uber.org/fx"

	_ "teampulse-backend/docs" // This is needed for swag
)

//	@title			TeamPulse Backend API
//	@version		1.0
//	@description	Backend API for TeamPulse: weekly pulse logs, team feedback, teams and reference catalogs.

//	@host		localhost:8000
//	@BasePath	/api/v1

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Type "Bearer" followed by a space and JWT token.

func main() {
	// Load environment variables from .env file in development
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using system environment variables")
	}

	fx.New(
		fx.Provide(config.Load),
		fx.Invoke(setupLogging),
		infraModule,
		repositoryModule,
		serviceModule,
		handlerModule,
		serverModule,
	).Run()
}

func setupLogging(cfg *config.Config) {
	logger.Setup(cfg.LogLevel)
}
